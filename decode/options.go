/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package decode

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"dirpx.dev/errno/codeset"
)

// DefaultBufferSize holds a typical system error message in one pass.
const DefaultBufferSize = 128

// MinBufferSize is the smallest working buffer a Decoder accepts; it fits any
// single UTF-8 encoded character.
const MinBufferSize = utf8.UTFMax

// Option configures a Decoder.
type Option func(*Decoder)

// WithBufferSize sets the size of the converter's working buffer. Values
// below MinBufferSize are raised to it. The size only affects how many
// BufferFull rounds a long message takes, never the output.
func WithBufferSize(n int) Option {
	return func(d *Decoder) {
		if n < MinBufferSize {
			n = MinBufferSize
		}
		d.size = n
	}
}

// WithResolver sets the codeset resolver. nil keeps the default one.
func WithResolver(r codeset.Resolver) Option {
	return func(d *Decoder) {
		if r != nil {
			d.resolver = r
		}
	}
}

// WithLogger sets the logger used for debug events. nil falls back to the
// package logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Decoder) { d.log = l }
}
