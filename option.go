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

package errno

import (
	"dirpx.dev/errno/codeset"
	"dirpx.dev/errno/decode"
	"dirpx.dev/errno/sysmsg"
)

// Option is a functional option for constructing a Renderer.
// It always takes a *Renderer and returns a (possibly new) *Renderer.
type Option func(*Renderer) *Renderer

// WithSourceOption sets the message source.
// Intended to be used with NewRenderer(...).
func WithSourceOption(src sysmsg.Source) Option {
	return func(r *Renderer) *Renderer {
		return r.WithSource(src)
	}
}

// WithDecoderOption sets the decoder.
// Intended to be used with NewRenderer(...).
func WithDecoderOption(d *decode.Decoder) Option {
	return func(r *Renderer) *Renderer {
		return r.WithDecoder(d)
	}
}

// WithCodesetOption overrides the codeset reported by the source.
// Intended to be used with NewRenderer(...).
func WithCodesetOption(cs codeset.Codeset) Option {
	return func(r *Renderer) *Renderer {
		return r.WithCodeset(cs)
	}
}
