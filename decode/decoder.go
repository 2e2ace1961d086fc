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
	"io"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"dirpx.dev/errno/codeset"
)

// Decoder converts OS error messages to UTF-8. The zero value is not usable;
// build one with New.
type Decoder struct {
	size     int
	resolver codeset.Resolver
	log      *zap.Logger
}

// New returns a Decoder configured by opts.
func New(opts ...Option) *Decoder {
	d := &Decoder{size: DefaultBufferSize}
	for _, opt := range opts {
		opt(d)
	}
	if d.resolver == nil {
		d.resolver = codeset.DefaultResolver()
	}
	return d
}

var (
	defaultOnce    sync.Once
	defaultDecoder *Decoder
)

// Default returns the shared Decoder with default options.
func Default() *Decoder {
	defaultOnce.Do(func() { defaultDecoder = New() })
	return defaultDecoder
}

// Decode renders msg, encoded in cs, to w with the default Decoder.
func Decode(w io.Writer, msg []byte, cs codeset.Codeset) error {
	return Default().Decode(w, msg, cs)
}

// BufferSize returns the size of the working buffer given to converters.
func (d *Decoder) BufferSize() int { return d.size }

// Decode renders msg, encoded in cs, to w as UTF-8.
//
// Bytes that cannot be decoded are written as escape tokens. If no converter
// exists for cs, every byte is escaped. The returned error is always one
// reported by w; it is returned unmodified and stops the decode.
func (d *Decoder) Decode(w io.Writer, msg []byte, cs codeset.Codeset) error {
	if cs.IsCanonical() {
		return d.decodeUTF8(w, msg)
	}

	conv, err := Open(cs, d.resolver, d.size)
	if err != nil {
		d.logger().Debug("no converter for codeset, escaping message",
			zap.String("codeset", cs.String()),
			zap.Int("bytes", len(msg)),
			zap.Error(err),
		)
		return WriteEscaped(w, msg)
	}
	defer conv.Close()

	escaped := 0
	rest := msg
	for len(rest) > 0 {
		n, out, status := conv.Feed(rest)
		if len(out) > 0 {
			if _, err := w.Write(out); err != nil {
				return err
			}
		}
		rest = rest[n:]

		if status == BufferFull && n == 0 {
			// The converter is stuck; skip the byte rather than loop.
			status = InvalidByte
		}
		switch status {
		case Complete, BufferFull:
		case InvalidByte:
			if err := WriteEscaped(w, rest[:1]); err != nil {
				return err
			}
			rest = rest[1:]
			escaped++
		}
	}

	if escaped > 0 {
		d.logger().Debug("escaped undecodable bytes",
			zap.String("codeset", cs.String()),
			zap.Int("escaped", escaped),
			zap.Int("bytes", len(msg)),
		)
	}
	return nil
}

// decodeUTF8 writes valid runs of msg verbatim and escapes each byte of an
// invalid run.
func (d *Decoder) decodeUTF8(w io.Writer, msg []byte) error {
	escaped := 0
	for len(msg) > 0 {
		i := validPrefix(msg)
		if i > 0 {
			if _, err := w.Write(msg[:i]); err != nil {
				return err
			}
			msg = msg[i:]
		}

		j := invalidPrefix(msg)
		if j > 0 {
			if err := WriteEscaped(w, msg[:j]); err != nil {
				return err
			}
			msg = msg[j:]
			escaped += j
		}
	}

	if escaped > 0 {
		d.logger().Debug("escaped invalid UTF-8",
			zap.Int("escaped", escaped),
		)
	}
	return nil
}

// validPrefix returns the length of the longest valid UTF-8 prefix of p.
func validPrefix(p []byte) int {
	i := 0
	for i < len(p) {
		if p[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		i += size
	}
	return i
}

// invalidPrefix returns the number of leading bytes of p that do not start a
// valid UTF-8 sequence.
func invalidPrefix(p []byte) int {
	i := 0
	for i < len(p) {
		r, size := utf8.DecodeRune(p[i:])
		if r != utf8.RuneError || size != 1 {
			break
		}
		i++
	}
	return i
}

func (d *Decoder) logger() *zap.Logger {
	if d.log != nil {
		return d.log
	}
	return Logger()
}
