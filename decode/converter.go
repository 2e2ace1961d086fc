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
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"dirpx.dev/errno/codeset"
)

// Status is the outcome of one Feed call.
type Status int

const (
	// Complete means the whole input was converted.
	Complete Status = iota

	// BufferFull means the working buffer filled up before the input was
	// used up. Feed again with the remaining input.
	BufferFull

	// InvalidByte means the byte at the returned offset cannot be decoded.
	// The caller escapes it and feeds the input that follows it.
	InvalidByte
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Complete:
		return "complete"
	case BufferFull:
		return "buffer-full"
	case InvalidByte:
		return "invalid-byte"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// errNoProgress marks a transformer that accepted a complete input without
// consuming any of it.
var errNoProgress = errors.New("errno/decode: no progress")

// replacementChar is U+FFFD in UTF-8, what x/text decoders emit for input
// they cannot decode.
var replacementChar = []byte("\uFFFD")

// Converter is an open, stateful conversion from one source codeset to UTF-8.
//
// It converts into a bounded working buffer owned by the converter, so the
// bytes returned by Feed are only valid until the next call. A Converter is
// not safe for concurrent use and must be closed when no longer needed.
type Converter struct {
	t   transform.Transformer
	buf []byte

	// rep is the source encoding of U+FFFD, or nil when the source codeset
	// cannot represent it. Output U+FFFD decoded from these bytes is genuine.
	rep []byte

	closed bool
}

// Open resolves cs with r and opens a converter with a working buffer of
// size bytes. It fails when the codeset cannot be resolved.
func Open(cs codeset.Codeset, r codeset.Resolver, size int) (*Converter, error) {
	if r == nil {
		r = codeset.DefaultResolver()
	}
	enc, err := r.Resolve(cs)
	if err != nil {
		return nil, err
	}
	return NewConverter(enc, size), nil
}

// NewConverter opens a converter decoding enc. size is raised to
// MinBufferSize if smaller.
func NewConverter(enc encoding.Encoding, size int) *Converter {
	if size < MinBufferSize {
		size = MinBufferSize
	}
	rep, err := enc.NewEncoder().Bytes(replacementChar)
	if err != nil {
		rep = nil
	}
	return &Converter{
		t:   enc.NewDecoder(),
		buf: make([]byte, size),
		rep: rep,
	}
}

// Feed converts as much of src as fits into the working buffer.
//
// consumed is the number of leading bytes of src that were converted into
// produced. With status InvalidByte, src[consumed] is the undecodable byte;
// it has not been counted. With Complete, consumed equals len(src).
//
// Feed always makes progress on non-empty input: it either consumes bytes or
// reports InvalidByte. A buffer too small for a single character is grown.
func (c *Converter) Feed(src []byte) (consumed int, produced []byte, status Status) {
	if len(src) == 0 {
		return 0, nil, Complete
	}
	if c.closed {
		return 0, nil, InvalidByte
	}

	n := 0
	for consumed < len(src) {
		nDst, nSrc, err := c.next(c.buf[n:], src[consumed:])
		if nSrc > 0 && c.replaced(c.buf[n:n+nDst], src[consumed:consumed+nSrc]) {
			return consumed, c.buf[:n], InvalidByte
		}
		consumed += nSrc
		n += nDst

		switch {
		case err == nil:
		case errors.Is(err, transform.ErrShortSrc) && nSrc > 0:
		case errors.Is(err, transform.ErrShortDst):
			if n == 0 && nSrc == 0 {
				c.grow()
				continue
			}
			return consumed, c.buf[:n], BufferFull
		default:
			return consumed, c.buf[:n], InvalidByte
		}
	}
	return consumed, c.buf[:n], Complete
}

// next converts the shortest prefix of src that lets the transformer make
// progress, which is one source character for the decoders in x/text. This
// is what pins an invalid character to its exact offset.
func (c *Converter) next(dst, src []byte) (nDst, nSrc int, err error) {
	for end := 1; end <= len(src); end++ {
		atEOF := end == len(src)
		nDst, nSrc, err = c.t.Transform(dst, src[:end], atEOF)
		if nSrc > 0 || nDst > 0 {
			return nDst, nSrc, err
		}
		switch {
		case errors.Is(err, transform.ErrShortSrc) && !atEOF:
			continue
		case err == nil && !atEOF:
			continue
		case err == nil:
			return 0, 0, errNoProgress
		default:
			return 0, 0, err
		}
	}
	return 0, 0, errNoProgress
}

// replaced reports whether out holds a U+FFFD that in did not spell.
func (c *Converter) replaced(out, in []byte) bool {
	if !bytes.Contains(out, replacementChar) {
		return false
	}
	return len(c.rep) == 0 || !bytes.HasSuffix(in, c.rep)
}

func (c *Converter) grow() {
	c.buf = make([]byte, 2*len(c.buf))
}

// Close releases the transformer and the working buffer. It is idempotent.
func (c *Converter) Close() error {
	if c.closed {
		return nil
	}
	c.t.Reset()
	c.t = nil
	c.buf = nil
	c.rep = nil
	c.closed = true
	return nil
}
