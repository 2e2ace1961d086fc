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
	"io"
	"strings"
	"sync/atomic"

	"dirpx.dev/errno/code"
	"dirpx.dev/errno/codeset"
	"dirpx.dev/errno/decode"
	"dirpx.dev/errno/sysmsg"
)

// Renderer turns an Errno into text: it asks a Source for the raw message and
// runs it through a Decoder.
//
// A Renderer is immutable. The WithX methods return a shallow copy, so a
// configured Renderer can be shared between goroutines and specialized
// without affecting other users.
//
// The zero value renders with the system source and the default decoder.
type Renderer struct {
	// source acquires the raw message and its codeset.
	source sysmsg.Source

	// decoder converts the raw message to UTF-8.
	decoder *decode.Decoder

	// codeset, when set, overrides the codeset reported by source.
	codeset codeset.Codeset
}

// NewRenderer returns a Renderer for the system message source and the
// default decoder, with opts applied in order.
//
// Usage:
//
//	r := errno.NewRenderer(
//	    errno.WithCodesetOption("EUC-JP"),
//	    errno.WithDecoderOption(decode.New(decode.WithBufferSize(64))),
//	)
//	_ = r.Render(os.Stderr, errno.Last())
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		source:  sysmsg.System(),
		decoder: decode.Default(),
	}
	for _, opt := range opts {
		r = opt(r)
	}
	return r
}

var defaultRenderer atomic.Pointer[Renderer]

// Default returns the Renderer used by Errno's Error, String, WriteTo and
// Format.
func Default() *Renderer {
	if r := defaultRenderer.Load(); r != nil {
		return r
	}
	r := NewRenderer()
	if defaultRenderer.CompareAndSwap(nil, r) {
		return r
	}
	return defaultRenderer.Load()
}

// SetDefault replaces the default Renderer. nil restores the built-in one.
func SetDefault(r *Renderer) {
	if r == nil {
		r = NewRenderer()
	}
	defaultRenderer.Store(r)
}

// Render writes the message for e to w with the default Renderer.
func Render(w io.Writer, e Errno) error { return Default().Render(w, e) }

// Render writes the message for e to w.
//
// The codeset is taken from the source on every call unless the Renderer
// overrides it. When the source has no message, the fixed text
// "error 0x<hex>" is written instead. Errors come from w only.
func (r *Renderer) Render(w io.Writer, e Errno) error {
	src := r.source
	if src == nil {
		src = sysmsg.System()
	}
	msg := src.Message(int32(e))
	if msg.Empty() {
		_, err := io.WriteString(w, code.Fallback(code.Code(e)))
		return err
	}

	cs := msg.Codeset
	if r.codeset != codeset.Empty {
		cs = r.codeset
	}
	dec := r.decoder
	if dec == nil {
		dec = decode.Default()
	}
	return dec.Decode(w, msg.Text, cs)
}

// Message returns the rendered message for e.
func (r *Renderer) Message(e Errno) string {
	var sb strings.Builder
	_ = r.Render(&sb, e)
	return sb.String()
}

// WithSource returns a copy of r that reads messages from src.
// A nil src leaves r unchanged.
func (r *Renderer) WithSource(src sysmsg.Source) *Renderer {
	if src == nil {
		return r
	}
	cp := *r
	cp.source = src
	return &cp
}

// WithDecoder returns a copy of r that decodes with d.
// A nil d leaves r unchanged.
func (r *Renderer) WithDecoder(d *decode.Decoder) *Renderer {
	if d == nil {
		return r
	}
	cp := *r
	cp.decoder = d
	return &cp
}

// WithCodeset returns a copy of r that treats every message as encoded in
// cs, whatever the source reports. codeset.Empty restores the reported one.
func (r *Renderer) WithCodeset(cs codeset.Codeset) *Renderer {
	cp := *r
	cp.codeset = cs
	return &cp
}
