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

package sysmsg

import (
	"bytes"

	"dirpx.dev/errno/codeset"
)

// trailingSpace lists the bytes trimmed from the end of every message.
const trailingSpace = " \t\r\n"

// Message is a raw OS error message.
type Message struct {
	// Text holds the message bytes in Codeset. Empty means the OS has no
	// message for the code.
	Text []byte

	// Codeset names the encoding of Text as reported at acquisition time.
	Codeset codeset.Codeset
}

// Empty reports whether the OS had no message.
func (m Message) Empty() bool { return len(m.Text) == 0 }

// Source produces the OS message for an error code.
//
// Message must succeed for every code. The codeset is looked up on every
// call; implementations must not cache it, since the locale may change
// between calls.
type Source interface {
	Message(code int32) Message
}

// Func adapts a plain function to Source.
type Func func(code int32) Message

// Message calls f.
func (f Func) Message(code int32) Message { return f(code) }

// Static is a Source backed by a fixed message table, all in one codeset.
// Codes missing from the table have no message.
type Static struct {
	Codeset  codeset.Codeset
	Messages map[int32]string
}

// Message implements Source.
func (s Static) Message(code int32) Message {
	text, ok := s.Messages[code]
	if !ok {
		return Message{Codeset: s.Codeset}
	}
	return Message{Text: Trim([]byte(text)), Codeset: s.Codeset}
}

// System returns the platform Source. It is stateless and safe for
// concurrent use, although the underlying C calls are serialized.
func System() Source { return systemSource{} }

type systemSource struct{}

func (systemSource) Message(code int32) Message { return message(code) }

// CurrentCodeset returns the codeset the platform Source currently reports.
func CurrentCodeset() codeset.Codeset { return currentCodeset() }

// Last returns the platform's last error code.
func Last() int32 { return last() }

// SetLast sets the platform's last error code.
func SetLast(code int32) { setLast(code) }

// Trim drops trailing spaces, tabs and line breaks. The result aliases p.
//
// Only those ASCII bytes are removed: Trim runs before decoding and cannot
// tell a non-ASCII space (NBSP, U+3000) from the tail of a multibyte
// character. C library message tables do not end in such characters.
func Trim(p []byte) []byte {
	return bytes.TrimRight(p, trailingSpace)
}
