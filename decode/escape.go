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

import "io"

const hexDigits = "0123456789abcdef"

// TokenLen is the length of one escape token.
const TokenLen = 4

// EscapeByte returns the escape token for b, e.g. `\x8e`.
func EscapeByte(b byte) string {
	return string(AppendEscaped(make([]byte, 0, TokenLen), b))
}

// AppendEscaped appends the escape tokens for every byte of p to dst.
func AppendEscaped(dst []byte, p ...byte) []byte {
	for _, b := range p {
		dst = append(dst, '\\', 'x', hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return dst
}

// WriteEscaped writes one escape token per byte of p to w in a single Write.
// Empty p writes nothing.
func WriteEscaped(w io.Writer, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	_, err := w.Write(AppendEscaped(make([]byte, 0, len(p)*TokenLen), p...))
	return err
}
