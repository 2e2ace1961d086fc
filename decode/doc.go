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

/*
Package decode renders operating system error messages as valid UTF-8.

Messages come from the OS in the narrow encoding of the current locale. The
decoder converts them to UTF-8 and never fails because of the bytes it is
given: every byte that cannot be decoded is written as a four character
escape token "\xNN" (two lowercase hex digits) and conversion resumes right
after it. The only error a Decode call returns is the one reported by the
destination io.Writer.

Three paths are taken, depending on the codeset:

  - codeset.Canonical ("UTF-8", exact match): valid runs are written as-is
    and every byte of an invalid run is escaped;
  - a codeset the resolver knows: bytes are fed through a Converter that
    works in a bounded buffer and reports Complete, BufferFull or
    InvalidByte after each step;
  - an unknown codeset: every byte is escaped.

Basic usage:

	var sb strings.Builder
	if err := decode.Decode(&sb, raw, "EUC-JP"); err != nil {
		return err // sink failure only
	}

A Decoder is immutable and safe for concurrent use. Converters are not; one
is opened per Decode call and closed before it returns.
*/
package decode
