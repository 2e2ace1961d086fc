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

// Package code provides parsing, normalization and formatting for the numeric
// error codes carried by errno.Errno.
//
// A code is the raw, platform-defined number the operating system reports as
// its last error (errno on Unix, GetLastError on Windows). The package does
// not attach any meaning to the number; it only converts between the number
// and its textual forms:
//
//   - decimal, with an optional sign ("13", "-5");
//   - hexadecimal bit pattern ("0x0d", "0xFFFFFFFF");
//   - symbolic name where the platform knows one ("EACCES").
//
// It also owns the fixed fallback text used when the operating system has no
// message for a code: "error 0x" followed by at least four lowercase hex
// digits, e.g. "error 0x0000".
package code
