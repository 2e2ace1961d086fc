//go:build !windows && !(cgo && unix)

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
	"strconv"
	"syscall"

	"dirpx.dev/errno/codeset"
)

// message reads the table compiled into package syscall. Its messages are
// ASCII, so the codeset is always UTF-8.
func message(code int32) Message {
	text := syscall.Errno(uint32(code)).Error()
	// syscall spells "no entry" as "errno N".
	if text == "errno "+strconv.Itoa(int(uint32(code))) {
		return Message{Codeset: codeset.Canonical}
	}
	return Message{Text: Trim([]byte(text)), Codeset: codeset.Canonical}
}

func currentCodeset() codeset.Codeset { return codeset.Canonical }

func setLocale(string) (string, error) { return "", ErrLocaleUnsupported }
