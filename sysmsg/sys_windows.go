//go:build windows

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
	"errors"

	"golang.org/x/sys/windows"

	"dirpx.dev/errno/codeset"
)

const (
	formatFlags = windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS

	// initialBufLen holds nearly every system message; FormatMessage output
	// is capped at 64K characters.
	initialBufLen = 300
	maxBufLen     = 64 << 10
)

// message asks FormatMessage for the text in the user's default language.
// The UTF-16 result is transcoded to UTF-8 here, so the decoder sees the
// canonical codeset. A failing call yields an empty Message.
func message(code int32) Message {
	for size := initialBufLen; size <= maxBufLen; size *= 4 {
		buf := make([]uint16, size)
		n, err := windows.FormatMessage(formatFlags, 0, uint32(code), 0, buf, nil)
		if errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) {
			continue
		}
		if err != nil || n == 0 {
			break
		}
		text := windows.UTF16ToString(buf[:n])
		return Message{Text: Trim([]byte(text)), Codeset: codeset.Canonical}
	}
	return Message{Codeset: codeset.Canonical}
}

func currentCodeset() codeset.Codeset { return codeset.Canonical }

func setLocale(string) (string, error) { return "", ErrLocaleUnsupported }
