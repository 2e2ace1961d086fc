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
	"os"
	"strings"

	"dirpx.dev/errno/codeset"
)

var (
	// ErrLocaleUnsupported is returned by SetLocale on platforms whose
	// message source does not follow the C locale.
	ErrLocaleUnsupported = errors.New("errno/sysmsg: locale selection not supported on this platform")

	// ErrLocaleUnavailable is returned by SetLocale when the C library
	// rejects the locale name.
	ErrLocaleUnavailable = errors.New("errno/sysmsg: locale not available")
)

// localeVars are consulted in order; the first non-empty one wins.
var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// SetLocale selects the C locale for all categories and returns the name the
// C library settled on. The empty name selects the locale configured in the
// environment, as C programs do at startup.
//
// The locale is process-wide state shared with any C code in the program.
func SetLocale(name string) (string, error) {
	return setLocale(name)
}

// LocaleFromEnv returns the locale that governs messages according to the
// POSIX variables LC_ALL, LC_MESSAGES and LANG. getenv defaults to
// os.Getenv.
func LocaleFromEnv(getenv func(string) string) string {
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, name := range localeVars {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// CodesetFromLocale extracts the codeset part of a locale name:
// "ja_JP.EUC-JP" and "uk_UA.KOI8-U@euro" yield "EUC-JP" and "KOI8-U". A
// locale without one, such as "C" or "en_US", yields codeset.Empty.
func CodesetFromLocale(locale string) codeset.Codeset {
	_, rest, ok := strings.Cut(locale, ".")
	if !ok {
		return codeset.Empty
	}
	if i := strings.IndexByte(rest, '@'); i >= 0 {
		rest = rest[:i]
	}
	cs, err := codeset.Parse(rest)
	if err != nil {
		return codeset.Empty
	}
	return cs
}
