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

package codeset

import "strconv"

// defaultAliases rewrites codeset spellings reported by glibc, the BSDs,
// macOS and Solaris that are not registered IANA names. Keys are normalized
// (see Normalize); targets are IANA names.
var defaultAliases = func() map[string]string {
	m := map[string]string{
		// EUC family (BSD / macOS spellings).
		"eucjp": "EUC-JP",
		"ujis":  "EUC-JP",
		"euckr": "EUC-KR",
		"euccn": "GBK",

		// Shift JIS.
		"sjis":  "Shift_JIS",
		"pck":   "Shift_JIS",
		"cp932": "Shift_JIS",

		// Chinese / Korean code pages.
		"cp936":      "GBK",
		"cp949":      "EUC-KR",
		"cp950":      "Big5",
		"big5hkscs":  "Big5",
		"big5-hkscs": "Big5",

		// Cyrillic.
		"koi8r":   "KOI8-R",
		"koi8u":   "KOI8-U",
		"cp866":   "IBM866",
		"ibm-866": "IBM866",

		// Thai.
		"tis620": "TIS-620",

		// ASCII as named by Solaris and a few minimal C libraries.
		"646":   "US-ASCII",
		"ascii": "US-ASCII",

		// UTF-8 spellings that miss the exact fast path.
		"utf8": "UTF-8",
	}

	// ISO8859-N (BSD) and ISO_8859-N (some glibc builds) for every part.
	for n := 1; n <= 16; n++ {
		target := "ISO-8859-" + strconv.Itoa(n)
		m["iso8859-"+strconv.Itoa(n)] = target
		m["iso_8859-"+strconv.Itoa(n)] = target
	}

	// CP125x as reported by Windows-derived environments (MSYS, Cygwin).
	for n := 1250; n <= 1258; n++ {
		m["cp"+strconv.Itoa(n)] = "windows-" + strconv.Itoa(n)
	}
	return m
}()
