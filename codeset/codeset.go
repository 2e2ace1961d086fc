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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Codeset is the name of a narrow-character encoding as reported by the
// operating system, e.g. "UTF-8" or "EUC-JP".
//
// The value is kept exactly as reported (no case folding) so that the fast
// path comparison against Canonical stays a byte comparison. Use Normalize to
// build lookup keys.
type Codeset string

// Canonical is the target text encoding every rendered message ends up in.
// A source codeset equal to it takes the validating fast path.
const Canonical Codeset = "UTF-8"

// Empty is the zero-value codeset, meaning "not reported".
var Empty Codeset = ""

// MaxLength bounds the length of a codeset name accepted by Parse. IANA caps
// names at 40 characters; vendor spellings stay well below 64.
const MaxLength = 64

const (
	// nameFmt is the pattern a codeset name must match.
	//
	// It covers IANA names and the vendor spellings seen from nl_langinfo:
	// letters, digits, and the punctuation "._:+()-".
	nameFmt = `^[A-Za-z0-9][A-Za-z0-9._:+()-]*$`
)

var nameRe = regexp.MustCompile(nameFmt)

var (
	// ErrCodesetInvalid is returned when a value is not a plausible codeset
	// name.
	ErrCodesetInvalid = errors.New("errno/codeset: invalid codeset name")
)

// Ensure Codeset implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Codeset)(nil)
	_ encoding.TextUnmarshaler = (*Codeset)(nil)
)

// Of builds a Codeset from raw bytes as returned by a C API. Everything from
// the first NUL byte on is dropped, so both "UTF-8" and "UTF-8\x00" yield
// Canonical.
func Of(raw []byte) Codeset {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return Codeset(raw)
}

// IsCanonical reports whether c is exactly Canonical. The comparison is
// byte-for-byte; "utf-8" or "UTF8" go through the converter instead.
func (c Codeset) IsCanonical() bool {
	return c == Canonical
}

// Normalize brings a codeset name into lookup-key form:
//
//   - trims surrounding spaces and NUL bytes;
//   - lowercases the value.
//
// It does NOT guarantee validity; callers should still call Parse or Validate.
func Normalize(s string) string {
	s = strings.Trim(s, " \t\r\n\x00")
	return strings.ToLower(s)
}

// Parse trims and validates a user-provided codeset name. Case is preserved.
//
// The empty string yields Empty without error: an absent codeset is a valid
// configuration value meaning "use what the operating system reports".
func Parse(s string) (Codeset, error) {
	s = strings.Trim(s, " \t\r\n\x00")
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Codeset(s), nil
}

// Validate checks whether c is a plausible codeset name. Empty is valid.
func Validate(c Codeset) error {
	if c == Empty {
		return nil
	}
	return validate(string(c))
}

// String returns the codeset name as reported.
func (c Codeset) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Codeset) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// An empty or whitespace-only input produces Empty.
func (c *Codeset) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if len(s) > MaxLength || !nameRe.MatchString(s) {
		return ErrCodesetInvalid
	}
	return nil
}
