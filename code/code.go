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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Code is a raw platform error code.
//
// It is defined as a separate type (not just int32) so that parsing and text
// marshaling live in one place and callers cannot accidentally mix it with
// unrelated integers.
type Code int32

const (
	// nameFmt is the pattern a symbolic error name must match before we try
	// to look it up, e.g. "EACCES" or "ENAMETOOLONG".
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Z] - first character must be an uppercase ASCII letter;
	//	[A-Z0-9_]{1,31} - the remaining characters are uppercase letters,
	//	                  digits or underscore; 2..32 characters in total;
	//	$ - end of string.
	nameFmt = `^[A-Z][A-Z0-9_]{1,31}$`

	// hexPrefix is the prefix of the hexadecimal form after Normalize.
	hexPrefix = "0X"
)

var nameRe = regexp.MustCompile(nameFmt)

var (
	// ErrCodeInvalid is returned when a value cannot be parsed as an error
	// code in any of the supported forms.
	ErrCodeInvalid = errors.New("errno/code: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse takes a user-provided string, normalizes it and converts it to a
// Code.
//
// Accepted forms, tried in this order:
//
//   - "0x" / "0X" followed by 1..8 hex digits, read as a uint32 bit pattern,
//     so "0xFFFFFFFF" yields -1;
//   - a signed decimal that fits in 32 bits;
//   - a symbolic name known to the platform (Unix only).
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if s == "" {
		return 0, ErrCodeInvalid
	}

	if strings.HasPrefix(s, hexPrefix) {
		v, err := strconv.ParseUint(s[len(hexPrefix):], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrCodeInvalid, s)
		}
		return Code(int32(uint32(v))), nil
	}

	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return Code(v), nil
	}

	if nameRe.MatchString(s) {
		if c, ok := lookup(s); ok {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrCodeInvalid, s)
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level values in var blocks and tests.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize trims surrounding spaces and uppercases the value, which is the
// canonical spelling for both symbolic names and the hex prefix.
//
// It does NOT guarantee that the result parses; callers should still call
// Parse.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	return s
}

// Validate reports whether s is accepted by Parse.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}

// Name returns the platform's symbolic name for c (e.g. "EACCES"), or an
// empty string when the platform has none.
func Name(c Code) string {
	return name(c)
}

// Fallback returns the fixed text rendered when the operating system has no
// message for c: "error 0x" followed by the code as at least four lowercase
// hex digits of its uint32 bit pattern.
func Fallback(c Code) string {
	return "error " + c.Hex()
}

// String returns the decimal representation of the code.
func (c Code) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// Hex returns the code as "0x" plus at least four lowercase hex digits of its
// uint32 bit pattern, e.g. "0x000d" or "0xffffffff".
func (c Code) Hex() string {
	return fmt.Sprintf("0x%04x", uint32(c))
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the decimal form, which round-trips through Parse on
// every platform.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It accepts any form understood by Parse.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
