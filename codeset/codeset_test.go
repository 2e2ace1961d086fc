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
	"encoding"
	"testing"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want Codeset
	}{
		{"nul terminated", []byte("UTF-8\x00"), Canonical},
		{"plain", []byte("EUC-JP"), Codeset("EUC-JP")},
		{"garbage after nul", []byte("KOI8-U\x00junk"), Codeset("KOI8-U")},
		{"empty", nil, Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.in); got != tt.want {
				t.Fatalf("Of(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsCanonical_IsExact(t *testing.T) {
	if !Canonical.IsCanonical() {
		t.Fatal("UTF-8 must be canonical")
	}
	for _, c := range []Codeset{"utf-8", "UTF8", "utf8", " UTF-8", "EUC-JP", Empty} {
		if c.IsCanonical() {
			t.Fatalf("%q must not take the fast path", c)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  EUC-JP  ", "euc-jp"},
		{"UTF-8\x00", "utf-8"},
		{"ANSI_X3.4-1968", "ansi_x3.4-1968"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	valid := map[string]Codeset{
		"UTF-8":           "UTF-8",
		"  eucJP ":        "eucJP",
		"ANSI_X3.4-1968":  "ANSI_X3.4-1968",
		"ISO_8859-1:1987": "ISO_8859-1:1987",
		"":                Empty,
		"   ":             Empty,
	}
	for in, want := range valid {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("Parse(%q) = %q, want %q", in, got, want)
		}
	}

	invalid := []string{
		"UTF 8",
		"-leading-dash",
		"utf/8",
		"a23456789012345678901234567890123456789012345678901234567890123456789",
	}
	for _, in := range invalid {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) expected error", in)
		}
	}
}

func TestCodeset_TextRoundTrip(t *testing.T) {
	var c Codeset
	if err := c.UnmarshalText([]byte(" KOI8-U ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "KOI8-U" {
		t.Fatalf("MarshalText() = %q, want KOI8-U", text)
	}

	if _, err := Codeset("bad name").MarshalText(); err == nil {
		t.Fatal("MarshalText() on invalid codeset must return error")
	}
}

func TestCodeset_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Codeset)(nil)
	var _ encoding.TextUnmarshaler = (*Codeset)(nil)
}
