//go:build cgo && linux

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

package errno

import (
	"strings"
	"syscall"
	"testing"

	"dirpx.dev/errno/sysmsg"
)

func TestRender_LocalizedMessages(t *testing.T) {
	defer sysmsg.SetLocale("C")

	tests := []struct {
		locale string
		want   string
	}{
		{"en_US.UTF-8", "Permission denied"},
		{"ja_JP.EUC-JP", "許可がありません"},
		{"uk_UA.KOI8-U", "Відмовлено у доступі"},
		{"uk_UA.UTF-8", "Відмовлено у доступі"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if _, err := sysmsg.SetLocale(tt.locale); err != nil {
				t.Skipf("locale not installed: %v", err)
			}
			if got := Errno(syscall.EACCES).Error(); got != tt.want {
				t.Fatalf("Error() under %s = %q, want %q", tt.locale, got, tt.want)
			}
		})
	}
}

func TestRender_CLocaleIsASCII(t *testing.T) {
	if _, err := sysmsg.SetLocale("C"); err != nil {
		t.Fatalf("SetLocale(C): %v", err)
	}
	got := Errno(syscall.ENOENT).Error()
	if got == "" || strings.Contains(got, `\x`) {
		t.Fatalf("Error() in C locale = %q", got)
	}
}
