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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/japanese"

	"dirpx.dev/errno/internal/app"
	"dirpx.dev/errno/internal/config"
)

// exec runs the command with an isolated config location.
func exec(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_RendersCodes(t *testing.T) {
	code, out, stderr := exec(t, "", "13", "0x0d")
	if code != app.ExitOK {
		t.Fatalf("run() code=%d stderr=%s", code, stderr)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 || lines[0] == "" || lines[0] != lines[1] {
		t.Fatalf("output = %q", out)
	}
}

func TestRun_JSON(t *testing.T) {
	code, out, stderr := exec(t, "", "--json", "0x0d")
	if code != app.ExitOK {
		t.Fatalf("run() code=%d stderr=%s", code, stderr)
	}
	var rep app.Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if rep.Code != 13 || rep.Hex != "0x000d" || rep.Message == "" {
		t.Fatalf("report = %+v", rep)
	}
}

func TestRun_InvalidCodeIsUsageError(t *testing.T) {
	code, _, stderr := exec(t, "", "not-a-code")
	if code != app.ExitUsage {
		t.Fatalf("run() code=%d want=%d", code, app.ExitUsage)
	}
	if !strings.Contains(stderr, "invalid code") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestRun_DecodeStdin(t *testing.T) {
	raw, _ := japanese.EUCJP.NewEncoder().String("許可がありません")
	code, out, stderr := exec(t, raw+"\xff", "decode", "--codeset", "EUC-JP")
	if code != app.ExitOK {
		t.Fatalf("run() code=%d stderr=%s", code, stderr)
	}
	if out != "許可がありません\\xff\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestRun_DecodeFileUnknownCodeset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.bin")
	if err := os.WriteFile(path, []byte("ab"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	code, out, stderr := exec(t, "", "decode", "--codeset", "x-unknown", path)
	if code != app.ExitOK {
		t.Fatalf("run() code=%d stderr=%s", code, stderr)
	}
	if out != `\x61\x62`+"\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestRun_DecodeMissingFile(t *testing.T) {
	code, _, _ := exec(t, "", "decode", filepath.Join(t.TempDir(), "absent"))
	if code != app.ExitIO {
		t.Fatalf("run() code=%d want=%d", code, app.ExitIO)
	}
}

func TestRun_Codeset(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"locale from LC_ALL", map[string]string{"LC_ALL": "C", "LC_MESSAGES": "", "LANG": ""}, "KOI8-U\tconvert\tC\n"},
		{"locale from LANG", map[string]string{"LC_ALL": "", "LC_MESSAGES": "", "LANG": "C"}, "KOI8-U\tconvert\tC\n"},
		{"no locale", map[string]string{"LC_ALL": "", "LC_MESSAGES": "", "LANG": ""}, "KOI8-U\tconvert\t-\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			code, out, stderr := exec(t, "", "codeset", "--codeset", "KOI8-U")
			if code != app.ExitOK {
				t.Fatalf("run() code=%d stderr=%s", code, stderr)
			}
			if out != tt.want {
				t.Fatalf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "errno.yaml")
	cfg := config.Default()
	cfg.Format = config.FormatJSON
	if err := config.Write(path, cfg); err != nil {
		t.Fatalf("config.Write: %v", err)
	}

	code, out, stderr := exec(t, "", "--config", path, "2")
	if code != app.ExitOK {
		t.Fatalf("run() code=%d stderr=%s", code, stderr)
	}
	if !strings.HasPrefix(out, `{"code":2,`) {
		t.Fatalf("output = %q", out)
	}
}

func TestRun_BadConfigIsUsageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errno.yaml")
	if err := os.WriteFile(path, []byte("format: xml\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if code, _, _ := exec(t, "", "--config", path, "2"); code != app.ExitUsage {
		t.Fatalf("run() code=%d want=%d", code, app.ExitUsage)
	}
	if code, _, _ := exec(t, "", "--buffer-size", "1", "2"); code != app.ExitUsage {
		t.Fatalf("run() with tiny buffer code=%d want=%d", code, app.ExitUsage)
	}
}

func TestRun_Version(t *testing.T) {
	code, out, _ := exec(t, "", "version")
	if code != app.ExitOK || out != "errno dev\n" {
		t.Fatalf("version = %d, %q", code, out)
	}
}
