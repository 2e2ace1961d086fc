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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/errno"
	"dirpx.dev/errno/codeset"
	"dirpx.dev/errno/sysmsg"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/files.v1.Files/Open"}

func renderer() *errno.Renderer {
	return errno.NewRenderer(errno.WithSourceOption(sysmsg.Static{
		Codeset:  codeset.Canonical,
		Messages: map[int32]string{2: "No such file or directory"},
	}))
}

func call(t *testing.T, herr error) (any, error) {
	t.Helper()
	icpt := UnaryServerInterceptor(WithRenderer(renderer()))
	return icpt(context.Background(), "req", info, func(context.Context, any) (any, error) {
		if herr != nil {
			return nil, herr
		}
		return "ok", nil
	})
}

func TestInterceptor_ConvertsErrno(t *testing.T) {
	_, err := call(t, fmt.Errorf("open /etc/app.yaml: %w", errno.Errno(2)))

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("error is not a status: %v", err)
	}
	if st.Code() != codes.Unknown {
		t.Fatalf("code = %v, want Unknown", st.Code())
	}
	if st.Message() != "No such file or directory" {
		t.Fatalf("message = %q", st.Message())
	}
	if e, ok := ExtractErrno(err); !ok || e != 2 {
		t.Fatalf("ExtractErrno() = %d, %v", e, ok)
	}
}

func TestInterceptor_LoggerOption(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tests := []struct {
		name    string
		log     *zap.Logger
		entries int
	}{
		{"nil logger ignored", nil, 0},
		{"observed", zap.New(core), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icpt := UnaryServerInterceptor(WithRenderer(renderer()), WithLogger(tt.log))
			_, err := icpt(context.Background(), "req", info, func(context.Context, any) (any, error) {
				return nil, fmt.Errorf("open: %w", errno.Errno(2))
			})
			if e, ok := ExtractErrno(err); !ok || e != 2 {
				t.Fatalf("ExtractErrno() = %d, %v", e, ok)
			}
			if got := logs.TakeAll(); len(got) != tt.entries {
				t.Fatalf("log entries = %d, want %d", len(got), tt.entries)
			}
		})
	}
}

func TestInterceptor_PassThrough(t *testing.T) {
	resp, err := call(t, nil)
	if err != nil || resp != "ok" {
		t.Fatalf("success path = %v, %v", resp, err)
	}

	plain := errors.New("boom")
	if _, err := call(t, plain); err != plain {
		t.Fatalf("foreign error changed: %v", err)
	}
}

func TestExtractErrno_Absent(t *testing.T) {
	tests := []error{
		nil,
		errors.New("plain"),
		gstatus.Error(codes.NotFound, "no details"),
	}
	for _, err := range tests {
		if _, ok := ExtractErrno(err); ok {
			t.Fatalf("ExtractErrno(%v) reported an errno", err)
		}
	}
}
