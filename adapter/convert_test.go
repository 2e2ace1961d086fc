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

package adapter

import (
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"

	"dirpx.dev/errno"
	"dirpx.dev/errno/codeset"
	"dirpx.dev/errno/sysmsg"
)

func TestToErrorInfo(t *testing.T) {
	info := ToErrorInfo(errno.Errno(-1))
	if info.Reason != Reason || info.Domain != Domain {
		t.Fatalf("ToErrorInfo() identity = %q/%q", info.Reason, info.Domain)
	}
	if info.Metadata[MetaErrno] != "-1" || info.Metadata[MetaHex] != "0xffffffff" {
		t.Fatalf("ToErrorInfo() metadata = %v", info.Metadata)
	}
	if _, ok := info.Metadata[MetaName]; ok {
		t.Fatal("no platform names -1")
	}
}

func TestToStatus(t *testing.T) {
	r := errno.NewRenderer(errno.WithSourceOption(sysmsg.Static{
		Codeset:  codeset.Canonical,
		Messages: map[int32]string{13: "Permission denied"},
	}))

	st := ToStatus(13, r)
	if codes.Code(st.Code) != codes.Unknown {
		t.Fatalf("ToStatus() code = %v, want Unknown", codes.Code(st.Code))
	}
	if st.Message != "Permission denied" {
		t.Fatalf("ToStatus() message = %q", st.Message)
	}
	if len(st.Details) != 1 {
		t.Fatalf("ToStatus() details = %d, want 1", len(st.Details))
	}

	var info errdetails.ErrorInfo
	if err := st.Details[0].UnmarshalTo(&info); err != nil {
		t.Fatalf("detail is not ErrorInfo: %v", err)
	}
	if e, ok := FromErrorInfo(&info); !ok || e != 13 {
		t.Fatalf("FromErrorInfo() = %d, %v", e, ok)
	}
}

func TestFromErrorInfo_Foreign(t *testing.T) {
	tests := []*errdetails.ErrorInfo{
		nil,
		{Reason: "OTHER", Domain: Domain, Metadata: map[string]string{MetaErrno: "1"}},
		{Reason: Reason, Domain: "example.com", Metadata: map[string]string{MetaErrno: "1"}},
		{Reason: Reason, Domain: Domain, Metadata: map[string]string{MetaErrno: "x"}},
		{Reason: Reason, Domain: Domain},
	}
	for i, info := range tests {
		if _, ok := FromErrorInfo(info); ok {
			t.Fatalf("case %d: FromErrorInfo() accepted a foreign ErrorInfo", i)
		}
	}
}
