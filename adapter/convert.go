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

// Package adapter converts errno.Errno values into the google.rpc wire types
// shared by the gRPC and HTTP integrations.
//
// The conversion carries no semantic mapping: every Errno becomes status code
// UNKNOWN with the rendered message, and the raw number travels in a
// google.rpc.ErrorInfo detail so that clients can recover it exactly.
package adapter

import (
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/errno"
)

const (
	// Reason is the ErrorInfo reason for every OS error.
	Reason = "OS_ERROR"

	// Domain is the ErrorInfo domain identifying this module.
	Domain = "errno"

	// Metadata keys.
	MetaErrno = "errno"
	MetaHex   = "hex"
	MetaName  = "name"
)

// ToErrorInfo describes e as a google.rpc.ErrorInfo. The "name" entry is only
// present when the platform knows a symbolic name.
func ToErrorInfo(e errno.Errno) *errdetails.ErrorInfo {
	md := map[string]string{
		MetaErrno: strconv.FormatInt(int64(e), 10),
		MetaHex:   e.Hex(),
	}
	if name := e.Name(); name != "" {
		md[MetaName] = name
	}
	return &errdetails.ErrorInfo{
		Reason:   Reason,
		Domain:   Domain,
		Metadata: md,
	}
}

// ToStatus converts e into a google.rpc.Status rendered with r (the default
// Renderer when nil). If the detail cannot be packed the status is returned
// without it.
func ToStatus(e errno.Errno, r *errno.Renderer) *spb.Status {
	if r == nil {
		r = errno.Default()
	}
	st := &spb.Status{
		Code:    int32(codes.Unknown),
		Message: r.Message(e),
	}
	if detail, err := anypb.New(ToErrorInfo(e)); err == nil {
		st.Details = []*anypb.Any{detail}
	}
	return st
}

// FromErrorInfo recovers the Errno carried by info. It reports false for
// ErrorInfo values produced by anything else.
func FromErrorInfo(info *errdetails.ErrorInfo) (errno.Errno, bool) {
	if info == nil || info.GetDomain() != Domain || info.GetReason() != Reason {
		return 0, false
	}
	v, err := strconv.ParseInt(info.GetMetadata()[MetaErrno], 10, 32)
	if err != nil {
		return 0, false
	}
	return errno.Errno(v), true
}
