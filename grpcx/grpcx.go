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

// Package grpcx carries errno.Errno values across gRPC.
//
// On the server, UnaryServerInterceptor replaces handler errors that wrap an
// Errno with a status whose message is the rendered OS message and whose
// details hold a google.rpc.ErrorInfo with the raw code. On the client,
// ExtractErrno recovers the code from such a status.
package grpcx

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/errno"
	"dirpx.dev/errno/adapter"
)

// Option configures the interceptor.
type Option func(*options)

type options struct {
	renderer *errno.Renderer
	log      *zap.Logger
}

// WithRenderer renders messages with r instead of errno.Default().
func WithRenderer(r *errno.Renderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithLogger logs each converted error at debug level. A nil l is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// errors carrying an errno.Errno into statuses with an ErrorInfo detail.
// Other errors are returned as-is.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		e, ok := errno.FromError(err)
		if !ok {
			// Not ours; return as-is.
			return nil, err
		}

		o.log.Debug("converting OS error to status",
			zap.String("method", info.FullMethod),
			zap.Int32("errno", int32(e)),
			zap.Error(err),
		)
		return nil, Status(e, o.renderer).Err()
	}
}

// Status builds the gRPC status for e. A nil r uses errno.Default().
func Status(e errno.Errno, r *errno.Renderer) *gstatus.Status {
	return gstatus.FromProto(adapter.ToStatus(e, r))
}

// ExtractErrno pulls the errno.Errno out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractErrno(err error) (errno.Errno, bool) {
	if err == nil {
		return 0, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return 0, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			if e, ok := adapter.FromErrorInfo(info); ok {
				return e, true
			}
		}
	}
	return 0, false
}
