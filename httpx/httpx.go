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

// Package httpx writes errno.Errno values as JSON HTTP error responses.
//
// The body is a google.rpc.Status in its canonical protobuf JSON form, the
// same shape gRPC transcoding gateways produce, with an ErrorInfo detail
// holding the raw code.
package httpx

import (
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/errno"
	"dirpx.dev/errno/adapter"
)

// Writer is a thin adapter that knows how to turn an errno.Errno into an
// HTTP response.
type Writer struct {
	// Renderer renders the message. nil means errno.Default().
	Renderer *errno.Renderer

	// HTTPStatus is the response status. Zero means 500.
	HTTPStatus int
}

// Write serializes the google.rpc.Status for e and writes it to rw. The
// returned error comes from marshaling or from rw.
func (w Writer) Write(rw http.ResponseWriter, e errno.Errno) error {
	status := w.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}

	// protojson, not encoding/json: Any details need their @type field.
	b, err := protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}.Marshal(adapter.ToStatus(e, w.Renderer))
	if err != nil {
		return err
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set("X-Content-Type-Options", "nosniff")
	rw.WriteHeader(status)
	_, err = rw.Write(b)
	return err
}
