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

// Package httpx is the REST surface. It turns HTTP requests into service
// calls and outcome failures into JSON error bodies, with the transport
// status resolved by the shared mapper.
package httpx

import (
	"encoding/json"
	"log"
	"net/http"

	"dirpx.dev/scribe/code"
	"dirpx.dev/scribe/outcome"
	"dirpx.dev/scribe/reason"
)

// Writer renders service results and failures as JSON responses. The HTTP
// status for a failure always comes from the mapper, never from handler
// code.
type Writer struct {
	Mapper outcome.Mapper
}

// Error writes the failure's view with the mapped status. Internal causes
// are logged server-side and never appear in the body.
func (w Writer) Error(rw http.ResponseWriter, f *outcome.Failure) {
	if f == nil {
		return
	}
	st := w.Mapper.Status(f.Code, f.Reason)
	if st.HTTP >= 500 {
		// The descriptor keeps log lines grep-able by code/reason; the
		// cause is the only place the raw error appears.
		d := f.Describe(st)
		log.Printf("internal failure: code=%s reason=%s cause=%v", d.Code, d.Reason, f.Cause)
	}
	w.JSON(rw, st.HTTP, f.View())
}

// JSON writes any payload with the given status.
func (w Writer) JSON(rw http.ResponseWriter, status int, payload any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(rw).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

// decodeJSON decodes a request body strictly: unknown fields and trailing
// garbage are rejected. On failure it returns the malformed-body failure
// for the caller to write.
func decodeJSON(r *http.Request, dst any) *outcome.Failure {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return outcome.E(code.Invalid, "request body is not valid JSON",
			outcome.WithReasonOption(reason.RequestBodyMalformed),
			outcome.WithCauseOption(err),
		)
	}
	return nil
}
