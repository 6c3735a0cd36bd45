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

package outcome

// View is a minimal, serializable representation of a failure.
//
// This is *not* the concrete failure type used internally — it is the shape
// that we are comfortable exposing over the wire. Keeping it here lets both
// the REST handlers and the typed procedure handlers share the same struct,
// so a client sees identical bodies regardless of which surface it called.
type View struct {
	// Code is the canonical outcome code, e.g. "invalid", "not_found",
	// "conflict".
	Code string `json:"code"`

	// Reason is the more specific sub-classification, e.g.
	// "user.email.exists", "post.author.unknown".
	// It MAY be empty when the code alone is descriptive enough.
	Reason string `json:"reason,omitempty"`

	// Message is an optional human-friendly message.
	Message string `json:"message,omitempty"`

	// Details is an optional map of additional structured data about the
	// failure (ids, counts, field names). Values must survive JSON encoding.
	Details map[string]any `json:"details,omitempty"`
}

// View returns the transport-friendly snapshot of the failure.
//
// The Cause is deliberately dropped: internal error chains never leave the
// process through this path. Details are passed by reference; the Failure's
// copy-on-write helpers guarantee the map is never mutated after attach.
func (f *Failure) View() View {
	if f == nil {
		return View{}
	}
	return View{
		Code:    string(f.Code),
		Reason:  string(f.Reason),
		Message: f.Message,
		Details: f.Details,
	}
}

// Descriptor is a flat description of a failure together with its resolved
// transport statuses. It is intended for structured logging and tracing, not
// for client responses.
type Descriptor struct {
	Code       string `json:"code"`
	Reason     string `json:"reason,omitempty"`
	HTTPStatus int    `json:"http_status,omitempty"`
	GRPCCode   int    `json:"grpc_code,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Describe combines the failure with an already-resolved Status into a
// Descriptor suitable for logging.
func (f *Failure) Describe(st Status) Descriptor {
	if f == nil {
		return Descriptor{}
	}
	return Descriptor{
		Code:       string(f.Code),
		Reason:     string(f.Reason),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    f.Message,
	}
}
