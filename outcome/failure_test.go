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

import (
	"errors"
	"strings"
	"testing"

	"dirpx.dev/scribe/code"
	"dirpx.dev/scribe/reason"
)

func TestFailure_Basics(t *testing.T) {
	f := E(code.Conflict, "email is already registered",
		WithReasonOption(reason.UserEmailExists),
		WithDetailOption("email", "alice@example.com"),
	)

	if f.Code != code.Conflict {
		t.Fatal("code mismatch")
	}
	if f.Reason == "" {
		t.Fatal("reason must be set")
	}
	if f.Details["email"] != "alice@example.com" {
		t.Fatal("detail missing")
	}

	s := f.Error()
	wantSubs := []string{"conflict", "user.email.exists", "email is already registered"}
	for _, sub := range wantSubs {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestFailure_ErrorWithoutReason(t *testing.T) {
	f := E(code.Internal, "something went wrong")
	if got, want := f.Error(), "internal: something went wrong"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestFailure_Immutability_CopyOnWrite(t *testing.T) {
	f1 := E(code.Invalid, "bad").WithDetail("k1", 1)
	f2 := f1.WithDetail("k2", 2)

	if len(f1.Details) != 1 || len(f2.Details) != 2 {
		t.Fatal("details size mismatch")
	}
	if _, ok := f1.Details["k2"]; ok {
		t.Fatal("original mutated")
	}
}

func TestFailure_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	f := E(code.Internal, "x").WithCause(root)
	if !errors.Is(f, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(f) != root {
		t.Fatal("Unwrap failed")
	}
}

func TestFailure_WithDetails_Merge(t *testing.T) {
	f := E(code.Invalid, "x").WithDetails(map[string]any{"a": 1})
	f2 := f.WithDetails(map[string]any{"b": 2, "a": 3})
	if f.Details["a"] != 1 {
		t.Fatal("original mutated")
	}
	if f2.Details["a"] != 3 || f2.Details["b"] != 2 {
		t.Fatal("merge failed")
	}
}

func TestFailure_View_DropsCause(t *testing.T) {
	root := errors.New("pq: connection refused")
	f := E(code.Internal, "unexpected error",
		WithReasonOption(reason.StoreNoRows),
		WithCauseOption(root),
		WithDetailOption("id", "u-1"),
	)

	v := f.View()
	if v.Code != "internal" || v.Reason != "store.pg.no_rows" {
		t.Fatalf("view identity mismatch: %+v", v)
	}
	if v.Message != "unexpected error" {
		t.Fatalf("view message = %q", v.Message)
	}
	if v.Details["id"] != "u-1" {
		t.Fatal("view details missing")
	}
	if strings.Contains(v.Message, "pq:") {
		t.Fatal("cause leaked into view")
	}
}

func TestFailure_View_NilSafe(t *testing.T) {
	var f *Failure
	if v := f.View(); v.Code != "" {
		t.Fatalf("nil view must be zero, got %+v", v)
	}
	if f.Error() != "<nil>" {
		t.Fatalf("nil Error() = %q", f.Error())
	}
}

func TestFailure_Describe(t *testing.T) {
	f := E(code.NotFound, "user not found", WithReasonOption(reason.StoreNoRows))
	d := f.Describe(Status{HTTP: 404, GRPC: 5})
	if d.Code != "not_found" || d.HTTPStatus != 404 || d.GRPCCode != 5 {
		t.Fatalf("descriptor mismatch: %+v", d)
	}
}
