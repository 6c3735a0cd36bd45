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

package rpcx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/scribe/code"
	"dirpx.dev/scribe/outcome"
	"dirpx.dev/scribe/reason"
	"dirpx.dev/scribe/rules"
	"dirpx.dev/scribe/service"
)

// Domain tags every ErrorInfo detail emitted by this surface.
const Domain = "scribe.dirpx.dev"

// procedure executes one named operation against the raw request body.
type procedure func(ctx context.Context, body []byte) (any, *outcome.Failure)

// Server dispatches typed procedures over the shared services.
type Server struct {
	users  *service.Users
	posts  *service.Posts
	mapper outcome.Mapper
	procs  map[string]procedure
}

// NewServer builds the procedure surface over the shared services and mapper.
func NewServer(users *service.Users, posts *service.Posts, m outcome.Mapper) *Server {
	s := &Server{users: users, posts: posts, mapper: m}
	s.procs = map[string]procedure{
		"user.getAll":  s.userGetAll,
		"user.getById": s.userGetByID,
		"user.create":  s.userCreate,
		"user.update":  s.userUpdate,
		"user.delete":  s.userDelete,
		"post.getAll":  s.postGetAll,
		"post.getById": s.postGetByID,
		"post.create":  s.postCreate,
		"post.update":  s.postUpdate,
		"post.delete":  s.postDelete,
	}
	return s
}

// Routes returns the router for this surface, meant to be mounted at /rpc.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/{procedure}", s.handle)
	return r
}

func (s *Server) handle(rw http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "procedure")
	proc, ok := s.procs[name]
	if !ok {
		s.writeFailure(rw, outcome.E(code.NotFound,
			fmt.Sprintf("unknown procedure %q", name),
			outcome.WithReasonOption(reason.RequestProcedureUnknown),
			outcome.WithDetailOption("procedure", name),
		))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeFailure(rw, outcome.E(code.Invalid,
			"request body could not be read",
			outcome.WithReasonOption(reason.RequestBodyMalformed),
			outcome.WithCauseOption(err),
		))
		return
	}

	result, f := proc(r.Context(), body)
	if f != nil {
		s.writeFailure(rw, f)
		return
	}
	s.writeResult(rw, result)
}

// decode strictly unmarshals the body into dst. An empty body leaves dst at
// its zero value so the rules layer reports the missing fields instead of a
// generic parse failure.
func decode(body []byte, dst any) *outcome.Failure {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return outcome.E(code.Invalid,
			"request body is not valid JSON",
			outcome.WithReasonOption(reason.RequestBodyMalformed),
			outcome.WithCauseOption(err),
		)
	}
	return nil
}

func (s *Server) writeResult(rw http.ResponseWriter, result any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(rw).Encode(map[string]any{"result": result}); err != nil {
		log.Printf("encode result: %v", err)
	}
}

// writeFailure renders the failure as a google.rpc.Status document with an
// ErrorInfo detail, written under the HTTP status the mapper resolved.
func (s *Server) writeFailure(rw http.ResponseWriter, f *outcome.Failure) {
	st := s.mapper.Status(f.Code, f.Reason)
	if st.HTTP >= http.StatusInternalServerError {
		d := f.Describe(st)
		log.Printf("internal failure: code=%s reason=%s cause=%v", d.Code, d.Reason, f.Cause)
	}

	info := &errdetails.ErrorInfo{
		Reason:   f.Reason.String(),
		Domain:   Domain,
		Metadata: map[string]string{"code": f.Code.String()},
	}
	for k, v := range f.Details {
		info.Metadata[k] = fmt.Sprint(v)
	}

	base := gstatus.New(st.GRPC, f.Message)
	resp := base
	if with, err := base.WithDetails(info); err == nil {
		resp = with
	}

	b, err := protojson.Marshal(resp.Proto())
	if err != nil {
		http.Error(rw, f.Message, st.HTTP)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	if _, err := rw.Write(b); err != nil {
		log.Printf("write failure response: %v", err)
	}
}

// ExtractErrorInfo pulls the ErrorInfo detail out of a status, if present.
// Useful for clients and tests inspecting failure responses.
func ExtractErrorInfo(st *gstatus.Status) (*errdetails.ErrorInfo, bool) {
	if st == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

type idRequest struct {
	ID string `json:"id"`
}

// Update payloads nest the patch under "data", mirroring the
// update({id, data}) call shape of the procedure surface's clients.
type userUpdateRequest struct {
	ID   string          `json:"id"`
	Data rules.UserPatch `json:"data"`
}

type postUpdateRequest struct {
	ID   string          `json:"id"`
	Data rules.PostPatch `json:"data"`
}

func (s *Server) userGetAll(ctx context.Context, _ []byte) (any, *outcome.Failure) {
	users, f := s.users.List(ctx, true)
	if f != nil {
		return nil, f
	}
	return users, nil
}

func (s *Server) userGetByID(ctx context.Context, body []byte) (any, *outcome.Failure) {
	var req idRequest
	if f := decode(body, &req); f != nil {
		return nil, f
	}
	return orFail(s.users.Get(ctx, req.ID, true))
}

func (s *Server) userCreate(ctx context.Context, body []byte) (any, *outcome.Failure) {
	var in rules.CreateUserInput
	if f := decode(body, &in); f != nil {
		return nil, f
	}
	return orFail(s.users.CreateStrict(ctx, in))
}

func (s *Server) userUpdate(ctx context.Context, body []byte) (any, *outcome.Failure) {
	var req userUpdateRequest
	if f := decode(body, &req); f != nil {
		return nil, f
	}
	return orFail(s.users.UpdateStrict(ctx, req.ID, req.Data))
}

func (s *Server) userDelete(ctx context.Context, body []byte) (any, *outcome.Failure) {
	var req idRequest
	if f := decode(body, &req); f != nil {
		return nil, f
	}
	if f := s.users.Delete(ctx, req.ID); f != nil {
		return nil, f
	}
	return map[string]bool{"success": true}, nil
}

func (s *Server) postGetAll(ctx context.Context, _ []byte) (any, *outcome.Failure) {
	posts, f := s.posts.List(ctx)
	if f != nil {
		return nil, f
	}
	return posts, nil
}

func (s *Server) postGetByID(ctx context.Context, body []byte) (any, *outcome.Failure) {
	var req idRequest
	if f := decode(body, &req); f != nil {
		return nil, f
	}
	return orFail(s.posts.Get(ctx, req.ID))
}

func (s *Server) postCreate(ctx context.Context, body []byte) (any, *outcome.Failure) {
	var in rules.CreatePostInput
	if f := decode(body, &in); f != nil {
		return nil, f
	}
	return orFail(s.posts.Create(ctx, in))
}

func (s *Server) postUpdate(ctx context.Context, body []byte) (any, *outcome.Failure) {
	var req postUpdateRequest
	if f := decode(body, &req); f != nil {
		return nil, f
	}
	return orFail(s.posts.Update(ctx, req.ID, req.Data))
}

func (s *Server) postDelete(ctx context.Context, body []byte) (any, *outcome.Failure) {
	var req idRequest
	if f := decode(body, &req); f != nil {
		return nil, f
	}
	if f := s.posts.Delete(ctx, req.ID); f != nil {
		return nil, f
	}
	return map[string]bool{"success": true}, nil
}

// orFail adapts the (value, failure) pairs the services return into the
// procedure result shape without repeating the nil check at every call site.
func orFail[T any](v T, f *outcome.Failure) (any, *outcome.Failure) {
	if f != nil {
		return nil, f
	}
	return v, nil
}
