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

package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dirpx.dev/scribe/rules"
)

func (s *Server) handleListUsers(rw http.ResponseWriter, r *http.Request) {
	users, f := s.users.List(r.Context(), true)
	if f != nil {
		s.writer.Error(rw, f)
		return
	}
	s.writer.JSON(rw, http.StatusOK, users)
}

func (s *Server) handleGetUser(rw http.ResponseWriter, r *http.Request) {
	user, f := s.users.Get(r.Context(), chi.URLParam(r, "id"), true)
	if f != nil {
		s.writer.Error(rw, f)
		return
	}
	s.writer.JSON(rw, http.StatusOK, user)
}

func (s *Server) handleCreateUser(rw http.ResponseWriter, r *http.Request) {
	var in rules.CreateUserInput
	if f := decodeJSON(r, &in); f != nil {
		s.writer.Error(rw, f)
		return
	}
	user, f := s.users.Create(r.Context(), in)
	if f != nil {
		s.writer.Error(rw, f)
		return
	}
	s.writer.JSON(rw, http.StatusCreated, user)
}

func (s *Server) handleUpdateUser(rw http.ResponseWriter, r *http.Request) {
	var patch rules.UserPatch
	if f := decodeJSON(r, &patch); f != nil {
		s.writer.Error(rw, f)
		return
	}
	user, f := s.users.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if f != nil {
		s.writer.Error(rw, f)
		return
	}
	s.writer.JSON(rw, http.StatusOK, user)
}

func (s *Server) handleDeleteUser(rw http.ResponseWriter, r *http.Request) {
	if f := s.users.Delete(r.Context(), chi.URLParam(r, "id")); f != nil {
		s.writer.Error(rw, f)
		return
	}
	s.writer.JSON(rw, http.StatusOK, map[string]bool{"success": true})
}
