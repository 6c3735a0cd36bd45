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

func (s *Server) handleListPosts(rw http.ResponseWriter, r *http.Request) {
	posts, f := s.posts.List(r.Context())
	if f != nil {
		s.writer.Error(rw, f)
		return
	}
	s.writer.JSON(rw, http.StatusOK, posts)
}

func (s *Server) handleGetPost(rw http.ResponseWriter, r *http.Request) {
	post, f := s.posts.Get(r.Context(), chi.URLParam(r, "id"))
	if f != nil {
		s.writer.Error(rw, f)
		return
	}
	s.writer.JSON(rw, http.StatusOK, post)
}

func (s *Server) handleCreatePost(rw http.ResponseWriter, r *http.Request) {
	var in rules.CreatePostInput
	if f := decodeJSON(r, &in); f != nil {
		s.writer.Error(rw, f)
		return
	}
	post, f := s.posts.Create(r.Context(), in)
	if f != nil {
		s.writer.Error(rw, f)
		return
	}
	s.writer.JSON(rw, http.StatusCreated, post)
}

func (s *Server) handleUpdatePost(rw http.ResponseWriter, r *http.Request) {
	var patch rules.PostPatch
	if f := decodeJSON(r, &patch); f != nil {
		s.writer.Error(rw, f)
		return
	}
	post, f := s.posts.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if f != nil {
		s.writer.Error(rw, f)
		return
	}
	s.writer.JSON(rw, http.StatusOK, post)
}

func (s *Server) handleDeletePost(rw http.ResponseWriter, r *http.Request) {
	if f := s.posts.Delete(r.Context(), chi.URLParam(r, "id")); f != nil {
		s.writer.Error(rw, f)
		return
	}
	s.writer.JSON(rw, http.StatusOK, map[string]bool{"success": true})
}
