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
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"dirpx.dev/scribe/outcome"
	"dirpx.dev/scribe/service"
	"dirpx.dev/scribe/store"
)

// Server bundles the REST handlers with their dependencies.
type Server struct {
	users  *service.Users
	posts  *service.Posts
	store  *store.Store
	writer Writer
}

// NewServer builds the REST surface over the shared services and mapper.
func NewServer(users *service.Users, posts *service.Posts, st *store.Store, m outcome.Mapper) *Server {
	return &Server{
		users:  users,
		posts:  posts,
		store:  st,
		writer: Writer{Mapper: m},
	}
}

// Router assembles the chi router with the standard middleware stack.
// allowedOrigins feeds the CORS policy; empty means same-origin only.
func (s *Server) Router(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/health", s.handleHealth)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.handleListUsers)
		r.Post("/", s.handleCreateUser)
		r.Get("/{id}", s.handleGetUser)
		r.Put("/{id}", s.handleUpdateUser)
		r.Delete("/{id}", s.handleDeleteUser)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", s.handleListPosts)
		r.Post("/", s.handleCreatePost)
		r.Get("/{id}", s.handleGetPost)
		r.Put("/{id}", s.handleUpdatePost)
		r.Delete("/{id}", s.handleDeletePost)
	})

	return r
}

func (s *Server) handleHealth(rw http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.writer.JSON(rw, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	s.writer.JSON(rw, http.StatusOK, map[string]string{"status": "ok"})
}
