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

// Command server runs the REST and typed procedure surfaces over one
// listener, backed by postgres.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc/codes"

	"dirpx.dev/scribe/code"
	"dirpx.dev/scribe/config"
	"dirpx.dev/scribe/httpx"
	"dirpx.dev/scribe/mapper"
	"dirpx.dev/scribe/rpcx"
	"dirpx.dev/scribe/service"
	"dirpx.dev/scribe/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// A missing .env is fine; the environment itself may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.StoreConfig())
	if err != nil {
		return err
	}
	defer st.Close()

	// The delete-guard family keeps its 400/FailedPrecondition mapping even
	// if the Blocked defaults are ever tuned.
	m, err := mapper.New(
		mapper.WithHTTPPrefix(code.Blocked, "user.posts", http.StatusBadRequest),
		mapper.WithGRPCPrefix(code.Blocked, "user.posts", int(codes.FailedPrecondition)),
	)
	if err != nil {
		return err
	}

	users := service.NewUsers(st)
	posts := service.NewPosts(st)

	rest := httpx.NewServer(users, posts, st, m)
	rpc := rpcx.NewServer(users, posts, m)

	router := rest.Router(cfg.AllowedOrigins)
	router.Mount("/rpc", rpc.Routes())

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Print("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
