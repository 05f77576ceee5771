// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

// Pipelines are the services the routes dispatch to.
type Pipelines struct {
	Tenders  TenderSearcher
	Doctors  DoctorFinder
	Analyzer SymptomAnalyzer
}

// NewRouter mounts every route under /api.
func NewRouter(log *slog.Logger, p Pipelines) (http.Handler, error) {
	if p.Tenders == nil || p.Doctors == nil || p.Analyzer == nil {
		return nil, ErrScoutRequired
	}
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "httpapi")

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(log))

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", NewPing(log))
		r.Get("/specialties", NewSpecialties(log))
		r.Route("/tenders", func(r chi.Router) {
			r.Post("/search", NewSearchTenders(log, p.Tenders))
			r.Post("/transcript", NewTranscriptTenders(log, p.Tenders))
			r.Post("/refine", NewRefineTenders(log))
		})
		r.Route("/symptoms", func(r chi.Router) {
			r.Post("/analyze", NewAnalyzeSymptoms(log, p.Analyzer, p.Doctors))
		})
		r.Route("/doctors", func(r chi.Router) {
			r.Post("/search", NewFindDoctors(log, p.Doctors))
		})
	})

	return router, nil
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}

// Serve runs handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server", "err", err)
		return err
	}
	log.Info("server stopped")
	return nil
}
