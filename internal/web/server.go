// Package web exposes the five engine operations over a JSON API. It
// maps the engine's error kinds onto HTTP statuses and otherwise adds
// nothing to the contract.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/example/tablebook/internal/auth"
	"github.com/example/tablebook/internal/reservation"
)

type Server struct {
	Provider reservation.Provider
	Log      *logrus.Logger

	// Auth is optional; nil leaves every route open.
	Auth *auth.Store
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/restaurants", s.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{id}/availability", s.handleAvailability).Methods(http.MethodGet)
	api.HandleFunc("/reservations", s.handleList).Methods(http.MethodGet)

	place := http.HandlerFunc(s.handlePlace)
	cancel := http.HandlerFunc(s.handleCancel)
	if s.Auth != nil {
		api.Handle("/reservations", s.Auth.RequireAuth(place)).Methods(http.MethodPost)
		api.Handle("/reservations/{id}", s.Auth.RequireAuth(cancel)).Methods(http.MethodDelete)
		r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
		r.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)
	} else {
		api.Handle("/reservations", place).Methods(http.MethodPost)
		api.Handle("/reservations/{id}", cancel).Methods(http.MethodDelete)
	}

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.Log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Debug("request")
	})
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, addr string, h http.Handler, log *logrus.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
