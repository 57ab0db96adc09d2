// Package httpapi exposes the dashboard services over HTTP for the
// browser UI shell.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/snapfest/snapfest/internal/service"
)

// Server holds the HTTP handlers for the dashboard API.
type Server struct {
	svc    service.EventService
	jwtKey []byte
	log    *zap.Logger
}

// New constructs the API server.
func New(svc service.EventService, jwtKey []byte, log *zap.Logger) *Server {
	return &Server{svc: svc, jwtKey: jwtKey, log: log}
}

// Routes assembles the chi router. Every /api route requires a valid
// bearer token; the resolved session travels in the request context.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoverer, s.logging)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.auth)
		r.Get("/events", s.listEvents)
		r.Get("/statistics", s.statistics)
		r.Post("/events", s.createEvent)
		r.Delete("/events/{id}", s.deleteEvent)
	})
	return r
}
