package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", s.handleCreateSession)
		r.Post("/sessions/{id}/turns", s.handleTurn)
		r.Post("/sessions/{id}/turns/stream", s.handleTurnStream)
		r.Get("/sessions/{id}/completion", s.handleCompletion)
		r.Delete("/sessions/{id}", s.handleClearSession)

		r.Post("/concepts/extract", s.handleExtractConcepts)
		r.Get("/concepts/practice", s.handlePracticeNeeds)

		r.Post("/paths", s.handleCreatePath)
		r.Get("/paths/{id}", s.handleGetPath)
		r.Post("/paths/{id}/advance", s.handleAdvancePath)
	})

	return r
}
