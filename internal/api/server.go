// Package api exposes the tutoring engine over HTTP: session lifecycle,
// turn processing (atomic and streamed via SSE), completion detection,
// concept extraction and learning paths.
package api

import (
	"github.com/abhisek/tutoriz/internal/learnpath"
	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/tutor"
)

// Server holds the handlers' collaborators.
type Server struct {
	Tutor    *tutor.Orchestrator
	Mastery  *mastery.Service
	Paths    *learnpath.Generator
	Registry *learnpath.Registry

	// OnCompletion, when set, receives the completion payload after a
	// positive detection, for routing to reward subsystems.
	OnCompletion func(tutor.CompletionEvent)
}
