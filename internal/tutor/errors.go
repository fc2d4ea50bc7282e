package tutor

import (
	"errors"
	"fmt"

	"github.com/abhisek/tutoriz/internal/llm"
	"github.com/abhisek/tutoriz/internal/session"
)

// ErrSessionNotFound is returned when a session does not exist or is
// owned by someone else. Ownership mismatches fail closed with the same
// error so cross-owner session existence never leaks.
var ErrSessionNotFound = errors.New("session not found")

// ErrStreamAborted marks a streaming turn the consumer abandoned before
// exhaustion. Not a failure: no tutor message was committed, and the
// session remains usable.
var ErrStreamAborted = errors.New("stream aborted by consumer")

// ErrInvalidInput is returned for empty or oversized user input.
type ErrInvalidInput struct {
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// ErrorCode returns the stable machine-readable code for any error the
// orchestrator surfaces. Provider errors keep their own codes.
func ErrorCode(err error) string {
	var invalid *ErrInvalidInput
	switch {
	case errors.As(err, &invalid):
		return "invalid_input"
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, session.ErrNotFound):
		return "session_not_found"
	case errors.Is(err, ErrStreamAborted):
		return "stream_aborted"
	}
	return llm.ErrorCode(err)
}
