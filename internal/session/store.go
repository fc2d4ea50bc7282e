package session

import "errors"

// ErrNotFound is returned when a session does not exist or the caller
// does not own it. Ownership mismatches fail closed with the same error
// so the existence of another owner's session never leaks.
var ErrNotFound = errors.New("session not found")

// ErrEmptyProblem is returned by Create when the problem text is empty.
var ErrEmptyProblem = errors.New("problem text is empty")

// Store is the session store abstraction. The orchestrator depends only
// on this interface; the in-memory implementation below is the default,
// and a distributed store can be substituted for multi-instance
// deployments.
type Store interface {
	// Create allocates a new session. The session must be visible to
	// Get before Create returns.
	Create(problem Problem, mode DifficultyMode, ownerID string) (*Session, error)

	// Get returns a copy of the session. When ownerID is non-empty it
	// must match the session's owner, else ErrNotFound.
	Get(id, ownerID string) (*Session, error)

	// Append atomically appends a message. Concurrent appends on the
	// same session are serialized; message timestamps are assigned at
	// append time and are non-decreasing in append order.
	Append(id string, msg Message) (*Message, error)

	// Clear tears the session down. Idempotent: clearing a missing
	// session is not an error.
	Clear(id, ownerID string) error

	// ListActive returns copies of all live sessions, order unspecified.
	ListActive() []*Session
}
