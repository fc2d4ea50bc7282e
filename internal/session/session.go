package session

import (
	"time"
)

// DifficultyMode controls how quickly the tutor escalates hint specificity.
type DifficultyMode string

const (
	ModeGentle    DifficultyMode = "gentle"    // more scaffolding, earlier hints
	ModeStandard  DifficultyMode = "standard"  // default pacing
	ModeChallenge DifficultyMode = "challenge" // minimal hints, question-only guidance
)

// NormalizeMode maps unknown or empty mode strings to ModeStandard.
func NormalizeMode(s string) DifficultyMode {
	switch DifficultyMode(s) {
	case ModeGentle, ModeStandard, ModeChallenge:
		return DifficultyMode(s)
	default:
		return ModeStandard
	}
}

// Role is the message sender role within a tutoring session.
type Role string

const (
	RoleUser  Role = "user"
	RoleTutor Role = "tutor"
)

// Message is a single utterance in a tutoring session.
// Immutable once appended.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

// Problem is the learner's submitted problem plus its classification.
type Problem struct {
	Text       string
	Type       string  // declared type, e.g. "linear_equations"
	Confidence float64 // classifier confidence in Type, 0-1
}

// State is the session lifecycle state.
type State string

const (
	StateCreated State = "created" // allocated, no tutor reply yet
	StateActive  State = "active"  // at least one message appended
)

// Session is a single problem-focused conversation between one learner
// and the tutor. OwnerID is empty for guest sessions.
type Session struct {
	ID           string
	OwnerID      string
	Problem      Problem
	Mode         DifficultyMode
	Messages     []Message
	State        State
	CreatedAt    time.Time
	LastActivity time.Time
}

// LastTutorMessage returns the most recent tutor message, or nil.
func (s *Session) LastTutorMessage() *Message {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleTutor {
			return &s.Messages[i]
		}
	}
	return nil
}

// UserMessages returns all user messages in append order.
func (s *Session) UserMessages() []Message {
	var out []Message
	for _, m := range s.Messages {
		if m.Role == RoleUser {
			out = append(out, m)
		}
	}
	return out
}

// clone returns a deep copy safe to hand outside the store's locks.
func (s *Session) clone() *Session {
	cp := *s
	cp.Messages = make([]Message, len(s.Messages))
	copy(cp.Messages, s.Messages)
	return &cp
}
