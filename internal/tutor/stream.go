package tutor

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/tutoriz/internal/session"
	"github.com/abhisek/tutoriz/internal/store"
)

// TurnStream delivers a tutor reply as text fragments. Finite and not
// restartable. The assembled message is appended to the session exactly
// once, when Recv returns io.EOF; Close before exhaustion abandons the
// turn and commits nothing.
type TurnStream struct {
	o     *Orchestrator
	inner interface {
		Recv() (string, error)
		Close() error
	}
	ctx       context.Context
	sessionID string
	userChars int
	hintLevel int
	start     time.Time

	mu       sync.Mutex
	buf      strings.Builder
	finished bool
}

// Recv returns the next fragment. io.EOF marks normal exhaustion, at
// which point the full tutor message has been committed to the session.
func (s *TurnStream) Recv() (string, error) {
	frag, err := s.inner.Recv()
	if err == nil {
		s.mu.Lock()
		s.buf.WriteString(frag)
		s.mu.Unlock()
		return frag, nil
	}
	if errors.Is(err, io.EOF) {
		s.commit()
	}
	return "", err
}

// Close releases the stream. If the stream was not exhausted the turn is
// abandoned: no tutor message is committed and the session keeps only
// the user message.
func (s *TurnStream) Close() error {
	err := s.inner.Close()
	s.mu.Lock()
	s.finished = true
	s.mu.Unlock()
	return err
}

// Message returns the assembled tutor message after exhaustion, or the
// partial text received so far.
func (s *TurnStream) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func (s *TurnStream) commit() {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return
	}
	s.finished = true
	content := s.buf.String()
	s.mu.Unlock()

	if _, err := s.o.sessions.Append(s.sessionID, session.Message{Role: session.RoleTutor, Content: content}); err != nil {
		// Session evicted mid-stream; the reply has nowhere to go.
		return
	}
	s.o.logTurnEvent(s.ctx, store.TurnEventData{
		SessionID:  s.sessionID,
		UserChars:  s.userChars,
		TutorChars: len(content),
		Streamed:   true,
		LatencyMs:  time.Since(s.start).Milliseconds(),
		HintLevel:  s.hintLevel,
	})
}
