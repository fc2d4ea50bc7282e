// Package tutor drives the tutoring dialogue: session lifecycle, turn
// processing against the LLM provider under the Socratic policy, and
// completion detection with its mastery side effects.
package tutor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/tutoriz/internal/classify"
	"github.com/abhisek/tutoriz/internal/completion"
	"github.com/abhisek/tutoriz/internal/llm"
	"github.com/abhisek/tutoriz/internal/logger"
	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/session"
	"github.com/abhisek/tutoriz/internal/store"
)

const defaultMaxTokens = 1024

// Config wires the orchestrator's collaborators.
type Config struct {
	Sessions session.Store
	Provider llm.Provider
	Mastery  *mastery.Service

	// Events is optional; when nil no events are recorded.
	Events store.EventRepo

	// Classifier is optional; when set it types problems submitted
	// without a declared type.
	Classifier *classify.Classifier

	// Detector defaults to completion.New(completion.DefaultConfig()).
	Detector *completion.Detector

	// MaxTokens bounds each tutor reply. Default 1024.
	MaxTokens int

	Now func() time.Time
}

// Orchestrator coordinates sessions, the provider and the detector.
// Safe for concurrent use.
type Orchestrator struct {
	sessions   session.Store
	provider   llm.Provider
	mastery    *mastery.Service
	events     store.EventRepo
	classifier *classify.Classifier
	detector   *completion.Detector
	maxTokens  int
	now        func() time.Time

	// completed guards mastery updates: one set of updates per session
	// no matter how often completion is re-detected.
	mu        sync.Mutex
	completed map[string]bool
}

// New creates an Orchestrator.
func New(cfg Config) *Orchestrator {
	if cfg.Detector == nil {
		cfg.Detector = completion.New(completion.DefaultConfig())
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Orchestrator{
		sessions:   cfg.Sessions,
		provider:   cfg.Provider,
		mastery:    cfg.Mastery,
		events:     cfg.Events,
		classifier: cfg.Classifier,
		detector:   cfg.Detector,
		maxTokens:  cfg.MaxTokens,
		now:        cfg.Now,
		completed:  make(map[string]bool),
	}
}

// CompletionEvent is the payload handed to the caller when a session's
// problem is detected as solved, for routing to reward and curriculum
// subsystems. The orchestrator itself only updates mastery records.
type CompletionEvent struct {
	SessionID        string
	OwnerID          string
	Problem          session.Problem
	ConceptIDs       []string
	HintsUsed        int
	TimeSpentMinutes float64
	Signal           completion.Signal
}

// Initialize creates a session for the problem and generates the opening
// tutor message. If generation fails the session is rolled back so no
// orphaned empty sessions persist.
func (o *Orchestrator) Initialize(ctx context.Context, problem session.Problem, mode session.DifficultyMode, ownerID string) (*session.Session, string, error) {
	if strings.TrimSpace(problem.Text) == "" {
		return nil, "", &ErrInvalidInput{Reason: "problem text is empty"}
	}
	if len(problem.Text) > MaxMessageChars {
		return nil, "", &ErrInvalidInput{Reason: "problem text too long"}
	}
	mode = session.NormalizeMode(string(mode))

	if problem.Type == "" && o.classifier != nil {
		res := o.classifier.Classify(ctx, problem.Text)
		problem.Type = res.Type
		problem.Confidence = res.Confidence
	}

	sess, err := o.sessions.Create(problem, mode, ownerID)
	if err != nil {
		if errors.Is(err, session.ErrEmptyProblem) {
			return nil, "", &ErrInvalidInput{Reason: "problem text is empty"}
		}
		return nil, "", err
	}

	o.logSessionEvent(ctx, store.SessionEventData{
		SessionID:   sess.ID,
		OwnerID:     ownerID,
		Action:      "start",
		ProblemType: problem.Type,
	})

	start := o.now()
	resp, err := o.provider.Generate(llm.WithPurpose(ctx, "tutor-opening"), llm.Request{
		System:    systemPrompt(problem, mode, 0),
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: problem.Text}},
		MaxTokens: o.maxTokens,
	})
	if err != nil {
		if clearErr := o.sessions.Clear(sess.ID, ownerID); clearErr != nil {
			logger.FromContext(ctx).Warn("rollback of session %s failed: %v", sess.ID, clearErr)
		}
		return nil, "", err
	}

	if _, err := o.sessions.Append(sess.ID, session.Message{Role: session.RoleTutor, Content: resp.Content}); err != nil {
		return nil, "", o.mapSessionErr(err)
	}
	o.logTurnEvent(ctx, store.TurnEventData{
		SessionID:  sess.ID,
		UserChars:  len(problem.Text),
		TutorChars: len(resp.Content),
		LatencyMs:  time.Since(start).Milliseconds(),
	})

	fresh, err := o.sessions.Get(sess.ID, ownerID)
	if err != nil {
		return nil, "", o.mapSessionErr(err)
	}
	return fresh, resp.Content, nil
}

// ProcessTurn appends the user message, generates the tutor reply and
// appends it atomically via the session store.
func (o *Orchestrator) ProcessTurn(ctx context.Context, sessionID, userMessage string, mode session.DifficultyMode, ownerID string) (string, error) {
	sess, level, err := o.beginTurn(sessionID, userMessage, mode, ownerID)
	if err != nil {
		return "", err
	}

	start := o.now()
	resp, err := o.provider.Generate(llm.WithPurpose(ctx, "tutor-turn"), o.buildRequest(sess, level))
	if err != nil {
		return "", err
	}

	if _, err := o.sessions.Append(sessionID, session.Message{Role: session.RoleTutor, Content: resp.Content}); err != nil {
		return "", o.mapSessionErr(err)
	}
	o.logTurnEvent(ctx, store.TurnEventData{
		SessionID:  sessionID,
		UserChars:  len(userMessage),
		TutorChars: len(resp.Content),
		LatencyMs:  time.Since(start).Milliseconds(),
		HintLevel:  level,
	})
	return resp.Content, nil
}

// ProcessTurnStreaming appends the user message and returns a stream of
// tutor reply fragments. The assembled tutor message is committed to the
// session only when the stream is exhausted; abandoning the stream early
// commits nothing.
func (o *Orchestrator) ProcessTurnStreaming(ctx context.Context, sessionID, userMessage string, mode session.DifficultyMode, ownerID string) (*TurnStream, error) {
	sess, level, err := o.beginTurn(sessionID, userMessage, mode, ownerID)
	if err != nil {
		return nil, err
	}

	start := o.now()
	inner, err := o.provider.GenerateStream(llm.WithPurpose(ctx, "tutor-turn"), o.buildRequest(sess, level))
	if err != nil {
		return nil, err
	}

	return &TurnStream{
		o:         o,
		inner:     inner,
		ctx:       context.WithoutCancel(ctx),
		sessionID: sessionID,
		userChars: len(userMessage),
		hintLevel: level,
		start:     start,
	}, nil
}

// beginTurn validates input, checks ownership and appends the user
// message. Returns the refreshed session and the hint level for the
// upcoming reply.
func (o *Orchestrator) beginTurn(sessionID, userMessage string, mode session.DifficultyMode, ownerID string) (*session.Session, int, error) {
	if strings.TrimSpace(userMessage) == "" {
		return nil, 0, &ErrInvalidInput{Reason: "message is empty"}
	}
	if len(userMessage) > MaxMessageChars {
		return nil, 0, &ErrInvalidInput{Reason: "message too long"}
	}

	if _, err := o.sessions.Get(sessionID, ownerID); err != nil {
		return nil, 0, o.mapSessionErr(err)
	}
	if _, err := o.sessions.Append(sessionID, session.Message{Role: session.RoleUser, Content: userMessage}); err != nil {
		return nil, 0, o.mapSessionErr(err)
	}

	sess, err := o.sessions.Get(sessionID, ownerID)
	if err != nil {
		return nil, 0, o.mapSessionErr(err)
	}

	if mode == "" {
		mode = sess.Mode
	}
	mode = session.NormalizeMode(string(mode))

	return sess, hintLevel(sess.Messages, mode), nil
}

// buildRequest assembles the provider request from the full transcript
// plus the Socratic system policy. The problem text leads the history so
// the conversation always opens with a user message.
func (o *Orchestrator) buildRequest(sess *session.Session, level int) llm.Request {
	msgs := make([]llm.Message, 0, len(sess.Messages)+1)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: sess.Problem.Text})
	for _, m := range sess.Messages {
		role := llm.RoleUser
		if m.Role == session.RoleTutor {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}
	return llm.Request{
		System:    systemPrompt(sess.Problem, sess.Mode, level),
		Messages:  msgs,
		MaxTokens: o.maxTokens,
	}
}

// DetectCompletion runs the completion detector over the session
// transcript. On the first positive verdict for a session it updates
// mastery records for every detected concept and returns the completion
// payload for the caller to route onward; later positives return the
// payload again without re-updating mastery.
func (o *Orchestrator) DetectCompletion(ctx context.Context, sessionID, ownerID string) (completion.Signal, *CompletionEvent, error) {
	sess, err := o.sessions.Get(sessionID, ownerID)
	if err != nil {
		return completion.Signal{}, nil, o.mapSessionErr(err)
	}

	sig := o.detector.Detect(sess.Messages, sess.Problem)
	if !sig.IsCompleted {
		return sig, nil, nil
	}

	concepts := o.mastery.ExtractConcepts(sess.Problem)
	hints := hintLevel(sess.Messages, sess.Mode)
	minutes := sess.LastActivity.Sub(sess.CreatedAt).Minutes()

	event := &CompletionEvent{
		SessionID:        sess.ID,
		OwnerID:          sess.OwnerID,
		Problem:          sess.Problem,
		ConceptIDs:       concepts,
		HintsUsed:        hints,
		TimeSpentMinutes: minutes,
		Signal:           sig,
	}

	o.mu.Lock()
	first := !o.completed[sessionID]
	o.completed[sessionID] = true
	o.mu.Unlock()

	if first {
		for _, id := range concepts {
			o.mastery.Update(ctx, sess.OwnerID, id, true, hints, minutes)
		}
	}

	return sig, event, nil
}

// Clear tears a session down, recording an end event when the session
// still exists. Idempotent for missing sessions.
func (o *Orchestrator) Clear(ctx context.Context, sessionID, ownerID string) error {
	if sess, err := o.sessions.Get(sessionID, ownerID); err == nil {
		o.logSessionEvent(ctx, store.SessionEventData{
			SessionID:    sess.ID,
			OwnerID:      sess.OwnerID,
			Action:       "end",
			ProblemType:  sess.Problem.Type,
			Turns:        len(sess.Messages),
			DurationSecs: int(sess.LastActivity.Sub(sess.CreatedAt).Seconds()),
		})
	}

	if err := o.sessions.Clear(sessionID, ownerID); err != nil {
		return o.mapSessionErr(err)
	}

	o.mu.Lock()
	delete(o.completed, sessionID)
	o.mu.Unlock()
	return nil
}

func (o *Orchestrator) mapSessionErr(err error) error {
	if errors.Is(err, session.ErrNotFound) {
		return ErrSessionNotFound
	}
	return err
}

func (o *Orchestrator) logSessionEvent(ctx context.Context, data store.SessionEventData) {
	if o.events == nil {
		return
	}
	if err := o.events.AppendSessionEvent(ctx, data); err != nil {
		logger.FromContext(ctx).Warn("failed to log session event: %v", err)
	}
}

func (o *Orchestrator) logTurnEvent(ctx context.Context, data store.TurnEventData) {
	if o.events == nil {
		return
	}
	if err := o.events.AppendTurnEvent(ctx, data); err != nil {
		logger.FromContext(ctx).Warn("failed to log turn event: %v", err)
	}
}
