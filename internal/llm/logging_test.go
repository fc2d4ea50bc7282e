package llm

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/abhisek/tutoriz/internal/store"
)

// recordingRepo captures appended LLM request events.
type recordingRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	fail   bool
}

func (r *recordingRepo) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (r *recordingRepo) AppendTurnEvent(context.Context, store.TurnEventData) error       { return nil }
func (r *recordingRepo) AppendMasteryEvent(context.Context, store.MasteryEventData) error { return nil }

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("db closed")
	}
	r.events = append(r.events, data)
	return nil
}

func (r *recordingRepo) ConceptSolveStats(context.Context, string, string) (int, int, error) {
	return 0, 0, nil
}

func (r *recordingRepo) recorded() []store.LLMRequestEventData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]store.LLMRequestEventData(nil), r.events...)
}

func TestLoggingRecordsGenerate(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: "What do you notice about both sides?",
		Usage:   Usage{InputTokens: 12, OutputTokens: 8, TotalTokens: 20},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "tutor-turn")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	events := repo.recorded()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	ev := events[0]
	if !ev.Success || ev.Streamed {
		t.Errorf("event = %+v, want success non-streamed", ev)
	}
	if ev.Purpose != "tutor-turn" {
		t.Errorf("Purpose = %q", ev.Purpose)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 8 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLoggingRecordsGenerateFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	events := repo.recorded()
	if len(events) != 1 || events[0].Success {
		t.Fatalf("events = %+v, want one failure", events)
	}
	if events[0].ErrorMessage == "" {
		t.Error("ErrorMessage empty")
	}
}

func TestLoggingStreamLogsOnceOnExhaustion(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Fragments: []string{"Let's ", "start ", "simple."}})
	p := WithLogging(mock, repo)

	stream, err := p.GenerateStream(WithPurpose(context.Background(), "tutor-opening"), Request{})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}

	var got string
	for {
		frag, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		got += frag
	}
	stream.Close()

	if got != "Let's start simple." {
		t.Errorf("assembled = %q", got)
	}
	events := repo.recorded()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1 (logged once despite Close after EOF)", len(events))
	}
	ev := events[0]
	if !ev.Success || !ev.Streamed || ev.Purpose != "tutor-opening" {
		t.Errorf("event = %+v", ev)
	}
}

func TestLoggingStreamAbandonmentLogsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Fragments: []string{"first", "second", "third"}})
	p := WithLogging(mock, repo)

	stream, err := p.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}
	if _, err := stream.Recv(); err != nil {
		t.Fatalf("Recv: %v", err)
	}
	stream.Close()

	events := repo.recorded()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Success || !events[0].Streamed {
		t.Errorf("event = %+v, want streamed failure", events[0])
	}
}

func TestLoggingFailureDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{fail: true}
	mock := NewMockProvider(MockResponse{Content: "ok"})
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil || resp.Content != "ok" {
		t.Fatalf("Generate = %v, %v; logging failure must not surface", resp, err)
	}
}
