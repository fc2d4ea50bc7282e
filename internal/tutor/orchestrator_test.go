package tutor

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/tutoriz/internal/llm"
	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/session"
)

func newTestOrchestrator(responses ...llm.MockResponse) (*Orchestrator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	o := New(Config{
		Sessions: session.NewMemoryStore(time.Hour),
		Provider: mock,
		Mastery:  mastery.NewService(nil, nil),
	})
	return o, mock
}

func linearProblem() session.Problem {
	return session.Problem{Text: "Solve for x: 2x + 3 = 11", Type: "linear_equations"}
}

func TestInitializeCreatesSessionWithOpening(t *testing.T) {
	o, mock := newTestOrchestrator(llm.MockResponse{
		Content: "What could you do to both sides to get x alone?",
	})

	sess, opening, err := o.Initialize(context.Background(), linearProblem(), session.ModeStandard, "owner-1")
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if opening == "" || !strings.Contains(opening, "?") {
		t.Errorf("opening = %q, want a guiding question", opening)
	}
	if len(sess.Messages) != 1 || sess.Messages[0].Role != session.RoleTutor {
		t.Fatalf("Messages = %+v, want single tutor message", sess.Messages)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d", mock.CallCount())
	}
	if mock.Calls[0].System == "" || !strings.Contains(mock.Calls[0].System, "NEVER state the final") {
		t.Error("system prompt missing answer prohibition")
	}
}

func TestInitializeEmptyProblem(t *testing.T) {
	o, _ := newTestOrchestrator()
	_, _, err := o.Initialize(context.Background(), session.Problem{Text: "   "}, session.ModeStandard, "")
	var invalid *ErrInvalidInput
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if ErrorCode(err) != "invalid_input" {
		t.Errorf("code = %q", ErrorCode(err))
	}
}

func TestInitializeRollsBackOnGenerationFailure(t *testing.T) {
	sessions := session.NewMemoryStore(time.Hour)
	o := New(Config{
		Sessions: sessions,
		Provider: llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}}),
		Mastery:  mastery.NewService(nil, nil),
	})

	_, _, err := o.Initialize(context.Background(), linearProblem(), session.ModeStandard, "owner-1")
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %v, want rate limit", err)
	}
	if active := sessions.ListActive(); len(active) != 0 {
		t.Errorf("sessions after failed init = %d, want 0 (rolled back)", len(active))
	}
}

func TestProcessTurnAppendsBothMessages(t *testing.T) {
	o, mock := newTestOrchestrator(
		llm.MockResponse{Content: "What operation undoes the +3?"},
		llm.MockResponse{Content: "Good. And after subtracting, what remains?"},
	)

	sess, _, err := o.Initialize(context.Background(), linearProblem(), session.ModeStandard, "owner-1")
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	reply, err := o.ProcessTurn(context.Background(), sess.ID, "I subtracted 3 from both sides", "", "owner-1")
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if reply != "Good. And after subtracting, what remains?" {
		t.Errorf("reply = %q", reply)
	}

	got, err := o.sessions.Get(sess.ID, "owner-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(got.Messages))
	}
	if got.Messages[1].Role != session.RoleUser || got.Messages[2].Role != session.RoleTutor {
		t.Errorf("roles = %v, %v", got.Messages[1].Role, got.Messages[2].Role)
	}
	// Full transcript goes to the provider.
	last := mock.Calls[len(mock.Calls)-1]
	if len(last.Messages) != 3 {
		t.Errorf("provider saw %d messages, want 3", len(last.Messages))
	}
}

func TestProcessTurnValidation(t *testing.T) {
	o, _ := newTestOrchestrator(llm.MockResponse{Content: "opening?"})
	sess, _, err := o.Initialize(context.Background(), linearProblem(), session.ModeStandard, "")
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	var invalid *ErrInvalidInput
	if _, err := o.ProcessTurn(context.Background(), sess.ID, "", "", ""); !errors.As(err, &invalid) {
		t.Errorf("empty message err = %v, want ErrInvalidInput", err)
	}
	long := strings.Repeat("x", MaxMessageChars+1)
	if _, err := o.ProcessTurn(context.Background(), sess.ID, long, "", ""); !errors.As(err, &invalid) {
		t.Errorf("oversized message err = %v, want ErrInvalidInput", err)
	}
}

func TestProcessTurnWrongOwner(t *testing.T) {
	o, _ := newTestOrchestrator(llm.MockResponse{Content: "opening?"})
	sess, _, err := o.Initialize(context.Background(), linearProblem(), session.ModeStandard, "owner-1")
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	_, err = o.ProcessTurn(context.Background(), sess.ID, "hello", "", "owner-2")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
	if ErrorCode(err) != "session_not_found" {
		t.Errorf("code = %q", ErrorCode(err))
	}
}

func TestProcessTurnUnknownSession(t *testing.T) {
	o, _ := newTestOrchestrator()
	_, err := o.ProcessTurn(context.Background(), "no-such-id", "hello", "", "")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestStreamingCommitsOnExhaustion(t *testing.T) {
	o, _ := newTestOrchestrator(
		llm.MockResponse{Content: "opening?"},
		llm.MockResponse{Fragments: []string{"What ", "undoes ", "the +3?"}},
	)
	sess, _, err := o.Initialize(context.Background(), linearProblem(), session.ModeStandard, "")
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	stream, err := o.ProcessTurnStreaming(context.Background(), sess.ID, "what now", "", "")
	if err != nil {
		t.Fatalf("ProcessTurnStreaming: %v", err)
	}

	var assembled string
	for {
		frag, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		assembled += frag
	}
	stream.Close()

	if assembled != "What undoes the +3?" {
		t.Errorf("assembled = %q", assembled)
	}

	got, _ := o.sessions.Get(sess.ID, "")
	if len(got.Messages) != 3 {
		t.Fatalf("messages = %d, want 3 (user + committed tutor reply)", len(got.Messages))
	}
	if got.Messages[2].Content != "What undoes the +3?" {
		t.Errorf("committed = %q", got.Messages[2].Content)
	}
}

func TestStreamingAbandonmentCommitsNothing(t *testing.T) {
	o, _ := newTestOrchestrator(
		llm.MockResponse{Content: "opening?"},
		llm.MockResponse{Fragments: []string{"first ", "second ", "third"}},
	)
	sess, _, err := o.Initialize(context.Background(), linearProblem(), session.ModeStandard, "")
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	stream, err := o.ProcessTurnStreaming(context.Background(), sess.ID, "what now", "", "")
	if err != nil {
		t.Fatalf("ProcessTurnStreaming: %v", err)
	}
	if _, err := stream.Recv(); err != nil {
		t.Fatalf("Recv: %v", err)
	}
	stream.Close()

	got, _ := o.sessions.Get(sess.ID, "")
	if len(got.Messages) != 2 {
		t.Fatalf("messages = %d, want 2 (no partial tutor message committed)", len(got.Messages))
	}
	for _, m := range got.Messages {
		if m.Role == session.RoleTutor && strings.Contains(m.Content, "first") {
			t.Errorf("partial tutor content committed: %q", m.Content)
		}
	}
}

func TestDetectCompletionUpdatesMasteryOnce(t *testing.T) {
	o, _ := newTestOrchestrator(
		llm.MockResponse{Content: "What undoes the +3?"},
		llm.MockResponse{Content: "Correct, x = 4 is the final answer!"},
	)
	sess, _, err := o.Initialize(context.Background(), linearProblem(), session.ModeStandard, "owner-1")
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if _, err := o.ProcessTurn(context.Background(), sess.ID, "x = 4", "", "owner-1"); err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}

	sig, event, err := o.DetectCompletion(context.Background(), sess.ID, "owner-1")
	if err != nil {
		t.Fatalf("DetectCompletion: %v", err)
	}
	if !sig.IsCompleted {
		t.Fatalf("signal = %+v, want completed", sig)
	}
	if event == nil {
		t.Fatal("expected completion event payload")
	}
	if event.OwnerID != "owner-1" || len(event.ConceptIDs) == 0 {
		t.Errorf("event = %+v", event)
	}

	rec := o.mastery.Get("owner-1", "linear_equations")
	if rec == nil {
		t.Fatal("no mastery record for linear_equations")
	}
	if rec.Mastery <= mastery.DefaultMastery {
		t.Errorf("Mastery = %d, want > default after solve", rec.Mastery)
	}
	attempted := rec.ProblemsAttempted

	// Re-detection returns the payload but must not double-count.
	if _, event2, err := o.DetectCompletion(context.Background(), sess.ID, "owner-1"); err != nil || event2 == nil {
		t.Fatalf("second DetectCompletion = %v, %v", event2, err)
	}
	if rec2 := o.mastery.Get("owner-1", "linear_equations"); rec2.ProblemsAttempted != attempted {
		t.Errorf("ProblemsAttempted = %d after re-detection, want %d", rec2.ProblemsAttempted, attempted)
	}
}

func TestDetectCompletionIncomplete(t *testing.T) {
	o, _ := newTestOrchestrator(
		llm.MockResponse{Content: "Great start - what would you try first?"},
	)
	sess, _, err := o.Initialize(context.Background(), linearProblem(), session.ModeStandard, "")
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	sig, event, err := o.DetectCompletion(context.Background(), sess.ID, "")
	if err != nil {
		t.Fatalf("DetectCompletion: %v", err)
	}
	if sig.IsCompleted || event != nil {
		t.Errorf("sig = %+v, event = %+v, want incomplete and no payload", sig, event)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	o, _ := newTestOrchestrator(llm.MockResponse{Content: "opening?"})
	sess, _, err := o.Initialize(context.Background(), linearProblem(), session.ModeStandard, "owner-1")
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if err := o.Clear(context.Background(), sess.ID, "owner-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := o.Clear(context.Background(), sess.ID, "owner-1"); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
	if _, err := o.sessions.Get(sess.ID, "owner-1"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("Get after Clear = %v, want not found", err)
	}
}

func TestHintLevelEscalatesWithUncertainty(t *testing.T) {
	msgs := []session.Message{
		{Role: session.RoleUser, Content: "Solve 2x + 3 = 11"},
		{Role: session.RoleTutor, Content: "What undoes the +3?"},
		{Role: session.RoleUser, Content: "I don't know"},
		{Role: session.RoleTutor, Content: "Think about inverse operations."},
		{Role: session.RoleUser, Content: "still not sure"},
	}
	if got := hintLevel(msgs, session.ModeStandard); got != 2 {
		t.Errorf("standard level = %d, want 2", got)
	}
	if got := hintLevel(msgs, session.ModeGentle); got != 3 {
		t.Errorf("gentle level = %d, want 3 (escalates early)", got)
	}
	if got := hintLevel(msgs, session.ModeChallenge); got != 1 {
		t.Errorf("challenge level = %d, want 1 (escalates late)", got)
	}
	if got := hintLevel(msgs[:2], session.ModeStandard); got != 0 {
		t.Errorf("no-uncertainty level = %d, want 0", got)
	}
}

func TestSystemPromptCarriesPolicy(t *testing.T) {
	p := linearProblem()
	prompt := systemPrompt(p, session.ModeChallenge, 2)
	for _, want := range []string{p.Text, "NEVER state the final", "guiding question", "challenge"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
