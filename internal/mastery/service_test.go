package mastery

import (
	"context"
	"slices"
	"testing"

	"github.com/abhisek/tutoriz/internal/session"
	"github.com/abhisek/tutoriz/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	masteryEvents []store.MasteryEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendTurnEvent(_ context.Context, _ store.TurnEventData) error {
	return nil
}
func (m *mockEventRepo) AppendMasteryEvent(_ context.Context, data store.MasteryEventData) error {
	m.masteryEvents = append(m.masteryEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) ConceptSolveStats(_ context.Context, _, _ string) (int, int, error) {
	return 0, 0, nil
}

func TestUpdateCreatesRecordOnFirstEncounter(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(nil, repo)

	rec := svc.Update(context.Background(), "alice", "linear_equations", true, 0, 2)
	if rec.Name != "Linear Equations" {
		t.Errorf("Name = %q, want catalog name", rec.Name)
	}
	if rec.Mastery <= DefaultMastery {
		t.Errorf("Mastery = %d, want > %d", rec.Mastery, DefaultMastery)
	}

	if len(repo.masteryEvents) != 1 {
		t.Fatalf("mastery events = %d, want 1", len(repo.masteryEvents))
	}
	ev := repo.masteryEvents[0]
	if ev.MasteryBefore != DefaultMastery || ev.MasteryAfter != rec.Mastery {
		t.Errorf("event before/after = %d/%d, want %d/%d",
			ev.MasteryBefore, ev.MasteryAfter, DefaultMastery, rec.Mastery)
	}
}

func TestRecordsAreOwnerScoped(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	svc.Update(ctx, "alice", "fractions", true, 0, 1)
	svc.Update(ctx, "bob", "fractions", false, 4, 20)

	alice := svc.Get("alice", "fractions")
	bob := svc.Get("bob", "fractions")
	if alice == nil || bob == nil {
		t.Fatal("records missing")
	}
	if alice.Mastery <= bob.Mastery {
		t.Errorf("alice %d should outrank bob %d", alice.Mastery, bob.Mastery)
	}
	if svc.Get("", "fractions") != nil {
		t.Error("guest bucket should be empty")
	}
}

func TestUnknownConceptFallsBackToID(t *testing.T) {
	svc := NewService(nil, nil)
	rec := svc.Update(context.Background(), "", "made_up_concept", true, 0, 0)
	if rec.Name != "made_up_concept" {
		t.Errorf("Name = %q, want the raw ID", rec.Name)
	}
}

func TestNeedingPracticeAscending(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	// Weak: repeated failures. Strong: repeated clean solves.
	for range 3 {
		svc.Update(ctx, "", "fractions", false, 2, 5)
		svc.Update(ctx, "", "decimals", true, 0, 1)
	}
	svc.Update(ctx, "", "percentages", false, 1, 3)
	svc.Update(ctx, "", "percentages", true, 1, 3)

	got := svc.NeedingPractice("", 70)
	if len(got) < 2 {
		t.Fatalf("NeedingPractice = %d records, want at least 2", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Mastery < got[i-1].Mastery {
			t.Errorf("not ascending at %d: %d then %d", i, got[i-1].Mastery, got[i].Mastery)
		}
	}
	for _, r := range got {
		if r.Mastery >= 70 {
			t.Errorf("record %s at %d should be below threshold", r.ConceptID, r.Mastery)
		}
	}
}

func TestExtractConcepts(t *testing.T) {
	svc := NewService(nil, nil)
	got := svc.ExtractConcepts(session.Problem{
		Text: "Solve for x: 2x + 3 = 11",
		Type: "linear_equations",
	})
	if !slices.Contains(got, "linear_equations") {
		t.Errorf("ExtractConcepts = %v, want linear_equations", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()
	svc.Update(ctx, "alice", "fractions", true, 1, 2)
	svc.Update(ctx, "", "decimals", false, 0, 0)

	snap := &store.SnapshotData{Version: 1, Mastery: svc.SnapshotData()}
	restored := NewService(snap, nil)

	orig := svc.Get("alice", "fractions")
	back := restored.Get("alice", "fractions")
	if back == nil {
		t.Fatal("record lost in snapshot round trip")
	}
	if back.Mastery != orig.Mastery || back.ProblemsAttempted != orig.ProblemsAttempted {
		t.Errorf("restored = %+v, want %+v", back, orig)
	}
	if restored.Get("", "decimals") == nil {
		t.Error("guest record lost in round trip")
	}
}
