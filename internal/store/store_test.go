package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSequenceIsMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for range 10 {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence %d not greater than %d", n, prev)
		}
		prev = n
	}

	cur, err := s.Sequence(ctx)
	if err != nil {
		t.Fatalf("current sequence: %v", err)
	}
	if cur != prev {
		t.Errorf("Sequence = %d, want %d", cur, prev)
	}
}

func TestEventAppendAndSolveStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []MasteryEventData{
		{OwnerID: "u1", ConceptID: "fractions", WasSolved: true, MasteryBefore: 50, MasteryAfter: 70},
		{OwnerID: "u1", ConceptID: "fractions", WasSolved: false, MasteryBefore: 70, MasteryAfter: 55},
		{OwnerID: "u2", ConceptID: "fractions", WasSolved: true, MasteryBefore: 50, MasteryAfter: 70},
	}
	for _, data := range appends {
		if err := repo.AppendMasteryEvent(ctx, data); err != nil {
			t.Fatalf("append mastery event: %v", err)
		}
	}

	solved, attempted, err := repo.ConceptSolveStats(ctx, "u1", "fractions")
	if err != nil {
		t.Fatalf("solve stats: %v", err)
	}
	if solved != 1 || attempted != 2 {
		t.Errorf("stats = %d/%d, want 1/2", solved, attempted)
	}

	// Other owners' events must not bleed in.
	solved, attempted, err = repo.ConceptSolveStats(ctx, "u3", "fractions")
	if err != nil {
		t.Fatalf("solve stats: %v", err)
	}
	if solved != 0 || attempted != 0 {
		t.Errorf("stats for unknown owner = %d/%d, want 0/0", solved, attempted)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	data := SnapshotData{
		Version: 1,
		Mastery: map[string]map[string]*ConceptRecordData{
			"": {
				"linear_equations": {
					ConceptID:         "linear_equations",
					Name:              "Linear Equations",
					Mastery:           72,
					ProblemsAttempted: 4,
					ProblemsSolved:    3,
					AvgHintsUsed:      1.5,
				},
			},
		},
	}
	if err := repo.Save(ctx, &Snapshot{Sequence: 7, Timestamp: now, Data: data}); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	rec := snap.Data.Mastery[""]["linear_equations"]
	if rec == nil {
		t.Fatal("mastery record missing after round trip")
	}
	if rec.Mastery != 72 || rec.ProblemsSolved != 3 {
		t.Errorf("record = %+v, want mastery 72, solved 3", rec)
	}
}
