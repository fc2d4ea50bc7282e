package mastery

import (
	"math/rand/v2"
	"testing"
	"time"
)

func TestFirstSolveRaisesMasteryAboveDefault(t *testing.T) {
	rec := NewRecord("linear_equations", "Linear Equations", "algebra")
	got := rec.Update(true, 0, 2, time.Now())

	if got.ProblemsAttempted != 1 {
		t.Errorf("ProblemsAttempted = %d, want 1", got.ProblemsAttempted)
	}
	if got.ProblemsSolved != 1 {
		t.Errorf("ProblemsSolved = %d, want 1", got.ProblemsSolved)
	}
	if got.Mastery <= DefaultMastery {
		t.Errorf("Mastery = %d, want > %d", got.Mastery, DefaultMastery)
	}
	// Prior record is not mutated.
	if rec.ProblemsAttempted != 0 || rec.Mastery != DefaultMastery {
		t.Errorf("prior record mutated: %+v", rec)
	}
}

func TestFailuresLowerMastery(t *testing.T) {
	rec := NewRecord("fractions", "Fractions", "arithmetic")
	now := time.Now()
	r := rec.Update(false, 3, 10, now)
	r = r.Update(false, 3, 10, now)

	if r.ProblemsSolved != 0 {
		t.Errorf("ProblemsSolved = %d, want 0", r.ProblemsSolved)
	}
	if r.Mastery >= DefaultMastery {
		t.Errorf("Mastery = %d after two failures, want < %d", r.Mastery, DefaultMastery)
	}
}

func TestIncrementalAverages(t *testing.T) {
	rec := NewRecord("decimals", "Decimals", "arithmetic")
	now := time.Now()
	r := rec.Update(true, 2, 4, now)
	r = r.Update(true, 0, 2, now)

	if r.AvgHintsUsed != 1 {
		t.Errorf("AvgHintsUsed = %v, want 1", r.AvgHintsUsed)
	}
	if r.AvgTimeSpentMinutes != 3 {
		t.Errorf("AvgTimeSpentMinutes = %v, want 3", r.AvgTimeSpentMinutes)
	}
}

func TestNoTimingDataIsNeutral(t *testing.T) {
	withTiming := NewRecord("c", "C", "").Update(true, 0, 30, time.Now())
	without := NewRecord("c", "C", "").Update(true, 0, 0, time.Now())

	// 30 minutes average scores worse than the neutral 50.
	if withTiming.Mastery >= without.Mastery {
		t.Errorf("slow solve mastery %d should be below no-timing mastery %d",
			withTiming.Mastery, without.Mastery)
	}
}

func TestMasteryStaysInBounds(t *testing.T) {
	rec := NewRecord("x", "X", "")
	r := rec
	now := time.Now()
	for range 500 {
		r = r.Update(rand.IntN(2) == 0, rand.IntN(12), float64(rand.IntN(90)), now)
		if r.Mastery < 0 || r.Mastery > 100 {
			t.Fatalf("Mastery = %d out of [0,100] after %d attempts", r.Mastery, r.ProblemsAttempted)
		}
	}
}

func TestHeavyHintUseFloorsHintScore(t *testing.T) {
	// Ten hints per problem floors the hint component at zero rather
	// than driving mastery negative.
	r := NewRecord("x", "X", "").Update(true, 10, 0, time.Now())
	// solve 100*0.7 + hint 0*0.2 + neutral time 50*0.1
	if r.Mastery != 75 {
		t.Errorf("Mastery = %d, want 75", r.Mastery)
	}
}
