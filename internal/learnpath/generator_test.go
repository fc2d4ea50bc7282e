package learnpath

import (
	"slices"
	"testing"
	"time"

	"github.com/abhisek/tutoriz/internal/catalog"
	"github.com/abhisek/tutoriz/internal/mastery"
)

// fakeCatalog lets tests shape the concept graph, including cycles.
type fakeCatalog struct {
	concepts []catalog.Concept
	starter  []string
}

func (f *fakeCatalog) Get(id string) (catalog.Concept, bool) {
	for _, c := range f.concepts {
		if c.ID == id {
			return c, true
		}
	}
	return catalog.Concept{}, false
}
func (f *fakeCatalog) All() []catalog.Concept      { return f.concepts }
func (f *fakeCatalog) DefaultStarterSet() []string { return f.starter }

func stepIndex(steps []Step, conceptID string) int {
	for i, s := range steps {
		if s.ConceptID == conceptID {
			return i
		}
	}
	return -1
}

func masteredRecord(id string) *mastery.Record {
	return &mastery.Record{ConceptID: id, Mastery: mastery.MasteredThreshold}
}

func TestPrerequisitesPrecedeDependents(t *testing.T) {
	g := New()
	path := g.FromGoal("", "master algebra", nil)

	for _, s := range path.Steps {
		for _, prereq := range s.Prerequisites {
			pi := stepIndex(path.Steps, prereq)
			si := stepIndex(path.Steps, s.ConceptID)
			if pi == -1 {
				continue // prerequisite outside the path
			}
			if pi >= si {
				t.Errorf("prerequisite %s at %d does not precede %s at %d", prereq, pi, s.ConceptID, si)
			}
		}
	}
}

func TestMasterAlgebraGoal(t *testing.T) {
	g := New()
	path := g.FromGoal("", "master algebra", nil)

	if !slices.Contains(path.TargetConcepts, "linear_equations") {
		t.Errorf("targets = %v, want the algebra-aliased concepts", path.TargetConcepts)
	}
	if path.Progress != 0 {
		t.Errorf("Progress = %d, want 0", path.Progress)
	}
	if path.CurrentStep != 0 {
		t.Errorf("CurrentStep = %d, want 0", path.CurrentStep)
	}
	if len(path.Steps) == 0 {
		t.Fatal("no steps generated")
	}
	for i, s := range path.Steps {
		if s.Number != i+1 {
			t.Errorf("step %d numbered %d", i, s.Number)
		}
		if s.Completed {
			t.Errorf("step %s completed with no mastery records", s.ConceptID)
		}
	}
}

func TestGoalFallbackToStarterSet(t *testing.T) {
	g := New()
	path := g.FromGoal("", "just get better somehow", nil)
	if !slices.Equal(path.TargetConcepts, catalog.DefaultStarterSet()) {
		t.Errorf("targets = %v, want starter set", path.TargetConcepts)
	}
}

func TestCyclicPrerequisitesTerminate(t *testing.T) {
	fake := &fakeCatalog{
		concepts: []catalog.Concept{
			{ID: "a", Name: "A", Prerequisites: []string{"b"}},
			{ID: "b", Name: "B", Prerequisites: []string{"a"}},
		},
	}
	g := NewWithCatalog(fake)

	done := make(chan []Step, 1)
	go func() { done <- g.BuildSequence([]string{"a"}, nil) }()

	var steps []Step
	select {
	case steps = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("BuildSequence did not terminate on a prerequisite cycle")
	}

	if len(steps) != 2 {
		t.Fatalf("steps = %d, want both cycle members exactly once", len(steps))
	}
	ids := []string{steps[0].ConceptID, steps[1].ConceptID}
	slices.Sort(ids)
	if !slices.Equal(ids, []string{"a", "b"}) {
		t.Errorf("steps = %v, want a and b", ids)
	}
}

func TestUnknownConceptsSilentlySkipped(t *testing.T) {
	fake := &fakeCatalog{
		concepts: []catalog.Concept{
			{ID: "known", Name: "Known", Prerequisites: []string{"ghost"}},
		},
	}
	g := NewWithCatalog(fake)
	steps := g.BuildSequence([]string{"known", "phantom"}, nil)
	if len(steps) != 1 || steps[0].ConceptID != "known" {
		t.Errorf("steps = %v, want only the known concept", steps)
	}
}

func TestStepsPreCompletedFromMastery(t *testing.T) {
	g := New()
	records := map[string]*mastery.Record{
		"arithmetic_operations": masteredRecord("arithmetic_operations"),
	}
	path := g.FromGoal("", "master fractions", records)

	i := stepIndex(path.Steps, "arithmetic_operations")
	if i == -1 {
		t.Fatal("arithmetic_operations not in fractions path")
	}
	if !path.Steps[i].Completed {
		t.Error("mastered prerequisite not pre-completed")
	}
	if path.CurrentStep == i {
		t.Error("current step points at a completed step")
	}
	if path.Progress == 0 {
		t.Error("Progress = 0 with a pre-completed step")
	}
}

func TestAdvanceIdempotent(t *testing.T) {
	g := New()
	path := g.FromGoal("", "master fractions", nil)
	first := path.Steps[0].ConceptID

	once := g.Advance(path, first, nil)
	if !once.Steps[0].Completed {
		t.Fatal("step not completed after Advance")
	}
	twice := g.Advance(once, first, nil)

	if twice.Progress != once.Progress {
		t.Errorf("Progress changed on re-advance: %d -> %d", once.Progress, twice.Progress)
	}
	if twice.CurrentStep != once.CurrentStep {
		t.Errorf("CurrentStep changed on re-advance: %d -> %d", once.CurrentStep, twice.CurrentStep)
	}
	// Input path untouched.
	if path.Steps[0].Completed {
		t.Error("Advance mutated its input")
	}
}

func TestAdvanceToCompletion(t *testing.T) {
	fake := &fakeCatalog{
		concepts: []catalog.Concept{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "B", Prerequisites: []string{"a"}},
		},
	}
	g := NewWithCatalog(fake)
	path := &Path{Steps: g.BuildSequence([]string{"b"}, nil)}
	path.recompute()

	path = g.Advance(path, "a", nil)
	if path.CurrentStep != 1 || path.Progress != 50 {
		t.Errorf("after first advance: step %d progress %d, want 1/50", path.CurrentStep, path.Progress)
	}

	path = g.Advance(path, "b", nil)
	if path.Progress != 100 {
		t.Errorf("Progress = %d, want 100", path.Progress)
	}
	// All complete: current stays on the last step, further advances are no-ops.
	if path.CurrentStep != 1 {
		t.Errorf("CurrentStep = %d, want last step", path.CurrentStep)
	}
	again := g.Advance(path, "b", nil)
	if again.Progress != 100 || again.CurrentStep != 1 {
		t.Errorf("advance after completion changed state: %+v", again)
	}
}
