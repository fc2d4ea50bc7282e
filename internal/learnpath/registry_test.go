package learnpath

import (
	"testing"
	"time"
)

func samplePath() *Path {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	done := now.Add(time.Hour)
	return &Path{
		ID:             "path-1",
		OwnerID:        "owner-1",
		Goal:           "master algebra",
		TargetConcepts: []string{"linear_equations"},
		Steps: []Step{
			{Number: 1, ConceptID: "fractions", ConceptName: "Fractions", Difficulty: "beginner", ProblemKind: "computation", Completed: true, CompletedAt: &done},
			{Number: 2, ConceptID: "linear_equations", ConceptName: "Linear Equations", Difficulty: "intermediate", ProblemKind: "equation", Prerequisites: []string{"fractions"}},
		},
		CurrentStep: 1,
		Progress:    50,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestRegistryPutGetIsolation(t *testing.T) {
	r := NewRegistry()
	p := samplePath()
	r.Put(p)

	got, ok := r.Get("path-1")
	if !ok {
		t.Fatal("path not found")
	}
	got.Steps[1].Completed = true
	again, _ := r.Get("path-1")
	if again.Steps[1].Completed {
		t.Error("mutation of a returned copy leaked into the registry")
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) = ok")
	}
	if len(r.All()) != 1 {
		t.Errorf("All = %d paths", len(r.All()))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	p := samplePath()
	restored := FromData(ToData(p))

	if restored.ID != p.ID || restored.Goal != p.Goal || restored.OwnerID != p.OwnerID {
		t.Errorf("identity changed: %+v", restored)
	}
	if restored.Progress != 50 || restored.CurrentStep != 1 {
		t.Errorf("progress/current = %d/%d", restored.Progress, restored.CurrentStep)
	}
	if len(restored.Steps) != 2 {
		t.Fatalf("steps = %d", len(restored.Steps))
	}
	if !restored.Steps[0].Completed || restored.Steps[0].CompletedAt == nil {
		t.Errorf("step 0 = %+v", restored.Steps[0])
	}
	if !restored.Steps[0].CompletedAt.Equal(*p.Steps[0].CompletedAt) {
		t.Errorf("CompletedAt = %v", restored.Steps[0].CompletedAt)
	}
	if restored.Steps[1].Prerequisites[0] != "fractions" {
		t.Errorf("prerequisites = %v", restored.Steps[1].Prerequisites)
	}
	if !restored.CreatedAt.Equal(p.CreatedAt) {
		t.Errorf("CreatedAt = %v", restored.CreatedAt)
	}
}
