package learnpath

import (
	"sync"
	"time"

	"github.com/abhisek/tutoriz/internal/store"
)

// Registry is a concurrency-safe collection of learning paths, keyed by
// path ID. Paths are stored and returned as deep copies so callers can
// never mutate shared state.
type Registry struct {
	mu    sync.RWMutex
	paths map[string]*Path
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{paths: make(map[string]*Path)}
}

// Put stores or replaces a path.
func (r *Registry) Put(p *Path) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths[p.ID] = p.clone()
}

// Get returns a copy of the path, or false when unknown.
func (r *Registry) Get(id string) (*Path, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.paths[id]
	if !ok {
		return nil, false
	}
	return p.clone(), true
}

// All returns copies of every stored path, order unspecified.
func (r *Registry) All() []*Path {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Path, 0, len(r.paths))
	for _, p := range r.paths {
		out = append(out, p.clone())
	}
	return out
}

// ToData converts a path to its snapshot representation.
func ToData(p *Path) store.LearningPathData {
	data := store.LearningPathData{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		Goal:           p.Goal,
		TargetConcepts: append([]string(nil), p.TargetConcepts...),
		CurrentStep:    p.CurrentStep,
		Progress:       p.Progress,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
	for _, s := range p.Steps {
		step := store.LearningPathStepData{
			Step:          s.Number,
			ConceptID:     s.ConceptID,
			ConceptName:   s.ConceptName,
			Difficulty:    s.Difficulty,
			ProblemKind:   s.ProblemKind,
			Prerequisites: append([]string(nil), s.Prerequisites...),
			Completed:     s.Completed,
		}
		if s.CompletedAt != nil {
			ts := s.CompletedAt.Format(time.RFC3339)
			step.CompletedAt = &ts
		}
		data.Steps = append(data.Steps, step)
	}
	return data
}

// FromData restores a path from its snapshot representation. Malformed
// timestamps fall back to the zero time rather than failing the load.
func FromData(d store.LearningPathData) *Path {
	p := &Path{
		ID:             d.ID,
		OwnerID:        d.OwnerID,
		Goal:           d.Goal,
		TargetConcepts: append([]string(nil), d.TargetConcepts...),
		CurrentStep:    d.CurrentStep,
		Progress:       d.Progress,
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, d.CreatedAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, d.UpdatedAt)
	for _, s := range d.Steps {
		step := Step{
			Number:        s.Step,
			ConceptID:     s.ConceptID,
			ConceptName:   s.ConceptName,
			Difficulty:    s.Difficulty,
			ProblemKind:   s.ProblemKind,
			Prerequisites: append([]string(nil), s.Prerequisites...),
			Completed:     s.Completed,
		}
		if s.CompletedAt != nil {
			if ts, err := time.Parse(time.RFC3339, *s.CompletedAt); err == nil {
				step.CompletedAt = &ts
			}
		}
		p.Steps = append(p.Steps, step)
	}
	return p
}
