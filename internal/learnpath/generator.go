package learnpath

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tutoriz/internal/catalog"
	"github.com/abhisek/tutoriz/internal/mastery"
)

// Catalog is the slice of the concept catalog the generator needs.
// The default implementation delegates to the package-level catalog;
// tests substitute fakes (including deliberately cyclic ones).
type Catalog interface {
	Get(id string) (catalog.Concept, bool)
	All() []catalog.Concept
	DefaultStarterSet() []string
}

type liveCatalog struct{}

func (liveCatalog) Get(id string) (catalog.Concept, bool) { return catalog.Get(id) }
func (liveCatalog) All() []catalog.Concept                { return catalog.All() }
func (liveCatalog) DefaultStarterSet() []string           { return catalog.DefaultStarterSet() }

// Generator builds and advances learning paths.
type Generator struct {
	cat Catalog
	now func() time.Time
}

// New creates a Generator backed by the live concept catalog.
func New() *Generator {
	return &Generator{cat: liveCatalog{}, now: time.Now}
}

// NewWithCatalog creates a Generator over a custom catalog.
func NewWithCatalog(cat Catalog) *Generator {
	return &Generator{cat: cat, now: time.Now}
}

// FromGoal builds a learning path for a free-text goal. Goal text is
// matched case-insensitively against concept names and aliases; when
// nothing matches, the catalog's default starter set seeds the path.
func (g *Generator) FromGoal(ownerID, goalText string, records map[string]*mastery.Record) *Path {
	targets := g.matchGoal(goalText)
	if len(targets) == 0 {
		targets = g.cat.DefaultStarterSet()
	}

	now := g.now()
	p := &Path{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		Goal:           goalText,
		TargetConcepts: targets,
		Steps:          g.BuildSequence(targets, records),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	p.recompute()
	return p
}

// matchGoal returns catalog concepts whose name or an alias appears in
// the goal text, in catalog order.
func (g *Generator) matchGoal(goalText string) []string {
	goal := strings.ToLower(goalText)
	var targets []string
	for _, c := range g.cat.All() {
		if strings.Contains(goal, strings.ToLower(c.Name)) {
			targets = append(targets, c.ID)
			continue
		}
		for _, alias := range c.Aliases {
			if strings.Contains(goal, alias) {
				targets = append(targets, c.ID)
				break
			}
		}
	}
	return targets
}

// BuildSequence expands the target set with its full prerequisite
// closure and orders it so every prerequisite precedes its dependents.
// The depth-first traversal tolerates concepts absent from the catalog
// (silently skipped) and prerequisite cycles (the visited set stops
// revisits, so cycle edges are ignored rather than looping forever).
// Steps whose mastery record is already at or above the mastered
// threshold start out completed.
func (g *Generator) BuildSequence(targetConcepts []string, records map[string]*mastery.Record) []Step {
	visited := make(map[string]bool)
	var ordered []catalog.Concept

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true

		c, ok := g.cat.Get(id)
		if !ok {
			return
		}
		for _, prereq := range c.Prerequisites {
			visit(prereq)
		}
		ordered = append(ordered, c)
	}

	for _, id := range targetConcepts {
		visit(id)
	}

	now := g.now()
	steps := make([]Step, 0, len(ordered))
	for i, c := range ordered {
		step := Step{
			Number:        i + 1,
			ConceptID:     c.ID,
			ConceptName:   c.Name,
			Difficulty:    string(c.Difficulty),
			ProblemKind:   c.ProblemKind,
			Prerequisites: append([]string(nil), c.Prerequisites...),
		}
		if rec, ok := records[c.ID]; ok && rec.Mastery >= mastery.MasteredThreshold {
			step.Completed = true
			t := now
			step.CompletedAt = &t
		}
		steps = append(steps, step)
	}
	return steps
}

// Advance marks the step for completedConceptID as completed and returns
// an updated copy of the path. Re-marking an already-completed step is a
// no-op; an unknown concept ID leaves the path unchanged (curriculum
// generation degrades gracefully rather than failing). Steps whose
// mastery reached the threshold since the path was built are also
// refreshed, so the path converges on the mastery records rather than
// drifting from them.
func (g *Generator) Advance(path *Path, completedConceptID string, records map[string]*mastery.Record) *Path {
	next := path.clone()
	changed := false
	now := g.now()

	for i := range next.Steps {
		s := &next.Steps[i]
		if s.Completed {
			continue
		}
		refreshed := s.ConceptID == completedConceptID
		if !refreshed {
			rec, ok := records[s.ConceptID]
			refreshed = ok && rec.Mastery >= mastery.MasteredThreshold
		}
		if refreshed {
			s.Completed = true
			t := now
			s.CompletedAt = &t
			changed = true
		}
	}

	if changed {
		next.UpdatedAt = now
	}
	next.recompute()
	return next
}
