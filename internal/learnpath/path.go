package learnpath

import (
	"time"
)

// Step is one concept-practice step in a learning path.
// Identity is immutable; only Completed/CompletedAt change.
type Step struct {
	Number        int
	ConceptID     string
	ConceptName   string
	Difficulty    string
	ProblemKind   string
	Prerequisites []string
	Completed     bool
	CompletedAt   *time.Time
}

// Path is a prerequisite-ordered practice sequence toward a stated goal.
type Path struct {
	ID             string
	OwnerID        string
	Goal           string
	TargetConcepts []string
	Steps          []Step
	CurrentStep    int // index of the first incomplete step, or the last step when all are done
	Progress       int // completed steps as a rounded percentage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// recompute refreshes Progress and CurrentStep from the step flags.
func (p *Path) recompute() {
	if len(p.Steps) == 0 {
		p.Progress = 0
		p.CurrentStep = 0
		return
	}

	completed := 0
	current := -1
	for i, s := range p.Steps {
		if s.Completed {
			completed++
		} else if current == -1 {
			current = i
		}
	}
	if current == -1 {
		current = len(p.Steps) - 1
	}

	p.CurrentStep = current
	p.Progress = int(float64(completed)/float64(len(p.Steps))*100 + 0.5)
}

// clone returns a deep copy so Advance never mutates its input.
func (p *Path) clone() *Path {
	cp := *p
	cp.TargetConcepts = append([]string(nil), p.TargetConcepts...)
	cp.Steps = make([]Step, len(p.Steps))
	copy(cp.Steps, p.Steps)
	for i := range cp.Steps {
		cp.Steps[i].Prerequisites = append([]string(nil), p.Steps[i].Prerequisites...)
		if p.Steps[i].CompletedAt != nil {
			t := *p.Steps[i].CompletedAt
			cp.Steps[i].CompletedAt = &t
		}
	}
	return &cp
}
