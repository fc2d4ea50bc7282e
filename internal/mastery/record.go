package mastery

import (
	"math"
	"time"
)

// DefaultMastery is the starting mastery level for a freshly encountered
// concept: unknown ability, assumed average.
const DefaultMastery = 50

// Weighting of the mastery blend.
const (
	solveRateWeight   = 0.7
	hintEconomyWeight = 0.2
	timeEconomyWeight = 0.1

	// hintPenaltyPerHint is subtracted from 100 per average hint used.
	hintPenaltyPerHint = 20.0

	// timePenaltyPerMinute is subtracted from 100 per average minute spent.
	timePenaltyPerMinute = 5.0

	// neutralTimeScore applies when no timing data has been recorded.
	neutralTimeScore = 50.0
)

// Record tracks a learner's mastery of a single concept.
// Never deleted, only superseded by Update.
type Record struct {
	ConceptID           string
	Name                string
	Category            string
	Mastery             int // 0-100
	ProblemsAttempted   int
	ProblemsSolved      int
	AvgHintsUsed        float64
	AvgTimeSpentMinutes float64
	LastPracticed       time.Time
}

// NewRecord returns a fresh record at the default mastery level.
func NewRecord(conceptID, name, category string) *Record {
	return &Record{
		ConceptID: conceptID,
		Name:      name,
		Category:  category,
		Mastery:   DefaultMastery,
	}
}

// Update folds one practice outcome into the record and returns the
// updated copy. The prior record is not mutated. Rolling averages use the
// incremental mean so no per-outcome history is needed.
func (r *Record) Update(wasSolved bool, hintsUsed int, timeSpentMinutes float64, now time.Time) *Record {
	next := *r

	oldCount := float64(next.ProblemsAttempted)
	next.ProblemsAttempted++
	if wasSolved {
		next.ProblemsSolved++
	}

	newCount := float64(next.ProblemsAttempted)
	next.AvgHintsUsed = (next.AvgHintsUsed*oldCount + float64(hintsUsed)) / newCount
	next.AvgTimeSpentMinutes = (next.AvgTimeSpentMinutes*oldCount + timeSpentMinutes) / newCount
	next.LastPracticed = now

	next.Mastery = computeMastery(&next)
	return &next
}

// computeMastery blends solve rate, hint economy and time economy into a
// 0-100 integer.
func computeMastery(r *Record) int {
	solveRate := 0.0
	if r.ProblemsAttempted > 0 {
		solveRate = float64(r.ProblemsSolved) / float64(r.ProblemsAttempted) * 100
	}

	hintScore := 100 - r.AvgHintsUsed*hintPenaltyPerHint
	if hintScore < 0 {
		hintScore = 0
	}

	timeScore := neutralTimeScore
	if r.AvgTimeSpentMinutes > 0 {
		timeScore = 100 - r.AvgTimeSpentMinutes*timePenaltyPerMinute
		if timeScore < 0 {
			timeScore = 0
		}
	}

	blended := solveRate*solveRateWeight + hintScore*hintEconomyWeight + timeScore*timeEconomyWeight
	m := int(math.Round(blended))
	if m < 0 {
		m = 0
	}
	if m > 100 {
		m = 100
	}
	return m
}
