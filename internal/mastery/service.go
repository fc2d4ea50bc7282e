package mastery

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/abhisek/tutoriz/internal/catalog"
	"github.com/abhisek/tutoriz/internal/session"
	"github.com/abhisek/tutoriz/internal/store"
)

// MasteredThreshold is the mastery level at which a concept counts as
// mastered for learning-path purposes.
const MasteredThreshold = 70

// Service manages concept mastery records, keyed by owner then concept.
// Guest records live under the empty owner key.
type Service struct {
	mu        sync.RWMutex
	records   map[string]map[string]*Record
	eventRepo store.EventRepo
	now       func() time.Time
}

// NewService creates a mastery service, loading state from the snapshot.
// Both arguments may be nil (fresh state, no event logging).
func NewService(snap *store.SnapshotData, eventRepo store.EventRepo) *Service {
	s := &Service{
		records:   make(map[string]map[string]*Record),
		eventRepo: eventRepo,
		now:       time.Now,
	}
	if snap != nil && snap.Mastery != nil {
		s.loadFromSnapshot(snap.Mastery)
	}
	return s
}

func (s *Service) loadFromSnapshot(data map[string]map[string]*store.ConceptRecordData) {
	for owner, byConcept := range data {
		bucket := make(map[string]*Record, len(byConcept))
		for id, rd := range byConcept {
			rec := &Record{
				ConceptID:           id,
				Name:                rd.Name,
				Category:            rd.Category,
				Mastery:             rd.Mastery,
				ProblemsAttempted:   rd.ProblemsAttempted,
				ProblemsSolved:      rd.ProblemsSolved,
				AvgHintsUsed:        rd.AvgHintsUsed,
				AvgTimeSpentMinutes: rd.AvgTimeSpentMinutes,
			}
			if rd.LastPracticed != nil {
				if t, err := time.Parse(time.RFC3339, *rd.LastPracticed); err == nil {
					rec.LastPracticed = t
				}
			}
			bucket[id] = rec
		}
		s.records[owner] = bucket
	}
}

// ExtractConcepts returns the concept IDs a problem exercises, in the
// catalog's deterministic order.
func (s *Service) ExtractConcepts(p session.Problem) []string {
	return catalog.Detect(p.Text, p.Type)
}

// Get returns a copy of the record for (owner, concept), or nil if the
// concept has not been encountered.
func (s *Service) Get(ownerID, conceptID string) *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.records[ownerID][conceptID]; ok {
		cp := *rec
		return &cp
	}
	return nil
}

// Update folds one practice outcome into the owner's record for the
// concept, creating it at the default mastery level on first encounter,
// and returns a copy of the updated record.
func (s *Service) Update(ctx context.Context, ownerID, conceptID string, wasSolved bool, hintsUsed int, timeSpentMinutes float64) *Record {
	s.mu.Lock()
	bucket := s.records[ownerID]
	if bucket == nil {
		bucket = make(map[string]*Record)
		s.records[ownerID] = bucket
	}

	prior := bucket[conceptID]
	if prior == nil {
		name, category := conceptID, ""
		if c, ok := catalog.Get(conceptID); ok {
			name, category = c.Name, string(c.Category)
		}
		prior = NewRecord(conceptID, name, category)
	}

	updated := prior.Update(wasSolved, hintsUsed, timeSpentMinutes, s.now())
	bucket[conceptID] = updated
	cp := *updated
	s.mu.Unlock()

	if s.eventRepo != nil {
		err := s.eventRepo.AppendMasteryEvent(ctx, store.MasteryEventData{
			OwnerID:          ownerID,
			ConceptID:        conceptID,
			WasSolved:        wasSolved,
			HintsUsed:        hintsUsed,
			TimeSpentMinutes: timeSpentMinutes,
			MasteryBefore:    prior.Mastery,
			MasteryAfter:     updated.Mastery,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log mastery event: %v\n", err)
		}
	}

	return &cp
}

// RecordsFor returns copies of all records for an owner, keyed by concept.
func (s *Service) RecordsFor(ownerID string) map[string]*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*Record, len(s.records[ownerID]))
	for id, rec := range s.records[ownerID] {
		cp := *rec
		out[id] = &cp
	}
	return out
}

// NeedingPractice returns the owner's records below the threshold,
// ordered by ascending mastery (weakest first). Ties break by concept ID
// so the ordering is stable.
func (s *Service) NeedingPractice(ownerID string, threshold int) []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Record
	for _, rec := range s.records[ownerID] {
		if rec.Mastery < threshold {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mastery != out[j].Mastery {
			return out[i].Mastery < out[j].Mastery
		}
		return out[i].ConceptID < out[j].ConceptID
	})
	return out
}

// RelatedConcepts returns suggested next concepts for the given one:
// the symmetric closure of the catalog's related declarations. Used for
// suggestions, not prerequisite ordering.
func (s *Service) RelatedConcepts(conceptID string) []string {
	return catalog.Related(conceptID)
}

// SnapshotData exports all mastery state for persistence.
func (s *Service) SnapshotData() map[string]map[string]*store.ConceptRecordData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]map[string]*store.ConceptRecordData, len(s.records))
	for owner, bucket := range s.records {
		byConcept := make(map[string]*store.ConceptRecordData, len(bucket))
		for id, rec := range bucket {
			rd := &store.ConceptRecordData{
				ConceptID:           rec.ConceptID,
				Name:                rec.Name,
				Category:            rec.Category,
				Mastery:             rec.Mastery,
				ProblemsAttempted:   rec.ProblemsAttempted,
				ProblemsSolved:      rec.ProblemsSolved,
				AvgHintsUsed:        rec.AvgHintsUsed,
				AvgTimeSpentMinutes: rec.AvgTimeSpentMinutes,
			}
			if !rec.LastPracticed.IsZero() {
				ts := rec.LastPracticed.Format(time.RFC3339)
				rd.LastPracticed = &ts
			}
			byConcept[id] = rd
		}
		out[owner] = byConcept
	}
	return out
}
