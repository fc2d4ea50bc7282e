package store

import (
	"context"
	"time"
)

// SessionEventData records a tutoring-session lifecycle event.
type SessionEventData struct {
	SessionID    string
	OwnerID      string
	Action       string // "start", "end", "clear"
	ProblemType  string
	Turns        int // total messages (on end only)
	DurationSecs int // wall-clock session length (on end only)
}

// TurnEventData records a single processed tutor turn.
type TurnEventData struct {
	SessionID   string
	UserChars   int
	TutorChars  int
	Streamed    bool
	LatencyMs   int64
	HintLevel   int
}

// MasteryEventData records a concept-record update.
type MasteryEventData struct {
	OwnerID          string
	ConceptID        string
	WasSolved        bool
	HintsUsed        int
	TimeSpentMinutes float64
	MasteryBefore    int
	MasteryAfter     int
	SessionID        string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	Streamed     bool
	ErrorMessage string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendTurnEvent(ctx context.Context, data TurnEventData) error
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ConceptSolveStats returns solved/attempted counts recorded for a
	// concept across all mastery events of one owner.
	ConceptSolveStats(ctx context.Context, ownerID, conceptID string) (solved, attempted int, err error)
}

// ConceptRecordData is the serialized form of a mastery record.
type ConceptRecordData struct {
	ConceptID           string  `json:"concept_id"`
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	Mastery             int     `json:"mastery"`
	ProblemsAttempted   int     `json:"problems_attempted"`
	ProblemsSolved      int     `json:"problems_solved"`
	AvgHintsUsed        float64 `json:"avg_hints_used"`
	AvgTimeSpentMinutes float64 `json:"avg_time_spent_minutes"`
	LastPracticed       *string `json:"last_practiced,omitempty"` // RFC3339
}

// LearningPathStepData is the serialized form of a learning-path step.
type LearningPathStepData struct {
	Step          int      `json:"step"`
	ConceptID     string   `json:"concept_id"`
	ConceptName   string   `json:"concept_name"`
	Difficulty    string   `json:"difficulty"`
	ProblemKind   string   `json:"problem_kind"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Completed     bool     `json:"completed"`
	CompletedAt   *string  `json:"completed_at,omitempty"` // RFC3339
}

// LearningPathData is the serialized form of a learning path.
type LearningPathData struct {
	ID             string                 `json:"id"`
	OwnerID        string                 `json:"owner_id,omitempty"`
	Goal           string                 `json:"goal"`
	TargetConcepts []string               `json:"target_concepts"`
	Steps          []LearningPathStepData `json:"steps"`
	CurrentStep    int                    `json:"current_step"`
	Progress       int                    `json:"progress"`
	CreatedAt      string                 `json:"created_at"`
	UpdatedAt      string                 `json:"updated_at"`
}

// SnapshotData captures the full learner state at a point in time.
// Mastery is keyed by owner ID (empty key holds guest records), then by
// concept ID.
type SnapshotData struct {
	Version int                                      `json:"version"`
	Mastery map[string]map[string]*ConceptRecordData `json:"mastery,omitempty"`
	Paths   []LearningPathData                       `json:"paths,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
