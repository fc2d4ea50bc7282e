package completion

// Confidence is the detector's confidence band for a verdict.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Signal is the detector's verdict on whether a session's underlying
// problem has been solved. Computed on demand from a transcript, never
// persisted as session state.
type Signal struct {
	IsCompleted bool
	Score       float64
	Confidence  Confidence
	// Reasons lists every matched cue in human-readable form, for
	// observability and debugging.
	Reasons []string
}
