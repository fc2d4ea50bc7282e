package completion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/tutoriz/internal/session"
)

// Scores contributed by each cue class. A terminal confirmation alone
// reaches the default threshold; praise alone never does.
const (
	terminalCueScore   = 0.6
	praiseCueScore     = 0.2
	corroborationScore = 0.3

	// DefaultThreshold is the minimum score for a completed verdict.
	DefaultThreshold = 0.6
)

// Config tunes the detector.
type Config struct {
	Threshold float64
}

// DefaultConfig returns the default detector configuration.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold}
}

// Detector scores transcripts for problem completion. It is stateless
// and safe for concurrent use.
type Detector struct {
	cfg Config
}

// New creates a Detector.
func New(cfg Config) *Detector {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	return &Detector{cfg: cfg}
}

// Detect scores the transcript and decides whether the underlying
// problem has been solved. Pure function of its inputs: it inspects the
// most recent tutor message for terminal-confirmation cues, demands that
// praise alone never completes, and treats a trailing question as
// evidence the dialogue is still going.
func (d *Detector) Detect(messages []session.Message, problem session.Problem) Signal {
	sig := Signal{Confidence: ConfidenceLow}

	lastTutor := lastByRole(messages, session.RoleTutor)
	if lastTutor == nil {
		sig.Reasons = append(sig.Reasons, "no tutor message yet")
		return sig
	}

	sentences := sentencePattern.FindAllString(lastTutor.Content, -1)

	// A terminal cue only counts when its own sentence is not a question
	// and no later sentence in the same message asks one: "Correct! Now
	// what about the left side?" means the tutor is still teaching.
	terminalMatched := false
	terminalSuppressed := false
	for i, sent := range sentences {
		if negationPattern.MatchString(sent) {
			continue
		}
		cue := matchAny(terminalCues, sent)
		if cue == "" {
			continue
		}
		if isQuestion(sent) || anyQuestionAfter(sentences, i) {
			terminalSuppressed = true
			continue
		}
		terminalMatched = true
		sig.Reasons = append(sig.Reasons, fmt.Sprintf("terminal confirmation %q", cue))
	}
	if terminalSuppressed && !terminalMatched {
		sig.Reasons = append(sig.Reasons, "confirmation cue suppressed by trailing question")
	}
	if terminalMatched {
		sig.Score += terminalCueScore
	}

	if cue := matchAny(praiseCues, lastTutor.Content); cue != "" {
		sig.Score += praiseCueScore
		sig.Reasons = append(sig.Reasons, fmt.Sprintf("encouragement %q", cue))
	}

	// Corroboration: the value the learner last stated shows up in the
	// confirming message. Only meaningful alongside a confirmation.
	corroborated := false
	if terminalMatched {
		if value := lastUserValue(messages); value != "" && containsValue(lastTutor.Content, value) {
			corroborated = true
			sig.Score += corroborationScore
			sig.Reasons = append(sig.Reasons, fmt.Sprintf("tutor confirmed learner value %q", value))
		}
	}

	sig.IsCompleted = sig.Score >= d.cfg.Threshold
	// Confidence follows the matched cues, not the accumulated score:
	// float addition makes 0.6+0.3 land just under the summed constant.
	switch {
	case terminalMatched && corroborated:
		sig.Confidence = ConfidenceHigh
	case sig.IsCompleted:
		sig.Confidence = ConfidenceMedium
	}
	return sig
}

func lastByRole(messages []session.Message, role session.Role) *session.Message {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == role {
			return &messages[i]
		}
	}
	return nil
}

func matchAny(cues []*regexp.Regexp, text string) string {
	for _, re := range cues {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func isQuestion(sentence string) bool {
	return strings.HasSuffix(strings.TrimSpace(sentence), "?")
}

func anyQuestionAfter(sentences []string, i int) bool {
	for _, s := range sentences[i+1:] {
		if isQuestion(s) {
			return true
		}
	}
	return false
}

// lastUserValue returns the last numeric or symbolic value stated in the
// most recent user message, normalized to its bare numeric form.
func lastUserValue(messages []session.Message) string {
	lastUser := lastByRole(messages, session.RoleUser)
	if lastUser == nil {
		return ""
	}
	matches := userValuePattern.FindAllStringSubmatch(lastUser.Content, -1)
	if len(matches) == 0 {
		return ""
	}
	return strings.TrimSpace(matches[len(matches)-1][1])
}

func containsValue(text, value string) bool {
	re := regexp.MustCompile(`(^|[^\d.])` + regexp.QuoteMeta(value) + `($|[^\d.])`)
	return re.MatchString(text)
}
