package tutor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/tutoriz/internal/session"
)

// MaxMessageChars bounds user input per turn (and the submitted problem).
const MaxMessageChars = 4000

// maxHintLevel caps hint escalation. Level 0 is pure questioning; each
// level narrows the hint toward the specific step without revealing it.
const maxHintLevel = 3

// uncertaintyCues mark user turns where the learner is stuck. Repeated
// uncertainty across turns escalates hint specificity.
var uncertaintyCues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(i\s+)?(don't|dont|do not)\s+(know|understand|get)\b`),
	regexp.MustCompile(`(?i)\bnot?\s+sure\b`),
	regexp.MustCompile(`(?i)\bno\s+idea\b`),
	regexp.MustCompile(`(?i)\b(i'm|im|i am)\s+(stuck|lost|confused)\b`),
	regexp.MustCompile(`(?i)\bhelp\b`),
	regexp.MustCompile(`(?i)\bgive\s+up\b`),
	regexp.MustCompile(`(?i)\bwhat\s+do\s+i\s+do\b`),
	regexp.MustCompile(`(?i)\bcan'?t\s+(do|solve|figure)\b`),
}

// hintLevel derives the current escalation level from the transcript:
// the number of user turns expressing uncertainty, adjusted by mode and
// capped. Gentle mode escalates one level early; challenge one level late.
func hintLevel(messages []session.Message, mode session.DifficultyMode) int {
	level := 0
	for _, m := range messages {
		if m.Role != session.RoleUser {
			continue
		}
		for _, re := range uncertaintyCues {
			if re.MatchString(m.Content) {
				level++
				break
			}
		}
	}

	switch mode {
	case session.ModeGentle:
		if level > 0 {
			level++
		}
	case session.ModeChallenge:
		level--
	}

	if level < 0 {
		level = 0
	}
	if level > maxHintLevel {
		level = maxHintLevel
	}
	return level
}

// hintGuidance describes what the tutor may reveal at each level.
var hintGuidance = [maxHintLevel + 1]string{
	"Ask only conceptual guiding questions. Do not name the operation or step to perform.",
	"You may name the general technique or property that applies, but still ask the student to apply it themselves.",
	"You may point at the exact place in the problem to work on next, framed as a question about that spot.",
	"You may walk the student right up to the next step with a very specific question, but the student must still state the step and its result themselves.",
}

// systemPrompt builds the Socratic system instruction for one turn.
// The policy holds at every level: guide with questions, escalate hint
// specificity only with repeated uncertainty, and never state the final
// answer even when asked outright.
func systemPrompt(p session.Problem, mode session.DifficultyMode, level int) string {
	if level < 0 {
		level = 0
	}
	if level > maxHintLevel {
		level = maxHintLevel
	}

	var b strings.Builder
	b.WriteString("You are a Socratic math tutor. The student is working on this problem:\n\n")
	b.WriteString(p.Text)
	b.WriteString("\n\n")
	if p.Type != "" {
		fmt.Fprintf(&b, "Problem type: %s\n\n", p.Type)
	}

	b.WriteString("Rules, in priority order:\n")
	b.WriteString("1. NEVER state the final numeric or symbolic answer, in any form, even if the student asks for it directly. Deflect such requests with another guiding question.\n")
	b.WriteString("2. NEVER perform the next algebraic step for the student. Every reply must end with exactly one guiding question.\n")
	b.WriteString("3. When the student states a correct final answer, confirm it explicitly (e.g. \"Correct, that is the final answer\") and do not ask a further question about this problem.\n")
	b.WriteString("4. When the student makes an error, do not correct it outright; ask a question that leads them to find it.\n")
	b.WriteString("5. Keep replies short: one or two sentences plus the question.\n\n")

	fmt.Fprintf(&b, "Current hint level: %s\n\n", hintGuidance[level])

	switch mode {
	case session.ModeGentle:
		b.WriteString("Pace: gentle. Offer warm encouragement and smaller sub-steps.")
	case session.ModeChallenge:
		b.WriteString("Pace: challenge. Minimal scaffolding; prefer open questions over hints.")
	default:
		b.WriteString("Pace: standard.")
	}

	return b.String()
}
