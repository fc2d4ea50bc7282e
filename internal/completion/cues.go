package completion

import "regexp"

// Terminal-confirmation cues: the tutor explicitly confirms a final
// result. These carry the completion decision.
var terminalCues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(that's|that is|you're|you are)\s+(correct|right|exactly right)\b`),
	regexp.MustCompile(`(?i)\bcorrect\b`),
	regexp.MustCompile(`(?i)\bexactly right\b`),
	regexp.MustCompile(`(?i)\bfinal answer\b`),
	regexp.MustCompile(`(?i)\byou\s+(solved|got)\s+it\b`),
	regexp.MustCompile(`(?i)\bproblem\s+(is\s+)?solved\b`),
	regexp.MustCompile(`(?i)\bwell\s+solved\b`),
}

// Generic encouragement cues: praise that routinely appears mid-dialogue
// ("great job spotting that"). Alone they never complete a session.
var praiseCues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(great|good|nice|excellent|awesome|fantastic|wonderful)\s+(job|work|thinking|effort|progress)\b`),
	regexp.MustCompile(`(?i)\bwell done\b`),
	regexp.MustCompile(`(?i)\bperfect\b`),
	regexp.MustCompile(`(?i)\byou're on the right track\b`),
}

// negationPattern recognizes negated confirmations ("that's not correct",
// "that isn't quite right"). A sentence matching it contributes no
// terminal cue.
var negationPattern = regexp.MustCompile(`(?i)\b(?:not|isn['’]t|aren['’]t|wasn['’]t|don['’]t|doesn['’]t)\s+(?:quite\s+|yet\s+|look\s+|seem\s+)*(?:correct|right|exactly right|solved|the\s+final\s+answer|it)\b`)

// userValuePattern extracts the last stated value from a user message:
// "x = 4", "-3.5", "7/2". Used for corroborating a confirmed answer.
var userValuePattern = regexp.MustCompile(`(?i)(?:[a-z]\s*=\s*)?(-?\d+(?:\.\d+)?(?:\s*/\s*\d+)?)`)

// sentencePattern splits a message into sentences, keeping the trailing
// punctuation so question sentences stay recognizable.
var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)
