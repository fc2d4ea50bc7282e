package completion

import (
	"strings"
	"testing"

	"github.com/abhisek/tutoriz/internal/session"
)

func transcript(pairs ...[2]string) []session.Message {
	var msgs []session.Message
	for _, p := range pairs {
		msgs = append(msgs, session.Message{Role: session.Role(p[0]), Content: p[1]})
	}
	return msgs
}

func detect(t *testing.T, msgs []session.Message) Signal {
	t.Helper()
	return New(DefaultConfig()).Detect(msgs, session.Problem{Text: "Solve for x: 2x + 3 = 11"})
}

func TestPraiseWithTrailingQuestionIsNotComplete(t *testing.T) {
	msgs := transcript(
		[2]string{"user", "I think we should isolate x first"},
		[2]string{"tutor", "Great job figuring out we need to isolate x - what's the next step?"},
	)
	sig := detect(t, msgs)
	if sig.IsCompleted {
		t.Errorf("praise followed by a question classified as complete: %+v", sig)
	}
	if len(sig.Reasons) == 0 {
		t.Error("expected the matched praise cue in Reasons")
	}
}

func TestConfirmedFinalAnswerIsComplete(t *testing.T) {
	msgs := transcript(
		[2]string{"user", "x = 4"},
		[2]string{"tutor", "Correct, x = 4 is the final answer!"},
	)
	sig := detect(t, msgs)
	if !sig.IsCompleted {
		t.Fatalf("confirmed final answer not detected: %+v", sig)
	}
	if sig.Confidence != ConfidenceHigh {
		t.Errorf("Confidence = %s, want high (confirmation plus value corroboration)", sig.Confidence)
	}
	found := false
	for _, r := range sig.Reasons {
		if strings.Contains(r, "terminal confirmation") {
			found = true
		}
	}
	if !found {
		t.Errorf("Reasons = %v, want a terminal confirmation entry", sig.Reasons)
	}
}

func TestConfirmationFollowedByNewQuestionSuppressed(t *testing.T) {
	msgs := transcript(
		[2]string{"user", "so a is 7"},
		[2]string{"tutor", "Correct, a = 7. Now, what does that tell us about b?"},
	)
	sig := detect(t, msgs)
	if sig.IsCompleted {
		t.Errorf("confirmation with a follow-up question classified as complete: %+v", sig)
	}
}

func TestNegatedConfirmationIsNotComplete(t *testing.T) {
	corrections := []string{
		"That's not correct. Check the sign when you subtract 3.",
		"Hmm, that isn't quite right. Look at the left side again.",
		"x = 5 is not the final answer. Try the division once more.",
	}
	for _, reply := range corrections {
		msgs := transcript(
			[2]string{"user", "x = 5"},
			[2]string{"tutor", reply},
		)
		sig := detect(t, msgs)
		if sig.IsCompleted {
			t.Errorf("correction %q classified as complete: %+v", reply, sig)
		}
	}
}

func TestPraiseAloneInsufficient(t *testing.T) {
	msgs := transcript(
		[2]string{"user", "done"},
		[2]string{"tutor", "Well done, excellent work today."},
	)
	sig := detect(t, msgs)
	if sig.IsCompleted {
		t.Errorf("generic praise alone classified as complete: %+v", sig)
	}
	if sig.Score == 0 {
		t.Error("praise cue should still contribute score")
	}
}

func TestNoTutorMessage(t *testing.T) {
	msgs := transcript([2]string{"user", "help me solve 2x = 8"})
	sig := detect(t, msgs)
	if sig.IsCompleted || sig.Score != 0 {
		t.Errorf("empty transcript scored: %+v", sig)
	}
}

func TestConfirmationWithoutUserValueStillCompletes(t *testing.T) {
	msgs := transcript(
		[2]string{"user", "I divided both sides by two"},
		[2]string{"tutor", "That's correct, you solved it."},
	)
	sig := detect(t, msgs)
	if !sig.IsCompleted {
		t.Errorf("plain confirmation not detected: %+v", sig)
	}
	if sig.Confidence != ConfidenceMedium {
		t.Errorf("Confidence = %s, want medium without corroboration", sig.Confidence)
	}
}

func TestDetectIsPure(t *testing.T) {
	msgs := transcript(
		[2]string{"user", "x = 4"},
		[2]string{"tutor", "Correct, x = 4 is the final answer!"},
	)
	first := detect(t, msgs)
	for range 5 {
		if got := detect(t, msgs); got.IsCompleted != first.IsCompleted || got.Score != first.Score {
			t.Fatalf("Detect not deterministic: %+v vs %+v", got, first)
		}
	}
}
