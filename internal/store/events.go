package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutoriz/ent"
	"github.com/abhisek/tutoriz/ent/masteryevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetOwnerID(data.OwnerID).
		SetAction(data.Action).
		SetProblemType(data.ProblemType).
		SetTurns(data.Turns).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendTurnEvent(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserChars(data.UserChars).
		SetTutorChars(data.TutorChars).
		SetStreamed(data.Streamed).
		SetLatencyMs(data.LatencyMs).
		SetHintLevel(data.HintLevel).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetOwnerID(data.OwnerID).
		SetConceptID(data.ConceptID).
		SetWasSolved(data.WasSolved).
		SetHintsUsed(data.HintsUsed).
		SetTimeSpentMinutes(data.TimeSpentMinutes).
		SetMasteryBefore(data.MasteryBefore).
		SetMasteryAfter(data.MasteryAfter)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetStreamed(data.Streamed).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) ConceptSolveStats(ctx context.Context, ownerID, conceptID string) (int, int, error) {
	events, err := r.client.MasteryEvent.Query().
		Where(
			masteryevent.OwnerID(ownerID),
			masteryevent.ConceptID(conceptID),
		).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query mastery events: %w", err)
	}

	solved := 0
	for _, e := range events {
		if e.WasSolved {
			solved++
		}
	}
	return solved, len(events), nil
}
