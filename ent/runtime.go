// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/tutoriz/ent/llmrequestevent"
	"github.com/abhisek/tutoriz/ent/masteryevent"
	"github.com/abhisek/tutoriz/ent/schema"
	"github.com/abhisek/tutoriz/ent/sessionevent"
	"github.com/abhisek/tutoriz/ent/snapshot"
	"github.com/abhisek/tutoriz/ent/turnevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescStreamed is the schema descriptor for streamed field.
	llmrequesteventDescStreamed := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultStreamed holds the default value on creation for the streamed field.
	llmrequestevent.DefaultStreamed = llmrequesteventDescStreamed.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescOwnerID is the schema descriptor for owner_id field.
	masteryeventDescOwnerID := masteryeventFields[0].Descriptor()
	// masteryevent.DefaultOwnerID holds the default value on creation for the owner_id field.
	masteryevent.DefaultOwnerID = masteryeventDescOwnerID.Default.(string)
	// masteryeventDescConceptID is the schema descriptor for concept_id field.
	masteryeventDescConceptID := masteryeventFields[1].Descriptor()
	// masteryevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masteryevent.ConceptIDValidator = masteryeventDescConceptID.Validators[0].(func(string) error)
	// masteryeventDescHintsUsed is the schema descriptor for hints_used field.
	masteryeventDescHintsUsed := masteryeventFields[3].Descriptor()
	// masteryevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	masteryevent.DefaultHintsUsed = masteryeventDescHintsUsed.Default.(int)
	// masteryeventDescTimeSpentMinutes is the schema descriptor for time_spent_minutes field.
	masteryeventDescTimeSpentMinutes := masteryeventFields[4].Descriptor()
	// masteryevent.DefaultTimeSpentMinutes holds the default value on creation for the time_spent_minutes field.
	masteryevent.DefaultTimeSpentMinutes = masteryeventDescTimeSpentMinutes.Default.(float64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescOwnerID is the schema descriptor for owner_id field.
	sessioneventDescOwnerID := sessioneventFields[1].Descriptor()
	// sessionevent.DefaultOwnerID holds the default value on creation for the owner_id field.
	sessionevent.DefaultOwnerID = sessioneventDescOwnerID.Default.(string)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescProblemType is the schema descriptor for problem_type field.
	sessioneventDescProblemType := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultProblemType holds the default value on creation for the problem_type field.
	sessionevent.DefaultProblemType = sessioneventDescProblemType.Default.(string)
	// sessioneventDescTurns is the schema descriptor for turns field.
	sessioneventDescTurns := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTurns holds the default value on creation for the turns field.
	sessionevent.DefaultTurns = sessioneventDescTurns.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescSessionID is the schema descriptor for session_id field.
	turneventDescSessionID := turneventFields[0].Descriptor()
	// turnevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	turnevent.SessionIDValidator = turneventDescSessionID.Validators[0].(func(string) error)
	// turneventDescUserChars is the schema descriptor for user_chars field.
	turneventDescUserChars := turneventFields[1].Descriptor()
	// turnevent.DefaultUserChars holds the default value on creation for the user_chars field.
	turnevent.DefaultUserChars = turneventDescUserChars.Default.(int)
	// turneventDescTutorChars is the schema descriptor for tutor_chars field.
	turneventDescTutorChars := turneventFields[2].Descriptor()
	// turnevent.DefaultTutorChars holds the default value on creation for the tutor_chars field.
	turnevent.DefaultTutorChars = turneventDescTutorChars.Default.(int)
	// turneventDescStreamed is the schema descriptor for streamed field.
	turneventDescStreamed := turneventFields[3].Descriptor()
	// turnevent.DefaultStreamed holds the default value on creation for the streamed field.
	turnevent.DefaultStreamed = turneventDescStreamed.Default.(bool)
	// turneventDescLatencyMs is the schema descriptor for latency_ms field.
	turneventDescLatencyMs := turneventFields[4].Descriptor()
	// turnevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	turnevent.DefaultLatencyMs = turneventDescLatencyMs.Default.(int64)
	// turneventDescHintLevel is the schema descriptor for hint_level field.
	turneventDescHintLevel := turneventFields[5].Descriptor()
	// turnevent.DefaultHintLevel holds the default value on creation for the hint_level field.
	turnevent.DefaultHintLevel = turneventDescHintLevel.Default.(int)
}
