// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the turnevent type in the database.
	Label = "turn_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserChars holds the string denoting the user_chars field in the database.
	FieldUserChars = "user_chars"
	// FieldTutorChars holds the string denoting the tutor_chars field in the database.
	FieldTutorChars = "tutor_chars"
	// FieldStreamed holds the string denoting the streamed field in the database.
	FieldStreamed = "streamed"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldHintLevel holds the string denoting the hint_level field in the database.
	FieldHintLevel = "hint_level"
	// Table holds the table name of the turnevent in the database.
	Table = "turn_events"
)

// Columns holds all SQL columns for turnevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldUserChars,
	FieldTutorChars,
	FieldStreamed,
	FieldLatencyMs,
	FieldHintLevel,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultUserChars holds the default value on creation for the "user_chars" field.
	DefaultUserChars int
	// DefaultTutorChars holds the default value on creation for the "tutor_chars" field.
	DefaultTutorChars int
	// DefaultStreamed holds the default value on creation for the "streamed" field.
	DefaultStreamed bool
	// DefaultLatencyMs holds the default value on creation for the "latency_ms" field.
	DefaultLatencyMs int64
	// DefaultHintLevel holds the default value on creation for the "hint_level" field.
	DefaultHintLevel int
)

// OrderOption defines the ordering options for the TurnEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserChars orders the results by the user_chars field.
func ByUserChars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserChars, opts...).ToFunc()
}

// ByTutorChars orders the results by the tutor_chars field.
func ByTutorChars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTutorChars, opts...).ToFunc()
}

// ByStreamed orders the results by the streamed field.
func ByStreamed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamed, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByHintLevel orders the results by the hint_level field.
func ByHintLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintLevel, opts...).ToFunc()
}
