// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldQuestionKind holds the string denoting the question_kind field in the database.
	FieldQuestionKind = "question_kind"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldResponseTimeMs holds the string denoting the response_time_ms field in the database.
	FieldResponseTimeMs = "response_time_ms"
	// FieldUserRatingBefore holds the string denoting the user_rating_before field in the database.
	FieldUserRatingBefore = "user_rating_before"
	// FieldUserRatingAfter holds the string denoting the user_rating_after field in the database.
	FieldUserRatingAfter = "user_rating_after"
	// FieldQuestionRatingBefore holds the string denoting the question_rating_before field in the database.
	FieldQuestionRatingBefore = "question_rating_before"
	// FieldQuestionRatingAfter holds the string denoting the question_rating_after field in the database.
	FieldQuestionRatingAfter = "question_rating_after"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldQuestionID,
	FieldQuestionKind,
	FieldResult,
	FieldResponseTimeMs,
	FieldUserRatingBefore,
	FieldUserRatingAfter,
	FieldQuestionRatingBefore,
	FieldQuestionRatingAfter,
	FieldIntervalDays,
	FieldEaseFactor,
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
	// DefaultSessionID holds the default value on creation for the "session_id" field.
	DefaultSessionID string
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// QuestionKindValidator is a validator for the "question_kind" field. It is called by the builders before save.
	QuestionKindValidator func(string) error
	// ResultValidator is a validator for the "result" field. It is called by the builders before save.
	ResultValidator func(string) error
	// DefaultResponseTimeMs holds the default value on creation for the "response_time_ms" field.
	DefaultResponseTimeMs int64
)

// OrderOption defines the ordering options for the AttemptEvent queries.
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

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByQuestionKind orders the results by the question_kind field.
func ByQuestionKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionKind, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByResponseTimeMs orders the results by the response_time_ms field.
func ByResponseTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseTimeMs, opts...).ToFunc()
}

// ByUserRatingBefore orders the results by the user_rating_before field.
func ByUserRatingBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserRatingBefore, opts...).ToFunc()
}

// ByUserRatingAfter orders the results by the user_rating_after field.
func ByUserRatingAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserRatingAfter, opts...).ToFunc()
}

// ByQuestionRatingBefore orders the results by the question_rating_before field.
func ByQuestionRatingBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionRatingBefore, opts...).ToFunc()
}

// ByQuestionRatingAfter orders the results by the question_rating_after field.
func ByQuestionRatingAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionRatingAfter, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}
