package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answered (or skipped) question, with the
// rating and scheduling deltas that resulted from it.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Default("").
			Comment("Links to SessionEvent; empty for ad-hoc answers"),
		field.String("question_id").
			NotEmpty().
			Comment("UUID of the question attempted"),
		field.String("question_kind").
			NotEmpty().
			Comment("multiple_choice, true_false, or short_answer"),
		field.String("result").
			NotEmpty().
			Comment("correct, incorrect, or skipped"),
		field.Int64("response_time_ms").
			Default(0).
			Comment("Milliseconds to answer; 0 when not measured"),
		field.Float("user_rating_before").
			Comment("User rating going into the attempt"),
		field.Float("user_rating_after").
			Comment("User rating after the update"),
		field.Float("question_rating_before").
			Comment("Question rating going into the attempt"),
		field.Float("question_rating_after").
			Comment("Question rating after the update"),
		field.Float("interval_days").
			Comment("Review interval assigned by the attempt"),
		field.Float("ease_factor").
			Comment("Ease factor after the attempt"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
		index.Fields("result"),
	}
}
