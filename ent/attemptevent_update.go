// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/haxx0rman/qBank/ent/attemptevent"
	"github.com/haxx0rman/qBank/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AttemptEventUpdate) SetQuestionID(v string) *AttemptEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionKind sets the "question_kind" field.
func (_u *AttemptEventUpdate) SetQuestionKind(v string) *AttemptEventUpdate {
	_u.mutation.SetQuestionKind(v)
	return _u
}

// SetNillableQuestionKind sets the "question_kind" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionKind(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionKind(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *AttemptEventUpdate) SetResult(v string) *AttemptEventUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableResult(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AttemptEventUpdate) SetResponseTimeMs(v int64) *AttemptEventUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableResponseTimeMs(v *int64) *AttemptEventUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AttemptEventUpdate) AddResponseTimeMs(v int64) *AttemptEventUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetUserRatingBefore sets the "user_rating_before" field.
func (_u *AttemptEventUpdate) SetUserRatingBefore(v float64) *AttemptEventUpdate {
	_u.mutation.ResetUserRatingBefore()
	_u.mutation.SetUserRatingBefore(v)
	return _u
}

// SetNillableUserRatingBefore sets the "user_rating_before" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserRatingBefore(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserRatingBefore(*v)
	}
	return _u
}

// AddUserRatingBefore adds value to the "user_rating_before" field.
func (_u *AttemptEventUpdate) AddUserRatingBefore(v float64) *AttemptEventUpdate {
	_u.mutation.AddUserRatingBefore(v)
	return _u
}

// SetUserRatingAfter sets the "user_rating_after" field.
func (_u *AttemptEventUpdate) SetUserRatingAfter(v float64) *AttemptEventUpdate {
	_u.mutation.ResetUserRatingAfter()
	_u.mutation.SetUserRatingAfter(v)
	return _u
}

// SetNillableUserRatingAfter sets the "user_rating_after" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserRatingAfter(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserRatingAfter(*v)
	}
	return _u
}

// AddUserRatingAfter adds value to the "user_rating_after" field.
func (_u *AttemptEventUpdate) AddUserRatingAfter(v float64) *AttemptEventUpdate {
	_u.mutation.AddUserRatingAfter(v)
	return _u
}

// SetQuestionRatingBefore sets the "question_rating_before" field.
func (_u *AttemptEventUpdate) SetQuestionRatingBefore(v float64) *AttemptEventUpdate {
	_u.mutation.ResetQuestionRatingBefore()
	_u.mutation.SetQuestionRatingBefore(v)
	return _u
}

// SetNillableQuestionRatingBefore sets the "question_rating_before" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionRatingBefore(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionRatingBefore(*v)
	}
	return _u
}

// AddQuestionRatingBefore adds value to the "question_rating_before" field.
func (_u *AttemptEventUpdate) AddQuestionRatingBefore(v float64) *AttemptEventUpdate {
	_u.mutation.AddQuestionRatingBefore(v)
	return _u
}

// SetQuestionRatingAfter sets the "question_rating_after" field.
func (_u *AttemptEventUpdate) SetQuestionRatingAfter(v float64) *AttemptEventUpdate {
	_u.mutation.ResetQuestionRatingAfter()
	_u.mutation.SetQuestionRatingAfter(v)
	return _u
}

// SetNillableQuestionRatingAfter sets the "question_rating_after" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionRatingAfter(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionRatingAfter(*v)
	}
	return _u
}

// AddQuestionRatingAfter adds value to the "question_rating_after" field.
func (_u *AttemptEventUpdate) AddQuestionRatingAfter(v float64) *AttemptEventUpdate {
	_u.mutation.AddQuestionRatingAfter(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *AttemptEventUpdate) SetIntervalDays(v float64) *AttemptEventUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableIntervalDays(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *AttemptEventUpdate) AddIntervalDays(v float64) *AttemptEventUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *AttemptEventUpdate) SetEaseFactor(v float64) *AttemptEventUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableEaseFactor(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *AttemptEventUpdate) AddEaseFactor(v float64) *AttemptEventUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionKind(); ok {
		if err := attemptevent.QuestionKindValidator(v); err != nil {
			return &ValidationError{Name: "question_kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Result(); ok {
		if err := attemptevent.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.result": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionKind(); ok {
		_spec.SetField(attemptevent.FieldQuestionKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(attemptevent.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptevent.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(attemptevent.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UserRatingBefore(); ok {
		_spec.SetField(attemptevent.FieldUserRatingBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUserRatingBefore(); ok {
		_spec.AddField(attemptevent.FieldUserRatingBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UserRatingAfter(); ok {
		_spec.SetField(attemptevent.FieldUserRatingAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUserRatingAfter(); ok {
		_spec.AddField(attemptevent.FieldUserRatingAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionRatingBefore(); ok {
		_spec.SetField(attemptevent.FieldQuestionRatingBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuestionRatingBefore(); ok {
		_spec.AddField(attemptevent.FieldQuestionRatingBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionRatingAfter(); ok {
		_spec.SetField(attemptevent.FieldQuestionRatingAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuestionRatingAfter(); ok {
		_spec.AddField(attemptevent.FieldQuestionRatingAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(attemptevent.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(attemptevent.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(attemptevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(attemptevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AttemptEventUpdateOne) SetQuestionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionKind sets the "question_kind" field.
func (_u *AttemptEventUpdateOne) SetQuestionKind(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuestionKind(v)
	return _u
}

// SetNillableQuestionKind sets the "question_kind" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionKind(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionKind(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *AttemptEventUpdateOne) SetResult(v string) *AttemptEventUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableResult(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AttemptEventUpdateOne) SetResponseTimeMs(v int64) *AttemptEventUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableResponseTimeMs(v *int64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AttemptEventUpdateOne) AddResponseTimeMs(v int64) *AttemptEventUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetUserRatingBefore sets the "user_rating_before" field.
func (_u *AttemptEventUpdateOne) SetUserRatingBefore(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetUserRatingBefore()
	_u.mutation.SetUserRatingBefore(v)
	return _u
}

// SetNillableUserRatingBefore sets the "user_rating_before" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserRatingBefore(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserRatingBefore(*v)
	}
	return _u
}

// AddUserRatingBefore adds value to the "user_rating_before" field.
func (_u *AttemptEventUpdateOne) AddUserRatingBefore(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddUserRatingBefore(v)
	return _u
}

// SetUserRatingAfter sets the "user_rating_after" field.
func (_u *AttemptEventUpdateOne) SetUserRatingAfter(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetUserRatingAfter()
	_u.mutation.SetUserRatingAfter(v)
	return _u
}

// SetNillableUserRatingAfter sets the "user_rating_after" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserRatingAfter(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserRatingAfter(*v)
	}
	return _u
}

// AddUserRatingAfter adds value to the "user_rating_after" field.
func (_u *AttemptEventUpdateOne) AddUserRatingAfter(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddUserRatingAfter(v)
	return _u
}

// SetQuestionRatingBefore sets the "question_rating_before" field.
func (_u *AttemptEventUpdateOne) SetQuestionRatingBefore(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetQuestionRatingBefore()
	_u.mutation.SetQuestionRatingBefore(v)
	return _u
}

// SetNillableQuestionRatingBefore sets the "question_rating_before" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionRatingBefore(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionRatingBefore(*v)
	}
	return _u
}

// AddQuestionRatingBefore adds value to the "question_rating_before" field.
func (_u *AttemptEventUpdateOne) AddQuestionRatingBefore(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddQuestionRatingBefore(v)
	return _u
}

// SetQuestionRatingAfter sets the "question_rating_after" field.
func (_u *AttemptEventUpdateOne) SetQuestionRatingAfter(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetQuestionRatingAfter()
	_u.mutation.SetQuestionRatingAfter(v)
	return _u
}

// SetNillableQuestionRatingAfter sets the "question_rating_after" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionRatingAfter(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionRatingAfter(*v)
	}
	return _u
}

// AddQuestionRatingAfter adds value to the "question_rating_after" field.
func (_u *AttemptEventUpdateOne) AddQuestionRatingAfter(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddQuestionRatingAfter(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *AttemptEventUpdateOne) SetIntervalDays(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableIntervalDays(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *AttemptEventUpdateOne) AddIntervalDays(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *AttemptEventUpdateOne) SetEaseFactor(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableEaseFactor(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *AttemptEventUpdateOne) AddEaseFactor(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionKind(); ok {
		if err := attemptevent.QuestionKindValidator(v); err != nil {
			return &ValidationError{Name: "question_kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Result(); ok {
		if err := attemptevent.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.result": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionKind(); ok {
		_spec.SetField(attemptevent.FieldQuestionKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(attemptevent.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptevent.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(attemptevent.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UserRatingBefore(); ok {
		_spec.SetField(attemptevent.FieldUserRatingBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUserRatingBefore(); ok {
		_spec.AddField(attemptevent.FieldUserRatingBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UserRatingAfter(); ok {
		_spec.SetField(attemptevent.FieldUserRatingAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUserRatingAfter(); ok {
		_spec.AddField(attemptevent.FieldUserRatingAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionRatingBefore(); ok {
		_spec.SetField(attemptevent.FieldQuestionRatingBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuestionRatingBefore(); ok {
		_spec.AddField(attemptevent.FieldQuestionRatingBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionRatingAfter(); ok {
		_spec.SetField(attemptevent.FieldQuestionRatingAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuestionRatingAfter(); ok {
		_spec.AddField(attemptevent.FieldQuestionRatingAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(attemptevent.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(attemptevent.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(attemptevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(attemptevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
