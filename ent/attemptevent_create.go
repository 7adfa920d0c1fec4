// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/haxx0rman/qBank/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableSessionID(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AttemptEventCreate) SetQuestionID(v string) *AttemptEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetQuestionKind sets the "question_kind" field.
func (_c *AttemptEventCreate) SetQuestionKind(v string) *AttemptEventCreate {
	_c.mutation.SetQuestionKind(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *AttemptEventCreate) SetResult(v string) *AttemptEventCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *AttemptEventCreate) SetResponseTimeMs(v int64) *AttemptEventCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableResponseTimeMs(v *int64) *AttemptEventCreate {
	if v != nil {
		_c.SetResponseTimeMs(*v)
	}
	return _c
}

// SetUserRatingBefore sets the "user_rating_before" field.
func (_c *AttemptEventCreate) SetUserRatingBefore(v float64) *AttemptEventCreate {
	_c.mutation.SetUserRatingBefore(v)
	return _c
}

// SetUserRatingAfter sets the "user_rating_after" field.
func (_c *AttemptEventCreate) SetUserRatingAfter(v float64) *AttemptEventCreate {
	_c.mutation.SetUserRatingAfter(v)
	return _c
}

// SetQuestionRatingBefore sets the "question_rating_before" field.
func (_c *AttemptEventCreate) SetQuestionRatingBefore(v float64) *AttemptEventCreate {
	_c.mutation.SetQuestionRatingBefore(v)
	return _c
}

// SetQuestionRatingAfter sets the "question_rating_after" field.
func (_c *AttemptEventCreate) SetQuestionRatingAfter(v float64) *AttemptEventCreate {
	_c.mutation.SetQuestionRatingAfter(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *AttemptEventCreate) SetIntervalDays(v float64) *AttemptEventCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *AttemptEventCreate) SetEaseFactor(v float64) *AttemptEventCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		v := attemptevent.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		v := attemptevent.DefaultResponseTimeMs
		_c.mutation.SetResponseTimeMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AttemptEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionKind(); !ok {
		return &ValidationError{Name: "question_kind", err: errors.New(`ent: missing required field "AttemptEvent.question_kind"`)}
	}
	if v, ok := _c.mutation.QuestionKind(); ok {
		if err := attemptevent.QuestionKindValidator(v); err != nil {
			return &ValidationError{Name: "question_kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "AttemptEvent.result"`)}
	}
	if v, ok := _c.mutation.Result(); ok {
		if err := attemptevent.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.result": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "AttemptEvent.response_time_ms"`)}
	}
	if _, ok := _c.mutation.UserRatingBefore(); !ok {
		return &ValidationError{Name: "user_rating_before", err: errors.New(`ent: missing required field "AttemptEvent.user_rating_before"`)}
	}
	if _, ok := _c.mutation.UserRatingAfter(); !ok {
		return &ValidationError{Name: "user_rating_after", err: errors.New(`ent: missing required field "AttemptEvent.user_rating_after"`)}
	}
	if _, ok := _c.mutation.QuestionRatingBefore(); !ok {
		return &ValidationError{Name: "question_rating_before", err: errors.New(`ent: missing required field "AttemptEvent.question_rating_before"`)}
	}
	if _, ok := _c.mutation.QuestionRatingAfter(); !ok {
		return &ValidationError{Name: "question_rating_after", err: errors.New(`ent: missing required field "AttemptEvent.question_rating_after"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "AttemptEvent.interval_days"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "AttemptEvent.ease_factor"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.QuestionKind(); ok {
		_spec.SetField(attemptevent.FieldQuestionKind, field.TypeString, value)
		_node.QuestionKind = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(attemptevent.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptevent.FieldResponseTimeMs, field.TypeInt64, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.UserRatingBefore(); ok {
		_spec.SetField(attemptevent.FieldUserRatingBefore, field.TypeFloat64, value)
		_node.UserRatingBefore = value
	}
	if value, ok := _c.mutation.UserRatingAfter(); ok {
		_spec.SetField(attemptevent.FieldUserRatingAfter, field.TypeFloat64, value)
		_node.UserRatingAfter = value
	}
	if value, ok := _c.mutation.QuestionRatingBefore(); ok {
		_spec.SetField(attemptevent.FieldQuestionRatingBefore, field.TypeFloat64, value)
		_node.QuestionRatingBefore = value
	}
	if value, ok := _c.mutation.QuestionRatingAfter(); ok {
		_spec.SetField(attemptevent.FieldQuestionRatingAfter, field.TypeFloat64, value)
		_node.QuestionRatingAfter = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(attemptevent.FieldIntervalDays, field.TypeFloat64, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(attemptevent.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
