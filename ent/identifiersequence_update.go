// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"uhc-registry.io/registry/ent/identifiersequence"
	"uhc-registry.io/registry/ent/predicate"
)

// IdentifierSequenceUpdate is the builder for updating IdentifierSequence entities.
type IdentifierSequenceUpdate struct {
	config
	hooks    []Hook
	mutation *IdentifierSequenceMutation
}

// Where appends a list predicates to the IdentifierSequenceUpdate builder.
func (_u *IdentifierSequenceUpdate) Where(ps ...predicate.IdentifierSequence) *IdentifierSequenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IdentifierSequenceUpdate) SetUpdatedAt(v time.Time) *IdentifierSequenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNextValue sets the "next_value" field.
func (_u *IdentifierSequenceUpdate) SetNextValue(v int64) *IdentifierSequenceUpdate {
	_u.mutation.ResetNextValue()
	_u.mutation.SetNextValue(v)
	return _u
}

// SetNillableNextValue sets the "next_value" field if the given value is not nil.
func (_u *IdentifierSequenceUpdate) SetNillableNextValue(v *int64) *IdentifierSequenceUpdate {
	if v != nil {
		_u.SetNextValue(*v)
	}
	return _u
}

// AddNextValue adds value to the "next_value" field.
func (_u *IdentifierSequenceUpdate) AddNextValue(v int64) *IdentifierSequenceUpdate {
	_u.mutation.AddNextValue(v)
	return _u
}

// Mutation returns the IdentifierSequenceMutation object of the builder.
func (_u *IdentifierSequenceUpdate) Mutation() *IdentifierSequenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IdentifierSequenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IdentifierSequenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IdentifierSequenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IdentifierSequenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IdentifierSequenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := identifiersequence.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IdentifierSequenceUpdate) check() error {
	if v, ok := _u.mutation.NextValue(); ok {
		if err := identifiersequence.NextValueValidator(v); err != nil {
			return &ValidationError{Name: "next_value", err: fmt.Errorf(`ent: validator failed for field "IdentifierSequence.next_value": %w`, err)}
		}
	}
	return nil
}

func (_u *IdentifierSequenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(identifiersequence.Table, identifiersequence.Columns, sqlgraph.NewFieldSpec(identifiersequence.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(identifiersequence.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextValue(); ok {
		_spec.SetField(identifiersequence.FieldNextValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextValue(); ok {
		_spec.AddField(identifiersequence.FieldNextValue, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{identifiersequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IdentifierSequenceUpdateOne is the builder for updating a single IdentifierSequence entity.
type IdentifierSequenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IdentifierSequenceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IdentifierSequenceUpdateOne) SetUpdatedAt(v time.Time) *IdentifierSequenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNextValue sets the "next_value" field.
func (_u *IdentifierSequenceUpdateOne) SetNextValue(v int64) *IdentifierSequenceUpdateOne {
	_u.mutation.ResetNextValue()
	_u.mutation.SetNextValue(v)
	return _u
}

// SetNillableNextValue sets the "next_value" field if the given value is not nil.
func (_u *IdentifierSequenceUpdateOne) SetNillableNextValue(v *int64) *IdentifierSequenceUpdateOne {
	if v != nil {
		_u.SetNextValue(*v)
	}
	return _u
}

// AddNextValue adds value to the "next_value" field.
func (_u *IdentifierSequenceUpdateOne) AddNextValue(v int64) *IdentifierSequenceUpdateOne {
	_u.mutation.AddNextValue(v)
	return _u
}

// Mutation returns the IdentifierSequenceMutation object of the builder.
func (_u *IdentifierSequenceUpdateOne) Mutation() *IdentifierSequenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the IdentifierSequenceUpdate builder.
func (_u *IdentifierSequenceUpdateOne) Where(ps ...predicate.IdentifierSequence) *IdentifierSequenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IdentifierSequenceUpdateOne) Select(field string, fields ...string) *IdentifierSequenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IdentifierSequence entity.
func (_u *IdentifierSequenceUpdateOne) Save(ctx context.Context) (*IdentifierSequence, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IdentifierSequenceUpdateOne) SaveX(ctx context.Context) *IdentifierSequence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IdentifierSequenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IdentifierSequenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IdentifierSequenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := identifiersequence.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IdentifierSequenceUpdateOne) check() error {
	if v, ok := _u.mutation.NextValue(); ok {
		if err := identifiersequence.NextValueValidator(v); err != nil {
			return &ValidationError{Name: "next_value", err: fmt.Errorf(`ent: validator failed for field "IdentifierSequence.next_value": %w`, err)}
		}
	}
	return nil
}

func (_u *IdentifierSequenceUpdateOne) sqlSave(ctx context.Context) (_node *IdentifierSequence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(identifiersequence.Table, identifiersequence.Columns, sqlgraph.NewFieldSpec(identifiersequence.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IdentifierSequence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, identifiersequence.FieldID)
		for _, f := range fields {
			if !identifiersequence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != identifiersequence.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(identifiersequence.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextValue(); ok {
		_spec.SetField(identifiersequence.FieldNextValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextValue(); ok {
		_spec.AddField(identifiersequence.FieldNextValue, field.TypeInt64, value)
	}
	_node = &IdentifierSequence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{identifiersequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
