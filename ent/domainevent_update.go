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
	"uhc-registry.io/registry/ent/domainevent"
	"uhc-registry.io/registry/ent/predicate"
)

// DomainEventUpdate is the builder for updating DomainEvent entities.
type DomainEventUpdate struct {
	config
	hooks    []Hook
	mutation *DomainEventMutation
}

// Where appends a list predicates to the DomainEventUpdate builder.
func (_u *DomainEventUpdate) Where(ps ...predicate.DomainEvent) *DomainEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DomainEventUpdate) SetStatus(v domainevent.Status) *DomainEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DomainEventUpdate) SetNillableStatus(v *domainevent.Status) *DomainEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *DomainEventUpdate) SetArchivedAt(v time.Time) *DomainEventUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *DomainEventUpdate) SetNillableArchivedAt(v *time.Time) *DomainEventUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *DomainEventUpdate) ClearArchivedAt() *DomainEventUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// Mutation returns the DomainEventMutation object of the builder.
func (_u *DomainEventUpdate) Mutation() *DomainEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DomainEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DomainEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DomainEventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := domainevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DomainEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(domainevent.Table, domainevent.Columns, sqlgraph.NewFieldSpec(domainevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(domainevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(domainevent.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(domainevent.FieldArchivedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DomainEventUpdateOne is the builder for updating a single DomainEvent entity.
type DomainEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DomainEventMutation
}

// SetStatus sets the "status" field.
func (_u *DomainEventUpdateOne) SetStatus(v domainevent.Status) *DomainEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DomainEventUpdateOne) SetNillableStatus(v *domainevent.Status) *DomainEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *DomainEventUpdateOne) SetArchivedAt(v time.Time) *DomainEventUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *DomainEventUpdateOne) SetNillableArchivedAt(v *time.Time) *DomainEventUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *DomainEventUpdateOne) ClearArchivedAt() *DomainEventUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// Mutation returns the DomainEventMutation object of the builder.
func (_u *DomainEventUpdateOne) Mutation() *DomainEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DomainEventUpdate builder.
func (_u *DomainEventUpdateOne) Where(ps ...predicate.DomainEvent) *DomainEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DomainEventUpdateOne) Select(field string, fields ...string) *DomainEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DomainEvent entity.
func (_u *DomainEventUpdateOne) Save(ctx context.Context) (*DomainEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainEventUpdateOne) SaveX(ctx context.Context) *DomainEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DomainEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DomainEventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := domainevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DomainEventUpdateOne) sqlSave(ctx context.Context) (_node *DomainEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(domainevent.Table, domainevent.Columns, sqlgraph.NewFieldSpec(domainevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DomainEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, domainevent.FieldID)
		for _, f := range fields {
			if !domainevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != domainevent.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(domainevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(domainevent.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(domainevent.FieldArchivedAt, field.TypeTime)
	}
	_node = &DomainEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
