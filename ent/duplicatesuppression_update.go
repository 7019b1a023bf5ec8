// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"uhc-registry.io/registry/ent/duplicatesuppression"
	"uhc-registry.io/registry/ent/predicate"
)

// DuplicateSuppressionUpdate is the builder for updating DuplicateSuppression entities.
type DuplicateSuppressionUpdate struct {
	config
	hooks    []Hook
	mutation *DuplicateSuppressionMutation
}

// Where appends a list predicates to the DuplicateSuppressionUpdate builder.
func (_u *DuplicateSuppressionUpdate) Where(ps ...predicate.DuplicateSuppression) *DuplicateSuppressionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the DuplicateSuppressionMutation object of the builder.
func (_u *DuplicateSuppressionUpdate) Mutation() *DuplicateSuppressionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DuplicateSuppressionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DuplicateSuppressionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DuplicateSuppressionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DuplicateSuppressionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DuplicateSuppressionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(duplicatesuppression.Table, duplicatesuppression.Columns, sqlgraph.NewFieldSpec(duplicatesuppression.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{duplicatesuppression.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DuplicateSuppressionUpdateOne is the builder for updating a single DuplicateSuppression entity.
type DuplicateSuppressionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DuplicateSuppressionMutation
}

// Mutation returns the DuplicateSuppressionMutation object of the builder.
func (_u *DuplicateSuppressionUpdateOne) Mutation() *DuplicateSuppressionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DuplicateSuppressionUpdate builder.
func (_u *DuplicateSuppressionUpdateOne) Where(ps ...predicate.DuplicateSuppression) *DuplicateSuppressionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DuplicateSuppressionUpdateOne) Select(field string, fields ...string) *DuplicateSuppressionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DuplicateSuppression entity.
func (_u *DuplicateSuppressionUpdateOne) Save(ctx context.Context) (*DuplicateSuppression, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DuplicateSuppressionUpdateOne) SaveX(ctx context.Context) *DuplicateSuppression {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DuplicateSuppressionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DuplicateSuppressionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DuplicateSuppressionUpdateOne) sqlSave(ctx context.Context) (_node *DuplicateSuppression, err error) {
	_spec := sqlgraph.NewUpdateSpec(duplicatesuppression.Table, duplicatesuppression.Columns, sqlgraph.NewFieldSpec(duplicatesuppression.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DuplicateSuppression.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, duplicatesuppression.FieldID)
		for _, f := range fields {
			if !duplicatesuppression.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != duplicatesuppression.FieldID {
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
	_node = &DuplicateSuppression{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{duplicatesuppression.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
