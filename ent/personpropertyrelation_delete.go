// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"uhc-registry.io/registry/ent/personpropertyrelation"
	"uhc-registry.io/registry/ent/predicate"
)

// PersonPropertyRelationDelete is the builder for deleting a PersonPropertyRelation entity.
type PersonPropertyRelationDelete struct {
	config
	hooks    []Hook
	mutation *PersonPropertyRelationMutation
}

// Where appends a list predicates to the PersonPropertyRelationDelete builder.
func (_d *PersonPropertyRelationDelete) Where(ps ...predicate.PersonPropertyRelation) *PersonPropertyRelationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PersonPropertyRelationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PersonPropertyRelationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PersonPropertyRelationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(personpropertyrelation.Table, sqlgraph.NewFieldSpec(personpropertyrelation.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PersonPropertyRelationDeleteOne is the builder for deleting a single PersonPropertyRelation entity.
type PersonPropertyRelationDeleteOne struct {
	_d *PersonPropertyRelationDelete
}

// Where appends a list predicates to the PersonPropertyRelationDelete builder.
func (_d *PersonPropertyRelationDeleteOne) Where(ps ...predicate.PersonPropertyRelation) *PersonPropertyRelationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PersonPropertyRelationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{personpropertyrelation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PersonPropertyRelationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
