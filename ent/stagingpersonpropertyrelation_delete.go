// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"uhc-registry.io/registry/ent/predicate"
	"uhc-registry.io/registry/ent/stagingpersonpropertyrelation"
)

// StagingPersonPropertyRelationDelete is the builder for deleting a StagingPersonPropertyRelation entity.
type StagingPersonPropertyRelationDelete struct {
	config
	hooks    []Hook
	mutation *StagingPersonPropertyRelationMutation
}

// Where appends a list predicates to the StagingPersonPropertyRelationDelete builder.
func (_d *StagingPersonPropertyRelationDelete) Where(ps ...predicate.StagingPersonPropertyRelation) *StagingPersonPropertyRelationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *StagingPersonPropertyRelationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StagingPersonPropertyRelationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *StagingPersonPropertyRelationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(stagingpersonpropertyrelation.Table, sqlgraph.NewFieldSpec(stagingpersonpropertyrelation.FieldID, field.TypeUUID))
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

// StagingPersonPropertyRelationDeleteOne is the builder for deleting a single StagingPersonPropertyRelation entity.
type StagingPersonPropertyRelationDeleteOne struct {
	_d *StagingPersonPropertyRelationDelete
}

// Where appends a list predicates to the StagingPersonPropertyRelationDelete builder.
func (_d *StagingPersonPropertyRelationDeleteOne) Where(ps ...predicate.StagingPersonPropertyRelation) *StagingPersonPropertyRelationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *StagingPersonPropertyRelationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{stagingpersonpropertyrelation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StagingPersonPropertyRelationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
