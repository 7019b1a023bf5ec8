// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"uhc-registry.io/registry/ent/predicate"
	"uhc-registry.io/registry/ent/stagingbuilding"
)

// StagingBuildingDelete is the builder for deleting a StagingBuilding entity.
type StagingBuildingDelete struct {
	config
	hooks    []Hook
	mutation *StagingBuildingMutation
}

// Where appends a list predicates to the StagingBuildingDelete builder.
func (_d *StagingBuildingDelete) Where(ps ...predicate.StagingBuilding) *StagingBuildingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *StagingBuildingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StagingBuildingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *StagingBuildingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(stagingbuilding.Table, sqlgraph.NewFieldSpec(stagingbuilding.FieldID, field.TypeUUID))
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

// StagingBuildingDeleteOne is the builder for deleting a single StagingBuilding entity.
type StagingBuildingDeleteOne struct {
	_d *StagingBuildingDelete
}

// Where appends a list predicates to the StagingBuildingDelete builder.
func (_d *StagingBuildingDeleteOne) Where(ps ...predicate.StagingBuilding) *StagingBuildingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *StagingBuildingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{stagingbuilding.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StagingBuildingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
