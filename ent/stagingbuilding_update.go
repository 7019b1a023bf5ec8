// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
	"uhc-registry.io/registry/ent/stagingbuilding"
	"uhc-registry.io/registry/internal/domain"
)

// StagingBuildingUpdate is the builder for updating StagingBuilding entities.
type StagingBuildingUpdate struct {
	config
	hooks    []Hook
	mutation *StagingBuildingMutation
}

// Where appends a list predicates to the StagingBuildingUpdate builder.
func (_u *StagingBuildingUpdate) Where(ps ...predicate.StagingBuilding) *StagingBuildingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingBuildingUpdate) SetUpdatedAt(v time.Time) *StagingBuildingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingBuildingUpdate) SetValidationStatus(v stagingbuilding.ValidationStatus) *StagingBuildingUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingBuildingUpdate) SetNillableValidationStatus(v *stagingbuilding.ValidationStatus) *StagingBuildingUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingBuildingUpdate) SetDiagnostics(v []domain.Diagnostic) *StagingBuildingUpdate {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingBuildingUpdate) AppendDiagnostics(v []domain.Diagnostic) *StagingBuildingUpdate {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingBuildingUpdate) ClearDiagnostics() *StagingBuildingUpdate {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingBuildingUpdate) SetApprovedForCommit(v bool) *StagingBuildingUpdate {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingBuildingUpdate) SetNillableApprovedForCommit(v *bool) *StagingBuildingUpdate {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingBuildingUpdate) SetCommittedEntityID(v uuid.UUID) *StagingBuildingUpdate {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingBuildingUpdate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingBuildingUpdate {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingBuildingUpdate) ClearCommittedEntityID() *StagingBuildingUpdate {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingBuildingUpdate) SetPayload(v *domain.BuildingRecord) *StagingBuildingUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetBuildingCode sets the "building_code" field.
func (_u *StagingBuildingUpdate) SetBuildingCode(v string) *StagingBuildingUpdate {
	_u.mutation.SetBuildingCode(v)
	return _u
}

// SetNillableBuildingCode sets the "building_code" field if the given value is not nil.
func (_u *StagingBuildingUpdate) SetNillableBuildingCode(v *string) *StagingBuildingUpdate {
	if v != nil {
		_u.SetBuildingCode(*v)
	}
	return _u
}

// ClearBuildingCode clears the value of the "building_code" field.
func (_u *StagingBuildingUpdate) ClearBuildingCode() *StagingBuildingUpdate {
	_u.mutation.ClearBuildingCode()
	return _u
}

// Mutation returns the StagingBuildingMutation object of the builder.
func (_u *StagingBuildingUpdate) Mutation() *StagingBuildingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StagingBuildingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingBuildingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StagingBuildingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingBuildingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingBuildingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingbuilding.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingBuildingUpdate) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingbuilding.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingBuilding.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingBuildingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingbuilding.Table, stagingbuilding.Columns, sqlgraph.NewFieldSpec(stagingbuilding.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingbuilding.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingbuilding.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingbuilding.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingbuilding.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingbuilding.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingbuilding.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingbuilding.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingbuilding.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingbuilding.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BuildingCode(); ok {
		_spec.SetField(stagingbuilding.FieldBuildingCode, field.TypeString, value)
	}
	if _u.mutation.BuildingCodeCleared() {
		_spec.ClearField(stagingbuilding.FieldBuildingCode, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingbuilding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StagingBuildingUpdateOne is the builder for updating a single StagingBuilding entity.
type StagingBuildingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StagingBuildingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingBuildingUpdateOne) SetUpdatedAt(v time.Time) *StagingBuildingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingBuildingUpdateOne) SetValidationStatus(v stagingbuilding.ValidationStatus) *StagingBuildingUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingBuildingUpdateOne) SetNillableValidationStatus(v *stagingbuilding.ValidationStatus) *StagingBuildingUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingBuildingUpdateOne) SetDiagnostics(v []domain.Diagnostic) *StagingBuildingUpdateOne {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingBuildingUpdateOne) AppendDiagnostics(v []domain.Diagnostic) *StagingBuildingUpdateOne {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingBuildingUpdateOne) ClearDiagnostics() *StagingBuildingUpdateOne {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingBuildingUpdateOne) SetApprovedForCommit(v bool) *StagingBuildingUpdateOne {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingBuildingUpdateOne) SetNillableApprovedForCommit(v *bool) *StagingBuildingUpdateOne {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingBuildingUpdateOne) SetCommittedEntityID(v uuid.UUID) *StagingBuildingUpdateOne {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingBuildingUpdateOne) SetNillableCommittedEntityID(v *uuid.UUID) *StagingBuildingUpdateOne {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingBuildingUpdateOne) ClearCommittedEntityID() *StagingBuildingUpdateOne {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingBuildingUpdateOne) SetPayload(v *domain.BuildingRecord) *StagingBuildingUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetBuildingCode sets the "building_code" field.
func (_u *StagingBuildingUpdateOne) SetBuildingCode(v string) *StagingBuildingUpdateOne {
	_u.mutation.SetBuildingCode(v)
	return _u
}

// SetNillableBuildingCode sets the "building_code" field if the given value is not nil.
func (_u *StagingBuildingUpdateOne) SetNillableBuildingCode(v *string) *StagingBuildingUpdateOne {
	if v != nil {
		_u.SetBuildingCode(*v)
	}
	return _u
}

// ClearBuildingCode clears the value of the "building_code" field.
func (_u *StagingBuildingUpdateOne) ClearBuildingCode() *StagingBuildingUpdateOne {
	_u.mutation.ClearBuildingCode()
	return _u
}

// Mutation returns the StagingBuildingMutation object of the builder.
func (_u *StagingBuildingUpdateOne) Mutation() *StagingBuildingMutation {
	return _u.mutation
}

// Where appends a list predicates to the StagingBuildingUpdate builder.
func (_u *StagingBuildingUpdateOne) Where(ps ...predicate.StagingBuilding) *StagingBuildingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StagingBuildingUpdateOne) Select(field string, fields ...string) *StagingBuildingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StagingBuilding entity.
func (_u *StagingBuildingUpdateOne) Save(ctx context.Context) (*StagingBuilding, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingBuildingUpdateOne) SaveX(ctx context.Context) *StagingBuilding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StagingBuildingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingBuildingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingBuildingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingbuilding.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingBuildingUpdateOne) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingbuilding.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingBuilding.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingBuildingUpdateOne) sqlSave(ctx context.Context) (_node *StagingBuilding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingbuilding.Table, stagingbuilding.Columns, sqlgraph.NewFieldSpec(stagingbuilding.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StagingBuilding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagingbuilding.FieldID)
		for _, f := range fields {
			if !stagingbuilding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagingbuilding.FieldID {
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
		_spec.SetField(stagingbuilding.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingbuilding.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingbuilding.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingbuilding.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingbuilding.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingbuilding.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingbuilding.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingbuilding.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingbuilding.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BuildingCode(); ok {
		_spec.SetField(stagingbuilding.FieldBuildingCode, field.TypeString, value)
	}
	if _u.mutation.BuildingCodeCleared() {
		_spec.ClearField(stagingbuilding.FieldBuildingCode, field.TypeString)
	}
	_node = &StagingBuilding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingbuilding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
