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
	"uhc-registry.io/registry/ent/stagingpropertyunit"
	"uhc-registry.io/registry/internal/domain"
)

// StagingPropertyUnitUpdate is the builder for updating StagingPropertyUnit entities.
type StagingPropertyUnitUpdate struct {
	config
	hooks    []Hook
	mutation *StagingPropertyUnitMutation
}

// Where appends a list predicates to the StagingPropertyUnitUpdate builder.
func (_u *StagingPropertyUnitUpdate) Where(ps ...predicate.StagingPropertyUnit) *StagingPropertyUnitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingPropertyUnitUpdate) SetUpdatedAt(v time.Time) *StagingPropertyUnitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingPropertyUnitUpdate) SetValidationStatus(v stagingpropertyunit.ValidationStatus) *StagingPropertyUnitUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingPropertyUnitUpdate) SetNillableValidationStatus(v *stagingpropertyunit.ValidationStatus) *StagingPropertyUnitUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingPropertyUnitUpdate) SetDiagnostics(v []domain.Diagnostic) *StagingPropertyUnitUpdate {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingPropertyUnitUpdate) AppendDiagnostics(v []domain.Diagnostic) *StagingPropertyUnitUpdate {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingPropertyUnitUpdate) ClearDiagnostics() *StagingPropertyUnitUpdate {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingPropertyUnitUpdate) SetApprovedForCommit(v bool) *StagingPropertyUnitUpdate {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingPropertyUnitUpdate) SetNillableApprovedForCommit(v *bool) *StagingPropertyUnitUpdate {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingPropertyUnitUpdate) SetCommittedEntityID(v uuid.UUID) *StagingPropertyUnitUpdate {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingPropertyUnitUpdate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingPropertyUnitUpdate {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingPropertyUnitUpdate) ClearCommittedEntityID() *StagingPropertyUnitUpdate {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingPropertyUnitUpdate) SetPayload(v *domain.PropertyUnitRecord) *StagingPropertyUnitUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUnitIdentifierNormalized sets the "unit_identifier_normalized" field.
func (_u *StagingPropertyUnitUpdate) SetUnitIdentifierNormalized(v string) *StagingPropertyUnitUpdate {
	_u.mutation.SetUnitIdentifierNormalized(v)
	return _u
}

// SetNillableUnitIdentifierNormalized sets the "unit_identifier_normalized" field if the given value is not nil.
func (_u *StagingPropertyUnitUpdate) SetNillableUnitIdentifierNormalized(v *string) *StagingPropertyUnitUpdate {
	if v != nil {
		_u.SetUnitIdentifierNormalized(*v)
	}
	return _u
}

// ClearUnitIdentifierNormalized clears the value of the "unit_identifier_normalized" field.
func (_u *StagingPropertyUnitUpdate) ClearUnitIdentifierNormalized() *StagingPropertyUnitUpdate {
	_u.mutation.ClearUnitIdentifierNormalized()
	return _u
}

// Mutation returns the StagingPropertyUnitMutation object of the builder.
func (_u *StagingPropertyUnitUpdate) Mutation() *StagingPropertyUnitMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StagingPropertyUnitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingPropertyUnitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StagingPropertyUnitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingPropertyUnitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingPropertyUnitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingpropertyunit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingPropertyUnitUpdate) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingpropertyunit.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingPropertyUnit.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingPropertyUnitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingpropertyunit.Table, stagingpropertyunit.Columns, sqlgraph.NewFieldSpec(stagingpropertyunit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingpropertyunit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingpropertyunit.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingpropertyunit.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingpropertyunit.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingpropertyunit.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingpropertyunit.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingpropertyunit.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingpropertyunit.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingpropertyunit.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UnitIdentifierNormalized(); ok {
		_spec.SetField(stagingpropertyunit.FieldUnitIdentifierNormalized, field.TypeString, value)
	}
	if _u.mutation.UnitIdentifierNormalizedCleared() {
		_spec.ClearField(stagingpropertyunit.FieldUnitIdentifierNormalized, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingpropertyunit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StagingPropertyUnitUpdateOne is the builder for updating a single StagingPropertyUnit entity.
type StagingPropertyUnitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StagingPropertyUnitMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingPropertyUnitUpdateOne) SetUpdatedAt(v time.Time) *StagingPropertyUnitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingPropertyUnitUpdateOne) SetValidationStatus(v stagingpropertyunit.ValidationStatus) *StagingPropertyUnitUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingPropertyUnitUpdateOne) SetNillableValidationStatus(v *stagingpropertyunit.ValidationStatus) *StagingPropertyUnitUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingPropertyUnitUpdateOne) SetDiagnostics(v []domain.Diagnostic) *StagingPropertyUnitUpdateOne {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingPropertyUnitUpdateOne) AppendDiagnostics(v []domain.Diagnostic) *StagingPropertyUnitUpdateOne {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingPropertyUnitUpdateOne) ClearDiagnostics() *StagingPropertyUnitUpdateOne {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingPropertyUnitUpdateOne) SetApprovedForCommit(v bool) *StagingPropertyUnitUpdateOne {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingPropertyUnitUpdateOne) SetNillableApprovedForCommit(v *bool) *StagingPropertyUnitUpdateOne {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingPropertyUnitUpdateOne) SetCommittedEntityID(v uuid.UUID) *StagingPropertyUnitUpdateOne {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingPropertyUnitUpdateOne) SetNillableCommittedEntityID(v *uuid.UUID) *StagingPropertyUnitUpdateOne {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingPropertyUnitUpdateOne) ClearCommittedEntityID() *StagingPropertyUnitUpdateOne {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingPropertyUnitUpdateOne) SetPayload(v *domain.PropertyUnitRecord) *StagingPropertyUnitUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUnitIdentifierNormalized sets the "unit_identifier_normalized" field.
func (_u *StagingPropertyUnitUpdateOne) SetUnitIdentifierNormalized(v string) *StagingPropertyUnitUpdateOne {
	_u.mutation.SetUnitIdentifierNormalized(v)
	return _u
}

// SetNillableUnitIdentifierNormalized sets the "unit_identifier_normalized" field if the given value is not nil.
func (_u *StagingPropertyUnitUpdateOne) SetNillableUnitIdentifierNormalized(v *string) *StagingPropertyUnitUpdateOne {
	if v != nil {
		_u.SetUnitIdentifierNormalized(*v)
	}
	return _u
}

// ClearUnitIdentifierNormalized clears the value of the "unit_identifier_normalized" field.
func (_u *StagingPropertyUnitUpdateOne) ClearUnitIdentifierNormalized() *StagingPropertyUnitUpdateOne {
	_u.mutation.ClearUnitIdentifierNormalized()
	return _u
}

// Mutation returns the StagingPropertyUnitMutation object of the builder.
func (_u *StagingPropertyUnitUpdateOne) Mutation() *StagingPropertyUnitMutation {
	return _u.mutation
}

// Where appends a list predicates to the StagingPropertyUnitUpdate builder.
func (_u *StagingPropertyUnitUpdateOne) Where(ps ...predicate.StagingPropertyUnit) *StagingPropertyUnitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StagingPropertyUnitUpdateOne) Select(field string, fields ...string) *StagingPropertyUnitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StagingPropertyUnit entity.
func (_u *StagingPropertyUnitUpdateOne) Save(ctx context.Context) (*StagingPropertyUnit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingPropertyUnitUpdateOne) SaveX(ctx context.Context) *StagingPropertyUnit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StagingPropertyUnitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingPropertyUnitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingPropertyUnitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingpropertyunit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingPropertyUnitUpdateOne) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingpropertyunit.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingPropertyUnit.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingPropertyUnitUpdateOne) sqlSave(ctx context.Context) (_node *StagingPropertyUnit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingpropertyunit.Table, stagingpropertyunit.Columns, sqlgraph.NewFieldSpec(stagingpropertyunit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StagingPropertyUnit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagingpropertyunit.FieldID)
		for _, f := range fields {
			if !stagingpropertyunit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagingpropertyunit.FieldID {
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
		_spec.SetField(stagingpropertyunit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingpropertyunit.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingpropertyunit.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingpropertyunit.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingpropertyunit.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingpropertyunit.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingpropertyunit.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingpropertyunit.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingpropertyunit.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UnitIdentifierNormalized(); ok {
		_spec.SetField(stagingpropertyunit.FieldUnitIdentifierNormalized, field.TypeString, value)
	}
	if _u.mutation.UnitIdentifierNormalizedCleared() {
		_spec.ClearField(stagingpropertyunit.FieldUnitIdentifierNormalized, field.TypeString)
	}
	_node = &StagingPropertyUnit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingpropertyunit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
