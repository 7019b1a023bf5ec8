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
	"uhc-registry.io/registry/ent/staginghousehold"
	"uhc-registry.io/registry/internal/domain"
)

// StagingHouseholdUpdate is the builder for updating StagingHousehold entities.
type StagingHouseholdUpdate struct {
	config
	hooks    []Hook
	mutation *StagingHouseholdMutation
}

// Where appends a list predicates to the StagingHouseholdUpdate builder.
func (_u *StagingHouseholdUpdate) Where(ps ...predicate.StagingHousehold) *StagingHouseholdUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingHouseholdUpdate) SetUpdatedAt(v time.Time) *StagingHouseholdUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingHouseholdUpdate) SetValidationStatus(v staginghousehold.ValidationStatus) *StagingHouseholdUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingHouseholdUpdate) SetNillableValidationStatus(v *staginghousehold.ValidationStatus) *StagingHouseholdUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingHouseholdUpdate) SetDiagnostics(v []domain.Diagnostic) *StagingHouseholdUpdate {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingHouseholdUpdate) AppendDiagnostics(v []domain.Diagnostic) *StagingHouseholdUpdate {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingHouseholdUpdate) ClearDiagnostics() *StagingHouseholdUpdate {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingHouseholdUpdate) SetApprovedForCommit(v bool) *StagingHouseholdUpdate {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingHouseholdUpdate) SetNillableApprovedForCommit(v *bool) *StagingHouseholdUpdate {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingHouseholdUpdate) SetCommittedEntityID(v uuid.UUID) *StagingHouseholdUpdate {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingHouseholdUpdate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingHouseholdUpdate {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingHouseholdUpdate) ClearCommittedEntityID() *StagingHouseholdUpdate {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingHouseholdUpdate) SetPayload(v *domain.HouseholdRecord) *StagingHouseholdUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the StagingHouseholdMutation object of the builder.
func (_u *StagingHouseholdUpdate) Mutation() *StagingHouseholdMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StagingHouseholdUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingHouseholdUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StagingHouseholdUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingHouseholdUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingHouseholdUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staginghousehold.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingHouseholdUpdate) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := staginghousehold.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingHousehold.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingHouseholdUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(staginghousehold.Table, staginghousehold.Columns, sqlgraph.NewFieldSpec(staginghousehold.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(staginghousehold.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(staginghousehold.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(staginghousehold.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, staginghousehold.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(staginghousehold.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(staginghousehold.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(staginghousehold.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(staginghousehold.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(staginghousehold.FieldPayload, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staginghousehold.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StagingHouseholdUpdateOne is the builder for updating a single StagingHousehold entity.
type StagingHouseholdUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StagingHouseholdMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingHouseholdUpdateOne) SetUpdatedAt(v time.Time) *StagingHouseholdUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingHouseholdUpdateOne) SetValidationStatus(v staginghousehold.ValidationStatus) *StagingHouseholdUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingHouseholdUpdateOne) SetNillableValidationStatus(v *staginghousehold.ValidationStatus) *StagingHouseholdUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingHouseholdUpdateOne) SetDiagnostics(v []domain.Diagnostic) *StagingHouseholdUpdateOne {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingHouseholdUpdateOne) AppendDiagnostics(v []domain.Diagnostic) *StagingHouseholdUpdateOne {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingHouseholdUpdateOne) ClearDiagnostics() *StagingHouseholdUpdateOne {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingHouseholdUpdateOne) SetApprovedForCommit(v bool) *StagingHouseholdUpdateOne {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingHouseholdUpdateOne) SetNillableApprovedForCommit(v *bool) *StagingHouseholdUpdateOne {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingHouseholdUpdateOne) SetCommittedEntityID(v uuid.UUID) *StagingHouseholdUpdateOne {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingHouseholdUpdateOne) SetNillableCommittedEntityID(v *uuid.UUID) *StagingHouseholdUpdateOne {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingHouseholdUpdateOne) ClearCommittedEntityID() *StagingHouseholdUpdateOne {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingHouseholdUpdateOne) SetPayload(v *domain.HouseholdRecord) *StagingHouseholdUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the StagingHouseholdMutation object of the builder.
func (_u *StagingHouseholdUpdateOne) Mutation() *StagingHouseholdMutation {
	return _u.mutation
}

// Where appends a list predicates to the StagingHouseholdUpdate builder.
func (_u *StagingHouseholdUpdateOne) Where(ps ...predicate.StagingHousehold) *StagingHouseholdUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StagingHouseholdUpdateOne) Select(field string, fields ...string) *StagingHouseholdUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StagingHousehold entity.
func (_u *StagingHouseholdUpdateOne) Save(ctx context.Context) (*StagingHousehold, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingHouseholdUpdateOne) SaveX(ctx context.Context) *StagingHousehold {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StagingHouseholdUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingHouseholdUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingHouseholdUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staginghousehold.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingHouseholdUpdateOne) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := staginghousehold.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingHousehold.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingHouseholdUpdateOne) sqlSave(ctx context.Context) (_node *StagingHousehold, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(staginghousehold.Table, staginghousehold.Columns, sqlgraph.NewFieldSpec(staginghousehold.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StagingHousehold.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, staginghousehold.FieldID)
		for _, f := range fields {
			if !staginghousehold.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != staginghousehold.FieldID {
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
		_spec.SetField(staginghousehold.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(staginghousehold.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(staginghousehold.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, staginghousehold.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(staginghousehold.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(staginghousehold.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(staginghousehold.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(staginghousehold.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(staginghousehold.FieldPayload, field.TypeJSON, value)
	}
	_node = &StagingHousehold{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staginghousehold.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
