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
	"uhc-registry.io/registry/ent/stagingclaim"
	"uhc-registry.io/registry/internal/domain"
)

// StagingClaimUpdate is the builder for updating StagingClaim entities.
type StagingClaimUpdate struct {
	config
	hooks    []Hook
	mutation *StagingClaimMutation
}

// Where appends a list predicates to the StagingClaimUpdate builder.
func (_u *StagingClaimUpdate) Where(ps ...predicate.StagingClaim) *StagingClaimUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingClaimUpdate) SetUpdatedAt(v time.Time) *StagingClaimUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingClaimUpdate) SetValidationStatus(v stagingclaim.ValidationStatus) *StagingClaimUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingClaimUpdate) SetNillableValidationStatus(v *stagingclaim.ValidationStatus) *StagingClaimUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingClaimUpdate) SetDiagnostics(v []domain.Diagnostic) *StagingClaimUpdate {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingClaimUpdate) AppendDiagnostics(v []domain.Diagnostic) *StagingClaimUpdate {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingClaimUpdate) ClearDiagnostics() *StagingClaimUpdate {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingClaimUpdate) SetApprovedForCommit(v bool) *StagingClaimUpdate {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingClaimUpdate) SetNillableApprovedForCommit(v *bool) *StagingClaimUpdate {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingClaimUpdate) SetCommittedEntityID(v uuid.UUID) *StagingClaimUpdate {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingClaimUpdate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingClaimUpdate {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingClaimUpdate) ClearCommittedEntityID() *StagingClaimUpdate {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingClaimUpdate) SetPayload(v *domain.ClaimRecord) *StagingClaimUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the StagingClaimMutation object of the builder.
func (_u *StagingClaimUpdate) Mutation() *StagingClaimMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StagingClaimUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingClaimUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StagingClaimUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingClaimUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingClaimUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingclaim.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingClaimUpdate) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingclaim.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingClaim.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingClaimUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingclaim.Table, stagingclaim.Columns, sqlgraph.NewFieldSpec(stagingclaim.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingclaim.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingclaim.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingclaim.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingclaim.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingclaim.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingclaim.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingclaim.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingclaim.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingclaim.FieldPayload, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingclaim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StagingClaimUpdateOne is the builder for updating a single StagingClaim entity.
type StagingClaimUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StagingClaimMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingClaimUpdateOne) SetUpdatedAt(v time.Time) *StagingClaimUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingClaimUpdateOne) SetValidationStatus(v stagingclaim.ValidationStatus) *StagingClaimUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingClaimUpdateOne) SetNillableValidationStatus(v *stagingclaim.ValidationStatus) *StagingClaimUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingClaimUpdateOne) SetDiagnostics(v []domain.Diagnostic) *StagingClaimUpdateOne {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingClaimUpdateOne) AppendDiagnostics(v []domain.Diagnostic) *StagingClaimUpdateOne {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingClaimUpdateOne) ClearDiagnostics() *StagingClaimUpdateOne {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingClaimUpdateOne) SetApprovedForCommit(v bool) *StagingClaimUpdateOne {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingClaimUpdateOne) SetNillableApprovedForCommit(v *bool) *StagingClaimUpdateOne {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingClaimUpdateOne) SetCommittedEntityID(v uuid.UUID) *StagingClaimUpdateOne {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingClaimUpdateOne) SetNillableCommittedEntityID(v *uuid.UUID) *StagingClaimUpdateOne {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingClaimUpdateOne) ClearCommittedEntityID() *StagingClaimUpdateOne {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingClaimUpdateOne) SetPayload(v *domain.ClaimRecord) *StagingClaimUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the StagingClaimMutation object of the builder.
func (_u *StagingClaimUpdateOne) Mutation() *StagingClaimMutation {
	return _u.mutation
}

// Where appends a list predicates to the StagingClaimUpdate builder.
func (_u *StagingClaimUpdateOne) Where(ps ...predicate.StagingClaim) *StagingClaimUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StagingClaimUpdateOne) Select(field string, fields ...string) *StagingClaimUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StagingClaim entity.
func (_u *StagingClaimUpdateOne) Save(ctx context.Context) (*StagingClaim, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingClaimUpdateOne) SaveX(ctx context.Context) *StagingClaim {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StagingClaimUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingClaimUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingClaimUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingclaim.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingClaimUpdateOne) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingclaim.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingClaim.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingClaimUpdateOne) sqlSave(ctx context.Context) (_node *StagingClaim, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingclaim.Table, stagingclaim.Columns, sqlgraph.NewFieldSpec(stagingclaim.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StagingClaim.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagingclaim.FieldID)
		for _, f := range fields {
			if !stagingclaim.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagingclaim.FieldID {
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
		_spec.SetField(stagingclaim.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingclaim.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingclaim.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingclaim.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingclaim.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingclaim.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingclaim.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingclaim.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingclaim.FieldPayload, field.TypeJSON, value)
	}
	_node = &StagingClaim{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingclaim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
