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
	"uhc-registry.io/registry/ent/stagingpersonpropertyrelation"
	"uhc-registry.io/registry/internal/domain"
)

// StagingPersonPropertyRelationUpdate is the builder for updating StagingPersonPropertyRelation entities.
type StagingPersonPropertyRelationUpdate struct {
	config
	hooks    []Hook
	mutation *StagingPersonPropertyRelationMutation
}

// Where appends a list predicates to the StagingPersonPropertyRelationUpdate builder.
func (_u *StagingPersonPropertyRelationUpdate) Where(ps ...predicate.StagingPersonPropertyRelation) *StagingPersonPropertyRelationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingPersonPropertyRelationUpdate) SetUpdatedAt(v time.Time) *StagingPersonPropertyRelationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingPersonPropertyRelationUpdate) SetValidationStatus(v stagingpersonpropertyrelation.ValidationStatus) *StagingPersonPropertyRelationUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingPersonPropertyRelationUpdate) SetNillableValidationStatus(v *stagingpersonpropertyrelation.ValidationStatus) *StagingPersonPropertyRelationUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingPersonPropertyRelationUpdate) SetDiagnostics(v []domain.Diagnostic) *StagingPersonPropertyRelationUpdate {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingPersonPropertyRelationUpdate) AppendDiagnostics(v []domain.Diagnostic) *StagingPersonPropertyRelationUpdate {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingPersonPropertyRelationUpdate) ClearDiagnostics() *StagingPersonPropertyRelationUpdate {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingPersonPropertyRelationUpdate) SetApprovedForCommit(v bool) *StagingPersonPropertyRelationUpdate {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingPersonPropertyRelationUpdate) SetNillableApprovedForCommit(v *bool) *StagingPersonPropertyRelationUpdate {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingPersonPropertyRelationUpdate) SetCommittedEntityID(v uuid.UUID) *StagingPersonPropertyRelationUpdate {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingPersonPropertyRelationUpdate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingPersonPropertyRelationUpdate {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingPersonPropertyRelationUpdate) ClearCommittedEntityID() *StagingPersonPropertyRelationUpdate {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingPersonPropertyRelationUpdate) SetPayload(v *domain.PersonPropertyRelationRecord) *StagingPersonPropertyRelationUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the StagingPersonPropertyRelationMutation object of the builder.
func (_u *StagingPersonPropertyRelationUpdate) Mutation() *StagingPersonPropertyRelationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StagingPersonPropertyRelationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingPersonPropertyRelationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StagingPersonPropertyRelationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingPersonPropertyRelationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingPersonPropertyRelationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingpersonpropertyrelation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingPersonPropertyRelationUpdate) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingpersonpropertyrelation.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingPersonPropertyRelation.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingPersonPropertyRelationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingpersonpropertyrelation.Table, stagingpersonpropertyrelation.Columns, sqlgraph.NewFieldSpec(stagingpersonpropertyrelation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingpersonpropertyrelation.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingpersonpropertyrelation.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingpersonpropertyrelation.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldPayload, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingpersonpropertyrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StagingPersonPropertyRelationUpdateOne is the builder for updating a single StagingPersonPropertyRelation entity.
type StagingPersonPropertyRelationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StagingPersonPropertyRelationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingPersonPropertyRelationUpdateOne) SetUpdatedAt(v time.Time) *StagingPersonPropertyRelationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingPersonPropertyRelationUpdateOne) SetValidationStatus(v stagingpersonpropertyrelation.ValidationStatus) *StagingPersonPropertyRelationUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingPersonPropertyRelationUpdateOne) SetNillableValidationStatus(v *stagingpersonpropertyrelation.ValidationStatus) *StagingPersonPropertyRelationUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingPersonPropertyRelationUpdateOne) SetDiagnostics(v []domain.Diagnostic) *StagingPersonPropertyRelationUpdateOne {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingPersonPropertyRelationUpdateOne) AppendDiagnostics(v []domain.Diagnostic) *StagingPersonPropertyRelationUpdateOne {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingPersonPropertyRelationUpdateOne) ClearDiagnostics() *StagingPersonPropertyRelationUpdateOne {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingPersonPropertyRelationUpdateOne) SetApprovedForCommit(v bool) *StagingPersonPropertyRelationUpdateOne {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingPersonPropertyRelationUpdateOne) SetNillableApprovedForCommit(v *bool) *StagingPersonPropertyRelationUpdateOne {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingPersonPropertyRelationUpdateOne) SetCommittedEntityID(v uuid.UUID) *StagingPersonPropertyRelationUpdateOne {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingPersonPropertyRelationUpdateOne) SetNillableCommittedEntityID(v *uuid.UUID) *StagingPersonPropertyRelationUpdateOne {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingPersonPropertyRelationUpdateOne) ClearCommittedEntityID() *StagingPersonPropertyRelationUpdateOne {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingPersonPropertyRelationUpdateOne) SetPayload(v *domain.PersonPropertyRelationRecord) *StagingPersonPropertyRelationUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the StagingPersonPropertyRelationMutation object of the builder.
func (_u *StagingPersonPropertyRelationUpdateOne) Mutation() *StagingPersonPropertyRelationMutation {
	return _u.mutation
}

// Where appends a list predicates to the StagingPersonPropertyRelationUpdate builder.
func (_u *StagingPersonPropertyRelationUpdateOne) Where(ps ...predicate.StagingPersonPropertyRelation) *StagingPersonPropertyRelationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StagingPersonPropertyRelationUpdateOne) Select(field string, fields ...string) *StagingPersonPropertyRelationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StagingPersonPropertyRelation entity.
func (_u *StagingPersonPropertyRelationUpdateOne) Save(ctx context.Context) (*StagingPersonPropertyRelation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingPersonPropertyRelationUpdateOne) SaveX(ctx context.Context) *StagingPersonPropertyRelation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StagingPersonPropertyRelationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingPersonPropertyRelationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingPersonPropertyRelationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingpersonpropertyrelation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingPersonPropertyRelationUpdateOne) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingpersonpropertyrelation.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingPersonPropertyRelation.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingPersonPropertyRelationUpdateOne) sqlSave(ctx context.Context) (_node *StagingPersonPropertyRelation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingpersonpropertyrelation.Table, stagingpersonpropertyrelation.Columns, sqlgraph.NewFieldSpec(stagingpersonpropertyrelation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StagingPersonPropertyRelation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagingpersonpropertyrelation.FieldID)
		for _, f := range fields {
			if !stagingpersonpropertyrelation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagingpersonpropertyrelation.FieldID {
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
		_spec.SetField(stagingpersonpropertyrelation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingpersonpropertyrelation.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingpersonpropertyrelation.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingpersonpropertyrelation.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldPayload, field.TypeJSON, value)
	}
	_node = &StagingPersonPropertyRelation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingpersonpropertyrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
