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
	"uhc-registry.io/registry/ent/stagingevidence"
	"uhc-registry.io/registry/internal/domain"
)

// StagingEvidenceUpdate is the builder for updating StagingEvidence entities.
type StagingEvidenceUpdate struct {
	config
	hooks    []Hook
	mutation *StagingEvidenceMutation
}

// Where appends a list predicates to the StagingEvidenceUpdate builder.
func (_u *StagingEvidenceUpdate) Where(ps ...predicate.StagingEvidence) *StagingEvidenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingEvidenceUpdate) SetUpdatedAt(v time.Time) *StagingEvidenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingEvidenceUpdate) SetValidationStatus(v stagingevidence.ValidationStatus) *StagingEvidenceUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingEvidenceUpdate) SetNillableValidationStatus(v *stagingevidence.ValidationStatus) *StagingEvidenceUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingEvidenceUpdate) SetDiagnostics(v []domain.Diagnostic) *StagingEvidenceUpdate {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingEvidenceUpdate) AppendDiagnostics(v []domain.Diagnostic) *StagingEvidenceUpdate {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingEvidenceUpdate) ClearDiagnostics() *StagingEvidenceUpdate {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingEvidenceUpdate) SetApprovedForCommit(v bool) *StagingEvidenceUpdate {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingEvidenceUpdate) SetNillableApprovedForCommit(v *bool) *StagingEvidenceUpdate {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingEvidenceUpdate) SetCommittedEntityID(v uuid.UUID) *StagingEvidenceUpdate {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingEvidenceUpdate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingEvidenceUpdate {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingEvidenceUpdate) ClearCommittedEntityID() *StagingEvidenceUpdate {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingEvidenceUpdate) SetPayload(v *domain.EvidenceRecord) *StagingEvidenceUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetBlobSha256 sets the "blob_sha256" field.
func (_u *StagingEvidenceUpdate) SetBlobSha256(v string) *StagingEvidenceUpdate {
	_u.mutation.SetBlobSha256(v)
	return _u
}

// SetNillableBlobSha256 sets the "blob_sha256" field if the given value is not nil.
func (_u *StagingEvidenceUpdate) SetNillableBlobSha256(v *string) *StagingEvidenceUpdate {
	if v != nil {
		_u.SetBlobSha256(*v)
	}
	return _u
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (_u *StagingEvidenceUpdate) ClearBlobSha256() *StagingEvidenceUpdate {
	_u.mutation.ClearBlobSha256()
	return _u
}

// Mutation returns the StagingEvidenceMutation object of the builder.
func (_u *StagingEvidenceUpdate) Mutation() *StagingEvidenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StagingEvidenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingEvidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StagingEvidenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingEvidenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingEvidenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingevidence.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingEvidenceUpdate) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingevidence.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingEvidence.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingEvidenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingevidence.Table, stagingevidence.Columns, sqlgraph.NewFieldSpec(stagingevidence.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingevidence.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingevidence.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingevidence.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingevidence.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingevidence.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingevidence.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingevidence.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingevidence.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingevidence.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BlobSha256(); ok {
		_spec.SetField(stagingevidence.FieldBlobSha256, field.TypeString, value)
	}
	if _u.mutation.BlobSha256Cleared() {
		_spec.ClearField(stagingevidence.FieldBlobSha256, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingevidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StagingEvidenceUpdateOne is the builder for updating a single StagingEvidence entity.
type StagingEvidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StagingEvidenceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingEvidenceUpdateOne) SetUpdatedAt(v time.Time) *StagingEvidenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingEvidenceUpdateOne) SetValidationStatus(v stagingevidence.ValidationStatus) *StagingEvidenceUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingEvidenceUpdateOne) SetNillableValidationStatus(v *stagingevidence.ValidationStatus) *StagingEvidenceUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingEvidenceUpdateOne) SetDiagnostics(v []domain.Diagnostic) *StagingEvidenceUpdateOne {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingEvidenceUpdateOne) AppendDiagnostics(v []domain.Diagnostic) *StagingEvidenceUpdateOne {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingEvidenceUpdateOne) ClearDiagnostics() *StagingEvidenceUpdateOne {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingEvidenceUpdateOne) SetApprovedForCommit(v bool) *StagingEvidenceUpdateOne {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingEvidenceUpdateOne) SetNillableApprovedForCommit(v *bool) *StagingEvidenceUpdateOne {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingEvidenceUpdateOne) SetCommittedEntityID(v uuid.UUID) *StagingEvidenceUpdateOne {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingEvidenceUpdateOne) SetNillableCommittedEntityID(v *uuid.UUID) *StagingEvidenceUpdateOne {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingEvidenceUpdateOne) ClearCommittedEntityID() *StagingEvidenceUpdateOne {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingEvidenceUpdateOne) SetPayload(v *domain.EvidenceRecord) *StagingEvidenceUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetBlobSha256 sets the "blob_sha256" field.
func (_u *StagingEvidenceUpdateOne) SetBlobSha256(v string) *StagingEvidenceUpdateOne {
	_u.mutation.SetBlobSha256(v)
	return _u
}

// SetNillableBlobSha256 sets the "blob_sha256" field if the given value is not nil.
func (_u *StagingEvidenceUpdateOne) SetNillableBlobSha256(v *string) *StagingEvidenceUpdateOne {
	if v != nil {
		_u.SetBlobSha256(*v)
	}
	return _u
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (_u *StagingEvidenceUpdateOne) ClearBlobSha256() *StagingEvidenceUpdateOne {
	_u.mutation.ClearBlobSha256()
	return _u
}

// Mutation returns the StagingEvidenceMutation object of the builder.
func (_u *StagingEvidenceUpdateOne) Mutation() *StagingEvidenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the StagingEvidenceUpdate builder.
func (_u *StagingEvidenceUpdateOne) Where(ps ...predicate.StagingEvidence) *StagingEvidenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StagingEvidenceUpdateOne) Select(field string, fields ...string) *StagingEvidenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StagingEvidence entity.
func (_u *StagingEvidenceUpdateOne) Save(ctx context.Context) (*StagingEvidence, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingEvidenceUpdateOne) SaveX(ctx context.Context) *StagingEvidence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StagingEvidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingEvidenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingEvidenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingevidence.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingEvidenceUpdateOne) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingevidence.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingEvidence.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingEvidenceUpdateOne) sqlSave(ctx context.Context) (_node *StagingEvidence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingevidence.Table, stagingevidence.Columns, sqlgraph.NewFieldSpec(stagingevidence.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StagingEvidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagingevidence.FieldID)
		for _, f := range fields {
			if !stagingevidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagingevidence.FieldID {
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
		_spec.SetField(stagingevidence.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingevidence.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingevidence.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingevidence.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingevidence.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingevidence.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingevidence.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingevidence.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingevidence.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BlobSha256(); ok {
		_spec.SetField(stagingevidence.FieldBlobSha256, field.TypeString, value)
	}
	if _u.mutation.BlobSha256Cleared() {
		_spec.ClearField(stagingevidence.FieldBlobSha256, field.TypeString)
	}
	_node = &StagingEvidence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingevidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
