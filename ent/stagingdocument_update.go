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
	"uhc-registry.io/registry/ent/stagingdocument"
	"uhc-registry.io/registry/internal/domain"
)

// StagingDocumentUpdate is the builder for updating StagingDocument entities.
type StagingDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *StagingDocumentMutation
}

// Where appends a list predicates to the StagingDocumentUpdate builder.
func (_u *StagingDocumentUpdate) Where(ps ...predicate.StagingDocument) *StagingDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingDocumentUpdate) SetUpdatedAt(v time.Time) *StagingDocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingDocumentUpdate) SetValidationStatus(v stagingdocument.ValidationStatus) *StagingDocumentUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingDocumentUpdate) SetNillableValidationStatus(v *stagingdocument.ValidationStatus) *StagingDocumentUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingDocumentUpdate) SetDiagnostics(v []domain.Diagnostic) *StagingDocumentUpdate {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingDocumentUpdate) AppendDiagnostics(v []domain.Diagnostic) *StagingDocumentUpdate {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingDocumentUpdate) ClearDiagnostics() *StagingDocumentUpdate {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingDocumentUpdate) SetApprovedForCommit(v bool) *StagingDocumentUpdate {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingDocumentUpdate) SetNillableApprovedForCommit(v *bool) *StagingDocumentUpdate {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingDocumentUpdate) SetCommittedEntityID(v uuid.UUID) *StagingDocumentUpdate {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingDocumentUpdate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingDocumentUpdate {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingDocumentUpdate) ClearCommittedEntityID() *StagingDocumentUpdate {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingDocumentUpdate) SetPayload(v *domain.DocumentRecord) *StagingDocumentUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetBlobSha256 sets the "blob_sha256" field.
func (_u *StagingDocumentUpdate) SetBlobSha256(v string) *StagingDocumentUpdate {
	_u.mutation.SetBlobSha256(v)
	return _u
}

// SetNillableBlobSha256 sets the "blob_sha256" field if the given value is not nil.
func (_u *StagingDocumentUpdate) SetNillableBlobSha256(v *string) *StagingDocumentUpdate {
	if v != nil {
		_u.SetBlobSha256(*v)
	}
	return _u
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (_u *StagingDocumentUpdate) ClearBlobSha256() *StagingDocumentUpdate {
	_u.mutation.ClearBlobSha256()
	return _u
}

// Mutation returns the StagingDocumentMutation object of the builder.
func (_u *StagingDocumentUpdate) Mutation() *StagingDocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StagingDocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StagingDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingDocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingDocumentUpdate) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingdocument.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingDocument.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingdocument.Table, stagingdocument.Columns, sqlgraph.NewFieldSpec(stagingdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingdocument.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingdocument.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingdocument.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingdocument.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingdocument.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingdocument.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingdocument.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingdocument.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BlobSha256(); ok {
		_spec.SetField(stagingdocument.FieldBlobSha256, field.TypeString, value)
	}
	if _u.mutation.BlobSha256Cleared() {
		_spec.ClearField(stagingdocument.FieldBlobSha256, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StagingDocumentUpdateOne is the builder for updating a single StagingDocument entity.
type StagingDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StagingDocumentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StagingDocumentUpdateOne) SetUpdatedAt(v time.Time) *StagingDocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *StagingDocumentUpdateOne) SetValidationStatus(v stagingdocument.ValidationStatus) *StagingDocumentUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *StagingDocumentUpdateOne) SetNillableValidationStatus(v *stagingdocument.ValidationStatus) *StagingDocumentUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetDiagnostics sets the "diagnostics" field.
func (_u *StagingDocumentUpdateOne) SetDiagnostics(v []domain.Diagnostic) *StagingDocumentUpdateOne {
	_u.mutation.SetDiagnostics(v)
	return _u
}

// AppendDiagnostics appends value to the "diagnostics" field.
func (_u *StagingDocumentUpdateOne) AppendDiagnostics(v []domain.Diagnostic) *StagingDocumentUpdateOne {
	_u.mutation.AppendDiagnostics(v)
	return _u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (_u *StagingDocumentUpdateOne) ClearDiagnostics() *StagingDocumentUpdateOne {
	_u.mutation.ClearDiagnostics()
	return _u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_u *StagingDocumentUpdateOne) SetApprovedForCommit(v bool) *StagingDocumentUpdateOne {
	_u.mutation.SetApprovedForCommit(v)
	return _u
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_u *StagingDocumentUpdateOne) SetNillableApprovedForCommit(v *bool) *StagingDocumentUpdateOne {
	if v != nil {
		_u.SetApprovedForCommit(*v)
	}
	return _u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_u *StagingDocumentUpdateOne) SetCommittedEntityID(v uuid.UUID) *StagingDocumentUpdateOne {
	_u.mutation.SetCommittedEntityID(v)
	return _u
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_u *StagingDocumentUpdateOne) SetNillableCommittedEntityID(v *uuid.UUID) *StagingDocumentUpdateOne {
	if v != nil {
		_u.SetCommittedEntityID(*v)
	}
	return _u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (_u *StagingDocumentUpdateOne) ClearCommittedEntityID() *StagingDocumentUpdateOne {
	_u.mutation.ClearCommittedEntityID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagingDocumentUpdateOne) SetPayload(v *domain.DocumentRecord) *StagingDocumentUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetBlobSha256 sets the "blob_sha256" field.
func (_u *StagingDocumentUpdateOne) SetBlobSha256(v string) *StagingDocumentUpdateOne {
	_u.mutation.SetBlobSha256(v)
	return _u
}

// SetNillableBlobSha256 sets the "blob_sha256" field if the given value is not nil.
func (_u *StagingDocumentUpdateOne) SetNillableBlobSha256(v *string) *StagingDocumentUpdateOne {
	if v != nil {
		_u.SetBlobSha256(*v)
	}
	return _u
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (_u *StagingDocumentUpdateOne) ClearBlobSha256() *StagingDocumentUpdateOne {
	_u.mutation.ClearBlobSha256()
	return _u
}

// Mutation returns the StagingDocumentMutation object of the builder.
func (_u *StagingDocumentUpdateOne) Mutation() *StagingDocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the StagingDocumentUpdate builder.
func (_u *StagingDocumentUpdateOne) Where(ps ...predicate.StagingDocument) *StagingDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StagingDocumentUpdateOne) Select(field string, fields ...string) *StagingDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StagingDocument entity.
func (_u *StagingDocumentUpdateOne) Save(ctx context.Context) (*StagingDocument, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagingDocumentUpdateOne) SaveX(ctx context.Context) *StagingDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StagingDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagingDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StagingDocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagingdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagingDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := stagingdocument.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingDocument.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StagingDocumentUpdateOne) sqlSave(ctx context.Context) (_node *StagingDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagingdocument.Table, stagingdocument.Columns, sqlgraph.NewFieldSpec(stagingdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StagingDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagingdocument.FieldID)
		for _, f := range fields {
			if !stagingdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagingdocument.FieldID {
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
		_spec.SetField(stagingdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingdocument.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Diagnostics(); ok {
		_spec.SetField(stagingdocument.FieldDiagnostics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiagnostics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagingdocument.FieldDiagnostics, value)
		})
	}
	if _u.mutation.DiagnosticsCleared() {
		_spec.ClearField(stagingdocument.FieldDiagnostics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingdocument.FieldApprovedForCommit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingdocument.FieldCommittedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.CommittedEntityIDCleared() {
		_spec.ClearField(stagingdocument.FieldCommittedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagingdocument.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BlobSha256(); ok {
		_spec.SetField(stagingdocument.FieldBlobSha256, field.TypeString, value)
	}
	if _u.mutation.BlobSha256Cleared() {
		_spec.ClearField(stagingdocument.FieldBlobSha256, field.TypeString)
	}
	_node = &StagingDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagingdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
