// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/evidence"
	"uhc-registry.io/registry/ent/predicate"
)

// EvidenceUpdate is the builder for updating Evidence entities.
type EvidenceUpdate struct {
	config
	hooks    []Hook
	mutation *EvidenceMutation
}

// Where appends a list predicates to the EvidenceUpdate builder.
func (_u *EvidenceUpdate) Where(ps ...predicate.Evidence) *EvidenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvidenceUpdate) SetUpdatedAt(v time.Time) *EvidenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPersonID sets the "person_id" field.
func (_u *EvidenceUpdate) SetPersonID(v uuid.UUID) *EvidenceUpdate {
	_u.mutation.SetPersonID(v)
	return _u
}

// SetNillablePersonID sets the "person_id" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillablePersonID(v *uuid.UUID) *EvidenceUpdate {
	if v != nil {
		_u.SetPersonID(*v)
	}
	return _u
}

// SetEvidenceTypeCode sets the "evidence_type_code" field.
func (_u *EvidenceUpdate) SetEvidenceTypeCode(v string) *EvidenceUpdate {
	_u.mutation.SetEvidenceTypeCode(v)
	return _u
}

// SetNillableEvidenceTypeCode sets the "evidence_type_code" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableEvidenceTypeCode(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetEvidenceTypeCode(*v)
	}
	return _u
}

// SetDocumentNumber sets the "document_number" field.
func (_u *EvidenceUpdate) SetDocumentNumber(v string) *EvidenceUpdate {
	_u.mutation.SetDocumentNumber(v)
	return _u
}

// SetNillableDocumentNumber sets the "document_number" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableDocumentNumber(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetDocumentNumber(*v)
	}
	return _u
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (_u *EvidenceUpdate) ClearDocumentNumber() *EvidenceUpdate {
	_u.mutation.ClearDocumentNumber()
	return _u
}

// SetIssuedDate sets the "issued_date" field.
func (_u *EvidenceUpdate) SetIssuedDate(v time.Time) *EvidenceUpdate {
	_u.mutation.SetIssuedDate(v)
	return _u
}

// SetNillableIssuedDate sets the "issued_date" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableIssuedDate(v *time.Time) *EvidenceUpdate {
	if v != nil {
		_u.SetIssuedDate(*v)
	}
	return _u
}

// ClearIssuedDate clears the value of the "issued_date" field.
func (_u *EvidenceUpdate) ClearIssuedDate() *EvidenceUpdate {
	_u.mutation.ClearIssuedDate()
	return _u
}

// SetIssuingAuthority sets the "issuing_authority" field.
func (_u *EvidenceUpdate) SetIssuingAuthority(v string) *EvidenceUpdate {
	_u.mutation.SetIssuingAuthority(v)
	return _u
}

// SetNillableIssuingAuthority sets the "issuing_authority" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableIssuingAuthority(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetIssuingAuthority(*v)
	}
	return _u
}

// ClearIssuingAuthority clears the value of the "issuing_authority" field.
func (_u *EvidenceUpdate) ClearIssuingAuthority() *EvidenceUpdate {
	_u.mutation.ClearIssuingAuthority()
	return _u
}

// SetBlobSha256 sets the "blob_sha256" field.
func (_u *EvidenceUpdate) SetBlobSha256(v string) *EvidenceUpdate {
	_u.mutation.SetBlobSha256(v)
	return _u
}

// SetNillableBlobSha256 sets the "blob_sha256" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableBlobSha256(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetBlobSha256(*v)
	}
	return _u
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (_u *EvidenceUpdate) ClearBlobSha256() *EvidenceUpdate {
	_u.mutation.ClearBlobSha256()
	return _u
}

// SetBlobPath sets the "blob_path" field.
func (_u *EvidenceUpdate) SetBlobPath(v string) *EvidenceUpdate {
	_u.mutation.SetBlobPath(v)
	return _u
}

// SetNillableBlobPath sets the "blob_path" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableBlobPath(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetBlobPath(*v)
	}
	return _u
}

// ClearBlobPath clears the value of the "blob_path" field.
func (_u *EvidenceUpdate) ClearBlobPath() *EvidenceUpdate {
	_u.mutation.ClearBlobPath()
	return _u
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (_u *EvidenceUpdate) SetBlobSizeBytes(v int64) *EvidenceUpdate {
	_u.mutation.ResetBlobSizeBytes()
	_u.mutation.SetBlobSizeBytes(v)
	return _u
}

// SetNillableBlobSizeBytes sets the "blob_size_bytes" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableBlobSizeBytes(v *int64) *EvidenceUpdate {
	if v != nil {
		_u.SetBlobSizeBytes(*v)
	}
	return _u
}

// AddBlobSizeBytes adds value to the "blob_size_bytes" field.
func (_u *EvidenceUpdate) AddBlobSizeBytes(v int64) *EvidenceUpdate {
	_u.mutation.AddBlobSizeBytes(v)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *EvidenceUpdate) SetFileName(v string) *EvidenceUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableFileName(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *EvidenceUpdate) ClearFileName() *EvidenceUpdate {
	_u.mutation.ClearFileName()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *EvidenceUpdate) SetContentType(v string) *EvidenceUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableContentType(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *EvidenceUpdate) ClearContentType() *EvidenceUpdate {
	_u.mutation.ClearContentType()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *EvidenceUpdate) SetNotes(v string) *EvidenceUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableNotes(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *EvidenceUpdate) ClearNotes() *EvidenceUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the EvidenceMutation object of the builder.
func (_u *EvidenceUpdate) Mutation() *EvidenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvidenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvidenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvidenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evidence.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceUpdate) check() error {
	if v, ok := _u.mutation.EvidenceTypeCode(); ok {
		if err := evidence.EvidenceTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "evidence_type_code", err: fmt.Errorf(`ent: validator failed for field "Evidence.evidence_type_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlobSizeBytes(); ok {
		if err := evidence.BlobSizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "blob_size_bytes", err: fmt.Errorf(`ent: validator failed for field "Evidence.blob_size_bytes": %w`, err)}
		}
	}
	return nil
}

func (_u *EvidenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidence.Table, evidence.Columns, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evidence.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(evidence.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PersonID(); ok {
		_spec.SetField(evidence.FieldPersonID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EvidenceTypeCode(); ok {
		_spec.SetField(evidence.FieldEvidenceTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentNumber(); ok {
		_spec.SetField(evidence.FieldDocumentNumber, field.TypeString, value)
	}
	if _u.mutation.DocumentNumberCleared() {
		_spec.ClearField(evidence.FieldDocumentNumber, field.TypeString)
	}
	if value, ok := _u.mutation.IssuedDate(); ok {
		_spec.SetField(evidence.FieldIssuedDate, field.TypeTime, value)
	}
	if _u.mutation.IssuedDateCleared() {
		_spec.ClearField(evidence.FieldIssuedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IssuingAuthority(); ok {
		_spec.SetField(evidence.FieldIssuingAuthority, field.TypeString, value)
	}
	if _u.mutation.IssuingAuthorityCleared() {
		_spec.ClearField(evidence.FieldIssuingAuthority, field.TypeString)
	}
	if value, ok := _u.mutation.BlobSha256(); ok {
		_spec.SetField(evidence.FieldBlobSha256, field.TypeString, value)
	}
	if _u.mutation.BlobSha256Cleared() {
		_spec.ClearField(evidence.FieldBlobSha256, field.TypeString)
	}
	if value, ok := _u.mutation.BlobPath(); ok {
		_spec.SetField(evidence.FieldBlobPath, field.TypeString, value)
	}
	if _u.mutation.BlobPathCleared() {
		_spec.ClearField(evidence.FieldBlobPath, field.TypeString)
	}
	if value, ok := _u.mutation.BlobSizeBytes(); ok {
		_spec.SetField(evidence.FieldBlobSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBlobSizeBytes(); ok {
		_spec.AddField(evidence.FieldBlobSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(evidence.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(evidence.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(evidence.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(evidence.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(evidence.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(evidence.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvidenceUpdateOne is the builder for updating a single Evidence entity.
type EvidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvidenceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvidenceUpdateOne) SetUpdatedAt(v time.Time) *EvidenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPersonID sets the "person_id" field.
func (_u *EvidenceUpdateOne) SetPersonID(v uuid.UUID) *EvidenceUpdateOne {
	_u.mutation.SetPersonID(v)
	return _u
}

// SetNillablePersonID sets the "person_id" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillablePersonID(v *uuid.UUID) *EvidenceUpdateOne {
	if v != nil {
		_u.SetPersonID(*v)
	}
	return _u
}

// SetEvidenceTypeCode sets the "evidence_type_code" field.
func (_u *EvidenceUpdateOne) SetEvidenceTypeCode(v string) *EvidenceUpdateOne {
	_u.mutation.SetEvidenceTypeCode(v)
	return _u
}

// SetNillableEvidenceTypeCode sets the "evidence_type_code" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableEvidenceTypeCode(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetEvidenceTypeCode(*v)
	}
	return _u
}

// SetDocumentNumber sets the "document_number" field.
func (_u *EvidenceUpdateOne) SetDocumentNumber(v string) *EvidenceUpdateOne {
	_u.mutation.SetDocumentNumber(v)
	return _u
}

// SetNillableDocumentNumber sets the "document_number" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableDocumentNumber(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetDocumentNumber(*v)
	}
	return _u
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (_u *EvidenceUpdateOne) ClearDocumentNumber() *EvidenceUpdateOne {
	_u.mutation.ClearDocumentNumber()
	return _u
}

// SetIssuedDate sets the "issued_date" field.
func (_u *EvidenceUpdateOne) SetIssuedDate(v time.Time) *EvidenceUpdateOne {
	_u.mutation.SetIssuedDate(v)
	return _u
}

// SetNillableIssuedDate sets the "issued_date" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableIssuedDate(v *time.Time) *EvidenceUpdateOne {
	if v != nil {
		_u.SetIssuedDate(*v)
	}
	return _u
}

// ClearIssuedDate clears the value of the "issued_date" field.
func (_u *EvidenceUpdateOne) ClearIssuedDate() *EvidenceUpdateOne {
	_u.mutation.ClearIssuedDate()
	return _u
}

// SetIssuingAuthority sets the "issuing_authority" field.
func (_u *EvidenceUpdateOne) SetIssuingAuthority(v string) *EvidenceUpdateOne {
	_u.mutation.SetIssuingAuthority(v)
	return _u
}

// SetNillableIssuingAuthority sets the "issuing_authority" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableIssuingAuthority(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetIssuingAuthority(*v)
	}
	return _u
}

// ClearIssuingAuthority clears the value of the "issuing_authority" field.
func (_u *EvidenceUpdateOne) ClearIssuingAuthority() *EvidenceUpdateOne {
	_u.mutation.ClearIssuingAuthority()
	return _u
}

// SetBlobSha256 sets the "blob_sha256" field.
func (_u *EvidenceUpdateOne) SetBlobSha256(v string) *EvidenceUpdateOne {
	_u.mutation.SetBlobSha256(v)
	return _u
}

// SetNillableBlobSha256 sets the "blob_sha256" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableBlobSha256(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetBlobSha256(*v)
	}
	return _u
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (_u *EvidenceUpdateOne) ClearBlobSha256() *EvidenceUpdateOne {
	_u.mutation.ClearBlobSha256()
	return _u
}

// SetBlobPath sets the "blob_path" field.
func (_u *EvidenceUpdateOne) SetBlobPath(v string) *EvidenceUpdateOne {
	_u.mutation.SetBlobPath(v)
	return _u
}

// SetNillableBlobPath sets the "blob_path" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableBlobPath(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetBlobPath(*v)
	}
	return _u
}

// ClearBlobPath clears the value of the "blob_path" field.
func (_u *EvidenceUpdateOne) ClearBlobPath() *EvidenceUpdateOne {
	_u.mutation.ClearBlobPath()
	return _u
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (_u *EvidenceUpdateOne) SetBlobSizeBytes(v int64) *EvidenceUpdateOne {
	_u.mutation.ResetBlobSizeBytes()
	_u.mutation.SetBlobSizeBytes(v)
	return _u
}

// SetNillableBlobSizeBytes sets the "blob_size_bytes" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableBlobSizeBytes(v *int64) *EvidenceUpdateOne {
	if v != nil {
		_u.SetBlobSizeBytes(*v)
	}
	return _u
}

// AddBlobSizeBytes adds value to the "blob_size_bytes" field.
func (_u *EvidenceUpdateOne) AddBlobSizeBytes(v int64) *EvidenceUpdateOne {
	_u.mutation.AddBlobSizeBytes(v)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *EvidenceUpdateOne) SetFileName(v string) *EvidenceUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableFileName(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *EvidenceUpdateOne) ClearFileName() *EvidenceUpdateOne {
	_u.mutation.ClearFileName()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *EvidenceUpdateOne) SetContentType(v string) *EvidenceUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableContentType(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *EvidenceUpdateOne) ClearContentType() *EvidenceUpdateOne {
	_u.mutation.ClearContentType()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *EvidenceUpdateOne) SetNotes(v string) *EvidenceUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableNotes(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *EvidenceUpdateOne) ClearNotes() *EvidenceUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the EvidenceMutation object of the builder.
func (_u *EvidenceUpdateOne) Mutation() *EvidenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvidenceUpdate builder.
func (_u *EvidenceUpdateOne) Where(ps ...predicate.Evidence) *EvidenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvidenceUpdateOne) Select(field string, fields ...string) *EvidenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evidence entity.
func (_u *EvidenceUpdateOne) Save(ctx context.Context) (*Evidence, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceUpdateOne) SaveX(ctx context.Context) *Evidence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvidenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evidence.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceUpdateOne) check() error {
	if v, ok := _u.mutation.EvidenceTypeCode(); ok {
		if err := evidence.EvidenceTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "evidence_type_code", err: fmt.Errorf(`ent: validator failed for field "Evidence.evidence_type_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlobSizeBytes(); ok {
		if err := evidence.BlobSizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "blob_size_bytes", err: fmt.Errorf(`ent: validator failed for field "Evidence.blob_size_bytes": %w`, err)}
		}
	}
	return nil
}

func (_u *EvidenceUpdateOne) sqlSave(ctx context.Context) (_node *Evidence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidence.Table, evidence.Columns, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evidence.FieldID)
		for _, f := range fields {
			if !evidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evidence.FieldID {
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
		_spec.SetField(evidence.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(evidence.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PersonID(); ok {
		_spec.SetField(evidence.FieldPersonID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EvidenceTypeCode(); ok {
		_spec.SetField(evidence.FieldEvidenceTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentNumber(); ok {
		_spec.SetField(evidence.FieldDocumentNumber, field.TypeString, value)
	}
	if _u.mutation.DocumentNumberCleared() {
		_spec.ClearField(evidence.FieldDocumentNumber, field.TypeString)
	}
	if value, ok := _u.mutation.IssuedDate(); ok {
		_spec.SetField(evidence.FieldIssuedDate, field.TypeTime, value)
	}
	if _u.mutation.IssuedDateCleared() {
		_spec.ClearField(evidence.FieldIssuedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IssuingAuthority(); ok {
		_spec.SetField(evidence.FieldIssuingAuthority, field.TypeString, value)
	}
	if _u.mutation.IssuingAuthorityCleared() {
		_spec.ClearField(evidence.FieldIssuingAuthority, field.TypeString)
	}
	if value, ok := _u.mutation.BlobSha256(); ok {
		_spec.SetField(evidence.FieldBlobSha256, field.TypeString, value)
	}
	if _u.mutation.BlobSha256Cleared() {
		_spec.ClearField(evidence.FieldBlobSha256, field.TypeString)
	}
	if value, ok := _u.mutation.BlobPath(); ok {
		_spec.SetField(evidence.FieldBlobPath, field.TypeString, value)
	}
	if _u.mutation.BlobPathCleared() {
		_spec.ClearField(evidence.FieldBlobPath, field.TypeString)
	}
	if value, ok := _u.mutation.BlobSizeBytes(); ok {
		_spec.SetField(evidence.FieldBlobSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBlobSizeBytes(); ok {
		_spec.AddField(evidence.FieldBlobSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(evidence.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(evidence.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(evidence.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(evidence.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(evidence.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(evidence.FieldNotes, field.TypeString)
	}
	_node = &Evidence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
