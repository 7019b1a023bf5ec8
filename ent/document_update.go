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
	"uhc-registry.io/registry/ent/document"
	"uhc-registry.io/registry/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *DocumentUpdate) SetClaimID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableClaimID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetDocumentTypeCode sets the "document_type_code" field.
func (_u *DocumentUpdate) SetDocumentTypeCode(v string) *DocumentUpdate {
	_u.mutation.SetDocumentTypeCode(v)
	return _u
}

// SetNillableDocumentTypeCode sets the "document_type_code" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocumentTypeCode(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocumentTypeCode(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdate) SetTitle(v string) *DocumentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTitle(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DocumentUpdate) ClearTitle() *DocumentUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetBlobSha256 sets the "blob_sha256" field.
func (_u *DocumentUpdate) SetBlobSha256(v string) *DocumentUpdate {
	_u.mutation.SetBlobSha256(v)
	return _u
}

// SetNillableBlobSha256 sets the "blob_sha256" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableBlobSha256(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetBlobSha256(*v)
	}
	return _u
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (_u *DocumentUpdate) ClearBlobSha256() *DocumentUpdate {
	_u.mutation.ClearBlobSha256()
	return _u
}

// SetBlobPath sets the "blob_path" field.
func (_u *DocumentUpdate) SetBlobPath(v string) *DocumentUpdate {
	_u.mutation.SetBlobPath(v)
	return _u
}

// SetNillableBlobPath sets the "blob_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableBlobPath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetBlobPath(*v)
	}
	return _u
}

// ClearBlobPath clears the value of the "blob_path" field.
func (_u *DocumentUpdate) ClearBlobPath() *DocumentUpdate {
	_u.mutation.ClearBlobPath()
	return _u
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (_u *DocumentUpdate) SetBlobSizeBytes(v int64) *DocumentUpdate {
	_u.mutation.ResetBlobSizeBytes()
	_u.mutation.SetBlobSizeBytes(v)
	return _u
}

// SetNillableBlobSizeBytes sets the "blob_size_bytes" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableBlobSizeBytes(v *int64) *DocumentUpdate {
	if v != nil {
		_u.SetBlobSizeBytes(*v)
	}
	return _u
}

// AddBlobSizeBytes adds value to the "blob_size_bytes" field.
func (_u *DocumentUpdate) AddBlobSizeBytes(v int64) *DocumentUpdate {
	_u.mutation.AddBlobSizeBytes(v)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdate) SetFileName(v string) *DocumentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *DocumentUpdate) ClearFileName() *DocumentUpdate {
	_u.mutation.ClearFileName()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *DocumentUpdate) SetContentType(v string) *DocumentUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContentType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *DocumentUpdate) ClearContentType() *DocumentUpdate {
	_u.mutation.ClearContentType()
	return _u
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.DocumentTypeCode(); ok {
		if err := document.DocumentTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "document_type_code", err: fmt.Errorf(`ent: validator failed for field "Document.document_type_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlobSizeBytes(); ok {
		if err := document.BlobSizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "blob_size_bytes", err: fmt.Errorf(`ent: validator failed for field "Document.blob_size_bytes": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(document.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ClaimID(); ok {
		_spec.SetField(document.FieldClaimID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DocumentTypeCode(); ok {
		_spec.SetField(document.FieldDocumentTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(document.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.BlobSha256(); ok {
		_spec.SetField(document.FieldBlobSha256, field.TypeString, value)
	}
	if _u.mutation.BlobSha256Cleared() {
		_spec.ClearField(document.FieldBlobSha256, field.TypeString)
	}
	if value, ok := _u.mutation.BlobPath(); ok {
		_spec.SetField(document.FieldBlobPath, field.TypeString, value)
	}
	if _u.mutation.BlobPathCleared() {
		_spec.ClearField(document.FieldBlobPath, field.TypeString)
	}
	if value, ok := _u.mutation.BlobSizeBytes(); ok {
		_spec.SetField(document.FieldBlobSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBlobSizeBytes(); ok {
		_spec.AddField(document.FieldBlobSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(document.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(document.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(document.FieldContentType, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *DocumentUpdateOne) SetClaimID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableClaimID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetDocumentTypeCode sets the "document_type_code" field.
func (_u *DocumentUpdateOne) SetDocumentTypeCode(v string) *DocumentUpdateOne {
	_u.mutation.SetDocumentTypeCode(v)
	return _u
}

// SetNillableDocumentTypeCode sets the "document_type_code" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocumentTypeCode(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocumentTypeCode(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdateOne) SetTitle(v string) *DocumentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTitle(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DocumentUpdateOne) ClearTitle() *DocumentUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetBlobSha256 sets the "blob_sha256" field.
func (_u *DocumentUpdateOne) SetBlobSha256(v string) *DocumentUpdateOne {
	_u.mutation.SetBlobSha256(v)
	return _u
}

// SetNillableBlobSha256 sets the "blob_sha256" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableBlobSha256(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetBlobSha256(*v)
	}
	return _u
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (_u *DocumentUpdateOne) ClearBlobSha256() *DocumentUpdateOne {
	_u.mutation.ClearBlobSha256()
	return _u
}

// SetBlobPath sets the "blob_path" field.
func (_u *DocumentUpdateOne) SetBlobPath(v string) *DocumentUpdateOne {
	_u.mutation.SetBlobPath(v)
	return _u
}

// SetNillableBlobPath sets the "blob_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableBlobPath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetBlobPath(*v)
	}
	return _u
}

// ClearBlobPath clears the value of the "blob_path" field.
func (_u *DocumentUpdateOne) ClearBlobPath() *DocumentUpdateOne {
	_u.mutation.ClearBlobPath()
	return _u
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (_u *DocumentUpdateOne) SetBlobSizeBytes(v int64) *DocumentUpdateOne {
	_u.mutation.ResetBlobSizeBytes()
	_u.mutation.SetBlobSizeBytes(v)
	return _u
}

// SetNillableBlobSizeBytes sets the "blob_size_bytes" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableBlobSizeBytes(v *int64) *DocumentUpdateOne {
	if v != nil {
		_u.SetBlobSizeBytes(*v)
	}
	return _u
}

// AddBlobSizeBytes adds value to the "blob_size_bytes" field.
func (_u *DocumentUpdateOne) AddBlobSizeBytes(v int64) *DocumentUpdateOne {
	_u.mutation.AddBlobSizeBytes(v)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdateOne) SetFileName(v string) *DocumentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *DocumentUpdateOne) ClearFileName() *DocumentUpdateOne {
	_u.mutation.ClearFileName()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *DocumentUpdateOne) SetContentType(v string) *DocumentUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContentType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *DocumentUpdateOne) ClearContentType() *DocumentUpdateOne {
	_u.mutation.ClearContentType()
	return _u
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentTypeCode(); ok {
		if err := document.DocumentTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "document_type_code", err: fmt.Errorf(`ent: validator failed for field "Document.document_type_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlobSizeBytes(); ok {
		if err := document.BlobSizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "blob_size_bytes", err: fmt.Errorf(`ent: validator failed for field "Document.blob_size_bytes": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(document.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ClaimID(); ok {
		_spec.SetField(document.FieldClaimID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DocumentTypeCode(); ok {
		_spec.SetField(document.FieldDocumentTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(document.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.BlobSha256(); ok {
		_spec.SetField(document.FieldBlobSha256, field.TypeString, value)
	}
	if _u.mutation.BlobSha256Cleared() {
		_spec.ClearField(document.FieldBlobSha256, field.TypeString)
	}
	if value, ok := _u.mutation.BlobPath(); ok {
		_spec.SetField(document.FieldBlobPath, field.TypeString, value)
	}
	if _u.mutation.BlobPathCleared() {
		_spec.ClearField(document.FieldBlobPath, field.TypeString)
	}
	if value, ok := _u.mutation.BlobSizeBytes(); ok {
		_spec.SetField(document.FieldBlobSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBlobSizeBytes(); ok {
		_spec.AddField(document.FieldBlobSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(document.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(document.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(document.FieldContentType, field.TypeString)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
