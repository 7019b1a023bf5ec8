// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/document"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentCreate) SetUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourcePackageID sets the "source_package_id" field.
func (_c *DocumentCreate) SetSourcePackageID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetSourcePackageID(v)
	return _c
}

// SetNillableSourcePackageID sets the "source_package_id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableSourcePackageID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetSourcePackageID(*v)
	}
	return _c
}

// SetClaimID sets the "claim_id" field.
func (_c *DocumentCreate) SetClaimID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetClaimID(v)
	return _c
}

// SetDocumentTypeCode sets the "document_type_code" field.
func (_c *DocumentCreate) SetDocumentTypeCode(v string) *DocumentCreate {
	_c.mutation.SetDocumentTypeCode(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DocumentCreate) SetTitle(v string) *DocumentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableTitle(v *string) *DocumentCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetBlobSha256 sets the "blob_sha256" field.
func (_c *DocumentCreate) SetBlobSha256(v string) *DocumentCreate {
	_c.mutation.SetBlobSha256(v)
	return _c
}

// SetNillableBlobSha256 sets the "blob_sha256" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableBlobSha256(v *string) *DocumentCreate {
	if v != nil {
		_c.SetBlobSha256(*v)
	}
	return _c
}

// SetBlobPath sets the "blob_path" field.
func (_c *DocumentCreate) SetBlobPath(v string) *DocumentCreate {
	_c.mutation.SetBlobPath(v)
	return _c
}

// SetNillableBlobPath sets the "blob_path" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableBlobPath(v *string) *DocumentCreate {
	if v != nil {
		_c.SetBlobPath(*v)
	}
	return _c
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (_c *DocumentCreate) SetBlobSizeBytes(v int64) *DocumentCreate {
	_c.mutation.SetBlobSizeBytes(v)
	return _c
}

// SetNillableBlobSizeBytes sets the "blob_size_bytes" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableBlobSizeBytes(v *int64) *DocumentCreate {
	if v != nil {
		_c.SetBlobSizeBytes(*v)
	}
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *DocumentCreate) SetFileName(v string) *DocumentCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableFileName(v *string) *DocumentCreate {
	if v != nil {
		_c.SetFileName(*v)
	}
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *DocumentCreate) SetContentType(v string) *DocumentCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableContentType(v *string) *DocumentCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.BlobSizeBytes(); !ok {
		v := document.DefaultBlobSizeBytes
		_c.mutation.SetBlobSizeBytes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	if _, ok := _c.mutation.ClaimID(); !ok {
		return &ValidationError{Name: "claim_id", err: errors.New(`ent: missing required field "Document.claim_id"`)}
	}
	if _, ok := _c.mutation.DocumentTypeCode(); !ok {
		return &ValidationError{Name: "document_type_code", err: errors.New(`ent: missing required field "Document.document_type_code"`)}
	}
	if v, ok := _c.mutation.DocumentTypeCode(); ok {
		if err := document.DocumentTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "document_type_code", err: fmt.Errorf(`ent: validator failed for field "Document.document_type_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlobSizeBytes(); !ok {
		return &ValidationError{Name: "blob_size_bytes", err: errors.New(`ent: missing required field "Document.blob_size_bytes"`)}
	}
	if v, ok := _c.mutation.BlobSizeBytes(); ok {
		if err := document.BlobSizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "blob_size_bytes", err: fmt.Errorf(`ent: validator failed for field "Document.blob_size_bytes": %w`, err)}
		}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourcePackageID(); ok {
		_spec.SetField(document.FieldSourcePackageID, field.TypeUUID, value)
		_node.SourcePackageID = &value
	}
	if value, ok := _c.mutation.ClaimID(); ok {
		_spec.SetField(document.FieldClaimID, field.TypeUUID, value)
		_node.ClaimID = value
	}
	if value, ok := _c.mutation.DocumentTypeCode(); ok {
		_spec.SetField(document.FieldDocumentTypeCode, field.TypeString, value)
		_node.DocumentTypeCode = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.BlobSha256(); ok {
		_spec.SetField(document.FieldBlobSha256, field.TypeString, value)
		_node.BlobSha256 = value
	}
	if value, ok := _c.mutation.BlobPath(); ok {
		_spec.SetField(document.FieldBlobPath, field.TypeString, value)
		_node.BlobPath = value
	}
	if value, ok := _c.mutation.BlobSizeBytes(); ok {
		_spec.SetField(document.FieldBlobSizeBytes, field.TypeInt64, value)
		_node.BlobSizeBytes = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(document.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertOne {
	_c.conflict = opts
	return &DocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflictColumns(columns ...string) *DocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertOne{
		create: _c,
	}
}

type (
	// DocumentUpsertOne is the builder for "upsert"-ing
	//  one Document node.
	DocumentUpsertOne struct {
		create *DocumentCreate
	}

	// DocumentUpsert is the "OnConflict" setter.
	DocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsert) SetUpdatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateUpdatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldUpdatedAt)
	return u
}

// SetClaimID sets the "claim_id" field.
func (u *DocumentUpsert) SetClaimID(v uuid.UUID) *DocumentUpsert {
	u.Set(document.FieldClaimID, v)
	return u
}

// UpdateClaimID sets the "claim_id" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateClaimID() *DocumentUpsert {
	u.SetExcluded(document.FieldClaimID)
	return u
}

// SetDocumentTypeCode sets the "document_type_code" field.
func (u *DocumentUpsert) SetDocumentTypeCode(v string) *DocumentUpsert {
	u.Set(document.FieldDocumentTypeCode, v)
	return u
}

// UpdateDocumentTypeCode sets the "document_type_code" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateDocumentTypeCode() *DocumentUpsert {
	u.SetExcluded(document.FieldDocumentTypeCode)
	return u
}

// SetTitle sets the "title" field.
func (u *DocumentUpsert) SetTitle(v string) *DocumentUpsert {
	u.Set(document.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateTitle() *DocumentUpsert {
	u.SetExcluded(document.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *DocumentUpsert) ClearTitle() *DocumentUpsert {
	u.SetNull(document.FieldTitle)
	return u
}

// SetBlobSha256 sets the "blob_sha256" field.
func (u *DocumentUpsert) SetBlobSha256(v string) *DocumentUpsert {
	u.Set(document.FieldBlobSha256, v)
	return u
}

// UpdateBlobSha256 sets the "blob_sha256" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateBlobSha256() *DocumentUpsert {
	u.SetExcluded(document.FieldBlobSha256)
	return u
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (u *DocumentUpsert) ClearBlobSha256() *DocumentUpsert {
	u.SetNull(document.FieldBlobSha256)
	return u
}

// SetBlobPath sets the "blob_path" field.
func (u *DocumentUpsert) SetBlobPath(v string) *DocumentUpsert {
	u.Set(document.FieldBlobPath, v)
	return u
}

// UpdateBlobPath sets the "blob_path" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateBlobPath() *DocumentUpsert {
	u.SetExcluded(document.FieldBlobPath)
	return u
}

// ClearBlobPath clears the value of the "blob_path" field.
func (u *DocumentUpsert) ClearBlobPath() *DocumentUpsert {
	u.SetNull(document.FieldBlobPath)
	return u
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (u *DocumentUpsert) SetBlobSizeBytes(v int64) *DocumentUpsert {
	u.Set(document.FieldBlobSizeBytes, v)
	return u
}

// UpdateBlobSizeBytes sets the "blob_size_bytes" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateBlobSizeBytes() *DocumentUpsert {
	u.SetExcluded(document.FieldBlobSizeBytes)
	return u
}

// AddBlobSizeBytes adds v to the "blob_size_bytes" field.
func (u *DocumentUpsert) AddBlobSizeBytes(v int64) *DocumentUpsert {
	u.Add(document.FieldBlobSizeBytes, v)
	return u
}

// SetFileName sets the "file_name" field.
func (u *DocumentUpsert) SetFileName(v string) *DocumentUpsert {
	u.Set(document.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateFileName() *DocumentUpsert {
	u.SetExcluded(document.FieldFileName)
	return u
}

// ClearFileName clears the value of the "file_name" field.
func (u *DocumentUpsert) ClearFileName() *DocumentUpsert {
	u.SetNull(document.FieldFileName)
	return u
}

// SetContentType sets the "content_type" field.
func (u *DocumentUpsert) SetContentType(v string) *DocumentUpsert {
	u.Set(document.FieldContentType, v)
	return u
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateContentType() *DocumentUpsert {
	u.SetExcluded(document.FieldContentType)
	return u
}

// ClearContentType clears the value of the "content_type" field.
func (u *DocumentUpsert) ClearContentType() *DocumentUpsert {
	u.SetNull(document.FieldContentType)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertOne) UpdateNewValues() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(document.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(document.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SourcePackageID(); exists {
			s.SetIgnore(document.FieldSourcePackageID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentUpsertOne) Ignore() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertOne) DoNothing() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreate.OnConflict
// documentation for more info.
func (u *DocumentUpsertOne) Update(set func(*DocumentUpsert)) *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertOne) SetUpdatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateUpdatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClaimID sets the "claim_id" field.
func (u *DocumentUpsertOne) SetClaimID(v uuid.UUID) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetClaimID(v)
	})
}

// UpdateClaimID sets the "claim_id" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateClaimID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateClaimID()
	})
}

// SetDocumentTypeCode sets the "document_type_code" field.
func (u *DocumentUpsertOne) SetDocumentTypeCode(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDocumentTypeCode(v)
	})
}

// UpdateDocumentTypeCode sets the "document_type_code" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateDocumentTypeCode() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDocumentTypeCode()
	})
}

// SetTitle sets the "title" field.
func (u *DocumentUpsertOne) SetTitle(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateTitle() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *DocumentUpsertOne) ClearTitle() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearTitle()
	})
}

// SetBlobSha256 sets the "blob_sha256" field.
func (u *DocumentUpsertOne) SetBlobSha256(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetBlobSha256(v)
	})
}

// UpdateBlobSha256 sets the "blob_sha256" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateBlobSha256() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateBlobSha256()
	})
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (u *DocumentUpsertOne) ClearBlobSha256() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearBlobSha256()
	})
}

// SetBlobPath sets the "blob_path" field.
func (u *DocumentUpsertOne) SetBlobPath(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetBlobPath(v)
	})
}

// UpdateBlobPath sets the "blob_path" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateBlobPath() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateBlobPath()
	})
}

// ClearBlobPath clears the value of the "blob_path" field.
func (u *DocumentUpsertOne) ClearBlobPath() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearBlobPath()
	})
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (u *DocumentUpsertOne) SetBlobSizeBytes(v int64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetBlobSizeBytes(v)
	})
}

// AddBlobSizeBytes adds v to the "blob_size_bytes" field.
func (u *DocumentUpsertOne) AddBlobSizeBytes(v int64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddBlobSizeBytes(v)
	})
}

// UpdateBlobSizeBytes sets the "blob_size_bytes" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateBlobSizeBytes() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateBlobSizeBytes()
	})
}

// SetFileName sets the "file_name" field.
func (u *DocumentUpsertOne) SetFileName(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateFileName() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFileName()
	})
}

// ClearFileName clears the value of the "file_name" field.
func (u *DocumentUpsertOne) ClearFileName() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearFileName()
	})
}

// SetContentType sets the "content_type" field.
func (u *DocumentUpsertOne) SetContentType(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateContentType() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateContentType()
	})
}

// ClearContentType clears the value of the "content_type" field.
func (u *DocumentUpsertOne) ClearContentType() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearContentType()
	})
}

// Exec executes the query.
func (u *DocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DocumentUpsertOne.ID is not supported by MySQL driver. Use DocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertBulk {
	_c.conflict = opts
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflictColumns(columns ...string) *DocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// DocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Document nodes.
type DocumentUpsertBulk struct {
	create *DocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertBulk) UpdateNewValues() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(document.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(document.FieldCreatedAt)
			}
			if _, exists := b.mutation.SourcePackageID(); exists {
				s.SetIgnore(document.FieldSourcePackageID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentUpsertBulk) Ignore() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertBulk) DoNothing() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentUpsertBulk) Update(set func(*DocumentUpsert)) *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertBulk) SetUpdatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateUpdatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClaimID sets the "claim_id" field.
func (u *DocumentUpsertBulk) SetClaimID(v uuid.UUID) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetClaimID(v)
	})
}

// UpdateClaimID sets the "claim_id" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateClaimID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateClaimID()
	})
}

// SetDocumentTypeCode sets the "document_type_code" field.
func (u *DocumentUpsertBulk) SetDocumentTypeCode(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDocumentTypeCode(v)
	})
}

// UpdateDocumentTypeCode sets the "document_type_code" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateDocumentTypeCode() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDocumentTypeCode()
	})
}

// SetTitle sets the "title" field.
func (u *DocumentUpsertBulk) SetTitle(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateTitle() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *DocumentUpsertBulk) ClearTitle() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearTitle()
	})
}

// SetBlobSha256 sets the "blob_sha256" field.
func (u *DocumentUpsertBulk) SetBlobSha256(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetBlobSha256(v)
	})
}

// UpdateBlobSha256 sets the "blob_sha256" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateBlobSha256() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateBlobSha256()
	})
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (u *DocumentUpsertBulk) ClearBlobSha256() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearBlobSha256()
	})
}

// SetBlobPath sets the "blob_path" field.
func (u *DocumentUpsertBulk) SetBlobPath(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetBlobPath(v)
	})
}

// UpdateBlobPath sets the "blob_path" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateBlobPath() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateBlobPath()
	})
}

// ClearBlobPath clears the value of the "blob_path" field.
func (u *DocumentUpsertBulk) ClearBlobPath() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearBlobPath()
	})
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (u *DocumentUpsertBulk) SetBlobSizeBytes(v int64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetBlobSizeBytes(v)
	})
}

// AddBlobSizeBytes adds v to the "blob_size_bytes" field.
func (u *DocumentUpsertBulk) AddBlobSizeBytes(v int64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddBlobSizeBytes(v)
	})
}

// UpdateBlobSizeBytes sets the "blob_size_bytes" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateBlobSizeBytes() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateBlobSizeBytes()
	})
}

// SetFileName sets the "file_name" field.
func (u *DocumentUpsertBulk) SetFileName(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateFileName() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFileName()
	})
}

// ClearFileName clears the value of the "file_name" field.
func (u *DocumentUpsertBulk) ClearFileName() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearFileName()
	})
}

// SetContentType sets the "content_type" field.
func (u *DocumentUpsertBulk) SetContentType(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateContentType() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateContentType()
	})
}

// ClearContentType clears the value of the "content_type" field.
func (u *DocumentUpsertBulk) ClearContentType() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearContentType()
	})
}

// Exec executes the query.
func (u *DocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
