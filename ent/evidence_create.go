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
	"uhc-registry.io/registry/ent/evidence"
)

// EvidenceCreate is the builder for creating a Evidence entity.
type EvidenceCreate struct {
	config
	mutation *EvidenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvidenceCreate) SetCreatedAt(v time.Time) *EvidenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableCreatedAt(v *time.Time) *EvidenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EvidenceCreate) SetUpdatedAt(v time.Time) *EvidenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableUpdatedAt(v *time.Time) *EvidenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourcePackageID sets the "source_package_id" field.
func (_c *EvidenceCreate) SetSourcePackageID(v uuid.UUID) *EvidenceCreate {
	_c.mutation.SetSourcePackageID(v)
	return _c
}

// SetNillableSourcePackageID sets the "source_package_id" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableSourcePackageID(v *uuid.UUID) *EvidenceCreate {
	if v != nil {
		_c.SetSourcePackageID(*v)
	}
	return _c
}

// SetPersonID sets the "person_id" field.
func (_c *EvidenceCreate) SetPersonID(v uuid.UUID) *EvidenceCreate {
	_c.mutation.SetPersonID(v)
	return _c
}

// SetEvidenceTypeCode sets the "evidence_type_code" field.
func (_c *EvidenceCreate) SetEvidenceTypeCode(v string) *EvidenceCreate {
	_c.mutation.SetEvidenceTypeCode(v)
	return _c
}

// SetDocumentNumber sets the "document_number" field.
func (_c *EvidenceCreate) SetDocumentNumber(v string) *EvidenceCreate {
	_c.mutation.SetDocumentNumber(v)
	return _c
}

// SetNillableDocumentNumber sets the "document_number" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableDocumentNumber(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetDocumentNumber(*v)
	}
	return _c
}

// SetIssuedDate sets the "issued_date" field.
func (_c *EvidenceCreate) SetIssuedDate(v time.Time) *EvidenceCreate {
	_c.mutation.SetIssuedDate(v)
	return _c
}

// SetNillableIssuedDate sets the "issued_date" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableIssuedDate(v *time.Time) *EvidenceCreate {
	if v != nil {
		_c.SetIssuedDate(*v)
	}
	return _c
}

// SetIssuingAuthority sets the "issuing_authority" field.
func (_c *EvidenceCreate) SetIssuingAuthority(v string) *EvidenceCreate {
	_c.mutation.SetIssuingAuthority(v)
	return _c
}

// SetNillableIssuingAuthority sets the "issuing_authority" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableIssuingAuthority(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetIssuingAuthority(*v)
	}
	return _c
}

// SetBlobSha256 sets the "blob_sha256" field.
func (_c *EvidenceCreate) SetBlobSha256(v string) *EvidenceCreate {
	_c.mutation.SetBlobSha256(v)
	return _c
}

// SetNillableBlobSha256 sets the "blob_sha256" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableBlobSha256(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetBlobSha256(*v)
	}
	return _c
}

// SetBlobPath sets the "blob_path" field.
func (_c *EvidenceCreate) SetBlobPath(v string) *EvidenceCreate {
	_c.mutation.SetBlobPath(v)
	return _c
}

// SetNillableBlobPath sets the "blob_path" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableBlobPath(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetBlobPath(*v)
	}
	return _c
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (_c *EvidenceCreate) SetBlobSizeBytes(v int64) *EvidenceCreate {
	_c.mutation.SetBlobSizeBytes(v)
	return _c
}

// SetNillableBlobSizeBytes sets the "blob_size_bytes" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableBlobSizeBytes(v *int64) *EvidenceCreate {
	if v != nil {
		_c.SetBlobSizeBytes(*v)
	}
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *EvidenceCreate) SetFileName(v string) *EvidenceCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableFileName(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetFileName(*v)
	}
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *EvidenceCreate) SetContentType(v string) *EvidenceCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableContentType(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *EvidenceCreate) SetNotes(v string) *EvidenceCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableNotes(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvidenceCreate) SetID(v uuid.UUID) *EvidenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EvidenceMutation object of the builder.
func (_c *EvidenceCreate) Mutation() *EvidenceMutation {
	return _c.mutation
}

// Save creates the Evidence in the database.
func (_c *EvidenceCreate) Save(ctx context.Context) (*Evidence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceCreate) SaveX(ctx context.Context) *Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evidence.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := evidence.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.BlobSizeBytes(); !ok {
		v := evidence.DefaultBlobSizeBytes
		_c.mutation.SetBlobSizeBytes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Evidence.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Evidence.updated_at"`)}
	}
	if _, ok := _c.mutation.PersonID(); !ok {
		return &ValidationError{Name: "person_id", err: errors.New(`ent: missing required field "Evidence.person_id"`)}
	}
	if _, ok := _c.mutation.EvidenceTypeCode(); !ok {
		return &ValidationError{Name: "evidence_type_code", err: errors.New(`ent: missing required field "Evidence.evidence_type_code"`)}
	}
	if v, ok := _c.mutation.EvidenceTypeCode(); ok {
		if err := evidence.EvidenceTypeCodeValidator(v); err != nil {
			return &ValidationError{Name: "evidence_type_code", err: fmt.Errorf(`ent: validator failed for field "Evidence.evidence_type_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlobSizeBytes(); !ok {
		return &ValidationError{Name: "blob_size_bytes", err: errors.New(`ent: missing required field "Evidence.blob_size_bytes"`)}
	}
	if v, ok := _c.mutation.BlobSizeBytes(); ok {
		if err := evidence.BlobSizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "blob_size_bytes", err: fmt.Errorf(`ent: validator failed for field "Evidence.blob_size_bytes": %w`, err)}
		}
	}
	return nil
}

func (_c *EvidenceCreate) sqlSave(ctx context.Context) (*Evidence, error) {
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

func (_c *EvidenceCreate) createSpec() (*Evidence, *sqlgraph.CreateSpec) {
	var (
		_node = &Evidence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidence.Table, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evidence.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(evidence.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourcePackageID(); ok {
		_spec.SetField(evidence.FieldSourcePackageID, field.TypeUUID, value)
		_node.SourcePackageID = &value
	}
	if value, ok := _c.mutation.PersonID(); ok {
		_spec.SetField(evidence.FieldPersonID, field.TypeUUID, value)
		_node.PersonID = value
	}
	if value, ok := _c.mutation.EvidenceTypeCode(); ok {
		_spec.SetField(evidence.FieldEvidenceTypeCode, field.TypeString, value)
		_node.EvidenceTypeCode = value
	}
	if value, ok := _c.mutation.DocumentNumber(); ok {
		_spec.SetField(evidence.FieldDocumentNumber, field.TypeString, value)
		_node.DocumentNumber = value
	}
	if value, ok := _c.mutation.IssuedDate(); ok {
		_spec.SetField(evidence.FieldIssuedDate, field.TypeTime, value)
		_node.IssuedDate = &value
	}
	if value, ok := _c.mutation.IssuingAuthority(); ok {
		_spec.SetField(evidence.FieldIssuingAuthority, field.TypeString, value)
		_node.IssuingAuthority = value
	}
	if value, ok := _c.mutation.BlobSha256(); ok {
		_spec.SetField(evidence.FieldBlobSha256, field.TypeString, value)
		_node.BlobSha256 = value
	}
	if value, ok := _c.mutation.BlobPath(); ok {
		_spec.SetField(evidence.FieldBlobPath, field.TypeString, value)
		_node.BlobPath = value
	}
	if value, ok := _c.mutation.BlobSizeBytes(); ok {
		_spec.SetField(evidence.FieldBlobSizeBytes, field.TypeInt64, value)
		_node.BlobSizeBytes = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(evidence.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(evidence.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(evidence.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Evidence.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceCreate) OnConflict(opts ...sql.ConflictOption) *EvidenceUpsertOne {
	_c.conflict = opts
	return &EvidenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceCreate) OnConflictColumns(columns ...string) *EvidenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceUpsertOne{
		create: _c,
	}
}

type (
	// EvidenceUpsertOne is the builder for "upsert"-ing
	//  one Evidence node.
	EvidenceUpsertOne struct {
		create *EvidenceCreate
	}

	// EvidenceUpsert is the "OnConflict" setter.
	EvidenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *EvidenceUpsert) SetUpdatedAt(v time.Time) *EvidenceUpsert {
	u.Set(evidence.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateUpdatedAt() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldUpdatedAt)
	return u
}

// SetPersonID sets the "person_id" field.
func (u *EvidenceUpsert) SetPersonID(v uuid.UUID) *EvidenceUpsert {
	u.Set(evidence.FieldPersonID, v)
	return u
}

// UpdatePersonID sets the "person_id" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdatePersonID() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldPersonID)
	return u
}

// SetEvidenceTypeCode sets the "evidence_type_code" field.
func (u *EvidenceUpsert) SetEvidenceTypeCode(v string) *EvidenceUpsert {
	u.Set(evidence.FieldEvidenceTypeCode, v)
	return u
}

// UpdateEvidenceTypeCode sets the "evidence_type_code" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateEvidenceTypeCode() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldEvidenceTypeCode)
	return u
}

// SetDocumentNumber sets the "document_number" field.
func (u *EvidenceUpsert) SetDocumentNumber(v string) *EvidenceUpsert {
	u.Set(evidence.FieldDocumentNumber, v)
	return u
}

// UpdateDocumentNumber sets the "document_number" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateDocumentNumber() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldDocumentNumber)
	return u
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (u *EvidenceUpsert) ClearDocumentNumber() *EvidenceUpsert {
	u.SetNull(evidence.FieldDocumentNumber)
	return u
}

// SetIssuedDate sets the "issued_date" field.
func (u *EvidenceUpsert) SetIssuedDate(v time.Time) *EvidenceUpsert {
	u.Set(evidence.FieldIssuedDate, v)
	return u
}

// UpdateIssuedDate sets the "issued_date" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateIssuedDate() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldIssuedDate)
	return u
}

// ClearIssuedDate clears the value of the "issued_date" field.
func (u *EvidenceUpsert) ClearIssuedDate() *EvidenceUpsert {
	u.SetNull(evidence.FieldIssuedDate)
	return u
}

// SetIssuingAuthority sets the "issuing_authority" field.
func (u *EvidenceUpsert) SetIssuingAuthority(v string) *EvidenceUpsert {
	u.Set(evidence.FieldIssuingAuthority, v)
	return u
}

// UpdateIssuingAuthority sets the "issuing_authority" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateIssuingAuthority() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldIssuingAuthority)
	return u
}

// ClearIssuingAuthority clears the value of the "issuing_authority" field.
func (u *EvidenceUpsert) ClearIssuingAuthority() *EvidenceUpsert {
	u.SetNull(evidence.FieldIssuingAuthority)
	return u
}

// SetBlobSha256 sets the "blob_sha256" field.
func (u *EvidenceUpsert) SetBlobSha256(v string) *EvidenceUpsert {
	u.Set(evidence.FieldBlobSha256, v)
	return u
}

// UpdateBlobSha256 sets the "blob_sha256" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateBlobSha256() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldBlobSha256)
	return u
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (u *EvidenceUpsert) ClearBlobSha256() *EvidenceUpsert {
	u.SetNull(evidence.FieldBlobSha256)
	return u
}

// SetBlobPath sets the "blob_path" field.
func (u *EvidenceUpsert) SetBlobPath(v string) *EvidenceUpsert {
	u.Set(evidence.FieldBlobPath, v)
	return u
}

// UpdateBlobPath sets the "blob_path" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateBlobPath() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldBlobPath)
	return u
}

// ClearBlobPath clears the value of the "blob_path" field.
func (u *EvidenceUpsert) ClearBlobPath() *EvidenceUpsert {
	u.SetNull(evidence.FieldBlobPath)
	return u
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (u *EvidenceUpsert) SetBlobSizeBytes(v int64) *EvidenceUpsert {
	u.Set(evidence.FieldBlobSizeBytes, v)
	return u
}

// UpdateBlobSizeBytes sets the "blob_size_bytes" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateBlobSizeBytes() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldBlobSizeBytes)
	return u
}

// AddBlobSizeBytes adds v to the "blob_size_bytes" field.
func (u *EvidenceUpsert) AddBlobSizeBytes(v int64) *EvidenceUpsert {
	u.Add(evidence.FieldBlobSizeBytes, v)
	return u
}

// SetFileName sets the "file_name" field.
func (u *EvidenceUpsert) SetFileName(v string) *EvidenceUpsert {
	u.Set(evidence.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateFileName() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldFileName)
	return u
}

// ClearFileName clears the value of the "file_name" field.
func (u *EvidenceUpsert) ClearFileName() *EvidenceUpsert {
	u.SetNull(evidence.FieldFileName)
	return u
}

// SetContentType sets the "content_type" field.
func (u *EvidenceUpsert) SetContentType(v string) *EvidenceUpsert {
	u.Set(evidence.FieldContentType, v)
	return u
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateContentType() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldContentType)
	return u
}

// ClearContentType clears the value of the "content_type" field.
func (u *EvidenceUpsert) ClearContentType() *EvidenceUpsert {
	u.SetNull(evidence.FieldContentType)
	return u
}

// SetNotes sets the "notes" field.
func (u *EvidenceUpsert) SetNotes(v string) *EvidenceUpsert {
	u.Set(evidence.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateNotes() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *EvidenceUpsert) ClearNotes() *EvidenceUpsert {
	u.SetNull(evidence.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceUpsertOne) UpdateNewValues() *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(evidence.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(evidence.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SourcePackageID(); exists {
			s.SetIgnore(evidence.FieldSourcePackageID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Evidence.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvidenceUpsertOne) Ignore() *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceUpsertOne) DoNothing() *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceCreate.OnConflict
// documentation for more info.
func (u *EvidenceUpsertOne) Update(set func(*EvidenceUpsert)) *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvidenceUpsertOne) SetUpdatedAt(v time.Time) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateUpdatedAt() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPersonID sets the "person_id" field.
func (u *EvidenceUpsertOne) SetPersonID(v uuid.UUID) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetPersonID(v)
	})
}

// UpdatePersonID sets the "person_id" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdatePersonID() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdatePersonID()
	})
}

// SetEvidenceTypeCode sets the "evidence_type_code" field.
func (u *EvidenceUpsertOne) SetEvidenceTypeCode(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetEvidenceTypeCode(v)
	})
}

// UpdateEvidenceTypeCode sets the "evidence_type_code" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateEvidenceTypeCode() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateEvidenceTypeCode()
	})
}

// SetDocumentNumber sets the "document_number" field.
func (u *EvidenceUpsertOne) SetDocumentNumber(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetDocumentNumber(v)
	})
}

// UpdateDocumentNumber sets the "document_number" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateDocumentNumber() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateDocumentNumber()
	})
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (u *EvidenceUpsertOne) ClearDocumentNumber() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearDocumentNumber()
	})
}

// SetIssuedDate sets the "issued_date" field.
func (u *EvidenceUpsertOne) SetIssuedDate(v time.Time) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetIssuedDate(v)
	})
}

// UpdateIssuedDate sets the "issued_date" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateIssuedDate() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateIssuedDate()
	})
}

// ClearIssuedDate clears the value of the "issued_date" field.
func (u *EvidenceUpsertOne) ClearIssuedDate() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearIssuedDate()
	})
}

// SetIssuingAuthority sets the "issuing_authority" field.
func (u *EvidenceUpsertOne) SetIssuingAuthority(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetIssuingAuthority(v)
	})
}

// UpdateIssuingAuthority sets the "issuing_authority" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateIssuingAuthority() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateIssuingAuthority()
	})
}

// ClearIssuingAuthority clears the value of the "issuing_authority" field.
func (u *EvidenceUpsertOne) ClearIssuingAuthority() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearIssuingAuthority()
	})
}

// SetBlobSha256 sets the "blob_sha256" field.
func (u *EvidenceUpsertOne) SetBlobSha256(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetBlobSha256(v)
	})
}

// UpdateBlobSha256 sets the "blob_sha256" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateBlobSha256() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateBlobSha256()
	})
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (u *EvidenceUpsertOne) ClearBlobSha256() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearBlobSha256()
	})
}

// SetBlobPath sets the "blob_path" field.
func (u *EvidenceUpsertOne) SetBlobPath(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetBlobPath(v)
	})
}

// UpdateBlobPath sets the "blob_path" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateBlobPath() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateBlobPath()
	})
}

// ClearBlobPath clears the value of the "blob_path" field.
func (u *EvidenceUpsertOne) ClearBlobPath() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearBlobPath()
	})
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (u *EvidenceUpsertOne) SetBlobSizeBytes(v int64) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetBlobSizeBytes(v)
	})
}

// AddBlobSizeBytes adds v to the "blob_size_bytes" field.
func (u *EvidenceUpsertOne) AddBlobSizeBytes(v int64) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.AddBlobSizeBytes(v)
	})
}

// UpdateBlobSizeBytes sets the "blob_size_bytes" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateBlobSizeBytes() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateBlobSizeBytes()
	})
}

// SetFileName sets the "file_name" field.
func (u *EvidenceUpsertOne) SetFileName(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateFileName() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateFileName()
	})
}

// ClearFileName clears the value of the "file_name" field.
func (u *EvidenceUpsertOne) ClearFileName() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearFileName()
	})
}

// SetContentType sets the "content_type" field.
func (u *EvidenceUpsertOne) SetContentType(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateContentType() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateContentType()
	})
}

// ClearContentType clears the value of the "content_type" field.
func (u *EvidenceUpsertOne) ClearContentType() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearContentType()
	})
}

// SetNotes sets the "notes" field.
func (u *EvidenceUpsertOne) SetNotes(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateNotes() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *EvidenceUpsertOne) ClearNotes() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *EvidenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvidenceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EvidenceUpsertOne.ID is not supported by MySQL driver. Use EvidenceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvidenceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvidenceCreateBulk is the builder for creating many Evidence entities in bulk.
type EvidenceCreateBulk struct {
	config
	err      error
	builders []*EvidenceCreate
	conflict []sql.ConflictOption
}

// Save creates the Evidence entities in the database.
func (_c *EvidenceCreateBulk) Save(ctx context.Context) ([]*Evidence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evidence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceMutation)
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
func (_c *EvidenceCreateBulk) SaveX(ctx context.Context) []*Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Evidence.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvidenceUpsertBulk {
	_c.conflict = opts
	return &EvidenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceCreateBulk) OnConflictColumns(columns ...string) *EvidenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceUpsertBulk{
		create: _c,
	}
}

// EvidenceUpsertBulk is the builder for "upsert"-ing
// a bulk of Evidence nodes.
type EvidenceUpsertBulk struct {
	create *EvidenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceUpsertBulk) UpdateNewValues() *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(evidence.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(evidence.FieldCreatedAt)
			}
			if _, exists := b.mutation.SourcePackageID(); exists {
				s.SetIgnore(evidence.FieldSourcePackageID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvidenceUpsertBulk) Ignore() *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceUpsertBulk) DoNothing() *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceCreateBulk.OnConflict
// documentation for more info.
func (u *EvidenceUpsertBulk) Update(set func(*EvidenceUpsert)) *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvidenceUpsertBulk) SetUpdatedAt(v time.Time) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateUpdatedAt() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPersonID sets the "person_id" field.
func (u *EvidenceUpsertBulk) SetPersonID(v uuid.UUID) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetPersonID(v)
	})
}

// UpdatePersonID sets the "person_id" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdatePersonID() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdatePersonID()
	})
}

// SetEvidenceTypeCode sets the "evidence_type_code" field.
func (u *EvidenceUpsertBulk) SetEvidenceTypeCode(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetEvidenceTypeCode(v)
	})
}

// UpdateEvidenceTypeCode sets the "evidence_type_code" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateEvidenceTypeCode() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateEvidenceTypeCode()
	})
}

// SetDocumentNumber sets the "document_number" field.
func (u *EvidenceUpsertBulk) SetDocumentNumber(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetDocumentNumber(v)
	})
}

// UpdateDocumentNumber sets the "document_number" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateDocumentNumber() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateDocumentNumber()
	})
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (u *EvidenceUpsertBulk) ClearDocumentNumber() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearDocumentNumber()
	})
}

// SetIssuedDate sets the "issued_date" field.
func (u *EvidenceUpsertBulk) SetIssuedDate(v time.Time) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetIssuedDate(v)
	})
}

// UpdateIssuedDate sets the "issued_date" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateIssuedDate() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateIssuedDate()
	})
}

// ClearIssuedDate clears the value of the "issued_date" field.
func (u *EvidenceUpsertBulk) ClearIssuedDate() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearIssuedDate()
	})
}

// SetIssuingAuthority sets the "issuing_authority" field.
func (u *EvidenceUpsertBulk) SetIssuingAuthority(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetIssuingAuthority(v)
	})
}

// UpdateIssuingAuthority sets the "issuing_authority" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateIssuingAuthority() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateIssuingAuthority()
	})
}

// ClearIssuingAuthority clears the value of the "issuing_authority" field.
func (u *EvidenceUpsertBulk) ClearIssuingAuthority() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearIssuingAuthority()
	})
}

// SetBlobSha256 sets the "blob_sha256" field.
func (u *EvidenceUpsertBulk) SetBlobSha256(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetBlobSha256(v)
	})
}

// UpdateBlobSha256 sets the "blob_sha256" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateBlobSha256() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateBlobSha256()
	})
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (u *EvidenceUpsertBulk) ClearBlobSha256() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearBlobSha256()
	})
}

// SetBlobPath sets the "blob_path" field.
func (u *EvidenceUpsertBulk) SetBlobPath(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetBlobPath(v)
	})
}

// UpdateBlobPath sets the "blob_path" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateBlobPath() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateBlobPath()
	})
}

// ClearBlobPath clears the value of the "blob_path" field.
func (u *EvidenceUpsertBulk) ClearBlobPath() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearBlobPath()
	})
}

// SetBlobSizeBytes sets the "blob_size_bytes" field.
func (u *EvidenceUpsertBulk) SetBlobSizeBytes(v int64) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetBlobSizeBytes(v)
	})
}

// AddBlobSizeBytes adds v to the "blob_size_bytes" field.
func (u *EvidenceUpsertBulk) AddBlobSizeBytes(v int64) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.AddBlobSizeBytes(v)
	})
}

// UpdateBlobSizeBytes sets the "blob_size_bytes" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateBlobSizeBytes() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateBlobSizeBytes()
	})
}

// SetFileName sets the "file_name" field.
func (u *EvidenceUpsertBulk) SetFileName(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateFileName() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateFileName()
	})
}

// ClearFileName clears the value of the "file_name" field.
func (u *EvidenceUpsertBulk) ClearFileName() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearFileName()
	})
}

// SetContentType sets the "content_type" field.
func (u *EvidenceUpsertBulk) SetContentType(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateContentType() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateContentType()
	})
}

// ClearContentType clears the value of the "content_type" field.
func (u *EvidenceUpsertBulk) ClearContentType() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearContentType()
	})
}

// SetNotes sets the "notes" field.
func (u *EvidenceUpsertBulk) SetNotes(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateNotes() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *EvidenceUpsertBulk) ClearNotes() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *EvidenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvidenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
