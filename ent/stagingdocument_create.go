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
	"uhc-registry.io/registry/ent/stagingdocument"
	"uhc-registry.io/registry/internal/domain"
)

// StagingDocumentCreate is the builder for creating a StagingDocument entity.
type StagingDocumentCreate struct {
	config
	mutation *StagingDocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagingDocumentCreate) SetCreatedAt(v time.Time) *StagingDocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagingDocumentCreate) SetNillableCreatedAt(v *time.Time) *StagingDocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StagingDocumentCreate) SetUpdatedAt(v time.Time) *StagingDocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StagingDocumentCreate) SetNillableUpdatedAt(v *time.Time) *StagingDocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetImportPackageID sets the "import_package_id" field.
func (_c *StagingDocumentCreate) SetImportPackageID(v uuid.UUID) *StagingDocumentCreate {
	_c.mutation.SetImportPackageID(v)
	return _c
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (_c *StagingDocumentCreate) SetOriginalEntityID(v uuid.UUID) *StagingDocumentCreate {
	_c.mutation.SetOriginalEntityID(v)
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *StagingDocumentCreate) SetValidationStatus(v stagingdocument.ValidationStatus) *StagingDocumentCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *StagingDocumentCreate) SetNillableValidationStatus(v *stagingdocument.ValidationStatus) *StagingDocumentCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetDiagnostics sets the "diagnostics" field.
func (_c *StagingDocumentCreate) SetDiagnostics(v []domain.Diagnostic) *StagingDocumentCreate {
	_c.mutation.SetDiagnostics(v)
	return _c
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_c *StagingDocumentCreate) SetApprovedForCommit(v bool) *StagingDocumentCreate {
	_c.mutation.SetApprovedForCommit(v)
	return _c
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_c *StagingDocumentCreate) SetNillableApprovedForCommit(v *bool) *StagingDocumentCreate {
	if v != nil {
		_c.SetApprovedForCommit(*v)
	}
	return _c
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_c *StagingDocumentCreate) SetCommittedEntityID(v uuid.UUID) *StagingDocumentCreate {
	_c.mutation.SetCommittedEntityID(v)
	return _c
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_c *StagingDocumentCreate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingDocumentCreate {
	if v != nil {
		_c.SetCommittedEntityID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StagingDocumentCreate) SetPayload(v *domain.DocumentRecord) *StagingDocumentCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetBlobSha256 sets the "blob_sha256" field.
func (_c *StagingDocumentCreate) SetBlobSha256(v string) *StagingDocumentCreate {
	_c.mutation.SetBlobSha256(v)
	return _c
}

// SetNillableBlobSha256 sets the "blob_sha256" field if the given value is not nil.
func (_c *StagingDocumentCreate) SetNillableBlobSha256(v *string) *StagingDocumentCreate {
	if v != nil {
		_c.SetBlobSha256(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StagingDocumentCreate) SetID(v uuid.UUID) *StagingDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StagingDocumentMutation object of the builder.
func (_c *StagingDocumentCreate) Mutation() *StagingDocumentMutation {
	return _c.mutation
}

// Save creates the StagingDocument in the database.
func (_c *StagingDocumentCreate) Save(ctx context.Context) (*StagingDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagingDocumentCreate) SaveX(ctx context.Context) *StagingDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagingDocumentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagingdocument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stagingdocument.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := stagingdocument.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		v := stagingdocument.DefaultApprovedForCommit
		_c.mutation.SetApprovedForCommit(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagingDocumentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagingDocument.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StagingDocument.updated_at"`)}
	}
	if _, ok := _c.mutation.ImportPackageID(); !ok {
		return &ValidationError{Name: "import_package_id", err: errors.New(`ent: missing required field "StagingDocument.import_package_id"`)}
	}
	if _, ok := _c.mutation.OriginalEntityID(); !ok {
		return &ValidationError{Name: "original_entity_id", err: errors.New(`ent: missing required field "StagingDocument.original_entity_id"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "StagingDocument.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := stagingdocument.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingDocument.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		return &ValidationError{Name: "approved_for_commit", err: errors.New(`ent: missing required field "StagingDocument.approved_for_commit"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StagingDocument.payload"`)}
	}
	return nil
}

func (_c *StagingDocumentCreate) sqlSave(ctx context.Context) (*StagingDocument, error) {
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

func (_c *StagingDocumentCreate) createSpec() (*StagingDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &StagingDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagingdocument.Table, sqlgraph.NewFieldSpec(stagingdocument.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagingdocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingdocument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ImportPackageID(); ok {
		_spec.SetField(stagingdocument.FieldImportPackageID, field.TypeUUID, value)
		_node.ImportPackageID = value
	}
	if value, ok := _c.mutation.OriginalEntityID(); ok {
		_spec.SetField(stagingdocument.FieldOriginalEntityID, field.TypeUUID, value)
		_node.OriginalEntityID = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingdocument.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.Diagnostics(); ok {
		_spec.SetField(stagingdocument.FieldDiagnostics, field.TypeJSON, value)
		_node.Diagnostics = value
	}
	if value, ok := _c.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingdocument.FieldApprovedForCommit, field.TypeBool, value)
		_node.ApprovedForCommit = value
	}
	if value, ok := _c.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingdocument.FieldCommittedEntityID, field.TypeUUID, value)
		_node.CommittedEntityID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(stagingdocument.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.BlobSha256(); ok {
		_spec.SetField(stagingdocument.FieldBlobSha256, field.TypeString, value)
		_node.BlobSha256 = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingDocument.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingDocumentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingDocumentCreate) OnConflict(opts ...sql.ConflictOption) *StagingDocumentUpsertOne {
	_c.conflict = opts
	return &StagingDocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingDocument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingDocumentCreate) OnConflictColumns(columns ...string) *StagingDocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingDocumentUpsertOne{
		create: _c,
	}
}

type (
	// StagingDocumentUpsertOne is the builder for "upsert"-ing
	//  one StagingDocument node.
	StagingDocumentUpsertOne struct {
		create *StagingDocumentCreate
	}

	// StagingDocumentUpsert is the "OnConflict" setter.
	StagingDocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingDocumentUpsert) SetUpdatedAt(v time.Time) *StagingDocumentUpsert {
	u.Set(stagingdocument.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingDocumentUpsert) UpdateUpdatedAt() *StagingDocumentUpsert {
	u.SetExcluded(stagingdocument.FieldUpdatedAt)
	return u
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingDocumentUpsert) SetValidationStatus(v stagingdocument.ValidationStatus) *StagingDocumentUpsert {
	u.Set(stagingdocument.FieldValidationStatus, v)
	return u
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingDocumentUpsert) UpdateValidationStatus() *StagingDocumentUpsert {
	u.SetExcluded(stagingdocument.FieldValidationStatus)
	return u
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingDocumentUpsert) SetDiagnostics(v []domain.Diagnostic) *StagingDocumentUpsert {
	u.Set(stagingdocument.FieldDiagnostics, v)
	return u
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingDocumentUpsert) UpdateDiagnostics() *StagingDocumentUpsert {
	u.SetExcluded(stagingdocument.FieldDiagnostics)
	return u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingDocumentUpsert) ClearDiagnostics() *StagingDocumentUpsert {
	u.SetNull(stagingdocument.FieldDiagnostics)
	return u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingDocumentUpsert) SetApprovedForCommit(v bool) *StagingDocumentUpsert {
	u.Set(stagingdocument.FieldApprovedForCommit, v)
	return u
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingDocumentUpsert) UpdateApprovedForCommit() *StagingDocumentUpsert {
	u.SetExcluded(stagingdocument.FieldApprovedForCommit)
	return u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingDocumentUpsert) SetCommittedEntityID(v uuid.UUID) *StagingDocumentUpsert {
	u.Set(stagingdocument.FieldCommittedEntityID, v)
	return u
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingDocumentUpsert) UpdateCommittedEntityID() *StagingDocumentUpsert {
	u.SetExcluded(stagingdocument.FieldCommittedEntityID)
	return u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingDocumentUpsert) ClearCommittedEntityID() *StagingDocumentUpsert {
	u.SetNull(stagingdocument.FieldCommittedEntityID)
	return u
}

// SetPayload sets the "payload" field.
func (u *StagingDocumentUpsert) SetPayload(v *domain.DocumentRecord) *StagingDocumentUpsert {
	u.Set(stagingdocument.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingDocumentUpsert) UpdatePayload() *StagingDocumentUpsert {
	u.SetExcluded(stagingdocument.FieldPayload)
	return u
}

// SetBlobSha256 sets the "blob_sha256" field.
func (u *StagingDocumentUpsert) SetBlobSha256(v string) *StagingDocumentUpsert {
	u.Set(stagingdocument.FieldBlobSha256, v)
	return u
}

// UpdateBlobSha256 sets the "blob_sha256" field to the value that was provided on create.
func (u *StagingDocumentUpsert) UpdateBlobSha256() *StagingDocumentUpsert {
	u.SetExcluded(stagingdocument.FieldBlobSha256)
	return u
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (u *StagingDocumentUpsert) ClearBlobSha256() *StagingDocumentUpsert {
	u.SetNull(stagingdocument.FieldBlobSha256)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StagingDocument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingdocument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingDocumentUpsertOne) UpdateNewValues() *StagingDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stagingdocument.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stagingdocument.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ImportPackageID(); exists {
			s.SetIgnore(stagingdocument.FieldImportPackageID)
		}
		if _, exists := u.create.mutation.OriginalEntityID(); exists {
			s.SetIgnore(stagingdocument.FieldOriginalEntityID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingDocument.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StagingDocumentUpsertOne) Ignore() *StagingDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingDocumentUpsertOne) DoNothing() *StagingDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingDocumentCreate.OnConflict
// documentation for more info.
func (u *StagingDocumentUpsertOne) Update(set func(*StagingDocumentUpsert)) *StagingDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingDocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingDocumentUpsertOne) SetUpdatedAt(v time.Time) *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingDocumentUpsertOne) UpdateUpdatedAt() *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingDocumentUpsertOne) SetValidationStatus(v stagingdocument.ValidationStatus) *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingDocumentUpsertOne) UpdateValidationStatus() *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingDocumentUpsertOne) SetDiagnostics(v []domain.Diagnostic) *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingDocumentUpsertOne) UpdateDiagnostics() *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingDocumentUpsertOne) ClearDiagnostics() *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingDocumentUpsertOne) SetApprovedForCommit(v bool) *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingDocumentUpsertOne) UpdateApprovedForCommit() *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingDocumentUpsertOne) SetCommittedEntityID(v uuid.UUID) *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingDocumentUpsertOne) UpdateCommittedEntityID() *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingDocumentUpsertOne) ClearCommittedEntityID() *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingDocumentUpsertOne) SetPayload(v *domain.DocumentRecord) *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingDocumentUpsertOne) UpdatePayload() *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdatePayload()
	})
}

// SetBlobSha256 sets the "blob_sha256" field.
func (u *StagingDocumentUpsertOne) SetBlobSha256(v string) *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetBlobSha256(v)
	})
}

// UpdateBlobSha256 sets the "blob_sha256" field to the value that was provided on create.
func (u *StagingDocumentUpsertOne) UpdateBlobSha256() *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdateBlobSha256()
	})
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (u *StagingDocumentUpsertOne) ClearBlobSha256() *StagingDocumentUpsertOne {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.ClearBlobSha256()
	})
}

// Exec executes the query.
func (u *StagingDocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingDocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingDocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StagingDocumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StagingDocumentUpsertOne.ID is not supported by MySQL driver. Use StagingDocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StagingDocumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StagingDocumentCreateBulk is the builder for creating many StagingDocument entities in bulk.
type StagingDocumentCreateBulk struct {
	config
	err      error
	builders []*StagingDocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the StagingDocument entities in the database.
func (_c *StagingDocumentCreateBulk) Save(ctx context.Context) ([]*StagingDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagingDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagingDocumentMutation)
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
func (_c *StagingDocumentCreateBulk) SaveX(ctx context.Context) []*StagingDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingDocument.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingDocumentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingDocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *StagingDocumentUpsertBulk {
	_c.conflict = opts
	return &StagingDocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingDocument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingDocumentCreateBulk) OnConflictColumns(columns ...string) *StagingDocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingDocumentUpsertBulk{
		create: _c,
	}
}

// StagingDocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of StagingDocument nodes.
type StagingDocumentUpsertBulk struct {
	create *StagingDocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StagingDocument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingdocument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingDocumentUpsertBulk) UpdateNewValues() *StagingDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stagingdocument.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stagingdocument.FieldCreatedAt)
			}
			if _, exists := b.mutation.ImportPackageID(); exists {
				s.SetIgnore(stagingdocument.FieldImportPackageID)
			}
			if _, exists := b.mutation.OriginalEntityID(); exists {
				s.SetIgnore(stagingdocument.FieldOriginalEntityID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingDocument.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StagingDocumentUpsertBulk) Ignore() *StagingDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingDocumentUpsertBulk) DoNothing() *StagingDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingDocumentCreateBulk.OnConflict
// documentation for more info.
func (u *StagingDocumentUpsertBulk) Update(set func(*StagingDocumentUpsert)) *StagingDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingDocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingDocumentUpsertBulk) SetUpdatedAt(v time.Time) *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingDocumentUpsertBulk) UpdateUpdatedAt() *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingDocumentUpsertBulk) SetValidationStatus(v stagingdocument.ValidationStatus) *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingDocumentUpsertBulk) UpdateValidationStatus() *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingDocumentUpsertBulk) SetDiagnostics(v []domain.Diagnostic) *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingDocumentUpsertBulk) UpdateDiagnostics() *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingDocumentUpsertBulk) ClearDiagnostics() *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingDocumentUpsertBulk) SetApprovedForCommit(v bool) *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingDocumentUpsertBulk) UpdateApprovedForCommit() *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingDocumentUpsertBulk) SetCommittedEntityID(v uuid.UUID) *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingDocumentUpsertBulk) UpdateCommittedEntityID() *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingDocumentUpsertBulk) ClearCommittedEntityID() *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingDocumentUpsertBulk) SetPayload(v *domain.DocumentRecord) *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingDocumentUpsertBulk) UpdatePayload() *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdatePayload()
	})
}

// SetBlobSha256 sets the "blob_sha256" field.
func (u *StagingDocumentUpsertBulk) SetBlobSha256(v string) *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.SetBlobSha256(v)
	})
}

// UpdateBlobSha256 sets the "blob_sha256" field to the value that was provided on create.
func (u *StagingDocumentUpsertBulk) UpdateBlobSha256() *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.UpdateBlobSha256()
	})
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (u *StagingDocumentUpsertBulk) ClearBlobSha256() *StagingDocumentUpsertBulk {
	return u.Update(func(s *StagingDocumentUpsert) {
		s.ClearBlobSha256()
	})
}

// Exec executes the query.
func (u *StagingDocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StagingDocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingDocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingDocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
