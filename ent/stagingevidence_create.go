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
	"uhc-registry.io/registry/ent/stagingevidence"
	"uhc-registry.io/registry/internal/domain"
)

// StagingEvidenceCreate is the builder for creating a StagingEvidence entity.
type StagingEvidenceCreate struct {
	config
	mutation *StagingEvidenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagingEvidenceCreate) SetCreatedAt(v time.Time) *StagingEvidenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagingEvidenceCreate) SetNillableCreatedAt(v *time.Time) *StagingEvidenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StagingEvidenceCreate) SetUpdatedAt(v time.Time) *StagingEvidenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StagingEvidenceCreate) SetNillableUpdatedAt(v *time.Time) *StagingEvidenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetImportPackageID sets the "import_package_id" field.
func (_c *StagingEvidenceCreate) SetImportPackageID(v uuid.UUID) *StagingEvidenceCreate {
	_c.mutation.SetImportPackageID(v)
	return _c
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (_c *StagingEvidenceCreate) SetOriginalEntityID(v uuid.UUID) *StagingEvidenceCreate {
	_c.mutation.SetOriginalEntityID(v)
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *StagingEvidenceCreate) SetValidationStatus(v stagingevidence.ValidationStatus) *StagingEvidenceCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *StagingEvidenceCreate) SetNillableValidationStatus(v *stagingevidence.ValidationStatus) *StagingEvidenceCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetDiagnostics sets the "diagnostics" field.
func (_c *StagingEvidenceCreate) SetDiagnostics(v []domain.Diagnostic) *StagingEvidenceCreate {
	_c.mutation.SetDiagnostics(v)
	return _c
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_c *StagingEvidenceCreate) SetApprovedForCommit(v bool) *StagingEvidenceCreate {
	_c.mutation.SetApprovedForCommit(v)
	return _c
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_c *StagingEvidenceCreate) SetNillableApprovedForCommit(v *bool) *StagingEvidenceCreate {
	if v != nil {
		_c.SetApprovedForCommit(*v)
	}
	return _c
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_c *StagingEvidenceCreate) SetCommittedEntityID(v uuid.UUID) *StagingEvidenceCreate {
	_c.mutation.SetCommittedEntityID(v)
	return _c
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_c *StagingEvidenceCreate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingEvidenceCreate {
	if v != nil {
		_c.SetCommittedEntityID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StagingEvidenceCreate) SetPayload(v *domain.EvidenceRecord) *StagingEvidenceCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetBlobSha256 sets the "blob_sha256" field.
func (_c *StagingEvidenceCreate) SetBlobSha256(v string) *StagingEvidenceCreate {
	_c.mutation.SetBlobSha256(v)
	return _c
}

// SetNillableBlobSha256 sets the "blob_sha256" field if the given value is not nil.
func (_c *StagingEvidenceCreate) SetNillableBlobSha256(v *string) *StagingEvidenceCreate {
	if v != nil {
		_c.SetBlobSha256(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StagingEvidenceCreate) SetID(v uuid.UUID) *StagingEvidenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StagingEvidenceMutation object of the builder.
func (_c *StagingEvidenceCreate) Mutation() *StagingEvidenceMutation {
	return _c.mutation
}

// Save creates the StagingEvidence in the database.
func (_c *StagingEvidenceCreate) Save(ctx context.Context) (*StagingEvidence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagingEvidenceCreate) SaveX(ctx context.Context) *StagingEvidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingEvidenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingEvidenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagingEvidenceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagingevidence.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stagingevidence.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := stagingevidence.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		v := stagingevidence.DefaultApprovedForCommit
		_c.mutation.SetApprovedForCommit(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagingEvidenceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagingEvidence.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StagingEvidence.updated_at"`)}
	}
	if _, ok := _c.mutation.ImportPackageID(); !ok {
		return &ValidationError{Name: "import_package_id", err: errors.New(`ent: missing required field "StagingEvidence.import_package_id"`)}
	}
	if _, ok := _c.mutation.OriginalEntityID(); !ok {
		return &ValidationError{Name: "original_entity_id", err: errors.New(`ent: missing required field "StagingEvidence.original_entity_id"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "StagingEvidence.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := stagingevidence.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingEvidence.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		return &ValidationError{Name: "approved_for_commit", err: errors.New(`ent: missing required field "StagingEvidence.approved_for_commit"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StagingEvidence.payload"`)}
	}
	return nil
}

func (_c *StagingEvidenceCreate) sqlSave(ctx context.Context) (*StagingEvidence, error) {
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

func (_c *StagingEvidenceCreate) createSpec() (*StagingEvidence, *sqlgraph.CreateSpec) {
	var (
		_node = &StagingEvidence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagingevidence.Table, sqlgraph.NewFieldSpec(stagingevidence.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagingevidence.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingevidence.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ImportPackageID(); ok {
		_spec.SetField(stagingevidence.FieldImportPackageID, field.TypeUUID, value)
		_node.ImportPackageID = value
	}
	if value, ok := _c.mutation.OriginalEntityID(); ok {
		_spec.SetField(stagingevidence.FieldOriginalEntityID, field.TypeUUID, value)
		_node.OriginalEntityID = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingevidence.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.Diagnostics(); ok {
		_spec.SetField(stagingevidence.FieldDiagnostics, field.TypeJSON, value)
		_node.Diagnostics = value
	}
	if value, ok := _c.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingevidence.FieldApprovedForCommit, field.TypeBool, value)
		_node.ApprovedForCommit = value
	}
	if value, ok := _c.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingevidence.FieldCommittedEntityID, field.TypeUUID, value)
		_node.CommittedEntityID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(stagingevidence.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.BlobSha256(); ok {
		_spec.SetField(stagingevidence.FieldBlobSha256, field.TypeString, value)
		_node.BlobSha256 = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingEvidence.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingEvidenceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingEvidenceCreate) OnConflict(opts ...sql.ConflictOption) *StagingEvidenceUpsertOne {
	_c.conflict = opts
	return &StagingEvidenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingEvidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingEvidenceCreate) OnConflictColumns(columns ...string) *StagingEvidenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingEvidenceUpsertOne{
		create: _c,
	}
}

type (
	// StagingEvidenceUpsertOne is the builder for "upsert"-ing
	//  one StagingEvidence node.
	StagingEvidenceUpsertOne struct {
		create *StagingEvidenceCreate
	}

	// StagingEvidenceUpsert is the "OnConflict" setter.
	StagingEvidenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingEvidenceUpsert) SetUpdatedAt(v time.Time) *StagingEvidenceUpsert {
	u.Set(stagingevidence.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingEvidenceUpsert) UpdateUpdatedAt() *StagingEvidenceUpsert {
	u.SetExcluded(stagingevidence.FieldUpdatedAt)
	return u
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingEvidenceUpsert) SetValidationStatus(v stagingevidence.ValidationStatus) *StagingEvidenceUpsert {
	u.Set(stagingevidence.FieldValidationStatus, v)
	return u
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingEvidenceUpsert) UpdateValidationStatus() *StagingEvidenceUpsert {
	u.SetExcluded(stagingevidence.FieldValidationStatus)
	return u
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingEvidenceUpsert) SetDiagnostics(v []domain.Diagnostic) *StagingEvidenceUpsert {
	u.Set(stagingevidence.FieldDiagnostics, v)
	return u
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingEvidenceUpsert) UpdateDiagnostics() *StagingEvidenceUpsert {
	u.SetExcluded(stagingevidence.FieldDiagnostics)
	return u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingEvidenceUpsert) ClearDiagnostics() *StagingEvidenceUpsert {
	u.SetNull(stagingevidence.FieldDiagnostics)
	return u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingEvidenceUpsert) SetApprovedForCommit(v bool) *StagingEvidenceUpsert {
	u.Set(stagingevidence.FieldApprovedForCommit, v)
	return u
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingEvidenceUpsert) UpdateApprovedForCommit() *StagingEvidenceUpsert {
	u.SetExcluded(stagingevidence.FieldApprovedForCommit)
	return u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingEvidenceUpsert) SetCommittedEntityID(v uuid.UUID) *StagingEvidenceUpsert {
	u.Set(stagingevidence.FieldCommittedEntityID, v)
	return u
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingEvidenceUpsert) UpdateCommittedEntityID() *StagingEvidenceUpsert {
	u.SetExcluded(stagingevidence.FieldCommittedEntityID)
	return u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingEvidenceUpsert) ClearCommittedEntityID() *StagingEvidenceUpsert {
	u.SetNull(stagingevidence.FieldCommittedEntityID)
	return u
}

// SetPayload sets the "payload" field.
func (u *StagingEvidenceUpsert) SetPayload(v *domain.EvidenceRecord) *StagingEvidenceUpsert {
	u.Set(stagingevidence.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingEvidenceUpsert) UpdatePayload() *StagingEvidenceUpsert {
	u.SetExcluded(stagingevidence.FieldPayload)
	return u
}

// SetBlobSha256 sets the "blob_sha256" field.
func (u *StagingEvidenceUpsert) SetBlobSha256(v string) *StagingEvidenceUpsert {
	u.Set(stagingevidence.FieldBlobSha256, v)
	return u
}

// UpdateBlobSha256 sets the "blob_sha256" field to the value that was provided on create.
func (u *StagingEvidenceUpsert) UpdateBlobSha256() *StagingEvidenceUpsert {
	u.SetExcluded(stagingevidence.FieldBlobSha256)
	return u
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (u *StagingEvidenceUpsert) ClearBlobSha256() *StagingEvidenceUpsert {
	u.SetNull(stagingevidence.FieldBlobSha256)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StagingEvidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingevidence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingEvidenceUpsertOne) UpdateNewValues() *StagingEvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stagingevidence.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stagingevidence.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ImportPackageID(); exists {
			s.SetIgnore(stagingevidence.FieldImportPackageID)
		}
		if _, exists := u.create.mutation.OriginalEntityID(); exists {
			s.SetIgnore(stagingevidence.FieldOriginalEntityID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingEvidence.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StagingEvidenceUpsertOne) Ignore() *StagingEvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingEvidenceUpsertOne) DoNothing() *StagingEvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingEvidenceCreate.OnConflict
// documentation for more info.
func (u *StagingEvidenceUpsertOne) Update(set func(*StagingEvidenceUpsert)) *StagingEvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingEvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingEvidenceUpsertOne) SetUpdatedAt(v time.Time) *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingEvidenceUpsertOne) UpdateUpdatedAt() *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingEvidenceUpsertOne) SetValidationStatus(v stagingevidence.ValidationStatus) *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingEvidenceUpsertOne) UpdateValidationStatus() *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingEvidenceUpsertOne) SetDiagnostics(v []domain.Diagnostic) *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingEvidenceUpsertOne) UpdateDiagnostics() *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingEvidenceUpsertOne) ClearDiagnostics() *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingEvidenceUpsertOne) SetApprovedForCommit(v bool) *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingEvidenceUpsertOne) UpdateApprovedForCommit() *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingEvidenceUpsertOne) SetCommittedEntityID(v uuid.UUID) *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingEvidenceUpsertOne) UpdateCommittedEntityID() *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingEvidenceUpsertOne) ClearCommittedEntityID() *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingEvidenceUpsertOne) SetPayload(v *domain.EvidenceRecord) *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingEvidenceUpsertOne) UpdatePayload() *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdatePayload()
	})
}

// SetBlobSha256 sets the "blob_sha256" field.
func (u *StagingEvidenceUpsertOne) SetBlobSha256(v string) *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetBlobSha256(v)
	})
}

// UpdateBlobSha256 sets the "blob_sha256" field to the value that was provided on create.
func (u *StagingEvidenceUpsertOne) UpdateBlobSha256() *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdateBlobSha256()
	})
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (u *StagingEvidenceUpsertOne) ClearBlobSha256() *StagingEvidenceUpsertOne {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.ClearBlobSha256()
	})
}

// Exec executes the query.
func (u *StagingEvidenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingEvidenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingEvidenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StagingEvidenceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StagingEvidenceUpsertOne.ID is not supported by MySQL driver. Use StagingEvidenceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StagingEvidenceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StagingEvidenceCreateBulk is the builder for creating many StagingEvidence entities in bulk.
type StagingEvidenceCreateBulk struct {
	config
	err      error
	builders []*StagingEvidenceCreate
	conflict []sql.ConflictOption
}

// Save creates the StagingEvidence entities in the database.
func (_c *StagingEvidenceCreateBulk) Save(ctx context.Context) ([]*StagingEvidence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagingEvidence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagingEvidenceMutation)
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
func (_c *StagingEvidenceCreateBulk) SaveX(ctx context.Context) []*StagingEvidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingEvidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingEvidenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingEvidence.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingEvidenceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingEvidenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *StagingEvidenceUpsertBulk {
	_c.conflict = opts
	return &StagingEvidenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingEvidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingEvidenceCreateBulk) OnConflictColumns(columns ...string) *StagingEvidenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingEvidenceUpsertBulk{
		create: _c,
	}
}

// StagingEvidenceUpsertBulk is the builder for "upsert"-ing
// a bulk of StagingEvidence nodes.
type StagingEvidenceUpsertBulk struct {
	create *StagingEvidenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StagingEvidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingevidence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingEvidenceUpsertBulk) UpdateNewValues() *StagingEvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stagingevidence.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stagingevidence.FieldCreatedAt)
			}
			if _, exists := b.mutation.ImportPackageID(); exists {
				s.SetIgnore(stagingevidence.FieldImportPackageID)
			}
			if _, exists := b.mutation.OriginalEntityID(); exists {
				s.SetIgnore(stagingevidence.FieldOriginalEntityID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingEvidence.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StagingEvidenceUpsertBulk) Ignore() *StagingEvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingEvidenceUpsertBulk) DoNothing() *StagingEvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingEvidenceCreateBulk.OnConflict
// documentation for more info.
func (u *StagingEvidenceUpsertBulk) Update(set func(*StagingEvidenceUpsert)) *StagingEvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingEvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingEvidenceUpsertBulk) SetUpdatedAt(v time.Time) *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingEvidenceUpsertBulk) UpdateUpdatedAt() *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingEvidenceUpsertBulk) SetValidationStatus(v stagingevidence.ValidationStatus) *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingEvidenceUpsertBulk) UpdateValidationStatus() *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingEvidenceUpsertBulk) SetDiagnostics(v []domain.Diagnostic) *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingEvidenceUpsertBulk) UpdateDiagnostics() *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingEvidenceUpsertBulk) ClearDiagnostics() *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingEvidenceUpsertBulk) SetApprovedForCommit(v bool) *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingEvidenceUpsertBulk) UpdateApprovedForCommit() *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingEvidenceUpsertBulk) SetCommittedEntityID(v uuid.UUID) *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingEvidenceUpsertBulk) UpdateCommittedEntityID() *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingEvidenceUpsertBulk) ClearCommittedEntityID() *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingEvidenceUpsertBulk) SetPayload(v *domain.EvidenceRecord) *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingEvidenceUpsertBulk) UpdatePayload() *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdatePayload()
	})
}

// SetBlobSha256 sets the "blob_sha256" field.
func (u *StagingEvidenceUpsertBulk) SetBlobSha256(v string) *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.SetBlobSha256(v)
	})
}

// UpdateBlobSha256 sets the "blob_sha256" field to the value that was provided on create.
func (u *StagingEvidenceUpsertBulk) UpdateBlobSha256() *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.UpdateBlobSha256()
	})
}

// ClearBlobSha256 clears the value of the "blob_sha256" field.
func (u *StagingEvidenceUpsertBulk) ClearBlobSha256() *StagingEvidenceUpsertBulk {
	return u.Update(func(s *StagingEvidenceUpsert) {
		s.ClearBlobSha256()
	})
}

// Exec executes the query.
func (u *StagingEvidenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StagingEvidenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingEvidenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingEvidenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
