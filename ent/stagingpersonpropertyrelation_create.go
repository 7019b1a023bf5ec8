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
	"uhc-registry.io/registry/ent/stagingpersonpropertyrelation"
	"uhc-registry.io/registry/internal/domain"
)

// StagingPersonPropertyRelationCreate is the builder for creating a StagingPersonPropertyRelation entity.
type StagingPersonPropertyRelationCreate struct {
	config
	mutation *StagingPersonPropertyRelationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagingPersonPropertyRelationCreate) SetCreatedAt(v time.Time) *StagingPersonPropertyRelationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagingPersonPropertyRelationCreate) SetNillableCreatedAt(v *time.Time) *StagingPersonPropertyRelationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StagingPersonPropertyRelationCreate) SetUpdatedAt(v time.Time) *StagingPersonPropertyRelationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StagingPersonPropertyRelationCreate) SetNillableUpdatedAt(v *time.Time) *StagingPersonPropertyRelationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetImportPackageID sets the "import_package_id" field.
func (_c *StagingPersonPropertyRelationCreate) SetImportPackageID(v uuid.UUID) *StagingPersonPropertyRelationCreate {
	_c.mutation.SetImportPackageID(v)
	return _c
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (_c *StagingPersonPropertyRelationCreate) SetOriginalEntityID(v uuid.UUID) *StagingPersonPropertyRelationCreate {
	_c.mutation.SetOriginalEntityID(v)
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *StagingPersonPropertyRelationCreate) SetValidationStatus(v stagingpersonpropertyrelation.ValidationStatus) *StagingPersonPropertyRelationCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *StagingPersonPropertyRelationCreate) SetNillableValidationStatus(v *stagingpersonpropertyrelation.ValidationStatus) *StagingPersonPropertyRelationCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetDiagnostics sets the "diagnostics" field.
func (_c *StagingPersonPropertyRelationCreate) SetDiagnostics(v []domain.Diagnostic) *StagingPersonPropertyRelationCreate {
	_c.mutation.SetDiagnostics(v)
	return _c
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_c *StagingPersonPropertyRelationCreate) SetApprovedForCommit(v bool) *StagingPersonPropertyRelationCreate {
	_c.mutation.SetApprovedForCommit(v)
	return _c
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_c *StagingPersonPropertyRelationCreate) SetNillableApprovedForCommit(v *bool) *StagingPersonPropertyRelationCreate {
	if v != nil {
		_c.SetApprovedForCommit(*v)
	}
	return _c
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_c *StagingPersonPropertyRelationCreate) SetCommittedEntityID(v uuid.UUID) *StagingPersonPropertyRelationCreate {
	_c.mutation.SetCommittedEntityID(v)
	return _c
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_c *StagingPersonPropertyRelationCreate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingPersonPropertyRelationCreate {
	if v != nil {
		_c.SetCommittedEntityID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StagingPersonPropertyRelationCreate) SetPayload(v *domain.PersonPropertyRelationRecord) *StagingPersonPropertyRelationCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StagingPersonPropertyRelationCreate) SetID(v uuid.UUID) *StagingPersonPropertyRelationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StagingPersonPropertyRelationMutation object of the builder.
func (_c *StagingPersonPropertyRelationCreate) Mutation() *StagingPersonPropertyRelationMutation {
	return _c.mutation
}

// Save creates the StagingPersonPropertyRelation in the database.
func (_c *StagingPersonPropertyRelationCreate) Save(ctx context.Context) (*StagingPersonPropertyRelation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagingPersonPropertyRelationCreate) SaveX(ctx context.Context) *StagingPersonPropertyRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingPersonPropertyRelationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingPersonPropertyRelationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagingPersonPropertyRelationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagingpersonpropertyrelation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stagingpersonpropertyrelation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := stagingpersonpropertyrelation.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		v := stagingpersonpropertyrelation.DefaultApprovedForCommit
		_c.mutation.SetApprovedForCommit(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagingPersonPropertyRelationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagingPersonPropertyRelation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StagingPersonPropertyRelation.updated_at"`)}
	}
	if _, ok := _c.mutation.ImportPackageID(); !ok {
		return &ValidationError{Name: "import_package_id", err: errors.New(`ent: missing required field "StagingPersonPropertyRelation.import_package_id"`)}
	}
	if _, ok := _c.mutation.OriginalEntityID(); !ok {
		return &ValidationError{Name: "original_entity_id", err: errors.New(`ent: missing required field "StagingPersonPropertyRelation.original_entity_id"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "StagingPersonPropertyRelation.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := stagingpersonpropertyrelation.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingPersonPropertyRelation.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		return &ValidationError{Name: "approved_for_commit", err: errors.New(`ent: missing required field "StagingPersonPropertyRelation.approved_for_commit"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StagingPersonPropertyRelation.payload"`)}
	}
	return nil
}

func (_c *StagingPersonPropertyRelationCreate) sqlSave(ctx context.Context) (*StagingPersonPropertyRelation, error) {
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

func (_c *StagingPersonPropertyRelationCreate) createSpec() (*StagingPersonPropertyRelation, *sqlgraph.CreateSpec) {
	var (
		_node = &StagingPersonPropertyRelation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagingpersonpropertyrelation.Table, sqlgraph.NewFieldSpec(stagingpersonpropertyrelation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ImportPackageID(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldImportPackageID, field.TypeUUID, value)
		_node.ImportPackageID = value
	}
	if value, ok := _c.mutation.OriginalEntityID(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldOriginalEntityID, field.TypeUUID, value)
		_node.OriginalEntityID = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.Diagnostics(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldDiagnostics, field.TypeJSON, value)
		_node.Diagnostics = value
	}
	if value, ok := _c.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldApprovedForCommit, field.TypeBool, value)
		_node.ApprovedForCommit = value
	}
	if value, ok := _c.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldCommittedEntityID, field.TypeUUID, value)
		_node.CommittedEntityID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(stagingpersonpropertyrelation.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingPersonPropertyRelation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingPersonPropertyRelationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingPersonPropertyRelationCreate) OnConflict(opts ...sql.ConflictOption) *StagingPersonPropertyRelationUpsertOne {
	_c.conflict = opts
	return &StagingPersonPropertyRelationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingPersonPropertyRelation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingPersonPropertyRelationCreate) OnConflictColumns(columns ...string) *StagingPersonPropertyRelationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingPersonPropertyRelationUpsertOne{
		create: _c,
	}
}

type (
	// StagingPersonPropertyRelationUpsertOne is the builder for "upsert"-ing
	//  one StagingPersonPropertyRelation node.
	StagingPersonPropertyRelationUpsertOne struct {
		create *StagingPersonPropertyRelationCreate
	}

	// StagingPersonPropertyRelationUpsert is the "OnConflict" setter.
	StagingPersonPropertyRelationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingPersonPropertyRelationUpsert) SetUpdatedAt(v time.Time) *StagingPersonPropertyRelationUpsert {
	u.Set(stagingpersonpropertyrelation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsert) UpdateUpdatedAt() *StagingPersonPropertyRelationUpsert {
	u.SetExcluded(stagingpersonpropertyrelation.FieldUpdatedAt)
	return u
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingPersonPropertyRelationUpsert) SetValidationStatus(v stagingpersonpropertyrelation.ValidationStatus) *StagingPersonPropertyRelationUpsert {
	u.Set(stagingpersonpropertyrelation.FieldValidationStatus, v)
	return u
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsert) UpdateValidationStatus() *StagingPersonPropertyRelationUpsert {
	u.SetExcluded(stagingpersonpropertyrelation.FieldValidationStatus)
	return u
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingPersonPropertyRelationUpsert) SetDiagnostics(v []domain.Diagnostic) *StagingPersonPropertyRelationUpsert {
	u.Set(stagingpersonpropertyrelation.FieldDiagnostics, v)
	return u
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsert) UpdateDiagnostics() *StagingPersonPropertyRelationUpsert {
	u.SetExcluded(stagingpersonpropertyrelation.FieldDiagnostics)
	return u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingPersonPropertyRelationUpsert) ClearDiagnostics() *StagingPersonPropertyRelationUpsert {
	u.SetNull(stagingpersonpropertyrelation.FieldDiagnostics)
	return u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingPersonPropertyRelationUpsert) SetApprovedForCommit(v bool) *StagingPersonPropertyRelationUpsert {
	u.Set(stagingpersonpropertyrelation.FieldApprovedForCommit, v)
	return u
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsert) UpdateApprovedForCommit() *StagingPersonPropertyRelationUpsert {
	u.SetExcluded(stagingpersonpropertyrelation.FieldApprovedForCommit)
	return u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingPersonPropertyRelationUpsert) SetCommittedEntityID(v uuid.UUID) *StagingPersonPropertyRelationUpsert {
	u.Set(stagingpersonpropertyrelation.FieldCommittedEntityID, v)
	return u
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsert) UpdateCommittedEntityID() *StagingPersonPropertyRelationUpsert {
	u.SetExcluded(stagingpersonpropertyrelation.FieldCommittedEntityID)
	return u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingPersonPropertyRelationUpsert) ClearCommittedEntityID() *StagingPersonPropertyRelationUpsert {
	u.SetNull(stagingpersonpropertyrelation.FieldCommittedEntityID)
	return u
}

// SetPayload sets the "payload" field.
func (u *StagingPersonPropertyRelationUpsert) SetPayload(v *domain.PersonPropertyRelationRecord) *StagingPersonPropertyRelationUpsert {
	u.Set(stagingpersonpropertyrelation.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsert) UpdatePayload() *StagingPersonPropertyRelationUpsert {
	u.SetExcluded(stagingpersonpropertyrelation.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StagingPersonPropertyRelation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingpersonpropertyrelation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingPersonPropertyRelationUpsertOne) UpdateNewValues() *StagingPersonPropertyRelationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stagingpersonpropertyrelation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stagingpersonpropertyrelation.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ImportPackageID(); exists {
			s.SetIgnore(stagingpersonpropertyrelation.FieldImportPackageID)
		}
		if _, exists := u.create.mutation.OriginalEntityID(); exists {
			s.SetIgnore(stagingpersonpropertyrelation.FieldOriginalEntityID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingPersonPropertyRelation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StagingPersonPropertyRelationUpsertOne) Ignore() *StagingPersonPropertyRelationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingPersonPropertyRelationUpsertOne) DoNothing() *StagingPersonPropertyRelationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingPersonPropertyRelationCreate.OnConflict
// documentation for more info.
func (u *StagingPersonPropertyRelationUpsertOne) Update(set func(*StagingPersonPropertyRelationUpsert)) *StagingPersonPropertyRelationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingPersonPropertyRelationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingPersonPropertyRelationUpsertOne) SetUpdatedAt(v time.Time) *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsertOne) UpdateUpdatedAt() *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingPersonPropertyRelationUpsertOne) SetValidationStatus(v stagingpersonpropertyrelation.ValidationStatus) *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsertOne) UpdateValidationStatus() *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingPersonPropertyRelationUpsertOne) SetDiagnostics(v []domain.Diagnostic) *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsertOne) UpdateDiagnostics() *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingPersonPropertyRelationUpsertOne) ClearDiagnostics() *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingPersonPropertyRelationUpsertOne) SetApprovedForCommit(v bool) *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsertOne) UpdateApprovedForCommit() *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingPersonPropertyRelationUpsertOne) SetCommittedEntityID(v uuid.UUID) *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsertOne) UpdateCommittedEntityID() *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingPersonPropertyRelationUpsertOne) ClearCommittedEntityID() *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingPersonPropertyRelationUpsertOne) SetPayload(v *domain.PersonPropertyRelationRecord) *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsertOne) UpdatePayload() *StagingPersonPropertyRelationUpsertOne {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *StagingPersonPropertyRelationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingPersonPropertyRelationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingPersonPropertyRelationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StagingPersonPropertyRelationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StagingPersonPropertyRelationUpsertOne.ID is not supported by MySQL driver. Use StagingPersonPropertyRelationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StagingPersonPropertyRelationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StagingPersonPropertyRelationCreateBulk is the builder for creating many StagingPersonPropertyRelation entities in bulk.
type StagingPersonPropertyRelationCreateBulk struct {
	config
	err      error
	builders []*StagingPersonPropertyRelationCreate
	conflict []sql.ConflictOption
}

// Save creates the StagingPersonPropertyRelation entities in the database.
func (_c *StagingPersonPropertyRelationCreateBulk) Save(ctx context.Context) ([]*StagingPersonPropertyRelation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagingPersonPropertyRelation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagingPersonPropertyRelationMutation)
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
func (_c *StagingPersonPropertyRelationCreateBulk) SaveX(ctx context.Context) []*StagingPersonPropertyRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingPersonPropertyRelationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingPersonPropertyRelationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingPersonPropertyRelation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingPersonPropertyRelationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingPersonPropertyRelationCreateBulk) OnConflict(opts ...sql.ConflictOption) *StagingPersonPropertyRelationUpsertBulk {
	_c.conflict = opts
	return &StagingPersonPropertyRelationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingPersonPropertyRelation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingPersonPropertyRelationCreateBulk) OnConflictColumns(columns ...string) *StagingPersonPropertyRelationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingPersonPropertyRelationUpsertBulk{
		create: _c,
	}
}

// StagingPersonPropertyRelationUpsertBulk is the builder for "upsert"-ing
// a bulk of StagingPersonPropertyRelation nodes.
type StagingPersonPropertyRelationUpsertBulk struct {
	create *StagingPersonPropertyRelationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StagingPersonPropertyRelation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingpersonpropertyrelation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingPersonPropertyRelationUpsertBulk) UpdateNewValues() *StagingPersonPropertyRelationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stagingpersonpropertyrelation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stagingpersonpropertyrelation.FieldCreatedAt)
			}
			if _, exists := b.mutation.ImportPackageID(); exists {
				s.SetIgnore(stagingpersonpropertyrelation.FieldImportPackageID)
			}
			if _, exists := b.mutation.OriginalEntityID(); exists {
				s.SetIgnore(stagingpersonpropertyrelation.FieldOriginalEntityID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingPersonPropertyRelation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StagingPersonPropertyRelationUpsertBulk) Ignore() *StagingPersonPropertyRelationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingPersonPropertyRelationUpsertBulk) DoNothing() *StagingPersonPropertyRelationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingPersonPropertyRelationCreateBulk.OnConflict
// documentation for more info.
func (u *StagingPersonPropertyRelationUpsertBulk) Update(set func(*StagingPersonPropertyRelationUpsert)) *StagingPersonPropertyRelationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingPersonPropertyRelationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingPersonPropertyRelationUpsertBulk) SetUpdatedAt(v time.Time) *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsertBulk) UpdateUpdatedAt() *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingPersonPropertyRelationUpsertBulk) SetValidationStatus(v stagingpersonpropertyrelation.ValidationStatus) *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsertBulk) UpdateValidationStatus() *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingPersonPropertyRelationUpsertBulk) SetDiagnostics(v []domain.Diagnostic) *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsertBulk) UpdateDiagnostics() *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingPersonPropertyRelationUpsertBulk) ClearDiagnostics() *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingPersonPropertyRelationUpsertBulk) SetApprovedForCommit(v bool) *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsertBulk) UpdateApprovedForCommit() *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingPersonPropertyRelationUpsertBulk) SetCommittedEntityID(v uuid.UUID) *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsertBulk) UpdateCommittedEntityID() *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingPersonPropertyRelationUpsertBulk) ClearCommittedEntityID() *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingPersonPropertyRelationUpsertBulk) SetPayload(v *domain.PersonPropertyRelationRecord) *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingPersonPropertyRelationUpsertBulk) UpdatePayload() *StagingPersonPropertyRelationUpsertBulk {
	return u.Update(func(s *StagingPersonPropertyRelationUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *StagingPersonPropertyRelationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StagingPersonPropertyRelationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingPersonPropertyRelationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingPersonPropertyRelationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
