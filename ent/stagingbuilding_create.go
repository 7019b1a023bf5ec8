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
	"uhc-registry.io/registry/ent/stagingbuilding"
	"uhc-registry.io/registry/internal/domain"
)

// StagingBuildingCreate is the builder for creating a StagingBuilding entity.
type StagingBuildingCreate struct {
	config
	mutation *StagingBuildingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagingBuildingCreate) SetCreatedAt(v time.Time) *StagingBuildingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagingBuildingCreate) SetNillableCreatedAt(v *time.Time) *StagingBuildingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StagingBuildingCreate) SetUpdatedAt(v time.Time) *StagingBuildingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StagingBuildingCreate) SetNillableUpdatedAt(v *time.Time) *StagingBuildingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetImportPackageID sets the "import_package_id" field.
func (_c *StagingBuildingCreate) SetImportPackageID(v uuid.UUID) *StagingBuildingCreate {
	_c.mutation.SetImportPackageID(v)
	return _c
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (_c *StagingBuildingCreate) SetOriginalEntityID(v uuid.UUID) *StagingBuildingCreate {
	_c.mutation.SetOriginalEntityID(v)
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *StagingBuildingCreate) SetValidationStatus(v stagingbuilding.ValidationStatus) *StagingBuildingCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *StagingBuildingCreate) SetNillableValidationStatus(v *stagingbuilding.ValidationStatus) *StagingBuildingCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetDiagnostics sets the "diagnostics" field.
func (_c *StagingBuildingCreate) SetDiagnostics(v []domain.Diagnostic) *StagingBuildingCreate {
	_c.mutation.SetDiagnostics(v)
	return _c
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_c *StagingBuildingCreate) SetApprovedForCommit(v bool) *StagingBuildingCreate {
	_c.mutation.SetApprovedForCommit(v)
	return _c
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_c *StagingBuildingCreate) SetNillableApprovedForCommit(v *bool) *StagingBuildingCreate {
	if v != nil {
		_c.SetApprovedForCommit(*v)
	}
	return _c
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_c *StagingBuildingCreate) SetCommittedEntityID(v uuid.UUID) *StagingBuildingCreate {
	_c.mutation.SetCommittedEntityID(v)
	return _c
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_c *StagingBuildingCreate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingBuildingCreate {
	if v != nil {
		_c.SetCommittedEntityID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StagingBuildingCreate) SetPayload(v *domain.BuildingRecord) *StagingBuildingCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetBuildingCode sets the "building_code" field.
func (_c *StagingBuildingCreate) SetBuildingCode(v string) *StagingBuildingCreate {
	_c.mutation.SetBuildingCode(v)
	return _c
}

// SetNillableBuildingCode sets the "building_code" field if the given value is not nil.
func (_c *StagingBuildingCreate) SetNillableBuildingCode(v *string) *StagingBuildingCreate {
	if v != nil {
		_c.SetBuildingCode(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StagingBuildingCreate) SetID(v uuid.UUID) *StagingBuildingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StagingBuildingMutation object of the builder.
func (_c *StagingBuildingCreate) Mutation() *StagingBuildingMutation {
	return _c.mutation
}

// Save creates the StagingBuilding in the database.
func (_c *StagingBuildingCreate) Save(ctx context.Context) (*StagingBuilding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagingBuildingCreate) SaveX(ctx context.Context) *StagingBuilding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingBuildingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingBuildingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagingBuildingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagingbuilding.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stagingbuilding.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := stagingbuilding.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		v := stagingbuilding.DefaultApprovedForCommit
		_c.mutation.SetApprovedForCommit(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagingBuildingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagingBuilding.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StagingBuilding.updated_at"`)}
	}
	if _, ok := _c.mutation.ImportPackageID(); !ok {
		return &ValidationError{Name: "import_package_id", err: errors.New(`ent: missing required field "StagingBuilding.import_package_id"`)}
	}
	if _, ok := _c.mutation.OriginalEntityID(); !ok {
		return &ValidationError{Name: "original_entity_id", err: errors.New(`ent: missing required field "StagingBuilding.original_entity_id"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "StagingBuilding.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := stagingbuilding.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingBuilding.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		return &ValidationError{Name: "approved_for_commit", err: errors.New(`ent: missing required field "StagingBuilding.approved_for_commit"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StagingBuilding.payload"`)}
	}
	return nil
}

func (_c *StagingBuildingCreate) sqlSave(ctx context.Context) (*StagingBuilding, error) {
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

func (_c *StagingBuildingCreate) createSpec() (*StagingBuilding, *sqlgraph.CreateSpec) {
	var (
		_node = &StagingBuilding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagingbuilding.Table, sqlgraph.NewFieldSpec(stagingbuilding.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagingbuilding.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingbuilding.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ImportPackageID(); ok {
		_spec.SetField(stagingbuilding.FieldImportPackageID, field.TypeUUID, value)
		_node.ImportPackageID = value
	}
	if value, ok := _c.mutation.OriginalEntityID(); ok {
		_spec.SetField(stagingbuilding.FieldOriginalEntityID, field.TypeUUID, value)
		_node.OriginalEntityID = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingbuilding.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.Diagnostics(); ok {
		_spec.SetField(stagingbuilding.FieldDiagnostics, field.TypeJSON, value)
		_node.Diagnostics = value
	}
	if value, ok := _c.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingbuilding.FieldApprovedForCommit, field.TypeBool, value)
		_node.ApprovedForCommit = value
	}
	if value, ok := _c.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingbuilding.FieldCommittedEntityID, field.TypeUUID, value)
		_node.CommittedEntityID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(stagingbuilding.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.BuildingCode(); ok {
		_spec.SetField(stagingbuilding.FieldBuildingCode, field.TypeString, value)
		_node.BuildingCode = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingBuilding.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingBuildingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingBuildingCreate) OnConflict(opts ...sql.ConflictOption) *StagingBuildingUpsertOne {
	_c.conflict = opts
	return &StagingBuildingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingBuilding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingBuildingCreate) OnConflictColumns(columns ...string) *StagingBuildingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingBuildingUpsertOne{
		create: _c,
	}
}

type (
	// StagingBuildingUpsertOne is the builder for "upsert"-ing
	//  one StagingBuilding node.
	StagingBuildingUpsertOne struct {
		create *StagingBuildingCreate
	}

	// StagingBuildingUpsert is the "OnConflict" setter.
	StagingBuildingUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingBuildingUpsert) SetUpdatedAt(v time.Time) *StagingBuildingUpsert {
	u.Set(stagingbuilding.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingBuildingUpsert) UpdateUpdatedAt() *StagingBuildingUpsert {
	u.SetExcluded(stagingbuilding.FieldUpdatedAt)
	return u
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingBuildingUpsert) SetValidationStatus(v stagingbuilding.ValidationStatus) *StagingBuildingUpsert {
	u.Set(stagingbuilding.FieldValidationStatus, v)
	return u
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingBuildingUpsert) UpdateValidationStatus() *StagingBuildingUpsert {
	u.SetExcluded(stagingbuilding.FieldValidationStatus)
	return u
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingBuildingUpsert) SetDiagnostics(v []domain.Diagnostic) *StagingBuildingUpsert {
	u.Set(stagingbuilding.FieldDiagnostics, v)
	return u
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingBuildingUpsert) UpdateDiagnostics() *StagingBuildingUpsert {
	u.SetExcluded(stagingbuilding.FieldDiagnostics)
	return u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingBuildingUpsert) ClearDiagnostics() *StagingBuildingUpsert {
	u.SetNull(stagingbuilding.FieldDiagnostics)
	return u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingBuildingUpsert) SetApprovedForCommit(v bool) *StagingBuildingUpsert {
	u.Set(stagingbuilding.FieldApprovedForCommit, v)
	return u
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingBuildingUpsert) UpdateApprovedForCommit() *StagingBuildingUpsert {
	u.SetExcluded(stagingbuilding.FieldApprovedForCommit)
	return u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingBuildingUpsert) SetCommittedEntityID(v uuid.UUID) *StagingBuildingUpsert {
	u.Set(stagingbuilding.FieldCommittedEntityID, v)
	return u
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingBuildingUpsert) UpdateCommittedEntityID() *StagingBuildingUpsert {
	u.SetExcluded(stagingbuilding.FieldCommittedEntityID)
	return u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingBuildingUpsert) ClearCommittedEntityID() *StagingBuildingUpsert {
	u.SetNull(stagingbuilding.FieldCommittedEntityID)
	return u
}

// SetPayload sets the "payload" field.
func (u *StagingBuildingUpsert) SetPayload(v *domain.BuildingRecord) *StagingBuildingUpsert {
	u.Set(stagingbuilding.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingBuildingUpsert) UpdatePayload() *StagingBuildingUpsert {
	u.SetExcluded(stagingbuilding.FieldPayload)
	return u
}

// SetBuildingCode sets the "building_code" field.
func (u *StagingBuildingUpsert) SetBuildingCode(v string) *StagingBuildingUpsert {
	u.Set(stagingbuilding.FieldBuildingCode, v)
	return u
}

// UpdateBuildingCode sets the "building_code" field to the value that was provided on create.
func (u *StagingBuildingUpsert) UpdateBuildingCode() *StagingBuildingUpsert {
	u.SetExcluded(stagingbuilding.FieldBuildingCode)
	return u
}

// ClearBuildingCode clears the value of the "building_code" field.
func (u *StagingBuildingUpsert) ClearBuildingCode() *StagingBuildingUpsert {
	u.SetNull(stagingbuilding.FieldBuildingCode)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StagingBuilding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingbuilding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingBuildingUpsertOne) UpdateNewValues() *StagingBuildingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stagingbuilding.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stagingbuilding.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ImportPackageID(); exists {
			s.SetIgnore(stagingbuilding.FieldImportPackageID)
		}
		if _, exists := u.create.mutation.OriginalEntityID(); exists {
			s.SetIgnore(stagingbuilding.FieldOriginalEntityID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingBuilding.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StagingBuildingUpsertOne) Ignore() *StagingBuildingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingBuildingUpsertOne) DoNothing() *StagingBuildingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingBuildingCreate.OnConflict
// documentation for more info.
func (u *StagingBuildingUpsertOne) Update(set func(*StagingBuildingUpsert)) *StagingBuildingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingBuildingUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingBuildingUpsertOne) SetUpdatedAt(v time.Time) *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingBuildingUpsertOne) UpdateUpdatedAt() *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingBuildingUpsertOne) SetValidationStatus(v stagingbuilding.ValidationStatus) *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingBuildingUpsertOne) UpdateValidationStatus() *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingBuildingUpsertOne) SetDiagnostics(v []domain.Diagnostic) *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingBuildingUpsertOne) UpdateDiagnostics() *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingBuildingUpsertOne) ClearDiagnostics() *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingBuildingUpsertOne) SetApprovedForCommit(v bool) *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingBuildingUpsertOne) UpdateApprovedForCommit() *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingBuildingUpsertOne) SetCommittedEntityID(v uuid.UUID) *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingBuildingUpsertOne) UpdateCommittedEntityID() *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingBuildingUpsertOne) ClearCommittedEntityID() *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingBuildingUpsertOne) SetPayload(v *domain.BuildingRecord) *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingBuildingUpsertOne) UpdatePayload() *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdatePayload()
	})
}

// SetBuildingCode sets the "building_code" field.
func (u *StagingBuildingUpsertOne) SetBuildingCode(v string) *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetBuildingCode(v)
	})
}

// UpdateBuildingCode sets the "building_code" field to the value that was provided on create.
func (u *StagingBuildingUpsertOne) UpdateBuildingCode() *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdateBuildingCode()
	})
}

// ClearBuildingCode clears the value of the "building_code" field.
func (u *StagingBuildingUpsertOne) ClearBuildingCode() *StagingBuildingUpsertOne {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.ClearBuildingCode()
	})
}

// Exec executes the query.
func (u *StagingBuildingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingBuildingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingBuildingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StagingBuildingUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StagingBuildingUpsertOne.ID is not supported by MySQL driver. Use StagingBuildingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StagingBuildingUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StagingBuildingCreateBulk is the builder for creating many StagingBuilding entities in bulk.
type StagingBuildingCreateBulk struct {
	config
	err      error
	builders []*StagingBuildingCreate
	conflict []sql.ConflictOption
}

// Save creates the StagingBuilding entities in the database.
func (_c *StagingBuildingCreateBulk) Save(ctx context.Context) ([]*StagingBuilding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagingBuilding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagingBuildingMutation)
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
func (_c *StagingBuildingCreateBulk) SaveX(ctx context.Context) []*StagingBuilding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingBuildingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingBuildingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingBuilding.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingBuildingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingBuildingCreateBulk) OnConflict(opts ...sql.ConflictOption) *StagingBuildingUpsertBulk {
	_c.conflict = opts
	return &StagingBuildingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingBuilding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingBuildingCreateBulk) OnConflictColumns(columns ...string) *StagingBuildingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingBuildingUpsertBulk{
		create: _c,
	}
}

// StagingBuildingUpsertBulk is the builder for "upsert"-ing
// a bulk of StagingBuilding nodes.
type StagingBuildingUpsertBulk struct {
	create *StagingBuildingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StagingBuilding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingbuilding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingBuildingUpsertBulk) UpdateNewValues() *StagingBuildingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stagingbuilding.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stagingbuilding.FieldCreatedAt)
			}
			if _, exists := b.mutation.ImportPackageID(); exists {
				s.SetIgnore(stagingbuilding.FieldImportPackageID)
			}
			if _, exists := b.mutation.OriginalEntityID(); exists {
				s.SetIgnore(stagingbuilding.FieldOriginalEntityID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingBuilding.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StagingBuildingUpsertBulk) Ignore() *StagingBuildingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingBuildingUpsertBulk) DoNothing() *StagingBuildingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingBuildingCreateBulk.OnConflict
// documentation for more info.
func (u *StagingBuildingUpsertBulk) Update(set func(*StagingBuildingUpsert)) *StagingBuildingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingBuildingUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingBuildingUpsertBulk) SetUpdatedAt(v time.Time) *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingBuildingUpsertBulk) UpdateUpdatedAt() *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingBuildingUpsertBulk) SetValidationStatus(v stagingbuilding.ValidationStatus) *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingBuildingUpsertBulk) UpdateValidationStatus() *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingBuildingUpsertBulk) SetDiagnostics(v []domain.Diagnostic) *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingBuildingUpsertBulk) UpdateDiagnostics() *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingBuildingUpsertBulk) ClearDiagnostics() *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingBuildingUpsertBulk) SetApprovedForCommit(v bool) *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingBuildingUpsertBulk) UpdateApprovedForCommit() *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingBuildingUpsertBulk) SetCommittedEntityID(v uuid.UUID) *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingBuildingUpsertBulk) UpdateCommittedEntityID() *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingBuildingUpsertBulk) ClearCommittedEntityID() *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingBuildingUpsertBulk) SetPayload(v *domain.BuildingRecord) *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingBuildingUpsertBulk) UpdatePayload() *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdatePayload()
	})
}

// SetBuildingCode sets the "building_code" field.
func (u *StagingBuildingUpsertBulk) SetBuildingCode(v string) *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.SetBuildingCode(v)
	})
}

// UpdateBuildingCode sets the "building_code" field to the value that was provided on create.
func (u *StagingBuildingUpsertBulk) UpdateBuildingCode() *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.UpdateBuildingCode()
	})
}

// ClearBuildingCode clears the value of the "building_code" field.
func (u *StagingBuildingUpsertBulk) ClearBuildingCode() *StagingBuildingUpsertBulk {
	return u.Update(func(s *StagingBuildingUpsert) {
		s.ClearBuildingCode()
	})
}

// Exec executes the query.
func (u *StagingBuildingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StagingBuildingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingBuildingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingBuildingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
