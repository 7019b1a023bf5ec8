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
	"uhc-registry.io/registry/ent/stagingpropertyunit"
	"uhc-registry.io/registry/internal/domain"
)

// StagingPropertyUnitCreate is the builder for creating a StagingPropertyUnit entity.
type StagingPropertyUnitCreate struct {
	config
	mutation *StagingPropertyUnitMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagingPropertyUnitCreate) SetCreatedAt(v time.Time) *StagingPropertyUnitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagingPropertyUnitCreate) SetNillableCreatedAt(v *time.Time) *StagingPropertyUnitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StagingPropertyUnitCreate) SetUpdatedAt(v time.Time) *StagingPropertyUnitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StagingPropertyUnitCreate) SetNillableUpdatedAt(v *time.Time) *StagingPropertyUnitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetImportPackageID sets the "import_package_id" field.
func (_c *StagingPropertyUnitCreate) SetImportPackageID(v uuid.UUID) *StagingPropertyUnitCreate {
	_c.mutation.SetImportPackageID(v)
	return _c
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (_c *StagingPropertyUnitCreate) SetOriginalEntityID(v uuid.UUID) *StagingPropertyUnitCreate {
	_c.mutation.SetOriginalEntityID(v)
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *StagingPropertyUnitCreate) SetValidationStatus(v stagingpropertyunit.ValidationStatus) *StagingPropertyUnitCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *StagingPropertyUnitCreate) SetNillableValidationStatus(v *stagingpropertyunit.ValidationStatus) *StagingPropertyUnitCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetDiagnostics sets the "diagnostics" field.
func (_c *StagingPropertyUnitCreate) SetDiagnostics(v []domain.Diagnostic) *StagingPropertyUnitCreate {
	_c.mutation.SetDiagnostics(v)
	return _c
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_c *StagingPropertyUnitCreate) SetApprovedForCommit(v bool) *StagingPropertyUnitCreate {
	_c.mutation.SetApprovedForCommit(v)
	return _c
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_c *StagingPropertyUnitCreate) SetNillableApprovedForCommit(v *bool) *StagingPropertyUnitCreate {
	if v != nil {
		_c.SetApprovedForCommit(*v)
	}
	return _c
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_c *StagingPropertyUnitCreate) SetCommittedEntityID(v uuid.UUID) *StagingPropertyUnitCreate {
	_c.mutation.SetCommittedEntityID(v)
	return _c
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_c *StagingPropertyUnitCreate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingPropertyUnitCreate {
	if v != nil {
		_c.SetCommittedEntityID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StagingPropertyUnitCreate) SetPayload(v *domain.PropertyUnitRecord) *StagingPropertyUnitCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetOriginalBuildingID sets the "original_building_id" field.
func (_c *StagingPropertyUnitCreate) SetOriginalBuildingID(v uuid.UUID) *StagingPropertyUnitCreate {
	_c.mutation.SetOriginalBuildingID(v)
	return _c
}

// SetUnitIdentifierNormalized sets the "unit_identifier_normalized" field.
func (_c *StagingPropertyUnitCreate) SetUnitIdentifierNormalized(v string) *StagingPropertyUnitCreate {
	_c.mutation.SetUnitIdentifierNormalized(v)
	return _c
}

// SetNillableUnitIdentifierNormalized sets the "unit_identifier_normalized" field if the given value is not nil.
func (_c *StagingPropertyUnitCreate) SetNillableUnitIdentifierNormalized(v *string) *StagingPropertyUnitCreate {
	if v != nil {
		_c.SetUnitIdentifierNormalized(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StagingPropertyUnitCreate) SetID(v uuid.UUID) *StagingPropertyUnitCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StagingPropertyUnitMutation object of the builder.
func (_c *StagingPropertyUnitCreate) Mutation() *StagingPropertyUnitMutation {
	return _c.mutation
}

// Save creates the StagingPropertyUnit in the database.
func (_c *StagingPropertyUnitCreate) Save(ctx context.Context) (*StagingPropertyUnit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagingPropertyUnitCreate) SaveX(ctx context.Context) *StagingPropertyUnit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingPropertyUnitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingPropertyUnitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagingPropertyUnitCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagingpropertyunit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stagingpropertyunit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := stagingpropertyunit.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		v := stagingpropertyunit.DefaultApprovedForCommit
		_c.mutation.SetApprovedForCommit(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagingPropertyUnitCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagingPropertyUnit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StagingPropertyUnit.updated_at"`)}
	}
	if _, ok := _c.mutation.ImportPackageID(); !ok {
		return &ValidationError{Name: "import_package_id", err: errors.New(`ent: missing required field "StagingPropertyUnit.import_package_id"`)}
	}
	if _, ok := _c.mutation.OriginalEntityID(); !ok {
		return &ValidationError{Name: "original_entity_id", err: errors.New(`ent: missing required field "StagingPropertyUnit.original_entity_id"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "StagingPropertyUnit.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := stagingpropertyunit.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingPropertyUnit.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		return &ValidationError{Name: "approved_for_commit", err: errors.New(`ent: missing required field "StagingPropertyUnit.approved_for_commit"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StagingPropertyUnit.payload"`)}
	}
	if _, ok := _c.mutation.OriginalBuildingID(); !ok {
		return &ValidationError{Name: "original_building_id", err: errors.New(`ent: missing required field "StagingPropertyUnit.original_building_id"`)}
	}
	return nil
}

func (_c *StagingPropertyUnitCreate) sqlSave(ctx context.Context) (*StagingPropertyUnit, error) {
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

func (_c *StagingPropertyUnitCreate) createSpec() (*StagingPropertyUnit, *sqlgraph.CreateSpec) {
	var (
		_node = &StagingPropertyUnit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagingpropertyunit.Table, sqlgraph.NewFieldSpec(stagingpropertyunit.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagingpropertyunit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingpropertyunit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ImportPackageID(); ok {
		_spec.SetField(stagingpropertyunit.FieldImportPackageID, field.TypeUUID, value)
		_node.ImportPackageID = value
	}
	if value, ok := _c.mutation.OriginalEntityID(); ok {
		_spec.SetField(stagingpropertyunit.FieldOriginalEntityID, field.TypeUUID, value)
		_node.OriginalEntityID = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingpropertyunit.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.Diagnostics(); ok {
		_spec.SetField(stagingpropertyunit.FieldDiagnostics, field.TypeJSON, value)
		_node.Diagnostics = value
	}
	if value, ok := _c.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingpropertyunit.FieldApprovedForCommit, field.TypeBool, value)
		_node.ApprovedForCommit = value
	}
	if value, ok := _c.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingpropertyunit.FieldCommittedEntityID, field.TypeUUID, value)
		_node.CommittedEntityID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(stagingpropertyunit.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.OriginalBuildingID(); ok {
		_spec.SetField(stagingpropertyunit.FieldOriginalBuildingID, field.TypeUUID, value)
		_node.OriginalBuildingID = value
	}
	if value, ok := _c.mutation.UnitIdentifierNormalized(); ok {
		_spec.SetField(stagingpropertyunit.FieldUnitIdentifierNormalized, field.TypeString, value)
		_node.UnitIdentifierNormalized = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingPropertyUnit.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingPropertyUnitUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingPropertyUnitCreate) OnConflict(opts ...sql.ConflictOption) *StagingPropertyUnitUpsertOne {
	_c.conflict = opts
	return &StagingPropertyUnitUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingPropertyUnit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingPropertyUnitCreate) OnConflictColumns(columns ...string) *StagingPropertyUnitUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingPropertyUnitUpsertOne{
		create: _c,
	}
}

type (
	// StagingPropertyUnitUpsertOne is the builder for "upsert"-ing
	//  one StagingPropertyUnit node.
	StagingPropertyUnitUpsertOne struct {
		create *StagingPropertyUnitCreate
	}

	// StagingPropertyUnitUpsert is the "OnConflict" setter.
	StagingPropertyUnitUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingPropertyUnitUpsert) SetUpdatedAt(v time.Time) *StagingPropertyUnitUpsert {
	u.Set(stagingpropertyunit.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsert) UpdateUpdatedAt() *StagingPropertyUnitUpsert {
	u.SetExcluded(stagingpropertyunit.FieldUpdatedAt)
	return u
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingPropertyUnitUpsert) SetValidationStatus(v stagingpropertyunit.ValidationStatus) *StagingPropertyUnitUpsert {
	u.Set(stagingpropertyunit.FieldValidationStatus, v)
	return u
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsert) UpdateValidationStatus() *StagingPropertyUnitUpsert {
	u.SetExcluded(stagingpropertyunit.FieldValidationStatus)
	return u
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingPropertyUnitUpsert) SetDiagnostics(v []domain.Diagnostic) *StagingPropertyUnitUpsert {
	u.Set(stagingpropertyunit.FieldDiagnostics, v)
	return u
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsert) UpdateDiagnostics() *StagingPropertyUnitUpsert {
	u.SetExcluded(stagingpropertyunit.FieldDiagnostics)
	return u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingPropertyUnitUpsert) ClearDiagnostics() *StagingPropertyUnitUpsert {
	u.SetNull(stagingpropertyunit.FieldDiagnostics)
	return u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingPropertyUnitUpsert) SetApprovedForCommit(v bool) *StagingPropertyUnitUpsert {
	u.Set(stagingpropertyunit.FieldApprovedForCommit, v)
	return u
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsert) UpdateApprovedForCommit() *StagingPropertyUnitUpsert {
	u.SetExcluded(stagingpropertyunit.FieldApprovedForCommit)
	return u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingPropertyUnitUpsert) SetCommittedEntityID(v uuid.UUID) *StagingPropertyUnitUpsert {
	u.Set(stagingpropertyunit.FieldCommittedEntityID, v)
	return u
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsert) UpdateCommittedEntityID() *StagingPropertyUnitUpsert {
	u.SetExcluded(stagingpropertyunit.FieldCommittedEntityID)
	return u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingPropertyUnitUpsert) ClearCommittedEntityID() *StagingPropertyUnitUpsert {
	u.SetNull(stagingpropertyunit.FieldCommittedEntityID)
	return u
}

// SetPayload sets the "payload" field.
func (u *StagingPropertyUnitUpsert) SetPayload(v *domain.PropertyUnitRecord) *StagingPropertyUnitUpsert {
	u.Set(stagingpropertyunit.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsert) UpdatePayload() *StagingPropertyUnitUpsert {
	u.SetExcluded(stagingpropertyunit.FieldPayload)
	return u
}

// SetUnitIdentifierNormalized sets the "unit_identifier_normalized" field.
func (u *StagingPropertyUnitUpsert) SetUnitIdentifierNormalized(v string) *StagingPropertyUnitUpsert {
	u.Set(stagingpropertyunit.FieldUnitIdentifierNormalized, v)
	return u
}

// UpdateUnitIdentifierNormalized sets the "unit_identifier_normalized" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsert) UpdateUnitIdentifierNormalized() *StagingPropertyUnitUpsert {
	u.SetExcluded(stagingpropertyunit.FieldUnitIdentifierNormalized)
	return u
}

// ClearUnitIdentifierNormalized clears the value of the "unit_identifier_normalized" field.
func (u *StagingPropertyUnitUpsert) ClearUnitIdentifierNormalized() *StagingPropertyUnitUpsert {
	u.SetNull(stagingpropertyunit.FieldUnitIdentifierNormalized)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StagingPropertyUnit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingpropertyunit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingPropertyUnitUpsertOne) UpdateNewValues() *StagingPropertyUnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stagingpropertyunit.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stagingpropertyunit.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ImportPackageID(); exists {
			s.SetIgnore(stagingpropertyunit.FieldImportPackageID)
		}
		if _, exists := u.create.mutation.OriginalEntityID(); exists {
			s.SetIgnore(stagingpropertyunit.FieldOriginalEntityID)
		}
		if _, exists := u.create.mutation.OriginalBuildingID(); exists {
			s.SetIgnore(stagingpropertyunit.FieldOriginalBuildingID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingPropertyUnit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StagingPropertyUnitUpsertOne) Ignore() *StagingPropertyUnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingPropertyUnitUpsertOne) DoNothing() *StagingPropertyUnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingPropertyUnitCreate.OnConflict
// documentation for more info.
func (u *StagingPropertyUnitUpsertOne) Update(set func(*StagingPropertyUnitUpsert)) *StagingPropertyUnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingPropertyUnitUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingPropertyUnitUpsertOne) SetUpdatedAt(v time.Time) *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertOne) UpdateUpdatedAt() *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingPropertyUnitUpsertOne) SetValidationStatus(v stagingpropertyunit.ValidationStatus) *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertOne) UpdateValidationStatus() *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingPropertyUnitUpsertOne) SetDiagnostics(v []domain.Diagnostic) *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertOne) UpdateDiagnostics() *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingPropertyUnitUpsertOne) ClearDiagnostics() *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingPropertyUnitUpsertOne) SetApprovedForCommit(v bool) *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertOne) UpdateApprovedForCommit() *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingPropertyUnitUpsertOne) SetCommittedEntityID(v uuid.UUID) *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertOne) UpdateCommittedEntityID() *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingPropertyUnitUpsertOne) ClearCommittedEntityID() *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingPropertyUnitUpsertOne) SetPayload(v *domain.PropertyUnitRecord) *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertOne) UpdatePayload() *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdatePayload()
	})
}

// SetUnitIdentifierNormalized sets the "unit_identifier_normalized" field.
func (u *StagingPropertyUnitUpsertOne) SetUnitIdentifierNormalized(v string) *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetUnitIdentifierNormalized(v)
	})
}

// UpdateUnitIdentifierNormalized sets the "unit_identifier_normalized" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertOne) UpdateUnitIdentifierNormalized() *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdateUnitIdentifierNormalized()
	})
}

// ClearUnitIdentifierNormalized clears the value of the "unit_identifier_normalized" field.
func (u *StagingPropertyUnitUpsertOne) ClearUnitIdentifierNormalized() *StagingPropertyUnitUpsertOne {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.ClearUnitIdentifierNormalized()
	})
}

// Exec executes the query.
func (u *StagingPropertyUnitUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingPropertyUnitCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingPropertyUnitUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StagingPropertyUnitUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StagingPropertyUnitUpsertOne.ID is not supported by MySQL driver. Use StagingPropertyUnitUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StagingPropertyUnitUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StagingPropertyUnitCreateBulk is the builder for creating many StagingPropertyUnit entities in bulk.
type StagingPropertyUnitCreateBulk struct {
	config
	err      error
	builders []*StagingPropertyUnitCreate
	conflict []sql.ConflictOption
}

// Save creates the StagingPropertyUnit entities in the database.
func (_c *StagingPropertyUnitCreateBulk) Save(ctx context.Context) ([]*StagingPropertyUnit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagingPropertyUnit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagingPropertyUnitMutation)
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
func (_c *StagingPropertyUnitCreateBulk) SaveX(ctx context.Context) []*StagingPropertyUnit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingPropertyUnitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingPropertyUnitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingPropertyUnit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingPropertyUnitUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingPropertyUnitCreateBulk) OnConflict(opts ...sql.ConflictOption) *StagingPropertyUnitUpsertBulk {
	_c.conflict = opts
	return &StagingPropertyUnitUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingPropertyUnit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingPropertyUnitCreateBulk) OnConflictColumns(columns ...string) *StagingPropertyUnitUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingPropertyUnitUpsertBulk{
		create: _c,
	}
}

// StagingPropertyUnitUpsertBulk is the builder for "upsert"-ing
// a bulk of StagingPropertyUnit nodes.
type StagingPropertyUnitUpsertBulk struct {
	create *StagingPropertyUnitCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StagingPropertyUnit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingpropertyunit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingPropertyUnitUpsertBulk) UpdateNewValues() *StagingPropertyUnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stagingpropertyunit.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stagingpropertyunit.FieldCreatedAt)
			}
			if _, exists := b.mutation.ImportPackageID(); exists {
				s.SetIgnore(stagingpropertyunit.FieldImportPackageID)
			}
			if _, exists := b.mutation.OriginalEntityID(); exists {
				s.SetIgnore(stagingpropertyunit.FieldOriginalEntityID)
			}
			if _, exists := b.mutation.OriginalBuildingID(); exists {
				s.SetIgnore(stagingpropertyunit.FieldOriginalBuildingID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingPropertyUnit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StagingPropertyUnitUpsertBulk) Ignore() *StagingPropertyUnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingPropertyUnitUpsertBulk) DoNothing() *StagingPropertyUnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingPropertyUnitCreateBulk.OnConflict
// documentation for more info.
func (u *StagingPropertyUnitUpsertBulk) Update(set func(*StagingPropertyUnitUpsert)) *StagingPropertyUnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingPropertyUnitUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingPropertyUnitUpsertBulk) SetUpdatedAt(v time.Time) *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertBulk) UpdateUpdatedAt() *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingPropertyUnitUpsertBulk) SetValidationStatus(v stagingpropertyunit.ValidationStatus) *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertBulk) UpdateValidationStatus() *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingPropertyUnitUpsertBulk) SetDiagnostics(v []domain.Diagnostic) *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertBulk) UpdateDiagnostics() *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingPropertyUnitUpsertBulk) ClearDiagnostics() *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingPropertyUnitUpsertBulk) SetApprovedForCommit(v bool) *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertBulk) UpdateApprovedForCommit() *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingPropertyUnitUpsertBulk) SetCommittedEntityID(v uuid.UUID) *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertBulk) UpdateCommittedEntityID() *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingPropertyUnitUpsertBulk) ClearCommittedEntityID() *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingPropertyUnitUpsertBulk) SetPayload(v *domain.PropertyUnitRecord) *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertBulk) UpdatePayload() *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdatePayload()
	})
}

// SetUnitIdentifierNormalized sets the "unit_identifier_normalized" field.
func (u *StagingPropertyUnitUpsertBulk) SetUnitIdentifierNormalized(v string) *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.SetUnitIdentifierNormalized(v)
	})
}

// UpdateUnitIdentifierNormalized sets the "unit_identifier_normalized" field to the value that was provided on create.
func (u *StagingPropertyUnitUpsertBulk) UpdateUnitIdentifierNormalized() *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.UpdateUnitIdentifierNormalized()
	})
}

// ClearUnitIdentifierNormalized clears the value of the "unit_identifier_normalized" field.
func (u *StagingPropertyUnitUpsertBulk) ClearUnitIdentifierNormalized() *StagingPropertyUnitUpsertBulk {
	return u.Update(func(s *StagingPropertyUnitUpsert) {
		s.ClearUnitIdentifierNormalized()
	})
}

// Exec executes the query.
func (u *StagingPropertyUnitUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StagingPropertyUnitCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingPropertyUnitCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingPropertyUnitUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
