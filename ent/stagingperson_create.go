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
	"uhc-registry.io/registry/ent/stagingperson"
	"uhc-registry.io/registry/internal/domain"
)

// StagingPersonCreate is the builder for creating a StagingPerson entity.
type StagingPersonCreate struct {
	config
	mutation *StagingPersonMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagingPersonCreate) SetCreatedAt(v time.Time) *StagingPersonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagingPersonCreate) SetNillableCreatedAt(v *time.Time) *StagingPersonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StagingPersonCreate) SetUpdatedAt(v time.Time) *StagingPersonCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StagingPersonCreate) SetNillableUpdatedAt(v *time.Time) *StagingPersonCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetImportPackageID sets the "import_package_id" field.
func (_c *StagingPersonCreate) SetImportPackageID(v uuid.UUID) *StagingPersonCreate {
	_c.mutation.SetImportPackageID(v)
	return _c
}

// SetOriginalEntityID sets the "original_entity_id" field.
func (_c *StagingPersonCreate) SetOriginalEntityID(v uuid.UUID) *StagingPersonCreate {
	_c.mutation.SetOriginalEntityID(v)
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *StagingPersonCreate) SetValidationStatus(v stagingperson.ValidationStatus) *StagingPersonCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *StagingPersonCreate) SetNillableValidationStatus(v *stagingperson.ValidationStatus) *StagingPersonCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetDiagnostics sets the "diagnostics" field.
func (_c *StagingPersonCreate) SetDiagnostics(v []domain.Diagnostic) *StagingPersonCreate {
	_c.mutation.SetDiagnostics(v)
	return _c
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (_c *StagingPersonCreate) SetApprovedForCommit(v bool) *StagingPersonCreate {
	_c.mutation.SetApprovedForCommit(v)
	return _c
}

// SetNillableApprovedForCommit sets the "approved_for_commit" field if the given value is not nil.
func (_c *StagingPersonCreate) SetNillableApprovedForCommit(v *bool) *StagingPersonCreate {
	if v != nil {
		_c.SetApprovedForCommit(*v)
	}
	return _c
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (_c *StagingPersonCreate) SetCommittedEntityID(v uuid.UUID) *StagingPersonCreate {
	_c.mutation.SetCommittedEntityID(v)
	return _c
}

// SetNillableCommittedEntityID sets the "committed_entity_id" field if the given value is not nil.
func (_c *StagingPersonCreate) SetNillableCommittedEntityID(v *uuid.UUID) *StagingPersonCreate {
	if v != nil {
		_c.SetCommittedEntityID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StagingPersonCreate) SetPayload(v *domain.PersonRecord) *StagingPersonCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (_c *StagingPersonCreate) SetFirstNameNormalized(v string) *StagingPersonCreate {
	_c.mutation.SetFirstNameNormalized(v)
	return _c
}

// SetNillableFirstNameNormalized sets the "first_name_normalized" field if the given value is not nil.
func (_c *StagingPersonCreate) SetNillableFirstNameNormalized(v *string) *StagingPersonCreate {
	if v != nil {
		_c.SetFirstNameNormalized(*v)
	}
	return _c
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (_c *StagingPersonCreate) SetFatherNameNormalized(v string) *StagingPersonCreate {
	_c.mutation.SetFatherNameNormalized(v)
	return _c
}

// SetNillableFatherNameNormalized sets the "father_name_normalized" field if the given value is not nil.
func (_c *StagingPersonCreate) SetNillableFatherNameNormalized(v *string) *StagingPersonCreate {
	if v != nil {
		_c.SetFatherNameNormalized(*v)
	}
	return _c
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (_c *StagingPersonCreate) SetFamilyNameNormalized(v string) *StagingPersonCreate {
	_c.mutation.SetFamilyNameNormalized(v)
	return _c
}

// SetNillableFamilyNameNormalized sets the "family_name_normalized" field if the given value is not nil.
func (_c *StagingPersonCreate) SetNillableFamilyNameNormalized(v *string) *StagingPersonCreate {
	if v != nil {
		_c.SetFamilyNameNormalized(*v)
	}
	return _c
}

// SetNationalID sets the "national_id" field.
func (_c *StagingPersonCreate) SetNationalID(v string) *StagingPersonCreate {
	_c.mutation.SetNationalID(v)
	return _c
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_c *StagingPersonCreate) SetNillableNationalID(v *string) *StagingPersonCreate {
	if v != nil {
		_c.SetNationalID(*v)
	}
	return _c
}

// SetYearOfBirth sets the "year_of_birth" field.
func (_c *StagingPersonCreate) SetYearOfBirth(v int) *StagingPersonCreate {
	_c.mutation.SetYearOfBirth(v)
	return _c
}

// SetNillableYearOfBirth sets the "year_of_birth" field if the given value is not nil.
func (_c *StagingPersonCreate) SetNillableYearOfBirth(v *int) *StagingPersonCreate {
	if v != nil {
		_c.SetYearOfBirth(*v)
	}
	return _c
}

// SetGenderCode sets the "gender_code" field.
func (_c *StagingPersonCreate) SetGenderCode(v string) *StagingPersonCreate {
	_c.mutation.SetGenderCode(v)
	return _c
}

// SetNillableGenderCode sets the "gender_code" field if the given value is not nil.
func (_c *StagingPersonCreate) SetNillableGenderCode(v *string) *StagingPersonCreate {
	if v != nil {
		_c.SetGenderCode(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StagingPersonCreate) SetID(v uuid.UUID) *StagingPersonCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StagingPersonMutation object of the builder.
func (_c *StagingPersonCreate) Mutation() *StagingPersonMutation {
	return _c.mutation
}

// Save creates the StagingPerson in the database.
func (_c *StagingPersonCreate) Save(ctx context.Context) (*StagingPerson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagingPersonCreate) SaveX(ctx context.Context) *StagingPerson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingPersonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingPersonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagingPersonCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagingperson.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stagingperson.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := stagingperson.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		v := stagingperson.DefaultApprovedForCommit
		_c.mutation.SetApprovedForCommit(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagingPersonCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagingPerson.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StagingPerson.updated_at"`)}
	}
	if _, ok := _c.mutation.ImportPackageID(); !ok {
		return &ValidationError{Name: "import_package_id", err: errors.New(`ent: missing required field "StagingPerson.import_package_id"`)}
	}
	if _, ok := _c.mutation.OriginalEntityID(); !ok {
		return &ValidationError{Name: "original_entity_id", err: errors.New(`ent: missing required field "StagingPerson.original_entity_id"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "StagingPerson.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := stagingperson.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "StagingPerson.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovedForCommit(); !ok {
		return &ValidationError{Name: "approved_for_commit", err: errors.New(`ent: missing required field "StagingPerson.approved_for_commit"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StagingPerson.payload"`)}
	}
	return nil
}

func (_c *StagingPersonCreate) sqlSave(ctx context.Context) (*StagingPerson, error) {
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

func (_c *StagingPersonCreate) createSpec() (*StagingPerson, *sqlgraph.CreateSpec) {
	var (
		_node = &StagingPerson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagingperson.Table, sqlgraph.NewFieldSpec(stagingperson.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagingperson.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagingperson.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ImportPackageID(); ok {
		_spec.SetField(stagingperson.FieldImportPackageID, field.TypeUUID, value)
		_node.ImportPackageID = value
	}
	if value, ok := _c.mutation.OriginalEntityID(); ok {
		_spec.SetField(stagingperson.FieldOriginalEntityID, field.TypeUUID, value)
		_node.OriginalEntityID = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(stagingperson.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.Diagnostics(); ok {
		_spec.SetField(stagingperson.FieldDiagnostics, field.TypeJSON, value)
		_node.Diagnostics = value
	}
	if value, ok := _c.mutation.ApprovedForCommit(); ok {
		_spec.SetField(stagingperson.FieldApprovedForCommit, field.TypeBool, value)
		_node.ApprovedForCommit = value
	}
	if value, ok := _c.mutation.CommittedEntityID(); ok {
		_spec.SetField(stagingperson.FieldCommittedEntityID, field.TypeUUID, value)
		_node.CommittedEntityID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(stagingperson.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.FirstNameNormalized(); ok {
		_spec.SetField(stagingperson.FieldFirstNameNormalized, field.TypeString, value)
		_node.FirstNameNormalized = value
	}
	if value, ok := _c.mutation.FatherNameNormalized(); ok {
		_spec.SetField(stagingperson.FieldFatherNameNormalized, field.TypeString, value)
		_node.FatherNameNormalized = value
	}
	if value, ok := _c.mutation.FamilyNameNormalized(); ok {
		_spec.SetField(stagingperson.FieldFamilyNameNormalized, field.TypeString, value)
		_node.FamilyNameNormalized = value
	}
	if value, ok := _c.mutation.NationalID(); ok {
		_spec.SetField(stagingperson.FieldNationalID, field.TypeString, value)
		_node.NationalID = value
	}
	if value, ok := _c.mutation.YearOfBirth(); ok {
		_spec.SetField(stagingperson.FieldYearOfBirth, field.TypeInt, value)
		_node.YearOfBirth = value
	}
	if value, ok := _c.mutation.GenderCode(); ok {
		_spec.SetField(stagingperson.FieldGenderCode, field.TypeString, value)
		_node.GenderCode = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingPerson.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingPersonUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingPersonCreate) OnConflict(opts ...sql.ConflictOption) *StagingPersonUpsertOne {
	_c.conflict = opts
	return &StagingPersonUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingPerson.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingPersonCreate) OnConflictColumns(columns ...string) *StagingPersonUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingPersonUpsertOne{
		create: _c,
	}
}

type (
	// StagingPersonUpsertOne is the builder for "upsert"-ing
	//  one StagingPerson node.
	StagingPersonUpsertOne struct {
		create *StagingPersonCreate
	}

	// StagingPersonUpsert is the "OnConflict" setter.
	StagingPersonUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingPersonUpsert) SetUpdatedAt(v time.Time) *StagingPersonUpsert {
	u.Set(stagingperson.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingPersonUpsert) UpdateUpdatedAt() *StagingPersonUpsert {
	u.SetExcluded(stagingperson.FieldUpdatedAt)
	return u
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingPersonUpsert) SetValidationStatus(v stagingperson.ValidationStatus) *StagingPersonUpsert {
	u.Set(stagingperson.FieldValidationStatus, v)
	return u
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingPersonUpsert) UpdateValidationStatus() *StagingPersonUpsert {
	u.SetExcluded(stagingperson.FieldValidationStatus)
	return u
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingPersonUpsert) SetDiagnostics(v []domain.Diagnostic) *StagingPersonUpsert {
	u.Set(stagingperson.FieldDiagnostics, v)
	return u
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingPersonUpsert) UpdateDiagnostics() *StagingPersonUpsert {
	u.SetExcluded(stagingperson.FieldDiagnostics)
	return u
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingPersonUpsert) ClearDiagnostics() *StagingPersonUpsert {
	u.SetNull(stagingperson.FieldDiagnostics)
	return u
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingPersonUpsert) SetApprovedForCommit(v bool) *StagingPersonUpsert {
	u.Set(stagingperson.FieldApprovedForCommit, v)
	return u
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingPersonUpsert) UpdateApprovedForCommit() *StagingPersonUpsert {
	u.SetExcluded(stagingperson.FieldApprovedForCommit)
	return u
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingPersonUpsert) SetCommittedEntityID(v uuid.UUID) *StagingPersonUpsert {
	u.Set(stagingperson.FieldCommittedEntityID, v)
	return u
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingPersonUpsert) UpdateCommittedEntityID() *StagingPersonUpsert {
	u.SetExcluded(stagingperson.FieldCommittedEntityID)
	return u
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingPersonUpsert) ClearCommittedEntityID() *StagingPersonUpsert {
	u.SetNull(stagingperson.FieldCommittedEntityID)
	return u
}

// SetPayload sets the "payload" field.
func (u *StagingPersonUpsert) SetPayload(v *domain.PersonRecord) *StagingPersonUpsert {
	u.Set(stagingperson.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingPersonUpsert) UpdatePayload() *StagingPersonUpsert {
	u.SetExcluded(stagingperson.FieldPayload)
	return u
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (u *StagingPersonUpsert) SetFirstNameNormalized(v string) *StagingPersonUpsert {
	u.Set(stagingperson.FieldFirstNameNormalized, v)
	return u
}

// UpdateFirstNameNormalized sets the "first_name_normalized" field to the value that was provided on create.
func (u *StagingPersonUpsert) UpdateFirstNameNormalized() *StagingPersonUpsert {
	u.SetExcluded(stagingperson.FieldFirstNameNormalized)
	return u
}

// ClearFirstNameNormalized clears the value of the "first_name_normalized" field.
func (u *StagingPersonUpsert) ClearFirstNameNormalized() *StagingPersonUpsert {
	u.SetNull(stagingperson.FieldFirstNameNormalized)
	return u
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (u *StagingPersonUpsert) SetFatherNameNormalized(v string) *StagingPersonUpsert {
	u.Set(stagingperson.FieldFatherNameNormalized, v)
	return u
}

// UpdateFatherNameNormalized sets the "father_name_normalized" field to the value that was provided on create.
func (u *StagingPersonUpsert) UpdateFatherNameNormalized() *StagingPersonUpsert {
	u.SetExcluded(stagingperson.FieldFatherNameNormalized)
	return u
}

// ClearFatherNameNormalized clears the value of the "father_name_normalized" field.
func (u *StagingPersonUpsert) ClearFatherNameNormalized() *StagingPersonUpsert {
	u.SetNull(stagingperson.FieldFatherNameNormalized)
	return u
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (u *StagingPersonUpsert) SetFamilyNameNormalized(v string) *StagingPersonUpsert {
	u.Set(stagingperson.FieldFamilyNameNormalized, v)
	return u
}

// UpdateFamilyNameNormalized sets the "family_name_normalized" field to the value that was provided on create.
func (u *StagingPersonUpsert) UpdateFamilyNameNormalized() *StagingPersonUpsert {
	u.SetExcluded(stagingperson.FieldFamilyNameNormalized)
	return u
}

// ClearFamilyNameNormalized clears the value of the "family_name_normalized" field.
func (u *StagingPersonUpsert) ClearFamilyNameNormalized() *StagingPersonUpsert {
	u.SetNull(stagingperson.FieldFamilyNameNormalized)
	return u
}

// SetNationalID sets the "national_id" field.
func (u *StagingPersonUpsert) SetNationalID(v string) *StagingPersonUpsert {
	u.Set(stagingperson.FieldNationalID, v)
	return u
}

// UpdateNationalID sets the "national_id" field to the value that was provided on create.
func (u *StagingPersonUpsert) UpdateNationalID() *StagingPersonUpsert {
	u.SetExcluded(stagingperson.FieldNationalID)
	return u
}

// ClearNationalID clears the value of the "national_id" field.
func (u *StagingPersonUpsert) ClearNationalID() *StagingPersonUpsert {
	u.SetNull(stagingperson.FieldNationalID)
	return u
}

// SetYearOfBirth sets the "year_of_birth" field.
func (u *StagingPersonUpsert) SetYearOfBirth(v int) *StagingPersonUpsert {
	u.Set(stagingperson.FieldYearOfBirth, v)
	return u
}

// UpdateYearOfBirth sets the "year_of_birth" field to the value that was provided on create.
func (u *StagingPersonUpsert) UpdateYearOfBirth() *StagingPersonUpsert {
	u.SetExcluded(stagingperson.FieldYearOfBirth)
	return u
}

// AddYearOfBirth adds v to the "year_of_birth" field.
func (u *StagingPersonUpsert) AddYearOfBirth(v int) *StagingPersonUpsert {
	u.Add(stagingperson.FieldYearOfBirth, v)
	return u
}

// ClearYearOfBirth clears the value of the "year_of_birth" field.
func (u *StagingPersonUpsert) ClearYearOfBirth() *StagingPersonUpsert {
	u.SetNull(stagingperson.FieldYearOfBirth)
	return u
}

// SetGenderCode sets the "gender_code" field.
func (u *StagingPersonUpsert) SetGenderCode(v string) *StagingPersonUpsert {
	u.Set(stagingperson.FieldGenderCode, v)
	return u
}

// UpdateGenderCode sets the "gender_code" field to the value that was provided on create.
func (u *StagingPersonUpsert) UpdateGenderCode() *StagingPersonUpsert {
	u.SetExcluded(stagingperson.FieldGenderCode)
	return u
}

// ClearGenderCode clears the value of the "gender_code" field.
func (u *StagingPersonUpsert) ClearGenderCode() *StagingPersonUpsert {
	u.SetNull(stagingperson.FieldGenderCode)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StagingPerson.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingperson.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingPersonUpsertOne) UpdateNewValues() *StagingPersonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stagingperson.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stagingperson.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ImportPackageID(); exists {
			s.SetIgnore(stagingperson.FieldImportPackageID)
		}
		if _, exists := u.create.mutation.OriginalEntityID(); exists {
			s.SetIgnore(stagingperson.FieldOriginalEntityID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingPerson.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StagingPersonUpsertOne) Ignore() *StagingPersonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingPersonUpsertOne) DoNothing() *StagingPersonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingPersonCreate.OnConflict
// documentation for more info.
func (u *StagingPersonUpsertOne) Update(set func(*StagingPersonUpsert)) *StagingPersonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingPersonUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingPersonUpsertOne) SetUpdatedAt(v time.Time) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingPersonUpsertOne) UpdateUpdatedAt() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingPersonUpsertOne) SetValidationStatus(v stagingperson.ValidationStatus) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingPersonUpsertOne) UpdateValidationStatus() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingPersonUpsertOne) SetDiagnostics(v []domain.Diagnostic) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingPersonUpsertOne) UpdateDiagnostics() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingPersonUpsertOne) ClearDiagnostics() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingPersonUpsertOne) SetApprovedForCommit(v bool) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingPersonUpsertOne) UpdateApprovedForCommit() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingPersonUpsertOne) SetCommittedEntityID(v uuid.UUID) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingPersonUpsertOne) UpdateCommittedEntityID() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingPersonUpsertOne) ClearCommittedEntityID() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingPersonUpsertOne) SetPayload(v *domain.PersonRecord) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingPersonUpsertOne) UpdatePayload() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdatePayload()
	})
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (u *StagingPersonUpsertOne) SetFirstNameNormalized(v string) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetFirstNameNormalized(v)
	})
}

// UpdateFirstNameNormalized sets the "first_name_normalized" field to the value that was provided on create.
func (u *StagingPersonUpsertOne) UpdateFirstNameNormalized() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateFirstNameNormalized()
	})
}

// ClearFirstNameNormalized clears the value of the "first_name_normalized" field.
func (u *StagingPersonUpsertOne) ClearFirstNameNormalized() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearFirstNameNormalized()
	})
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (u *StagingPersonUpsertOne) SetFatherNameNormalized(v string) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetFatherNameNormalized(v)
	})
}

// UpdateFatherNameNormalized sets the "father_name_normalized" field to the value that was provided on create.
func (u *StagingPersonUpsertOne) UpdateFatherNameNormalized() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateFatherNameNormalized()
	})
}

// ClearFatherNameNormalized clears the value of the "father_name_normalized" field.
func (u *StagingPersonUpsertOne) ClearFatherNameNormalized() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearFatherNameNormalized()
	})
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (u *StagingPersonUpsertOne) SetFamilyNameNormalized(v string) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetFamilyNameNormalized(v)
	})
}

// UpdateFamilyNameNormalized sets the "family_name_normalized" field to the value that was provided on create.
func (u *StagingPersonUpsertOne) UpdateFamilyNameNormalized() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateFamilyNameNormalized()
	})
}

// ClearFamilyNameNormalized clears the value of the "family_name_normalized" field.
func (u *StagingPersonUpsertOne) ClearFamilyNameNormalized() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearFamilyNameNormalized()
	})
}

// SetNationalID sets the "national_id" field.
func (u *StagingPersonUpsertOne) SetNationalID(v string) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetNationalID(v)
	})
}

// UpdateNationalID sets the "national_id" field to the value that was provided on create.
func (u *StagingPersonUpsertOne) UpdateNationalID() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateNationalID()
	})
}

// ClearNationalID clears the value of the "national_id" field.
func (u *StagingPersonUpsertOne) ClearNationalID() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearNationalID()
	})
}

// SetYearOfBirth sets the "year_of_birth" field.
func (u *StagingPersonUpsertOne) SetYearOfBirth(v int) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetYearOfBirth(v)
	})
}

// AddYearOfBirth adds v to the "year_of_birth" field.
func (u *StagingPersonUpsertOne) AddYearOfBirth(v int) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.AddYearOfBirth(v)
	})
}

// UpdateYearOfBirth sets the "year_of_birth" field to the value that was provided on create.
func (u *StagingPersonUpsertOne) UpdateYearOfBirth() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateYearOfBirth()
	})
}

// ClearYearOfBirth clears the value of the "year_of_birth" field.
func (u *StagingPersonUpsertOne) ClearYearOfBirth() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearYearOfBirth()
	})
}

// SetGenderCode sets the "gender_code" field.
func (u *StagingPersonUpsertOne) SetGenderCode(v string) *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetGenderCode(v)
	})
}

// UpdateGenderCode sets the "gender_code" field to the value that was provided on create.
func (u *StagingPersonUpsertOne) UpdateGenderCode() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateGenderCode()
	})
}

// ClearGenderCode clears the value of the "gender_code" field.
func (u *StagingPersonUpsertOne) ClearGenderCode() *StagingPersonUpsertOne {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearGenderCode()
	})
}

// Exec executes the query.
func (u *StagingPersonUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingPersonCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingPersonUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StagingPersonUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StagingPersonUpsertOne.ID is not supported by MySQL driver. Use StagingPersonUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StagingPersonUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StagingPersonCreateBulk is the builder for creating many StagingPerson entities in bulk.
type StagingPersonCreateBulk struct {
	config
	err      error
	builders []*StagingPersonCreate
	conflict []sql.ConflictOption
}

// Save creates the StagingPerson entities in the database.
func (_c *StagingPersonCreateBulk) Save(ctx context.Context) ([]*StagingPerson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagingPerson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagingPersonMutation)
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
func (_c *StagingPersonCreateBulk) SaveX(ctx context.Context) []*StagingPerson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagingPersonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagingPersonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StagingPerson.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StagingPersonUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StagingPersonCreateBulk) OnConflict(opts ...sql.ConflictOption) *StagingPersonUpsertBulk {
	_c.conflict = opts
	return &StagingPersonUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StagingPerson.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StagingPersonCreateBulk) OnConflictColumns(columns ...string) *StagingPersonUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StagingPersonUpsertBulk{
		create: _c,
	}
}

// StagingPersonUpsertBulk is the builder for "upsert"-ing
// a bulk of StagingPerson nodes.
type StagingPersonUpsertBulk struct {
	create *StagingPersonCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StagingPerson.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagingperson.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StagingPersonUpsertBulk) UpdateNewValues() *StagingPersonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stagingperson.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stagingperson.FieldCreatedAt)
			}
			if _, exists := b.mutation.ImportPackageID(); exists {
				s.SetIgnore(stagingperson.FieldImportPackageID)
			}
			if _, exists := b.mutation.OriginalEntityID(); exists {
				s.SetIgnore(stagingperson.FieldOriginalEntityID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StagingPerson.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StagingPersonUpsertBulk) Ignore() *StagingPersonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StagingPersonUpsertBulk) DoNothing() *StagingPersonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StagingPersonCreateBulk.OnConflict
// documentation for more info.
func (u *StagingPersonUpsertBulk) Update(set func(*StagingPersonUpsert)) *StagingPersonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StagingPersonUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StagingPersonUpsertBulk) SetUpdatedAt(v time.Time) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StagingPersonUpsertBulk) UpdateUpdatedAt() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *StagingPersonUpsertBulk) SetValidationStatus(v stagingperson.ValidationStatus) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *StagingPersonUpsertBulk) UpdateValidationStatus() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetDiagnostics sets the "diagnostics" field.
func (u *StagingPersonUpsertBulk) SetDiagnostics(v []domain.Diagnostic) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetDiagnostics(v)
	})
}

// UpdateDiagnostics sets the "diagnostics" field to the value that was provided on create.
func (u *StagingPersonUpsertBulk) UpdateDiagnostics() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateDiagnostics()
	})
}

// ClearDiagnostics clears the value of the "diagnostics" field.
func (u *StagingPersonUpsertBulk) ClearDiagnostics() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearDiagnostics()
	})
}

// SetApprovedForCommit sets the "approved_for_commit" field.
func (u *StagingPersonUpsertBulk) SetApprovedForCommit(v bool) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetApprovedForCommit(v)
	})
}

// UpdateApprovedForCommit sets the "approved_for_commit" field to the value that was provided on create.
func (u *StagingPersonUpsertBulk) UpdateApprovedForCommit() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateApprovedForCommit()
	})
}

// SetCommittedEntityID sets the "committed_entity_id" field.
func (u *StagingPersonUpsertBulk) SetCommittedEntityID(v uuid.UUID) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetCommittedEntityID(v)
	})
}

// UpdateCommittedEntityID sets the "committed_entity_id" field to the value that was provided on create.
func (u *StagingPersonUpsertBulk) UpdateCommittedEntityID() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateCommittedEntityID()
	})
}

// ClearCommittedEntityID clears the value of the "committed_entity_id" field.
func (u *StagingPersonUpsertBulk) ClearCommittedEntityID() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearCommittedEntityID()
	})
}

// SetPayload sets the "payload" field.
func (u *StagingPersonUpsertBulk) SetPayload(v *domain.PersonRecord) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StagingPersonUpsertBulk) UpdatePayload() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdatePayload()
	})
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (u *StagingPersonUpsertBulk) SetFirstNameNormalized(v string) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetFirstNameNormalized(v)
	})
}

// UpdateFirstNameNormalized sets the "first_name_normalized" field to the value that was provided on create.
func (u *StagingPersonUpsertBulk) UpdateFirstNameNormalized() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateFirstNameNormalized()
	})
}

// ClearFirstNameNormalized clears the value of the "first_name_normalized" field.
func (u *StagingPersonUpsertBulk) ClearFirstNameNormalized() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearFirstNameNormalized()
	})
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (u *StagingPersonUpsertBulk) SetFatherNameNormalized(v string) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetFatherNameNormalized(v)
	})
}

// UpdateFatherNameNormalized sets the "father_name_normalized" field to the value that was provided on create.
func (u *StagingPersonUpsertBulk) UpdateFatherNameNormalized() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateFatherNameNormalized()
	})
}

// ClearFatherNameNormalized clears the value of the "father_name_normalized" field.
func (u *StagingPersonUpsertBulk) ClearFatherNameNormalized() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearFatherNameNormalized()
	})
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (u *StagingPersonUpsertBulk) SetFamilyNameNormalized(v string) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetFamilyNameNormalized(v)
	})
}

// UpdateFamilyNameNormalized sets the "family_name_normalized" field to the value that was provided on create.
func (u *StagingPersonUpsertBulk) UpdateFamilyNameNormalized() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateFamilyNameNormalized()
	})
}

// ClearFamilyNameNormalized clears the value of the "family_name_normalized" field.
func (u *StagingPersonUpsertBulk) ClearFamilyNameNormalized() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearFamilyNameNormalized()
	})
}

// SetNationalID sets the "national_id" field.
func (u *StagingPersonUpsertBulk) SetNationalID(v string) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetNationalID(v)
	})
}

// UpdateNationalID sets the "national_id" field to the value that was provided on create.
func (u *StagingPersonUpsertBulk) UpdateNationalID() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateNationalID()
	})
}

// ClearNationalID clears the value of the "national_id" field.
func (u *StagingPersonUpsertBulk) ClearNationalID() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearNationalID()
	})
}

// SetYearOfBirth sets the "year_of_birth" field.
func (u *StagingPersonUpsertBulk) SetYearOfBirth(v int) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetYearOfBirth(v)
	})
}

// AddYearOfBirth adds v to the "year_of_birth" field.
func (u *StagingPersonUpsertBulk) AddYearOfBirth(v int) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.AddYearOfBirth(v)
	})
}

// UpdateYearOfBirth sets the "year_of_birth" field to the value that was provided on create.
func (u *StagingPersonUpsertBulk) UpdateYearOfBirth() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateYearOfBirth()
	})
}

// ClearYearOfBirth clears the value of the "year_of_birth" field.
func (u *StagingPersonUpsertBulk) ClearYearOfBirth() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearYearOfBirth()
	})
}

// SetGenderCode sets the "gender_code" field.
func (u *StagingPersonUpsertBulk) SetGenderCode(v string) *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.SetGenderCode(v)
	})
}

// UpdateGenderCode sets the "gender_code" field to the value that was provided on create.
func (u *StagingPersonUpsertBulk) UpdateGenderCode() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.UpdateGenderCode()
	})
}

// ClearGenderCode clears the value of the "gender_code" field.
func (u *StagingPersonUpsertBulk) ClearGenderCode() *StagingPersonUpsertBulk {
	return u.Update(func(s *StagingPersonUpsert) {
		s.ClearGenderCode()
	})
}

// Exec executes the query.
func (u *StagingPersonUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StagingPersonCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StagingPersonCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StagingPersonUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
