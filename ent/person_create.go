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
	"uhc-registry.io/registry/ent/person"
)

// PersonCreate is the builder for creating a Person entity.
type PersonCreate struct {
	config
	mutation *PersonMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PersonCreate) SetCreatedAt(v time.Time) *PersonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PersonCreate) SetNillableCreatedAt(v *time.Time) *PersonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PersonCreate) SetUpdatedAt(v time.Time) *PersonCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PersonCreate) SetNillableUpdatedAt(v *time.Time) *PersonCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourcePackageID sets the "source_package_id" field.
func (_c *PersonCreate) SetSourcePackageID(v uuid.UUID) *PersonCreate {
	_c.mutation.SetSourcePackageID(v)
	return _c
}

// SetNillableSourcePackageID sets the "source_package_id" field if the given value is not nil.
func (_c *PersonCreate) SetNillableSourcePackageID(v *uuid.UUID) *PersonCreate {
	if v != nil {
		_c.SetSourcePackageID(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *PersonCreate) SetFirstName(v string) *PersonCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetFatherName sets the "father_name" field.
func (_c *PersonCreate) SetFatherName(v string) *PersonCreate {
	_c.mutation.SetFatherName(v)
	return _c
}

// SetNillableFatherName sets the "father_name" field if the given value is not nil.
func (_c *PersonCreate) SetNillableFatherName(v *string) *PersonCreate {
	if v != nil {
		_c.SetFatherName(*v)
	}
	return _c
}

// SetFamilyName sets the "family_name" field.
func (_c *PersonCreate) SetFamilyName(v string) *PersonCreate {
	_c.mutation.SetFamilyName(v)
	return _c
}

// SetMotherName sets the "mother_name" field.
func (_c *PersonCreate) SetMotherName(v string) *PersonCreate {
	_c.mutation.SetMotherName(v)
	return _c
}

// SetNillableMotherName sets the "mother_name" field if the given value is not nil.
func (_c *PersonCreate) SetNillableMotherName(v *string) *PersonCreate {
	if v != nil {
		_c.SetMotherName(*v)
	}
	return _c
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (_c *PersonCreate) SetFirstNameNormalized(v string) *PersonCreate {
	_c.mutation.SetFirstNameNormalized(v)
	return _c
}

// SetNillableFirstNameNormalized sets the "first_name_normalized" field if the given value is not nil.
func (_c *PersonCreate) SetNillableFirstNameNormalized(v *string) *PersonCreate {
	if v != nil {
		_c.SetFirstNameNormalized(*v)
	}
	return _c
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (_c *PersonCreate) SetFatherNameNormalized(v string) *PersonCreate {
	_c.mutation.SetFatherNameNormalized(v)
	return _c
}

// SetNillableFatherNameNormalized sets the "father_name_normalized" field if the given value is not nil.
func (_c *PersonCreate) SetNillableFatherNameNormalized(v *string) *PersonCreate {
	if v != nil {
		_c.SetFatherNameNormalized(*v)
	}
	return _c
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (_c *PersonCreate) SetFamilyNameNormalized(v string) *PersonCreate {
	_c.mutation.SetFamilyNameNormalized(v)
	return _c
}

// SetNillableFamilyNameNormalized sets the "family_name_normalized" field if the given value is not nil.
func (_c *PersonCreate) SetNillableFamilyNameNormalized(v *string) *PersonCreate {
	if v != nil {
		_c.SetFamilyNameNormalized(*v)
	}
	return _c
}

// SetNationalID sets the "national_id" field.
func (_c *PersonCreate) SetNationalID(v string) *PersonCreate {
	_c.mutation.SetNationalID(v)
	return _c
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_c *PersonCreate) SetNillableNationalID(v *string) *PersonCreate {
	if v != nil {
		_c.SetNationalID(*v)
	}
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *PersonCreate) SetDateOfBirth(v time.Time) *PersonCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_c *PersonCreate) SetNillableDateOfBirth(v *time.Time) *PersonCreate {
	if v != nil {
		_c.SetDateOfBirth(*v)
	}
	return _c
}

// SetYearOfBirth sets the "year_of_birth" field.
func (_c *PersonCreate) SetYearOfBirth(v int) *PersonCreate {
	_c.mutation.SetYearOfBirth(v)
	return _c
}

// SetNillableYearOfBirth sets the "year_of_birth" field if the given value is not nil.
func (_c *PersonCreate) SetNillableYearOfBirth(v *int) *PersonCreate {
	if v != nil {
		_c.SetYearOfBirth(*v)
	}
	return _c
}

// SetGenderCode sets the "gender_code" field.
func (_c *PersonCreate) SetGenderCode(v string) *PersonCreate {
	_c.mutation.SetGenderCode(v)
	return _c
}

// SetNillableGenderCode sets the "gender_code" field if the given value is not nil.
func (_c *PersonCreate) SetNillableGenderCode(v *string) *PersonCreate {
	if v != nil {
		_c.SetGenderCode(*v)
	}
	return _c
}

// SetNationalityCode sets the "nationality_code" field.
func (_c *PersonCreate) SetNationalityCode(v string) *PersonCreate {
	_c.mutation.SetNationalityCode(v)
	return _c
}

// SetNillableNationalityCode sets the "nationality_code" field if the given value is not nil.
func (_c *PersonCreate) SetNillableNationalityCode(v *string) *PersonCreate {
	if v != nil {
		_c.SetNationalityCode(*v)
	}
	return _c
}

// SetGovernorateCode sets the "governorate_code" field.
func (_c *PersonCreate) SetGovernorateCode(v string) *PersonCreate {
	_c.mutation.SetGovernorateCode(v)
	return _c
}

// SetNillableGovernorateCode sets the "governorate_code" field if the given value is not nil.
func (_c *PersonCreate) SetNillableGovernorateCode(v *string) *PersonCreate {
	if v != nil {
		_c.SetGovernorateCode(*v)
	}
	return _c
}

// SetPhoneNumber sets the "phone_number" field.
func (_c *PersonCreate) SetPhoneNumber(v string) *PersonCreate {
	_c.mutation.SetPhoneNumber(v)
	return _c
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_c *PersonCreate) SetNillablePhoneNumber(v *string) *PersonCreate {
	if v != nil {
		_c.SetPhoneNumber(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PersonCreate) SetID(v uuid.UUID) *PersonCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PersonMutation object of the builder.
func (_c *PersonCreate) Mutation() *PersonMutation {
	return _c.mutation
}

// Save creates the Person in the database.
func (_c *PersonCreate) Save(ctx context.Context) (*Person, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PersonCreate) SaveX(ctx context.Context) *Person {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PersonCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := person.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := person.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PersonCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Person.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Person.updated_at"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "Person.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := person.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Person.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FamilyName(); !ok {
		return &ValidationError{Name: "family_name", err: errors.New(`ent: missing required field "Person.family_name"`)}
	}
	if v, ok := _c.mutation.FamilyName(); ok {
		if err := person.FamilyNameValidator(v); err != nil {
			return &ValidationError{Name: "family_name", err: fmt.Errorf(`ent: validator failed for field "Person.family_name": %w`, err)}
		}
	}
	return nil
}

func (_c *PersonCreate) sqlSave(ctx context.Context) (*Person, error) {
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

func (_c *PersonCreate) createSpec() (*Person, *sqlgraph.CreateSpec) {
	var (
		_node = &Person{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(person.Table, sqlgraph.NewFieldSpec(person.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(person.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(person.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourcePackageID(); ok {
		_spec.SetField(person.FieldSourcePackageID, field.TypeUUID, value)
		_node.SourcePackageID = &value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(person.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.FatherName(); ok {
		_spec.SetField(person.FieldFatherName, field.TypeString, value)
		_node.FatherName = value
	}
	if value, ok := _c.mutation.FamilyName(); ok {
		_spec.SetField(person.FieldFamilyName, field.TypeString, value)
		_node.FamilyName = value
	}
	if value, ok := _c.mutation.MotherName(); ok {
		_spec.SetField(person.FieldMotherName, field.TypeString, value)
		_node.MotherName = value
	}
	if value, ok := _c.mutation.FirstNameNormalized(); ok {
		_spec.SetField(person.FieldFirstNameNormalized, field.TypeString, value)
		_node.FirstNameNormalized = value
	}
	if value, ok := _c.mutation.FatherNameNormalized(); ok {
		_spec.SetField(person.FieldFatherNameNormalized, field.TypeString, value)
		_node.FatherNameNormalized = value
	}
	if value, ok := _c.mutation.FamilyNameNormalized(); ok {
		_spec.SetField(person.FieldFamilyNameNormalized, field.TypeString, value)
		_node.FamilyNameNormalized = value
	}
	if value, ok := _c.mutation.NationalID(); ok {
		_spec.SetField(person.FieldNationalID, field.TypeString, value)
		_node.NationalID = value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(person.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = &value
	}
	if value, ok := _c.mutation.YearOfBirth(); ok {
		_spec.SetField(person.FieldYearOfBirth, field.TypeInt, value)
		_node.YearOfBirth = value
	}
	if value, ok := _c.mutation.GenderCode(); ok {
		_spec.SetField(person.FieldGenderCode, field.TypeString, value)
		_node.GenderCode = value
	}
	if value, ok := _c.mutation.NationalityCode(); ok {
		_spec.SetField(person.FieldNationalityCode, field.TypeString, value)
		_node.NationalityCode = value
	}
	if value, ok := _c.mutation.GovernorateCode(); ok {
		_spec.SetField(person.FieldGovernorateCode, field.TypeString, value)
		_node.GovernorateCode = value
	}
	if value, ok := _c.mutation.PhoneNumber(); ok {
		_spec.SetField(person.FieldPhoneNumber, field.TypeString, value)
		_node.PhoneNumber = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Person.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PersonUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PersonCreate) OnConflict(opts ...sql.ConflictOption) *PersonUpsertOne {
	_c.conflict = opts
	return &PersonUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Person.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PersonCreate) OnConflictColumns(columns ...string) *PersonUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PersonUpsertOne{
		create: _c,
	}
}

type (
	// PersonUpsertOne is the builder for "upsert"-ing
	//  one Person node.
	PersonUpsertOne struct {
		create *PersonCreate
	}

	// PersonUpsert is the "OnConflict" setter.
	PersonUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PersonUpsert) SetUpdatedAt(v time.Time) *PersonUpsert {
	u.Set(person.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PersonUpsert) UpdateUpdatedAt() *PersonUpsert {
	u.SetExcluded(person.FieldUpdatedAt)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *PersonUpsert) SetFirstName(v string) *PersonUpsert {
	u.Set(person.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PersonUpsert) UpdateFirstName() *PersonUpsert {
	u.SetExcluded(person.FieldFirstName)
	return u
}

// SetFatherName sets the "father_name" field.
func (u *PersonUpsert) SetFatherName(v string) *PersonUpsert {
	u.Set(person.FieldFatherName, v)
	return u
}

// UpdateFatherName sets the "father_name" field to the value that was provided on create.
func (u *PersonUpsert) UpdateFatherName() *PersonUpsert {
	u.SetExcluded(person.FieldFatherName)
	return u
}

// ClearFatherName clears the value of the "father_name" field.
func (u *PersonUpsert) ClearFatherName() *PersonUpsert {
	u.SetNull(person.FieldFatherName)
	return u
}

// SetFamilyName sets the "family_name" field.
func (u *PersonUpsert) SetFamilyName(v string) *PersonUpsert {
	u.Set(person.FieldFamilyName, v)
	return u
}

// UpdateFamilyName sets the "family_name" field to the value that was provided on create.
func (u *PersonUpsert) UpdateFamilyName() *PersonUpsert {
	u.SetExcluded(person.FieldFamilyName)
	return u
}

// SetMotherName sets the "mother_name" field.
func (u *PersonUpsert) SetMotherName(v string) *PersonUpsert {
	u.Set(person.FieldMotherName, v)
	return u
}

// UpdateMotherName sets the "mother_name" field to the value that was provided on create.
func (u *PersonUpsert) UpdateMotherName() *PersonUpsert {
	u.SetExcluded(person.FieldMotherName)
	return u
}

// ClearMotherName clears the value of the "mother_name" field.
func (u *PersonUpsert) ClearMotherName() *PersonUpsert {
	u.SetNull(person.FieldMotherName)
	return u
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (u *PersonUpsert) SetFirstNameNormalized(v string) *PersonUpsert {
	u.Set(person.FieldFirstNameNormalized, v)
	return u
}

// UpdateFirstNameNormalized sets the "first_name_normalized" field to the value that was provided on create.
func (u *PersonUpsert) UpdateFirstNameNormalized() *PersonUpsert {
	u.SetExcluded(person.FieldFirstNameNormalized)
	return u
}

// ClearFirstNameNormalized clears the value of the "first_name_normalized" field.
func (u *PersonUpsert) ClearFirstNameNormalized() *PersonUpsert {
	u.SetNull(person.FieldFirstNameNormalized)
	return u
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (u *PersonUpsert) SetFatherNameNormalized(v string) *PersonUpsert {
	u.Set(person.FieldFatherNameNormalized, v)
	return u
}

// UpdateFatherNameNormalized sets the "father_name_normalized" field to the value that was provided on create.
func (u *PersonUpsert) UpdateFatherNameNormalized() *PersonUpsert {
	u.SetExcluded(person.FieldFatherNameNormalized)
	return u
}

// ClearFatherNameNormalized clears the value of the "father_name_normalized" field.
func (u *PersonUpsert) ClearFatherNameNormalized() *PersonUpsert {
	u.SetNull(person.FieldFatherNameNormalized)
	return u
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (u *PersonUpsert) SetFamilyNameNormalized(v string) *PersonUpsert {
	u.Set(person.FieldFamilyNameNormalized, v)
	return u
}

// UpdateFamilyNameNormalized sets the "family_name_normalized" field to the value that was provided on create.
func (u *PersonUpsert) UpdateFamilyNameNormalized() *PersonUpsert {
	u.SetExcluded(person.FieldFamilyNameNormalized)
	return u
}

// ClearFamilyNameNormalized clears the value of the "family_name_normalized" field.
func (u *PersonUpsert) ClearFamilyNameNormalized() *PersonUpsert {
	u.SetNull(person.FieldFamilyNameNormalized)
	return u
}

// SetNationalID sets the "national_id" field.
func (u *PersonUpsert) SetNationalID(v string) *PersonUpsert {
	u.Set(person.FieldNationalID, v)
	return u
}

// UpdateNationalID sets the "national_id" field to the value that was provided on create.
func (u *PersonUpsert) UpdateNationalID() *PersonUpsert {
	u.SetExcluded(person.FieldNationalID)
	return u
}

// ClearNationalID clears the value of the "national_id" field.
func (u *PersonUpsert) ClearNationalID() *PersonUpsert {
	u.SetNull(person.FieldNationalID)
	return u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PersonUpsert) SetDateOfBirth(v time.Time) *PersonUpsert {
	u.Set(person.FieldDateOfBirth, v)
	return u
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PersonUpsert) UpdateDateOfBirth() *PersonUpsert {
	u.SetExcluded(person.FieldDateOfBirth)
	return u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PersonUpsert) ClearDateOfBirth() *PersonUpsert {
	u.SetNull(person.FieldDateOfBirth)
	return u
}

// SetYearOfBirth sets the "year_of_birth" field.
func (u *PersonUpsert) SetYearOfBirth(v int) *PersonUpsert {
	u.Set(person.FieldYearOfBirth, v)
	return u
}

// UpdateYearOfBirth sets the "year_of_birth" field to the value that was provided on create.
func (u *PersonUpsert) UpdateYearOfBirth() *PersonUpsert {
	u.SetExcluded(person.FieldYearOfBirth)
	return u
}

// AddYearOfBirth adds v to the "year_of_birth" field.
func (u *PersonUpsert) AddYearOfBirth(v int) *PersonUpsert {
	u.Add(person.FieldYearOfBirth, v)
	return u
}

// ClearYearOfBirth clears the value of the "year_of_birth" field.
func (u *PersonUpsert) ClearYearOfBirth() *PersonUpsert {
	u.SetNull(person.FieldYearOfBirth)
	return u
}

// SetGenderCode sets the "gender_code" field.
func (u *PersonUpsert) SetGenderCode(v string) *PersonUpsert {
	u.Set(person.FieldGenderCode, v)
	return u
}

// UpdateGenderCode sets the "gender_code" field to the value that was provided on create.
func (u *PersonUpsert) UpdateGenderCode() *PersonUpsert {
	u.SetExcluded(person.FieldGenderCode)
	return u
}

// ClearGenderCode clears the value of the "gender_code" field.
func (u *PersonUpsert) ClearGenderCode() *PersonUpsert {
	u.SetNull(person.FieldGenderCode)
	return u
}

// SetNationalityCode sets the "nationality_code" field.
func (u *PersonUpsert) SetNationalityCode(v string) *PersonUpsert {
	u.Set(person.FieldNationalityCode, v)
	return u
}

// UpdateNationalityCode sets the "nationality_code" field to the value that was provided on create.
func (u *PersonUpsert) UpdateNationalityCode() *PersonUpsert {
	u.SetExcluded(person.FieldNationalityCode)
	return u
}

// ClearNationalityCode clears the value of the "nationality_code" field.
func (u *PersonUpsert) ClearNationalityCode() *PersonUpsert {
	u.SetNull(person.FieldNationalityCode)
	return u
}

// SetGovernorateCode sets the "governorate_code" field.
func (u *PersonUpsert) SetGovernorateCode(v string) *PersonUpsert {
	u.Set(person.FieldGovernorateCode, v)
	return u
}

// UpdateGovernorateCode sets the "governorate_code" field to the value that was provided on create.
func (u *PersonUpsert) UpdateGovernorateCode() *PersonUpsert {
	u.SetExcluded(person.FieldGovernorateCode)
	return u
}

// ClearGovernorateCode clears the value of the "governorate_code" field.
func (u *PersonUpsert) ClearGovernorateCode() *PersonUpsert {
	u.SetNull(person.FieldGovernorateCode)
	return u
}

// SetPhoneNumber sets the "phone_number" field.
func (u *PersonUpsert) SetPhoneNumber(v string) *PersonUpsert {
	u.Set(person.FieldPhoneNumber, v)
	return u
}

// UpdatePhoneNumber sets the "phone_number" field to the value that was provided on create.
func (u *PersonUpsert) UpdatePhoneNumber() *PersonUpsert {
	u.SetExcluded(person.FieldPhoneNumber)
	return u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (u *PersonUpsert) ClearPhoneNumber() *PersonUpsert {
	u.SetNull(person.FieldPhoneNumber)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Person.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(person.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PersonUpsertOne) UpdateNewValues() *PersonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(person.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(person.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SourcePackageID(); exists {
			s.SetIgnore(person.FieldSourcePackageID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Person.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PersonUpsertOne) Ignore() *PersonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PersonUpsertOne) DoNothing() *PersonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PersonCreate.OnConflict
// documentation for more info.
func (u *PersonUpsertOne) Update(set func(*PersonUpsert)) *PersonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PersonUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PersonUpsertOne) SetUpdatedAt(v time.Time) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateUpdatedAt() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFirstName sets the "first_name" field.
func (u *PersonUpsertOne) SetFirstName(v string) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateFirstName() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateFirstName()
	})
}

// SetFatherName sets the "father_name" field.
func (u *PersonUpsertOne) SetFatherName(v string) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetFatherName(v)
	})
}

// UpdateFatherName sets the "father_name" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateFatherName() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateFatherName()
	})
}

// ClearFatherName clears the value of the "father_name" field.
func (u *PersonUpsertOne) ClearFatherName() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.ClearFatherName()
	})
}

// SetFamilyName sets the "family_name" field.
func (u *PersonUpsertOne) SetFamilyName(v string) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetFamilyName(v)
	})
}

// UpdateFamilyName sets the "family_name" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateFamilyName() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateFamilyName()
	})
}

// SetMotherName sets the "mother_name" field.
func (u *PersonUpsertOne) SetMotherName(v string) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetMotherName(v)
	})
}

// UpdateMotherName sets the "mother_name" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateMotherName() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateMotherName()
	})
}

// ClearMotherName clears the value of the "mother_name" field.
func (u *PersonUpsertOne) ClearMotherName() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.ClearMotherName()
	})
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (u *PersonUpsertOne) SetFirstNameNormalized(v string) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetFirstNameNormalized(v)
	})
}

// UpdateFirstNameNormalized sets the "first_name_normalized" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateFirstNameNormalized() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateFirstNameNormalized()
	})
}

// ClearFirstNameNormalized clears the value of the "first_name_normalized" field.
func (u *PersonUpsertOne) ClearFirstNameNormalized() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.ClearFirstNameNormalized()
	})
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (u *PersonUpsertOne) SetFatherNameNormalized(v string) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetFatherNameNormalized(v)
	})
}

// UpdateFatherNameNormalized sets the "father_name_normalized" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateFatherNameNormalized() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateFatherNameNormalized()
	})
}

// ClearFatherNameNormalized clears the value of the "father_name_normalized" field.
func (u *PersonUpsertOne) ClearFatherNameNormalized() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.ClearFatherNameNormalized()
	})
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (u *PersonUpsertOne) SetFamilyNameNormalized(v string) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetFamilyNameNormalized(v)
	})
}

// UpdateFamilyNameNormalized sets the "family_name_normalized" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateFamilyNameNormalized() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateFamilyNameNormalized()
	})
}

// ClearFamilyNameNormalized clears the value of the "family_name_normalized" field.
func (u *PersonUpsertOne) ClearFamilyNameNormalized() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.ClearFamilyNameNormalized()
	})
}

// SetNationalID sets the "national_id" field.
func (u *PersonUpsertOne) SetNationalID(v string) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetNationalID(v)
	})
}

// UpdateNationalID sets the "national_id" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateNationalID() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateNationalID()
	})
}

// ClearNationalID clears the value of the "national_id" field.
func (u *PersonUpsertOne) ClearNationalID() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.ClearNationalID()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PersonUpsertOne) SetDateOfBirth(v time.Time) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateDateOfBirth() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PersonUpsertOne) ClearDateOfBirth() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetYearOfBirth sets the "year_of_birth" field.
func (u *PersonUpsertOne) SetYearOfBirth(v int) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetYearOfBirth(v)
	})
}

// AddYearOfBirth adds v to the "year_of_birth" field.
func (u *PersonUpsertOne) AddYearOfBirth(v int) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.AddYearOfBirth(v)
	})
}

// UpdateYearOfBirth sets the "year_of_birth" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateYearOfBirth() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateYearOfBirth()
	})
}

// ClearYearOfBirth clears the value of the "year_of_birth" field.
func (u *PersonUpsertOne) ClearYearOfBirth() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.ClearYearOfBirth()
	})
}

// SetGenderCode sets the "gender_code" field.
func (u *PersonUpsertOne) SetGenderCode(v string) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetGenderCode(v)
	})
}

// UpdateGenderCode sets the "gender_code" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateGenderCode() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateGenderCode()
	})
}

// ClearGenderCode clears the value of the "gender_code" field.
func (u *PersonUpsertOne) ClearGenderCode() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.ClearGenderCode()
	})
}

// SetNationalityCode sets the "nationality_code" field.
func (u *PersonUpsertOne) SetNationalityCode(v string) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetNationalityCode(v)
	})
}

// UpdateNationalityCode sets the "nationality_code" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateNationalityCode() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateNationalityCode()
	})
}

// ClearNationalityCode clears the value of the "nationality_code" field.
func (u *PersonUpsertOne) ClearNationalityCode() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.ClearNationalityCode()
	})
}

// SetGovernorateCode sets the "governorate_code" field.
func (u *PersonUpsertOne) SetGovernorateCode(v string) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetGovernorateCode(v)
	})
}

// UpdateGovernorateCode sets the "governorate_code" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdateGovernorateCode() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateGovernorateCode()
	})
}

// ClearGovernorateCode clears the value of the "governorate_code" field.
func (u *PersonUpsertOne) ClearGovernorateCode() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.ClearGovernorateCode()
	})
}

// SetPhoneNumber sets the "phone_number" field.
func (u *PersonUpsertOne) SetPhoneNumber(v string) *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.SetPhoneNumber(v)
	})
}

// UpdatePhoneNumber sets the "phone_number" field to the value that was provided on create.
func (u *PersonUpsertOne) UpdatePhoneNumber() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.UpdatePhoneNumber()
	})
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (u *PersonUpsertOne) ClearPhoneNumber() *PersonUpsertOne {
	return u.Update(func(s *PersonUpsert) {
		s.ClearPhoneNumber()
	})
}

// Exec executes the query.
func (u *PersonUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PersonCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PersonUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PersonUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PersonUpsertOne.ID is not supported by MySQL driver. Use PersonUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PersonUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PersonCreateBulk is the builder for creating many Person entities in bulk.
type PersonCreateBulk struct {
	config
	err      error
	builders []*PersonCreate
	conflict []sql.ConflictOption
}

// Save creates the Person entities in the database.
func (_c *PersonCreateBulk) Save(ctx context.Context) ([]*Person, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Person, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonMutation)
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
func (_c *PersonCreateBulk) SaveX(ctx context.Context) []*Person {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Person.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PersonUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PersonCreateBulk) OnConflict(opts ...sql.ConflictOption) *PersonUpsertBulk {
	_c.conflict = opts
	return &PersonUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Person.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PersonCreateBulk) OnConflictColumns(columns ...string) *PersonUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PersonUpsertBulk{
		create: _c,
	}
}

// PersonUpsertBulk is the builder for "upsert"-ing
// a bulk of Person nodes.
type PersonUpsertBulk struct {
	create *PersonCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Person.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(person.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PersonUpsertBulk) UpdateNewValues() *PersonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(person.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(person.FieldCreatedAt)
			}
			if _, exists := b.mutation.SourcePackageID(); exists {
				s.SetIgnore(person.FieldSourcePackageID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Person.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PersonUpsertBulk) Ignore() *PersonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PersonUpsertBulk) DoNothing() *PersonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PersonCreateBulk.OnConflict
// documentation for more info.
func (u *PersonUpsertBulk) Update(set func(*PersonUpsert)) *PersonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PersonUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PersonUpsertBulk) SetUpdatedAt(v time.Time) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateUpdatedAt() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFirstName sets the "first_name" field.
func (u *PersonUpsertBulk) SetFirstName(v string) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateFirstName() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateFirstName()
	})
}

// SetFatherName sets the "father_name" field.
func (u *PersonUpsertBulk) SetFatherName(v string) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetFatherName(v)
	})
}

// UpdateFatherName sets the "father_name" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateFatherName() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateFatherName()
	})
}

// ClearFatherName clears the value of the "father_name" field.
func (u *PersonUpsertBulk) ClearFatherName() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.ClearFatherName()
	})
}

// SetFamilyName sets the "family_name" field.
func (u *PersonUpsertBulk) SetFamilyName(v string) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetFamilyName(v)
	})
}

// UpdateFamilyName sets the "family_name" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateFamilyName() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateFamilyName()
	})
}

// SetMotherName sets the "mother_name" field.
func (u *PersonUpsertBulk) SetMotherName(v string) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetMotherName(v)
	})
}

// UpdateMotherName sets the "mother_name" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateMotherName() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateMotherName()
	})
}

// ClearMotherName clears the value of the "mother_name" field.
func (u *PersonUpsertBulk) ClearMotherName() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.ClearMotherName()
	})
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (u *PersonUpsertBulk) SetFirstNameNormalized(v string) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetFirstNameNormalized(v)
	})
}

// UpdateFirstNameNormalized sets the "first_name_normalized" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateFirstNameNormalized() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateFirstNameNormalized()
	})
}

// ClearFirstNameNormalized clears the value of the "first_name_normalized" field.
func (u *PersonUpsertBulk) ClearFirstNameNormalized() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.ClearFirstNameNormalized()
	})
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (u *PersonUpsertBulk) SetFatherNameNormalized(v string) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetFatherNameNormalized(v)
	})
}

// UpdateFatherNameNormalized sets the "father_name_normalized" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateFatherNameNormalized() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateFatherNameNormalized()
	})
}

// ClearFatherNameNormalized clears the value of the "father_name_normalized" field.
func (u *PersonUpsertBulk) ClearFatherNameNormalized() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.ClearFatherNameNormalized()
	})
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (u *PersonUpsertBulk) SetFamilyNameNormalized(v string) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetFamilyNameNormalized(v)
	})
}

// UpdateFamilyNameNormalized sets the "family_name_normalized" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateFamilyNameNormalized() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateFamilyNameNormalized()
	})
}

// ClearFamilyNameNormalized clears the value of the "family_name_normalized" field.
func (u *PersonUpsertBulk) ClearFamilyNameNormalized() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.ClearFamilyNameNormalized()
	})
}

// SetNationalID sets the "national_id" field.
func (u *PersonUpsertBulk) SetNationalID(v string) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetNationalID(v)
	})
}

// UpdateNationalID sets the "national_id" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateNationalID() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateNationalID()
	})
}

// ClearNationalID clears the value of the "national_id" field.
func (u *PersonUpsertBulk) ClearNationalID() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.ClearNationalID()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PersonUpsertBulk) SetDateOfBirth(v time.Time) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateDateOfBirth() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PersonUpsertBulk) ClearDateOfBirth() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetYearOfBirth sets the "year_of_birth" field.
func (u *PersonUpsertBulk) SetYearOfBirth(v int) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetYearOfBirth(v)
	})
}

// AddYearOfBirth adds v to the "year_of_birth" field.
func (u *PersonUpsertBulk) AddYearOfBirth(v int) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.AddYearOfBirth(v)
	})
}

// UpdateYearOfBirth sets the "year_of_birth" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateYearOfBirth() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateYearOfBirth()
	})
}

// ClearYearOfBirth clears the value of the "year_of_birth" field.
func (u *PersonUpsertBulk) ClearYearOfBirth() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.ClearYearOfBirth()
	})
}

// SetGenderCode sets the "gender_code" field.
func (u *PersonUpsertBulk) SetGenderCode(v string) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetGenderCode(v)
	})
}

// UpdateGenderCode sets the "gender_code" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateGenderCode() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateGenderCode()
	})
}

// ClearGenderCode clears the value of the "gender_code" field.
func (u *PersonUpsertBulk) ClearGenderCode() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.ClearGenderCode()
	})
}

// SetNationalityCode sets the "nationality_code" field.
func (u *PersonUpsertBulk) SetNationalityCode(v string) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetNationalityCode(v)
	})
}

// UpdateNationalityCode sets the "nationality_code" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateNationalityCode() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateNationalityCode()
	})
}

// ClearNationalityCode clears the value of the "nationality_code" field.
func (u *PersonUpsertBulk) ClearNationalityCode() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.ClearNationalityCode()
	})
}

// SetGovernorateCode sets the "governorate_code" field.
func (u *PersonUpsertBulk) SetGovernorateCode(v string) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetGovernorateCode(v)
	})
}

// UpdateGovernorateCode sets the "governorate_code" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdateGovernorateCode() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdateGovernorateCode()
	})
}

// ClearGovernorateCode clears the value of the "governorate_code" field.
func (u *PersonUpsertBulk) ClearGovernorateCode() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.ClearGovernorateCode()
	})
}

// SetPhoneNumber sets the "phone_number" field.
func (u *PersonUpsertBulk) SetPhoneNumber(v string) *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.SetPhoneNumber(v)
	})
}

// UpdatePhoneNumber sets the "phone_number" field to the value that was provided on create.
func (u *PersonUpsertBulk) UpdatePhoneNumber() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.UpdatePhoneNumber()
	})
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (u *PersonUpsertBulk) ClearPhoneNumber() *PersonUpsertBulk {
	return u.Update(func(s *PersonUpsert) {
		s.ClearPhoneNumber()
	})
}

// Exec executes the query.
func (u *PersonUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PersonCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PersonCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PersonUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
