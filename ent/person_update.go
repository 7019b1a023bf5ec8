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
	"uhc-registry.io/registry/ent/person"
	"uhc-registry.io/registry/ent/predicate"
)

// PersonUpdate is the builder for updating Person entities.
type PersonUpdate struct {
	config
	hooks    []Hook
	mutation *PersonMutation
}

// Where appends a list predicates to the PersonUpdate builder.
func (_u *PersonUpdate) Where(ps ...predicate.Person) *PersonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonUpdate) SetUpdatedAt(v time.Time) *PersonUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PersonUpdate) SetFirstName(v string) *PersonUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableFirstName(v *string) *PersonUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetFatherName sets the "father_name" field.
func (_u *PersonUpdate) SetFatherName(v string) *PersonUpdate {
	_u.mutation.SetFatherName(v)
	return _u
}

// SetNillableFatherName sets the "father_name" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableFatherName(v *string) *PersonUpdate {
	if v != nil {
		_u.SetFatherName(*v)
	}
	return _u
}

// ClearFatherName clears the value of the "father_name" field.
func (_u *PersonUpdate) ClearFatherName() *PersonUpdate {
	_u.mutation.ClearFatherName()
	return _u
}

// SetFamilyName sets the "family_name" field.
func (_u *PersonUpdate) SetFamilyName(v string) *PersonUpdate {
	_u.mutation.SetFamilyName(v)
	return _u
}

// SetNillableFamilyName sets the "family_name" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableFamilyName(v *string) *PersonUpdate {
	if v != nil {
		_u.SetFamilyName(*v)
	}
	return _u
}

// SetMotherName sets the "mother_name" field.
func (_u *PersonUpdate) SetMotherName(v string) *PersonUpdate {
	_u.mutation.SetMotherName(v)
	return _u
}

// SetNillableMotherName sets the "mother_name" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableMotherName(v *string) *PersonUpdate {
	if v != nil {
		_u.SetMotherName(*v)
	}
	return _u
}

// ClearMotherName clears the value of the "mother_name" field.
func (_u *PersonUpdate) ClearMotherName() *PersonUpdate {
	_u.mutation.ClearMotherName()
	return _u
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (_u *PersonUpdate) SetFirstNameNormalized(v string) *PersonUpdate {
	_u.mutation.SetFirstNameNormalized(v)
	return _u
}

// SetNillableFirstNameNormalized sets the "first_name_normalized" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableFirstNameNormalized(v *string) *PersonUpdate {
	if v != nil {
		_u.SetFirstNameNormalized(*v)
	}
	return _u
}

// ClearFirstNameNormalized clears the value of the "first_name_normalized" field.
func (_u *PersonUpdate) ClearFirstNameNormalized() *PersonUpdate {
	_u.mutation.ClearFirstNameNormalized()
	return _u
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (_u *PersonUpdate) SetFatherNameNormalized(v string) *PersonUpdate {
	_u.mutation.SetFatherNameNormalized(v)
	return _u
}

// SetNillableFatherNameNormalized sets the "father_name_normalized" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableFatherNameNormalized(v *string) *PersonUpdate {
	if v != nil {
		_u.SetFatherNameNormalized(*v)
	}
	return _u
}

// ClearFatherNameNormalized clears the value of the "father_name_normalized" field.
func (_u *PersonUpdate) ClearFatherNameNormalized() *PersonUpdate {
	_u.mutation.ClearFatherNameNormalized()
	return _u
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (_u *PersonUpdate) SetFamilyNameNormalized(v string) *PersonUpdate {
	_u.mutation.SetFamilyNameNormalized(v)
	return _u
}

// SetNillableFamilyNameNormalized sets the "family_name_normalized" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableFamilyNameNormalized(v *string) *PersonUpdate {
	if v != nil {
		_u.SetFamilyNameNormalized(*v)
	}
	return _u
}

// ClearFamilyNameNormalized clears the value of the "family_name_normalized" field.
func (_u *PersonUpdate) ClearFamilyNameNormalized() *PersonUpdate {
	_u.mutation.ClearFamilyNameNormalized()
	return _u
}

// SetNationalID sets the "national_id" field.
func (_u *PersonUpdate) SetNationalID(v string) *PersonUpdate {
	_u.mutation.SetNationalID(v)
	return _u
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableNationalID(v *string) *PersonUpdate {
	if v != nil {
		_u.SetNationalID(*v)
	}
	return _u
}

// ClearNationalID clears the value of the "national_id" field.
func (_u *PersonUpdate) ClearNationalID() *PersonUpdate {
	_u.mutation.ClearNationalID()
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PersonUpdate) SetDateOfBirth(v time.Time) *PersonUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableDateOfBirth(v *time.Time) *PersonUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PersonUpdate) ClearDateOfBirth() *PersonUpdate {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetYearOfBirth sets the "year_of_birth" field.
func (_u *PersonUpdate) SetYearOfBirth(v int) *PersonUpdate {
	_u.mutation.ResetYearOfBirth()
	_u.mutation.SetYearOfBirth(v)
	return _u
}

// SetNillableYearOfBirth sets the "year_of_birth" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableYearOfBirth(v *int) *PersonUpdate {
	if v != nil {
		_u.SetYearOfBirth(*v)
	}
	return _u
}

// AddYearOfBirth adds value to the "year_of_birth" field.
func (_u *PersonUpdate) AddYearOfBirth(v int) *PersonUpdate {
	_u.mutation.AddYearOfBirth(v)
	return _u
}

// ClearYearOfBirth clears the value of the "year_of_birth" field.
func (_u *PersonUpdate) ClearYearOfBirth() *PersonUpdate {
	_u.mutation.ClearYearOfBirth()
	return _u
}

// SetGenderCode sets the "gender_code" field.
func (_u *PersonUpdate) SetGenderCode(v string) *PersonUpdate {
	_u.mutation.SetGenderCode(v)
	return _u
}

// SetNillableGenderCode sets the "gender_code" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableGenderCode(v *string) *PersonUpdate {
	if v != nil {
		_u.SetGenderCode(*v)
	}
	return _u
}

// ClearGenderCode clears the value of the "gender_code" field.
func (_u *PersonUpdate) ClearGenderCode() *PersonUpdate {
	_u.mutation.ClearGenderCode()
	return _u
}

// SetNationalityCode sets the "nationality_code" field.
func (_u *PersonUpdate) SetNationalityCode(v string) *PersonUpdate {
	_u.mutation.SetNationalityCode(v)
	return _u
}

// SetNillableNationalityCode sets the "nationality_code" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableNationalityCode(v *string) *PersonUpdate {
	if v != nil {
		_u.SetNationalityCode(*v)
	}
	return _u
}

// ClearNationalityCode clears the value of the "nationality_code" field.
func (_u *PersonUpdate) ClearNationalityCode() *PersonUpdate {
	_u.mutation.ClearNationalityCode()
	return _u
}

// SetGovernorateCode sets the "governorate_code" field.
func (_u *PersonUpdate) SetGovernorateCode(v string) *PersonUpdate {
	_u.mutation.SetGovernorateCode(v)
	return _u
}

// SetNillableGovernorateCode sets the "governorate_code" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableGovernorateCode(v *string) *PersonUpdate {
	if v != nil {
		_u.SetGovernorateCode(*v)
	}
	return _u
}

// ClearGovernorateCode clears the value of the "governorate_code" field.
func (_u *PersonUpdate) ClearGovernorateCode() *PersonUpdate {
	_u.mutation.ClearGovernorateCode()
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *PersonUpdate) SetPhoneNumber(v string) *PersonUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *PersonUpdate) SetNillablePhoneNumber(v *string) *PersonUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *PersonUpdate) ClearPhoneNumber() *PersonUpdate {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// Mutation returns the PersonMutation object of the builder.
func (_u *PersonUpdate) Mutation() *PersonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := person.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := person.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Person.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FamilyName(); ok {
		if err := person.FamilyNameValidator(v); err != nil {
			return &ValidationError{Name: "family_name", err: fmt.Errorf(`ent: validator failed for field "Person.family_name": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(person.Table, person.Columns, sqlgraph.NewFieldSpec(person.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(person.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(person.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(person.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FatherName(); ok {
		_spec.SetField(person.FieldFatherName, field.TypeString, value)
	}
	if _u.mutation.FatherNameCleared() {
		_spec.ClearField(person.FieldFatherName, field.TypeString)
	}
	if value, ok := _u.mutation.FamilyName(); ok {
		_spec.SetField(person.FieldFamilyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MotherName(); ok {
		_spec.SetField(person.FieldMotherName, field.TypeString, value)
	}
	if _u.mutation.MotherNameCleared() {
		_spec.ClearField(person.FieldMotherName, field.TypeString)
	}
	if value, ok := _u.mutation.FirstNameNormalized(); ok {
		_spec.SetField(person.FieldFirstNameNormalized, field.TypeString, value)
	}
	if _u.mutation.FirstNameNormalizedCleared() {
		_spec.ClearField(person.FieldFirstNameNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.FatherNameNormalized(); ok {
		_spec.SetField(person.FieldFatherNameNormalized, field.TypeString, value)
	}
	if _u.mutation.FatherNameNormalizedCleared() {
		_spec.ClearField(person.FieldFatherNameNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.FamilyNameNormalized(); ok {
		_spec.SetField(person.FieldFamilyNameNormalized, field.TypeString, value)
	}
	if _u.mutation.FamilyNameNormalizedCleared() {
		_spec.ClearField(person.FieldFamilyNameNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.NationalID(); ok {
		_spec.SetField(person.FieldNationalID, field.TypeString, value)
	}
	if _u.mutation.NationalIDCleared() {
		_spec.ClearField(person.FieldNationalID, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(person.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(person.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.YearOfBirth(); ok {
		_spec.SetField(person.FieldYearOfBirth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearOfBirth(); ok {
		_spec.AddField(person.FieldYearOfBirth, field.TypeInt, value)
	}
	if _u.mutation.YearOfBirthCleared() {
		_spec.ClearField(person.FieldYearOfBirth, field.TypeInt)
	}
	if value, ok := _u.mutation.GenderCode(); ok {
		_spec.SetField(person.FieldGenderCode, field.TypeString, value)
	}
	if _u.mutation.GenderCodeCleared() {
		_spec.ClearField(person.FieldGenderCode, field.TypeString)
	}
	if value, ok := _u.mutation.NationalityCode(); ok {
		_spec.SetField(person.FieldNationalityCode, field.TypeString, value)
	}
	if _u.mutation.NationalityCodeCleared() {
		_spec.ClearField(person.FieldNationalityCode, field.TypeString)
	}
	if value, ok := _u.mutation.GovernorateCode(); ok {
		_spec.SetField(person.FieldGovernorateCode, field.TypeString, value)
	}
	if _u.mutation.GovernorateCodeCleared() {
		_spec.ClearField(person.FieldGovernorateCode, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(person.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(person.FieldPhoneNumber, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{person.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonUpdateOne is the builder for updating a single Person entity.
type PersonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonUpdateOne) SetUpdatedAt(v time.Time) *PersonUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PersonUpdateOne) SetFirstName(v string) *PersonUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableFirstName(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetFatherName sets the "father_name" field.
func (_u *PersonUpdateOne) SetFatherName(v string) *PersonUpdateOne {
	_u.mutation.SetFatherName(v)
	return _u
}

// SetNillableFatherName sets the "father_name" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableFatherName(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetFatherName(*v)
	}
	return _u
}

// ClearFatherName clears the value of the "father_name" field.
func (_u *PersonUpdateOne) ClearFatherName() *PersonUpdateOne {
	_u.mutation.ClearFatherName()
	return _u
}

// SetFamilyName sets the "family_name" field.
func (_u *PersonUpdateOne) SetFamilyName(v string) *PersonUpdateOne {
	_u.mutation.SetFamilyName(v)
	return _u
}

// SetNillableFamilyName sets the "family_name" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableFamilyName(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetFamilyName(*v)
	}
	return _u
}

// SetMotherName sets the "mother_name" field.
func (_u *PersonUpdateOne) SetMotherName(v string) *PersonUpdateOne {
	_u.mutation.SetMotherName(v)
	return _u
}

// SetNillableMotherName sets the "mother_name" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableMotherName(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetMotherName(*v)
	}
	return _u
}

// ClearMotherName clears the value of the "mother_name" field.
func (_u *PersonUpdateOne) ClearMotherName() *PersonUpdateOne {
	_u.mutation.ClearMotherName()
	return _u
}

// SetFirstNameNormalized sets the "first_name_normalized" field.
func (_u *PersonUpdateOne) SetFirstNameNormalized(v string) *PersonUpdateOne {
	_u.mutation.SetFirstNameNormalized(v)
	return _u
}

// SetNillableFirstNameNormalized sets the "first_name_normalized" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableFirstNameNormalized(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetFirstNameNormalized(*v)
	}
	return _u
}

// ClearFirstNameNormalized clears the value of the "first_name_normalized" field.
func (_u *PersonUpdateOne) ClearFirstNameNormalized() *PersonUpdateOne {
	_u.mutation.ClearFirstNameNormalized()
	return _u
}

// SetFatherNameNormalized sets the "father_name_normalized" field.
func (_u *PersonUpdateOne) SetFatherNameNormalized(v string) *PersonUpdateOne {
	_u.mutation.SetFatherNameNormalized(v)
	return _u
}

// SetNillableFatherNameNormalized sets the "father_name_normalized" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableFatherNameNormalized(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetFatherNameNormalized(*v)
	}
	return _u
}

// ClearFatherNameNormalized clears the value of the "father_name_normalized" field.
func (_u *PersonUpdateOne) ClearFatherNameNormalized() *PersonUpdateOne {
	_u.mutation.ClearFatherNameNormalized()
	return _u
}

// SetFamilyNameNormalized sets the "family_name_normalized" field.
func (_u *PersonUpdateOne) SetFamilyNameNormalized(v string) *PersonUpdateOne {
	_u.mutation.SetFamilyNameNormalized(v)
	return _u
}

// SetNillableFamilyNameNormalized sets the "family_name_normalized" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableFamilyNameNormalized(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetFamilyNameNormalized(*v)
	}
	return _u
}

// ClearFamilyNameNormalized clears the value of the "family_name_normalized" field.
func (_u *PersonUpdateOne) ClearFamilyNameNormalized() *PersonUpdateOne {
	_u.mutation.ClearFamilyNameNormalized()
	return _u
}

// SetNationalID sets the "national_id" field.
func (_u *PersonUpdateOne) SetNationalID(v string) *PersonUpdateOne {
	_u.mutation.SetNationalID(v)
	return _u
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableNationalID(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetNationalID(*v)
	}
	return _u
}

// ClearNationalID clears the value of the "national_id" field.
func (_u *PersonUpdateOne) ClearNationalID() *PersonUpdateOne {
	_u.mutation.ClearNationalID()
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PersonUpdateOne) SetDateOfBirth(v time.Time) *PersonUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableDateOfBirth(v *time.Time) *PersonUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PersonUpdateOne) ClearDateOfBirth() *PersonUpdateOne {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetYearOfBirth sets the "year_of_birth" field.
func (_u *PersonUpdateOne) SetYearOfBirth(v int) *PersonUpdateOne {
	_u.mutation.ResetYearOfBirth()
	_u.mutation.SetYearOfBirth(v)
	return _u
}

// SetNillableYearOfBirth sets the "year_of_birth" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableYearOfBirth(v *int) *PersonUpdateOne {
	if v != nil {
		_u.SetYearOfBirth(*v)
	}
	return _u
}

// AddYearOfBirth adds value to the "year_of_birth" field.
func (_u *PersonUpdateOne) AddYearOfBirth(v int) *PersonUpdateOne {
	_u.mutation.AddYearOfBirth(v)
	return _u
}

// ClearYearOfBirth clears the value of the "year_of_birth" field.
func (_u *PersonUpdateOne) ClearYearOfBirth() *PersonUpdateOne {
	_u.mutation.ClearYearOfBirth()
	return _u
}

// SetGenderCode sets the "gender_code" field.
func (_u *PersonUpdateOne) SetGenderCode(v string) *PersonUpdateOne {
	_u.mutation.SetGenderCode(v)
	return _u
}

// SetNillableGenderCode sets the "gender_code" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableGenderCode(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetGenderCode(*v)
	}
	return _u
}

// ClearGenderCode clears the value of the "gender_code" field.
func (_u *PersonUpdateOne) ClearGenderCode() *PersonUpdateOne {
	_u.mutation.ClearGenderCode()
	return _u
}

// SetNationalityCode sets the "nationality_code" field.
func (_u *PersonUpdateOne) SetNationalityCode(v string) *PersonUpdateOne {
	_u.mutation.SetNationalityCode(v)
	return _u
}

// SetNillableNationalityCode sets the "nationality_code" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableNationalityCode(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetNationalityCode(*v)
	}
	return _u
}

// ClearNationalityCode clears the value of the "nationality_code" field.
func (_u *PersonUpdateOne) ClearNationalityCode() *PersonUpdateOne {
	_u.mutation.ClearNationalityCode()
	return _u
}

// SetGovernorateCode sets the "governorate_code" field.
func (_u *PersonUpdateOne) SetGovernorateCode(v string) *PersonUpdateOne {
	_u.mutation.SetGovernorateCode(v)
	return _u
}

// SetNillableGovernorateCode sets the "governorate_code" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableGovernorateCode(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetGovernorateCode(*v)
	}
	return _u
}

// ClearGovernorateCode clears the value of the "governorate_code" field.
func (_u *PersonUpdateOne) ClearGovernorateCode() *PersonUpdateOne {
	_u.mutation.ClearGovernorateCode()
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *PersonUpdateOne) SetPhoneNumber(v string) *PersonUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillablePhoneNumber(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *PersonUpdateOne) ClearPhoneNumber() *PersonUpdateOne {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// Mutation returns the PersonMutation object of the builder.
func (_u *PersonUpdateOne) Mutation() *PersonMutation {
	return _u.mutation
}

// Where appends a list predicates to the PersonUpdate builder.
func (_u *PersonUpdateOne) Where(ps ...predicate.Person) *PersonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonUpdateOne) Select(field string, fields ...string) *PersonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Person entity.
func (_u *PersonUpdateOne) Save(ctx context.Context) (*Person, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonUpdateOne) SaveX(ctx context.Context) *Person {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := person.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := person.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Person.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FamilyName(); ok {
		if err := person.FamilyNameValidator(v); err != nil {
			return &ValidationError{Name: "family_name", err: fmt.Errorf(`ent: validator failed for field "Person.family_name": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonUpdateOne) sqlSave(ctx context.Context) (_node *Person, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(person.Table, person.Columns, sqlgraph.NewFieldSpec(person.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Person.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, person.FieldID)
		for _, f := range fields {
			if !person.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != person.FieldID {
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
		_spec.SetField(person.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(person.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(person.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FatherName(); ok {
		_spec.SetField(person.FieldFatherName, field.TypeString, value)
	}
	if _u.mutation.FatherNameCleared() {
		_spec.ClearField(person.FieldFatherName, field.TypeString)
	}
	if value, ok := _u.mutation.FamilyName(); ok {
		_spec.SetField(person.FieldFamilyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MotherName(); ok {
		_spec.SetField(person.FieldMotherName, field.TypeString, value)
	}
	if _u.mutation.MotherNameCleared() {
		_spec.ClearField(person.FieldMotherName, field.TypeString)
	}
	if value, ok := _u.mutation.FirstNameNormalized(); ok {
		_spec.SetField(person.FieldFirstNameNormalized, field.TypeString, value)
	}
	if _u.mutation.FirstNameNormalizedCleared() {
		_spec.ClearField(person.FieldFirstNameNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.FatherNameNormalized(); ok {
		_spec.SetField(person.FieldFatherNameNormalized, field.TypeString, value)
	}
	if _u.mutation.FatherNameNormalizedCleared() {
		_spec.ClearField(person.FieldFatherNameNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.FamilyNameNormalized(); ok {
		_spec.SetField(person.FieldFamilyNameNormalized, field.TypeString, value)
	}
	if _u.mutation.FamilyNameNormalizedCleared() {
		_spec.ClearField(person.FieldFamilyNameNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.NationalID(); ok {
		_spec.SetField(person.FieldNationalID, field.TypeString, value)
	}
	if _u.mutation.NationalIDCleared() {
		_spec.ClearField(person.FieldNationalID, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(person.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(person.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.YearOfBirth(); ok {
		_spec.SetField(person.FieldYearOfBirth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearOfBirth(); ok {
		_spec.AddField(person.FieldYearOfBirth, field.TypeInt, value)
	}
	if _u.mutation.YearOfBirthCleared() {
		_spec.ClearField(person.FieldYearOfBirth, field.TypeInt)
	}
	if value, ok := _u.mutation.GenderCode(); ok {
		_spec.SetField(person.FieldGenderCode, field.TypeString, value)
	}
	if _u.mutation.GenderCodeCleared() {
		_spec.ClearField(person.FieldGenderCode, field.TypeString)
	}
	if value, ok := _u.mutation.NationalityCode(); ok {
		_spec.SetField(person.FieldNationalityCode, field.TypeString, value)
	}
	if _u.mutation.NationalityCodeCleared() {
		_spec.ClearField(person.FieldNationalityCode, field.TypeString)
	}
	if value, ok := _u.mutation.GovernorateCode(); ok {
		_spec.SetField(person.FieldGovernorateCode, field.TypeString, value)
	}
	if _u.mutation.GovernorateCodeCleared() {
		_spec.ClearField(person.FieldGovernorateCode, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(person.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(person.FieldPhoneNumber, field.TypeString)
	}
	_node = &Person{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{person.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
