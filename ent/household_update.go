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
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/household"
	"uhc-registry.io/registry/ent/predicate"
)

// HouseholdUpdate is the builder for updating Household entities.
type HouseholdUpdate struct {
	config
	hooks    []Hook
	mutation *HouseholdMutation
}

// Where appends a list predicates to the HouseholdUpdate builder.
func (_u *HouseholdUpdate) Where(ps ...predicate.Household) *HouseholdUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HouseholdUpdate) SetUpdatedAt(v time.Time) *HouseholdUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetHeadOfHouseholdID sets the "head_of_household_id" field.
func (_u *HouseholdUpdate) SetHeadOfHouseholdID(v uuid.UUID) *HouseholdUpdate {
	_u.mutation.SetHeadOfHouseholdID(v)
	return _u
}

// SetNillableHeadOfHouseholdID sets the "head_of_household_id" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableHeadOfHouseholdID(v *uuid.UUID) *HouseholdUpdate {
	if v != nil {
		_u.SetHeadOfHouseholdID(*v)
	}
	return _u
}

// SetHouseholdSize sets the "household_size" field.
func (_u *HouseholdUpdate) SetHouseholdSize(v int) *HouseholdUpdate {
	_u.mutation.ResetHouseholdSize()
	_u.mutation.SetHouseholdSize(v)
	return _u
}

// SetNillableHouseholdSize sets the "household_size" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableHouseholdSize(v *int) *HouseholdUpdate {
	if v != nil {
		_u.SetHouseholdSize(*v)
	}
	return _u
}

// AddHouseholdSize adds value to the "household_size" field.
func (_u *HouseholdUpdate) AddHouseholdSize(v int) *HouseholdUpdate {
	_u.mutation.AddHouseholdSize(v)
	return _u
}

// SetMalesUnder18 sets the "males_under_18" field.
func (_u *HouseholdUpdate) SetMalesUnder18(v int) *HouseholdUpdate {
	_u.mutation.ResetMalesUnder18()
	_u.mutation.SetMalesUnder18(v)
	return _u
}

// SetNillableMalesUnder18 sets the "males_under_18" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableMalesUnder18(v *int) *HouseholdUpdate {
	if v != nil {
		_u.SetMalesUnder18(*v)
	}
	return _u
}

// AddMalesUnder18 adds value to the "males_under_18" field.
func (_u *HouseholdUpdate) AddMalesUnder18(v int) *HouseholdUpdate {
	_u.mutation.AddMalesUnder18(v)
	return _u
}

// SetFemalesUnder18 sets the "females_under_18" field.
func (_u *HouseholdUpdate) SetFemalesUnder18(v int) *HouseholdUpdate {
	_u.mutation.ResetFemalesUnder18()
	_u.mutation.SetFemalesUnder18(v)
	return _u
}

// SetNillableFemalesUnder18 sets the "females_under_18" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableFemalesUnder18(v *int) *HouseholdUpdate {
	if v != nil {
		_u.SetFemalesUnder18(*v)
	}
	return _u
}

// AddFemalesUnder18 adds value to the "females_under_18" field.
func (_u *HouseholdUpdate) AddFemalesUnder18(v int) *HouseholdUpdate {
	_u.mutation.AddFemalesUnder18(v)
	return _u
}

// SetMalesAdult sets the "males_adult" field.
func (_u *HouseholdUpdate) SetMalesAdult(v int) *HouseholdUpdate {
	_u.mutation.ResetMalesAdult()
	_u.mutation.SetMalesAdult(v)
	return _u
}

// SetNillableMalesAdult sets the "males_adult" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableMalesAdult(v *int) *HouseholdUpdate {
	if v != nil {
		_u.SetMalesAdult(*v)
	}
	return _u
}

// AddMalesAdult adds value to the "males_adult" field.
func (_u *HouseholdUpdate) AddMalesAdult(v int) *HouseholdUpdate {
	_u.mutation.AddMalesAdult(v)
	return _u
}

// SetFemalesAdult sets the "females_adult" field.
func (_u *HouseholdUpdate) SetFemalesAdult(v int) *HouseholdUpdate {
	_u.mutation.ResetFemalesAdult()
	_u.mutation.SetFemalesAdult(v)
	return _u
}

// SetNillableFemalesAdult sets the "females_adult" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableFemalesAdult(v *int) *HouseholdUpdate {
	if v != nil {
		_u.SetFemalesAdult(*v)
	}
	return _u
}

// AddFemalesAdult adds value to the "females_adult" field.
func (_u *HouseholdUpdate) AddFemalesAdult(v int) *HouseholdUpdate {
	_u.mutation.AddFemalesAdult(v)
	return _u
}

// SetResidencyStatusCode sets the "residency_status_code" field.
func (_u *HouseholdUpdate) SetResidencyStatusCode(v string) *HouseholdUpdate {
	_u.mutation.SetResidencyStatusCode(v)
	return _u
}

// SetNillableResidencyStatusCode sets the "residency_status_code" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableResidencyStatusCode(v *string) *HouseholdUpdate {
	if v != nil {
		_u.SetResidencyStatusCode(*v)
	}
	return _u
}

// ClearResidencyStatusCode clears the value of the "residency_status_code" field.
func (_u *HouseholdUpdate) ClearResidencyStatusCode() *HouseholdUpdate {
	_u.mutation.ClearResidencyStatusCode()
	return _u
}

// SetDisplacementOriginGovernorate sets the "displacement_origin_governorate" field.
func (_u *HouseholdUpdate) SetDisplacementOriginGovernorate(v string) *HouseholdUpdate {
	_u.mutation.SetDisplacementOriginGovernorate(v)
	return _u
}

// SetNillableDisplacementOriginGovernorate sets the "displacement_origin_governorate" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableDisplacementOriginGovernorate(v *string) *HouseholdUpdate {
	if v != nil {
		_u.SetDisplacementOriginGovernorate(*v)
	}
	return _u
}

// ClearDisplacementOriginGovernorate clears the value of the "displacement_origin_governorate" field.
func (_u *HouseholdUpdate) ClearDisplacementOriginGovernorate() *HouseholdUpdate {
	_u.mutation.ClearDisplacementOriginGovernorate()
	return _u
}

// Mutation returns the HouseholdMutation object of the builder.
func (_u *HouseholdUpdate) Mutation() *HouseholdMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HouseholdUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HouseholdUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HouseholdUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HouseholdUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HouseholdUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := household.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HouseholdUpdate) check() error {
	if v, ok := _u.mutation.HouseholdSize(); ok {
		if err := household.HouseholdSizeValidator(v); err != nil {
			return &ValidationError{Name: "household_size", err: fmt.Errorf(`ent: validator failed for field "Household.household_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MalesUnder18(); ok {
		if err := household.MalesUnder18Validator(v); err != nil {
			return &ValidationError{Name: "males_under_18", err: fmt.Errorf(`ent: validator failed for field "Household.males_under_18": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FemalesUnder18(); ok {
		if err := household.FemalesUnder18Validator(v); err != nil {
			return &ValidationError{Name: "females_under_18", err: fmt.Errorf(`ent: validator failed for field "Household.females_under_18": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MalesAdult(); ok {
		if err := household.MalesAdultValidator(v); err != nil {
			return &ValidationError{Name: "males_adult", err: fmt.Errorf(`ent: validator failed for field "Household.males_adult": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FemalesAdult(); ok {
		if err := household.FemalesAdultValidator(v); err != nil {
			return &ValidationError{Name: "females_adult", err: fmt.Errorf(`ent: validator failed for field "Household.females_adult": %w`, err)}
		}
	}
	return nil
}

func (_u *HouseholdUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(household.Table, household.Columns, sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(household.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(household.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.HeadOfHouseholdID(); ok {
		_spec.SetField(household.FieldHeadOfHouseholdID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.HouseholdSize(); ok {
		_spec.SetField(household.FieldHouseholdSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHouseholdSize(); ok {
		_spec.AddField(household.FieldHouseholdSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MalesUnder18(); ok {
		_spec.SetField(household.FieldMalesUnder18, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMalesUnder18(); ok {
		_spec.AddField(household.FieldMalesUnder18, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FemalesUnder18(); ok {
		_spec.SetField(household.FieldFemalesUnder18, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFemalesUnder18(); ok {
		_spec.AddField(household.FieldFemalesUnder18, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MalesAdult(); ok {
		_spec.SetField(household.FieldMalesAdult, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMalesAdult(); ok {
		_spec.AddField(household.FieldMalesAdult, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FemalesAdult(); ok {
		_spec.SetField(household.FieldFemalesAdult, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFemalesAdult(); ok {
		_spec.AddField(household.FieldFemalesAdult, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResidencyStatusCode(); ok {
		_spec.SetField(household.FieldResidencyStatusCode, field.TypeString, value)
	}
	if _u.mutation.ResidencyStatusCodeCleared() {
		_spec.ClearField(household.FieldResidencyStatusCode, field.TypeString)
	}
	if value, ok := _u.mutation.DisplacementOriginGovernorate(); ok {
		_spec.SetField(household.FieldDisplacementOriginGovernorate, field.TypeString, value)
	}
	if _u.mutation.DisplacementOriginGovernorateCleared() {
		_spec.ClearField(household.FieldDisplacementOriginGovernorate, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{household.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HouseholdUpdateOne is the builder for updating a single Household entity.
type HouseholdUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HouseholdMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HouseholdUpdateOne) SetUpdatedAt(v time.Time) *HouseholdUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetHeadOfHouseholdID sets the "head_of_household_id" field.
func (_u *HouseholdUpdateOne) SetHeadOfHouseholdID(v uuid.UUID) *HouseholdUpdateOne {
	_u.mutation.SetHeadOfHouseholdID(v)
	return _u
}

// SetNillableHeadOfHouseholdID sets the "head_of_household_id" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableHeadOfHouseholdID(v *uuid.UUID) *HouseholdUpdateOne {
	if v != nil {
		_u.SetHeadOfHouseholdID(*v)
	}
	return _u
}

// SetHouseholdSize sets the "household_size" field.
func (_u *HouseholdUpdateOne) SetHouseholdSize(v int) *HouseholdUpdateOne {
	_u.mutation.ResetHouseholdSize()
	_u.mutation.SetHouseholdSize(v)
	return _u
}

// SetNillableHouseholdSize sets the "household_size" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableHouseholdSize(v *int) *HouseholdUpdateOne {
	if v != nil {
		_u.SetHouseholdSize(*v)
	}
	return _u
}

// AddHouseholdSize adds value to the "household_size" field.
func (_u *HouseholdUpdateOne) AddHouseholdSize(v int) *HouseholdUpdateOne {
	_u.mutation.AddHouseholdSize(v)
	return _u
}

// SetMalesUnder18 sets the "males_under_18" field.
func (_u *HouseholdUpdateOne) SetMalesUnder18(v int) *HouseholdUpdateOne {
	_u.mutation.ResetMalesUnder18()
	_u.mutation.SetMalesUnder18(v)
	return _u
}

// SetNillableMalesUnder18 sets the "males_under_18" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableMalesUnder18(v *int) *HouseholdUpdateOne {
	if v != nil {
		_u.SetMalesUnder18(*v)
	}
	return _u
}

// AddMalesUnder18 adds value to the "males_under_18" field.
func (_u *HouseholdUpdateOne) AddMalesUnder18(v int) *HouseholdUpdateOne {
	_u.mutation.AddMalesUnder18(v)
	return _u
}

// SetFemalesUnder18 sets the "females_under_18" field.
func (_u *HouseholdUpdateOne) SetFemalesUnder18(v int) *HouseholdUpdateOne {
	_u.mutation.ResetFemalesUnder18()
	_u.mutation.SetFemalesUnder18(v)
	return _u
}

// SetNillableFemalesUnder18 sets the "females_under_18" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableFemalesUnder18(v *int) *HouseholdUpdateOne {
	if v != nil {
		_u.SetFemalesUnder18(*v)
	}
	return _u
}

// AddFemalesUnder18 adds value to the "females_under_18" field.
func (_u *HouseholdUpdateOne) AddFemalesUnder18(v int) *HouseholdUpdateOne {
	_u.mutation.AddFemalesUnder18(v)
	return _u
}

// SetMalesAdult sets the "males_adult" field.
func (_u *HouseholdUpdateOne) SetMalesAdult(v int) *HouseholdUpdateOne {
	_u.mutation.ResetMalesAdult()
	_u.mutation.SetMalesAdult(v)
	return _u
}

// SetNillableMalesAdult sets the "males_adult" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableMalesAdult(v *int) *HouseholdUpdateOne {
	if v != nil {
		_u.SetMalesAdult(*v)
	}
	return _u
}

// AddMalesAdult adds value to the "males_adult" field.
func (_u *HouseholdUpdateOne) AddMalesAdult(v int) *HouseholdUpdateOne {
	_u.mutation.AddMalesAdult(v)
	return _u
}

// SetFemalesAdult sets the "females_adult" field.
func (_u *HouseholdUpdateOne) SetFemalesAdult(v int) *HouseholdUpdateOne {
	_u.mutation.ResetFemalesAdult()
	_u.mutation.SetFemalesAdult(v)
	return _u
}

// SetNillableFemalesAdult sets the "females_adult" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableFemalesAdult(v *int) *HouseholdUpdateOne {
	if v != nil {
		_u.SetFemalesAdult(*v)
	}
	return _u
}

// AddFemalesAdult adds value to the "females_adult" field.
func (_u *HouseholdUpdateOne) AddFemalesAdult(v int) *HouseholdUpdateOne {
	_u.mutation.AddFemalesAdult(v)
	return _u
}

// SetResidencyStatusCode sets the "residency_status_code" field.
func (_u *HouseholdUpdateOne) SetResidencyStatusCode(v string) *HouseholdUpdateOne {
	_u.mutation.SetResidencyStatusCode(v)
	return _u
}

// SetNillableResidencyStatusCode sets the "residency_status_code" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableResidencyStatusCode(v *string) *HouseholdUpdateOne {
	if v != nil {
		_u.SetResidencyStatusCode(*v)
	}
	return _u
}

// ClearResidencyStatusCode clears the value of the "residency_status_code" field.
func (_u *HouseholdUpdateOne) ClearResidencyStatusCode() *HouseholdUpdateOne {
	_u.mutation.ClearResidencyStatusCode()
	return _u
}

// SetDisplacementOriginGovernorate sets the "displacement_origin_governorate" field.
func (_u *HouseholdUpdateOne) SetDisplacementOriginGovernorate(v string) *HouseholdUpdateOne {
	_u.mutation.SetDisplacementOriginGovernorate(v)
	return _u
}

// SetNillableDisplacementOriginGovernorate sets the "displacement_origin_governorate" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableDisplacementOriginGovernorate(v *string) *HouseholdUpdateOne {
	if v != nil {
		_u.SetDisplacementOriginGovernorate(*v)
	}
	return _u
}

// ClearDisplacementOriginGovernorate clears the value of the "displacement_origin_governorate" field.
func (_u *HouseholdUpdateOne) ClearDisplacementOriginGovernorate() *HouseholdUpdateOne {
	_u.mutation.ClearDisplacementOriginGovernorate()
	return _u
}

// Mutation returns the HouseholdMutation object of the builder.
func (_u *HouseholdUpdateOne) Mutation() *HouseholdMutation {
	return _u.mutation
}

// Where appends a list predicates to the HouseholdUpdate builder.
func (_u *HouseholdUpdateOne) Where(ps ...predicate.Household) *HouseholdUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HouseholdUpdateOne) Select(field string, fields ...string) *HouseholdUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Household entity.
func (_u *HouseholdUpdateOne) Save(ctx context.Context) (*Household, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HouseholdUpdateOne) SaveX(ctx context.Context) *Household {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HouseholdUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HouseholdUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HouseholdUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := household.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HouseholdUpdateOne) check() error {
	if v, ok := _u.mutation.HouseholdSize(); ok {
		if err := household.HouseholdSizeValidator(v); err != nil {
			return &ValidationError{Name: "household_size", err: fmt.Errorf(`ent: validator failed for field "Household.household_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MalesUnder18(); ok {
		if err := household.MalesUnder18Validator(v); err != nil {
			return &ValidationError{Name: "males_under_18", err: fmt.Errorf(`ent: validator failed for field "Household.males_under_18": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FemalesUnder18(); ok {
		if err := household.FemalesUnder18Validator(v); err != nil {
			return &ValidationError{Name: "females_under_18", err: fmt.Errorf(`ent: validator failed for field "Household.females_under_18": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MalesAdult(); ok {
		if err := household.MalesAdultValidator(v); err != nil {
			return &ValidationError{Name: "males_adult", err: fmt.Errorf(`ent: validator failed for field "Household.males_adult": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FemalesAdult(); ok {
		if err := household.FemalesAdultValidator(v); err != nil {
			return &ValidationError{Name: "females_adult", err: fmt.Errorf(`ent: validator failed for field "Household.females_adult": %w`, err)}
		}
	}
	return nil
}

func (_u *HouseholdUpdateOne) sqlSave(ctx context.Context) (_node *Household, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(household.Table, household.Columns, sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Household.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, household.FieldID)
		for _, f := range fields {
			if !household.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != household.FieldID {
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
		_spec.SetField(household.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(household.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.HeadOfHouseholdID(); ok {
		_spec.SetField(household.FieldHeadOfHouseholdID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.HouseholdSize(); ok {
		_spec.SetField(household.FieldHouseholdSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHouseholdSize(); ok {
		_spec.AddField(household.FieldHouseholdSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MalesUnder18(); ok {
		_spec.SetField(household.FieldMalesUnder18, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMalesUnder18(); ok {
		_spec.AddField(household.FieldMalesUnder18, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FemalesUnder18(); ok {
		_spec.SetField(household.FieldFemalesUnder18, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFemalesUnder18(); ok {
		_spec.AddField(household.FieldFemalesUnder18, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MalesAdult(); ok {
		_spec.SetField(household.FieldMalesAdult, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMalesAdult(); ok {
		_spec.AddField(household.FieldMalesAdult, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FemalesAdult(); ok {
		_spec.SetField(household.FieldFemalesAdult, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFemalesAdult(); ok {
		_spec.AddField(household.FieldFemalesAdult, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResidencyStatusCode(); ok {
		_spec.SetField(household.FieldResidencyStatusCode, field.TypeString, value)
	}
	if _u.mutation.ResidencyStatusCodeCleared() {
		_spec.ClearField(household.FieldResidencyStatusCode, field.TypeString)
	}
	if value, ok := _u.mutation.DisplacementOriginGovernorate(); ok {
		_spec.SetField(household.FieldDisplacementOriginGovernorate, field.TypeString, value)
	}
	if _u.mutation.DisplacementOriginGovernorateCleared() {
		_spec.ClearField(household.FieldDisplacementOriginGovernorate, field.TypeString)
	}
	_node = &Household{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{household.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
