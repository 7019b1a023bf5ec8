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
	"uhc-registry.io/registry/ent/household"
)

// HouseholdCreate is the builder for creating a Household entity.
type HouseholdCreate struct {
	config
	mutation *HouseholdMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *HouseholdCreate) SetCreatedAt(v time.Time) *HouseholdCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableCreatedAt(v *time.Time) *HouseholdCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HouseholdCreate) SetUpdatedAt(v time.Time) *HouseholdCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableUpdatedAt(v *time.Time) *HouseholdCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourcePackageID sets the "source_package_id" field.
func (_c *HouseholdCreate) SetSourcePackageID(v uuid.UUID) *HouseholdCreate {
	_c.mutation.SetSourcePackageID(v)
	return _c
}

// SetNillableSourcePackageID sets the "source_package_id" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableSourcePackageID(v *uuid.UUID) *HouseholdCreate {
	if v != nil {
		_c.SetSourcePackageID(*v)
	}
	return _c
}

// SetHeadOfHouseholdID sets the "head_of_household_id" field.
func (_c *HouseholdCreate) SetHeadOfHouseholdID(v uuid.UUID) *HouseholdCreate {
	_c.mutation.SetHeadOfHouseholdID(v)
	return _c
}

// SetHouseholdSize sets the "household_size" field.
func (_c *HouseholdCreate) SetHouseholdSize(v int) *HouseholdCreate {
	_c.mutation.SetHouseholdSize(v)
	return _c
}

// SetMalesUnder18 sets the "males_under_18" field.
func (_c *HouseholdCreate) SetMalesUnder18(v int) *HouseholdCreate {
	_c.mutation.SetMalesUnder18(v)
	return _c
}

// SetNillableMalesUnder18 sets the "males_under_18" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableMalesUnder18(v *int) *HouseholdCreate {
	if v != nil {
		_c.SetMalesUnder18(*v)
	}
	return _c
}

// SetFemalesUnder18 sets the "females_under_18" field.
func (_c *HouseholdCreate) SetFemalesUnder18(v int) *HouseholdCreate {
	_c.mutation.SetFemalesUnder18(v)
	return _c
}

// SetNillableFemalesUnder18 sets the "females_under_18" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableFemalesUnder18(v *int) *HouseholdCreate {
	if v != nil {
		_c.SetFemalesUnder18(*v)
	}
	return _c
}

// SetMalesAdult sets the "males_adult" field.
func (_c *HouseholdCreate) SetMalesAdult(v int) *HouseholdCreate {
	_c.mutation.SetMalesAdult(v)
	return _c
}

// SetNillableMalesAdult sets the "males_adult" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableMalesAdult(v *int) *HouseholdCreate {
	if v != nil {
		_c.SetMalesAdult(*v)
	}
	return _c
}

// SetFemalesAdult sets the "females_adult" field.
func (_c *HouseholdCreate) SetFemalesAdult(v int) *HouseholdCreate {
	_c.mutation.SetFemalesAdult(v)
	return _c
}

// SetNillableFemalesAdult sets the "females_adult" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableFemalesAdult(v *int) *HouseholdCreate {
	if v != nil {
		_c.SetFemalesAdult(*v)
	}
	return _c
}

// SetResidencyStatusCode sets the "residency_status_code" field.
func (_c *HouseholdCreate) SetResidencyStatusCode(v string) *HouseholdCreate {
	_c.mutation.SetResidencyStatusCode(v)
	return _c
}

// SetNillableResidencyStatusCode sets the "residency_status_code" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableResidencyStatusCode(v *string) *HouseholdCreate {
	if v != nil {
		_c.SetResidencyStatusCode(*v)
	}
	return _c
}

// SetDisplacementOriginGovernorate sets the "displacement_origin_governorate" field.
func (_c *HouseholdCreate) SetDisplacementOriginGovernorate(v string) *HouseholdCreate {
	_c.mutation.SetDisplacementOriginGovernorate(v)
	return _c
}

// SetNillableDisplacementOriginGovernorate sets the "displacement_origin_governorate" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableDisplacementOriginGovernorate(v *string) *HouseholdCreate {
	if v != nil {
		_c.SetDisplacementOriginGovernorate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HouseholdCreate) SetID(v uuid.UUID) *HouseholdCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HouseholdMutation object of the builder.
func (_c *HouseholdCreate) Mutation() *HouseholdMutation {
	return _c.mutation
}

// Save creates the Household in the database.
func (_c *HouseholdCreate) Save(ctx context.Context) (*Household, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HouseholdCreate) SaveX(ctx context.Context) *Household {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HouseholdCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HouseholdCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HouseholdCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := household.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := household.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MalesUnder18(); !ok {
		v := household.DefaultMalesUnder18
		_c.mutation.SetMalesUnder18(v)
	}
	if _, ok := _c.mutation.FemalesUnder18(); !ok {
		v := household.DefaultFemalesUnder18
		_c.mutation.SetFemalesUnder18(v)
	}
	if _, ok := _c.mutation.MalesAdult(); !ok {
		v := household.DefaultMalesAdult
		_c.mutation.SetMalesAdult(v)
	}
	if _, ok := _c.mutation.FemalesAdult(); !ok {
		v := household.DefaultFemalesAdult
		_c.mutation.SetFemalesAdult(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HouseholdCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Household.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Household.updated_at"`)}
	}
	if _, ok := _c.mutation.HeadOfHouseholdID(); !ok {
		return &ValidationError{Name: "head_of_household_id", err: errors.New(`ent: missing required field "Household.head_of_household_id"`)}
	}
	if _, ok := _c.mutation.HouseholdSize(); !ok {
		return &ValidationError{Name: "household_size", err: errors.New(`ent: missing required field "Household.household_size"`)}
	}
	if v, ok := _c.mutation.HouseholdSize(); ok {
		if err := household.HouseholdSizeValidator(v); err != nil {
			return &ValidationError{Name: "household_size", err: fmt.Errorf(`ent: validator failed for field "Household.household_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MalesUnder18(); !ok {
		return &ValidationError{Name: "males_under_18", err: errors.New(`ent: missing required field "Household.males_under_18"`)}
	}
	if v, ok := _c.mutation.MalesUnder18(); ok {
		if err := household.MalesUnder18Validator(v); err != nil {
			return &ValidationError{Name: "males_under_18", err: fmt.Errorf(`ent: validator failed for field "Household.males_under_18": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FemalesUnder18(); !ok {
		return &ValidationError{Name: "females_under_18", err: errors.New(`ent: missing required field "Household.females_under_18"`)}
	}
	if v, ok := _c.mutation.FemalesUnder18(); ok {
		if err := household.FemalesUnder18Validator(v); err != nil {
			return &ValidationError{Name: "females_under_18", err: fmt.Errorf(`ent: validator failed for field "Household.females_under_18": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MalesAdult(); !ok {
		return &ValidationError{Name: "males_adult", err: errors.New(`ent: missing required field "Household.males_adult"`)}
	}
	if v, ok := _c.mutation.MalesAdult(); ok {
		if err := household.MalesAdultValidator(v); err != nil {
			return &ValidationError{Name: "males_adult", err: fmt.Errorf(`ent: validator failed for field "Household.males_adult": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FemalesAdult(); !ok {
		return &ValidationError{Name: "females_adult", err: errors.New(`ent: missing required field "Household.females_adult"`)}
	}
	if v, ok := _c.mutation.FemalesAdult(); ok {
		if err := household.FemalesAdultValidator(v); err != nil {
			return &ValidationError{Name: "females_adult", err: fmt.Errorf(`ent: validator failed for field "Household.females_adult": %w`, err)}
		}
	}
	return nil
}

func (_c *HouseholdCreate) sqlSave(ctx context.Context) (*Household, error) {
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

func (_c *HouseholdCreate) createSpec() (*Household, *sqlgraph.CreateSpec) {
	var (
		_node = &Household{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(household.Table, sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(household.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(household.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourcePackageID(); ok {
		_spec.SetField(household.FieldSourcePackageID, field.TypeUUID, value)
		_node.SourcePackageID = &value
	}
	if value, ok := _c.mutation.HeadOfHouseholdID(); ok {
		_spec.SetField(household.FieldHeadOfHouseholdID, field.TypeUUID, value)
		_node.HeadOfHouseholdID = value
	}
	if value, ok := _c.mutation.HouseholdSize(); ok {
		_spec.SetField(household.FieldHouseholdSize, field.TypeInt, value)
		_node.HouseholdSize = value
	}
	if value, ok := _c.mutation.MalesUnder18(); ok {
		_spec.SetField(household.FieldMalesUnder18, field.TypeInt, value)
		_node.MalesUnder18 = value
	}
	if value, ok := _c.mutation.FemalesUnder18(); ok {
		_spec.SetField(household.FieldFemalesUnder18, field.TypeInt, value)
		_node.FemalesUnder18 = value
	}
	if value, ok := _c.mutation.MalesAdult(); ok {
		_spec.SetField(household.FieldMalesAdult, field.TypeInt, value)
		_node.MalesAdult = value
	}
	if value, ok := _c.mutation.FemalesAdult(); ok {
		_spec.SetField(household.FieldFemalesAdult, field.TypeInt, value)
		_node.FemalesAdult = value
	}
	if value, ok := _c.mutation.ResidencyStatusCode(); ok {
		_spec.SetField(household.FieldResidencyStatusCode, field.TypeString, value)
		_node.ResidencyStatusCode = value
	}
	if value, ok := _c.mutation.DisplacementOriginGovernorate(); ok {
		_spec.SetField(household.FieldDisplacementOriginGovernorate, field.TypeString, value)
		_node.DisplacementOriginGovernorate = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Household.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HouseholdUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HouseholdCreate) OnConflict(opts ...sql.ConflictOption) *HouseholdUpsertOne {
	_c.conflict = opts
	return &HouseholdUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Household.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HouseholdCreate) OnConflictColumns(columns ...string) *HouseholdUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HouseholdUpsertOne{
		create: _c,
	}
}

type (
	// HouseholdUpsertOne is the builder for "upsert"-ing
	//  one Household node.
	HouseholdUpsertOne struct {
		create *HouseholdCreate
	}

	// HouseholdUpsert is the "OnConflict" setter.
	HouseholdUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *HouseholdUpsert) SetUpdatedAt(v time.Time) *HouseholdUpsert {
	u.Set(household.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HouseholdUpsert) UpdateUpdatedAt() *HouseholdUpsert {
	u.SetExcluded(household.FieldUpdatedAt)
	return u
}

// SetHeadOfHouseholdID sets the "head_of_household_id" field.
func (u *HouseholdUpsert) SetHeadOfHouseholdID(v uuid.UUID) *HouseholdUpsert {
	u.Set(household.FieldHeadOfHouseholdID, v)
	return u
}

// UpdateHeadOfHouseholdID sets the "head_of_household_id" field to the value that was provided on create.
func (u *HouseholdUpsert) UpdateHeadOfHouseholdID() *HouseholdUpsert {
	u.SetExcluded(household.FieldHeadOfHouseholdID)
	return u
}

// SetHouseholdSize sets the "household_size" field.
func (u *HouseholdUpsert) SetHouseholdSize(v int) *HouseholdUpsert {
	u.Set(household.FieldHouseholdSize, v)
	return u
}

// UpdateHouseholdSize sets the "household_size" field to the value that was provided on create.
func (u *HouseholdUpsert) UpdateHouseholdSize() *HouseholdUpsert {
	u.SetExcluded(household.FieldHouseholdSize)
	return u
}

// AddHouseholdSize adds v to the "household_size" field.
func (u *HouseholdUpsert) AddHouseholdSize(v int) *HouseholdUpsert {
	u.Add(household.FieldHouseholdSize, v)
	return u
}

// SetMalesUnder18 sets the "males_under_18" field.
func (u *HouseholdUpsert) SetMalesUnder18(v int) *HouseholdUpsert {
	u.Set(household.FieldMalesUnder18, v)
	return u
}

// UpdateMalesUnder18 sets the "males_under_18" field to the value that was provided on create.
func (u *HouseholdUpsert) UpdateMalesUnder18() *HouseholdUpsert {
	u.SetExcluded(household.FieldMalesUnder18)
	return u
}

// AddMalesUnder18 adds v to the "males_under_18" field.
func (u *HouseholdUpsert) AddMalesUnder18(v int) *HouseholdUpsert {
	u.Add(household.FieldMalesUnder18, v)
	return u
}

// SetFemalesUnder18 sets the "females_under_18" field.
func (u *HouseholdUpsert) SetFemalesUnder18(v int) *HouseholdUpsert {
	u.Set(household.FieldFemalesUnder18, v)
	return u
}

// UpdateFemalesUnder18 sets the "females_under_18" field to the value that was provided on create.
func (u *HouseholdUpsert) UpdateFemalesUnder18() *HouseholdUpsert {
	u.SetExcluded(household.FieldFemalesUnder18)
	return u
}

// AddFemalesUnder18 adds v to the "females_under_18" field.
func (u *HouseholdUpsert) AddFemalesUnder18(v int) *HouseholdUpsert {
	u.Add(household.FieldFemalesUnder18, v)
	return u
}

// SetMalesAdult sets the "males_adult" field.
func (u *HouseholdUpsert) SetMalesAdult(v int) *HouseholdUpsert {
	u.Set(household.FieldMalesAdult, v)
	return u
}

// UpdateMalesAdult sets the "males_adult" field to the value that was provided on create.
func (u *HouseholdUpsert) UpdateMalesAdult() *HouseholdUpsert {
	u.SetExcluded(household.FieldMalesAdult)
	return u
}

// AddMalesAdult adds v to the "males_adult" field.
func (u *HouseholdUpsert) AddMalesAdult(v int) *HouseholdUpsert {
	u.Add(household.FieldMalesAdult, v)
	return u
}

// SetFemalesAdult sets the "females_adult" field.
func (u *HouseholdUpsert) SetFemalesAdult(v int) *HouseholdUpsert {
	u.Set(household.FieldFemalesAdult, v)
	return u
}

// UpdateFemalesAdult sets the "females_adult" field to the value that was provided on create.
func (u *HouseholdUpsert) UpdateFemalesAdult() *HouseholdUpsert {
	u.SetExcluded(household.FieldFemalesAdult)
	return u
}

// AddFemalesAdult adds v to the "females_adult" field.
func (u *HouseholdUpsert) AddFemalesAdult(v int) *HouseholdUpsert {
	u.Add(household.FieldFemalesAdult, v)
	return u
}

// SetResidencyStatusCode sets the "residency_status_code" field.
func (u *HouseholdUpsert) SetResidencyStatusCode(v string) *HouseholdUpsert {
	u.Set(household.FieldResidencyStatusCode, v)
	return u
}

// UpdateResidencyStatusCode sets the "residency_status_code" field to the value that was provided on create.
func (u *HouseholdUpsert) UpdateResidencyStatusCode() *HouseholdUpsert {
	u.SetExcluded(household.FieldResidencyStatusCode)
	return u
}

// ClearResidencyStatusCode clears the value of the "residency_status_code" field.
func (u *HouseholdUpsert) ClearResidencyStatusCode() *HouseholdUpsert {
	u.SetNull(household.FieldResidencyStatusCode)
	return u
}

// SetDisplacementOriginGovernorate sets the "displacement_origin_governorate" field.
func (u *HouseholdUpsert) SetDisplacementOriginGovernorate(v string) *HouseholdUpsert {
	u.Set(household.FieldDisplacementOriginGovernorate, v)
	return u
}

// UpdateDisplacementOriginGovernorate sets the "displacement_origin_governorate" field to the value that was provided on create.
func (u *HouseholdUpsert) UpdateDisplacementOriginGovernorate() *HouseholdUpsert {
	u.SetExcluded(household.FieldDisplacementOriginGovernorate)
	return u
}

// ClearDisplacementOriginGovernorate clears the value of the "displacement_origin_governorate" field.
func (u *HouseholdUpsert) ClearDisplacementOriginGovernorate() *HouseholdUpsert {
	u.SetNull(household.FieldDisplacementOriginGovernorate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Household.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(household.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HouseholdUpsertOne) UpdateNewValues() *HouseholdUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(household.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(household.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SourcePackageID(); exists {
			s.SetIgnore(household.FieldSourcePackageID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Household.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HouseholdUpsertOne) Ignore() *HouseholdUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HouseholdUpsertOne) DoNothing() *HouseholdUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HouseholdCreate.OnConflict
// documentation for more info.
func (u *HouseholdUpsertOne) Update(set func(*HouseholdUpsert)) *HouseholdUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HouseholdUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HouseholdUpsertOne) SetUpdatedAt(v time.Time) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HouseholdUpsertOne) UpdateUpdatedAt() *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetHeadOfHouseholdID sets the "head_of_household_id" field.
func (u *HouseholdUpsertOne) SetHeadOfHouseholdID(v uuid.UUID) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetHeadOfHouseholdID(v)
	})
}

// UpdateHeadOfHouseholdID sets the "head_of_household_id" field to the value that was provided on create.
func (u *HouseholdUpsertOne) UpdateHeadOfHouseholdID() *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateHeadOfHouseholdID()
	})
}

// SetHouseholdSize sets the "household_size" field.
func (u *HouseholdUpsertOne) SetHouseholdSize(v int) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetHouseholdSize(v)
	})
}

// AddHouseholdSize adds v to the "household_size" field.
func (u *HouseholdUpsertOne) AddHouseholdSize(v int) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.AddHouseholdSize(v)
	})
}

// UpdateHouseholdSize sets the "household_size" field to the value that was provided on create.
func (u *HouseholdUpsertOne) UpdateHouseholdSize() *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateHouseholdSize()
	})
}

// SetMalesUnder18 sets the "males_under_18" field.
func (u *HouseholdUpsertOne) SetMalesUnder18(v int) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetMalesUnder18(v)
	})
}

// AddMalesUnder18 adds v to the "males_under_18" field.
func (u *HouseholdUpsertOne) AddMalesUnder18(v int) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.AddMalesUnder18(v)
	})
}

// UpdateMalesUnder18 sets the "males_under_18" field to the value that was provided on create.
func (u *HouseholdUpsertOne) UpdateMalesUnder18() *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateMalesUnder18()
	})
}

// SetFemalesUnder18 sets the "females_under_18" field.
func (u *HouseholdUpsertOne) SetFemalesUnder18(v int) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetFemalesUnder18(v)
	})
}

// AddFemalesUnder18 adds v to the "females_under_18" field.
func (u *HouseholdUpsertOne) AddFemalesUnder18(v int) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.AddFemalesUnder18(v)
	})
}

// UpdateFemalesUnder18 sets the "females_under_18" field to the value that was provided on create.
func (u *HouseholdUpsertOne) UpdateFemalesUnder18() *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateFemalesUnder18()
	})
}

// SetMalesAdult sets the "males_adult" field.
func (u *HouseholdUpsertOne) SetMalesAdult(v int) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetMalesAdult(v)
	})
}

// AddMalesAdult adds v to the "males_adult" field.
func (u *HouseholdUpsertOne) AddMalesAdult(v int) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.AddMalesAdult(v)
	})
}

// UpdateMalesAdult sets the "males_adult" field to the value that was provided on create.
func (u *HouseholdUpsertOne) UpdateMalesAdult() *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateMalesAdult()
	})
}

// SetFemalesAdult sets the "females_adult" field.
func (u *HouseholdUpsertOne) SetFemalesAdult(v int) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetFemalesAdult(v)
	})
}

// AddFemalesAdult adds v to the "females_adult" field.
func (u *HouseholdUpsertOne) AddFemalesAdult(v int) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.AddFemalesAdult(v)
	})
}

// UpdateFemalesAdult sets the "females_adult" field to the value that was provided on create.
func (u *HouseholdUpsertOne) UpdateFemalesAdult() *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateFemalesAdult()
	})
}

// SetResidencyStatusCode sets the "residency_status_code" field.
func (u *HouseholdUpsertOne) SetResidencyStatusCode(v string) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetResidencyStatusCode(v)
	})
}

// UpdateResidencyStatusCode sets the "residency_status_code" field to the value that was provided on create.
func (u *HouseholdUpsertOne) UpdateResidencyStatusCode() *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateResidencyStatusCode()
	})
}

// ClearResidencyStatusCode clears the value of the "residency_status_code" field.
func (u *HouseholdUpsertOne) ClearResidencyStatusCode() *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.ClearResidencyStatusCode()
	})
}

// SetDisplacementOriginGovernorate sets the "displacement_origin_governorate" field.
func (u *HouseholdUpsertOne) SetDisplacementOriginGovernorate(v string) *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetDisplacementOriginGovernorate(v)
	})
}

// UpdateDisplacementOriginGovernorate sets the "displacement_origin_governorate" field to the value that was provided on create.
func (u *HouseholdUpsertOne) UpdateDisplacementOriginGovernorate() *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateDisplacementOriginGovernorate()
	})
}

// ClearDisplacementOriginGovernorate clears the value of the "displacement_origin_governorate" field.
func (u *HouseholdUpsertOne) ClearDisplacementOriginGovernorate() *HouseholdUpsertOne {
	return u.Update(func(s *HouseholdUpsert) {
		s.ClearDisplacementOriginGovernorate()
	})
}

// Exec executes the query.
func (u *HouseholdUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HouseholdCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HouseholdUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HouseholdUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: HouseholdUpsertOne.ID is not supported by MySQL driver. Use HouseholdUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HouseholdUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HouseholdCreateBulk is the builder for creating many Household entities in bulk.
type HouseholdCreateBulk struct {
	config
	err      error
	builders []*HouseholdCreate
	conflict []sql.ConflictOption
}

// Save creates the Household entities in the database.
func (_c *HouseholdCreateBulk) Save(ctx context.Context) ([]*Household, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Household, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HouseholdMutation)
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
func (_c *HouseholdCreateBulk) SaveX(ctx context.Context) []*Household {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HouseholdCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HouseholdCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Household.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HouseholdUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HouseholdCreateBulk) OnConflict(opts ...sql.ConflictOption) *HouseholdUpsertBulk {
	_c.conflict = opts
	return &HouseholdUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Household.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HouseholdCreateBulk) OnConflictColumns(columns ...string) *HouseholdUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HouseholdUpsertBulk{
		create: _c,
	}
}

// HouseholdUpsertBulk is the builder for "upsert"-ing
// a bulk of Household nodes.
type HouseholdUpsertBulk struct {
	create *HouseholdCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Household.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(household.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HouseholdUpsertBulk) UpdateNewValues() *HouseholdUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(household.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(household.FieldCreatedAt)
			}
			if _, exists := b.mutation.SourcePackageID(); exists {
				s.SetIgnore(household.FieldSourcePackageID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Household.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HouseholdUpsertBulk) Ignore() *HouseholdUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HouseholdUpsertBulk) DoNothing() *HouseholdUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HouseholdCreateBulk.OnConflict
// documentation for more info.
func (u *HouseholdUpsertBulk) Update(set func(*HouseholdUpsert)) *HouseholdUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HouseholdUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HouseholdUpsertBulk) SetUpdatedAt(v time.Time) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HouseholdUpsertBulk) UpdateUpdatedAt() *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetHeadOfHouseholdID sets the "head_of_household_id" field.
func (u *HouseholdUpsertBulk) SetHeadOfHouseholdID(v uuid.UUID) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetHeadOfHouseholdID(v)
	})
}

// UpdateHeadOfHouseholdID sets the "head_of_household_id" field to the value that was provided on create.
func (u *HouseholdUpsertBulk) UpdateHeadOfHouseholdID() *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateHeadOfHouseholdID()
	})
}

// SetHouseholdSize sets the "household_size" field.
func (u *HouseholdUpsertBulk) SetHouseholdSize(v int) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetHouseholdSize(v)
	})
}

// AddHouseholdSize adds v to the "household_size" field.
func (u *HouseholdUpsertBulk) AddHouseholdSize(v int) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.AddHouseholdSize(v)
	})
}

// UpdateHouseholdSize sets the "household_size" field to the value that was provided on create.
func (u *HouseholdUpsertBulk) UpdateHouseholdSize() *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateHouseholdSize()
	})
}

// SetMalesUnder18 sets the "males_under_18" field.
func (u *HouseholdUpsertBulk) SetMalesUnder18(v int) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetMalesUnder18(v)
	})
}

// AddMalesUnder18 adds v to the "males_under_18" field.
func (u *HouseholdUpsertBulk) AddMalesUnder18(v int) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.AddMalesUnder18(v)
	})
}

// UpdateMalesUnder18 sets the "males_under_18" field to the value that was provided on create.
func (u *HouseholdUpsertBulk) UpdateMalesUnder18() *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateMalesUnder18()
	})
}

// SetFemalesUnder18 sets the "females_under_18" field.
func (u *HouseholdUpsertBulk) SetFemalesUnder18(v int) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetFemalesUnder18(v)
	})
}

// AddFemalesUnder18 adds v to the "females_under_18" field.
func (u *HouseholdUpsertBulk) AddFemalesUnder18(v int) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.AddFemalesUnder18(v)
	})
}

// UpdateFemalesUnder18 sets the "females_under_18" field to the value that was provided on create.
func (u *HouseholdUpsertBulk) UpdateFemalesUnder18() *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateFemalesUnder18()
	})
}

// SetMalesAdult sets the "males_adult" field.
func (u *HouseholdUpsertBulk) SetMalesAdult(v int) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetMalesAdult(v)
	})
}

// AddMalesAdult adds v to the "males_adult" field.
func (u *HouseholdUpsertBulk) AddMalesAdult(v int) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.AddMalesAdult(v)
	})
}

// UpdateMalesAdult sets the "males_adult" field to the value that was provided on create.
func (u *HouseholdUpsertBulk) UpdateMalesAdult() *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateMalesAdult()
	})
}

// SetFemalesAdult sets the "females_adult" field.
func (u *HouseholdUpsertBulk) SetFemalesAdult(v int) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetFemalesAdult(v)
	})
}

// AddFemalesAdult adds v to the "females_adult" field.
func (u *HouseholdUpsertBulk) AddFemalesAdult(v int) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.AddFemalesAdult(v)
	})
}

// UpdateFemalesAdult sets the "females_adult" field to the value that was provided on create.
func (u *HouseholdUpsertBulk) UpdateFemalesAdult() *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateFemalesAdult()
	})
}

// SetResidencyStatusCode sets the "residency_status_code" field.
func (u *HouseholdUpsertBulk) SetResidencyStatusCode(v string) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetResidencyStatusCode(v)
	})
}

// UpdateResidencyStatusCode sets the "residency_status_code" field to the value that was provided on create.
func (u *HouseholdUpsertBulk) UpdateResidencyStatusCode() *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateResidencyStatusCode()
	})
}

// ClearResidencyStatusCode clears the value of the "residency_status_code" field.
func (u *HouseholdUpsertBulk) ClearResidencyStatusCode() *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.ClearResidencyStatusCode()
	})
}

// SetDisplacementOriginGovernorate sets the "displacement_origin_governorate" field.
func (u *HouseholdUpsertBulk) SetDisplacementOriginGovernorate(v string) *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.SetDisplacementOriginGovernorate(v)
	})
}

// UpdateDisplacementOriginGovernorate sets the "displacement_origin_governorate" field to the value that was provided on create.
func (u *HouseholdUpsertBulk) UpdateDisplacementOriginGovernorate() *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.UpdateDisplacementOriginGovernorate()
	})
}

// ClearDisplacementOriginGovernorate clears the value of the "displacement_origin_governorate" field.
func (u *HouseholdUpsertBulk) ClearDisplacementOriginGovernorate() *HouseholdUpsertBulk {
	return u.Update(func(s *HouseholdUpsert) {
		s.ClearDisplacementOriginGovernorate()
	})
}

// Exec executes the query.
func (u *HouseholdUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HouseholdCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HouseholdCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HouseholdUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
