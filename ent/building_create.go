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
	"uhc-registry.io/registry/ent/building"
)

// BuildingCreate is the builder for creating a Building entity.
type BuildingCreate struct {
	config
	mutation *BuildingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BuildingCreate) SetCreatedAt(v time.Time) *BuildingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BuildingCreate) SetNillableCreatedAt(v *time.Time) *BuildingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BuildingCreate) SetUpdatedAt(v time.Time) *BuildingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BuildingCreate) SetNillableUpdatedAt(v *time.Time) *BuildingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourcePackageID sets the "source_package_id" field.
func (_c *BuildingCreate) SetSourcePackageID(v uuid.UUID) *BuildingCreate {
	_c.mutation.SetSourcePackageID(v)
	return _c
}

// SetNillableSourcePackageID sets the "source_package_id" field if the given value is not nil.
func (_c *BuildingCreate) SetNillableSourcePackageID(v *uuid.UUID) *BuildingCreate {
	if v != nil {
		_c.SetSourcePackageID(*v)
	}
	return _c
}

// SetBuildingCode sets the "building_code" field.
func (_c *BuildingCreate) SetBuildingCode(v string) *BuildingCreate {
	_c.mutation.SetBuildingCode(v)
	return _c
}

// SetGovernorateCode sets the "governorate_code" field.
func (_c *BuildingCreate) SetGovernorateCode(v string) *BuildingCreate {
	_c.mutation.SetGovernorateCode(v)
	return _c
}

// SetDistrictCode sets the "district_code" field.
func (_c *BuildingCreate) SetDistrictCode(v string) *BuildingCreate {
	_c.mutation.SetDistrictCode(v)
	return _c
}

// SetSubDistrictCode sets the "sub_district_code" field.
func (_c *BuildingCreate) SetSubDistrictCode(v string) *BuildingCreate {
	_c.mutation.SetSubDistrictCode(v)
	return _c
}

// SetCommunityCode sets the "community_code" field.
func (_c *BuildingCreate) SetCommunityCode(v string) *BuildingCreate {
	_c.mutation.SetCommunityCode(v)
	return _c
}

// SetNeighborhoodCode sets the "neighborhood_code" field.
func (_c *BuildingCreate) SetNeighborhoodCode(v string) *BuildingCreate {
	_c.mutation.SetNeighborhoodCode(v)
	return _c
}

// SetBuildingNumber sets the "building_number" field.
func (_c *BuildingCreate) SetBuildingNumber(v string) *BuildingCreate {
	_c.mutation.SetBuildingNumber(v)
	return _c
}

// SetBuildingTypeCode sets the "building_type_code" field.
func (_c *BuildingCreate) SetBuildingTypeCode(v string) *BuildingCreate {
	_c.mutation.SetBuildingTypeCode(v)
	return _c
}

// SetNillableBuildingTypeCode sets the "building_type_code" field if the given value is not nil.
func (_c *BuildingCreate) SetNillableBuildingTypeCode(v *string) *BuildingCreate {
	if v != nil {
		_c.SetBuildingTypeCode(*v)
	}
	return _c
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (_c *BuildingCreate) SetOccupancyStatusCode(v string) *BuildingCreate {
	_c.mutation.SetOccupancyStatusCode(v)
	return _c
}

// SetNillableOccupancyStatusCode sets the "occupancy_status_code" field if the given value is not nil.
func (_c *BuildingCreate) SetNillableOccupancyStatusCode(v *string) *BuildingCreate {
	if v != nil {
		_c.SetOccupancyStatusCode(*v)
	}
	return _c
}

// SetNumberOfFloors sets the "number_of_floors" field.
func (_c *BuildingCreate) SetNumberOfFloors(v int) *BuildingCreate {
	_c.mutation.SetNumberOfFloors(v)
	return _c
}

// SetNillableNumberOfFloors sets the "number_of_floors" field if the given value is not nil.
func (_c *BuildingCreate) SetNillableNumberOfFloors(v *int) *BuildingCreate {
	if v != nil {
		_c.SetNumberOfFloors(*v)
	}
	return _c
}

// SetNumberOfUnits sets the "number_of_units" field.
func (_c *BuildingCreate) SetNumberOfUnits(v int) *BuildingCreate {
	_c.mutation.SetNumberOfUnits(v)
	return _c
}

// SetNillableNumberOfUnits sets the "number_of_units" field if the given value is not nil.
func (_c *BuildingCreate) SetNillableNumberOfUnits(v *int) *BuildingCreate {
	if v != nil {
		_c.SetNumberOfUnits(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *BuildingCreate) SetAddress(v string) *BuildingCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *BuildingCreate) SetNillableAddress(v *string) *BuildingCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *BuildingCreate) SetLatitude(v float64) *BuildingCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_c *BuildingCreate) SetNillableLatitude(v *float64) *BuildingCreate {
	if v != nil {
		_c.SetLatitude(*v)
	}
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *BuildingCreate) SetLongitude(v float64) *BuildingCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_c *BuildingCreate) SetNillableLongitude(v *float64) *BuildingCreate {
	if v != nil {
		_c.SetLongitude(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *BuildingCreate) SetNotes(v string) *BuildingCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *BuildingCreate) SetNillableNotes(v *string) *BuildingCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BuildingCreate) SetID(v uuid.UUID) *BuildingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BuildingMutation object of the builder.
func (_c *BuildingCreate) Mutation() *BuildingMutation {
	return _c.mutation
}

// Save creates the Building in the database.
func (_c *BuildingCreate) Save(ctx context.Context) (*Building, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BuildingCreate) SaveX(ctx context.Context) *Building {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuildingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuildingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BuildingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := building.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := building.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.NumberOfFloors(); !ok {
		v := building.DefaultNumberOfFloors
		_c.mutation.SetNumberOfFloors(v)
	}
	if _, ok := _c.mutation.NumberOfUnits(); !ok {
		v := building.DefaultNumberOfUnits
		_c.mutation.SetNumberOfUnits(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BuildingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Building.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Building.updated_at"`)}
	}
	if _, ok := _c.mutation.BuildingCode(); !ok {
		return &ValidationError{Name: "building_code", err: errors.New(`ent: missing required field "Building.building_code"`)}
	}
	if v, ok := _c.mutation.BuildingCode(); ok {
		if err := building.BuildingCodeValidator(v); err != nil {
			return &ValidationError{Name: "building_code", err: fmt.Errorf(`ent: validator failed for field "Building.building_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GovernorateCode(); !ok {
		return &ValidationError{Name: "governorate_code", err: errors.New(`ent: missing required field "Building.governorate_code"`)}
	}
	if v, ok := _c.mutation.GovernorateCode(); ok {
		if err := building.GovernorateCodeValidator(v); err != nil {
			return &ValidationError{Name: "governorate_code", err: fmt.Errorf(`ent: validator failed for field "Building.governorate_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DistrictCode(); !ok {
		return &ValidationError{Name: "district_code", err: errors.New(`ent: missing required field "Building.district_code"`)}
	}
	if v, ok := _c.mutation.DistrictCode(); ok {
		if err := building.DistrictCodeValidator(v); err != nil {
			return &ValidationError{Name: "district_code", err: fmt.Errorf(`ent: validator failed for field "Building.district_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubDistrictCode(); !ok {
		return &ValidationError{Name: "sub_district_code", err: errors.New(`ent: missing required field "Building.sub_district_code"`)}
	}
	if v, ok := _c.mutation.SubDistrictCode(); ok {
		if err := building.SubDistrictCodeValidator(v); err != nil {
			return &ValidationError{Name: "sub_district_code", err: fmt.Errorf(`ent: validator failed for field "Building.sub_district_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommunityCode(); !ok {
		return &ValidationError{Name: "community_code", err: errors.New(`ent: missing required field "Building.community_code"`)}
	}
	if v, ok := _c.mutation.CommunityCode(); ok {
		if err := building.CommunityCodeValidator(v); err != nil {
			return &ValidationError{Name: "community_code", err: fmt.Errorf(`ent: validator failed for field "Building.community_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeighborhoodCode(); !ok {
		return &ValidationError{Name: "neighborhood_code", err: errors.New(`ent: missing required field "Building.neighborhood_code"`)}
	}
	if v, ok := _c.mutation.NeighborhoodCode(); ok {
		if err := building.NeighborhoodCodeValidator(v); err != nil {
			return &ValidationError{Name: "neighborhood_code", err: fmt.Errorf(`ent: validator failed for field "Building.neighborhood_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BuildingNumber(); !ok {
		return &ValidationError{Name: "building_number", err: errors.New(`ent: missing required field "Building.building_number"`)}
	}
	if v, ok := _c.mutation.BuildingNumber(); ok {
		if err := building.BuildingNumberValidator(v); err != nil {
			return &ValidationError{Name: "building_number", err: fmt.Errorf(`ent: validator failed for field "Building.building_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumberOfFloors(); !ok {
		return &ValidationError{Name: "number_of_floors", err: errors.New(`ent: missing required field "Building.number_of_floors"`)}
	}
	if v, ok := _c.mutation.NumberOfFloors(); ok {
		if err := building.NumberOfFloorsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_floors", err: fmt.Errorf(`ent: validator failed for field "Building.number_of_floors": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumberOfUnits(); !ok {
		return &ValidationError{Name: "number_of_units", err: errors.New(`ent: missing required field "Building.number_of_units"`)}
	}
	if v, ok := _c.mutation.NumberOfUnits(); ok {
		if err := building.NumberOfUnitsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_units", err: fmt.Errorf(`ent: validator failed for field "Building.number_of_units": %w`, err)}
		}
	}
	return nil
}

func (_c *BuildingCreate) sqlSave(ctx context.Context) (*Building, error) {
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

func (_c *BuildingCreate) createSpec() (*Building, *sqlgraph.CreateSpec) {
	var (
		_node = &Building{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(building.Table, sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(building.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(building.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourcePackageID(); ok {
		_spec.SetField(building.FieldSourcePackageID, field.TypeUUID, value)
		_node.SourcePackageID = &value
	}
	if value, ok := _c.mutation.BuildingCode(); ok {
		_spec.SetField(building.FieldBuildingCode, field.TypeString, value)
		_node.BuildingCode = value
	}
	if value, ok := _c.mutation.GovernorateCode(); ok {
		_spec.SetField(building.FieldGovernorateCode, field.TypeString, value)
		_node.GovernorateCode = value
	}
	if value, ok := _c.mutation.DistrictCode(); ok {
		_spec.SetField(building.FieldDistrictCode, field.TypeString, value)
		_node.DistrictCode = value
	}
	if value, ok := _c.mutation.SubDistrictCode(); ok {
		_spec.SetField(building.FieldSubDistrictCode, field.TypeString, value)
		_node.SubDistrictCode = value
	}
	if value, ok := _c.mutation.CommunityCode(); ok {
		_spec.SetField(building.FieldCommunityCode, field.TypeString, value)
		_node.CommunityCode = value
	}
	if value, ok := _c.mutation.NeighborhoodCode(); ok {
		_spec.SetField(building.FieldNeighborhoodCode, field.TypeString, value)
		_node.NeighborhoodCode = value
	}
	if value, ok := _c.mutation.BuildingNumber(); ok {
		_spec.SetField(building.FieldBuildingNumber, field.TypeString, value)
		_node.BuildingNumber = value
	}
	if value, ok := _c.mutation.BuildingTypeCode(); ok {
		_spec.SetField(building.FieldBuildingTypeCode, field.TypeString, value)
		_node.BuildingTypeCode = value
	}
	if value, ok := _c.mutation.OccupancyStatusCode(); ok {
		_spec.SetField(building.FieldOccupancyStatusCode, field.TypeString, value)
		_node.OccupancyStatusCode = value
	}
	if value, ok := _c.mutation.NumberOfFloors(); ok {
		_spec.SetField(building.FieldNumberOfFloors, field.TypeInt, value)
		_node.NumberOfFloors = value
	}
	if value, ok := _c.mutation.NumberOfUnits(); ok {
		_spec.SetField(building.FieldNumberOfUnits, field.TypeInt, value)
		_node.NumberOfUnits = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(building.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(building.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(building.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(building.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Building.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuildingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BuildingCreate) OnConflict(opts ...sql.ConflictOption) *BuildingUpsertOne {
	_c.conflict = opts
	return &BuildingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Building.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuildingCreate) OnConflictColumns(columns ...string) *BuildingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuildingUpsertOne{
		create: _c,
	}
}

type (
	// BuildingUpsertOne is the builder for "upsert"-ing
	//  one Building node.
	BuildingUpsertOne struct {
		create *BuildingCreate
	}

	// BuildingUpsert is the "OnConflict" setter.
	BuildingUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BuildingUpsert) SetUpdatedAt(v time.Time) *BuildingUpsert {
	u.Set(building.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateUpdatedAt() *BuildingUpsert {
	u.SetExcluded(building.FieldUpdatedAt)
	return u
}

// SetBuildingCode sets the "building_code" field.
func (u *BuildingUpsert) SetBuildingCode(v string) *BuildingUpsert {
	u.Set(building.FieldBuildingCode, v)
	return u
}

// UpdateBuildingCode sets the "building_code" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateBuildingCode() *BuildingUpsert {
	u.SetExcluded(building.FieldBuildingCode)
	return u
}

// SetGovernorateCode sets the "governorate_code" field.
func (u *BuildingUpsert) SetGovernorateCode(v string) *BuildingUpsert {
	u.Set(building.FieldGovernorateCode, v)
	return u
}

// UpdateGovernorateCode sets the "governorate_code" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateGovernorateCode() *BuildingUpsert {
	u.SetExcluded(building.FieldGovernorateCode)
	return u
}

// SetDistrictCode sets the "district_code" field.
func (u *BuildingUpsert) SetDistrictCode(v string) *BuildingUpsert {
	u.Set(building.FieldDistrictCode, v)
	return u
}

// UpdateDistrictCode sets the "district_code" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateDistrictCode() *BuildingUpsert {
	u.SetExcluded(building.FieldDistrictCode)
	return u
}

// SetSubDistrictCode sets the "sub_district_code" field.
func (u *BuildingUpsert) SetSubDistrictCode(v string) *BuildingUpsert {
	u.Set(building.FieldSubDistrictCode, v)
	return u
}

// UpdateSubDistrictCode sets the "sub_district_code" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateSubDistrictCode() *BuildingUpsert {
	u.SetExcluded(building.FieldSubDistrictCode)
	return u
}

// SetCommunityCode sets the "community_code" field.
func (u *BuildingUpsert) SetCommunityCode(v string) *BuildingUpsert {
	u.Set(building.FieldCommunityCode, v)
	return u
}

// UpdateCommunityCode sets the "community_code" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateCommunityCode() *BuildingUpsert {
	u.SetExcluded(building.FieldCommunityCode)
	return u
}

// SetNeighborhoodCode sets the "neighborhood_code" field.
func (u *BuildingUpsert) SetNeighborhoodCode(v string) *BuildingUpsert {
	u.Set(building.FieldNeighborhoodCode, v)
	return u
}

// UpdateNeighborhoodCode sets the "neighborhood_code" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateNeighborhoodCode() *BuildingUpsert {
	u.SetExcluded(building.FieldNeighborhoodCode)
	return u
}

// SetBuildingNumber sets the "building_number" field.
func (u *BuildingUpsert) SetBuildingNumber(v string) *BuildingUpsert {
	u.Set(building.FieldBuildingNumber, v)
	return u
}

// UpdateBuildingNumber sets the "building_number" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateBuildingNumber() *BuildingUpsert {
	u.SetExcluded(building.FieldBuildingNumber)
	return u
}

// SetBuildingTypeCode sets the "building_type_code" field.
func (u *BuildingUpsert) SetBuildingTypeCode(v string) *BuildingUpsert {
	u.Set(building.FieldBuildingTypeCode, v)
	return u
}

// UpdateBuildingTypeCode sets the "building_type_code" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateBuildingTypeCode() *BuildingUpsert {
	u.SetExcluded(building.FieldBuildingTypeCode)
	return u
}

// ClearBuildingTypeCode clears the value of the "building_type_code" field.
func (u *BuildingUpsert) ClearBuildingTypeCode() *BuildingUpsert {
	u.SetNull(building.FieldBuildingTypeCode)
	return u
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (u *BuildingUpsert) SetOccupancyStatusCode(v string) *BuildingUpsert {
	u.Set(building.FieldOccupancyStatusCode, v)
	return u
}

// UpdateOccupancyStatusCode sets the "occupancy_status_code" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateOccupancyStatusCode() *BuildingUpsert {
	u.SetExcluded(building.FieldOccupancyStatusCode)
	return u
}

// ClearOccupancyStatusCode clears the value of the "occupancy_status_code" field.
func (u *BuildingUpsert) ClearOccupancyStatusCode() *BuildingUpsert {
	u.SetNull(building.FieldOccupancyStatusCode)
	return u
}

// SetNumberOfFloors sets the "number_of_floors" field.
func (u *BuildingUpsert) SetNumberOfFloors(v int) *BuildingUpsert {
	u.Set(building.FieldNumberOfFloors, v)
	return u
}

// UpdateNumberOfFloors sets the "number_of_floors" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateNumberOfFloors() *BuildingUpsert {
	u.SetExcluded(building.FieldNumberOfFloors)
	return u
}

// AddNumberOfFloors adds v to the "number_of_floors" field.
func (u *BuildingUpsert) AddNumberOfFloors(v int) *BuildingUpsert {
	u.Add(building.FieldNumberOfFloors, v)
	return u
}

// SetNumberOfUnits sets the "number_of_units" field.
func (u *BuildingUpsert) SetNumberOfUnits(v int) *BuildingUpsert {
	u.Set(building.FieldNumberOfUnits, v)
	return u
}

// UpdateNumberOfUnits sets the "number_of_units" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateNumberOfUnits() *BuildingUpsert {
	u.SetExcluded(building.FieldNumberOfUnits)
	return u
}

// AddNumberOfUnits adds v to the "number_of_units" field.
func (u *BuildingUpsert) AddNumberOfUnits(v int) *BuildingUpsert {
	u.Add(building.FieldNumberOfUnits, v)
	return u
}

// SetAddress sets the "address" field.
func (u *BuildingUpsert) SetAddress(v string) *BuildingUpsert {
	u.Set(building.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateAddress() *BuildingUpsert {
	u.SetExcluded(building.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *BuildingUpsert) ClearAddress() *BuildingUpsert {
	u.SetNull(building.FieldAddress)
	return u
}

// SetLatitude sets the "latitude" field.
func (u *BuildingUpsert) SetLatitude(v float64) *BuildingUpsert {
	u.Set(building.FieldLatitude, v)
	return u
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateLatitude() *BuildingUpsert {
	u.SetExcluded(building.FieldLatitude)
	return u
}

// AddLatitude adds v to the "latitude" field.
func (u *BuildingUpsert) AddLatitude(v float64) *BuildingUpsert {
	u.Add(building.FieldLatitude, v)
	return u
}

// ClearLatitude clears the value of the "latitude" field.
func (u *BuildingUpsert) ClearLatitude() *BuildingUpsert {
	u.SetNull(building.FieldLatitude)
	return u
}

// SetLongitude sets the "longitude" field.
func (u *BuildingUpsert) SetLongitude(v float64) *BuildingUpsert {
	u.Set(building.FieldLongitude, v)
	return u
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateLongitude() *BuildingUpsert {
	u.SetExcluded(building.FieldLongitude)
	return u
}

// AddLongitude adds v to the "longitude" field.
func (u *BuildingUpsert) AddLongitude(v float64) *BuildingUpsert {
	u.Add(building.FieldLongitude, v)
	return u
}

// ClearLongitude clears the value of the "longitude" field.
func (u *BuildingUpsert) ClearLongitude() *BuildingUpsert {
	u.SetNull(building.FieldLongitude)
	return u
}

// SetNotes sets the "notes" field.
func (u *BuildingUpsert) SetNotes(v string) *BuildingUpsert {
	u.Set(building.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateNotes() *BuildingUpsert {
	u.SetExcluded(building.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *BuildingUpsert) ClearNotes() *BuildingUpsert {
	u.SetNull(building.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Building.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(building.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuildingUpsertOne) UpdateNewValues() *BuildingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(building.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(building.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SourcePackageID(); exists {
			s.SetIgnore(building.FieldSourcePackageID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Building.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BuildingUpsertOne) Ignore() *BuildingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuildingUpsertOne) DoNothing() *BuildingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuildingCreate.OnConflict
// documentation for more info.
func (u *BuildingUpsertOne) Update(set func(*BuildingUpsert)) *BuildingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuildingUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BuildingUpsertOne) SetUpdatedAt(v time.Time) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateUpdatedAt() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetBuildingCode sets the "building_code" field.
func (u *BuildingUpsertOne) SetBuildingCode(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetBuildingCode(v)
	})
}

// UpdateBuildingCode sets the "building_code" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateBuildingCode() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateBuildingCode()
	})
}

// SetGovernorateCode sets the "governorate_code" field.
func (u *BuildingUpsertOne) SetGovernorateCode(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetGovernorateCode(v)
	})
}

// UpdateGovernorateCode sets the "governorate_code" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateGovernorateCode() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateGovernorateCode()
	})
}

// SetDistrictCode sets the "district_code" field.
func (u *BuildingUpsertOne) SetDistrictCode(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetDistrictCode(v)
	})
}

// UpdateDistrictCode sets the "district_code" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateDistrictCode() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateDistrictCode()
	})
}

// SetSubDistrictCode sets the "sub_district_code" field.
func (u *BuildingUpsertOne) SetSubDistrictCode(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetSubDistrictCode(v)
	})
}

// UpdateSubDistrictCode sets the "sub_district_code" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateSubDistrictCode() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateSubDistrictCode()
	})
}

// SetCommunityCode sets the "community_code" field.
func (u *BuildingUpsertOne) SetCommunityCode(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetCommunityCode(v)
	})
}

// UpdateCommunityCode sets the "community_code" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateCommunityCode() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateCommunityCode()
	})
}

// SetNeighborhoodCode sets the "neighborhood_code" field.
func (u *BuildingUpsertOne) SetNeighborhoodCode(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetNeighborhoodCode(v)
	})
}

// UpdateNeighborhoodCode sets the "neighborhood_code" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateNeighborhoodCode() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateNeighborhoodCode()
	})
}

// SetBuildingNumber sets the "building_number" field.
func (u *BuildingUpsertOne) SetBuildingNumber(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetBuildingNumber(v)
	})
}

// UpdateBuildingNumber sets the "building_number" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateBuildingNumber() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateBuildingNumber()
	})
}

// SetBuildingTypeCode sets the "building_type_code" field.
func (u *BuildingUpsertOne) SetBuildingTypeCode(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetBuildingTypeCode(v)
	})
}

// UpdateBuildingTypeCode sets the "building_type_code" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateBuildingTypeCode() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateBuildingTypeCode()
	})
}

// ClearBuildingTypeCode clears the value of the "building_type_code" field.
func (u *BuildingUpsertOne) ClearBuildingTypeCode() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearBuildingTypeCode()
	})
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (u *BuildingUpsertOne) SetOccupancyStatusCode(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetOccupancyStatusCode(v)
	})
}

// UpdateOccupancyStatusCode sets the "occupancy_status_code" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateOccupancyStatusCode() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateOccupancyStatusCode()
	})
}

// ClearOccupancyStatusCode clears the value of the "occupancy_status_code" field.
func (u *BuildingUpsertOne) ClearOccupancyStatusCode() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearOccupancyStatusCode()
	})
}

// SetNumberOfFloors sets the "number_of_floors" field.
func (u *BuildingUpsertOne) SetNumberOfFloors(v int) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetNumberOfFloors(v)
	})
}

// AddNumberOfFloors adds v to the "number_of_floors" field.
func (u *BuildingUpsertOne) AddNumberOfFloors(v int) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.AddNumberOfFloors(v)
	})
}

// UpdateNumberOfFloors sets the "number_of_floors" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateNumberOfFloors() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateNumberOfFloors()
	})
}

// SetNumberOfUnits sets the "number_of_units" field.
func (u *BuildingUpsertOne) SetNumberOfUnits(v int) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetNumberOfUnits(v)
	})
}

// AddNumberOfUnits adds v to the "number_of_units" field.
func (u *BuildingUpsertOne) AddNumberOfUnits(v int) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.AddNumberOfUnits(v)
	})
}

// UpdateNumberOfUnits sets the "number_of_units" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateNumberOfUnits() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateNumberOfUnits()
	})
}

// SetAddress sets the "address" field.
func (u *BuildingUpsertOne) SetAddress(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateAddress() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *BuildingUpsertOne) ClearAddress() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearAddress()
	})
}

// SetLatitude sets the "latitude" field.
func (u *BuildingUpsertOne) SetLatitude(v float64) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *BuildingUpsertOne) AddLatitude(v float64) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateLatitude() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateLatitude()
	})
}

// ClearLatitude clears the value of the "latitude" field.
func (u *BuildingUpsertOne) ClearLatitude() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearLatitude()
	})
}

// SetLongitude sets the "longitude" field.
func (u *BuildingUpsertOne) SetLongitude(v float64) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *BuildingUpsertOne) AddLongitude(v float64) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateLongitude() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateLongitude()
	})
}

// ClearLongitude clears the value of the "longitude" field.
func (u *BuildingUpsertOne) ClearLongitude() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearLongitude()
	})
}

// SetNotes sets the "notes" field.
func (u *BuildingUpsertOne) SetNotes(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateNotes() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *BuildingUpsertOne) ClearNotes() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *BuildingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuildingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuildingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BuildingUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BuildingUpsertOne.ID is not supported by MySQL driver. Use BuildingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BuildingUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BuildingCreateBulk is the builder for creating many Building entities in bulk.
type BuildingCreateBulk struct {
	config
	err      error
	builders []*BuildingCreate
	conflict []sql.ConflictOption
}

// Save creates the Building entities in the database.
func (_c *BuildingCreateBulk) Save(ctx context.Context) ([]*Building, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Building, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BuildingMutation)
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
func (_c *BuildingCreateBulk) SaveX(ctx context.Context) []*Building {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuildingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuildingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Building.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuildingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BuildingCreateBulk) OnConflict(opts ...sql.ConflictOption) *BuildingUpsertBulk {
	_c.conflict = opts
	return &BuildingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Building.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuildingCreateBulk) OnConflictColumns(columns ...string) *BuildingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuildingUpsertBulk{
		create: _c,
	}
}

// BuildingUpsertBulk is the builder for "upsert"-ing
// a bulk of Building nodes.
type BuildingUpsertBulk struct {
	create *BuildingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Building.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(building.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuildingUpsertBulk) UpdateNewValues() *BuildingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(building.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(building.FieldCreatedAt)
			}
			if _, exists := b.mutation.SourcePackageID(); exists {
				s.SetIgnore(building.FieldSourcePackageID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Building.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BuildingUpsertBulk) Ignore() *BuildingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuildingUpsertBulk) DoNothing() *BuildingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuildingCreateBulk.OnConflict
// documentation for more info.
func (u *BuildingUpsertBulk) Update(set func(*BuildingUpsert)) *BuildingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuildingUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BuildingUpsertBulk) SetUpdatedAt(v time.Time) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateUpdatedAt() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetBuildingCode sets the "building_code" field.
func (u *BuildingUpsertBulk) SetBuildingCode(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetBuildingCode(v)
	})
}

// UpdateBuildingCode sets the "building_code" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateBuildingCode() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateBuildingCode()
	})
}

// SetGovernorateCode sets the "governorate_code" field.
func (u *BuildingUpsertBulk) SetGovernorateCode(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetGovernorateCode(v)
	})
}

// UpdateGovernorateCode sets the "governorate_code" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateGovernorateCode() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateGovernorateCode()
	})
}

// SetDistrictCode sets the "district_code" field.
func (u *BuildingUpsertBulk) SetDistrictCode(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetDistrictCode(v)
	})
}

// UpdateDistrictCode sets the "district_code" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateDistrictCode() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateDistrictCode()
	})
}

// SetSubDistrictCode sets the "sub_district_code" field.
func (u *BuildingUpsertBulk) SetSubDistrictCode(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetSubDistrictCode(v)
	})
}

// UpdateSubDistrictCode sets the "sub_district_code" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateSubDistrictCode() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateSubDistrictCode()
	})
}

// SetCommunityCode sets the "community_code" field.
func (u *BuildingUpsertBulk) SetCommunityCode(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetCommunityCode(v)
	})
}

// UpdateCommunityCode sets the "community_code" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateCommunityCode() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateCommunityCode()
	})
}

// SetNeighborhoodCode sets the "neighborhood_code" field.
func (u *BuildingUpsertBulk) SetNeighborhoodCode(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetNeighborhoodCode(v)
	})
}

// UpdateNeighborhoodCode sets the "neighborhood_code" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateNeighborhoodCode() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateNeighborhoodCode()
	})
}

// SetBuildingNumber sets the "building_number" field.
func (u *BuildingUpsertBulk) SetBuildingNumber(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetBuildingNumber(v)
	})
}

// UpdateBuildingNumber sets the "building_number" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateBuildingNumber() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateBuildingNumber()
	})
}

// SetBuildingTypeCode sets the "building_type_code" field.
func (u *BuildingUpsertBulk) SetBuildingTypeCode(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetBuildingTypeCode(v)
	})
}

// UpdateBuildingTypeCode sets the "building_type_code" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateBuildingTypeCode() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateBuildingTypeCode()
	})
}

// ClearBuildingTypeCode clears the value of the "building_type_code" field.
func (u *BuildingUpsertBulk) ClearBuildingTypeCode() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearBuildingTypeCode()
	})
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (u *BuildingUpsertBulk) SetOccupancyStatusCode(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetOccupancyStatusCode(v)
	})
}

// UpdateOccupancyStatusCode sets the "occupancy_status_code" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateOccupancyStatusCode() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateOccupancyStatusCode()
	})
}

// ClearOccupancyStatusCode clears the value of the "occupancy_status_code" field.
func (u *BuildingUpsertBulk) ClearOccupancyStatusCode() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearOccupancyStatusCode()
	})
}

// SetNumberOfFloors sets the "number_of_floors" field.
func (u *BuildingUpsertBulk) SetNumberOfFloors(v int) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetNumberOfFloors(v)
	})
}

// AddNumberOfFloors adds v to the "number_of_floors" field.
func (u *BuildingUpsertBulk) AddNumberOfFloors(v int) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.AddNumberOfFloors(v)
	})
}

// UpdateNumberOfFloors sets the "number_of_floors" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateNumberOfFloors() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateNumberOfFloors()
	})
}

// SetNumberOfUnits sets the "number_of_units" field.
func (u *BuildingUpsertBulk) SetNumberOfUnits(v int) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetNumberOfUnits(v)
	})
}

// AddNumberOfUnits adds v to the "number_of_units" field.
func (u *BuildingUpsertBulk) AddNumberOfUnits(v int) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.AddNumberOfUnits(v)
	})
}

// UpdateNumberOfUnits sets the "number_of_units" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateNumberOfUnits() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateNumberOfUnits()
	})
}

// SetAddress sets the "address" field.
func (u *BuildingUpsertBulk) SetAddress(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateAddress() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *BuildingUpsertBulk) ClearAddress() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearAddress()
	})
}

// SetLatitude sets the "latitude" field.
func (u *BuildingUpsertBulk) SetLatitude(v float64) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *BuildingUpsertBulk) AddLatitude(v float64) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateLatitude() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateLatitude()
	})
}

// ClearLatitude clears the value of the "latitude" field.
func (u *BuildingUpsertBulk) ClearLatitude() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearLatitude()
	})
}

// SetLongitude sets the "longitude" field.
func (u *BuildingUpsertBulk) SetLongitude(v float64) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *BuildingUpsertBulk) AddLongitude(v float64) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateLongitude() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateLongitude()
	})
}

// ClearLongitude clears the value of the "longitude" field.
func (u *BuildingUpsertBulk) ClearLongitude() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearLongitude()
	})
}

// SetNotes sets the "notes" field.
func (u *BuildingUpsertBulk) SetNotes(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateNotes() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *BuildingUpsertBulk) ClearNotes() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *BuildingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BuildingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuildingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuildingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
