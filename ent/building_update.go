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
	"uhc-registry.io/registry/ent/building"
	"uhc-registry.io/registry/ent/predicate"
)

// BuildingUpdate is the builder for updating Building entities.
type BuildingUpdate struct {
	config
	hooks    []Hook
	mutation *BuildingMutation
}

// Where appends a list predicates to the BuildingUpdate builder.
func (_u *BuildingUpdate) Where(ps ...predicate.Building) *BuildingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BuildingUpdate) SetUpdatedAt(v time.Time) *BuildingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBuildingCode sets the "building_code" field.
func (_u *BuildingUpdate) SetBuildingCode(v string) *BuildingUpdate {
	_u.mutation.SetBuildingCode(v)
	return _u
}

// SetNillableBuildingCode sets the "building_code" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableBuildingCode(v *string) *BuildingUpdate {
	if v != nil {
		_u.SetBuildingCode(*v)
	}
	return _u
}

// SetGovernorateCode sets the "governorate_code" field.
func (_u *BuildingUpdate) SetGovernorateCode(v string) *BuildingUpdate {
	_u.mutation.SetGovernorateCode(v)
	return _u
}

// SetNillableGovernorateCode sets the "governorate_code" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableGovernorateCode(v *string) *BuildingUpdate {
	if v != nil {
		_u.SetGovernorateCode(*v)
	}
	return _u
}

// SetDistrictCode sets the "district_code" field.
func (_u *BuildingUpdate) SetDistrictCode(v string) *BuildingUpdate {
	_u.mutation.SetDistrictCode(v)
	return _u
}

// SetNillableDistrictCode sets the "district_code" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableDistrictCode(v *string) *BuildingUpdate {
	if v != nil {
		_u.SetDistrictCode(*v)
	}
	return _u
}

// SetSubDistrictCode sets the "sub_district_code" field.
func (_u *BuildingUpdate) SetSubDistrictCode(v string) *BuildingUpdate {
	_u.mutation.SetSubDistrictCode(v)
	return _u
}

// SetNillableSubDistrictCode sets the "sub_district_code" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableSubDistrictCode(v *string) *BuildingUpdate {
	if v != nil {
		_u.SetSubDistrictCode(*v)
	}
	return _u
}

// SetCommunityCode sets the "community_code" field.
func (_u *BuildingUpdate) SetCommunityCode(v string) *BuildingUpdate {
	_u.mutation.SetCommunityCode(v)
	return _u
}

// SetNillableCommunityCode sets the "community_code" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableCommunityCode(v *string) *BuildingUpdate {
	if v != nil {
		_u.SetCommunityCode(*v)
	}
	return _u
}

// SetNeighborhoodCode sets the "neighborhood_code" field.
func (_u *BuildingUpdate) SetNeighborhoodCode(v string) *BuildingUpdate {
	_u.mutation.SetNeighborhoodCode(v)
	return _u
}

// SetNillableNeighborhoodCode sets the "neighborhood_code" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableNeighborhoodCode(v *string) *BuildingUpdate {
	if v != nil {
		_u.SetNeighborhoodCode(*v)
	}
	return _u
}

// SetBuildingNumber sets the "building_number" field.
func (_u *BuildingUpdate) SetBuildingNumber(v string) *BuildingUpdate {
	_u.mutation.SetBuildingNumber(v)
	return _u
}

// SetNillableBuildingNumber sets the "building_number" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableBuildingNumber(v *string) *BuildingUpdate {
	if v != nil {
		_u.SetBuildingNumber(*v)
	}
	return _u
}

// SetBuildingTypeCode sets the "building_type_code" field.
func (_u *BuildingUpdate) SetBuildingTypeCode(v string) *BuildingUpdate {
	_u.mutation.SetBuildingTypeCode(v)
	return _u
}

// SetNillableBuildingTypeCode sets the "building_type_code" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableBuildingTypeCode(v *string) *BuildingUpdate {
	if v != nil {
		_u.SetBuildingTypeCode(*v)
	}
	return _u
}

// ClearBuildingTypeCode clears the value of the "building_type_code" field.
func (_u *BuildingUpdate) ClearBuildingTypeCode() *BuildingUpdate {
	_u.mutation.ClearBuildingTypeCode()
	return _u
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (_u *BuildingUpdate) SetOccupancyStatusCode(v string) *BuildingUpdate {
	_u.mutation.SetOccupancyStatusCode(v)
	return _u
}

// SetNillableOccupancyStatusCode sets the "occupancy_status_code" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableOccupancyStatusCode(v *string) *BuildingUpdate {
	if v != nil {
		_u.SetOccupancyStatusCode(*v)
	}
	return _u
}

// ClearOccupancyStatusCode clears the value of the "occupancy_status_code" field.
func (_u *BuildingUpdate) ClearOccupancyStatusCode() *BuildingUpdate {
	_u.mutation.ClearOccupancyStatusCode()
	return _u
}

// SetNumberOfFloors sets the "number_of_floors" field.
func (_u *BuildingUpdate) SetNumberOfFloors(v int) *BuildingUpdate {
	_u.mutation.ResetNumberOfFloors()
	_u.mutation.SetNumberOfFloors(v)
	return _u
}

// SetNillableNumberOfFloors sets the "number_of_floors" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableNumberOfFloors(v *int) *BuildingUpdate {
	if v != nil {
		_u.SetNumberOfFloors(*v)
	}
	return _u
}

// AddNumberOfFloors adds value to the "number_of_floors" field.
func (_u *BuildingUpdate) AddNumberOfFloors(v int) *BuildingUpdate {
	_u.mutation.AddNumberOfFloors(v)
	return _u
}

// SetNumberOfUnits sets the "number_of_units" field.
func (_u *BuildingUpdate) SetNumberOfUnits(v int) *BuildingUpdate {
	_u.mutation.ResetNumberOfUnits()
	_u.mutation.SetNumberOfUnits(v)
	return _u
}

// SetNillableNumberOfUnits sets the "number_of_units" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableNumberOfUnits(v *int) *BuildingUpdate {
	if v != nil {
		_u.SetNumberOfUnits(*v)
	}
	return _u
}

// AddNumberOfUnits adds value to the "number_of_units" field.
func (_u *BuildingUpdate) AddNumberOfUnits(v int) *BuildingUpdate {
	_u.mutation.AddNumberOfUnits(v)
	return _u
}

// SetAddress sets the "address" field.
func (_u *BuildingUpdate) SetAddress(v string) *BuildingUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableAddress(v *string) *BuildingUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *BuildingUpdate) ClearAddress() *BuildingUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *BuildingUpdate) SetLatitude(v float64) *BuildingUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableLatitude(v *float64) *BuildingUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *BuildingUpdate) AddLatitude(v float64) *BuildingUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *BuildingUpdate) ClearLatitude() *BuildingUpdate {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *BuildingUpdate) SetLongitude(v float64) *BuildingUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableLongitude(v *float64) *BuildingUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *BuildingUpdate) AddLongitude(v float64) *BuildingUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *BuildingUpdate) ClearLongitude() *BuildingUpdate {
	_u.mutation.ClearLongitude()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BuildingUpdate) SetNotes(v string) *BuildingUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BuildingUpdate) SetNillableNotes(v *string) *BuildingUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BuildingUpdate) ClearNotes() *BuildingUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the BuildingMutation object of the builder.
func (_u *BuildingUpdate) Mutation() *BuildingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BuildingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuildingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BuildingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuildingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BuildingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := building.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuildingUpdate) check() error {
	if v, ok := _u.mutation.BuildingCode(); ok {
		if err := building.BuildingCodeValidator(v); err != nil {
			return &ValidationError{Name: "building_code", err: fmt.Errorf(`ent: validator failed for field "Building.building_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GovernorateCode(); ok {
		if err := building.GovernorateCodeValidator(v); err != nil {
			return &ValidationError{Name: "governorate_code", err: fmt.Errorf(`ent: validator failed for field "Building.governorate_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DistrictCode(); ok {
		if err := building.DistrictCodeValidator(v); err != nil {
			return &ValidationError{Name: "district_code", err: fmt.Errorf(`ent: validator failed for field "Building.district_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubDistrictCode(); ok {
		if err := building.SubDistrictCodeValidator(v); err != nil {
			return &ValidationError{Name: "sub_district_code", err: fmt.Errorf(`ent: validator failed for field "Building.sub_district_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommunityCode(); ok {
		if err := building.CommunityCodeValidator(v); err != nil {
			return &ValidationError{Name: "community_code", err: fmt.Errorf(`ent: validator failed for field "Building.community_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NeighborhoodCode(); ok {
		if err := building.NeighborhoodCodeValidator(v); err != nil {
			return &ValidationError{Name: "neighborhood_code", err: fmt.Errorf(`ent: validator failed for field "Building.neighborhood_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BuildingNumber(); ok {
		if err := building.BuildingNumberValidator(v); err != nil {
			return &ValidationError{Name: "building_number", err: fmt.Errorf(`ent: validator failed for field "Building.building_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumberOfFloors(); ok {
		if err := building.NumberOfFloorsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_floors", err: fmt.Errorf(`ent: validator failed for field "Building.number_of_floors": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumberOfUnits(); ok {
		if err := building.NumberOfUnitsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_units", err: fmt.Errorf(`ent: validator failed for field "Building.number_of_units": %w`, err)}
		}
	}
	return nil
}

func (_u *BuildingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(building.Table, building.Columns, sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(building.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(building.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.BuildingCode(); ok {
		_spec.SetField(building.FieldBuildingCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.GovernorateCode(); ok {
		_spec.SetField(building.FieldGovernorateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DistrictCode(); ok {
		_spec.SetField(building.FieldDistrictCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubDistrictCode(); ok {
		_spec.SetField(building.FieldSubDistrictCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommunityCode(); ok {
		_spec.SetField(building.FieldCommunityCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeighborhoodCode(); ok {
		_spec.SetField(building.FieldNeighborhoodCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.BuildingNumber(); ok {
		_spec.SetField(building.FieldBuildingNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.BuildingTypeCode(); ok {
		_spec.SetField(building.FieldBuildingTypeCode, field.TypeString, value)
	}
	if _u.mutation.BuildingTypeCodeCleared() {
		_spec.ClearField(building.FieldBuildingTypeCode, field.TypeString)
	}
	if value, ok := _u.mutation.OccupancyStatusCode(); ok {
		_spec.SetField(building.FieldOccupancyStatusCode, field.TypeString, value)
	}
	if _u.mutation.OccupancyStatusCodeCleared() {
		_spec.ClearField(building.FieldOccupancyStatusCode, field.TypeString)
	}
	if value, ok := _u.mutation.NumberOfFloors(); ok {
		_spec.SetField(building.FieldNumberOfFloors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfFloors(); ok {
		_spec.AddField(building.FieldNumberOfFloors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumberOfUnits(); ok {
		_spec.SetField(building.FieldNumberOfUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfUnits(); ok {
		_spec.AddField(building.FieldNumberOfUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(building.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(building.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(building.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(building.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(building.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(building.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(building.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(building.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(building.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(building.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{building.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BuildingUpdateOne is the builder for updating a single Building entity.
type BuildingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BuildingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BuildingUpdateOne) SetUpdatedAt(v time.Time) *BuildingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBuildingCode sets the "building_code" field.
func (_u *BuildingUpdateOne) SetBuildingCode(v string) *BuildingUpdateOne {
	_u.mutation.SetBuildingCode(v)
	return _u
}

// SetNillableBuildingCode sets the "building_code" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableBuildingCode(v *string) *BuildingUpdateOne {
	if v != nil {
		_u.SetBuildingCode(*v)
	}
	return _u
}

// SetGovernorateCode sets the "governorate_code" field.
func (_u *BuildingUpdateOne) SetGovernorateCode(v string) *BuildingUpdateOne {
	_u.mutation.SetGovernorateCode(v)
	return _u
}

// SetNillableGovernorateCode sets the "governorate_code" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableGovernorateCode(v *string) *BuildingUpdateOne {
	if v != nil {
		_u.SetGovernorateCode(*v)
	}
	return _u
}

// SetDistrictCode sets the "district_code" field.
func (_u *BuildingUpdateOne) SetDistrictCode(v string) *BuildingUpdateOne {
	_u.mutation.SetDistrictCode(v)
	return _u
}

// SetNillableDistrictCode sets the "district_code" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableDistrictCode(v *string) *BuildingUpdateOne {
	if v != nil {
		_u.SetDistrictCode(*v)
	}
	return _u
}

// SetSubDistrictCode sets the "sub_district_code" field.
func (_u *BuildingUpdateOne) SetSubDistrictCode(v string) *BuildingUpdateOne {
	_u.mutation.SetSubDistrictCode(v)
	return _u
}

// SetNillableSubDistrictCode sets the "sub_district_code" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableSubDistrictCode(v *string) *BuildingUpdateOne {
	if v != nil {
		_u.SetSubDistrictCode(*v)
	}
	return _u
}

// SetCommunityCode sets the "community_code" field.
func (_u *BuildingUpdateOne) SetCommunityCode(v string) *BuildingUpdateOne {
	_u.mutation.SetCommunityCode(v)
	return _u
}

// SetNillableCommunityCode sets the "community_code" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableCommunityCode(v *string) *BuildingUpdateOne {
	if v != nil {
		_u.SetCommunityCode(*v)
	}
	return _u
}

// SetNeighborhoodCode sets the "neighborhood_code" field.
func (_u *BuildingUpdateOne) SetNeighborhoodCode(v string) *BuildingUpdateOne {
	_u.mutation.SetNeighborhoodCode(v)
	return _u
}

// SetNillableNeighborhoodCode sets the "neighborhood_code" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableNeighborhoodCode(v *string) *BuildingUpdateOne {
	if v != nil {
		_u.SetNeighborhoodCode(*v)
	}
	return _u
}

// SetBuildingNumber sets the "building_number" field.
func (_u *BuildingUpdateOne) SetBuildingNumber(v string) *BuildingUpdateOne {
	_u.mutation.SetBuildingNumber(v)
	return _u
}

// SetNillableBuildingNumber sets the "building_number" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableBuildingNumber(v *string) *BuildingUpdateOne {
	if v != nil {
		_u.SetBuildingNumber(*v)
	}
	return _u
}

// SetBuildingTypeCode sets the "building_type_code" field.
func (_u *BuildingUpdateOne) SetBuildingTypeCode(v string) *BuildingUpdateOne {
	_u.mutation.SetBuildingTypeCode(v)
	return _u
}

// SetNillableBuildingTypeCode sets the "building_type_code" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableBuildingTypeCode(v *string) *BuildingUpdateOne {
	if v != nil {
		_u.SetBuildingTypeCode(*v)
	}
	return _u
}

// ClearBuildingTypeCode clears the value of the "building_type_code" field.
func (_u *BuildingUpdateOne) ClearBuildingTypeCode() *BuildingUpdateOne {
	_u.mutation.ClearBuildingTypeCode()
	return _u
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (_u *BuildingUpdateOne) SetOccupancyStatusCode(v string) *BuildingUpdateOne {
	_u.mutation.SetOccupancyStatusCode(v)
	return _u
}

// SetNillableOccupancyStatusCode sets the "occupancy_status_code" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableOccupancyStatusCode(v *string) *BuildingUpdateOne {
	if v != nil {
		_u.SetOccupancyStatusCode(*v)
	}
	return _u
}

// ClearOccupancyStatusCode clears the value of the "occupancy_status_code" field.
func (_u *BuildingUpdateOne) ClearOccupancyStatusCode() *BuildingUpdateOne {
	_u.mutation.ClearOccupancyStatusCode()
	return _u
}

// SetNumberOfFloors sets the "number_of_floors" field.
func (_u *BuildingUpdateOne) SetNumberOfFloors(v int) *BuildingUpdateOne {
	_u.mutation.ResetNumberOfFloors()
	_u.mutation.SetNumberOfFloors(v)
	return _u
}

// SetNillableNumberOfFloors sets the "number_of_floors" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableNumberOfFloors(v *int) *BuildingUpdateOne {
	if v != nil {
		_u.SetNumberOfFloors(*v)
	}
	return _u
}

// AddNumberOfFloors adds value to the "number_of_floors" field.
func (_u *BuildingUpdateOne) AddNumberOfFloors(v int) *BuildingUpdateOne {
	_u.mutation.AddNumberOfFloors(v)
	return _u
}

// SetNumberOfUnits sets the "number_of_units" field.
func (_u *BuildingUpdateOne) SetNumberOfUnits(v int) *BuildingUpdateOne {
	_u.mutation.ResetNumberOfUnits()
	_u.mutation.SetNumberOfUnits(v)
	return _u
}

// SetNillableNumberOfUnits sets the "number_of_units" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableNumberOfUnits(v *int) *BuildingUpdateOne {
	if v != nil {
		_u.SetNumberOfUnits(*v)
	}
	return _u
}

// AddNumberOfUnits adds value to the "number_of_units" field.
func (_u *BuildingUpdateOne) AddNumberOfUnits(v int) *BuildingUpdateOne {
	_u.mutation.AddNumberOfUnits(v)
	return _u
}

// SetAddress sets the "address" field.
func (_u *BuildingUpdateOne) SetAddress(v string) *BuildingUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableAddress(v *string) *BuildingUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *BuildingUpdateOne) ClearAddress() *BuildingUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *BuildingUpdateOne) SetLatitude(v float64) *BuildingUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableLatitude(v *float64) *BuildingUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *BuildingUpdateOne) AddLatitude(v float64) *BuildingUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *BuildingUpdateOne) ClearLatitude() *BuildingUpdateOne {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *BuildingUpdateOne) SetLongitude(v float64) *BuildingUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableLongitude(v *float64) *BuildingUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *BuildingUpdateOne) AddLongitude(v float64) *BuildingUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *BuildingUpdateOne) ClearLongitude() *BuildingUpdateOne {
	_u.mutation.ClearLongitude()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BuildingUpdateOne) SetNotes(v string) *BuildingUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BuildingUpdateOne) SetNillableNotes(v *string) *BuildingUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BuildingUpdateOne) ClearNotes() *BuildingUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the BuildingMutation object of the builder.
func (_u *BuildingUpdateOne) Mutation() *BuildingMutation {
	return _u.mutation
}

// Where appends a list predicates to the BuildingUpdate builder.
func (_u *BuildingUpdateOne) Where(ps ...predicate.Building) *BuildingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BuildingUpdateOne) Select(field string, fields ...string) *BuildingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Building entity.
func (_u *BuildingUpdateOne) Save(ctx context.Context) (*Building, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuildingUpdateOne) SaveX(ctx context.Context) *Building {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BuildingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuildingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BuildingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := building.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuildingUpdateOne) check() error {
	if v, ok := _u.mutation.BuildingCode(); ok {
		if err := building.BuildingCodeValidator(v); err != nil {
			return &ValidationError{Name: "building_code", err: fmt.Errorf(`ent: validator failed for field "Building.building_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GovernorateCode(); ok {
		if err := building.GovernorateCodeValidator(v); err != nil {
			return &ValidationError{Name: "governorate_code", err: fmt.Errorf(`ent: validator failed for field "Building.governorate_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DistrictCode(); ok {
		if err := building.DistrictCodeValidator(v); err != nil {
			return &ValidationError{Name: "district_code", err: fmt.Errorf(`ent: validator failed for field "Building.district_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubDistrictCode(); ok {
		if err := building.SubDistrictCodeValidator(v); err != nil {
			return &ValidationError{Name: "sub_district_code", err: fmt.Errorf(`ent: validator failed for field "Building.sub_district_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommunityCode(); ok {
		if err := building.CommunityCodeValidator(v); err != nil {
			return &ValidationError{Name: "community_code", err: fmt.Errorf(`ent: validator failed for field "Building.community_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NeighborhoodCode(); ok {
		if err := building.NeighborhoodCodeValidator(v); err != nil {
			return &ValidationError{Name: "neighborhood_code", err: fmt.Errorf(`ent: validator failed for field "Building.neighborhood_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BuildingNumber(); ok {
		if err := building.BuildingNumberValidator(v); err != nil {
			return &ValidationError{Name: "building_number", err: fmt.Errorf(`ent: validator failed for field "Building.building_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumberOfFloors(); ok {
		if err := building.NumberOfFloorsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_floors", err: fmt.Errorf(`ent: validator failed for field "Building.number_of_floors": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumberOfUnits(); ok {
		if err := building.NumberOfUnitsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_units", err: fmt.Errorf(`ent: validator failed for field "Building.number_of_units": %w`, err)}
		}
	}
	return nil
}

func (_u *BuildingUpdateOne) sqlSave(ctx context.Context) (_node *Building, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(building.Table, building.Columns, sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Building.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, building.FieldID)
		for _, f := range fields {
			if !building.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != building.FieldID {
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
		_spec.SetField(building.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(building.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.BuildingCode(); ok {
		_spec.SetField(building.FieldBuildingCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.GovernorateCode(); ok {
		_spec.SetField(building.FieldGovernorateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DistrictCode(); ok {
		_spec.SetField(building.FieldDistrictCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubDistrictCode(); ok {
		_spec.SetField(building.FieldSubDistrictCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommunityCode(); ok {
		_spec.SetField(building.FieldCommunityCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeighborhoodCode(); ok {
		_spec.SetField(building.FieldNeighborhoodCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.BuildingNumber(); ok {
		_spec.SetField(building.FieldBuildingNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.BuildingTypeCode(); ok {
		_spec.SetField(building.FieldBuildingTypeCode, field.TypeString, value)
	}
	if _u.mutation.BuildingTypeCodeCleared() {
		_spec.ClearField(building.FieldBuildingTypeCode, field.TypeString)
	}
	if value, ok := _u.mutation.OccupancyStatusCode(); ok {
		_spec.SetField(building.FieldOccupancyStatusCode, field.TypeString, value)
	}
	if _u.mutation.OccupancyStatusCodeCleared() {
		_spec.ClearField(building.FieldOccupancyStatusCode, field.TypeString)
	}
	if value, ok := _u.mutation.NumberOfFloors(); ok {
		_spec.SetField(building.FieldNumberOfFloors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfFloors(); ok {
		_spec.AddField(building.FieldNumberOfFloors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumberOfUnits(); ok {
		_spec.SetField(building.FieldNumberOfUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfUnits(); ok {
		_spec.AddField(building.FieldNumberOfUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(building.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(building.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(building.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(building.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(building.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(building.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(building.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(building.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(building.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(building.FieldNotes, field.TypeString)
	}
	_node = &Building{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{building.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
