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
	"uhc-registry.io/registry/ent/predicate"
	"uhc-registry.io/registry/ent/propertyunit"
)

// PropertyUnitUpdate is the builder for updating PropertyUnit entities.
type PropertyUnitUpdate struct {
	config
	hooks    []Hook
	mutation *PropertyUnitMutation
}

// Where appends a list predicates to the PropertyUnitUpdate builder.
func (_u *PropertyUnitUpdate) Where(ps ...predicate.PropertyUnit) *PropertyUnitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PropertyUnitUpdate) SetUpdatedAt(v time.Time) *PropertyUnitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBuildingID sets the "building_id" field.
func (_u *PropertyUnitUpdate) SetBuildingID(v uuid.UUID) *PropertyUnitUpdate {
	_u.mutation.SetBuildingID(v)
	return _u
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (_u *PropertyUnitUpdate) SetNillableBuildingID(v *uuid.UUID) *PropertyUnitUpdate {
	if v != nil {
		_u.SetBuildingID(*v)
	}
	return _u
}

// SetUnitIdentifier sets the "unit_identifier" field.
func (_u *PropertyUnitUpdate) SetUnitIdentifier(v string) *PropertyUnitUpdate {
	_u.mutation.SetUnitIdentifier(v)
	return _u
}

// SetNillableUnitIdentifier sets the "unit_identifier" field if the given value is not nil.
func (_u *PropertyUnitUpdate) SetNillableUnitIdentifier(v *string) *PropertyUnitUpdate {
	if v != nil {
		_u.SetUnitIdentifier(*v)
	}
	return _u
}

// SetCompositeIdentifier sets the "composite_identifier" field.
func (_u *PropertyUnitUpdate) SetCompositeIdentifier(v string) *PropertyUnitUpdate {
	_u.mutation.SetCompositeIdentifier(v)
	return _u
}

// SetNillableCompositeIdentifier sets the "composite_identifier" field if the given value is not nil.
func (_u *PropertyUnitUpdate) SetNillableCompositeIdentifier(v *string) *PropertyUnitUpdate {
	if v != nil {
		_u.SetCompositeIdentifier(*v)
	}
	return _u
}

// SetFloorNumber sets the "floor_number" field.
func (_u *PropertyUnitUpdate) SetFloorNumber(v int) *PropertyUnitUpdate {
	_u.mutation.ResetFloorNumber()
	_u.mutation.SetFloorNumber(v)
	return _u
}

// SetNillableFloorNumber sets the "floor_number" field if the given value is not nil.
func (_u *PropertyUnitUpdate) SetNillableFloorNumber(v *int) *PropertyUnitUpdate {
	if v != nil {
		_u.SetFloorNumber(*v)
	}
	return _u
}

// AddFloorNumber adds value to the "floor_number" field.
func (_u *PropertyUnitUpdate) AddFloorNumber(v int) *PropertyUnitUpdate {
	_u.mutation.AddFloorNumber(v)
	return _u
}

// SetUnitTypeCode sets the "unit_type_code" field.
func (_u *PropertyUnitUpdate) SetUnitTypeCode(v string) *PropertyUnitUpdate {
	_u.mutation.SetUnitTypeCode(v)
	return _u
}

// SetNillableUnitTypeCode sets the "unit_type_code" field if the given value is not nil.
func (_u *PropertyUnitUpdate) SetNillableUnitTypeCode(v *string) *PropertyUnitUpdate {
	if v != nil {
		_u.SetUnitTypeCode(*v)
	}
	return _u
}

// ClearUnitTypeCode clears the value of the "unit_type_code" field.
func (_u *PropertyUnitUpdate) ClearUnitTypeCode() *PropertyUnitUpdate {
	_u.mutation.ClearUnitTypeCode()
	return _u
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (_u *PropertyUnitUpdate) SetOccupancyStatusCode(v string) *PropertyUnitUpdate {
	_u.mutation.SetOccupancyStatusCode(v)
	return _u
}

// SetNillableOccupancyStatusCode sets the "occupancy_status_code" field if the given value is not nil.
func (_u *PropertyUnitUpdate) SetNillableOccupancyStatusCode(v *string) *PropertyUnitUpdate {
	if v != nil {
		_u.SetOccupancyStatusCode(*v)
	}
	return _u
}

// ClearOccupancyStatusCode clears the value of the "occupancy_status_code" field.
func (_u *PropertyUnitUpdate) ClearOccupancyStatusCode() *PropertyUnitUpdate {
	_u.mutation.ClearOccupancyStatusCode()
	return _u
}

// SetAreaSqm sets the "area_sqm" field.
func (_u *PropertyUnitUpdate) SetAreaSqm(v float64) *PropertyUnitUpdate {
	_u.mutation.ResetAreaSqm()
	_u.mutation.SetAreaSqm(v)
	return _u
}

// SetNillableAreaSqm sets the "area_sqm" field if the given value is not nil.
func (_u *PropertyUnitUpdate) SetNillableAreaSqm(v *float64) *PropertyUnitUpdate {
	if v != nil {
		_u.SetAreaSqm(*v)
	}
	return _u
}

// AddAreaSqm adds value to the "area_sqm" field.
func (_u *PropertyUnitUpdate) AddAreaSqm(v float64) *PropertyUnitUpdate {
	_u.mutation.AddAreaSqm(v)
	return _u
}

// ClearAreaSqm clears the value of the "area_sqm" field.
func (_u *PropertyUnitUpdate) ClearAreaSqm() *PropertyUnitUpdate {
	_u.mutation.ClearAreaSqm()
	return _u
}

// SetRoomCount sets the "room_count" field.
func (_u *PropertyUnitUpdate) SetRoomCount(v int) *PropertyUnitUpdate {
	_u.mutation.ResetRoomCount()
	_u.mutation.SetRoomCount(v)
	return _u
}

// SetNillableRoomCount sets the "room_count" field if the given value is not nil.
func (_u *PropertyUnitUpdate) SetNillableRoomCount(v *int) *PropertyUnitUpdate {
	if v != nil {
		_u.SetRoomCount(*v)
	}
	return _u
}

// AddRoomCount adds value to the "room_count" field.
func (_u *PropertyUnitUpdate) AddRoomCount(v int) *PropertyUnitUpdate {
	_u.mutation.AddRoomCount(v)
	return _u
}

// ClearRoomCount clears the value of the "room_count" field.
func (_u *PropertyUnitUpdate) ClearRoomCount() *PropertyUnitUpdate {
	_u.mutation.ClearRoomCount()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PropertyUnitUpdate) SetNotes(v string) *PropertyUnitUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PropertyUnitUpdate) SetNillableNotes(v *string) *PropertyUnitUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PropertyUnitUpdate) ClearNotes() *PropertyUnitUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the PropertyUnitMutation object of the builder.
func (_u *PropertyUnitUpdate) Mutation() *PropertyUnitMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PropertyUnitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertyUnitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PropertyUnitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertyUnitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PropertyUnitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := propertyunit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertyUnitUpdate) check() error {
	if v, ok := _u.mutation.UnitIdentifier(); ok {
		if err := propertyunit.UnitIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "unit_identifier", err: fmt.Errorf(`ent: validator failed for field "PropertyUnit.unit_identifier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompositeIdentifier(); ok {
		if err := propertyunit.CompositeIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "composite_identifier", err: fmt.Errorf(`ent: validator failed for field "PropertyUnit.composite_identifier": %w`, err)}
		}
	}
	return nil
}

func (_u *PropertyUnitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(propertyunit.Table, propertyunit.Columns, sqlgraph.NewFieldSpec(propertyunit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(propertyunit.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(propertyunit.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.BuildingID(); ok {
		_spec.SetField(propertyunit.FieldBuildingID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UnitIdentifier(); ok {
		_spec.SetField(propertyunit.FieldUnitIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompositeIdentifier(); ok {
		_spec.SetField(propertyunit.FieldCompositeIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.FloorNumber(); ok {
		_spec.SetField(propertyunit.FieldFloorNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFloorNumber(); ok {
		_spec.AddField(propertyunit.FieldFloorNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitTypeCode(); ok {
		_spec.SetField(propertyunit.FieldUnitTypeCode, field.TypeString, value)
	}
	if _u.mutation.UnitTypeCodeCleared() {
		_spec.ClearField(propertyunit.FieldUnitTypeCode, field.TypeString)
	}
	if value, ok := _u.mutation.OccupancyStatusCode(); ok {
		_spec.SetField(propertyunit.FieldOccupancyStatusCode, field.TypeString, value)
	}
	if _u.mutation.OccupancyStatusCodeCleared() {
		_spec.ClearField(propertyunit.FieldOccupancyStatusCode, field.TypeString)
	}
	if value, ok := _u.mutation.AreaSqm(); ok {
		_spec.SetField(propertyunit.FieldAreaSqm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaSqm(); ok {
		_spec.AddField(propertyunit.FieldAreaSqm, field.TypeFloat64, value)
	}
	if _u.mutation.AreaSqmCleared() {
		_spec.ClearField(propertyunit.FieldAreaSqm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RoomCount(); ok {
		_spec.SetField(propertyunit.FieldRoomCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoomCount(); ok {
		_spec.AddField(propertyunit.FieldRoomCount, field.TypeInt, value)
	}
	if _u.mutation.RoomCountCleared() {
		_spec.ClearField(propertyunit.FieldRoomCount, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(propertyunit.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(propertyunit.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{propertyunit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PropertyUnitUpdateOne is the builder for updating a single PropertyUnit entity.
type PropertyUnitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PropertyUnitMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PropertyUnitUpdateOne) SetUpdatedAt(v time.Time) *PropertyUnitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBuildingID sets the "building_id" field.
func (_u *PropertyUnitUpdateOne) SetBuildingID(v uuid.UUID) *PropertyUnitUpdateOne {
	_u.mutation.SetBuildingID(v)
	return _u
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (_u *PropertyUnitUpdateOne) SetNillableBuildingID(v *uuid.UUID) *PropertyUnitUpdateOne {
	if v != nil {
		_u.SetBuildingID(*v)
	}
	return _u
}

// SetUnitIdentifier sets the "unit_identifier" field.
func (_u *PropertyUnitUpdateOne) SetUnitIdentifier(v string) *PropertyUnitUpdateOne {
	_u.mutation.SetUnitIdentifier(v)
	return _u
}

// SetNillableUnitIdentifier sets the "unit_identifier" field if the given value is not nil.
func (_u *PropertyUnitUpdateOne) SetNillableUnitIdentifier(v *string) *PropertyUnitUpdateOne {
	if v != nil {
		_u.SetUnitIdentifier(*v)
	}
	return _u
}

// SetCompositeIdentifier sets the "composite_identifier" field.
func (_u *PropertyUnitUpdateOne) SetCompositeIdentifier(v string) *PropertyUnitUpdateOne {
	_u.mutation.SetCompositeIdentifier(v)
	return _u
}

// SetNillableCompositeIdentifier sets the "composite_identifier" field if the given value is not nil.
func (_u *PropertyUnitUpdateOne) SetNillableCompositeIdentifier(v *string) *PropertyUnitUpdateOne {
	if v != nil {
		_u.SetCompositeIdentifier(*v)
	}
	return _u
}

// SetFloorNumber sets the "floor_number" field.
func (_u *PropertyUnitUpdateOne) SetFloorNumber(v int) *PropertyUnitUpdateOne {
	_u.mutation.ResetFloorNumber()
	_u.mutation.SetFloorNumber(v)
	return _u
}

// SetNillableFloorNumber sets the "floor_number" field if the given value is not nil.
func (_u *PropertyUnitUpdateOne) SetNillableFloorNumber(v *int) *PropertyUnitUpdateOne {
	if v != nil {
		_u.SetFloorNumber(*v)
	}
	return _u
}

// AddFloorNumber adds value to the "floor_number" field.
func (_u *PropertyUnitUpdateOne) AddFloorNumber(v int) *PropertyUnitUpdateOne {
	_u.mutation.AddFloorNumber(v)
	return _u
}

// SetUnitTypeCode sets the "unit_type_code" field.
func (_u *PropertyUnitUpdateOne) SetUnitTypeCode(v string) *PropertyUnitUpdateOne {
	_u.mutation.SetUnitTypeCode(v)
	return _u
}

// SetNillableUnitTypeCode sets the "unit_type_code" field if the given value is not nil.
func (_u *PropertyUnitUpdateOne) SetNillableUnitTypeCode(v *string) *PropertyUnitUpdateOne {
	if v != nil {
		_u.SetUnitTypeCode(*v)
	}
	return _u
}

// ClearUnitTypeCode clears the value of the "unit_type_code" field.
func (_u *PropertyUnitUpdateOne) ClearUnitTypeCode() *PropertyUnitUpdateOne {
	_u.mutation.ClearUnitTypeCode()
	return _u
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (_u *PropertyUnitUpdateOne) SetOccupancyStatusCode(v string) *PropertyUnitUpdateOne {
	_u.mutation.SetOccupancyStatusCode(v)
	return _u
}

// SetNillableOccupancyStatusCode sets the "occupancy_status_code" field if the given value is not nil.
func (_u *PropertyUnitUpdateOne) SetNillableOccupancyStatusCode(v *string) *PropertyUnitUpdateOne {
	if v != nil {
		_u.SetOccupancyStatusCode(*v)
	}
	return _u
}

// ClearOccupancyStatusCode clears the value of the "occupancy_status_code" field.
func (_u *PropertyUnitUpdateOne) ClearOccupancyStatusCode() *PropertyUnitUpdateOne {
	_u.mutation.ClearOccupancyStatusCode()
	return _u
}

// SetAreaSqm sets the "area_sqm" field.
func (_u *PropertyUnitUpdateOne) SetAreaSqm(v float64) *PropertyUnitUpdateOne {
	_u.mutation.ResetAreaSqm()
	_u.mutation.SetAreaSqm(v)
	return _u
}

// SetNillableAreaSqm sets the "area_sqm" field if the given value is not nil.
func (_u *PropertyUnitUpdateOne) SetNillableAreaSqm(v *float64) *PropertyUnitUpdateOne {
	if v != nil {
		_u.SetAreaSqm(*v)
	}
	return _u
}

// AddAreaSqm adds value to the "area_sqm" field.
func (_u *PropertyUnitUpdateOne) AddAreaSqm(v float64) *PropertyUnitUpdateOne {
	_u.mutation.AddAreaSqm(v)
	return _u
}

// ClearAreaSqm clears the value of the "area_sqm" field.
func (_u *PropertyUnitUpdateOne) ClearAreaSqm() *PropertyUnitUpdateOne {
	_u.mutation.ClearAreaSqm()
	return _u
}

// SetRoomCount sets the "room_count" field.
func (_u *PropertyUnitUpdateOne) SetRoomCount(v int) *PropertyUnitUpdateOne {
	_u.mutation.ResetRoomCount()
	_u.mutation.SetRoomCount(v)
	return _u
}

// SetNillableRoomCount sets the "room_count" field if the given value is not nil.
func (_u *PropertyUnitUpdateOne) SetNillableRoomCount(v *int) *PropertyUnitUpdateOne {
	if v != nil {
		_u.SetRoomCount(*v)
	}
	return _u
}

// AddRoomCount adds value to the "room_count" field.
func (_u *PropertyUnitUpdateOne) AddRoomCount(v int) *PropertyUnitUpdateOne {
	_u.mutation.AddRoomCount(v)
	return _u
}

// ClearRoomCount clears the value of the "room_count" field.
func (_u *PropertyUnitUpdateOne) ClearRoomCount() *PropertyUnitUpdateOne {
	_u.mutation.ClearRoomCount()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PropertyUnitUpdateOne) SetNotes(v string) *PropertyUnitUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PropertyUnitUpdateOne) SetNillableNotes(v *string) *PropertyUnitUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PropertyUnitUpdateOne) ClearNotes() *PropertyUnitUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the PropertyUnitMutation object of the builder.
func (_u *PropertyUnitUpdateOne) Mutation() *PropertyUnitMutation {
	return _u.mutation
}

// Where appends a list predicates to the PropertyUnitUpdate builder.
func (_u *PropertyUnitUpdateOne) Where(ps ...predicate.PropertyUnit) *PropertyUnitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PropertyUnitUpdateOne) Select(field string, fields ...string) *PropertyUnitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PropertyUnit entity.
func (_u *PropertyUnitUpdateOne) Save(ctx context.Context) (*PropertyUnit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertyUnitUpdateOne) SaveX(ctx context.Context) *PropertyUnit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PropertyUnitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertyUnitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PropertyUnitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := propertyunit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertyUnitUpdateOne) check() error {
	if v, ok := _u.mutation.UnitIdentifier(); ok {
		if err := propertyunit.UnitIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "unit_identifier", err: fmt.Errorf(`ent: validator failed for field "PropertyUnit.unit_identifier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompositeIdentifier(); ok {
		if err := propertyunit.CompositeIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "composite_identifier", err: fmt.Errorf(`ent: validator failed for field "PropertyUnit.composite_identifier": %w`, err)}
		}
	}
	return nil
}

func (_u *PropertyUnitUpdateOne) sqlSave(ctx context.Context) (_node *PropertyUnit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(propertyunit.Table, propertyunit.Columns, sqlgraph.NewFieldSpec(propertyunit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PropertyUnit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, propertyunit.FieldID)
		for _, f := range fields {
			if !propertyunit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != propertyunit.FieldID {
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
		_spec.SetField(propertyunit.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcePackageIDCleared() {
		_spec.ClearField(propertyunit.FieldSourcePackageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.BuildingID(); ok {
		_spec.SetField(propertyunit.FieldBuildingID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UnitIdentifier(); ok {
		_spec.SetField(propertyunit.FieldUnitIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompositeIdentifier(); ok {
		_spec.SetField(propertyunit.FieldCompositeIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.FloorNumber(); ok {
		_spec.SetField(propertyunit.FieldFloorNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFloorNumber(); ok {
		_spec.AddField(propertyunit.FieldFloorNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitTypeCode(); ok {
		_spec.SetField(propertyunit.FieldUnitTypeCode, field.TypeString, value)
	}
	if _u.mutation.UnitTypeCodeCleared() {
		_spec.ClearField(propertyunit.FieldUnitTypeCode, field.TypeString)
	}
	if value, ok := _u.mutation.OccupancyStatusCode(); ok {
		_spec.SetField(propertyunit.FieldOccupancyStatusCode, field.TypeString, value)
	}
	if _u.mutation.OccupancyStatusCodeCleared() {
		_spec.ClearField(propertyunit.FieldOccupancyStatusCode, field.TypeString)
	}
	if value, ok := _u.mutation.AreaSqm(); ok {
		_spec.SetField(propertyunit.FieldAreaSqm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaSqm(); ok {
		_spec.AddField(propertyunit.FieldAreaSqm, field.TypeFloat64, value)
	}
	if _u.mutation.AreaSqmCleared() {
		_spec.ClearField(propertyunit.FieldAreaSqm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RoomCount(); ok {
		_spec.SetField(propertyunit.FieldRoomCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoomCount(); ok {
		_spec.AddField(propertyunit.FieldRoomCount, field.TypeInt, value)
	}
	if _u.mutation.RoomCountCleared() {
		_spec.ClearField(propertyunit.FieldRoomCount, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(propertyunit.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(propertyunit.FieldNotes, field.TypeString)
	}
	_node = &PropertyUnit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{propertyunit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
