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
	"uhc-registry.io/registry/ent/propertyunit"
)

// PropertyUnitCreate is the builder for creating a PropertyUnit entity.
type PropertyUnitCreate struct {
	config
	mutation *PropertyUnitMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PropertyUnitCreate) SetCreatedAt(v time.Time) *PropertyUnitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PropertyUnitCreate) SetNillableCreatedAt(v *time.Time) *PropertyUnitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PropertyUnitCreate) SetUpdatedAt(v time.Time) *PropertyUnitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PropertyUnitCreate) SetNillableUpdatedAt(v *time.Time) *PropertyUnitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourcePackageID sets the "source_package_id" field.
func (_c *PropertyUnitCreate) SetSourcePackageID(v uuid.UUID) *PropertyUnitCreate {
	_c.mutation.SetSourcePackageID(v)
	return _c
}

// SetNillableSourcePackageID sets the "source_package_id" field if the given value is not nil.
func (_c *PropertyUnitCreate) SetNillableSourcePackageID(v *uuid.UUID) *PropertyUnitCreate {
	if v != nil {
		_c.SetSourcePackageID(*v)
	}
	return _c
}

// SetBuildingID sets the "building_id" field.
func (_c *PropertyUnitCreate) SetBuildingID(v uuid.UUID) *PropertyUnitCreate {
	_c.mutation.SetBuildingID(v)
	return _c
}

// SetUnitIdentifier sets the "unit_identifier" field.
func (_c *PropertyUnitCreate) SetUnitIdentifier(v string) *PropertyUnitCreate {
	_c.mutation.SetUnitIdentifier(v)
	return _c
}

// SetCompositeIdentifier sets the "composite_identifier" field.
func (_c *PropertyUnitCreate) SetCompositeIdentifier(v string) *PropertyUnitCreate {
	_c.mutation.SetCompositeIdentifier(v)
	return _c
}

// SetFloorNumber sets the "floor_number" field.
func (_c *PropertyUnitCreate) SetFloorNumber(v int) *PropertyUnitCreate {
	_c.mutation.SetFloorNumber(v)
	return _c
}

// SetNillableFloorNumber sets the "floor_number" field if the given value is not nil.
func (_c *PropertyUnitCreate) SetNillableFloorNumber(v *int) *PropertyUnitCreate {
	if v != nil {
		_c.SetFloorNumber(*v)
	}
	return _c
}

// SetUnitTypeCode sets the "unit_type_code" field.
func (_c *PropertyUnitCreate) SetUnitTypeCode(v string) *PropertyUnitCreate {
	_c.mutation.SetUnitTypeCode(v)
	return _c
}

// SetNillableUnitTypeCode sets the "unit_type_code" field if the given value is not nil.
func (_c *PropertyUnitCreate) SetNillableUnitTypeCode(v *string) *PropertyUnitCreate {
	if v != nil {
		_c.SetUnitTypeCode(*v)
	}
	return _c
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (_c *PropertyUnitCreate) SetOccupancyStatusCode(v string) *PropertyUnitCreate {
	_c.mutation.SetOccupancyStatusCode(v)
	return _c
}

// SetNillableOccupancyStatusCode sets the "occupancy_status_code" field if the given value is not nil.
func (_c *PropertyUnitCreate) SetNillableOccupancyStatusCode(v *string) *PropertyUnitCreate {
	if v != nil {
		_c.SetOccupancyStatusCode(*v)
	}
	return _c
}

// SetAreaSqm sets the "area_sqm" field.
func (_c *PropertyUnitCreate) SetAreaSqm(v float64) *PropertyUnitCreate {
	_c.mutation.SetAreaSqm(v)
	return _c
}

// SetNillableAreaSqm sets the "area_sqm" field if the given value is not nil.
func (_c *PropertyUnitCreate) SetNillableAreaSqm(v *float64) *PropertyUnitCreate {
	if v != nil {
		_c.SetAreaSqm(*v)
	}
	return _c
}

// SetRoomCount sets the "room_count" field.
func (_c *PropertyUnitCreate) SetRoomCount(v int) *PropertyUnitCreate {
	_c.mutation.SetRoomCount(v)
	return _c
}

// SetNillableRoomCount sets the "room_count" field if the given value is not nil.
func (_c *PropertyUnitCreate) SetNillableRoomCount(v *int) *PropertyUnitCreate {
	if v != nil {
		_c.SetRoomCount(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PropertyUnitCreate) SetNotes(v string) *PropertyUnitCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PropertyUnitCreate) SetNillableNotes(v *string) *PropertyUnitCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PropertyUnitCreate) SetID(v uuid.UUID) *PropertyUnitCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PropertyUnitMutation object of the builder.
func (_c *PropertyUnitCreate) Mutation() *PropertyUnitMutation {
	return _c.mutation
}

// Save creates the PropertyUnit in the database.
func (_c *PropertyUnitCreate) Save(ctx context.Context) (*PropertyUnit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PropertyUnitCreate) SaveX(ctx context.Context) *PropertyUnit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PropertyUnitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PropertyUnitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PropertyUnitCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := propertyunit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := propertyunit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.FloorNumber(); !ok {
		v := propertyunit.DefaultFloorNumber
		_c.mutation.SetFloorNumber(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PropertyUnitCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PropertyUnit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PropertyUnit.updated_at"`)}
	}
	if _, ok := _c.mutation.BuildingID(); !ok {
		return &ValidationError{Name: "building_id", err: errors.New(`ent: missing required field "PropertyUnit.building_id"`)}
	}
	if _, ok := _c.mutation.UnitIdentifier(); !ok {
		return &ValidationError{Name: "unit_identifier", err: errors.New(`ent: missing required field "PropertyUnit.unit_identifier"`)}
	}
	if v, ok := _c.mutation.UnitIdentifier(); ok {
		if err := propertyunit.UnitIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "unit_identifier", err: fmt.Errorf(`ent: validator failed for field "PropertyUnit.unit_identifier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompositeIdentifier(); !ok {
		return &ValidationError{Name: "composite_identifier", err: errors.New(`ent: missing required field "PropertyUnit.composite_identifier"`)}
	}
	if v, ok := _c.mutation.CompositeIdentifier(); ok {
		if err := propertyunit.CompositeIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "composite_identifier", err: fmt.Errorf(`ent: validator failed for field "PropertyUnit.composite_identifier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FloorNumber(); !ok {
		return &ValidationError{Name: "floor_number", err: errors.New(`ent: missing required field "PropertyUnit.floor_number"`)}
	}
	return nil
}

func (_c *PropertyUnitCreate) sqlSave(ctx context.Context) (*PropertyUnit, error) {
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

func (_c *PropertyUnitCreate) createSpec() (*PropertyUnit, *sqlgraph.CreateSpec) {
	var (
		_node = &PropertyUnit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(propertyunit.Table, sqlgraph.NewFieldSpec(propertyunit.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(propertyunit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(propertyunit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourcePackageID(); ok {
		_spec.SetField(propertyunit.FieldSourcePackageID, field.TypeUUID, value)
		_node.SourcePackageID = &value
	}
	if value, ok := _c.mutation.BuildingID(); ok {
		_spec.SetField(propertyunit.FieldBuildingID, field.TypeUUID, value)
		_node.BuildingID = value
	}
	if value, ok := _c.mutation.UnitIdentifier(); ok {
		_spec.SetField(propertyunit.FieldUnitIdentifier, field.TypeString, value)
		_node.UnitIdentifier = value
	}
	if value, ok := _c.mutation.CompositeIdentifier(); ok {
		_spec.SetField(propertyunit.FieldCompositeIdentifier, field.TypeString, value)
		_node.CompositeIdentifier = value
	}
	if value, ok := _c.mutation.FloorNumber(); ok {
		_spec.SetField(propertyunit.FieldFloorNumber, field.TypeInt, value)
		_node.FloorNumber = value
	}
	if value, ok := _c.mutation.UnitTypeCode(); ok {
		_spec.SetField(propertyunit.FieldUnitTypeCode, field.TypeString, value)
		_node.UnitTypeCode = value
	}
	if value, ok := _c.mutation.OccupancyStatusCode(); ok {
		_spec.SetField(propertyunit.FieldOccupancyStatusCode, field.TypeString, value)
		_node.OccupancyStatusCode = value
	}
	if value, ok := _c.mutation.AreaSqm(); ok {
		_spec.SetField(propertyunit.FieldAreaSqm, field.TypeFloat64, value)
		_node.AreaSqm = value
	}
	if value, ok := _c.mutation.RoomCount(); ok {
		_spec.SetField(propertyunit.FieldRoomCount, field.TypeInt, value)
		_node.RoomCount = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(propertyunit.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PropertyUnit.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PropertyUnitUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PropertyUnitCreate) OnConflict(opts ...sql.ConflictOption) *PropertyUnitUpsertOne {
	_c.conflict = opts
	return &PropertyUnitUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PropertyUnit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PropertyUnitCreate) OnConflictColumns(columns ...string) *PropertyUnitUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PropertyUnitUpsertOne{
		create: _c,
	}
}

type (
	// PropertyUnitUpsertOne is the builder for "upsert"-ing
	//  one PropertyUnit node.
	PropertyUnitUpsertOne struct {
		create *PropertyUnitCreate
	}

	// PropertyUnitUpsert is the "OnConflict" setter.
	PropertyUnitUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PropertyUnitUpsert) SetUpdatedAt(v time.Time) *PropertyUnitUpsert {
	u.Set(propertyunit.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PropertyUnitUpsert) UpdateUpdatedAt() *PropertyUnitUpsert {
	u.SetExcluded(propertyunit.FieldUpdatedAt)
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *PropertyUnitUpsert) SetBuildingID(v uuid.UUID) *PropertyUnitUpsert {
	u.Set(propertyunit.FieldBuildingID, v)
	return u
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *PropertyUnitUpsert) UpdateBuildingID() *PropertyUnitUpsert {
	u.SetExcluded(propertyunit.FieldBuildingID)
	return u
}

// SetUnitIdentifier sets the "unit_identifier" field.
func (u *PropertyUnitUpsert) SetUnitIdentifier(v string) *PropertyUnitUpsert {
	u.Set(propertyunit.FieldUnitIdentifier, v)
	return u
}

// UpdateUnitIdentifier sets the "unit_identifier" field to the value that was provided on create.
func (u *PropertyUnitUpsert) UpdateUnitIdentifier() *PropertyUnitUpsert {
	u.SetExcluded(propertyunit.FieldUnitIdentifier)
	return u
}

// SetCompositeIdentifier sets the "composite_identifier" field.
func (u *PropertyUnitUpsert) SetCompositeIdentifier(v string) *PropertyUnitUpsert {
	u.Set(propertyunit.FieldCompositeIdentifier, v)
	return u
}

// UpdateCompositeIdentifier sets the "composite_identifier" field to the value that was provided on create.
func (u *PropertyUnitUpsert) UpdateCompositeIdentifier() *PropertyUnitUpsert {
	u.SetExcluded(propertyunit.FieldCompositeIdentifier)
	return u
}

// SetFloorNumber sets the "floor_number" field.
func (u *PropertyUnitUpsert) SetFloorNumber(v int) *PropertyUnitUpsert {
	u.Set(propertyunit.FieldFloorNumber, v)
	return u
}

// UpdateFloorNumber sets the "floor_number" field to the value that was provided on create.
func (u *PropertyUnitUpsert) UpdateFloorNumber() *PropertyUnitUpsert {
	u.SetExcluded(propertyunit.FieldFloorNumber)
	return u
}

// AddFloorNumber adds v to the "floor_number" field.
func (u *PropertyUnitUpsert) AddFloorNumber(v int) *PropertyUnitUpsert {
	u.Add(propertyunit.FieldFloorNumber, v)
	return u
}

// SetUnitTypeCode sets the "unit_type_code" field.
func (u *PropertyUnitUpsert) SetUnitTypeCode(v string) *PropertyUnitUpsert {
	u.Set(propertyunit.FieldUnitTypeCode, v)
	return u
}

// UpdateUnitTypeCode sets the "unit_type_code" field to the value that was provided on create.
func (u *PropertyUnitUpsert) UpdateUnitTypeCode() *PropertyUnitUpsert {
	u.SetExcluded(propertyunit.FieldUnitTypeCode)
	return u
}

// ClearUnitTypeCode clears the value of the "unit_type_code" field.
func (u *PropertyUnitUpsert) ClearUnitTypeCode() *PropertyUnitUpsert {
	u.SetNull(propertyunit.FieldUnitTypeCode)
	return u
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (u *PropertyUnitUpsert) SetOccupancyStatusCode(v string) *PropertyUnitUpsert {
	u.Set(propertyunit.FieldOccupancyStatusCode, v)
	return u
}

// UpdateOccupancyStatusCode sets the "occupancy_status_code" field to the value that was provided on create.
func (u *PropertyUnitUpsert) UpdateOccupancyStatusCode() *PropertyUnitUpsert {
	u.SetExcluded(propertyunit.FieldOccupancyStatusCode)
	return u
}

// ClearOccupancyStatusCode clears the value of the "occupancy_status_code" field.
func (u *PropertyUnitUpsert) ClearOccupancyStatusCode() *PropertyUnitUpsert {
	u.SetNull(propertyunit.FieldOccupancyStatusCode)
	return u
}

// SetAreaSqm sets the "area_sqm" field.
func (u *PropertyUnitUpsert) SetAreaSqm(v float64) *PropertyUnitUpsert {
	u.Set(propertyunit.FieldAreaSqm, v)
	return u
}

// UpdateAreaSqm sets the "area_sqm" field to the value that was provided on create.
func (u *PropertyUnitUpsert) UpdateAreaSqm() *PropertyUnitUpsert {
	u.SetExcluded(propertyunit.FieldAreaSqm)
	return u
}

// AddAreaSqm adds v to the "area_sqm" field.
func (u *PropertyUnitUpsert) AddAreaSqm(v float64) *PropertyUnitUpsert {
	u.Add(propertyunit.FieldAreaSqm, v)
	return u
}

// ClearAreaSqm clears the value of the "area_sqm" field.
func (u *PropertyUnitUpsert) ClearAreaSqm() *PropertyUnitUpsert {
	u.SetNull(propertyunit.FieldAreaSqm)
	return u
}

// SetRoomCount sets the "room_count" field.
func (u *PropertyUnitUpsert) SetRoomCount(v int) *PropertyUnitUpsert {
	u.Set(propertyunit.FieldRoomCount, v)
	return u
}

// UpdateRoomCount sets the "room_count" field to the value that was provided on create.
func (u *PropertyUnitUpsert) UpdateRoomCount() *PropertyUnitUpsert {
	u.SetExcluded(propertyunit.FieldRoomCount)
	return u
}

// AddRoomCount adds v to the "room_count" field.
func (u *PropertyUnitUpsert) AddRoomCount(v int) *PropertyUnitUpsert {
	u.Add(propertyunit.FieldRoomCount, v)
	return u
}

// ClearRoomCount clears the value of the "room_count" field.
func (u *PropertyUnitUpsert) ClearRoomCount() *PropertyUnitUpsert {
	u.SetNull(propertyunit.FieldRoomCount)
	return u
}

// SetNotes sets the "notes" field.
func (u *PropertyUnitUpsert) SetNotes(v string) *PropertyUnitUpsert {
	u.Set(propertyunit.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PropertyUnitUpsert) UpdateNotes() *PropertyUnitUpsert {
	u.SetExcluded(propertyunit.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *PropertyUnitUpsert) ClearNotes() *PropertyUnitUpsert {
	u.SetNull(propertyunit.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PropertyUnit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(propertyunit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PropertyUnitUpsertOne) UpdateNewValues() *PropertyUnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(propertyunit.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(propertyunit.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SourcePackageID(); exists {
			s.SetIgnore(propertyunit.FieldSourcePackageID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PropertyUnit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PropertyUnitUpsertOne) Ignore() *PropertyUnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PropertyUnitUpsertOne) DoNothing() *PropertyUnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PropertyUnitCreate.OnConflict
// documentation for more info.
func (u *PropertyUnitUpsertOne) Update(set func(*PropertyUnitUpsert)) *PropertyUnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PropertyUnitUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PropertyUnitUpsertOne) SetUpdatedAt(v time.Time) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PropertyUnitUpsertOne) UpdateUpdatedAt() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetBuildingID sets the "building_id" field.
func (u *PropertyUnitUpsertOne) SetBuildingID(v uuid.UUID) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *PropertyUnitUpsertOne) UpdateBuildingID() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateBuildingID()
	})
}

// SetUnitIdentifier sets the "unit_identifier" field.
func (u *PropertyUnitUpsertOne) SetUnitIdentifier(v string) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetUnitIdentifier(v)
	})
}

// UpdateUnitIdentifier sets the "unit_identifier" field to the value that was provided on create.
func (u *PropertyUnitUpsertOne) UpdateUnitIdentifier() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateUnitIdentifier()
	})
}

// SetCompositeIdentifier sets the "composite_identifier" field.
func (u *PropertyUnitUpsertOne) SetCompositeIdentifier(v string) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetCompositeIdentifier(v)
	})
}

// UpdateCompositeIdentifier sets the "composite_identifier" field to the value that was provided on create.
func (u *PropertyUnitUpsertOne) UpdateCompositeIdentifier() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateCompositeIdentifier()
	})
}

// SetFloorNumber sets the "floor_number" field.
func (u *PropertyUnitUpsertOne) SetFloorNumber(v int) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetFloorNumber(v)
	})
}

// AddFloorNumber adds v to the "floor_number" field.
func (u *PropertyUnitUpsertOne) AddFloorNumber(v int) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.AddFloorNumber(v)
	})
}

// UpdateFloorNumber sets the "floor_number" field to the value that was provided on create.
func (u *PropertyUnitUpsertOne) UpdateFloorNumber() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateFloorNumber()
	})
}

// SetUnitTypeCode sets the "unit_type_code" field.
func (u *PropertyUnitUpsertOne) SetUnitTypeCode(v string) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetUnitTypeCode(v)
	})
}

// UpdateUnitTypeCode sets the "unit_type_code" field to the value that was provided on create.
func (u *PropertyUnitUpsertOne) UpdateUnitTypeCode() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateUnitTypeCode()
	})
}

// ClearUnitTypeCode clears the value of the "unit_type_code" field.
func (u *PropertyUnitUpsertOne) ClearUnitTypeCode() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.ClearUnitTypeCode()
	})
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (u *PropertyUnitUpsertOne) SetOccupancyStatusCode(v string) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetOccupancyStatusCode(v)
	})
}

// UpdateOccupancyStatusCode sets the "occupancy_status_code" field to the value that was provided on create.
func (u *PropertyUnitUpsertOne) UpdateOccupancyStatusCode() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateOccupancyStatusCode()
	})
}

// ClearOccupancyStatusCode clears the value of the "occupancy_status_code" field.
func (u *PropertyUnitUpsertOne) ClearOccupancyStatusCode() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.ClearOccupancyStatusCode()
	})
}

// SetAreaSqm sets the "area_sqm" field.
func (u *PropertyUnitUpsertOne) SetAreaSqm(v float64) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetAreaSqm(v)
	})
}

// AddAreaSqm adds v to the "area_sqm" field.
func (u *PropertyUnitUpsertOne) AddAreaSqm(v float64) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.AddAreaSqm(v)
	})
}

// UpdateAreaSqm sets the "area_sqm" field to the value that was provided on create.
func (u *PropertyUnitUpsertOne) UpdateAreaSqm() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateAreaSqm()
	})
}

// ClearAreaSqm clears the value of the "area_sqm" field.
func (u *PropertyUnitUpsertOne) ClearAreaSqm() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.ClearAreaSqm()
	})
}

// SetRoomCount sets the "room_count" field.
func (u *PropertyUnitUpsertOne) SetRoomCount(v int) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetRoomCount(v)
	})
}

// AddRoomCount adds v to the "room_count" field.
func (u *PropertyUnitUpsertOne) AddRoomCount(v int) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.AddRoomCount(v)
	})
}

// UpdateRoomCount sets the "room_count" field to the value that was provided on create.
func (u *PropertyUnitUpsertOne) UpdateRoomCount() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateRoomCount()
	})
}

// ClearRoomCount clears the value of the "room_count" field.
func (u *PropertyUnitUpsertOne) ClearRoomCount() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.ClearRoomCount()
	})
}

// SetNotes sets the "notes" field.
func (u *PropertyUnitUpsertOne) SetNotes(v string) *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PropertyUnitUpsertOne) UpdateNotes() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PropertyUnitUpsertOne) ClearNotes() *PropertyUnitUpsertOne {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *PropertyUnitUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PropertyUnitCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PropertyUnitUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PropertyUnitUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PropertyUnitUpsertOne.ID is not supported by MySQL driver. Use PropertyUnitUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PropertyUnitUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PropertyUnitCreateBulk is the builder for creating many PropertyUnit entities in bulk.
type PropertyUnitCreateBulk struct {
	config
	err      error
	builders []*PropertyUnitCreate
	conflict []sql.ConflictOption
}

// Save creates the PropertyUnit entities in the database.
func (_c *PropertyUnitCreateBulk) Save(ctx context.Context) ([]*PropertyUnit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PropertyUnit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PropertyUnitMutation)
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
func (_c *PropertyUnitCreateBulk) SaveX(ctx context.Context) []*PropertyUnit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PropertyUnitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PropertyUnitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PropertyUnit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PropertyUnitUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PropertyUnitCreateBulk) OnConflict(opts ...sql.ConflictOption) *PropertyUnitUpsertBulk {
	_c.conflict = opts
	return &PropertyUnitUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PropertyUnit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PropertyUnitCreateBulk) OnConflictColumns(columns ...string) *PropertyUnitUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PropertyUnitUpsertBulk{
		create: _c,
	}
}

// PropertyUnitUpsertBulk is the builder for "upsert"-ing
// a bulk of PropertyUnit nodes.
type PropertyUnitUpsertBulk struct {
	create *PropertyUnitCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PropertyUnit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(propertyunit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PropertyUnitUpsertBulk) UpdateNewValues() *PropertyUnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(propertyunit.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(propertyunit.FieldCreatedAt)
			}
			if _, exists := b.mutation.SourcePackageID(); exists {
				s.SetIgnore(propertyunit.FieldSourcePackageID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PropertyUnit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PropertyUnitUpsertBulk) Ignore() *PropertyUnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PropertyUnitUpsertBulk) DoNothing() *PropertyUnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PropertyUnitCreateBulk.OnConflict
// documentation for more info.
func (u *PropertyUnitUpsertBulk) Update(set func(*PropertyUnitUpsert)) *PropertyUnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PropertyUnitUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PropertyUnitUpsertBulk) SetUpdatedAt(v time.Time) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PropertyUnitUpsertBulk) UpdateUpdatedAt() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetBuildingID sets the "building_id" field.
func (u *PropertyUnitUpsertBulk) SetBuildingID(v uuid.UUID) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *PropertyUnitUpsertBulk) UpdateBuildingID() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateBuildingID()
	})
}

// SetUnitIdentifier sets the "unit_identifier" field.
func (u *PropertyUnitUpsertBulk) SetUnitIdentifier(v string) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetUnitIdentifier(v)
	})
}

// UpdateUnitIdentifier sets the "unit_identifier" field to the value that was provided on create.
func (u *PropertyUnitUpsertBulk) UpdateUnitIdentifier() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateUnitIdentifier()
	})
}

// SetCompositeIdentifier sets the "composite_identifier" field.
func (u *PropertyUnitUpsertBulk) SetCompositeIdentifier(v string) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetCompositeIdentifier(v)
	})
}

// UpdateCompositeIdentifier sets the "composite_identifier" field to the value that was provided on create.
func (u *PropertyUnitUpsertBulk) UpdateCompositeIdentifier() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateCompositeIdentifier()
	})
}

// SetFloorNumber sets the "floor_number" field.
func (u *PropertyUnitUpsertBulk) SetFloorNumber(v int) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetFloorNumber(v)
	})
}

// AddFloorNumber adds v to the "floor_number" field.
func (u *PropertyUnitUpsertBulk) AddFloorNumber(v int) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.AddFloorNumber(v)
	})
}

// UpdateFloorNumber sets the "floor_number" field to the value that was provided on create.
func (u *PropertyUnitUpsertBulk) UpdateFloorNumber() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateFloorNumber()
	})
}

// SetUnitTypeCode sets the "unit_type_code" field.
func (u *PropertyUnitUpsertBulk) SetUnitTypeCode(v string) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetUnitTypeCode(v)
	})
}

// UpdateUnitTypeCode sets the "unit_type_code" field to the value that was provided on create.
func (u *PropertyUnitUpsertBulk) UpdateUnitTypeCode() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateUnitTypeCode()
	})
}

// ClearUnitTypeCode clears the value of the "unit_type_code" field.
func (u *PropertyUnitUpsertBulk) ClearUnitTypeCode() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.ClearUnitTypeCode()
	})
}

// SetOccupancyStatusCode sets the "occupancy_status_code" field.
func (u *PropertyUnitUpsertBulk) SetOccupancyStatusCode(v string) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetOccupancyStatusCode(v)
	})
}

// UpdateOccupancyStatusCode sets the "occupancy_status_code" field to the value that was provided on create.
func (u *PropertyUnitUpsertBulk) UpdateOccupancyStatusCode() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateOccupancyStatusCode()
	})
}

// ClearOccupancyStatusCode clears the value of the "occupancy_status_code" field.
func (u *PropertyUnitUpsertBulk) ClearOccupancyStatusCode() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.ClearOccupancyStatusCode()
	})
}

// SetAreaSqm sets the "area_sqm" field.
func (u *PropertyUnitUpsertBulk) SetAreaSqm(v float64) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetAreaSqm(v)
	})
}

// AddAreaSqm adds v to the "area_sqm" field.
func (u *PropertyUnitUpsertBulk) AddAreaSqm(v float64) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.AddAreaSqm(v)
	})
}

// UpdateAreaSqm sets the "area_sqm" field to the value that was provided on create.
func (u *PropertyUnitUpsertBulk) UpdateAreaSqm() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateAreaSqm()
	})
}

// ClearAreaSqm clears the value of the "area_sqm" field.
func (u *PropertyUnitUpsertBulk) ClearAreaSqm() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.ClearAreaSqm()
	})
}

// SetRoomCount sets the "room_count" field.
func (u *PropertyUnitUpsertBulk) SetRoomCount(v int) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetRoomCount(v)
	})
}

// AddRoomCount adds v to the "room_count" field.
func (u *PropertyUnitUpsertBulk) AddRoomCount(v int) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.AddRoomCount(v)
	})
}

// UpdateRoomCount sets the "room_count" field to the value that was provided on create.
func (u *PropertyUnitUpsertBulk) UpdateRoomCount() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateRoomCount()
	})
}

// ClearRoomCount clears the value of the "room_count" field.
func (u *PropertyUnitUpsertBulk) ClearRoomCount() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.ClearRoomCount()
	})
}

// SetNotes sets the "notes" field.
func (u *PropertyUnitUpsertBulk) SetNotes(v string) *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PropertyUnitUpsertBulk) UpdateNotes() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PropertyUnitUpsertBulk) ClearNotes() *PropertyUnitUpsertBulk {
	return u.Update(func(s *PropertyUnitUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *PropertyUnitUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PropertyUnitCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PropertyUnitCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PropertyUnitUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
