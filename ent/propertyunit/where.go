// Code generated by ent, DO NOT EDIT.

package propertyunit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourcePackageID applies equality check predicate on the "source_package_id" field. It's identical to SourcePackageIDEQ.
func SourcePackageID(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldSourcePackageID, v))
}

// BuildingID applies equality check predicate on the "building_id" field. It's identical to BuildingIDEQ.
func BuildingID(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldBuildingID, v))
}

// UnitIdentifier applies equality check predicate on the "unit_identifier" field. It's identical to UnitIdentifierEQ.
func UnitIdentifier(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldUnitIdentifier, v))
}

// CompositeIdentifier applies equality check predicate on the "composite_identifier" field. It's identical to CompositeIdentifierEQ.
func CompositeIdentifier(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldCompositeIdentifier, v))
}

// FloorNumber applies equality check predicate on the "floor_number" field. It's identical to FloorNumberEQ.
func FloorNumber(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldFloorNumber, v))
}

// UnitTypeCode applies equality check predicate on the "unit_type_code" field. It's identical to UnitTypeCodeEQ.
func UnitTypeCode(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldUnitTypeCode, v))
}

// OccupancyStatusCode applies equality check predicate on the "occupancy_status_code" field. It's identical to OccupancyStatusCodeEQ.
func OccupancyStatusCode(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldOccupancyStatusCode, v))
}

// AreaSqm applies equality check predicate on the "area_sqm" field. It's identical to AreaSqmEQ.
func AreaSqm(v float64) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldAreaSqm, v))
}

// RoomCount applies equality check predicate on the "room_count" field. It's identical to RoomCountEQ.
func RoomCount(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldRoomCount, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourcePackageIDEQ applies the EQ predicate on the "source_package_id" field.
func SourcePackageIDEQ(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldSourcePackageID, v))
}

// SourcePackageIDNEQ applies the NEQ predicate on the "source_package_id" field.
func SourcePackageIDNEQ(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldSourcePackageID, v))
}

// SourcePackageIDIn applies the In predicate on the "source_package_id" field.
func SourcePackageIDIn(vs ...uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDNotIn applies the NotIn predicate on the "source_package_id" field.
func SourcePackageIDNotIn(vs ...uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDGT applies the GT predicate on the "source_package_id" field.
func SourcePackageIDGT(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldSourcePackageID, v))
}

// SourcePackageIDGTE applies the GTE predicate on the "source_package_id" field.
func SourcePackageIDGTE(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldSourcePackageID, v))
}

// SourcePackageIDLT applies the LT predicate on the "source_package_id" field.
func SourcePackageIDLT(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldSourcePackageID, v))
}

// SourcePackageIDLTE applies the LTE predicate on the "source_package_id" field.
func SourcePackageIDLTE(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldSourcePackageID, v))
}

// SourcePackageIDIsNil applies the IsNil predicate on the "source_package_id" field.
func SourcePackageIDIsNil() predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIsNull(FieldSourcePackageID))
}

// SourcePackageIDNotNil applies the NotNil predicate on the "source_package_id" field.
func SourcePackageIDNotNil() predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotNull(FieldSourcePackageID))
}

// BuildingIDEQ applies the EQ predicate on the "building_id" field.
func BuildingIDEQ(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldBuildingID, v))
}

// BuildingIDNEQ applies the NEQ predicate on the "building_id" field.
func BuildingIDNEQ(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldBuildingID, v))
}

// BuildingIDIn applies the In predicate on the "building_id" field.
func BuildingIDIn(vs ...uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldBuildingID, vs...))
}

// BuildingIDNotIn applies the NotIn predicate on the "building_id" field.
func BuildingIDNotIn(vs ...uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldBuildingID, vs...))
}

// BuildingIDGT applies the GT predicate on the "building_id" field.
func BuildingIDGT(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldBuildingID, v))
}

// BuildingIDGTE applies the GTE predicate on the "building_id" field.
func BuildingIDGTE(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldBuildingID, v))
}

// BuildingIDLT applies the LT predicate on the "building_id" field.
func BuildingIDLT(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldBuildingID, v))
}

// BuildingIDLTE applies the LTE predicate on the "building_id" field.
func BuildingIDLTE(v uuid.UUID) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldBuildingID, v))
}

// UnitIdentifierEQ applies the EQ predicate on the "unit_identifier" field.
func UnitIdentifierEQ(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldUnitIdentifier, v))
}

// UnitIdentifierNEQ applies the NEQ predicate on the "unit_identifier" field.
func UnitIdentifierNEQ(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldUnitIdentifier, v))
}

// UnitIdentifierIn applies the In predicate on the "unit_identifier" field.
func UnitIdentifierIn(vs ...string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldUnitIdentifier, vs...))
}

// UnitIdentifierNotIn applies the NotIn predicate on the "unit_identifier" field.
func UnitIdentifierNotIn(vs ...string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldUnitIdentifier, vs...))
}

// UnitIdentifierGT applies the GT predicate on the "unit_identifier" field.
func UnitIdentifierGT(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldUnitIdentifier, v))
}

// UnitIdentifierGTE applies the GTE predicate on the "unit_identifier" field.
func UnitIdentifierGTE(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldUnitIdentifier, v))
}

// UnitIdentifierLT applies the LT predicate on the "unit_identifier" field.
func UnitIdentifierLT(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldUnitIdentifier, v))
}

// UnitIdentifierLTE applies the LTE predicate on the "unit_identifier" field.
func UnitIdentifierLTE(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldUnitIdentifier, v))
}

// UnitIdentifierContains applies the Contains predicate on the "unit_identifier" field.
func UnitIdentifierContains(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldContains(FieldUnitIdentifier, v))
}

// UnitIdentifierHasPrefix applies the HasPrefix predicate on the "unit_identifier" field.
func UnitIdentifierHasPrefix(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldHasPrefix(FieldUnitIdentifier, v))
}

// UnitIdentifierHasSuffix applies the HasSuffix predicate on the "unit_identifier" field.
func UnitIdentifierHasSuffix(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldHasSuffix(FieldUnitIdentifier, v))
}

// UnitIdentifierEqualFold applies the EqualFold predicate on the "unit_identifier" field.
func UnitIdentifierEqualFold(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEqualFold(FieldUnitIdentifier, v))
}

// UnitIdentifierContainsFold applies the ContainsFold predicate on the "unit_identifier" field.
func UnitIdentifierContainsFold(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldContainsFold(FieldUnitIdentifier, v))
}

// CompositeIdentifierEQ applies the EQ predicate on the "composite_identifier" field.
func CompositeIdentifierEQ(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldCompositeIdentifier, v))
}

// CompositeIdentifierNEQ applies the NEQ predicate on the "composite_identifier" field.
func CompositeIdentifierNEQ(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldCompositeIdentifier, v))
}

// CompositeIdentifierIn applies the In predicate on the "composite_identifier" field.
func CompositeIdentifierIn(vs ...string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldCompositeIdentifier, vs...))
}

// CompositeIdentifierNotIn applies the NotIn predicate on the "composite_identifier" field.
func CompositeIdentifierNotIn(vs ...string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldCompositeIdentifier, vs...))
}

// CompositeIdentifierGT applies the GT predicate on the "composite_identifier" field.
func CompositeIdentifierGT(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldCompositeIdentifier, v))
}

// CompositeIdentifierGTE applies the GTE predicate on the "composite_identifier" field.
func CompositeIdentifierGTE(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldCompositeIdentifier, v))
}

// CompositeIdentifierLT applies the LT predicate on the "composite_identifier" field.
func CompositeIdentifierLT(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldCompositeIdentifier, v))
}

// CompositeIdentifierLTE applies the LTE predicate on the "composite_identifier" field.
func CompositeIdentifierLTE(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldCompositeIdentifier, v))
}

// CompositeIdentifierContains applies the Contains predicate on the "composite_identifier" field.
func CompositeIdentifierContains(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldContains(FieldCompositeIdentifier, v))
}

// CompositeIdentifierHasPrefix applies the HasPrefix predicate on the "composite_identifier" field.
func CompositeIdentifierHasPrefix(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldHasPrefix(FieldCompositeIdentifier, v))
}

// CompositeIdentifierHasSuffix applies the HasSuffix predicate on the "composite_identifier" field.
func CompositeIdentifierHasSuffix(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldHasSuffix(FieldCompositeIdentifier, v))
}

// CompositeIdentifierEqualFold applies the EqualFold predicate on the "composite_identifier" field.
func CompositeIdentifierEqualFold(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEqualFold(FieldCompositeIdentifier, v))
}

// CompositeIdentifierContainsFold applies the ContainsFold predicate on the "composite_identifier" field.
func CompositeIdentifierContainsFold(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldContainsFold(FieldCompositeIdentifier, v))
}

// FloorNumberEQ applies the EQ predicate on the "floor_number" field.
func FloorNumberEQ(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldFloorNumber, v))
}

// FloorNumberNEQ applies the NEQ predicate on the "floor_number" field.
func FloorNumberNEQ(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldFloorNumber, v))
}

// FloorNumberIn applies the In predicate on the "floor_number" field.
func FloorNumberIn(vs ...int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldFloorNumber, vs...))
}

// FloorNumberNotIn applies the NotIn predicate on the "floor_number" field.
func FloorNumberNotIn(vs ...int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldFloorNumber, vs...))
}

// FloorNumberGT applies the GT predicate on the "floor_number" field.
func FloorNumberGT(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldFloorNumber, v))
}

// FloorNumberGTE applies the GTE predicate on the "floor_number" field.
func FloorNumberGTE(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldFloorNumber, v))
}

// FloorNumberLT applies the LT predicate on the "floor_number" field.
func FloorNumberLT(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldFloorNumber, v))
}

// FloorNumberLTE applies the LTE predicate on the "floor_number" field.
func FloorNumberLTE(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldFloorNumber, v))
}

// UnitTypeCodeEQ applies the EQ predicate on the "unit_type_code" field.
func UnitTypeCodeEQ(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldUnitTypeCode, v))
}

// UnitTypeCodeNEQ applies the NEQ predicate on the "unit_type_code" field.
func UnitTypeCodeNEQ(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldUnitTypeCode, v))
}

// UnitTypeCodeIn applies the In predicate on the "unit_type_code" field.
func UnitTypeCodeIn(vs ...string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldUnitTypeCode, vs...))
}

// UnitTypeCodeNotIn applies the NotIn predicate on the "unit_type_code" field.
func UnitTypeCodeNotIn(vs ...string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldUnitTypeCode, vs...))
}

// UnitTypeCodeGT applies the GT predicate on the "unit_type_code" field.
func UnitTypeCodeGT(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldUnitTypeCode, v))
}

// UnitTypeCodeGTE applies the GTE predicate on the "unit_type_code" field.
func UnitTypeCodeGTE(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldUnitTypeCode, v))
}

// UnitTypeCodeLT applies the LT predicate on the "unit_type_code" field.
func UnitTypeCodeLT(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldUnitTypeCode, v))
}

// UnitTypeCodeLTE applies the LTE predicate on the "unit_type_code" field.
func UnitTypeCodeLTE(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldUnitTypeCode, v))
}

// UnitTypeCodeContains applies the Contains predicate on the "unit_type_code" field.
func UnitTypeCodeContains(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldContains(FieldUnitTypeCode, v))
}

// UnitTypeCodeHasPrefix applies the HasPrefix predicate on the "unit_type_code" field.
func UnitTypeCodeHasPrefix(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldHasPrefix(FieldUnitTypeCode, v))
}

// UnitTypeCodeHasSuffix applies the HasSuffix predicate on the "unit_type_code" field.
func UnitTypeCodeHasSuffix(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldHasSuffix(FieldUnitTypeCode, v))
}

// UnitTypeCodeIsNil applies the IsNil predicate on the "unit_type_code" field.
func UnitTypeCodeIsNil() predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIsNull(FieldUnitTypeCode))
}

// UnitTypeCodeNotNil applies the NotNil predicate on the "unit_type_code" field.
func UnitTypeCodeNotNil() predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotNull(FieldUnitTypeCode))
}

// UnitTypeCodeEqualFold applies the EqualFold predicate on the "unit_type_code" field.
func UnitTypeCodeEqualFold(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEqualFold(FieldUnitTypeCode, v))
}

// UnitTypeCodeContainsFold applies the ContainsFold predicate on the "unit_type_code" field.
func UnitTypeCodeContainsFold(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldContainsFold(FieldUnitTypeCode, v))
}

// OccupancyStatusCodeEQ applies the EQ predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeEQ(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeNEQ applies the NEQ predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeNEQ(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeIn applies the In predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeIn(vs ...string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldOccupancyStatusCode, vs...))
}

// OccupancyStatusCodeNotIn applies the NotIn predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeNotIn(vs ...string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldOccupancyStatusCode, vs...))
}

// OccupancyStatusCodeGT applies the GT predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeGT(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeGTE applies the GTE predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeGTE(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeLT applies the LT predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeLT(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeLTE applies the LTE predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeLTE(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeContains applies the Contains predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeContains(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldContains(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeHasPrefix applies the HasPrefix predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeHasPrefix(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldHasPrefix(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeHasSuffix applies the HasSuffix predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeHasSuffix(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldHasSuffix(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeIsNil applies the IsNil predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeIsNil() predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIsNull(FieldOccupancyStatusCode))
}

// OccupancyStatusCodeNotNil applies the NotNil predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeNotNil() predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotNull(FieldOccupancyStatusCode))
}

// OccupancyStatusCodeEqualFold applies the EqualFold predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeEqualFold(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEqualFold(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeContainsFold applies the ContainsFold predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeContainsFold(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldContainsFold(FieldOccupancyStatusCode, v))
}

// AreaSqmEQ applies the EQ predicate on the "area_sqm" field.
func AreaSqmEQ(v float64) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldAreaSqm, v))
}

// AreaSqmNEQ applies the NEQ predicate on the "area_sqm" field.
func AreaSqmNEQ(v float64) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldAreaSqm, v))
}

// AreaSqmIn applies the In predicate on the "area_sqm" field.
func AreaSqmIn(vs ...float64) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldAreaSqm, vs...))
}

// AreaSqmNotIn applies the NotIn predicate on the "area_sqm" field.
func AreaSqmNotIn(vs ...float64) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldAreaSqm, vs...))
}

// AreaSqmGT applies the GT predicate on the "area_sqm" field.
func AreaSqmGT(v float64) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldAreaSqm, v))
}

// AreaSqmGTE applies the GTE predicate on the "area_sqm" field.
func AreaSqmGTE(v float64) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldAreaSqm, v))
}

// AreaSqmLT applies the LT predicate on the "area_sqm" field.
func AreaSqmLT(v float64) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldAreaSqm, v))
}

// AreaSqmLTE applies the LTE predicate on the "area_sqm" field.
func AreaSqmLTE(v float64) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldAreaSqm, v))
}

// AreaSqmIsNil applies the IsNil predicate on the "area_sqm" field.
func AreaSqmIsNil() predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIsNull(FieldAreaSqm))
}

// AreaSqmNotNil applies the NotNil predicate on the "area_sqm" field.
func AreaSqmNotNil() predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotNull(FieldAreaSqm))
}

// RoomCountEQ applies the EQ predicate on the "room_count" field.
func RoomCountEQ(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldRoomCount, v))
}

// RoomCountNEQ applies the NEQ predicate on the "room_count" field.
func RoomCountNEQ(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldRoomCount, v))
}

// RoomCountIn applies the In predicate on the "room_count" field.
func RoomCountIn(vs ...int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldRoomCount, vs...))
}

// RoomCountNotIn applies the NotIn predicate on the "room_count" field.
func RoomCountNotIn(vs ...int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldRoomCount, vs...))
}

// RoomCountGT applies the GT predicate on the "room_count" field.
func RoomCountGT(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldRoomCount, v))
}

// RoomCountGTE applies the GTE predicate on the "room_count" field.
func RoomCountGTE(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldRoomCount, v))
}

// RoomCountLT applies the LT predicate on the "room_count" field.
func RoomCountLT(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldRoomCount, v))
}

// RoomCountLTE applies the LTE predicate on the "room_count" field.
func RoomCountLTE(v int) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldRoomCount, v))
}

// RoomCountIsNil applies the IsNil predicate on the "room_count" field.
func RoomCountIsNil() predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIsNull(FieldRoomCount))
}

// RoomCountNotNil applies the NotNil predicate on the "room_count" field.
func RoomCountNotNil() predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotNull(FieldRoomCount))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PropertyUnit) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PropertyUnit) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PropertyUnit) predicate.PropertyUnit {
	return predicate.PropertyUnit(sql.NotPredicates(p))
}
