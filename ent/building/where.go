// Code generated by ent, DO NOT EDIT.

package building

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourcePackageID applies equality check predicate on the "source_package_id" field. It's identical to SourcePackageIDEQ.
func SourcePackageID(v uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldSourcePackageID, v))
}

// BuildingCode applies equality check predicate on the "building_code" field. It's identical to BuildingCodeEQ.
func BuildingCode(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldBuildingCode, v))
}

// GovernorateCode applies equality check predicate on the "governorate_code" field. It's identical to GovernorateCodeEQ.
func GovernorateCode(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldGovernorateCode, v))
}

// DistrictCode applies equality check predicate on the "district_code" field. It's identical to DistrictCodeEQ.
func DistrictCode(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldDistrictCode, v))
}

// SubDistrictCode applies equality check predicate on the "sub_district_code" field. It's identical to SubDistrictCodeEQ.
func SubDistrictCode(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldSubDistrictCode, v))
}

// CommunityCode applies equality check predicate on the "community_code" field. It's identical to CommunityCodeEQ.
func CommunityCode(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldCommunityCode, v))
}

// NeighborhoodCode applies equality check predicate on the "neighborhood_code" field. It's identical to NeighborhoodCodeEQ.
func NeighborhoodCode(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldNeighborhoodCode, v))
}

// BuildingNumber applies equality check predicate on the "building_number" field. It's identical to BuildingNumberEQ.
func BuildingNumber(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldBuildingNumber, v))
}

// BuildingTypeCode applies equality check predicate on the "building_type_code" field. It's identical to BuildingTypeCodeEQ.
func BuildingTypeCode(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldBuildingTypeCode, v))
}

// OccupancyStatusCode applies equality check predicate on the "occupancy_status_code" field. It's identical to OccupancyStatusCodeEQ.
func OccupancyStatusCode(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldOccupancyStatusCode, v))
}

// NumberOfFloors applies equality check predicate on the "number_of_floors" field. It's identical to NumberOfFloorsEQ.
func NumberOfFloors(v int) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldNumberOfFloors, v))
}

// NumberOfUnits applies equality check predicate on the "number_of_units" field. It's identical to NumberOfUnitsEQ.
func NumberOfUnits(v int) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldNumberOfUnits, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldAddress, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldLatitude, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldLongitude, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourcePackageIDEQ applies the EQ predicate on the "source_package_id" field.
func SourcePackageIDEQ(v uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldSourcePackageID, v))
}

// SourcePackageIDNEQ applies the NEQ predicate on the "source_package_id" field.
func SourcePackageIDNEQ(v uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldSourcePackageID, v))
}

// SourcePackageIDIn applies the In predicate on the "source_package_id" field.
func SourcePackageIDIn(vs ...uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDNotIn applies the NotIn predicate on the "source_package_id" field.
func SourcePackageIDNotIn(vs ...uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDGT applies the GT predicate on the "source_package_id" field.
func SourcePackageIDGT(v uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldSourcePackageID, v))
}

// SourcePackageIDGTE applies the GTE predicate on the "source_package_id" field.
func SourcePackageIDGTE(v uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldSourcePackageID, v))
}

// SourcePackageIDLT applies the LT predicate on the "source_package_id" field.
func SourcePackageIDLT(v uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldSourcePackageID, v))
}

// SourcePackageIDLTE applies the LTE predicate on the "source_package_id" field.
func SourcePackageIDLTE(v uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldSourcePackageID, v))
}

// SourcePackageIDIsNil applies the IsNil predicate on the "source_package_id" field.
func SourcePackageIDIsNil() predicate.Building {
	return predicate.Building(sql.FieldIsNull(FieldSourcePackageID))
}

// SourcePackageIDNotNil applies the NotNil predicate on the "source_package_id" field.
func SourcePackageIDNotNil() predicate.Building {
	return predicate.Building(sql.FieldNotNull(FieldSourcePackageID))
}

// BuildingCodeEQ applies the EQ predicate on the "building_code" field.
func BuildingCodeEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldBuildingCode, v))
}

// BuildingCodeNEQ applies the NEQ predicate on the "building_code" field.
func BuildingCodeNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldBuildingCode, v))
}

// BuildingCodeIn applies the In predicate on the "building_code" field.
func BuildingCodeIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldBuildingCode, vs...))
}

// BuildingCodeNotIn applies the NotIn predicate on the "building_code" field.
func BuildingCodeNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldBuildingCode, vs...))
}

// BuildingCodeGT applies the GT predicate on the "building_code" field.
func BuildingCodeGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldBuildingCode, v))
}

// BuildingCodeGTE applies the GTE predicate on the "building_code" field.
func BuildingCodeGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldBuildingCode, v))
}

// BuildingCodeLT applies the LT predicate on the "building_code" field.
func BuildingCodeLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldBuildingCode, v))
}

// BuildingCodeLTE applies the LTE predicate on the "building_code" field.
func BuildingCodeLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldBuildingCode, v))
}

// BuildingCodeContains applies the Contains predicate on the "building_code" field.
func BuildingCodeContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldBuildingCode, v))
}

// BuildingCodeHasPrefix applies the HasPrefix predicate on the "building_code" field.
func BuildingCodeHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldBuildingCode, v))
}

// BuildingCodeHasSuffix applies the HasSuffix predicate on the "building_code" field.
func BuildingCodeHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldBuildingCode, v))
}

// BuildingCodeEqualFold applies the EqualFold predicate on the "building_code" field.
func BuildingCodeEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldBuildingCode, v))
}

// BuildingCodeContainsFold applies the ContainsFold predicate on the "building_code" field.
func BuildingCodeContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldBuildingCode, v))
}

// GovernorateCodeEQ applies the EQ predicate on the "governorate_code" field.
func GovernorateCodeEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldGovernorateCode, v))
}

// GovernorateCodeNEQ applies the NEQ predicate on the "governorate_code" field.
func GovernorateCodeNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldGovernorateCode, v))
}

// GovernorateCodeIn applies the In predicate on the "governorate_code" field.
func GovernorateCodeIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldGovernorateCode, vs...))
}

// GovernorateCodeNotIn applies the NotIn predicate on the "governorate_code" field.
func GovernorateCodeNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldGovernorateCode, vs...))
}

// GovernorateCodeGT applies the GT predicate on the "governorate_code" field.
func GovernorateCodeGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldGovernorateCode, v))
}

// GovernorateCodeGTE applies the GTE predicate on the "governorate_code" field.
func GovernorateCodeGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldGovernorateCode, v))
}

// GovernorateCodeLT applies the LT predicate on the "governorate_code" field.
func GovernorateCodeLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldGovernorateCode, v))
}

// GovernorateCodeLTE applies the LTE predicate on the "governorate_code" field.
func GovernorateCodeLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldGovernorateCode, v))
}

// GovernorateCodeContains applies the Contains predicate on the "governorate_code" field.
func GovernorateCodeContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldGovernorateCode, v))
}

// GovernorateCodeHasPrefix applies the HasPrefix predicate on the "governorate_code" field.
func GovernorateCodeHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldGovernorateCode, v))
}

// GovernorateCodeHasSuffix applies the HasSuffix predicate on the "governorate_code" field.
func GovernorateCodeHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldGovernorateCode, v))
}

// GovernorateCodeEqualFold applies the EqualFold predicate on the "governorate_code" field.
func GovernorateCodeEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldGovernorateCode, v))
}

// GovernorateCodeContainsFold applies the ContainsFold predicate on the "governorate_code" field.
func GovernorateCodeContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldGovernorateCode, v))
}

// DistrictCodeEQ applies the EQ predicate on the "district_code" field.
func DistrictCodeEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldDistrictCode, v))
}

// DistrictCodeNEQ applies the NEQ predicate on the "district_code" field.
func DistrictCodeNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldDistrictCode, v))
}

// DistrictCodeIn applies the In predicate on the "district_code" field.
func DistrictCodeIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldDistrictCode, vs...))
}

// DistrictCodeNotIn applies the NotIn predicate on the "district_code" field.
func DistrictCodeNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldDistrictCode, vs...))
}

// DistrictCodeGT applies the GT predicate on the "district_code" field.
func DistrictCodeGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldDistrictCode, v))
}

// DistrictCodeGTE applies the GTE predicate on the "district_code" field.
func DistrictCodeGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldDistrictCode, v))
}

// DistrictCodeLT applies the LT predicate on the "district_code" field.
func DistrictCodeLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldDistrictCode, v))
}

// DistrictCodeLTE applies the LTE predicate on the "district_code" field.
func DistrictCodeLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldDistrictCode, v))
}

// DistrictCodeContains applies the Contains predicate on the "district_code" field.
func DistrictCodeContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldDistrictCode, v))
}

// DistrictCodeHasPrefix applies the HasPrefix predicate on the "district_code" field.
func DistrictCodeHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldDistrictCode, v))
}

// DistrictCodeHasSuffix applies the HasSuffix predicate on the "district_code" field.
func DistrictCodeHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldDistrictCode, v))
}

// DistrictCodeEqualFold applies the EqualFold predicate on the "district_code" field.
func DistrictCodeEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldDistrictCode, v))
}

// DistrictCodeContainsFold applies the ContainsFold predicate on the "district_code" field.
func DistrictCodeContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldDistrictCode, v))
}

// SubDistrictCodeEQ applies the EQ predicate on the "sub_district_code" field.
func SubDistrictCodeEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldSubDistrictCode, v))
}

// SubDistrictCodeNEQ applies the NEQ predicate on the "sub_district_code" field.
func SubDistrictCodeNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldSubDistrictCode, v))
}

// SubDistrictCodeIn applies the In predicate on the "sub_district_code" field.
func SubDistrictCodeIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldSubDistrictCode, vs...))
}

// SubDistrictCodeNotIn applies the NotIn predicate on the "sub_district_code" field.
func SubDistrictCodeNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldSubDistrictCode, vs...))
}

// SubDistrictCodeGT applies the GT predicate on the "sub_district_code" field.
func SubDistrictCodeGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldSubDistrictCode, v))
}

// SubDistrictCodeGTE applies the GTE predicate on the "sub_district_code" field.
func SubDistrictCodeGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldSubDistrictCode, v))
}

// SubDistrictCodeLT applies the LT predicate on the "sub_district_code" field.
func SubDistrictCodeLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldSubDistrictCode, v))
}

// SubDistrictCodeLTE applies the LTE predicate on the "sub_district_code" field.
func SubDistrictCodeLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldSubDistrictCode, v))
}

// SubDistrictCodeContains applies the Contains predicate on the "sub_district_code" field.
func SubDistrictCodeContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldSubDistrictCode, v))
}

// SubDistrictCodeHasPrefix applies the HasPrefix predicate on the "sub_district_code" field.
func SubDistrictCodeHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldSubDistrictCode, v))
}

// SubDistrictCodeHasSuffix applies the HasSuffix predicate on the "sub_district_code" field.
func SubDistrictCodeHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldSubDistrictCode, v))
}

// SubDistrictCodeEqualFold applies the EqualFold predicate on the "sub_district_code" field.
func SubDistrictCodeEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldSubDistrictCode, v))
}

// SubDistrictCodeContainsFold applies the ContainsFold predicate on the "sub_district_code" field.
func SubDistrictCodeContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldSubDistrictCode, v))
}

// CommunityCodeEQ applies the EQ predicate on the "community_code" field.
func CommunityCodeEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldCommunityCode, v))
}

// CommunityCodeNEQ applies the NEQ predicate on the "community_code" field.
func CommunityCodeNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldCommunityCode, v))
}

// CommunityCodeIn applies the In predicate on the "community_code" field.
func CommunityCodeIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldCommunityCode, vs...))
}

// CommunityCodeNotIn applies the NotIn predicate on the "community_code" field.
func CommunityCodeNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldCommunityCode, vs...))
}

// CommunityCodeGT applies the GT predicate on the "community_code" field.
func CommunityCodeGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldCommunityCode, v))
}

// CommunityCodeGTE applies the GTE predicate on the "community_code" field.
func CommunityCodeGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldCommunityCode, v))
}

// CommunityCodeLT applies the LT predicate on the "community_code" field.
func CommunityCodeLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldCommunityCode, v))
}

// CommunityCodeLTE applies the LTE predicate on the "community_code" field.
func CommunityCodeLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldCommunityCode, v))
}

// CommunityCodeContains applies the Contains predicate on the "community_code" field.
func CommunityCodeContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldCommunityCode, v))
}

// CommunityCodeHasPrefix applies the HasPrefix predicate on the "community_code" field.
func CommunityCodeHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldCommunityCode, v))
}

// CommunityCodeHasSuffix applies the HasSuffix predicate on the "community_code" field.
func CommunityCodeHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldCommunityCode, v))
}

// CommunityCodeEqualFold applies the EqualFold predicate on the "community_code" field.
func CommunityCodeEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldCommunityCode, v))
}

// CommunityCodeContainsFold applies the ContainsFold predicate on the "community_code" field.
func CommunityCodeContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldCommunityCode, v))
}

// NeighborhoodCodeEQ applies the EQ predicate on the "neighborhood_code" field.
func NeighborhoodCodeEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldNeighborhoodCode, v))
}

// NeighborhoodCodeNEQ applies the NEQ predicate on the "neighborhood_code" field.
func NeighborhoodCodeNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldNeighborhoodCode, v))
}

// NeighborhoodCodeIn applies the In predicate on the "neighborhood_code" field.
func NeighborhoodCodeIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldNeighborhoodCode, vs...))
}

// NeighborhoodCodeNotIn applies the NotIn predicate on the "neighborhood_code" field.
func NeighborhoodCodeNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldNeighborhoodCode, vs...))
}

// NeighborhoodCodeGT applies the GT predicate on the "neighborhood_code" field.
func NeighborhoodCodeGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldNeighborhoodCode, v))
}

// NeighborhoodCodeGTE applies the GTE predicate on the "neighborhood_code" field.
func NeighborhoodCodeGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldNeighborhoodCode, v))
}

// NeighborhoodCodeLT applies the LT predicate on the "neighborhood_code" field.
func NeighborhoodCodeLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldNeighborhoodCode, v))
}

// NeighborhoodCodeLTE applies the LTE predicate on the "neighborhood_code" field.
func NeighborhoodCodeLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldNeighborhoodCode, v))
}

// NeighborhoodCodeContains applies the Contains predicate on the "neighborhood_code" field.
func NeighborhoodCodeContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldNeighborhoodCode, v))
}

// NeighborhoodCodeHasPrefix applies the HasPrefix predicate on the "neighborhood_code" field.
func NeighborhoodCodeHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldNeighborhoodCode, v))
}

// NeighborhoodCodeHasSuffix applies the HasSuffix predicate on the "neighborhood_code" field.
func NeighborhoodCodeHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldNeighborhoodCode, v))
}

// NeighborhoodCodeEqualFold applies the EqualFold predicate on the "neighborhood_code" field.
func NeighborhoodCodeEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldNeighborhoodCode, v))
}

// NeighborhoodCodeContainsFold applies the ContainsFold predicate on the "neighborhood_code" field.
func NeighborhoodCodeContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldNeighborhoodCode, v))
}

// BuildingNumberEQ applies the EQ predicate on the "building_number" field.
func BuildingNumberEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldBuildingNumber, v))
}

// BuildingNumberNEQ applies the NEQ predicate on the "building_number" field.
func BuildingNumberNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldBuildingNumber, v))
}

// BuildingNumberIn applies the In predicate on the "building_number" field.
func BuildingNumberIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldBuildingNumber, vs...))
}

// BuildingNumberNotIn applies the NotIn predicate on the "building_number" field.
func BuildingNumberNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldBuildingNumber, vs...))
}

// BuildingNumberGT applies the GT predicate on the "building_number" field.
func BuildingNumberGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldBuildingNumber, v))
}

// BuildingNumberGTE applies the GTE predicate on the "building_number" field.
func BuildingNumberGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldBuildingNumber, v))
}

// BuildingNumberLT applies the LT predicate on the "building_number" field.
func BuildingNumberLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldBuildingNumber, v))
}

// BuildingNumberLTE applies the LTE predicate on the "building_number" field.
func BuildingNumberLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldBuildingNumber, v))
}

// BuildingNumberContains applies the Contains predicate on the "building_number" field.
func BuildingNumberContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldBuildingNumber, v))
}

// BuildingNumberHasPrefix applies the HasPrefix predicate on the "building_number" field.
func BuildingNumberHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldBuildingNumber, v))
}

// BuildingNumberHasSuffix applies the HasSuffix predicate on the "building_number" field.
func BuildingNumberHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldBuildingNumber, v))
}

// BuildingNumberEqualFold applies the EqualFold predicate on the "building_number" field.
func BuildingNumberEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldBuildingNumber, v))
}

// BuildingNumberContainsFold applies the ContainsFold predicate on the "building_number" field.
func BuildingNumberContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldBuildingNumber, v))
}

// BuildingTypeCodeEQ applies the EQ predicate on the "building_type_code" field.
func BuildingTypeCodeEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldBuildingTypeCode, v))
}

// BuildingTypeCodeNEQ applies the NEQ predicate on the "building_type_code" field.
func BuildingTypeCodeNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldBuildingTypeCode, v))
}

// BuildingTypeCodeIn applies the In predicate on the "building_type_code" field.
func BuildingTypeCodeIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldBuildingTypeCode, vs...))
}

// BuildingTypeCodeNotIn applies the NotIn predicate on the "building_type_code" field.
func BuildingTypeCodeNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldBuildingTypeCode, vs...))
}

// BuildingTypeCodeGT applies the GT predicate on the "building_type_code" field.
func BuildingTypeCodeGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldBuildingTypeCode, v))
}

// BuildingTypeCodeGTE applies the GTE predicate on the "building_type_code" field.
func BuildingTypeCodeGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldBuildingTypeCode, v))
}

// BuildingTypeCodeLT applies the LT predicate on the "building_type_code" field.
func BuildingTypeCodeLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldBuildingTypeCode, v))
}

// BuildingTypeCodeLTE applies the LTE predicate on the "building_type_code" field.
func BuildingTypeCodeLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldBuildingTypeCode, v))
}

// BuildingTypeCodeContains applies the Contains predicate on the "building_type_code" field.
func BuildingTypeCodeContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldBuildingTypeCode, v))
}

// BuildingTypeCodeHasPrefix applies the HasPrefix predicate on the "building_type_code" field.
func BuildingTypeCodeHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldBuildingTypeCode, v))
}

// BuildingTypeCodeHasSuffix applies the HasSuffix predicate on the "building_type_code" field.
func BuildingTypeCodeHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldBuildingTypeCode, v))
}

// BuildingTypeCodeIsNil applies the IsNil predicate on the "building_type_code" field.
func BuildingTypeCodeIsNil() predicate.Building {
	return predicate.Building(sql.FieldIsNull(FieldBuildingTypeCode))
}

// BuildingTypeCodeNotNil applies the NotNil predicate on the "building_type_code" field.
func BuildingTypeCodeNotNil() predicate.Building {
	return predicate.Building(sql.FieldNotNull(FieldBuildingTypeCode))
}

// BuildingTypeCodeEqualFold applies the EqualFold predicate on the "building_type_code" field.
func BuildingTypeCodeEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldBuildingTypeCode, v))
}

// BuildingTypeCodeContainsFold applies the ContainsFold predicate on the "building_type_code" field.
func BuildingTypeCodeContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldBuildingTypeCode, v))
}

// OccupancyStatusCodeEQ applies the EQ predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeNEQ applies the NEQ predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeIn applies the In predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldOccupancyStatusCode, vs...))
}

// OccupancyStatusCodeNotIn applies the NotIn predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldOccupancyStatusCode, vs...))
}

// OccupancyStatusCodeGT applies the GT predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeGTE applies the GTE predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeLT applies the LT predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeLTE applies the LTE predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeContains applies the Contains predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeHasPrefix applies the HasPrefix predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeHasSuffix applies the HasSuffix predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeIsNil applies the IsNil predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeIsNil() predicate.Building {
	return predicate.Building(sql.FieldIsNull(FieldOccupancyStatusCode))
}

// OccupancyStatusCodeNotNil applies the NotNil predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeNotNil() predicate.Building {
	return predicate.Building(sql.FieldNotNull(FieldOccupancyStatusCode))
}

// OccupancyStatusCodeEqualFold applies the EqualFold predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldOccupancyStatusCode, v))
}

// OccupancyStatusCodeContainsFold applies the ContainsFold predicate on the "occupancy_status_code" field.
func OccupancyStatusCodeContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldOccupancyStatusCode, v))
}

// NumberOfFloorsEQ applies the EQ predicate on the "number_of_floors" field.
func NumberOfFloorsEQ(v int) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldNumberOfFloors, v))
}

// NumberOfFloorsNEQ applies the NEQ predicate on the "number_of_floors" field.
func NumberOfFloorsNEQ(v int) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldNumberOfFloors, v))
}

// NumberOfFloorsIn applies the In predicate on the "number_of_floors" field.
func NumberOfFloorsIn(vs ...int) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldNumberOfFloors, vs...))
}

// NumberOfFloorsNotIn applies the NotIn predicate on the "number_of_floors" field.
func NumberOfFloorsNotIn(vs ...int) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldNumberOfFloors, vs...))
}

// NumberOfFloorsGT applies the GT predicate on the "number_of_floors" field.
func NumberOfFloorsGT(v int) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldNumberOfFloors, v))
}

// NumberOfFloorsGTE applies the GTE predicate on the "number_of_floors" field.
func NumberOfFloorsGTE(v int) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldNumberOfFloors, v))
}

// NumberOfFloorsLT applies the LT predicate on the "number_of_floors" field.
func NumberOfFloorsLT(v int) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldNumberOfFloors, v))
}

// NumberOfFloorsLTE applies the LTE predicate on the "number_of_floors" field.
func NumberOfFloorsLTE(v int) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldNumberOfFloors, v))
}

// NumberOfUnitsEQ applies the EQ predicate on the "number_of_units" field.
func NumberOfUnitsEQ(v int) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldNumberOfUnits, v))
}

// NumberOfUnitsNEQ applies the NEQ predicate on the "number_of_units" field.
func NumberOfUnitsNEQ(v int) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldNumberOfUnits, v))
}

// NumberOfUnitsIn applies the In predicate on the "number_of_units" field.
func NumberOfUnitsIn(vs ...int) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldNumberOfUnits, vs...))
}

// NumberOfUnitsNotIn applies the NotIn predicate on the "number_of_units" field.
func NumberOfUnitsNotIn(vs ...int) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldNumberOfUnits, vs...))
}

// NumberOfUnitsGT applies the GT predicate on the "number_of_units" field.
func NumberOfUnitsGT(v int) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldNumberOfUnits, v))
}

// NumberOfUnitsGTE applies the GTE predicate on the "number_of_units" field.
func NumberOfUnitsGTE(v int) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldNumberOfUnits, v))
}

// NumberOfUnitsLT applies the LT predicate on the "number_of_units" field.
func NumberOfUnitsLT(v int) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldNumberOfUnits, v))
}

// NumberOfUnitsLTE applies the LTE predicate on the "number_of_units" field.
func NumberOfUnitsLTE(v int) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldNumberOfUnits, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Building {
	return predicate.Building(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Building {
	return predicate.Building(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldAddress, v))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldLatitude, v))
}

// LatitudeIsNil applies the IsNil predicate on the "latitude" field.
func LatitudeIsNil() predicate.Building {
	return predicate.Building(sql.FieldIsNull(FieldLatitude))
}

// LatitudeNotNil applies the NotNil predicate on the "latitude" field.
func LatitudeNotNil() predicate.Building {
	return predicate.Building(sql.FieldNotNull(FieldLatitude))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldLongitude, v))
}

// LongitudeIsNil applies the IsNil predicate on the "longitude" field.
func LongitudeIsNil() predicate.Building {
	return predicate.Building(sql.FieldIsNull(FieldLongitude))
}

// LongitudeNotNil applies the NotNil predicate on the "longitude" field.
func LongitudeNotNil() predicate.Building {
	return predicate.Building(sql.FieldNotNull(FieldLongitude))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Building {
	return predicate.Building(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Building {
	return predicate.Building(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Building) predicate.Building {
	return predicate.Building(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Building) predicate.Building {
	return predicate.Building(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Building) predicate.Building {
	return predicate.Building(sql.NotPredicates(p))
}
