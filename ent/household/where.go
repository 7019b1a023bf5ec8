// Code generated by ent, DO NOT EDIT.

package household

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourcePackageID applies equality check predicate on the "source_package_id" field. It's identical to SourcePackageIDEQ.
func SourcePackageID(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldSourcePackageID, v))
}

// HeadOfHouseholdID applies equality check predicate on the "head_of_household_id" field. It's identical to HeadOfHouseholdIDEQ.
func HeadOfHouseholdID(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldHeadOfHouseholdID, v))
}

// HouseholdSize applies equality check predicate on the "household_size" field. It's identical to HouseholdSizeEQ.
func HouseholdSize(v int) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldHouseholdSize, v))
}

// MalesUnder18 applies equality check predicate on the "males_under_18" field. It's identical to MalesUnder18EQ.
func MalesUnder18(v int) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldMalesUnder18, v))
}

// FemalesUnder18 applies equality check predicate on the "females_under_18" field. It's identical to FemalesUnder18EQ.
func FemalesUnder18(v int) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldFemalesUnder18, v))
}

// MalesAdult applies equality check predicate on the "males_adult" field. It's identical to MalesAdultEQ.
func MalesAdult(v int) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldMalesAdult, v))
}

// FemalesAdult applies equality check predicate on the "females_adult" field. It's identical to FemalesAdultEQ.
func FemalesAdult(v int) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldFemalesAdult, v))
}

// ResidencyStatusCode applies equality check predicate on the "residency_status_code" field. It's identical to ResidencyStatusCodeEQ.
func ResidencyStatusCode(v string) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldResidencyStatusCode, v))
}

// DisplacementOriginGovernorate applies equality check predicate on the "displacement_origin_governorate" field. It's identical to DisplacementOriginGovernorateEQ.
func DisplacementOriginGovernorate(v string) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldDisplacementOriginGovernorate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Household {
	return predicate.Household(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Household {
	return predicate.Household(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Household {
	return predicate.Household(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Household {
	return predicate.Household(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Household {
	return predicate.Household(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourcePackageIDEQ applies the EQ predicate on the "source_package_id" field.
func SourcePackageIDEQ(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldSourcePackageID, v))
}

// SourcePackageIDNEQ applies the NEQ predicate on the "source_package_id" field.
func SourcePackageIDNEQ(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldNEQ(FieldSourcePackageID, v))
}

// SourcePackageIDIn applies the In predicate on the "source_package_id" field.
func SourcePackageIDIn(vs ...uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDNotIn applies the NotIn predicate on the "source_package_id" field.
func SourcePackageIDNotIn(vs ...uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldNotIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDGT applies the GT predicate on the "source_package_id" field.
func SourcePackageIDGT(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldGT(FieldSourcePackageID, v))
}

// SourcePackageIDGTE applies the GTE predicate on the "source_package_id" field.
func SourcePackageIDGTE(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldGTE(FieldSourcePackageID, v))
}

// SourcePackageIDLT applies the LT predicate on the "source_package_id" field.
func SourcePackageIDLT(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldLT(FieldSourcePackageID, v))
}

// SourcePackageIDLTE applies the LTE predicate on the "source_package_id" field.
func SourcePackageIDLTE(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldLTE(FieldSourcePackageID, v))
}

// SourcePackageIDIsNil applies the IsNil predicate on the "source_package_id" field.
func SourcePackageIDIsNil() predicate.Household {
	return predicate.Household(sql.FieldIsNull(FieldSourcePackageID))
}

// SourcePackageIDNotNil applies the NotNil predicate on the "source_package_id" field.
func SourcePackageIDNotNil() predicate.Household {
	return predicate.Household(sql.FieldNotNull(FieldSourcePackageID))
}

// HeadOfHouseholdIDEQ applies the EQ predicate on the "head_of_household_id" field.
func HeadOfHouseholdIDEQ(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldHeadOfHouseholdID, v))
}

// HeadOfHouseholdIDNEQ applies the NEQ predicate on the "head_of_household_id" field.
func HeadOfHouseholdIDNEQ(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldNEQ(FieldHeadOfHouseholdID, v))
}

// HeadOfHouseholdIDIn applies the In predicate on the "head_of_household_id" field.
func HeadOfHouseholdIDIn(vs ...uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldIn(FieldHeadOfHouseholdID, vs...))
}

// HeadOfHouseholdIDNotIn applies the NotIn predicate on the "head_of_household_id" field.
func HeadOfHouseholdIDNotIn(vs ...uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldNotIn(FieldHeadOfHouseholdID, vs...))
}

// HeadOfHouseholdIDGT applies the GT predicate on the "head_of_household_id" field.
func HeadOfHouseholdIDGT(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldGT(FieldHeadOfHouseholdID, v))
}

// HeadOfHouseholdIDGTE applies the GTE predicate on the "head_of_household_id" field.
func HeadOfHouseholdIDGTE(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldGTE(FieldHeadOfHouseholdID, v))
}

// HeadOfHouseholdIDLT applies the LT predicate on the "head_of_household_id" field.
func HeadOfHouseholdIDLT(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldLT(FieldHeadOfHouseholdID, v))
}

// HeadOfHouseholdIDLTE applies the LTE predicate on the "head_of_household_id" field.
func HeadOfHouseholdIDLTE(v uuid.UUID) predicate.Household {
	return predicate.Household(sql.FieldLTE(FieldHeadOfHouseholdID, v))
}

// HouseholdSizeEQ applies the EQ predicate on the "household_size" field.
func HouseholdSizeEQ(v int) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldHouseholdSize, v))
}

// HouseholdSizeNEQ applies the NEQ predicate on the "household_size" field.
func HouseholdSizeNEQ(v int) predicate.Household {
	return predicate.Household(sql.FieldNEQ(FieldHouseholdSize, v))
}

// HouseholdSizeIn applies the In predicate on the "household_size" field.
func HouseholdSizeIn(vs ...int) predicate.Household {
	return predicate.Household(sql.FieldIn(FieldHouseholdSize, vs...))
}

// HouseholdSizeNotIn applies the NotIn predicate on the "household_size" field.
func HouseholdSizeNotIn(vs ...int) predicate.Household {
	return predicate.Household(sql.FieldNotIn(FieldHouseholdSize, vs...))
}

// HouseholdSizeGT applies the GT predicate on the "household_size" field.
func HouseholdSizeGT(v int) predicate.Household {
	return predicate.Household(sql.FieldGT(FieldHouseholdSize, v))
}

// HouseholdSizeGTE applies the GTE predicate on the "household_size" field.
func HouseholdSizeGTE(v int) predicate.Household {
	return predicate.Household(sql.FieldGTE(FieldHouseholdSize, v))
}

// HouseholdSizeLT applies the LT predicate on the "household_size" field.
func HouseholdSizeLT(v int) predicate.Household {
	return predicate.Household(sql.FieldLT(FieldHouseholdSize, v))
}

// HouseholdSizeLTE applies the LTE predicate on the "household_size" field.
func HouseholdSizeLTE(v int) predicate.Household {
	return predicate.Household(sql.FieldLTE(FieldHouseholdSize, v))
}

// MalesUnder18EQ applies the EQ predicate on the "males_under_18" field.
func MalesUnder18EQ(v int) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldMalesUnder18, v))
}

// MalesUnder18NEQ applies the NEQ predicate on the "males_under_18" field.
func MalesUnder18NEQ(v int) predicate.Household {
	return predicate.Household(sql.FieldNEQ(FieldMalesUnder18, v))
}

// MalesUnder18In applies the In predicate on the "males_under_18" field.
func MalesUnder18In(vs ...int) predicate.Household {
	return predicate.Household(sql.FieldIn(FieldMalesUnder18, vs...))
}

// MalesUnder18NotIn applies the NotIn predicate on the "males_under_18" field.
func MalesUnder18NotIn(vs ...int) predicate.Household {
	return predicate.Household(sql.FieldNotIn(FieldMalesUnder18, vs...))
}

// MalesUnder18GT applies the GT predicate on the "males_under_18" field.
func MalesUnder18GT(v int) predicate.Household {
	return predicate.Household(sql.FieldGT(FieldMalesUnder18, v))
}

// MalesUnder18GTE applies the GTE predicate on the "males_under_18" field.
func MalesUnder18GTE(v int) predicate.Household {
	return predicate.Household(sql.FieldGTE(FieldMalesUnder18, v))
}

// MalesUnder18LT applies the LT predicate on the "males_under_18" field.
func MalesUnder18LT(v int) predicate.Household {
	return predicate.Household(sql.FieldLT(FieldMalesUnder18, v))
}

// MalesUnder18LTE applies the LTE predicate on the "males_under_18" field.
func MalesUnder18LTE(v int) predicate.Household {
	return predicate.Household(sql.FieldLTE(FieldMalesUnder18, v))
}

// FemalesUnder18EQ applies the EQ predicate on the "females_under_18" field.
func FemalesUnder18EQ(v int) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldFemalesUnder18, v))
}

// FemalesUnder18NEQ applies the NEQ predicate on the "females_under_18" field.
func FemalesUnder18NEQ(v int) predicate.Household {
	return predicate.Household(sql.FieldNEQ(FieldFemalesUnder18, v))
}

// FemalesUnder18In applies the In predicate on the "females_under_18" field.
func FemalesUnder18In(vs ...int) predicate.Household {
	return predicate.Household(sql.FieldIn(FieldFemalesUnder18, vs...))
}

// FemalesUnder18NotIn applies the NotIn predicate on the "females_under_18" field.
func FemalesUnder18NotIn(vs ...int) predicate.Household {
	return predicate.Household(sql.FieldNotIn(FieldFemalesUnder18, vs...))
}

// FemalesUnder18GT applies the GT predicate on the "females_under_18" field.
func FemalesUnder18GT(v int) predicate.Household {
	return predicate.Household(sql.FieldGT(FieldFemalesUnder18, v))
}

// FemalesUnder18GTE applies the GTE predicate on the "females_under_18" field.
func FemalesUnder18GTE(v int) predicate.Household {
	return predicate.Household(sql.FieldGTE(FieldFemalesUnder18, v))
}

// FemalesUnder18LT applies the LT predicate on the "females_under_18" field.
func FemalesUnder18LT(v int) predicate.Household {
	return predicate.Household(sql.FieldLT(FieldFemalesUnder18, v))
}

// FemalesUnder18LTE applies the LTE predicate on the "females_under_18" field.
func FemalesUnder18LTE(v int) predicate.Household {
	return predicate.Household(sql.FieldLTE(FieldFemalesUnder18, v))
}

// MalesAdultEQ applies the EQ predicate on the "males_adult" field.
func MalesAdultEQ(v int) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldMalesAdult, v))
}

// MalesAdultNEQ applies the NEQ predicate on the "males_adult" field.
func MalesAdultNEQ(v int) predicate.Household {
	return predicate.Household(sql.FieldNEQ(FieldMalesAdult, v))
}

// MalesAdultIn applies the In predicate on the "males_adult" field.
func MalesAdultIn(vs ...int) predicate.Household {
	return predicate.Household(sql.FieldIn(FieldMalesAdult, vs...))
}

// MalesAdultNotIn applies the NotIn predicate on the "males_adult" field.
func MalesAdultNotIn(vs ...int) predicate.Household {
	return predicate.Household(sql.FieldNotIn(FieldMalesAdult, vs...))
}

// MalesAdultGT applies the GT predicate on the "males_adult" field.
func MalesAdultGT(v int) predicate.Household {
	return predicate.Household(sql.FieldGT(FieldMalesAdult, v))
}

// MalesAdultGTE applies the GTE predicate on the "males_adult" field.
func MalesAdultGTE(v int) predicate.Household {
	return predicate.Household(sql.FieldGTE(FieldMalesAdult, v))
}

// MalesAdultLT applies the LT predicate on the "males_adult" field.
func MalesAdultLT(v int) predicate.Household {
	return predicate.Household(sql.FieldLT(FieldMalesAdult, v))
}

// MalesAdultLTE applies the LTE predicate on the "males_adult" field.
func MalesAdultLTE(v int) predicate.Household {
	return predicate.Household(sql.FieldLTE(FieldMalesAdult, v))
}

// FemalesAdultEQ applies the EQ predicate on the "females_adult" field.
func FemalesAdultEQ(v int) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldFemalesAdult, v))
}

// FemalesAdultNEQ applies the NEQ predicate on the "females_adult" field.
func FemalesAdultNEQ(v int) predicate.Household {
	return predicate.Household(sql.FieldNEQ(FieldFemalesAdult, v))
}

// FemalesAdultIn applies the In predicate on the "females_adult" field.
func FemalesAdultIn(vs ...int) predicate.Household {
	return predicate.Household(sql.FieldIn(FieldFemalesAdult, vs...))
}

// FemalesAdultNotIn applies the NotIn predicate on the "females_adult" field.
func FemalesAdultNotIn(vs ...int) predicate.Household {
	return predicate.Household(sql.FieldNotIn(FieldFemalesAdult, vs...))
}

// FemalesAdultGT applies the GT predicate on the "females_adult" field.
func FemalesAdultGT(v int) predicate.Household {
	return predicate.Household(sql.FieldGT(FieldFemalesAdult, v))
}

// FemalesAdultGTE applies the GTE predicate on the "females_adult" field.
func FemalesAdultGTE(v int) predicate.Household {
	return predicate.Household(sql.FieldGTE(FieldFemalesAdult, v))
}

// FemalesAdultLT applies the LT predicate on the "females_adult" field.
func FemalesAdultLT(v int) predicate.Household {
	return predicate.Household(sql.FieldLT(FieldFemalesAdult, v))
}

// FemalesAdultLTE applies the LTE predicate on the "females_adult" field.
func FemalesAdultLTE(v int) predicate.Household {
	return predicate.Household(sql.FieldLTE(FieldFemalesAdult, v))
}

// ResidencyStatusCodeEQ applies the EQ predicate on the "residency_status_code" field.
func ResidencyStatusCodeEQ(v string) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldResidencyStatusCode, v))
}

// ResidencyStatusCodeNEQ applies the NEQ predicate on the "residency_status_code" field.
func ResidencyStatusCodeNEQ(v string) predicate.Household {
	return predicate.Household(sql.FieldNEQ(FieldResidencyStatusCode, v))
}

// ResidencyStatusCodeIn applies the In predicate on the "residency_status_code" field.
func ResidencyStatusCodeIn(vs ...string) predicate.Household {
	return predicate.Household(sql.FieldIn(FieldResidencyStatusCode, vs...))
}

// ResidencyStatusCodeNotIn applies the NotIn predicate on the "residency_status_code" field.
func ResidencyStatusCodeNotIn(vs ...string) predicate.Household {
	return predicate.Household(sql.FieldNotIn(FieldResidencyStatusCode, vs...))
}

// ResidencyStatusCodeGT applies the GT predicate on the "residency_status_code" field.
func ResidencyStatusCodeGT(v string) predicate.Household {
	return predicate.Household(sql.FieldGT(FieldResidencyStatusCode, v))
}

// ResidencyStatusCodeGTE applies the GTE predicate on the "residency_status_code" field.
func ResidencyStatusCodeGTE(v string) predicate.Household {
	return predicate.Household(sql.FieldGTE(FieldResidencyStatusCode, v))
}

// ResidencyStatusCodeLT applies the LT predicate on the "residency_status_code" field.
func ResidencyStatusCodeLT(v string) predicate.Household {
	return predicate.Household(sql.FieldLT(FieldResidencyStatusCode, v))
}

// ResidencyStatusCodeLTE applies the LTE predicate on the "residency_status_code" field.
func ResidencyStatusCodeLTE(v string) predicate.Household {
	return predicate.Household(sql.FieldLTE(FieldResidencyStatusCode, v))
}

// ResidencyStatusCodeContains applies the Contains predicate on the "residency_status_code" field.
func ResidencyStatusCodeContains(v string) predicate.Household {
	return predicate.Household(sql.FieldContains(FieldResidencyStatusCode, v))
}

// ResidencyStatusCodeHasPrefix applies the HasPrefix predicate on the "residency_status_code" field.
func ResidencyStatusCodeHasPrefix(v string) predicate.Household {
	return predicate.Household(sql.FieldHasPrefix(FieldResidencyStatusCode, v))
}

// ResidencyStatusCodeHasSuffix applies the HasSuffix predicate on the "residency_status_code" field.
func ResidencyStatusCodeHasSuffix(v string) predicate.Household {
	return predicate.Household(sql.FieldHasSuffix(FieldResidencyStatusCode, v))
}

// ResidencyStatusCodeIsNil applies the IsNil predicate on the "residency_status_code" field.
func ResidencyStatusCodeIsNil() predicate.Household {
	return predicate.Household(sql.FieldIsNull(FieldResidencyStatusCode))
}

// ResidencyStatusCodeNotNil applies the NotNil predicate on the "residency_status_code" field.
func ResidencyStatusCodeNotNil() predicate.Household {
	return predicate.Household(sql.FieldNotNull(FieldResidencyStatusCode))
}

// ResidencyStatusCodeEqualFold applies the EqualFold predicate on the "residency_status_code" field.
func ResidencyStatusCodeEqualFold(v string) predicate.Household {
	return predicate.Household(sql.FieldEqualFold(FieldResidencyStatusCode, v))
}

// ResidencyStatusCodeContainsFold applies the ContainsFold predicate on the "residency_status_code" field.
func ResidencyStatusCodeContainsFold(v string) predicate.Household {
	return predicate.Household(sql.FieldContainsFold(FieldResidencyStatusCode, v))
}

// DisplacementOriginGovernorateEQ applies the EQ predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateEQ(v string) predicate.Household {
	return predicate.Household(sql.FieldEQ(FieldDisplacementOriginGovernorate, v))
}

// DisplacementOriginGovernorateNEQ applies the NEQ predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateNEQ(v string) predicate.Household {
	return predicate.Household(sql.FieldNEQ(FieldDisplacementOriginGovernorate, v))
}

// DisplacementOriginGovernorateIn applies the In predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateIn(vs ...string) predicate.Household {
	return predicate.Household(sql.FieldIn(FieldDisplacementOriginGovernorate, vs...))
}

// DisplacementOriginGovernorateNotIn applies the NotIn predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateNotIn(vs ...string) predicate.Household {
	return predicate.Household(sql.FieldNotIn(FieldDisplacementOriginGovernorate, vs...))
}

// DisplacementOriginGovernorateGT applies the GT predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateGT(v string) predicate.Household {
	return predicate.Household(sql.FieldGT(FieldDisplacementOriginGovernorate, v))
}

// DisplacementOriginGovernorateGTE applies the GTE predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateGTE(v string) predicate.Household {
	return predicate.Household(sql.FieldGTE(FieldDisplacementOriginGovernorate, v))
}

// DisplacementOriginGovernorateLT applies the LT predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateLT(v string) predicate.Household {
	return predicate.Household(sql.FieldLT(FieldDisplacementOriginGovernorate, v))
}

// DisplacementOriginGovernorateLTE applies the LTE predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateLTE(v string) predicate.Household {
	return predicate.Household(sql.FieldLTE(FieldDisplacementOriginGovernorate, v))
}

// DisplacementOriginGovernorateContains applies the Contains predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateContains(v string) predicate.Household {
	return predicate.Household(sql.FieldContains(FieldDisplacementOriginGovernorate, v))
}

// DisplacementOriginGovernorateHasPrefix applies the HasPrefix predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateHasPrefix(v string) predicate.Household {
	return predicate.Household(sql.FieldHasPrefix(FieldDisplacementOriginGovernorate, v))
}

// DisplacementOriginGovernorateHasSuffix applies the HasSuffix predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateHasSuffix(v string) predicate.Household {
	return predicate.Household(sql.FieldHasSuffix(FieldDisplacementOriginGovernorate, v))
}

// DisplacementOriginGovernorateIsNil applies the IsNil predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateIsNil() predicate.Household {
	return predicate.Household(sql.FieldIsNull(FieldDisplacementOriginGovernorate))
}

// DisplacementOriginGovernorateNotNil applies the NotNil predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateNotNil() predicate.Household {
	return predicate.Household(sql.FieldNotNull(FieldDisplacementOriginGovernorate))
}

// DisplacementOriginGovernorateEqualFold applies the EqualFold predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateEqualFold(v string) predicate.Household {
	return predicate.Household(sql.FieldEqualFold(FieldDisplacementOriginGovernorate, v))
}

// DisplacementOriginGovernorateContainsFold applies the ContainsFold predicate on the "displacement_origin_governorate" field.
func DisplacementOriginGovernorateContainsFold(v string) predicate.Household {
	return predicate.Household(sql.FieldContainsFold(FieldDisplacementOriginGovernorate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Household) predicate.Household {
	return predicate.Household(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Household) predicate.Household {
	return predicate.Household(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Household) predicate.Household {
	return predicate.Household(sql.NotPredicates(p))
}
