// Code generated by ent, DO NOT EDIT.

package person

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourcePackageID applies equality check predicate on the "source_package_id" field. It's identical to SourcePackageIDEQ.
func SourcePackageID(v uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldSourcePackageID, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFirstName, v))
}

// FatherName applies equality check predicate on the "father_name" field. It's identical to FatherNameEQ.
func FatherName(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFatherName, v))
}

// FamilyName applies equality check predicate on the "family_name" field. It's identical to FamilyNameEQ.
func FamilyName(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFamilyName, v))
}

// MotherName applies equality check predicate on the "mother_name" field. It's identical to MotherNameEQ.
func MotherName(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldMotherName, v))
}

// FirstNameNormalized applies equality check predicate on the "first_name_normalized" field. It's identical to FirstNameNormalizedEQ.
func FirstNameNormalized(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFirstNameNormalized, v))
}

// FatherNameNormalized applies equality check predicate on the "father_name_normalized" field. It's identical to FatherNameNormalizedEQ.
func FatherNameNormalized(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFatherNameNormalized, v))
}

// FamilyNameNormalized applies equality check predicate on the "family_name_normalized" field. It's identical to FamilyNameNormalizedEQ.
func FamilyNameNormalized(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFamilyNameNormalized, v))
}

// NationalID applies equality check predicate on the "national_id" field. It's identical to NationalIDEQ.
func NationalID(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldNationalID, v))
}

// DateOfBirth applies equality check predicate on the "date_of_birth" field. It's identical to DateOfBirthEQ.
func DateOfBirth(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldDateOfBirth, v))
}

// YearOfBirth applies equality check predicate on the "year_of_birth" field. It's identical to YearOfBirthEQ.
func YearOfBirth(v int) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldYearOfBirth, v))
}

// GenderCode applies equality check predicate on the "gender_code" field. It's identical to GenderCodeEQ.
func GenderCode(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldGenderCode, v))
}

// NationalityCode applies equality check predicate on the "nationality_code" field. It's identical to NationalityCodeEQ.
func NationalityCode(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldNationalityCode, v))
}

// GovernorateCode applies equality check predicate on the "governorate_code" field. It's identical to GovernorateCodeEQ.
func GovernorateCode(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldGovernorateCode, v))
}

// PhoneNumber applies equality check predicate on the "phone_number" field. It's identical to PhoneNumberEQ.
func PhoneNumber(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldPhoneNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourcePackageIDEQ applies the EQ predicate on the "source_package_id" field.
func SourcePackageIDEQ(v uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldSourcePackageID, v))
}

// SourcePackageIDNEQ applies the NEQ predicate on the "source_package_id" field.
func SourcePackageIDNEQ(v uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldSourcePackageID, v))
}

// SourcePackageIDIn applies the In predicate on the "source_package_id" field.
func SourcePackageIDIn(vs ...uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDNotIn applies the NotIn predicate on the "source_package_id" field.
func SourcePackageIDNotIn(vs ...uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDGT applies the GT predicate on the "source_package_id" field.
func SourcePackageIDGT(v uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldSourcePackageID, v))
}

// SourcePackageIDGTE applies the GTE predicate on the "source_package_id" field.
func SourcePackageIDGTE(v uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldSourcePackageID, v))
}

// SourcePackageIDLT applies the LT predicate on the "source_package_id" field.
func SourcePackageIDLT(v uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldSourcePackageID, v))
}

// SourcePackageIDLTE applies the LTE predicate on the "source_package_id" field.
func SourcePackageIDLTE(v uuid.UUID) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldSourcePackageID, v))
}

// SourcePackageIDIsNil applies the IsNil predicate on the "source_package_id" field.
func SourcePackageIDIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldSourcePackageID))
}

// SourcePackageIDNotNil applies the NotNil predicate on the "source_package_id" field.
func SourcePackageIDNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldSourcePackageID))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldFirstName, v))
}

// FatherNameEQ applies the EQ predicate on the "father_name" field.
func FatherNameEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFatherName, v))
}

// FatherNameNEQ applies the NEQ predicate on the "father_name" field.
func FatherNameNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldFatherName, v))
}

// FatherNameIn applies the In predicate on the "father_name" field.
func FatherNameIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldFatherName, vs...))
}

// FatherNameNotIn applies the NotIn predicate on the "father_name" field.
func FatherNameNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldFatherName, vs...))
}

// FatherNameGT applies the GT predicate on the "father_name" field.
func FatherNameGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldFatherName, v))
}

// FatherNameGTE applies the GTE predicate on the "father_name" field.
func FatherNameGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldFatherName, v))
}

// FatherNameLT applies the LT predicate on the "father_name" field.
func FatherNameLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldFatherName, v))
}

// FatherNameLTE applies the LTE predicate on the "father_name" field.
func FatherNameLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldFatherName, v))
}

// FatherNameContains applies the Contains predicate on the "father_name" field.
func FatherNameContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldFatherName, v))
}

// FatherNameHasPrefix applies the HasPrefix predicate on the "father_name" field.
func FatherNameHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldFatherName, v))
}

// FatherNameHasSuffix applies the HasSuffix predicate on the "father_name" field.
func FatherNameHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldFatherName, v))
}

// FatherNameIsNil applies the IsNil predicate on the "father_name" field.
func FatherNameIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldFatherName))
}

// FatherNameNotNil applies the NotNil predicate on the "father_name" field.
func FatherNameNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldFatherName))
}

// FatherNameEqualFold applies the EqualFold predicate on the "father_name" field.
func FatherNameEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldFatherName, v))
}

// FatherNameContainsFold applies the ContainsFold predicate on the "father_name" field.
func FatherNameContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldFatherName, v))
}

// FamilyNameEQ applies the EQ predicate on the "family_name" field.
func FamilyNameEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFamilyName, v))
}

// FamilyNameNEQ applies the NEQ predicate on the "family_name" field.
func FamilyNameNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldFamilyName, v))
}

// FamilyNameIn applies the In predicate on the "family_name" field.
func FamilyNameIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldFamilyName, vs...))
}

// FamilyNameNotIn applies the NotIn predicate on the "family_name" field.
func FamilyNameNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldFamilyName, vs...))
}

// FamilyNameGT applies the GT predicate on the "family_name" field.
func FamilyNameGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldFamilyName, v))
}

// FamilyNameGTE applies the GTE predicate on the "family_name" field.
func FamilyNameGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldFamilyName, v))
}

// FamilyNameLT applies the LT predicate on the "family_name" field.
func FamilyNameLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldFamilyName, v))
}

// FamilyNameLTE applies the LTE predicate on the "family_name" field.
func FamilyNameLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldFamilyName, v))
}

// FamilyNameContains applies the Contains predicate on the "family_name" field.
func FamilyNameContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldFamilyName, v))
}

// FamilyNameHasPrefix applies the HasPrefix predicate on the "family_name" field.
func FamilyNameHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldFamilyName, v))
}

// FamilyNameHasSuffix applies the HasSuffix predicate on the "family_name" field.
func FamilyNameHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldFamilyName, v))
}

// FamilyNameEqualFold applies the EqualFold predicate on the "family_name" field.
func FamilyNameEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldFamilyName, v))
}

// FamilyNameContainsFold applies the ContainsFold predicate on the "family_name" field.
func FamilyNameContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldFamilyName, v))
}

// MotherNameEQ applies the EQ predicate on the "mother_name" field.
func MotherNameEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldMotherName, v))
}

// MotherNameNEQ applies the NEQ predicate on the "mother_name" field.
func MotherNameNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldMotherName, v))
}

// MotherNameIn applies the In predicate on the "mother_name" field.
func MotherNameIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldMotherName, vs...))
}

// MotherNameNotIn applies the NotIn predicate on the "mother_name" field.
func MotherNameNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldMotherName, vs...))
}

// MotherNameGT applies the GT predicate on the "mother_name" field.
func MotherNameGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldMotherName, v))
}

// MotherNameGTE applies the GTE predicate on the "mother_name" field.
func MotherNameGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldMotherName, v))
}

// MotherNameLT applies the LT predicate on the "mother_name" field.
func MotherNameLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldMotherName, v))
}

// MotherNameLTE applies the LTE predicate on the "mother_name" field.
func MotherNameLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldMotherName, v))
}

// MotherNameContains applies the Contains predicate on the "mother_name" field.
func MotherNameContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldMotherName, v))
}

// MotherNameHasPrefix applies the HasPrefix predicate on the "mother_name" field.
func MotherNameHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldMotherName, v))
}

// MotherNameHasSuffix applies the HasSuffix predicate on the "mother_name" field.
func MotherNameHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldMotherName, v))
}

// MotherNameIsNil applies the IsNil predicate on the "mother_name" field.
func MotherNameIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldMotherName))
}

// MotherNameNotNil applies the NotNil predicate on the "mother_name" field.
func MotherNameNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldMotherName))
}

// MotherNameEqualFold applies the EqualFold predicate on the "mother_name" field.
func MotherNameEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldMotherName, v))
}

// MotherNameContainsFold applies the ContainsFold predicate on the "mother_name" field.
func MotherNameContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldMotherName, v))
}

// FirstNameNormalizedEQ applies the EQ predicate on the "first_name_normalized" field.
func FirstNameNormalizedEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedNEQ applies the NEQ predicate on the "first_name_normalized" field.
func FirstNameNormalizedNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedIn applies the In predicate on the "first_name_normalized" field.
func FirstNameNormalizedIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldFirstNameNormalized, vs...))
}

// FirstNameNormalizedNotIn applies the NotIn predicate on the "first_name_normalized" field.
func FirstNameNormalizedNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldFirstNameNormalized, vs...))
}

// FirstNameNormalizedGT applies the GT predicate on the "first_name_normalized" field.
func FirstNameNormalizedGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedGTE applies the GTE predicate on the "first_name_normalized" field.
func FirstNameNormalizedGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedLT applies the LT predicate on the "first_name_normalized" field.
func FirstNameNormalizedLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedLTE applies the LTE predicate on the "first_name_normalized" field.
func FirstNameNormalizedLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedContains applies the Contains predicate on the "first_name_normalized" field.
func FirstNameNormalizedContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedHasPrefix applies the HasPrefix predicate on the "first_name_normalized" field.
func FirstNameNormalizedHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedHasSuffix applies the HasSuffix predicate on the "first_name_normalized" field.
func FirstNameNormalizedHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedIsNil applies the IsNil predicate on the "first_name_normalized" field.
func FirstNameNormalizedIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldFirstNameNormalized))
}

// FirstNameNormalizedNotNil applies the NotNil predicate on the "first_name_normalized" field.
func FirstNameNormalizedNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldFirstNameNormalized))
}

// FirstNameNormalizedEqualFold applies the EqualFold predicate on the "first_name_normalized" field.
func FirstNameNormalizedEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedContainsFold applies the ContainsFold predicate on the "first_name_normalized" field.
func FirstNameNormalizedContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldFirstNameNormalized, v))
}

// FatherNameNormalizedEQ applies the EQ predicate on the "father_name_normalized" field.
func FatherNameNormalizedEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedNEQ applies the NEQ predicate on the "father_name_normalized" field.
func FatherNameNormalizedNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedIn applies the In predicate on the "father_name_normalized" field.
func FatherNameNormalizedIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldFatherNameNormalized, vs...))
}

// FatherNameNormalizedNotIn applies the NotIn predicate on the "father_name_normalized" field.
func FatherNameNormalizedNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldFatherNameNormalized, vs...))
}

// FatherNameNormalizedGT applies the GT predicate on the "father_name_normalized" field.
func FatherNameNormalizedGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedGTE applies the GTE predicate on the "father_name_normalized" field.
func FatherNameNormalizedGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedLT applies the LT predicate on the "father_name_normalized" field.
func FatherNameNormalizedLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedLTE applies the LTE predicate on the "father_name_normalized" field.
func FatherNameNormalizedLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedContains applies the Contains predicate on the "father_name_normalized" field.
func FatherNameNormalizedContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedHasPrefix applies the HasPrefix predicate on the "father_name_normalized" field.
func FatherNameNormalizedHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedHasSuffix applies the HasSuffix predicate on the "father_name_normalized" field.
func FatherNameNormalizedHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedIsNil applies the IsNil predicate on the "father_name_normalized" field.
func FatherNameNormalizedIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldFatherNameNormalized))
}

// FatherNameNormalizedNotNil applies the NotNil predicate on the "father_name_normalized" field.
func FatherNameNormalizedNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldFatherNameNormalized))
}

// FatherNameNormalizedEqualFold applies the EqualFold predicate on the "father_name_normalized" field.
func FatherNameNormalizedEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedContainsFold applies the ContainsFold predicate on the "father_name_normalized" field.
func FatherNameNormalizedContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldFatherNameNormalized, v))
}

// FamilyNameNormalizedEQ applies the EQ predicate on the "family_name_normalized" field.
func FamilyNameNormalizedEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedNEQ applies the NEQ predicate on the "family_name_normalized" field.
func FamilyNameNormalizedNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedIn applies the In predicate on the "family_name_normalized" field.
func FamilyNameNormalizedIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldFamilyNameNormalized, vs...))
}

// FamilyNameNormalizedNotIn applies the NotIn predicate on the "family_name_normalized" field.
func FamilyNameNormalizedNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldFamilyNameNormalized, vs...))
}

// FamilyNameNormalizedGT applies the GT predicate on the "family_name_normalized" field.
func FamilyNameNormalizedGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedGTE applies the GTE predicate on the "family_name_normalized" field.
func FamilyNameNormalizedGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedLT applies the LT predicate on the "family_name_normalized" field.
func FamilyNameNormalizedLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedLTE applies the LTE predicate on the "family_name_normalized" field.
func FamilyNameNormalizedLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedContains applies the Contains predicate on the "family_name_normalized" field.
func FamilyNameNormalizedContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedHasPrefix applies the HasPrefix predicate on the "family_name_normalized" field.
func FamilyNameNormalizedHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedHasSuffix applies the HasSuffix predicate on the "family_name_normalized" field.
func FamilyNameNormalizedHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedIsNil applies the IsNil predicate on the "family_name_normalized" field.
func FamilyNameNormalizedIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldFamilyNameNormalized))
}

// FamilyNameNormalizedNotNil applies the NotNil predicate on the "family_name_normalized" field.
func FamilyNameNormalizedNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldFamilyNameNormalized))
}

// FamilyNameNormalizedEqualFold applies the EqualFold predicate on the "family_name_normalized" field.
func FamilyNameNormalizedEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedContainsFold applies the ContainsFold predicate on the "family_name_normalized" field.
func FamilyNameNormalizedContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldFamilyNameNormalized, v))
}

// NationalIDEQ applies the EQ predicate on the "national_id" field.
func NationalIDEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldNationalID, v))
}

// NationalIDNEQ applies the NEQ predicate on the "national_id" field.
func NationalIDNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldNationalID, v))
}

// NationalIDIn applies the In predicate on the "national_id" field.
func NationalIDIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldNationalID, vs...))
}

// NationalIDNotIn applies the NotIn predicate on the "national_id" field.
func NationalIDNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldNationalID, vs...))
}

// NationalIDGT applies the GT predicate on the "national_id" field.
func NationalIDGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldNationalID, v))
}

// NationalIDGTE applies the GTE predicate on the "national_id" field.
func NationalIDGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldNationalID, v))
}

// NationalIDLT applies the LT predicate on the "national_id" field.
func NationalIDLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldNationalID, v))
}

// NationalIDLTE applies the LTE predicate on the "national_id" field.
func NationalIDLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldNationalID, v))
}

// NationalIDContains applies the Contains predicate on the "national_id" field.
func NationalIDContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldNationalID, v))
}

// NationalIDHasPrefix applies the HasPrefix predicate on the "national_id" field.
func NationalIDHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldNationalID, v))
}

// NationalIDHasSuffix applies the HasSuffix predicate on the "national_id" field.
func NationalIDHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldNationalID, v))
}

// NationalIDIsNil applies the IsNil predicate on the "national_id" field.
func NationalIDIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldNationalID))
}

// NationalIDNotNil applies the NotNil predicate on the "national_id" field.
func NationalIDNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldNationalID))
}

// NationalIDEqualFold applies the EqualFold predicate on the "national_id" field.
func NationalIDEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldNationalID, v))
}

// NationalIDContainsFold applies the ContainsFold predicate on the "national_id" field.
func NationalIDContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldNationalID, v))
}

// DateOfBirthEQ applies the EQ predicate on the "date_of_birth" field.
func DateOfBirthEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldDateOfBirth, v))
}

// DateOfBirthNEQ applies the NEQ predicate on the "date_of_birth" field.
func DateOfBirthNEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldDateOfBirth, v))
}

// DateOfBirthIn applies the In predicate on the "date_of_birth" field.
func DateOfBirthIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldDateOfBirth, vs...))
}

// DateOfBirthNotIn applies the NotIn predicate on the "date_of_birth" field.
func DateOfBirthNotIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldDateOfBirth, vs...))
}

// DateOfBirthGT applies the GT predicate on the "date_of_birth" field.
func DateOfBirthGT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldDateOfBirth, v))
}

// DateOfBirthGTE applies the GTE predicate on the "date_of_birth" field.
func DateOfBirthGTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldDateOfBirth, v))
}

// DateOfBirthLT applies the LT predicate on the "date_of_birth" field.
func DateOfBirthLT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldDateOfBirth, v))
}

// DateOfBirthLTE applies the LTE predicate on the "date_of_birth" field.
func DateOfBirthLTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldDateOfBirth, v))
}

// DateOfBirthIsNil applies the IsNil predicate on the "date_of_birth" field.
func DateOfBirthIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldDateOfBirth))
}

// DateOfBirthNotNil applies the NotNil predicate on the "date_of_birth" field.
func DateOfBirthNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldDateOfBirth))
}

// YearOfBirthEQ applies the EQ predicate on the "year_of_birth" field.
func YearOfBirthEQ(v int) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldYearOfBirth, v))
}

// YearOfBirthNEQ applies the NEQ predicate on the "year_of_birth" field.
func YearOfBirthNEQ(v int) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldYearOfBirth, v))
}

// YearOfBirthIn applies the In predicate on the "year_of_birth" field.
func YearOfBirthIn(vs ...int) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldYearOfBirth, vs...))
}

// YearOfBirthNotIn applies the NotIn predicate on the "year_of_birth" field.
func YearOfBirthNotIn(vs ...int) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldYearOfBirth, vs...))
}

// YearOfBirthGT applies the GT predicate on the "year_of_birth" field.
func YearOfBirthGT(v int) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldYearOfBirth, v))
}

// YearOfBirthGTE applies the GTE predicate on the "year_of_birth" field.
func YearOfBirthGTE(v int) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldYearOfBirth, v))
}

// YearOfBirthLT applies the LT predicate on the "year_of_birth" field.
func YearOfBirthLT(v int) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldYearOfBirth, v))
}

// YearOfBirthLTE applies the LTE predicate on the "year_of_birth" field.
func YearOfBirthLTE(v int) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldYearOfBirth, v))
}

// YearOfBirthIsNil applies the IsNil predicate on the "year_of_birth" field.
func YearOfBirthIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldYearOfBirth))
}

// YearOfBirthNotNil applies the NotNil predicate on the "year_of_birth" field.
func YearOfBirthNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldYearOfBirth))
}

// GenderCodeEQ applies the EQ predicate on the "gender_code" field.
func GenderCodeEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldGenderCode, v))
}

// GenderCodeNEQ applies the NEQ predicate on the "gender_code" field.
func GenderCodeNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldGenderCode, v))
}

// GenderCodeIn applies the In predicate on the "gender_code" field.
func GenderCodeIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldGenderCode, vs...))
}

// GenderCodeNotIn applies the NotIn predicate on the "gender_code" field.
func GenderCodeNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldGenderCode, vs...))
}

// GenderCodeGT applies the GT predicate on the "gender_code" field.
func GenderCodeGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldGenderCode, v))
}

// GenderCodeGTE applies the GTE predicate on the "gender_code" field.
func GenderCodeGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldGenderCode, v))
}

// GenderCodeLT applies the LT predicate on the "gender_code" field.
func GenderCodeLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldGenderCode, v))
}

// GenderCodeLTE applies the LTE predicate on the "gender_code" field.
func GenderCodeLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldGenderCode, v))
}

// GenderCodeContains applies the Contains predicate on the "gender_code" field.
func GenderCodeContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldGenderCode, v))
}

// GenderCodeHasPrefix applies the HasPrefix predicate on the "gender_code" field.
func GenderCodeHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldGenderCode, v))
}

// GenderCodeHasSuffix applies the HasSuffix predicate on the "gender_code" field.
func GenderCodeHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldGenderCode, v))
}

// GenderCodeIsNil applies the IsNil predicate on the "gender_code" field.
func GenderCodeIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldGenderCode))
}

// GenderCodeNotNil applies the NotNil predicate on the "gender_code" field.
func GenderCodeNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldGenderCode))
}

// GenderCodeEqualFold applies the EqualFold predicate on the "gender_code" field.
func GenderCodeEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldGenderCode, v))
}

// GenderCodeContainsFold applies the ContainsFold predicate on the "gender_code" field.
func GenderCodeContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldGenderCode, v))
}

// NationalityCodeEQ applies the EQ predicate on the "nationality_code" field.
func NationalityCodeEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldNationalityCode, v))
}

// NationalityCodeNEQ applies the NEQ predicate on the "nationality_code" field.
func NationalityCodeNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldNationalityCode, v))
}

// NationalityCodeIn applies the In predicate on the "nationality_code" field.
func NationalityCodeIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldNationalityCode, vs...))
}

// NationalityCodeNotIn applies the NotIn predicate on the "nationality_code" field.
func NationalityCodeNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldNationalityCode, vs...))
}

// NationalityCodeGT applies the GT predicate on the "nationality_code" field.
func NationalityCodeGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldNationalityCode, v))
}

// NationalityCodeGTE applies the GTE predicate on the "nationality_code" field.
func NationalityCodeGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldNationalityCode, v))
}

// NationalityCodeLT applies the LT predicate on the "nationality_code" field.
func NationalityCodeLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldNationalityCode, v))
}

// NationalityCodeLTE applies the LTE predicate on the "nationality_code" field.
func NationalityCodeLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldNationalityCode, v))
}

// NationalityCodeContains applies the Contains predicate on the "nationality_code" field.
func NationalityCodeContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldNationalityCode, v))
}

// NationalityCodeHasPrefix applies the HasPrefix predicate on the "nationality_code" field.
func NationalityCodeHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldNationalityCode, v))
}

// NationalityCodeHasSuffix applies the HasSuffix predicate on the "nationality_code" field.
func NationalityCodeHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldNationalityCode, v))
}

// NationalityCodeIsNil applies the IsNil predicate on the "nationality_code" field.
func NationalityCodeIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldNationalityCode))
}

// NationalityCodeNotNil applies the NotNil predicate on the "nationality_code" field.
func NationalityCodeNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldNationalityCode))
}

// NationalityCodeEqualFold applies the EqualFold predicate on the "nationality_code" field.
func NationalityCodeEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldNationalityCode, v))
}

// NationalityCodeContainsFold applies the ContainsFold predicate on the "nationality_code" field.
func NationalityCodeContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldNationalityCode, v))
}

// GovernorateCodeEQ applies the EQ predicate on the "governorate_code" field.
func GovernorateCodeEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldGovernorateCode, v))
}

// GovernorateCodeNEQ applies the NEQ predicate on the "governorate_code" field.
func GovernorateCodeNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldGovernorateCode, v))
}

// GovernorateCodeIn applies the In predicate on the "governorate_code" field.
func GovernorateCodeIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldGovernorateCode, vs...))
}

// GovernorateCodeNotIn applies the NotIn predicate on the "governorate_code" field.
func GovernorateCodeNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldGovernorateCode, vs...))
}

// GovernorateCodeGT applies the GT predicate on the "governorate_code" field.
func GovernorateCodeGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldGovernorateCode, v))
}

// GovernorateCodeGTE applies the GTE predicate on the "governorate_code" field.
func GovernorateCodeGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldGovernorateCode, v))
}

// GovernorateCodeLT applies the LT predicate on the "governorate_code" field.
func GovernorateCodeLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldGovernorateCode, v))
}

// GovernorateCodeLTE applies the LTE predicate on the "governorate_code" field.
func GovernorateCodeLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldGovernorateCode, v))
}

// GovernorateCodeContains applies the Contains predicate on the "governorate_code" field.
func GovernorateCodeContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldGovernorateCode, v))
}

// GovernorateCodeHasPrefix applies the HasPrefix predicate on the "governorate_code" field.
func GovernorateCodeHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldGovernorateCode, v))
}

// GovernorateCodeHasSuffix applies the HasSuffix predicate on the "governorate_code" field.
func GovernorateCodeHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldGovernorateCode, v))
}

// GovernorateCodeIsNil applies the IsNil predicate on the "governorate_code" field.
func GovernorateCodeIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldGovernorateCode))
}

// GovernorateCodeNotNil applies the NotNil predicate on the "governorate_code" field.
func GovernorateCodeNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldGovernorateCode))
}

// GovernorateCodeEqualFold applies the EqualFold predicate on the "governorate_code" field.
func GovernorateCodeEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldGovernorateCode, v))
}

// GovernorateCodeContainsFold applies the ContainsFold predicate on the "governorate_code" field.
func GovernorateCodeContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldGovernorateCode, v))
}

// PhoneNumberEQ applies the EQ predicate on the "phone_number" field.
func PhoneNumberEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldPhoneNumber, v))
}

// PhoneNumberNEQ applies the NEQ predicate on the "phone_number" field.
func PhoneNumberNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldPhoneNumber, v))
}

// PhoneNumberIn applies the In predicate on the "phone_number" field.
func PhoneNumberIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldPhoneNumber, vs...))
}

// PhoneNumberNotIn applies the NotIn predicate on the "phone_number" field.
func PhoneNumberNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldPhoneNumber, vs...))
}

// PhoneNumberGT applies the GT predicate on the "phone_number" field.
func PhoneNumberGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldPhoneNumber, v))
}

// PhoneNumberGTE applies the GTE predicate on the "phone_number" field.
func PhoneNumberGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldPhoneNumber, v))
}

// PhoneNumberLT applies the LT predicate on the "phone_number" field.
func PhoneNumberLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldPhoneNumber, v))
}

// PhoneNumberLTE applies the LTE predicate on the "phone_number" field.
func PhoneNumberLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldPhoneNumber, v))
}

// PhoneNumberContains applies the Contains predicate on the "phone_number" field.
func PhoneNumberContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldPhoneNumber, v))
}

// PhoneNumberHasPrefix applies the HasPrefix predicate on the "phone_number" field.
func PhoneNumberHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldPhoneNumber, v))
}

// PhoneNumberHasSuffix applies the HasSuffix predicate on the "phone_number" field.
func PhoneNumberHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldPhoneNumber, v))
}

// PhoneNumberIsNil applies the IsNil predicate on the "phone_number" field.
func PhoneNumberIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldPhoneNumber))
}

// PhoneNumberNotNil applies the NotNil predicate on the "phone_number" field.
func PhoneNumberNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldPhoneNumber))
}

// PhoneNumberEqualFold applies the EqualFold predicate on the "phone_number" field.
func PhoneNumberEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldPhoneNumber, v))
}

// PhoneNumberContainsFold applies the ContainsFold predicate on the "phone_number" field.
func PhoneNumberContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldPhoneNumber, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Person) predicate.Person {
	return predicate.Person(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Person) predicate.Person {
	return predicate.Person(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Person) predicate.Person {
	return predicate.Person(sql.NotPredicates(p))
}
