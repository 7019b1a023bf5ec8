// Code generated by ent, DO NOT EDIT.

package survey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourcePackageID applies equality check predicate on the "source_package_id" field. It's identical to SourcePackageIDEQ.
func SourcePackageID(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldSourcePackageID, v))
}

// BuildingID applies equality check predicate on the "building_id" field. It's identical to BuildingIDEQ.
func BuildingID(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldBuildingID, v))
}

// SurveyTypeCode applies equality check predicate on the "survey_type_code" field. It's identical to SurveyTypeCodeEQ.
func SurveyTypeCode(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldSurveyTypeCode, v))
}

// SurveyDate applies equality check predicate on the "survey_date" field. It's identical to SurveyDateEQ.
func SurveyDate(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldSurveyDate, v))
}

// SurveyorName applies equality check predicate on the "surveyor_name" field. It's identical to SurveyorNameEQ.
func SurveyorName(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldSurveyorName, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourcePackageIDEQ applies the EQ predicate on the "source_package_id" field.
func SourcePackageIDEQ(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldSourcePackageID, v))
}

// SourcePackageIDNEQ applies the NEQ predicate on the "source_package_id" field.
func SourcePackageIDNEQ(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldSourcePackageID, v))
}

// SourcePackageIDIn applies the In predicate on the "source_package_id" field.
func SourcePackageIDIn(vs ...uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDNotIn applies the NotIn predicate on the "source_package_id" field.
func SourcePackageIDNotIn(vs ...uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDGT applies the GT predicate on the "source_package_id" field.
func SourcePackageIDGT(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldSourcePackageID, v))
}

// SourcePackageIDGTE applies the GTE predicate on the "source_package_id" field.
func SourcePackageIDGTE(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldSourcePackageID, v))
}

// SourcePackageIDLT applies the LT predicate on the "source_package_id" field.
func SourcePackageIDLT(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldSourcePackageID, v))
}

// SourcePackageIDLTE applies the LTE predicate on the "source_package_id" field.
func SourcePackageIDLTE(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldSourcePackageID, v))
}

// SourcePackageIDIsNil applies the IsNil predicate on the "source_package_id" field.
func SourcePackageIDIsNil() predicate.Survey {
	return predicate.Survey(sql.FieldIsNull(FieldSourcePackageID))
}

// SourcePackageIDNotNil applies the NotNil predicate on the "source_package_id" field.
func SourcePackageIDNotNil() predicate.Survey {
	return predicate.Survey(sql.FieldNotNull(FieldSourcePackageID))
}

// BuildingIDEQ applies the EQ predicate on the "building_id" field.
func BuildingIDEQ(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldBuildingID, v))
}

// BuildingIDNEQ applies the NEQ predicate on the "building_id" field.
func BuildingIDNEQ(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldBuildingID, v))
}

// BuildingIDIn applies the In predicate on the "building_id" field.
func BuildingIDIn(vs ...uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldBuildingID, vs...))
}

// BuildingIDNotIn applies the NotIn predicate on the "building_id" field.
func BuildingIDNotIn(vs ...uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldBuildingID, vs...))
}

// BuildingIDGT applies the GT predicate on the "building_id" field.
func BuildingIDGT(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldBuildingID, v))
}

// BuildingIDGTE applies the GTE predicate on the "building_id" field.
func BuildingIDGTE(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldBuildingID, v))
}

// BuildingIDLT applies the LT predicate on the "building_id" field.
func BuildingIDLT(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldBuildingID, v))
}

// BuildingIDLTE applies the LTE predicate on the "building_id" field.
func BuildingIDLTE(v uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldBuildingID, v))
}

// SurveyTypeCodeEQ applies the EQ predicate on the "survey_type_code" field.
func SurveyTypeCodeEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldSurveyTypeCode, v))
}

// SurveyTypeCodeNEQ applies the NEQ predicate on the "survey_type_code" field.
func SurveyTypeCodeNEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldSurveyTypeCode, v))
}

// SurveyTypeCodeIn applies the In predicate on the "survey_type_code" field.
func SurveyTypeCodeIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldSurveyTypeCode, vs...))
}

// SurveyTypeCodeNotIn applies the NotIn predicate on the "survey_type_code" field.
func SurveyTypeCodeNotIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldSurveyTypeCode, vs...))
}

// SurveyTypeCodeGT applies the GT predicate on the "survey_type_code" field.
func SurveyTypeCodeGT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldSurveyTypeCode, v))
}

// SurveyTypeCodeGTE applies the GTE predicate on the "survey_type_code" field.
func SurveyTypeCodeGTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldSurveyTypeCode, v))
}

// SurveyTypeCodeLT applies the LT predicate on the "survey_type_code" field.
func SurveyTypeCodeLT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldSurveyTypeCode, v))
}

// SurveyTypeCodeLTE applies the LTE predicate on the "survey_type_code" field.
func SurveyTypeCodeLTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldSurveyTypeCode, v))
}

// SurveyTypeCodeContains applies the Contains predicate on the "survey_type_code" field.
func SurveyTypeCodeContains(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContains(FieldSurveyTypeCode, v))
}

// SurveyTypeCodeHasPrefix applies the HasPrefix predicate on the "survey_type_code" field.
func SurveyTypeCodeHasPrefix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasPrefix(FieldSurveyTypeCode, v))
}

// SurveyTypeCodeHasSuffix applies the HasSuffix predicate on the "survey_type_code" field.
func SurveyTypeCodeHasSuffix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasSuffix(FieldSurveyTypeCode, v))
}

// SurveyTypeCodeEqualFold applies the EqualFold predicate on the "survey_type_code" field.
func SurveyTypeCodeEqualFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEqualFold(FieldSurveyTypeCode, v))
}

// SurveyTypeCodeContainsFold applies the ContainsFold predicate on the "survey_type_code" field.
func SurveyTypeCodeContainsFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContainsFold(FieldSurveyTypeCode, v))
}

// SurveyDateEQ applies the EQ predicate on the "survey_date" field.
func SurveyDateEQ(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldSurveyDate, v))
}

// SurveyDateNEQ applies the NEQ predicate on the "survey_date" field.
func SurveyDateNEQ(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldSurveyDate, v))
}

// SurveyDateIn applies the In predicate on the "survey_date" field.
func SurveyDateIn(vs ...time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldSurveyDate, vs...))
}

// SurveyDateNotIn applies the NotIn predicate on the "survey_date" field.
func SurveyDateNotIn(vs ...time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldSurveyDate, vs...))
}

// SurveyDateGT applies the GT predicate on the "survey_date" field.
func SurveyDateGT(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldSurveyDate, v))
}

// SurveyDateGTE applies the GTE predicate on the "survey_date" field.
func SurveyDateGTE(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldSurveyDate, v))
}

// SurveyDateLT applies the LT predicate on the "survey_date" field.
func SurveyDateLT(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldSurveyDate, v))
}

// SurveyDateLTE applies the LTE predicate on the "survey_date" field.
func SurveyDateLTE(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldSurveyDate, v))
}

// SurveyDateIsNil applies the IsNil predicate on the "survey_date" field.
func SurveyDateIsNil() predicate.Survey {
	return predicate.Survey(sql.FieldIsNull(FieldSurveyDate))
}

// SurveyDateNotNil applies the NotNil predicate on the "survey_date" field.
func SurveyDateNotNil() predicate.Survey {
	return predicate.Survey(sql.FieldNotNull(FieldSurveyDate))
}

// SurveyorNameEQ applies the EQ predicate on the "surveyor_name" field.
func SurveyorNameEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldSurveyorName, v))
}

// SurveyorNameNEQ applies the NEQ predicate on the "surveyor_name" field.
func SurveyorNameNEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldSurveyorName, v))
}

// SurveyorNameIn applies the In predicate on the "surveyor_name" field.
func SurveyorNameIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldSurveyorName, vs...))
}

// SurveyorNameNotIn applies the NotIn predicate on the "surveyor_name" field.
func SurveyorNameNotIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldSurveyorName, vs...))
}

// SurveyorNameGT applies the GT predicate on the "surveyor_name" field.
func SurveyorNameGT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldSurveyorName, v))
}

// SurveyorNameGTE applies the GTE predicate on the "surveyor_name" field.
func SurveyorNameGTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldSurveyorName, v))
}

// SurveyorNameLT applies the LT predicate on the "surveyor_name" field.
func SurveyorNameLT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldSurveyorName, v))
}

// SurveyorNameLTE applies the LTE predicate on the "surveyor_name" field.
func SurveyorNameLTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldSurveyorName, v))
}

// SurveyorNameContains applies the Contains predicate on the "surveyor_name" field.
func SurveyorNameContains(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContains(FieldSurveyorName, v))
}

// SurveyorNameHasPrefix applies the HasPrefix predicate on the "surveyor_name" field.
func SurveyorNameHasPrefix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasPrefix(FieldSurveyorName, v))
}

// SurveyorNameHasSuffix applies the HasSuffix predicate on the "surveyor_name" field.
func SurveyorNameHasSuffix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasSuffix(FieldSurveyorName, v))
}

// SurveyorNameIsNil applies the IsNil predicate on the "surveyor_name" field.
func SurveyorNameIsNil() predicate.Survey {
	return predicate.Survey(sql.FieldIsNull(FieldSurveyorName))
}

// SurveyorNameNotNil applies the NotNil predicate on the "surveyor_name" field.
func SurveyorNameNotNil() predicate.Survey {
	return predicate.Survey(sql.FieldNotNull(FieldSurveyorName))
}

// SurveyorNameEqualFold applies the EqualFold predicate on the "surveyor_name" field.
func SurveyorNameEqualFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEqualFold(FieldSurveyorName, v))
}

// SurveyorNameContainsFold applies the ContainsFold predicate on the "surveyor_name" field.
func SurveyorNameContainsFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContainsFold(FieldSurveyorName, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Survey {
	return predicate.Survey(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Survey {
	return predicate.Survey(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Survey) predicate.Survey {
	return predicate.Survey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Survey) predicate.Survey {
	return predicate.Survey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Survey) predicate.Survey {
	return predicate.Survey(sql.NotPredicates(p))
}
