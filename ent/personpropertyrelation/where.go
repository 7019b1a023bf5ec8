// Code generated by ent, DO NOT EDIT.

package personpropertyrelation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourcePackageID applies equality check predicate on the "source_package_id" field. It's identical to SourcePackageIDEQ.
func SourcePackageID(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldSourcePackageID, v))
}

// PersonID applies equality check predicate on the "person_id" field. It's identical to PersonIDEQ.
func PersonID(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldPersonID, v))
}

// PropertyUnitID applies equality check predicate on the "property_unit_id" field. It's identical to PropertyUnitIDEQ.
func PropertyUnitID(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldPropertyUnitID, v))
}

// RelationTypeCode applies equality check predicate on the "relation_type_code" field. It's identical to RelationTypeCodeEQ.
func RelationTypeCode(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldRelationTypeCode, v))
}

// OwnershipShare applies equality check predicate on the "ownership_share" field. It's identical to OwnershipShareEQ.
func OwnershipShare(v float64) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldOwnershipShare, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldStartDate, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourcePackageIDEQ applies the EQ predicate on the "source_package_id" field.
func SourcePackageIDEQ(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldSourcePackageID, v))
}

// SourcePackageIDNEQ applies the NEQ predicate on the "source_package_id" field.
func SourcePackageIDNEQ(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNEQ(FieldSourcePackageID, v))
}

// SourcePackageIDIn applies the In predicate on the "source_package_id" field.
func SourcePackageIDIn(vs ...uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDNotIn applies the NotIn predicate on the "source_package_id" field.
func SourcePackageIDNotIn(vs ...uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDGT applies the GT predicate on the "source_package_id" field.
func SourcePackageIDGT(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGT(FieldSourcePackageID, v))
}

// SourcePackageIDGTE applies the GTE predicate on the "source_package_id" field.
func SourcePackageIDGTE(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGTE(FieldSourcePackageID, v))
}

// SourcePackageIDLT applies the LT predicate on the "source_package_id" field.
func SourcePackageIDLT(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLT(FieldSourcePackageID, v))
}

// SourcePackageIDLTE applies the LTE predicate on the "source_package_id" field.
func SourcePackageIDLTE(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLTE(FieldSourcePackageID, v))
}

// SourcePackageIDIsNil applies the IsNil predicate on the "source_package_id" field.
func SourcePackageIDIsNil() predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIsNull(FieldSourcePackageID))
}

// SourcePackageIDNotNil applies the NotNil predicate on the "source_package_id" field.
func SourcePackageIDNotNil() predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotNull(FieldSourcePackageID))
}

// PersonIDEQ applies the EQ predicate on the "person_id" field.
func PersonIDEQ(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldPersonID, v))
}

// PersonIDNEQ applies the NEQ predicate on the "person_id" field.
func PersonIDNEQ(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNEQ(FieldPersonID, v))
}

// PersonIDIn applies the In predicate on the "person_id" field.
func PersonIDIn(vs ...uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIn(FieldPersonID, vs...))
}

// PersonIDNotIn applies the NotIn predicate on the "person_id" field.
func PersonIDNotIn(vs ...uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotIn(FieldPersonID, vs...))
}

// PersonIDGT applies the GT predicate on the "person_id" field.
func PersonIDGT(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGT(FieldPersonID, v))
}

// PersonIDGTE applies the GTE predicate on the "person_id" field.
func PersonIDGTE(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGTE(FieldPersonID, v))
}

// PersonIDLT applies the LT predicate on the "person_id" field.
func PersonIDLT(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLT(FieldPersonID, v))
}

// PersonIDLTE applies the LTE predicate on the "person_id" field.
func PersonIDLTE(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLTE(FieldPersonID, v))
}

// PropertyUnitIDEQ applies the EQ predicate on the "property_unit_id" field.
func PropertyUnitIDEQ(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldPropertyUnitID, v))
}

// PropertyUnitIDNEQ applies the NEQ predicate on the "property_unit_id" field.
func PropertyUnitIDNEQ(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNEQ(FieldPropertyUnitID, v))
}

// PropertyUnitIDIn applies the In predicate on the "property_unit_id" field.
func PropertyUnitIDIn(vs ...uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIn(FieldPropertyUnitID, vs...))
}

// PropertyUnitIDNotIn applies the NotIn predicate on the "property_unit_id" field.
func PropertyUnitIDNotIn(vs ...uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotIn(FieldPropertyUnitID, vs...))
}

// PropertyUnitIDGT applies the GT predicate on the "property_unit_id" field.
func PropertyUnitIDGT(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGT(FieldPropertyUnitID, v))
}

// PropertyUnitIDGTE applies the GTE predicate on the "property_unit_id" field.
func PropertyUnitIDGTE(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGTE(FieldPropertyUnitID, v))
}

// PropertyUnitIDLT applies the LT predicate on the "property_unit_id" field.
func PropertyUnitIDLT(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLT(FieldPropertyUnitID, v))
}

// PropertyUnitIDLTE applies the LTE predicate on the "property_unit_id" field.
func PropertyUnitIDLTE(v uuid.UUID) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLTE(FieldPropertyUnitID, v))
}

// RelationTypeCodeEQ applies the EQ predicate on the "relation_type_code" field.
func RelationTypeCodeEQ(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldRelationTypeCode, v))
}

// RelationTypeCodeNEQ applies the NEQ predicate on the "relation_type_code" field.
func RelationTypeCodeNEQ(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNEQ(FieldRelationTypeCode, v))
}

// RelationTypeCodeIn applies the In predicate on the "relation_type_code" field.
func RelationTypeCodeIn(vs ...string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIn(FieldRelationTypeCode, vs...))
}

// RelationTypeCodeNotIn applies the NotIn predicate on the "relation_type_code" field.
func RelationTypeCodeNotIn(vs ...string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotIn(FieldRelationTypeCode, vs...))
}

// RelationTypeCodeGT applies the GT predicate on the "relation_type_code" field.
func RelationTypeCodeGT(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGT(FieldRelationTypeCode, v))
}

// RelationTypeCodeGTE applies the GTE predicate on the "relation_type_code" field.
func RelationTypeCodeGTE(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGTE(FieldRelationTypeCode, v))
}

// RelationTypeCodeLT applies the LT predicate on the "relation_type_code" field.
func RelationTypeCodeLT(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLT(FieldRelationTypeCode, v))
}

// RelationTypeCodeLTE applies the LTE predicate on the "relation_type_code" field.
func RelationTypeCodeLTE(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLTE(FieldRelationTypeCode, v))
}

// RelationTypeCodeContains applies the Contains predicate on the "relation_type_code" field.
func RelationTypeCodeContains(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldContains(FieldRelationTypeCode, v))
}

// RelationTypeCodeHasPrefix applies the HasPrefix predicate on the "relation_type_code" field.
func RelationTypeCodeHasPrefix(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldHasPrefix(FieldRelationTypeCode, v))
}

// RelationTypeCodeHasSuffix applies the HasSuffix predicate on the "relation_type_code" field.
func RelationTypeCodeHasSuffix(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldHasSuffix(FieldRelationTypeCode, v))
}

// RelationTypeCodeEqualFold applies the EqualFold predicate on the "relation_type_code" field.
func RelationTypeCodeEqualFold(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEqualFold(FieldRelationTypeCode, v))
}

// RelationTypeCodeContainsFold applies the ContainsFold predicate on the "relation_type_code" field.
func RelationTypeCodeContainsFold(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldContainsFold(FieldRelationTypeCode, v))
}

// OwnershipShareEQ applies the EQ predicate on the "ownership_share" field.
func OwnershipShareEQ(v float64) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldOwnershipShare, v))
}

// OwnershipShareNEQ applies the NEQ predicate on the "ownership_share" field.
func OwnershipShareNEQ(v float64) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNEQ(FieldOwnershipShare, v))
}

// OwnershipShareIn applies the In predicate on the "ownership_share" field.
func OwnershipShareIn(vs ...float64) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIn(FieldOwnershipShare, vs...))
}

// OwnershipShareNotIn applies the NotIn predicate on the "ownership_share" field.
func OwnershipShareNotIn(vs ...float64) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotIn(FieldOwnershipShare, vs...))
}

// OwnershipShareGT applies the GT predicate on the "ownership_share" field.
func OwnershipShareGT(v float64) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGT(FieldOwnershipShare, v))
}

// OwnershipShareGTE applies the GTE predicate on the "ownership_share" field.
func OwnershipShareGTE(v float64) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGTE(FieldOwnershipShare, v))
}

// OwnershipShareLT applies the LT predicate on the "ownership_share" field.
func OwnershipShareLT(v float64) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLT(FieldOwnershipShare, v))
}

// OwnershipShareLTE applies the LTE predicate on the "ownership_share" field.
func OwnershipShareLTE(v float64) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLTE(FieldOwnershipShare, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLTE(FieldStartDate, v))
}

// StartDateIsNil applies the IsNil predicate on the "start_date" field.
func StartDateIsNil() predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIsNull(FieldStartDate))
}

// StartDateNotNil applies the NotNil predicate on the "start_date" field.
func StartDateNotNil() predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotNull(FieldStartDate))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PersonPropertyRelation) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PersonPropertyRelation) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PersonPropertyRelation) predicate.PersonPropertyRelation {
	return predicate.PersonPropertyRelation(sql.NotPredicates(p))
}
