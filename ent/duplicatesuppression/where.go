// Code generated by ent, DO NOT EDIT.

package duplicatesuppression

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldCreatedAt, v))
}

// ProductionEntityID applies equality check predicate on the "production_entity_id" field. It's identical to ProductionEntityIDEQ.
func ProductionEntityID(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldProductionEntityID, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldFingerprint, v))
}

// ResolutionID applies equality check predicate on the "resolution_id" field. It's identical to ResolutionIDEQ.
func ResolutionID(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldResolutionID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldLTE(FieldCreatedAt, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v EntityType) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v EntityType) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...EntityType) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...EntityType) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNotIn(FieldEntityType, vs...))
}

// ProductionEntityIDEQ applies the EQ predicate on the "production_entity_id" field.
func ProductionEntityIDEQ(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldProductionEntityID, v))
}

// ProductionEntityIDNEQ applies the NEQ predicate on the "production_entity_id" field.
func ProductionEntityIDNEQ(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNEQ(FieldProductionEntityID, v))
}

// ProductionEntityIDIn applies the In predicate on the "production_entity_id" field.
func ProductionEntityIDIn(vs ...uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldIn(FieldProductionEntityID, vs...))
}

// ProductionEntityIDNotIn applies the NotIn predicate on the "production_entity_id" field.
func ProductionEntityIDNotIn(vs ...uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNotIn(FieldProductionEntityID, vs...))
}

// ProductionEntityIDGT applies the GT predicate on the "production_entity_id" field.
func ProductionEntityIDGT(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldGT(FieldProductionEntityID, v))
}

// ProductionEntityIDGTE applies the GTE predicate on the "production_entity_id" field.
func ProductionEntityIDGTE(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldGTE(FieldProductionEntityID, v))
}

// ProductionEntityIDLT applies the LT predicate on the "production_entity_id" field.
func ProductionEntityIDLT(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldLT(FieldProductionEntityID, v))
}

// ProductionEntityIDLTE applies the LTE predicate on the "production_entity_id" field.
func ProductionEntityIDLTE(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldLTE(FieldProductionEntityID, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldContainsFold(FieldFingerprint, v))
}

// ResolutionIDEQ applies the EQ predicate on the "resolution_id" field.
func ResolutionIDEQ(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldResolutionID, v))
}

// ResolutionIDNEQ applies the NEQ predicate on the "resolution_id" field.
func ResolutionIDNEQ(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNEQ(FieldResolutionID, v))
}

// ResolutionIDIn applies the In predicate on the "resolution_id" field.
func ResolutionIDIn(vs ...uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldIn(FieldResolutionID, vs...))
}

// ResolutionIDNotIn applies the NotIn predicate on the "resolution_id" field.
func ResolutionIDNotIn(vs ...uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNotIn(FieldResolutionID, vs...))
}

// ResolutionIDGT applies the GT predicate on the "resolution_id" field.
func ResolutionIDGT(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldGT(FieldResolutionID, v))
}

// ResolutionIDGTE applies the GTE predicate on the "resolution_id" field.
func ResolutionIDGTE(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldGTE(FieldResolutionID, v))
}

// ResolutionIDLT applies the LT predicate on the "resolution_id" field.
func ResolutionIDLT(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldLT(FieldResolutionID, v))
}

// ResolutionIDLTE applies the LTE predicate on the "resolution_id" field.
func ResolutionIDLTE(v uuid.UUID) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldLTE(FieldResolutionID, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.FieldContainsFold(FieldCreatedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DuplicateSuppression) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DuplicateSuppression) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DuplicateSuppression) predicate.DuplicateSuppression {
	return predicate.DuplicateSuppression(sql.NotPredicates(p))
}
