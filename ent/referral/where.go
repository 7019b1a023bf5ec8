// Code generated by ent, DO NOT EDIT.

package referral

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourcePackageID applies equality check predicate on the "source_package_id" field. It's identical to SourcePackageIDEQ.
func SourcePackageID(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldSourcePackageID, v))
}

// ClaimID applies equality check predicate on the "claim_id" field. It's identical to ClaimIDEQ.
func ClaimID(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldClaimID, v))
}

// ReferralReasonCode applies equality check predicate on the "referral_reason_code" field. It's identical to ReferralReasonCodeEQ.
func ReferralReasonCode(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldReferralReasonCode, v))
}

// ReferredToAgency applies equality check predicate on the "referred_to_agency" field. It's identical to ReferredToAgencyEQ.
func ReferredToAgency(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldReferredToAgency, v))
}

// ReferralDate applies equality check predicate on the "referral_date" field. It's identical to ReferralDateEQ.
func ReferralDate(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldReferralDate, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourcePackageIDEQ applies the EQ predicate on the "source_package_id" field.
func SourcePackageIDEQ(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldSourcePackageID, v))
}

// SourcePackageIDNEQ applies the NEQ predicate on the "source_package_id" field.
func SourcePackageIDNEQ(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldSourcePackageID, v))
}

// SourcePackageIDIn applies the In predicate on the "source_package_id" field.
func SourcePackageIDIn(vs ...uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDNotIn applies the NotIn predicate on the "source_package_id" field.
func SourcePackageIDNotIn(vs ...uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDGT applies the GT predicate on the "source_package_id" field.
func SourcePackageIDGT(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldSourcePackageID, v))
}

// SourcePackageIDGTE applies the GTE predicate on the "source_package_id" field.
func SourcePackageIDGTE(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldSourcePackageID, v))
}

// SourcePackageIDLT applies the LT predicate on the "source_package_id" field.
func SourcePackageIDLT(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldSourcePackageID, v))
}

// SourcePackageIDLTE applies the LTE predicate on the "source_package_id" field.
func SourcePackageIDLTE(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldSourcePackageID, v))
}

// SourcePackageIDIsNil applies the IsNil predicate on the "source_package_id" field.
func SourcePackageIDIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldSourcePackageID))
}

// SourcePackageIDNotNil applies the NotNil predicate on the "source_package_id" field.
func SourcePackageIDNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldSourcePackageID))
}

// ClaimIDEQ applies the EQ predicate on the "claim_id" field.
func ClaimIDEQ(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldClaimID, v))
}

// ClaimIDNEQ applies the NEQ predicate on the "claim_id" field.
func ClaimIDNEQ(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldClaimID, v))
}

// ClaimIDIn applies the In predicate on the "claim_id" field.
func ClaimIDIn(vs ...uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldClaimID, vs...))
}

// ClaimIDNotIn applies the NotIn predicate on the "claim_id" field.
func ClaimIDNotIn(vs ...uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldClaimID, vs...))
}

// ClaimIDGT applies the GT predicate on the "claim_id" field.
func ClaimIDGT(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldClaimID, v))
}

// ClaimIDGTE applies the GTE predicate on the "claim_id" field.
func ClaimIDGTE(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldClaimID, v))
}

// ClaimIDLT applies the LT predicate on the "claim_id" field.
func ClaimIDLT(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldClaimID, v))
}

// ClaimIDLTE applies the LTE predicate on the "claim_id" field.
func ClaimIDLTE(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldClaimID, v))
}

// ReferralReasonCodeEQ applies the EQ predicate on the "referral_reason_code" field.
func ReferralReasonCodeEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldReferralReasonCode, v))
}

// ReferralReasonCodeNEQ applies the NEQ predicate on the "referral_reason_code" field.
func ReferralReasonCodeNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldReferralReasonCode, v))
}

// ReferralReasonCodeIn applies the In predicate on the "referral_reason_code" field.
func ReferralReasonCodeIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldReferralReasonCode, vs...))
}

// ReferralReasonCodeNotIn applies the NotIn predicate on the "referral_reason_code" field.
func ReferralReasonCodeNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldReferralReasonCode, vs...))
}

// ReferralReasonCodeGT applies the GT predicate on the "referral_reason_code" field.
func ReferralReasonCodeGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldReferralReasonCode, v))
}

// ReferralReasonCodeGTE applies the GTE predicate on the "referral_reason_code" field.
func ReferralReasonCodeGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldReferralReasonCode, v))
}

// ReferralReasonCodeLT applies the LT predicate on the "referral_reason_code" field.
func ReferralReasonCodeLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldReferralReasonCode, v))
}

// ReferralReasonCodeLTE applies the LTE predicate on the "referral_reason_code" field.
func ReferralReasonCodeLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldReferralReasonCode, v))
}

// ReferralReasonCodeContains applies the Contains predicate on the "referral_reason_code" field.
func ReferralReasonCodeContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldReferralReasonCode, v))
}

// ReferralReasonCodeHasPrefix applies the HasPrefix predicate on the "referral_reason_code" field.
func ReferralReasonCodeHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldReferralReasonCode, v))
}

// ReferralReasonCodeHasSuffix applies the HasSuffix predicate on the "referral_reason_code" field.
func ReferralReasonCodeHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldReferralReasonCode, v))
}

// ReferralReasonCodeEqualFold applies the EqualFold predicate on the "referral_reason_code" field.
func ReferralReasonCodeEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldReferralReasonCode, v))
}

// ReferralReasonCodeContainsFold applies the ContainsFold predicate on the "referral_reason_code" field.
func ReferralReasonCodeContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldReferralReasonCode, v))
}

// ReferredToAgencyEQ applies the EQ predicate on the "referred_to_agency" field.
func ReferredToAgencyEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldReferredToAgency, v))
}

// ReferredToAgencyNEQ applies the NEQ predicate on the "referred_to_agency" field.
func ReferredToAgencyNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldReferredToAgency, v))
}

// ReferredToAgencyIn applies the In predicate on the "referred_to_agency" field.
func ReferredToAgencyIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldReferredToAgency, vs...))
}

// ReferredToAgencyNotIn applies the NotIn predicate on the "referred_to_agency" field.
func ReferredToAgencyNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldReferredToAgency, vs...))
}

// ReferredToAgencyGT applies the GT predicate on the "referred_to_agency" field.
func ReferredToAgencyGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldReferredToAgency, v))
}

// ReferredToAgencyGTE applies the GTE predicate on the "referred_to_agency" field.
func ReferredToAgencyGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldReferredToAgency, v))
}

// ReferredToAgencyLT applies the LT predicate on the "referred_to_agency" field.
func ReferredToAgencyLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldReferredToAgency, v))
}

// ReferredToAgencyLTE applies the LTE predicate on the "referred_to_agency" field.
func ReferredToAgencyLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldReferredToAgency, v))
}

// ReferredToAgencyContains applies the Contains predicate on the "referred_to_agency" field.
func ReferredToAgencyContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldReferredToAgency, v))
}

// ReferredToAgencyHasPrefix applies the HasPrefix predicate on the "referred_to_agency" field.
func ReferredToAgencyHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldReferredToAgency, v))
}

// ReferredToAgencyHasSuffix applies the HasSuffix predicate on the "referred_to_agency" field.
func ReferredToAgencyHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldReferredToAgency, v))
}

// ReferredToAgencyIsNil applies the IsNil predicate on the "referred_to_agency" field.
func ReferredToAgencyIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldReferredToAgency))
}

// ReferredToAgencyNotNil applies the NotNil predicate on the "referred_to_agency" field.
func ReferredToAgencyNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldReferredToAgency))
}

// ReferredToAgencyEqualFold applies the EqualFold predicate on the "referred_to_agency" field.
func ReferredToAgencyEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldReferredToAgency, v))
}

// ReferredToAgencyContainsFold applies the ContainsFold predicate on the "referred_to_agency" field.
func ReferredToAgencyContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldReferredToAgency, v))
}

// ReferralDateEQ applies the EQ predicate on the "referral_date" field.
func ReferralDateEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldReferralDate, v))
}

// ReferralDateNEQ applies the NEQ predicate on the "referral_date" field.
func ReferralDateNEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldReferralDate, v))
}

// ReferralDateIn applies the In predicate on the "referral_date" field.
func ReferralDateIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldReferralDate, vs...))
}

// ReferralDateNotIn applies the NotIn predicate on the "referral_date" field.
func ReferralDateNotIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldReferralDate, vs...))
}

// ReferralDateGT applies the GT predicate on the "referral_date" field.
func ReferralDateGT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldReferralDate, v))
}

// ReferralDateGTE applies the GTE predicate on the "referral_date" field.
func ReferralDateGTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldReferralDate, v))
}

// ReferralDateLT applies the LT predicate on the "referral_date" field.
func ReferralDateLT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldReferralDate, v))
}

// ReferralDateLTE applies the LTE predicate on the "referral_date" field.
func ReferralDateLTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldReferralDate, v))
}

// ReferralDateIsNil applies the IsNil predicate on the "referral_date" field.
func ReferralDateIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldReferralDate))
}

// ReferralDateNotNil applies the NotNil predicate on the "referral_date" field.
func ReferralDateNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldReferralDate))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Referral) predicate.Referral {
	return predicate.Referral(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Referral) predicate.Referral {
	return predicate.Referral(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Referral) predicate.Referral {
	return predicate.Referral(sql.NotPredicates(p))
}
