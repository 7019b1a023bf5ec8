// Code generated by ent, DO NOT EDIT.

package claim

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourcePackageID applies equality check predicate on the "source_package_id" field. It's identical to SourcePackageIDEQ.
func SourcePackageID(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldSourcePackageID, v))
}

// ClaimNumber applies equality check predicate on the "claim_number" field. It's identical to ClaimNumberEQ.
func ClaimNumber(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimNumber, v))
}

// PropertyUnitID applies equality check predicate on the "property_unit_id" field. It's identical to PropertyUnitIDEQ.
func PropertyUnitID(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldPropertyUnitID, v))
}

// PrimaryClaimantID applies equality check predicate on the "primary_claimant_id" field. It's identical to PrimaryClaimantIDEQ.
func PrimaryClaimantID(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldPrimaryClaimantID, v))
}

// ClaimTypeCode applies equality check predicate on the "claim_type_code" field. It's identical to ClaimTypeCodeEQ.
func ClaimTypeCode(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimTypeCode, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldStatusCode, v))
}

// ClaimedShare applies equality check predicate on the "claimed_share" field. It's identical to ClaimedShareEQ.
func ClaimedShare(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimedShare, v))
}

// SubmissionDate applies equality check predicate on the "submission_date" field. It's identical to SubmissionDateEQ.
func SubmissionDate(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldSubmissionDate, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourcePackageIDEQ applies the EQ predicate on the "source_package_id" field.
func SourcePackageIDEQ(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldSourcePackageID, v))
}

// SourcePackageIDNEQ applies the NEQ predicate on the "source_package_id" field.
func SourcePackageIDNEQ(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldSourcePackageID, v))
}

// SourcePackageIDIn applies the In predicate on the "source_package_id" field.
func SourcePackageIDIn(vs ...uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDNotIn applies the NotIn predicate on the "source_package_id" field.
func SourcePackageIDNotIn(vs ...uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDGT applies the GT predicate on the "source_package_id" field.
func SourcePackageIDGT(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldSourcePackageID, v))
}

// SourcePackageIDGTE applies the GTE predicate on the "source_package_id" field.
func SourcePackageIDGTE(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldSourcePackageID, v))
}

// SourcePackageIDLT applies the LT predicate on the "source_package_id" field.
func SourcePackageIDLT(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldSourcePackageID, v))
}

// SourcePackageIDLTE applies the LTE predicate on the "source_package_id" field.
func SourcePackageIDLTE(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldSourcePackageID, v))
}

// SourcePackageIDIsNil applies the IsNil predicate on the "source_package_id" field.
func SourcePackageIDIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldSourcePackageID))
}

// SourcePackageIDNotNil applies the NotNil predicate on the "source_package_id" field.
func SourcePackageIDNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldSourcePackageID))
}

// ClaimNumberEQ applies the EQ predicate on the "claim_number" field.
func ClaimNumberEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimNumber, v))
}

// ClaimNumberNEQ applies the NEQ predicate on the "claim_number" field.
func ClaimNumberNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldClaimNumber, v))
}

// ClaimNumberIn applies the In predicate on the "claim_number" field.
func ClaimNumberIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldClaimNumber, vs...))
}

// ClaimNumberNotIn applies the NotIn predicate on the "claim_number" field.
func ClaimNumberNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldClaimNumber, vs...))
}

// ClaimNumberGT applies the GT predicate on the "claim_number" field.
func ClaimNumberGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldClaimNumber, v))
}

// ClaimNumberGTE applies the GTE predicate on the "claim_number" field.
func ClaimNumberGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldClaimNumber, v))
}

// ClaimNumberLT applies the LT predicate on the "claim_number" field.
func ClaimNumberLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldClaimNumber, v))
}

// ClaimNumberLTE applies the LTE predicate on the "claim_number" field.
func ClaimNumberLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldClaimNumber, v))
}

// ClaimNumberContains applies the Contains predicate on the "claim_number" field.
func ClaimNumberContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldClaimNumber, v))
}

// ClaimNumberHasPrefix applies the HasPrefix predicate on the "claim_number" field.
func ClaimNumberHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldClaimNumber, v))
}

// ClaimNumberHasSuffix applies the HasSuffix predicate on the "claim_number" field.
func ClaimNumberHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldClaimNumber, v))
}

// ClaimNumberEqualFold applies the EqualFold predicate on the "claim_number" field.
func ClaimNumberEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldClaimNumber, v))
}

// ClaimNumberContainsFold applies the ContainsFold predicate on the "claim_number" field.
func ClaimNumberContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldClaimNumber, v))
}

// PropertyUnitIDEQ applies the EQ predicate on the "property_unit_id" field.
func PropertyUnitIDEQ(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldPropertyUnitID, v))
}

// PropertyUnitIDNEQ applies the NEQ predicate on the "property_unit_id" field.
func PropertyUnitIDNEQ(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldPropertyUnitID, v))
}

// PropertyUnitIDIn applies the In predicate on the "property_unit_id" field.
func PropertyUnitIDIn(vs ...uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldPropertyUnitID, vs...))
}

// PropertyUnitIDNotIn applies the NotIn predicate on the "property_unit_id" field.
func PropertyUnitIDNotIn(vs ...uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldPropertyUnitID, vs...))
}

// PropertyUnitIDGT applies the GT predicate on the "property_unit_id" field.
func PropertyUnitIDGT(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldPropertyUnitID, v))
}

// PropertyUnitIDGTE applies the GTE predicate on the "property_unit_id" field.
func PropertyUnitIDGTE(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldPropertyUnitID, v))
}

// PropertyUnitIDLT applies the LT predicate on the "property_unit_id" field.
func PropertyUnitIDLT(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldPropertyUnitID, v))
}

// PropertyUnitIDLTE applies the LTE predicate on the "property_unit_id" field.
func PropertyUnitIDLTE(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldPropertyUnitID, v))
}

// PrimaryClaimantIDEQ applies the EQ predicate on the "primary_claimant_id" field.
func PrimaryClaimantIDEQ(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldPrimaryClaimantID, v))
}

// PrimaryClaimantIDNEQ applies the NEQ predicate on the "primary_claimant_id" field.
func PrimaryClaimantIDNEQ(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldPrimaryClaimantID, v))
}

// PrimaryClaimantIDIn applies the In predicate on the "primary_claimant_id" field.
func PrimaryClaimantIDIn(vs ...uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldPrimaryClaimantID, vs...))
}

// PrimaryClaimantIDNotIn applies the NotIn predicate on the "primary_claimant_id" field.
func PrimaryClaimantIDNotIn(vs ...uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldPrimaryClaimantID, vs...))
}

// PrimaryClaimantIDGT applies the GT predicate on the "primary_claimant_id" field.
func PrimaryClaimantIDGT(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldPrimaryClaimantID, v))
}

// PrimaryClaimantIDGTE applies the GTE predicate on the "primary_claimant_id" field.
func PrimaryClaimantIDGTE(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldPrimaryClaimantID, v))
}

// PrimaryClaimantIDLT applies the LT predicate on the "primary_claimant_id" field.
func PrimaryClaimantIDLT(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldPrimaryClaimantID, v))
}

// PrimaryClaimantIDLTE applies the LTE predicate on the "primary_claimant_id" field.
func PrimaryClaimantIDLTE(v uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldPrimaryClaimantID, v))
}

// ClaimTypeCodeEQ applies the EQ predicate on the "claim_type_code" field.
func ClaimTypeCodeEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimTypeCode, v))
}

// ClaimTypeCodeNEQ applies the NEQ predicate on the "claim_type_code" field.
func ClaimTypeCodeNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldClaimTypeCode, v))
}

// ClaimTypeCodeIn applies the In predicate on the "claim_type_code" field.
func ClaimTypeCodeIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldClaimTypeCode, vs...))
}

// ClaimTypeCodeNotIn applies the NotIn predicate on the "claim_type_code" field.
func ClaimTypeCodeNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldClaimTypeCode, vs...))
}

// ClaimTypeCodeGT applies the GT predicate on the "claim_type_code" field.
func ClaimTypeCodeGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldClaimTypeCode, v))
}

// ClaimTypeCodeGTE applies the GTE predicate on the "claim_type_code" field.
func ClaimTypeCodeGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldClaimTypeCode, v))
}

// ClaimTypeCodeLT applies the LT predicate on the "claim_type_code" field.
func ClaimTypeCodeLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldClaimTypeCode, v))
}

// ClaimTypeCodeLTE applies the LTE predicate on the "claim_type_code" field.
func ClaimTypeCodeLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldClaimTypeCode, v))
}

// ClaimTypeCodeContains applies the Contains predicate on the "claim_type_code" field.
func ClaimTypeCodeContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldClaimTypeCode, v))
}

// ClaimTypeCodeHasPrefix applies the HasPrefix predicate on the "claim_type_code" field.
func ClaimTypeCodeHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldClaimTypeCode, v))
}

// ClaimTypeCodeHasSuffix applies the HasSuffix predicate on the "claim_type_code" field.
func ClaimTypeCodeHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldClaimTypeCode, v))
}

// ClaimTypeCodeEqualFold applies the EqualFold predicate on the "claim_type_code" field.
func ClaimTypeCodeEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldClaimTypeCode, v))
}

// ClaimTypeCodeContainsFold applies the ContainsFold predicate on the "claim_type_code" field.
func ClaimTypeCodeContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldClaimTypeCode, v))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldStatusCode, v))
}

// StatusCodeContains applies the Contains predicate on the "status_code" field.
func StatusCodeContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldStatusCode, v))
}

// StatusCodeHasPrefix applies the HasPrefix predicate on the "status_code" field.
func StatusCodeHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldStatusCode, v))
}

// StatusCodeHasSuffix applies the HasSuffix predicate on the "status_code" field.
func StatusCodeHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldStatusCode, v))
}

// StatusCodeEqualFold applies the EqualFold predicate on the "status_code" field.
func StatusCodeEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldStatusCode, v))
}

// StatusCodeContainsFold applies the ContainsFold predicate on the "status_code" field.
func StatusCodeContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldStatusCode, v))
}

// ClaimedShareEQ applies the EQ predicate on the "claimed_share" field.
func ClaimedShareEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimedShare, v))
}

// ClaimedShareNEQ applies the NEQ predicate on the "claimed_share" field.
func ClaimedShareNEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldClaimedShare, v))
}

// ClaimedShareIn applies the In predicate on the "claimed_share" field.
func ClaimedShareIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldClaimedShare, vs...))
}

// ClaimedShareNotIn applies the NotIn predicate on the "claimed_share" field.
func ClaimedShareNotIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldClaimedShare, vs...))
}

// ClaimedShareGT applies the GT predicate on the "claimed_share" field.
func ClaimedShareGT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldClaimedShare, v))
}

// ClaimedShareGTE applies the GTE predicate on the "claimed_share" field.
func ClaimedShareGTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldClaimedShare, v))
}

// ClaimedShareLT applies the LT predicate on the "claimed_share" field.
func ClaimedShareLT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldClaimedShare, v))
}

// ClaimedShareLTE applies the LTE predicate on the "claimed_share" field.
func ClaimedShareLTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldClaimedShare, v))
}

// SubmissionDateEQ applies the EQ predicate on the "submission_date" field.
func SubmissionDateEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldSubmissionDate, v))
}

// SubmissionDateNEQ applies the NEQ predicate on the "submission_date" field.
func SubmissionDateNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldSubmissionDate, v))
}

// SubmissionDateIn applies the In predicate on the "submission_date" field.
func SubmissionDateIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldSubmissionDate, vs...))
}

// SubmissionDateNotIn applies the NotIn predicate on the "submission_date" field.
func SubmissionDateNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldSubmissionDate, vs...))
}

// SubmissionDateGT applies the GT predicate on the "submission_date" field.
func SubmissionDateGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldSubmissionDate, v))
}

// SubmissionDateGTE applies the GTE predicate on the "submission_date" field.
func SubmissionDateGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldSubmissionDate, v))
}

// SubmissionDateLT applies the LT predicate on the "submission_date" field.
func SubmissionDateLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldSubmissionDate, v))
}

// SubmissionDateLTE applies the LTE predicate on the "submission_date" field.
func SubmissionDateLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldSubmissionDate, v))
}

// SubmissionDateIsNil applies the IsNil predicate on the "submission_date" field.
func SubmissionDateIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldSubmissionDate))
}

// SubmissionDateNotNil applies the NotNil predicate on the "submission_date" field.
func SubmissionDateNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldSubmissionDate))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.NotPredicates(p))
}
