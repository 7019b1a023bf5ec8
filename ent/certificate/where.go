// Code generated by ent, DO NOT EDIT.

package certificate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldUpdatedAt, v))
}

// CertificateNumber applies equality check predicate on the "certificate_number" field. It's identical to CertificateNumberEQ.
func CertificateNumber(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCertificateNumber, v))
}

// ClaimID applies equality check predicate on the "claim_id" field. It's identical to ClaimIDEQ.
func ClaimID(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldClaimID, v))
}

// BeneficiaryID applies equality check predicate on the "beneficiary_id" field. It's identical to BeneficiaryIDEQ.
func BeneficiaryID(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldBeneficiaryID, v))
}

// IssuedDate applies equality check predicate on the "issued_date" field. It's identical to IssuedDateEQ.
func IssuedDate(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldIssuedDate, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldStatusCode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldUpdatedAt, v))
}

// CertificateNumberEQ applies the EQ predicate on the "certificate_number" field.
func CertificateNumberEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCertificateNumber, v))
}

// CertificateNumberNEQ applies the NEQ predicate on the "certificate_number" field.
func CertificateNumberNEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldCertificateNumber, v))
}

// CertificateNumberIn applies the In predicate on the "certificate_number" field.
func CertificateNumberIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldCertificateNumber, vs...))
}

// CertificateNumberNotIn applies the NotIn predicate on the "certificate_number" field.
func CertificateNumberNotIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldCertificateNumber, vs...))
}

// CertificateNumberGT applies the GT predicate on the "certificate_number" field.
func CertificateNumberGT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldCertificateNumber, v))
}

// CertificateNumberGTE applies the GTE predicate on the "certificate_number" field.
func CertificateNumberGTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldCertificateNumber, v))
}

// CertificateNumberLT applies the LT predicate on the "certificate_number" field.
func CertificateNumberLT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldCertificateNumber, v))
}

// CertificateNumberLTE applies the LTE predicate on the "certificate_number" field.
func CertificateNumberLTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldCertificateNumber, v))
}

// CertificateNumberContains applies the Contains predicate on the "certificate_number" field.
func CertificateNumberContains(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContains(FieldCertificateNumber, v))
}

// CertificateNumberHasPrefix applies the HasPrefix predicate on the "certificate_number" field.
func CertificateNumberHasPrefix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasPrefix(FieldCertificateNumber, v))
}

// CertificateNumberHasSuffix applies the HasSuffix predicate on the "certificate_number" field.
func CertificateNumberHasSuffix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasSuffix(FieldCertificateNumber, v))
}

// CertificateNumberEqualFold applies the EqualFold predicate on the "certificate_number" field.
func CertificateNumberEqualFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEqualFold(FieldCertificateNumber, v))
}

// CertificateNumberContainsFold applies the ContainsFold predicate on the "certificate_number" field.
func CertificateNumberContainsFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContainsFold(FieldCertificateNumber, v))
}

// ClaimIDEQ applies the EQ predicate on the "claim_id" field.
func ClaimIDEQ(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldClaimID, v))
}

// ClaimIDNEQ applies the NEQ predicate on the "claim_id" field.
func ClaimIDNEQ(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldClaimID, v))
}

// ClaimIDIn applies the In predicate on the "claim_id" field.
func ClaimIDIn(vs ...uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldClaimID, vs...))
}

// ClaimIDNotIn applies the NotIn predicate on the "claim_id" field.
func ClaimIDNotIn(vs ...uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldClaimID, vs...))
}

// ClaimIDGT applies the GT predicate on the "claim_id" field.
func ClaimIDGT(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldClaimID, v))
}

// ClaimIDGTE applies the GTE predicate on the "claim_id" field.
func ClaimIDGTE(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldClaimID, v))
}

// ClaimIDLT applies the LT predicate on the "claim_id" field.
func ClaimIDLT(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldClaimID, v))
}

// ClaimIDLTE applies the LTE predicate on the "claim_id" field.
func ClaimIDLTE(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldClaimID, v))
}

// BeneficiaryIDEQ applies the EQ predicate on the "beneficiary_id" field.
func BeneficiaryIDEQ(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldBeneficiaryID, v))
}

// BeneficiaryIDNEQ applies the NEQ predicate on the "beneficiary_id" field.
func BeneficiaryIDNEQ(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldBeneficiaryID, v))
}

// BeneficiaryIDIn applies the In predicate on the "beneficiary_id" field.
func BeneficiaryIDIn(vs ...uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldBeneficiaryID, vs...))
}

// BeneficiaryIDNotIn applies the NotIn predicate on the "beneficiary_id" field.
func BeneficiaryIDNotIn(vs ...uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldBeneficiaryID, vs...))
}

// BeneficiaryIDGT applies the GT predicate on the "beneficiary_id" field.
func BeneficiaryIDGT(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldBeneficiaryID, v))
}

// BeneficiaryIDGTE applies the GTE predicate on the "beneficiary_id" field.
func BeneficiaryIDGTE(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldBeneficiaryID, v))
}

// BeneficiaryIDLT applies the LT predicate on the "beneficiary_id" field.
func BeneficiaryIDLT(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldBeneficiaryID, v))
}

// BeneficiaryIDLTE applies the LTE predicate on the "beneficiary_id" field.
func BeneficiaryIDLTE(v uuid.UUID) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldBeneficiaryID, v))
}

// IssuedDateEQ applies the EQ predicate on the "issued_date" field.
func IssuedDateEQ(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldIssuedDate, v))
}

// IssuedDateNEQ applies the NEQ predicate on the "issued_date" field.
func IssuedDateNEQ(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldIssuedDate, v))
}

// IssuedDateIn applies the In predicate on the "issued_date" field.
func IssuedDateIn(vs ...time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldIssuedDate, vs...))
}

// IssuedDateNotIn applies the NotIn predicate on the "issued_date" field.
func IssuedDateNotIn(vs ...time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldIssuedDate, vs...))
}

// IssuedDateGT applies the GT predicate on the "issued_date" field.
func IssuedDateGT(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldIssuedDate, v))
}

// IssuedDateGTE applies the GTE predicate on the "issued_date" field.
func IssuedDateGTE(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldIssuedDate, v))
}

// IssuedDateLT applies the LT predicate on the "issued_date" field.
func IssuedDateLT(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldIssuedDate, v))
}

// IssuedDateLTE applies the LTE predicate on the "issued_date" field.
func IssuedDateLTE(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldIssuedDate, v))
}

// IssuedDateIsNil applies the IsNil predicate on the "issued_date" field.
func IssuedDateIsNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldIsNull(FieldIssuedDate))
}

// IssuedDateNotNil applies the NotNil predicate on the "issued_date" field.
func IssuedDateNotNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldNotNull(FieldIssuedDate))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldStatusCode, v))
}

// StatusCodeContains applies the Contains predicate on the "status_code" field.
func StatusCodeContains(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContains(FieldStatusCode, v))
}

// StatusCodeHasPrefix applies the HasPrefix predicate on the "status_code" field.
func StatusCodeHasPrefix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasPrefix(FieldStatusCode, v))
}

// StatusCodeHasSuffix applies the HasSuffix predicate on the "status_code" field.
func StatusCodeHasSuffix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasSuffix(FieldStatusCode, v))
}

// StatusCodeIsNil applies the IsNil predicate on the "status_code" field.
func StatusCodeIsNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldIsNull(FieldStatusCode))
}

// StatusCodeNotNil applies the NotNil predicate on the "status_code" field.
func StatusCodeNotNil() predicate.Certificate {
	return predicate.Certificate(sql.FieldNotNull(FieldStatusCode))
}

// StatusCodeEqualFold applies the EqualFold predicate on the "status_code" field.
func StatusCodeEqualFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEqualFold(FieldStatusCode, v))
}

// StatusCodeContainsFold applies the ContainsFold predicate on the "status_code" field.
func StatusCodeContainsFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContainsFold(FieldStatusCode, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Certificate) predicate.Certificate {
	return predicate.Certificate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Certificate) predicate.Certificate {
	return predicate.Certificate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Certificate) predicate.Certificate {
	return predicate.Certificate(sql.NotPredicates(p))
}
