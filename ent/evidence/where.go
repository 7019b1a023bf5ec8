// Code generated by ent, DO NOT EDIT.

package evidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourcePackageID applies equality check predicate on the "source_package_id" field. It's identical to SourcePackageIDEQ.
func SourcePackageID(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldSourcePackageID, v))
}

// PersonID applies equality check predicate on the "person_id" field. It's identical to PersonIDEQ.
func PersonID(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldPersonID, v))
}

// EvidenceTypeCode applies equality check predicate on the "evidence_type_code" field. It's identical to EvidenceTypeCodeEQ.
func EvidenceTypeCode(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldEvidenceTypeCode, v))
}

// DocumentNumber applies equality check predicate on the "document_number" field. It's identical to DocumentNumberEQ.
func DocumentNumber(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldDocumentNumber, v))
}

// IssuedDate applies equality check predicate on the "issued_date" field. It's identical to IssuedDateEQ.
func IssuedDate(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldIssuedDate, v))
}

// IssuingAuthority applies equality check predicate on the "issuing_authority" field. It's identical to IssuingAuthorityEQ.
func IssuingAuthority(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldIssuingAuthority, v))
}

// BlobSha256 applies equality check predicate on the "blob_sha256" field. It's identical to BlobSha256EQ.
func BlobSha256(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldBlobSha256, v))
}

// BlobPath applies equality check predicate on the "blob_path" field. It's identical to BlobPathEQ.
func BlobPath(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldBlobPath, v))
}

// BlobSizeBytes applies equality check predicate on the "blob_size_bytes" field. It's identical to BlobSizeBytesEQ.
func BlobSizeBytes(v int64) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldBlobSizeBytes, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldFileName, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldContentType, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourcePackageIDEQ applies the EQ predicate on the "source_package_id" field.
func SourcePackageIDEQ(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldSourcePackageID, v))
}

// SourcePackageIDNEQ applies the NEQ predicate on the "source_package_id" field.
func SourcePackageIDNEQ(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldSourcePackageID, v))
}

// SourcePackageIDIn applies the In predicate on the "source_package_id" field.
func SourcePackageIDIn(vs ...uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDNotIn applies the NotIn predicate on the "source_package_id" field.
func SourcePackageIDNotIn(vs ...uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDGT applies the GT predicate on the "source_package_id" field.
func SourcePackageIDGT(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldSourcePackageID, v))
}

// SourcePackageIDGTE applies the GTE predicate on the "source_package_id" field.
func SourcePackageIDGTE(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldSourcePackageID, v))
}

// SourcePackageIDLT applies the LT predicate on the "source_package_id" field.
func SourcePackageIDLT(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldSourcePackageID, v))
}

// SourcePackageIDLTE applies the LTE predicate on the "source_package_id" field.
func SourcePackageIDLTE(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldSourcePackageID, v))
}

// SourcePackageIDIsNil applies the IsNil predicate on the "source_package_id" field.
func SourcePackageIDIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldSourcePackageID))
}

// SourcePackageIDNotNil applies the NotNil predicate on the "source_package_id" field.
func SourcePackageIDNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldSourcePackageID))
}

// PersonIDEQ applies the EQ predicate on the "person_id" field.
func PersonIDEQ(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldPersonID, v))
}

// PersonIDNEQ applies the NEQ predicate on the "person_id" field.
func PersonIDNEQ(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldPersonID, v))
}

// PersonIDIn applies the In predicate on the "person_id" field.
func PersonIDIn(vs ...uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldPersonID, vs...))
}

// PersonIDNotIn applies the NotIn predicate on the "person_id" field.
func PersonIDNotIn(vs ...uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldPersonID, vs...))
}

// PersonIDGT applies the GT predicate on the "person_id" field.
func PersonIDGT(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldPersonID, v))
}

// PersonIDGTE applies the GTE predicate on the "person_id" field.
func PersonIDGTE(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldPersonID, v))
}

// PersonIDLT applies the LT predicate on the "person_id" field.
func PersonIDLT(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldPersonID, v))
}

// PersonIDLTE applies the LTE predicate on the "person_id" field.
func PersonIDLTE(v uuid.UUID) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldPersonID, v))
}

// EvidenceTypeCodeEQ applies the EQ predicate on the "evidence_type_code" field.
func EvidenceTypeCodeEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldEvidenceTypeCode, v))
}

// EvidenceTypeCodeNEQ applies the NEQ predicate on the "evidence_type_code" field.
func EvidenceTypeCodeNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldEvidenceTypeCode, v))
}

// EvidenceTypeCodeIn applies the In predicate on the "evidence_type_code" field.
func EvidenceTypeCodeIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldEvidenceTypeCode, vs...))
}

// EvidenceTypeCodeNotIn applies the NotIn predicate on the "evidence_type_code" field.
func EvidenceTypeCodeNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldEvidenceTypeCode, vs...))
}

// EvidenceTypeCodeGT applies the GT predicate on the "evidence_type_code" field.
func EvidenceTypeCodeGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldEvidenceTypeCode, v))
}

// EvidenceTypeCodeGTE applies the GTE predicate on the "evidence_type_code" field.
func EvidenceTypeCodeGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldEvidenceTypeCode, v))
}

// EvidenceTypeCodeLT applies the LT predicate on the "evidence_type_code" field.
func EvidenceTypeCodeLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldEvidenceTypeCode, v))
}

// EvidenceTypeCodeLTE applies the LTE predicate on the "evidence_type_code" field.
func EvidenceTypeCodeLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldEvidenceTypeCode, v))
}

// EvidenceTypeCodeContains applies the Contains predicate on the "evidence_type_code" field.
func EvidenceTypeCodeContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldEvidenceTypeCode, v))
}

// EvidenceTypeCodeHasPrefix applies the HasPrefix predicate on the "evidence_type_code" field.
func EvidenceTypeCodeHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldEvidenceTypeCode, v))
}

// EvidenceTypeCodeHasSuffix applies the HasSuffix predicate on the "evidence_type_code" field.
func EvidenceTypeCodeHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldEvidenceTypeCode, v))
}

// EvidenceTypeCodeEqualFold applies the EqualFold predicate on the "evidence_type_code" field.
func EvidenceTypeCodeEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldEvidenceTypeCode, v))
}

// EvidenceTypeCodeContainsFold applies the ContainsFold predicate on the "evidence_type_code" field.
func EvidenceTypeCodeContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldEvidenceTypeCode, v))
}

// DocumentNumberEQ applies the EQ predicate on the "document_number" field.
func DocumentNumberEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldDocumentNumber, v))
}

// DocumentNumberNEQ applies the NEQ predicate on the "document_number" field.
func DocumentNumberNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldDocumentNumber, v))
}

// DocumentNumberIn applies the In predicate on the "document_number" field.
func DocumentNumberIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldDocumentNumber, vs...))
}

// DocumentNumberNotIn applies the NotIn predicate on the "document_number" field.
func DocumentNumberNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldDocumentNumber, vs...))
}

// DocumentNumberGT applies the GT predicate on the "document_number" field.
func DocumentNumberGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldDocumentNumber, v))
}

// DocumentNumberGTE applies the GTE predicate on the "document_number" field.
func DocumentNumberGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldDocumentNumber, v))
}

// DocumentNumberLT applies the LT predicate on the "document_number" field.
func DocumentNumberLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldDocumentNumber, v))
}

// DocumentNumberLTE applies the LTE predicate on the "document_number" field.
func DocumentNumberLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldDocumentNumber, v))
}

// DocumentNumberContains applies the Contains predicate on the "document_number" field.
func DocumentNumberContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldDocumentNumber, v))
}

// DocumentNumberHasPrefix applies the HasPrefix predicate on the "document_number" field.
func DocumentNumberHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldDocumentNumber, v))
}

// DocumentNumberHasSuffix applies the HasSuffix predicate on the "document_number" field.
func DocumentNumberHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldDocumentNumber, v))
}

// DocumentNumberIsNil applies the IsNil predicate on the "document_number" field.
func DocumentNumberIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldDocumentNumber))
}

// DocumentNumberNotNil applies the NotNil predicate on the "document_number" field.
func DocumentNumberNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldDocumentNumber))
}

// DocumentNumberEqualFold applies the EqualFold predicate on the "document_number" field.
func DocumentNumberEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldDocumentNumber, v))
}

// DocumentNumberContainsFold applies the ContainsFold predicate on the "document_number" field.
func DocumentNumberContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldDocumentNumber, v))
}

// IssuedDateEQ applies the EQ predicate on the "issued_date" field.
func IssuedDateEQ(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldIssuedDate, v))
}

// IssuedDateNEQ applies the NEQ predicate on the "issued_date" field.
func IssuedDateNEQ(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldIssuedDate, v))
}

// IssuedDateIn applies the In predicate on the "issued_date" field.
func IssuedDateIn(vs ...time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldIssuedDate, vs...))
}

// IssuedDateNotIn applies the NotIn predicate on the "issued_date" field.
func IssuedDateNotIn(vs ...time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldIssuedDate, vs...))
}

// IssuedDateGT applies the GT predicate on the "issued_date" field.
func IssuedDateGT(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldIssuedDate, v))
}

// IssuedDateGTE applies the GTE predicate on the "issued_date" field.
func IssuedDateGTE(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldIssuedDate, v))
}

// IssuedDateLT applies the LT predicate on the "issued_date" field.
func IssuedDateLT(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldIssuedDate, v))
}

// IssuedDateLTE applies the LTE predicate on the "issued_date" field.
func IssuedDateLTE(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldIssuedDate, v))
}

// IssuedDateIsNil applies the IsNil predicate on the "issued_date" field.
func IssuedDateIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldIssuedDate))
}

// IssuedDateNotNil applies the NotNil predicate on the "issued_date" field.
func IssuedDateNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldIssuedDate))
}

// IssuingAuthorityEQ applies the EQ predicate on the "issuing_authority" field.
func IssuingAuthorityEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldIssuingAuthority, v))
}

// IssuingAuthorityNEQ applies the NEQ predicate on the "issuing_authority" field.
func IssuingAuthorityNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldIssuingAuthority, v))
}

// IssuingAuthorityIn applies the In predicate on the "issuing_authority" field.
func IssuingAuthorityIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldIssuingAuthority, vs...))
}

// IssuingAuthorityNotIn applies the NotIn predicate on the "issuing_authority" field.
func IssuingAuthorityNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldIssuingAuthority, vs...))
}

// IssuingAuthorityGT applies the GT predicate on the "issuing_authority" field.
func IssuingAuthorityGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldIssuingAuthority, v))
}

// IssuingAuthorityGTE applies the GTE predicate on the "issuing_authority" field.
func IssuingAuthorityGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldIssuingAuthority, v))
}

// IssuingAuthorityLT applies the LT predicate on the "issuing_authority" field.
func IssuingAuthorityLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldIssuingAuthority, v))
}

// IssuingAuthorityLTE applies the LTE predicate on the "issuing_authority" field.
func IssuingAuthorityLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldIssuingAuthority, v))
}

// IssuingAuthorityContains applies the Contains predicate on the "issuing_authority" field.
func IssuingAuthorityContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldIssuingAuthority, v))
}

// IssuingAuthorityHasPrefix applies the HasPrefix predicate on the "issuing_authority" field.
func IssuingAuthorityHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldIssuingAuthority, v))
}

// IssuingAuthorityHasSuffix applies the HasSuffix predicate on the "issuing_authority" field.
func IssuingAuthorityHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldIssuingAuthority, v))
}

// IssuingAuthorityIsNil applies the IsNil predicate on the "issuing_authority" field.
func IssuingAuthorityIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldIssuingAuthority))
}

// IssuingAuthorityNotNil applies the NotNil predicate on the "issuing_authority" field.
func IssuingAuthorityNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldIssuingAuthority))
}

// IssuingAuthorityEqualFold applies the EqualFold predicate on the "issuing_authority" field.
func IssuingAuthorityEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldIssuingAuthority, v))
}

// IssuingAuthorityContainsFold applies the ContainsFold predicate on the "issuing_authority" field.
func IssuingAuthorityContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldIssuingAuthority, v))
}

// BlobSha256EQ applies the EQ predicate on the "blob_sha256" field.
func BlobSha256EQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldBlobSha256, v))
}

// BlobSha256NEQ applies the NEQ predicate on the "blob_sha256" field.
func BlobSha256NEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldBlobSha256, v))
}

// BlobSha256In applies the In predicate on the "blob_sha256" field.
func BlobSha256In(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldBlobSha256, vs...))
}

// BlobSha256NotIn applies the NotIn predicate on the "blob_sha256" field.
func BlobSha256NotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldBlobSha256, vs...))
}

// BlobSha256GT applies the GT predicate on the "blob_sha256" field.
func BlobSha256GT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldBlobSha256, v))
}

// BlobSha256GTE applies the GTE predicate on the "blob_sha256" field.
func BlobSha256GTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldBlobSha256, v))
}

// BlobSha256LT applies the LT predicate on the "blob_sha256" field.
func BlobSha256LT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldBlobSha256, v))
}

// BlobSha256LTE applies the LTE predicate on the "blob_sha256" field.
func BlobSha256LTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldBlobSha256, v))
}

// BlobSha256Contains applies the Contains predicate on the "blob_sha256" field.
func BlobSha256Contains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldBlobSha256, v))
}

// BlobSha256HasPrefix applies the HasPrefix predicate on the "blob_sha256" field.
func BlobSha256HasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldBlobSha256, v))
}

// BlobSha256HasSuffix applies the HasSuffix predicate on the "blob_sha256" field.
func BlobSha256HasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldBlobSha256, v))
}

// BlobSha256IsNil applies the IsNil predicate on the "blob_sha256" field.
func BlobSha256IsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldBlobSha256))
}

// BlobSha256NotNil applies the NotNil predicate on the "blob_sha256" field.
func BlobSha256NotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldBlobSha256))
}

// BlobSha256EqualFold applies the EqualFold predicate on the "blob_sha256" field.
func BlobSha256EqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldBlobSha256, v))
}

// BlobSha256ContainsFold applies the ContainsFold predicate on the "blob_sha256" field.
func BlobSha256ContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldBlobSha256, v))
}

// BlobPathEQ applies the EQ predicate on the "blob_path" field.
func BlobPathEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldBlobPath, v))
}

// BlobPathNEQ applies the NEQ predicate on the "blob_path" field.
func BlobPathNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldBlobPath, v))
}

// BlobPathIn applies the In predicate on the "blob_path" field.
func BlobPathIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldBlobPath, vs...))
}

// BlobPathNotIn applies the NotIn predicate on the "blob_path" field.
func BlobPathNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldBlobPath, vs...))
}

// BlobPathGT applies the GT predicate on the "blob_path" field.
func BlobPathGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldBlobPath, v))
}

// BlobPathGTE applies the GTE predicate on the "blob_path" field.
func BlobPathGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldBlobPath, v))
}

// BlobPathLT applies the LT predicate on the "blob_path" field.
func BlobPathLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldBlobPath, v))
}

// BlobPathLTE applies the LTE predicate on the "blob_path" field.
func BlobPathLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldBlobPath, v))
}

// BlobPathContains applies the Contains predicate on the "blob_path" field.
func BlobPathContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldBlobPath, v))
}

// BlobPathHasPrefix applies the HasPrefix predicate on the "blob_path" field.
func BlobPathHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldBlobPath, v))
}

// BlobPathHasSuffix applies the HasSuffix predicate on the "blob_path" field.
func BlobPathHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldBlobPath, v))
}

// BlobPathIsNil applies the IsNil predicate on the "blob_path" field.
func BlobPathIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldBlobPath))
}

// BlobPathNotNil applies the NotNil predicate on the "blob_path" field.
func BlobPathNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldBlobPath))
}

// BlobPathEqualFold applies the EqualFold predicate on the "blob_path" field.
func BlobPathEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldBlobPath, v))
}

// BlobPathContainsFold applies the ContainsFold predicate on the "blob_path" field.
func BlobPathContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldBlobPath, v))
}

// BlobSizeBytesEQ applies the EQ predicate on the "blob_size_bytes" field.
func BlobSizeBytesEQ(v int64) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldBlobSizeBytes, v))
}

// BlobSizeBytesNEQ applies the NEQ predicate on the "blob_size_bytes" field.
func BlobSizeBytesNEQ(v int64) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldBlobSizeBytes, v))
}

// BlobSizeBytesIn applies the In predicate on the "blob_size_bytes" field.
func BlobSizeBytesIn(vs ...int64) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldBlobSizeBytes, vs...))
}

// BlobSizeBytesNotIn applies the NotIn predicate on the "blob_size_bytes" field.
func BlobSizeBytesNotIn(vs ...int64) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldBlobSizeBytes, vs...))
}

// BlobSizeBytesGT applies the GT predicate on the "blob_size_bytes" field.
func BlobSizeBytesGT(v int64) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldBlobSizeBytes, v))
}

// BlobSizeBytesGTE applies the GTE predicate on the "blob_size_bytes" field.
func BlobSizeBytesGTE(v int64) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldBlobSizeBytes, v))
}

// BlobSizeBytesLT applies the LT predicate on the "blob_size_bytes" field.
func BlobSizeBytesLT(v int64) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldBlobSizeBytes, v))
}

// BlobSizeBytesLTE applies the LTE predicate on the "blob_size_bytes" field.
func BlobSizeBytesLTE(v int64) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldBlobSizeBytes, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameIsNil applies the IsNil predicate on the "file_name" field.
func FileNameIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldFileName))
}

// FileNameNotNil applies the NotNil predicate on the "file_name" field.
func FileNameNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldFileName))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldFileName, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeIsNil applies the IsNil predicate on the "content_type" field.
func ContentTypeIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldContentType))
}

// ContentTypeNotNil applies the NotNil predicate on the "content_type" field.
func ContentTypeNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldContentType))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldContentType, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Evidence) predicate.Evidence {
	return predicate.Evidence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Evidence) predicate.Evidence {
	return predicate.Evidence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Evidence) predicate.Evidence {
	return predicate.Evidence(sql.NotPredicates(p))
}
