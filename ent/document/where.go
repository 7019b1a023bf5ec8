// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourcePackageID applies equality check predicate on the "source_package_id" field. It's identical to SourcePackageIDEQ.
func SourcePackageID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourcePackageID, v))
}

// ClaimID applies equality check predicate on the "claim_id" field. It's identical to ClaimIDEQ.
func ClaimID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldClaimID, v))
}

// DocumentTypeCode applies equality check predicate on the "document_type_code" field. It's identical to DocumentTypeCodeEQ.
func DocumentTypeCode(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocumentTypeCode, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTitle, v))
}

// BlobSha256 applies equality check predicate on the "blob_sha256" field. It's identical to BlobSha256EQ.
func BlobSha256(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBlobSha256, v))
}

// BlobPath applies equality check predicate on the "blob_path" field. It's identical to BlobPathEQ.
func BlobPath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBlobPath, v))
}

// BlobSizeBytes applies equality check predicate on the "blob_size_bytes" field. It's identical to BlobSizeBytesEQ.
func BlobSizeBytes(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBlobSizeBytes, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileName, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourcePackageIDEQ applies the EQ predicate on the "source_package_id" field.
func SourcePackageIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourcePackageID, v))
}

// SourcePackageIDNEQ applies the NEQ predicate on the "source_package_id" field.
func SourcePackageIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourcePackageID, v))
}

// SourcePackageIDIn applies the In predicate on the "source_package_id" field.
func SourcePackageIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDNotIn applies the NotIn predicate on the "source_package_id" field.
func SourcePackageIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourcePackageID, vs...))
}

// SourcePackageIDGT applies the GT predicate on the "source_package_id" field.
func SourcePackageIDGT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSourcePackageID, v))
}

// SourcePackageIDGTE applies the GTE predicate on the "source_package_id" field.
func SourcePackageIDGTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSourcePackageID, v))
}

// SourcePackageIDLT applies the LT predicate on the "source_package_id" field.
func SourcePackageIDLT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSourcePackageID, v))
}

// SourcePackageIDLTE applies the LTE predicate on the "source_package_id" field.
func SourcePackageIDLTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSourcePackageID, v))
}

// SourcePackageIDIsNil applies the IsNil predicate on the "source_package_id" field.
func SourcePackageIDIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSourcePackageID))
}

// SourcePackageIDNotNil applies the NotNil predicate on the "source_package_id" field.
func SourcePackageIDNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSourcePackageID))
}

// ClaimIDEQ applies the EQ predicate on the "claim_id" field.
func ClaimIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldClaimID, v))
}

// ClaimIDNEQ applies the NEQ predicate on the "claim_id" field.
func ClaimIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldClaimID, v))
}

// ClaimIDIn applies the In predicate on the "claim_id" field.
func ClaimIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldClaimID, vs...))
}

// ClaimIDNotIn applies the NotIn predicate on the "claim_id" field.
func ClaimIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldClaimID, vs...))
}

// ClaimIDGT applies the GT predicate on the "claim_id" field.
func ClaimIDGT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldClaimID, v))
}

// ClaimIDGTE applies the GTE predicate on the "claim_id" field.
func ClaimIDGTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldClaimID, v))
}

// ClaimIDLT applies the LT predicate on the "claim_id" field.
func ClaimIDLT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldClaimID, v))
}

// ClaimIDLTE applies the LTE predicate on the "claim_id" field.
func ClaimIDLTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldClaimID, v))
}

// DocumentTypeCodeEQ applies the EQ predicate on the "document_type_code" field.
func DocumentTypeCodeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocumentTypeCode, v))
}

// DocumentTypeCodeNEQ applies the NEQ predicate on the "document_type_code" field.
func DocumentTypeCodeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocumentTypeCode, v))
}

// DocumentTypeCodeIn applies the In predicate on the "document_type_code" field.
func DocumentTypeCodeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocumentTypeCode, vs...))
}

// DocumentTypeCodeNotIn applies the NotIn predicate on the "document_type_code" field.
func DocumentTypeCodeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocumentTypeCode, vs...))
}

// DocumentTypeCodeGT applies the GT predicate on the "document_type_code" field.
func DocumentTypeCodeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocumentTypeCode, v))
}

// DocumentTypeCodeGTE applies the GTE predicate on the "document_type_code" field.
func DocumentTypeCodeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocumentTypeCode, v))
}

// DocumentTypeCodeLT applies the LT predicate on the "document_type_code" field.
func DocumentTypeCodeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocumentTypeCode, v))
}

// DocumentTypeCodeLTE applies the LTE predicate on the "document_type_code" field.
func DocumentTypeCodeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocumentTypeCode, v))
}

// DocumentTypeCodeContains applies the Contains predicate on the "document_type_code" field.
func DocumentTypeCodeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocumentTypeCode, v))
}

// DocumentTypeCodeHasPrefix applies the HasPrefix predicate on the "document_type_code" field.
func DocumentTypeCodeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocumentTypeCode, v))
}

// DocumentTypeCodeHasSuffix applies the HasSuffix predicate on the "document_type_code" field.
func DocumentTypeCodeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocumentTypeCode, v))
}

// DocumentTypeCodeEqualFold applies the EqualFold predicate on the "document_type_code" field.
func DocumentTypeCodeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocumentTypeCode, v))
}

// DocumentTypeCodeContainsFold applies the ContainsFold predicate on the "document_type_code" field.
func DocumentTypeCodeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocumentTypeCode, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldTitle, v))
}

// BlobSha256EQ applies the EQ predicate on the "blob_sha256" field.
func BlobSha256EQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBlobSha256, v))
}

// BlobSha256NEQ applies the NEQ predicate on the "blob_sha256" field.
func BlobSha256NEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldBlobSha256, v))
}

// BlobSha256In applies the In predicate on the "blob_sha256" field.
func BlobSha256In(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldBlobSha256, vs...))
}

// BlobSha256NotIn applies the NotIn predicate on the "blob_sha256" field.
func BlobSha256NotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldBlobSha256, vs...))
}

// BlobSha256GT applies the GT predicate on the "blob_sha256" field.
func BlobSha256GT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldBlobSha256, v))
}

// BlobSha256GTE applies the GTE predicate on the "blob_sha256" field.
func BlobSha256GTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldBlobSha256, v))
}

// BlobSha256LT applies the LT predicate on the "blob_sha256" field.
func BlobSha256LT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldBlobSha256, v))
}

// BlobSha256LTE applies the LTE predicate on the "blob_sha256" field.
func BlobSha256LTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldBlobSha256, v))
}

// BlobSha256Contains applies the Contains predicate on the "blob_sha256" field.
func BlobSha256Contains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldBlobSha256, v))
}

// BlobSha256HasPrefix applies the HasPrefix predicate on the "blob_sha256" field.
func BlobSha256HasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldBlobSha256, v))
}

// BlobSha256HasSuffix applies the HasSuffix predicate on the "blob_sha256" field.
func BlobSha256HasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldBlobSha256, v))
}

// BlobSha256IsNil applies the IsNil predicate on the "blob_sha256" field.
func BlobSha256IsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldBlobSha256))
}

// BlobSha256NotNil applies the NotNil predicate on the "blob_sha256" field.
func BlobSha256NotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldBlobSha256))
}

// BlobSha256EqualFold applies the EqualFold predicate on the "blob_sha256" field.
func BlobSha256EqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldBlobSha256, v))
}

// BlobSha256ContainsFold applies the ContainsFold predicate on the "blob_sha256" field.
func BlobSha256ContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldBlobSha256, v))
}

// BlobPathEQ applies the EQ predicate on the "blob_path" field.
func BlobPathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBlobPath, v))
}

// BlobPathNEQ applies the NEQ predicate on the "blob_path" field.
func BlobPathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldBlobPath, v))
}

// BlobPathIn applies the In predicate on the "blob_path" field.
func BlobPathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldBlobPath, vs...))
}

// BlobPathNotIn applies the NotIn predicate on the "blob_path" field.
func BlobPathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldBlobPath, vs...))
}

// BlobPathGT applies the GT predicate on the "blob_path" field.
func BlobPathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldBlobPath, v))
}

// BlobPathGTE applies the GTE predicate on the "blob_path" field.
func BlobPathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldBlobPath, v))
}

// BlobPathLT applies the LT predicate on the "blob_path" field.
func BlobPathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldBlobPath, v))
}

// BlobPathLTE applies the LTE predicate on the "blob_path" field.
func BlobPathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldBlobPath, v))
}

// BlobPathContains applies the Contains predicate on the "blob_path" field.
func BlobPathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldBlobPath, v))
}

// BlobPathHasPrefix applies the HasPrefix predicate on the "blob_path" field.
func BlobPathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldBlobPath, v))
}

// BlobPathHasSuffix applies the HasSuffix predicate on the "blob_path" field.
func BlobPathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldBlobPath, v))
}

// BlobPathIsNil applies the IsNil predicate on the "blob_path" field.
func BlobPathIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldBlobPath))
}

// BlobPathNotNil applies the NotNil predicate on the "blob_path" field.
func BlobPathNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldBlobPath))
}

// BlobPathEqualFold applies the EqualFold predicate on the "blob_path" field.
func BlobPathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldBlobPath, v))
}

// BlobPathContainsFold applies the ContainsFold predicate on the "blob_path" field.
func BlobPathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldBlobPath, v))
}

// BlobSizeBytesEQ applies the EQ predicate on the "blob_size_bytes" field.
func BlobSizeBytesEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBlobSizeBytes, v))
}

// BlobSizeBytesNEQ applies the NEQ predicate on the "blob_size_bytes" field.
func BlobSizeBytesNEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldBlobSizeBytes, v))
}

// BlobSizeBytesIn applies the In predicate on the "blob_size_bytes" field.
func BlobSizeBytesIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldBlobSizeBytes, vs...))
}

// BlobSizeBytesNotIn applies the NotIn predicate on the "blob_size_bytes" field.
func BlobSizeBytesNotIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldBlobSizeBytes, vs...))
}

// BlobSizeBytesGT applies the GT predicate on the "blob_size_bytes" field.
func BlobSizeBytesGT(v int64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldBlobSizeBytes, v))
}

// BlobSizeBytesGTE applies the GTE predicate on the "blob_size_bytes" field.
func BlobSizeBytesGTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldBlobSizeBytes, v))
}

// BlobSizeBytesLT applies the LT predicate on the "blob_size_bytes" field.
func BlobSizeBytesLT(v int64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldBlobSizeBytes, v))
}

// BlobSizeBytesLTE applies the LTE predicate on the "blob_size_bytes" field.
func BlobSizeBytesLTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldBlobSizeBytes, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameIsNil applies the IsNil predicate on the "file_name" field.
func FileNameIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldFileName))
}

// FileNameNotNil applies the NotNil predicate on the "file_name" field.
func FileNameNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldFileName))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileName, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeIsNil applies the IsNil predicate on the "content_type" field.
func ContentTypeIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldContentType))
}

// ContentTypeNotNil applies the NotNil predicate on the "content_type" field.
func ContentTypeNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldContentType))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldContentType, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
