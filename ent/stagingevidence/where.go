// Code generated by ent, DO NOT EDIT.

package stagingevidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldUpdatedAt, v))
}

// ImportPackageID applies equality check predicate on the "import_package_id" field. It's identical to ImportPackageIDEQ.
func ImportPackageID(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldImportPackageID, v))
}

// OriginalEntityID applies equality check predicate on the "original_entity_id" field. It's identical to OriginalEntityIDEQ.
func OriginalEntityID(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldOriginalEntityID, v))
}

// ApprovedForCommit applies equality check predicate on the "approved_for_commit" field. It's identical to ApprovedForCommitEQ.
func ApprovedForCommit(v bool) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldApprovedForCommit, v))
}

// CommittedEntityID applies equality check predicate on the "committed_entity_id" field. It's identical to CommittedEntityIDEQ.
func CommittedEntityID(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldCommittedEntityID, v))
}

// BlobSha256 applies equality check predicate on the "blob_sha256" field. It's identical to BlobSha256EQ.
func BlobSha256(v string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldBlobSha256, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLTE(FieldUpdatedAt, v))
}

// ImportPackageIDEQ applies the EQ predicate on the "import_package_id" field.
func ImportPackageIDEQ(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldImportPackageID, v))
}

// ImportPackageIDNEQ applies the NEQ predicate on the "import_package_id" field.
func ImportPackageIDNEQ(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNEQ(FieldImportPackageID, v))
}

// ImportPackageIDIn applies the In predicate on the "import_package_id" field.
func ImportPackageIDIn(vs ...uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldIn(FieldImportPackageID, vs...))
}

// ImportPackageIDNotIn applies the NotIn predicate on the "import_package_id" field.
func ImportPackageIDNotIn(vs ...uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNotIn(FieldImportPackageID, vs...))
}

// ImportPackageIDGT applies the GT predicate on the "import_package_id" field.
func ImportPackageIDGT(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGT(FieldImportPackageID, v))
}

// ImportPackageIDGTE applies the GTE predicate on the "import_package_id" field.
func ImportPackageIDGTE(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGTE(FieldImportPackageID, v))
}

// ImportPackageIDLT applies the LT predicate on the "import_package_id" field.
func ImportPackageIDLT(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLT(FieldImportPackageID, v))
}

// ImportPackageIDLTE applies the LTE predicate on the "import_package_id" field.
func ImportPackageIDLTE(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLTE(FieldImportPackageID, v))
}

// OriginalEntityIDEQ applies the EQ predicate on the "original_entity_id" field.
func OriginalEntityIDEQ(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldOriginalEntityID, v))
}

// OriginalEntityIDNEQ applies the NEQ predicate on the "original_entity_id" field.
func OriginalEntityIDNEQ(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNEQ(FieldOriginalEntityID, v))
}

// OriginalEntityIDIn applies the In predicate on the "original_entity_id" field.
func OriginalEntityIDIn(vs ...uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldIn(FieldOriginalEntityID, vs...))
}

// OriginalEntityIDNotIn applies the NotIn predicate on the "original_entity_id" field.
func OriginalEntityIDNotIn(vs ...uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNotIn(FieldOriginalEntityID, vs...))
}

// OriginalEntityIDGT applies the GT predicate on the "original_entity_id" field.
func OriginalEntityIDGT(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGT(FieldOriginalEntityID, v))
}

// OriginalEntityIDGTE applies the GTE predicate on the "original_entity_id" field.
func OriginalEntityIDGTE(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGTE(FieldOriginalEntityID, v))
}

// OriginalEntityIDLT applies the LT predicate on the "original_entity_id" field.
func OriginalEntityIDLT(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLT(FieldOriginalEntityID, v))
}

// OriginalEntityIDLTE applies the LTE predicate on the "original_entity_id" field.
func OriginalEntityIDLTE(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLTE(FieldOriginalEntityID, v))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v ValidationStatus) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v ValidationStatus) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...ValidationStatus) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...ValidationStatus) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// DiagnosticsIsNil applies the IsNil predicate on the "diagnostics" field.
func DiagnosticsIsNil() predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldIsNull(FieldDiagnostics))
}

// DiagnosticsNotNil applies the NotNil predicate on the "diagnostics" field.
func DiagnosticsNotNil() predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNotNull(FieldDiagnostics))
}

// ApprovedForCommitEQ applies the EQ predicate on the "approved_for_commit" field.
func ApprovedForCommitEQ(v bool) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldApprovedForCommit, v))
}

// ApprovedForCommitNEQ applies the NEQ predicate on the "approved_for_commit" field.
func ApprovedForCommitNEQ(v bool) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNEQ(FieldApprovedForCommit, v))
}

// CommittedEntityIDEQ applies the EQ predicate on the "committed_entity_id" field.
func CommittedEntityIDEQ(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldCommittedEntityID, v))
}

// CommittedEntityIDNEQ applies the NEQ predicate on the "committed_entity_id" field.
func CommittedEntityIDNEQ(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNEQ(FieldCommittedEntityID, v))
}

// CommittedEntityIDIn applies the In predicate on the "committed_entity_id" field.
func CommittedEntityIDIn(vs ...uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldIn(FieldCommittedEntityID, vs...))
}

// CommittedEntityIDNotIn applies the NotIn predicate on the "committed_entity_id" field.
func CommittedEntityIDNotIn(vs ...uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNotIn(FieldCommittedEntityID, vs...))
}

// CommittedEntityIDGT applies the GT predicate on the "committed_entity_id" field.
func CommittedEntityIDGT(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGT(FieldCommittedEntityID, v))
}

// CommittedEntityIDGTE applies the GTE predicate on the "committed_entity_id" field.
func CommittedEntityIDGTE(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGTE(FieldCommittedEntityID, v))
}

// CommittedEntityIDLT applies the LT predicate on the "committed_entity_id" field.
func CommittedEntityIDLT(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLT(FieldCommittedEntityID, v))
}

// CommittedEntityIDLTE applies the LTE predicate on the "committed_entity_id" field.
func CommittedEntityIDLTE(v uuid.UUID) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLTE(FieldCommittedEntityID, v))
}

// CommittedEntityIDIsNil applies the IsNil predicate on the "committed_entity_id" field.
func CommittedEntityIDIsNil() predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldIsNull(FieldCommittedEntityID))
}

// CommittedEntityIDNotNil applies the NotNil predicate on the "committed_entity_id" field.
func CommittedEntityIDNotNil() predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNotNull(FieldCommittedEntityID))
}

// BlobSha256EQ applies the EQ predicate on the "blob_sha256" field.
func BlobSha256EQ(v string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEQ(FieldBlobSha256, v))
}

// BlobSha256NEQ applies the NEQ predicate on the "blob_sha256" field.
func BlobSha256NEQ(v string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNEQ(FieldBlobSha256, v))
}

// BlobSha256In applies the In predicate on the "blob_sha256" field.
func BlobSha256In(vs ...string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldIn(FieldBlobSha256, vs...))
}

// BlobSha256NotIn applies the NotIn predicate on the "blob_sha256" field.
func BlobSha256NotIn(vs ...string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNotIn(FieldBlobSha256, vs...))
}

// BlobSha256GT applies the GT predicate on the "blob_sha256" field.
func BlobSha256GT(v string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGT(FieldBlobSha256, v))
}

// BlobSha256GTE applies the GTE predicate on the "blob_sha256" field.
func BlobSha256GTE(v string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldGTE(FieldBlobSha256, v))
}

// BlobSha256LT applies the LT predicate on the "blob_sha256" field.
func BlobSha256LT(v string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLT(FieldBlobSha256, v))
}

// BlobSha256LTE applies the LTE predicate on the "blob_sha256" field.
func BlobSha256LTE(v string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldLTE(FieldBlobSha256, v))
}

// BlobSha256Contains applies the Contains predicate on the "blob_sha256" field.
func BlobSha256Contains(v string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldContains(FieldBlobSha256, v))
}

// BlobSha256HasPrefix applies the HasPrefix predicate on the "blob_sha256" field.
func BlobSha256HasPrefix(v string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldHasPrefix(FieldBlobSha256, v))
}

// BlobSha256HasSuffix applies the HasSuffix predicate on the "blob_sha256" field.
func BlobSha256HasSuffix(v string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldHasSuffix(FieldBlobSha256, v))
}

// BlobSha256IsNil applies the IsNil predicate on the "blob_sha256" field.
func BlobSha256IsNil() predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldIsNull(FieldBlobSha256))
}

// BlobSha256NotNil applies the NotNil predicate on the "blob_sha256" field.
func BlobSha256NotNil() predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldNotNull(FieldBlobSha256))
}

// BlobSha256EqualFold applies the EqualFold predicate on the "blob_sha256" field.
func BlobSha256EqualFold(v string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldEqualFold(FieldBlobSha256, v))
}

// BlobSha256ContainsFold applies the ContainsFold predicate on the "blob_sha256" field.
func BlobSha256ContainsFold(v string) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.FieldContainsFold(FieldBlobSha256, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StagingEvidence) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StagingEvidence) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StagingEvidence) predicate.StagingEvidence {
	return predicate.StagingEvidence(sql.NotPredicates(p))
}
