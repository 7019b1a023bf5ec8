// Code generated by ent, DO NOT EDIT.

package staginghousehold

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldUpdatedAt, v))
}

// ImportPackageID applies equality check predicate on the "import_package_id" field. It's identical to ImportPackageIDEQ.
func ImportPackageID(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldImportPackageID, v))
}

// OriginalEntityID applies equality check predicate on the "original_entity_id" field. It's identical to OriginalEntityIDEQ.
func OriginalEntityID(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldOriginalEntityID, v))
}

// ApprovedForCommit applies equality check predicate on the "approved_for_commit" field. It's identical to ApprovedForCommitEQ.
func ApprovedForCommit(v bool) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldApprovedForCommit, v))
}

// CommittedEntityID applies equality check predicate on the "committed_entity_id" field. It's identical to CommittedEntityIDEQ.
func CommittedEntityID(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldCommittedEntityID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldLTE(FieldUpdatedAt, v))
}

// ImportPackageIDEQ applies the EQ predicate on the "import_package_id" field.
func ImportPackageIDEQ(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldImportPackageID, v))
}

// ImportPackageIDNEQ applies the NEQ predicate on the "import_package_id" field.
func ImportPackageIDNEQ(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNEQ(FieldImportPackageID, v))
}

// ImportPackageIDIn applies the In predicate on the "import_package_id" field.
func ImportPackageIDIn(vs ...uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldIn(FieldImportPackageID, vs...))
}

// ImportPackageIDNotIn applies the NotIn predicate on the "import_package_id" field.
func ImportPackageIDNotIn(vs ...uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNotIn(FieldImportPackageID, vs...))
}

// ImportPackageIDGT applies the GT predicate on the "import_package_id" field.
func ImportPackageIDGT(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldGT(FieldImportPackageID, v))
}

// ImportPackageIDGTE applies the GTE predicate on the "import_package_id" field.
func ImportPackageIDGTE(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldGTE(FieldImportPackageID, v))
}

// ImportPackageIDLT applies the LT predicate on the "import_package_id" field.
func ImportPackageIDLT(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldLT(FieldImportPackageID, v))
}

// ImportPackageIDLTE applies the LTE predicate on the "import_package_id" field.
func ImportPackageIDLTE(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldLTE(FieldImportPackageID, v))
}

// OriginalEntityIDEQ applies the EQ predicate on the "original_entity_id" field.
func OriginalEntityIDEQ(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldOriginalEntityID, v))
}

// OriginalEntityIDNEQ applies the NEQ predicate on the "original_entity_id" field.
func OriginalEntityIDNEQ(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNEQ(FieldOriginalEntityID, v))
}

// OriginalEntityIDIn applies the In predicate on the "original_entity_id" field.
func OriginalEntityIDIn(vs ...uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldIn(FieldOriginalEntityID, vs...))
}

// OriginalEntityIDNotIn applies the NotIn predicate on the "original_entity_id" field.
func OriginalEntityIDNotIn(vs ...uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNotIn(FieldOriginalEntityID, vs...))
}

// OriginalEntityIDGT applies the GT predicate on the "original_entity_id" field.
func OriginalEntityIDGT(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldGT(FieldOriginalEntityID, v))
}

// OriginalEntityIDGTE applies the GTE predicate on the "original_entity_id" field.
func OriginalEntityIDGTE(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldGTE(FieldOriginalEntityID, v))
}

// OriginalEntityIDLT applies the LT predicate on the "original_entity_id" field.
func OriginalEntityIDLT(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldLT(FieldOriginalEntityID, v))
}

// OriginalEntityIDLTE applies the LTE predicate on the "original_entity_id" field.
func OriginalEntityIDLTE(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldLTE(FieldOriginalEntityID, v))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v ValidationStatus) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v ValidationStatus) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...ValidationStatus) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...ValidationStatus) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// DiagnosticsIsNil applies the IsNil predicate on the "diagnostics" field.
func DiagnosticsIsNil() predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldIsNull(FieldDiagnostics))
}

// DiagnosticsNotNil applies the NotNil predicate on the "diagnostics" field.
func DiagnosticsNotNil() predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNotNull(FieldDiagnostics))
}

// ApprovedForCommitEQ applies the EQ predicate on the "approved_for_commit" field.
func ApprovedForCommitEQ(v bool) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldApprovedForCommit, v))
}

// ApprovedForCommitNEQ applies the NEQ predicate on the "approved_for_commit" field.
func ApprovedForCommitNEQ(v bool) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNEQ(FieldApprovedForCommit, v))
}

// CommittedEntityIDEQ applies the EQ predicate on the "committed_entity_id" field.
func CommittedEntityIDEQ(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldEQ(FieldCommittedEntityID, v))
}

// CommittedEntityIDNEQ applies the NEQ predicate on the "committed_entity_id" field.
func CommittedEntityIDNEQ(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNEQ(FieldCommittedEntityID, v))
}

// CommittedEntityIDIn applies the In predicate on the "committed_entity_id" field.
func CommittedEntityIDIn(vs ...uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldIn(FieldCommittedEntityID, vs...))
}

// CommittedEntityIDNotIn applies the NotIn predicate on the "committed_entity_id" field.
func CommittedEntityIDNotIn(vs ...uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNotIn(FieldCommittedEntityID, vs...))
}

// CommittedEntityIDGT applies the GT predicate on the "committed_entity_id" field.
func CommittedEntityIDGT(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldGT(FieldCommittedEntityID, v))
}

// CommittedEntityIDGTE applies the GTE predicate on the "committed_entity_id" field.
func CommittedEntityIDGTE(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldGTE(FieldCommittedEntityID, v))
}

// CommittedEntityIDLT applies the LT predicate on the "committed_entity_id" field.
func CommittedEntityIDLT(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldLT(FieldCommittedEntityID, v))
}

// CommittedEntityIDLTE applies the LTE predicate on the "committed_entity_id" field.
func CommittedEntityIDLTE(v uuid.UUID) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldLTE(FieldCommittedEntityID, v))
}

// CommittedEntityIDIsNil applies the IsNil predicate on the "committed_entity_id" field.
func CommittedEntityIDIsNil() predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldIsNull(FieldCommittedEntityID))
}

// CommittedEntityIDNotNil applies the NotNil predicate on the "committed_entity_id" field.
func CommittedEntityIDNotNil() predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.FieldNotNull(FieldCommittedEntityID))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StagingHousehold) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StagingHousehold) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StagingHousehold) predicate.StagingHousehold {
	return predicate.StagingHousehold(sql.NotPredicates(p))
}
