// Code generated by ent, DO NOT EDIT.

package stagingpropertyunit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldUpdatedAt, v))
}

// ImportPackageID applies equality check predicate on the "import_package_id" field. It's identical to ImportPackageIDEQ.
func ImportPackageID(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldImportPackageID, v))
}

// OriginalEntityID applies equality check predicate on the "original_entity_id" field. It's identical to OriginalEntityIDEQ.
func OriginalEntityID(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldOriginalEntityID, v))
}

// ApprovedForCommit applies equality check predicate on the "approved_for_commit" field. It's identical to ApprovedForCommitEQ.
func ApprovedForCommit(v bool) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldApprovedForCommit, v))
}

// CommittedEntityID applies equality check predicate on the "committed_entity_id" field. It's identical to CommittedEntityIDEQ.
func CommittedEntityID(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldCommittedEntityID, v))
}

// OriginalBuildingID applies equality check predicate on the "original_building_id" field. It's identical to OriginalBuildingIDEQ.
func OriginalBuildingID(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldOriginalBuildingID, v))
}

// UnitIdentifierNormalized applies equality check predicate on the "unit_identifier_normalized" field. It's identical to UnitIdentifierNormalizedEQ.
func UnitIdentifierNormalized(v string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldUnitIdentifierNormalized, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLTE(FieldUpdatedAt, v))
}

// ImportPackageIDEQ applies the EQ predicate on the "import_package_id" field.
func ImportPackageIDEQ(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldImportPackageID, v))
}

// ImportPackageIDNEQ applies the NEQ predicate on the "import_package_id" field.
func ImportPackageIDNEQ(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNEQ(FieldImportPackageID, v))
}

// ImportPackageIDIn applies the In predicate on the "import_package_id" field.
func ImportPackageIDIn(vs ...uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldIn(FieldImportPackageID, vs...))
}

// ImportPackageIDNotIn applies the NotIn predicate on the "import_package_id" field.
func ImportPackageIDNotIn(vs ...uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNotIn(FieldImportPackageID, vs...))
}

// ImportPackageIDGT applies the GT predicate on the "import_package_id" field.
func ImportPackageIDGT(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGT(FieldImportPackageID, v))
}

// ImportPackageIDGTE applies the GTE predicate on the "import_package_id" field.
func ImportPackageIDGTE(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGTE(FieldImportPackageID, v))
}

// ImportPackageIDLT applies the LT predicate on the "import_package_id" field.
func ImportPackageIDLT(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLT(FieldImportPackageID, v))
}

// ImportPackageIDLTE applies the LTE predicate on the "import_package_id" field.
func ImportPackageIDLTE(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLTE(FieldImportPackageID, v))
}

// OriginalEntityIDEQ applies the EQ predicate on the "original_entity_id" field.
func OriginalEntityIDEQ(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldOriginalEntityID, v))
}

// OriginalEntityIDNEQ applies the NEQ predicate on the "original_entity_id" field.
func OriginalEntityIDNEQ(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNEQ(FieldOriginalEntityID, v))
}

// OriginalEntityIDIn applies the In predicate on the "original_entity_id" field.
func OriginalEntityIDIn(vs ...uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldIn(FieldOriginalEntityID, vs...))
}

// OriginalEntityIDNotIn applies the NotIn predicate on the "original_entity_id" field.
func OriginalEntityIDNotIn(vs ...uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNotIn(FieldOriginalEntityID, vs...))
}

// OriginalEntityIDGT applies the GT predicate on the "original_entity_id" field.
func OriginalEntityIDGT(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGT(FieldOriginalEntityID, v))
}

// OriginalEntityIDGTE applies the GTE predicate on the "original_entity_id" field.
func OriginalEntityIDGTE(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGTE(FieldOriginalEntityID, v))
}

// OriginalEntityIDLT applies the LT predicate on the "original_entity_id" field.
func OriginalEntityIDLT(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLT(FieldOriginalEntityID, v))
}

// OriginalEntityIDLTE applies the LTE predicate on the "original_entity_id" field.
func OriginalEntityIDLTE(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLTE(FieldOriginalEntityID, v))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v ValidationStatus) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v ValidationStatus) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...ValidationStatus) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...ValidationStatus) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// DiagnosticsIsNil applies the IsNil predicate on the "diagnostics" field.
func DiagnosticsIsNil() predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldIsNull(FieldDiagnostics))
}

// DiagnosticsNotNil applies the NotNil predicate on the "diagnostics" field.
func DiagnosticsNotNil() predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNotNull(FieldDiagnostics))
}

// ApprovedForCommitEQ applies the EQ predicate on the "approved_for_commit" field.
func ApprovedForCommitEQ(v bool) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldApprovedForCommit, v))
}

// ApprovedForCommitNEQ applies the NEQ predicate on the "approved_for_commit" field.
func ApprovedForCommitNEQ(v bool) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNEQ(FieldApprovedForCommit, v))
}

// CommittedEntityIDEQ applies the EQ predicate on the "committed_entity_id" field.
func CommittedEntityIDEQ(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldCommittedEntityID, v))
}

// CommittedEntityIDNEQ applies the NEQ predicate on the "committed_entity_id" field.
func CommittedEntityIDNEQ(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNEQ(FieldCommittedEntityID, v))
}

// CommittedEntityIDIn applies the In predicate on the "committed_entity_id" field.
func CommittedEntityIDIn(vs ...uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldIn(FieldCommittedEntityID, vs...))
}

// CommittedEntityIDNotIn applies the NotIn predicate on the "committed_entity_id" field.
func CommittedEntityIDNotIn(vs ...uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNotIn(FieldCommittedEntityID, vs...))
}

// CommittedEntityIDGT applies the GT predicate on the "committed_entity_id" field.
func CommittedEntityIDGT(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGT(FieldCommittedEntityID, v))
}

// CommittedEntityIDGTE applies the GTE predicate on the "committed_entity_id" field.
func CommittedEntityIDGTE(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGTE(FieldCommittedEntityID, v))
}

// CommittedEntityIDLT applies the LT predicate on the "committed_entity_id" field.
func CommittedEntityIDLT(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLT(FieldCommittedEntityID, v))
}

// CommittedEntityIDLTE applies the LTE predicate on the "committed_entity_id" field.
func CommittedEntityIDLTE(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLTE(FieldCommittedEntityID, v))
}

// CommittedEntityIDIsNil applies the IsNil predicate on the "committed_entity_id" field.
func CommittedEntityIDIsNil() predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldIsNull(FieldCommittedEntityID))
}

// CommittedEntityIDNotNil applies the NotNil predicate on the "committed_entity_id" field.
func CommittedEntityIDNotNil() predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNotNull(FieldCommittedEntityID))
}

// OriginalBuildingIDEQ applies the EQ predicate on the "original_building_id" field.
func OriginalBuildingIDEQ(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldOriginalBuildingID, v))
}

// OriginalBuildingIDNEQ applies the NEQ predicate on the "original_building_id" field.
func OriginalBuildingIDNEQ(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNEQ(FieldOriginalBuildingID, v))
}

// OriginalBuildingIDIn applies the In predicate on the "original_building_id" field.
func OriginalBuildingIDIn(vs ...uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldIn(FieldOriginalBuildingID, vs...))
}

// OriginalBuildingIDNotIn applies the NotIn predicate on the "original_building_id" field.
func OriginalBuildingIDNotIn(vs ...uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNotIn(FieldOriginalBuildingID, vs...))
}

// OriginalBuildingIDGT applies the GT predicate on the "original_building_id" field.
func OriginalBuildingIDGT(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGT(FieldOriginalBuildingID, v))
}

// OriginalBuildingIDGTE applies the GTE predicate on the "original_building_id" field.
func OriginalBuildingIDGTE(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGTE(FieldOriginalBuildingID, v))
}

// OriginalBuildingIDLT applies the LT predicate on the "original_building_id" field.
func OriginalBuildingIDLT(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLT(FieldOriginalBuildingID, v))
}

// OriginalBuildingIDLTE applies the LTE predicate on the "original_building_id" field.
func OriginalBuildingIDLTE(v uuid.UUID) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLTE(FieldOriginalBuildingID, v))
}

// UnitIdentifierNormalizedEQ applies the EQ predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedEQ(v string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEQ(FieldUnitIdentifierNormalized, v))
}

// UnitIdentifierNormalizedNEQ applies the NEQ predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedNEQ(v string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNEQ(FieldUnitIdentifierNormalized, v))
}

// UnitIdentifierNormalizedIn applies the In predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedIn(vs ...string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldIn(FieldUnitIdentifierNormalized, vs...))
}

// UnitIdentifierNormalizedNotIn applies the NotIn predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedNotIn(vs ...string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNotIn(FieldUnitIdentifierNormalized, vs...))
}

// UnitIdentifierNormalizedGT applies the GT predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedGT(v string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGT(FieldUnitIdentifierNormalized, v))
}

// UnitIdentifierNormalizedGTE applies the GTE predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedGTE(v string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldGTE(FieldUnitIdentifierNormalized, v))
}

// UnitIdentifierNormalizedLT applies the LT predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedLT(v string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLT(FieldUnitIdentifierNormalized, v))
}

// UnitIdentifierNormalizedLTE applies the LTE predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedLTE(v string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldLTE(FieldUnitIdentifierNormalized, v))
}

// UnitIdentifierNormalizedContains applies the Contains predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedContains(v string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldContains(FieldUnitIdentifierNormalized, v))
}

// UnitIdentifierNormalizedHasPrefix applies the HasPrefix predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedHasPrefix(v string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldHasPrefix(FieldUnitIdentifierNormalized, v))
}

// UnitIdentifierNormalizedHasSuffix applies the HasSuffix predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedHasSuffix(v string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldHasSuffix(FieldUnitIdentifierNormalized, v))
}

// UnitIdentifierNormalizedIsNil applies the IsNil predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedIsNil() predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldIsNull(FieldUnitIdentifierNormalized))
}

// UnitIdentifierNormalizedNotNil applies the NotNil predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedNotNil() predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldNotNull(FieldUnitIdentifierNormalized))
}

// UnitIdentifierNormalizedEqualFold applies the EqualFold predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedEqualFold(v string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldEqualFold(FieldUnitIdentifierNormalized, v))
}

// UnitIdentifierNormalizedContainsFold applies the ContainsFold predicate on the "unit_identifier_normalized" field.
func UnitIdentifierNormalizedContainsFold(v string) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.FieldContainsFold(FieldUnitIdentifierNormalized, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StagingPropertyUnit) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StagingPropertyUnit) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StagingPropertyUnit) predicate.StagingPropertyUnit {
	return predicate.StagingPropertyUnit(sql.NotPredicates(p))
}
