// Code generated by ent, DO NOT EDIT.

package conflictresolution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldUpdatedAt, v))
}

// ImportPackageID applies equality check predicate on the "import_package_id" field. It's identical to ImportPackageIDEQ.
func ImportPackageID(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldImportPackageID, v))
}

// StagingEntityID applies equality check predicate on the "staging_entity_id" field. It's identical to StagingEntityIDEQ.
func StagingEntityID(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldStagingEntityID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldScore, v))
}

// SuggestedMasterID applies equality check predicate on the "suggested_master_id" field. It's identical to SuggestedMasterIDEQ.
func SuggestedMasterID(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldSuggestedMasterID, v))
}

// Justification applies equality check predicate on the "justification" field. It's identical to JustificationEQ.
func Justification(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldJustification, v))
}

// ChosenMasterID applies equality check predicate on the "chosen_master_id" field. It's identical to ChosenMasterIDEQ.
func ChosenMasterID(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldChosenMasterID, v))
}

// ResolvedBy applies equality check predicate on the "resolved_by" field. It's identical to ResolvedByEQ.
func ResolvedBy(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldResolvedBy, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldResolvedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLTE(FieldUpdatedAt, v))
}

// ImportPackageIDEQ applies the EQ predicate on the "import_package_id" field.
func ImportPackageIDEQ(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldImportPackageID, v))
}

// ImportPackageIDNEQ applies the NEQ predicate on the "import_package_id" field.
func ImportPackageIDNEQ(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldImportPackageID, v))
}

// ImportPackageIDIn applies the In predicate on the "import_package_id" field.
func ImportPackageIDIn(vs ...uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldImportPackageID, vs...))
}

// ImportPackageIDNotIn applies the NotIn predicate on the "import_package_id" field.
func ImportPackageIDNotIn(vs ...uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldImportPackageID, vs...))
}

// ImportPackageIDGT applies the GT predicate on the "import_package_id" field.
func ImportPackageIDGT(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGT(FieldImportPackageID, v))
}

// ImportPackageIDGTE applies the GTE predicate on the "import_package_id" field.
func ImportPackageIDGTE(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGTE(FieldImportPackageID, v))
}

// ImportPackageIDLT applies the LT predicate on the "import_package_id" field.
func ImportPackageIDLT(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLT(FieldImportPackageID, v))
}

// ImportPackageIDLTE applies the LTE predicate on the "import_package_id" field.
func ImportPackageIDLTE(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLTE(FieldImportPackageID, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v EntityType) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v EntityType) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...EntityType) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...EntityType) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldEntityType, vs...))
}

// StagingEntityIDEQ applies the EQ predicate on the "staging_entity_id" field.
func StagingEntityIDEQ(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldStagingEntityID, v))
}

// StagingEntityIDNEQ applies the NEQ predicate on the "staging_entity_id" field.
func StagingEntityIDNEQ(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldStagingEntityID, v))
}

// StagingEntityIDIn applies the In predicate on the "staging_entity_id" field.
func StagingEntityIDIn(vs ...uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldStagingEntityID, vs...))
}

// StagingEntityIDNotIn applies the NotIn predicate on the "staging_entity_id" field.
func StagingEntityIDNotIn(vs ...uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldStagingEntityID, vs...))
}

// StagingEntityIDGT applies the GT predicate on the "staging_entity_id" field.
func StagingEntityIDGT(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGT(FieldStagingEntityID, v))
}

// StagingEntityIDGTE applies the GTE predicate on the "staging_entity_id" field.
func StagingEntityIDGTE(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGTE(FieldStagingEntityID, v))
}

// StagingEntityIDLT applies the LT predicate on the "staging_entity_id" field.
func StagingEntityIDLT(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLT(FieldStagingEntityID, v))
}

// StagingEntityIDLTE applies the LTE predicate on the "staging_entity_id" field.
func StagingEntityIDLTE(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLTE(FieldStagingEntityID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLTE(FieldScore, v))
}

// SuggestedMasterIDEQ applies the EQ predicate on the "suggested_master_id" field.
func SuggestedMasterIDEQ(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldSuggestedMasterID, v))
}

// SuggestedMasterIDNEQ applies the NEQ predicate on the "suggested_master_id" field.
func SuggestedMasterIDNEQ(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldSuggestedMasterID, v))
}

// SuggestedMasterIDIn applies the In predicate on the "suggested_master_id" field.
func SuggestedMasterIDIn(vs ...uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldSuggestedMasterID, vs...))
}

// SuggestedMasterIDNotIn applies the NotIn predicate on the "suggested_master_id" field.
func SuggestedMasterIDNotIn(vs ...uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldSuggestedMasterID, vs...))
}

// SuggestedMasterIDGT applies the GT predicate on the "suggested_master_id" field.
func SuggestedMasterIDGT(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGT(FieldSuggestedMasterID, v))
}

// SuggestedMasterIDGTE applies the GTE predicate on the "suggested_master_id" field.
func SuggestedMasterIDGTE(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGTE(FieldSuggestedMasterID, v))
}

// SuggestedMasterIDLT applies the LT predicate on the "suggested_master_id" field.
func SuggestedMasterIDLT(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLT(FieldSuggestedMasterID, v))
}

// SuggestedMasterIDLTE applies the LTE predicate on the "suggested_master_id" field.
func SuggestedMasterIDLTE(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLTE(FieldSuggestedMasterID, v))
}

// SuggestedMasterIDIsNil applies the IsNil predicate on the "suggested_master_id" field.
func SuggestedMasterIDIsNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIsNull(FieldSuggestedMasterID))
}

// SuggestedMasterIDNotNil applies the NotNil predicate on the "suggested_master_id" field.
func SuggestedMasterIDNotNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotNull(FieldSuggestedMasterID))
}

// CandidatesIsNil applies the IsNil predicate on the "candidates" field.
func CandidatesIsNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIsNull(FieldCandidates))
}

// CandidatesNotNil applies the NotNil predicate on the "candidates" field.
func CandidatesNotNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotNull(FieldCandidates))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldStatus, vs...))
}

// ResolutionEQ applies the EQ predicate on the "resolution" field.
func ResolutionEQ(v Resolution) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldResolution, v))
}

// ResolutionNEQ applies the NEQ predicate on the "resolution" field.
func ResolutionNEQ(v Resolution) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldResolution, v))
}

// ResolutionIn applies the In predicate on the "resolution" field.
func ResolutionIn(vs ...Resolution) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldResolution, vs...))
}

// ResolutionNotIn applies the NotIn predicate on the "resolution" field.
func ResolutionNotIn(vs ...Resolution) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldResolution, vs...))
}

// ResolutionIsNil applies the IsNil predicate on the "resolution" field.
func ResolutionIsNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIsNull(FieldResolution))
}

// ResolutionNotNil applies the NotNil predicate on the "resolution" field.
func ResolutionNotNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotNull(FieldResolution))
}

// JustificationEQ applies the EQ predicate on the "justification" field.
func JustificationEQ(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldJustification, v))
}

// JustificationNEQ applies the NEQ predicate on the "justification" field.
func JustificationNEQ(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldJustification, v))
}

// JustificationIn applies the In predicate on the "justification" field.
func JustificationIn(vs ...string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldJustification, vs...))
}

// JustificationNotIn applies the NotIn predicate on the "justification" field.
func JustificationNotIn(vs ...string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldJustification, vs...))
}

// JustificationGT applies the GT predicate on the "justification" field.
func JustificationGT(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGT(FieldJustification, v))
}

// JustificationGTE applies the GTE predicate on the "justification" field.
func JustificationGTE(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGTE(FieldJustification, v))
}

// JustificationLT applies the LT predicate on the "justification" field.
func JustificationLT(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLT(FieldJustification, v))
}

// JustificationLTE applies the LTE predicate on the "justification" field.
func JustificationLTE(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLTE(FieldJustification, v))
}

// JustificationContains applies the Contains predicate on the "justification" field.
func JustificationContains(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldContains(FieldJustification, v))
}

// JustificationHasPrefix applies the HasPrefix predicate on the "justification" field.
func JustificationHasPrefix(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldHasPrefix(FieldJustification, v))
}

// JustificationHasSuffix applies the HasSuffix predicate on the "justification" field.
func JustificationHasSuffix(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldHasSuffix(FieldJustification, v))
}

// JustificationIsNil applies the IsNil predicate on the "justification" field.
func JustificationIsNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIsNull(FieldJustification))
}

// JustificationNotNil applies the NotNil predicate on the "justification" field.
func JustificationNotNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotNull(FieldJustification))
}

// JustificationEqualFold applies the EqualFold predicate on the "justification" field.
func JustificationEqualFold(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEqualFold(FieldJustification, v))
}

// JustificationContainsFold applies the ContainsFold predicate on the "justification" field.
func JustificationContainsFold(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldContainsFold(FieldJustification, v))
}

// ChosenMasterIDEQ applies the EQ predicate on the "chosen_master_id" field.
func ChosenMasterIDEQ(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldChosenMasterID, v))
}

// ChosenMasterIDNEQ applies the NEQ predicate on the "chosen_master_id" field.
func ChosenMasterIDNEQ(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldChosenMasterID, v))
}

// ChosenMasterIDIn applies the In predicate on the "chosen_master_id" field.
func ChosenMasterIDIn(vs ...uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldChosenMasterID, vs...))
}

// ChosenMasterIDNotIn applies the NotIn predicate on the "chosen_master_id" field.
func ChosenMasterIDNotIn(vs ...uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldChosenMasterID, vs...))
}

// ChosenMasterIDGT applies the GT predicate on the "chosen_master_id" field.
func ChosenMasterIDGT(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGT(FieldChosenMasterID, v))
}

// ChosenMasterIDGTE applies the GTE predicate on the "chosen_master_id" field.
func ChosenMasterIDGTE(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGTE(FieldChosenMasterID, v))
}

// ChosenMasterIDLT applies the LT predicate on the "chosen_master_id" field.
func ChosenMasterIDLT(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLT(FieldChosenMasterID, v))
}

// ChosenMasterIDLTE applies the LTE predicate on the "chosen_master_id" field.
func ChosenMasterIDLTE(v uuid.UUID) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLTE(FieldChosenMasterID, v))
}

// ChosenMasterIDIsNil applies the IsNil predicate on the "chosen_master_id" field.
func ChosenMasterIDIsNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIsNull(FieldChosenMasterID))
}

// ChosenMasterIDNotNil applies the NotNil predicate on the "chosen_master_id" field.
func ChosenMasterIDNotNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotNull(FieldChosenMasterID))
}

// MergeMappingIsNil applies the IsNil predicate on the "merge_mapping" field.
func MergeMappingIsNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIsNull(FieldMergeMapping))
}

// MergeMappingNotNil applies the NotNil predicate on the "merge_mapping" field.
func MergeMappingNotNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotNull(FieldMergeMapping))
}

// ResolvedByEQ applies the EQ predicate on the "resolved_by" field.
func ResolvedByEQ(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldResolvedBy, v))
}

// ResolvedByNEQ applies the NEQ predicate on the "resolved_by" field.
func ResolvedByNEQ(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldResolvedBy, v))
}

// ResolvedByIn applies the In predicate on the "resolved_by" field.
func ResolvedByIn(vs ...string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldResolvedBy, vs...))
}

// ResolvedByNotIn applies the NotIn predicate on the "resolved_by" field.
func ResolvedByNotIn(vs ...string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldResolvedBy, vs...))
}

// ResolvedByGT applies the GT predicate on the "resolved_by" field.
func ResolvedByGT(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGT(FieldResolvedBy, v))
}

// ResolvedByGTE applies the GTE predicate on the "resolved_by" field.
func ResolvedByGTE(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGTE(FieldResolvedBy, v))
}

// ResolvedByLT applies the LT predicate on the "resolved_by" field.
func ResolvedByLT(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLT(FieldResolvedBy, v))
}

// ResolvedByLTE applies the LTE predicate on the "resolved_by" field.
func ResolvedByLTE(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLTE(FieldResolvedBy, v))
}

// ResolvedByContains applies the Contains predicate on the "resolved_by" field.
func ResolvedByContains(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldContains(FieldResolvedBy, v))
}

// ResolvedByHasPrefix applies the HasPrefix predicate on the "resolved_by" field.
func ResolvedByHasPrefix(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldHasPrefix(FieldResolvedBy, v))
}

// ResolvedByHasSuffix applies the HasSuffix predicate on the "resolved_by" field.
func ResolvedByHasSuffix(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldHasSuffix(FieldResolvedBy, v))
}

// ResolvedByIsNil applies the IsNil predicate on the "resolved_by" field.
func ResolvedByIsNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIsNull(FieldResolvedBy))
}

// ResolvedByNotNil applies the NotNil predicate on the "resolved_by" field.
func ResolvedByNotNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotNull(FieldResolvedBy))
}

// ResolvedByEqualFold applies the EqualFold predicate on the "resolved_by" field.
func ResolvedByEqualFold(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEqualFold(FieldResolvedBy, v))
}

// ResolvedByContainsFold applies the ContainsFold predicate on the "resolved_by" field.
func ResolvedByContainsFold(v string) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldContainsFold(FieldResolvedBy, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConflictResolution) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConflictResolution) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConflictResolution) predicate.ConflictResolution {
	return predicate.ConflictResolution(sql.NotPredicates(p))
}
