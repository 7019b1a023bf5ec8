// Code generated by ent, DO NOT EDIT.

package stagingperson

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldUpdatedAt, v))
}

// ImportPackageID applies equality check predicate on the "import_package_id" field. It's identical to ImportPackageIDEQ.
func ImportPackageID(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldImportPackageID, v))
}

// OriginalEntityID applies equality check predicate on the "original_entity_id" field. It's identical to OriginalEntityIDEQ.
func OriginalEntityID(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldOriginalEntityID, v))
}

// ApprovedForCommit applies equality check predicate on the "approved_for_commit" field. It's identical to ApprovedForCommitEQ.
func ApprovedForCommit(v bool) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldApprovedForCommit, v))
}

// CommittedEntityID applies equality check predicate on the "committed_entity_id" field. It's identical to CommittedEntityIDEQ.
func CommittedEntityID(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldCommittedEntityID, v))
}

// FirstNameNormalized applies equality check predicate on the "first_name_normalized" field. It's identical to FirstNameNormalizedEQ.
func FirstNameNormalized(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldFirstNameNormalized, v))
}

// FatherNameNormalized applies equality check predicate on the "father_name_normalized" field. It's identical to FatherNameNormalizedEQ.
func FatherNameNormalized(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldFatherNameNormalized, v))
}

// FamilyNameNormalized applies equality check predicate on the "family_name_normalized" field. It's identical to FamilyNameNormalizedEQ.
func FamilyNameNormalized(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldFamilyNameNormalized, v))
}

// NationalID applies equality check predicate on the "national_id" field. It's identical to NationalIDEQ.
func NationalID(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldNationalID, v))
}

// YearOfBirth applies equality check predicate on the "year_of_birth" field. It's identical to YearOfBirthEQ.
func YearOfBirth(v int) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldYearOfBirth, v))
}

// GenderCode applies equality check predicate on the "gender_code" field. It's identical to GenderCodeEQ.
func GenderCode(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldGenderCode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLTE(FieldUpdatedAt, v))
}

// ImportPackageIDEQ applies the EQ predicate on the "import_package_id" field.
func ImportPackageIDEQ(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldImportPackageID, v))
}

// ImportPackageIDNEQ applies the NEQ predicate on the "import_package_id" field.
func ImportPackageIDNEQ(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldImportPackageID, v))
}

// ImportPackageIDIn applies the In predicate on the "import_package_id" field.
func ImportPackageIDIn(vs ...uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldImportPackageID, vs...))
}

// ImportPackageIDNotIn applies the NotIn predicate on the "import_package_id" field.
func ImportPackageIDNotIn(vs ...uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldImportPackageID, vs...))
}

// ImportPackageIDGT applies the GT predicate on the "import_package_id" field.
func ImportPackageIDGT(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGT(FieldImportPackageID, v))
}

// ImportPackageIDGTE applies the GTE predicate on the "import_package_id" field.
func ImportPackageIDGTE(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGTE(FieldImportPackageID, v))
}

// ImportPackageIDLT applies the LT predicate on the "import_package_id" field.
func ImportPackageIDLT(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLT(FieldImportPackageID, v))
}

// ImportPackageIDLTE applies the LTE predicate on the "import_package_id" field.
func ImportPackageIDLTE(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLTE(FieldImportPackageID, v))
}

// OriginalEntityIDEQ applies the EQ predicate on the "original_entity_id" field.
func OriginalEntityIDEQ(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldOriginalEntityID, v))
}

// OriginalEntityIDNEQ applies the NEQ predicate on the "original_entity_id" field.
func OriginalEntityIDNEQ(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldOriginalEntityID, v))
}

// OriginalEntityIDIn applies the In predicate on the "original_entity_id" field.
func OriginalEntityIDIn(vs ...uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldOriginalEntityID, vs...))
}

// OriginalEntityIDNotIn applies the NotIn predicate on the "original_entity_id" field.
func OriginalEntityIDNotIn(vs ...uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldOriginalEntityID, vs...))
}

// OriginalEntityIDGT applies the GT predicate on the "original_entity_id" field.
func OriginalEntityIDGT(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGT(FieldOriginalEntityID, v))
}

// OriginalEntityIDGTE applies the GTE predicate on the "original_entity_id" field.
func OriginalEntityIDGTE(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGTE(FieldOriginalEntityID, v))
}

// OriginalEntityIDLT applies the LT predicate on the "original_entity_id" field.
func OriginalEntityIDLT(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLT(FieldOriginalEntityID, v))
}

// OriginalEntityIDLTE applies the LTE predicate on the "original_entity_id" field.
func OriginalEntityIDLTE(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLTE(FieldOriginalEntityID, v))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v ValidationStatus) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v ValidationStatus) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...ValidationStatus) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...ValidationStatus) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// DiagnosticsIsNil applies the IsNil predicate on the "diagnostics" field.
func DiagnosticsIsNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIsNull(FieldDiagnostics))
}

// DiagnosticsNotNil applies the NotNil predicate on the "diagnostics" field.
func DiagnosticsNotNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotNull(FieldDiagnostics))
}

// ApprovedForCommitEQ applies the EQ predicate on the "approved_for_commit" field.
func ApprovedForCommitEQ(v bool) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldApprovedForCommit, v))
}

// ApprovedForCommitNEQ applies the NEQ predicate on the "approved_for_commit" field.
func ApprovedForCommitNEQ(v bool) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldApprovedForCommit, v))
}

// CommittedEntityIDEQ applies the EQ predicate on the "committed_entity_id" field.
func CommittedEntityIDEQ(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldCommittedEntityID, v))
}

// CommittedEntityIDNEQ applies the NEQ predicate on the "committed_entity_id" field.
func CommittedEntityIDNEQ(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldCommittedEntityID, v))
}

// CommittedEntityIDIn applies the In predicate on the "committed_entity_id" field.
func CommittedEntityIDIn(vs ...uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldCommittedEntityID, vs...))
}

// CommittedEntityIDNotIn applies the NotIn predicate on the "committed_entity_id" field.
func CommittedEntityIDNotIn(vs ...uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldCommittedEntityID, vs...))
}

// CommittedEntityIDGT applies the GT predicate on the "committed_entity_id" field.
func CommittedEntityIDGT(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGT(FieldCommittedEntityID, v))
}

// CommittedEntityIDGTE applies the GTE predicate on the "committed_entity_id" field.
func CommittedEntityIDGTE(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGTE(FieldCommittedEntityID, v))
}

// CommittedEntityIDLT applies the LT predicate on the "committed_entity_id" field.
func CommittedEntityIDLT(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLT(FieldCommittedEntityID, v))
}

// CommittedEntityIDLTE applies the LTE predicate on the "committed_entity_id" field.
func CommittedEntityIDLTE(v uuid.UUID) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLTE(FieldCommittedEntityID, v))
}

// CommittedEntityIDIsNil applies the IsNil predicate on the "committed_entity_id" field.
func CommittedEntityIDIsNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIsNull(FieldCommittedEntityID))
}

// CommittedEntityIDNotNil applies the NotNil predicate on the "committed_entity_id" field.
func CommittedEntityIDNotNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotNull(FieldCommittedEntityID))
}

// FirstNameNormalizedEQ applies the EQ predicate on the "first_name_normalized" field.
func FirstNameNormalizedEQ(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedNEQ applies the NEQ predicate on the "first_name_normalized" field.
func FirstNameNormalizedNEQ(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedIn applies the In predicate on the "first_name_normalized" field.
func FirstNameNormalizedIn(vs ...string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldFirstNameNormalized, vs...))
}

// FirstNameNormalizedNotIn applies the NotIn predicate on the "first_name_normalized" field.
func FirstNameNormalizedNotIn(vs ...string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldFirstNameNormalized, vs...))
}

// FirstNameNormalizedGT applies the GT predicate on the "first_name_normalized" field.
func FirstNameNormalizedGT(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGT(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedGTE applies the GTE predicate on the "first_name_normalized" field.
func FirstNameNormalizedGTE(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGTE(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedLT applies the LT predicate on the "first_name_normalized" field.
func FirstNameNormalizedLT(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLT(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedLTE applies the LTE predicate on the "first_name_normalized" field.
func FirstNameNormalizedLTE(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLTE(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedContains applies the Contains predicate on the "first_name_normalized" field.
func FirstNameNormalizedContains(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldContains(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedHasPrefix applies the HasPrefix predicate on the "first_name_normalized" field.
func FirstNameNormalizedHasPrefix(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldHasPrefix(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedHasSuffix applies the HasSuffix predicate on the "first_name_normalized" field.
func FirstNameNormalizedHasSuffix(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldHasSuffix(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedIsNil applies the IsNil predicate on the "first_name_normalized" field.
func FirstNameNormalizedIsNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIsNull(FieldFirstNameNormalized))
}

// FirstNameNormalizedNotNil applies the NotNil predicate on the "first_name_normalized" field.
func FirstNameNormalizedNotNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotNull(FieldFirstNameNormalized))
}

// FirstNameNormalizedEqualFold applies the EqualFold predicate on the "first_name_normalized" field.
func FirstNameNormalizedEqualFold(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEqualFold(FieldFirstNameNormalized, v))
}

// FirstNameNormalizedContainsFold applies the ContainsFold predicate on the "first_name_normalized" field.
func FirstNameNormalizedContainsFold(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldContainsFold(FieldFirstNameNormalized, v))
}

// FatherNameNormalizedEQ applies the EQ predicate on the "father_name_normalized" field.
func FatherNameNormalizedEQ(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedNEQ applies the NEQ predicate on the "father_name_normalized" field.
func FatherNameNormalizedNEQ(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedIn applies the In predicate on the "father_name_normalized" field.
func FatherNameNormalizedIn(vs ...string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldFatherNameNormalized, vs...))
}

// FatherNameNormalizedNotIn applies the NotIn predicate on the "father_name_normalized" field.
func FatherNameNormalizedNotIn(vs ...string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldFatherNameNormalized, vs...))
}

// FatherNameNormalizedGT applies the GT predicate on the "father_name_normalized" field.
func FatherNameNormalizedGT(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGT(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedGTE applies the GTE predicate on the "father_name_normalized" field.
func FatherNameNormalizedGTE(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGTE(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedLT applies the LT predicate on the "father_name_normalized" field.
func FatherNameNormalizedLT(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLT(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedLTE applies the LTE predicate on the "father_name_normalized" field.
func FatherNameNormalizedLTE(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLTE(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedContains applies the Contains predicate on the "father_name_normalized" field.
func FatherNameNormalizedContains(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldContains(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedHasPrefix applies the HasPrefix predicate on the "father_name_normalized" field.
func FatherNameNormalizedHasPrefix(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldHasPrefix(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedHasSuffix applies the HasSuffix predicate on the "father_name_normalized" field.
func FatherNameNormalizedHasSuffix(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldHasSuffix(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedIsNil applies the IsNil predicate on the "father_name_normalized" field.
func FatherNameNormalizedIsNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIsNull(FieldFatherNameNormalized))
}

// FatherNameNormalizedNotNil applies the NotNil predicate on the "father_name_normalized" field.
func FatherNameNormalizedNotNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotNull(FieldFatherNameNormalized))
}

// FatherNameNormalizedEqualFold applies the EqualFold predicate on the "father_name_normalized" field.
func FatherNameNormalizedEqualFold(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEqualFold(FieldFatherNameNormalized, v))
}

// FatherNameNormalizedContainsFold applies the ContainsFold predicate on the "father_name_normalized" field.
func FatherNameNormalizedContainsFold(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldContainsFold(FieldFatherNameNormalized, v))
}

// FamilyNameNormalizedEQ applies the EQ predicate on the "family_name_normalized" field.
func FamilyNameNormalizedEQ(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedNEQ applies the NEQ predicate on the "family_name_normalized" field.
func FamilyNameNormalizedNEQ(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedIn applies the In predicate on the "family_name_normalized" field.
func FamilyNameNormalizedIn(vs ...string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldFamilyNameNormalized, vs...))
}

// FamilyNameNormalizedNotIn applies the NotIn predicate on the "family_name_normalized" field.
func FamilyNameNormalizedNotIn(vs ...string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldFamilyNameNormalized, vs...))
}

// FamilyNameNormalizedGT applies the GT predicate on the "family_name_normalized" field.
func FamilyNameNormalizedGT(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGT(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedGTE applies the GTE predicate on the "family_name_normalized" field.
func FamilyNameNormalizedGTE(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGTE(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedLT applies the LT predicate on the "family_name_normalized" field.
func FamilyNameNormalizedLT(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLT(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedLTE applies the LTE predicate on the "family_name_normalized" field.
func FamilyNameNormalizedLTE(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLTE(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedContains applies the Contains predicate on the "family_name_normalized" field.
func FamilyNameNormalizedContains(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldContains(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedHasPrefix applies the HasPrefix predicate on the "family_name_normalized" field.
func FamilyNameNormalizedHasPrefix(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldHasPrefix(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedHasSuffix applies the HasSuffix predicate on the "family_name_normalized" field.
func FamilyNameNormalizedHasSuffix(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldHasSuffix(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedIsNil applies the IsNil predicate on the "family_name_normalized" field.
func FamilyNameNormalizedIsNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIsNull(FieldFamilyNameNormalized))
}

// FamilyNameNormalizedNotNil applies the NotNil predicate on the "family_name_normalized" field.
func FamilyNameNormalizedNotNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotNull(FieldFamilyNameNormalized))
}

// FamilyNameNormalizedEqualFold applies the EqualFold predicate on the "family_name_normalized" field.
func FamilyNameNormalizedEqualFold(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEqualFold(FieldFamilyNameNormalized, v))
}

// FamilyNameNormalizedContainsFold applies the ContainsFold predicate on the "family_name_normalized" field.
func FamilyNameNormalizedContainsFold(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldContainsFold(FieldFamilyNameNormalized, v))
}

// NationalIDEQ applies the EQ predicate on the "national_id" field.
func NationalIDEQ(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldNationalID, v))
}

// NationalIDNEQ applies the NEQ predicate on the "national_id" field.
func NationalIDNEQ(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldNationalID, v))
}

// NationalIDIn applies the In predicate on the "national_id" field.
func NationalIDIn(vs ...string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldNationalID, vs...))
}

// NationalIDNotIn applies the NotIn predicate on the "national_id" field.
func NationalIDNotIn(vs ...string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldNationalID, vs...))
}

// NationalIDGT applies the GT predicate on the "national_id" field.
func NationalIDGT(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGT(FieldNationalID, v))
}

// NationalIDGTE applies the GTE predicate on the "national_id" field.
func NationalIDGTE(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGTE(FieldNationalID, v))
}

// NationalIDLT applies the LT predicate on the "national_id" field.
func NationalIDLT(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLT(FieldNationalID, v))
}

// NationalIDLTE applies the LTE predicate on the "national_id" field.
func NationalIDLTE(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLTE(FieldNationalID, v))
}

// NationalIDContains applies the Contains predicate on the "national_id" field.
func NationalIDContains(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldContains(FieldNationalID, v))
}

// NationalIDHasPrefix applies the HasPrefix predicate on the "national_id" field.
func NationalIDHasPrefix(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldHasPrefix(FieldNationalID, v))
}

// NationalIDHasSuffix applies the HasSuffix predicate on the "national_id" field.
func NationalIDHasSuffix(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldHasSuffix(FieldNationalID, v))
}

// NationalIDIsNil applies the IsNil predicate on the "national_id" field.
func NationalIDIsNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIsNull(FieldNationalID))
}

// NationalIDNotNil applies the NotNil predicate on the "national_id" field.
func NationalIDNotNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotNull(FieldNationalID))
}

// NationalIDEqualFold applies the EqualFold predicate on the "national_id" field.
func NationalIDEqualFold(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEqualFold(FieldNationalID, v))
}

// NationalIDContainsFold applies the ContainsFold predicate on the "national_id" field.
func NationalIDContainsFold(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldContainsFold(FieldNationalID, v))
}

// YearOfBirthEQ applies the EQ predicate on the "year_of_birth" field.
func YearOfBirthEQ(v int) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldYearOfBirth, v))
}

// YearOfBirthNEQ applies the NEQ predicate on the "year_of_birth" field.
func YearOfBirthNEQ(v int) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldYearOfBirth, v))
}

// YearOfBirthIn applies the In predicate on the "year_of_birth" field.
func YearOfBirthIn(vs ...int) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldYearOfBirth, vs...))
}

// YearOfBirthNotIn applies the NotIn predicate on the "year_of_birth" field.
func YearOfBirthNotIn(vs ...int) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldYearOfBirth, vs...))
}

// YearOfBirthGT applies the GT predicate on the "year_of_birth" field.
func YearOfBirthGT(v int) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGT(FieldYearOfBirth, v))
}

// YearOfBirthGTE applies the GTE predicate on the "year_of_birth" field.
func YearOfBirthGTE(v int) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGTE(FieldYearOfBirth, v))
}

// YearOfBirthLT applies the LT predicate on the "year_of_birth" field.
func YearOfBirthLT(v int) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLT(FieldYearOfBirth, v))
}

// YearOfBirthLTE applies the LTE predicate on the "year_of_birth" field.
func YearOfBirthLTE(v int) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLTE(FieldYearOfBirth, v))
}

// YearOfBirthIsNil applies the IsNil predicate on the "year_of_birth" field.
func YearOfBirthIsNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIsNull(FieldYearOfBirth))
}

// YearOfBirthNotNil applies the NotNil predicate on the "year_of_birth" field.
func YearOfBirthNotNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotNull(FieldYearOfBirth))
}

// GenderCodeEQ applies the EQ predicate on the "gender_code" field.
func GenderCodeEQ(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEQ(FieldGenderCode, v))
}

// GenderCodeNEQ applies the NEQ predicate on the "gender_code" field.
func GenderCodeNEQ(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNEQ(FieldGenderCode, v))
}

// GenderCodeIn applies the In predicate on the "gender_code" field.
func GenderCodeIn(vs ...string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIn(FieldGenderCode, vs...))
}

// GenderCodeNotIn applies the NotIn predicate on the "gender_code" field.
func GenderCodeNotIn(vs ...string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotIn(FieldGenderCode, vs...))
}

// GenderCodeGT applies the GT predicate on the "gender_code" field.
func GenderCodeGT(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGT(FieldGenderCode, v))
}

// GenderCodeGTE applies the GTE predicate on the "gender_code" field.
func GenderCodeGTE(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldGTE(FieldGenderCode, v))
}

// GenderCodeLT applies the LT predicate on the "gender_code" field.
func GenderCodeLT(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLT(FieldGenderCode, v))
}

// GenderCodeLTE applies the LTE predicate on the "gender_code" field.
func GenderCodeLTE(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldLTE(FieldGenderCode, v))
}

// GenderCodeContains applies the Contains predicate on the "gender_code" field.
func GenderCodeContains(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldContains(FieldGenderCode, v))
}

// GenderCodeHasPrefix applies the HasPrefix predicate on the "gender_code" field.
func GenderCodeHasPrefix(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldHasPrefix(FieldGenderCode, v))
}

// GenderCodeHasSuffix applies the HasSuffix predicate on the "gender_code" field.
func GenderCodeHasSuffix(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldHasSuffix(FieldGenderCode, v))
}

// GenderCodeIsNil applies the IsNil predicate on the "gender_code" field.
func GenderCodeIsNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldIsNull(FieldGenderCode))
}

// GenderCodeNotNil applies the NotNil predicate on the "gender_code" field.
func GenderCodeNotNil() predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldNotNull(FieldGenderCode))
}

// GenderCodeEqualFold applies the EqualFold predicate on the "gender_code" field.
func GenderCodeEqualFold(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldEqualFold(FieldGenderCode, v))
}

// GenderCodeContainsFold applies the ContainsFold predicate on the "gender_code" field.
func GenderCodeContainsFold(v string) predicate.StagingPerson {
	return predicate.StagingPerson(sql.FieldContainsFold(FieldGenderCode, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StagingPerson) predicate.StagingPerson {
	return predicate.StagingPerson(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StagingPerson) predicate.StagingPerson {
	return predicate.StagingPerson(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StagingPerson) predicate.StagingPerson {
	return predicate.StagingPerson(sql.NotPredicates(p))
}
