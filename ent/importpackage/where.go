// Code generated by ent, DO NOT EDIT.

package importpackage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldUpdatedAt, v))
}

// PackageNumber applies equality check predicate on the "package_number" field. It's identical to PackageNumberEQ.
func PackageNumber(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldPackageNumber, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldFileName, v))
}

// FileSizeBytes applies equality check predicate on the "file_size_bytes" field. It's identical to FileSizeBytesEQ.
func FileSizeBytes(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldFileSizeBytes, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldSchemaVersion, v))
}

// ManifestCreatedUtc applies equality check predicate on the "manifest_created_utc" field. It's identical to ManifestCreatedUtcEQ.
func ManifestCreatedUtc(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldManifestCreatedUtc, v))
}

// ExportedDateUtc applies equality check predicate on the "exported_date_utc" field. It's identical to ExportedDateUtcEQ.
func ExportedDateUtc(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldExportedDateUtc, v))
}

// ExportedByUserID applies equality check predicate on the "exported_by_user_id" field. It's identical to ExportedByUserIDEQ.
func ExportedByUserID(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldExportedByUserID, v))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldDeviceID, v))
}

// TotalRecordCount applies equality check predicate on the "total_record_count" field. It's identical to TotalRecordCountEQ.
func TotalRecordCount(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldTotalRecordCount, v))
}

// TotalAttachmentSizeBytes applies equality check predicate on the "total_attachment_size_bytes" field. It's identical to TotalAttachmentSizeBytesEQ.
func TotalAttachmentSizeBytes(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldTotalAttachmentSizeBytes, v))
}

// ExpectedChecksum applies equality check predicate on the "expected_checksum" field. It's identical to ExpectedChecksumEQ.
func ExpectedChecksum(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldExpectedChecksum, v))
}

// ComputedChecksum applies equality check predicate on the "computed_checksum" field. It's identical to ComputedChecksumEQ.
func ComputedChecksum(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldComputedChecksum, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldStoragePath, v))
}

// IsArchived applies equality check predicate on the "is_archived" field. It's identical to IsArchivedEQ.
func IsArchived(v bool) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldIsArchived, v))
}

// ArchivePath applies equality check predicate on the "archive_path" field. It's identical to ArchivePathEQ.
func ArchivePath(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldArchivePath, v))
}

// ArchivedDate applies equality check predicate on the "archived_date" field. It's identical to ArchivedDateEQ.
func ArchivedDate(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldArchivedDate, v))
}

// ConflictCount applies equality check predicate on the "conflict_count" field. It's identical to ConflictCountEQ.
func ConflictCount(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldConflictCount, v))
}

// UnresolvedConflictCount applies equality check predicate on the "unresolved_conflict_count" field. It's identical to UnresolvedConflictCountEQ.
func UnresolvedConflictCount(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldUnresolvedConflictCount, v))
}

// CommittedDate applies equality check predicate on the "committed_date" field. It's identical to CommittedDateEQ.
func CommittedDate(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldCommittedDate, v))
}

// QuarantinedReason applies equality check predicate on the "quarantined_reason" field. It's identical to QuarantinedReasonEQ.
func QuarantinedReason(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldQuarantinedReason, v))
}

// CancelledReason applies equality check predicate on the "cancelled_reason" field. It's identical to CancelledReasonEQ.
func CancelledReason(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldCancelledReason, v))
}

// CancelledBy applies equality check predicate on the "cancelled_by" field. It's identical to CancelledByEQ.
func CancelledBy(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldCancelledBy, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldCancelledAt, v))
}

// ReceivedBy applies equality check predicate on the "received_by" field. It's identical to ReceivedByEQ.
func ReceivedBy(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldReceivedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldUpdatedAt, v))
}

// PackageNumberEQ applies the EQ predicate on the "package_number" field.
func PackageNumberEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldPackageNumber, v))
}

// PackageNumberNEQ applies the NEQ predicate on the "package_number" field.
func PackageNumberNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldPackageNumber, v))
}

// PackageNumberIn applies the In predicate on the "package_number" field.
func PackageNumberIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldPackageNumber, vs...))
}

// PackageNumberNotIn applies the NotIn predicate on the "package_number" field.
func PackageNumberNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldPackageNumber, vs...))
}

// PackageNumberGT applies the GT predicate on the "package_number" field.
func PackageNumberGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldPackageNumber, v))
}

// PackageNumberGTE applies the GTE predicate on the "package_number" field.
func PackageNumberGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldPackageNumber, v))
}

// PackageNumberLT applies the LT predicate on the "package_number" field.
func PackageNumberLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldPackageNumber, v))
}

// PackageNumberLTE applies the LTE predicate on the "package_number" field.
func PackageNumberLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldPackageNumber, v))
}

// PackageNumberContains applies the Contains predicate on the "package_number" field.
func PackageNumberContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldPackageNumber, v))
}

// PackageNumberHasPrefix applies the HasPrefix predicate on the "package_number" field.
func PackageNumberHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldPackageNumber, v))
}

// PackageNumberHasSuffix applies the HasSuffix predicate on the "package_number" field.
func PackageNumberHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldPackageNumber, v))
}

// PackageNumberEqualFold applies the EqualFold predicate on the "package_number" field.
func PackageNumberEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldPackageNumber, v))
}

// PackageNumberContainsFold applies the ContainsFold predicate on the "package_number" field.
func PackageNumberContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldPackageNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldStatus, vs...))
}

// ImportMethodEQ applies the EQ predicate on the "import_method" field.
func ImportMethodEQ(v ImportMethod) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldImportMethod, v))
}

// ImportMethodNEQ applies the NEQ predicate on the "import_method" field.
func ImportMethodNEQ(v ImportMethod) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldImportMethod, v))
}

// ImportMethodIn applies the In predicate on the "import_method" field.
func ImportMethodIn(vs ...ImportMethod) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldImportMethod, vs...))
}

// ImportMethodNotIn applies the NotIn predicate on the "import_method" field.
func ImportMethodNotIn(vs ...ImportMethod) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldImportMethod, vs...))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldFileName, v))
}

// FileSizeBytesEQ applies the EQ predicate on the "file_size_bytes" field.
func FileSizeBytesEQ(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesNEQ applies the NEQ predicate on the "file_size_bytes" field.
func FileSizeBytesNEQ(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesIn applies the In predicate on the "file_size_bytes" field.
func FileSizeBytesIn(vs ...int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesNotIn applies the NotIn predicate on the "file_size_bytes" field.
func FileSizeBytesNotIn(vs ...int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesGT applies the GT predicate on the "file_size_bytes" field.
func FileSizeBytesGT(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldFileSizeBytes, v))
}

// FileSizeBytesGTE applies the GTE predicate on the "file_size_bytes" field.
func FileSizeBytesGTE(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldFileSizeBytes, v))
}

// FileSizeBytesLT applies the LT predicate on the "file_size_bytes" field.
func FileSizeBytesLT(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldFileSizeBytes, v))
}

// FileSizeBytesLTE applies the LTE predicate on the "file_size_bytes" field.
func FileSizeBytesLTE(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldFileSizeBytes, v))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldSchemaVersion, v))
}

// SchemaVersionContains applies the Contains predicate on the "schema_version" field.
func SchemaVersionContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldSchemaVersion, v))
}

// SchemaVersionHasPrefix applies the HasPrefix predicate on the "schema_version" field.
func SchemaVersionHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldSchemaVersion, v))
}

// SchemaVersionHasSuffix applies the HasSuffix predicate on the "schema_version" field.
func SchemaVersionHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldSchemaVersion, v))
}

// SchemaVersionEqualFold applies the EqualFold predicate on the "schema_version" field.
func SchemaVersionEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldSchemaVersion, v))
}

// SchemaVersionContainsFold applies the ContainsFold predicate on the "schema_version" field.
func SchemaVersionContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldSchemaVersion, v))
}

// ManifestCreatedUtcEQ applies the EQ predicate on the "manifest_created_utc" field.
func ManifestCreatedUtcEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldManifestCreatedUtc, v))
}

// ManifestCreatedUtcNEQ applies the NEQ predicate on the "manifest_created_utc" field.
func ManifestCreatedUtcNEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldManifestCreatedUtc, v))
}

// ManifestCreatedUtcIn applies the In predicate on the "manifest_created_utc" field.
func ManifestCreatedUtcIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldManifestCreatedUtc, vs...))
}

// ManifestCreatedUtcNotIn applies the NotIn predicate on the "manifest_created_utc" field.
func ManifestCreatedUtcNotIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldManifestCreatedUtc, vs...))
}

// ManifestCreatedUtcGT applies the GT predicate on the "manifest_created_utc" field.
func ManifestCreatedUtcGT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldManifestCreatedUtc, v))
}

// ManifestCreatedUtcGTE applies the GTE predicate on the "manifest_created_utc" field.
func ManifestCreatedUtcGTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldManifestCreatedUtc, v))
}

// ManifestCreatedUtcLT applies the LT predicate on the "manifest_created_utc" field.
func ManifestCreatedUtcLT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldManifestCreatedUtc, v))
}

// ManifestCreatedUtcLTE applies the LTE predicate on the "manifest_created_utc" field.
func ManifestCreatedUtcLTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldManifestCreatedUtc, v))
}

// ExportedDateUtcEQ applies the EQ predicate on the "exported_date_utc" field.
func ExportedDateUtcEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldExportedDateUtc, v))
}

// ExportedDateUtcNEQ applies the NEQ predicate on the "exported_date_utc" field.
func ExportedDateUtcNEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldExportedDateUtc, v))
}

// ExportedDateUtcIn applies the In predicate on the "exported_date_utc" field.
func ExportedDateUtcIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldExportedDateUtc, vs...))
}

// ExportedDateUtcNotIn applies the NotIn predicate on the "exported_date_utc" field.
func ExportedDateUtcNotIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldExportedDateUtc, vs...))
}

// ExportedDateUtcGT applies the GT predicate on the "exported_date_utc" field.
func ExportedDateUtcGT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldExportedDateUtc, v))
}

// ExportedDateUtcGTE applies the GTE predicate on the "exported_date_utc" field.
func ExportedDateUtcGTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldExportedDateUtc, v))
}

// ExportedDateUtcLT applies the LT predicate on the "exported_date_utc" field.
func ExportedDateUtcLT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldExportedDateUtc, v))
}

// ExportedDateUtcLTE applies the LTE predicate on the "exported_date_utc" field.
func ExportedDateUtcLTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldExportedDateUtc, v))
}

// ExportedByUserIDEQ applies the EQ predicate on the "exported_by_user_id" field.
func ExportedByUserIDEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldExportedByUserID, v))
}

// ExportedByUserIDNEQ applies the NEQ predicate on the "exported_by_user_id" field.
func ExportedByUserIDNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldExportedByUserID, v))
}

// ExportedByUserIDIn applies the In predicate on the "exported_by_user_id" field.
func ExportedByUserIDIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldExportedByUserID, vs...))
}

// ExportedByUserIDNotIn applies the NotIn predicate on the "exported_by_user_id" field.
func ExportedByUserIDNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldExportedByUserID, vs...))
}

// ExportedByUserIDGT applies the GT predicate on the "exported_by_user_id" field.
func ExportedByUserIDGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldExportedByUserID, v))
}

// ExportedByUserIDGTE applies the GTE predicate on the "exported_by_user_id" field.
func ExportedByUserIDGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldExportedByUserID, v))
}

// ExportedByUserIDLT applies the LT predicate on the "exported_by_user_id" field.
func ExportedByUserIDLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldExportedByUserID, v))
}

// ExportedByUserIDLTE applies the LTE predicate on the "exported_by_user_id" field.
func ExportedByUserIDLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldExportedByUserID, v))
}

// ExportedByUserIDContains applies the Contains predicate on the "exported_by_user_id" field.
func ExportedByUserIDContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldExportedByUserID, v))
}

// ExportedByUserIDHasPrefix applies the HasPrefix predicate on the "exported_by_user_id" field.
func ExportedByUserIDHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldExportedByUserID, v))
}

// ExportedByUserIDHasSuffix applies the HasSuffix predicate on the "exported_by_user_id" field.
func ExportedByUserIDHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldExportedByUserID, v))
}

// ExportedByUserIDIsNil applies the IsNil predicate on the "exported_by_user_id" field.
func ExportedByUserIDIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldExportedByUserID))
}

// ExportedByUserIDNotNil applies the NotNil predicate on the "exported_by_user_id" field.
func ExportedByUserIDNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldExportedByUserID))
}

// ExportedByUserIDEqualFold applies the EqualFold predicate on the "exported_by_user_id" field.
func ExportedByUserIDEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldExportedByUserID, v))
}

// ExportedByUserIDContainsFold applies the ContainsFold predicate on the "exported_by_user_id" field.
func ExportedByUserIDContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldExportedByUserID, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldDeviceID, v))
}

// TotalRecordCountEQ applies the EQ predicate on the "total_record_count" field.
func TotalRecordCountEQ(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldTotalRecordCount, v))
}

// TotalRecordCountNEQ applies the NEQ predicate on the "total_record_count" field.
func TotalRecordCountNEQ(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldTotalRecordCount, v))
}

// TotalRecordCountIn applies the In predicate on the "total_record_count" field.
func TotalRecordCountIn(vs ...int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldTotalRecordCount, vs...))
}

// TotalRecordCountNotIn applies the NotIn predicate on the "total_record_count" field.
func TotalRecordCountNotIn(vs ...int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldTotalRecordCount, vs...))
}

// TotalRecordCountGT applies the GT predicate on the "total_record_count" field.
func TotalRecordCountGT(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldTotalRecordCount, v))
}

// TotalRecordCountGTE applies the GTE predicate on the "total_record_count" field.
func TotalRecordCountGTE(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldTotalRecordCount, v))
}

// TotalRecordCountLT applies the LT predicate on the "total_record_count" field.
func TotalRecordCountLT(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldTotalRecordCount, v))
}

// TotalRecordCountLTE applies the LTE predicate on the "total_record_count" field.
func TotalRecordCountLTE(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldTotalRecordCount, v))
}

// EntityCountsIsNil applies the IsNil predicate on the "entity_counts" field.
func EntityCountsIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldEntityCounts))
}

// EntityCountsNotNil applies the NotNil predicate on the "entity_counts" field.
func EntityCountsNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldEntityCounts))
}

// TotalAttachmentSizeBytesEQ applies the EQ predicate on the "total_attachment_size_bytes" field.
func TotalAttachmentSizeBytesEQ(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldTotalAttachmentSizeBytes, v))
}

// TotalAttachmentSizeBytesNEQ applies the NEQ predicate on the "total_attachment_size_bytes" field.
func TotalAttachmentSizeBytesNEQ(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldTotalAttachmentSizeBytes, v))
}

// TotalAttachmentSizeBytesIn applies the In predicate on the "total_attachment_size_bytes" field.
func TotalAttachmentSizeBytesIn(vs ...int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldTotalAttachmentSizeBytes, vs...))
}

// TotalAttachmentSizeBytesNotIn applies the NotIn predicate on the "total_attachment_size_bytes" field.
func TotalAttachmentSizeBytesNotIn(vs ...int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldTotalAttachmentSizeBytes, vs...))
}

// TotalAttachmentSizeBytesGT applies the GT predicate on the "total_attachment_size_bytes" field.
func TotalAttachmentSizeBytesGT(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldTotalAttachmentSizeBytes, v))
}

// TotalAttachmentSizeBytesGTE applies the GTE predicate on the "total_attachment_size_bytes" field.
func TotalAttachmentSizeBytesGTE(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldTotalAttachmentSizeBytes, v))
}

// TotalAttachmentSizeBytesLT applies the LT predicate on the "total_attachment_size_bytes" field.
func TotalAttachmentSizeBytesLT(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldTotalAttachmentSizeBytes, v))
}

// TotalAttachmentSizeBytesLTE applies the LTE predicate on the "total_attachment_size_bytes" field.
func TotalAttachmentSizeBytesLTE(v int64) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldTotalAttachmentSizeBytes, v))
}

// VocabularyVersionsIsNil applies the IsNil predicate on the "vocabulary_versions" field.
func VocabularyVersionsIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldVocabularyVersions))
}

// VocabularyVersionsNotNil applies the NotNil predicate on the "vocabulary_versions" field.
func VocabularyVersionsNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldVocabularyVersions))
}

// ExpectedChecksumEQ applies the EQ predicate on the "expected_checksum" field.
func ExpectedChecksumEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldExpectedChecksum, v))
}

// ExpectedChecksumNEQ applies the NEQ predicate on the "expected_checksum" field.
func ExpectedChecksumNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldExpectedChecksum, v))
}

// ExpectedChecksumIn applies the In predicate on the "expected_checksum" field.
func ExpectedChecksumIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldExpectedChecksum, vs...))
}

// ExpectedChecksumNotIn applies the NotIn predicate on the "expected_checksum" field.
func ExpectedChecksumNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldExpectedChecksum, vs...))
}

// ExpectedChecksumGT applies the GT predicate on the "expected_checksum" field.
func ExpectedChecksumGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldExpectedChecksum, v))
}

// ExpectedChecksumGTE applies the GTE predicate on the "expected_checksum" field.
func ExpectedChecksumGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldExpectedChecksum, v))
}

// ExpectedChecksumLT applies the LT predicate on the "expected_checksum" field.
func ExpectedChecksumLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldExpectedChecksum, v))
}

// ExpectedChecksumLTE applies the LTE predicate on the "expected_checksum" field.
func ExpectedChecksumLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldExpectedChecksum, v))
}

// ExpectedChecksumContains applies the Contains predicate on the "expected_checksum" field.
func ExpectedChecksumContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldExpectedChecksum, v))
}

// ExpectedChecksumHasPrefix applies the HasPrefix predicate on the "expected_checksum" field.
func ExpectedChecksumHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldExpectedChecksum, v))
}

// ExpectedChecksumHasSuffix applies the HasSuffix predicate on the "expected_checksum" field.
func ExpectedChecksumHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldExpectedChecksum, v))
}

// ExpectedChecksumIsNil applies the IsNil predicate on the "expected_checksum" field.
func ExpectedChecksumIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldExpectedChecksum))
}

// ExpectedChecksumNotNil applies the NotNil predicate on the "expected_checksum" field.
func ExpectedChecksumNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldExpectedChecksum))
}

// ExpectedChecksumEqualFold applies the EqualFold predicate on the "expected_checksum" field.
func ExpectedChecksumEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldExpectedChecksum, v))
}

// ExpectedChecksumContainsFold applies the ContainsFold predicate on the "expected_checksum" field.
func ExpectedChecksumContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldExpectedChecksum, v))
}

// ComputedChecksumEQ applies the EQ predicate on the "computed_checksum" field.
func ComputedChecksumEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldComputedChecksum, v))
}

// ComputedChecksumNEQ applies the NEQ predicate on the "computed_checksum" field.
func ComputedChecksumNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldComputedChecksum, v))
}

// ComputedChecksumIn applies the In predicate on the "computed_checksum" field.
func ComputedChecksumIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldComputedChecksum, vs...))
}

// ComputedChecksumNotIn applies the NotIn predicate on the "computed_checksum" field.
func ComputedChecksumNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldComputedChecksum, vs...))
}

// ComputedChecksumGT applies the GT predicate on the "computed_checksum" field.
func ComputedChecksumGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldComputedChecksum, v))
}

// ComputedChecksumGTE applies the GTE predicate on the "computed_checksum" field.
func ComputedChecksumGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldComputedChecksum, v))
}

// ComputedChecksumLT applies the LT predicate on the "computed_checksum" field.
func ComputedChecksumLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldComputedChecksum, v))
}

// ComputedChecksumLTE applies the LTE predicate on the "computed_checksum" field.
func ComputedChecksumLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldComputedChecksum, v))
}

// ComputedChecksumContains applies the Contains predicate on the "computed_checksum" field.
func ComputedChecksumContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldComputedChecksum, v))
}

// ComputedChecksumHasPrefix applies the HasPrefix predicate on the "computed_checksum" field.
func ComputedChecksumHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldComputedChecksum, v))
}

// ComputedChecksumHasSuffix applies the HasSuffix predicate on the "computed_checksum" field.
func ComputedChecksumHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldComputedChecksum, v))
}

// ComputedChecksumIsNil applies the IsNil predicate on the "computed_checksum" field.
func ComputedChecksumIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldComputedChecksum))
}

// ComputedChecksumNotNil applies the NotNil predicate on the "computed_checksum" field.
func ComputedChecksumNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldComputedChecksum))
}

// ComputedChecksumEqualFold applies the EqualFold predicate on the "computed_checksum" field.
func ComputedChecksumEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldComputedChecksum, v))
}

// ComputedChecksumContainsFold applies the ContainsFold predicate on the "computed_checksum" field.
func ComputedChecksumContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldComputedChecksum, v))
}

// SignatureStatusEQ applies the EQ predicate on the "signature_status" field.
func SignatureStatusEQ(v SignatureStatus) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldSignatureStatus, v))
}

// SignatureStatusNEQ applies the NEQ predicate on the "signature_status" field.
func SignatureStatusNEQ(v SignatureStatus) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldSignatureStatus, v))
}

// SignatureStatusIn applies the In predicate on the "signature_status" field.
func SignatureStatusIn(vs ...SignatureStatus) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldSignatureStatus, vs...))
}

// SignatureStatusNotIn applies the NotIn predicate on the "signature_status" field.
func SignatureStatusNotIn(vs ...SignatureStatus) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldSignatureStatus, vs...))
}

// ReceiveWarningsIsNil applies the IsNil predicate on the "receive_warnings" field.
func ReceiveWarningsIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldReceiveWarnings))
}

// ReceiveWarningsNotNil applies the NotNil predicate on the "receive_warnings" field.
func ReceiveWarningsNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldReceiveWarnings))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathIsNil applies the IsNil predicate on the "storage_path" field.
func StoragePathIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldStoragePath))
}

// StoragePathNotNil applies the NotNil predicate on the "storage_path" field.
func StoragePathNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldStoragePath))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldStoragePath, v))
}

// IsArchivedEQ applies the EQ predicate on the "is_archived" field.
func IsArchivedEQ(v bool) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldIsArchived, v))
}

// IsArchivedNEQ applies the NEQ predicate on the "is_archived" field.
func IsArchivedNEQ(v bool) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldIsArchived, v))
}

// ArchivePathEQ applies the EQ predicate on the "archive_path" field.
func ArchivePathEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldArchivePath, v))
}

// ArchivePathNEQ applies the NEQ predicate on the "archive_path" field.
func ArchivePathNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldArchivePath, v))
}

// ArchivePathIn applies the In predicate on the "archive_path" field.
func ArchivePathIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldArchivePath, vs...))
}

// ArchivePathNotIn applies the NotIn predicate on the "archive_path" field.
func ArchivePathNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldArchivePath, vs...))
}

// ArchivePathGT applies the GT predicate on the "archive_path" field.
func ArchivePathGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldArchivePath, v))
}

// ArchivePathGTE applies the GTE predicate on the "archive_path" field.
func ArchivePathGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldArchivePath, v))
}

// ArchivePathLT applies the LT predicate on the "archive_path" field.
func ArchivePathLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldArchivePath, v))
}

// ArchivePathLTE applies the LTE predicate on the "archive_path" field.
func ArchivePathLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldArchivePath, v))
}

// ArchivePathContains applies the Contains predicate on the "archive_path" field.
func ArchivePathContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldArchivePath, v))
}

// ArchivePathHasPrefix applies the HasPrefix predicate on the "archive_path" field.
func ArchivePathHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldArchivePath, v))
}

// ArchivePathHasSuffix applies the HasSuffix predicate on the "archive_path" field.
func ArchivePathHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldArchivePath, v))
}

// ArchivePathIsNil applies the IsNil predicate on the "archive_path" field.
func ArchivePathIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldArchivePath))
}

// ArchivePathNotNil applies the NotNil predicate on the "archive_path" field.
func ArchivePathNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldArchivePath))
}

// ArchivePathEqualFold applies the EqualFold predicate on the "archive_path" field.
func ArchivePathEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldArchivePath, v))
}

// ArchivePathContainsFold applies the ContainsFold predicate on the "archive_path" field.
func ArchivePathContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldArchivePath, v))
}

// ArchivedDateEQ applies the EQ predicate on the "archived_date" field.
func ArchivedDateEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldArchivedDate, v))
}

// ArchivedDateNEQ applies the NEQ predicate on the "archived_date" field.
func ArchivedDateNEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldArchivedDate, v))
}

// ArchivedDateIn applies the In predicate on the "archived_date" field.
func ArchivedDateIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldArchivedDate, vs...))
}

// ArchivedDateNotIn applies the NotIn predicate on the "archived_date" field.
func ArchivedDateNotIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldArchivedDate, vs...))
}

// ArchivedDateGT applies the GT predicate on the "archived_date" field.
func ArchivedDateGT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldArchivedDate, v))
}

// ArchivedDateGTE applies the GTE predicate on the "archived_date" field.
func ArchivedDateGTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldArchivedDate, v))
}

// ArchivedDateLT applies the LT predicate on the "archived_date" field.
func ArchivedDateLT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldArchivedDate, v))
}

// ArchivedDateLTE applies the LTE predicate on the "archived_date" field.
func ArchivedDateLTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldArchivedDate, v))
}

// ArchivedDateIsNil applies the IsNil predicate on the "archived_date" field.
func ArchivedDateIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldArchivedDate))
}

// ArchivedDateNotNil applies the NotNil predicate on the "archived_date" field.
func ArchivedDateNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldArchivedDate))
}

// ValidationSummaryIsNil applies the IsNil predicate on the "validation_summary" field.
func ValidationSummaryIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldValidationSummary))
}

// ValidationSummaryNotNil applies the NotNil predicate on the "validation_summary" field.
func ValidationSummaryNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldValidationSummary))
}

// ConflictCountEQ applies the EQ predicate on the "conflict_count" field.
func ConflictCountEQ(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldConflictCount, v))
}

// ConflictCountNEQ applies the NEQ predicate on the "conflict_count" field.
func ConflictCountNEQ(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldConflictCount, v))
}

// ConflictCountIn applies the In predicate on the "conflict_count" field.
func ConflictCountIn(vs ...int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldConflictCount, vs...))
}

// ConflictCountNotIn applies the NotIn predicate on the "conflict_count" field.
func ConflictCountNotIn(vs ...int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldConflictCount, vs...))
}

// ConflictCountGT applies the GT predicate on the "conflict_count" field.
func ConflictCountGT(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldConflictCount, v))
}

// ConflictCountGTE applies the GTE predicate on the "conflict_count" field.
func ConflictCountGTE(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldConflictCount, v))
}

// ConflictCountLT applies the LT predicate on the "conflict_count" field.
func ConflictCountLT(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldConflictCount, v))
}

// ConflictCountLTE applies the LTE predicate on the "conflict_count" field.
func ConflictCountLTE(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldConflictCount, v))
}

// UnresolvedConflictCountEQ applies the EQ predicate on the "unresolved_conflict_count" field.
func UnresolvedConflictCountEQ(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldUnresolvedConflictCount, v))
}

// UnresolvedConflictCountNEQ applies the NEQ predicate on the "unresolved_conflict_count" field.
func UnresolvedConflictCountNEQ(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldUnresolvedConflictCount, v))
}

// UnresolvedConflictCountIn applies the In predicate on the "unresolved_conflict_count" field.
func UnresolvedConflictCountIn(vs ...int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldUnresolvedConflictCount, vs...))
}

// UnresolvedConflictCountNotIn applies the NotIn predicate on the "unresolved_conflict_count" field.
func UnresolvedConflictCountNotIn(vs ...int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldUnresolvedConflictCount, vs...))
}

// UnresolvedConflictCountGT applies the GT predicate on the "unresolved_conflict_count" field.
func UnresolvedConflictCountGT(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldUnresolvedConflictCount, v))
}

// UnresolvedConflictCountGTE applies the GTE predicate on the "unresolved_conflict_count" field.
func UnresolvedConflictCountGTE(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldUnresolvedConflictCount, v))
}

// UnresolvedConflictCountLT applies the LT predicate on the "unresolved_conflict_count" field.
func UnresolvedConflictCountLT(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldUnresolvedConflictCount, v))
}

// UnresolvedConflictCountLTE applies the LTE predicate on the "unresolved_conflict_count" field.
func UnresolvedConflictCountLTE(v int) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldUnresolvedConflictCount, v))
}

// CommittedDateEQ applies the EQ predicate on the "committed_date" field.
func CommittedDateEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldCommittedDate, v))
}

// CommittedDateNEQ applies the NEQ predicate on the "committed_date" field.
func CommittedDateNEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldCommittedDate, v))
}

// CommittedDateIn applies the In predicate on the "committed_date" field.
func CommittedDateIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldCommittedDate, vs...))
}

// CommittedDateNotIn applies the NotIn predicate on the "committed_date" field.
func CommittedDateNotIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldCommittedDate, vs...))
}

// CommittedDateGT applies the GT predicate on the "committed_date" field.
func CommittedDateGT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldCommittedDate, v))
}

// CommittedDateGTE applies the GTE predicate on the "committed_date" field.
func CommittedDateGTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldCommittedDate, v))
}

// CommittedDateLT applies the LT predicate on the "committed_date" field.
func CommittedDateLT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldCommittedDate, v))
}

// CommittedDateLTE applies the LTE predicate on the "committed_date" field.
func CommittedDateLTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldCommittedDate, v))
}

// CommittedDateIsNil applies the IsNil predicate on the "committed_date" field.
func CommittedDateIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldCommittedDate))
}

// CommittedDateNotNil applies the NotNil predicate on the "committed_date" field.
func CommittedDateNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldCommittedDate))
}

// CommitReportIsNil applies the IsNil predicate on the "commit_report" field.
func CommitReportIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldCommitReport))
}

// CommitReportNotNil applies the NotNil predicate on the "commit_report" field.
func CommitReportNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldCommitReport))
}

// QuarantinedReasonEQ applies the EQ predicate on the "quarantined_reason" field.
func QuarantinedReasonEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldQuarantinedReason, v))
}

// QuarantinedReasonNEQ applies the NEQ predicate on the "quarantined_reason" field.
func QuarantinedReasonNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldQuarantinedReason, v))
}

// QuarantinedReasonIn applies the In predicate on the "quarantined_reason" field.
func QuarantinedReasonIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldQuarantinedReason, vs...))
}

// QuarantinedReasonNotIn applies the NotIn predicate on the "quarantined_reason" field.
func QuarantinedReasonNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldQuarantinedReason, vs...))
}

// QuarantinedReasonGT applies the GT predicate on the "quarantined_reason" field.
func QuarantinedReasonGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldQuarantinedReason, v))
}

// QuarantinedReasonGTE applies the GTE predicate on the "quarantined_reason" field.
func QuarantinedReasonGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldQuarantinedReason, v))
}

// QuarantinedReasonLT applies the LT predicate on the "quarantined_reason" field.
func QuarantinedReasonLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldQuarantinedReason, v))
}

// QuarantinedReasonLTE applies the LTE predicate on the "quarantined_reason" field.
func QuarantinedReasonLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldQuarantinedReason, v))
}

// QuarantinedReasonContains applies the Contains predicate on the "quarantined_reason" field.
func QuarantinedReasonContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldQuarantinedReason, v))
}

// QuarantinedReasonHasPrefix applies the HasPrefix predicate on the "quarantined_reason" field.
func QuarantinedReasonHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldQuarantinedReason, v))
}

// QuarantinedReasonHasSuffix applies the HasSuffix predicate on the "quarantined_reason" field.
func QuarantinedReasonHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldQuarantinedReason, v))
}

// QuarantinedReasonIsNil applies the IsNil predicate on the "quarantined_reason" field.
func QuarantinedReasonIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldQuarantinedReason))
}

// QuarantinedReasonNotNil applies the NotNil predicate on the "quarantined_reason" field.
func QuarantinedReasonNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldQuarantinedReason))
}

// QuarantinedReasonEqualFold applies the EqualFold predicate on the "quarantined_reason" field.
func QuarantinedReasonEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldQuarantinedReason, v))
}

// QuarantinedReasonContainsFold applies the ContainsFold predicate on the "quarantined_reason" field.
func QuarantinedReasonContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldQuarantinedReason, v))
}

// CancelledReasonEQ applies the EQ predicate on the "cancelled_reason" field.
func CancelledReasonEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldCancelledReason, v))
}

// CancelledReasonNEQ applies the NEQ predicate on the "cancelled_reason" field.
func CancelledReasonNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldCancelledReason, v))
}

// CancelledReasonIn applies the In predicate on the "cancelled_reason" field.
func CancelledReasonIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldCancelledReason, vs...))
}

// CancelledReasonNotIn applies the NotIn predicate on the "cancelled_reason" field.
func CancelledReasonNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldCancelledReason, vs...))
}

// CancelledReasonGT applies the GT predicate on the "cancelled_reason" field.
func CancelledReasonGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldCancelledReason, v))
}

// CancelledReasonGTE applies the GTE predicate on the "cancelled_reason" field.
func CancelledReasonGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldCancelledReason, v))
}

// CancelledReasonLT applies the LT predicate on the "cancelled_reason" field.
func CancelledReasonLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldCancelledReason, v))
}

// CancelledReasonLTE applies the LTE predicate on the "cancelled_reason" field.
func CancelledReasonLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldCancelledReason, v))
}

// CancelledReasonContains applies the Contains predicate on the "cancelled_reason" field.
func CancelledReasonContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldCancelledReason, v))
}

// CancelledReasonHasPrefix applies the HasPrefix predicate on the "cancelled_reason" field.
func CancelledReasonHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldCancelledReason, v))
}

// CancelledReasonHasSuffix applies the HasSuffix predicate on the "cancelled_reason" field.
func CancelledReasonHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldCancelledReason, v))
}

// CancelledReasonIsNil applies the IsNil predicate on the "cancelled_reason" field.
func CancelledReasonIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldCancelledReason))
}

// CancelledReasonNotNil applies the NotNil predicate on the "cancelled_reason" field.
func CancelledReasonNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldCancelledReason))
}

// CancelledReasonEqualFold applies the EqualFold predicate on the "cancelled_reason" field.
func CancelledReasonEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldCancelledReason, v))
}

// CancelledReasonContainsFold applies the ContainsFold predicate on the "cancelled_reason" field.
func CancelledReasonContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldCancelledReason, v))
}

// CancelledByEQ applies the EQ predicate on the "cancelled_by" field.
func CancelledByEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldCancelledBy, v))
}

// CancelledByNEQ applies the NEQ predicate on the "cancelled_by" field.
func CancelledByNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldCancelledBy, v))
}

// CancelledByIn applies the In predicate on the "cancelled_by" field.
func CancelledByIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldCancelledBy, vs...))
}

// CancelledByNotIn applies the NotIn predicate on the "cancelled_by" field.
func CancelledByNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldCancelledBy, vs...))
}

// CancelledByGT applies the GT predicate on the "cancelled_by" field.
func CancelledByGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldCancelledBy, v))
}

// CancelledByGTE applies the GTE predicate on the "cancelled_by" field.
func CancelledByGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldCancelledBy, v))
}

// CancelledByLT applies the LT predicate on the "cancelled_by" field.
func CancelledByLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldCancelledBy, v))
}

// CancelledByLTE applies the LTE predicate on the "cancelled_by" field.
func CancelledByLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldCancelledBy, v))
}

// CancelledByContains applies the Contains predicate on the "cancelled_by" field.
func CancelledByContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldCancelledBy, v))
}

// CancelledByHasPrefix applies the HasPrefix predicate on the "cancelled_by" field.
func CancelledByHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldCancelledBy, v))
}

// CancelledByHasSuffix applies the HasSuffix predicate on the "cancelled_by" field.
func CancelledByHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldCancelledBy, v))
}

// CancelledByIsNil applies the IsNil predicate on the "cancelled_by" field.
func CancelledByIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldCancelledBy))
}

// CancelledByNotNil applies the NotNil predicate on the "cancelled_by" field.
func CancelledByNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldCancelledBy))
}

// CancelledByEqualFold applies the EqualFold predicate on the "cancelled_by" field.
func CancelledByEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldCancelledBy, v))
}

// CancelledByContainsFold applies the ContainsFold predicate on the "cancelled_by" field.
func CancelledByContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldCancelledBy, v))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotNull(FieldCancelledAt))
}

// ReceivedByEQ applies the EQ predicate on the "received_by" field.
func ReceivedByEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEQ(FieldReceivedBy, v))
}

// ReceivedByNEQ applies the NEQ predicate on the "received_by" field.
func ReceivedByNEQ(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNEQ(FieldReceivedBy, v))
}

// ReceivedByIn applies the In predicate on the "received_by" field.
func ReceivedByIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldIn(FieldReceivedBy, vs...))
}

// ReceivedByNotIn applies the NotIn predicate on the "received_by" field.
func ReceivedByNotIn(vs ...string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldNotIn(FieldReceivedBy, vs...))
}

// ReceivedByGT applies the GT predicate on the "received_by" field.
func ReceivedByGT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGT(FieldReceivedBy, v))
}

// ReceivedByGTE applies the GTE predicate on the "received_by" field.
func ReceivedByGTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldGTE(FieldReceivedBy, v))
}

// ReceivedByLT applies the LT predicate on the "received_by" field.
func ReceivedByLT(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLT(FieldReceivedBy, v))
}

// ReceivedByLTE applies the LTE predicate on the "received_by" field.
func ReceivedByLTE(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldLTE(FieldReceivedBy, v))
}

// ReceivedByContains applies the Contains predicate on the "received_by" field.
func ReceivedByContains(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContains(FieldReceivedBy, v))
}

// ReceivedByHasPrefix applies the HasPrefix predicate on the "received_by" field.
func ReceivedByHasPrefix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasPrefix(FieldReceivedBy, v))
}

// ReceivedByHasSuffix applies the HasSuffix predicate on the "received_by" field.
func ReceivedByHasSuffix(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldHasSuffix(FieldReceivedBy, v))
}

// ReceivedByEqualFold applies the EqualFold predicate on the "received_by" field.
func ReceivedByEqualFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldEqualFold(FieldReceivedBy, v))
}

// ReceivedByContainsFold applies the ContainsFold predicate on the "received_by" field.
func ReceivedByContainsFold(v string) predicate.ImportPackage {
	return predicate.ImportPackage(sql.FieldContainsFold(FieldReceivedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImportPackage) predicate.ImportPackage {
	return predicate.ImportPackage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImportPackage) predicate.ImportPackage {
	return predicate.ImportPackage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImportPackage) predicate.ImportPackage {
	return predicate.ImportPackage(sql.NotPredicates(p))
}
