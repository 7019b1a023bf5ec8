// Code generated by ent, DO NOT EDIT.

package importpackage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the importpackage type in the database.
	Label = "import_package"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPackageNumber holds the string denoting the package_number field in the database.
	FieldPackageNumber = "package_number"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldImportMethod holds the string denoting the import_method field in the database.
	FieldImportMethod = "import_method"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldFileSizeBytes holds the string denoting the file_size_bytes field in the database.
	FieldFileSizeBytes = "file_size_bytes"
	// FieldSchemaVersion holds the string denoting the schema_version field in the database.
	FieldSchemaVersion = "schema_version"
	// FieldManifestCreatedUtc holds the string denoting the manifest_created_utc field in the database.
	FieldManifestCreatedUtc = "manifest_created_utc"
	// FieldExportedDateUtc holds the string denoting the exported_date_utc field in the database.
	FieldExportedDateUtc = "exported_date_utc"
	// FieldExportedByUserID holds the string denoting the exported_by_user_id field in the database.
	FieldExportedByUserID = "exported_by_user_id"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// FieldTotalRecordCount holds the string denoting the total_record_count field in the database.
	FieldTotalRecordCount = "total_record_count"
	// FieldEntityCounts holds the string denoting the entity_counts field in the database.
	FieldEntityCounts = "entity_counts"
	// FieldTotalAttachmentSizeBytes holds the string denoting the total_attachment_size_bytes field in the database.
	FieldTotalAttachmentSizeBytes = "total_attachment_size_bytes"
	// FieldVocabularyVersions holds the string denoting the vocabulary_versions field in the database.
	FieldVocabularyVersions = "vocabulary_versions"
	// FieldExpectedChecksum holds the string denoting the expected_checksum field in the database.
	FieldExpectedChecksum = "expected_checksum"
	// FieldComputedChecksum holds the string denoting the computed_checksum field in the database.
	FieldComputedChecksum = "computed_checksum"
	// FieldSignatureStatus holds the string denoting the signature_status field in the database.
	FieldSignatureStatus = "signature_status"
	// FieldReceiveWarnings holds the string denoting the receive_warnings field in the database.
	FieldReceiveWarnings = "receive_warnings"
	// FieldStoragePath holds the string denoting the storage_path field in the database.
	FieldStoragePath = "storage_path"
	// FieldIsArchived holds the string denoting the is_archived field in the database.
	FieldIsArchived = "is_archived"
	// FieldArchivePath holds the string denoting the archive_path field in the database.
	FieldArchivePath = "archive_path"
	// FieldArchivedDate holds the string denoting the archived_date field in the database.
	FieldArchivedDate = "archived_date"
	// FieldValidationSummary holds the string denoting the validation_summary field in the database.
	FieldValidationSummary = "validation_summary"
	// FieldConflictCount holds the string denoting the conflict_count field in the database.
	FieldConflictCount = "conflict_count"
	// FieldUnresolvedConflictCount holds the string denoting the unresolved_conflict_count field in the database.
	FieldUnresolvedConflictCount = "unresolved_conflict_count"
	// FieldCommittedDate holds the string denoting the committed_date field in the database.
	FieldCommittedDate = "committed_date"
	// FieldCommitReport holds the string denoting the commit_report field in the database.
	FieldCommitReport = "commit_report"
	// FieldQuarantinedReason holds the string denoting the quarantined_reason field in the database.
	FieldQuarantinedReason = "quarantined_reason"
	// FieldCancelledReason holds the string denoting the cancelled_reason field in the database.
	FieldCancelledReason = "cancelled_reason"
	// FieldCancelledBy holds the string denoting the cancelled_by field in the database.
	FieldCancelledBy = "cancelled_by"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// FieldReceivedBy holds the string denoting the received_by field in the database.
	FieldReceivedBy = "received_by"
	// Table holds the table name of the importpackage in the database.
	Table = "import_packages"
)

// Columns holds all SQL columns for importpackage fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPackageNumber,
	FieldStatus,
	FieldImportMethod,
	FieldFileName,
	FieldFileSizeBytes,
	FieldSchemaVersion,
	FieldManifestCreatedUtc,
	FieldExportedDateUtc,
	FieldExportedByUserID,
	FieldDeviceID,
	FieldTotalRecordCount,
	FieldEntityCounts,
	FieldTotalAttachmentSizeBytes,
	FieldVocabularyVersions,
	FieldExpectedChecksum,
	FieldComputedChecksum,
	FieldSignatureStatus,
	FieldReceiveWarnings,
	FieldStoragePath,
	FieldIsArchived,
	FieldArchivePath,
	FieldArchivedDate,
	FieldValidationSummary,
	FieldConflictCount,
	FieldUnresolvedConflictCount,
	FieldCommittedDate,
	FieldCommitReport,
	FieldQuarantinedReason,
	FieldCancelledReason,
	FieldCancelledBy,
	FieldCancelledAt,
	FieldReceivedBy,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// PackageNumberValidator is a validator for the "package_number" field. It is called by the builders before save.
	PackageNumberValidator func(string) error
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// FileSizeBytesValidator is a validator for the "file_size_bytes" field. It is called by the builders before save.
	FileSizeBytesValidator func(int64) error
	// SchemaVersionValidator is a validator for the "schema_version" field. It is called by the builders before save.
	SchemaVersionValidator func(string) error
	// DeviceIDValidator is a validator for the "device_id" field. It is called by the builders before save.
	DeviceIDValidator func(string) error
	// TotalRecordCountValidator is a validator for the "total_record_count" field. It is called by the builders before save.
	TotalRecordCountValidator func(int) error
	// TotalAttachmentSizeBytesValidator is a validator for the "total_attachment_size_bytes" field. It is called by the builders before save.
	TotalAttachmentSizeBytesValidator func(int64) error
	// DefaultIsArchived holds the default value on creation for the "is_archived" field.
	DefaultIsArchived bool
	// DefaultConflictCount holds the default value on creation for the "conflict_count" field.
	DefaultConflictCount int
	// ConflictCountValidator is a validator for the "conflict_count" field. It is called by the builders before save.
	ConflictCountValidator func(int) error
	// DefaultUnresolvedConflictCount holds the default value on creation for the "unresolved_conflict_count" field.
	DefaultUnresolvedConflictCount int
	// UnresolvedConflictCountValidator is a validator for the "unresolved_conflict_count" field. It is called by the builders before save.
	UnresolvedConflictCountValidator func(int) error
	// ReceivedByValidator is a validator for the "received_by" field. It is called by the builders before save.
	ReceivedByValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPENDING is the default value of the Status enum.
const DefaultStatus = StatusPENDING

// Status values.
const (
	StatusPENDING              Status = "PENDING"
	StatusVALIDATING           Status = "VALIDATING"
	StatusVALIDATED            Status = "VALIDATED"
	StatusINVALID              Status = "INVALID"
	StatusDETECTING_DUPLICATES Status = "DETECTING_DUPLICATES"
	StatusREVIEWING_CONFLICTS  Status = "REVIEWING_CONFLICTS"
	StatusREADY_TO_COMMIT      Status = "READY_TO_COMMIT"
	StatusCOMMITTING           Status = "COMMITTING"
	StatusCOMPLETED            Status = "COMPLETED"
	StatusPARTIALLY_COMPLETED  Status = "PARTIALLY_COMPLETED"
	StatusCOMMIT_FAILED        Status = "COMMIT_FAILED"
	StatusCANCELLED            Status = "CANCELLED"
	StatusQUARANTINED          Status = "QUARANTINED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPENDING, StatusVALIDATING, StatusVALIDATED, StatusINVALID, StatusDETECTING_DUPLICATES, StatusREVIEWING_CONFLICTS, StatusREADY_TO_COMMIT, StatusCOMMITTING, StatusCOMPLETED, StatusPARTIALLY_COMPLETED, StatusCOMMIT_FAILED, StatusCANCELLED, StatusQUARANTINED:
		return nil
	default:
		return fmt.Errorf("importpackage: invalid enum value for status field: %q", s)
	}
}

// ImportMethod defines the type for the "import_method" enum field.
type ImportMethod string

// ImportMethodMANUAL is the default value of the ImportMethod enum.
const DefaultImportMethod = ImportMethodMANUAL

// ImportMethod values.
const (
	ImportMethodMANUAL         ImportMethod = "MANUAL"
	ImportMethodNETWORK_SYNC   ImportMethod = "NETWORK_SYNC"
	ImportMethodWATCHED_FOLDER ImportMethod = "WATCHED_FOLDER"
)

func (im ImportMethod) String() string {
	return string(im)
}

// ImportMethodValidator is a validator for the "import_method" field enum values. It is called by the builders before save.
func ImportMethodValidator(im ImportMethod) error {
	switch im {
	case ImportMethodMANUAL, ImportMethodNETWORK_SYNC, ImportMethodWATCHED_FOLDER:
		return nil
	default:
		return fmt.Errorf("importpackage: invalid enum value for import_method field: %q", im)
	}
}

// SignatureStatus defines the type for the "signature_status" enum field.
type SignatureStatus string

// SignatureStatusNONE is the default value of the SignatureStatus enum.
const DefaultSignatureStatus = SignatureStatusNONE

// SignatureStatus values.
const (
	SignatureStatusNONE    SignatureStatus = "NONE"
	SignatureStatusVALID   SignatureStatus = "VALID"
	SignatureStatusINVALID SignatureStatus = "INVALID"
)

func (ss SignatureStatus) String() string {
	return string(ss)
}

// SignatureStatusValidator is a validator for the "signature_status" field enum values. It is called by the builders before save.
func SignatureStatusValidator(ss SignatureStatus) error {
	switch ss {
	case SignatureStatusNONE, SignatureStatusVALID, SignatureStatusINVALID:
		return nil
	default:
		return fmt.Errorf("importpackage: invalid enum value for signature_status field: %q", ss)
	}
}

// OrderOption defines the ordering options for the ImportPackage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPackageNumber orders the results by the package_number field.
func ByPackageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByImportMethod orders the results by the import_method field.
func ByImportMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportMethod, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByFileSizeBytes orders the results by the file_size_bytes field.
func ByFileSizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSizeBytes, opts...).ToFunc()
}

// BySchemaVersion orders the results by the schema_version field.
func BySchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaVersion, opts...).ToFunc()
}

// ByManifestCreatedUtc orders the results by the manifest_created_utc field.
func ByManifestCreatedUtc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManifestCreatedUtc, opts...).ToFunc()
}

// ByExportedDateUtc orders the results by the exported_date_utc field.
func ByExportedDateUtc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExportedDateUtc, opts...).ToFunc()
}

// ByExportedByUserID orders the results by the exported_by_user_id field.
func ByExportedByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExportedByUserID, opts...).ToFunc()
}

// ByDeviceID orders the results by the device_id field.
func ByDeviceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceID, opts...).ToFunc()
}

// ByTotalRecordCount orders the results by the total_record_count field.
func ByTotalRecordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRecordCount, opts...).ToFunc()
}

// ByTotalAttachmentSizeBytes orders the results by the total_attachment_size_bytes field.
func ByTotalAttachmentSizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttachmentSizeBytes, opts...).ToFunc()
}

// ByExpectedChecksum orders the results by the expected_checksum field.
func ByExpectedChecksum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedChecksum, opts...).ToFunc()
}

// ByComputedChecksum orders the results by the computed_checksum field.
func ByComputedChecksum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputedChecksum, opts...).ToFunc()
}

// BySignatureStatus orders the results by the signature_status field.
func BySignatureStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignatureStatus, opts...).ToFunc()
}

// ByStoragePath orders the results by the storage_path field.
func ByStoragePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoragePath, opts...).ToFunc()
}

// ByIsArchived orders the results by the is_archived field.
func ByIsArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsArchived, opts...).ToFunc()
}

// ByArchivePath orders the results by the archive_path field.
func ByArchivePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivePath, opts...).ToFunc()
}

// ByArchivedDate orders the results by the archived_date field.
func ByArchivedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivedDate, opts...).ToFunc()
}

// ByConflictCount orders the results by the conflict_count field.
func ByConflictCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConflictCount, opts...).ToFunc()
}

// ByUnresolvedConflictCount orders the results by the unresolved_conflict_count field.
func ByUnresolvedConflictCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnresolvedConflictCount, opts...).ToFunc()
}

// ByCommittedDate orders the results by the committed_date field.
func ByCommittedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommittedDate, opts...).ToFunc()
}

// ByQuarantinedReason orders the results by the quarantined_reason field.
func ByQuarantinedReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuarantinedReason, opts...).ToFunc()
}

// ByCancelledReason orders the results by the cancelled_reason field.
func ByCancelledReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledReason, opts...).ToFunc()
}

// ByCancelledBy orders the results by the cancelled_by field.
func ByCancelledBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledBy, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByReceivedBy orders the results by the received_by field.
func ByReceivedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedBy, opts...).ToFunc()
}
