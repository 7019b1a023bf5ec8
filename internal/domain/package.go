package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImportPackage is the pipeline's view of a received package.
type ImportPackage struct {
	ID            uuid.UUID     `json:"id"`
	PackageNumber string        `json:"package_number"`
	Status        PackageStatus `json:"status"`
	ImportMethod  ImportMethod  `json:"import_method"`

	FileName      string `json:"file_name"`
	FileSizeBytes int64  `json:"file_size_bytes"`

	SchemaVersion            string             `json:"schema_version"`
	CreatedUTC               time.Time          `json:"created_utc"`
	ExportedDateUTC          time.Time          `json:"exported_date_utc"`
	ExportedByUserID         string             `json:"exported_by_user_id"`
	DeviceID                 string             `json:"device_id"`
	TotalRecordCount         int                `json:"total_record_count"`
	EntityCounts             map[EntityType]int `json:"entity_counts"`
	TotalAttachmentSizeBytes int64              `json:"total_attachment_size_bytes"`
	VocabularyVersions       map[string]string  `json:"vocabulary_versions"`

	ExpectedChecksum string          `json:"expected_checksum,omitempty"`
	ComputedChecksum string          `json:"computed_checksum,omitempty"`
	SignatureStatus  SignatureStatus `json:"signature_status"`
	ReceiveWarnings  []string        `json:"receive_warnings,omitempty"`

	StoragePath  string     `json:"-"`
	IsArchived   bool       `json:"is_archived"`
	ArchivePath  string     `json:"archive_path,omitempty"`
	ArchivedDate *time.Time `json:"archived_date,omitempty"`

	ValidationSummary *ValidationSummary `json:"validation_summary,omitempty"`
	CommittedDate     *time.Time         `json:"committed_date,omitempty"`
	CommitReport      *CommitReport      `json:"commit_report,omitempty"`

	QuarantinedReason string     `json:"quarantined_reason,omitempty"`
	CancelledReason   string     `json:"cancelled_reason,omitempty"`
	CancelledBy       string     `json:"cancelled_by,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`

	ReceivedBy string    `json:"received_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PackageList is a paginated package listing.
type PackageList struct {
	Items      []*ImportPackage `json:"items"`
	TotalCount int              `json:"total_count"`
}

// ReceiveResult is the outcome of the receive operation.
type ReceiveResult struct {
	Package *ImportPackage `json:"package"`
	// IsDuplicatePackage is true when the manifest PackageId was received
	// before; Package then carries the existing snapshot untouched.
	IsDuplicatePackage bool `json:"is_duplicate_package"`
	// Warnings carries non-fatal receive findings (vocabulary drift).
	Warnings []string `json:"warnings,omitempty"`
}

// LoadReport is the outcome of the staging load operation.
type LoadReport struct {
	PackageID uuid.UUID          `json:"package_id"`
	RowCounts map[EntityType]int `json:"row_counts"`
	TotalRows int                `json:"total_rows"`
	// Reloaded is true when existing staging rows were truncated first.
	Reloaded bool `json:"reloaded"`
}

// DetectionReport is the outcome of the duplicate detection operation.
type DetectionReport struct {
	PackageID        uuid.UUID     `json:"package_id"`
	PersonsScored    int           `json:"persons_scored"`
	BuildingsScored  int           `json:"buildings_scored"`
	UnitsScored      int           `json:"units_scored"`
	ConflictsCreated int           `json:"conflicts_created"`
	PackageStatus    PackageStatus `json:"package_status"`
}

// TypeOutcome is the per-entity-type commit accounting.
type TypeOutcome struct {
	Approved  int `json:"approved"`
	Committed int `json:"committed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// DedupStats is the attachment deduplication accounting.
type DedupStats struct {
	AttachmentsTotal        int   `json:"attachments_total"`
	AttachmentsDeduplicated int   `json:"attachments_deduplicated"`
	DeduplicationBytesSaved int64 `json:"deduplication_bytes_saved"`
}

// MergeSummary records one merge applied during conflict resolution.
type MergeSummary struct {
	EntityType      ConflictEntityType `json:"entity_type"`
	StagingEntityID uuid.UUID          `json:"staging_entity_id"`
	MasterID        uuid.UUID          `json:"master_id"`
	RepointedTables map[string]int     `json:"repointed_tables,omitempty"`
}

// CommitReport is the persisted outcome of a commit attempt.
type CommitReport struct {
	PackageID  uuid.UUID                  `json:"package_id"`
	Success    bool                       `json:"success"`
	StartedAt  time.Time                  `json:"started_at"`
	DurationMS int64                      `json:"duration_ms"`
	PerType    map[EntityType]TypeOutcome `json:"per_type"`
	// IDMap maps original entity ids to committed production ids.
	IDMap  map[string]string `json:"id_map"`
	Dedup  DedupStats        `json:"dedup"`
	Merges []MergeSummary    `json:"merges,omitempty"`
	Errors []string          `json:"errors,omitempty"`
	// PackageStatus is the status reached (COMPLETED, PARTIALLY_COMPLETED
	// or COMMIT_FAILED).
	PackageStatus PackageStatus `json:"package_status"`
}

// CancelResult reports a cancellation.
type CancelResult struct {
	PackageID uuid.UUID     `json:"package_id"`
	Status    PackageStatus `json:"status"`
	// AlreadyCancelled is true when the package was cancelled before this
	// call; the original reason stands.
	AlreadyCancelled bool `json:"already_cancelled"`
	CleanupPerformed bool `json:"cleanup_performed"`
	// CleanupWarning carries a staging cleanup failure; the cancellation
	// itself still stands.
	CleanupWarning string `json:"cleanup_warning,omitempty"`
}

// StagedEntitySummary aggregates staged rows for the review UI.
type StagedEntitySummary struct {
	PackageID uuid.UUID                       `json:"package_id"`
	ByEntity  map[EntityType]EntityValidation `json:"by_entity"`
	TotalRows int                             `json:"total_rows"`
}

// StagedRow is one staged record with its validation state.
type StagedRow struct {
	EntityType        EntityType        `json:"entity_type"`
	OriginalEntityID  uuid.UUID         `json:"original_entity_id"`
	ValidationStatus  ValidationStatus  `json:"validation_status"`
	Diagnostics       []Diagnostic      `json:"diagnostics,omitempty"`
	ApprovedForCommit bool              `json:"approved_for_commit"`
	CommittedEntityID *uuid.UUID        `json:"committed_entity_id,omitempty"`
	Fields            map[string]string `json:"fields"`
}

// StagedRowPage is a filtered, paginated slice of staged rows.
type StagedRowPage struct {
	Items      []*StagedRow `json:"items"`
	TotalCount int          `json:"total_count"`
}
