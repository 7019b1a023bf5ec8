// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/importpackage"
	"uhc-registry.io/registry/internal/domain"
)

// ImportPackage is the model entity for the ImportPackage schema.
type ImportPackage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// PackageNumber holds the value of the "package_number" field.
	PackageNumber string `json:"package_number,omitempty"`
	// Status holds the value of the "status" field.
	Status importpackage.Status `json:"status,omitempty"`
	// ImportMethod holds the value of the "import_method" field.
	ImportMethod importpackage.ImportMethod `json:"import_method,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FileSizeBytes holds the value of the "file_size_bytes" field.
	FileSizeBytes int64 `json:"file_size_bytes,omitempty"`
	// SchemaVersion holds the value of the "schema_version" field.
	SchemaVersion string `json:"schema_version,omitempty"`
	// ManifestCreatedUtc holds the value of the "manifest_created_utc" field.
	ManifestCreatedUtc time.Time `json:"manifest_created_utc,omitempty"`
	// ExportedDateUtc holds the value of the "exported_date_utc" field.
	ExportedDateUtc time.Time `json:"exported_date_utc,omitempty"`
	// ExportedByUserID holds the value of the "exported_by_user_id" field.
	ExportedByUserID string `json:"exported_by_user_id,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// TotalRecordCount holds the value of the "total_record_count" field.
	TotalRecordCount int `json:"total_record_count,omitempty"`
	// EntityCounts holds the value of the "entity_counts" field.
	EntityCounts map[domain.EntityType]int `json:"entity_counts,omitempty"`
	// TotalAttachmentSizeBytes holds the value of the "total_attachment_size_bytes" field.
	TotalAttachmentSizeBytes int64 `json:"total_attachment_size_bytes,omitempty"`
	// VocabularyVersions holds the value of the "vocabulary_versions" field.
	VocabularyVersions map[string]string `json:"vocabulary_versions,omitempty"`
	// ExpectedChecksum holds the value of the "expected_checksum" field.
	ExpectedChecksum string `json:"expected_checksum,omitempty"`
	// ComputedChecksum holds the value of the "computed_checksum" field.
	ComputedChecksum string `json:"computed_checksum,omitempty"`
	// SignatureStatus holds the value of the "signature_status" field.
	SignatureStatus importpackage.SignatureStatus `json:"signature_status,omitempty"`
	// ReceiveWarnings holds the value of the "receive_warnings" field.
	ReceiveWarnings []string `json:"receive_warnings,omitempty"`
	// StoragePath holds the value of the "storage_path" field.
	StoragePath string `json:"storage_path,omitempty"`
	// IsArchived holds the value of the "is_archived" field.
	IsArchived bool `json:"is_archived,omitempty"`
	// ArchivePath holds the value of the "archive_path" field.
	ArchivePath string `json:"archive_path,omitempty"`
	// ArchivedDate holds the value of the "archived_date" field.
	ArchivedDate *time.Time `json:"archived_date,omitempty"`
	// ValidationSummary holds the value of the "validation_summary" field.
	ValidationSummary *domain.ValidationSummary `json:"validation_summary,omitempty"`
	// ConflictCount holds the value of the "conflict_count" field.
	ConflictCount int `json:"conflict_count,omitempty"`
	// UnresolvedConflictCount holds the value of the "unresolved_conflict_count" field.
	UnresolvedConflictCount int `json:"unresolved_conflict_count,omitempty"`
	// CommittedDate holds the value of the "committed_date" field.
	CommittedDate *time.Time `json:"committed_date,omitempty"`
	// CommitReport holds the value of the "commit_report" field.
	CommitReport *domain.CommitReport `json:"commit_report,omitempty"`
	// QuarantinedReason holds the value of the "quarantined_reason" field.
	QuarantinedReason string `json:"quarantined_reason,omitempty"`
	// CancelledReason holds the value of the "cancelled_reason" field.
	CancelledReason string `json:"cancelled_reason,omitempty"`
	// CancelledBy holds the value of the "cancelled_by" field.
	CancelledBy string `json:"cancelled_by,omitempty"`
	// CancelledAt holds the value of the "cancelled_at" field.
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	// ReceivedBy holds the value of the "received_by" field.
	ReceivedBy   string `json:"received_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImportPackage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case importpackage.FieldEntityCounts, importpackage.FieldVocabularyVersions, importpackage.FieldReceiveWarnings, importpackage.FieldValidationSummary, importpackage.FieldCommitReport:
			values[i] = new([]byte)
		case importpackage.FieldIsArchived:
			values[i] = new(sql.NullBool)
		case importpackage.FieldFileSizeBytes, importpackage.FieldTotalRecordCount, importpackage.FieldTotalAttachmentSizeBytes, importpackage.FieldConflictCount, importpackage.FieldUnresolvedConflictCount:
			values[i] = new(sql.NullInt64)
		case importpackage.FieldPackageNumber, importpackage.FieldStatus, importpackage.FieldImportMethod, importpackage.FieldFileName, importpackage.FieldSchemaVersion, importpackage.FieldExportedByUserID, importpackage.FieldDeviceID, importpackage.FieldExpectedChecksum, importpackage.FieldComputedChecksum, importpackage.FieldSignatureStatus, importpackage.FieldStoragePath, importpackage.FieldArchivePath, importpackage.FieldQuarantinedReason, importpackage.FieldCancelledReason, importpackage.FieldCancelledBy, importpackage.FieldReceivedBy:
			values[i] = new(sql.NullString)
		case importpackage.FieldCreatedAt, importpackage.FieldUpdatedAt, importpackage.FieldManifestCreatedUtc, importpackage.FieldExportedDateUtc, importpackage.FieldArchivedDate, importpackage.FieldCommittedDate, importpackage.FieldCancelledAt:
			values[i] = new(sql.NullTime)
		case importpackage.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImportPackage fields.
func (_m *ImportPackage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case importpackage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case importpackage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case importpackage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case importpackage.FieldPackageNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field package_number", values[i])
			} else if value.Valid {
				_m.PackageNumber = value.String
			}
		case importpackage.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = importpackage.Status(value.String)
			}
		case importpackage.FieldImportMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field import_method", values[i])
			} else if value.Valid {
				_m.ImportMethod = importpackage.ImportMethod(value.String)
			}
		case importpackage.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case importpackage.FieldFileSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size_bytes", values[i])
			} else if value.Valid {
				_m.FileSizeBytes = value.Int64
			}
		case importpackage.FieldSchemaVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schema_version", values[i])
			} else if value.Valid {
				_m.SchemaVersion = value.String
			}
		case importpackage.FieldManifestCreatedUtc:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field manifest_created_utc", values[i])
			} else if value.Valid {
				_m.ManifestCreatedUtc = value.Time
			}
		case importpackage.FieldExportedDateUtc:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field exported_date_utc", values[i])
			} else if value.Valid {
				_m.ExportedDateUtc = value.Time
			}
		case importpackage.FieldExportedByUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exported_by_user_id", values[i])
			} else if value.Valid {
				_m.ExportedByUserID = value.String
			}
		case importpackage.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				_m.DeviceID = value.String
			}
		case importpackage.FieldTotalRecordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_record_count", values[i])
			} else if value.Valid {
				_m.TotalRecordCount = int(value.Int64)
			}
		case importpackage.FieldEntityCounts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entity_counts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EntityCounts); err != nil {
					return fmt.Errorf("unmarshal field entity_counts: %w", err)
				}
			}
		case importpackage.FieldTotalAttachmentSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attachment_size_bytes", values[i])
			} else if value.Valid {
				_m.TotalAttachmentSizeBytes = value.Int64
			}
		case importpackage.FieldVocabularyVersions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field vocabulary_versions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VocabularyVersions); err != nil {
					return fmt.Errorf("unmarshal field vocabulary_versions: %w", err)
				}
			}
		case importpackage.FieldExpectedChecksum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_checksum", values[i])
			} else if value.Valid {
				_m.ExpectedChecksum = value.String
			}
		case importpackage.FieldComputedChecksum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field computed_checksum", values[i])
			} else if value.Valid {
				_m.ComputedChecksum = value.String
			}
		case importpackage.FieldSignatureStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signature_status", values[i])
			} else if value.Valid {
				_m.SignatureStatus = importpackage.SignatureStatus(value.String)
			}
		case importpackage.FieldReceiveWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field receive_warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReceiveWarnings); err != nil {
					return fmt.Errorf("unmarshal field receive_warnings: %w", err)
				}
			}
		case importpackage.FieldStoragePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_path", values[i])
			} else if value.Valid {
				_m.StoragePath = value.String
			}
		case importpackage.FieldIsArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_archived", values[i])
			} else if value.Valid {
				_m.IsArchived = value.Bool
			}
		case importpackage.FieldArchivePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field archive_path", values[i])
			} else if value.Valid {
				_m.ArchivePath = value.String
			}
		case importpackage.FieldArchivedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_date", values[i])
			} else if value.Valid {
				_m.ArchivedDate = new(time.Time)
				*_m.ArchivedDate = value.Time
			}
		case importpackage.FieldValidationSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationSummary); err != nil {
					return fmt.Errorf("unmarshal field validation_summary: %w", err)
				}
			}
		case importpackage.FieldConflictCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_count", values[i])
			} else if value.Valid {
				_m.ConflictCount = int(value.Int64)
			}
		case importpackage.FieldUnresolvedConflictCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unresolved_conflict_count", values[i])
			} else if value.Valid {
				_m.UnresolvedConflictCount = int(value.Int64)
			}
		case importpackage.FieldCommittedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field committed_date", values[i])
			} else if value.Valid {
				_m.CommittedDate = new(time.Time)
				*_m.CommittedDate = value.Time
			}
		case importpackage.FieldCommitReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field commit_report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CommitReport); err != nil {
					return fmt.Errorf("unmarshal field commit_report: %w", err)
				}
			}
		case importpackage.FieldQuarantinedReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quarantined_reason", values[i])
			} else if value.Valid {
				_m.QuarantinedReason = value.String
			}
		case importpackage.FieldCancelledReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_reason", values[i])
			} else if value.Valid {
				_m.CancelledReason = value.String
			}
		case importpackage.FieldCancelledBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_by", values[i])
			} else if value.Valid {
				_m.CancelledBy = value.String
			}
		case importpackage.FieldCancelledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_at", values[i])
			} else if value.Valid {
				_m.CancelledAt = new(time.Time)
				*_m.CancelledAt = value.Time
			}
		case importpackage.FieldReceivedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field received_by", values[i])
			} else if value.Valid {
				_m.ReceivedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImportPackage.
// This includes values selected through modifiers, order, etc.
func (_m *ImportPackage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ImportPackage.
// Note that you need to call ImportPackage.Unwrap() before calling this method if this ImportPackage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImportPackage) Update() *ImportPackageUpdateOne {
	return NewImportPackageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImportPackage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImportPackage) Unwrap() *ImportPackage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImportPackage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImportPackage) String() string {
	var builder strings.Builder
	builder.WriteString("ImportPackage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("package_number=")
	builder.WriteString(_m.PackageNumber)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("import_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImportMethod))
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSizeBytes))
	builder.WriteString(", ")
	builder.WriteString("schema_version=")
	builder.WriteString(_m.SchemaVersion)
	builder.WriteString(", ")
	builder.WriteString("manifest_created_utc=")
	builder.WriteString(_m.ManifestCreatedUtc.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("exported_date_utc=")
	builder.WriteString(_m.ExportedDateUtc.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("exported_by_user_id=")
	builder.WriteString(_m.ExportedByUserID)
	builder.WriteString(", ")
	builder.WriteString("device_id=")
	builder.WriteString(_m.DeviceID)
	builder.WriteString(", ")
	builder.WriteString("total_record_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRecordCount))
	builder.WriteString(", ")
	builder.WriteString("entity_counts=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityCounts))
	builder.WriteString(", ")
	builder.WriteString("total_attachment_size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttachmentSizeBytes))
	builder.WriteString(", ")
	builder.WriteString("vocabulary_versions=")
	builder.WriteString(fmt.Sprintf("%v", _m.VocabularyVersions))
	builder.WriteString(", ")
	builder.WriteString("expected_checksum=")
	builder.WriteString(_m.ExpectedChecksum)
	builder.WriteString(", ")
	builder.WriteString("computed_checksum=")
	builder.WriteString(_m.ComputedChecksum)
	builder.WriteString(", ")
	builder.WriteString("signature_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignatureStatus))
	builder.WriteString(", ")
	builder.WriteString("receive_warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReceiveWarnings))
	builder.WriteString(", ")
	builder.WriteString("storage_path=")
	builder.WriteString(_m.StoragePath)
	builder.WriteString(", ")
	builder.WriteString("is_archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsArchived))
	builder.WriteString(", ")
	builder.WriteString("archive_path=")
	builder.WriteString(_m.ArchivePath)
	builder.WriteString(", ")
	if v := _m.ArchivedDate; v != nil {
		builder.WriteString("archived_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("validation_summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationSummary))
	builder.WriteString(", ")
	builder.WriteString("conflict_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConflictCount))
	builder.WriteString(", ")
	builder.WriteString("unresolved_conflict_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnresolvedConflictCount))
	builder.WriteString(", ")
	if v := _m.CommittedDate; v != nil {
		builder.WriteString("committed_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("commit_report=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommitReport))
	builder.WriteString(", ")
	builder.WriteString("quarantined_reason=")
	builder.WriteString(_m.QuarantinedReason)
	builder.WriteString(", ")
	builder.WriteString("cancelled_reason=")
	builder.WriteString(_m.CancelledReason)
	builder.WriteString(", ")
	builder.WriteString("cancelled_by=")
	builder.WriteString(_m.CancelledBy)
	builder.WriteString(", ")
	if v := _m.CancelledAt; v != nil {
		builder.WriteString("cancelled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("received_by=")
	builder.WriteString(_m.ReceivedBy)
	builder.WriteByte(')')
	return builder.String()
}

// ImportPackages is a parsable slice of ImportPackage.
type ImportPackages []*ImportPackage
