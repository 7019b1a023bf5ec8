// Code generated by ent, DO NOT EDIT.

package stagingevidence

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stagingevidence type in the database.
	Label = "staging_evidence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldImportPackageID holds the string denoting the import_package_id field in the database.
	FieldImportPackageID = "import_package_id"
	// FieldOriginalEntityID holds the string denoting the original_entity_id field in the database.
	FieldOriginalEntityID = "original_entity_id"
	// FieldValidationStatus holds the string denoting the validation_status field in the database.
	FieldValidationStatus = "validation_status"
	// FieldDiagnostics holds the string denoting the diagnostics field in the database.
	FieldDiagnostics = "diagnostics"
	// FieldApprovedForCommit holds the string denoting the approved_for_commit field in the database.
	FieldApprovedForCommit = "approved_for_commit"
	// FieldCommittedEntityID holds the string denoting the committed_entity_id field in the database.
	FieldCommittedEntityID = "committed_entity_id"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldBlobSha256 holds the string denoting the blob_sha256 field in the database.
	FieldBlobSha256 = "blob_sha256"
	// Table holds the table name of the stagingevidence in the database.
	Table = "staging_evidences"
)

// Columns holds all SQL columns for stagingevidence fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldImportPackageID,
	FieldOriginalEntityID,
	FieldValidationStatus,
	FieldDiagnostics,
	FieldApprovedForCommit,
	FieldCommittedEntityID,
	FieldPayload,
	FieldBlobSha256,
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
	// DefaultApprovedForCommit holds the default value on creation for the "approved_for_commit" field.
	DefaultApprovedForCommit bool
)

// ValidationStatus defines the type for the "validation_status" enum field.
type ValidationStatus string

// ValidationStatusPENDING is the default value of the ValidationStatus enum.
const DefaultValidationStatus = ValidationStatusPENDING

// ValidationStatus values.
const (
	ValidationStatusPENDING ValidationStatus = "PENDING"
	ValidationStatusVALID   ValidationStatus = "VALID"
	ValidationStatusWARNING ValidationStatus = "WARNING"
	ValidationStatusINVALID ValidationStatus = "INVALID"
	ValidationStatusSKIPPED ValidationStatus = "SKIPPED"
)

func (vs ValidationStatus) String() string {
	return string(vs)
}

// ValidationStatusValidator is a validator for the "validation_status" field enum values. It is called by the builders before save.
func ValidationStatusValidator(vs ValidationStatus) error {
	switch vs {
	case ValidationStatusPENDING, ValidationStatusVALID, ValidationStatusWARNING, ValidationStatusINVALID, ValidationStatusSKIPPED:
		return nil
	default:
		return fmt.Errorf("stagingevidence: invalid enum value for validation_status field: %q", vs)
	}
}

// OrderOption defines the ordering options for the StagingEvidence queries.
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

// ByImportPackageID orders the results by the import_package_id field.
func ByImportPackageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportPackageID, opts...).ToFunc()
}

// ByOriginalEntityID orders the results by the original_entity_id field.
func ByOriginalEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalEntityID, opts...).ToFunc()
}

// ByValidationStatus orders the results by the validation_status field.
func ByValidationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationStatus, opts...).ToFunc()
}

// ByApprovedForCommit orders the results by the approved_for_commit field.
func ByApprovedForCommit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedForCommit, opts...).ToFunc()
}

// ByCommittedEntityID orders the results by the committed_entity_id field.
func ByCommittedEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommittedEntityID, opts...).ToFunc()
}

// ByBlobSha256 orders the results by the blob_sha256 field.
func ByBlobSha256(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobSha256, opts...).ToFunc()
}
