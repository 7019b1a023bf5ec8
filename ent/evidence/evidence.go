// Code generated by ent, DO NOT EDIT.

package evidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evidence type in the database.
	Label = "evidence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSourcePackageID holds the string denoting the source_package_id field in the database.
	FieldSourcePackageID = "source_package_id"
	// FieldPersonID holds the string denoting the person_id field in the database.
	FieldPersonID = "person_id"
	// FieldEvidenceTypeCode holds the string denoting the evidence_type_code field in the database.
	FieldEvidenceTypeCode = "evidence_type_code"
	// FieldDocumentNumber holds the string denoting the document_number field in the database.
	FieldDocumentNumber = "document_number"
	// FieldIssuedDate holds the string denoting the issued_date field in the database.
	FieldIssuedDate = "issued_date"
	// FieldIssuingAuthority holds the string denoting the issuing_authority field in the database.
	FieldIssuingAuthority = "issuing_authority"
	// FieldBlobSha256 holds the string denoting the blob_sha256 field in the database.
	FieldBlobSha256 = "blob_sha256"
	// FieldBlobPath holds the string denoting the blob_path field in the database.
	FieldBlobPath = "blob_path"
	// FieldBlobSizeBytes holds the string denoting the blob_size_bytes field in the database.
	FieldBlobSizeBytes = "blob_size_bytes"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// Table holds the table name of the evidence in the database.
	Table = "evidences"
)

// Columns holds all SQL columns for evidence fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourcePackageID,
	FieldPersonID,
	FieldEvidenceTypeCode,
	FieldDocumentNumber,
	FieldIssuedDate,
	FieldIssuingAuthority,
	FieldBlobSha256,
	FieldBlobPath,
	FieldBlobSizeBytes,
	FieldFileName,
	FieldContentType,
	FieldNotes,
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
	// EvidenceTypeCodeValidator is a validator for the "evidence_type_code" field. It is called by the builders before save.
	EvidenceTypeCodeValidator func(string) error
	// DefaultBlobSizeBytes holds the default value on creation for the "blob_size_bytes" field.
	DefaultBlobSizeBytes int64
	// BlobSizeBytesValidator is a validator for the "blob_size_bytes" field. It is called by the builders before save.
	BlobSizeBytesValidator func(int64) error
)

// OrderOption defines the ordering options for the Evidence queries.
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

// BySourcePackageID orders the results by the source_package_id field.
func BySourcePackageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePackageID, opts...).ToFunc()
}

// ByPersonID orders the results by the person_id field.
func ByPersonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonID, opts...).ToFunc()
}

// ByEvidenceTypeCode orders the results by the evidence_type_code field.
func ByEvidenceTypeCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceTypeCode, opts...).ToFunc()
}

// ByDocumentNumber orders the results by the document_number field.
func ByDocumentNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentNumber, opts...).ToFunc()
}

// ByIssuedDate orders the results by the issued_date field.
func ByIssuedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuedDate, opts...).ToFunc()
}

// ByIssuingAuthority orders the results by the issuing_authority field.
func ByIssuingAuthority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuingAuthority, opts...).ToFunc()
}

// ByBlobSha256 orders the results by the blob_sha256 field.
func ByBlobSha256(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobSha256, opts...).ToFunc()
}

// ByBlobPath orders the results by the blob_path field.
func ByBlobPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobPath, opts...).ToFunc()
}

// ByBlobSizeBytes orders the results by the blob_size_bytes field.
func ByBlobSizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobSizeBytes, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
