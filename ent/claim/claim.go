// Code generated by ent, DO NOT EDIT.

package claim

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the claim type in the database.
	Label = "claim"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSourcePackageID holds the string denoting the source_package_id field in the database.
	FieldSourcePackageID = "source_package_id"
	// FieldClaimNumber holds the string denoting the claim_number field in the database.
	FieldClaimNumber = "claim_number"
	// FieldPropertyUnitID holds the string denoting the property_unit_id field in the database.
	FieldPropertyUnitID = "property_unit_id"
	// FieldPrimaryClaimantID holds the string denoting the primary_claimant_id field in the database.
	FieldPrimaryClaimantID = "primary_claimant_id"
	// FieldClaimTypeCode holds the string denoting the claim_type_code field in the database.
	FieldClaimTypeCode = "claim_type_code"
	// FieldStatusCode holds the string denoting the status_code field in the database.
	FieldStatusCode = "status_code"
	// FieldClaimedShare holds the string denoting the claimed_share field in the database.
	FieldClaimedShare = "claimed_share"
	// FieldSubmissionDate holds the string denoting the submission_date field in the database.
	FieldSubmissionDate = "submission_date"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// Table holds the table name of the claim in the database.
	Table = "claims"
)

// Columns holds all SQL columns for claim fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourcePackageID,
	FieldClaimNumber,
	FieldPropertyUnitID,
	FieldPrimaryClaimantID,
	FieldClaimTypeCode,
	FieldStatusCode,
	FieldClaimedShare,
	FieldSubmissionDate,
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
	// ClaimNumberValidator is a validator for the "claim_number" field. It is called by the builders before save.
	ClaimNumberValidator func(string) error
	// ClaimTypeCodeValidator is a validator for the "claim_type_code" field. It is called by the builders before save.
	ClaimTypeCodeValidator func(string) error
	// DefaultStatusCode holds the default value on creation for the "status_code" field.
	DefaultStatusCode string
	// ClaimedShareValidator is a validator for the "claimed_share" field. It is called by the builders before save.
	ClaimedShareValidator func(float64) error
)

// OrderOption defines the ordering options for the Claim queries.
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

// ByClaimNumber orders the results by the claim_number field.
func ByClaimNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimNumber, opts...).ToFunc()
}

// ByPropertyUnitID orders the results by the property_unit_id field.
func ByPropertyUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPropertyUnitID, opts...).ToFunc()
}

// ByPrimaryClaimantID orders the results by the primary_claimant_id field.
func ByPrimaryClaimantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryClaimantID, opts...).ToFunc()
}

// ByClaimTypeCode orders the results by the claim_type_code field.
func ByClaimTypeCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimTypeCode, opts...).ToFunc()
}

// ByStatusCode orders the results by the status_code field.
func ByStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusCode, opts...).ToFunc()
}

// ByClaimedShare orders the results by the claimed_share field.
func ByClaimedShare(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedShare, opts...).ToFunc()
}

// BySubmissionDate orders the results by the submission_date field.
func BySubmissionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionDate, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
