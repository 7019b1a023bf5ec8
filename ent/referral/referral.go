// Code generated by ent, DO NOT EDIT.

package referral

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the referral type in the database.
	Label = "referral"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSourcePackageID holds the string denoting the source_package_id field in the database.
	FieldSourcePackageID = "source_package_id"
	// FieldClaimID holds the string denoting the claim_id field in the database.
	FieldClaimID = "claim_id"
	// FieldReferralReasonCode holds the string denoting the referral_reason_code field in the database.
	FieldReferralReasonCode = "referral_reason_code"
	// FieldReferredToAgency holds the string denoting the referred_to_agency field in the database.
	FieldReferredToAgency = "referred_to_agency"
	// FieldReferralDate holds the string denoting the referral_date field in the database.
	FieldReferralDate = "referral_date"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// Table holds the table name of the referral in the database.
	Table = "referrals"
)

// Columns holds all SQL columns for referral fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourcePackageID,
	FieldClaimID,
	FieldReferralReasonCode,
	FieldReferredToAgency,
	FieldReferralDate,
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
	// ReferralReasonCodeValidator is a validator for the "referral_reason_code" field. It is called by the builders before save.
	ReferralReasonCodeValidator func(string) error
)

// OrderOption defines the ordering options for the Referral queries.
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

// ByClaimID orders the results by the claim_id field.
func ByClaimID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimID, opts...).ToFunc()
}

// ByReferralReasonCode orders the results by the referral_reason_code field.
func ByReferralReasonCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferralReasonCode, opts...).ToFunc()
}

// ByReferredToAgency orders the results by the referred_to_agency field.
func ByReferredToAgency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferredToAgency, opts...).ToFunc()
}

// ByReferralDate orders the results by the referral_date field.
func ByReferralDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferralDate, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
