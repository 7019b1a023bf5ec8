// Code generated by ent, DO NOT EDIT.

package household

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the household type in the database.
	Label = "household"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSourcePackageID holds the string denoting the source_package_id field in the database.
	FieldSourcePackageID = "source_package_id"
	// FieldHeadOfHouseholdID holds the string denoting the head_of_household_id field in the database.
	FieldHeadOfHouseholdID = "head_of_household_id"
	// FieldHouseholdSize holds the string denoting the household_size field in the database.
	FieldHouseholdSize = "household_size"
	// FieldMalesUnder18 holds the string denoting the males_under_18 field in the database.
	FieldMalesUnder18 = "males_under_18"
	// FieldFemalesUnder18 holds the string denoting the females_under_18 field in the database.
	FieldFemalesUnder18 = "females_under_18"
	// FieldMalesAdult holds the string denoting the males_adult field in the database.
	FieldMalesAdult = "males_adult"
	// FieldFemalesAdult holds the string denoting the females_adult field in the database.
	FieldFemalesAdult = "females_adult"
	// FieldResidencyStatusCode holds the string denoting the residency_status_code field in the database.
	FieldResidencyStatusCode = "residency_status_code"
	// FieldDisplacementOriginGovernorate holds the string denoting the displacement_origin_governorate field in the database.
	FieldDisplacementOriginGovernorate = "displacement_origin_governorate"
	// Table holds the table name of the household in the database.
	Table = "households"
)

// Columns holds all SQL columns for household fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourcePackageID,
	FieldHeadOfHouseholdID,
	FieldHouseholdSize,
	FieldMalesUnder18,
	FieldFemalesUnder18,
	FieldMalesAdult,
	FieldFemalesAdult,
	FieldResidencyStatusCode,
	FieldDisplacementOriginGovernorate,
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
	// HouseholdSizeValidator is a validator for the "household_size" field. It is called by the builders before save.
	HouseholdSizeValidator func(int) error
	// DefaultMalesUnder18 holds the default value on creation for the "males_under_18" field.
	DefaultMalesUnder18 int
	// MalesUnder18Validator is a validator for the "males_under_18" field. It is called by the builders before save.
	MalesUnder18Validator func(int) error
	// DefaultFemalesUnder18 holds the default value on creation for the "females_under_18" field.
	DefaultFemalesUnder18 int
	// FemalesUnder18Validator is a validator for the "females_under_18" field. It is called by the builders before save.
	FemalesUnder18Validator func(int) error
	// DefaultMalesAdult holds the default value on creation for the "males_adult" field.
	DefaultMalesAdult int
	// MalesAdultValidator is a validator for the "males_adult" field. It is called by the builders before save.
	MalesAdultValidator func(int) error
	// DefaultFemalesAdult holds the default value on creation for the "females_adult" field.
	DefaultFemalesAdult int
	// FemalesAdultValidator is a validator for the "females_adult" field. It is called by the builders before save.
	FemalesAdultValidator func(int) error
)

// OrderOption defines the ordering options for the Household queries.
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

// ByHeadOfHouseholdID orders the results by the head_of_household_id field.
func ByHeadOfHouseholdID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeadOfHouseholdID, opts...).ToFunc()
}

// ByHouseholdSize orders the results by the household_size field.
func ByHouseholdSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHouseholdSize, opts...).ToFunc()
}

// ByMalesUnder18 orders the results by the males_under_18 field.
func ByMalesUnder18(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMalesUnder18, opts...).ToFunc()
}

// ByFemalesUnder18 orders the results by the females_under_18 field.
func ByFemalesUnder18(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFemalesUnder18, opts...).ToFunc()
}

// ByMalesAdult orders the results by the males_adult field.
func ByMalesAdult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMalesAdult, opts...).ToFunc()
}

// ByFemalesAdult orders the results by the females_adult field.
func ByFemalesAdult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFemalesAdult, opts...).ToFunc()
}

// ByResidencyStatusCode orders the results by the residency_status_code field.
func ByResidencyStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResidencyStatusCode, opts...).ToFunc()
}

// ByDisplacementOriginGovernorate orders the results by the displacement_origin_governorate field.
func ByDisplacementOriginGovernorate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplacementOriginGovernorate, opts...).ToFunc()
}
