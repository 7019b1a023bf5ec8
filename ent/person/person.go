// Code generated by ent, DO NOT EDIT.

package person

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the person type in the database.
	Label = "person"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSourcePackageID holds the string denoting the source_package_id field in the database.
	FieldSourcePackageID = "source_package_id"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldFatherName holds the string denoting the father_name field in the database.
	FieldFatherName = "father_name"
	// FieldFamilyName holds the string denoting the family_name field in the database.
	FieldFamilyName = "family_name"
	// FieldMotherName holds the string denoting the mother_name field in the database.
	FieldMotherName = "mother_name"
	// FieldFirstNameNormalized holds the string denoting the first_name_normalized field in the database.
	FieldFirstNameNormalized = "first_name_normalized"
	// FieldFatherNameNormalized holds the string denoting the father_name_normalized field in the database.
	FieldFatherNameNormalized = "father_name_normalized"
	// FieldFamilyNameNormalized holds the string denoting the family_name_normalized field in the database.
	FieldFamilyNameNormalized = "family_name_normalized"
	// FieldNationalID holds the string denoting the national_id field in the database.
	FieldNationalID = "national_id"
	// FieldDateOfBirth holds the string denoting the date_of_birth field in the database.
	FieldDateOfBirth = "date_of_birth"
	// FieldYearOfBirth holds the string denoting the year_of_birth field in the database.
	FieldYearOfBirth = "year_of_birth"
	// FieldGenderCode holds the string denoting the gender_code field in the database.
	FieldGenderCode = "gender_code"
	// FieldNationalityCode holds the string denoting the nationality_code field in the database.
	FieldNationalityCode = "nationality_code"
	// FieldGovernorateCode holds the string denoting the governorate_code field in the database.
	FieldGovernorateCode = "governorate_code"
	// FieldPhoneNumber holds the string denoting the phone_number field in the database.
	FieldPhoneNumber = "phone_number"
	// Table holds the table name of the person in the database.
	Table = "persons"
)

// Columns holds all SQL columns for person fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourcePackageID,
	FieldFirstName,
	FieldFatherName,
	FieldFamilyName,
	FieldMotherName,
	FieldFirstNameNormalized,
	FieldFatherNameNormalized,
	FieldFamilyNameNormalized,
	FieldNationalID,
	FieldDateOfBirth,
	FieldYearOfBirth,
	FieldGenderCode,
	FieldNationalityCode,
	FieldGovernorateCode,
	FieldPhoneNumber,
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
	// FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	FirstNameValidator func(string) error
	// FamilyNameValidator is a validator for the "family_name" field. It is called by the builders before save.
	FamilyNameValidator func(string) error
)

// OrderOption defines the ordering options for the Person queries.
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

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByFatherName orders the results by the father_name field.
func ByFatherName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFatherName, opts...).ToFunc()
}

// ByFamilyName orders the results by the family_name field.
func ByFamilyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFamilyName, opts...).ToFunc()
}

// ByMotherName orders the results by the mother_name field.
func ByMotherName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMotherName, opts...).ToFunc()
}

// ByFirstNameNormalized orders the results by the first_name_normalized field.
func ByFirstNameNormalized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstNameNormalized, opts...).ToFunc()
}

// ByFatherNameNormalized orders the results by the father_name_normalized field.
func ByFatherNameNormalized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFatherNameNormalized, opts...).ToFunc()
}

// ByFamilyNameNormalized orders the results by the family_name_normalized field.
func ByFamilyNameNormalized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFamilyNameNormalized, opts...).ToFunc()
}

// ByNationalID orders the results by the national_id field.
func ByNationalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNationalID, opts...).ToFunc()
}

// ByDateOfBirth orders the results by the date_of_birth field.
func ByDateOfBirth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfBirth, opts...).ToFunc()
}

// ByYearOfBirth orders the results by the year_of_birth field.
func ByYearOfBirth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearOfBirth, opts...).ToFunc()
}

// ByGenderCode orders the results by the gender_code field.
func ByGenderCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenderCode, opts...).ToFunc()
}

// ByNationalityCode orders the results by the nationality_code field.
func ByNationalityCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNationalityCode, opts...).ToFunc()
}

// ByGovernorateCode orders the results by the governorate_code field.
func ByGovernorateCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGovernorateCode, opts...).ToFunc()
}

// ByPhoneNumber orders the results by the phone_number field.
func ByPhoneNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneNumber, opts...).ToFunc()
}
