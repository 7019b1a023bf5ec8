// Code generated by ent, DO NOT EDIT.

package personpropertyrelation

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the personpropertyrelation type in the database.
	Label = "person_property_relation"
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
	// FieldPropertyUnitID holds the string denoting the property_unit_id field in the database.
	FieldPropertyUnitID = "property_unit_id"
	// FieldRelationTypeCode holds the string denoting the relation_type_code field in the database.
	FieldRelationTypeCode = "relation_type_code"
	// FieldOwnershipShare holds the string denoting the ownership_share field in the database.
	FieldOwnershipShare = "ownership_share"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// Table holds the table name of the personpropertyrelation in the database.
	Table = "person_property_relations"
)

// Columns holds all SQL columns for personpropertyrelation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourcePackageID,
	FieldPersonID,
	FieldPropertyUnitID,
	FieldRelationTypeCode,
	FieldOwnershipShare,
	FieldStartDate,
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
	// RelationTypeCodeValidator is a validator for the "relation_type_code" field. It is called by the builders before save.
	RelationTypeCodeValidator func(string) error
	// OwnershipShareValidator is a validator for the "ownership_share" field. It is called by the builders before save.
	OwnershipShareValidator func(float64) error
)

// OrderOption defines the ordering options for the PersonPropertyRelation queries.
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

// ByPropertyUnitID orders the results by the property_unit_id field.
func ByPropertyUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPropertyUnitID, opts...).ToFunc()
}

// ByRelationTypeCode orders the results by the relation_type_code field.
func ByRelationTypeCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationTypeCode, opts...).ToFunc()
}

// ByOwnershipShare orders the results by the ownership_share field.
func ByOwnershipShare(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnershipShare, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
