// Code generated by ent, DO NOT EDIT.

package propertyunit

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the propertyunit type in the database.
	Label = "property_unit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSourcePackageID holds the string denoting the source_package_id field in the database.
	FieldSourcePackageID = "source_package_id"
	// FieldBuildingID holds the string denoting the building_id field in the database.
	FieldBuildingID = "building_id"
	// FieldUnitIdentifier holds the string denoting the unit_identifier field in the database.
	FieldUnitIdentifier = "unit_identifier"
	// FieldCompositeIdentifier holds the string denoting the composite_identifier field in the database.
	FieldCompositeIdentifier = "composite_identifier"
	// FieldFloorNumber holds the string denoting the floor_number field in the database.
	FieldFloorNumber = "floor_number"
	// FieldUnitTypeCode holds the string denoting the unit_type_code field in the database.
	FieldUnitTypeCode = "unit_type_code"
	// FieldOccupancyStatusCode holds the string denoting the occupancy_status_code field in the database.
	FieldOccupancyStatusCode = "occupancy_status_code"
	// FieldAreaSqm holds the string denoting the area_sqm field in the database.
	FieldAreaSqm = "area_sqm"
	// FieldRoomCount holds the string denoting the room_count field in the database.
	FieldRoomCount = "room_count"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// Table holds the table name of the propertyunit in the database.
	Table = "property_units"
)

// Columns holds all SQL columns for propertyunit fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourcePackageID,
	FieldBuildingID,
	FieldUnitIdentifier,
	FieldCompositeIdentifier,
	FieldFloorNumber,
	FieldUnitTypeCode,
	FieldOccupancyStatusCode,
	FieldAreaSqm,
	FieldRoomCount,
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
	// UnitIdentifierValidator is a validator for the "unit_identifier" field. It is called by the builders before save.
	UnitIdentifierValidator func(string) error
	// CompositeIdentifierValidator is a validator for the "composite_identifier" field. It is called by the builders before save.
	CompositeIdentifierValidator func(string) error
	// DefaultFloorNumber holds the default value on creation for the "floor_number" field.
	DefaultFloorNumber int
)

// OrderOption defines the ordering options for the PropertyUnit queries.
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

// ByBuildingID orders the results by the building_id field.
func ByBuildingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildingID, opts...).ToFunc()
}

// ByUnitIdentifier orders the results by the unit_identifier field.
func ByUnitIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitIdentifier, opts...).ToFunc()
}

// ByCompositeIdentifier orders the results by the composite_identifier field.
func ByCompositeIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompositeIdentifier, opts...).ToFunc()
}

// ByFloorNumber orders the results by the floor_number field.
func ByFloorNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFloorNumber, opts...).ToFunc()
}

// ByUnitTypeCode orders the results by the unit_type_code field.
func ByUnitTypeCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitTypeCode, opts...).ToFunc()
}

// ByOccupancyStatusCode orders the results by the occupancy_status_code field.
func ByOccupancyStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccupancyStatusCode, opts...).ToFunc()
}

// ByAreaSqm orders the results by the area_sqm field.
func ByAreaSqm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAreaSqm, opts...).ToFunc()
}

// ByRoomCount orders the results by the room_count field.
func ByRoomCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomCount, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
