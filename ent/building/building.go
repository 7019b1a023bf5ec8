// Code generated by ent, DO NOT EDIT.

package building

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the building type in the database.
	Label = "building"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSourcePackageID holds the string denoting the source_package_id field in the database.
	FieldSourcePackageID = "source_package_id"
	// FieldBuildingCode holds the string denoting the building_code field in the database.
	FieldBuildingCode = "building_code"
	// FieldGovernorateCode holds the string denoting the governorate_code field in the database.
	FieldGovernorateCode = "governorate_code"
	// FieldDistrictCode holds the string denoting the district_code field in the database.
	FieldDistrictCode = "district_code"
	// FieldSubDistrictCode holds the string denoting the sub_district_code field in the database.
	FieldSubDistrictCode = "sub_district_code"
	// FieldCommunityCode holds the string denoting the community_code field in the database.
	FieldCommunityCode = "community_code"
	// FieldNeighborhoodCode holds the string denoting the neighborhood_code field in the database.
	FieldNeighborhoodCode = "neighborhood_code"
	// FieldBuildingNumber holds the string denoting the building_number field in the database.
	FieldBuildingNumber = "building_number"
	// FieldBuildingTypeCode holds the string denoting the building_type_code field in the database.
	FieldBuildingTypeCode = "building_type_code"
	// FieldOccupancyStatusCode holds the string denoting the occupancy_status_code field in the database.
	FieldOccupancyStatusCode = "occupancy_status_code"
	// FieldNumberOfFloors holds the string denoting the number_of_floors field in the database.
	FieldNumberOfFloors = "number_of_floors"
	// FieldNumberOfUnits holds the string denoting the number_of_units field in the database.
	FieldNumberOfUnits = "number_of_units"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// Table holds the table name of the building in the database.
	Table = "buildings"
)

// Columns holds all SQL columns for building fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourcePackageID,
	FieldBuildingCode,
	FieldGovernorateCode,
	FieldDistrictCode,
	FieldSubDistrictCode,
	FieldCommunityCode,
	FieldNeighborhoodCode,
	FieldBuildingNumber,
	FieldBuildingTypeCode,
	FieldOccupancyStatusCode,
	FieldNumberOfFloors,
	FieldNumberOfUnits,
	FieldAddress,
	FieldLatitude,
	FieldLongitude,
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
	// BuildingCodeValidator is a validator for the "building_code" field. It is called by the builders before save.
	BuildingCodeValidator func(string) error
	// GovernorateCodeValidator is a validator for the "governorate_code" field. It is called by the builders before save.
	GovernorateCodeValidator func(string) error
	// DistrictCodeValidator is a validator for the "district_code" field. It is called by the builders before save.
	DistrictCodeValidator func(string) error
	// SubDistrictCodeValidator is a validator for the "sub_district_code" field. It is called by the builders before save.
	SubDistrictCodeValidator func(string) error
	// CommunityCodeValidator is a validator for the "community_code" field. It is called by the builders before save.
	CommunityCodeValidator func(string) error
	// NeighborhoodCodeValidator is a validator for the "neighborhood_code" field. It is called by the builders before save.
	NeighborhoodCodeValidator func(string) error
	// BuildingNumberValidator is a validator for the "building_number" field. It is called by the builders before save.
	BuildingNumberValidator func(string) error
	// DefaultNumberOfFloors holds the default value on creation for the "number_of_floors" field.
	DefaultNumberOfFloors int
	// NumberOfFloorsValidator is a validator for the "number_of_floors" field. It is called by the builders before save.
	NumberOfFloorsValidator func(int) error
	// DefaultNumberOfUnits holds the default value on creation for the "number_of_units" field.
	DefaultNumberOfUnits int
	// NumberOfUnitsValidator is a validator for the "number_of_units" field. It is called by the builders before save.
	NumberOfUnitsValidator func(int) error
)

// OrderOption defines the ordering options for the Building queries.
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

// ByBuildingCode orders the results by the building_code field.
func ByBuildingCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildingCode, opts...).ToFunc()
}

// ByGovernorateCode orders the results by the governorate_code field.
func ByGovernorateCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGovernorateCode, opts...).ToFunc()
}

// ByDistrictCode orders the results by the district_code field.
func ByDistrictCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistrictCode, opts...).ToFunc()
}

// BySubDistrictCode orders the results by the sub_district_code field.
func BySubDistrictCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubDistrictCode, opts...).ToFunc()
}

// ByCommunityCode orders the results by the community_code field.
func ByCommunityCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommunityCode, opts...).ToFunc()
}

// ByNeighborhoodCode orders the results by the neighborhood_code field.
func ByNeighborhoodCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeighborhoodCode, opts...).ToFunc()
}

// ByBuildingNumber orders the results by the building_number field.
func ByBuildingNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildingNumber, opts...).ToFunc()
}

// ByBuildingTypeCode orders the results by the building_type_code field.
func ByBuildingTypeCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildingTypeCode, opts...).ToFunc()
}

// ByOccupancyStatusCode orders the results by the occupancy_status_code field.
func ByOccupancyStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccupancyStatusCode, opts...).ToFunc()
}

// ByNumberOfFloors orders the results by the number_of_floors field.
func ByNumberOfFloors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumberOfFloors, opts...).ToFunc()
}

// ByNumberOfUnits orders the results by the number_of_units field.
func ByNumberOfUnits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumberOfUnits, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
