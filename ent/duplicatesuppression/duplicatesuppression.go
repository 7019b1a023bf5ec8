// Code generated by ent, DO NOT EDIT.

package duplicatesuppression

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the duplicatesuppression type in the database.
	Label = "duplicate_suppression"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldProductionEntityID holds the string denoting the production_entity_id field in the database.
	FieldProductionEntityID = "production_entity_id"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldResolutionID holds the string denoting the resolution_id field in the database.
	FieldResolutionID = "resolution_id"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// Table holds the table name of the duplicatesuppression in the database.
	Table = "duplicate_suppressions"
)

// Columns holds all SQL columns for duplicatesuppression fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldEntityType,
	FieldProductionEntityID,
	FieldFingerprint,
	FieldResolutionID,
	FieldCreatedBy,
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
	// FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	FingerprintValidator func(string) error
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
)

// EntityType defines the type for the "entity_type" enum field.
type EntityType string

// EntityType values.
const (
	EntityTypePerson       EntityType = "person"
	EntityTypeBuilding     EntityType = "building"
	EntityTypePropertyUnit EntityType = "property_unit"
)

func (et EntityType) String() string {
	return string(et)
}

// EntityTypeValidator is a validator for the "entity_type" field enum values. It is called by the builders before save.
func EntityTypeValidator(et EntityType) error {
	switch et {
	case EntityTypePerson, EntityTypeBuilding, EntityTypePropertyUnit:
		return nil
	default:
		return fmt.Errorf("duplicatesuppression: invalid enum value for entity_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the DuplicateSuppression queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByProductionEntityID orders the results by the production_entity_id field.
func ByProductionEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductionEntityID, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByResolutionID orders the results by the resolution_id field.
func ByResolutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionID, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}
