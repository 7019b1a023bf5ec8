// Code generated by ent, DO NOT EDIT.

package conflictresolution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the conflictresolution type in the database.
	Label = "conflict_resolution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldImportPackageID holds the string denoting the import_package_id field in the database.
	FieldImportPackageID = "import_package_id"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldStagingEntityID holds the string denoting the staging_entity_id field in the database.
	FieldStagingEntityID = "staging_entity_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldSuggestedMasterID holds the string denoting the suggested_master_id field in the database.
	FieldSuggestedMasterID = "suggested_master_id"
	// FieldCandidates holds the string denoting the candidates field in the database.
	FieldCandidates = "candidates"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResolution holds the string denoting the resolution field in the database.
	FieldResolution = "resolution"
	// FieldJustification holds the string denoting the justification field in the database.
	FieldJustification = "justification"
	// FieldChosenMasterID holds the string denoting the chosen_master_id field in the database.
	FieldChosenMasterID = "chosen_master_id"
	// FieldMergeMapping holds the string denoting the merge_mapping field in the database.
	FieldMergeMapping = "merge_mapping"
	// FieldResolvedBy holds the string denoting the resolved_by field in the database.
	FieldResolvedBy = "resolved_by"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// Table holds the table name of the conflictresolution in the database.
	Table = "conflict_resolutions"
)

// Columns holds all SQL columns for conflictresolution fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldImportPackageID,
	FieldEntityType,
	FieldStagingEntityID,
	FieldScore,
	FieldSuggestedMasterID,
	FieldCandidates,
	FieldStatus,
	FieldResolution,
	FieldJustification,
	FieldChosenMasterID,
	FieldMergeMapping,
	FieldResolvedBy,
	FieldResolvedAt,
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
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(float64) error
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
		return fmt.Errorf("conflictresolution: invalid enum value for entity_type field: %q", et)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusUNRESOLVED is the default value of the Status enum.
const DefaultStatus = StatusUNRESOLVED

// Status values.
const (
	StatusUNRESOLVED Status = "UNRESOLVED"
	StatusRESOLVED   Status = "RESOLVED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusUNRESOLVED, StatusRESOLVED:
		return nil
	default:
		return fmt.Errorf("conflictresolution: invalid enum value for status field: %q", s)
	}
}

// Resolution defines the type for the "resolution" enum field.
type Resolution string

// Resolution values.
const (
	ResolutionMERGE            Resolution = "MERGE"
	ResolutionLINK_TO_EXISTING Resolution = "LINK_TO_EXISTING"
	ResolutionKEEP_SEPARATE    Resolution = "KEEP_SEPARATE"
	ResolutionCREATE_NEW       Resolution = "CREATE_NEW"
)

func (r Resolution) String() string {
	return string(r)
}

// ResolutionValidator is a validator for the "resolution" field enum values. It is called by the builders before save.
func ResolutionValidator(r Resolution) error {
	switch r {
	case ResolutionMERGE, ResolutionLINK_TO_EXISTING, ResolutionKEEP_SEPARATE, ResolutionCREATE_NEW:
		return nil
	default:
		return fmt.Errorf("conflictresolution: invalid enum value for resolution field: %q", r)
	}
}

// OrderOption defines the ordering options for the ConflictResolution queries.
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

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByStagingEntityID orders the results by the staging_entity_id field.
func ByStagingEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStagingEntityID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// BySuggestedMasterID orders the results by the suggested_master_id field.
func BySuggestedMasterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedMasterID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResolution orders the results by the resolution field.
func ByResolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolution, opts...).ToFunc()
}

// ByJustification orders the results by the justification field.
func ByJustification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJustification, opts...).ToFunc()
}

// ByChosenMasterID orders the results by the chosen_master_id field.
func ByChosenMasterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChosenMasterID, opts...).ToFunc()
}

// ByResolvedBy orders the results by the resolved_by field.
func ByResolvedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedBy, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}
