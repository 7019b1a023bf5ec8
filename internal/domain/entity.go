package domain

// EntityType identifies one of the staged/committed record types carried by
// a field package.
type EntityType string

const (
	EntityBuilding               EntityType = "building"
	EntityPropertyUnit           EntityType = "property_unit"
	EntityPerson                 EntityType = "person"
	EntityHousehold              EntityType = "household"
	EntityPersonPropertyRelation EntityType = "person_property_relation"
	EntityEvidence               EntityType = "evidence"
	EntitySurvey                 EntityType = "survey"
	EntityClaim                  EntityType = "claim"
	EntityDocument               EntityType = "document"
	EntityReferral               EntityType = "referral"
)

// EntityOrder is the fixed topological order shared by the staging loader
// and the commit engine: parents before children, referrals last.
var EntityOrder = []EntityType{
	EntityBuilding,
	EntityPropertyUnit,
	EntityPerson,
	EntityHousehold,
	EntityPersonPropertyRelation,
	EntityEvidence,
	EntitySurvey,
	EntityClaim,
	EntityDocument,
	EntityReferral,
}

// archiveTables maps entity types to their table names inside a .uhc file.
var archiveTables = map[EntityType]string{
	EntityBuilding:               "buildings",
	EntityPropertyUnit:           "property_units",
	EntityPerson:                 "persons",
	EntityHousehold:              "households",
	EntityPersonPropertyRelation: "person_property_relations",
	EntityEvidence:               "evidences",
	EntitySurvey:                 "surveys",
	EntityClaim:                  "claims",
	EntityDocument:               "documents",
	EntityReferral:               "referrals",
}

// ArchiveTable returns the .uhc table name for an entity type.
func (e EntityType) ArchiveTable() string {
	return archiveTables[e]
}

// ValidEntityType reports whether s names a known entity type.
func ValidEntityType(s string) bool {
	_, ok := archiveTables[EntityType(s)]
	return ok
}

// ConflictEntityType is the subset of entity types that participate in
// duplicate detection.
type ConflictEntityType string

const (
	ConflictPerson       ConflictEntityType = "person"
	ConflictBuilding     ConflictEntityType = "building"
	ConflictPropertyUnit ConflictEntityType = "property_unit"
)

// EntityType widens a conflict entity type back to the full enum; the
// string values coincide.
func (c ConflictEntityType) EntityType() EntityType {
	return EntityType(c)
}

// ConflictEntityTypeValues lists the conflict entity types for ent enums.
func ConflictEntityTypeValues() []string {
	return []string{
		string(ConflictPerson),
		string(ConflictBuilding),
		string(ConflictPropertyUnit),
	}
}
