package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// StagingBuilding holds the schema definition for the StagingBuilding
// entity. Staging rows copy the archive payload verbatim; the 17-digit
// building code is promoted to a column for duplicate detection.
type StagingBuilding struct {
	ent.Schema
}

// Mixin of the StagingBuilding.
func (StagingBuilding) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		StagingMixin{},
	}
}

// Fields of the StagingBuilding.
func (StagingBuilding) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.JSON("payload", &domain.BuildingRecord{}),
		field.String("building_code").
			Optional(), // composed from the administrative code parts at load
	}
}

// Indexes of the StagingBuilding.
func (StagingBuilding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("building_code"),
	}
}
