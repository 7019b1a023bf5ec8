package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// StagingPropertyUnit holds the schema definition for the
// StagingPropertyUnit entity. The normalised unit identifier and the staged
// building's original id are promoted for duplicate detection.
type StagingPropertyUnit struct {
	ent.Schema
}

// Mixin of the StagingPropertyUnit.
func (StagingPropertyUnit) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		StagingMixin{},
	}
}

// Fields of the StagingPropertyUnit.
func (StagingPropertyUnit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.JSON("payload", &domain.PropertyUnitRecord{}),
		field.UUID("original_building_id", uuid.UUID{}).
			Immutable(),
		field.String("unit_identifier_normalized").
			Optional(),
	}
}

// Indexes of the StagingPropertyUnit.
func (StagingPropertyUnit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("original_building_id"),
	}
}
