package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// StagingHousehold holds the schema definition for the StagingHousehold entity.
type StagingHousehold struct {
	ent.Schema
}

// Mixin of the StagingHousehold.
func (StagingHousehold) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		StagingMixin{},
	}
}

// Fields of the StagingHousehold.
func (StagingHousehold) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.JSON("payload", &domain.HouseholdRecord{}),
	}
}
