package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// StagingClaim holds the schema definition for the StagingClaim entity.
type StagingClaim struct {
	ent.Schema
}

// Mixin of the StagingClaim.
func (StagingClaim) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		StagingMixin{},
	}
}

// Fields of the StagingClaim.
func (StagingClaim) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.JSON("payload", &domain.ClaimRecord{}),
	}
}
