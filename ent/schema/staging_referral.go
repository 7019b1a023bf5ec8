package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// StagingReferral holds the schema definition for the StagingReferral entity.
type StagingReferral struct {
	ent.Schema
}

// Mixin of the StagingReferral.
func (StagingReferral) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		StagingMixin{},
	}
}

// Fields of the StagingReferral.
func (StagingReferral) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.JSON("payload", &domain.ReferralRecord{}),
	}
}
