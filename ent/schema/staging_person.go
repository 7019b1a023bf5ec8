package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// StagingPerson holds the schema definition for the StagingPerson entity.
// Normalised name parts, national id, year of birth and gender are promoted
// from the payload so duplicate detection can block and score without
// decoding JSON per row.
type StagingPerson struct {
	ent.Schema
}

// Mixin of the StagingPerson.
func (StagingPerson) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		StagingMixin{},
	}
}

// Fields of the StagingPerson.
func (StagingPerson) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.JSON("payload", &domain.PersonRecord{}),
		field.String("first_name_normalized").
			Optional(),
		field.String("father_name_normalized").
			Optional(),
		field.String("family_name_normalized").
			Optional(),
		field.String("national_id").
			Optional(),
		field.Int("year_of_birth").
			Optional(), // zero when date of birth is unknown
		field.String("gender_code").
			Optional(),
	}
}

// Indexes of the StagingPerson.
func (StagingPerson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("national_id"),
	}
}
