package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Survey holds the schema definition for the production Survey entity.
type Survey struct {
	ent.Schema
}

// Mixin of the Survey.
func (Survey) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		ProvenanceMixin{},
	}
}

// Fields of the Survey.
func (Survey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("building_id", uuid.UUID{}),
		field.String("survey_type_code").
			NotEmpty(),
		field.Time("survey_date").
			Optional().
			Nillable(),
		field.String("surveyor_name").
			Optional(),
		field.String("notes").
			Optional(),
	}
}

// Indexes of the Survey.
func (Survey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("building_id"),
	}
}
