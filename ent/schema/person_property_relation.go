package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PersonPropertyRelation holds the schema definition for the production
// PersonPropertyRelation entity: a person's tenure relation to a unit.
type PersonPropertyRelation struct {
	ent.Schema
}

// Mixin of the PersonPropertyRelation.
func (PersonPropertyRelation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		ProvenanceMixin{},
	}
}

// Fields of the PersonPropertyRelation.
func (PersonPropertyRelation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("person_id", uuid.UUID{}),
		field.UUID("property_unit_id", uuid.UUID{}),
		field.String("relation_type_code").
			NotEmpty(),
		field.Float("ownership_share").
			Min(0).
			Max(100),
		field.Time("start_date").
			Optional().
			Nillable(),
		field.String("notes").
			Optional(),
	}
}

// Indexes of the PersonPropertyRelation.
func (PersonPropertyRelation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("person_id"),
		index.Fields("property_unit_id"),
	}
}
