package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PropertyUnit holds the schema definition for the production PropertyUnit
// entity. The composite identifier (building id + normalised unit
// identifier) is unique.
type PropertyUnit struct {
	ent.Schema
}

// Mixin of the PropertyUnit.
func (PropertyUnit) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		ProvenanceMixin{},
	}
}

// Fields of the PropertyUnit.
func (PropertyUnit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("building_id", uuid.UUID{}),
		field.String("unit_identifier").
			NotEmpty(),
		field.String("composite_identifier").
			NotEmpty().
			Unique(), // "<building_id>/<normalised unit identifier>"
		field.Int("floor_number").
			Default(0),
		field.String("unit_type_code").
			Optional(),
		field.String("occupancy_status_code").
			Optional(),
		field.Float("area_sqm").
			Optional(),
		field.Int("room_count").
			Optional(),
		field.String("notes").
			Optional(),
	}
}

// Indexes of the PropertyUnit.
func (PropertyUnit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("building_id"),
	}
}
