package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Building holds the schema definition for the production Building entity.
// The 17-digit building code composed from the administrative code parts is
// the business identifier and is globally unique.
type Building struct {
	ent.Schema
}

// Mixin of the Building.
func (Building) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		ProvenanceMixin{},
	}
}

// Fields of the Building.
func (Building) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.String("building_code").
			NotEmpty().
			Unique(), // gov(2)+district(2)+subdistrict(2)+community(3)+neighborhood(3)+building(5)
		field.String("governorate_code").
			NotEmpty(),
		field.String("district_code").
			NotEmpty(),
		field.String("sub_district_code").
			NotEmpty(),
		field.String("community_code").
			NotEmpty(),
		field.String("neighborhood_code").
			NotEmpty(),
		field.String("building_number").
			NotEmpty(),
		field.String("building_type_code").
			Optional(),
		field.String("occupancy_status_code").
			Optional(),
		field.Int("number_of_floors").
			NonNegative().
			Default(0),
		field.Int("number_of_units").
			NonNegative().
			Default(0),
		field.String("address").
			Optional(),
		field.Float("latitude").
			Optional(),
		field.Float("longitude").
			Optional(),
		field.String("notes").
			Optional(),
	}
}

// Indexes of the Building.
func (Building) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("governorate_code", "district_code"),
	}
}
