package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Household holds the schema definition for the production Household entity.
type Household struct {
	ent.Schema
}

// Mixin of the Household.
func (Household) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		ProvenanceMixin{},
	}
}

// Fields of the Household.
func (Household) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("head_of_household_id", uuid.UUID{}),
		field.Int("household_size").
			NonNegative(),
		field.Int("males_under_18").
			NonNegative().
			Default(0),
		field.Int("females_under_18").
			NonNegative().
			Default(0),
		field.Int("males_adult").
			NonNegative().
			Default(0),
		field.Int("females_adult").
			NonNegative().
			Default(0),
		field.String("residency_status_code").
			Optional(),
		field.String("displacement_origin_governorate").
			Optional(),
	}
}

// Indexes of the Household.
func (Household) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("head_of_household_id"),
	}
}
