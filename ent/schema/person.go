package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Person holds the schema definition for the production Person entity.
// Normalised name columns and year_of_birth exist purely as duplicate-
// detection blocking keys and are maintained alongside the display names.
type Person struct {
	ent.Schema
}

// Mixin of the Person.
func (Person) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		ProvenanceMixin{},
	}
}

// Fields of the Person.
func (Person) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.String("first_name").
			NotEmpty(),
		field.String("father_name").
			Optional(),
		field.String("family_name").
			NotEmpty(),
		field.String("mother_name").
			Optional(),
		field.String("first_name_normalized").
			Optional(),
		field.String("father_name_normalized").
			Optional(),
		field.String("family_name_normalized").
			Optional(),
		field.String("national_id").
			Optional(),
		field.Time("date_of_birth").
			Optional().
			Nillable(),
		field.Int("year_of_birth").
			Optional(), // zero when date of birth is unknown
		field.String("gender_code").
			Optional(),
		field.String("nationality_code").
			Optional(),
		field.String("governorate_code").
			Optional(),
		field.String("phone_number").
			Optional(),
	}
}

// Indexes of the Person.
func (Person) Indexes() []ent.Index {
	return []ent.Index{
		// National id is unique within a governorate, not globally; the
		// validator probes this pair, detection blocks on national_id alone.
		index.Fields("governorate_code", "national_id"),
		index.Fields("national_id"),
		index.Fields("year_of_birth", "gender_code"),
	}
}
