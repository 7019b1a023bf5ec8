package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Referral holds the schema definition for the production Referral entity.
type Referral struct {
	ent.Schema
}

// Mixin of the Referral.
func (Referral) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		ProvenanceMixin{},
	}
}

// Fields of the Referral.
func (Referral) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("claim_id", uuid.UUID{}),
		field.String("referral_reason_code").
			NotEmpty(),
		field.String("referred_to_agency").
			Optional(),
		field.Time("referral_date").
			Optional().
			Nillable(),
		field.String("notes").
			Optional(),
	}
}

// Indexes of the Referral.
func (Referral) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("claim_id"),
	}
}
