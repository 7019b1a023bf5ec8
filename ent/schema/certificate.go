package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Certificate holds the schema definition for the production Certificate
// entity. Certificates are written by the wider claims system, never by the
// intake pipeline; the pipeline only repoints beneficiary_id during person
// merges.
type Certificate struct {
	ent.Schema
}

// Mixin of the Certificate.
func (Certificate) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Certificate.
func (Certificate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.String("certificate_number").
			NotEmpty().
			Unique(),
		field.UUID("claim_id", uuid.UUID{}),
		field.UUID("beneficiary_id", uuid.UUID{}),
		field.Time("issued_date").
			Optional().
			Nillable(),
		field.String("status_code").
			Optional(),
	}
}

// Indexes of the Certificate.
func (Certificate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("beneficiary_id"),
		index.Fields("claim_id"),
	}
}
