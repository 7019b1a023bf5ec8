package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// Claim holds the schema definition for the production Claim entity.
// Claims arriving from field devices always enter production as
// draft_pending_submission regardless of the staged lifecycle value.
type Claim struct {
	ent.Schema
}

// Mixin of the Claim.
func (Claim) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		ProvenanceMixin{},
	}
}

// Fields of the Claim.
func (Claim) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.String("claim_number").
			NotEmpty().
			Unique(), // CLM-YYYY-NNNNNNNNN
		field.UUID("property_unit_id", uuid.UUID{}),
		field.UUID("primary_claimant_id", uuid.UUID{}),
		field.String("claim_type_code").
			NotEmpty(),
		field.String("status_code").
			Default(domain.ClaimStatusDraftPendingSubmission),
		field.Float("claimed_share").
			Min(0).
			Max(100),
		field.Time("submission_date").
			Optional().
			Nillable(),
		field.String("notes").
			Optional(),
	}
}

// Indexes of the Claim.
func (Claim) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("property_unit_id"),
		index.Fields("primary_claimant_id"),
		index.Fields("status_code"),
	}
}
