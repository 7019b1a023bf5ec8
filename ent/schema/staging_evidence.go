package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// StagingEvidence holds the schema definition for the StagingEvidence
// entity. The attachment hash is promoted for commit-time deduplication.
type StagingEvidence struct {
	ent.Schema
}

// Mixin of the StagingEvidence.
func (StagingEvidence) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		StagingMixin{},
	}
}

// Fields of the StagingEvidence.
func (StagingEvidence) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.JSON("payload", &domain.EvidenceRecord{}),
		field.String("blob_sha256").
			Optional(),
	}
}

// Indexes of the StagingEvidence.
func (StagingEvidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blob_sha256"),
	}
}
