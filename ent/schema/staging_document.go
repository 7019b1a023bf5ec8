package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// StagingDocument holds the schema definition for the StagingDocument
// entity. The attachment hash is promoted for commit-time deduplication.
type StagingDocument struct {
	ent.Schema
}

// Mixin of the StagingDocument.
func (StagingDocument) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		StagingMixin{},
	}
}

// Fields of the StagingDocument.
func (StagingDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.JSON("payload", &domain.DocumentRecord{}),
		field.String("blob_sha256").
			Optional(),
	}
}

// Indexes of the StagingDocument.
func (StagingDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blob_sha256"),
	}
}
