package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// DuplicateSuppression holds the schema definition for the
// DuplicateSuppression entity. A KeepSeparate / CreateNew decision records
// the pair's detection-key fingerprint here so the same pair is not
// re-surfaced on future packages while the keys are unchanged.
type DuplicateSuppression struct {
	ent.Schema
}

// Mixin of the DuplicateSuppression.
func (DuplicateSuppression) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // append-only
	}
}

// Fields of the DuplicateSuppression.
func (DuplicateSuppression) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.Enum("entity_type").
			Values(domain.ConflictEntityTypeValues()...).
			Immutable(),
		field.UUID("production_entity_id", uuid.UUID{}).
			Immutable(),
		field.String("fingerprint").
			NotEmpty().
			Immutable(), // sha256 hex over the normalised detection keys
		field.UUID("resolution_id", uuid.UUID{}).
			Immutable(),
		field.String("created_by").
			NotEmpty().
			Immutable(),
	}
}

// Indexes of the DuplicateSuppression.
func (DuplicateSuppression) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "production_entity_id", "fingerprint").
			Unique(),
	}
}
