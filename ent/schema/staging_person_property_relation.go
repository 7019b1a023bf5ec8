package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// StagingPersonPropertyRelation holds the schema definition for the
// StagingPersonPropertyRelation entity.
type StagingPersonPropertyRelation struct {
	ent.Schema
}

// Mixin of the StagingPersonPropertyRelation.
func (StagingPersonPropertyRelation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		StagingMixin{},
	}
}

// Fields of the StagingPersonPropertyRelation.
func (StagingPersonPropertyRelation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.JSON("payload", &domain.PersonPropertyRelationRecord{}),
	}
}
