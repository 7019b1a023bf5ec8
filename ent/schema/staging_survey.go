package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// StagingSurvey holds the schema definition for the StagingSurvey entity.
type StagingSurvey struct {
	ent.Schema
}

// Mixin of the StagingSurvey.
func (StagingSurvey) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		StagingMixin{},
	}
}

// Fields of the StagingSurvey.
func (StagingSurvey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.JSON("payload", &domain.SurveyRecord{}),
	}
}
