package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// ConflictResolution holds the schema definition for the ConflictResolution
// entity: one candidate-duplicate finding between a staged row and
// production, awaiting (or carrying) a reviewer decision. Decisions are
// write-once; the repository refuses a second resolve.
type ConflictResolution struct {
	ent.Schema
}

// Mixin of the ConflictResolution.
func (ConflictResolution) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ConflictResolution.
func (ConflictResolution) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("import_package_id", uuid.UUID{}).
			Immutable(),
		field.Enum("entity_type").
			Values(domain.ConflictEntityTypeValues()...).
			Immutable(),
		field.UUID("staging_entity_id", uuid.UUID{}).
			Immutable(), // the staged row's ORIGINAL archive id
		field.Float("score").
			Min(0).
			Max(100).
			Immutable(),
		field.UUID("suggested_master_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.JSON("candidates", []domain.Candidate{}).
			Optional(),

		field.Enum("status").
			Values(
				string(domain.ConflictUnresolved),
				string(domain.ConflictResolved),
			).
			Default(string(domain.ConflictUnresolved)),
		field.Enum("resolution").
			Values(domain.ResolutionValues()...).
			Optional().
			Nillable(),
		field.String("justification").
			Optional(), // mandatory on resolve, enforced in the resolver
		field.UUID("chosen_master_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.JSON("merge_mapping", map[string]int{}).
			Optional(), // repointed row counts per production table
		field.String("resolved_by").
			Optional(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ConflictResolution.
func (ConflictResolution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("import_package_id", "entity_type", "staging_entity_id").
			Unique(),
		index.Fields("import_package_id", "status"),
	}
}
