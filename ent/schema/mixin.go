// Package schema contains Ent schema definitions for the Tenure Registry
// intake service.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// TimeMixin adds created_at and updated_at fields to schemas.
// Ent best practice: use mixin for shared timestamp fields.
type TimeMixin struct {
	mixin.Schema
}

// Fields of the TimeMixin.
func (TimeMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// AuditMixin adds created_at (immutable, no updated_at) for append-only tables.
type AuditMixin struct {
	mixin.Schema
}

// Fields of the AuditMixin.
func (AuditMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// StagingMixin carries the intake bookkeeping shared by every staging table:
// the owning package, the original archive UUID, the validation outcome and
// the commit mapping. (import_package_id, original_entity_id) is unique per
// table; committed_entity_id is write-once.
type StagingMixin struct {
	mixin.Schema
}

// Fields of the StagingMixin.
func (StagingMixin) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("import_package_id", uuid.UUID{}).
			Immutable(),
		field.UUID("original_entity_id", uuid.UUID{}).
			Immutable(),
		field.Enum("validation_status").
			Values(domain.ValidationStatusValues()...).
			Default(string(domain.RowPending)),
		field.JSON("diagnostics", []domain.Diagnostic{}).
			Optional(),
		field.Bool("approved_for_commit").
			Default(false),
		field.UUID("committed_entity_id", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

// Indexes of the StagingMixin.
func (StagingMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("import_package_id", "original_entity_id").
			Unique(),
		index.Fields("import_package_id", "validation_status"),
	}
}

// ProvenanceMixin stamps production rows with the package that created them.
type ProvenanceMixin struct {
	mixin.Schema
}

// Fields of the ProvenanceMixin.
func (ProvenanceMixin) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("source_package_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
	}
}
