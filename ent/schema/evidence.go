package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Evidence holds the schema definition for the production Evidence entity.
// Attachment blobs live in the content-addressed blob store; rows carry the
// hash and the store path.
type Evidence struct {
	ent.Schema
}

// Mixin of the Evidence.
func (Evidence) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		ProvenanceMixin{},
	}
}

// Fields of the Evidence.
func (Evidence) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("person_id", uuid.UUID{}),
		field.String("evidence_type_code").
			NotEmpty(),
		field.String("document_number").
			Optional(),
		field.Time("issued_date").
			Optional().
			Nillable(),
		field.String("issuing_authority").
			Optional(),
		field.String("blob_sha256").
			Optional(),
		field.String("blob_path").
			Optional(),
		field.Int64("blob_size_bytes").
			NonNegative().
			Default(0),
		field.String("file_name").
			Optional(),
		field.String("content_type").
			Optional(),
		field.String("notes").
			Optional(),
	}
}

// Indexes of the Evidence.
func (Evidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("person_id"),
		index.Fields("blob_sha256"),
	}
}
