package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Document holds the schema definition for the production Document entity.
type Document struct {
	ent.Schema
}

// Mixin of the Document.
func (Document) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		ProvenanceMixin{},
	}
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("claim_id", uuid.UUID{}),
		field.String("document_type_code").
			NotEmpty(),
		field.String("title").
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
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("claim_id"),
		index.Fields("blob_sha256"),
	}
}
