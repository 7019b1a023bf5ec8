package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// IdentifierSequence holds the schema definition for the IdentifierSequence
// entity: per-scope monotone counters backing business identifiers
// (package numbers, claim numbers). Scope examples: "package:2026",
// "claim:2026". Allocation happens under SELECT ... FOR UPDATE inside the
// caller's transaction so concurrent commits never emit duplicates.
type IdentifierSequence struct {
	ent.Schema
}

// Mixin of the IdentifierSequence.
func (IdentifierSequence) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the IdentifierSequence.
func (IdentifierSequence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(), // the scope string
		field.Int64("next_value").
			Positive().
			Default(1),
	}
}
