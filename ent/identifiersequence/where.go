// Code generated by ent, DO NOT EDIT.

package identifiersequence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"uhc-registry.io/registry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldEQ(FieldUpdatedAt, v))
}

// NextValue applies equality check predicate on the "next_value" field. It's identical to NextValueEQ.
func NextValue(v int64) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldEQ(FieldNextValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldLTE(FieldUpdatedAt, v))
}

// NextValueEQ applies the EQ predicate on the "next_value" field.
func NextValueEQ(v int64) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldEQ(FieldNextValue, v))
}

// NextValueNEQ applies the NEQ predicate on the "next_value" field.
func NextValueNEQ(v int64) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldNEQ(FieldNextValue, v))
}

// NextValueIn applies the In predicate on the "next_value" field.
func NextValueIn(vs ...int64) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldIn(FieldNextValue, vs...))
}

// NextValueNotIn applies the NotIn predicate on the "next_value" field.
func NextValueNotIn(vs ...int64) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldNotIn(FieldNextValue, vs...))
}

// NextValueGT applies the GT predicate on the "next_value" field.
func NextValueGT(v int64) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldGT(FieldNextValue, v))
}

// NextValueGTE applies the GTE predicate on the "next_value" field.
func NextValueGTE(v int64) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldGTE(FieldNextValue, v))
}

// NextValueLT applies the LT predicate on the "next_value" field.
func NextValueLT(v int64) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldLT(FieldNextValue, v))
}

// NextValueLTE applies the LTE predicate on the "next_value" field.
func NextValueLTE(v int64) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.FieldLTE(FieldNextValue, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IdentifierSequence) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IdentifierSequence) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IdentifierSequence) predicate.IdentifierSequence {
	return predicate.IdentifierSequence(sql.NotPredicates(p))
}
