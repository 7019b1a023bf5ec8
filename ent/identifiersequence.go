// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"uhc-registry.io/registry/ent/identifiersequence"
)

// IdentifierSequence is the model entity for the IdentifierSequence schema.
type IdentifierSequence struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// NextValue holds the value of the "next_value" field.
	NextValue    int64 `json:"next_value,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IdentifierSequence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case identifiersequence.FieldNextValue:
			values[i] = new(sql.NullInt64)
		case identifiersequence.FieldID:
			values[i] = new(sql.NullString)
		case identifiersequence.FieldCreatedAt, identifiersequence.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IdentifierSequence fields.
func (_m *IdentifierSequence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case identifiersequence.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case identifiersequence.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case identifiersequence.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case identifiersequence.FieldNextValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field next_value", values[i])
			} else if value.Valid {
				_m.NextValue = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IdentifierSequence.
// This includes values selected through modifiers, order, etc.
func (_m *IdentifierSequence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IdentifierSequence.
// Note that you need to call IdentifierSequence.Unwrap() before calling this method if this IdentifierSequence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IdentifierSequence) Update() *IdentifierSequenceUpdateOne {
	return NewIdentifierSequenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IdentifierSequence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IdentifierSequence) Unwrap() *IdentifierSequence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IdentifierSequence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IdentifierSequence) String() string {
	var builder strings.Builder
	builder.WriteString("IdentifierSequence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("next_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.NextValue))
	builder.WriteByte(')')
	return builder.String()
}

// IdentifierSequences is a parsable slice of IdentifierSequence.
type IdentifierSequences []*IdentifierSequence
