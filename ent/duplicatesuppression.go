// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/duplicatesuppression"
)

// DuplicateSuppression is the model entity for the DuplicateSuppression schema.
type DuplicateSuppression struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType duplicatesuppression.EntityType `json:"entity_type,omitempty"`
	// ProductionEntityID holds the value of the "production_entity_id" field.
	ProductionEntityID uuid.UUID `json:"production_entity_id,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// ResolutionID holds the value of the "resolution_id" field.
	ResolutionID uuid.UUID `json:"resolution_id,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy    string `json:"created_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DuplicateSuppression) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case duplicatesuppression.FieldEntityType, duplicatesuppression.FieldFingerprint, duplicatesuppression.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case duplicatesuppression.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case duplicatesuppression.FieldID, duplicatesuppression.FieldProductionEntityID, duplicatesuppression.FieldResolutionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DuplicateSuppression fields.
func (_m *DuplicateSuppression) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case duplicatesuppression.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case duplicatesuppression.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case duplicatesuppression.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = duplicatesuppression.EntityType(value.String)
			}
		case duplicatesuppression.FieldProductionEntityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field production_entity_id", values[i])
			} else if value != nil {
				_m.ProductionEntityID = *value
			}
		case duplicatesuppression.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case duplicatesuppression.FieldResolutionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_id", values[i])
			} else if value != nil {
				_m.ResolutionID = *value
			}
		case duplicatesuppression.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DuplicateSuppression.
// This includes values selected through modifiers, order, etc.
func (_m *DuplicateSuppression) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DuplicateSuppression.
// Note that you need to call DuplicateSuppression.Unwrap() before calling this method if this DuplicateSuppression
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DuplicateSuppression) Update() *DuplicateSuppressionUpdateOne {
	return NewDuplicateSuppressionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DuplicateSuppression entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DuplicateSuppression) Unwrap() *DuplicateSuppression {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DuplicateSuppression is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DuplicateSuppression) String() string {
	var builder strings.Builder
	builder.WriteString("DuplicateSuppression(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityType))
	builder.WriteString(", ")
	builder.WriteString("production_entity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductionEntityID))
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("resolution_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResolutionID))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// DuplicateSuppressions is a parsable slice of DuplicateSuppression.
type DuplicateSuppressions []*DuplicateSuppression
