// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/personpropertyrelation"
)

// PersonPropertyRelation is the model entity for the PersonPropertyRelation schema.
type PersonPropertyRelation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SourcePackageID holds the value of the "source_package_id" field.
	SourcePackageID *uuid.UUID `json:"source_package_id,omitempty"`
	// PersonID holds the value of the "person_id" field.
	PersonID uuid.UUID `json:"person_id,omitempty"`
	// PropertyUnitID holds the value of the "property_unit_id" field.
	PropertyUnitID uuid.UUID `json:"property_unit_id,omitempty"`
	// RelationTypeCode holds the value of the "relation_type_code" field.
	RelationTypeCode string `json:"relation_type_code,omitempty"`
	// OwnershipShare holds the value of the "ownership_share" field.
	OwnershipShare float64 `json:"ownership_share,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate *time.Time `json:"start_date,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes        string `json:"notes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PersonPropertyRelation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case personpropertyrelation.FieldSourcePackageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case personpropertyrelation.FieldOwnershipShare:
			values[i] = new(sql.NullFloat64)
		case personpropertyrelation.FieldRelationTypeCode, personpropertyrelation.FieldNotes:
			values[i] = new(sql.NullString)
		case personpropertyrelation.FieldCreatedAt, personpropertyrelation.FieldUpdatedAt, personpropertyrelation.FieldStartDate:
			values[i] = new(sql.NullTime)
		case personpropertyrelation.FieldID, personpropertyrelation.FieldPersonID, personpropertyrelation.FieldPropertyUnitID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PersonPropertyRelation fields.
func (_m *PersonPropertyRelation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case personpropertyrelation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case personpropertyrelation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case personpropertyrelation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case personpropertyrelation.FieldSourcePackageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field source_package_id", values[i])
			} else if value.Valid {
				_m.SourcePackageID = new(uuid.UUID)
				*_m.SourcePackageID = *value.S.(*uuid.UUID)
			}
		case personpropertyrelation.FieldPersonID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field person_id", values[i])
			} else if value != nil {
				_m.PersonID = *value
			}
		case personpropertyrelation.FieldPropertyUnitID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field property_unit_id", values[i])
			} else if value != nil {
				_m.PropertyUnitID = *value
			}
		case personpropertyrelation.FieldRelationTypeCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relation_type_code", values[i])
			} else if value.Valid {
				_m.RelationTypeCode = value.String
			}
		case personpropertyrelation.FieldOwnershipShare:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ownership_share", values[i])
			} else if value.Valid {
				_m.OwnershipShare = value.Float64
			}
		case personpropertyrelation.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = new(time.Time)
				*_m.StartDate = value.Time
			}
		case personpropertyrelation.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PersonPropertyRelation.
// This includes values selected through modifiers, order, etc.
func (_m *PersonPropertyRelation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PersonPropertyRelation.
// Note that you need to call PersonPropertyRelation.Unwrap() before calling this method if this PersonPropertyRelation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PersonPropertyRelation) Update() *PersonPropertyRelationUpdateOne {
	return NewPersonPropertyRelationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PersonPropertyRelation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PersonPropertyRelation) Unwrap() *PersonPropertyRelation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PersonPropertyRelation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PersonPropertyRelation) String() string {
	var builder strings.Builder
	builder.WriteString("PersonPropertyRelation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SourcePackageID; v != nil {
		builder.WriteString("source_package_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("person_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PersonID))
	builder.WriteString(", ")
	builder.WriteString("property_unit_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PropertyUnitID))
	builder.WriteString(", ")
	builder.WriteString("relation_type_code=")
	builder.WriteString(_m.RelationTypeCode)
	builder.WriteString(", ")
	builder.WriteString("ownership_share=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnershipShare))
	builder.WriteString(", ")
	if v := _m.StartDate; v != nil {
		builder.WriteString("start_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteByte(')')
	return builder.String()
}

// PersonPropertyRelations is a parsable slice of PersonPropertyRelation.
type PersonPropertyRelations []*PersonPropertyRelation
