// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/propertyunit"
)

// PropertyUnit is the model entity for the PropertyUnit schema.
type PropertyUnit struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SourcePackageID holds the value of the "source_package_id" field.
	SourcePackageID *uuid.UUID `json:"source_package_id,omitempty"`
	// BuildingID holds the value of the "building_id" field.
	BuildingID uuid.UUID `json:"building_id,omitempty"`
	// UnitIdentifier holds the value of the "unit_identifier" field.
	UnitIdentifier string `json:"unit_identifier,omitempty"`
	// CompositeIdentifier holds the value of the "composite_identifier" field.
	CompositeIdentifier string `json:"composite_identifier,omitempty"`
	// FloorNumber holds the value of the "floor_number" field.
	FloorNumber int `json:"floor_number,omitempty"`
	// UnitTypeCode holds the value of the "unit_type_code" field.
	UnitTypeCode string `json:"unit_type_code,omitempty"`
	// OccupancyStatusCode holds the value of the "occupancy_status_code" field.
	OccupancyStatusCode string `json:"occupancy_status_code,omitempty"`
	// AreaSqm holds the value of the "area_sqm" field.
	AreaSqm float64 `json:"area_sqm,omitempty"`
	// RoomCount holds the value of the "room_count" field.
	RoomCount int `json:"room_count,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes        string `json:"notes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PropertyUnit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case propertyunit.FieldSourcePackageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case propertyunit.FieldAreaSqm:
			values[i] = new(sql.NullFloat64)
		case propertyunit.FieldFloorNumber, propertyunit.FieldRoomCount:
			values[i] = new(sql.NullInt64)
		case propertyunit.FieldUnitIdentifier, propertyunit.FieldCompositeIdentifier, propertyunit.FieldUnitTypeCode, propertyunit.FieldOccupancyStatusCode, propertyunit.FieldNotes:
			values[i] = new(sql.NullString)
		case propertyunit.FieldCreatedAt, propertyunit.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case propertyunit.FieldID, propertyunit.FieldBuildingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PropertyUnit fields.
func (_m *PropertyUnit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case propertyunit.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case propertyunit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case propertyunit.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case propertyunit.FieldSourcePackageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field source_package_id", values[i])
			} else if value.Valid {
				_m.SourcePackageID = new(uuid.UUID)
				*_m.SourcePackageID = *value.S.(*uuid.UUID)
			}
		case propertyunit.FieldBuildingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field building_id", values[i])
			} else if value != nil {
				_m.BuildingID = *value
			}
		case propertyunit.FieldUnitIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_identifier", values[i])
			} else if value.Valid {
				_m.UnitIdentifier = value.String
			}
		case propertyunit.FieldCompositeIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field composite_identifier", values[i])
			} else if value.Valid {
				_m.CompositeIdentifier = value.String
			}
		case propertyunit.FieldFloorNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field floor_number", values[i])
			} else if value.Valid {
				_m.FloorNumber = int(value.Int64)
			}
		case propertyunit.FieldUnitTypeCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_type_code", values[i])
			} else if value.Valid {
				_m.UnitTypeCode = value.String
			}
		case propertyunit.FieldOccupancyStatusCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field occupancy_status_code", values[i])
			} else if value.Valid {
				_m.OccupancyStatusCode = value.String
			}
		case propertyunit.FieldAreaSqm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field area_sqm", values[i])
			} else if value.Valid {
				_m.AreaSqm = value.Float64
			}
		case propertyunit.FieldRoomCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field room_count", values[i])
			} else if value.Valid {
				_m.RoomCount = int(value.Int64)
			}
		case propertyunit.FieldNotes:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PropertyUnit.
// This includes values selected through modifiers, order, etc.
func (_m *PropertyUnit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PropertyUnit.
// Note that you need to call PropertyUnit.Unwrap() before calling this method if this PropertyUnit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PropertyUnit) Update() *PropertyUnitUpdateOne {
	return NewPropertyUnitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PropertyUnit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PropertyUnit) Unwrap() *PropertyUnit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PropertyUnit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PropertyUnit) String() string {
	var builder strings.Builder
	builder.WriteString("PropertyUnit(")
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
	builder.WriteString("building_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuildingID))
	builder.WriteString(", ")
	builder.WriteString("unit_identifier=")
	builder.WriteString(_m.UnitIdentifier)
	builder.WriteString(", ")
	builder.WriteString("composite_identifier=")
	builder.WriteString(_m.CompositeIdentifier)
	builder.WriteString(", ")
	builder.WriteString("floor_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.FloorNumber))
	builder.WriteString(", ")
	builder.WriteString("unit_type_code=")
	builder.WriteString(_m.UnitTypeCode)
	builder.WriteString(", ")
	builder.WriteString("occupancy_status_code=")
	builder.WriteString(_m.OccupancyStatusCode)
	builder.WriteString(", ")
	builder.WriteString("area_sqm=")
	builder.WriteString(fmt.Sprintf("%v", _m.AreaSqm))
	builder.WriteString(", ")
	builder.WriteString("room_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoomCount))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteByte(')')
	return builder.String()
}

// PropertyUnits is a parsable slice of PropertyUnit.
type PropertyUnits []*PropertyUnit
