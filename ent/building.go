// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/building"
)

// Building is the model entity for the Building schema.
type Building struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SourcePackageID holds the value of the "source_package_id" field.
	SourcePackageID *uuid.UUID `json:"source_package_id,omitempty"`
	// BuildingCode holds the value of the "building_code" field.
	BuildingCode string `json:"building_code,omitempty"`
	// GovernorateCode holds the value of the "governorate_code" field.
	GovernorateCode string `json:"governorate_code,omitempty"`
	// DistrictCode holds the value of the "district_code" field.
	DistrictCode string `json:"district_code,omitempty"`
	// SubDistrictCode holds the value of the "sub_district_code" field.
	SubDistrictCode string `json:"sub_district_code,omitempty"`
	// CommunityCode holds the value of the "community_code" field.
	CommunityCode string `json:"community_code,omitempty"`
	// NeighborhoodCode holds the value of the "neighborhood_code" field.
	NeighborhoodCode string `json:"neighborhood_code,omitempty"`
	// BuildingNumber holds the value of the "building_number" field.
	BuildingNumber string `json:"building_number,omitempty"`
	// BuildingTypeCode holds the value of the "building_type_code" field.
	BuildingTypeCode string `json:"building_type_code,omitempty"`
	// OccupancyStatusCode holds the value of the "occupancy_status_code" field.
	OccupancyStatusCode string `json:"occupancy_status_code,omitempty"`
	// NumberOfFloors holds the value of the "number_of_floors" field.
	NumberOfFloors int `json:"number_of_floors,omitempty"`
	// NumberOfUnits holds the value of the "number_of_units" field.
	NumberOfUnits int `json:"number_of_units,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// Latitude holds the value of the "latitude" field.
	Latitude float64 `json:"latitude,omitempty"`
	// Longitude holds the value of the "longitude" field.
	Longitude float64 `json:"longitude,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes        string `json:"notes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Building) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case building.FieldSourcePackageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case building.FieldLatitude, building.FieldLongitude:
			values[i] = new(sql.NullFloat64)
		case building.FieldNumberOfFloors, building.FieldNumberOfUnits:
			values[i] = new(sql.NullInt64)
		case building.FieldBuildingCode, building.FieldGovernorateCode, building.FieldDistrictCode, building.FieldSubDistrictCode, building.FieldCommunityCode, building.FieldNeighborhoodCode, building.FieldBuildingNumber, building.FieldBuildingTypeCode, building.FieldOccupancyStatusCode, building.FieldAddress, building.FieldNotes:
			values[i] = new(sql.NullString)
		case building.FieldCreatedAt, building.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case building.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Building fields.
func (_m *Building) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case building.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case building.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case building.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case building.FieldSourcePackageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field source_package_id", values[i])
			} else if value.Valid {
				_m.SourcePackageID = new(uuid.UUID)
				*_m.SourcePackageID = *value.S.(*uuid.UUID)
			}
		case building.FieldBuildingCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field building_code", values[i])
			} else if value.Valid {
				_m.BuildingCode = value.String
			}
		case building.FieldGovernorateCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field governorate_code", values[i])
			} else if value.Valid {
				_m.GovernorateCode = value.String
			}
		case building.FieldDistrictCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field district_code", values[i])
			} else if value.Valid {
				_m.DistrictCode = value.String
			}
		case building.FieldSubDistrictCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_district_code", values[i])
			} else if value.Valid {
				_m.SubDistrictCode = value.String
			}
		case building.FieldCommunityCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field community_code", values[i])
			} else if value.Valid {
				_m.CommunityCode = value.String
			}
		case building.FieldNeighborhoodCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field neighborhood_code", values[i])
			} else if value.Valid {
				_m.NeighborhoodCode = value.String
			}
		case building.FieldBuildingNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field building_number", values[i])
			} else if value.Valid {
				_m.BuildingNumber = value.String
			}
		case building.FieldBuildingTypeCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field building_type_code", values[i])
			} else if value.Valid {
				_m.BuildingTypeCode = value.String
			}
		case building.FieldOccupancyStatusCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field occupancy_status_code", values[i])
			} else if value.Valid {
				_m.OccupancyStatusCode = value.String
			}
		case building.FieldNumberOfFloors:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number_of_floors", values[i])
			} else if value.Valid {
				_m.NumberOfFloors = int(value.Int64)
			}
		case building.FieldNumberOfUnits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number_of_units", values[i])
			} else if value.Valid {
				_m.NumberOfUnits = int(value.Int64)
			}
		case building.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case building.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = value.Float64
			}
		case building.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = value.Float64
			}
		case building.FieldNotes:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Building.
// This includes values selected through modifiers, order, etc.
func (_m *Building) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Building.
// Note that you need to call Building.Unwrap() before calling this method if this Building
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Building) Update() *BuildingUpdateOne {
	return NewBuildingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Building entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Building) Unwrap() *Building {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Building is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Building) String() string {
	var builder strings.Builder
	builder.WriteString("Building(")
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
	builder.WriteString("building_code=")
	builder.WriteString(_m.BuildingCode)
	builder.WriteString(", ")
	builder.WriteString("governorate_code=")
	builder.WriteString(_m.GovernorateCode)
	builder.WriteString(", ")
	builder.WriteString("district_code=")
	builder.WriteString(_m.DistrictCode)
	builder.WriteString(", ")
	builder.WriteString("sub_district_code=")
	builder.WriteString(_m.SubDistrictCode)
	builder.WriteString(", ")
	builder.WriteString("community_code=")
	builder.WriteString(_m.CommunityCode)
	builder.WriteString(", ")
	builder.WriteString("neighborhood_code=")
	builder.WriteString(_m.NeighborhoodCode)
	builder.WriteString(", ")
	builder.WriteString("building_number=")
	builder.WriteString(_m.BuildingNumber)
	builder.WriteString(", ")
	builder.WriteString("building_type_code=")
	builder.WriteString(_m.BuildingTypeCode)
	builder.WriteString(", ")
	builder.WriteString("occupancy_status_code=")
	builder.WriteString(_m.OccupancyStatusCode)
	builder.WriteString(", ")
	builder.WriteString("number_of_floors=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumberOfFloors))
	builder.WriteString(", ")
	builder.WriteString("number_of_units=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumberOfUnits))
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("latitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Latitude))
	builder.WriteString(", ")
	builder.WriteString("longitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Longitude))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteByte(')')
	return builder.String()
}

// Buildings is a parsable slice of Building.
type Buildings []*Building
