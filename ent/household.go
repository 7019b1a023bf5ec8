// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/household"
)

// Household is the model entity for the Household schema.
type Household struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SourcePackageID holds the value of the "source_package_id" field.
	SourcePackageID *uuid.UUID `json:"source_package_id,omitempty"`
	// HeadOfHouseholdID holds the value of the "head_of_household_id" field.
	HeadOfHouseholdID uuid.UUID `json:"head_of_household_id,omitempty"`
	// HouseholdSize holds the value of the "household_size" field.
	HouseholdSize int `json:"household_size,omitempty"`
	// MalesUnder18 holds the value of the "males_under_18" field.
	MalesUnder18 int `json:"males_under_18,omitempty"`
	// FemalesUnder18 holds the value of the "females_under_18" field.
	FemalesUnder18 int `json:"females_under_18,omitempty"`
	// MalesAdult holds the value of the "males_adult" field.
	MalesAdult int `json:"males_adult,omitempty"`
	// FemalesAdult holds the value of the "females_adult" field.
	FemalesAdult int `json:"females_adult,omitempty"`
	// ResidencyStatusCode holds the value of the "residency_status_code" field.
	ResidencyStatusCode string `json:"residency_status_code,omitempty"`
	// DisplacementOriginGovernorate holds the value of the "displacement_origin_governorate" field.
	DisplacementOriginGovernorate string `json:"displacement_origin_governorate,omitempty"`
	selectValues                  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Household) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case household.FieldSourcePackageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case household.FieldHouseholdSize, household.FieldMalesUnder18, household.FieldFemalesUnder18, household.FieldMalesAdult, household.FieldFemalesAdult:
			values[i] = new(sql.NullInt64)
		case household.FieldResidencyStatusCode, household.FieldDisplacementOriginGovernorate:
			values[i] = new(sql.NullString)
		case household.FieldCreatedAt, household.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case household.FieldID, household.FieldHeadOfHouseholdID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Household fields.
func (_m *Household) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case household.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case household.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case household.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case household.FieldSourcePackageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field source_package_id", values[i])
			} else if value.Valid {
				_m.SourcePackageID = new(uuid.UUID)
				*_m.SourcePackageID = *value.S.(*uuid.UUID)
			}
		case household.FieldHeadOfHouseholdID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field head_of_household_id", values[i])
			} else if value != nil {
				_m.HeadOfHouseholdID = *value
			}
		case household.FieldHouseholdSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field household_size", values[i])
			} else if value.Valid {
				_m.HouseholdSize = int(value.Int64)
			}
		case household.FieldMalesUnder18:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field males_under_18", values[i])
			} else if value.Valid {
				_m.MalesUnder18 = int(value.Int64)
			}
		case household.FieldFemalesUnder18:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field females_under_18", values[i])
			} else if value.Valid {
				_m.FemalesUnder18 = int(value.Int64)
			}
		case household.FieldMalesAdult:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field males_adult", values[i])
			} else if value.Valid {
				_m.MalesAdult = int(value.Int64)
			}
		case household.FieldFemalesAdult:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field females_adult", values[i])
			} else if value.Valid {
				_m.FemalesAdult = int(value.Int64)
			}
		case household.FieldResidencyStatusCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field residency_status_code", values[i])
			} else if value.Valid {
				_m.ResidencyStatusCode = value.String
			}
		case household.FieldDisplacementOriginGovernorate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field displacement_origin_governorate", values[i])
			} else if value.Valid {
				_m.DisplacementOriginGovernorate = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Household.
// This includes values selected through modifiers, order, etc.
func (_m *Household) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Household.
// Note that you need to call Household.Unwrap() before calling this method if this Household
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Household) Update() *HouseholdUpdateOne {
	return NewHouseholdClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Household entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Household) Unwrap() *Household {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Household is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Household) String() string {
	var builder strings.Builder
	builder.WriteString("Household(")
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
	builder.WriteString("head_of_household_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.HeadOfHouseholdID))
	builder.WriteString(", ")
	builder.WriteString("household_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.HouseholdSize))
	builder.WriteString(", ")
	builder.WriteString("males_under_18=")
	builder.WriteString(fmt.Sprintf("%v", _m.MalesUnder18))
	builder.WriteString(", ")
	builder.WriteString("females_under_18=")
	builder.WriteString(fmt.Sprintf("%v", _m.FemalesUnder18))
	builder.WriteString(", ")
	builder.WriteString("males_adult=")
	builder.WriteString(fmt.Sprintf("%v", _m.MalesAdult))
	builder.WriteString(", ")
	builder.WriteString("females_adult=")
	builder.WriteString(fmt.Sprintf("%v", _m.FemalesAdult))
	builder.WriteString(", ")
	builder.WriteString("residency_status_code=")
	builder.WriteString(_m.ResidencyStatusCode)
	builder.WriteString(", ")
	builder.WriteString("displacement_origin_governorate=")
	builder.WriteString(_m.DisplacementOriginGovernorate)
	builder.WriteByte(')')
	return builder.String()
}

// Households is a parsable slice of Household.
type Households []*Household
