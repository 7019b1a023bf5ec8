// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/person"
)

// Person is the model entity for the Person schema.
type Person struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SourcePackageID holds the value of the "source_package_id" field.
	SourcePackageID *uuid.UUID `json:"source_package_id,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName string `json:"first_name,omitempty"`
	// FatherName holds the value of the "father_name" field.
	FatherName string `json:"father_name,omitempty"`
	// FamilyName holds the value of the "family_name" field.
	FamilyName string `json:"family_name,omitempty"`
	// MotherName holds the value of the "mother_name" field.
	MotherName string `json:"mother_name,omitempty"`
	// FirstNameNormalized holds the value of the "first_name_normalized" field.
	FirstNameNormalized string `json:"first_name_normalized,omitempty"`
	// FatherNameNormalized holds the value of the "father_name_normalized" field.
	FatherNameNormalized string `json:"father_name_normalized,omitempty"`
	// FamilyNameNormalized holds the value of the "family_name_normalized" field.
	FamilyNameNormalized string `json:"family_name_normalized,omitempty"`
	// NationalID holds the value of the "national_id" field.
	NationalID string `json:"national_id,omitempty"`
	// DateOfBirth holds the value of the "date_of_birth" field.
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	// YearOfBirth holds the value of the "year_of_birth" field.
	YearOfBirth int `json:"year_of_birth,omitempty"`
	// GenderCode holds the value of the "gender_code" field.
	GenderCode string `json:"gender_code,omitempty"`
	// NationalityCode holds the value of the "nationality_code" field.
	NationalityCode string `json:"nationality_code,omitempty"`
	// GovernorateCode holds the value of the "governorate_code" field.
	GovernorateCode string `json:"governorate_code,omitempty"`
	// PhoneNumber holds the value of the "phone_number" field.
	PhoneNumber  string `json:"phone_number,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Person) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case person.FieldSourcePackageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case person.FieldYearOfBirth:
			values[i] = new(sql.NullInt64)
		case person.FieldFirstName, person.FieldFatherName, person.FieldFamilyName, person.FieldMotherName, person.FieldFirstNameNormalized, person.FieldFatherNameNormalized, person.FieldFamilyNameNormalized, person.FieldNationalID, person.FieldGenderCode, person.FieldNationalityCode, person.FieldGovernorateCode, person.FieldPhoneNumber:
			values[i] = new(sql.NullString)
		case person.FieldCreatedAt, person.FieldUpdatedAt, person.FieldDateOfBirth:
			values[i] = new(sql.NullTime)
		case person.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Person fields.
func (_m *Person) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case person.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case person.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case person.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case person.FieldSourcePackageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field source_package_id", values[i])
			} else if value.Valid {
				_m.SourcePackageID = new(uuid.UUID)
				*_m.SourcePackageID = *value.S.(*uuid.UUID)
			}
		case person.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case person.FieldFatherName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field father_name", values[i])
			} else if value.Valid {
				_m.FatherName = value.String
			}
		case person.FieldFamilyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field family_name", values[i])
			} else if value.Valid {
				_m.FamilyName = value.String
			}
		case person.FieldMotherName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mother_name", values[i])
			} else if value.Valid {
				_m.MotherName = value.String
			}
		case person.FieldFirstNameNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name_normalized", values[i])
			} else if value.Valid {
				_m.FirstNameNormalized = value.String
			}
		case person.FieldFatherNameNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field father_name_normalized", values[i])
			} else if value.Valid {
				_m.FatherNameNormalized = value.String
			}
		case person.FieldFamilyNameNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field family_name_normalized", values[i])
			} else if value.Valid {
				_m.FamilyNameNormalized = value.String
			}
		case person.FieldNationalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field national_id", values[i])
			} else if value.Valid {
				_m.NationalID = value.String
			}
		case person.FieldDateOfBirth:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_birth", values[i])
			} else if value.Valid {
				_m.DateOfBirth = new(time.Time)
				*_m.DateOfBirth = value.Time
			}
		case person.FieldYearOfBirth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year_of_birth", values[i])
			} else if value.Valid {
				_m.YearOfBirth = int(value.Int64)
			}
		case person.FieldGenderCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender_code", values[i])
			} else if value.Valid {
				_m.GenderCode = value.String
			}
		case person.FieldNationalityCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nationality_code", values[i])
			} else if value.Valid {
				_m.NationalityCode = value.String
			}
		case person.FieldGovernorateCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field governorate_code", values[i])
			} else if value.Valid {
				_m.GovernorateCode = value.String
			}
		case person.FieldPhoneNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_number", values[i])
			} else if value.Valid {
				_m.PhoneNumber = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Person.
// This includes values selected through modifiers, order, etc.
func (_m *Person) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Person.
// Note that you need to call Person.Unwrap() before calling this method if this Person
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Person) Update() *PersonUpdateOne {
	return NewPersonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Person entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Person) Unwrap() *Person {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Person is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Person) String() string {
	var builder strings.Builder
	builder.WriteString("Person(")
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
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("father_name=")
	builder.WriteString(_m.FatherName)
	builder.WriteString(", ")
	builder.WriteString("family_name=")
	builder.WriteString(_m.FamilyName)
	builder.WriteString(", ")
	builder.WriteString("mother_name=")
	builder.WriteString(_m.MotherName)
	builder.WriteString(", ")
	builder.WriteString("first_name_normalized=")
	builder.WriteString(_m.FirstNameNormalized)
	builder.WriteString(", ")
	builder.WriteString("father_name_normalized=")
	builder.WriteString(_m.FatherNameNormalized)
	builder.WriteString(", ")
	builder.WriteString("family_name_normalized=")
	builder.WriteString(_m.FamilyNameNormalized)
	builder.WriteString(", ")
	builder.WriteString("national_id=")
	builder.WriteString(_m.NationalID)
	builder.WriteString(", ")
	if v := _m.DateOfBirth; v != nil {
		builder.WriteString("date_of_birth=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("year_of_birth=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearOfBirth))
	builder.WriteString(", ")
	builder.WriteString("gender_code=")
	builder.WriteString(_m.GenderCode)
	builder.WriteString(", ")
	builder.WriteString("nationality_code=")
	builder.WriteString(_m.NationalityCode)
	builder.WriteString(", ")
	builder.WriteString("governorate_code=")
	builder.WriteString(_m.GovernorateCode)
	builder.WriteString(", ")
	builder.WriteString("phone_number=")
	builder.WriteString(_m.PhoneNumber)
	builder.WriteByte(')')
	return builder.String()
}

// Persons is a parsable slice of Person.
type Persons []*Person
