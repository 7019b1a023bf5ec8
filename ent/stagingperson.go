// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/stagingperson"
	"uhc-registry.io/registry/internal/domain"
)

// StagingPerson is the model entity for the StagingPerson schema.
type StagingPerson struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ImportPackageID holds the value of the "import_package_id" field.
	ImportPackageID uuid.UUID `json:"import_package_id,omitempty"`
	// OriginalEntityID holds the value of the "original_entity_id" field.
	OriginalEntityID uuid.UUID `json:"original_entity_id,omitempty"`
	// ValidationStatus holds the value of the "validation_status" field.
	ValidationStatus stagingperson.ValidationStatus `json:"validation_status,omitempty"`
	// Diagnostics holds the value of the "diagnostics" field.
	Diagnostics []domain.Diagnostic `json:"diagnostics,omitempty"`
	// ApprovedForCommit holds the value of the "approved_for_commit" field.
	ApprovedForCommit bool `json:"approved_for_commit,omitempty"`
	// CommittedEntityID holds the value of the "committed_entity_id" field.
	CommittedEntityID *uuid.UUID `json:"committed_entity_id,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload *domain.PersonRecord `json:"payload,omitempty"`
	// FirstNameNormalized holds the value of the "first_name_normalized" field.
	FirstNameNormalized string `json:"first_name_normalized,omitempty"`
	// FatherNameNormalized holds the value of the "father_name_normalized" field.
	FatherNameNormalized string `json:"father_name_normalized,omitempty"`
	// FamilyNameNormalized holds the value of the "family_name_normalized" field.
	FamilyNameNormalized string `json:"family_name_normalized,omitempty"`
	// NationalID holds the value of the "national_id" field.
	NationalID string `json:"national_id,omitempty"`
	// YearOfBirth holds the value of the "year_of_birth" field.
	YearOfBirth int `json:"year_of_birth,omitempty"`
	// GenderCode holds the value of the "gender_code" field.
	GenderCode   string `json:"gender_code,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StagingPerson) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stagingperson.FieldCommittedEntityID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case stagingperson.FieldDiagnostics, stagingperson.FieldPayload:
			values[i] = new([]byte)
		case stagingperson.FieldApprovedForCommit:
			values[i] = new(sql.NullBool)
		case stagingperson.FieldYearOfBirth:
			values[i] = new(sql.NullInt64)
		case stagingperson.FieldValidationStatus, stagingperson.FieldFirstNameNormalized, stagingperson.FieldFatherNameNormalized, stagingperson.FieldFamilyNameNormalized, stagingperson.FieldNationalID, stagingperson.FieldGenderCode:
			values[i] = new(sql.NullString)
		case stagingperson.FieldCreatedAt, stagingperson.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case stagingperson.FieldID, stagingperson.FieldImportPackageID, stagingperson.FieldOriginalEntityID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StagingPerson fields.
func (_m *StagingPerson) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stagingperson.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case stagingperson.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stagingperson.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case stagingperson.FieldImportPackageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field import_package_id", values[i])
			} else if value != nil {
				_m.ImportPackageID = *value
			}
		case stagingperson.FieldOriginalEntityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field original_entity_id", values[i])
			} else if value != nil {
				_m.OriginalEntityID = *value
			}
		case stagingperson.FieldValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_status", values[i])
			} else if value.Valid {
				_m.ValidationStatus = stagingperson.ValidationStatus(value.String)
			}
		case stagingperson.FieldDiagnostics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field diagnostics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Diagnostics); err != nil {
					return fmt.Errorf("unmarshal field diagnostics: %w", err)
				}
			}
		case stagingperson.FieldApprovedForCommit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approved_for_commit", values[i])
			} else if value.Valid {
				_m.ApprovedForCommit = value.Bool
			}
		case stagingperson.FieldCommittedEntityID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field committed_entity_id", values[i])
			} else if value.Valid {
				_m.CommittedEntityID = new(uuid.UUID)
				*_m.CommittedEntityID = *value.S.(*uuid.UUID)
			}
		case stagingperson.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case stagingperson.FieldFirstNameNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name_normalized", values[i])
			} else if value.Valid {
				_m.FirstNameNormalized = value.String
			}
		case stagingperson.FieldFatherNameNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field father_name_normalized", values[i])
			} else if value.Valid {
				_m.FatherNameNormalized = value.String
			}
		case stagingperson.FieldFamilyNameNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field family_name_normalized", values[i])
			} else if value.Valid {
				_m.FamilyNameNormalized = value.String
			}
		case stagingperson.FieldNationalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field national_id", values[i])
			} else if value.Valid {
				_m.NationalID = value.String
			}
		case stagingperson.FieldYearOfBirth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year_of_birth", values[i])
			} else if value.Valid {
				_m.YearOfBirth = int(value.Int64)
			}
		case stagingperson.FieldGenderCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender_code", values[i])
			} else if value.Valid {
				_m.GenderCode = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StagingPerson.
// This includes values selected through modifiers, order, etc.
func (_m *StagingPerson) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StagingPerson.
// Note that you need to call StagingPerson.Unwrap() before calling this method if this StagingPerson
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StagingPerson) Update() *StagingPersonUpdateOne {
	return NewStagingPersonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StagingPerson entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StagingPerson) Unwrap() *StagingPerson {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StagingPerson is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StagingPerson) String() string {
	var builder strings.Builder
	builder.WriteString("StagingPerson(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("import_package_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImportPackageID))
	builder.WriteString(", ")
	builder.WriteString("original_entity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalEntityID))
	builder.WriteString(", ")
	builder.WriteString("validation_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationStatus))
	builder.WriteString(", ")
	builder.WriteString("diagnostics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Diagnostics))
	builder.WriteString(", ")
	builder.WriteString("approved_for_commit=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovedForCommit))
	builder.WriteString(", ")
	if v := _m.CommittedEntityID; v != nil {
		builder.WriteString("committed_entity_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
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
	builder.WriteString("year_of_birth=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearOfBirth))
	builder.WriteString(", ")
	builder.WriteString("gender_code=")
	builder.WriteString(_m.GenderCode)
	builder.WriteByte(')')
	return builder.String()
}

// StagingPersons is a parsable slice of StagingPerson.
type StagingPersons []*StagingPerson
