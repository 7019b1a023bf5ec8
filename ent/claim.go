// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/claim"
)

// Claim is the model entity for the Claim schema.
type Claim struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SourcePackageID holds the value of the "source_package_id" field.
	SourcePackageID *uuid.UUID `json:"source_package_id,omitempty"`
	// ClaimNumber holds the value of the "claim_number" field.
	ClaimNumber string `json:"claim_number,omitempty"`
	// PropertyUnitID holds the value of the "property_unit_id" field.
	PropertyUnitID uuid.UUID `json:"property_unit_id,omitempty"`
	// PrimaryClaimantID holds the value of the "primary_claimant_id" field.
	PrimaryClaimantID uuid.UUID `json:"primary_claimant_id,omitempty"`
	// ClaimTypeCode holds the value of the "claim_type_code" field.
	ClaimTypeCode string `json:"claim_type_code,omitempty"`
	// StatusCode holds the value of the "status_code" field.
	StatusCode string `json:"status_code,omitempty"`
	// ClaimedShare holds the value of the "claimed_share" field.
	ClaimedShare float64 `json:"claimed_share,omitempty"`
	// SubmissionDate holds the value of the "submission_date" field.
	SubmissionDate *time.Time `json:"submission_date,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes        string `json:"notes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Claim) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case claim.FieldSourcePackageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case claim.FieldClaimedShare:
			values[i] = new(sql.NullFloat64)
		case claim.FieldClaimNumber, claim.FieldClaimTypeCode, claim.FieldStatusCode, claim.FieldNotes:
			values[i] = new(sql.NullString)
		case claim.FieldCreatedAt, claim.FieldUpdatedAt, claim.FieldSubmissionDate:
			values[i] = new(sql.NullTime)
		case claim.FieldID, claim.FieldPropertyUnitID, claim.FieldPrimaryClaimantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Claim fields.
func (_m *Claim) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case claim.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case claim.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case claim.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case claim.FieldSourcePackageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field source_package_id", values[i])
			} else if value.Valid {
				_m.SourcePackageID = new(uuid.UUID)
				*_m.SourcePackageID = *value.S.(*uuid.UUID)
			}
		case claim.FieldClaimNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_number", values[i])
			} else if value.Valid {
				_m.ClaimNumber = value.String
			}
		case claim.FieldPropertyUnitID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field property_unit_id", values[i])
			} else if value != nil {
				_m.PropertyUnitID = *value
			}
		case claim.FieldPrimaryClaimantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field primary_claimant_id", values[i])
			} else if value != nil {
				_m.PrimaryClaimantID = *value
			}
		case claim.FieldClaimTypeCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_type_code", values[i])
			} else if value.Valid {
				_m.ClaimTypeCode = value.String
			}
		case claim.FieldStatusCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_code", values[i])
			} else if value.Valid {
				_m.StatusCode = value.String
			}
		case claim.FieldClaimedShare:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_share", values[i])
			} else if value.Valid {
				_m.ClaimedShare = value.Float64
			}
		case claim.FieldSubmissionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submission_date", values[i])
			} else if value.Valid {
				_m.SubmissionDate = new(time.Time)
				*_m.SubmissionDate = value.Time
			}
		case claim.FieldNotes:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Claim.
// This includes values selected through modifiers, order, etc.
func (_m *Claim) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Claim.
// Note that you need to call Claim.Unwrap() before calling this method if this Claim
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Claim) Update() *ClaimUpdateOne {
	return NewClaimClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Claim entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Claim) Unwrap() *Claim {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Claim is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Claim) String() string {
	var builder strings.Builder
	builder.WriteString("Claim(")
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
	builder.WriteString("claim_number=")
	builder.WriteString(_m.ClaimNumber)
	builder.WriteString(", ")
	builder.WriteString("property_unit_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PropertyUnitID))
	builder.WriteString(", ")
	builder.WriteString("primary_claimant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrimaryClaimantID))
	builder.WriteString(", ")
	builder.WriteString("claim_type_code=")
	builder.WriteString(_m.ClaimTypeCode)
	builder.WriteString(", ")
	builder.WriteString("status_code=")
	builder.WriteString(_m.StatusCode)
	builder.WriteString(", ")
	builder.WriteString("claimed_share=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClaimedShare))
	builder.WriteString(", ")
	if v := _m.SubmissionDate; v != nil {
		builder.WriteString("submission_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteByte(')')
	return builder.String()
}

// Claims is a parsable slice of Claim.
type Claims []*Claim
