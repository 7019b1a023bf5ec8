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
	"uhc-registry.io/registry/ent/conflictresolution"
	"uhc-registry.io/registry/internal/domain"
)

// ConflictResolution is the model entity for the ConflictResolution schema.
type ConflictResolution struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ImportPackageID holds the value of the "import_package_id" field.
	ImportPackageID uuid.UUID `json:"import_package_id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType conflictresolution.EntityType `json:"entity_type,omitempty"`
	// StagingEntityID holds the value of the "staging_entity_id" field.
	StagingEntityID uuid.UUID `json:"staging_entity_id,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// SuggestedMasterID holds the value of the "suggested_master_id" field.
	SuggestedMasterID *uuid.UUID `json:"suggested_master_id,omitempty"`
	// Candidates holds the value of the "candidates" field.
	Candidates []domain.Candidate `json:"candidates,omitempty"`
	// Status holds the value of the "status" field.
	Status conflictresolution.Status `json:"status,omitempty"`
	// Resolution holds the value of the "resolution" field.
	Resolution *conflictresolution.Resolution `json:"resolution,omitempty"`
	// Justification holds the value of the "justification" field.
	Justification string `json:"justification,omitempty"`
	// ChosenMasterID holds the value of the "chosen_master_id" field.
	ChosenMasterID *uuid.UUID `json:"chosen_master_id,omitempty"`
	// MergeMapping holds the value of the "merge_mapping" field.
	MergeMapping map[string]int `json:"merge_mapping,omitempty"`
	// ResolvedBy holds the value of the "resolved_by" field.
	ResolvedBy string `json:"resolved_by,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConflictResolution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conflictresolution.FieldSuggestedMasterID, conflictresolution.FieldChosenMasterID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case conflictresolution.FieldCandidates, conflictresolution.FieldMergeMapping:
			values[i] = new([]byte)
		case conflictresolution.FieldScore:
			values[i] = new(sql.NullFloat64)
		case conflictresolution.FieldEntityType, conflictresolution.FieldStatus, conflictresolution.FieldResolution, conflictresolution.FieldJustification, conflictresolution.FieldResolvedBy:
			values[i] = new(sql.NullString)
		case conflictresolution.FieldCreatedAt, conflictresolution.FieldUpdatedAt, conflictresolution.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		case conflictresolution.FieldID, conflictresolution.FieldImportPackageID, conflictresolution.FieldStagingEntityID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConflictResolution fields.
func (_m *ConflictResolution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conflictresolution.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case conflictresolution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conflictresolution.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case conflictresolution.FieldImportPackageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field import_package_id", values[i])
			} else if value != nil {
				_m.ImportPackageID = *value
			}
		case conflictresolution.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = conflictresolution.EntityType(value.String)
			}
		case conflictresolution.FieldStagingEntityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field staging_entity_id", values[i])
			} else if value != nil {
				_m.StagingEntityID = *value
			}
		case conflictresolution.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case conflictresolution.FieldSuggestedMasterID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_master_id", values[i])
			} else if value.Valid {
				_m.SuggestedMasterID = new(uuid.UUID)
				*_m.SuggestedMasterID = *value.S.(*uuid.UUID)
			}
		case conflictresolution.FieldCandidates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field candidates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Candidates); err != nil {
					return fmt.Errorf("unmarshal field candidates: %w", err)
				}
			}
		case conflictresolution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = conflictresolution.Status(value.String)
			}
		case conflictresolution.FieldResolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value.Valid {
				_m.Resolution = new(conflictresolution.Resolution)
				*_m.Resolution = conflictresolution.Resolution(value.String)
			}
		case conflictresolution.FieldJustification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field justification", values[i])
			} else if value.Valid {
				_m.Justification = value.String
			}
		case conflictresolution.FieldChosenMasterID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field chosen_master_id", values[i])
			} else if value.Valid {
				_m.ChosenMasterID = new(uuid.UUID)
				*_m.ChosenMasterID = *value.S.(*uuid.UUID)
			}
		case conflictresolution.FieldMergeMapping:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field merge_mapping", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MergeMapping); err != nil {
					return fmt.Errorf("unmarshal field merge_mapping: %w", err)
				}
			}
		case conflictresolution.FieldResolvedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_by", values[i])
			} else if value.Valid {
				_m.ResolvedBy = value.String
			}
		case conflictresolution.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConflictResolution.
// This includes values selected through modifiers, order, etc.
func (_m *ConflictResolution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConflictResolution.
// Note that you need to call ConflictResolution.Unwrap() before calling this method if this ConflictResolution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConflictResolution) Update() *ConflictResolutionUpdateOne {
	return NewConflictResolutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConflictResolution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConflictResolution) Unwrap() *ConflictResolution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConflictResolution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConflictResolution) String() string {
	var builder strings.Builder
	builder.WriteString("ConflictResolution(")
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
	builder.WriteString("entity_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityType))
	builder.WriteString(", ")
	builder.WriteString("staging_entity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StagingEntityID))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	if v := _m.SuggestedMasterID; v != nil {
		builder.WriteString("suggested_master_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("candidates=")
	builder.WriteString(fmt.Sprintf("%v", _m.Candidates))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Resolution; v != nil {
		builder.WriteString("resolution=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("justification=")
	builder.WriteString(_m.Justification)
	builder.WriteString(", ")
	if v := _m.ChosenMasterID; v != nil {
		builder.WriteString("chosen_master_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("merge_mapping=")
	builder.WriteString(fmt.Sprintf("%v", _m.MergeMapping))
	builder.WriteString(", ")
	builder.WriteString("resolved_by=")
	builder.WriteString(_m.ResolvedBy)
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ConflictResolutions is a parsable slice of ConflictResolution.
type ConflictResolutions []*ConflictResolution
