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
	"uhc-registry.io/registry/ent/stagingevidence"
	"uhc-registry.io/registry/internal/domain"
)

// StagingEvidence is the model entity for the StagingEvidence schema.
type StagingEvidence struct {
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
	ValidationStatus stagingevidence.ValidationStatus `json:"validation_status,omitempty"`
	// Diagnostics holds the value of the "diagnostics" field.
	Diagnostics []domain.Diagnostic `json:"diagnostics,omitempty"`
	// ApprovedForCommit holds the value of the "approved_for_commit" field.
	ApprovedForCommit bool `json:"approved_for_commit,omitempty"`
	// CommittedEntityID holds the value of the "committed_entity_id" field.
	CommittedEntityID *uuid.UUID `json:"committed_entity_id,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload *domain.EvidenceRecord `json:"payload,omitempty"`
	// BlobSha256 holds the value of the "blob_sha256" field.
	BlobSha256   string `json:"blob_sha256,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StagingEvidence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stagingevidence.FieldCommittedEntityID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case stagingevidence.FieldDiagnostics, stagingevidence.FieldPayload:
			values[i] = new([]byte)
		case stagingevidence.FieldApprovedForCommit:
			values[i] = new(sql.NullBool)
		case stagingevidence.FieldValidationStatus, stagingevidence.FieldBlobSha256:
			values[i] = new(sql.NullString)
		case stagingevidence.FieldCreatedAt, stagingevidence.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case stagingevidence.FieldID, stagingevidence.FieldImportPackageID, stagingevidence.FieldOriginalEntityID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StagingEvidence fields.
func (_m *StagingEvidence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stagingevidence.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case stagingevidence.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stagingevidence.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case stagingevidence.FieldImportPackageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field import_package_id", values[i])
			} else if value != nil {
				_m.ImportPackageID = *value
			}
		case stagingevidence.FieldOriginalEntityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field original_entity_id", values[i])
			} else if value != nil {
				_m.OriginalEntityID = *value
			}
		case stagingevidence.FieldValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_status", values[i])
			} else if value.Valid {
				_m.ValidationStatus = stagingevidence.ValidationStatus(value.String)
			}
		case stagingevidence.FieldDiagnostics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field diagnostics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Diagnostics); err != nil {
					return fmt.Errorf("unmarshal field diagnostics: %w", err)
				}
			}
		case stagingevidence.FieldApprovedForCommit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approved_for_commit", values[i])
			} else if value.Valid {
				_m.ApprovedForCommit = value.Bool
			}
		case stagingevidence.FieldCommittedEntityID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field committed_entity_id", values[i])
			} else if value.Valid {
				_m.CommittedEntityID = new(uuid.UUID)
				*_m.CommittedEntityID = *value.S.(*uuid.UUID)
			}
		case stagingevidence.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case stagingevidence.FieldBlobSha256:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_sha256", values[i])
			} else if value.Valid {
				_m.BlobSha256 = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StagingEvidence.
// This includes values selected through modifiers, order, etc.
func (_m *StagingEvidence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StagingEvidence.
// Note that you need to call StagingEvidence.Unwrap() before calling this method if this StagingEvidence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StagingEvidence) Update() *StagingEvidenceUpdateOne {
	return NewStagingEvidenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StagingEvidence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StagingEvidence) Unwrap() *StagingEvidence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StagingEvidence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StagingEvidence) String() string {
	var builder strings.Builder
	builder.WriteString("StagingEvidence(")
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
	builder.WriteString("blob_sha256=")
	builder.WriteString(_m.BlobSha256)
	builder.WriteByte(')')
	return builder.String()
}

// StagingEvidences is a parsable slice of StagingEvidence.
type StagingEvidences []*StagingEvidence
