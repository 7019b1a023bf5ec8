// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/evidence"
)

// Evidence is the model entity for the Evidence schema.
type Evidence struct {
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
	// EvidenceTypeCode holds the value of the "evidence_type_code" field.
	EvidenceTypeCode string `json:"evidence_type_code,omitempty"`
	// DocumentNumber holds the value of the "document_number" field.
	DocumentNumber string `json:"document_number,omitempty"`
	// IssuedDate holds the value of the "issued_date" field.
	IssuedDate *time.Time `json:"issued_date,omitempty"`
	// IssuingAuthority holds the value of the "issuing_authority" field.
	IssuingAuthority string `json:"issuing_authority,omitempty"`
	// BlobSha256 holds the value of the "blob_sha256" field.
	BlobSha256 string `json:"blob_sha256,omitempty"`
	// BlobPath holds the value of the "blob_path" field.
	BlobPath string `json:"blob_path,omitempty"`
	// BlobSizeBytes holds the value of the "blob_size_bytes" field.
	BlobSizeBytes int64 `json:"blob_size_bytes,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes        string `json:"notes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Evidence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evidence.FieldSourcePackageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case evidence.FieldBlobSizeBytes:
			values[i] = new(sql.NullInt64)
		case evidence.FieldEvidenceTypeCode, evidence.FieldDocumentNumber, evidence.FieldIssuingAuthority, evidence.FieldBlobSha256, evidence.FieldBlobPath, evidence.FieldFileName, evidence.FieldContentType, evidence.FieldNotes:
			values[i] = new(sql.NullString)
		case evidence.FieldCreatedAt, evidence.FieldUpdatedAt, evidence.FieldIssuedDate:
			values[i] = new(sql.NullTime)
		case evidence.FieldID, evidence.FieldPersonID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Evidence fields.
func (_m *Evidence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evidence.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case evidence.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case evidence.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case evidence.FieldSourcePackageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field source_package_id", values[i])
			} else if value.Valid {
				_m.SourcePackageID = new(uuid.UUID)
				*_m.SourcePackageID = *value.S.(*uuid.UUID)
			}
		case evidence.FieldPersonID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field person_id", values[i])
			} else if value != nil {
				_m.PersonID = *value
			}
		case evidence.FieldEvidenceTypeCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_type_code", values[i])
			} else if value.Valid {
				_m.EvidenceTypeCode = value.String
			}
		case evidence.FieldDocumentNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_number", values[i])
			} else if value.Valid {
				_m.DocumentNumber = value.String
			}
		case evidence.FieldIssuedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field issued_date", values[i])
			} else if value.Valid {
				_m.IssuedDate = new(time.Time)
				*_m.IssuedDate = value.Time
			}
		case evidence.FieldIssuingAuthority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issuing_authority", values[i])
			} else if value.Valid {
				_m.IssuingAuthority = value.String
			}
		case evidence.FieldBlobSha256:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_sha256", values[i])
			} else if value.Valid {
				_m.BlobSha256 = value.String
			}
		case evidence.FieldBlobPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_path", values[i])
			} else if value.Valid {
				_m.BlobPath = value.String
			}
		case evidence.FieldBlobSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field blob_size_bytes", values[i])
			} else if value.Valid {
				_m.BlobSizeBytes = value.Int64
			}
		case evidence.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case evidence.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case evidence.FieldNotes:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Evidence.
// This includes values selected through modifiers, order, etc.
func (_m *Evidence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Evidence.
// Note that you need to call Evidence.Unwrap() before calling this method if this Evidence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Evidence) Update() *EvidenceUpdateOne {
	return NewEvidenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Evidence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Evidence) Unwrap() *Evidence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Evidence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Evidence) String() string {
	var builder strings.Builder
	builder.WriteString("Evidence(")
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
	builder.WriteString("evidence_type_code=")
	builder.WriteString(_m.EvidenceTypeCode)
	builder.WriteString(", ")
	builder.WriteString("document_number=")
	builder.WriteString(_m.DocumentNumber)
	builder.WriteString(", ")
	if v := _m.IssuedDate; v != nil {
		builder.WriteString("issued_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("issuing_authority=")
	builder.WriteString(_m.IssuingAuthority)
	builder.WriteString(", ")
	builder.WriteString("blob_sha256=")
	builder.WriteString(_m.BlobSha256)
	builder.WriteString(", ")
	builder.WriteString("blob_path=")
	builder.WriteString(_m.BlobPath)
	builder.WriteString(", ")
	builder.WriteString("blob_size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlobSizeBytes))
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteByte(')')
	return builder.String()
}

// Evidences is a parsable slice of Evidence.
type Evidences []*Evidence
