package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// ImportPackage holds the schema definition for the ImportPackage entity,
// the aggregate root of one intake run. The row id IS the manifest
// PackageId, which makes receive idempotent at the storage layer.
type ImportPackage struct {
	ent.Schema
}

// Mixin of the ImportPackage.
func (ImportPackage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ImportPackage.
func (ImportPackage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.String("package_number").
			NotEmpty().
			Unique().
			Immutable(), // PKG-YYYY-NNNN
		field.Enum("status").
			Values(domain.PackageStatusValues()...).
			Default(string(domain.StatusPending)),
		field.Enum("import_method").
			Values(domain.ImportMethodValues()...).
			Default(string(domain.ImportManual)).
			Immutable(),

		// Upload identity.
		field.String("file_name").
			NotEmpty().
			Immutable(),
		field.Int64("file_size_bytes").
			NonNegative().
			Immutable(),

		// Manifest echo.
		field.String("schema_version").
			NotEmpty().
			Immutable(),
		field.Time("manifest_created_utc").
			Immutable(),
		field.Time("exported_date_utc").
			Immutable(),
		field.String("exported_by_user_id").
			Optional().
			Immutable(),
		field.String("device_id").
			NotEmpty().
			Immutable(),
		field.Int("total_record_count").
			NonNegative().
			Immutable(),
		field.JSON("entity_counts", map[domain.EntityType]int{}).
			Optional(),
		field.Int64("total_attachment_size_bytes").
			NonNegative().
			Immutable(),
		field.JSON("vocabulary_versions", map[string]string{}).
			Optional(),

		// Integrity verdicts.
		field.String("expected_checksum").
			Optional().
			Immutable(), // lowercase sha256 hex, empty when the device sent none
		field.String("computed_checksum").
			Optional().
			Immutable(),
		field.Enum("signature_status").
			Values(
				string(domain.SignatureNone),
				string(domain.SignatureValid),
				string(domain.SignatureInvalid),
			).
			Default(string(domain.SignatureNone)),
		field.Strings("receive_warnings").
			Optional(),

		// File locations.
		field.String("storage_path").
			Optional(), // spool location until archival
		field.Bool("is_archived").
			Default(false),
		field.String("archive_path").
			Optional(),
		field.Time("archived_date").
			Optional().
			Nillable(),

		// Stage outcomes.
		field.JSON("validation_summary", &domain.ValidationSummary{}).
			Optional(),
		field.Int("conflict_count").
			NonNegative().
			Default(0),
		field.Int("unresolved_conflict_count").
			NonNegative().
			Default(0),
		field.Time("committed_date").
			Optional().
			Nillable(),
		field.JSON("commit_report", &domain.CommitReport{}).
			Optional(),

		// Terminal bookkeeping.
		field.String("quarantined_reason").
			Optional(),
		field.String("cancelled_reason").
			Optional(),
		field.String("cancelled_by").
			Optional(),
		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.String("received_by").
			NotEmpty().
			Immutable(),
	}
}

// Indexes of the ImportPackage.
func (ImportPackage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("device_id"),
		index.Fields("created_at"),
	}
}
