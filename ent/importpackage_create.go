// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/importpackage"
	"uhc-registry.io/registry/internal/domain"
)

// ImportPackageCreate is the builder for creating a ImportPackage entity.
type ImportPackageCreate struct {
	config
	mutation *ImportPackageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ImportPackageCreate) SetCreatedAt(v time.Time) *ImportPackageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableCreatedAt(v *time.Time) *ImportPackageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ImportPackageCreate) SetUpdatedAt(v time.Time) *ImportPackageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableUpdatedAt(v *time.Time) *ImportPackageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPackageNumber sets the "package_number" field.
func (_c *ImportPackageCreate) SetPackageNumber(v string) *ImportPackageCreate {
	_c.mutation.SetPackageNumber(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ImportPackageCreate) SetStatus(v importpackage.Status) *ImportPackageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableStatus(v *importpackage.Status) *ImportPackageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetImportMethod sets the "import_method" field.
func (_c *ImportPackageCreate) SetImportMethod(v importpackage.ImportMethod) *ImportPackageCreate {
	_c.mutation.SetImportMethod(v)
	return _c
}

// SetNillableImportMethod sets the "import_method" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableImportMethod(v *importpackage.ImportMethod) *ImportPackageCreate {
	if v != nil {
		_c.SetImportMethod(*v)
	}
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ImportPackageCreate) SetFileName(v string) *ImportPackageCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_c *ImportPackageCreate) SetFileSizeBytes(v int64) *ImportPackageCreate {
	_c.mutation.SetFileSizeBytes(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *ImportPackageCreate) SetSchemaVersion(v string) *ImportPackageCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetManifestCreatedUtc sets the "manifest_created_utc" field.
func (_c *ImportPackageCreate) SetManifestCreatedUtc(v time.Time) *ImportPackageCreate {
	_c.mutation.SetManifestCreatedUtc(v)
	return _c
}

// SetExportedDateUtc sets the "exported_date_utc" field.
func (_c *ImportPackageCreate) SetExportedDateUtc(v time.Time) *ImportPackageCreate {
	_c.mutation.SetExportedDateUtc(v)
	return _c
}

// SetExportedByUserID sets the "exported_by_user_id" field.
func (_c *ImportPackageCreate) SetExportedByUserID(v string) *ImportPackageCreate {
	_c.mutation.SetExportedByUserID(v)
	return _c
}

// SetNillableExportedByUserID sets the "exported_by_user_id" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableExportedByUserID(v *string) *ImportPackageCreate {
	if v != nil {
		_c.SetExportedByUserID(*v)
	}
	return _c
}

// SetDeviceID sets the "device_id" field.
func (_c *ImportPackageCreate) SetDeviceID(v string) *ImportPackageCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetTotalRecordCount sets the "total_record_count" field.
func (_c *ImportPackageCreate) SetTotalRecordCount(v int) *ImportPackageCreate {
	_c.mutation.SetTotalRecordCount(v)
	return _c
}

// SetEntityCounts sets the "entity_counts" field.
func (_c *ImportPackageCreate) SetEntityCounts(v map[domain.EntityType]int) *ImportPackageCreate {
	_c.mutation.SetEntityCounts(v)
	return _c
}

// SetTotalAttachmentSizeBytes sets the "total_attachment_size_bytes" field.
func (_c *ImportPackageCreate) SetTotalAttachmentSizeBytes(v int64) *ImportPackageCreate {
	_c.mutation.SetTotalAttachmentSizeBytes(v)
	return _c
}

// SetVocabularyVersions sets the "vocabulary_versions" field.
func (_c *ImportPackageCreate) SetVocabularyVersions(v map[string]string) *ImportPackageCreate {
	_c.mutation.SetVocabularyVersions(v)
	return _c
}

// SetExpectedChecksum sets the "expected_checksum" field.
func (_c *ImportPackageCreate) SetExpectedChecksum(v string) *ImportPackageCreate {
	_c.mutation.SetExpectedChecksum(v)
	return _c
}

// SetNillableExpectedChecksum sets the "expected_checksum" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableExpectedChecksum(v *string) *ImportPackageCreate {
	if v != nil {
		_c.SetExpectedChecksum(*v)
	}
	return _c
}

// SetComputedChecksum sets the "computed_checksum" field.
func (_c *ImportPackageCreate) SetComputedChecksum(v string) *ImportPackageCreate {
	_c.mutation.SetComputedChecksum(v)
	return _c
}

// SetNillableComputedChecksum sets the "computed_checksum" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableComputedChecksum(v *string) *ImportPackageCreate {
	if v != nil {
		_c.SetComputedChecksum(*v)
	}
	return _c
}

// SetSignatureStatus sets the "signature_status" field.
func (_c *ImportPackageCreate) SetSignatureStatus(v importpackage.SignatureStatus) *ImportPackageCreate {
	_c.mutation.SetSignatureStatus(v)
	return _c
}

// SetNillableSignatureStatus sets the "signature_status" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableSignatureStatus(v *importpackage.SignatureStatus) *ImportPackageCreate {
	if v != nil {
		_c.SetSignatureStatus(*v)
	}
	return _c
}

// SetReceiveWarnings sets the "receive_warnings" field.
func (_c *ImportPackageCreate) SetReceiveWarnings(v []string) *ImportPackageCreate {
	_c.mutation.SetReceiveWarnings(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *ImportPackageCreate) SetStoragePath(v string) *ImportPackageCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableStoragePath(v *string) *ImportPackageCreate {
	if v != nil {
		_c.SetStoragePath(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *ImportPackageCreate) SetIsArchived(v bool) *ImportPackageCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableIsArchived(v *bool) *ImportPackageCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetArchivePath sets the "archive_path" field.
func (_c *ImportPackageCreate) SetArchivePath(v string) *ImportPackageCreate {
	_c.mutation.SetArchivePath(v)
	return _c
}

// SetNillableArchivePath sets the "archive_path" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableArchivePath(v *string) *ImportPackageCreate {
	if v != nil {
		_c.SetArchivePath(*v)
	}
	return _c
}

// SetArchivedDate sets the "archived_date" field.
func (_c *ImportPackageCreate) SetArchivedDate(v time.Time) *ImportPackageCreate {
	_c.mutation.SetArchivedDate(v)
	return _c
}

// SetNillableArchivedDate sets the "archived_date" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableArchivedDate(v *time.Time) *ImportPackageCreate {
	if v != nil {
		_c.SetArchivedDate(*v)
	}
	return _c
}

// SetValidationSummary sets the "validation_summary" field.
func (_c *ImportPackageCreate) SetValidationSummary(v *domain.ValidationSummary) *ImportPackageCreate {
	_c.mutation.SetValidationSummary(v)
	return _c
}

// SetConflictCount sets the "conflict_count" field.
func (_c *ImportPackageCreate) SetConflictCount(v int) *ImportPackageCreate {
	_c.mutation.SetConflictCount(v)
	return _c
}

// SetNillableConflictCount sets the "conflict_count" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableConflictCount(v *int) *ImportPackageCreate {
	if v != nil {
		_c.SetConflictCount(*v)
	}
	return _c
}

// SetUnresolvedConflictCount sets the "unresolved_conflict_count" field.
func (_c *ImportPackageCreate) SetUnresolvedConflictCount(v int) *ImportPackageCreate {
	_c.mutation.SetUnresolvedConflictCount(v)
	return _c
}

// SetNillableUnresolvedConflictCount sets the "unresolved_conflict_count" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableUnresolvedConflictCount(v *int) *ImportPackageCreate {
	if v != nil {
		_c.SetUnresolvedConflictCount(*v)
	}
	return _c
}

// SetCommittedDate sets the "committed_date" field.
func (_c *ImportPackageCreate) SetCommittedDate(v time.Time) *ImportPackageCreate {
	_c.mutation.SetCommittedDate(v)
	return _c
}

// SetNillableCommittedDate sets the "committed_date" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableCommittedDate(v *time.Time) *ImportPackageCreate {
	if v != nil {
		_c.SetCommittedDate(*v)
	}
	return _c
}

// SetCommitReport sets the "commit_report" field.
func (_c *ImportPackageCreate) SetCommitReport(v *domain.CommitReport) *ImportPackageCreate {
	_c.mutation.SetCommitReport(v)
	return _c
}

// SetQuarantinedReason sets the "quarantined_reason" field.
func (_c *ImportPackageCreate) SetQuarantinedReason(v string) *ImportPackageCreate {
	_c.mutation.SetQuarantinedReason(v)
	return _c
}

// SetNillableQuarantinedReason sets the "quarantined_reason" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableQuarantinedReason(v *string) *ImportPackageCreate {
	if v != nil {
		_c.SetQuarantinedReason(*v)
	}
	return _c
}

// SetCancelledReason sets the "cancelled_reason" field.
func (_c *ImportPackageCreate) SetCancelledReason(v string) *ImportPackageCreate {
	_c.mutation.SetCancelledReason(v)
	return _c
}

// SetNillableCancelledReason sets the "cancelled_reason" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableCancelledReason(v *string) *ImportPackageCreate {
	if v != nil {
		_c.SetCancelledReason(*v)
	}
	return _c
}

// SetCancelledBy sets the "cancelled_by" field.
func (_c *ImportPackageCreate) SetCancelledBy(v string) *ImportPackageCreate {
	_c.mutation.SetCancelledBy(v)
	return _c
}

// SetNillableCancelledBy sets the "cancelled_by" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableCancelledBy(v *string) *ImportPackageCreate {
	if v != nil {
		_c.SetCancelledBy(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *ImportPackageCreate) SetCancelledAt(v time.Time) *ImportPackageCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *ImportPackageCreate) SetNillableCancelledAt(v *time.Time) *ImportPackageCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetReceivedBy sets the "received_by" field.
func (_c *ImportPackageCreate) SetReceivedBy(v string) *ImportPackageCreate {
	_c.mutation.SetReceivedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ImportPackageCreate) SetID(v uuid.UUID) *ImportPackageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ImportPackageMutation object of the builder.
func (_c *ImportPackageCreate) Mutation() *ImportPackageMutation {
	return _c.mutation
}

// Save creates the ImportPackage in the database.
func (_c *ImportPackageCreate) Save(ctx context.Context) (*ImportPackage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportPackageCreate) SaveX(ctx context.Context) *ImportPackage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportPackageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportPackageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportPackageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := importpackage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := importpackage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := importpackage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ImportMethod(); !ok {
		v := importpackage.DefaultImportMethod
		_c.mutation.SetImportMethod(v)
	}
	if _, ok := _c.mutation.SignatureStatus(); !ok {
		v := importpackage.DefaultSignatureStatus
		_c.mutation.SetSignatureStatus(v)
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := importpackage.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.ConflictCount(); !ok {
		v := importpackage.DefaultConflictCount
		_c.mutation.SetConflictCount(v)
	}
	if _, ok := _c.mutation.UnresolvedConflictCount(); !ok {
		v := importpackage.DefaultUnresolvedConflictCount
		_c.mutation.SetUnresolvedConflictCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportPackageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImportPackage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ImportPackage.updated_at"`)}
	}
	if _, ok := _c.mutation.PackageNumber(); !ok {
		return &ValidationError{Name: "package_number", err: errors.New(`ent: missing required field "ImportPackage.package_number"`)}
	}
	if v, ok := _c.mutation.PackageNumber(); ok {
		if err := importpackage.PackageNumberValidator(v); err != nil {
			return &ValidationError{Name: "package_number", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.package_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ImportPackage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := importpackage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImportMethod(); !ok {
		return &ValidationError{Name: "import_method", err: errors.New(`ent: missing required field "ImportPackage.import_method"`)}
	}
	if v, ok := _c.mutation.ImportMethod(); ok {
		if err := importpackage.ImportMethodValidator(v); err != nil {
			return &ValidationError{Name: "import_method", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.import_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ImportPackage.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := importpackage.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSizeBytes(); !ok {
		return &ValidationError{Name: "file_size_bytes", err: errors.New(`ent: missing required field "ImportPackage.file_size_bytes"`)}
	}
	if v, ok := _c.mutation.FileSizeBytes(); ok {
		if err := importpackage.FileSizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "file_size_bytes", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.file_size_bytes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "ImportPackage.schema_version"`)}
	}
	if v, ok := _c.mutation.SchemaVersion(); ok {
		if err := importpackage.SchemaVersionValidator(v); err != nil {
			return &ValidationError{Name: "schema_version", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.schema_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ManifestCreatedUtc(); !ok {
		return &ValidationError{Name: "manifest_created_utc", err: errors.New(`ent: missing required field "ImportPackage.manifest_created_utc"`)}
	}
	if _, ok := _c.mutation.ExportedDateUtc(); !ok {
		return &ValidationError{Name: "exported_date_utc", err: errors.New(`ent: missing required field "ImportPackage.exported_date_utc"`)}
	}
	if _, ok := _c.mutation.DeviceID(); !ok {
		return &ValidationError{Name: "device_id", err: errors.New(`ent: missing required field "ImportPackage.device_id"`)}
	}
	if v, ok := _c.mutation.DeviceID(); ok {
		if err := importpackage.DeviceIDValidator(v); err != nil {
			return &ValidationError{Name: "device_id", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.device_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalRecordCount(); !ok {
		return &ValidationError{Name: "total_record_count", err: errors.New(`ent: missing required field "ImportPackage.total_record_count"`)}
	}
	if v, ok := _c.mutation.TotalRecordCount(); ok {
		if err := importpackage.TotalRecordCountValidator(v); err != nil {
			return &ValidationError{Name: "total_record_count", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.total_record_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAttachmentSizeBytes(); !ok {
		return &ValidationError{Name: "total_attachment_size_bytes", err: errors.New(`ent: missing required field "ImportPackage.total_attachment_size_bytes"`)}
	}
	if v, ok := _c.mutation.TotalAttachmentSizeBytes(); ok {
		if err := importpackage.TotalAttachmentSizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "total_attachment_size_bytes", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.total_attachment_size_bytes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SignatureStatus(); !ok {
		return &ValidationError{Name: "signature_status", err: errors.New(`ent: missing required field "ImportPackage.signature_status"`)}
	}
	if v, ok := _c.mutation.SignatureStatus(); ok {
		if err := importpackage.SignatureStatusValidator(v); err != nil {
			return &ValidationError{Name: "signature_status", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.signature_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`ent: missing required field "ImportPackage.is_archived"`)}
	}
	if _, ok := _c.mutation.ConflictCount(); !ok {
		return &ValidationError{Name: "conflict_count", err: errors.New(`ent: missing required field "ImportPackage.conflict_count"`)}
	}
	if v, ok := _c.mutation.ConflictCount(); ok {
		if err := importpackage.ConflictCountValidator(v); err != nil {
			return &ValidationError{Name: "conflict_count", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.conflict_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnresolvedConflictCount(); !ok {
		return &ValidationError{Name: "unresolved_conflict_count", err: errors.New(`ent: missing required field "ImportPackage.unresolved_conflict_count"`)}
	}
	if v, ok := _c.mutation.UnresolvedConflictCount(); ok {
		if err := importpackage.UnresolvedConflictCountValidator(v); err != nil {
			return &ValidationError{Name: "unresolved_conflict_count", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.unresolved_conflict_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceivedBy(); !ok {
		return &ValidationError{Name: "received_by", err: errors.New(`ent: missing required field "ImportPackage.received_by"`)}
	}
	if v, ok := _c.mutation.ReceivedBy(); ok {
		if err := importpackage.ReceivedByValidator(v); err != nil {
			return &ValidationError{Name: "received_by", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.received_by": %w`, err)}
		}
	}
	return nil
}

func (_c *ImportPackageCreate) sqlSave(ctx context.Context) (*ImportPackage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImportPackageCreate) createSpec() (*ImportPackage, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportPackage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importpackage.Table, sqlgraph.NewFieldSpec(importpackage.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(importpackage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(importpackage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PackageNumber(); ok {
		_spec.SetField(importpackage.FieldPackageNumber, field.TypeString, value)
		_node.PackageNumber = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(importpackage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ImportMethod(); ok {
		_spec.SetField(importpackage.FieldImportMethod, field.TypeEnum, value)
		_node.ImportMethod = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(importpackage.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FileSizeBytes(); ok {
		_spec.SetField(importpackage.FieldFileSizeBytes, field.TypeInt64, value)
		_node.FileSizeBytes = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(importpackage.FieldSchemaVersion, field.TypeString, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.ManifestCreatedUtc(); ok {
		_spec.SetField(importpackage.FieldManifestCreatedUtc, field.TypeTime, value)
		_node.ManifestCreatedUtc = value
	}
	if value, ok := _c.mutation.ExportedDateUtc(); ok {
		_spec.SetField(importpackage.FieldExportedDateUtc, field.TypeTime, value)
		_node.ExportedDateUtc = value
	}
	if value, ok := _c.mutation.ExportedByUserID(); ok {
		_spec.SetField(importpackage.FieldExportedByUserID, field.TypeString, value)
		_node.ExportedByUserID = value
	}
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(importpackage.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.TotalRecordCount(); ok {
		_spec.SetField(importpackage.FieldTotalRecordCount, field.TypeInt, value)
		_node.TotalRecordCount = value
	}
	if value, ok := _c.mutation.EntityCounts(); ok {
		_spec.SetField(importpackage.FieldEntityCounts, field.TypeJSON, value)
		_node.EntityCounts = value
	}
	if value, ok := _c.mutation.TotalAttachmentSizeBytes(); ok {
		_spec.SetField(importpackage.FieldTotalAttachmentSizeBytes, field.TypeInt64, value)
		_node.TotalAttachmentSizeBytes = value
	}
	if value, ok := _c.mutation.VocabularyVersions(); ok {
		_spec.SetField(importpackage.FieldVocabularyVersions, field.TypeJSON, value)
		_node.VocabularyVersions = value
	}
	if value, ok := _c.mutation.ExpectedChecksum(); ok {
		_spec.SetField(importpackage.FieldExpectedChecksum, field.TypeString, value)
		_node.ExpectedChecksum = value
	}
	if value, ok := _c.mutation.ComputedChecksum(); ok {
		_spec.SetField(importpackage.FieldComputedChecksum, field.TypeString, value)
		_node.ComputedChecksum = value
	}
	if value, ok := _c.mutation.SignatureStatus(); ok {
		_spec.SetField(importpackage.FieldSignatureStatus, field.TypeEnum, value)
		_node.SignatureStatus = value
	}
	if value, ok := _c.mutation.ReceiveWarnings(); ok {
		_spec.SetField(importpackage.FieldReceiveWarnings, field.TypeJSON, value)
		_node.ReceiveWarnings = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(importpackage.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(importpackage.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.ArchivePath(); ok {
		_spec.SetField(importpackage.FieldArchivePath, field.TypeString, value)
		_node.ArchivePath = value
	}
	if value, ok := _c.mutation.ArchivedDate(); ok {
		_spec.SetField(importpackage.FieldArchivedDate, field.TypeTime, value)
		_node.ArchivedDate = &value
	}
	if value, ok := _c.mutation.ValidationSummary(); ok {
		_spec.SetField(importpackage.FieldValidationSummary, field.TypeJSON, value)
		_node.ValidationSummary = value
	}
	if value, ok := _c.mutation.ConflictCount(); ok {
		_spec.SetField(importpackage.FieldConflictCount, field.TypeInt, value)
		_node.ConflictCount = value
	}
	if value, ok := _c.mutation.UnresolvedConflictCount(); ok {
		_spec.SetField(importpackage.FieldUnresolvedConflictCount, field.TypeInt, value)
		_node.UnresolvedConflictCount = value
	}
	if value, ok := _c.mutation.CommittedDate(); ok {
		_spec.SetField(importpackage.FieldCommittedDate, field.TypeTime, value)
		_node.CommittedDate = &value
	}
	if value, ok := _c.mutation.CommitReport(); ok {
		_spec.SetField(importpackage.FieldCommitReport, field.TypeJSON, value)
		_node.CommitReport = value
	}
	if value, ok := _c.mutation.QuarantinedReason(); ok {
		_spec.SetField(importpackage.FieldQuarantinedReason, field.TypeString, value)
		_node.QuarantinedReason = value
	}
	if value, ok := _c.mutation.CancelledReason(); ok {
		_spec.SetField(importpackage.FieldCancelledReason, field.TypeString, value)
		_node.CancelledReason = value
	}
	if value, ok := _c.mutation.CancelledBy(); ok {
		_spec.SetField(importpackage.FieldCancelledBy, field.TypeString, value)
		_node.CancelledBy = value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(importpackage.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.ReceivedBy(); ok {
		_spec.SetField(importpackage.FieldReceivedBy, field.TypeString, value)
		_node.ReceivedBy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ImportPackage.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ImportPackageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ImportPackageCreate) OnConflict(opts ...sql.ConflictOption) *ImportPackageUpsertOne {
	_c.conflict = opts
	return &ImportPackageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ImportPackage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ImportPackageCreate) OnConflictColumns(columns ...string) *ImportPackageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ImportPackageUpsertOne{
		create: _c,
	}
}

type (
	// ImportPackageUpsertOne is the builder for "upsert"-ing
	//  one ImportPackage node.
	ImportPackageUpsertOne struct {
		create *ImportPackageCreate
	}

	// ImportPackageUpsert is the "OnConflict" setter.
	ImportPackageUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ImportPackageUpsert) SetUpdatedAt(v time.Time) *ImportPackageUpsert {
	u.Set(importpackage.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateUpdatedAt() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldUpdatedAt)
	return u
}

// SetStatus sets the "status" field.
func (u *ImportPackageUpsert) SetStatus(v importpackage.Status) *ImportPackageUpsert {
	u.Set(importpackage.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateStatus() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldStatus)
	return u
}

// SetEntityCounts sets the "entity_counts" field.
func (u *ImportPackageUpsert) SetEntityCounts(v map[domain.EntityType]int) *ImportPackageUpsert {
	u.Set(importpackage.FieldEntityCounts, v)
	return u
}

// UpdateEntityCounts sets the "entity_counts" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateEntityCounts() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldEntityCounts)
	return u
}

// ClearEntityCounts clears the value of the "entity_counts" field.
func (u *ImportPackageUpsert) ClearEntityCounts() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldEntityCounts)
	return u
}

// SetVocabularyVersions sets the "vocabulary_versions" field.
func (u *ImportPackageUpsert) SetVocabularyVersions(v map[string]string) *ImportPackageUpsert {
	u.Set(importpackage.FieldVocabularyVersions, v)
	return u
}

// UpdateVocabularyVersions sets the "vocabulary_versions" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateVocabularyVersions() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldVocabularyVersions)
	return u
}

// ClearVocabularyVersions clears the value of the "vocabulary_versions" field.
func (u *ImportPackageUpsert) ClearVocabularyVersions() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldVocabularyVersions)
	return u
}

// SetSignatureStatus sets the "signature_status" field.
func (u *ImportPackageUpsert) SetSignatureStatus(v importpackage.SignatureStatus) *ImportPackageUpsert {
	u.Set(importpackage.FieldSignatureStatus, v)
	return u
}

// UpdateSignatureStatus sets the "signature_status" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateSignatureStatus() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldSignatureStatus)
	return u
}

// SetReceiveWarnings sets the "receive_warnings" field.
func (u *ImportPackageUpsert) SetReceiveWarnings(v []string) *ImportPackageUpsert {
	u.Set(importpackage.FieldReceiveWarnings, v)
	return u
}

// UpdateReceiveWarnings sets the "receive_warnings" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateReceiveWarnings() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldReceiveWarnings)
	return u
}

// ClearReceiveWarnings clears the value of the "receive_warnings" field.
func (u *ImportPackageUpsert) ClearReceiveWarnings() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldReceiveWarnings)
	return u
}

// SetStoragePath sets the "storage_path" field.
func (u *ImportPackageUpsert) SetStoragePath(v string) *ImportPackageUpsert {
	u.Set(importpackage.FieldStoragePath, v)
	return u
}

// UpdateStoragePath sets the "storage_path" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateStoragePath() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldStoragePath)
	return u
}

// ClearStoragePath clears the value of the "storage_path" field.
func (u *ImportPackageUpsert) ClearStoragePath() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldStoragePath)
	return u
}

// SetIsArchived sets the "is_archived" field.
func (u *ImportPackageUpsert) SetIsArchived(v bool) *ImportPackageUpsert {
	u.Set(importpackage.FieldIsArchived, v)
	return u
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateIsArchived() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldIsArchived)
	return u
}

// SetArchivePath sets the "archive_path" field.
func (u *ImportPackageUpsert) SetArchivePath(v string) *ImportPackageUpsert {
	u.Set(importpackage.FieldArchivePath, v)
	return u
}

// UpdateArchivePath sets the "archive_path" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateArchivePath() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldArchivePath)
	return u
}

// ClearArchivePath clears the value of the "archive_path" field.
func (u *ImportPackageUpsert) ClearArchivePath() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldArchivePath)
	return u
}

// SetArchivedDate sets the "archived_date" field.
func (u *ImportPackageUpsert) SetArchivedDate(v time.Time) *ImportPackageUpsert {
	u.Set(importpackage.FieldArchivedDate, v)
	return u
}

// UpdateArchivedDate sets the "archived_date" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateArchivedDate() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldArchivedDate)
	return u
}

// ClearArchivedDate clears the value of the "archived_date" field.
func (u *ImportPackageUpsert) ClearArchivedDate() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldArchivedDate)
	return u
}

// SetValidationSummary sets the "validation_summary" field.
func (u *ImportPackageUpsert) SetValidationSummary(v *domain.ValidationSummary) *ImportPackageUpsert {
	u.Set(importpackage.FieldValidationSummary, v)
	return u
}

// UpdateValidationSummary sets the "validation_summary" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateValidationSummary() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldValidationSummary)
	return u
}

// ClearValidationSummary clears the value of the "validation_summary" field.
func (u *ImportPackageUpsert) ClearValidationSummary() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldValidationSummary)
	return u
}

// SetConflictCount sets the "conflict_count" field.
func (u *ImportPackageUpsert) SetConflictCount(v int) *ImportPackageUpsert {
	u.Set(importpackage.FieldConflictCount, v)
	return u
}

// UpdateConflictCount sets the "conflict_count" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateConflictCount() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldConflictCount)
	return u
}

// AddConflictCount adds v to the "conflict_count" field.
func (u *ImportPackageUpsert) AddConflictCount(v int) *ImportPackageUpsert {
	u.Add(importpackage.FieldConflictCount, v)
	return u
}

// SetUnresolvedConflictCount sets the "unresolved_conflict_count" field.
func (u *ImportPackageUpsert) SetUnresolvedConflictCount(v int) *ImportPackageUpsert {
	u.Set(importpackage.FieldUnresolvedConflictCount, v)
	return u
}

// UpdateUnresolvedConflictCount sets the "unresolved_conflict_count" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateUnresolvedConflictCount() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldUnresolvedConflictCount)
	return u
}

// AddUnresolvedConflictCount adds v to the "unresolved_conflict_count" field.
func (u *ImportPackageUpsert) AddUnresolvedConflictCount(v int) *ImportPackageUpsert {
	u.Add(importpackage.FieldUnresolvedConflictCount, v)
	return u
}

// SetCommittedDate sets the "committed_date" field.
func (u *ImportPackageUpsert) SetCommittedDate(v time.Time) *ImportPackageUpsert {
	u.Set(importpackage.FieldCommittedDate, v)
	return u
}

// UpdateCommittedDate sets the "committed_date" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateCommittedDate() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldCommittedDate)
	return u
}

// ClearCommittedDate clears the value of the "committed_date" field.
func (u *ImportPackageUpsert) ClearCommittedDate() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldCommittedDate)
	return u
}

// SetCommitReport sets the "commit_report" field.
func (u *ImportPackageUpsert) SetCommitReport(v *domain.CommitReport) *ImportPackageUpsert {
	u.Set(importpackage.FieldCommitReport, v)
	return u
}

// UpdateCommitReport sets the "commit_report" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateCommitReport() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldCommitReport)
	return u
}

// ClearCommitReport clears the value of the "commit_report" field.
func (u *ImportPackageUpsert) ClearCommitReport() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldCommitReport)
	return u
}

// SetQuarantinedReason sets the "quarantined_reason" field.
func (u *ImportPackageUpsert) SetQuarantinedReason(v string) *ImportPackageUpsert {
	u.Set(importpackage.FieldQuarantinedReason, v)
	return u
}

// UpdateQuarantinedReason sets the "quarantined_reason" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateQuarantinedReason() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldQuarantinedReason)
	return u
}

// ClearQuarantinedReason clears the value of the "quarantined_reason" field.
func (u *ImportPackageUpsert) ClearQuarantinedReason() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldQuarantinedReason)
	return u
}

// SetCancelledReason sets the "cancelled_reason" field.
func (u *ImportPackageUpsert) SetCancelledReason(v string) *ImportPackageUpsert {
	u.Set(importpackage.FieldCancelledReason, v)
	return u
}

// UpdateCancelledReason sets the "cancelled_reason" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateCancelledReason() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldCancelledReason)
	return u
}

// ClearCancelledReason clears the value of the "cancelled_reason" field.
func (u *ImportPackageUpsert) ClearCancelledReason() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldCancelledReason)
	return u
}

// SetCancelledBy sets the "cancelled_by" field.
func (u *ImportPackageUpsert) SetCancelledBy(v string) *ImportPackageUpsert {
	u.Set(importpackage.FieldCancelledBy, v)
	return u
}

// UpdateCancelledBy sets the "cancelled_by" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateCancelledBy() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldCancelledBy)
	return u
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (u *ImportPackageUpsert) ClearCancelledBy() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldCancelledBy)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *ImportPackageUpsert) SetCancelledAt(v time.Time) *ImportPackageUpsert {
	u.Set(importpackage.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *ImportPackageUpsert) UpdateCancelledAt() *ImportPackageUpsert {
	u.SetExcluded(importpackage.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *ImportPackageUpsert) ClearCancelledAt() *ImportPackageUpsert {
	u.SetNull(importpackage.FieldCancelledAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ImportPackage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(importpackage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ImportPackageUpsertOne) UpdateNewValues() *ImportPackageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(importpackage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(importpackage.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.PackageNumber(); exists {
			s.SetIgnore(importpackage.FieldPackageNumber)
		}
		if _, exists := u.create.mutation.ImportMethod(); exists {
			s.SetIgnore(importpackage.FieldImportMethod)
		}
		if _, exists := u.create.mutation.FileName(); exists {
			s.SetIgnore(importpackage.FieldFileName)
		}
		if _, exists := u.create.mutation.FileSizeBytes(); exists {
			s.SetIgnore(importpackage.FieldFileSizeBytes)
		}
		if _, exists := u.create.mutation.SchemaVersion(); exists {
			s.SetIgnore(importpackage.FieldSchemaVersion)
		}
		if _, exists := u.create.mutation.ManifestCreatedUtc(); exists {
			s.SetIgnore(importpackage.FieldManifestCreatedUtc)
		}
		if _, exists := u.create.mutation.ExportedDateUtc(); exists {
			s.SetIgnore(importpackage.FieldExportedDateUtc)
		}
		if _, exists := u.create.mutation.ExportedByUserID(); exists {
			s.SetIgnore(importpackage.FieldExportedByUserID)
		}
		if _, exists := u.create.mutation.DeviceID(); exists {
			s.SetIgnore(importpackage.FieldDeviceID)
		}
		if _, exists := u.create.mutation.TotalRecordCount(); exists {
			s.SetIgnore(importpackage.FieldTotalRecordCount)
		}
		if _, exists := u.create.mutation.TotalAttachmentSizeBytes(); exists {
			s.SetIgnore(importpackage.FieldTotalAttachmentSizeBytes)
		}
		if _, exists := u.create.mutation.ExpectedChecksum(); exists {
			s.SetIgnore(importpackage.FieldExpectedChecksum)
		}
		if _, exists := u.create.mutation.ComputedChecksum(); exists {
			s.SetIgnore(importpackage.FieldComputedChecksum)
		}
		if _, exists := u.create.mutation.ReceivedBy(); exists {
			s.SetIgnore(importpackage.FieldReceivedBy)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ImportPackage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ImportPackageUpsertOne) Ignore() *ImportPackageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ImportPackageUpsertOne) DoNothing() *ImportPackageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ImportPackageCreate.OnConflict
// documentation for more info.
func (u *ImportPackageUpsertOne) Update(set func(*ImportPackageUpsert)) *ImportPackageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ImportPackageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ImportPackageUpsertOne) SetUpdatedAt(v time.Time) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateUpdatedAt() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStatus sets the "status" field.
func (u *ImportPackageUpsertOne) SetStatus(v importpackage.Status) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateStatus() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateStatus()
	})
}

// SetEntityCounts sets the "entity_counts" field.
func (u *ImportPackageUpsertOne) SetEntityCounts(v map[domain.EntityType]int) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetEntityCounts(v)
	})
}

// UpdateEntityCounts sets the "entity_counts" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateEntityCounts() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateEntityCounts()
	})
}

// ClearEntityCounts clears the value of the "entity_counts" field.
func (u *ImportPackageUpsertOne) ClearEntityCounts() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearEntityCounts()
	})
}

// SetVocabularyVersions sets the "vocabulary_versions" field.
func (u *ImportPackageUpsertOne) SetVocabularyVersions(v map[string]string) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetVocabularyVersions(v)
	})
}

// UpdateVocabularyVersions sets the "vocabulary_versions" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateVocabularyVersions() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateVocabularyVersions()
	})
}

// ClearVocabularyVersions clears the value of the "vocabulary_versions" field.
func (u *ImportPackageUpsertOne) ClearVocabularyVersions() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearVocabularyVersions()
	})
}

// SetSignatureStatus sets the "signature_status" field.
func (u *ImportPackageUpsertOne) SetSignatureStatus(v importpackage.SignatureStatus) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetSignatureStatus(v)
	})
}

// UpdateSignatureStatus sets the "signature_status" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateSignatureStatus() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateSignatureStatus()
	})
}

// SetReceiveWarnings sets the "receive_warnings" field.
func (u *ImportPackageUpsertOne) SetReceiveWarnings(v []string) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetReceiveWarnings(v)
	})
}

// UpdateReceiveWarnings sets the "receive_warnings" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateReceiveWarnings() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateReceiveWarnings()
	})
}

// ClearReceiveWarnings clears the value of the "receive_warnings" field.
func (u *ImportPackageUpsertOne) ClearReceiveWarnings() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearReceiveWarnings()
	})
}

// SetStoragePath sets the "storage_path" field.
func (u *ImportPackageUpsertOne) SetStoragePath(v string) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetStoragePath(v)
	})
}

// UpdateStoragePath sets the "storage_path" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateStoragePath() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateStoragePath()
	})
}

// ClearStoragePath clears the value of the "storage_path" field.
func (u *ImportPackageUpsertOne) ClearStoragePath() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearStoragePath()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *ImportPackageUpsertOne) SetIsArchived(v bool) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateIsArchived() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivePath sets the "archive_path" field.
func (u *ImportPackageUpsertOne) SetArchivePath(v string) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetArchivePath(v)
	})
}

// UpdateArchivePath sets the "archive_path" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateArchivePath() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateArchivePath()
	})
}

// ClearArchivePath clears the value of the "archive_path" field.
func (u *ImportPackageUpsertOne) ClearArchivePath() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearArchivePath()
	})
}

// SetArchivedDate sets the "archived_date" field.
func (u *ImportPackageUpsertOne) SetArchivedDate(v time.Time) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetArchivedDate(v)
	})
}

// UpdateArchivedDate sets the "archived_date" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateArchivedDate() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateArchivedDate()
	})
}

// ClearArchivedDate clears the value of the "archived_date" field.
func (u *ImportPackageUpsertOne) ClearArchivedDate() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearArchivedDate()
	})
}

// SetValidationSummary sets the "validation_summary" field.
func (u *ImportPackageUpsertOne) SetValidationSummary(v *domain.ValidationSummary) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetValidationSummary(v)
	})
}

// UpdateValidationSummary sets the "validation_summary" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateValidationSummary() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateValidationSummary()
	})
}

// ClearValidationSummary clears the value of the "validation_summary" field.
func (u *ImportPackageUpsertOne) ClearValidationSummary() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearValidationSummary()
	})
}

// SetConflictCount sets the "conflict_count" field.
func (u *ImportPackageUpsertOne) SetConflictCount(v int) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetConflictCount(v)
	})
}

// AddConflictCount adds v to the "conflict_count" field.
func (u *ImportPackageUpsertOne) AddConflictCount(v int) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.AddConflictCount(v)
	})
}

// UpdateConflictCount sets the "conflict_count" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateConflictCount() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateConflictCount()
	})
}

// SetUnresolvedConflictCount sets the "unresolved_conflict_count" field.
func (u *ImportPackageUpsertOne) SetUnresolvedConflictCount(v int) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetUnresolvedConflictCount(v)
	})
}

// AddUnresolvedConflictCount adds v to the "unresolved_conflict_count" field.
func (u *ImportPackageUpsertOne) AddUnresolvedConflictCount(v int) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.AddUnresolvedConflictCount(v)
	})
}

// UpdateUnresolvedConflictCount sets the "unresolved_conflict_count" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateUnresolvedConflictCount() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateUnresolvedConflictCount()
	})
}

// SetCommittedDate sets the "committed_date" field.
func (u *ImportPackageUpsertOne) SetCommittedDate(v time.Time) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetCommittedDate(v)
	})
}

// UpdateCommittedDate sets the "committed_date" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateCommittedDate() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateCommittedDate()
	})
}

// ClearCommittedDate clears the value of the "committed_date" field.
func (u *ImportPackageUpsertOne) ClearCommittedDate() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearCommittedDate()
	})
}

// SetCommitReport sets the "commit_report" field.
func (u *ImportPackageUpsertOne) SetCommitReport(v *domain.CommitReport) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetCommitReport(v)
	})
}

// UpdateCommitReport sets the "commit_report" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateCommitReport() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateCommitReport()
	})
}

// ClearCommitReport clears the value of the "commit_report" field.
func (u *ImportPackageUpsertOne) ClearCommitReport() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearCommitReport()
	})
}

// SetQuarantinedReason sets the "quarantined_reason" field.
func (u *ImportPackageUpsertOne) SetQuarantinedReason(v string) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetQuarantinedReason(v)
	})
}

// UpdateQuarantinedReason sets the "quarantined_reason" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateQuarantinedReason() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateQuarantinedReason()
	})
}

// ClearQuarantinedReason clears the value of the "quarantined_reason" field.
func (u *ImportPackageUpsertOne) ClearQuarantinedReason() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearQuarantinedReason()
	})
}

// SetCancelledReason sets the "cancelled_reason" field.
func (u *ImportPackageUpsertOne) SetCancelledReason(v string) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetCancelledReason(v)
	})
}

// UpdateCancelledReason sets the "cancelled_reason" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateCancelledReason() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateCancelledReason()
	})
}

// ClearCancelledReason clears the value of the "cancelled_reason" field.
func (u *ImportPackageUpsertOne) ClearCancelledReason() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearCancelledReason()
	})
}

// SetCancelledBy sets the "cancelled_by" field.
func (u *ImportPackageUpsertOne) SetCancelledBy(v string) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetCancelledBy(v)
	})
}

// UpdateCancelledBy sets the "cancelled_by" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateCancelledBy() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateCancelledBy()
	})
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (u *ImportPackageUpsertOne) ClearCancelledBy() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearCancelledBy()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *ImportPackageUpsertOne) SetCancelledAt(v time.Time) *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *ImportPackageUpsertOne) UpdateCancelledAt() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *ImportPackageUpsertOne) ClearCancelledAt() *ImportPackageUpsertOne {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearCancelledAt()
	})
}

// Exec executes the query.
func (u *ImportPackageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ImportPackageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ImportPackageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ImportPackageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ImportPackageUpsertOne.ID is not supported by MySQL driver. Use ImportPackageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ImportPackageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ImportPackageCreateBulk is the builder for creating many ImportPackage entities in bulk.
type ImportPackageCreateBulk struct {
	config
	err      error
	builders []*ImportPackageCreate
	conflict []sql.ConflictOption
}

// Save creates the ImportPackage entities in the database.
func (_c *ImportPackageCreateBulk) Save(ctx context.Context) ([]*ImportPackage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportPackage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportPackageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ImportPackageCreateBulk) SaveX(ctx context.Context) []*ImportPackage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportPackageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportPackageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ImportPackage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ImportPackageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ImportPackageCreateBulk) OnConflict(opts ...sql.ConflictOption) *ImportPackageUpsertBulk {
	_c.conflict = opts
	return &ImportPackageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ImportPackage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ImportPackageCreateBulk) OnConflictColumns(columns ...string) *ImportPackageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ImportPackageUpsertBulk{
		create: _c,
	}
}

// ImportPackageUpsertBulk is the builder for "upsert"-ing
// a bulk of ImportPackage nodes.
type ImportPackageUpsertBulk struct {
	create *ImportPackageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ImportPackage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(importpackage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ImportPackageUpsertBulk) UpdateNewValues() *ImportPackageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(importpackage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(importpackage.FieldCreatedAt)
			}
			if _, exists := b.mutation.PackageNumber(); exists {
				s.SetIgnore(importpackage.FieldPackageNumber)
			}
			if _, exists := b.mutation.ImportMethod(); exists {
				s.SetIgnore(importpackage.FieldImportMethod)
			}
			if _, exists := b.mutation.FileName(); exists {
				s.SetIgnore(importpackage.FieldFileName)
			}
			if _, exists := b.mutation.FileSizeBytes(); exists {
				s.SetIgnore(importpackage.FieldFileSizeBytes)
			}
			if _, exists := b.mutation.SchemaVersion(); exists {
				s.SetIgnore(importpackage.FieldSchemaVersion)
			}
			if _, exists := b.mutation.ManifestCreatedUtc(); exists {
				s.SetIgnore(importpackage.FieldManifestCreatedUtc)
			}
			if _, exists := b.mutation.ExportedDateUtc(); exists {
				s.SetIgnore(importpackage.FieldExportedDateUtc)
			}
			if _, exists := b.mutation.ExportedByUserID(); exists {
				s.SetIgnore(importpackage.FieldExportedByUserID)
			}
			if _, exists := b.mutation.DeviceID(); exists {
				s.SetIgnore(importpackage.FieldDeviceID)
			}
			if _, exists := b.mutation.TotalRecordCount(); exists {
				s.SetIgnore(importpackage.FieldTotalRecordCount)
			}
			if _, exists := b.mutation.TotalAttachmentSizeBytes(); exists {
				s.SetIgnore(importpackage.FieldTotalAttachmentSizeBytes)
			}
			if _, exists := b.mutation.ExpectedChecksum(); exists {
				s.SetIgnore(importpackage.FieldExpectedChecksum)
			}
			if _, exists := b.mutation.ComputedChecksum(); exists {
				s.SetIgnore(importpackage.FieldComputedChecksum)
			}
			if _, exists := b.mutation.ReceivedBy(); exists {
				s.SetIgnore(importpackage.FieldReceivedBy)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ImportPackage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ImportPackageUpsertBulk) Ignore() *ImportPackageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ImportPackageUpsertBulk) DoNothing() *ImportPackageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ImportPackageCreateBulk.OnConflict
// documentation for more info.
func (u *ImportPackageUpsertBulk) Update(set func(*ImportPackageUpsert)) *ImportPackageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ImportPackageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ImportPackageUpsertBulk) SetUpdatedAt(v time.Time) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateUpdatedAt() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStatus sets the "status" field.
func (u *ImportPackageUpsertBulk) SetStatus(v importpackage.Status) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateStatus() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateStatus()
	})
}

// SetEntityCounts sets the "entity_counts" field.
func (u *ImportPackageUpsertBulk) SetEntityCounts(v map[domain.EntityType]int) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetEntityCounts(v)
	})
}

// UpdateEntityCounts sets the "entity_counts" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateEntityCounts() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateEntityCounts()
	})
}

// ClearEntityCounts clears the value of the "entity_counts" field.
func (u *ImportPackageUpsertBulk) ClearEntityCounts() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearEntityCounts()
	})
}

// SetVocabularyVersions sets the "vocabulary_versions" field.
func (u *ImportPackageUpsertBulk) SetVocabularyVersions(v map[string]string) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetVocabularyVersions(v)
	})
}

// UpdateVocabularyVersions sets the "vocabulary_versions" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateVocabularyVersions() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateVocabularyVersions()
	})
}

// ClearVocabularyVersions clears the value of the "vocabulary_versions" field.
func (u *ImportPackageUpsertBulk) ClearVocabularyVersions() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearVocabularyVersions()
	})
}

// SetSignatureStatus sets the "signature_status" field.
func (u *ImportPackageUpsertBulk) SetSignatureStatus(v importpackage.SignatureStatus) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetSignatureStatus(v)
	})
}

// UpdateSignatureStatus sets the "signature_status" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateSignatureStatus() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateSignatureStatus()
	})
}

// SetReceiveWarnings sets the "receive_warnings" field.
func (u *ImportPackageUpsertBulk) SetReceiveWarnings(v []string) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetReceiveWarnings(v)
	})
}

// UpdateReceiveWarnings sets the "receive_warnings" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateReceiveWarnings() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateReceiveWarnings()
	})
}

// ClearReceiveWarnings clears the value of the "receive_warnings" field.
func (u *ImportPackageUpsertBulk) ClearReceiveWarnings() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearReceiveWarnings()
	})
}

// SetStoragePath sets the "storage_path" field.
func (u *ImportPackageUpsertBulk) SetStoragePath(v string) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetStoragePath(v)
	})
}

// UpdateStoragePath sets the "storage_path" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateStoragePath() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateStoragePath()
	})
}

// ClearStoragePath clears the value of the "storage_path" field.
func (u *ImportPackageUpsertBulk) ClearStoragePath() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearStoragePath()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *ImportPackageUpsertBulk) SetIsArchived(v bool) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateIsArchived() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivePath sets the "archive_path" field.
func (u *ImportPackageUpsertBulk) SetArchivePath(v string) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetArchivePath(v)
	})
}

// UpdateArchivePath sets the "archive_path" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateArchivePath() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateArchivePath()
	})
}

// ClearArchivePath clears the value of the "archive_path" field.
func (u *ImportPackageUpsertBulk) ClearArchivePath() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearArchivePath()
	})
}

// SetArchivedDate sets the "archived_date" field.
func (u *ImportPackageUpsertBulk) SetArchivedDate(v time.Time) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetArchivedDate(v)
	})
}

// UpdateArchivedDate sets the "archived_date" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateArchivedDate() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateArchivedDate()
	})
}

// ClearArchivedDate clears the value of the "archived_date" field.
func (u *ImportPackageUpsertBulk) ClearArchivedDate() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearArchivedDate()
	})
}

// SetValidationSummary sets the "validation_summary" field.
func (u *ImportPackageUpsertBulk) SetValidationSummary(v *domain.ValidationSummary) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetValidationSummary(v)
	})
}

// UpdateValidationSummary sets the "validation_summary" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateValidationSummary() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateValidationSummary()
	})
}

// ClearValidationSummary clears the value of the "validation_summary" field.
func (u *ImportPackageUpsertBulk) ClearValidationSummary() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearValidationSummary()
	})
}

// SetConflictCount sets the "conflict_count" field.
func (u *ImportPackageUpsertBulk) SetConflictCount(v int) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetConflictCount(v)
	})
}

// AddConflictCount adds v to the "conflict_count" field.
func (u *ImportPackageUpsertBulk) AddConflictCount(v int) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.AddConflictCount(v)
	})
}

// UpdateConflictCount sets the "conflict_count" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateConflictCount() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateConflictCount()
	})
}

// SetUnresolvedConflictCount sets the "unresolved_conflict_count" field.
func (u *ImportPackageUpsertBulk) SetUnresolvedConflictCount(v int) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetUnresolvedConflictCount(v)
	})
}

// AddUnresolvedConflictCount adds v to the "unresolved_conflict_count" field.
func (u *ImportPackageUpsertBulk) AddUnresolvedConflictCount(v int) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.AddUnresolvedConflictCount(v)
	})
}

// UpdateUnresolvedConflictCount sets the "unresolved_conflict_count" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateUnresolvedConflictCount() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateUnresolvedConflictCount()
	})
}

// SetCommittedDate sets the "committed_date" field.
func (u *ImportPackageUpsertBulk) SetCommittedDate(v time.Time) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetCommittedDate(v)
	})
}

// UpdateCommittedDate sets the "committed_date" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateCommittedDate() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateCommittedDate()
	})
}

// ClearCommittedDate clears the value of the "committed_date" field.
func (u *ImportPackageUpsertBulk) ClearCommittedDate() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearCommittedDate()
	})
}

// SetCommitReport sets the "commit_report" field.
func (u *ImportPackageUpsertBulk) SetCommitReport(v *domain.CommitReport) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetCommitReport(v)
	})
}

// UpdateCommitReport sets the "commit_report" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateCommitReport() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateCommitReport()
	})
}

// ClearCommitReport clears the value of the "commit_report" field.
func (u *ImportPackageUpsertBulk) ClearCommitReport() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearCommitReport()
	})
}

// SetQuarantinedReason sets the "quarantined_reason" field.
func (u *ImportPackageUpsertBulk) SetQuarantinedReason(v string) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetQuarantinedReason(v)
	})
}

// UpdateQuarantinedReason sets the "quarantined_reason" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateQuarantinedReason() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateQuarantinedReason()
	})
}

// ClearQuarantinedReason clears the value of the "quarantined_reason" field.
func (u *ImportPackageUpsertBulk) ClearQuarantinedReason() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearQuarantinedReason()
	})
}

// SetCancelledReason sets the "cancelled_reason" field.
func (u *ImportPackageUpsertBulk) SetCancelledReason(v string) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetCancelledReason(v)
	})
}

// UpdateCancelledReason sets the "cancelled_reason" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateCancelledReason() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateCancelledReason()
	})
}

// ClearCancelledReason clears the value of the "cancelled_reason" field.
func (u *ImportPackageUpsertBulk) ClearCancelledReason() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearCancelledReason()
	})
}

// SetCancelledBy sets the "cancelled_by" field.
func (u *ImportPackageUpsertBulk) SetCancelledBy(v string) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetCancelledBy(v)
	})
}

// UpdateCancelledBy sets the "cancelled_by" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateCancelledBy() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateCancelledBy()
	})
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (u *ImportPackageUpsertBulk) ClearCancelledBy() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearCancelledBy()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *ImportPackageUpsertBulk) SetCancelledAt(v time.Time) *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *ImportPackageUpsertBulk) UpdateCancelledAt() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *ImportPackageUpsertBulk) ClearCancelledAt() *ImportPackageUpsertBulk {
	return u.Update(func(s *ImportPackageUpsert) {
		s.ClearCancelledAt()
	})
}

// Exec executes the query.
func (u *ImportPackageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ImportPackageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ImportPackageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ImportPackageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
