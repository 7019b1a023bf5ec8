// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"uhc-registry.io/registry/ent/importpackage"
	"uhc-registry.io/registry/ent/predicate"
	"uhc-registry.io/registry/internal/domain"
)

// ImportPackageUpdate is the builder for updating ImportPackage entities.
type ImportPackageUpdate struct {
	config
	hooks    []Hook
	mutation *ImportPackageMutation
}

// Where appends a list predicates to the ImportPackageUpdate builder.
func (_u *ImportPackageUpdate) Where(ps ...predicate.ImportPackage) *ImportPackageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ImportPackageUpdate) SetUpdatedAt(v time.Time) *ImportPackageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportPackageUpdate) SetStatus(v importpackage.Status) *ImportPackageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableStatus(v *importpackage.Status) *ImportPackageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEntityCounts sets the "entity_counts" field.
func (_u *ImportPackageUpdate) SetEntityCounts(v map[domain.EntityType]int) *ImportPackageUpdate {
	_u.mutation.SetEntityCounts(v)
	return _u
}

// ClearEntityCounts clears the value of the "entity_counts" field.
func (_u *ImportPackageUpdate) ClearEntityCounts() *ImportPackageUpdate {
	_u.mutation.ClearEntityCounts()
	return _u
}

// SetVocabularyVersions sets the "vocabulary_versions" field.
func (_u *ImportPackageUpdate) SetVocabularyVersions(v map[string]string) *ImportPackageUpdate {
	_u.mutation.SetVocabularyVersions(v)
	return _u
}

// ClearVocabularyVersions clears the value of the "vocabulary_versions" field.
func (_u *ImportPackageUpdate) ClearVocabularyVersions() *ImportPackageUpdate {
	_u.mutation.ClearVocabularyVersions()
	return _u
}

// SetSignatureStatus sets the "signature_status" field.
func (_u *ImportPackageUpdate) SetSignatureStatus(v importpackage.SignatureStatus) *ImportPackageUpdate {
	_u.mutation.SetSignatureStatus(v)
	return _u
}

// SetNillableSignatureStatus sets the "signature_status" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableSignatureStatus(v *importpackage.SignatureStatus) *ImportPackageUpdate {
	if v != nil {
		_u.SetSignatureStatus(*v)
	}
	return _u
}

// SetReceiveWarnings sets the "receive_warnings" field.
func (_u *ImportPackageUpdate) SetReceiveWarnings(v []string) *ImportPackageUpdate {
	_u.mutation.SetReceiveWarnings(v)
	return _u
}

// AppendReceiveWarnings appends value to the "receive_warnings" field.
func (_u *ImportPackageUpdate) AppendReceiveWarnings(v []string) *ImportPackageUpdate {
	_u.mutation.AppendReceiveWarnings(v)
	return _u
}

// ClearReceiveWarnings clears the value of the "receive_warnings" field.
func (_u *ImportPackageUpdate) ClearReceiveWarnings() *ImportPackageUpdate {
	_u.mutation.ClearReceiveWarnings()
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *ImportPackageUpdate) SetStoragePath(v string) *ImportPackageUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableStoragePath(v *string) *ImportPackageUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// ClearStoragePath clears the value of the "storage_path" field.
func (_u *ImportPackageUpdate) ClearStoragePath() *ImportPackageUpdate {
	_u.mutation.ClearStoragePath()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *ImportPackageUpdate) SetIsArchived(v bool) *ImportPackageUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableIsArchived(v *bool) *ImportPackageUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivePath sets the "archive_path" field.
func (_u *ImportPackageUpdate) SetArchivePath(v string) *ImportPackageUpdate {
	_u.mutation.SetArchivePath(v)
	return _u
}

// SetNillableArchivePath sets the "archive_path" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableArchivePath(v *string) *ImportPackageUpdate {
	if v != nil {
		_u.SetArchivePath(*v)
	}
	return _u
}

// ClearArchivePath clears the value of the "archive_path" field.
func (_u *ImportPackageUpdate) ClearArchivePath() *ImportPackageUpdate {
	_u.mutation.ClearArchivePath()
	return _u
}

// SetArchivedDate sets the "archived_date" field.
func (_u *ImportPackageUpdate) SetArchivedDate(v time.Time) *ImportPackageUpdate {
	_u.mutation.SetArchivedDate(v)
	return _u
}

// SetNillableArchivedDate sets the "archived_date" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableArchivedDate(v *time.Time) *ImportPackageUpdate {
	if v != nil {
		_u.SetArchivedDate(*v)
	}
	return _u
}

// ClearArchivedDate clears the value of the "archived_date" field.
func (_u *ImportPackageUpdate) ClearArchivedDate() *ImportPackageUpdate {
	_u.mutation.ClearArchivedDate()
	return _u
}

// SetValidationSummary sets the "validation_summary" field.
func (_u *ImportPackageUpdate) SetValidationSummary(v *domain.ValidationSummary) *ImportPackageUpdate {
	_u.mutation.SetValidationSummary(v)
	return _u
}

// ClearValidationSummary clears the value of the "validation_summary" field.
func (_u *ImportPackageUpdate) ClearValidationSummary() *ImportPackageUpdate {
	_u.mutation.ClearValidationSummary()
	return _u
}

// SetConflictCount sets the "conflict_count" field.
func (_u *ImportPackageUpdate) SetConflictCount(v int) *ImportPackageUpdate {
	_u.mutation.ResetConflictCount()
	_u.mutation.SetConflictCount(v)
	return _u
}

// SetNillableConflictCount sets the "conflict_count" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableConflictCount(v *int) *ImportPackageUpdate {
	if v != nil {
		_u.SetConflictCount(*v)
	}
	return _u
}

// AddConflictCount adds value to the "conflict_count" field.
func (_u *ImportPackageUpdate) AddConflictCount(v int) *ImportPackageUpdate {
	_u.mutation.AddConflictCount(v)
	return _u
}

// SetUnresolvedConflictCount sets the "unresolved_conflict_count" field.
func (_u *ImportPackageUpdate) SetUnresolvedConflictCount(v int) *ImportPackageUpdate {
	_u.mutation.ResetUnresolvedConflictCount()
	_u.mutation.SetUnresolvedConflictCount(v)
	return _u
}

// SetNillableUnresolvedConflictCount sets the "unresolved_conflict_count" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableUnresolvedConflictCount(v *int) *ImportPackageUpdate {
	if v != nil {
		_u.SetUnresolvedConflictCount(*v)
	}
	return _u
}

// AddUnresolvedConflictCount adds value to the "unresolved_conflict_count" field.
func (_u *ImportPackageUpdate) AddUnresolvedConflictCount(v int) *ImportPackageUpdate {
	_u.mutation.AddUnresolvedConflictCount(v)
	return _u
}

// SetCommittedDate sets the "committed_date" field.
func (_u *ImportPackageUpdate) SetCommittedDate(v time.Time) *ImportPackageUpdate {
	_u.mutation.SetCommittedDate(v)
	return _u
}

// SetNillableCommittedDate sets the "committed_date" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableCommittedDate(v *time.Time) *ImportPackageUpdate {
	if v != nil {
		_u.SetCommittedDate(*v)
	}
	return _u
}

// ClearCommittedDate clears the value of the "committed_date" field.
func (_u *ImportPackageUpdate) ClearCommittedDate() *ImportPackageUpdate {
	_u.mutation.ClearCommittedDate()
	return _u
}

// SetCommitReport sets the "commit_report" field.
func (_u *ImportPackageUpdate) SetCommitReport(v *domain.CommitReport) *ImportPackageUpdate {
	_u.mutation.SetCommitReport(v)
	return _u
}

// ClearCommitReport clears the value of the "commit_report" field.
func (_u *ImportPackageUpdate) ClearCommitReport() *ImportPackageUpdate {
	_u.mutation.ClearCommitReport()
	return _u
}

// SetQuarantinedReason sets the "quarantined_reason" field.
func (_u *ImportPackageUpdate) SetQuarantinedReason(v string) *ImportPackageUpdate {
	_u.mutation.SetQuarantinedReason(v)
	return _u
}

// SetNillableQuarantinedReason sets the "quarantined_reason" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableQuarantinedReason(v *string) *ImportPackageUpdate {
	if v != nil {
		_u.SetQuarantinedReason(*v)
	}
	return _u
}

// ClearQuarantinedReason clears the value of the "quarantined_reason" field.
func (_u *ImportPackageUpdate) ClearQuarantinedReason() *ImportPackageUpdate {
	_u.mutation.ClearQuarantinedReason()
	return _u
}

// SetCancelledReason sets the "cancelled_reason" field.
func (_u *ImportPackageUpdate) SetCancelledReason(v string) *ImportPackageUpdate {
	_u.mutation.SetCancelledReason(v)
	return _u
}

// SetNillableCancelledReason sets the "cancelled_reason" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableCancelledReason(v *string) *ImportPackageUpdate {
	if v != nil {
		_u.SetCancelledReason(*v)
	}
	return _u
}

// ClearCancelledReason clears the value of the "cancelled_reason" field.
func (_u *ImportPackageUpdate) ClearCancelledReason() *ImportPackageUpdate {
	_u.mutation.ClearCancelledReason()
	return _u
}

// SetCancelledBy sets the "cancelled_by" field.
func (_u *ImportPackageUpdate) SetCancelledBy(v string) *ImportPackageUpdate {
	_u.mutation.SetCancelledBy(v)
	return _u
}

// SetNillableCancelledBy sets the "cancelled_by" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableCancelledBy(v *string) *ImportPackageUpdate {
	if v != nil {
		_u.SetCancelledBy(*v)
	}
	return _u
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (_u *ImportPackageUpdate) ClearCancelledBy() *ImportPackageUpdate {
	_u.mutation.ClearCancelledBy()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *ImportPackageUpdate) SetCancelledAt(v time.Time) *ImportPackageUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *ImportPackageUpdate) SetNillableCancelledAt(v *time.Time) *ImportPackageUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *ImportPackageUpdate) ClearCancelledAt() *ImportPackageUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// Mutation returns the ImportPackageMutation object of the builder.
func (_u *ImportPackageUpdate) Mutation() *ImportPackageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportPackageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportPackageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportPackageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportPackageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ImportPackageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := importpackage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportPackageUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := importpackage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SignatureStatus(); ok {
		if err := importpackage.SignatureStatusValidator(v); err != nil {
			return &ValidationError{Name: "signature_status", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.signature_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConflictCount(); ok {
		if err := importpackage.ConflictCountValidator(v); err != nil {
			return &ValidationError{Name: "conflict_count", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.conflict_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnresolvedConflictCount(); ok {
		if err := importpackage.UnresolvedConflictCountValidator(v); err != nil {
			return &ValidationError{Name: "unresolved_conflict_count", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.unresolved_conflict_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportPackageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importpackage.Table, importpackage.Columns, sqlgraph.NewFieldSpec(importpackage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(importpackage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importpackage.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ExportedByUserIDCleared() {
		_spec.ClearField(importpackage.FieldExportedByUserID, field.TypeString)
	}
	if value, ok := _u.mutation.EntityCounts(); ok {
		_spec.SetField(importpackage.FieldEntityCounts, field.TypeJSON, value)
	}
	if _u.mutation.EntityCountsCleared() {
		_spec.ClearField(importpackage.FieldEntityCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.VocabularyVersions(); ok {
		_spec.SetField(importpackage.FieldVocabularyVersions, field.TypeJSON, value)
	}
	if _u.mutation.VocabularyVersionsCleared() {
		_spec.ClearField(importpackage.FieldVocabularyVersions, field.TypeJSON)
	}
	if _u.mutation.ExpectedChecksumCleared() {
		_spec.ClearField(importpackage.FieldExpectedChecksum, field.TypeString)
	}
	if _u.mutation.ComputedChecksumCleared() {
		_spec.ClearField(importpackage.FieldComputedChecksum, field.TypeString)
	}
	if value, ok := _u.mutation.SignatureStatus(); ok {
		_spec.SetField(importpackage.FieldSignatureStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReceiveWarnings(); ok {
		_spec.SetField(importpackage.FieldReceiveWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReceiveWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, importpackage.FieldReceiveWarnings, value)
		})
	}
	if _u.mutation.ReceiveWarningsCleared() {
		_spec.ClearField(importpackage.FieldReceiveWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(importpackage.FieldStoragePath, field.TypeString, value)
	}
	if _u.mutation.StoragePathCleared() {
		_spec.ClearField(importpackage.FieldStoragePath, field.TypeString)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(importpackage.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivePath(); ok {
		_spec.SetField(importpackage.FieldArchivePath, field.TypeString, value)
	}
	if _u.mutation.ArchivePathCleared() {
		_spec.ClearField(importpackage.FieldArchivePath, field.TypeString)
	}
	if value, ok := _u.mutation.ArchivedDate(); ok {
		_spec.SetField(importpackage.FieldArchivedDate, field.TypeTime, value)
	}
	if _u.mutation.ArchivedDateCleared() {
		_spec.ClearField(importpackage.FieldArchivedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidationSummary(); ok {
		_spec.SetField(importpackage.FieldValidationSummary, field.TypeJSON, value)
	}
	if _u.mutation.ValidationSummaryCleared() {
		_spec.ClearField(importpackage.FieldValidationSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConflictCount(); ok {
		_spec.SetField(importpackage.FieldConflictCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConflictCount(); ok {
		_spec.AddField(importpackage.FieldConflictCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnresolvedConflictCount(); ok {
		_spec.SetField(importpackage.FieldUnresolvedConflictCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnresolvedConflictCount(); ok {
		_spec.AddField(importpackage.FieldUnresolvedConflictCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommittedDate(); ok {
		_spec.SetField(importpackage.FieldCommittedDate, field.TypeTime, value)
	}
	if _u.mutation.CommittedDateCleared() {
		_spec.ClearField(importpackage.FieldCommittedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CommitReport(); ok {
		_spec.SetField(importpackage.FieldCommitReport, field.TypeJSON, value)
	}
	if _u.mutation.CommitReportCleared() {
		_spec.ClearField(importpackage.FieldCommitReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuarantinedReason(); ok {
		_spec.SetField(importpackage.FieldQuarantinedReason, field.TypeString, value)
	}
	if _u.mutation.QuarantinedReasonCleared() {
		_spec.ClearField(importpackage.FieldQuarantinedReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledReason(); ok {
		_spec.SetField(importpackage.FieldCancelledReason, field.TypeString, value)
	}
	if _u.mutation.CancelledReasonCleared() {
		_spec.ClearField(importpackage.FieldCancelledReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledBy(); ok {
		_spec.SetField(importpackage.FieldCancelledBy, field.TypeString, value)
	}
	if _u.mutation.CancelledByCleared() {
		_spec.ClearField(importpackage.FieldCancelledBy, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(importpackage.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(importpackage.FieldCancelledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importpackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportPackageUpdateOne is the builder for updating a single ImportPackage entity.
type ImportPackageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportPackageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ImportPackageUpdateOne) SetUpdatedAt(v time.Time) *ImportPackageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportPackageUpdateOne) SetStatus(v importpackage.Status) *ImportPackageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableStatus(v *importpackage.Status) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEntityCounts sets the "entity_counts" field.
func (_u *ImportPackageUpdateOne) SetEntityCounts(v map[domain.EntityType]int) *ImportPackageUpdateOne {
	_u.mutation.SetEntityCounts(v)
	return _u
}

// ClearEntityCounts clears the value of the "entity_counts" field.
func (_u *ImportPackageUpdateOne) ClearEntityCounts() *ImportPackageUpdateOne {
	_u.mutation.ClearEntityCounts()
	return _u
}

// SetVocabularyVersions sets the "vocabulary_versions" field.
func (_u *ImportPackageUpdateOne) SetVocabularyVersions(v map[string]string) *ImportPackageUpdateOne {
	_u.mutation.SetVocabularyVersions(v)
	return _u
}

// ClearVocabularyVersions clears the value of the "vocabulary_versions" field.
func (_u *ImportPackageUpdateOne) ClearVocabularyVersions() *ImportPackageUpdateOne {
	_u.mutation.ClearVocabularyVersions()
	return _u
}

// SetSignatureStatus sets the "signature_status" field.
func (_u *ImportPackageUpdateOne) SetSignatureStatus(v importpackage.SignatureStatus) *ImportPackageUpdateOne {
	_u.mutation.SetSignatureStatus(v)
	return _u
}

// SetNillableSignatureStatus sets the "signature_status" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableSignatureStatus(v *importpackage.SignatureStatus) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetSignatureStatus(*v)
	}
	return _u
}

// SetReceiveWarnings sets the "receive_warnings" field.
func (_u *ImportPackageUpdateOne) SetReceiveWarnings(v []string) *ImportPackageUpdateOne {
	_u.mutation.SetReceiveWarnings(v)
	return _u
}

// AppendReceiveWarnings appends value to the "receive_warnings" field.
func (_u *ImportPackageUpdateOne) AppendReceiveWarnings(v []string) *ImportPackageUpdateOne {
	_u.mutation.AppendReceiveWarnings(v)
	return _u
}

// ClearReceiveWarnings clears the value of the "receive_warnings" field.
func (_u *ImportPackageUpdateOne) ClearReceiveWarnings() *ImportPackageUpdateOne {
	_u.mutation.ClearReceiveWarnings()
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *ImportPackageUpdateOne) SetStoragePath(v string) *ImportPackageUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableStoragePath(v *string) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// ClearStoragePath clears the value of the "storage_path" field.
func (_u *ImportPackageUpdateOne) ClearStoragePath() *ImportPackageUpdateOne {
	_u.mutation.ClearStoragePath()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *ImportPackageUpdateOne) SetIsArchived(v bool) *ImportPackageUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableIsArchived(v *bool) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivePath sets the "archive_path" field.
func (_u *ImportPackageUpdateOne) SetArchivePath(v string) *ImportPackageUpdateOne {
	_u.mutation.SetArchivePath(v)
	return _u
}

// SetNillableArchivePath sets the "archive_path" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableArchivePath(v *string) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetArchivePath(*v)
	}
	return _u
}

// ClearArchivePath clears the value of the "archive_path" field.
func (_u *ImportPackageUpdateOne) ClearArchivePath() *ImportPackageUpdateOne {
	_u.mutation.ClearArchivePath()
	return _u
}

// SetArchivedDate sets the "archived_date" field.
func (_u *ImportPackageUpdateOne) SetArchivedDate(v time.Time) *ImportPackageUpdateOne {
	_u.mutation.SetArchivedDate(v)
	return _u
}

// SetNillableArchivedDate sets the "archived_date" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableArchivedDate(v *time.Time) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetArchivedDate(*v)
	}
	return _u
}

// ClearArchivedDate clears the value of the "archived_date" field.
func (_u *ImportPackageUpdateOne) ClearArchivedDate() *ImportPackageUpdateOne {
	_u.mutation.ClearArchivedDate()
	return _u
}

// SetValidationSummary sets the "validation_summary" field.
func (_u *ImportPackageUpdateOne) SetValidationSummary(v *domain.ValidationSummary) *ImportPackageUpdateOne {
	_u.mutation.SetValidationSummary(v)
	return _u
}

// ClearValidationSummary clears the value of the "validation_summary" field.
func (_u *ImportPackageUpdateOne) ClearValidationSummary() *ImportPackageUpdateOne {
	_u.mutation.ClearValidationSummary()
	return _u
}

// SetConflictCount sets the "conflict_count" field.
func (_u *ImportPackageUpdateOne) SetConflictCount(v int) *ImportPackageUpdateOne {
	_u.mutation.ResetConflictCount()
	_u.mutation.SetConflictCount(v)
	return _u
}

// SetNillableConflictCount sets the "conflict_count" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableConflictCount(v *int) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetConflictCount(*v)
	}
	return _u
}

// AddConflictCount adds value to the "conflict_count" field.
func (_u *ImportPackageUpdateOne) AddConflictCount(v int) *ImportPackageUpdateOne {
	_u.mutation.AddConflictCount(v)
	return _u
}

// SetUnresolvedConflictCount sets the "unresolved_conflict_count" field.
func (_u *ImportPackageUpdateOne) SetUnresolvedConflictCount(v int) *ImportPackageUpdateOne {
	_u.mutation.ResetUnresolvedConflictCount()
	_u.mutation.SetUnresolvedConflictCount(v)
	return _u
}

// SetNillableUnresolvedConflictCount sets the "unresolved_conflict_count" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableUnresolvedConflictCount(v *int) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetUnresolvedConflictCount(*v)
	}
	return _u
}

// AddUnresolvedConflictCount adds value to the "unresolved_conflict_count" field.
func (_u *ImportPackageUpdateOne) AddUnresolvedConflictCount(v int) *ImportPackageUpdateOne {
	_u.mutation.AddUnresolvedConflictCount(v)
	return _u
}

// SetCommittedDate sets the "committed_date" field.
func (_u *ImportPackageUpdateOne) SetCommittedDate(v time.Time) *ImportPackageUpdateOne {
	_u.mutation.SetCommittedDate(v)
	return _u
}

// SetNillableCommittedDate sets the "committed_date" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableCommittedDate(v *time.Time) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetCommittedDate(*v)
	}
	return _u
}

// ClearCommittedDate clears the value of the "committed_date" field.
func (_u *ImportPackageUpdateOne) ClearCommittedDate() *ImportPackageUpdateOne {
	_u.mutation.ClearCommittedDate()
	return _u
}

// SetCommitReport sets the "commit_report" field.
func (_u *ImportPackageUpdateOne) SetCommitReport(v *domain.CommitReport) *ImportPackageUpdateOne {
	_u.mutation.SetCommitReport(v)
	return _u
}

// ClearCommitReport clears the value of the "commit_report" field.
func (_u *ImportPackageUpdateOne) ClearCommitReport() *ImportPackageUpdateOne {
	_u.mutation.ClearCommitReport()
	return _u
}

// SetQuarantinedReason sets the "quarantined_reason" field.
func (_u *ImportPackageUpdateOne) SetQuarantinedReason(v string) *ImportPackageUpdateOne {
	_u.mutation.SetQuarantinedReason(v)
	return _u
}

// SetNillableQuarantinedReason sets the "quarantined_reason" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableQuarantinedReason(v *string) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetQuarantinedReason(*v)
	}
	return _u
}

// ClearQuarantinedReason clears the value of the "quarantined_reason" field.
func (_u *ImportPackageUpdateOne) ClearQuarantinedReason() *ImportPackageUpdateOne {
	_u.mutation.ClearQuarantinedReason()
	return _u
}

// SetCancelledReason sets the "cancelled_reason" field.
func (_u *ImportPackageUpdateOne) SetCancelledReason(v string) *ImportPackageUpdateOne {
	_u.mutation.SetCancelledReason(v)
	return _u
}

// SetNillableCancelledReason sets the "cancelled_reason" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableCancelledReason(v *string) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetCancelledReason(*v)
	}
	return _u
}

// ClearCancelledReason clears the value of the "cancelled_reason" field.
func (_u *ImportPackageUpdateOne) ClearCancelledReason() *ImportPackageUpdateOne {
	_u.mutation.ClearCancelledReason()
	return _u
}

// SetCancelledBy sets the "cancelled_by" field.
func (_u *ImportPackageUpdateOne) SetCancelledBy(v string) *ImportPackageUpdateOne {
	_u.mutation.SetCancelledBy(v)
	return _u
}

// SetNillableCancelledBy sets the "cancelled_by" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableCancelledBy(v *string) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetCancelledBy(*v)
	}
	return _u
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (_u *ImportPackageUpdateOne) ClearCancelledBy() *ImportPackageUpdateOne {
	_u.mutation.ClearCancelledBy()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *ImportPackageUpdateOne) SetCancelledAt(v time.Time) *ImportPackageUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *ImportPackageUpdateOne) SetNillableCancelledAt(v *time.Time) *ImportPackageUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *ImportPackageUpdateOne) ClearCancelledAt() *ImportPackageUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// Mutation returns the ImportPackageMutation object of the builder.
func (_u *ImportPackageUpdateOne) Mutation() *ImportPackageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImportPackageUpdate builder.
func (_u *ImportPackageUpdateOne) Where(ps ...predicate.ImportPackage) *ImportPackageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportPackageUpdateOne) Select(field string, fields ...string) *ImportPackageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportPackage entity.
func (_u *ImportPackageUpdateOne) Save(ctx context.Context) (*ImportPackage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportPackageUpdateOne) SaveX(ctx context.Context) *ImportPackage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportPackageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportPackageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ImportPackageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := importpackage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportPackageUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := importpackage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SignatureStatus(); ok {
		if err := importpackage.SignatureStatusValidator(v); err != nil {
			return &ValidationError{Name: "signature_status", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.signature_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConflictCount(); ok {
		if err := importpackage.ConflictCountValidator(v); err != nil {
			return &ValidationError{Name: "conflict_count", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.conflict_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnresolvedConflictCount(); ok {
		if err := importpackage.UnresolvedConflictCountValidator(v); err != nil {
			return &ValidationError{Name: "unresolved_conflict_count", err: fmt.Errorf(`ent: validator failed for field "ImportPackage.unresolved_conflict_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportPackageUpdateOne) sqlSave(ctx context.Context) (_node *ImportPackage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importpackage.Table, importpackage.Columns, sqlgraph.NewFieldSpec(importpackage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportPackage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importpackage.FieldID)
		for _, f := range fields {
			if !importpackage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importpackage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(importpackage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importpackage.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ExportedByUserIDCleared() {
		_spec.ClearField(importpackage.FieldExportedByUserID, field.TypeString)
	}
	if value, ok := _u.mutation.EntityCounts(); ok {
		_spec.SetField(importpackage.FieldEntityCounts, field.TypeJSON, value)
	}
	if _u.mutation.EntityCountsCleared() {
		_spec.ClearField(importpackage.FieldEntityCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.VocabularyVersions(); ok {
		_spec.SetField(importpackage.FieldVocabularyVersions, field.TypeJSON, value)
	}
	if _u.mutation.VocabularyVersionsCleared() {
		_spec.ClearField(importpackage.FieldVocabularyVersions, field.TypeJSON)
	}
	if _u.mutation.ExpectedChecksumCleared() {
		_spec.ClearField(importpackage.FieldExpectedChecksum, field.TypeString)
	}
	if _u.mutation.ComputedChecksumCleared() {
		_spec.ClearField(importpackage.FieldComputedChecksum, field.TypeString)
	}
	if value, ok := _u.mutation.SignatureStatus(); ok {
		_spec.SetField(importpackage.FieldSignatureStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReceiveWarnings(); ok {
		_spec.SetField(importpackage.FieldReceiveWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReceiveWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, importpackage.FieldReceiveWarnings, value)
		})
	}
	if _u.mutation.ReceiveWarningsCleared() {
		_spec.ClearField(importpackage.FieldReceiveWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(importpackage.FieldStoragePath, field.TypeString, value)
	}
	if _u.mutation.StoragePathCleared() {
		_spec.ClearField(importpackage.FieldStoragePath, field.TypeString)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(importpackage.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivePath(); ok {
		_spec.SetField(importpackage.FieldArchivePath, field.TypeString, value)
	}
	if _u.mutation.ArchivePathCleared() {
		_spec.ClearField(importpackage.FieldArchivePath, field.TypeString)
	}
	if value, ok := _u.mutation.ArchivedDate(); ok {
		_spec.SetField(importpackage.FieldArchivedDate, field.TypeTime, value)
	}
	if _u.mutation.ArchivedDateCleared() {
		_spec.ClearField(importpackage.FieldArchivedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidationSummary(); ok {
		_spec.SetField(importpackage.FieldValidationSummary, field.TypeJSON, value)
	}
	if _u.mutation.ValidationSummaryCleared() {
		_spec.ClearField(importpackage.FieldValidationSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConflictCount(); ok {
		_spec.SetField(importpackage.FieldConflictCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConflictCount(); ok {
		_spec.AddField(importpackage.FieldConflictCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnresolvedConflictCount(); ok {
		_spec.SetField(importpackage.FieldUnresolvedConflictCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnresolvedConflictCount(); ok {
		_spec.AddField(importpackage.FieldUnresolvedConflictCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommittedDate(); ok {
		_spec.SetField(importpackage.FieldCommittedDate, field.TypeTime, value)
	}
	if _u.mutation.CommittedDateCleared() {
		_spec.ClearField(importpackage.FieldCommittedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CommitReport(); ok {
		_spec.SetField(importpackage.FieldCommitReport, field.TypeJSON, value)
	}
	if _u.mutation.CommitReportCleared() {
		_spec.ClearField(importpackage.FieldCommitReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuarantinedReason(); ok {
		_spec.SetField(importpackage.FieldQuarantinedReason, field.TypeString, value)
	}
	if _u.mutation.QuarantinedReasonCleared() {
		_spec.ClearField(importpackage.FieldQuarantinedReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledReason(); ok {
		_spec.SetField(importpackage.FieldCancelledReason, field.TypeString, value)
	}
	if _u.mutation.CancelledReasonCleared() {
		_spec.ClearField(importpackage.FieldCancelledReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledBy(); ok {
		_spec.SetField(importpackage.FieldCancelledBy, field.TypeString, value)
	}
	if _u.mutation.CancelledByCleared() {
		_spec.ClearField(importpackage.FieldCancelledBy, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(importpackage.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(importpackage.FieldCancelledAt, field.TypeTime)
	}
	_node = &ImportPackage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importpackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
