// Package repository implements the intake store interfaces on the Ent
// client. Every method maps Ent rows to domain types at the boundary;
// pipeline code never sees generated entities.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"uhc-registry.io/registry/ent"
	"uhc-registry.io/registry/ent/importpackage"
	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/identifier"
	"uhc-registry.io/registry/internal/intake"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

// withTx runs fn in a transaction, rolling back on error or panic.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Packages is the Ent-backed intake.PackageStore.
type Packages struct {
	client *ent.Client
}

// NewPackages creates the package repository.
func NewPackages(client *ent.Client) *Packages {
	return &Packages{client: client}
}

var _ intake.PackageStore = (*Packages)(nil)

// Create inserts the package row. The row id is the manifest PackageId, so a
// concurrent duplicate upload surfaces as ErrAlreadyExists.
func (r *Packages) Create(ctx context.Context, pkg *domain.ImportPackage) error {
	create := r.client.ImportPackage.Create().
		SetID(pkg.ID).
		SetPackageNumber(pkg.PackageNumber).
		SetStatus(importpackage.Status(pkg.Status)).
		SetImportMethod(importpackage.ImportMethod(pkg.ImportMethod)).
		SetFileName(pkg.FileName).
		SetFileSizeBytes(pkg.FileSizeBytes).
		SetSchemaVersion(pkg.SchemaVersion).
		SetManifestCreatedUtc(pkg.CreatedUTC).
		SetExportedDateUtc(pkg.ExportedDateUTC).
		SetExportedByUserID(pkg.ExportedByUserID).
		SetDeviceID(pkg.DeviceID).
		SetTotalRecordCount(pkg.TotalRecordCount).
		SetEntityCounts(pkg.EntityCounts).
		SetTotalAttachmentSizeBytes(pkg.TotalAttachmentSizeBytes).
		SetVocabularyVersions(pkg.VocabularyVersions).
		SetExpectedChecksum(pkg.ExpectedChecksum).
		SetComputedChecksum(pkg.ComputedChecksum).
		SetSignatureStatus(importpackage.SignatureStatus(pkg.SignatureStatus)).
		SetReceiveWarnings(pkg.ReceiveWarnings).
		SetStoragePath(pkg.StoragePath).
		SetQuarantinedReason(pkg.QuarantinedReason).
		SetReceivedBy(pkg.ReceivedBy)

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return apperrors.ErrAlreadyExists
		}
		return fmt.Errorf("create import package: %w", err)
	}
	return nil
}

// Get loads one package.
func (r *Packages) Get(ctx context.Context, id uuid.UUID) (*domain.ImportPackage, error) {
	row, err := r.client.ImportPackage.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrPackageNotFound(id.String())
		}
		return nil, fmt.Errorf("get import package: %w", err)
	}
	return packageToDomain(row), nil
}

// List returns a filtered, newest-first page.
func (r *Packages) List(ctx context.Context, f intake.PackageFilter) (*domain.PackageList, error) {
	q := r.client.ImportPackage.Query()
	if f.Status != nil {
		q = q.Where(importpackage.StatusEQ(importpackage.Status(*f.Status)))
	}
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count import packages: %w", err)
	}
	q = q.Order(ent.Desc(importpackage.FieldCreatedAt))
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list import packages: %w", err)
	}
	out := &domain.PackageList{TotalCount: total}
	for _, row := range rows {
		out.Items = append(out.Items, packageToDomain(row))
	}
	return out, nil
}

// UpdateStatus compare-and-sets the status under a row lock and applies the
// optional field changes in the same transaction.
func (r *Packages) UpdateStatus(ctx context.Context, id uuid.UUID,
	from, to domain.PackageStatus, upd *intake.PackageUpdate) (*domain.ImportPackage, error) {

	if !domain.CanTransition(from, to) {
		return nil, apperrors.ErrStateTransition(string(from), string(to))
	}

	var out *domain.ImportPackage
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		row, err := tx.ImportPackage.Query().
			Where(importpackage.ID(id)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.ErrPackageNotFound(id.String())
			}
			return fmt.Errorf("lock import package: %w", err)
		}
		if domain.PackageStatus(row.Status) != from {
			return apperrors.ErrStateTransition(string(row.Status), string(to))
		}

		update := row.Update().SetStatus(importpackage.Status(to))
		if upd != nil {
			if upd.ValidationSummary != nil {
				update.SetValidationSummary(upd.ValidationSummary)
			}
			if upd.CommittedDate != nil {
				update.SetCommittedDate(*upd.CommittedDate)
			}
			if upd.CommitReport != nil {
				update.SetCommitReport(upd.CommitReport)
			}
			if upd.QuarantinedReason != nil {
				update.SetQuarantinedReason(*upd.QuarantinedReason)
			}
			if upd.CancelledReason != nil {
				update.SetCancelledReason(*upd.CancelledReason)
			}
			if upd.CancelledBy != nil {
				update.SetCancelledBy(*upd.CancelledBy)
			}
			if upd.CancelledAt != nil {
				update.SetCancelledAt(*upd.CancelledAt)
			}
			if upd.IsArchived != nil {
				update.SetIsArchived(*upd.IsArchived)
			}
			if upd.ArchivePath != nil {
				update.SetArchivePath(*upd.ArchivePath)
			}
			if upd.ArchivedDate != nil {
				update.SetArchivedDate(*upd.ArchivedDate)
			}
		}
		row, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("update import package: %w", err)
		}
		out = packageToDomain(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NextPackageNumber allocates the next PKG-YYYY-NNNN under the sequence row
// lock.
func (r *Packages) NextPackageNumber(ctx context.Context, now time.Time) (string, error) {
	var number string
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		var err error
		number, err = identifier.NextPackageNumber(ctx, tx, now)
		return err
	})
	if err != nil {
		return "", err
	}
	return number, nil
}

// MarkArchived stamps the archive fields on an already-terminal package.
func (r *Packages) MarkArchived(ctx context.Context, id uuid.UUID, archivePath string, archivedAt time.Time) error {
	n, err := r.client.ImportPackage.Update().
		Where(importpackage.ID(id)).
		SetIsArchived(true).
		SetArchivePath(archivePath).
		SetArchivedDate(archivedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark package archived: %w", err)
	}
	if n == 0 {
		return apperrors.ErrPackageNotFound(id.String())
	}
	return nil
}

func packageToDomain(row *ent.ImportPackage) *domain.ImportPackage {
	return &domain.ImportPackage{
		ID:            row.ID,
		PackageNumber: row.PackageNumber,
		Status:        domain.PackageStatus(row.Status),
		ImportMethod:  domain.ImportMethod(row.ImportMethod),

		FileName:      row.FileName,
		FileSizeBytes: row.FileSizeBytes,

		SchemaVersion:            row.SchemaVersion,
		CreatedUTC:               row.ManifestCreatedUtc,
		ExportedDateUTC:          row.ExportedDateUtc,
		ExportedByUserID:         row.ExportedByUserID,
		DeviceID:                 row.DeviceID,
		TotalRecordCount:         row.TotalRecordCount,
		EntityCounts:             row.EntityCounts,
		TotalAttachmentSizeBytes: row.TotalAttachmentSizeBytes,
		VocabularyVersions:       row.VocabularyVersions,

		ExpectedChecksum: row.ExpectedChecksum,
		ComputedChecksum: row.ComputedChecksum,
		SignatureStatus:  domain.SignatureStatus(row.SignatureStatus),
		ReceiveWarnings:  row.ReceiveWarnings,

		StoragePath:  row.StoragePath,
		IsArchived:   row.IsArchived,
		ArchivePath:  row.ArchivePath,
		ArchivedDate: row.ArchivedDate,

		ValidationSummary: row.ValidationSummary,
		CommittedDate:     row.CommittedDate,
		CommitReport:      row.CommitReport,

		QuarantinedReason: row.QuarantinedReason,
		CancelledReason:   row.CancelledReason,
		CancelledBy:       row.CancelledBy,
		CancelledAt:       row.CancelledAt,

		ReceivedBy: row.ReceivedBy,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
