package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/intake"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// sweepPageSize bounds one listing page during the sweep.
const sweepPageSize = 100

// sweepArchiveRetries bounds the per-package archive retries within one run.
const sweepArchiveRetries = 3

// ArchiveSweepArgs is a periodic maintenance job that retries archival for
// packages whose commit succeeded but whose container could not be filed at
// commit time (status PARTIALLY_COMPLETED, not archived).
type ArchiveSweepArgs struct{}

// Kind returns the job kind identifier for the periodic archive sweep.
func (ArchiveSweepArgs) Kind() string { return "archive_sweep" }

// InsertOpts ensures at most one sweep is enqueued within the same day.
func (ArchiveSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// ArchiveSweepWorker retries the archival of partially completed packages.
type ArchiveSweepWorker struct {
	river.WorkerDefaults[ArchiveSweepArgs]
	packages intake.PackageStore
	archiver intake.PackageArchiver
	audit    intake.AuditSink
}

// NewArchiveSweepWorker creates an archive sweep worker.
func NewArchiveSweepWorker(packages intake.PackageStore, archiver intake.PackageArchiver, audit intake.AuditSink) *ArchiveSweepWorker {
	return &ArchiveSweepWorker{packages: packages, archiver: archiver, audit: audit}
}

// Work retries archival for every unarchived partially completed package.
// Per-package failures are logged and left for the next sweep; the run only
// errors when the listing itself fails.
func (w *ArchiveSweepWorker) Work(ctx context.Context, _ *river.Job[ArchiveSweepArgs]) error {
	if w == nil || w.packages == nil || w.archiver == nil {
		return fmt.Errorf("archive sweep worker is not initialized")
	}

	status := domain.StatusPartiallyCompleted
	var checked, archived, failed int
	for offset := 0; ; offset += sweepPageSize {
		page, err := w.packages.List(ctx, intake.PackageFilter{
			Status: &status,
			Offset: offset,
			Limit:  sweepPageSize,
		})
		if err != nil {
			return fmt.Errorf("list partially completed packages: %w", err)
		}
		for _, pkg := range page.Items {
			if pkg.IsArchived {
				continue
			}
			checked++
			if err := w.archive(ctx, pkg); err != nil {
				failed++
				logger.Warn("Archive sweep could not file package",
					zap.String("package_id", pkg.ID.String()),
					zap.String("package_number", pkg.PackageNumber),
					zap.Error(err),
				)
				continue
			}
			archived++
		}
		if offset+len(page.Items) >= page.TotalCount || len(page.Items) == 0 {
			break
		}
	}

	logger.Info("Archive sweep completed",
		zap.Int("checked", checked),
		zap.Int("archived", archived),
		zap.Int("failed", failed),
	)
	return nil
}

// archive files one container and stamps the package's archive fields.
func (w *ArchiveSweepWorker) archive(ctx context.Context, pkg *domain.ImportPackage) error {
	committedAt := time.Now().UTC()
	if pkg.CommittedDate != nil {
		committedAt = *pkg.CommittedDate
	}

	var archivePath string
	op := func() error {
		path, err := w.archiver.Archive(pkg.StoragePath, pkg.ID, committedAt)
		if err != nil {
			return err
		}
		archivePath = path
		return nil
	}
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), sweepArchiveRetries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return err
	}

	archivedAt := time.Now().UTC()
	if err := w.packages.MarkArchived(ctx, pkg.ID, archivePath, archivedAt); err != nil {
		return err
	}
	if w.audit != nil {
		w.audit.PackageAction(ctx, "", "package.archive", pkg.ID, map[string]interface{}{
			"archivePath": archivePath,
			"sweep":       true,
		})
	}
	return nil
}
