package jobs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/intake"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// PackageIngestArgs drives a received package through load, validate and
// duplicate detection in the background. Review and commit stay manual.
type PackageIngestArgs struct {
	PackageID uuid.UUID `json:"package_id"`
	Actor     string    `json:"actor"`
}

// Kind returns the job kind identifier for background package processing.
func (PackageIngestArgs) Kind() string { return "package_ingest" }

// InsertOpts deduplicates by args so one package is never queued twice while
// a prior ingest of it is still pending or running.
func (PackageIngestArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 4,
		UniqueOpts: river.UniqueOpts{
			ByQueue: true,
			ByArgs:  true,
		},
	}
}

// PackageIngestWorker runs the pipeline facade's Process operation.
type PackageIngestWorker struct {
	river.WorkerDefaults[PackageIngestArgs]
	service *intake.Service
}

// NewPackageIngestWorker creates a package ingest worker.
func NewPackageIngestWorker(service *intake.Service) *PackageIngestWorker {
	return &PackageIngestWorker{service: service}
}

// Work processes one package. A package already past the loadable statuses
// is treated as done: a retried job after a successful run finds the package
// advanced and returns without touching it.
func (w *PackageIngestWorker) Work(ctx context.Context, job *river.Job[PackageIngestArgs]) error {
	if w == nil || w.service == nil {
		return fmt.Errorf("package ingest worker is not initialized")
	}

	packageID := job.Args.PackageID
	pkg, err := w.service.Get(ctx, packageID)
	if err != nil {
		return cancelOnTerminal(err)
	}
	switch pkg.Status {
	case domain.StatusPending, domain.StatusValidating, domain.StatusInvalid:
		// Loadable; proceed.
	default:
		logger.Info("Package already processed; skipping ingest",
			zap.String("package_id", packageID.String()),
			zap.String("status", string(pkg.Status)),
		)
		return nil
	}

	report, err := w.service.Process(ctx, packageID, job.Args.Actor)
	if err != nil {
		return cancelOnTerminal(err)
	}

	logger.Info("Package ingest completed",
		zap.String("package_id", packageID.String()),
		zap.String("status", string(report.PackageStatus)),
		zap.Int("persons_scored", report.PersonsScored),
		zap.Int("buildings_scored", report.BuildingsScored),
		zap.Int("units_scored", report.UnitsScored),
		zap.Int("conflicts_created", report.ConflictsCreated),
	)
	return nil
}
