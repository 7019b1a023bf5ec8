package intake

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/archive"
	"uhc-registry.io/registry/internal/domain"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// insertBatchSize bounds one bulk staging insert.
const insertBatchSize = 500

// Loader streams archive tables into the staging tables.
type Loader struct {
	packages PackageStore
	staging  StagingStore
	events   EventRecorder
	audit    AuditSink
}

// NewLoader wires a Loader.
func NewLoader(packages PackageStore, staging StagingStore, events EventRecorder, audit AuditSink) *Loader {
	return &Loader{packages: packages, staging: staging, events: events, audit: audit}
}

// loadableStatuses are the package statuses Load accepts. Re-loading from
// Validating or Invalid truncates the previous staging rows first.
func loadable(s domain.PackageStatus) bool {
	return s == domain.StatusPending || s == domain.StatusValidating || s == domain.StatusInvalid
}

// Load reads the package's archive tables in topological order into staging.
// The caller holds the package lock.
func (l *Loader) Load(ctx context.Context, packageID uuid.UUID, actor string) (*domain.LoadReport, error) {
	pkg, err := l.packages.Get(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !loadable(pkg.Status) {
		return nil, apperrors.ErrStateTransition(string(pkg.Status), string(domain.StatusValidating))
	}

	reloaded := pkg.Status != domain.StatusPending
	if err := l.staging.Truncate(ctx, packageID); err != nil {
		return nil, err
	}

	reader, err := archive.Open(pkg.StoragePath)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeArchiveError,
			"stored package container could not be opened", http.StatusInternalServerError)
	}
	defer reader.Close()

	started := time.Now()
	counts := map[domain.EntityType]int{}
	for _, et := range domain.EntityOrder {
		n, err := l.loadEntity(ctx, reader, packageID, et)
		if err != nil {
			return nil, err
		}
		counts[et] = n
	}

	// The manifest promised these counts; a divergent container is not
	// trustworthy even though its checksum matched what it declared.
	for _, et := range domain.EntityOrder {
		if counts[et] != pkg.EntityCounts[et] {
			if terr := l.staging.Truncate(ctx, packageID); terr != nil {
				logger.Warn("Staging cleanup after count mismatch failed",
					zap.String("package_id", packageID.String()), zap.Error(terr))
			}
			return nil, apperrors.New(apperrors.CodeManifestInvalid,
				"archive row counts do not match the manifest", http.StatusUnprocessableEntity).
				WithParams(map[string]interface{}{
					"entityType": string(et),
					"manifest":   pkg.EntityCounts[et],
					"archive":    counts[et],
				})
		}
	}

	if pkg.Status != domain.StatusValidating {
		if pkg, err = l.packages.UpdateStatus(ctx, packageID, pkg.Status, domain.StatusValidating, nil); err != nil {
			return nil, err
		}
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	logger.Info("Package staged",
		zap.String("package_id", packageID.String()),
		zap.String("package_number", pkg.PackageNumber),
		zap.Int("rows", total),
		zap.Bool("reloaded", reloaded),
		zap.Duration("took", time.Since(started)),
	)
	l.audit.PackageAction(ctx, actor, "package.load", packageID, map[string]interface{}{
		"rows": total, "reloaded": reloaded,
	})
	l.events.PackageEvent(ctx, domain.EventPackageLoaded, pkg, actor, "")

	return &domain.LoadReport{
		PackageID: packageID,
		RowCounts: counts,
		TotalRows: total,
		Reloaded:  reloaded,
	}, nil
}

// loadEntity streams one archive table into staging in batches.
func (l *Loader) loadEntity(ctx context.Context, reader *archive.Reader, packageID uuid.UUID, et domain.EntityType) (int, error) {
	var n int
	var err error
	switch et {
	case domain.EntityBuilding:
		n, err = loadTable(ctx, packageID, reader.EachBuilding, l.staging.InsertBuildings)
	case domain.EntityPropertyUnit:
		n, err = loadTable(ctx, packageID, reader.EachPropertyUnit, l.staging.InsertPropertyUnits)
	case domain.EntityPerson:
		n, err = loadTable(ctx, packageID, reader.EachPerson, l.staging.InsertPersons)
	case domain.EntityHousehold:
		n, err = loadTable(ctx, packageID, reader.EachHousehold, l.staging.InsertHouseholds)
	case domain.EntityPersonPropertyRelation:
		n, err = loadTable(ctx, packageID, reader.EachPersonPropertyRelation, l.staging.InsertRelations)
	case domain.EntityEvidence:
		n, err = loadTable(ctx, packageID, reader.EachEvidence, l.staging.InsertEvidences)
	case domain.EntitySurvey:
		n, err = loadTable(ctx, packageID, reader.EachSurvey, l.staging.InsertSurveys)
	case domain.EntityClaim:
		n, err = loadTable(ctx, packageID, reader.EachClaim, l.staging.InsertClaims)
	case domain.EntityDocument:
		n, err = loadTable(ctx, packageID, reader.EachDocument, l.staging.InsertDocuments)
	case domain.EntityReferral:
		n, err = loadTable(ctx, packageID, reader.EachReferral, l.staging.InsertReferrals)
	}
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeArchiveError,
			"reading "+et.ArchiveTable()+" from the package container failed",
			http.StatusInternalServerError)
	}
	return n, nil
}

// loadTable pumps one archive iterator into one staging bulk-insert in
// fixed-size batches.
func loadTable[T any](ctx context.Context, packageID uuid.UUID,
	each func(func(T) error) error,
	insert func(context.Context, uuid.UUID, []T) error) (int, error) {

	n := 0
	batch := make([]T, 0, insertBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := insert(ctx, packageID, batch); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}
	err := each(func(rec T) error {
		n++
		batch = append(batch, rec)
		if len(batch) == insertBatchSize {
			return flush()
		}
		return nil
	})
	if err == nil {
		err = flush()
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}
