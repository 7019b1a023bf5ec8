package intake

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/domain"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// Service is the pipeline facade the API and background jobs drive. Stage
// operations run under the per-package lock; two operations never work the
// same package concurrently.
type Service struct {
	packages  PackageStore
	staging   StagingStore
	conflicts ConflictStore
	locker    PackageLocker

	receiver  *Receiver
	loader    *Loader
	validator *Validator
	detector  *Detector
	resolver  *Resolver
	committer *Committer

	events EventRecorder
	audit  AuditSink
	now    func() time.Time
}

// ServiceDeps bundles the service's collaborators.
type ServiceDeps struct {
	Packages  PackageStore
	Staging   StagingStore
	Conflicts ConflictStore
	Locker    PackageLocker

	Receiver  *Receiver
	Loader    *Loader
	Validator *Validator
	Detector  *Detector
	Resolver  *Resolver
	Committer *Committer

	Events EventRecorder
	Audit  AuditSink
}

// NewService wires the pipeline facade.
func NewService(d ServiceDeps) *Service {
	return &Service{
		packages:  d.Packages,
		staging:   d.Staging,
		conflicts: d.Conflicts,
		locker:    d.Locker,
		receiver:  d.Receiver,
		loader:    d.Loader,
		validator: d.Validator,
		detector:  d.Detector,
		resolver:  d.Resolver,
		committer: d.Committer,
		events:    d.Events,
		audit:     d.Audit,
		now:       time.Now,
	}
}

// Receive ingests one uploaded container. Receive needs no package lock: the
// package row does not exist until it succeeds.
func (s *Service) Receive(ctx context.Context, source io.Reader, fileName string,
	method domain.ImportMethod, actor string) (*domain.ReceiveResult, error) {
	return s.receiver.Receive(ctx, source, fileName, method, actor)
}

// Load stages the package's archive tables.
func (s *Service) Load(ctx context.Context, packageID uuid.UUID, actor string) (*domain.LoadReport, error) {
	unlock, err := s.locker.TryLock(ctx, packageID)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.loader.Load(ctx, packageID, actor)
}

// Validate runs the staged-row checks.
func (s *Service) Validate(ctx context.Context, packageID uuid.UUID, actor string) (*domain.ValidationSummary, error) {
	unlock, err := s.locker.TryLock(ctx, packageID)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.validator.Validate(ctx, packageID, actor)
}

// DetectDuplicates scores staged rows against production.
func (s *Service) DetectDuplicates(ctx context.Context, packageID uuid.UUID, actor string) (*domain.DetectionReport, error) {
	unlock, err := s.locker.TryLock(ctx, packageID)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.detector.DetectDuplicates(ctx, packageID, actor)
}

// Resolve applies one reviewer decision to a conflict.
func (s *Service) Resolve(ctx context.Context, conflictID uuid.UUID,
	req domain.ResolveRequest, actor string) (*domain.ResolveResult, error) {

	conflict, err := s.conflicts.Get(ctx, conflictID)
	if err != nil {
		return nil, err
	}
	unlock, err := s.locker.TryLock(ctx, conflict.ImportPackageID)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.resolver.Resolve(ctx, conflictID, req, actor)
}

// Commit writes the package to production.
func (s *Service) Commit(ctx context.Context, packageID uuid.UUID, actor string) (*domain.CommitReport, error) {
	unlock, err := s.locker.TryLock(ctx, packageID)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.committer.Commit(ctx, packageID, actor)
}

// Process runs load, validate and duplicate detection back to back under one
// lock. Background ingestion (watched folder, sync) drives packages through
// here; review and commit stay manual.
func (s *Service) Process(ctx context.Context, packageID uuid.UUID, actor string) (*domain.DetectionReport, error) {
	unlock, err := s.locker.TryLock(ctx, packageID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, err := s.loader.Load(ctx, packageID, actor); err != nil {
		return nil, err
	}
	summary, err := s.validator.Validate(ctx, packageID, actor)
	if err != nil {
		return nil, err
	}
	if summary.PackageStatus != domain.StatusValidated {
		return nil, apperrors.New(apperrors.CodeValidationFailed,
			"package failed validation", http.StatusUnprocessableEntity).
			WithParams(map[string]interface{}{
				"packageId":   packageID.String(),
				"invalidRows": summary.InvalidRows,
			})
	}
	return s.detector.DetectDuplicates(ctx, packageID, actor)
}

// Cancel abandons a package. Cancelling an already cancelled package is a
// no-op reporting the original decision; other terminal statuses reject.
func (s *Service) Cancel(ctx context.Context, packageID uuid.UUID,
	reason, actor string, cleanup bool) (*domain.CancelResult, error) {

	if actor == "" {
		return nil, apperrors.ErrNotAuthenticated()
	}
	unlock, err := s.locker.TryLock(ctx, packageID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	pkg, err := s.packages.Get(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg.Status == domain.StatusCancelled {
		return &domain.CancelResult{
			PackageID:        packageID,
			Status:           pkg.Status,
			AlreadyCancelled: true,
		}, nil
	}
	if pkg.Status.IsTerminal() {
		return nil, apperrors.ErrStateTransition(string(pkg.Status), string(domain.StatusCancelled))
	}

	at := s.now().UTC()
	pkg, err = s.packages.UpdateStatus(ctx, packageID, pkg.Status, domain.StatusCancelled, &PackageUpdate{
		CancelledReason: &reason,
		CancelledBy:     &actor,
		CancelledAt:     &at,
	})
	if err != nil {
		return nil, err
	}

	result := &domain.CancelResult{PackageID: packageID, Status: pkg.Status}
	if cleanup {
		if err := s.staging.Truncate(ctx, packageID); err != nil {
			// The cancellation stands; staging rows are inert without it.
			result.CleanupWarning = err.Error()
			logger.Warn("Staging cleanup after cancel failed",
				zap.String("package_id", packageID.String()), zap.Error(err))
		} else {
			result.CleanupPerformed = true
		}
	}

	s.audit.PackageAction(ctx, actor, "package.cancel", packageID, map[string]interface{}{
		"reason": reason, "cleanup": result.CleanupPerformed,
	})
	s.events.PackageEvent(ctx, domain.EventPackageCancelled, pkg, actor, reason)
	return result, nil
}

// Get returns one package.
func (s *Service) Get(ctx context.Context, packageID uuid.UUID) (*domain.ImportPackage, error) {
	return s.packages.Get(ctx, packageID)
}

// List returns a filtered package page.
func (s *Service) List(ctx context.Context, f PackageFilter) (*domain.PackageList, error) {
	return s.packages.List(ctx, f)
}

// StagedSummary aggregates the package's staged rows for the review UI.
func (s *Service) StagedSummary(ctx context.Context, packageID uuid.UUID) (*domain.StagedEntitySummary, error) {
	if _, err := s.packages.Get(ctx, packageID); err != nil {
		return nil, err
	}
	return s.staging.Summary(ctx, packageID)
}

// StagedPage returns staged rows of one entity type, paginated.
func (s *Service) StagedPage(ctx context.Context, packageID uuid.UUID,
	et domain.EntityType, offset, limit int) (*domain.StagedRowPage, error) {
	if _, err := s.packages.Get(ctx, packageID); err != nil {
		return nil, err
	}
	return s.staging.Page(ctx, packageID, et, offset, limit)
}

// Conflicts lists the package's duplicate conflicts.
func (s *Service) Conflicts(ctx context.Context, packageID uuid.UUID) ([]*domain.Conflict, error) {
	if _, err := s.packages.Get(ctx, packageID); err != nil {
		return nil, err
	}
	return s.conflicts.ListByPackage(ctx, packageID)
}

// Conflict returns one conflict.
func (s *Service) Conflict(ctx context.Context, conflictID uuid.UUID) (*domain.Conflict, error) {
	return s.conflicts.Get(ctx, conflictID)
}

// Report returns the persisted commit report of a committed package.
func (s *Service) Report(ctx context.Context, packageID uuid.UUID) (*domain.CommitReport, error) {
	pkg, err := s.packages.Get(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg.CommitReport == nil {
		return nil, apperrors.New(apperrors.CodeReportNotAvailable,
			"package has no commit report yet", http.StatusNotFound).
			WithParams(map[string]interface{}{"packageId": packageID.String()})
	}
	return pkg.CommitReport, nil
}
