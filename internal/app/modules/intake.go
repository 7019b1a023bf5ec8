package modules

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"

	"uhc-registry.io/registry/ent"
	"uhc-registry.io/registry/internal/api/handlers"
	"uhc-registry.io/registry/internal/blob"
	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/governance/audit"
	"uhc-registry.io/registry/internal/intake"
	"uhc-registry.io/registry/internal/jobs"
	"uhc-registry.io/registry/internal/notification"
	"uhc-registry.io/registry/internal/repository"
	"uhc-registry.io/registry/internal/vocabulary"
)

// IntakeModule wires the package intake pipeline: repositories, vocabulary,
// storage, domain events, notification triggers and the service facade.
type IntakeModule struct {
	service   *intake.Service
	packages  *repository.Packages
	archiver  *blob.Archiver
	audit     *audit.Logger
	entClient *ent.Client
	maxUpload int64
}

// NewIntakeModule builds the pipeline from shared infrastructure.
func NewIntakeModule(infra *Infrastructure) (*IntakeModule, error) {
	cfg := infra.Config

	vocab, err := vocabulary.Load(cfg.Intake.VocabularyDir)
	if err != nil {
		return nil, fmt.Errorf("load vocabularies: %w", err)
	}
	blobStore, err := blob.NewStore(cfg.Intake.BlobDir)
	if err != nil {
		return nil, fmt.Errorf("init blob store: %w", err)
	}
	archiver, err := blob.NewArchiver(cfg.Intake.ArchiveDir)
	if err != nil {
		return nil, fmt.Errorf("init archiver: %w", err)
	}

	dispatcher := domain.NewEventDispatcher()
	notification.NewTriggers(
		notification.NewInboxSender(infra.EntClient),
		cfg.Notify.Reviewers,
	).Register(dispatcher)

	packages := repository.NewPackages(infra.EntClient)
	staging := repository.NewStaging(infra.EntClient)
	conflicts := repository.NewConflicts(infra.EntClient)
	production := repository.NewProduction(infra.EntClient)
	locker := repository.NewAdvisoryLocker(infra.Pool)
	events := repository.NewEvents(infra.EntClient, dispatcher)

	receiver := intake.NewReceiver(intake.ReceiverConfig{
		SpoolDir:            cfg.Intake.SpoolDir,
		MaxPackageSizeBytes: cfg.Intake.MaxPackageSizeBytes,
		SignatureRequired:   cfg.Intake.Signature.Required,
		SignaturePublicKey:  cfg.Intake.Signature.PublicKey,
	}, packages, vocab, events, infra.AuditLogger)

	service := intake.NewService(intake.ServiceDeps{
		Packages:  packages,
		Staging:   staging,
		Conflicts: conflicts,
		Locker:    locker,

		Receiver:  receiver,
		Loader:    intake.NewLoader(packages, staging, events, infra.AuditLogger),
		Validator: intake.NewValidator(packages, staging, production, vocab, events, infra.AuditLogger),
		Detector: intake.NewDetector(packages, staging, production, conflicts,
			events, infra.AuditLogger, infra.Pools.Detect),
		Resolver: intake.NewResolver(packages, staging, production, conflicts,
			events, infra.AuditLogger),
		Committer: intake.NewCommitter(packages, staging, production, conflicts,
			blobStore, archiver, events, infra.AuditLogger),

		Events: events,
		Audit:  infra.AuditLogger,
	})

	return &IntakeModule{
		service:   service,
		packages:  packages,
		archiver:  archiver,
		audit:     infra.AuditLogger,
		entClient: infra.EntClient,
		maxUpload: cfg.Intake.MaxPackageSizeBytes,
	}, nil
}

// Service exposes the pipeline facade to the rest of the composition root.
func (m *IntakeModule) Service() *intake.Service {
	return m.service
}

// Name implements Module.
func (m *IntakeModule) Name() string { return "intake" }

// ContributeServerDeps implements Module.
func (m *IntakeModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	deps.Intake = m.service
	deps.MaxUploadBytes = m.maxUpload
}

// RegisterWorkers implements Module.
func (m *IntakeModule) RegisterWorkers(workers *river.Workers) {
	river.AddWorker(workers, jobs.NewPackageIngestWorker(m.service))
	river.AddWorker(workers, jobs.NewArchiveSweepWorker(m.packages, m.archiver, m.audit))
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(m.entClient, jobs.DefaultNotificationRetention))
}

// Shutdown implements Module.
func (m *IntakeModule) Shutdown(context.Context) error { return nil }
