// Package intake implements the package intake pipeline: receive, stage,
// validate, detect duplicates, resolve conflicts, commit, cancel.
//
// Components talk to persistence through the narrow store interfaces in this
// file. The ent-backed implementations live in internal/repository; tests
// drive the pipeline against in-memory fakes.
package intake

import (
	"context"
	"time"

	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// PackageFilter narrows and pages a package listing.
type PackageFilter struct {
	Status *domain.PackageStatus
	Offset int
	Limit  int
}

// PackageUpdate carries the optional field changes applied together with a
// status transition. Nil fields stay untouched.
type PackageUpdate struct {
	ValidationSummary *domain.ValidationSummary
	CommittedDate     *time.Time
	CommitReport      *domain.CommitReport
	QuarantinedReason *string
	CancelledReason   *string
	CancelledBy       *string
	CancelledAt       *time.Time
	IsArchived        *bool
	ArchivePath       *string
	ArchivedDate      *time.Time
}

// PackageStore persists import packages.
type PackageStore interface {
	// Create inserts a new package row; the id is the manifest PackageId.
	Create(ctx context.Context, pkg *domain.ImportPackage) error
	// Get returns PACKAGE_NOT_FOUND for unknown ids.
	Get(ctx context.Context, id uuid.UUID) (*domain.ImportPackage, error)
	List(ctx context.Context, f PackageFilter) (*domain.PackageList, error)
	// UpdateStatus compare-and-sets from → to and applies upd atomically.
	// An illegal transition or a status that moved underneath the caller
	// fails with STATE_TRANSITION_INVALID.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.PackageStatus, upd *PackageUpdate) (*domain.ImportPackage, error)
	// NextPackageNumber allocates the next PKG-YYYY-NNNN.
	NextPackageNumber(ctx context.Context, now time.Time) (string, error)
	// MarkArchived stamps the archive fields without a status transition.
	// The archive sweep uses it to finish packages whose commit succeeded
	// but whose archival failed.
	MarkArchived(ctx context.Context, id uuid.UUID, archivePath string, archivedAt time.Time) error
}

// StagedRecord pairs a staged business record with its validation state.
type StagedRecord[T any] struct {
	Record            T
	ValidationStatus  domain.ValidationStatus
	Diagnostics       []domain.Diagnostic
	ApprovedForCommit bool
	CommittedEntityID *uuid.UUID
}

// RowOutcome is one validator verdict to apply to a staged row.
type RowOutcome struct {
	EntityType       domain.EntityType
	OriginalEntityID uuid.UUID
	Status           domain.ValidationStatus
	Diagnostics      []domain.Diagnostic
	Approved         bool
}

// StagingStore persists the per-package staging tables.
type StagingStore interface {
	// Truncate removes every staging row of one package.
	Truncate(ctx context.Context, packageID uuid.UUID) error

	InsertBuildings(ctx context.Context, packageID uuid.UUID, recs []domain.BuildingRecord) error
	InsertPropertyUnits(ctx context.Context, packageID uuid.UUID, recs []domain.PropertyUnitRecord) error
	InsertPersons(ctx context.Context, packageID uuid.UUID, recs []domain.PersonRecord) error
	InsertHouseholds(ctx context.Context, packageID uuid.UUID, recs []domain.HouseholdRecord) error
	InsertRelations(ctx context.Context, packageID uuid.UUID, recs []domain.PersonPropertyRelationRecord) error
	InsertEvidences(ctx context.Context, packageID uuid.UUID, recs []domain.EvidenceRecord) error
	InsertSurveys(ctx context.Context, packageID uuid.UUID, recs []domain.SurveyRecord) error
	InsertClaims(ctx context.Context, packageID uuid.UUID, recs []domain.ClaimRecord) error
	InsertDocuments(ctx context.Context, packageID uuid.UUID, recs []domain.DocumentRecord) error
	InsertReferrals(ctx context.Context, packageID uuid.UUID, recs []domain.ReferralRecord) error

	Buildings(ctx context.Context, packageID uuid.UUID) ([]StagedRecord[domain.BuildingRecord], error)
	PropertyUnits(ctx context.Context, packageID uuid.UUID) ([]StagedRecord[domain.PropertyUnitRecord], error)
	Persons(ctx context.Context, packageID uuid.UUID) ([]StagedRecord[domain.PersonRecord], error)
	Households(ctx context.Context, packageID uuid.UUID) ([]StagedRecord[domain.HouseholdRecord], error)
	Relations(ctx context.Context, packageID uuid.UUID) ([]StagedRecord[domain.PersonPropertyRelationRecord], error)
	Evidences(ctx context.Context, packageID uuid.UUID) ([]StagedRecord[domain.EvidenceRecord], error)
	Surveys(ctx context.Context, packageID uuid.UUID) ([]StagedRecord[domain.SurveyRecord], error)
	Claims(ctx context.Context, packageID uuid.UUID) ([]StagedRecord[domain.ClaimRecord], error)
	Documents(ctx context.Context, packageID uuid.UUID) ([]StagedRecord[domain.DocumentRecord], error)
	Referrals(ctx context.Context, packageID uuid.UUID) ([]StagedRecord[domain.ReferralRecord], error)

	// Counts returns staged row counts per entity type.
	Counts(ctx context.Context, packageID uuid.UUID) (map[domain.EntityType]int, error)
	// ApplyOutcomes writes validator verdicts (status, diagnostics, approval).
	ApplyOutcomes(ctx context.Context, packageID uuid.UUID, outcomes []RowOutcome) error
	// MarkSkipped resolves a staged row away (merge / link): status Skipped,
	// committed_entity_id set to the production master.
	MarkSkipped(ctx context.Context, packageID uuid.UUID, et domain.EntityType, originalID, productionID uuid.UUID) error

	// Summary aggregates per-type validation outcomes for the review UI.
	Summary(ctx context.Context, packageID uuid.UUID) (*domain.StagedEntitySummary, error)
	// Page returns staged rows of one entity type, paginated.
	Page(ctx context.Context, packageID uuid.UUID, et domain.EntityType, offset, limit int) (*domain.StagedRowPage, error)
}

// ConflictStore persists duplicate conflicts and suppression marks.
type ConflictStore interface {
	// DeleteUnresolved clears a package's open conflicts before a re-run.
	DeleteUnresolved(ctx context.Context, packageID uuid.UUID) error
	CreateMany(ctx context.Context, conflicts []*domain.Conflict) error
	// Get returns CONFLICT_NOT_FOUND for unknown ids.
	Get(ctx context.Context, id uuid.UUID) (*domain.Conflict, error)
	ListByPackage(ctx context.Context, packageID uuid.UUID) ([]*domain.Conflict, error)
	CountUnresolved(ctx context.Context, packageID uuid.UUID) (int, error)
	// MarkResolved applies a decision write-once; a second attempt fails
	// with CONFLICT_ALREADY_RESOLVED.
	MarkResolved(ctx context.Context, id uuid.UUID, res domain.Resolution, justification string,
		masterID *uuid.UUID, mergeMapping map[string]int, actor string, at time.Time) (*domain.Conflict, error)

	// IsSuppressed reports whether a (entity type, production id, fingerprint)
	// pair was dismissed by an earlier KeepSeparate / CreateNew decision.
	IsSuppressed(ctx context.Context, et domain.ConflictEntityType, productionID uuid.UUID, fingerprint string) (bool, error)
	Suppress(ctx context.Context, et domain.ConflictEntityType, productionID uuid.UUID, fingerprint string, resolutionID uuid.UUID, actor string) error
}

// PersonCandidate is a production person surfaced by detection blocking.
type PersonCandidate struct {
	ID              uuid.UUID
	FirstName       string
	FatherName      string
	FamilyName      string
	NationalID      string
	DateOfBirth     *time.Time
	YearOfBirth     int
	GenderCode      string
	GovernorateCode string
}

// UnitCandidate is a production property unit surfaced by detection.
type UnitCandidate struct {
	ID             uuid.UUID
	BuildingID     uuid.UUID
	BuildingCode   string
	UnitIdentifier string
}

// BuildingCandidate is a production building surfaced by detection.
type BuildingCandidate struct {
	ID           uuid.UUID
	BuildingCode string
	Address      string
}

// ProductionStore reads and mutates committed registry data outside the
// commit transaction: duplicate-detection probes and merge repointing.
type ProductionStore interface {
	PersonsByNationalID(ctx context.Context, nationalID string) ([]PersonCandidate, error)
	// PersonsByBlockKey retrieves candidates by (year of birth, gender,
	// normalised family-name prefix).
	PersonsByBlockKey(ctx context.Context, yearOfBirth int, genderCode, familyPrefix string) ([]PersonCandidate, error)
	BuildingByCode(ctx context.Context, buildingCode string) (*BuildingCandidate, error)
	UnitsByBuildingCode(ctx context.Context, buildingCode string) ([]UnitCandidate, error)
	// Exists checks that a chosen master id is a live production row.
	Exists(ctx context.Context, et domain.ConflictEntityType, id uuid.UUID) (bool, error)

	// Merge* reconcile a staged record into a production master (master
	// wins, empty master fields filled from staging) and repoint any
	// production FKs still referencing the staged original id. The returned
	// map counts repointed rows per table. Merges are idempotent.
	MergePerson(ctx context.Context, masterID, stagedOriginalID uuid.UUID, staged domain.PersonRecord) (map[string]int, error)
	MergeBuilding(ctx context.Context, masterID, stagedOriginalID uuid.UUID, staged domain.BuildingRecord) (map[string]int, error)
	MergePropertyUnit(ctx context.Context, masterID, stagedOriginalID uuid.UUID, staged domain.PropertyUnitRecord) (map[string]int, error)

	// WithinCommit runs fn inside a single writable transaction. Any error
	// aborts the whole commit.
	WithinCommit(ctx context.Context, fn func(tx CommitTx) error) error
}

// CommitTx is the transactional surface the commit engine writes through.
// Unique-constraint violations surface as DUPLICATE_BUSINESS_IDENTIFIER.
type CommitTx interface {
	InsertBuilding(ctx context.Context, id uuid.UUID, rec domain.BuildingRecord, buildingCode string, sourcePackageID uuid.UUID) error
	InsertPropertyUnit(ctx context.Context, id uuid.UUID, rec domain.PropertyUnitRecord, buildingID uuid.UUID, compositeIdentifier string, sourcePackageID uuid.UUID) error
	InsertPerson(ctx context.Context, id uuid.UUID, rec domain.PersonRecord, sourcePackageID uuid.UUID) error
	InsertHousehold(ctx context.Context, id uuid.UUID, rec domain.HouseholdRecord, headID uuid.UUID, sourcePackageID uuid.UUID) error
	InsertRelation(ctx context.Context, id uuid.UUID, rec domain.PersonPropertyRelationRecord, personID, unitID uuid.UUID, sourcePackageID uuid.UUID) error
	InsertEvidence(ctx context.Context, id uuid.UUID, rec domain.EvidenceRecord, personID uuid.UUID, blobPath string, sourcePackageID uuid.UUID) error
	InsertSurvey(ctx context.Context, id uuid.UUID, rec domain.SurveyRecord, buildingID uuid.UUID, sourcePackageID uuid.UUID) error
	InsertClaim(ctx context.Context, id uuid.UUID, rec domain.ClaimRecord, unitID, claimantID uuid.UUID, claimNumber string, sourcePackageID uuid.UUID) error
	InsertDocument(ctx context.Context, id uuid.UUID, rec domain.DocumentRecord, claimID uuid.UUID, blobPath string, sourcePackageID uuid.UUID) error
	InsertReferral(ctx context.Context, id uuid.UUID, rec domain.ReferralRecord, claimID uuid.UUID, sourcePackageID uuid.UUID) error

	// NextClaimNumber allocates CLM-YYYY-NNNNNNNNN inside this transaction.
	NextClaimNumber(ctx context.Context, now time.Time) (string, error)
	// SetStagedCommitted stamps committed_entity_id on a staged row inside
	// this transaction.
	SetStagedCommitted(ctx context.Context, packageID uuid.UUID, et domain.EntityType, originalID, productionID uuid.UUID) error
}

// BlobStore is the content-addressed attachment store used at commit.
type BlobStore interface {
	Has(sha string) (bool, error)
	Put(content []byte, declaredSHA string) (string, error)
	Path(sha string) string
}

// PackageArchiver files a committed container into the archive tree.
type PackageArchiver interface {
	Archive(srcPath string, packageID uuid.UUID, committedAt time.Time) (string, error)
}

// PackageLocker guards pipeline stages with a per-package exclusive lock.
// TryLock never waits: a held lock fails with PACKAGE_BUSY.
type PackageLocker interface {
	TryLock(ctx context.Context, packageID uuid.UUID) (unlock func(), err error)
}

// EventRecorder persists a domain event and fans it out to in-process
// subscribers. Recording is best-effort glue, never a pipeline failure.
type EventRecorder interface {
	PackageEvent(ctx context.Context, typ domain.EventType, pkg *domain.ImportPackage, actor, detail string)
	ConflictEvent(ctx context.Context, typ domain.EventType, c *domain.Conflict, actor string)
}

// AuditSink records state-changing operations, best-effort.
type AuditSink interface {
	PackageAction(ctx context.Context, actor, action string, packageID uuid.UUID, params map[string]interface{})
	ConflictAction(ctx context.Context, actor, action string, conflictID uuid.UUID, params map[string]interface{})
}
