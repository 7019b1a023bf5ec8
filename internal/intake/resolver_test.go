package intake

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/internal/domain"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

type resolveFixture struct {
	packages   *fakePackages
	staging    *fakeStaging
	production *fakeProduction
	conflicts  *fakeConflicts
	resolver   *Resolver

	pkgID    uuid.UUID
	conflict *domain.Conflict
	staged   domain.PersonRecord
	prodID   uuid.UUID
}

// newResolveFixture sets up a package in conflict review with one open
// person conflict against one production candidate.
func newResolveFixture(t *testing.T) *resolveFixture {
	t.Helper()
	ctx := context.Background()
	f := &resolveFixture{
		packages:   newFakePackages(),
		staging:    newFakeStaging(),
		production: newFakeProduction(),
		conflicts:  newFakeConflicts(),
	}
	f.resolver = NewResolver(f.packages, f.staging, f.production, f.conflicts, &fakeEvents{}, &fakeAudit{})

	f.pkgID = uuid.New()
	require.NoError(t, f.packages.Create(ctx, &domain.ImportPackage{
		ID: f.pkgID, PackageNumber: "PKG-2026-0002",
		Status: domain.StatusReviewingConflicts,
	}))

	f.staged = stagedPerson()
	f.staging.persons[f.pkgID] = []StagedRecord[domain.PersonRecord]{approvedRecord(f.staged)}

	f.prodID = uuid.New()
	f.production.existing[f.prodID] = true

	suggested := f.prodID
	f.conflict = &domain.Conflict{
		ID:                uuid.New(),
		ImportPackageID:   f.pkgID,
		EntityType:        domain.ConflictPerson,
		StagingEntityID:   f.staged.OriginalID,
		Score:             100,
		SuggestedMasterID: &suggested,
		Candidates:        []domain.Candidate{{EntityID: f.prodID, Score: 100}},
		Status:            domain.ConflictUnresolved,
	}
	require.NoError(t, f.conflicts.CreateMany(ctx, []*domain.Conflict{f.conflict}))
	return f
}

func TestResolve_MergeSkipsStagedRowAndUnblocksPackage(t *testing.T) {
	ctx := context.Background()
	f := newResolveFixture(t)

	res, err := f.resolver.Resolve(ctx, f.conflict.ID, domain.ResolveRequest{
		Resolution:    domain.ResolutionMerge,
		Justification: "same person, national id and full name identical",
	}, "reviewer-1")
	require.NoError(t, err)

	require.True(t, res.MergePerformed)
	require.Equal(t, domain.StatusReadyToCommit, res.PackageStatus)
	require.Equal(t, domain.ConflictResolved, res.Conflict.Status)
	require.Equal(t, f.prodID, *res.Conflict.ChosenMasterID)
	require.Equal(t, "reviewer-1", res.Conflict.ResolvedBy)
	require.Equal(t, 1, f.production.mergeCalls)
	require.NotEmpty(t, res.Conflict.MergeMapping)

	rows, err := f.staging.Persons(ctx, f.pkgID)
	require.NoError(t, err)
	require.Equal(t, domain.RowSkipped, rows[0].ValidationStatus)
	require.NotNil(t, rows[0].CommittedEntityID)
	require.Equal(t, f.prodID, *rows[0].CommittedEntityID)
}

func TestResolve_LinkToExistingSkipsWithoutMerging(t *testing.T) {
	ctx := context.Background()
	f := newResolveFixture(t)

	res, err := f.resolver.Resolve(ctx, f.conflict.ID, domain.ResolveRequest{
		Resolution:    domain.ResolutionLinkToExisting,
		Justification: "registered last year, package adds nothing",
	}, "reviewer-1")
	require.NoError(t, err)
	require.False(t, res.MergePerformed)
	require.Zero(t, f.production.mergeCalls)

	rows, err := f.staging.Persons(ctx, f.pkgID)
	require.NoError(t, err)
	require.Equal(t, domain.RowSkipped, rows[0].ValidationStatus)
}

func TestResolve_KeepSeparateSuppressesThePair(t *testing.T) {
	ctx := context.Background()
	f := newResolveFixture(t)

	res, err := f.resolver.Resolve(ctx, f.conflict.ID, domain.ResolveRequest{
		Resolution:    domain.ResolutionKeepSeparate,
		Justification: "father and son share the name; different birth records on file",
	}, "reviewer-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusReadyToCommit, res.PackageStatus)

	suppressed, err := f.conflicts.IsSuppressed(ctx, domain.ConflictPerson,
		f.prodID, PersonFingerprint(f.staged))
	require.NoError(t, err)
	require.True(t, suppressed)

	// The staged row still commits as its own record.
	rows, err := f.staging.Persons(ctx, f.pkgID)
	require.NoError(t, err)
	require.Equal(t, domain.RowValid, rows[0].ValidationStatus)
	require.True(t, rows[0].ApprovedForCommit)
}

func TestResolve_DecisionIsWriteOnce(t *testing.T) {
	ctx := context.Background()
	f := newResolveFixture(t)

	_, err := f.resolver.Resolve(ctx, f.conflict.ID, domain.ResolveRequest{
		Resolution:    domain.ResolutionKeepSeparate,
		Justification: "distinct persons",
	}, "reviewer-1")
	require.NoError(t, err)

	_, err = f.resolver.Resolve(ctx, f.conflict.ID, domain.ResolveRequest{
		Resolution:    domain.ResolutionMerge,
		Justification: "changed my mind",
	}, "reviewer-2")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeConflictAlreadyResolved, appErr.Code)
}

func TestResolve_RequiresJustificationAndActor(t *testing.T) {
	ctx := context.Background()
	f := newResolveFixture(t)

	_, err := f.resolver.Resolve(ctx, f.conflict.ID, domain.ResolveRequest{
		Resolution: domain.ResolutionMerge,
	}, "reviewer-1")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidRequestField, appErr.Code)

	_, err = f.resolver.Resolve(ctx, f.conflict.ID, domain.ResolveRequest{
		Resolution:    domain.ResolutionMerge,
		Justification: "same person",
	}, "")
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeNotAuthenticated, appErr.Code)
}

func TestResolve_RejectsDeadMaster(t *testing.T) {
	ctx := context.Background()
	f := newResolveFixture(t)
	dead := uuid.New()

	_, err := f.resolver.Resolve(ctx, f.conflict.ID, domain.ResolveRequest{
		Resolution:     domain.ResolutionMerge,
		Justification:  "merge into the archived record",
		MasterEntityID: &dead,
	}, "reviewer-1")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeConflictNotFound, appErr.Code)
}

func TestResolve_PackageStaysInReviewWhileConflictsRemain(t *testing.T) {
	ctx := context.Background()
	f := newResolveFixture(t)

	other := &domain.Conflict{
		ID: uuid.New(), ImportPackageID: f.pkgID,
		EntityType: domain.ConflictPerson, StagingEntityID: uuid.New(),
		Score: 75, Status: domain.ConflictUnresolved,
	}
	require.NoError(t, f.conflicts.CreateMany(ctx, []*domain.Conflict{other}))

	res, err := f.resolver.Resolve(ctx, f.conflict.ID, domain.ResolveRequest{
		Resolution:    domain.ResolutionKeepSeparate,
		Justification: "distinct persons",
	}, "reviewer-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusReviewingConflicts, res.PackageStatus)
}
