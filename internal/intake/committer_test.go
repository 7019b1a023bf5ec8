package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/internal/domain"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

type commitFixture struct {
	packages   *fakePackages
	staging    *fakeStaging
	production *fakeProduction
	conflicts  *fakeConflicts
	blobs      *fakeBlobs
	archiver   *fakeArchiver
	committer  *Committer

	pkgID    uuid.UUID
	building domain.BuildingRecord
	unit     domain.PropertyUnitRecord
	person   domain.PersonRecord
	claim    domain.ClaimRecord
}

// newCommitFixture stages a ready-to-commit package with a building, unit,
// person and claim.
func newCommitFixture(t *testing.T) *commitFixture {
	t.Helper()
	ctx := context.Background()
	f := &commitFixture{
		packages:   newFakePackages(),
		staging:    newFakeStaging(),
		production: newFakeProduction(),
		conflicts:  newFakeConflicts(),
		blobs:      newFakeBlobs(),
		archiver:   &fakeArchiver{},
	}
	f.committer = NewCommitter(f.packages, f.staging, f.production, f.conflicts,
		f.blobs, f.archiver, &fakeEvents{}, &fakeAudit{})

	f.pkgID = uuid.New()
	require.NoError(t, f.packages.Create(ctx, &domain.ImportPackage{
		ID: f.pkgID, PackageNumber: "PKG-2026-0003",
		Status: domain.StatusReadyToCommit,
	}))

	f.building = domain.BuildingRecord{
		OriginalID:      uuid.New(),
		GovernorateCode: "01", DistrictCode: "02", SubDistrictCode: "03",
		CommunityCode: "004", NeighborhoodCode: "005", BuildingNumber: "00042",
	}
	f.unit = domain.PropertyUnitRecord{
		OriginalID: uuid.New(), OriginalBuildingID: f.building.OriginalID,
		UnitIdentifier: "Apt 3",
	}
	f.person = stagedPerson()
	f.claim = domain.ClaimRecord{
		OriginalID:                uuid.New(),
		OriginalPropertyUnitID:    f.unit.OriginalID,
		OriginalPrimaryClaimantID: f.person.OriginalID,
		ClaimTypeCode:             "ownership",
		StatusCode:                "submitted",
		ClaimedShare:              100,
	}
	f.staging.buildings[f.pkgID] = []StagedRecord[domain.BuildingRecord]{approvedRecord(f.building)}
	f.staging.units[f.pkgID] = []StagedRecord[domain.PropertyUnitRecord]{approvedRecord(f.unit)}
	f.staging.persons[f.pkgID] = []StagedRecord[domain.PersonRecord]{approvedRecord(f.person)}
	f.staging.claims[f.pkgID] = []StagedRecord[domain.ClaimRecord]{approvedRecord(f.claim)}
	return f
}

func TestCommit_RejectsPackageWithUnresolvedConflicts(t *testing.T) {
	ctx := context.Background()
	f := newCommitFixture(t)
	require.NoError(t, f.conflicts.CreateMany(ctx, []*domain.Conflict{{
		ID: uuid.New(), ImportPackageID: f.pkgID,
		EntityType: domain.ConflictPerson, StagingEntityID: f.person.OriginalID,
		Score: 100, Status: domain.ConflictUnresolved,
	}}))

	_, err := f.committer.Commit(ctx, f.pkgID, "operator")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeConflictUnresolved, appErr.Code)

	// Nothing moved: still awaiting resolution, nothing committed.
	pkg, err := f.packages.Get(ctx, f.pkgID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusReadyToCommit, pkg.Status)
	require.Empty(t, f.production.committed)
}

func TestCommit_FailureRollsBackEveryRow(t *testing.T) {
	ctx := context.Background()
	f := newCommitFixture(t)
	f.production.failClaimInsert = errors.New("deferred constraint violated")

	_, err := f.committer.Commit(ctx, f.pkgID, "operator")
	require.Error(t, err)

	// All-or-nothing: the building, unit and person inserted before the claim
	// failure must not survive.
	require.Empty(t, f.production.committed)
	require.Empty(t, f.production.stamped)

	pkg, err := f.packages.Get(ctx, f.pkgID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCommitFailed, pkg.Status)
	require.NotNil(t, pkg.CommitReport)
	require.False(t, pkg.CommitReport.Success)
	require.NotEmpty(t, pkg.CommitReport.Errors)

	// COMMIT_FAILED is retryable; with the fault cleared the same package
	// commits whole.
	f.production.failClaimInsert = nil
	report, err := f.committer.Commit(ctx, f.pkgID, "operator")
	require.NoError(t, err)
	require.True(t, report.Success)
	require.Equal(t, domain.StatusCompleted, report.PackageStatus)
	require.Len(t, f.production.committed, 4)
}

func TestCommit_TranslatesForeignKeysToFreshProductionIDs(t *testing.T) {
	ctx := context.Background()
	f := newCommitFixture(t)

	report, err := f.committer.Commit(ctx, f.pkgID, "operator")
	require.NoError(t, err)
	require.True(t, report.Success)

	require.Len(t, report.IDMap, 4)
	for original, production := range report.IDMap {
		require.NotEqual(t, original, production)
	}
	require.Equal(t, domain.TypeOutcome{Approved: 1, Committed: 1},
		report.PerType[domain.EntityClaim])
	require.Len(t, f.production.stamped, 4)
}

func TestCommit_SkippedRowsResolveToTheirMaster(t *testing.T) {
	ctx := context.Background()
	f := newCommitFixture(t)

	// The person was merged away during review; its claims must point at the
	// production master instead of a fresh insert.
	master := uuid.New()
	f.staging.persons[f.pkgID] = []StagedRecord[domain.PersonRecord]{{
		Record:            f.person,
		ValidationStatus:  domain.RowSkipped,
		CommittedEntityID: &master,
	}}

	report, err := f.committer.Commit(ctx, f.pkgID, "operator")
	require.NoError(t, err)
	require.True(t, report.Success)

	require.Equal(t, domain.TypeOutcome{Skipped: 1}, report.PerType[domain.EntityPerson])
	require.Equal(t, master.String(), report.IDMap[f.person.OriginalID.String()])

	for _, row := range f.production.committed {
		require.NotEqual(t, domain.EntityPerson, row.entityType)
	}
	// The claim still landed, claimant translated through the master.
	require.Equal(t, domain.TypeOutcome{Approved: 1, Committed: 1},
		report.PerType[domain.EntityClaim])
}

func TestCommit_InvalidRowsStayBehind(t *testing.T) {
	ctx := context.Background()
	f := newCommitFixture(t)

	// Drop the claim and add an invalid survey; the rest commits around it.
	f.staging.claims[f.pkgID] = nil
	f.staging.surveys[f.pkgID] = []StagedRecord[domain.SurveyRecord]{{
		Record: domain.SurveyRecord{
			OriginalID:         uuid.New(),
			OriginalBuildingID: f.building.OriginalID,
		},
		ValidationStatus: domain.RowInvalid,
	}}

	report, err := f.committer.Commit(ctx, f.pkgID, "operator")
	require.NoError(t, err)
	require.Equal(t, domain.TypeOutcome{Failed: 1}, report.PerType[domain.EntitySurvey])
	require.Len(t, f.production.committed, 3)
}

func TestCommit_ArchiveFailureCompletesPartially(t *testing.T) {
	ctx := context.Background()
	f := newCommitFixture(t)
	f.archiver.err = errors.New("archive volume offline")

	report, err := f.committer.Commit(ctx, f.pkgID, "operator")
	require.NoError(t, err)

	// The production write stands; only the container filing is pending.
	require.True(t, report.Success)
	require.Equal(t, domain.StatusPartiallyCompleted, report.PackageStatus)
	require.Len(t, f.production.committed, 4)

	pkg, err := f.packages.Get(ctx, f.pkgID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPartiallyCompleted, pkg.Status)
	require.False(t, pkg.IsArchived)
}

func TestCommit_DeduplicatesAttachmentsAlreadyInStore(t *testing.T) {
	ctx := context.Background()
	f := newCommitFixture(t)

	content := []byte("scanned tenure contract")
	sha := "89d65a2c8edbfcbdbbcc1c1a25ab6cb70fb600572d1978e5b201faa1ff110a68"
	_, err := f.blobs.Put(content, sha)
	require.NoError(t, err)

	f.staging.evidences[f.pkgID] = []StagedRecord[domain.EvidenceRecord]{
		approvedRecord(domain.EvidenceRecord{
			OriginalID: uuid.New(), OriginalPersonID: f.person.OriginalID,
			EvidenceTypeCode: "tenure_contract",
			BlobSHA256:       sha, BlobSizeBytes: int64(len(content)),
		}),
		approvedRecord(domain.EvidenceRecord{
			OriginalID: uuid.New(), OriginalPersonID: f.person.OriginalID,
			EvidenceTypeCode: "tenure_contract",
			BlobSHA256:       sha, BlobSizeBytes: int64(len(content)),
		}),
	}

	report, err := f.committer.Commit(ctx, f.pkgID, "operator")
	require.NoError(t, err)
	require.True(t, report.Success)

	require.Equal(t, 2, report.Dedup.AttachmentsTotal)
	require.Equal(t, 2, report.Dedup.AttachmentsDeduplicated)
	require.Equal(t, int64(2*len(content)), report.Dedup.DeduplicationBytesSaved)
	require.Len(t, f.blobs.data, 1)
}
