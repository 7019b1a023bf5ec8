package intake

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/internal/domain"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

func validatedPackage(t *testing.T, packages *fakePackages) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, packages.Create(context.Background(), &domain.ImportPackage{
		ID:            id,
		PackageNumber: "PKG-2026-0001",
		Status:        domain.StatusValidated,
	}))
	return id
}

func approvedRecord[T any](rec T) StagedRecord[T] {
	return StagedRecord[T]{Record: rec, ValidationStatus: domain.RowValid, ApprovedForCommit: true}
}

func stagedPerson() domain.PersonRecord {
	dob := time.Date(1980, 5, 17, 0, 0, 0, 0, time.UTC)
	return domain.PersonRecord{
		OriginalID: uuid.New(),
		FirstName:  "أحمد", FatherName: "محمد", FamilyName: "الخالد",
		NationalID: "10203040506", DateOfBirth: &dob, GenderCode: "male",
	}
}

func TestDetect_NationalIDAndIdenticalNameOpensConflictAtHundred(t *testing.T) {
	ctx := context.Background()
	packages := newFakePackages()
	staging := newFakeStaging()
	production := newFakeProduction()
	conflicts := newFakeConflicts()
	events := &fakeEvents{}

	pkgID := validatedPackage(t, packages)
	rec := stagedPerson()
	staging.persons[pkgID] = []StagedRecord[domain.PersonRecord]{approvedRecord(rec)}

	prodID := uuid.New()
	dob := *rec.DateOfBirth
	production.persons = []PersonCandidate{{
		ID:        prodID,
		FirstName: rec.FirstName, FatherName: rec.FatherName, FamilyName: rec.FamilyName,
		NationalID: rec.NationalID, DateOfBirth: &dob, YearOfBirth: dob.Year(),
		GenderCode: rec.GenderCode,
	}}

	d := NewDetector(packages, staging, production, conflicts, events, &fakeAudit{}, nil)
	report, err := d.DetectDuplicates(ctx, pkgID, "reviewer")
	require.NoError(t, err)

	require.Equal(t, 1, report.PersonsScored)
	require.Equal(t, 1, report.ConflictsCreated)
	require.Equal(t, domain.StatusReviewingConflicts, report.PackageStatus)

	found, err := conflicts.ListByPackage(ctx, pkgID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	c := found[0]
	require.Equal(t, domain.ConflictPerson, c.EntityType)
	require.Equal(t, rec.OriginalID, c.StagingEntityID)
	require.InDelta(t, 100.0, c.Score, 1e-9)
	require.NotNil(t, c.SuggestedMasterID)
	require.Equal(t, prodID, *c.SuggestedMasterID)
	require.Equal(t, domain.ConflictUnresolved, c.Status)
	require.Equal(t, 1, events.ofType(domain.EventConflictsDetected))
}

func TestDetect_NoCandidatesMovesStraightToReadyToCommit(t *testing.T) {
	ctx := context.Background()
	packages := newFakePackages()
	staging := newFakeStaging()

	pkgID := validatedPackage(t, packages)
	staging.persons[pkgID] = []StagedRecord[domain.PersonRecord]{approvedRecord(stagedPerson())}

	d := NewDetector(packages, staging, newFakeProduction(), newFakeConflicts(), &fakeEvents{}, &fakeAudit{}, nil)
	report, err := d.DetectDuplicates(ctx, pkgID, "reviewer")
	require.NoError(t, err)
	require.Zero(t, report.ConflictsCreated)
	require.Equal(t, domain.StatusReadyToCommit, report.PackageStatus)

	pkg, err := packages.Get(ctx, pkgID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusReadyToCommit, pkg.Status)
}

func TestDetect_SuppressedPairIsNotSurfacedAgain(t *testing.T) {
	ctx := context.Background()
	packages := newFakePackages()
	staging := newFakeStaging()
	production := newFakeProduction()
	conflicts := newFakeConflicts()

	pkgID := validatedPackage(t, packages)
	rec := stagedPerson()
	staging.persons[pkgID] = []StagedRecord[domain.PersonRecord]{approvedRecord(rec)}

	prodID := uuid.New()
	production.persons = []PersonCandidate{{
		ID:        prodID,
		FirstName: rec.FirstName, FatherName: rec.FatherName, FamilyName: rec.FamilyName,
		NationalID: rec.NationalID, GenderCode: rec.GenderCode,
		YearOfBirth: rec.DateOfBirth.Year(),
	}}
	require.NoError(t, conflicts.Suppress(ctx, domain.ConflictPerson, prodID,
		PersonFingerprint(rec), uuid.New(), "reviewer"))

	d := NewDetector(packages, staging, production, conflicts, &fakeEvents{}, &fakeAudit{}, nil)
	report, err := d.DetectDuplicates(ctx, pkgID, "reviewer")
	require.NoError(t, err)
	require.Zero(t, report.ConflictsCreated)
	require.Equal(t, domain.StatusReadyToCommit, report.PackageStatus)
}

func TestDetect_UnitIdentifierWithinEditDistanceScoresSeventy(t *testing.T) {
	ctx := context.Background()
	packages := newFakePackages()
	staging := newFakeStaging()
	production := newFakeProduction()
	conflicts := newFakeConflicts()

	pkgID := validatedPackage(t, packages)
	building := domain.BuildingRecord{
		OriginalID:      uuid.New(),
		GovernorateCode: "01", DistrictCode: "02", SubDistrictCode: "03",
		CommunityCode: "004", NeighborhoodCode: "005", BuildingNumber: "00042",
	}
	unit := domain.PropertyUnitRecord{
		OriginalID:         uuid.New(),
		OriginalBuildingID: building.OriginalID,
		UnitIdentifier:     "A-13",
	}
	staging.buildings[pkgID] = []StagedRecord[domain.BuildingRecord]{approvedRecord(building)}
	staging.units[pkgID] = []StagedRecord[domain.PropertyUnitRecord]{approvedRecord(unit)}

	prodUnit := uuid.New()
	production.units = []UnitCandidate{{
		ID:           prodUnit,
		BuildingCode: "01020300400500042", UnitIdentifier: "A-12",
	}}

	d := NewDetector(packages, staging, production, conflicts, &fakeEvents{}, &fakeAudit{}, nil)
	report, err := d.DetectDuplicates(ctx, pkgID, "reviewer")
	require.NoError(t, err)
	require.Equal(t, 1, report.UnitsScored)
	require.Equal(t, 1, report.ConflictsCreated)

	found, err := conflicts.ListByPackage(ctx, pkgID)
	require.NoError(t, err)
	// Only the unit conflicted; the staged building has no production
	// counterpart at that code.
	require.Len(t, found, 1)
	require.Equal(t, domain.ConflictPropertyUnit, found[0].EntityType)
	require.InDelta(t, 70.0, found[0].Score, 1e-9)
	require.Equal(t, prodUnit, *found[0].SuggestedMasterID)
}

func TestDetect_ExactBuildingCodeMatchesAtHundred(t *testing.T) {
	ctx := context.Background()
	packages := newFakePackages()
	staging := newFakeStaging()
	production := newFakeProduction()
	conflicts := newFakeConflicts()

	pkgID := validatedPackage(t, packages)
	building := domain.BuildingRecord{
		OriginalID:      uuid.New(),
		GovernorateCode: "01", DistrictCode: "02", SubDistrictCode: "03",
		CommunityCode: "004", NeighborhoodCode: "005", BuildingNumber: "00042",
	}
	staging.buildings[pkgID] = []StagedRecord[domain.BuildingRecord]{approvedRecord(building)}

	prodID := uuid.New()
	production.buildings = []BuildingCandidate{{ID: prodID, BuildingCode: "01020300400500042"}}

	d := NewDetector(packages, staging, production, conflicts, &fakeEvents{}, &fakeAudit{}, nil)
	report, err := d.DetectDuplicates(ctx, pkgID, "reviewer")
	require.NoError(t, err)
	require.Equal(t, 1, report.ConflictsCreated)

	found, err := conflicts.ListByPackage(ctx, pkgID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, domain.ConflictBuilding, found[0].EntityType)
	require.InDelta(t, 100.0, found[0].Score, 1e-9)
}

func TestDetect_RejectsPackagesOutsideValidated(t *testing.T) {
	ctx := context.Background()
	packages := newFakePackages()
	id := uuid.New()
	require.NoError(t, packages.Create(ctx, &domain.ImportPackage{
		ID: id, Status: domain.StatusPending,
	}))

	d := NewDetector(packages, newFakeStaging(), newFakeProduction(), newFakeConflicts(), &fakeEvents{}, &fakeAudit{}, nil)
	_, err := d.DetectDuplicates(ctx, id, "reviewer")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeStateTransitionInvalid, appErr.Code)
}

func TestDetect_RerunClearsUnresolvedConflicts(t *testing.T) {
	ctx := context.Background()
	packages := newFakePackages()
	staging := newFakeStaging()
	conflicts := newFakeConflicts()

	pkgID := validatedPackage(t, packages)
	stale := &domain.Conflict{
		ID: uuid.New(), ImportPackageID: pkgID,
		EntityType: domain.ConflictPerson, StagingEntityID: uuid.New(),
		Score: 80, Status: domain.ConflictUnresolved,
	}
	require.NoError(t, conflicts.CreateMany(ctx, []*domain.Conflict{stale}))

	d := NewDetector(packages, staging, newFakeProduction(), conflicts, &fakeEvents{}, &fakeAudit{}, nil)
	report, err := d.DetectDuplicates(ctx, pkgID, "reviewer")
	require.NoError(t, err)
	require.Zero(t, report.ConflictsCreated)

	open, err := conflicts.CountUnresolved(ctx, pkgID)
	require.NoError(t, err)
	require.Zero(t, open)
}
