package intake

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"database/sql"
	"encoding/base64"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/internal/archive"
	"uhc-registry.io/registry/internal/domain"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
	"uhc-registry.io/registry/internal/vocabulary"
)

func init() {
	_ = logger.Init("error", "json")
}

// testEnv drives the whole pipeline against the in-memory fakes, with a real
// container on disk for receive, load and commit.
type testEnv struct {
	packages   *fakePackages
	staging    *fakeStaging
	conflicts  *fakeConflicts
	production *fakeProduction
	blobs      *fakeBlobs
	archiver   *fakeArchiver
	locker     *fakeLocker
	events     *fakeEvents
	audit      *fakeAudit
	service    *Service
}

func newTestEnv(t *testing.T, cfg ReceiverConfig) *testEnv {
	t.Helper()
	env := &testEnv{
		packages:   newFakePackages(),
		staging:    newFakeStaging(),
		conflicts:  newFakeConflicts(),
		production: newFakeProduction(),
		blobs:      newFakeBlobs(),
		archiver:   &fakeArchiver{},
		locker:     newFakeLocker(),
		events:     &fakeEvents{},
		audit:      &fakeAudit{},
	}
	if cfg.SpoolDir == "" {
		cfg.SpoolDir = t.TempDir()
	}
	vocab := testVocab(t)
	env.service = NewService(ServiceDeps{
		Packages:  env.packages,
		Staging:   env.staging,
		Conflicts: env.conflicts,
		Locker:    env.locker,
		Receiver:  NewReceiver(cfg, env.packages, vocab, env.events, env.audit),
		Loader:    NewLoader(env.packages, env.staging, env.events, env.audit),
		Validator: NewValidator(env.packages, env.staging, env.production, vocab, env.events, env.audit),
		Detector:  NewDetector(env.packages, env.staging, env.production, env.conflicts, env.events, env.audit, nil),
		Resolver:  NewResolver(env.packages, env.staging, env.production, env.conflicts, env.events, env.audit),
		Committer: NewCommitter(env.packages, env.staging, env.production, env.conflicts, env.blobs, env.archiver, env.events, env.audit),
		Events:    env.events,
		Audit:     env.audit,
	})
	return env
}

func testVocab(t *testing.T) *vocabulary.Registry {
	t.Helper()
	code := func(c string) []vocabulary.Code {
		return []vocabulary.Code{{Code: c, LabelEN: c}}
	}
	reg, err := vocabulary.FromDomains(
		vocabulary.Domain{Domain: "building_type", Version: "1.0.0", Codes: code("residential")},
		vocabulary.Domain{Domain: "occupancy_status", Version: "1.0.0", Codes: code("occupied")},
		vocabulary.Domain{Domain: "unit_type", Version: "1.0.0", Codes: code("apartment")},
		vocabulary.Domain{Domain: "gender", Version: "1.0.0", Codes: []vocabulary.Code{{Code: "male"}, {Code: "female"}}},
		vocabulary.Domain{Domain: "nationality", Version: "1.0.0", Codes: code("syrian")},
		vocabulary.Domain{Domain: "residency_status", Version: "1.0.0", Codes: code("resident")},
		vocabulary.Domain{Domain: "relation_type", Version: "1.0.0", Codes: code("owner")},
		vocabulary.Domain{Domain: "evidence_type", Version: "1.0.0", Codes: code("tenure_contract")},
		vocabulary.Domain{Domain: "survey_type", Version: "1.0.0", Codes: code("damage_assessment")},
		vocabulary.Domain{Domain: "claim_type", Version: "1.0.0", Codes: code("ownership")},
		vocabulary.Domain{Domain: "document_type", Version: "1.0.0", Codes: code("contract")},
		vocabulary.Domain{Domain: "referral_reason", Version: "1.0.0", Codes: code("legal_aid")},
	)
	require.NoError(t, err)
	return reg
}

func testVocabVersions() map[string]string {
	return map[string]string{
		"building_type": "1.0.0", "occupancy_status": "1.0.0", "unit_type": "1.0.0",
		"gender": "1.0.0", "nationality": "1.0.0", "residency_status": "1.0.0",
		"relation_type": "1.0.0", "evidence_type": "1.0.0", "survey_type": "1.0.0",
		"claim_type": "1.0.0", "document_type": "1.0.0", "referral_reason": "1.0.0",
	}
}

type containerIDs struct {
	pkg      uuid.UUID
	building uuid.UUID
	unit     uuid.UUID
	person   uuid.UUID
	claim    uuid.UUID
}

// writeCleanContainer builds a signed, fully valid container: one building,
// one unit, one person, one claim and one evidence carrying the attachment.
func writeCleanContainer(t *testing.T, path string, key ed25519.PrivateKey, attachment []byte) containerIDs {
	t.Helper()
	ids := containerIDs{
		pkg:      uuid.New(),
		building: uuid.New(),
		unit:     uuid.New(),
		person:   uuid.New(),
		claim:    uuid.New(),
	}
	w, err := archive.Create(path)
	require.NoError(t, err)

	require.NoError(t, w.AddBuilding(domain.BuildingRecord{
		OriginalID:      ids.building,
		GovernorateCode: "01", DistrictCode: "02", SubDistrictCode: "03",
		CommunityCode: "004", NeighborhoodCode: "005", BuildingNumber: "00042",
		BuildingTypeCode: "residential", OccupancyStatusCode: "occupied",
		NumberOfFloors: 2, NumberOfUnits: 4,
		Address: "شارع الثورة، حي القصور",
	}))
	require.NoError(t, w.AddPropertyUnit(domain.PropertyUnitRecord{
		OriginalID: ids.unit, OriginalBuildingID: ids.building,
		UnitIdentifier: "Apt 3", FloorNumber: 1,
		UnitTypeCode: "apartment", OccupancyStatusCode: "occupied",
		AreaSqm: 85,
	}))
	dob := time.Date(1985, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, w.AddPerson(domain.PersonRecord{
		OriginalID: ids.person,
		FirstName:  "أحمد", FatherName: "محمد", FamilyName: "الخالد",
		NationalID: "10203040506", DateOfBirth: &dob, GenderCode: "male",
	}))
	sha, err := w.AddAttachment(attachment)
	require.NoError(t, err)
	require.NoError(t, w.AddEvidence(domain.EvidenceRecord{
		OriginalID: uuid.New(), OriginalPersonID: ids.person,
		EvidenceTypeCode: "tenure_contract",
		BlobSHA256:       sha, BlobSizeBytes: int64(len(attachment)),
		FileName: "contract.pdf", ContentType: "application/pdf",
	}))
	require.NoError(t, w.AddClaim(domain.ClaimRecord{
		OriginalID: ids.claim, OriginalPropertyUnitID: ids.unit,
		OriginalPrimaryClaimantID: ids.person,
		ClaimTypeCode:             "ownership",
		StatusCode:                domain.ClaimStatusDraftPendingSubmission,
		ClaimedShare:              100,
	}))

	require.NoError(t, w.Finalize(archive.ManifestSpec{
		PackageID:          ids.pkg,
		SchemaVersion:      "1.0",
		CreatedUTC:         time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC),
		ExportedDateUTC:    time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
		ExportedByUserID:   "enumerator-17",
		DeviceID:           "tablet-0042",
		VocabularyVersions: testVocabVersions(),
		SigningKey:         key,
	}))
	return ids
}

func receiveFile(t *testing.T, env *testEnv, path string) *domain.ReceiveResult {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	res, err := env.service.Receive(context.Background(), f, filepath.Base(path), domain.ImportManual, "operator")
	require.NoError(t, err)
	return res
}

func TestReceive_DuplicateUploadIsIdempotent(t *testing.T) {
	pub, key, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	env := newTestEnv(t, ReceiverConfig{SignaturePublicKey: base64.StdEncoding.EncodeToString(pub)})

	path := filepath.Join(t.TempDir(), "field.uhc")
	writeCleanContainer(t, path, key, []byte("scanned tenure contract"))

	// Receive moves the spooled file away, so the second upload replays the
	// same bytes from a copy.
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	first := receiveFile(t, env, path)
	require.False(t, first.IsDuplicatePackage)
	require.Equal(t, domain.StatusPending, first.Package.Status)
	require.NotEmpty(t, first.Package.PackageNumber)

	second, err := env.service.Receive(context.Background(),
		bytes.NewReader(content), "field-copy.uhc", domain.ImportManual, "operator")
	require.NoError(t, err)
	require.True(t, second.IsDuplicatePackage)
	require.Equal(t, first.Package.PackageNumber, second.Package.PackageNumber)

	list, err := env.service.List(context.Background(), PackageFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalCount)
}

func TestReceive_TamperedContainerQuarantinedOnChecksum(t *testing.T) {
	env := newTestEnv(t, ReceiverConfig{})

	path := filepath.Join(t.TempDir(), "field.uhc")
	ids := writeCleanContainer(t, path, nil, []byte("x"))

	// Alter one field after export, as a corrupted courier copy would.
	db, err := sql.Open("sqlite3", "file:"+url.PathEscape(path))
	require.NoError(t, err)
	_, err = db.Exec("UPDATE persons SET first_name = 'محمود' WHERE id = ?", ids.person.String())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	res := receiveFile(t, env, path)
	require.Equal(t, domain.StatusQuarantined, res.Package.Status)
	require.Equal(t, apperrors.CodeChecksumMismatch, res.Package.QuarantinedReason)
	require.NotEqual(t, res.Package.ExpectedChecksum, res.Package.ComputedChecksum)
	require.Equal(t, 1, env.events.ofType(domain.EventPackageQuarantined))
}

func TestReceive_MissingChecksumSkipsTamperCheck(t *testing.T) {
	env := newTestEnv(t, ReceiverConfig{})

	// A device that never computed a checksum claims no tamper evidence;
	// the package still lands as Pending.
	path := filepath.Join(t.TempDir(), "unverifiable.uhc")
	w, err := archive.Create(path)
	require.NoError(t, err)
	require.NoError(t, w.AddPerson(domain.PersonRecord{
		OriginalID: uuid.New(),
		FirstName:  "سارة", FatherName: "يوسف", FamilyName: "الخطيب",
	}))
	require.NoError(t, w.Finalize(archive.ManifestSpec{
		PackageID:          uuid.New(),
		SchemaVersion:      "1.0",
		CreatedUTC:         time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC),
		ExportedDateUTC:    time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
		DeviceID:           "tablet-0099",
		VocabularyVersions: testVocabVersions(),
		OmitChecksum:       true,
	}))

	res := receiveFile(t, env, path)
	require.Equal(t, domain.StatusPending, res.Package.Status)
	require.Empty(t, res.Package.QuarantinedReason)
	require.Empty(t, res.Package.ExpectedChecksum)
	require.NotEmpty(t, res.Package.ComputedChecksum)
	require.Equal(t, 1, env.events.ofType(domain.EventPackageReceived))
}

func TestReceive_UnsignedPackageQuarantinedWhenSignatureRequired(t *testing.T) {
	env := newTestEnv(t, ReceiverConfig{SignatureRequired: true})

	path := filepath.Join(t.TempDir(), "unsigned.uhc")
	writeCleanContainer(t, path, nil, []byte("x"))

	res := receiveFile(t, env, path)
	require.Equal(t, domain.StatusQuarantined, res.Package.Status)
	require.Equal(t, apperrors.CodeSignatureRequired, res.Package.QuarantinedReason)
	require.NotEmpty(t, res.Package.PackageNumber)
	require.Equal(t, 1, env.events.ofType(domain.EventPackageQuarantined))
}

func TestReceive_RejectsOversizedUpload(t *testing.T) {
	env := newTestEnv(t, ReceiverConfig{MaxPackageSizeBytes: 64})

	_, err := env.service.Receive(context.Background(),
		bytes.NewReader(make([]byte, 1024)), "big.uhc", domain.ImportManual, "operator")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodePackageTooLarge, appErr.Code)
}

func TestPipeline_CleanPackageCommitsEndToEnd(t *testing.T) {
	pub, key, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	env := newTestEnv(t, ReceiverConfig{SignaturePublicKey: base64.StdEncoding.EncodeToString(pub)})
	ctx := context.Background()

	attachment := []byte("scanned tenure contract, 2026")
	path := filepath.Join(t.TempDir(), "field.uhc")
	ids := writeCleanContainer(t, path, key, attachment)

	res := receiveFile(t, env, path)
	require.Equal(t, domain.StatusPending, res.Package.Status)
	require.Equal(t, domain.SignatureValid, res.Package.SignatureStatus)

	loadRep, err := env.service.Load(ctx, ids.pkg, "operator")
	require.NoError(t, err)
	require.Equal(t, 5, loadRep.TotalRows)
	require.False(t, loadRep.Reloaded)

	summary, err := env.service.Validate(ctx, ids.pkg, "operator")
	require.NoError(t, err)
	require.Equal(t, domain.StatusValidated, summary.PackageStatus)
	require.Zero(t, summary.InvalidRows)
	require.Zero(t, summary.BlockingCount)

	detRep, err := env.service.DetectDuplicates(ctx, ids.pkg, "operator")
	require.NoError(t, err)
	require.Zero(t, detRep.ConflictsCreated)
	require.Equal(t, domain.StatusReadyToCommit, detRep.PackageStatus)

	report, err := env.service.Commit(ctx, ids.pkg, "operator")
	require.NoError(t, err)
	require.True(t, report.Success)
	require.Equal(t, domain.StatusCompleted, report.PackageStatus)
	require.Len(t, env.production.committed, 5)

	// Every claim leaves the pipeline in the registry's entry status with a
	// fresh claim number.
	var claimNumber string
	for _, row := range env.production.committed {
		if row.entityType == domain.EntityClaim {
			claimNumber = row.claimNumber
		}
	}
	require.Regexp(t, `^CLM-\d{4}-\d{9}$`, claimNumber)

	// The attachment landed in the content store once.
	require.Equal(t, 1, report.Dedup.AttachmentsTotal)
	require.Zero(t, report.Dedup.AttachmentsDeduplicated)
	require.Len(t, env.blobs.data, 1)

	pkg, err := env.service.Get(ctx, ids.pkg)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, pkg.Status)
	require.True(t, pkg.IsArchived)
	require.NotNil(t, pkg.CommittedDate)

	gotReport, err := env.service.Report(ctx, ids.pkg)
	require.NoError(t, err)
	require.True(t, gotReport.Success)
}
