package archive

import (
	"crypto/ed25519"
	"database/sql"
	"encoding/base64"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/internal/domain"
)

var (
	fixturePackageID = uuid.MustParse("6f1c2a34-9b1d-4b67-8c55-3f2a11ee0901")
	fixtureBuilding  = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	fixtureUnit      = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	fixturePerson    = uuid.MustParse("33333333-3333-4333-8333-333333333333")
	fixtureClaim     = uuid.MustParse("44444444-4444-4444-8444-444444444444")
)

// writeFixture builds a small signed container with one of each core entity
// and returns its path together with the signing key pair.
func writeFixture(t *testing.T, dir string) (string, ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	path := filepath.Join(dir, fixturePackageID.String()+".uhc")
	w, err := Create(path)
	require.NoError(t, err)

	require.NoError(t, w.AddBuilding(domain.BuildingRecord{
		OriginalID:          fixtureBuilding,
		GovernorateCode:     "01",
		DistrictCode:        "02",
		SubDistrictCode:     "03",
		CommunityCode:       "004",
		NeighborhoodCode:    "005",
		BuildingNumber:      "00042",
		BuildingTypeCode:    "residential",
		OccupancyStatusCode: "occupied",
		NumberOfFloors:      3,
		NumberOfUnits:       6,
		Address:             "شارع الجلاء",
	}))
	require.NoError(t, w.AddPropertyUnit(domain.PropertyUnitRecord{
		OriginalID:          fixtureUnit,
		OriginalBuildingID:  fixtureBuilding,
		UnitIdentifier:      "Apt 2",
		FloorNumber:         1,
		UnitTypeCode:        "apartment",
		OccupancyStatusCode: "occupied",
		AreaSqm:             84.5,
	}))
	dob := time.Date(1980, 5, 17, 0, 0, 0, 0, time.UTC)
	require.NoError(t, w.AddPerson(domain.PersonRecord{
		OriginalID:      fixturePerson,
		FirstName:       "أحمد",
		FatherName:      "محمد",
		FamilyName:      "الخالد",
		NationalID:      "10203040506",
		DateOfBirth:     &dob,
		GenderCode:      "male",
		GovernorateCode: "01",
	}))
	sha, err := w.AddAttachment([]byte("scanned tenure contract"))
	require.NoError(t, err)
	require.NoError(t, w.AddEvidence(domain.EvidenceRecord{
		OriginalID:       uuid.MustParse("55555555-5555-4555-8555-555555555555"),
		OriginalPersonID: fixturePerson,
		EvidenceTypeCode: "ownership_contract",
		BlobSHA256:       sha,
		BlobSizeBytes:    int64(len("scanned tenure contract")),
		FileName:         "contract.pdf",
		ContentType:      "application/pdf",
	}))
	require.NoError(t, w.AddClaim(domain.ClaimRecord{
		OriginalID:                fixtureClaim,
		OriginalPropertyUnitID:    fixtureUnit,
		OriginalPrimaryClaimantID: fixturePerson,
		ClaimTypeCode:             "ownership",
		ClaimedShare:              100,
	}))

	require.NoError(t, w.Finalize(ManifestSpec{
		PackageID:        fixturePackageID,
		SchemaVersion:    "1.2.0",
		CreatedUTC:       time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC),
		ExportedDateUTC:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		ExportedByUserID: "field-user-7",
		DeviceID:         "TAB-0042",
		VocabularyVersions: map[string]string{
			"building_type": "1.4.2",
			"claim_type":    "2.0.0",
		},
		SigningKey: priv,
	}))
	return path, pub, priv
}

func TestReader_ManifestRoundTrip(t *testing.T) {
	path, _, _ := writeFixture(t, t.TempDir())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	m, err := r.Manifest()
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	require.Equal(t, fixturePackageID, m.PackageID)
	require.Equal(t, "1.2.0", m.SchemaVersion)
	require.Equal(t, "TAB-0042", m.DeviceID)
	require.Equal(t, "field-user-7", m.ExportedByUserID)
	require.Equal(t, 5, m.TotalRecordCount)
	require.Equal(t, 1, m.EntityCounts[domain.EntityBuilding])
	require.Equal(t, 1, m.EntityCounts[domain.EntityPerson])
	require.Equal(t, 1, m.EntityCounts[domain.EntityClaim])
	require.Equal(t, 0, m.EntityCounts[domain.EntityReferral])
	require.Equal(t, int64(len("scanned tenure contract")), m.TotalAttachmentSizeBytes)
	require.Equal(t, "1.4.2", m.VocabularyVersions["building_type"])
	require.NotEmpty(t, m.Checksum)
	require.NotEmpty(t, m.DigitalSignature)
	require.Equal(t, time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC), m.CreatedUTC)
}

func TestReader_StreamsEntities(t *testing.T) {
	path, _, _ := writeFixture(t, t.TempDir())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	var persons []domain.PersonRecord
	require.NoError(t, r.EachPerson(func(rec domain.PersonRecord) error {
		persons = append(persons, rec)
		return nil
	}))
	require.Len(t, persons, 1)
	require.Equal(t, fixturePerson, persons[0].OriginalID)
	require.Equal(t, "أحمد", persons[0].FirstName)
	require.Equal(t, "10203040506", persons[0].NationalID)
	require.NotNil(t, persons[0].DateOfBirth)
	require.Equal(t, 1980, persons[0].DateOfBirth.Year())

	var claims []domain.ClaimRecord
	require.NoError(t, r.EachClaim(func(rec domain.ClaimRecord) error {
		claims = append(claims, rec)
		return nil
	}))
	require.Len(t, claims, 1)
	require.Equal(t, fixtureUnit, claims[0].OriginalPropertyUnitID)
	require.Equal(t, fixturePerson, claims[0].OriginalPrimaryClaimantID)
	require.Equal(t, float64(100), claims[0].ClaimedShare)

	n, err := r.RowCount(domain.EntityPropertyUnit)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	n, err = r.RowCount(domain.EntitySurvey)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestReader_Attachment(t *testing.T) {
	path, _, _ := writeFixture(t, t.TempDir())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	var sha string
	require.NoError(t, r.EachEvidence(func(rec domain.EvidenceRecord) error {
		sha = rec.BlobSHA256
		return nil
	}))
	require.NotEmpty(t, sha)

	content, err := r.Attachment(sha)
	require.NoError(t, err)
	require.Equal(t, []byte("scanned tenure contract"), content)

	_, err = r.Attachment("deadbeef")
	require.Error(t, err)
}

func TestContentChecksum_MatchesManifestAndSignature(t *testing.T) {
	path, pub, _ := writeFixture(t, t.TempDir())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	m, err := r.Manifest()
	require.NoError(t, err)

	computed, err := r.ContentChecksum()
	require.NoError(t, err)
	require.Equal(t, m.Checksum, computed)

	ok, err := VerifySignature(computed, m.DigitalSignature,
		base64Key(pub))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestContentChecksum_DetectsTampering(t *testing.T) {
	path, pub, _ := writeFixture(t, t.TempDir())

	// Tamper with a single field after export.
	db, err := sql.Open("sqlite3", "file:"+url.PathEscape(path))
	require.NoError(t, err)
	_, err = db.Exec("UPDATE persons SET first_name = 'محمود' WHERE id = ?", fixturePerson.String())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	m, err := r.Manifest()
	require.NoError(t, err)

	computed, err := r.ContentChecksum()
	require.NoError(t, err)
	require.NotEqual(t, m.Checksum, computed)

	ok, err := VerifySignature(computed, m.DigitalSignature, base64Key(pub))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestContentChecksum_DistinguishesNullFromEmpty(t *testing.T) {
	path, _, _ := writeFixture(t, t.TempDir())

	r, err := Open(path)
	require.NoError(t, err)
	before, err := r.ContentChecksum()
	require.NoError(t, err)
	require.NoError(t, r.Close())

	db, err := sql.Open("sqlite3", "file:"+url.PathEscape(path))
	require.NoError(t, err)
	// notes was NULL in the fixture; an empty string is a different value.
	_, err = db.Exec("UPDATE buildings SET notes = '' WHERE id = ?", fixtureBuilding.String())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	r, err = Open(path)
	require.NoError(t, err)
	defer r.Close()
	after, err := r.ContentChecksum()
	require.NoError(t, err)
	require.NotEqual(t, before, after)
}

func TestOpen_RejectsContainerWithoutManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.uhc")
	db, err := sql.Open("sqlite3", "file:"+url.PathEscape(path))
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE misc (id TEXT PRIMARY KEY)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open(path)
	require.ErrorContains(t, err, "manifest")
}

func TestVerifySignature_RejectsWrongKey(t *testing.T) {
	path, _, _ := writeFixture(t, t.TempDir())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	m, err := r.Manifest()
	require.NoError(t, err)

	otherPub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	ok, err := VerifySignature(m.Checksum, m.DigitalSignature, base64Key(otherPub))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestParseArchiveTime_AcceptedLayouts(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2026-03-10T08:30:00Z", time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)},
		{"2026-03-10T08:30:00.250Z", time.Date(2026, 3, 10, 8, 30, 0, 250e6, time.UTC)},
		{"1980-05-17", time.Date(1980, 5, 17, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := parseArchiveTime(tc.raw)
		require.NoError(t, err, tc.raw)
		require.True(t, tc.want.Equal(*got), tc.raw)
	}

	_, err := parseArchiveTime("17/05/1980")
	require.Error(t, err)
}

func base64Key(pub ed25519.PublicKey) string {
	return base64.StdEncoding.EncodeToString(pub)
}
