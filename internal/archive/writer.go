package archive

import (
	"crypto/ed25519"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
)

// Writer builds a .uhc container. The server itself never exports packages;
// the writer exists for the seed tool and for test fixtures, and produces
// exactly the layout field devices emit so the reader and checksum paths are
// exercised against real containers.
type Writer struct {
	db              *sql.DB
	path            string
	counts          map[domain.EntityType]int
	attachmentBytes int64
}

// ManifestSpec is the exporter-supplied portion of the manifest. Counts,
// checksum and signature are filled in by Finalize.
type ManifestSpec struct {
	PackageID        uuid.UUID
	SchemaVersion    string
	CreatedUTC       time.Time
	ExportedDateUTC  time.Time
	ExportedByUserID string
	DeviceID         string

	VocabularyVersions map[string]string

	// SigningKey, when set, signs the content digest as the device would.
	SigningKey ed25519.PrivateKey

	// OmitChecksum leaves the checksum column empty. Used to build the
	// unverifiable-package fixture.
	OmitChecksum bool
}

// Create opens a new container file and creates every table.
func Create(path string) (*Writer, error) {
	db, err := sql.Open("sqlite3", "file:"+url.PathEscape(path))
	if err != nil {
		return nil, fmt.Errorf("archive: create %s: %w", path, err)
	}
	w := &Writer{db: db, path: path, counts: map[domain.EntityType]int{}}

	for _, et := range domain.EntityOrder {
		if err := w.createTable(et.ArchiveTable(), entityColumns[et]); err != nil {
			db.Close()
			return nil, err
		}
	}
	if err := w.createTable(TableAttachmentBlobs, attachmentColumns); err != nil {
		db.Close()
		return nil, err
	}
	if err := w.createTable(TableManifest, manifestColumns); err != nil {
		db.Close()
		return nil, err
	}
	return w, nil
}

func (w *Writer) createTable(table string, cols []Column) error {
	defs := make([]string, len(cols))
	for i, c := range cols {
		affinity := "TEXT"
		switch c.Kind {
		case KindInt:
			affinity = "INTEGER"
		case KindReal:
			affinity = "REAL"
		case KindBlob:
			affinity = "BLOB"
		}
		def := c.Name + " " + affinity
		if c.Name == "id" && table != TableManifest {
			def += " PRIMARY KEY"
		}
		defs[i] = def
	}
	_, err := w.db.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(defs, ", ")))
	if err != nil {
		return fmt.Errorf("archive: create table %s: %w", table, err)
	}
	return nil
}

// AddBuilding appends one building row.
func (w *Writer) AddBuilding(rec domain.BuildingRecord) error {
	return w.insert(domain.EntityBuilding, []interface{}{
		rec.OriginalID.String(),
		nullableText(rec.GovernorateCode),
		nullableText(rec.DistrictCode),
		nullableText(rec.SubDistrictCode),
		nullableText(rec.CommunityCode),
		nullableText(rec.NeighborhoodCode),
		nullableText(rec.BuildingNumber),
		nullableText(rec.BuildingTypeCode),
		nullableText(rec.OccupancyStatusCode),
		rec.NumberOfFloors,
		rec.NumberOfUnits,
		nullableText(rec.Address),
		rec.Latitude,
		rec.Longitude,
		nullableText(rec.Notes),
	})
}

// AddPropertyUnit appends one property-unit row.
func (w *Writer) AddPropertyUnit(rec domain.PropertyUnitRecord) error {
	return w.insert(domain.EntityPropertyUnit, []interface{}{
		rec.OriginalID.String(),
		nullableID(rec.OriginalBuildingID),
		nullableText(rec.UnitIdentifier),
		rec.FloorNumber,
		nullableText(rec.UnitTypeCode),
		nullableText(rec.OccupancyStatusCode),
		rec.AreaSqm,
		rec.RoomCount,
		nullableText(rec.Notes),
	})
}

// AddPerson appends one person row.
func (w *Writer) AddPerson(rec domain.PersonRecord) error {
	return w.insert(domain.EntityPerson, []interface{}{
		rec.OriginalID.String(),
		nullableText(rec.FirstName),
		nullableText(rec.FatherName),
		nullableText(rec.FamilyName),
		nullableText(rec.MotherName),
		nullableText(rec.NationalID),
		nullableTime(rec.DateOfBirth),
		nullableText(rec.GenderCode),
		nullableText(rec.NationalityCode),
		nullableText(rec.GovernorateCode),
		nullableText(rec.PhoneNumber),
	})
}

// AddHousehold appends one household row.
func (w *Writer) AddHousehold(rec domain.HouseholdRecord) error {
	return w.insert(domain.EntityHousehold, []interface{}{
		rec.OriginalID.String(),
		nullableID(rec.OriginalHeadOfHouseholdID),
		rec.HouseholdSize,
		rec.MalesUnder18,
		rec.FemalesUnder18,
		rec.MalesAdult,
		rec.FemalesAdult,
		nullableText(rec.ResidencyStatusCode),
		nullableText(rec.DisplacementOriginGovernorate),
	})
}

// AddPersonPropertyRelation appends one relation row.
func (w *Writer) AddPersonPropertyRelation(rec domain.PersonPropertyRelationRecord) error {
	return w.insert(domain.EntityPersonPropertyRelation, []interface{}{
		rec.OriginalID.String(),
		nullableID(rec.OriginalPersonID),
		nullableID(rec.OriginalPropertyUnitID),
		nullableText(rec.RelationTypeCode),
		rec.OwnershipShare,
		nullableTime(rec.StartDate),
		nullableText(rec.Notes),
	})
}

// AddEvidence appends one evidence row.
func (w *Writer) AddEvidence(rec domain.EvidenceRecord) error {
	return w.insert(domain.EntityEvidence, []interface{}{
		rec.OriginalID.String(),
		nullableID(rec.OriginalPersonID),
		nullableText(rec.EvidenceTypeCode),
		nullableText(rec.DocumentNumber),
		nullableTime(rec.IssuedDate),
		nullableText(rec.IssuingAuthority),
		nullableText(rec.BlobSHA256),
		rec.BlobSizeBytes,
		nullableText(rec.FileName),
		nullableText(rec.ContentType),
		nullableText(rec.Notes),
	})
}

// AddSurvey appends one survey row.
func (w *Writer) AddSurvey(rec domain.SurveyRecord) error {
	return w.insert(domain.EntitySurvey, []interface{}{
		rec.OriginalID.String(),
		nullableID(rec.OriginalBuildingID),
		nullableText(rec.SurveyTypeCode),
		nullableTime(rec.SurveyDate),
		nullableText(rec.SurveyorName),
		nullableText(rec.Notes),
	})
}

// AddClaim appends one claim row.
func (w *Writer) AddClaim(rec domain.ClaimRecord) error {
	return w.insert(domain.EntityClaim, []interface{}{
		rec.OriginalID.String(),
		nullableID(rec.OriginalPropertyUnitID),
		nullableID(rec.OriginalPrimaryClaimantID),
		nullableText(rec.ClaimTypeCode),
		nullableText(rec.StatusCode),
		rec.ClaimedShare,
		nullableTime(rec.SubmissionDate),
		nullableText(rec.Notes),
	})
}

// AddDocument appends one document row.
func (w *Writer) AddDocument(rec domain.DocumentRecord) error {
	return w.insert(domain.EntityDocument, []interface{}{
		rec.OriginalID.String(),
		nullableID(rec.OriginalClaimID),
		nullableText(rec.DocumentTypeCode),
		nullableText(rec.Title),
		nullableText(rec.BlobSHA256),
		rec.BlobSizeBytes,
		nullableText(rec.FileName),
		nullableText(rec.ContentType),
	})
}

// AddReferral appends one referral row.
func (w *Writer) AddReferral(rec domain.ReferralRecord) error {
	return w.insert(domain.EntityReferral, []interface{}{
		rec.OriginalID.String(),
		nullableID(rec.OriginalClaimID),
		nullableText(rec.ReferralReasonCode),
		nullableText(rec.ReferredToAgency),
		nullableTime(rec.ReferralDate),
		nullableText(rec.Notes),
	})
}

// AddAttachment stores a content-addressed blob and returns its sha256 hex
// id. Duplicate content is stored once.
func (w *Writer) AddAttachment(content []byte) (string, error) {
	sum := sha256.Sum256(content)
	sha := hex.EncodeToString(sum[:])

	var exists int
	err := w.db.QueryRow("SELECT COUNT(*) FROM attachment_blobs WHERE id = ?", sha).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("archive: probe attachment: %w", err)
	}
	if exists > 0 {
		return sha, nil
	}
	_, err = w.db.Exec(
		"INSERT INTO attachment_blobs (id, size_bytes, content) VALUES (?, ?, ?)",
		sha, int64(len(content)), content,
	)
	if err != nil {
		return "", fmt.Errorf("archive: write attachment: %w", err)
	}
	w.attachmentBytes += int64(len(content))
	return sha, nil
}

func (w *Writer) insert(et domain.EntityType, vals []interface{}) error {
	cols := entityColumns[et]
	if len(vals) != len(cols) {
		return fmt.Errorf("archive: %s insert has %d values, want %d", et, len(vals), len(cols))
	}
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		marks[i] = "?"
	}
	_, err := w.db.Exec(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		et.ArchiveTable(), strings.Join(names, ", "), strings.Join(marks, ", ")), vals...)
	if err != nil {
		return fmt.Errorf("archive: insert into %s: %w", et.ArchiveTable(), err)
	}
	w.counts[et]++
	return nil
}

// Finalize computes the content checksum over everything added so far,
// signs it if a key was given, writes the manifest row and closes the file.
func (w *Writer) Finalize(spec ManifestSpec) error {
	defer w.db.Close()

	checksum, err := computeContentChecksum(w.db)
	if err != nil {
		return err
	}

	signature := ""
	if spec.SigningKey != nil {
		signature, err = SignContent(checksum, spec.SigningKey)
		if err != nil {
			return err
		}
	}
	if spec.OmitChecksum {
		checksum = ""
	}

	vocabJSON := "{}"
	if len(spec.VocabularyVersions) > 0 {
		raw, err := json.Marshal(spec.VocabularyVersions)
		if err != nil {
			return fmt.Errorf("archive: encode vocabulary versions: %w", err)
		}
		vocabJSON = string(raw)
	}

	total := 0
	vals := []interface{}{
		spec.PackageID.String(),
		spec.SchemaVersion,
		spec.CreatedUTC.UTC().Format(time.RFC3339),
		spec.ExportedDateUTC.UTC().Format(time.RFC3339),
		nullableText(spec.ExportedByUserID),
		spec.DeviceID,
	}
	for _, et := range domain.EntityOrder {
		total += w.counts[et]
	}
	vals = append(vals, total)
	for _, et := range domain.EntityOrder {
		vals = append(vals, w.counts[et])
	}
	vals = append(vals, w.attachmentBytes, vocabJSON, nullableText(checksum), nullableText(signature))

	names := make([]string, len(manifestColumns))
	marks := make([]string, len(manifestColumns))
	for i, c := range manifestColumns {
		names[i] = c.Name
		marks[i] = "?"
	}
	_, err = w.db.Exec(fmt.Sprintf("INSERT INTO manifest (%s) VALUES (%s)",
		strings.Join(names, ", "), strings.Join(marks, ", ")), vals...)
	if err != nil {
		return fmt.Errorf("archive: write manifest: %w", err)
	}
	return nil
}

// Abort closes the file without writing a manifest.
func (w *Writer) Abort() error {
	return w.db.Close()
}

func nullableText(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullableID(id uuid.UUID) interface{} {
	if id == uuid.Nil {
		return nil
	}
	return id.String()
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
