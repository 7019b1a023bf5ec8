package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	// Pure-Go SQLite driver; .uhc containers never touch cgo.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"uhc-registry.io/registry/internal/domain"
)

// Reader is a read-only view over one .uhc container.
type Reader struct {
	db   *sql.DB
	path string
}

// Open opens a .uhc container read-only and confirms a manifest table is
// present. A missing or unreadable manifest is the caller's MANIFEST_INVALID
// signal.
func Open(path string) (*Reader, error) {
	dsn := "file:" + url.PathEscape(path) + "?mode=ro&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", path, err)
	}

	var name string
	err = db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", TableManifest,
	).Scan(&name)
	if err != nil {
		db.Close()
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("archive: %s has no manifest table", path)
		}
		return nil, fmt.Errorf("archive: inspect %s: %w", path, err)
	}

	return &Reader{db: db, path: path}, nil
}

// Close releases the underlying database handle.
func (r *Reader) Close() error {
	return r.db.Close()
}

// Path returns the container's file path.
func (r *Reader) Path() string { return r.path }

// Manifest decodes the single manifest row.
func (r *Reader) Manifest() (*domain.Manifest, error) {
	var (
		packageID, schemaVersion, createdUTC, exportedUTC  string
		exportedBy, deviceID, vocabJSON, checksum, sigB64  sql.NullString
		totalRecords, totalAttachmentBytes                 sql.NullInt64
		counts                                             [10]sql.NullInt64
	)
	row := r.db.QueryRow(`SELECT package_id, schema_version, created_utc, exported_date_utc,
		exported_by_user_id, device_id, total_record_count,
		building_count, property_unit_count, person_count, household_count,
		person_property_relation_count, evidence_count, survey_count,
		claim_count, document_count, referral_count,
		total_attachment_size_bytes, vocabulary_versions, checksum, digital_signature
		FROM manifest LIMIT 1`)
	if err := row.Scan(
		&packageID, &schemaVersion, &createdUTC, &exportedUTC,
		&exportedBy, &deviceID, &totalRecords,
		&counts[0], &counts[1], &counts[2], &counts[3], &counts[4],
		&counts[5], &counts[6], &counts[7], &counts[8], &counts[9],
		&totalAttachmentBytes, &vocabJSON, &checksum, &sigB64,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("archive: manifest table is empty")
		}
		return nil, fmt.Errorf("archive: decode manifest: %w", err)
	}

	pid, err := uuid.Parse(packageID)
	if err != nil {
		return nil, fmt.Errorf("archive: manifest package_id %q: %w", packageID, err)
	}
	created, err := parseArchiveTime(createdUTC)
	if err != nil {
		return nil, fmt.Errorf("archive: manifest created_utc: %w", err)
	}
	exported, err := parseArchiveTime(exportedUTC)
	if err != nil {
		return nil, fmt.Errorf("archive: manifest exported_date_utc: %w", err)
	}

	m := &domain.Manifest{
		PackageID:                pid,
		SchemaVersion:            schemaVersion,
		CreatedUTC:               *created,
		ExportedDateUTC:          *exported,
		ExportedByUserID:         exportedBy.String,
		DeviceID:                 deviceID.String,
		TotalRecordCount:         int(totalRecords.Int64),
		TotalAttachmentSizeBytes: totalAttachmentBytes.Int64,
		EntityCounts:             map[domain.EntityType]int{},
		VocabularyVersions:       map[string]string{},
		Checksum:                 checksum.String,
		DigitalSignature:         sigB64.String,
	}
	for i, et := range domain.EntityOrder {
		m.EntityCounts[et] = int(counts[i].Int64)
	}
	if vocabJSON.Valid && vocabJSON.String != "" {
		if err := json.Unmarshal([]byte(vocabJSON.String), &m.VocabularyVersions); err != nil {
			return nil, fmt.Errorf("archive: manifest vocabulary_versions: %w", err)
		}
	}
	return m, nil
}

// ContentChecksum recomputes the canonical content digest of the container.
func (r *Reader) ContentChecksum() (string, error) {
	return computeContentChecksum(r.db)
}

// RowCount counts an entity table's rows.
func (r *Reader) RowCount(et domain.EntityType) (int, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM " + et.ArchiveTable()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("archive: count %s: %w", et.ArchiveTable(), err)
	}
	return n, nil
}

// EachBuilding streams building rows in primary-key order.
func (r *Reader) EachBuilding(fn func(domain.BuildingRecord) error) error {
	return r.each(domain.EntityBuilding, func(s scanRow) error {
		rec := domain.BuildingRecord{
			GovernorateCode:     s.text("governorate_code"),
			DistrictCode:        s.text("district_code"),
			SubDistrictCode:     s.text("sub_district_code"),
			CommunityCode:       s.text("community_code"),
			NeighborhoodCode:    s.text("neighborhood_code"),
			BuildingNumber:      s.text("building_number"),
			BuildingTypeCode:    s.text("building_type_code"),
			OccupancyStatusCode: s.text("occupancy_status_code"),
			NumberOfFloors:      int(s.integer("number_of_floors")),
			NumberOfUnits:       int(s.integer("number_of_units")),
			Address:             s.text("address"),
			Latitude:            s.real("latitude"),
			Longitude:           s.real("longitude"),
			Notes:               s.text("notes"),
		}
		var err error
		if rec.OriginalID, err = s.id(); err != nil {
			return err
		}
		return fn(rec)
	})
}

// EachPropertyUnit streams property-unit rows in primary-key order.
func (r *Reader) EachPropertyUnit(fn func(domain.PropertyUnitRecord) error) error {
	return r.each(domain.EntityPropertyUnit, func(s scanRow) error {
		rec := domain.PropertyUnitRecord{
			UnitIdentifier:      s.text("unit_identifier"),
			FloorNumber:         int(s.integer("floor_number")),
			UnitTypeCode:        s.text("unit_type_code"),
			OccupancyStatusCode: s.text("occupancy_status_code"),
			AreaSqm:             s.real("area_sqm"),
			RoomCount:           int(s.integer("room_count")),
			Notes:               s.text("notes"),
		}
		var err error
		if rec.OriginalID, err = s.id(); err != nil {
			return err
		}
		rec.OriginalBuildingID = s.uuidOrNil("building_id")
		return fn(rec)
	})
}

// EachPerson streams person rows in primary-key order.
func (r *Reader) EachPerson(fn func(domain.PersonRecord) error) error {
	return r.each(domain.EntityPerson, func(s scanRow) error {
		rec := domain.PersonRecord{
			FirstName:       s.text("first_name"),
			FatherName:      s.text("father_name"),
			FamilyName:      s.text("family_name"),
			MotherName:      s.text("mother_name"),
			NationalID:      s.text("national_id"),
			DateOfBirth:     s.timePtr("date_of_birth"),
			GenderCode:      s.text("gender_code"),
			NationalityCode: s.text("nationality_code"),
			GovernorateCode: s.text("governorate_code"),
			PhoneNumber:     s.text("phone_number"),
		}
		var err error
		if rec.OriginalID, err = s.id(); err != nil {
			return err
		}
		return fn(rec)
	})
}

// EachHousehold streams household rows in primary-key order.
func (r *Reader) EachHousehold(fn func(domain.HouseholdRecord) error) error {
	return r.each(domain.EntityHousehold, func(s scanRow) error {
		rec := domain.HouseholdRecord{
			HouseholdSize:                 int(s.integer("household_size")),
			MalesUnder18:                  int(s.integer("males_under_18")),
			FemalesUnder18:                int(s.integer("females_under_18")),
			MalesAdult:                    int(s.integer("males_adult")),
			FemalesAdult:                  int(s.integer("females_adult")),
			ResidencyStatusCode:           s.text("residency_status_code"),
			DisplacementOriginGovernorate: s.text("displacement_origin_governorate"),
		}
		var err error
		if rec.OriginalID, err = s.id(); err != nil {
			return err
		}
		rec.OriginalHeadOfHouseholdID = s.uuidOrNil("head_of_household_id")
		return fn(rec)
	})
}

// EachPersonPropertyRelation streams relation rows in primary-key order.
func (r *Reader) EachPersonPropertyRelation(fn func(domain.PersonPropertyRelationRecord) error) error {
	return r.each(domain.EntityPersonPropertyRelation, func(s scanRow) error {
		rec := domain.PersonPropertyRelationRecord{
			RelationTypeCode: s.text("relation_type_code"),
			OwnershipShare:   s.real("ownership_share"),
			StartDate:        s.timePtr("start_date"),
			Notes:            s.text("notes"),
		}
		var err error
		if rec.OriginalID, err = s.id(); err != nil {
			return err
		}
		rec.OriginalPersonID = s.uuidOrNil("person_id")
		rec.OriginalPropertyUnitID = s.uuidOrNil("property_unit_id")
		return fn(rec)
	})
}

// EachEvidence streams evidence rows in primary-key order.
func (r *Reader) EachEvidence(fn func(domain.EvidenceRecord) error) error {
	return r.each(domain.EntityEvidence, func(s scanRow) error {
		rec := domain.EvidenceRecord{
			EvidenceTypeCode: s.text("evidence_type_code"),
			DocumentNumber:   s.text("document_number"),
			IssuedDate:       s.timePtr("issued_date"),
			IssuingAuthority: s.text("issuing_authority"),
			BlobSHA256:       s.text("blob_sha256"),
			BlobSizeBytes:    s.integer("blob_size_bytes"),
			FileName:         s.text("file_name"),
			ContentType:      s.text("content_type"),
			Notes:            s.text("notes"),
		}
		var err error
		if rec.OriginalID, err = s.id(); err != nil {
			return err
		}
		rec.OriginalPersonID = s.uuidOrNil("person_id")
		return fn(rec)
	})
}

// EachSurvey streams survey rows in primary-key order.
func (r *Reader) EachSurvey(fn func(domain.SurveyRecord) error) error {
	return r.each(domain.EntitySurvey, func(s scanRow) error {
		rec := domain.SurveyRecord{
			SurveyTypeCode: s.text("survey_type_code"),
			SurveyDate:     s.timePtr("survey_date"),
			SurveyorName:   s.text("surveyor_name"),
			Notes:          s.text("notes"),
		}
		var err error
		if rec.OriginalID, err = s.id(); err != nil {
			return err
		}
		rec.OriginalBuildingID = s.uuidOrNil("building_id")
		return fn(rec)
	})
}

// EachClaim streams claim rows in primary-key order.
func (r *Reader) EachClaim(fn func(domain.ClaimRecord) error) error {
	return r.each(domain.EntityClaim, func(s scanRow) error {
		rec := domain.ClaimRecord{
			ClaimTypeCode:  s.text("claim_type_code"),
			StatusCode:     s.text("status_code"),
			ClaimedShare:   s.real("claimed_share"),
			SubmissionDate: s.timePtr("submission_date"),
			Notes:          s.text("notes"),
		}
		var err error
		if rec.OriginalID, err = s.id(); err != nil {
			return err
		}
		rec.OriginalPropertyUnitID = s.uuidOrNil("property_unit_id")
		rec.OriginalPrimaryClaimantID = s.uuidOrNil("primary_claimant_id")
		return fn(rec)
	})
}

// EachDocument streams document rows in primary-key order.
func (r *Reader) EachDocument(fn func(domain.DocumentRecord) error) error {
	return r.each(domain.EntityDocument, func(s scanRow) error {
		rec := domain.DocumentRecord{
			DocumentTypeCode: s.text("document_type_code"),
			Title:            s.text("title"),
			BlobSHA256:       s.text("blob_sha256"),
			BlobSizeBytes:    s.integer("blob_size_bytes"),
			FileName:         s.text("file_name"),
			ContentType:      s.text("content_type"),
		}
		var err error
		if rec.OriginalID, err = s.id(); err != nil {
			return err
		}
		rec.OriginalClaimID = s.uuidOrNil("claim_id")
		return fn(rec)
	})
}

// EachReferral streams referral rows in primary-key order.
func (r *Reader) EachReferral(fn func(domain.ReferralRecord) error) error {
	return r.each(domain.EntityReferral, func(s scanRow) error {
		rec := domain.ReferralRecord{
			ReferralReasonCode: s.text("referral_reason_code"),
			ReferredToAgency:   s.text("referred_to_agency"),
			ReferralDate:       s.timePtr("referral_date"),
			Notes:              s.text("notes"),
		}
		var err error
		if rec.OriginalID, err = s.id(); err != nil {
			return err
		}
		rec.OriginalClaimID = s.uuidOrNil("claim_id")
		return fn(rec)
	})
}

// Attachment loads one attachment blob by its sha256 hex id.
func (r *Reader) Attachment(sha string) ([]byte, error) {
	var content []byte
	err := r.db.QueryRow(
		"SELECT content FROM attachment_blobs WHERE id = ?", sha,
	).Scan(&content)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("archive: attachment %s not found", sha)
		}
		return nil, fmt.Errorf("archive: read attachment %s: %w", sha, err)
	}
	return content, nil
}

// each streams one entity table through a scanRow adapter.
func (r *Reader) each(et domain.EntityType, fn func(scanRow) error) error {
	cols := entityColumns[et]
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id",
		strings.Join(names, ", "), et.ArchiveTable())

	rows, err := r.db.Query(query)
	if err != nil {
		return fmt.Errorf("archive: read %s: %w", et.ArchiveTable(), err)
	}
	defer rows.Close()

	for rows.Next() {
		holders := make([]interface{}, len(cols))
		byName := make(map[string]interface{}, len(cols))
		for i, c := range cols {
			switch c.Kind {
			case KindInt:
				holders[i] = new(sql.NullInt64)
			case KindReal:
				holders[i] = new(sql.NullFloat64)
			case KindBlob:
				holders[i] = new([]byte)
			default:
				holders[i] = new(sql.NullString)
			}
			byName[c.Name] = holders[i]
		}
		if err := rows.Scan(holders...); err != nil {
			return fmt.Errorf("archive: scan %s: %w", et.ArchiveTable(), err)
		}
		if err := fn(scanRow{table: et.ArchiveTable(), values: byName}); err != nil {
			return err
		}
	}
	return rows.Err()
}

// scanRow exposes typed access to one scanned archive row.
type scanRow struct {
	table  string
	values map[string]interface{}
}

func (s scanRow) text(col string) string {
	if v, ok := s.values[col].(*sql.NullString); ok && v.Valid {
		return v.String
	}
	return ""
}

func (s scanRow) integer(col string) int64 {
	if v, ok := s.values[col].(*sql.NullInt64); ok && v.Valid {
		return v.Int64
	}
	return 0
}

func (s scanRow) real(col string) float64 {
	if v, ok := s.values[col].(*sql.NullFloat64); ok && v.Valid {
		return v.Float64
	}
	return 0
}

// id parses the mandatory primary key; a malformed id is a hard error
// because every downstream stage keys on it.
func (s scanRow) id() (uuid.UUID, error) {
	raw := s.text("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("archive: %s id %q is not a UUID", s.table, raw)
	}
	return id, nil
}

// uuidOrNil parses an FK column; malformed values surface as uuid.Nil and
// are reported by the validator, not the loader.
func (s scanRow) uuidOrNil(col string) uuid.UUID {
	id, err := uuid.Parse(s.text(col))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func (s scanRow) timePtr(col string) *time.Time {
	raw := s.text(col)
	if raw == "" {
		return nil
	}
	t, err := parseArchiveTime(raw)
	if err != nil {
		return nil
	}
	return t
}

// parseArchiveTime accepts the formats devices emit: RFC3339 with or
// without fractional seconds, or a bare date.
func parseArchiveTime(raw string) (*time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unparseable time %q", raw)
}
