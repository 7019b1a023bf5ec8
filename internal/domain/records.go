package domain

import (
	"time"

	"github.com/google/uuid"
)

// Business payload records carried by a .uhc package. One struct per entity
// type, mirroring the production counterpart. Foreign keys between records
// are the ORIGINAL archive UUIDs; they are translated to production ids only
// at commit time.

// BuildingRecord is a staged building.
type BuildingRecord struct {
	OriginalID uuid.UUID `json:"original_id"`

	// Administrative code parts composing the 17-digit building code:
	// governorate(2) district(2) subdistrict(2) community(3)
	// neighborhood(3) building(5).
	GovernorateCode  string `json:"governorate_code"`
	DistrictCode     string `json:"district_code"`
	SubDistrictCode  string `json:"sub_district_code"`
	CommunityCode    string `json:"community_code"`
	NeighborhoodCode string `json:"neighborhood_code"`
	BuildingNumber   string `json:"building_number"`

	BuildingTypeCode    string  `json:"building_type_code"`
	OccupancyStatusCode string  `json:"occupancy_status_code"`
	NumberOfFloors      int     `json:"number_of_floors"`
	NumberOfUnits       int     `json:"number_of_units"`
	Address             string  `json:"address,omitempty"`
	Latitude            float64 `json:"latitude,omitempty"`
	Longitude           float64 `json:"longitude,omitempty"`
	Notes               string  `json:"notes,omitempty"`
}

// PropertyUnitRecord is a staged property unit.
type PropertyUnitRecord struct {
	OriginalID         uuid.UUID `json:"original_id"`
	OriginalBuildingID uuid.UUID `json:"original_building_id"`

	UnitIdentifier      string  `json:"unit_identifier"`
	FloorNumber         int     `json:"floor_number"`
	UnitTypeCode        string  `json:"unit_type_code"`
	OccupancyStatusCode string  `json:"occupancy_status_code"`
	AreaSqm             float64 `json:"area_sqm,omitempty"`
	RoomCount           int     `json:"room_count,omitempty"`
	Notes               string  `json:"notes,omitempty"`
}

// PersonRecord is a staged person.
type PersonRecord struct {
	OriginalID uuid.UUID `json:"original_id"`

	FirstName  string `json:"first_name"`
	FatherName string `json:"father_name"`
	FamilyName string `json:"family_name"`
	MotherName string `json:"mother_name,omitempty"`

	NationalID      string     `json:"national_id,omitempty"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty"`
	GenderCode      string     `json:"gender_code"`
	NationalityCode string     `json:"nationality_code,omitempty"`
	GovernorateCode string     `json:"governorate_code,omitempty"`
	PhoneNumber     string     `json:"phone_number,omitempty"`
}

// FullName joins the name triple for display.
func (p PersonRecord) FullName() string {
	s := p.FirstName
	if p.FatherName != "" {
		s += " " + p.FatherName
	}
	if p.FamilyName != "" {
		s += " " + p.FamilyName
	}
	return s
}

// HouseholdRecord is a staged household.
type HouseholdRecord struct {
	OriginalID                  uuid.UUID `json:"original_id"`
	OriginalHeadOfHouseholdID   uuid.UUID `json:"original_head_of_household_id"`
	HouseholdSize               int       `json:"household_size"`
	MalesUnder18                int       `json:"males_under_18"`
	FemalesUnder18              int       `json:"females_under_18"`
	MalesAdult                  int       `json:"males_adult"`
	FemalesAdult                int       `json:"females_adult"`
	ResidencyStatusCode         string    `json:"residency_status_code"`
	DisplacementOriginGovernorate string  `json:"displacement_origin_governorate,omitempty"`
}

// AgeBucketSum is the household size implied by the age/gender buckets.
func (h HouseholdRecord) AgeBucketSum() int {
	return h.MalesUnder18 + h.FemalesUnder18 + h.MalesAdult + h.FemalesAdult
}

// PersonPropertyRelationRecord links a staged person to a staged unit.
type PersonPropertyRelationRecord struct {
	OriginalID             uuid.UUID  `json:"original_id"`
	OriginalPersonID       uuid.UUID  `json:"original_person_id"`
	OriginalPropertyUnitID uuid.UUID  `json:"original_property_unit_id"`
	RelationTypeCode       string     `json:"relation_type_code"`
	OwnershipShare         float64    `json:"ownership_share"`
	StartDate              *time.Time `json:"start_date,omitempty"`
	Notes                  string     `json:"notes,omitempty"`
}

// EvidenceRecord is a staged piece of tenure evidence with its attachment.
type EvidenceRecord struct {
	OriginalID       uuid.UUID  `json:"original_id"`
	OriginalPersonID uuid.UUID  `json:"original_person_id"`
	EvidenceTypeCode string     `json:"evidence_type_code"`
	DocumentNumber   string     `json:"document_number,omitempty"`
	IssuedDate       *time.Time `json:"issued_date,omitempty"`
	IssuingAuthority string     `json:"issuing_authority,omitempty"`
	BlobSHA256       string     `json:"blob_sha256,omitempty"`
	BlobSizeBytes    int64      `json:"blob_size_bytes,omitempty"`
	FileName         string     `json:"file_name,omitempty"`
	ContentType      string     `json:"content_type,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// SurveyRecord is a staged field survey of a building.
type SurveyRecord struct {
	OriginalID         uuid.UUID  `json:"original_id"`
	OriginalBuildingID uuid.UUID  `json:"original_building_id"`
	SurveyTypeCode     string     `json:"survey_type_code"`
	SurveyDate         *time.Time `json:"survey_date,omitempty"`
	SurveyorName       string     `json:"surveyor_name,omitempty"`
	Notes              string     `json:"notes,omitempty"`
}

// ClaimRecord is a staged tenure claim.
type ClaimRecord struct {
	OriginalID                uuid.UUID  `json:"original_id"`
	OriginalPropertyUnitID    uuid.UUID  `json:"original_property_unit_id"`
	OriginalPrimaryClaimantID uuid.UUID  `json:"original_primary_claimant_id"`
	ClaimTypeCode             string     `json:"claim_type_code"`
	// StatusCode is whatever lifecycle value the device sent; commit
	// coerces it to draft_pending_submission.
	StatusCode     string     `json:"status_code,omitempty"`
	ClaimedShare   float64    `json:"claimed_share"`
	SubmissionDate *time.Time `json:"submission_date,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// DocumentRecord is a staged claim document with its attachment.
type DocumentRecord struct {
	OriginalID       uuid.UUID `json:"original_id"`
	OriginalClaimID  uuid.UUID `json:"original_claim_id"`
	DocumentTypeCode string    `json:"document_type_code"`
	Title            string    `json:"title,omitempty"`
	BlobSHA256       string    `json:"blob_sha256,omitempty"`
	BlobSizeBytes    int64     `json:"blob_size_bytes,omitempty"`
	FileName         string    `json:"file_name,omitempty"`
	ContentType      string    `json:"content_type,omitempty"`
}

// ReferralRecord is a staged referral of a claim to an external agency.
type ReferralRecord struct {
	OriginalID         uuid.UUID  `json:"original_id"`
	OriginalClaimID    uuid.UUID  `json:"original_claim_id"`
	ReferralReasonCode string     `json:"referral_reason_code"`
	ReferredToAgency   string     `json:"referred_to_agency,omitempty"`
	ReferralDate       *time.Time `json:"referral_date,omitempty"`
	Notes              string     `json:"notes,omitempty"`
}

// ClaimStatusDraftPendingSubmission is the lifecycle status every field-
// device claim maps to on commit, regardless of the manifest value.
const ClaimStatusDraftPendingSubmission = "draft_pending_submission"
