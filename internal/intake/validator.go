package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/identifier"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
	"uhc-registry.io/registry/internal/vocabulary"
)

// Diagnostic codes emitted by the validator.
const (
	DiagRequiredFieldMissing  = "REQUIRED_FIELD_MISSING"
	DiagInvalidFormat         = "INVALID_FORMAT"
	DiagValueOutOfRange       = "VALUE_OUT_OF_RANGE"
	DiagHouseholdSizeMismatch = "HOUSEHOLD_SIZE_MISMATCH"
	DiagUnknownVocabularyCode = "UNKNOWN_VOCABULARY_CODE"
	DiagNewerVocabularyCode   = "NEWER_VOCABULARY_CODE"
	DiagDanglingReference     = "DANGLING_REFERENCE"
	DiagIdentifierCollision   = "PRODUCTION_IDENTIFIER_COLLISION"
	DiagLifecycleCoerced      = "LIFECYCLE_STATUS_COERCED"
)

// Vocabulary domains checked per code field.
const (
	vocabBuildingType    = "building_type"
	vocabOccupancyStatus = "occupancy_status"
	vocabUnitType        = "unit_type"
	vocabGender          = "gender"
	vocabNationality     = "nationality"
	vocabResidencyStatus = "residency_status"
	vocabRelationType    = "relation_type"
	vocabEvidenceType    = "evidence_type"
	vocabSurveyType      = "survey_type"
	vocabClaimType       = "claim_type"
	vocabDocumentType    = "document_type"
	vocabReferralReason  = "referral_reason"
)

// Validator runs the six validation levels over a package's staging rows.
type Validator struct {
	packages   PackageStore
	staging    StagingStore
	production ProductionStore
	vocab      *vocabulary.Registry
	events     EventRecorder
	audit      AuditSink
}

// NewValidator wires a Validator.
func NewValidator(packages PackageStore, staging StagingStore, production ProductionStore,
	vocab *vocabulary.Registry, events EventRecorder, audit AuditSink) *Validator {
	return &Validator{
		packages:   packages,
		staging:    staging,
		production: production,
		vocab:      vocab,
		events:     events,
		audit:      audit,
	}
}

// Validate checks every staged row and moves the package to Validated or
// Invalid. The caller holds the package lock.
func (v *Validator) Validate(ctx context.Context, packageID uuid.UUID, actor string) (*domain.ValidationSummary, error) {
	pkg, err := v.packages.Get(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg.Status != domain.StatusValidating {
		return nil, apperrors.ErrStateTransition(string(pkg.Status), string(domain.StatusValidated))
	}

	run, err := v.newRun(ctx, pkg)
	if err != nil {
		return nil, err
	}
	started := time.Now()

	run.checkBuildings(ctx)
	run.checkPropertyUnits()
	run.checkPersons(ctx)
	run.checkHouseholds()
	run.checkRelations()
	run.checkEvidences()
	run.checkSurveys()
	run.checkClaims()
	run.checkDocuments()
	run.checkReferrals()

	summary := run.summarise()
	if err := v.staging.ApplyOutcomes(ctx, packageID, run.outcomes); err != nil {
		return nil, err
	}

	target := domain.StatusValidated
	event := domain.EventPackageValidated
	if summary.BlockingCount > 0 {
		target = domain.StatusInvalid
		event = domain.EventPackageInvalid
	}
	summary.PackageStatus = target

	pkg, err = v.packages.UpdateStatus(ctx, packageID, domain.StatusValidating, target,
		&PackageUpdate{ValidationSummary: summary})
	if err != nil {
		return nil, err
	}

	logger.Info("Package validated",
		zap.String("package_id", packageID.String()),
		zap.String("package_number", pkg.PackageNumber),
		zap.String("outcome", string(target)),
		zap.Int("blocking", summary.BlockingCount),
		zap.Int("advisory", summary.AdvisoryCount),
		zap.Duration("took", time.Since(started)),
	)
	v.audit.PackageAction(ctx, actor, "package.validate", packageID, map[string]interface{}{
		"outcome": string(target), "blocking": summary.BlockingCount, "advisory": summary.AdvisoryCount,
	})
	v.events.PackageEvent(ctx, event, pkg, actor, "")

	return summary, nil
}

// validationRun holds one validation pass's working state.
type validationRun struct {
	v   *Validator
	pkg *domain.ImportPackage

	buildings  []StagedRecord[domain.BuildingRecord]
	units      []StagedRecord[domain.PropertyUnitRecord]
	persons    []StagedRecord[domain.PersonRecord]
	households []StagedRecord[domain.HouseholdRecord]
	relations  []StagedRecord[domain.PersonPropertyRelationRecord]
	evidences  []StagedRecord[domain.EvidenceRecord]
	surveys    []StagedRecord[domain.SurveyRecord]
	claims     []StagedRecord[domain.ClaimRecord]
	documents  []StagedRecord[domain.DocumentRecord]
	referrals  []StagedRecord[domain.ReferralRecord]

	// Original-id sets for intra-package referential integrity.
	buildingIDs map[uuid.UUID]bool
	unitIDs     map[uuid.UUID]bool
	personIDs   map[uuid.UUID]bool
	claimIDs    map[uuid.UUID]bool

	outcomes []RowOutcome
	byEntity map[domain.EntityType]*domain.EntityValidation
	blocking int
	advisory int
}

func (v *Validator) newRun(ctx context.Context, pkg *domain.ImportPackage) (*validationRun, error) {
	run := &validationRun{
		v:           v,
		pkg:         pkg,
		buildingIDs: map[uuid.UUID]bool{},
		unitIDs:     map[uuid.UUID]bool{},
		personIDs:   map[uuid.UUID]bool{},
		claimIDs:    map[uuid.UUID]bool{},
		byEntity:    map[domain.EntityType]*domain.EntityValidation{},
	}
	var err error
	if run.buildings, err = v.staging.Buildings(ctx, pkg.ID); err != nil {
		return nil, err
	}
	if run.units, err = v.staging.PropertyUnits(ctx, pkg.ID); err != nil {
		return nil, err
	}
	if run.persons, err = v.staging.Persons(ctx, pkg.ID); err != nil {
		return nil, err
	}
	if run.households, err = v.staging.Households(ctx, pkg.ID); err != nil {
		return nil, err
	}
	if run.relations, err = v.staging.Relations(ctx, pkg.ID); err != nil {
		return nil, err
	}
	if run.evidences, err = v.staging.Evidences(ctx, pkg.ID); err != nil {
		return nil, err
	}
	if run.surveys, err = v.staging.Surveys(ctx, pkg.ID); err != nil {
		return nil, err
	}
	if run.claims, err = v.staging.Claims(ctx, pkg.ID); err != nil {
		return nil, err
	}
	if run.documents, err = v.staging.Documents(ctx, pkg.ID); err != nil {
		return nil, err
	}
	if run.referrals, err = v.staging.Referrals(ctx, pkg.ID); err != nil {
		return nil, err
	}

	for _, b := range run.buildings {
		run.buildingIDs[b.Record.OriginalID] = true
	}
	for _, u := range run.units {
		run.unitIDs[u.Record.OriginalID] = true
	}
	for _, p := range run.persons {
		run.personIDs[p.Record.OriginalID] = true
	}
	for _, c := range run.claims {
		run.claimIDs[c.Record.OriginalID] = true
	}
	return run, nil
}

// rowCheck accumulates diagnostics for one staged row.
type rowCheck struct {
	run        *validationRun
	entityType domain.EntityType
	originalID uuid.UUID
	diags      []domain.Diagnostic
}

func (run *validationRun) row(et domain.EntityType, originalID uuid.UUID) *rowCheck {
	return &rowCheck{run: run, entityType: et, originalID: originalID}
}

func (rc *rowCheck) add(severity domain.Severity, field, code, message string) {
	rc.diags = append(rc.diags, domain.Diagnostic{
		EntityType:       rc.entityType,
		OriginalEntityID: rc.originalID,
		Field:            field,
		Code:             code,
		Severity:         severity,
		Message:          message,
	})
}

func (rc *rowCheck) blocking(field, code, message string) {
	rc.add(domain.SeverityBlocking, field, code, message)
}

func (rc *rowCheck) advisory(field, code, message string) {
	rc.add(domain.SeverityAdvisory, field, code, message)
}

func (rc *rowCheck) required(field, value string) {
	if value == "" {
		rc.blocking(field, DiagRequiredFieldMissing, field+" is required")
	}
}

// vocab resolves a code against the registry. Unknown codes block, unless
// the device exported under a newer compatible vocabulary version, which
// downgrades the finding to advisory.
func (rc *rowCheck) vocab(field, vocabDomain, code string) {
	if code == "" {
		return
	}
	if rc.run.v.vocab.Has(vocabDomain, code) {
		return
	}
	deviceVersion := rc.run.pkg.VocabularyVersions[vocabDomain]
	if deviceVersion != "" && rc.run.v.vocab.DeviceAhead(vocabDomain, deviceVersion) {
		rc.advisory(field, DiagNewerVocabularyCode,
			fmt.Sprintf("code %q is not in the server's %s vocabulary; device exported under newer version %s",
				code, vocabDomain, deviceVersion))
		return
	}
	rc.blocking(field, DiagUnknownVocabularyCode,
		fmt.Sprintf("code %q does not resolve in the %s vocabulary", code, vocabDomain))
}

// fk checks an intra-package reference over original UUIDs.
func (rc *rowCheck) fk(field string, id uuid.UUID, known map[uuid.UUID]bool, required bool) {
	if id == uuid.Nil {
		if required {
			rc.blocking(field, DiagRequiredFieldMissing, field+" is required")
		}
		return
	}
	if !known[id] {
		rc.blocking(field, DiagDanglingReference,
			fmt.Sprintf("%s %s does not exist in this package", field, id))
	}
}

// done computes the row outcome and folds it into the run totals.
func (rc *rowCheck) done() {
	status := domain.RowValid
	approved := true
	for _, d := range rc.diags {
		if d.Severity == domain.SeverityBlocking {
			status = domain.RowInvalid
			approved = false
			rc.run.blocking++
		} else {
			rc.run.advisory++
		}
	}
	if status == domain.RowValid && len(rc.diags) > 0 {
		status = domain.RowWarning
	}

	rc.run.outcomes = append(rc.run.outcomes, RowOutcome{
		EntityType:       rc.entityType,
		OriginalEntityID: rc.originalID,
		Status:           status,
		Diagnostics:      rc.diags,
		Approved:         approved,
	})

	ev := rc.run.byEntity[rc.entityType]
	if ev == nil {
		ev = &domain.EntityValidation{}
		rc.run.byEntity[rc.entityType] = ev
	}
	ev.Checked++
	switch status {
	case domain.RowValid:
		ev.Valid++
	case domain.RowWarning:
		ev.Warnings++
	default:
		ev.Invalid++
	}
}

func (run *validationRun) checkBuildings(ctx context.Context) {
	for _, row := range run.buildings {
		rec := row.Record
		rc := run.row(domain.EntityBuilding, rec.OriginalID)

		code, err := identifier.ComposeBuildingCode(
			rec.GovernorateCode, rec.DistrictCode, rec.SubDistrictCode,
			rec.CommunityCode, rec.NeighborhoodCode, rec.BuildingNumber)
		if err != nil {
			rc.blocking("building_code", DiagInvalidFormat, err.Error())
		}
		rc.vocab("building_type_code", vocabBuildingType, rec.BuildingTypeCode)
		rc.vocab("occupancy_status_code", vocabOccupancyStatus, rec.OccupancyStatusCode)
		if rec.NumberOfFloors < 0 {
			rc.blocking("number_of_floors", DiagValueOutOfRange, "floor count is negative")
		}
		if rec.NumberOfUnits < 0 {
			rc.blocking("number_of_units", DiagValueOutOfRange, "unit count is negative")
		}
		if rec.Latitude < -90 || rec.Latitude > 90 || rec.Longitude < -180 || rec.Longitude > 180 {
			rc.blocking("coordinates", DiagValueOutOfRange, "coordinates are outside WGS84 bounds")
		}

		// Production collisions surface as advisories; the duplicate
		// detector turns them into reviewable conflicts.
		if err == nil {
			if existing, perr := run.v.production.BuildingByCode(ctx, code); perr == nil && existing != nil {
				rc.advisory("building_code", DiagIdentifierCollision,
					fmt.Sprintf("building code %s already exists in the registry", code))
			}
		}
		rc.done()
	}
}

func (run *validationRun) checkPropertyUnits() {
	for _, row := range run.units {
		rec := row.Record
		rc := run.row(domain.EntityPropertyUnit, rec.OriginalID)

		rc.required("unit_identifier", rec.UnitIdentifier)
		rc.fk("building_id", rec.OriginalBuildingID, run.buildingIDs, true)
		rc.vocab("unit_type_code", vocabUnitType, rec.UnitTypeCode)
		rc.vocab("occupancy_status_code", vocabOccupancyStatus, rec.OccupancyStatusCode)
		if rec.AreaSqm < 0 {
			rc.blocking("area_sqm", DiagValueOutOfRange, "area is negative")
		}
		rc.done()
	}
}

func (run *validationRun) checkPersons(ctx context.Context) {
	for _, row := range run.persons {
		rec := row.Record
		rc := run.row(domain.EntityPerson, rec.OriginalID)

		rc.required("first_name", rec.FirstName)
		rc.required("family_name", rec.FamilyName)
		rc.required("gender_code", rec.GenderCode)
		rc.vocab("gender_code", vocabGender, rec.GenderCode)
		rc.vocab("nationality_code", vocabNationality, rec.NationalityCode)
		if rec.DateOfBirth != nil && rec.DateOfBirth.After(time.Now().UTC()) {
			rc.blocking("date_of_birth", DiagValueOutOfRange, "date of birth is in the future")
		}

		if rec.NationalID != "" {
			if hits, err := run.v.production.PersonsByNationalID(ctx, rec.NationalID); err == nil && len(hits) > 0 {
				rc.advisory("national_id", DiagIdentifierCollision,
					"national id already exists in the registry")
			}
		}
		rc.done()
	}
}

func (run *validationRun) checkHouseholds() {
	for _, row := range run.households {
		rec := row.Record
		rc := run.row(domain.EntityHousehold, rec.OriginalID)

		rc.fk("head_of_household_id", rec.OriginalHeadOfHouseholdID, run.personIDs, true)
		rc.vocab("residency_status_code", vocabResidencyStatus, rec.ResidencyStatusCode)
		if rec.HouseholdSize <= 0 {
			rc.blocking("household_size", DiagValueOutOfRange, "household size must be positive")
		} else {
			// Enumerators routinely miscount by one; anything further off
			// means the buckets and the size describe different households.
			diff := rec.HouseholdSize - rec.AgeBucketSum()
			if diff < 0 {
				diff = -diff
			}
			switch {
			case diff == 0:
			case diff == 1:
				rc.advisory("household_size", DiagHouseholdSizeMismatch,
					"household size is off by one against the age/gender buckets")
			default:
				rc.blocking("household_size", DiagHouseholdSizeMismatch,
					fmt.Sprintf("household size %d does not match bucket sum %d",
						rec.HouseholdSize, rec.AgeBucketSum()))
			}
		}
		rc.done()
	}
}

func (run *validationRun) checkRelations() {
	for _, row := range run.relations {
		rec := row.Record
		rc := run.row(domain.EntityPersonPropertyRelation, rec.OriginalID)

		rc.fk("person_id", rec.OriginalPersonID, run.personIDs, true)
		rc.fk("property_unit_id", rec.OriginalPropertyUnitID, run.unitIDs, true)
		rc.vocab("relation_type_code", vocabRelationType, rec.RelationTypeCode)
		if rec.OwnershipShare < 0 || rec.OwnershipShare > 100 {
			rc.blocking("ownership_share", DiagValueOutOfRange,
				fmt.Sprintf("ownership share %.2f is outside [0, 100]", rec.OwnershipShare))
		}
		rc.done()
	}
}

func (run *validationRun) checkEvidences() {
	for _, row := range run.evidences {
		rec := row.Record
		rc := run.row(domain.EntityEvidence, rec.OriginalID)

		rc.fk("person_id", rec.OriginalPersonID, run.personIDs, true)
		rc.required("evidence_type_code", rec.EvidenceTypeCode)
		rc.vocab("evidence_type_code", vocabEvidenceType, rec.EvidenceTypeCode)
		if rec.BlobSHA256 != "" && rec.BlobSizeBytes <= 0 {
			rc.blocking("blob_size_bytes", DiagValueOutOfRange, "attachment size must be positive")
		}
		rc.done()
	}
}

func (run *validationRun) checkSurveys() {
	for _, row := range run.surveys {
		rec := row.Record
		rc := run.row(domain.EntitySurvey, rec.OriginalID)

		rc.fk("building_id", rec.OriginalBuildingID, run.buildingIDs, true)
		rc.vocab("survey_type_code", vocabSurveyType, rec.SurveyTypeCode)
		rc.done()
	}
}

func (run *validationRun) checkClaims() {
	for _, row := range run.claims {
		rec := row.Record
		rc := run.row(domain.EntityClaim, rec.OriginalID)

		rc.fk("property_unit_id", rec.OriginalPropertyUnitID, run.unitIDs, true)
		rc.fk("primary_claimant_id", rec.OriginalPrimaryClaimantID, run.personIDs, true)
		rc.required("claim_type_code", rec.ClaimTypeCode)
		rc.vocab("claim_type_code", vocabClaimType, rec.ClaimTypeCode)
		if rec.ClaimedShare < 0 || rec.ClaimedShare > 100 {
			rc.blocking("claimed_share", DiagValueOutOfRange,
				fmt.Sprintf("claimed share %.2f is outside [0, 100]", rec.ClaimedShare))
		}
		if rec.StatusCode != "" && rec.StatusCode != domain.ClaimStatusDraftPendingSubmission {
			rc.advisory("status_code", DiagLifecycleCoerced,
				fmt.Sprintf("device lifecycle status %q will be coerced to %s at commit",
					rec.StatusCode, domain.ClaimStatusDraftPendingSubmission))
		}
		rc.done()
	}
}

func (run *validationRun) checkDocuments() {
	for _, row := range run.documents {
		rec := row.Record
		rc := run.row(domain.EntityDocument, rec.OriginalID)

		rc.fk("claim_id", rec.OriginalClaimID, run.claimIDs, true)
		rc.vocab("document_type_code", vocabDocumentType, rec.DocumentTypeCode)
		if rec.BlobSHA256 != "" && rec.BlobSizeBytes <= 0 {
			rc.blocking("blob_size_bytes", DiagValueOutOfRange, "attachment size must be positive")
		}
		rc.done()
	}
}

func (run *validationRun) checkReferrals() {
	for _, row := range run.referrals {
		rec := row.Record
		rc := run.row(domain.EntityReferral, rec.OriginalID)

		rc.fk("claim_id", rec.OriginalClaimID, run.claimIDs, true)
		rc.required("referral_reason_code", rec.ReferralReasonCode)
		rc.vocab("referral_reason_code", vocabReferralReason, rec.ReferralReasonCode)
		rc.done()
	}
}

func (run *validationRun) summarise() *domain.ValidationSummary {
	s := &domain.ValidationSummary{
		BlockingCount: run.blocking,
		AdvisoryCount: run.advisory,
		ByEntity:      map[domain.EntityType]domain.EntityValidation{},
	}
	for et, ev := range run.byEntity {
		s.ByEntity[et] = *ev
		s.CheckedRows += ev.Checked
		s.ValidRows += ev.Valid
		s.WarningRows += ev.Warnings
		s.InvalidRows += ev.Invalid
	}
	return s
}
