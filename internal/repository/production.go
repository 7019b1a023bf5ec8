package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"uhc-registry.io/registry/ent"
	"uhc-registry.io/registry/ent/building"
	"uhc-registry.io/registry/ent/certificate"
	"uhc-registry.io/registry/ent/claim"
	"uhc-registry.io/registry/ent/evidence"
	"uhc-registry.io/registry/ent/household"
	"uhc-registry.io/registry/ent/person"
	"uhc-registry.io/registry/ent/personpropertyrelation"
	"uhc-registry.io/registry/ent/propertyunit"
	"uhc-registry.io/registry/ent/stagingbuilding"
	"uhc-registry.io/registry/ent/stagingclaim"
	"uhc-registry.io/registry/ent/stagingdocument"
	"uhc-registry.io/registry/ent/stagingevidence"
	"uhc-registry.io/registry/ent/staginghousehold"
	"uhc-registry.io/registry/ent/stagingperson"
	"uhc-registry.io/registry/ent/stagingpersonpropertyrelation"
	"uhc-registry.io/registry/ent/stagingpropertyunit"
	"uhc-registry.io/registry/ent/stagingreferral"
	"uhc-registry.io/registry/ent/stagingsurvey"
	"uhc-registry.io/registry/ent/survey"
	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/identifier"
	"uhc-registry.io/registry/internal/intake"
	"uhc-registry.io/registry/internal/matching"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

// Production is the Ent-backed intake.ProductionStore: detection probes,
// reviewer merges and the commit transaction.
type Production struct {
	client *ent.Client
}

// NewProduction creates the production repository.
func NewProduction(client *ent.Client) *Production {
	return &Production{client: client}
}

var _ intake.ProductionStore = (*Production)(nil)

func (r *Production) PersonsByNationalID(ctx context.Context, nationalID string) ([]intake.PersonCandidate, error) {
	if nationalID == "" {
		return nil, nil
	}
	rows, err := r.client.Person.Query().
		Where(person.NationalID(nationalID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("persons by national id: %w", err)
	}
	return personCandidates(rows), nil
}

func (r *Production) PersonsByBlockKey(ctx context.Context, yearOfBirth int,
	genderCode, familyPrefix string) ([]intake.PersonCandidate, error) {

	if familyPrefix == "" {
		return nil, nil
	}
	q := r.client.Person.Query().
		Where(person.FamilyNameNormalizedHasPrefix(familyPrefix))
	if yearOfBirth > 0 {
		q = q.Where(person.YearOfBirth(yearOfBirth))
	}
	if genderCode != "" {
		q = q.Where(person.GenderCode(genderCode))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("persons by block key: %w", err)
	}
	return personCandidates(rows), nil
}

func personCandidates(rows []*ent.Person) []intake.PersonCandidate {
	out := make([]intake.PersonCandidate, 0, len(rows))
	for _, row := range rows {
		out = append(out, intake.PersonCandidate{
			ID:              row.ID,
			FirstName:       row.FirstName,
			FatherName:      row.FatherName,
			FamilyName:      row.FamilyName,
			NationalID:      row.NationalID,
			DateOfBirth:     row.DateOfBirth,
			YearOfBirth:     row.YearOfBirth,
			GenderCode:      row.GenderCode,
			GovernorateCode: row.GovernorateCode,
		})
	}
	return out
}

func (r *Production) BuildingByCode(ctx context.Context, buildingCode string) (*intake.BuildingCandidate, error) {
	row, err := r.client.Building.Query().
		Where(building.BuildingCode(buildingCode)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("building by code: %w", err)
	}
	return &intake.BuildingCandidate{
		ID:           row.ID,
		BuildingCode: row.BuildingCode,
		Address:      row.Address,
	}, nil
}

func (r *Production) UnitsByBuildingCode(ctx context.Context, buildingCode string) ([]intake.UnitCandidate, error) {
	b, err := r.BuildingByCode(ctx, buildingCode)
	if err != nil || b == nil {
		return nil, err
	}
	rows, err := r.client.PropertyUnit.Query().
		Where(propertyunit.BuildingID(b.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("units by building: %w", err)
	}
	out := make([]intake.UnitCandidate, 0, len(rows))
	for _, row := range rows {
		out = append(out, intake.UnitCandidate{
			ID:             row.ID,
			BuildingID:     row.BuildingID,
			BuildingCode:   buildingCode,
			UnitIdentifier: row.UnitIdentifier,
		})
	}
	return out, nil
}

func (r *Production) Exists(ctx context.Context, et domain.ConflictEntityType, id uuid.UUID) (bool, error) {
	var (
		found bool
		err   error
	)
	switch et {
	case domain.ConflictPerson:
		found, err = r.client.Person.Query().Where(person.ID(id)).Exist(ctx)
	case domain.ConflictBuilding:
		found, err = r.client.Building.Query().Where(building.ID(id)).Exist(ctx)
	case domain.ConflictPropertyUnit:
		found, err = r.client.PropertyUnit.Query().Where(propertyunit.ID(id)).Exist(ctx)
	default:
		return false, fmt.Errorf("unknown conflict entity type %q", et)
	}
	if err != nil {
		return false, fmt.Errorf("probe production %s: %w", et, err)
	}
	return found, nil
}

// MergePerson fills empty master fields from the staged record (master wins
// on every populated field) and repoints production rows still referencing
// the staged original id. Safe to re-run: a second pass finds nothing to
// fill and nothing to repoint.
func (r *Production) MergePerson(ctx context.Context, masterID, stagedOriginalID uuid.UUID,
	staged domain.PersonRecord) (map[string]int, error) {

	repointed := map[string]int{}
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		master, err := tx.Person.Query().Where(person.ID(masterID)).ForUpdate().Only(ctx)
		if err != nil {
			return fmt.Errorf("lock master person: %w", err)
		}

		update := master.Update()
		if master.FatherName == "" && staged.FatherName != "" {
			update.SetFatherName(staged.FatherName).
				SetFatherNameNormalized(matching.NormalizeArabic(staged.FatherName))
		}
		if master.MotherName == "" && staged.MotherName != "" {
			update.SetMotherName(staged.MotherName)
		}
		if master.NationalID == "" && staged.NationalID != "" {
			update.SetNationalID(staged.NationalID)
		}
		if master.DateOfBirth == nil && staged.DateOfBirth != nil {
			update.SetDateOfBirth(*staged.DateOfBirth).
				SetYearOfBirth(staged.DateOfBirth.UTC().Year())
		}
		if master.GenderCode == "" && staged.GenderCode != "" {
			update.SetGenderCode(staged.GenderCode)
		}
		if master.NationalityCode == "" && staged.NationalityCode != "" {
			update.SetNationalityCode(staged.NationalityCode)
		}
		if master.GovernorateCode == "" && staged.GovernorateCode != "" {
			update.SetGovernorateCode(staged.GovernorateCode)
		}
		if master.PhoneNumber == "" && staged.PhoneNumber != "" {
			update.SetPhoneNumber(staged.PhoneNumber)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("fill master person: %w", err)
		}

		steps := []struct {
			table string
			run   func() (int, error)
		}{
			{"claims", func() (int, error) {
				return tx.Claim.Update().
					Where(claim.PrimaryClaimantID(stagedOriginalID)).
					SetPrimaryClaimantID(masterID).
					Save(ctx)
			}},
			{"person_property_relations", func() (int, error) {
				return tx.PersonPropertyRelation.Update().
					Where(personpropertyrelation.PersonID(stagedOriginalID)).
					SetPersonID(masterID).
					Save(ctx)
			}},
			{"evidences", func() (int, error) {
				return tx.Evidence.Update().
					Where(evidence.PersonID(stagedOriginalID)).
					SetPersonID(masterID).
					Save(ctx)
			}},
			{"households", func() (int, error) {
				return tx.Household.Update().
					Where(household.HeadOfHouseholdID(stagedOriginalID)).
					SetHeadOfHouseholdID(masterID).
					Save(ctx)
			}},
			{"certificates", func() (int, error) {
				return tx.Certificate.Update().
					Where(certificate.BeneficiaryID(stagedOriginalID)).
					SetBeneficiaryID(masterID).
					Save(ctx)
			}},
		}
		for _, s := range steps {
			n, err := s.run()
			if err != nil {
				return fmt.Errorf("repoint %s: %w", s.table, err)
			}
			if n > 0 {
				repointed[s.table] = n
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repointed, nil
}

// MergeBuilding mirrors MergePerson for buildings.
func (r *Production) MergeBuilding(ctx context.Context, masterID, stagedOriginalID uuid.UUID,
	staged domain.BuildingRecord) (map[string]int, error) {

	repointed := map[string]int{}
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		master, err := tx.Building.Query().Where(building.ID(masterID)).ForUpdate().Only(ctx)
		if err != nil {
			return fmt.Errorf("lock master building: %w", err)
		}

		update := master.Update()
		if master.BuildingTypeCode == "" && staged.BuildingTypeCode != "" {
			update.SetBuildingTypeCode(staged.BuildingTypeCode)
		}
		if master.OccupancyStatusCode == "" && staged.OccupancyStatusCode != "" {
			update.SetOccupancyStatusCode(staged.OccupancyStatusCode)
		}
		if master.NumberOfFloors == 0 && staged.NumberOfFloors > 0 {
			update.SetNumberOfFloors(staged.NumberOfFloors)
		}
		if master.NumberOfUnits == 0 && staged.NumberOfUnits > 0 {
			update.SetNumberOfUnits(staged.NumberOfUnits)
		}
		if master.Address == "" && staged.Address != "" {
			update.SetAddress(staged.Address)
		}
		if master.Latitude == 0 && staged.Latitude != 0 {
			update.SetLatitude(staged.Latitude)
		}
		if master.Longitude == 0 && staged.Longitude != 0 {
			update.SetLongitude(staged.Longitude)
		}
		if master.Notes == "" && staged.Notes != "" {
			update.SetNotes(staged.Notes)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("fill master building: %w", err)
		}

		steps := []struct {
			table string
			run   func() (int, error)
		}{
			{"property_units", func() (int, error) {
				return tx.PropertyUnit.Update().
					Where(propertyunit.BuildingID(stagedOriginalID)).
					SetBuildingID(masterID).
					Save(ctx)
			}},
			{"surveys", func() (int, error) {
				return tx.Survey.Update().
					Where(survey.BuildingID(stagedOriginalID)).
					SetBuildingID(masterID).
					Save(ctx)
			}},
		}
		for _, s := range steps {
			n, err := s.run()
			if err != nil {
				return fmt.Errorf("repoint %s: %w", s.table, err)
			}
			if n > 0 {
				repointed[s.table] = n
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repointed, nil
}

// MergePropertyUnit mirrors MergePerson for property units.
func (r *Production) MergePropertyUnit(ctx context.Context, masterID, stagedOriginalID uuid.UUID,
	staged domain.PropertyUnitRecord) (map[string]int, error) {

	repointed := map[string]int{}
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		master, err := tx.PropertyUnit.Query().Where(propertyunit.ID(masterID)).ForUpdate().Only(ctx)
		if err != nil {
			return fmt.Errorf("lock master unit: %w", err)
		}

		update := master.Update()
		if master.UnitTypeCode == "" && staged.UnitTypeCode != "" {
			update.SetUnitTypeCode(staged.UnitTypeCode)
		}
		if master.OccupancyStatusCode == "" && staged.OccupancyStatusCode != "" {
			update.SetOccupancyStatusCode(staged.OccupancyStatusCode)
		}
		if master.AreaSqm == 0 && staged.AreaSqm != 0 {
			update.SetAreaSqm(staged.AreaSqm)
		}
		if master.RoomCount == 0 && staged.RoomCount > 0 {
			update.SetRoomCount(staged.RoomCount)
		}
		if master.Notes == "" && staged.Notes != "" {
			update.SetNotes(staged.Notes)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("fill master unit: %w", err)
		}

		steps := []struct {
			table string
			run   func() (int, error)
		}{
			{"claims", func() (int, error) {
				return tx.Claim.Update().
					Where(claim.PropertyUnitID(stagedOriginalID)).
					SetPropertyUnitID(masterID).
					Save(ctx)
			}},
			{"person_property_relations", func() (int, error) {
				return tx.PersonPropertyRelation.Update().
					Where(personpropertyrelation.PropertyUnitID(stagedOriginalID)).
					SetPropertyUnitID(masterID).
					Save(ctx)
			}},
		}
		for _, s := range steps {
			n, err := s.run()
			if err != nil {
				return fmt.Errorf("repoint %s: %w", s.table, err)
			}
			if n > 0 {
				repointed[s.table] = n
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repointed, nil
}

// WithinCommit runs fn inside one writable transaction. Any error rolls the
// whole commit back.
func (r *Production) WithinCommit(ctx context.Context, fn func(tx intake.CommitTx) error) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		return fn(&commitTx{tx: tx})
	})
}

// commitTx adapts an Ent transaction to the commit engine's write surface.
type commitTx struct {
	tx *ent.Tx
}

var _ intake.CommitTx = (*commitTx)(nil)

// dupErr translates unique violations into the business-identifier error the
// commit report surfaces; everything else is wrapped as-is.
func dupErr(err error, et domain.EntityType, originalID uuid.UUID) error {
	if err == nil {
		return nil
	}
	if ent.IsConstraintError(err) {
		return apperrors.Wrap(err, apperrors.CodeDuplicateBusinessID,
			"record collides with an existing business identifier", http.StatusConflict).
			WithParams(map[string]interface{}{
				"entityType": string(et),
				"originalId": originalID.String(),
			})
	}
	return fmt.Errorf("insert %s %s: %w", et, originalID, err)
}

func (c *commitTx) InsertBuilding(ctx context.Context, id uuid.UUID, rec domain.BuildingRecord,
	buildingCode string, sourcePackageID uuid.UUID) error {

	err := c.tx.Building.Create().
		SetID(id).
		SetBuildingCode(buildingCode).
		SetGovernorateCode(rec.GovernorateCode).
		SetDistrictCode(rec.DistrictCode).
		SetSubDistrictCode(rec.SubDistrictCode).
		SetCommunityCode(rec.CommunityCode).
		SetNeighborhoodCode(rec.NeighborhoodCode).
		SetBuildingNumber(rec.BuildingNumber).
		SetBuildingTypeCode(rec.BuildingTypeCode).
		SetOccupancyStatusCode(rec.OccupancyStatusCode).
		SetNumberOfFloors(rec.NumberOfFloors).
		SetNumberOfUnits(rec.NumberOfUnits).
		SetAddress(rec.Address).
		SetLatitude(rec.Latitude).
		SetLongitude(rec.Longitude).
		SetNotes(rec.Notes).
		SetSourcePackageID(sourcePackageID).
		Exec(ctx)
	return dupErr(err, domain.EntityBuilding, rec.OriginalID)
}

func (c *commitTx) InsertPropertyUnit(ctx context.Context, id uuid.UUID, rec domain.PropertyUnitRecord,
	buildingID uuid.UUID, compositeIdentifier string, sourcePackageID uuid.UUID) error {

	err := c.tx.PropertyUnit.Create().
		SetID(id).
		SetBuildingID(buildingID).
		SetUnitIdentifier(rec.UnitIdentifier).
		SetCompositeIdentifier(compositeIdentifier).
		SetFloorNumber(rec.FloorNumber).
		SetUnitTypeCode(rec.UnitTypeCode).
		SetOccupancyStatusCode(rec.OccupancyStatusCode).
		SetAreaSqm(rec.AreaSqm).
		SetRoomCount(rec.RoomCount).
		SetNotes(rec.Notes).
		SetSourcePackageID(sourcePackageID).
		Exec(ctx)
	return dupErr(err, domain.EntityPropertyUnit, rec.OriginalID)
}

func (c *commitTx) InsertPerson(ctx context.Context, id uuid.UUID, rec domain.PersonRecord,
	sourcePackageID uuid.UUID) error {

	create := c.tx.Person.Create().
		SetID(id).
		SetFirstName(rec.FirstName).
		SetFatherName(rec.FatherName).
		SetFamilyName(rec.FamilyName).
		SetMotherName(rec.MotherName).
		SetFirstNameNormalized(matching.NormalizeArabic(rec.FirstName)).
		SetFatherNameNormalized(matching.NormalizeArabic(rec.FatherName)).
		SetFamilyNameNormalized(matching.NormalizeArabic(rec.FamilyName)).
		SetNationalID(rec.NationalID).
		SetGenderCode(rec.GenderCode).
		SetNationalityCode(rec.NationalityCode).
		SetGovernorateCode(rec.GovernorateCode).
		SetPhoneNumber(rec.PhoneNumber).
		SetSourcePackageID(sourcePackageID)
	if rec.DateOfBirth != nil {
		create.SetDateOfBirth(*rec.DateOfBirth).
			SetYearOfBirth(rec.DateOfBirth.UTC().Year())
	}
	return dupErr(create.Exec(ctx), domain.EntityPerson, rec.OriginalID)
}

func (c *commitTx) InsertHousehold(ctx context.Context, id uuid.UUID, rec domain.HouseholdRecord,
	headID uuid.UUID, sourcePackageID uuid.UUID) error {

	err := c.tx.Household.Create().
		SetID(id).
		SetHeadOfHouseholdID(headID).
		SetHouseholdSize(rec.HouseholdSize).
		SetMalesUnder18(rec.MalesUnder18).
		SetFemalesUnder18(rec.FemalesUnder18).
		SetMalesAdult(rec.MalesAdult).
		SetFemalesAdult(rec.FemalesAdult).
		SetResidencyStatusCode(rec.ResidencyStatusCode).
		SetDisplacementOriginGovernorate(rec.DisplacementOriginGovernorate).
		SetSourcePackageID(sourcePackageID).
		Exec(ctx)
	return dupErr(err, domain.EntityHousehold, rec.OriginalID)
}

func (c *commitTx) InsertRelation(ctx context.Context, id uuid.UUID, rec domain.PersonPropertyRelationRecord,
	personID, unitID uuid.UUID, sourcePackageID uuid.UUID) error {

	err := c.tx.PersonPropertyRelation.Create().
		SetID(id).
		SetPersonID(personID).
		SetPropertyUnitID(unitID).
		SetRelationTypeCode(rec.RelationTypeCode).
		SetOwnershipShare(rec.OwnershipShare).
		SetNillableStartDate(rec.StartDate).
		SetNotes(rec.Notes).
		SetSourcePackageID(sourcePackageID).
		Exec(ctx)
	return dupErr(err, domain.EntityPersonPropertyRelation, rec.OriginalID)
}

func (c *commitTx) InsertEvidence(ctx context.Context, id uuid.UUID, rec domain.EvidenceRecord,
	personID uuid.UUID, blobPath string, sourcePackageID uuid.UUID) error {

	err := c.tx.Evidence.Create().
		SetID(id).
		SetPersonID(personID).
		SetEvidenceTypeCode(rec.EvidenceTypeCode).
		SetDocumentNumber(rec.DocumentNumber).
		SetNillableIssuedDate(rec.IssuedDate).
		SetIssuingAuthority(rec.IssuingAuthority).
		SetBlobSha256(rec.BlobSHA256).
		SetBlobPath(blobPath).
		SetBlobSizeBytes(rec.BlobSizeBytes).
		SetFileName(rec.FileName).
		SetContentType(rec.ContentType).
		SetNotes(rec.Notes).
		SetSourcePackageID(sourcePackageID).
		Exec(ctx)
	return dupErr(err, domain.EntityEvidence, rec.OriginalID)
}

func (c *commitTx) InsertSurvey(ctx context.Context, id uuid.UUID, rec domain.SurveyRecord,
	buildingID uuid.UUID, sourcePackageID uuid.UUID) error {

	err := c.tx.Survey.Create().
		SetID(id).
		SetBuildingID(buildingID).
		SetSurveyTypeCode(rec.SurveyTypeCode).
		SetNillableSurveyDate(rec.SurveyDate).
		SetSurveyorName(rec.SurveyorName).
		SetNotes(rec.Notes).
		SetSourcePackageID(sourcePackageID).
		Exec(ctx)
	return dupErr(err, domain.EntitySurvey, rec.OriginalID)
}

func (c *commitTx) InsertClaim(ctx context.Context, id uuid.UUID, rec domain.ClaimRecord,
	unitID, claimantID uuid.UUID, claimNumber string, sourcePackageID uuid.UUID) error {

	err := c.tx.Claim.Create().
		SetID(id).
		SetClaimNumber(claimNumber).
		SetPropertyUnitID(unitID).
		SetPrimaryClaimantID(claimantID).
		SetClaimTypeCode(rec.ClaimTypeCode).
		SetStatusCode(rec.StatusCode).
		SetClaimedShare(rec.ClaimedShare).
		SetNillableSubmissionDate(rec.SubmissionDate).
		SetNotes(rec.Notes).
		SetSourcePackageID(sourcePackageID).
		Exec(ctx)
	return dupErr(err, domain.EntityClaim, rec.OriginalID)
}

func (c *commitTx) InsertDocument(ctx context.Context, id uuid.UUID, rec domain.DocumentRecord,
	claimID uuid.UUID, blobPath string, sourcePackageID uuid.UUID) error {

	err := c.tx.Document.Create().
		SetID(id).
		SetClaimID(claimID).
		SetDocumentTypeCode(rec.DocumentTypeCode).
		SetTitle(rec.Title).
		SetBlobSha256(rec.BlobSHA256).
		SetBlobPath(blobPath).
		SetBlobSizeBytes(rec.BlobSizeBytes).
		SetFileName(rec.FileName).
		SetContentType(rec.ContentType).
		SetSourcePackageID(sourcePackageID).
		Exec(ctx)
	return dupErr(err, domain.EntityDocument, rec.OriginalID)
}

func (c *commitTx) InsertReferral(ctx context.Context, id uuid.UUID, rec domain.ReferralRecord,
	claimID uuid.UUID, sourcePackageID uuid.UUID) error {

	err := c.tx.Referral.Create().
		SetID(id).
		SetClaimID(claimID).
		SetReferralReasonCode(rec.ReferralReasonCode).
		SetReferredToAgency(rec.ReferredToAgency).
		SetNillableReferralDate(rec.ReferralDate).
		SetNotes(rec.Notes).
		SetSourcePackageID(sourcePackageID).
		Exec(ctx)
	return dupErr(err, domain.EntityReferral, rec.OriginalID)
}

func (c *commitTx) NextClaimNumber(ctx context.Context, now time.Time) (string, error) {
	return identifier.NextClaimNumber(ctx, c.tx, now)
}

// SetStagedCommitted stamps committed_entity_id on one staged row inside the
// commit transaction, so the id map survives exactly when the data does.
func (c *commitTx) SetStagedCommitted(ctx context.Context, packageID uuid.UUID,
	et domain.EntityType, originalID, productionID uuid.UUID) error {

	var err error
	switch et {
	case domain.EntityBuilding:
		_, err = c.tx.StagingBuilding.Update().
			Where(stagingbuilding.ImportPackageID(packageID), stagingbuilding.OriginalEntityID(originalID)).
			SetCommittedEntityID(productionID).
			Save(ctx)
	case domain.EntityPropertyUnit:
		_, err = c.tx.StagingPropertyUnit.Update().
			Where(stagingpropertyunit.ImportPackageID(packageID), stagingpropertyunit.OriginalEntityID(originalID)).
			SetCommittedEntityID(productionID).
			Save(ctx)
	case domain.EntityPerson:
		_, err = c.tx.StagingPerson.Update().
			Where(stagingperson.ImportPackageID(packageID), stagingperson.OriginalEntityID(originalID)).
			SetCommittedEntityID(productionID).
			Save(ctx)
	case domain.EntityHousehold:
		_, err = c.tx.StagingHousehold.Update().
			Where(staginghousehold.ImportPackageID(packageID), staginghousehold.OriginalEntityID(originalID)).
			SetCommittedEntityID(productionID).
			Save(ctx)
	case domain.EntityPersonPropertyRelation:
		_, err = c.tx.StagingPersonPropertyRelation.Update().
			Where(stagingpersonpropertyrelation.ImportPackageID(packageID), stagingpersonpropertyrelation.OriginalEntityID(originalID)).
			SetCommittedEntityID(productionID).
			Save(ctx)
	case domain.EntityEvidence:
		_, err = c.tx.StagingEvidence.Update().
			Where(stagingevidence.ImportPackageID(packageID), stagingevidence.OriginalEntityID(originalID)).
			SetCommittedEntityID(productionID).
			Save(ctx)
	case domain.EntitySurvey:
		_, err = c.tx.StagingSurvey.Update().
			Where(stagingsurvey.ImportPackageID(packageID), stagingsurvey.OriginalEntityID(originalID)).
			SetCommittedEntityID(productionID).
			Save(ctx)
	case domain.EntityClaim:
		_, err = c.tx.StagingClaim.Update().
			Where(stagingclaim.ImportPackageID(packageID), stagingclaim.OriginalEntityID(originalID)).
			SetCommittedEntityID(productionID).
			Save(ctx)
	case domain.EntityDocument:
		_, err = c.tx.StagingDocument.Update().
			Where(stagingdocument.ImportPackageID(packageID), stagingdocument.OriginalEntityID(originalID)).
			SetCommittedEntityID(productionID).
			Save(ctx)
	case domain.EntityReferral:
		_, err = c.tx.StagingReferral.Update().
			Where(stagingreferral.ImportPackageID(packageID), stagingreferral.OriginalEntityID(originalID)).
			SetCommittedEntityID(productionID).
			Save(ctx)
	default:
		return fmt.Errorf("unknown entity type %q", et)
	}
	if err != nil {
		return fmt.Errorf("stamp staged %s %s: %w", et, originalID, err)
	}
	return nil
}
