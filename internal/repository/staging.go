package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"uhc-registry.io/registry/ent"
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
	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/identifier"
	"uhc-registry.io/registry/internal/intake"
	"uhc-registry.io/registry/internal/matching"
)

// Staging is the Ent-backed intake.StagingStore. Ten tables, one per entity
// type; the payload column carries the archive record verbatim and a few
// detection keys are promoted to real columns at insert time.
type Staging struct {
	client *ent.Client
}

// NewStaging creates the staging repository.
func NewStaging(client *ent.Client) *Staging {
	return &Staging{client: client}
}

var _ intake.StagingStore = (*Staging)(nil)

func newUUID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// Truncate removes every staging row of one package across all ten tables.
func (r *Staging) Truncate(ctx context.Context, packageID uuid.UUID) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		steps := []func() error{
			func() error {
				_, err := tx.StagingReferral.Delete().Where(stagingreferral.ImportPackageID(packageID)).Exec(ctx)
				return err
			},
			func() error {
				_, err := tx.StagingDocument.Delete().Where(stagingdocument.ImportPackageID(packageID)).Exec(ctx)
				return err
			},
			func() error {
				_, err := tx.StagingClaim.Delete().Where(stagingclaim.ImportPackageID(packageID)).Exec(ctx)
				return err
			},
			func() error {
				_, err := tx.StagingSurvey.Delete().Where(stagingsurvey.ImportPackageID(packageID)).Exec(ctx)
				return err
			},
			func() error {
				_, err := tx.StagingEvidence.Delete().Where(stagingevidence.ImportPackageID(packageID)).Exec(ctx)
				return err
			},
			func() error {
				_, err := tx.StagingPersonPropertyRelation.Delete().Where(stagingpersonpropertyrelation.ImportPackageID(packageID)).Exec(ctx)
				return err
			},
			func() error {
				_, err := tx.StagingHousehold.Delete().Where(staginghousehold.ImportPackageID(packageID)).Exec(ctx)
				return err
			},
			func() error {
				_, err := tx.StagingPerson.Delete().Where(stagingperson.ImportPackageID(packageID)).Exec(ctx)
				return err
			},
			func() error {
				_, err := tx.StagingPropertyUnit.Delete().Where(stagingpropertyunit.ImportPackageID(packageID)).Exec(ctx)
				return err
			},
			func() error {
				_, err := tx.StagingBuilding.Delete().Where(stagingbuilding.ImportPackageID(packageID)).Exec(ctx)
				return err
			},
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return fmt.Errorf("truncate staging rows: %w", err)
			}
		}
		return nil
	})
}

func (r *Staging) InsertBuildings(ctx context.Context, packageID uuid.UUID, recs []domain.BuildingRecord) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.StagingBuildingCreate, 0, len(recs))
	for _, rec := range recs {
		rec := rec
		create := r.client.StagingBuilding.Create().
			SetID(newUUID()).
			SetImportPackageID(packageID).
			SetOriginalEntityID(rec.OriginalID).
			SetPayload(&rec)
		if code, err := identifier.ComposeBuildingCode(rec.GovernorateCode, rec.DistrictCode,
			rec.SubDistrictCode, rec.CommunityCode, rec.NeighborhoodCode, rec.BuildingNumber); err == nil {
			create.SetBuildingCode(code)
		}
		builders = append(builders, create)
	}
	if err := r.client.StagingBuilding.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("stage buildings: %w", err)
	}
	return nil
}

func (r *Staging) InsertPropertyUnits(ctx context.Context, packageID uuid.UUID, recs []domain.PropertyUnitRecord) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.StagingPropertyUnitCreate, 0, len(recs))
	for _, rec := range recs {
		rec := rec
		builders = append(builders, r.client.StagingPropertyUnit.Create().
			SetID(newUUID()).
			SetImportPackageID(packageID).
			SetOriginalEntityID(rec.OriginalID).
			SetPayload(&rec).
			SetOriginalBuildingID(rec.OriginalBuildingID).
			SetUnitIdentifierNormalized(matching.NormalizeIdentifier(rec.UnitIdentifier)))
	}
	if err := r.client.StagingPropertyUnit.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("stage property units: %w", err)
	}
	return nil
}

func (r *Staging) InsertPersons(ctx context.Context, packageID uuid.UUID, recs []domain.PersonRecord) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.StagingPersonCreate, 0, len(recs))
	for _, rec := range recs {
		rec := rec
		create := r.client.StagingPerson.Create().
			SetID(newUUID()).
			SetImportPackageID(packageID).
			SetOriginalEntityID(rec.OriginalID).
			SetPayload(&rec).
			SetFirstNameNormalized(matching.NormalizeArabic(rec.FirstName)).
			SetFatherNameNormalized(matching.NormalizeArabic(rec.FatherName)).
			SetFamilyNameNormalized(matching.NormalizeArabic(rec.FamilyName)).
			SetNationalID(rec.NationalID).
			SetGenderCode(rec.GenderCode)
		if rec.DateOfBirth != nil {
			create.SetYearOfBirth(rec.DateOfBirth.UTC().Year())
		}
		builders = append(builders, create)
	}
	if err := r.client.StagingPerson.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("stage persons: %w", err)
	}
	return nil
}

func (r *Staging) InsertHouseholds(ctx context.Context, packageID uuid.UUID, recs []domain.HouseholdRecord) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.StagingHouseholdCreate, 0, len(recs))
	for _, rec := range recs {
		rec := rec
		builders = append(builders, r.client.StagingHousehold.Create().
			SetID(newUUID()).
			SetImportPackageID(packageID).
			SetOriginalEntityID(rec.OriginalID).
			SetPayload(&rec))
	}
	if err := r.client.StagingHousehold.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("stage households: %w", err)
	}
	return nil
}

func (r *Staging) InsertRelations(ctx context.Context, packageID uuid.UUID, recs []domain.PersonPropertyRelationRecord) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.StagingPersonPropertyRelationCreate, 0, len(recs))
	for _, rec := range recs {
		rec := rec
		builders = append(builders, r.client.StagingPersonPropertyRelation.Create().
			SetID(newUUID()).
			SetImportPackageID(packageID).
			SetOriginalEntityID(rec.OriginalID).
			SetPayload(&rec))
	}
	if err := r.client.StagingPersonPropertyRelation.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("stage person-property relations: %w", err)
	}
	return nil
}

func (r *Staging) InsertEvidences(ctx context.Context, packageID uuid.UUID, recs []domain.EvidenceRecord) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.StagingEvidenceCreate, 0, len(recs))
	for _, rec := range recs {
		rec := rec
		builders = append(builders, r.client.StagingEvidence.Create().
			SetID(newUUID()).
			SetImportPackageID(packageID).
			SetOriginalEntityID(rec.OriginalID).
			SetPayload(&rec).
			SetBlobSha256(rec.BlobSHA256))
	}
	if err := r.client.StagingEvidence.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("stage evidences: %w", err)
	}
	return nil
}

func (r *Staging) InsertSurveys(ctx context.Context, packageID uuid.UUID, recs []domain.SurveyRecord) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.StagingSurveyCreate, 0, len(recs))
	for _, rec := range recs {
		rec := rec
		builders = append(builders, r.client.StagingSurvey.Create().
			SetID(newUUID()).
			SetImportPackageID(packageID).
			SetOriginalEntityID(rec.OriginalID).
			SetPayload(&rec))
	}
	if err := r.client.StagingSurvey.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("stage surveys: %w", err)
	}
	return nil
}

func (r *Staging) InsertClaims(ctx context.Context, packageID uuid.UUID, recs []domain.ClaimRecord) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.StagingClaimCreate, 0, len(recs))
	for _, rec := range recs {
		rec := rec
		builders = append(builders, r.client.StagingClaim.Create().
			SetID(newUUID()).
			SetImportPackageID(packageID).
			SetOriginalEntityID(rec.OriginalID).
			SetPayload(&rec))
	}
	if err := r.client.StagingClaim.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("stage claims: %w", err)
	}
	return nil
}

func (r *Staging) InsertDocuments(ctx context.Context, packageID uuid.UUID, recs []domain.DocumentRecord) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.StagingDocumentCreate, 0, len(recs))
	for _, rec := range recs {
		rec := rec
		builders = append(builders, r.client.StagingDocument.Create().
			SetID(newUUID()).
			SetImportPackageID(packageID).
			SetOriginalEntityID(rec.OriginalID).
			SetPayload(&rec).
			SetBlobSha256(rec.BlobSHA256))
	}
	if err := r.client.StagingDocument.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("stage documents: %w", err)
	}
	return nil
}

func (r *Staging) InsertReferrals(ctx context.Context, packageID uuid.UUID, recs []domain.ReferralRecord) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.StagingReferralCreate, 0, len(recs))
	for _, rec := range recs {
		rec := rec
		builders = append(builders, r.client.StagingReferral.Create().
			SetID(newUUID()).
			SetImportPackageID(packageID).
			SetOriginalEntityID(rec.OriginalID).
			SetPayload(&rec))
	}
	if err := r.client.StagingReferral.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("stage referrals: %w", err)
	}
	return nil
}

// staged maps one row's bookkeeping onto the shared record wrapper.
func staged[T any](payload *T, status string, diags []domain.Diagnostic,
	approved bool, committed *uuid.UUID) intake.StagedRecord[T] {
	return intake.StagedRecord[T]{
		Record:            *payload,
		ValidationStatus:  domain.ValidationStatus(status),
		Diagnostics:       diags,
		ApprovedForCommit: approved,
		CommittedEntityID: committed,
	}
}

func (r *Staging) Buildings(ctx context.Context, packageID uuid.UUID) ([]intake.StagedRecord[domain.BuildingRecord], error) {
	rows, err := r.client.StagingBuilding.Query().
		Where(stagingbuilding.ImportPackageID(packageID)).
		Order(ent.Asc(stagingbuilding.FieldOriginalEntityID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read staged buildings: %w", err)
	}
	out := make([]intake.StagedRecord[domain.BuildingRecord], 0, len(rows))
	for _, row := range rows {
		out = append(out, staged(row.Payload, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID))
	}
	return out, nil
}

func (r *Staging) PropertyUnits(ctx context.Context, packageID uuid.UUID) ([]intake.StagedRecord[domain.PropertyUnitRecord], error) {
	rows, err := r.client.StagingPropertyUnit.Query().
		Where(stagingpropertyunit.ImportPackageID(packageID)).
		Order(ent.Asc(stagingpropertyunit.FieldOriginalEntityID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read staged property units: %w", err)
	}
	out := make([]intake.StagedRecord[domain.PropertyUnitRecord], 0, len(rows))
	for _, row := range rows {
		out = append(out, staged(row.Payload, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID))
	}
	return out, nil
}

func (r *Staging) Persons(ctx context.Context, packageID uuid.UUID) ([]intake.StagedRecord[domain.PersonRecord], error) {
	rows, err := r.client.StagingPerson.Query().
		Where(stagingperson.ImportPackageID(packageID)).
		Order(ent.Asc(stagingperson.FieldOriginalEntityID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read staged persons: %w", err)
	}
	out := make([]intake.StagedRecord[domain.PersonRecord], 0, len(rows))
	for _, row := range rows {
		out = append(out, staged(row.Payload, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID))
	}
	return out, nil
}

func (r *Staging) Households(ctx context.Context, packageID uuid.UUID) ([]intake.StagedRecord[domain.HouseholdRecord], error) {
	rows, err := r.client.StagingHousehold.Query().
		Where(staginghousehold.ImportPackageID(packageID)).
		Order(ent.Asc(staginghousehold.FieldOriginalEntityID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read staged households: %w", err)
	}
	out := make([]intake.StagedRecord[domain.HouseholdRecord], 0, len(rows))
	for _, row := range rows {
		out = append(out, staged(row.Payload, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID))
	}
	return out, nil
}

func (r *Staging) Relations(ctx context.Context, packageID uuid.UUID) ([]intake.StagedRecord[domain.PersonPropertyRelationRecord], error) {
	rows, err := r.client.StagingPersonPropertyRelation.Query().
		Where(stagingpersonpropertyrelation.ImportPackageID(packageID)).
		Order(ent.Asc(stagingpersonpropertyrelation.FieldOriginalEntityID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read staged relations: %w", err)
	}
	out := make([]intake.StagedRecord[domain.PersonPropertyRelationRecord], 0, len(rows))
	for _, row := range rows {
		out = append(out, staged(row.Payload, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID))
	}
	return out, nil
}

func (r *Staging) Evidences(ctx context.Context, packageID uuid.UUID) ([]intake.StagedRecord[domain.EvidenceRecord], error) {
	rows, err := r.client.StagingEvidence.Query().
		Where(stagingevidence.ImportPackageID(packageID)).
		Order(ent.Asc(stagingevidence.FieldOriginalEntityID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read staged evidences: %w", err)
	}
	out := make([]intake.StagedRecord[domain.EvidenceRecord], 0, len(rows))
	for _, row := range rows {
		out = append(out, staged(row.Payload, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID))
	}
	return out, nil
}

func (r *Staging) Surveys(ctx context.Context, packageID uuid.UUID) ([]intake.StagedRecord[domain.SurveyRecord], error) {
	rows, err := r.client.StagingSurvey.Query().
		Where(stagingsurvey.ImportPackageID(packageID)).
		Order(ent.Asc(stagingsurvey.FieldOriginalEntityID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read staged surveys: %w", err)
	}
	out := make([]intake.StagedRecord[domain.SurveyRecord], 0, len(rows))
	for _, row := range rows {
		out = append(out, staged(row.Payload, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID))
	}
	return out, nil
}

func (r *Staging) Claims(ctx context.Context, packageID uuid.UUID) ([]intake.StagedRecord[domain.ClaimRecord], error) {
	rows, err := r.client.StagingClaim.Query().
		Where(stagingclaim.ImportPackageID(packageID)).
		Order(ent.Asc(stagingclaim.FieldOriginalEntityID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read staged claims: %w", err)
	}
	out := make([]intake.StagedRecord[domain.ClaimRecord], 0, len(rows))
	for _, row := range rows {
		out = append(out, staged(row.Payload, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID))
	}
	return out, nil
}

func (r *Staging) Documents(ctx context.Context, packageID uuid.UUID) ([]intake.StagedRecord[domain.DocumentRecord], error) {
	rows, err := r.client.StagingDocument.Query().
		Where(stagingdocument.ImportPackageID(packageID)).
		Order(ent.Asc(stagingdocument.FieldOriginalEntityID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read staged documents: %w", err)
	}
	out := make([]intake.StagedRecord[domain.DocumentRecord], 0, len(rows))
	for _, row := range rows {
		out = append(out, staged(row.Payload, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID))
	}
	return out, nil
}

func (r *Staging) Referrals(ctx context.Context, packageID uuid.UUID) ([]intake.StagedRecord[domain.ReferralRecord], error) {
	rows, err := r.client.StagingReferral.Query().
		Where(stagingreferral.ImportPackageID(packageID)).
		Order(ent.Asc(stagingreferral.FieldOriginalEntityID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read staged referrals: %w", err)
	}
	out := make([]intake.StagedRecord[domain.ReferralRecord], 0, len(rows))
	for _, row := range rows {
		out = append(out, staged(row.Payload, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID))
	}
	return out, nil
}

// Counts returns staged row counts per entity type; absent types are omitted.
func (r *Staging) Counts(ctx context.Context, packageID uuid.UUID) (map[domain.EntityType]int, error) {
	counts := map[domain.EntityType]int{}
	type counter struct {
		et    domain.EntityType
		count func() (int, error)
	}
	counters := []counter{
		{domain.EntityBuilding, func() (int, error) {
			return r.client.StagingBuilding.Query().Where(stagingbuilding.ImportPackageID(packageID)).Count(ctx)
		}},
		{domain.EntityPropertyUnit, func() (int, error) {
			return r.client.StagingPropertyUnit.Query().Where(stagingpropertyunit.ImportPackageID(packageID)).Count(ctx)
		}},
		{domain.EntityPerson, func() (int, error) {
			return r.client.StagingPerson.Query().Where(stagingperson.ImportPackageID(packageID)).Count(ctx)
		}},
		{domain.EntityHousehold, func() (int, error) {
			return r.client.StagingHousehold.Query().Where(staginghousehold.ImportPackageID(packageID)).Count(ctx)
		}},
		{domain.EntityPersonPropertyRelation, func() (int, error) {
			return r.client.StagingPersonPropertyRelation.Query().Where(stagingpersonpropertyrelation.ImportPackageID(packageID)).Count(ctx)
		}},
		{domain.EntityEvidence, func() (int, error) {
			return r.client.StagingEvidence.Query().Where(stagingevidence.ImportPackageID(packageID)).Count(ctx)
		}},
		{domain.EntitySurvey, func() (int, error) {
			return r.client.StagingSurvey.Query().Where(stagingsurvey.ImportPackageID(packageID)).Count(ctx)
		}},
		{domain.EntityClaim, func() (int, error) {
			return r.client.StagingClaim.Query().Where(stagingclaim.ImportPackageID(packageID)).Count(ctx)
		}},
		{domain.EntityDocument, func() (int, error) {
			return r.client.StagingDocument.Query().Where(stagingdocument.ImportPackageID(packageID)).Count(ctx)
		}},
		{domain.EntityReferral, func() (int, error) {
			return r.client.StagingReferral.Query().Where(stagingreferral.ImportPackageID(packageID)).Count(ctx)
		}},
	}
	for _, c := range counters {
		n, err := c.count()
		if err != nil {
			return nil, fmt.Errorf("count staged %s rows: %w", c.et, err)
		}
		if n > 0 {
			counts[c.et] = n
		}
	}
	return counts, nil
}

// ApplyOutcomes writes validator verdicts row by row inside one transaction.
func (r *Staging) ApplyOutcomes(ctx context.Context, packageID uuid.UUID, outcomes []intake.RowOutcome) error {
	if len(outcomes) == 0 {
		return nil
	}
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		for _, o := range outcomes {
			var err error
			switch o.EntityType {
			case domain.EntityBuilding:
				_, err = tx.StagingBuilding.Update().
					Where(stagingbuilding.ImportPackageID(packageID), stagingbuilding.OriginalEntityID(o.OriginalEntityID)).
					SetValidationStatus(stagingbuilding.ValidationStatus(o.Status)).
					SetDiagnostics(o.Diagnostics).
					SetApprovedForCommit(o.Approved).
					Save(ctx)
			case domain.EntityPropertyUnit:
				_, err = tx.StagingPropertyUnit.Update().
					Where(stagingpropertyunit.ImportPackageID(packageID), stagingpropertyunit.OriginalEntityID(o.OriginalEntityID)).
					SetValidationStatus(stagingpropertyunit.ValidationStatus(o.Status)).
					SetDiagnostics(o.Diagnostics).
					SetApprovedForCommit(o.Approved).
					Save(ctx)
			case domain.EntityPerson:
				_, err = tx.StagingPerson.Update().
					Where(stagingperson.ImportPackageID(packageID), stagingperson.OriginalEntityID(o.OriginalEntityID)).
					SetValidationStatus(stagingperson.ValidationStatus(o.Status)).
					SetDiagnostics(o.Diagnostics).
					SetApprovedForCommit(o.Approved).
					Save(ctx)
			case domain.EntityHousehold:
				_, err = tx.StagingHousehold.Update().
					Where(staginghousehold.ImportPackageID(packageID), staginghousehold.OriginalEntityID(o.OriginalEntityID)).
					SetValidationStatus(staginghousehold.ValidationStatus(o.Status)).
					SetDiagnostics(o.Diagnostics).
					SetApprovedForCommit(o.Approved).
					Save(ctx)
			case domain.EntityPersonPropertyRelation:
				_, err = tx.StagingPersonPropertyRelation.Update().
					Where(stagingpersonpropertyrelation.ImportPackageID(packageID), stagingpersonpropertyrelation.OriginalEntityID(o.OriginalEntityID)).
					SetValidationStatus(stagingpersonpropertyrelation.ValidationStatus(o.Status)).
					SetDiagnostics(o.Diagnostics).
					SetApprovedForCommit(o.Approved).
					Save(ctx)
			case domain.EntityEvidence:
				_, err = tx.StagingEvidence.Update().
					Where(stagingevidence.ImportPackageID(packageID), stagingevidence.OriginalEntityID(o.OriginalEntityID)).
					SetValidationStatus(stagingevidence.ValidationStatus(o.Status)).
					SetDiagnostics(o.Diagnostics).
					SetApprovedForCommit(o.Approved).
					Save(ctx)
			case domain.EntitySurvey:
				_, err = tx.StagingSurvey.Update().
					Where(stagingsurvey.ImportPackageID(packageID), stagingsurvey.OriginalEntityID(o.OriginalEntityID)).
					SetValidationStatus(stagingsurvey.ValidationStatus(o.Status)).
					SetDiagnostics(o.Diagnostics).
					SetApprovedForCommit(o.Approved).
					Save(ctx)
			case domain.EntityClaim:
				_, err = tx.StagingClaim.Update().
					Where(stagingclaim.ImportPackageID(packageID), stagingclaim.OriginalEntityID(o.OriginalEntityID)).
					SetValidationStatus(stagingclaim.ValidationStatus(o.Status)).
					SetDiagnostics(o.Diagnostics).
					SetApprovedForCommit(o.Approved).
					Save(ctx)
			case domain.EntityDocument:
				_, err = tx.StagingDocument.Update().
					Where(stagingdocument.ImportPackageID(packageID), stagingdocument.OriginalEntityID(o.OriginalEntityID)).
					SetValidationStatus(stagingdocument.ValidationStatus(o.Status)).
					SetDiagnostics(o.Diagnostics).
					SetApprovedForCommit(o.Approved).
					Save(ctx)
			case domain.EntityReferral:
				_, err = tx.StagingReferral.Update().
					Where(stagingreferral.ImportPackageID(packageID), stagingreferral.OriginalEntityID(o.OriginalEntityID)).
					SetValidationStatus(stagingreferral.ValidationStatus(o.Status)).
					SetDiagnostics(o.Diagnostics).
					SetApprovedForCommit(o.Approved).
					Save(ctx)
			default:
				err = fmt.Errorf("unknown entity type %q", o.EntityType)
			}
			if err != nil {
				return fmt.Errorf("apply outcome for %s %s: %w", o.EntityType, o.OriginalEntityID, err)
			}
		}
		return nil
	})
}

// MarkSkipped resolves a staged row away: status SKIPPED, approval cleared,
// committed_entity_id set to the production master. Only the three conflict
// entity types ever skip.
func (r *Staging) MarkSkipped(ctx context.Context, packageID uuid.UUID,
	et domain.EntityType, originalID, productionID uuid.UUID) error {

	var (
		n   int
		err error
	)
	switch et {
	case domain.EntityPerson:
		n, err = r.client.StagingPerson.Update().
			Where(stagingperson.ImportPackageID(packageID), stagingperson.OriginalEntityID(originalID)).
			SetValidationStatus(stagingperson.ValidationStatus(domain.RowSkipped)).
			SetApprovedForCommit(false).
			SetCommittedEntityID(productionID).
			Save(ctx)
	case domain.EntityBuilding:
		n, err = r.client.StagingBuilding.Update().
			Where(stagingbuilding.ImportPackageID(packageID), stagingbuilding.OriginalEntityID(originalID)).
			SetValidationStatus(stagingbuilding.ValidationStatus(domain.RowSkipped)).
			SetApprovedForCommit(false).
			SetCommittedEntityID(productionID).
			Save(ctx)
	case domain.EntityPropertyUnit:
		n, err = r.client.StagingPropertyUnit.Update().
			Where(stagingpropertyunit.ImportPackageID(packageID), stagingpropertyunit.OriginalEntityID(originalID)).
			SetValidationStatus(stagingpropertyunit.ValidationStatus(domain.RowSkipped)).
			SetApprovedForCommit(false).
			SetCommittedEntityID(productionID).
			Save(ctx)
	default:
		return fmt.Errorf("entity type %q cannot be skipped", et)
	}
	if err != nil {
		return fmt.Errorf("mark %s %s skipped: %w", et, originalID, err)
	}
	if n == 0 {
		return fmt.Errorf("mark %s %s skipped: staging row not found", et, originalID)
	}
	return nil
}

// statusBucket is the scan target of the per-status group-by.
type statusBucket struct {
	Status string `json:"validation_status"`
	Count  int    `json:"count"`
}

func addBuckets(sum *domain.StagedEntitySummary, et domain.EntityType, buckets []statusBucket) {
	if len(buckets) == 0 {
		return
	}
	ev := sum.ByEntity[et]
	for _, b := range buckets {
		ev.Checked += b.Count
		sum.TotalRows += b.Count
		switch domain.ValidationStatus(b.Status) {
		case domain.RowValid:
			ev.Valid += b.Count
		case domain.RowWarning:
			ev.Warnings += b.Count
		case domain.RowInvalid:
			ev.Invalid += b.Count
		}
	}
	sum.ByEntity[et] = ev
}

// Summary aggregates per-type validation outcomes with one group-by per
// staging table.
func (r *Staging) Summary(ctx context.Context, packageID uuid.UUID) (*domain.StagedEntitySummary, error) {
	sum := &domain.StagedEntitySummary{
		PackageID: packageID,
		ByEntity:  map[domain.EntityType]domain.EntityValidation{},
	}
	var buckets []statusBucket

	scan := func(et domain.EntityType, run func(v *[]statusBucket) error) error {
		buckets = buckets[:0]
		if err := run(&buckets); err != nil {
			return fmt.Errorf("summarise staged %s rows: %w", et, err)
		}
		addBuckets(sum, et, buckets)
		return nil
	}

	if err := scan(domain.EntityBuilding, func(v *[]statusBucket) error {
		return r.client.StagingBuilding.Query().
			Where(stagingbuilding.ImportPackageID(packageID)).
			GroupBy(stagingbuilding.FieldValidationStatus).
			Aggregate(ent.Count()).
			Scan(ctx, v)
	}); err != nil {
		return nil, err
	}
	if err := scan(domain.EntityPropertyUnit, func(v *[]statusBucket) error {
		return r.client.StagingPropertyUnit.Query().
			Where(stagingpropertyunit.ImportPackageID(packageID)).
			GroupBy(stagingpropertyunit.FieldValidationStatus).
			Aggregate(ent.Count()).
			Scan(ctx, v)
	}); err != nil {
		return nil, err
	}
	if err := scan(domain.EntityPerson, func(v *[]statusBucket) error {
		return r.client.StagingPerson.Query().
			Where(stagingperson.ImportPackageID(packageID)).
			GroupBy(stagingperson.FieldValidationStatus).
			Aggregate(ent.Count()).
			Scan(ctx, v)
	}); err != nil {
		return nil, err
	}
	if err := scan(domain.EntityHousehold, func(v *[]statusBucket) error {
		return r.client.StagingHousehold.Query().
			Where(staginghousehold.ImportPackageID(packageID)).
			GroupBy(staginghousehold.FieldValidationStatus).
			Aggregate(ent.Count()).
			Scan(ctx, v)
	}); err != nil {
		return nil, err
	}
	if err := scan(domain.EntityPersonPropertyRelation, func(v *[]statusBucket) error {
		return r.client.StagingPersonPropertyRelation.Query().
			Where(stagingpersonpropertyrelation.ImportPackageID(packageID)).
			GroupBy(stagingpersonpropertyrelation.FieldValidationStatus).
			Aggregate(ent.Count()).
			Scan(ctx, v)
	}); err != nil {
		return nil, err
	}
	if err := scan(domain.EntityEvidence, func(v *[]statusBucket) error {
		return r.client.StagingEvidence.Query().
			Where(stagingevidence.ImportPackageID(packageID)).
			GroupBy(stagingevidence.FieldValidationStatus).
			Aggregate(ent.Count()).
			Scan(ctx, v)
	}); err != nil {
		return nil, err
	}
	if err := scan(domain.EntitySurvey, func(v *[]statusBucket) error {
		return r.client.StagingSurvey.Query().
			Where(stagingsurvey.ImportPackageID(packageID)).
			GroupBy(stagingsurvey.FieldValidationStatus).
			Aggregate(ent.Count()).
			Scan(ctx, v)
	}); err != nil {
		return nil, err
	}
	if err := scan(domain.EntityClaim, func(v *[]statusBucket) error {
		return r.client.StagingClaim.Query().
			Where(stagingclaim.ImportPackageID(packageID)).
			GroupBy(stagingclaim.FieldValidationStatus).
			Aggregate(ent.Count()).
			Scan(ctx, v)
	}); err != nil {
		return nil, err
	}
	if err := scan(domain.EntityDocument, func(v *[]statusBucket) error {
		return r.client.StagingDocument.Query().
			Where(stagingdocument.ImportPackageID(packageID)).
			GroupBy(stagingdocument.FieldValidationStatus).
			Aggregate(ent.Count()).
			Scan(ctx, v)
	}); err != nil {
		return nil, err
	}
	if err := scan(domain.EntityReferral, func(v *[]statusBucket) error {
		return r.client.StagingReferral.Query().
			Where(stagingreferral.ImportPackageID(packageID)).
			GroupBy(stagingreferral.FieldValidationStatus).
			Aggregate(ent.Count()).
			Scan(ctx, v)
	}); err != nil {
		return nil, err
	}
	return sum, nil
}

// payloadFields flattens a payload struct into display strings for the
// review UI.
func payloadFields(payload any) map[string]string {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		switch t := v.(type) {
		case string:
			out[k] = t
		case float64:
			out[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(t)
		default:
			b, _ := json.Marshal(v)
			out[k] = string(b)
		}
	}
	return out
}

func stagedRow(et domain.EntityType, originalID uuid.UUID, status string,
	diags []domain.Diagnostic, approved bool, committed *uuid.UUID, payload any) *domain.StagedRow {
	return &domain.StagedRow{
		EntityType:        et,
		OriginalEntityID:  originalID,
		ValidationStatus:  domain.ValidationStatus(status),
		Diagnostics:       diags,
		ApprovedForCommit: approved,
		CommittedEntityID: committed,
		Fields:            payloadFields(payload),
	}
}

// Page returns staged rows of one entity type, paginated in original-id
// order.
func (r *Staging) Page(ctx context.Context, packageID uuid.UUID,
	et domain.EntityType, offset, limit int) (*domain.StagedRowPage, error) {

	page := &domain.StagedRowPage{}
	var err error
	switch et {
	case domain.EntityBuilding:
		q := r.client.StagingBuilding.Query().Where(stagingbuilding.ImportPackageID(packageID))
		if page.TotalCount, err = q.Clone().Count(ctx); err != nil {
			break
		}
		var rows []*ent.StagingBuilding
		rows, err = q.Order(ent.Asc(stagingbuilding.FieldOriginalEntityID)).Offset(offset).Limit(limit).All(ctx)
		for _, row := range rows {
			page.Items = append(page.Items, stagedRow(et, row.OriginalEntityID, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID, row.Payload))
		}
	case domain.EntityPropertyUnit:
		q := r.client.StagingPropertyUnit.Query().Where(stagingpropertyunit.ImportPackageID(packageID))
		if page.TotalCount, err = q.Clone().Count(ctx); err != nil {
			break
		}
		var rows []*ent.StagingPropertyUnit
		rows, err = q.Order(ent.Asc(stagingpropertyunit.FieldOriginalEntityID)).Offset(offset).Limit(limit).All(ctx)
		for _, row := range rows {
			page.Items = append(page.Items, stagedRow(et, row.OriginalEntityID, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID, row.Payload))
		}
	case domain.EntityPerson:
		q := r.client.StagingPerson.Query().Where(stagingperson.ImportPackageID(packageID))
		if page.TotalCount, err = q.Clone().Count(ctx); err != nil {
			break
		}
		var rows []*ent.StagingPerson
		rows, err = q.Order(ent.Asc(stagingperson.FieldOriginalEntityID)).Offset(offset).Limit(limit).All(ctx)
		for _, row := range rows {
			page.Items = append(page.Items, stagedRow(et, row.OriginalEntityID, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID, row.Payload))
		}
	case domain.EntityHousehold:
		q := r.client.StagingHousehold.Query().Where(staginghousehold.ImportPackageID(packageID))
		if page.TotalCount, err = q.Clone().Count(ctx); err != nil {
			break
		}
		var rows []*ent.StagingHousehold
		rows, err = q.Order(ent.Asc(staginghousehold.FieldOriginalEntityID)).Offset(offset).Limit(limit).All(ctx)
		for _, row := range rows {
			page.Items = append(page.Items, stagedRow(et, row.OriginalEntityID, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID, row.Payload))
		}
	case domain.EntityPersonPropertyRelation:
		q := r.client.StagingPersonPropertyRelation.Query().Where(stagingpersonpropertyrelation.ImportPackageID(packageID))
		if page.TotalCount, err = q.Clone().Count(ctx); err != nil {
			break
		}
		var rows []*ent.StagingPersonPropertyRelation
		rows, err = q.Order(ent.Asc(stagingpersonpropertyrelation.FieldOriginalEntityID)).Offset(offset).Limit(limit).All(ctx)
		for _, row := range rows {
			page.Items = append(page.Items, stagedRow(et, row.OriginalEntityID, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID, row.Payload))
		}
	case domain.EntityEvidence:
		q := r.client.StagingEvidence.Query().Where(stagingevidence.ImportPackageID(packageID))
		if page.TotalCount, err = q.Clone().Count(ctx); err != nil {
			break
		}
		var rows []*ent.StagingEvidence
		rows, err = q.Order(ent.Asc(stagingevidence.FieldOriginalEntityID)).Offset(offset).Limit(limit).All(ctx)
		for _, row := range rows {
			page.Items = append(page.Items, stagedRow(et, row.OriginalEntityID, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID, row.Payload))
		}
	case domain.EntitySurvey:
		q := r.client.StagingSurvey.Query().Where(stagingsurvey.ImportPackageID(packageID))
		if page.TotalCount, err = q.Clone().Count(ctx); err != nil {
			break
		}
		var rows []*ent.StagingSurvey
		rows, err = q.Order(ent.Asc(stagingsurvey.FieldOriginalEntityID)).Offset(offset).Limit(limit).All(ctx)
		for _, row := range rows {
			page.Items = append(page.Items, stagedRow(et, row.OriginalEntityID, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID, row.Payload))
		}
	case domain.EntityClaim:
		q := r.client.StagingClaim.Query().Where(stagingclaim.ImportPackageID(packageID))
		if page.TotalCount, err = q.Clone().Count(ctx); err != nil {
			break
		}
		var rows []*ent.StagingClaim
		rows, err = q.Order(ent.Asc(stagingclaim.FieldOriginalEntityID)).Offset(offset).Limit(limit).All(ctx)
		for _, row := range rows {
			page.Items = append(page.Items, stagedRow(et, row.OriginalEntityID, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID, row.Payload))
		}
	case domain.EntityDocument:
		q := r.client.StagingDocument.Query().Where(stagingdocument.ImportPackageID(packageID))
		if page.TotalCount, err = q.Clone().Count(ctx); err != nil {
			break
		}
		var rows []*ent.StagingDocument
		rows, err = q.Order(ent.Asc(stagingdocument.FieldOriginalEntityID)).Offset(offset).Limit(limit).All(ctx)
		for _, row := range rows {
			page.Items = append(page.Items, stagedRow(et, row.OriginalEntityID, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID, row.Payload))
		}
	case domain.EntityReferral:
		q := r.client.StagingReferral.Query().Where(stagingreferral.ImportPackageID(packageID))
		if page.TotalCount, err = q.Clone().Count(ctx); err != nil {
			break
		}
		var rows []*ent.StagingReferral
		rows, err = q.Order(ent.Asc(stagingreferral.FieldOriginalEntityID)).Offset(offset).Limit(limit).All(ctx)
		for _, row := range rows {
			page.Items = append(page.Items, stagedRow(et, row.OriginalEntityID, string(row.ValidationStatus), row.Diagnostics, row.ApprovedForCommit, row.CommittedEntityID, row.Payload))
		}
	default:
		return nil, fmt.Errorf("unknown entity type %q", et)
	}
	if err != nil {
		return nil, fmt.Errorf("page staged %s rows: %w", et, err)
	}
	return page, nil
}
