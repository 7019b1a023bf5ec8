package intake

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

// In-memory store fakes. They honour the same contracts the ent-backed
// repositories do (compare-and-set status updates, write-once resolutions,
// transactional commit buffering) so the pipeline components can be driven
// end to end without a database.

type fakePackages struct {
	mu     sync.Mutex
	rows   map[uuid.UUID]*domain.ImportPackage
	nextNo int
}

func newFakePackages() *fakePackages {
	return &fakePackages{rows: map[uuid.UUID]*domain.ImportPackage{}}
}

func (f *fakePackages) Create(_ context.Context, pkg *domain.ImportPackage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[pkg.ID]; ok {
		return apperrors.ErrAlreadyExists
	}
	cp := *pkg
	cp.CreatedAt = time.Now().UTC()
	f.rows[pkg.ID] = &cp
	return nil
}

func (f *fakePackages) Get(_ context.Context, id uuid.UUID) (*domain.ImportPackage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pkg, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrPackageNotFound(id.String())
	}
	cp := *pkg
	return &cp, nil
}

func (f *fakePackages) List(_ context.Context, filter PackageFilter) (*domain.PackageList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &domain.PackageList{}
	for _, pkg := range f.rows {
		if filter.Status != nil && pkg.Status != *filter.Status {
			continue
		}
		cp := *pkg
		out.Items = append(out.Items, &cp)
	}
	out.TotalCount = len(out.Items)
	return out, nil
}

func (f *fakePackages) UpdateStatus(_ context.Context, id uuid.UUID,
	from, to domain.PackageStatus, upd *PackageUpdate) (*domain.ImportPackage, error) {

	f.mu.Lock()
	defer f.mu.Unlock()
	pkg, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrPackageNotFound(id.String())
	}
	if pkg.Status != from || !domain.CanTransition(from, to) {
		return nil, apperrors.ErrStateTransition(string(pkg.Status), string(to))
	}
	pkg.Status = to
	if upd != nil {
		if upd.ValidationSummary != nil {
			pkg.ValidationSummary = upd.ValidationSummary
		}
		if upd.CommittedDate != nil {
			pkg.CommittedDate = upd.CommittedDate
		}
		if upd.CommitReport != nil {
			pkg.CommitReport = upd.CommitReport
		}
		if upd.QuarantinedReason != nil {
			pkg.QuarantinedReason = *upd.QuarantinedReason
		}
		if upd.CancelledReason != nil {
			pkg.CancelledReason = *upd.CancelledReason
		}
		if upd.CancelledBy != nil {
			pkg.CancelledBy = *upd.CancelledBy
		}
		if upd.CancelledAt != nil {
			pkg.CancelledAt = upd.CancelledAt
		}
		if upd.IsArchived != nil {
			pkg.IsArchived = *upd.IsArchived
		}
		if upd.ArchivePath != nil {
			pkg.ArchivePath = *upd.ArchivePath
		}
		if upd.ArchivedDate != nil {
			pkg.ArchivedDate = upd.ArchivedDate
		}
	}
	cp := *pkg
	return &cp, nil
}

func (f *fakePackages) NextPackageNumber(_ context.Context, now time.Time) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextNo++
	return fmt.Sprintf("PKG-%04d-%04d", now.UTC().Year(), f.nextNo), nil
}

func (f *fakePackages) MarkArchived(_ context.Context, id uuid.UUID, archivePath string, archivedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	pkg, ok := f.rows[id]
	if !ok {
		return apperrors.ErrPackageNotFound(id.String())
	}
	pkg.IsArchived = true
	pkg.ArchivePath = archivePath
	at := archivedAt
	pkg.ArchivedDate = &at
	return nil
}

type fakeStaging struct {
	mu        sync.Mutex
	buildings map[uuid.UUID][]StagedRecord[domain.BuildingRecord]
	units     map[uuid.UUID][]StagedRecord[domain.PropertyUnitRecord]
	persons   map[uuid.UUID][]StagedRecord[domain.PersonRecord]
	homes     map[uuid.UUID][]StagedRecord[domain.HouseholdRecord]
	relations map[uuid.UUID][]StagedRecord[domain.PersonPropertyRelationRecord]
	evidences map[uuid.UUID][]StagedRecord[domain.EvidenceRecord]
	surveys   map[uuid.UUID][]StagedRecord[domain.SurveyRecord]
	claims    map[uuid.UUID][]StagedRecord[domain.ClaimRecord]
	documents map[uuid.UUID][]StagedRecord[domain.DocumentRecord]
	referrals map[uuid.UUID][]StagedRecord[domain.ReferralRecord]
}

func newFakeStaging() *fakeStaging {
	return &fakeStaging{
		buildings: map[uuid.UUID][]StagedRecord[domain.BuildingRecord]{},
		units:     map[uuid.UUID][]StagedRecord[domain.PropertyUnitRecord]{},
		persons:   map[uuid.UUID][]StagedRecord[domain.PersonRecord]{},
		homes:     map[uuid.UUID][]StagedRecord[domain.HouseholdRecord]{},
		relations: map[uuid.UUID][]StagedRecord[domain.PersonPropertyRelationRecord]{},
		evidences: map[uuid.UUID][]StagedRecord[domain.EvidenceRecord]{},
		surveys:   map[uuid.UUID][]StagedRecord[domain.SurveyRecord]{},
		claims:    map[uuid.UUID][]StagedRecord[domain.ClaimRecord]{},
		documents: map[uuid.UUID][]StagedRecord[domain.DocumentRecord]{},
		referrals: map[uuid.UUID][]StagedRecord[domain.ReferralRecord]{},
	}
}

func stage[T any](m map[uuid.UUID][]StagedRecord[T], packageID uuid.UUID, recs []T) {
	for _, rec := range recs {
		m[packageID] = append(m[packageID], StagedRecord[T]{Record: rec, ValidationStatus: domain.RowPending})
	}
}

func (f *fakeStaging) Truncate(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.buildings, id)
	delete(f.units, id)
	delete(f.persons, id)
	delete(f.homes, id)
	delete(f.relations, id)
	delete(f.evidences, id)
	delete(f.surveys, id)
	delete(f.claims, id)
	delete(f.documents, id)
	delete(f.referrals, id)
	return nil
}

func (f *fakeStaging) InsertBuildings(_ context.Context, id uuid.UUID, recs []domain.BuildingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stage(f.buildings, id, recs)
	return nil
}

func (f *fakeStaging) InsertPropertyUnits(_ context.Context, id uuid.UUID, recs []domain.PropertyUnitRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stage(f.units, id, recs)
	return nil
}

func (f *fakeStaging) InsertPersons(_ context.Context, id uuid.UUID, recs []domain.PersonRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stage(f.persons, id, recs)
	return nil
}

func (f *fakeStaging) InsertHouseholds(_ context.Context, id uuid.UUID, recs []domain.HouseholdRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stage(f.homes, id, recs)
	return nil
}

func (f *fakeStaging) InsertRelations(_ context.Context, id uuid.UUID, recs []domain.PersonPropertyRelationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stage(f.relations, id, recs)
	return nil
}

func (f *fakeStaging) InsertEvidences(_ context.Context, id uuid.UUID, recs []domain.EvidenceRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stage(f.evidences, id, recs)
	return nil
}

func (f *fakeStaging) InsertSurveys(_ context.Context, id uuid.UUID, recs []domain.SurveyRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stage(f.surveys, id, recs)
	return nil
}

func (f *fakeStaging) InsertClaims(_ context.Context, id uuid.UUID, recs []domain.ClaimRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stage(f.claims, id, recs)
	return nil
}

func (f *fakeStaging) InsertDocuments(_ context.Context, id uuid.UUID, recs []domain.DocumentRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stage(f.documents, id, recs)
	return nil
}

func (f *fakeStaging) InsertReferrals(_ context.Context, id uuid.UUID, recs []domain.ReferralRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stage(f.referrals, id, recs)
	return nil
}

func (f *fakeStaging) Buildings(_ context.Context, id uuid.UUID) ([]StagedRecord[domain.BuildingRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StagedRecord[domain.BuildingRecord]{}, f.buildings[id]...), nil
}

func (f *fakeStaging) PropertyUnits(_ context.Context, id uuid.UUID) ([]StagedRecord[domain.PropertyUnitRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StagedRecord[domain.PropertyUnitRecord]{}, f.units[id]...), nil
}

func (f *fakeStaging) Persons(_ context.Context, id uuid.UUID) ([]StagedRecord[domain.PersonRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StagedRecord[domain.PersonRecord]{}, f.persons[id]...), nil
}

func (f *fakeStaging) Households(_ context.Context, id uuid.UUID) ([]StagedRecord[domain.HouseholdRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StagedRecord[domain.HouseholdRecord]{}, f.homes[id]...), nil
}

func (f *fakeStaging) Relations(_ context.Context, id uuid.UUID) ([]StagedRecord[domain.PersonPropertyRelationRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StagedRecord[domain.PersonPropertyRelationRecord]{}, f.relations[id]...), nil
}

func (f *fakeStaging) Evidences(_ context.Context, id uuid.UUID) ([]StagedRecord[domain.EvidenceRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StagedRecord[domain.EvidenceRecord]{}, f.evidences[id]...), nil
}

func (f *fakeStaging) Surveys(_ context.Context, id uuid.UUID) ([]StagedRecord[domain.SurveyRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StagedRecord[domain.SurveyRecord]{}, f.surveys[id]...), nil
}

func (f *fakeStaging) Claims(_ context.Context, id uuid.UUID) ([]StagedRecord[domain.ClaimRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StagedRecord[domain.ClaimRecord]{}, f.claims[id]...), nil
}

func (f *fakeStaging) Documents(_ context.Context, id uuid.UUID) ([]StagedRecord[domain.DocumentRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StagedRecord[domain.DocumentRecord]{}, f.documents[id]...), nil
}

func (f *fakeStaging) Referrals(_ context.Context, id uuid.UUID) ([]StagedRecord[domain.ReferralRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StagedRecord[domain.ReferralRecord]{}, f.referrals[id]...), nil
}

func (f *fakeStaging) Counts(_ context.Context, id uuid.UUID) (map[domain.EntityType]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return map[domain.EntityType]int{
		domain.EntityBuilding:               len(f.buildings[id]),
		domain.EntityPropertyUnit:           len(f.units[id]),
		domain.EntityPerson:                 len(f.persons[id]),
		domain.EntityHousehold:              len(f.homes[id]),
		domain.EntityPersonPropertyRelation: len(f.relations[id]),
		domain.EntityEvidence:               len(f.evidences[id]),
		domain.EntitySurvey:                 len(f.surveys[id]),
		domain.EntityClaim:                  len(f.claims[id]),
		domain.EntityDocument:               len(f.documents[id]),
		domain.EntityReferral:               len(f.referrals[id]),
	}, nil
}

func applyOutcome[T any](rows []StagedRecord[T], idOf func(T) uuid.UUID, o RowOutcome) {
	for i := range rows {
		if idOf(rows[i].Record) == o.OriginalEntityID {
			rows[i].ValidationStatus = o.Status
			rows[i].Diagnostics = o.Diagnostics
			rows[i].ApprovedForCommit = o.Approved
		}
	}
}

func (f *fakeStaging) ApplyOutcomes(_ context.Context, id uuid.UUID, outcomes []RowOutcome) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range outcomes {
		switch o.EntityType {
		case domain.EntityBuilding:
			applyOutcome(f.buildings[id], func(r domain.BuildingRecord) uuid.UUID { return r.OriginalID }, o)
		case domain.EntityPropertyUnit:
			applyOutcome(f.units[id], func(r domain.PropertyUnitRecord) uuid.UUID { return r.OriginalID }, o)
		case domain.EntityPerson:
			applyOutcome(f.persons[id], func(r domain.PersonRecord) uuid.UUID { return r.OriginalID }, o)
		case domain.EntityHousehold:
			applyOutcome(f.homes[id], func(r domain.HouseholdRecord) uuid.UUID { return r.OriginalID }, o)
		case domain.EntityPersonPropertyRelation:
			applyOutcome(f.relations[id], func(r domain.PersonPropertyRelationRecord) uuid.UUID { return r.OriginalID }, o)
		case domain.EntityEvidence:
			applyOutcome(f.evidences[id], func(r domain.EvidenceRecord) uuid.UUID { return r.OriginalID }, o)
		case domain.EntitySurvey:
			applyOutcome(f.surveys[id], func(r domain.SurveyRecord) uuid.UUID { return r.OriginalID }, o)
		case domain.EntityClaim:
			applyOutcome(f.claims[id], func(r domain.ClaimRecord) uuid.UUID { return r.OriginalID }, o)
		case domain.EntityDocument:
			applyOutcome(f.documents[id], func(r domain.DocumentRecord) uuid.UUID { return r.OriginalID }, o)
		case domain.EntityReferral:
			applyOutcome(f.referrals[id], func(r domain.ReferralRecord) uuid.UUID { return r.OriginalID }, o)
		}
	}
	return nil
}

func markSkipped[T any](rows []StagedRecord[T], idOf func(T) uuid.UUID, originalID, productionID uuid.UUID) {
	for i := range rows {
		if idOf(rows[i].Record) == originalID {
			rows[i].ValidationStatus = domain.RowSkipped
			rows[i].ApprovedForCommit = false
			pid := productionID
			rows[i].CommittedEntityID = &pid
		}
	}
}

func (f *fakeStaging) MarkSkipped(_ context.Context, id uuid.UUID, et domain.EntityType, originalID, productionID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch et {
	case domain.EntityBuilding:
		markSkipped(f.buildings[id], func(r domain.BuildingRecord) uuid.UUID { return r.OriginalID }, originalID, productionID)
	case domain.EntityPropertyUnit:
		markSkipped(f.units[id], func(r domain.PropertyUnitRecord) uuid.UUID { return r.OriginalID }, originalID, productionID)
	case domain.EntityPerson:
		markSkipped(f.persons[id], func(r domain.PersonRecord) uuid.UUID { return r.OriginalID }, originalID, productionID)
	}
	return nil
}

func (f *fakeStaging) Summary(ctx context.Context, id uuid.UUID) (*domain.StagedEntitySummary, error) {
	counts, _ := f.Counts(ctx, id)
	out := &domain.StagedEntitySummary{PackageID: id, ByEntity: map[domain.EntityType]domain.EntityValidation{}}
	for et, n := range counts {
		out.ByEntity[et] = domain.EntityValidation{Checked: n}
		out.TotalRows += n
	}
	return out, nil
}

func (f *fakeStaging) Page(_ context.Context, _ uuid.UUID, _ domain.EntityType, _, _ int) (*domain.StagedRowPage, error) {
	return &domain.StagedRowPage{}, nil
}

type suppressionKey struct {
	et           domain.ConflictEntityType
	productionID uuid.UUID
	fingerprint  string
}

type fakeConflicts struct {
	mu          sync.Mutex
	rows        map[uuid.UUID]*domain.Conflict
	suppression map[suppressionKey]bool
}

func newFakeConflicts() *fakeConflicts {
	return &fakeConflicts{
		rows:        map[uuid.UUID]*domain.Conflict{},
		suppression: map[suppressionKey]bool{},
	}
}

func (f *fakeConflicts) DeleteUnresolved(_ context.Context, packageID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, c := range f.rows {
		if c.ImportPackageID == packageID && c.Status == domain.ConflictUnresolved {
			delete(f.rows, id)
		}
	}
	return nil
}

func (f *fakeConflicts) CreateMany(_ context.Context, conflicts []*domain.Conflict) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range conflicts {
		cp := *c
		cp.CreatedAt = time.Now().UTC()
		f.rows[c.ID] = &cp
	}
	return nil
}

func (f *fakeConflicts) Get(_ context.Context, id uuid.UUID) (*domain.Conflict, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NotFound(apperrors.CodeConflictNotFound, "conflict not found")
	}
	cp := *c
	return &cp, nil
}

func (f *fakeConflicts) ListByPackage(_ context.Context, packageID uuid.UUID) ([]*domain.Conflict, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Conflict
	for _, c := range f.rows {
		if c.ImportPackageID == packageID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeConflicts) CountUnresolved(_ context.Context, packageID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.rows {
		if c.ImportPackageID == packageID && c.Status == domain.ConflictUnresolved {
			n++
		}
	}
	return n, nil
}

func (f *fakeConflicts) MarkResolved(_ context.Context, id uuid.UUID, res domain.Resolution,
	justification string, masterID *uuid.UUID, mergeMapping map[string]int,
	actor string, at time.Time) (*domain.Conflict, error) {

	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NotFound(apperrors.CodeConflictNotFound, "conflict not found")
	}
	if c.Status == domain.ConflictResolved {
		return nil, apperrors.Conflict(apperrors.CodeConflictAlreadyResolved, "already resolved")
	}
	c.Status = domain.ConflictResolved
	c.Resolution = &res
	c.Justification = justification
	c.ChosenMasterID = masterID
	c.MergeMapping = mergeMapping
	c.ResolvedBy = actor
	c.ResolvedAt = &at
	cp := *c
	return &cp, nil
}

func (f *fakeConflicts) IsSuppressed(_ context.Context, et domain.ConflictEntityType,
	productionID uuid.UUID, fingerprint string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.suppression[suppressionKey{et, productionID, fingerprint}], nil
}

func (f *fakeConflicts) Suppress(_ context.Context, et domain.ConflictEntityType,
	productionID uuid.UUID, fingerprint string, _ uuid.UUID, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suppression[suppressionKey{et, productionID, fingerprint}] = true
	return nil
}

// committedRow is one production insert buffered by the fake commit tx.
type committedRow struct {
	entityType      domain.EntityType
	id              uuid.UUID
	claimNumber     string
	blobPath        string
	sourcePackageID uuid.UUID
}

type fakeProduction struct {
	mu        sync.Mutex
	persons   []PersonCandidate
	buildings []BuildingCandidate
	units     []UnitCandidate
	existing  map[uuid.UUID]bool

	committed []committedRow
	stamped   []committedRow
	nextClaim int

	mergeCalls int
	// failClaimInsert aborts the transaction on the first claim insert.
	failClaimInsert error
}

func newFakeProduction() *fakeProduction {
	return &fakeProduction{existing: map[uuid.UUID]bool{}}
}

func (f *fakeProduction) PersonsByNationalID(_ context.Context, nid string) ([]PersonCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []PersonCandidate
	for _, p := range f.persons {
		if p.NationalID == nid && nid != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProduction) PersonsByBlockKey(_ context.Context, year int, gender, prefix string) ([]PersonCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []PersonCandidate
	for _, p := range f.persons {
		if p.YearOfBirth == year && p.GenderCode == gender {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProduction) BuildingByCode(_ context.Context, code string) (*BuildingCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.buildings {
		if b.BuildingCode == code {
			cp := b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProduction) UnitsByBuildingCode(_ context.Context, code string) ([]UnitCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []UnitCandidate
	for _, u := range f.units {
		if u.BuildingCode == code {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeProduction) Exists(_ context.Context, _ domain.ConflictEntityType, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.existing[id], nil
}

func (f *fakeProduction) MergePerson(_ context.Context, _, _ uuid.UUID, _ domain.PersonRecord) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mergeCalls++
	return map[string]int{"claims": 1}, nil
}

func (f *fakeProduction) MergeBuilding(_ context.Context, _, _ uuid.UUID, _ domain.BuildingRecord) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mergeCalls++
	return map[string]int{}, nil
}

func (f *fakeProduction) MergePropertyUnit(_ context.Context, _, _ uuid.UUID, _ domain.PropertyUnitRecord) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mergeCalls++
	return map[string]int{}, nil
}

// WithinCommit buffers writes and publishes them only when fn succeeds,
// mirroring the repository's transaction semantics.
func (f *fakeProduction) WithinCommit(_ context.Context, fn func(tx CommitTx) error) error {
	tx := &fakeCommitTx{prod: f}
	if err := fn(tx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.committed = append(f.committed, tx.buffer...)
	f.stamped = append(f.stamped, tx.stampBuffer...)
	f.nextClaim = tx.nextClaim
	return nil
}

type fakeCommitTx struct {
	prod        *fakeProduction
	buffer      []committedRow
	stampBuffer []committedRow
	nextClaim   int
}

func (t *fakeCommitTx) add(et domain.EntityType, id uuid.UUID, blobPath, claimNumber string, pid uuid.UUID) {
	t.buffer = append(t.buffer, committedRow{
		entityType: et, id: id, blobPath: blobPath, claimNumber: claimNumber, sourcePackageID: pid,
	})
}

func (t *fakeCommitTx) InsertBuilding(_ context.Context, id uuid.UUID, _ domain.BuildingRecord, _ string, pid uuid.UUID) error {
	t.add(domain.EntityBuilding, id, "", "", pid)
	return nil
}

func (t *fakeCommitTx) InsertPropertyUnit(_ context.Context, id uuid.UUID, _ domain.PropertyUnitRecord, _ uuid.UUID, _ string, pid uuid.UUID) error {
	t.add(domain.EntityPropertyUnit, id, "", "", pid)
	return nil
}

func (t *fakeCommitTx) InsertPerson(_ context.Context, id uuid.UUID, _ domain.PersonRecord, pid uuid.UUID) error {
	t.add(domain.EntityPerson, id, "", "", pid)
	return nil
}

func (t *fakeCommitTx) InsertHousehold(_ context.Context, id uuid.UUID, _ domain.HouseholdRecord, _ uuid.UUID, pid uuid.UUID) error {
	t.add(domain.EntityHousehold, id, "", "", pid)
	return nil
}

func (t *fakeCommitTx) InsertRelation(_ context.Context, id uuid.UUID, _ domain.PersonPropertyRelationRecord, _, _ uuid.UUID, pid uuid.UUID) error {
	t.add(domain.EntityPersonPropertyRelation, id, "", "", pid)
	return nil
}

func (t *fakeCommitTx) InsertEvidence(_ context.Context, id uuid.UUID, _ domain.EvidenceRecord, _ uuid.UUID, blobPath string, pid uuid.UUID) error {
	t.add(domain.EntityEvidence, id, blobPath, "", pid)
	return nil
}

func (t *fakeCommitTx) InsertSurvey(_ context.Context, id uuid.UUID, _ domain.SurveyRecord, _ uuid.UUID, pid uuid.UUID) error {
	t.add(domain.EntitySurvey, id, "", "", pid)
	return nil
}

func (t *fakeCommitTx) InsertClaim(_ context.Context, id uuid.UUID, _ domain.ClaimRecord, _, _ uuid.UUID, claimNumber string, pid uuid.UUID) error {
	if t.prod.failClaimInsert != nil {
		return t.prod.failClaimInsert
	}
	t.add(domain.EntityClaim, id, "", claimNumber, pid)
	return nil
}

func (t *fakeCommitTx) InsertDocument(_ context.Context, id uuid.UUID, _ domain.DocumentRecord, _ uuid.UUID, blobPath string, pid uuid.UUID) error {
	t.add(domain.EntityDocument, id, blobPath, "", pid)
	return nil
}

func (t *fakeCommitTx) InsertReferral(_ context.Context, id uuid.UUID, _ domain.ReferralRecord, _ uuid.UUID, pid uuid.UUID) error {
	t.add(domain.EntityReferral, id, "", "", pid)
	return nil
}

func (t *fakeCommitTx) NextClaimNumber(_ context.Context, now time.Time) (string, error) {
	t.nextClaim++
	return fmt.Sprintf("CLM-%04d-%09d", now.UTC().Year(), t.nextClaim), nil
}

func (t *fakeCommitTx) SetStagedCommitted(_ context.Context, packageID uuid.UUID,
	et domain.EntityType, originalID, productionID uuid.UUID) error {
	t.stampBuffer = append(t.stampBuffer, committedRow{
		entityType: et, id: productionID, sourcePackageID: packageID,
	})
	return nil
}

type fakeBlobs struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{data: map[string][]byte{}}
}

func (f *fakeBlobs) Has(sha string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[sha]
	return ok, nil
}

func (f *fakeBlobs) Put(content []byte, declaredSHA string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[declaredSHA] = content
	return "/blobs/" + declaredSHA, nil
}

func (f *fakeBlobs) Path(sha string) string {
	return "/blobs/" + sha
}

type fakeArchiver struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeArchiver) Archive(srcPath string, packageID uuid.UUID, committedAt time.Time) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "/archive/" + committedAt.UTC().Format("2006/01") + "/" + packageID.String() + ".uhc", nil
}

type fakeLocker struct {
	mu   sync.Mutex
	held map[uuid.UUID]bool
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: map[uuid.UUID]bool{}}
}

func (f *fakeLocker) TryLock(_ context.Context, packageID uuid.UUID) (func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held[packageID] {
		return nil, apperrors.ErrPackageBusy(packageID.String())
	}
	f.held[packageID] = true
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.held, packageID)
	}, nil
}

type recordedEvent struct {
	typ   domain.EventType
	pkgID uuid.UUID
}

type fakeEvents struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeEvents) PackageEvent(_ context.Context, typ domain.EventType, pkg *domain.ImportPackage, _, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{typ: typ, pkgID: pkg.ID})
}

func (f *fakeEvents) ConflictEvent(_ context.Context, typ domain.EventType, c *domain.Conflict, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{typ: typ, pkgID: c.ImportPackageID})
}

func (f *fakeEvents) ofType(typ domain.EventType) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.events {
		if e.typ == typ {
			n++
		}
	}
	return n
}

type fakeAudit struct {
	mu      sync.Mutex
	actions []string
}

func (f *fakeAudit) PackageAction(_ context.Context, _, action string, _ uuid.UUID, _ map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
}

func (f *fakeAudit) ConflictAction(_ context.Context, _, action string, _ uuid.UUID, _ map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
}
