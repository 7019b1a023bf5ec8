package intake

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/identifier"
	"uhc-registry.io/registry/internal/matching"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
	"uhc-registry.io/registry/internal/pkg/worker"
)

// Scoring model. A pair at or above conflictThreshold opens a conflict; all
// candidates at or above candidateThreshold are listed for the reviewer.
const (
	conflictThreshold  = 70.0
	candidateThreshold = 55.0

	nationalIDScore = 60.0
	nameScoreWeight = 0.4 // WeightedNameSimilarity's 0–100 scaled to 40 pts
	dobFullScore    = 15.0
	dobYearScore    = 8.0
	genderScore     = 5.0

	familyPrefixLen  = 3
	unitLevThreshold = 2
	unitExactScore   = 100.0
	unitFuzzyScore   = 70.0
)

// TaskPool is the slice of the worker pool the detector fans out on.
type TaskPool interface {
	Submit(ctx context.Context, task worker.Task) error
}

// Detector finds probable duplicates between staged rows and production.
type Detector struct {
	packages   PackageStore
	staging    StagingStore
	production ProductionStore
	conflicts  ConflictStore
	events     EventRecorder
	audit      AuditSink
	// pool bounds candidate scoring fan-out; nil runs inline.
	pool TaskPool
}

// NewDetector wires a Detector.
func NewDetector(packages PackageStore, staging StagingStore, production ProductionStore,
	conflicts ConflictStore, events EventRecorder, audit AuditSink, pool TaskPool) *Detector {
	return &Detector{
		packages:   packages,
		staging:    staging,
		production: production,
		conflicts:  conflicts,
		events:     events,
		audit:      audit,
		pool:       pool,
	}
}

// DetectDuplicates scores staged persons, buildings and property units
// against production and opens conflicts for probable duplicates. The caller
// holds the package lock.
func (d *Detector) DetectDuplicates(ctx context.Context, packageID uuid.UUID, actor string) (*domain.DetectionReport, error) {
	pkg, err := d.packages.Get(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg.Status != domain.StatusValidated {
		return nil, apperrors.ErrStateTransition(string(pkg.Status), string(domain.StatusDetectingDuplicates))
	}
	if pkg, err = d.packages.UpdateStatus(ctx, packageID, domain.StatusValidated,
		domain.StatusDetectingDuplicates, nil); err != nil {
		return nil, err
	}

	// Re-runs start clean; resolved conflicts and suppressions stay.
	if err := d.conflicts.DeleteUnresolved(ctx, packageID); err != nil {
		return nil, err
	}

	started := time.Now()
	report := &domain.DetectionReport{PackageID: packageID}
	var found []*domain.Conflict

	personConflicts, scored, err := d.detectPersons(ctx, packageID)
	if err != nil {
		return nil, err
	}
	found = append(found, personConflicts...)
	report.PersonsScored = scored

	buildingConflicts, scored, err := d.detectBuildings(ctx, packageID)
	if err != nil {
		return nil, err
	}
	found = append(found, buildingConflicts...)
	report.BuildingsScored = scored

	unitConflicts, scored, err := d.detectUnits(ctx, packageID)
	if err != nil {
		return nil, err
	}
	found = append(found, unitConflicts...)
	report.UnitsScored = scored

	if len(found) > 0 {
		if err := d.conflicts.CreateMany(ctx, found); err != nil {
			return nil, err
		}
	}
	report.ConflictsCreated = len(found)

	target := domain.StatusReadyToCommit
	if len(found) > 0 {
		target = domain.StatusReviewingConflicts
	}
	if pkg, err = d.packages.UpdateStatus(ctx, packageID,
		domain.StatusDetectingDuplicates, target, nil); err != nil {
		return nil, err
	}
	report.PackageStatus = target

	logger.Info("Duplicate detection finished",
		zap.String("package_id", packageID.String()),
		zap.String("package_number", pkg.PackageNumber),
		zap.Int("conflicts", len(found)),
		zap.String("status", string(target)),
		zap.Duration("took", time.Since(started)),
	)
	d.audit.PackageAction(ctx, actor, "package.detect_duplicates", packageID, map[string]interface{}{
		"conflicts": len(found), "status": string(target),
	})
	if len(found) > 0 {
		d.events.PackageEvent(ctx, domain.EventConflictsDetected, pkg, actor, "")
	}
	return report, nil
}

// detectPersons fans person scoring out on the detect pool.
func (d *Detector) detectPersons(ctx context.Context, packageID uuid.UUID) ([]*domain.Conflict, int, error) {
	staged, err := d.staging.Persons(ctx, packageID)
	if err != nil {
		return nil, 0, err
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		found    []*domain.Conflict
		firstErr error
		scored   int
	)
	for _, row := range staged {
		if !committable(row.ValidationStatus) {
			continue
		}
		scored++
		rec := row.Record

		run := func(taskCtx context.Context) {
			conflict, err := d.scorePerson(taskCtx, packageID, rec)
			mu.Lock()
			defer mu.Unlock()
			if err != nil && firstErr == nil {
				firstErr = err
				return
			}
			if conflict != nil {
				found = append(found, conflict)
			}
		}

		if d.pool == nil {
			run(ctx)
			continue
		}
		wg.Add(1)
		task := func(taskCtx context.Context) {
			defer wg.Done()
			run(taskCtx)
		}
		if err := d.pool.Submit(ctx, task); err != nil {
			wg.Done()
			run(ctx)
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, 0, firstErr
	}
	sortConflicts(found)
	return found, scored, nil
}

// scorePerson retrieves candidates for one staged person and scores them.
func (d *Detector) scorePerson(ctx context.Context, packageID uuid.UUID, rec domain.PersonRecord) (*domain.Conflict, error) {
	seen := map[uuid.UUID]bool{}
	var pool []PersonCandidate

	if rec.NationalID != "" {
		byNID, err := d.production.PersonsByNationalID(ctx, rec.NationalID)
		if err != nil {
			return nil, err
		}
		for _, c := range byNID {
			if !seen[c.ID] {
				seen[c.ID] = true
				pool = append(pool, c)
			}
		}
	}
	if rec.DateOfBirth != nil && rec.GenderCode != "" && rec.FamilyName != "" {
		prefix := matching.FamilyNamePrefix(rec.FamilyName, familyPrefixLen)
		byBlock, err := d.production.PersonsByBlockKey(ctx,
			rec.DateOfBirth.UTC().Year(), rec.GenderCode, prefix)
		if err != nil {
			return nil, err
		}
		for _, c := range byBlock {
			if !seen[c.ID] {
				seen[c.ID] = true
				pool = append(pool, c)
			}
		}
	}
	if len(pool) == 0 {
		return nil, nil
	}

	fp := PersonFingerprint(rec)
	var candidates []domain.Candidate
	for _, c := range pool {
		suppressed, err := d.conflicts.IsSuppressed(ctx, domain.ConflictPerson, c.ID, fp)
		if err != nil {
			return nil, err
		}
		if suppressed {
			continue
		}
		score := scorePersonPair(rec, c)
		if score < candidateThreshold {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			EntityID: c.ID,
			Score:    score,
			Summary: map[string]string{
				"name":        c.FirstName + " " + c.FatherName + " " + c.FamilyName,
				"national_id": c.NationalID,
				"gender":      c.GenderCode,
			},
		})
	}
	return buildConflict(packageID, domain.ConflictPerson, rec.OriginalID, candidates), nil
}

// scorePersonPair applies the person scoring model, capped at 100.
func scorePersonPair(staged domain.PersonRecord, c PersonCandidate) float64 {
	score := 0.0
	nidMatch := staged.NationalID != "" && staged.NationalID == c.NationalID
	if nidMatch {
		score += nationalIDScore
	}

	score += nameScoreWeight * matching.WeightedNameSimilarity(
		staged.FirstName, staged.FatherName, staged.FamilyName,
		c.FirstName, c.FatherName, c.FamilyName)

	// A national-id match already identifies the person; birth date and
	// gender add nothing further.
	if !nidMatch {
		if staged.DateOfBirth != nil && c.DateOfBirth != nil {
			sd, cd := staged.DateOfBirth.UTC(), c.DateOfBirth.UTC()
			if sd.Year() == cd.Year() && sd.Month() == cd.Month() && sd.Day() == cd.Day() {
				score += dobFullScore
			} else if sd.Year() == cd.Year() {
				score += dobYearScore
			}
		}
		if staged.GenderCode != "" && staged.GenderCode == c.GenderCode {
			score += genderScore
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

// detectBuildings matches staged buildings on the exact 17-digit code.
func (d *Detector) detectBuildings(ctx context.Context, packageID uuid.UUID) ([]*domain.Conflict, int, error) {
	staged, err := d.staging.Buildings(ctx, packageID)
	if err != nil {
		return nil, 0, err
	}

	var found []*domain.Conflict
	scored := 0
	for _, row := range staged {
		if !committable(row.ValidationStatus) {
			continue
		}
		scored++
		rec := row.Record
		code, err := identifier.ComposeBuildingCode(
			rec.GovernorateCode, rec.DistrictCode, rec.SubDistrictCode,
			rec.CommunityCode, rec.NeighborhoodCode, rec.BuildingNumber)
		if err != nil {
			continue // flagged by validation; nothing to match on
		}
		existing, err := d.production.BuildingByCode(ctx, code)
		if err != nil {
			return nil, 0, err
		}
		if existing == nil {
			continue
		}
		suppressed, err := d.conflicts.IsSuppressed(ctx, domain.ConflictBuilding, existing.ID, BuildingFingerprint(code))
		if err != nil {
			return nil, 0, err
		}
		if suppressed {
			continue
		}
		conflict := buildConflict(packageID, domain.ConflictBuilding, rec.OriginalID, []domain.Candidate{{
			EntityID: existing.ID,
			Score:    100,
			Summary:  map[string]string{"building_code": existing.BuildingCode, "address": existing.Address},
		}})
		if conflict != nil {
			found = append(found, conflict)
		}
	}
	return found, scored, nil
}

// detectUnits matches staged units within their staged building's code.
func (d *Detector) detectUnits(ctx context.Context, packageID uuid.UUID) ([]*domain.Conflict, int, error) {
	stagedBuildings, err := d.staging.Buildings(ctx, packageID)
	if err != nil {
		return nil, 0, err
	}
	codeByBuilding := map[uuid.UUID]string{}
	for _, row := range stagedBuildings {
		rec := row.Record
		code, err := identifier.ComposeBuildingCode(
			rec.GovernorateCode, rec.DistrictCode, rec.SubDistrictCode,
			rec.CommunityCode, rec.NeighborhoodCode, rec.BuildingNumber)
		if err == nil {
			codeByBuilding[rec.OriginalID] = code
		}
	}

	staged, err := d.staging.PropertyUnits(ctx, packageID)
	if err != nil {
		return nil, 0, err
	}

	var found []*domain.Conflict
	scored := 0
	for _, row := range staged {
		if !committable(row.ValidationStatus) {
			continue
		}
		rec := row.Record
		code, ok := codeByBuilding[rec.OriginalBuildingID]
		if !ok {
			continue
		}
		scored++

		prodUnits, err := d.production.UnitsByBuildingCode(ctx, code)
		if err != nil {
			return nil, 0, err
		}
		if len(prodUnits) == 0 {
			continue
		}

		normalised := matching.NormalizeIdentifier(rec.UnitIdentifier)
		fp := UnitFingerprint(code, rec.UnitIdentifier)
		var candidates []domain.Candidate
		for _, u := range prodUnits {
			var score float64
			other := matching.NormalizeIdentifier(u.UnitIdentifier)
			switch {
			case other == normalised:
				score = unitExactScore
			case matching.Distance(other, normalised) <= unitLevThreshold:
				score = unitFuzzyScore
			default:
				continue
			}
			suppressed, err := d.conflicts.IsSuppressed(ctx, domain.ConflictPropertyUnit, u.ID, fp)
			if err != nil {
				return nil, 0, err
			}
			if suppressed {
				continue
			}
			candidates = append(candidates, domain.Candidate{
				EntityID: u.ID,
				Score:    score,
				Summary: map[string]string{
					"building_code":   u.BuildingCode,
					"unit_identifier": u.UnitIdentifier,
				},
			})
		}
		if conflict := buildConflict(packageID, domain.ConflictPropertyUnit, rec.OriginalID, candidates); conflict != nil {
			found = append(found, conflict)
		}
	}
	return found, scored, nil
}

// buildConflict opens one Unresolved conflict when the best candidate
// crosses the threshold.
func buildConflict(packageID uuid.UUID, et domain.ConflictEntityType,
	stagingEntityID uuid.UUID, candidates []domain.Candidate) *domain.Conflict {

	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })
	if candidates[0].Score < conflictThreshold {
		return nil
	}
	suggested := candidates[0].EntityID
	return &domain.Conflict{
		ID:                uuid.Must(uuid.NewV7()),
		ImportPackageID:   packageID,
		EntityType:        et,
		StagingEntityID:   stagingEntityID,
		Score:             candidates[0].Score,
		SuggestedMasterID: &suggested,
		Candidates:        candidates,
		Status:            domain.ConflictUnresolved,
	}
}

// committable reports whether a staged row participates in detection and
// commit.
func committable(s domain.ValidationStatus) bool {
	return s == domain.RowValid || s == domain.RowWarning
}

// sortConflicts keeps pool-ordered results deterministic.
func sortConflicts(cs []*domain.Conflict) {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].StagingEntityID.String() < cs[j].StagingEntityID.String()
	})
}
