package intake

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/identifier"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// Resolver applies reviewer decisions to duplicate conflicts.
type Resolver struct {
	packages   PackageStore
	staging    StagingStore
	production ProductionStore
	conflicts  ConflictStore
	events     EventRecorder
	audit      AuditSink
	now        func() time.Time
}

// NewResolver wires a Resolver.
func NewResolver(packages PackageStore, staging StagingStore, production ProductionStore,
	conflicts ConflictStore, events EventRecorder, audit AuditSink) *Resolver {
	return &Resolver{
		packages:   packages,
		staging:    staging,
		production: production,
		conflicts:  conflicts,
		events:     events,
		audit:      audit,
		now:        time.Now,
	}
}

// Resolve records one reviewer decision. Decisions are write-once; when the
// last open conflict resolves the package moves to READY_TO_COMMIT.
func (r *Resolver) Resolve(ctx context.Context, conflictID uuid.UUID,
	req domain.ResolveRequest, actor string) (*domain.ResolveResult, error) {

	if actor == "" {
		return nil, apperrors.ErrNotAuthenticated()
	}
	if _, ok := domain.ParseResolution(string(req.Resolution)); !ok {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"unknown resolution "+string(req.Resolution))
	}
	if req.Justification == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"a resolution requires a justification").
			WithFieldErrors([]apperrors.FieldError{{Field: "justification", Code: "REQUIRED"}})
	}

	conflict, err := r.conflicts.Get(ctx, conflictID)
	if err != nil {
		return nil, err
	}
	if conflict.Status == domain.ConflictResolved {
		return nil, apperrors.Conflict(apperrors.CodeConflictAlreadyResolved,
			"conflict already carries a decision").
			WithParams(map[string]interface{}{"conflictId": conflictID.String()})
	}

	pkg, err := r.packages.Get(ctx, conflict.ImportPackageID)
	if err != nil {
		return nil, err
	}
	if pkg.Status != domain.StatusReviewingConflicts {
		return nil, apperrors.ErrStateTransition(string(pkg.Status), string(domain.StatusReviewingConflicts))
	}

	var (
		masterID       *uuid.UUID
		mergeMapping   map[string]int
		mergePerformed bool
	)
	switch req.Resolution {
	case domain.ResolutionMerge, domain.ResolutionLinkToExisting:
		master, err := r.chooseMaster(ctx, conflict, req.MasterEntityID)
		if err != nil {
			return nil, err
		}
		masterID = &master
		if req.Resolution == domain.ResolutionMerge {
			mergeMapping, err = r.merge(ctx, conflict, master)
			if err != nil {
				return nil, err
			}
			mergePerformed = true
		}
		// The staged row leaves the commit set; commits translate any FK
		// pointing at it to the production master.
		if err := r.staging.MarkSkipped(ctx, conflict.ImportPackageID,
			conflict.EntityType.EntityType(), conflict.StagingEntityID, master); err != nil {
			return nil, err
		}

	case domain.ResolutionKeepSeparate, domain.ResolutionCreateNew:
		fp, err := r.stagedFingerprint(ctx, conflict)
		if err != nil {
			return nil, err
		}
		for _, cand := range conflict.Candidates {
			if err := r.conflicts.Suppress(ctx, conflict.EntityType, cand.EntityID, fp, conflictID, actor); err != nil {
				return nil, err
			}
		}
	}

	resolved, err := r.conflicts.MarkResolved(ctx, conflictID, req.Resolution,
		req.Justification, masterID, mergeMapping, actor, r.now().UTC())
	if err != nil {
		return nil, err
	}

	open, err := r.conflicts.CountUnresolved(ctx, conflict.ImportPackageID)
	if err != nil {
		return nil, err
	}
	status := pkg.Status
	if open == 0 {
		if pkg, err = r.packages.UpdateStatus(ctx, conflict.ImportPackageID,
			domain.StatusReviewingConflicts, domain.StatusReadyToCommit, nil); err != nil {
			return nil, err
		}
		status = pkg.Status
	}

	logger.Info("Conflict resolved",
		zap.String("conflict_id", conflictID.String()),
		zap.String("package_id", conflict.ImportPackageID.String()),
		zap.String("resolution", string(req.Resolution)),
		zap.Int("remaining", open),
	)
	r.audit.ConflictAction(ctx, actor, "conflict.resolve", conflictID, map[string]interface{}{
		"resolution": string(req.Resolution),
		"package_id": conflict.ImportPackageID.String(),
		"remaining":  open,
	})
	r.events.ConflictEvent(ctx, domain.EventConflictResolved, resolved, actor)

	return &domain.ResolveResult{
		Conflict:       resolved,
		PackageStatus:  status,
		MergePerformed: mergePerformed,
	}, nil
}

// chooseMaster picks the requested or suggested production master and checks
// it is a live row.
func (r *Resolver) chooseMaster(ctx context.Context, c *domain.Conflict, requested *uuid.UUID) (uuid.UUID, error) {
	master := requested
	if master == nil {
		master = c.SuggestedMasterID
	}
	if master == nil {
		return uuid.Nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"this resolution requires a master entity")
	}
	ok, err := r.production.Exists(ctx, c.EntityType, *master)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, apperrors.New(apperrors.CodeConflictNotFound,
			"chosen master is not a live production record", http.StatusUnprocessableEntity).
			WithParams(map[string]interface{}{"masterId": master.String()})
	}
	return *master, nil
}

// merge reconciles the staged record into the master and repoints production
// FKs from the staged original id.
func (r *Resolver) merge(ctx context.Context, c *domain.Conflict, master uuid.UUID) (map[string]int, error) {
	switch c.EntityType {
	case domain.ConflictPerson:
		rec, err := findStaged(ctx, r.staging.Persons, c.ImportPackageID, c.StagingEntityID,
			func(p domain.PersonRecord) uuid.UUID { return p.OriginalID })
		if err != nil {
			return nil, err
		}
		return r.production.MergePerson(ctx, master, c.StagingEntityID, rec)
	case domain.ConflictBuilding:
		rec, err := findStaged(ctx, r.staging.Buildings, c.ImportPackageID, c.StagingEntityID,
			func(b domain.BuildingRecord) uuid.UUID { return b.OriginalID })
		if err != nil {
			return nil, err
		}
		return r.production.MergeBuilding(ctx, master, c.StagingEntityID, rec)
	case domain.ConflictPropertyUnit:
		rec, err := findStaged(ctx, r.staging.PropertyUnits, c.ImportPackageID, c.StagingEntityID,
			func(u domain.PropertyUnitRecord) uuid.UUID { return u.OriginalID })
		if err != nil {
			return nil, err
		}
		return r.production.MergePropertyUnit(ctx, master, c.StagingEntityID, rec)
	}
	return nil, fmt.Errorf("unexpected conflict entity type %q", c.EntityType)
}

// stagedFingerprint recomputes the detection fingerprint of the conflicted
// staged row, for suppression marks.
func (r *Resolver) stagedFingerprint(ctx context.Context, c *domain.Conflict) (string, error) {
	switch c.EntityType {
	case domain.ConflictPerson:
		rec, err := findStaged(ctx, r.staging.Persons, c.ImportPackageID, c.StagingEntityID,
			func(p domain.PersonRecord) uuid.UUID { return p.OriginalID })
		if err != nil {
			return "", err
		}
		return PersonFingerprint(rec), nil
	case domain.ConflictBuilding:
		rec, err := findStaged(ctx, r.staging.Buildings, c.ImportPackageID, c.StagingEntityID,
			func(b domain.BuildingRecord) uuid.UUID { return b.OriginalID })
		if err != nil {
			return "", err
		}
		code, err := identifier.ComposeBuildingCode(
			rec.GovernorateCode, rec.DistrictCode, rec.SubDistrictCode,
			rec.CommunityCode, rec.NeighborhoodCode, rec.BuildingNumber)
		if err != nil {
			return "", err
		}
		return BuildingFingerprint(code), nil
	case domain.ConflictPropertyUnit:
		rec, err := findStaged(ctx, r.staging.PropertyUnits, c.ImportPackageID, c.StagingEntityID,
			func(u domain.PropertyUnitRecord) uuid.UUID { return u.OriginalID })
		if err != nil {
			return "", err
		}
		code, err := r.stagedBuildingCode(ctx, c.ImportPackageID, rec.OriginalBuildingID)
		if err != nil {
			return "", err
		}
		return UnitFingerprint(code, rec.UnitIdentifier), nil
	}
	return "", fmt.Errorf("unexpected conflict entity type %q", c.EntityType)
}

func (r *Resolver) stagedBuildingCode(ctx context.Context, packageID, originalBuildingID uuid.UUID) (string, error) {
	rec, err := findStaged(ctx, r.staging.Buildings, packageID, originalBuildingID,
		func(b domain.BuildingRecord) uuid.UUID { return b.OriginalID })
	if err != nil {
		return "", err
	}
	return identifier.ComposeBuildingCode(
		rec.GovernorateCode, rec.DistrictCode, rec.SubDistrictCode,
		rec.CommunityCode, rec.NeighborhoodCode, rec.BuildingNumber)
}

// findStaged locates one staged record by its original entity id.
func findStaged[T any](ctx context.Context,
	read func(context.Context, uuid.UUID) ([]StagedRecord[T], error),
	packageID, originalID uuid.UUID, idOf func(T) uuid.UUID) (T, error) {

	var zero T
	rows, err := read(ctx, packageID)
	if err != nil {
		return zero, err
	}
	for _, row := range rows {
		if idOf(row.Record) == originalID {
			return row.Record, nil
		}
	}
	return zero, apperrors.New(apperrors.CodeStagingRowsNotLoaded,
		"conflicted staged row is no longer in staging", http.StatusConflict).
		WithParams(map[string]interface{}{"originalId": originalID.String()})
}
