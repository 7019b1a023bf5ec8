package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"uhc-registry.io/registry/ent"
	"uhc-registry.io/registry/ent/conflictresolution"
	"uhc-registry.io/registry/ent/duplicatesuppression"
	"uhc-registry.io/registry/ent/importpackage"
	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/intake"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

// Conflicts is the Ent-backed intake.ConflictStore. The conflict_count and
// unresolved_conflict_count columns on the import package are maintained
// here, in the same transaction as the rows they count.
type Conflicts struct {
	client *ent.Client
}

// NewConflicts creates the conflict repository.
func NewConflicts(client *ent.Client) *Conflicts {
	return &Conflicts{client: client}
}

var _ intake.ConflictStore = (*Conflicts)(nil)

// DeleteUnresolved clears a package's open conflicts before a detection
// re-run. Resolved conflicts stay: their decisions and merge records remain
// part of the package's history.
func (r *Conflicts) DeleteUnresolved(ctx context.Context, packageID uuid.UUID) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		_, err := tx.ConflictResolution.Delete().
			Where(
				conflictresolution.ImportPackageID(packageID),
				conflictresolution.StatusEQ(conflictresolution.Status(domain.ConflictUnresolved)),
			).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete unresolved conflicts: %w", err)
		}
		return syncPackageConflictCounts(ctx, tx, packageID)
	})
}

// CreateMany inserts a detection run's findings and refreshes the package
// counters.
func (r *Conflicts) CreateMany(ctx context.Context, conflicts []*domain.Conflict) error {
	if len(conflicts) == 0 {
		return nil
	}
	packageID := conflicts[0].ImportPackageID
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		builders := make([]*ent.ConflictResolutionCreate, 0, len(conflicts))
		for _, c := range conflicts {
			create := tx.ConflictResolution.Create().
				SetID(c.ID).
				SetImportPackageID(c.ImportPackageID).
				SetEntityType(conflictresolution.EntityType(c.EntityType)).
				SetStagingEntityID(c.StagingEntityID).
				SetScore(c.Score).
				SetCandidates(c.Candidates).
				SetStatus(conflictresolution.Status(c.Status))
			if c.SuggestedMasterID != nil {
				create.SetSuggestedMasterID(*c.SuggestedMasterID)
			}
			builders = append(builders, create)
		}
		if err := tx.ConflictResolution.CreateBulk(builders...).Exec(ctx); err != nil {
			return fmt.Errorf("create conflicts: %w", err)
		}
		return syncPackageConflictCounts(ctx, tx, packageID)
	})
}

// Get loads one conflict.
func (r *Conflicts) Get(ctx context.Context, id uuid.UUID) (*domain.Conflict, error) {
	row, err := r.client.ConflictResolution.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeConflictNotFound, "conflict not found").
				WithParams(map[string]interface{}{"conflictId": id.String()})
		}
		return nil, fmt.Errorf("get conflict: %w", err)
	}
	return conflictToDomain(row), nil
}

// ListByPackage returns a package's conflicts, unresolved first, highest
// score first within each group.
func (r *Conflicts) ListByPackage(ctx context.Context, packageID uuid.UUID) ([]*domain.Conflict, error) {
	rows, err := r.client.ConflictResolution.Query().
		Where(conflictresolution.ImportPackageID(packageID)).
		Order(
			ent.Asc(conflictresolution.FieldStatus),
			ent.Desc(conflictresolution.FieldScore),
			ent.Asc(conflictresolution.FieldStagingEntityID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conflicts: %w", err)
	}
	out := make([]*domain.Conflict, 0, len(rows))
	for _, row := range rows {
		out = append(out, conflictToDomain(row))
	}
	return out, nil
}

// CountUnresolved counts a package's open conflicts.
func (r *Conflicts) CountUnresolved(ctx context.Context, packageID uuid.UUID) (int, error) {
	n, err := r.client.ConflictResolution.Query().
		Where(
			conflictresolution.ImportPackageID(packageID),
			conflictresolution.StatusEQ(conflictresolution.Status(domain.ConflictUnresolved)),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unresolved conflicts: %w", err)
	}
	return n, nil
}

// MarkResolved applies a reviewer decision write-once under a row lock.
func (r *Conflicts) MarkResolved(ctx context.Context, id uuid.UUID, res domain.Resolution,
	justification string, masterID *uuid.UUID, mergeMapping map[string]int,
	actor string, at time.Time) (*domain.Conflict, error) {

	var out *domain.Conflict
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		row, err := tx.ConflictResolution.Query().
			Where(conflictresolution.ID(id)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeConflictNotFound, "conflict not found").
					WithParams(map[string]interface{}{"conflictId": id.String()})
			}
			return fmt.Errorf("lock conflict: %w", err)
		}
		if domain.ConflictStatus(row.Status) == domain.ConflictResolved {
			return apperrors.Conflict(apperrors.CodeConflictAlreadyResolved,
				"conflict was already resolved").
				WithParams(map[string]interface{}{"conflictId": id.String()})
		}

		update := row.Update().
			SetStatus(conflictresolution.Status(domain.ConflictResolved)).
			SetResolution(conflictresolution.Resolution(res)).
			SetJustification(justification).
			SetResolvedBy(actor).
			SetResolvedAt(at)
		if masterID != nil {
			update.SetChosenMasterID(*masterID)
		}
		if len(mergeMapping) > 0 {
			update.SetMergeMapping(mergeMapping)
		}
		row, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("resolve conflict: %w", err)
		}
		if err := syncPackageConflictCounts(ctx, tx, row.ImportPackageID); err != nil {
			return err
		}
		out = conflictToDomain(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IsSuppressed reports whether the pair was dismissed before with the same
// detection-key fingerprint.
func (r *Conflicts) IsSuppressed(ctx context.Context, et domain.ConflictEntityType,
	productionID uuid.UUID, fingerprint string) (bool, error) {

	found, err := r.client.DuplicateSuppression.Query().
		Where(
			duplicatesuppression.EntityTypeEQ(duplicatesuppression.EntityType(et)),
			duplicatesuppression.ProductionEntityID(productionID),
			duplicatesuppression.Fingerprint(fingerprint),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check suppression: %w", err)
	}
	return found, nil
}

// Suppress records a dismissed pair. Re-suppressing the same pair is a no-op
// upsert, not an error.
func (r *Conflicts) Suppress(ctx context.Context, et domain.ConflictEntityType,
	productionID uuid.UUID, fingerprint string, resolutionID uuid.UUID, actor string) error {

	err := r.client.DuplicateSuppression.Create().
		SetID(newUUID()).
		SetEntityType(duplicatesuppression.EntityType(et)).
		SetProductionEntityID(productionID).
		SetFingerprint(fingerprint).
		SetResolutionID(resolutionID).
		SetCreatedBy(actor).
		OnConflictColumns(
			duplicatesuppression.FieldEntityType,
			duplicatesuppression.FieldProductionEntityID,
			duplicatesuppression.FieldFingerprint,
		).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record suppression: %w", err)
	}
	return nil
}

// syncPackageConflictCounts recomputes the cached counters on the package
// row inside tx.
func syncPackageConflictCounts(ctx context.Context, tx *ent.Tx, packageID uuid.UUID) error {
	total, err := tx.ConflictResolution.Query().
		Where(conflictresolution.ImportPackageID(packageID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count conflicts: %w", err)
	}
	open, err := tx.ConflictResolution.Query().
		Where(
			conflictresolution.ImportPackageID(packageID),
			conflictresolution.StatusEQ(conflictresolution.Status(domain.ConflictUnresolved)),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count unresolved conflicts: %w", err)
	}
	_, err = tx.ImportPackage.Update().
		Where(importpackage.ID(packageID)).
		SetConflictCount(total).
		SetUnresolvedConflictCount(open).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update package conflict counters: %w", err)
	}
	return nil
}

func conflictToDomain(row *ent.ConflictResolution) *domain.Conflict {
	c := &domain.Conflict{
		ID:                row.ID,
		ImportPackageID:   row.ImportPackageID,
		EntityType:        domain.ConflictEntityType(row.EntityType),
		StagingEntityID:   row.StagingEntityID,
		Score:             row.Score,
		SuggestedMasterID: row.SuggestedMasterID,
		Candidates:        row.Candidates,
		Status:            domain.ConflictStatus(row.Status),
		Justification:     row.Justification,
		ChosenMasterID:    row.ChosenMasterID,
		MergeMapping:      row.MergeMapping,
		ResolvedBy:        row.ResolvedBy,
		ResolvedAt:        row.ResolvedAt,
		CreatedAt:         row.CreatedAt,
	}
	if row.Resolution != nil {
		res := domain.Resolution(*row.Resolution)
		c.Resolution = &res
	}
	return c
}
