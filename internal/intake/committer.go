package intake

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/archive"
	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/identifier"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// Committer moves approved staged rows into production in one transaction,
// then files the container away.
type Committer struct {
	packages  PackageStore
	staging   StagingStore
	prod      ProductionStore
	conflicts ConflictStore
	blobs     BlobStore
	archiver  PackageArchiver
	events    EventRecorder
	audit     AuditSink
	now       func() time.Time
}

// NewCommitter wires a Committer.
func NewCommitter(packages PackageStore, staging StagingStore, prod ProductionStore,
	conflicts ConflictStore, blobs BlobStore, archiver PackageArchiver,
	events EventRecorder, audit AuditSink) *Committer {
	return &Committer{
		packages:  packages,
		staging:   staging,
		prod:      prod,
		conflicts: conflicts,
		blobs:     blobs,
		archiver:  archiver,
		events:    events,
		audit:     audit,
		now:       time.Now,
	}
}

// Commit writes every approved staged row to production atomically. All rows
// land or none do; a failed attempt leaves the package in COMMIT_FAILED and
// can be retried.
func (c *Committer) Commit(ctx context.Context, packageID uuid.UUID, actor string) (*domain.CommitReport, error) {
	pkg, err := c.packages.Get(ctx, packageID)
	if err != nil {
		return nil, err
	}

	open, err := c.conflicts.CountUnresolved(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if open > 0 || pkg.Status == domain.StatusReviewingConflicts {
		return nil, apperrors.ErrConflictUnresolved(packageID.String(), open)
	}
	if pkg.Status != domain.StatusReadyToCommit && pkg.Status != domain.StatusCommitFailed {
		return nil, apperrors.ErrStateTransition(string(pkg.Status), string(domain.StatusCommitting))
	}

	if pkg, err = c.packages.UpdateStatus(ctx, packageID, pkg.Status, domain.StatusCommitting, nil); err != nil {
		return nil, err
	}

	started := c.now().UTC()
	run := &commitRun{
		committer: c,
		pkg:       pkg,
		report: &domain.CommitReport{
			PackageID: packageID,
			StartedAt: started,
			PerType:   map[domain.EntityType]domain.TypeOutcome{},
			IDMap:     map[string]string{},
		},
		idMap: map[uuid.UUID]uuid.UUID{},
	}

	txErr := run.load(ctx)
	if txErr == nil {
		txErr = c.prod.WithinCommit(ctx, func(tx CommitTx) error {
			return run.writeAll(ctx, tx)
		})
	}
	run.closeArchive()
	run.report.DurationMS = time.Since(started).Milliseconds()

	if txErr != nil {
		return c.failed(ctx, packageID, run.report, txErr, actor)
	}
	return c.succeeded(ctx, pkg, run.report, started, actor)
}

// failed records a COMMIT_FAILED outcome; the production write was rolled
// back whole.
func (c *Committer) failed(ctx context.Context, packageID uuid.UUID,
	report *domain.CommitReport, cause error, actor string) (*domain.CommitReport, error) {

	report.Success = false
	report.PackageStatus = domain.StatusCommitFailed
	report.Errors = append(report.Errors, cause.Error())

	pkg, err := c.packages.UpdateStatus(ctx, packageID,
		domain.StatusCommitting, domain.StatusCommitFailed, &PackageUpdate{CommitReport: report})
	if err != nil {
		logger.Error("Could not record commit failure",
			zap.String("package_id", packageID.String()), zap.Error(err))
		return report, cause
	}

	logger.Error("Package commit failed",
		zap.String("package_id", packageID.String()),
		zap.String("package_number", pkg.PackageNumber),
		zap.Error(cause),
	)
	c.audit.PackageAction(ctx, actor, "package.commit", packageID, map[string]interface{}{
		"success": false, "error": cause.Error(),
	})
	c.events.PackageEvent(ctx, domain.EventPackageCommitFailed, pkg, actor, cause.Error())
	return report, cause
}

// succeeded stamps the commit and files the container into the archive tree.
// An archiving failure downgrades the outcome to PARTIALLY_COMPLETED; the
// committed data stands.
func (c *Committer) succeeded(ctx context.Context, pkg *domain.ImportPackage,
	report *domain.CommitReport, committedAt time.Time, actor string) (*domain.CommitReport, error) {

	report.Success = true
	report.Merges = c.mergeSummaries(ctx, pkg.ID)

	target := domain.StatusCompleted
	upd := &PackageUpdate{CommittedDate: &committedAt, CommitReport: report}

	archivePath, archiveErr := c.archiver.Archive(pkg.StoragePath, pkg.ID, committedAt)
	if archiveErr != nil {
		target = domain.StatusPartiallyCompleted
		report.Errors = append(report.Errors,
			apperrors.Wrap(archiveErr, apperrors.CodeArchiveError,
				"committed container could not be archived", http.StatusInternalServerError).Error())
		logger.Warn("Container archiving failed after commit",
			zap.String("package_id", pkg.ID.String()), zap.Error(archiveErr))
	} else {
		archived := true
		upd.IsArchived = &archived
		upd.ArchivePath = &archivePath
		upd.ArchivedDate = &committedAt
	}
	report.PackageStatus = target

	pkg, err := c.packages.UpdateStatus(ctx, pkg.ID, domain.StatusCommitting, target, upd)
	if err != nil {
		return report, err
	}

	logger.Info("Package committed",
		zap.String("package_id", pkg.ID.String()),
		zap.String("package_number", pkg.PackageNumber),
		zap.String("status", string(target)),
		zap.Int64("took_ms", report.DurationMS),
	)
	c.audit.PackageAction(ctx, actor, "package.commit", pkg.ID, map[string]interface{}{
		"success": true, "status": string(target),
	})
	c.events.PackageEvent(ctx, domain.EventPackageCommitted, pkg, actor, "")
	return report, nil
}

// mergeSummaries folds the package's MERGE resolutions into the report.
func (c *Committer) mergeSummaries(ctx context.Context, packageID uuid.UUID) []domain.MergeSummary {
	conflicts, err := c.conflicts.ListByPackage(ctx, packageID)
	if err != nil {
		logger.Warn("Could not list conflicts for the commit report",
			zap.String("package_id", packageID.String()), zap.Error(err))
		return nil
	}
	var merges []domain.MergeSummary
	for _, cf := range conflicts {
		if cf.Resolution == nil || *cf.Resolution != domain.ResolutionMerge || cf.ChosenMasterID == nil {
			continue
		}
		merges = append(merges, domain.MergeSummary{
			EntityType:      cf.EntityType,
			StagingEntityID: cf.StagingEntityID,
			MasterID:        *cf.ChosenMasterID,
			RepointedTables: cf.MergeMapping,
		})
	}
	return merges
}

// commitRun carries the working state of one commit attempt.
type commitRun struct {
	committer *Committer
	pkg       *domain.ImportPackage
	report    *domain.CommitReport
	// idMap translates original archive ids to production ids. Skipped rows
	// map to the production master chosen at resolution.
	idMap  map[uuid.UUID]uuid.UUID
	reader *archive.Reader

	buildings []StagedRecord[domain.BuildingRecord]
	units     []StagedRecord[domain.PropertyUnitRecord]
	persons   []StagedRecord[domain.PersonRecord]
	homes     []StagedRecord[domain.HouseholdRecord]
	relations []StagedRecord[domain.PersonPropertyRelationRecord]
	evidences []StagedRecord[domain.EvidenceRecord]
	surveys   []StagedRecord[domain.SurveyRecord]
	claims    []StagedRecord[domain.ClaimRecord]
	documents []StagedRecord[domain.DocumentRecord]
	referrals []StagedRecord[domain.ReferralRecord]
}

// load pulls the staged rows and opens the container for attachment bytes.
func (r *commitRun) load(ctx context.Context) error {
	ctxErr := func(err error) error {
		return apperrors.Wrap(err, apperrors.CodeStagingRowsNotLoaded,
			"staged rows could not be read", http.StatusInternalServerError)
	}
	s := r.committer.staging
	var err error
	if r.buildings, err = s.Buildings(ctx, r.pkg.ID); err != nil {
		return ctxErr(err)
	}
	if r.units, err = s.PropertyUnits(ctx, r.pkg.ID); err != nil {
		return ctxErr(err)
	}
	if r.persons, err = s.Persons(ctx, r.pkg.ID); err != nil {
		return ctxErr(err)
	}
	if r.homes, err = s.Households(ctx, r.pkg.ID); err != nil {
		return ctxErr(err)
	}
	if r.relations, err = s.Relations(ctx, r.pkg.ID); err != nil {
		return ctxErr(err)
	}
	if r.evidences, err = s.Evidences(ctx, r.pkg.ID); err != nil {
		return ctxErr(err)
	}
	if r.surveys, err = s.Surveys(ctx, r.pkg.ID); err != nil {
		return ctxErr(err)
	}
	if r.claims, err = s.Claims(ctx, r.pkg.ID); err != nil {
		return ctxErr(err)
	}
	if r.documents, err = s.Documents(ctx, r.pkg.ID); err != nil {
		return ctxErr(err)
	}
	if r.referrals, err = s.Referrals(ctx, r.pkg.ID); err != nil {
		return ctxErr(err)
	}
	return nil
}

// openArchive opens the stored container on the first attachment-store miss.
// A package whose attachments all dedup never touches the container.
func (r *commitRun) openArchive() (*archive.Reader, error) {
	if r.reader != nil {
		return r.reader, nil
	}
	reader, err := archive.Open(r.pkg.StoragePath)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeArchiveError,
			"stored package container could not be opened", http.StatusInternalServerError)
	}
	r.reader = reader
	return reader, nil
}

func (r *commitRun) closeArchive() {
	if r.reader != nil {
		r.reader.Close()
		r.reader = nil
	}
}

// writeAll inserts every approved row in topological order inside the open
// transaction.
func (r *commitRun) writeAll(ctx context.Context, tx CommitTx) error {
	now := r.committer.now().UTC()
	pid := r.pkg.ID

	err := commitEntity(ctx, r, tx, domain.EntityBuilding, r.buildings,
		func(b domain.BuildingRecord) uuid.UUID { return b.OriginalID },
		func(id uuid.UUID, rec domain.BuildingRecord) error {
			code, err := identifier.ComposeBuildingCode(
				rec.GovernorateCode, rec.DistrictCode, rec.SubDistrictCode,
				rec.CommunityCode, rec.NeighborhoodCode, rec.BuildingNumber)
			if err != nil {
				return apperrors.Wrap(err, apperrors.CodeFkUnresolvable,
					"staged building carries an invalid code", http.StatusConflict)
			}
			return tx.InsertBuilding(ctx, id, rec, code, pid)
		})
	if err != nil {
		return err
	}

	err = commitEntity(ctx, r, tx, domain.EntityPropertyUnit, r.units,
		func(u domain.PropertyUnitRecord) uuid.UUID { return u.OriginalID },
		func(id uuid.UUID, rec domain.PropertyUnitRecord) error {
			buildingID, err := r.translate(domain.EntityBuilding, rec.OriginalBuildingID)
			if err != nil {
				return err
			}
			composite := identifier.ComposeUnitIdentifier(buildingID, rec.UnitIdentifier)
			return tx.InsertPropertyUnit(ctx, id, rec, buildingID, composite, pid)
		})
	if err != nil {
		return err
	}

	err = commitEntity(ctx, r, tx, domain.EntityPerson, r.persons,
		func(p domain.PersonRecord) uuid.UUID { return p.OriginalID },
		func(id uuid.UUID, rec domain.PersonRecord) error {
			return tx.InsertPerson(ctx, id, rec, pid)
		})
	if err != nil {
		return err
	}

	err = commitEntity(ctx, r, tx, domain.EntityHousehold, r.homes,
		func(h domain.HouseholdRecord) uuid.UUID { return h.OriginalID },
		func(id uuid.UUID, rec domain.HouseholdRecord) error {
			headID, err := r.translate(domain.EntityPerson, rec.OriginalHeadOfHouseholdID)
			if err != nil {
				return err
			}
			return tx.InsertHousehold(ctx, id, rec, headID, pid)
		})
	if err != nil {
		return err
	}

	err = commitEntity(ctx, r, tx, domain.EntityPersonPropertyRelation, r.relations,
		func(rel domain.PersonPropertyRelationRecord) uuid.UUID { return rel.OriginalID },
		func(id uuid.UUID, rec domain.PersonPropertyRelationRecord) error {
			personID, err := r.translate(domain.EntityPerson, rec.OriginalPersonID)
			if err != nil {
				return err
			}
			unitID, err := r.translate(domain.EntityPropertyUnit, rec.OriginalPropertyUnitID)
			if err != nil {
				return err
			}
			return tx.InsertRelation(ctx, id, rec, personID, unitID, pid)
		})
	if err != nil {
		return err
	}

	err = commitEntity(ctx, r, tx, domain.EntityEvidence, r.evidences,
		func(e domain.EvidenceRecord) uuid.UUID { return e.OriginalID },
		func(id uuid.UUID, rec domain.EvidenceRecord) error {
			personID, err := r.translate(domain.EntityPerson, rec.OriginalPersonID)
			if err != nil {
				return err
			}
			blobPath, err := r.storeAttachment(rec.BlobSHA256, rec.BlobSizeBytes)
			if err != nil {
				return err
			}
			return tx.InsertEvidence(ctx, id, rec, personID, blobPath, pid)
		})
	if err != nil {
		return err
	}

	err = commitEntity(ctx, r, tx, domain.EntitySurvey, r.surveys,
		func(s domain.SurveyRecord) uuid.UUID { return s.OriginalID },
		func(id uuid.UUID, rec domain.SurveyRecord) error {
			buildingID, err := r.translate(domain.EntityBuilding, rec.OriginalBuildingID)
			if err != nil {
				return err
			}
			return tx.InsertSurvey(ctx, id, rec, buildingID, pid)
		})
	if err != nil {
		return err
	}

	err = commitEntity(ctx, r, tx, domain.EntityClaim, r.claims,
		func(cl domain.ClaimRecord) uuid.UUID { return cl.OriginalID },
		func(id uuid.UUID, rec domain.ClaimRecord) error {
			unitID, err := r.translate(domain.EntityPropertyUnit, rec.OriginalPropertyUnitID)
			if err != nil {
				return err
			}
			claimantID, err := r.translate(domain.EntityPerson, rec.OriginalPrimaryClaimantID)
			if err != nil {
				return err
			}
			number, err := tx.NextClaimNumber(ctx, now)
			if err != nil {
				return err
			}
			// Field devices send whatever lifecycle value they hold; every
			// committed claim starts its registry life at the front of the
			// review queue.
			rec.StatusCode = domain.ClaimStatusDraftPendingSubmission
			return tx.InsertClaim(ctx, id, rec, unitID, claimantID, number, pid)
		})
	if err != nil {
		return err
	}

	err = commitEntity(ctx, r, tx, domain.EntityDocument, r.documents,
		func(d domain.DocumentRecord) uuid.UUID { return d.OriginalID },
		func(id uuid.UUID, rec domain.DocumentRecord) error {
			claimID, err := r.translate(domain.EntityClaim, rec.OriginalClaimID)
			if err != nil {
				return err
			}
			blobPath, err := r.storeAttachment(rec.BlobSHA256, rec.BlobSizeBytes)
			if err != nil {
				return err
			}
			return tx.InsertDocument(ctx, id, rec, claimID, blobPath, pid)
		})
	if err != nil {
		return err
	}

	return commitEntity(ctx, r, tx, domain.EntityReferral, r.referrals,
		func(rf domain.ReferralRecord) uuid.UUID { return rf.OriginalID },
		func(id uuid.UUID, rec domain.ReferralRecord) error {
			claimID, err := r.translate(domain.EntityClaim, rec.OriginalClaimID)
			if err != nil {
				return err
			}
			return tx.InsertReferral(ctx, id, rec, claimID, pid)
		})
}

// commitEntity writes one entity type: skipped rows feed the id map, approved
// rows get fresh production ids, everything else stays behind.
func commitEntity[T any](ctx context.Context, r *commitRun, tx CommitTx,
	et domain.EntityType, rows []StagedRecord[T],
	idOf func(T) uuid.UUID, insert func(uuid.UUID, T) error) error {

	sorted := make([]StagedRecord[T], len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		return idOf(sorted[i].Record).String() < idOf(sorted[j].Record).String()
	})

	outcome := r.report.PerType[et]
	for _, row := range sorted {
		originalID := idOf(row.Record)

		if row.ValidationStatus == domain.RowSkipped {
			if row.CommittedEntityID != nil {
				r.idMap[originalID] = *row.CommittedEntityID
				r.report.IDMap[originalID.String()] = row.CommittedEntityID.String()
			}
			outcome.Skipped++
			continue
		}
		if !row.ApprovedForCommit {
			outcome.Failed++
			continue
		}
		outcome.Approved++

		newID := uuid.Must(uuid.NewV7())
		if err := insert(newID, row.Record); err != nil {
			r.report.PerType[et] = outcome
			return err
		}
		if err := tx.SetStagedCommitted(ctx, r.pkg.ID, et, originalID, newID); err != nil {
			r.report.PerType[et] = outcome
			return err
		}
		r.idMap[originalID] = newID
		r.report.IDMap[originalID.String()] = newID.String()
		outcome.Committed++
	}
	r.report.PerType[et] = outcome
	return nil
}

// translate maps an original archive id to its production id. A miss means a
// child survived validation while its parent did not reach production.
func (r *commitRun) translate(et domain.EntityType, originalID uuid.UUID) (uuid.UUID, error) {
	if id, ok := r.idMap[originalID]; ok {
		return id, nil
	}
	return uuid.Nil, apperrors.New(apperrors.CodeFkUnresolvable,
		"referenced "+string(et)+" did not reach production", http.StatusConflict).
		WithParams(map[string]interface{}{
			"entityType": string(et),
			"originalId": originalID.String(),
		})
}

// storeAttachment places one attachment in the content-addressed store,
// deduplicating on the digest, and returns its blob path.
func (r *commitRun) storeAttachment(sha string, sizeBytes int64) (string, error) {
	if sha == "" {
		return "", nil
	}
	blobs := r.committer.blobs

	exists, err := blobs.Has(sha)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeBlobStoreError,
			"attachment store probe failed", http.StatusInternalServerError)
	}
	r.report.Dedup.AttachmentsTotal++
	if exists {
		r.report.Dedup.AttachmentsDeduplicated++
		r.report.Dedup.DeduplicationBytesSaved += sizeBytes
		return blobs.Path(sha), nil
	}

	reader, err := r.openArchive()
	if err != nil {
		return "", err
	}
	content, err := reader.Attachment(sha)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeBlobStoreError,
			"attachment missing from the package container", http.StatusInternalServerError).
			WithParams(map[string]interface{}{"sha256": sha})
	}
	path, err := blobs.Put(content, sha)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeBlobStoreError,
			"attachment could not be stored", http.StatusInternalServerError).
			WithParams(map[string]interface{}{"sha256": sha})
	}
	return path, nil
}
