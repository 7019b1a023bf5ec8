package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/intake"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

type sweepPackages struct {
	rows     []*domain.ImportPackage
	archived map[uuid.UUID]string
}

func newSweepPackages(rows ...*domain.ImportPackage) *sweepPackages {
	return &sweepPackages{rows: rows, archived: make(map[uuid.UUID]string)}
}

func (f *sweepPackages) Create(context.Context, *domain.ImportPackage) error {
	return errors.New("not implemented")
}

func (f *sweepPackages) Get(_ context.Context, id uuid.UUID) (*domain.ImportPackage, error) {
	for _, pkg := range f.rows {
		if pkg.ID == id {
			return pkg, nil
		}
	}
	return nil, apperrors.ErrPackageNotFound(id.String())
}

func (f *sweepPackages) List(_ context.Context, filter intake.PackageFilter) (*domain.PackageList, error) {
	var matched []*domain.ImportPackage
	for _, pkg := range f.rows {
		if filter.Status == nil || pkg.Status == *filter.Status {
			matched = append(matched, pkg)
		}
	}
	out := &domain.PackageList{TotalCount: len(matched)}
	for i := filter.Offset; i < len(matched); i++ {
		if filter.Limit > 0 && len(out.Items) == filter.Limit {
			break
		}
		out.Items = append(out.Items, matched[i])
	}
	return out, nil
}

func (f *sweepPackages) UpdateStatus(context.Context, uuid.UUID, domain.PackageStatus, domain.PackageStatus, *intake.PackageUpdate) (*domain.ImportPackage, error) {
	return nil, errors.New("not implemented")
}

func (f *sweepPackages) NextPackageNumber(context.Context, time.Time) (string, error) {
	return "", errors.New("not implemented")
}

func (f *sweepPackages) MarkArchived(_ context.Context, id uuid.UUID, archivePath string, archivedAt time.Time) error {
	for _, pkg := range f.rows {
		if pkg.ID == id {
			pkg.IsArchived = true
			pkg.ArchivePath = archivePath
			at := archivedAt
			pkg.ArchivedDate = &at
			f.archived[id] = archivePath
			return nil
		}
	}
	return apperrors.ErrPackageNotFound(id.String())
}

type sweepArchiver struct {
	failures int
	calls    int
}

func (f *sweepArchiver) Archive(srcPath string, packageID uuid.UUID, committedAt time.Time) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("archive volume offline")
	}
	return "/archives/" + committedAt.UTC().Format("2006/01") + "/" + packageID.String() + ".uhc", nil
}

type sweepAudit struct {
	actions []string
}

func (f *sweepAudit) PackageAction(_ context.Context, _, action string, _ uuid.UUID, _ map[string]interface{}) {
	f.actions = append(f.actions, action)
}

func (f *sweepAudit) ConflictAction(context.Context, string, string, uuid.UUID, map[string]interface{}) {
}

func partialPackage(committed time.Time) *domain.ImportPackage {
	return &domain.ImportPackage{
		ID:            uuid.New(),
		PackageNumber: "PKG-2026-0001",
		Status:        domain.StatusPartiallyCompleted,
		StoragePath:   "/spool/pkg.uhc",
		CommittedDate: &committed,
	}
}

func TestArchiveSweepArgsKind(t *testing.T) {
	t.Parallel()

	require.Equal(t, "archive_sweep", ArchiveSweepArgs{}.Kind())
}

func TestArchiveSweepArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := ArchiveSweepArgs{}.InsertOpts()
	require.Equal(t, river.QueueDefault, opts.Queue)
	require.Equal(t, 1, opts.MaxAttempts)
	require.Equal(t, 24*time.Hour, opts.UniqueOpts.ByPeriod)
	require.True(t, opts.UniqueOpts.ByQueue)
	require.True(t, opts.UniqueOpts.ByArgs)
}

func TestArchiveSweepWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	var w *ArchiveSweepWorker
	err := w.Work(context.Background(), &river.Job[ArchiveSweepArgs]{})
	require.ErrorContains(t, err, "not initialized")

	w = &ArchiveSweepWorker{}
	err = w.Work(context.Background(), &river.Job[ArchiveSweepArgs]{})
	require.ErrorContains(t, err, "not initialized")
}

func TestArchiveSweepWorker_ArchivesPartiallyCompleted(t *testing.T) {
	t.Parallel()

	committed := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	pkg := partialPackage(committed)
	packages := newSweepPackages(pkg)
	archiver := &sweepArchiver{}
	audit := &sweepAudit{}

	w := NewArchiveSweepWorker(packages, archiver, audit)
	require.NoError(t, w.Work(context.Background(), &river.Job[ArchiveSweepArgs]{}))

	require.True(t, pkg.IsArchived)
	require.Contains(t, pkg.ArchivePath, "2026/08")
	require.NotNil(t, pkg.ArchivedDate)
	require.Equal(t, []string{"package.archive"}, audit.actions)
	// Status stays terminal; the sweep only fills in the archive fields.
	require.Equal(t, domain.StatusPartiallyCompleted, pkg.Status)
}

func TestArchiveSweepWorker_RetriesTransientFailure(t *testing.T) {
	t.Parallel()

	pkg := partialPackage(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	packages := newSweepPackages(pkg)
	archiver := &sweepArchiver{failures: 1}

	w := NewArchiveSweepWorker(packages, archiver, &sweepAudit{})
	require.NoError(t, w.Work(context.Background(), &river.Job[ArchiveSweepArgs]{}))

	require.Equal(t, 2, archiver.calls)
	require.True(t, pkg.IsArchived)
}

func TestArchiveSweepWorker_SkipsArchivedPackages(t *testing.T) {
	t.Parallel()

	pkg := partialPackage(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	pkg.IsArchived = true
	packages := newSweepPackages(pkg)
	archiver := &sweepArchiver{}

	w := NewArchiveSweepWorker(packages, archiver, &sweepAudit{})
	require.NoError(t, w.Work(context.Background(), &river.Job[ArchiveSweepArgs]{}))

	require.Zero(t, archiver.calls)
}
