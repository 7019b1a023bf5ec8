package intake

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/internal/domain"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

func serviceWithPackage(t *testing.T, status domain.PackageStatus) (*testEnv, uuid.UUID) {
	t.Helper()
	env := newTestEnv(t, ReceiverConfig{})
	id := uuid.New()
	require.NoError(t, env.packages.Create(context.Background(), &domain.ImportPackage{
		ID: id, PackageNumber: "PKG-2026-0009", Status: status,
	}))
	return env, id
}

func TestCancel_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	env, id := serviceWithPackage(t, domain.StatusPending)

	first, err := env.service.Cancel(ctx, id, "device retired", "operator", true)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCancelled, first.Status)
	require.False(t, first.AlreadyCancelled)
	require.True(t, first.CleanupPerformed)

	second, err := env.service.Cancel(ctx, id, "different reason", "operator", true)
	require.NoError(t, err)
	require.True(t, second.AlreadyCancelled)

	// The original reason stands.
	pkg, err := env.service.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "device retired", pkg.CancelledReason)
	require.Equal(t, 1, env.events.ofType(domain.EventPackageCancelled))
}

func TestCancel_AllowedFromReviewButNotFromCompleted(t *testing.T) {
	ctx := context.Background()

	env, id := serviceWithPackage(t, domain.StatusReviewingConflicts)
	res, err := env.service.Cancel(ctx, id, "superseded by re-export", "operator", false)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCancelled, res.Status)

	env, id = serviceWithPackage(t, domain.StatusCompleted)
	_, err = env.service.Cancel(ctx, id, "too late", "operator", false)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeStateTransitionInvalid, appErr.Code)
}

func TestCancel_RequiresActor(t *testing.T) {
	env, id := serviceWithPackage(t, domain.StatusPending)
	_, err := env.service.Cancel(context.Background(), id, "reason", "", false)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeNotAuthenticated, appErr.Code)
}

func TestStageOperations_RejectWhileThePackageIsBusy(t *testing.T) {
	ctx := context.Background()
	env, id := serviceWithPackage(t, domain.StatusPending)

	unlock, err := env.locker.TryLock(ctx, id)
	require.NoError(t, err)
	defer unlock()

	_, err = env.service.Load(ctx, id, "operator")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodePackageBusy, appErr.Code)

	_, err = env.service.Commit(ctx, id, "operator")
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodePackageBusy, appErr.Code)
}

func TestReport_NotAvailableBeforeCommit(t *testing.T) {
	env, id := serviceWithPackage(t, domain.StatusReadyToCommit)
	_, err := env.service.Report(context.Background(), id)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeReportNotAvailable, appErr.Code)
}

func TestGet_UnknownPackage(t *testing.T) {
	env := newTestEnv(t, ReceiverConfig{})
	_, err := env.service.Get(context.Background(), uuid.New())
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodePackageNotFound, appErr.Code)
}
