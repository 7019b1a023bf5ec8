package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"

	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

func TestPackageIngestArgsKind(t *testing.T) {
	t.Parallel()

	require.Equal(t, "package_ingest", PackageIngestArgs{}.Kind())
}

func TestPackageIngestArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := PackageIngestArgs{}.InsertOpts()
	require.Equal(t, river.QueueDefault, opts.Queue)
	require.Equal(t, 4, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByQueue)
	require.True(t, opts.UniqueOpts.ByArgs)
}

func TestPackageIngestWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *PackageIngestWorker
		err := w.Work(context.Background(), &river.Job[PackageIngestArgs]{})
		require.ErrorContains(t, err, "not initialized")
	})

	t.Run("nil service", func(t *testing.T) {
		w := &PackageIngestWorker{}
		err := w.Work(context.Background(), &river.Job[PackageIngestArgs]{})
		require.ErrorContains(t, err, "not initialized")
	})
}

func TestCancelOnTerminal(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		require.NoError(t, cancelOnTerminal(nil))
	})

	t.Run("plain errors stay retryable", func(t *testing.T) {
		err := errors.New("connection reset")
		require.Equal(t, err, cancelOnTerminal(err))
	})

	t.Run("busy package stays retryable", func(t *testing.T) {
		err := apperrors.ErrPackageBusy("9a1b")
		require.Equal(t, err, cancelOnTerminal(err))
	})

	t.Run("state transition cancels the job", func(t *testing.T) {
		orig := apperrors.ErrStateTransition("COMPLETED", "VALIDATING")
		err := cancelOnTerminal(orig)
		require.Error(t, err)
		require.NotEqual(t, error(orig), err)
	})

	t.Run("missing package cancels the job", func(t *testing.T) {
		orig := apperrors.ErrPackageNotFound("9a1b")
		err := cancelOnTerminal(orig)
		require.Error(t, err)
		require.NotEqual(t, error(orig), err)
	})
}
