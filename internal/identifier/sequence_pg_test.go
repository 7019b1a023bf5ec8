package identifier

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/ent"
	"uhc-registry.io/registry/internal/testutil"
)

func TestNextValue_ConcurrentAllocationsAreUniqueAndGapless(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "identifier_seq")
	ctx := context.Background()

	const workers = 8
	values := make([]int64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tx, err := client.Tx(ctx)
			if err != nil {
				errs[i] = err
				return
			}
			n, err := NextValue(ctx, tx, ClaimScope(2026))
			if err != nil {
				_ = tx.Rollback()
				errs[i] = err
				return
			}
			if err := tx.Commit(); err != nil {
				errs[i] = err
				return
			}
			values[i] = n
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}

	sort.Slice(values, func(a, b int) bool { return values[a] < values[b] })
	for i, v := range values {
		require.Equal(t, int64(i+1), v, "allocation %d", i)
	}
}

func TestNextPackageNumber_ScopesAreIndependent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "identifier_pkg")
	ctx := context.Background()
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	alloc := func(fn func(context.Context, *ent.Tx, time.Time) (string, error)) string {
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		got, err := fn(ctx, tx, now)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		return got
	}

	require.Equal(t, "PKG-2026-0001", alloc(NextPackageNumber))
	require.Equal(t, "PKG-2026-0002", alloc(NextPackageNumber))

	// Claim numbers draw from their own counter.
	require.Equal(t, "CLM-2026-000000001", alloc(NextClaimNumber))
	require.Equal(t, "PKG-2026-0003", alloc(NextPackageNumber))
}

func TestNextValue_RolledBackAllocationIsReissued(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "identifier_rb")
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	n, err := NextValue(ctx, tx, PackageScope(2026))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.NoError(t, tx.Rollback())

	tx, err = client.Tx(ctx)
	require.NoError(t, err)
	n, err = NextValue(ctx, tx, PackageScope(2026))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.NoError(t, tx.Commit())
}
