package repository

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/intake"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// AdvisoryLocker guards pipeline stages with Postgres session advisory
// locks, so the one-stage-at-a-time rule holds across every process sharing
// the database, not just inside this one.
type AdvisoryLocker struct {
	pool *pgxpool.Pool
}

// NewAdvisoryLocker creates the locker on the shared connection pool.
func NewAdvisoryLocker(pool *pgxpool.Pool) *AdvisoryLocker {
	return &AdvisoryLocker{pool: pool}
}

var _ intake.PackageLocker = (*AdvisoryLocker)(nil)

// lockKey folds the package UUID into the int64 advisory-lock keyspace.
func lockKey(id uuid.UUID) int64 {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	return int64(hi ^ lo)
}

// TryLock takes the package's advisory lock without waiting. The lock is a
// session lock, so the connection is pinned until unlock runs.
func (l *AdvisoryLocker) TryLock(ctx context.Context, packageID uuid.UUID) (func(), error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire lock connection: %w", err)
	}
	key := lockKey(packageID)
	var locked bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", key).Scan(&locked); err != nil {
		conn.Release()
		return nil, fmt.Errorf("try advisory lock: %w", err)
	}
	if !locked {
		conn.Release()
		return nil, apperrors.ErrPackageBusy(packageID.String())
	}
	return func() {
		// The stage's context may already be cancelled when we unlock.
		if _, err := conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", key); err != nil {
			logger.Warn("Advisory unlock failed; lock released with the session",
				zap.String("package_id", packageID.String()),
				zap.Error(err),
			)
		}
		conn.Release()
	}, nil
}
