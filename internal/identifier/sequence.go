package identifier

import (
	"context"
	"fmt"
	"time"

	"uhc-registry.io/registry/ent"
	"uhc-registry.io/registry/ent/identifiersequence"
)

// Sequence scopes. One counter per calendar year keeps the human-facing
// numbers short and lets audits reason per campaign year.
func PackageScope(year int) string { return fmt.Sprintf("package:%04d", year) }
func ClaimScope(year int) string   { return fmt.Sprintf("claim:%04d", year) }

// FormatPackageNumber renders PKG-YYYY-NNNN.
func FormatPackageNumber(year int, n int64) string {
	return fmt.Sprintf("PKG-%04d-%04d", year, n)
}

// FormatClaimNumber renders CLM-YYYY-NNNNNNNNN.
func FormatClaimNumber(year int, n int64) string {
	return fmt.Sprintf("CLM-%04d-%09d", year, n)
}

// NextValue reserves the next value of a scoped sequence inside tx. The
// sequence row is created on first use and locked FOR UPDATE, so concurrent
// transactions serialise on the row and never hand out the same value.
func NextValue(ctx context.Context, tx *ent.Tx, scope string) (int64, error) {
	err := tx.IdentifierSequence.Create().
		SetID(scope).
		SetNextValue(1).
		OnConflictColumns(identifiersequence.FieldID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("identifier: ensure sequence %s: %w", scope, err)
	}

	seq, err := tx.IdentifierSequence.Query().
		Where(identifiersequence.ID(scope)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return 0, fmt.Errorf("identifier: lock sequence %s: %w", scope, err)
	}

	n := seq.NextValue
	if err := tx.IdentifierSequence.UpdateOne(seq).SetNextValue(n + 1).Exec(ctx); err != nil {
		return 0, fmt.Errorf("identifier: advance sequence %s: %w", scope, err)
	}
	return n, nil
}

// NextPackageNumber allocates the next PKG-YYYY-NNNN for now's year.
func NextPackageNumber(ctx context.Context, tx *ent.Tx, now time.Time) (string, error) {
	year := now.UTC().Year()
	n, err := NextValue(ctx, tx, PackageScope(year))
	if err != nil {
		return "", err
	}
	return FormatPackageNumber(year, n), nil
}

// NextClaimNumber allocates the next CLM-YYYY-NNNNNNNNN for now's year.
func NextClaimNumber(ctx context.Context, tx *ent.Tx, now time.Time) (string, error) {
	year := now.UTC().Year()
	n, err := NextValue(ctx, tx, ClaimScope(year))
	if err != nil {
		return "", err
	}
	return FormatClaimNumber(year, n), nil
}
