// Package domain provides domain models for the Tenure Registry intake
// pipeline.
//
// Stores and handlers exchange these types, never ent rows (anti-corruption
// layer between persistence and pipeline logic).
package domain

// PackageStatus is the lifecycle status of an import package.
type PackageStatus string

const (
	StatusPending             PackageStatus = "PENDING"
	StatusValidating          PackageStatus = "VALIDATING"
	StatusValidated           PackageStatus = "VALIDATED"
	StatusInvalid             PackageStatus = "INVALID"
	StatusDetectingDuplicates PackageStatus = "DETECTING_DUPLICATES"
	StatusReviewingConflicts  PackageStatus = "REVIEWING_CONFLICTS"
	StatusReadyToCommit       PackageStatus = "READY_TO_COMMIT"
	StatusCommitting          PackageStatus = "COMMITTING"
	StatusCompleted           PackageStatus = "COMPLETED"
	StatusPartiallyCompleted  PackageStatus = "PARTIALLY_COMPLETED"
	StatusCommitFailed        PackageStatus = "COMMIT_FAILED"
	StatusCancelled           PackageStatus = "CANCELLED"
	StatusQuarantined         PackageStatus = "QUARANTINED"
)

// PackageStatusValues lists every status, in pipeline order, for ent enum
// declarations and API documentation.
func PackageStatusValues() []string {
	return []string{
		string(StatusPending),
		string(StatusValidating),
		string(StatusValidated),
		string(StatusInvalid),
		string(StatusDetectingDuplicates),
		string(StatusReviewingConflicts),
		string(StatusReadyToCommit),
		string(StatusCommitting),
		string(StatusCompleted),
		string(StatusPartiallyCompleted),
		string(StatusCommitFailed),
		string(StatusCancelled),
		string(StatusQuarantined),
	}
}

// transitions is the single source of truth for the package state machine.
// A status absent from the map has no outgoing transitions (terminal).
var transitions = map[PackageStatus][]PackageStatus{
	StatusPending:             {StatusValidating, StatusQuarantined},
	StatusValidating:          {StatusValidated, StatusInvalid},
	StatusInvalid:             {StatusValidating},
	StatusValidated:           {StatusDetectingDuplicates},
	StatusDetectingDuplicates: {StatusReviewingConflicts, StatusReadyToCommit},
	StatusReviewingConflicts:  {StatusReadyToCommit},
	StatusReadyToCommit:       {StatusCommitting},
	StatusCommitting:          {StatusCompleted, StatusPartiallyCompleted, StatusCommitFailed},
	StatusCommitFailed:        {StatusCommitting},
}

// IsTerminal reports whether no further pipeline work is possible.
func (s PackageStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusPartiallyCompleted, StatusCancelled, StatusQuarantined:
		return true
	}
	return false
}

// CanTransition reports whether from → to is a legal status transition.
// Cancellation is legal from every non-terminal status; all other moves
// must appear in the transition table.
func CanTransition(from, to PackageStatus) bool {
	if to == StatusCancelled {
		return !from.IsTerminal()
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ImportMethod records how a package arrived.
type ImportMethod string

const (
	ImportManual        ImportMethod = "MANUAL"
	ImportNetworkSync   ImportMethod = "NETWORK_SYNC"
	ImportWatchedFolder ImportMethod = "WATCHED_FOLDER"
)

// ImportMethodValues lists the methods for ent enum declarations.
func ImportMethodValues() []string {
	return []string{
		string(ImportManual),
		string(ImportNetworkSync),
		string(ImportWatchedFolder),
	}
}

// ParseImportMethod maps API input to an ImportMethod, defaulting to MANUAL.
func ParseImportMethod(s string) ImportMethod {
	switch ImportMethod(s) {
	case ImportNetworkSync:
		return ImportNetworkSync
	case ImportWatchedFolder:
		return ImportWatchedFolder
	default:
		return ImportManual
	}
}

// SignatureStatus records the outcome of signature verification at receive.
type SignatureStatus string

const (
	SignatureNone    SignatureStatus = "NONE"
	SignatureValid   SignatureStatus = "VALID"
	SignatureInvalid SignatureStatus = "INVALID"
)
