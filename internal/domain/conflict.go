package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConflictStatus is the review status of a duplicate conflict.
type ConflictStatus string

const (
	ConflictUnresolved ConflictStatus = "UNRESOLVED"
	ConflictResolved   ConflictStatus = "RESOLVED"
)

// Resolution is a reviewer's terminal decision on a conflict.
type Resolution string

const (
	ResolutionMerge          Resolution = "MERGE"
	ResolutionLinkToExisting Resolution = "LINK_TO_EXISTING"
	ResolutionKeepSeparate   Resolution = "KEEP_SEPARATE"
	ResolutionCreateNew      Resolution = "CREATE_NEW"
)

// ResolutionValues lists the decisions for ent enum declarations.
func ResolutionValues() []string {
	return []string{
		string(ResolutionMerge),
		string(ResolutionLinkToExisting),
		string(ResolutionKeepSeparate),
		string(ResolutionCreateNew),
	}
}

// ParseResolution maps API input to a Resolution.
func ParseResolution(s string) (Resolution, bool) {
	switch Resolution(s) {
	case ResolutionMerge, ResolutionLinkToExisting, ResolutionKeepSeparate, ResolutionCreateNew:
		return Resolution(s), true
	}
	return "", false
}

// Candidate is one production record proposed as a duplicate of a staged row.
type Candidate struct {
	EntityID uuid.UUID `json:"entity_id"`
	Score    float64   `json:"score"`
	// Summary carries display fields for the review UI (names, identifiers).
	Summary map[string]string `json:"summary,omitempty"`
}

// Conflict is a duplicate-detection finding awaiting (or carrying) a
// reviewer decision.
type Conflict struct {
	ID              uuid.UUID          `json:"id"`
	ImportPackageID uuid.UUID          `json:"import_package_id"`
	EntityType      ConflictEntityType `json:"entity_type"`
	// StagingEntityID is the staged row's original entity id.
	StagingEntityID   uuid.UUID      `json:"staging_entity_id"`
	Score             float64        `json:"score"`
	SuggestedMasterID *uuid.UUID     `json:"suggested_master_id,omitempty"`
	Candidates        []Candidate    `json:"candidates"`
	Status            ConflictStatus `json:"status"`
	Resolution        *Resolution    `json:"resolution,omitempty"`
	Justification     string         `json:"justification,omitempty"`
	ChosenMasterID    *uuid.UUID     `json:"chosen_master_id,omitempty"`
	// MergeMapping records, per referring production table, how many rows a
	// merge repointed to the master.
	MergeMapping map[string]int `json:"merge_mapping,omitempty"`
	ResolvedBy   string         `json:"resolved_by,omitempty"`
	ResolvedAt   *time.Time     `json:"resolved_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ResolveRequest is a reviewer's decision input.
type ResolveRequest struct {
	Resolution    Resolution `json:"resolution"`
	Justification string     `json:"justification"`
	// MasterEntityID selects the production master for MERGE and
	// LINK_TO_EXISTING; defaults to the suggested master when nil.
	MasterEntityID *uuid.UUID `json:"master_entity_id,omitempty"`
}

// ResolveResult reports the applied decision.
type ResolveResult struct {
	Conflict *Conflict `json:"conflict"`
	// PackageStatus is the package status after the decision (moves to
	// READY_TO_COMMIT when the last conflict resolves).
	PackageStatus PackageStatus `json:"package_status"`
	// MergePerformed is set for MERGE decisions.
	MergePerformed bool `json:"merge_performed"`
}
