package domain

import "github.com/google/uuid"

// Severity grades a validation diagnostic. Blocking diagnostics keep a row
// (and its package) from committing; advisory diagnostics surface as
// warnings and never block.
type Severity string

const (
	SeverityBlocking Severity = "BLOCKING"
	SeverityAdvisory Severity = "ADVISORY"
)

// Diagnostic is one validation finding against a staged row.
type Diagnostic struct {
	EntityType       EntityType `json:"entity_type"`
	OriginalEntityID uuid.UUID  `json:"original_entity_id"`
	Field            string     `json:"field,omitempty"`
	Code             string     `json:"code"`
	Severity         Severity   `json:"severity"`
	Message          string     `json:"message"`
}

// ValidationStatus is the per-row outcome of validation.
type ValidationStatus string

const (
	RowPending ValidationStatus = "PENDING"
	RowValid   ValidationStatus = "VALID"
	RowWarning ValidationStatus = "WARNING"
	RowInvalid ValidationStatus = "INVALID"
	// RowSkipped marks rows resolved away by Merge or LinkToExisting; they
	// contribute an id-map entry at commit instead of an insert.
	RowSkipped ValidationStatus = "SKIPPED"
)

// ValidationStatusValues lists the row statuses for ent enum declarations.
func ValidationStatusValues() []string {
	return []string{
		string(RowPending),
		string(RowValid),
		string(RowWarning),
		string(RowInvalid),
		string(RowSkipped),
	}
}

// EntityValidation aggregates row outcomes for one entity type.
type EntityValidation struct {
	Checked  int `json:"checked"`
	Valid    int `json:"valid"`
	Warnings int `json:"warnings"`
	Invalid  int `json:"invalid"`
}

// ValidationSummary is the package-level validation outcome persisted on the
// import package and returned by the validate operation.
type ValidationSummary struct {
	CheckedRows   int                             `json:"checked_rows"`
	ValidRows     int                             `json:"valid_rows"`
	WarningRows   int                             `json:"warning_rows"`
	InvalidRows   int                             `json:"invalid_rows"`
	BlockingCount int                             `json:"blocking_count"`
	AdvisoryCount int                             `json:"advisory_count"`
	ByEntity      map[EntityType]EntityValidation `json:"by_entity"`
	// PackageStatus is the status the package advanced to (VALIDATED or
	// INVALID).
	PackageStatus PackageStatus `json:"package_status"`
}
