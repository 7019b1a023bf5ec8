package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Manifest is the decoded manifest table of a .uhc package archive.
type Manifest struct {
	PackageID                uuid.UUID          `json:"package_id"`
	SchemaVersion            string             `json:"schema_version"`
	CreatedUTC               time.Time          `json:"created_utc"`
	ExportedDateUTC          time.Time          `json:"exported_date_utc"`
	ExportedByUserID         string             `json:"exported_by_user_id"`
	DeviceID                 string             `json:"device_id"`
	TotalRecordCount         int                `json:"total_record_count"`
	EntityCounts             map[EntityType]int `json:"entity_counts"`
	TotalAttachmentSizeBytes int64              `json:"total_attachment_size_bytes"`
	VocabularyVersions       map[string]string  `json:"vocabulary_versions"`
	// Checksum is the lowercase hex SHA-256 content checksum, or empty when
	// the exporting device did not compute one.
	Checksum string `json:"checksum"`
	// DigitalSignature is the base64 ed25519 signature over the content
	// digest, or empty for unsigned packages.
	DigitalSignature string `json:"digital_signature,omitempty"`
}

var checksumRx = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Validate checks manifest self-consistency. Failures map to
// MANIFEST_INVALID at the receiver.
func (m *Manifest) Validate() error {
	if m.PackageID == uuid.Nil {
		return fmt.Errorf("manifest: package_id missing or not a UUID")
	}
	if m.SchemaVersion == "" {
		return fmt.Errorf("manifest: schema_version missing")
	}
	if m.DeviceID == "" {
		return fmt.Errorf("manifest: device_id missing")
	}
	if m.TotalRecordCount < 0 {
		return fmt.Errorf("manifest: total_record_count is negative")
	}
	sum := 0
	for et, n := range m.EntityCounts {
		if n < 0 {
			return fmt.Errorf("manifest: %s count is negative", et)
		}
		sum += n
	}
	if m.TotalRecordCount != sum {
		return fmt.Errorf("manifest: total_record_count %d does not match per-entity sum %d",
			m.TotalRecordCount, sum)
	}
	if m.TotalAttachmentSizeBytes < 0 {
		return fmt.Errorf("manifest: total_attachment_size_bytes is negative")
	}
	if m.Checksum != "" && !checksumRx.MatchString(m.Checksum) {
		return fmt.Errorf("manifest: checksum is not lowercase sha256 hex")
	}
	return nil
}
