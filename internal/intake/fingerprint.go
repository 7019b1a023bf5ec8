package intake

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/matching"
)

// Detection fingerprints identify a staged row by its normalised detection
// keys. A DuplicateSuppression row pairs a fingerprint with a production id;
// the same pair is never surfaced again while the keys are unchanged.

// PersonFingerprint hashes the person detection keys.
func PersonFingerprint(rec domain.PersonRecord) string {
	year := 0
	if rec.DateOfBirth != nil {
		year = rec.DateOfBirth.UTC().Year()
	}
	return fingerprint("person",
		matching.NormalizeIdentifier(rec.NationalID),
		matching.NormalizeArabic(rec.FirstName),
		matching.NormalizeArabic(rec.FatherName),
		matching.NormalizeArabic(rec.FamilyName),
		fmt.Sprintf("%d", year),
		matching.NormalizeIdentifier(rec.GenderCode),
	)
}

// BuildingFingerprint hashes the building detection key (the 17-digit code).
func BuildingFingerprint(buildingCode string) string {
	return fingerprint("building", buildingCode)
}

// UnitFingerprint hashes the property-unit detection keys.
func UnitFingerprint(buildingCode, unitIdentifier string) string {
	return fingerprint("property_unit", buildingCode, matching.NormalizeIdentifier(unitIdentifier))
}

func fingerprint(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
