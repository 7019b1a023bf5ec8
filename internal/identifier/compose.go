// Package identifier composes the registry's business identifiers and
// allocates the sequential ones from database-backed sequences.
package identifier

import (
	"fmt"

	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/matching"
)

// Administrative code part widths. Concatenated they form the 17-digit
// building code: governorate(2) district(2) sub-district(2) community(3)
// neighborhood(3) building(5).
var buildingCodeParts = []struct {
	name  string
	width int
}{
	{"governorate", 2},
	{"district", 2},
	{"sub-district", 2},
	{"community", 3},
	{"neighborhood", 3},
	{"building", 5},
}

// BuildingCodeLength is the total width of a composed building code.
const BuildingCodeLength = 17

// ComposeBuildingCode concatenates the six administrative code parts into
// the unique 17-digit building code. Every part must be exactly its declared
// width and all digits.
func ComposeBuildingCode(governorate, district, subDistrict, community, neighborhood, building string) (string, error) {
	parts := []string{governorate, district, subDistrict, community, neighborhood, building}
	code := ""
	for i, part := range parts {
		spec := buildingCodeParts[i]
		if len(part) != spec.width {
			return "", fmt.Errorf("identifier: %s code %q must be %d digits", spec.name, part, spec.width)
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return "", fmt.Errorf("identifier: %s code %q must be all digits", spec.name, part)
			}
		}
		code += part
	}
	return code, nil
}

// ComposeUnitIdentifier builds the production-unique composite identifier of
// a property unit: the production building id joined with the normalised
// unit identifier.
func ComposeUnitIdentifier(buildingID uuid.UUID, unitIdentifier string) string {
	return buildingID.String() + "/" + matching.NormalizeIdentifier(unitIdentifier)
}
