package identifier

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestComposeBuildingCode(t *testing.T) {
	code, err := ComposeBuildingCode("01", "02", "03", "004", "005", "00042")
	require.NoError(t, err)
	require.Equal(t, "01020300400500042", code)
	require.Len(t, code, BuildingCodeLength)
}

func TestComposeBuildingCode_RejectsBadParts(t *testing.T) {
	cases := []struct {
		name  string
		parts [6]string
	}{
		{"short governorate", [6]string{"1", "02", "03", "004", "005", "00042"}},
		{"long community", [6]string{"01", "02", "03", "0004", "005", "00042"}},
		{"non-digit", [6]string{"01", "0x", "03", "004", "005", "00042"}},
		{"empty building", [6]string{"01", "02", "03", "004", "005", ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComposeBuildingCode(
				tc.parts[0], tc.parts[1], tc.parts[2],
				tc.parts[3], tc.parts[4], tc.parts[5])
			require.Error(t, err)
		})
	}
}

func TestComposeUnitIdentifier(t *testing.T) {
	buildingID := uuid.MustParse("11111111-1111-4111-8111-111111111111")

	got := ComposeUnitIdentifier(buildingID, "  Apt   2 ")
	require.Equal(t, buildingID.String()+"/apt 2", got)

	// Spacing and case never split identical units apart.
	require.Equal(t, got, ComposeUnitIdentifier(buildingID, "APT 2"))
}

func TestSequenceFormats(t *testing.T) {
	require.Equal(t, "PKG-2026-0007", FormatPackageNumber(2026, 7))
	require.Equal(t, "PKG-2026-12345", FormatPackageNumber(2026, 12345))
	require.Equal(t, "CLM-2026-000000042", FormatClaimNumber(2026, 42))
	require.Equal(t, "package:2026", PackageScope(2026))
	require.Equal(t, "claim:2026", ClaimScope(2026))
}
