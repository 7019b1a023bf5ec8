package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := FromDomains(
		Domain{
			Domain:  "building_type",
			Version: "1.4.2",
			Codes: []Code{
				{Code: "residential", LabelEN: "Residential", LabelAR: "سكني"},
				{Code: "commercial", LabelEN: "Commercial", LabelAR: "تجاري"},
			},
		},
		Domain{
			Domain:  "claim_type",
			Version: "2.0.0",
			Codes:   []Code{{Code: "ownership"}, {Code: "tenancy"}},
		},
	)
	require.NoError(t, err)
	return r
}

func TestRegistry_HasAndVersion(t *testing.T) {
	r := testRegistry(t)

	require.True(t, r.Has("building_type", "residential"))
	require.False(t, r.Has("building_type", "industrial"))
	require.False(t, r.Has("no_such_domain", "residential"))

	v, ok := r.Version("claim_type")
	require.True(t, ok)
	require.Equal(t, "2.0.0", v)
	_, ok = r.Version("no_such_domain")
	require.False(t, ok)

	require.Equal(t, []string{"building_type", "claim_type"}, r.Domains())
}

func TestRegistry_CompareVerdicts(t *testing.T) {
	r := testRegistry(t)

	cases := []struct {
		device string
		want   Verdict
	}{
		{"1.4.2", Identical},
		{"1.4.7", PatchDifference},
		{"1.5.0", MinorDifference},
		{"2.0.0", MajorDifference},
		{"not-a-version", MajorDifference},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, r.Compare("building_type", tc.device),
			"device version %s", tc.device)
	}
	require.Equal(t, UnknownDomain, r.Compare("no_such_domain", "1.4.2"))

	require.True(t, Identical.Compatible())
	require.True(t, PatchDifference.Compatible())
	require.True(t, MinorDifference.Compatible())
	require.False(t, MajorDifference.Compatible())
	require.False(t, UnknownDomain.Compatible())
}

func TestRegistry_DeviceAhead(t *testing.T) {
	r := testRegistry(t)

	require.True(t, r.DeviceAhead("building_type", "1.5.0"))
	require.False(t, r.DeviceAhead("building_type", "1.4.2"))
	require.False(t, r.DeviceAhead("building_type", "1.3.9"))
	require.False(t, r.DeviceAhead("building_type", "garbage"))
	require.False(t, r.DeviceAhead("no_such_domain", "9.9.9"))
}

func TestRegistry_CheckManifest(t *testing.T) {
	r := testRegistry(t)

	rep := r.CheckManifest(map[string]string{
		"building_type": "1.5.0",
		"claim_type":    "3.0.0",
		"evidence_type": "1.0.0",
	})
	require.Len(t, rep.Verdicts, 3)

	bad := rep.Incompatible()
	require.Len(t, bad, 2)
	require.Equal(t, "claim_type", bad[0].Domain)
	require.Equal(t, MajorDifference, bad[0].Verdict)
	require.Equal(t, "evidence_type", bad[1].Domain)
	require.Equal(t, UnknownDomain, bad[1].Verdict)

	warns := rep.Warnings()
	require.Len(t, warns, 1)
	require.Equal(t, "building_type", warns[0].Domain)
}

func TestLoad_ReadsYAMLDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "building_type.yaml"), []byte(`
domain: building_type
version: 1.4.2
codes:
  - code: residential
    label_en: Residential
    label_ar: سكني
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	r, err := Load(dir)
	require.NoError(t, err)
	require.True(t, r.Has("building_type", "residential"))
	require.Equal(t, []string{"building_type"}, r.Domains())
}

func TestLoad_RejectsBadVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(`
domain: bad
version: one-point-oh
codes: []
`), 0o644))

	_, err := Load(dir)
	require.ErrorContains(t, err, "semantic version")
}
