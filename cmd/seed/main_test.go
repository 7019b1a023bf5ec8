package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/internal/pkg/logger"
	"uhc-registry.io/registry/internal/vocabulary"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestBaselineVocabularies_LoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, seedVocabularies(dir, false))

	reg, err := vocabulary.Load(dir)
	require.NoError(t, err)

	domains := reg.Domains()
	assert.Len(t, domains, 10)
	assert.True(t, reg.Has("gender", "F"))
	assert.True(t, reg.Has("relation_type", "HEIR"))

	version, ok := reg.Version("nationality")
	require.True(t, ok)
	assert.Equal(t, "1.3.0", version)
}

func TestSeedVocabularies_Idempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, seedVocabularies(dir, false))

	// A local edit must survive a second run without -force.
	path := filepath.Join(dir, "gender.yaml")
	edited := []byte("domain: gender\nversion: 9.9.9\ncodes:\n  - code: M\n    label_en: Male\n    label_ar: \"ذكر\"\n")
	require.NoError(t, os.WriteFile(path, edited, 0o644))
	require.NoError(t, seedVocabularies(dir, false))

	reg, err := vocabulary.Load(dir)
	require.NoError(t, err)
	version, ok := reg.Version("gender")
	require.True(t, ok)
	assert.Equal(t, "9.9.9", version)

	// -force restores the baseline.
	require.NoError(t, seedVocabularies(dir, true))
	reg, err = vocabulary.Load(dir)
	require.NoError(t, err)
	version, ok = reg.Version("gender")
	require.True(t, ok)
	assert.Equal(t, "1.0.0", version)
}

func TestBaselineVocabularies_UniqueDomains(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range baselineVocabularies() {
		require.NotEmpty(t, d.Domain)
		require.NotEmpty(t, d.Version)
		require.NotEmpty(t, d.Codes)
		assert.False(t, seen[d.Domain], "duplicate domain %s", d.Domain)
		seen[d.Domain] = true
	}
}
