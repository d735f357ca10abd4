package cache

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestNameVariants(t *testing.T) {
	got := NameVariants("Drops Kid Silk")

	assert.Contains(t, got, "drops_kid_silk")
	assert.Contains(t, got, "drops-kid-silk")
	assert.Contains(t, got, "dropskidsilk")
	assert.Contains(t, got, "drops_kid silk")
	assert.Equal(t, "drops_kid_silk", got[0])
}

func TestNameVariants_Dedupe(t *testing.T) {
	// An already-lowercase name collapses the case-sensitive variant into
	// the first one.
	got := NameVariants("merino")

	assert.Equal(t, []string{"merino"}, got)
}

func TestReference_UnderscoreVariant(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeJSON(t, fs, "cache/perplexity_drops_air.json", `{"data":"Fluffy blow yarn."}`)

	c := New(fs, "cache", "profiles")

	ref := c.Reference("Drops Air")
	require.NotNil(t, ref)
	assert.Equal(t, "Fluffy blow yarn.", ref.Data)
}

func TestReference_FuzzyMatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeJSON(t, fs, "cache/old_perplexity_drops_air_v2.json", `{"data":"archived"}`)

	c := New(fs, "cache", "profiles")

	ref := c.Reference("Drops Air")
	require.NotNil(t, ref)
	assert.Equal(t, "archived", ref.Data)
}

func TestReference_MalformedIsMiss(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeJSON(t, fs, "cache/perplexity_drops_air.json", `{not json`)

	c := New(fs, "cache", "profiles")

	assert.Nil(t, c.Reference("Drops Air"))
}

func TestReference_MissingDirIsMiss(t *testing.T) {
	c := New(afero.NewMemMapFs(), "cache", "profiles")

	assert.Nil(t, c.Reference("Drops Air"))
}

func TestProfile_ExactVariant(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeJSON(t, fs, "profiles/drops_kid-silk.json",
		`{"name":"Drops Kid-Silk","specifications":{"composition":"75% Mohair, 25% Silk"}}`)

	c := New(fs, "cache", "profiles")

	p := c.Profile("Drops Kid-Silk")
	require.NotNil(t, p)
	assert.Equal(t, "Drops Kid-Silk", p.Name)
	assert.Equal(t, "75% Mohair, 25% Silk", p.Specifications.Composition)
}

func TestProfile_PartialMatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeJSON(t, fs, "profiles/hollywool_drops_airair_mix.json", `{"name":"Drops Air"}`)

	c := New(fs, "cache", "profiles")

	p := c.Profile("Drops Air Mix")
	require.NotNil(t, p)
	assert.Equal(t, "Drops Air", p.Name)
}

func TestProfile_NumericGaugeTolerated(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeJSON(t, fs, "profiles/test_yarn.json",
		`{"name":"Test Yarn","specifications":{"gaugeStitches":21,"gaugeRows":28}}`)

	c := New(fs, "cache", "profiles")

	p := c.Profile("Test Yarn")
	require.NotNil(t, p)
	assert.Equal(t, "21", string(p.Specifications.GaugeStitches))
	assert.Equal(t, "28", string(p.Specifications.GaugeRows))
}

func TestProfile_Miss(t *testing.T) {
	c := New(afero.NewMemMapFs(), "cache", "profiles")

	assert.Nil(t, c.Profile("Nonexistent"))
	assert.Nil(t, c.Profile(""))
}
