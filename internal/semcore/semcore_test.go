package semcore

import (
	"testing"

	"hollywool/seogen/internal/domain"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCore = `{
	"yarn": {
		"products": [{"slug": "drops-air", "url": "/product/drops-air/"}],
		"keywords": ["yarn", "wool"],
		"internal_links": [{"title": "Needles", "url": "/product-category/needles/"}],
		"faq": [{"question": "Q1?", "answer": "A1."}]
	},
	"hooks": {
		"products": [],
		"keywords": ["crochet"],
		"internalLinks": [{"title": "Yarn", "url": "/product-category/yarn/"}],
		"faqs": [{"question": "Q2?", "answer": "A2."}]
	}
}`

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data/semantic_core.json", []byte(sampleCore), 0o644))

	core := Load(fs, []string{"missing.json", "data/semantic_core.json"})
	require.Equal(t, 2, core.Len())

	yarn := core.Category(domain.CategoryYarn)
	require.NotNil(t, yarn)
	assert.Equal(t, []string{"yarn", "wool"}, yarn.Keywords)
	require.Len(t, yarn.Products, 1)
	assert.Equal(t, "drops-air", yarn.Products[0].Slug)
	require.Len(t, yarn.InternalLinks, 1)
	require.Len(t, yarn.FAQs, 1)
	assert.Equal(t, "Q1?", yarn.FAQs[0].Question)
}

func TestLoad_AliasKeys(t *testing.T) {
	// Both spellings of the link and FAQ keys are accepted.
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "core.json", []byte(sampleCore), 0o644))

	core := Load(fs, []string{"core.json"})
	hooks := core.Category(domain.CategoryHooks)
	require.NotNil(t, hooks)
	require.Len(t, hooks.InternalLinks, 1)
	assert.Equal(t, "/product-category/yarn/", hooks.InternalLinks[0].URL)
	require.Len(t, hooks.FAQs, 1)
	assert.Equal(t, "A2.", hooks.FAQs[0].Answer)
}

func TestLoad_PreservesCategoryOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	raw := `{"accessories": {"keywords": []}, "yarn": {"keywords": []}, "hooks": {"keywords": []}}`
	require.NoError(t, afero.WriteFile(fs, "core.json", []byte(raw), 0o644))

	core := Load(fs, []string{"core.json"})
	assert.Equal(t, []domain.CategoryTag{
		domain.CategoryAccessories,
		domain.CategoryYarn,
		domain.CategoryHooks,
	}, core.Tags())
}

func TestLoad_FallbackOnMissing(t *testing.T) {
	core := Load(afero.NewMemMapFs(), []string{"nope.json", ""})
	require.NotNil(t, core)
	assert.Equal(t, Fallback().Len(), core.Len())
	assert.NotNil(t, core.Category(domain.CategoryYarn))
}

func TestLoad_FallbackOnMalformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "core.json", []byte("{not json"), 0o644))

	core := Load(fs, []string{"core.json"})
	assert.Equal(t, Fallback().Len(), core.Len())
}

func TestLoad_FallbackOnEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "core.json", []byte("{}"), 0o644))

	core := Load(fs, []string{"core.json"})
	assert.Equal(t, Fallback().Len(), core.Len())
}

func TestValidate_NormalizesNilSets(t *testing.T) {
	core := domain.NewSemanticCore()
	core.Set(domain.CategoryYarn, &domain.CategoryData{})

	require.NoError(t, Validate(core))
	data := core.Category(domain.CategoryYarn)
	assert.NotNil(t, data.Keywords)
	assert.NotNil(t, data.Products)
}

func TestValidate_RejectsNilAndEmpty(t *testing.T) {
	assert.Error(t, Validate(nil))
	assert.Error(t, Validate(domain.NewSemanticCore()))
}

func TestFallback_CoversRenderableContent(t *testing.T) {
	core := Fallback()
	require.Equal(t, 4, core.Len())
	for _, tag := range core.Tags() {
		data := core.Category(tag)
		assert.NotEmpty(t, data.Keywords, "keywords for %s", tag)
		assert.NotEmpty(t, data.InternalLinks, "links for %s", tag)
		assert.NotEmpty(t, data.FAQs, "faqs for %s", tag)
	}
}
