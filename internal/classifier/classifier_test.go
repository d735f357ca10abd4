package classifier

import (
	"testing"

	"hollywool/seogen/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCore() *domain.SemanticCore {
	core := domain.NewSemanticCore()
	core.Set(domain.CategoryYarn, &domain.CategoryData{
		Products: []domain.Product{{Slug: "drops-kid-silk", URL: "https://hollywool.eu/product/drops-kid-silk/"}},
		Keywords: []string{"premium yarn", "natural fiber"},
	})
	core.Set(domain.CategoryHooks, &domain.CategoryData{
		Products: []domain.Product{{Slug: "clover-amour-5mm", URL: "https://hollywool.eu/product/clover-amour-5mm/"}},
		Keywords: []string{"ergonomic grip"},
	})
	return core
}

func TestClassify_ProductSlugMatch(t *testing.T) {
	core := testCore()

	// A registered slug wins even when the name carries keywords of
	// another category.
	got := Classify("Drops Kid Silk", core)
	assert.Equal(t, domain.CategoryYarn, got)

	got = Classify("Clover Amour 5mm", core)
	assert.Equal(t, domain.CategoryHooks, got)
}

func TestClassify_SlugPartialMatch(t *testing.T) {
	core := domain.NewSemanticCore()
	core.Set(domain.CategoryKits, &domain.CategoryData{
		Products: []domain.Product{{Slug: "beginner-sock-knitting-kit-complete"}},
	})

	got := Classify("Beginner Sock Knitting Kit", core)
	assert.Equal(t, domain.CategoryKits, got)
}

func TestClassify_KeywordCascade(t *testing.T) {
	core := domain.NewSemanticCore()

	tests := []struct {
		name string
		want domain.CategoryTag
	}{
		{"Wooden Toggle Button Pack", domain.CategoryButtons},
		{"How to Knit Socks Tutorial", domain.CategoryPatterns},
		{"Big Book of Crochet Stitches Volume 2", domain.CategoryBooks},
		{"Amigurumi Starter Kit", domain.CategoryKits},
		{"Soft Touch Crochet Hook 4mm", domain.CategoryHooks},
		{"Bamboo Circular Needle 80cm", domain.CategoryNeedles},
		{"Stitch Marker Rings 20pc", domain.CategoryAccessories},
		{"Super Soft Merino", domain.CategoryYarn},
		{"Drops Air", domain.CategoryYarn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name, core))
		})
	}
}

func TestClassify_CascadeOrderResolvesAmbiguity(t *testing.T) {
	core := domain.NewSemanticCore()

	// "hook" outranks "case", so an ambiguous accessory name lands on
	// hooks rather than accessories.
	assert.Equal(t, domain.CategoryHooks, Classify("Crochet Hook Case", core))

	// Kits outrank hooks, so a hook set is a kit.
	assert.Equal(t, domain.CategoryKits, Classify("Crochet Hook Set", core))
}

func TestClassify_FiberExclusions(t *testing.T) {
	core := domain.NewSemanticCore()

	// Brand regexes for hooks and needles only fire when no fiber word is
	// present; "Clover" plus "wool" must not classify as hooks.
	assert.Equal(t, domain.CategoryYarn, Classify("Clover Soft Wool", core))
}

func TestClassify_RegistryKeywordFallback(t *testing.T) {
	core := domain.NewSemanticCore()
	core.Set(domain.CategoryAccessories, &domain.CategoryData{
		Keywords: []string{"project companion"},
	})

	got := Classify("Deluxe Project Companion", core)
	assert.Equal(t, domain.CategoryAccessories, got)
}

func TestClassify_BrandFallback(t *testing.T) {
	core := domain.NewSemanticCore()

	assert.Equal(t, domain.CategoryYarn, Classify("Malabrigo Rios", core))
	assert.Equal(t, domain.CategoryAccessories, Classify("Cocoknits Sweater Care Brush", core))
	assert.Equal(t, domain.CategoryNeedles, Classify("ChiaoGoo Red Lace Knitting 3.5mm", core))
}

func TestClassify_Total(t *testing.T) {
	core := domain.NewSemanticCore()

	// Anything unrecognizable still yields a category.
	got := Classify("Mystery Item 9000", core)
	require.NotEmpty(t, got)
	assert.Equal(t, domain.CategoryYarn, got)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "drops-kid-silk", Slugify("Drops Kid Silk"))
	assert.Equal(t, "a-b", Slugify("  A   B  "))
	assert.Equal(t, "", Slugify("   "))
}
