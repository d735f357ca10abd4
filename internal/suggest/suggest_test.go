package suggest

import (
	"testing"

	"hollywool/seogen/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestProjects_BlownYarnByName(t *testing.T) {
	got := Projects("Drops Air", domain.Specification{})

	assert.Equal(t, blownYarnProjects, got)
}

func TestProjects_BlownYarnByFeature(t *testing.T) {
	specs := domain.Specification{
		Features: []domain.Feature{{Title: "Blown construction", Description: "fibers are blown into a tube"}},
	}
	got := Projects("Puffy Cloud", specs)

	assert.Equal(t, blownYarnProjects, got)
}

func TestProjects_KidSilk(t *testing.T) {
	assert.Equal(t, kidSilkProjects, Projects("Drops Kid-Silk", domain.Specification{}))
	assert.Equal(t, kidSilkProjects,
		Projects("Silky Halo", domain.Specification{FiberContent: "75% Mohair, 25% Silk"}))
}

func TestProjects_BrushedAlpaca(t *testing.T) {
	assert.Equal(t, brushedAlpacaProjects, Projects("Drops Brushed Alpaca Silk", domain.Specification{}))
}

func TestProjects_NeedleBands(t *testing.T) {
	tests := []struct {
		needle string
		want   []string
	}{
		{"2.5 mm", fineProjects},
		{"3 mm", fineProjects},
		{"4 mm", mediumProjects},
		{"4.5 mm", mediumProjects},
		{"6 mm", chunkyProjects},
		{"9 mm", bulkyProjects},
	}
	for _, tt := range tests {
		t.Run(tt.needle, func(t *testing.T) {
			got := Projects("Plain Wool", domain.Specification{NeedleSize: tt.needle})
			assert.Equal(t, tt.want[:4], got[:4])
			assert.Len(t, got, 5)
		})
	}
}

func TestProjects_FiberAddOns(t *testing.T) {
	specs := domain.Specification{
		NeedleSize:   "4 mm",
		FiberContent: "70% Merino, 30% Silk",
	}
	got := Projects("Everyday DK", specs)

	// Band suggestions fill four slots, the merino add-on takes the fifth
	// and silk no longer fits.
	assert.Len(t, got, 5)
	assert.Equal(t, "Luxurious next-to-skin garments", got[4])
}

func TestProjects_DefaultPadding(t *testing.T) {
	got := Projects("Unknown Thing", domain.Specification{})

	assert.Equal(t, defaultProjects, got)
}

func TestProjects_CapAtFive(t *testing.T) {
	specs := domain.Specification{
		NeedleSize:   "6 mm",
		FiberContent: "40% Alpaca, 30% Merino, 20% Silk, 10% Linen",
	}
	got := Projects("Fancy Blend", specs)

	assert.Len(t, got, 5)
}
