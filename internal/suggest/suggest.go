package suggest

import (
	"strings"

	"hollywool/seogen/internal/domain"
)

// Fixed suggestion sets. The first three are returned whole when their
// yarn family is detected; the band sets seed the incremental path.
var (
	blownYarnProjects = []string{
		"Lightweight but warm sweaters",
		"Cozy oversized garments",
		"Textured scarves and cowls",
		"Airy shawls with excellent drape",
		"Projects for sensitive skin",
	}
	kidSilkProjects = []string{
		"Delicate lace shawls",
		"Held together with other yarns for halo effect",
		"Lightweight sweaters with elegant drape",
		"Airy scarves and wraps",
		"Fine texture accessories",
	}
	brushedAlpacaProjects = []string{
		"Ultra-soft scarves and cowls",
		"Luxurious sweaters with halo effect",
		"Cozy hats and mittens",
		"Elegant shawls and wraps",
		"Projects requiring exceptional warmth",
	}

	fineProjects = []string{
		"Intricate lace projects",
		"Lightweight socks",
		"Delicate shawls",
		"Fine gauge garments",
	}
	mediumProjects = []string{
		"Versatile everyday sweaters",
		"Textured accessories",
		"Colorwork projects",
		"Mid-weight garments",
	}
	chunkyProjects = []string{
		"Quick-knit sweaters and cardigans",
		"Cozy winter accessories",
		"Textured hats and cowls",
		"Warm home decor items",
	}
	bulkyProjects = []string{
		"Super chunky blankets",
		"Statement scarves",
		"Oversized sweaters",
		"Quick weekend projects",
	}

	defaultProjects = []string{
		"Cozy sweaters and cardigans",
		"Soft scarves and shawls",
		"Comfortable hats and accessories",
		"Luxurious home decor items",
		"Garments for those with sensitive skin",
	}
)

// Projects suggests up to five project ideas for a yarn, derived from its
// name and mined specifications. The special-family branches return their
// full list immediately; otherwise the list is built from the needle-size
// band plus fiber add-ons and padded with defaults.
func Projects(productName string, specs domain.Specification) []string {
	name := strings.ToLower(productName)
	fiber := strings.ToLower(specs.FiberContent)

	hasAlpaca := strings.Contains(fiber, "alpaca")
	hasMohair := strings.Contains(fiber, "mohair") || strings.Contains(name, "mohair")
	hasCashmere := strings.Contains(fiber, "cashmere")
	hasSilk := strings.Contains(fiber, "silk")
	hasMerino := strings.Contains(fiber, "merino") || strings.Contains(name, "merino")
	hasCotton := strings.Contains(fiber, "cotton") || strings.Contains(name, "cotton")
	hasLinen := strings.Contains(fiber, "linen") || strings.Contains(name, "linen")

	blown := strings.Contains(name, "air")
	if !blown {
		for _, f := range specs.Features {
			text := strings.ToLower(f.Title + " " + f.Description)
			if strings.Contains(text, "blow yarn") || strings.Contains(text, "blown") {
				blown = true
				break
			}
		}
	}

	switch {
	case blown:
		return append([]string(nil), blownYarnProjects...)
	case strings.Contains(name, "kid silk"), strings.Contains(name, "kid-silk"), hasMohair:
		return append([]string(nil), kidSilkProjects...)
	case strings.Contains(name, "brushed alpaca"), hasAlpaca && strings.Contains(name, "brushed"):
		return append([]string(nil), brushedAlpacaProjects...)
	}

	var suggestions []string
	if mm, ok := domain.ParseMillimeters(specs.NeedleSize); ok {
		switch {
		case mm <= 3:
			suggestions = append(suggestions, fineProjects...)
		case mm <= 4.5:
			suggestions = append(suggestions, mediumProjects...)
		case mm <= 8:
			suggestions = append(suggestions, chunkyProjects...)
		default:
			suggestions = append(suggestions, bulkyProjects...)
		}
	}

	if hasAlpaca {
		suggestions = append(suggestions, "Projects for those with wool sensitivity")
	}
	if hasCashmere || hasMerino {
		suggestions = append(suggestions, "Luxurious next-to-skin garments")
	}
	if hasSilk {
		suggestions = append(suggestions, "Projects with elegant drape and sheen")
	}
	if hasCotton || hasLinen {
		suggestions = append(suggestions, "Lightweight summer garments")
	}

	for _, d := range defaultProjects {
		if len(suggestions) >= 5 {
			break
		}
		if !contains(suggestions, d) {
			suggestions = append(suggestions, d)
		}
	}

	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
