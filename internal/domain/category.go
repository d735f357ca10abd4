package domain

import "strings"

type CategoryTag string

func (c CategoryTag) String() string {
	return string(c)
}

const (
	CategoryYarn        CategoryTag = "yarn"
	CategoryHooks       CategoryTag = "hooks"
	CategoryNeedles     CategoryTag = "needles"
	CategoryAccessories CategoryTag = "accessories"
	CategoryButtons     CategoryTag = "buttons"
	CategoryPatterns    CategoryTag = "patterns"
	CategoryBooks       CategoryTag = "books"
	CategoryKits        CategoryTag = "kits"
)

var CategoryTags = []CategoryTag{
	CategoryYarn,
	CategoryHooks,
	CategoryNeedles,
	CategoryAccessories,
	CategoryButtons,
	CategoryPatterns,
	CategoryBooks,
	CategoryKits,
}

func (c CategoryTag) DisplayName() string {
	switch c {
	case CategoryYarn:
		return "Yarn"
	case CategoryHooks:
		return "Hooks"
	case CategoryNeedles:
		return "Needles"
	case CategoryAccessories:
		return "Accessories"
	case CategoryButtons:
		return "Buttons"
	case CategoryPatterns:
		return "Patterns"
	case CategoryBooks:
		return "Books"
	case CategoryKits:
		return "Kits"
	default:
		if len(c) == 0 {
			return "Unknown"
		}
		return strings.ToUpper(string(c[:1])) + string(c[1:])
	}
}
