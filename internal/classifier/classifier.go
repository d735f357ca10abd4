package classifier

import (
	"regexp"
	"strings"

	"hollywool/seogen/internal/domain"

	log "github.com/sirupsen/logrus"
)

// nameRule is one entry of the keyword cascade: the category it selects and
// a predicate over the lowercased product name. Rules are evaluated in
// slice order and the first hit wins, so the order below is load-bearing:
// it resolves ambiguous names ("crochet needle case") the same way every
// run.
type nameRule struct {
	tag   domain.CategoryTag
	match func(name string) bool
}

var (
	buttonRe  = regexp.MustCompile(`toggle|snap|clasp|closure`)
	patternRe = regexp.MustCompile(`how to|make a|knitting pattern|crochet pattern`)
	bookRe    = regexp.MustCompile(`volume|edition|author|publisher`)
	kitRe     = regexp.MustCompile(`starter|beginner package|project kit`)

	hookBrandRe   = regexp.MustCompile(`ergonomic handle|prym|clover|addi|tulip`)
	hookFiberRe   = regexp.MustCompile(`yarn|wool|alpaca|silk|cotton`)
	needleTypeRe  = regexp.MustCompile(`circular|dpn|double pointed|interchangeable|knitting|bamboo needle|metal needle`)
	needleFiberRe = regexp.MustCompile(`yarn|wool|hook|crochet`)
	accTypeRe     = regexp.MustCompile(`case|holder|organizer|tool|accessory|notions|bag`)
	accExcludeRe  = regexp.MustCompile(`yarn|wool|hook|needle|pattern`)
	yarnBrandRe   = regexp.MustCompile(`drops|sandnes|bc garn|regia|kremke|lana grossa|rowan|sublime|debbie bliss`)
)

func containsAny(name string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}

// nameRules implements the fixed-priority keyword cascade: buttons,
// patterns, books, kits, hooks, needles, accessories, yarn.
var nameRules = []nameRule{
	{domain.CategoryButtons, func(n string) bool {
		return containsAny(n, "button", "fastener") || buttonRe.MatchString(n)
	}},
	{domain.CategoryPatterns, func(n string) bool {
		return containsAny(n, "pattern", "tutorial", "instructions", "guide") || patternRe.MatchString(n)
	}},
	{domain.CategoryBooks, func(n string) bool {
		return containsAny(n, "book", "magazine", "publication") || bookRe.MatchString(n)
	}},
	{domain.CategoryKits, func(n string) bool {
		return containsAny(n, "kit", "set", "bundle", "collection") || kitRe.MatchString(n)
	}},
	{domain.CategoryHooks, func(n string) bool {
		return containsAny(n, "hook", "crochet") ||
			(hookBrandRe.MatchString(n) && !hookFiberRe.MatchString(n))
	}},
	{domain.CategoryNeedles, func(n string) bool {
		return containsAny(n, "needle", "knitting pin") ||
			(needleTypeRe.MatchString(n) && !needleFiberRe.MatchString(n))
	}},
	{domain.CategoryAccessories, func(n string) bool {
		return containsAny(n, "stitch marker", "knitting accessory", "crochet accessory",
			"row counter", "gauge", "scissors", "needle stopper", "blocking", "pins") ||
			(accTypeRe.MatchString(n) && !accExcludeRe.MatchString(n))
	}},
	{domain.CategoryYarn, func(n string) bool {
		return containsAny(n, "yarn", "wool", "alpaca", "cotton", "silk", "mohair",
			"merino", "cashmere", "linen", "tweed") || yarnBrandRe.MatchString(n)
	}},
}

var yarnBrands = []string{
	"drops", "sandnes", "bc garn", "regia", "kremke", "rowan",
	"debbie bliss", "lana grossa", "malabrigo",
}

var accessoryBrands = []string{
	"clover", "addi", "knit pro", "chiaogoo", "prym", "tulip",
	"knitpicks", "cocoknits",
}

// Classify maps a product name to a category tag. It is total: when no
// rule matches it falls back to "yarn" because downstream rendering always
// needs some category.
func Classify(productName string, core *domain.SemanticCore) domain.CategoryTag {
	name := strings.ToLower(productName)

	// Stage 1: registered product slugs, in core document order.
	slug := Slugify(productName)
	if slug != "" {
		for _, tag := range core.Tags() {
			data := core.Category(tag)
			if data == nil {
				continue
			}
			for _, p := range data.Products {
				if p.Slug == "" {
					continue
				}
				if p.Slug == slug || strings.Contains(p.Slug, slug) || strings.Contains(slug, p.Slug) {
					log.Debugf("Category %q found by product list match (%s)", tag, p.Slug)
					return tag
				}
			}
		}
	}

	// Stage 2: fixed-priority keyword cascade over the name itself.
	for _, rule := range nameRules {
		if rule.match(name) {
			log.Debugf("Category %q determined from product name keywords", rule.tag)
			return rule.tag
		}
	}

	// Stage 3: registry keyword substrings, in core document order.
	for _, tag := range core.Tags() {
		data := core.Category(tag)
		if data == nil {
			continue
		}
		for _, kw := range data.Keywords {
			if kw != "" && strings.Contains(name, strings.ToLower(kw)) {
				log.Debugf("Category %q found by keyword match (%q)", tag, kw)
				return tag
			}
		}
	}

	// Stage 4: brand lists. Accessory brands are further disambiguated by
	// co-occurring product-type terms.
	for _, brand := range yarnBrands {
		if strings.Contains(name, brand) {
			log.Debugf("Category yarn determined from brand name %q", brand)
			return domain.CategoryYarn
		}
	}
	for _, brand := range accessoryBrands {
		if !strings.Contains(name, brand) {
			continue
		}
		switch {
		case containsAny(name, "hook", "crochet"):
			log.Debugf("Category hooks determined from brand name %q and product type", brand)
			return domain.CategoryHooks
		case containsAny(name, "needle", "knitting"):
			log.Debugf("Category needles determined from brand name %q and product type", brand)
			return domain.CategoryNeedles
		default:
			log.Debugf("Category accessories determined from brand name %q", brand)
			return domain.CategoryAccessories
		}
	}

	log.Debugf("No category determined for %q, defaulting to yarn", productName)
	return domain.CategoryYarn
}

var slugSpaceRe = regexp.MustCompile(`\s+`)

// Slugify lowercases a product name and joins its words with hyphens, the
// same normalization WooCommerce applies to product slugs.
func Slugify(name string) string {
	return slugSpaceRe.ReplaceAllString(strings.TrimSpace(strings.ToLower(name)), "-")
}
