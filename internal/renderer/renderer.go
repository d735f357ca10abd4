package renderer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"hollywool/seogen/internal/domain"
	"hollywool/seogen/internal/extractor"
	"hollywool/seogen/internal/suggest"
)

// ErrTemplateUnavailable is the renderer's only failure mode. Missing
// specification fields are omitted from the output, never errors.
var ErrTemplateUnavailable = errors.New("no template content supplied")

// Params carries everything one render needs. Render is a pure function of
// this struct, so regenerating with identical params yields identical HTML.
type Params struct {
	ProductName string
	Category    domain.CategoryTag
	Specs       domain.Specification
	// Profile, when present, overrides keywords and the "perfect for"
	// list with curated values.
	Profile *domain.Profile
	Data    *domain.CategoryData
	// ExcludeSlug drops registry links that point at the product being
	// rendered.
	ExcludeSlug string
	StoreName   string
	StoreURL    string
	Template    string
}

// Render substitutes every {{PLACEHOLDER}} present in the template. A
// placeholder absent from the template is a no-op.
func Render(p Params) (string, error) {
	if p.Template == "" {
		return "", ErrTemplateUnavailable
	}
	if p.StoreName == "" {
		p.StoreName = "Hollywool"
	}
	if p.StoreURL == "" {
		p.StoreURL = "https://hollywool.eu"
	}
	p.StoreURL = strings.TrimSuffix(p.StoreURL, "/")

	data := p.Data
	if data == nil {
		data = &domain.CategoryData{}
	}

	out := p.Template
	out = strings.ReplaceAll(out, "{{PRODUCT_NAME}}", p.ProductName)
	out = strings.ReplaceAll(out, "{{META_DESCRIPTION}}", metaDescription(p))
	out = strings.ReplaceAll(out, "{{KEYWORDS}}", keywordList(p, data))
	out = strings.ReplaceAll(out, "{{ADDITIONAL_KEYWORDS}}", additionalKeywords(p.Specs))
	out = strings.ReplaceAll(out, "{{INTERNAL_LINKS}}", internalLinksHTML(p, data))
	out = strings.ReplaceAll(out, "{{SPECIFICATIONS}}", specificationsHTML(p.Specs))
	out = strings.ReplaceAll(out, "{{PERFECT_FOR}}", perfectForHTML(p))
	out = strings.ReplaceAll(out, "{{FAQS}}", faqsHTML(p, data))
	out = strings.ReplaceAll(out, "{{CALL_TO_ACTION}}", callToAction(p))
	out = strings.ReplaceAll(out, "{{SEO_KEYWORDS}}", seoKeywordsHTML(p, data))
	out = strings.ReplaceAll(out, "{{category}}", p.Category.String())
	out = strings.ReplaceAll(out, "{{category_name}}", p.Category.DisplayName())
	return out, nil
}

const metaFiller = " Free shipping for orders over 50€. 100% satisfaction guaranteed."

// metaDescription builds a category-specific search snippet clamped to the
// 120 to 160 character band search engines display in full.
func metaDescription(p Params) string {
	name, store := p.ProductName, p.StoreName
	var meta string
	switch p.Category {
	case domain.CategoryYarn:
		meta = fmt.Sprintf("Shop %s at %s, your premium source for quality craft supplies. Fast EU shipping, secure checkout.", name, store)
		if p.Specs.FiberContent != "" {
			content := regexp.MustCompile(`\d+%\s*`).ReplaceAllString(p.Specs.FiberContent, "")
			content = strings.TrimSpace(regexp.MustCompile(`,\s*and\s*`).ReplaceAllString(content, ", "))
			meta = fmt.Sprintf("Buy high-quality %s from %s - luxurious %s blend yarn for knitting and crochet projects. Fast shipping across Europe.", name, store, content)
		}
	case domain.CategoryHooks:
		meta = fmt.Sprintf("Shop quality %s at %s. Ergonomic design for comfortable crocheting. Perfect for beginners and professionals.", name, store)
	case domain.CategoryNeedles:
		meta = fmt.Sprintf("Premium %s available at %s. Smooth knitting experience, durable materials. Perfect for your next knitting project.", name, store)
	case domain.CategoryAccessories:
		meta = fmt.Sprintf("Shop %s at %s. Essential accessories for your knitting and crochet projects. Fast shipping across Europe.", name, store)
	case domain.CategoryButtons:
		meta = fmt.Sprintf("Add the perfect finishing touch with our %s at %s. Quality craftsmanship, beautiful design, fast shipping.", name, store)
	case domain.CategoryPatterns:
		meta = fmt.Sprintf("Download %s from %s. Clear instructions, detailed diagrams, and expert tips for successful project completion.", name, store)
	case domain.CategoryBooks:
		meta = fmt.Sprintf("Expand your craft knowledge with %s at %s. Expert techniques, inspiration, and patterns for all skill levels.", name, store)
	case domain.CategoryKits:
		meta = fmt.Sprintf("Get started with our %s at %s. Complete set with all materials needed for your project. Perfect for beginners.", name, store)
	default:
		meta = fmt.Sprintf("Shop quality %s at %s. Your trusted source for premium craft supplies with fast shipping across Europe.", name, store)
	}

	return clampMeta(meta)
}

func clampMeta(meta string) string {
	runes := []rune(meta)
	if len(runes) > 160 {
		return string(runes[:157]) + "..."
	}
	if len(runes) < 120 {
		meta += metaFiller
		runes = []rune(meta)
		if len(runes) > 160 {
			return string(runes[:157]) + "..."
		}
	}
	return meta
}

var fiberNameRe = regexp.MustCompile(`\d+%\s*([a-z]+)`)

func fiberNames(fiberContent string) []string {
	var names []string
	for _, m := range fiberNameRe.FindAllStringSubmatch(strings.ToLower(fiberContent), -1) {
		if len(m[1]) > 2 {
			names = append(names, m[1])
		}
	}
	return names
}

// keywordList builds the comma-joined meta keywords, capped at 10. A
// profile with curated SEO keywords replaces generation entirely.
func keywordList(p Params, data *domain.CategoryData) string {
	if p.Profile != nil && len(p.Profile.SEO.Keywords) > 0 {
		return strings.Join(p.Profile.SEO.Keywords, ", ")
	}

	name := strings.ToLower(p.ProductName)
	keywords := []string{name}

	switch p.Category {
	case domain.CategoryYarn:
		keywords = append(keywords, "yarn", "knitting yarn", "crochet yarn")
		for _, fiber := range fiberNames(p.Specs.FiberContent) {
			keywords = append(keywords, fiber+" yarn")
		}
		if strings.Contains(name, "merino") {
			keywords = append(keywords, "merino wool", "merino yarn", "soft wool")
		}
		if strings.Contains(name, "alpaca") {
			keywords = append(keywords, "alpaca yarn", "soft alpaca yarn", "luxury yarn")
		}
		if strings.Contains(name, "cotton") {
			keywords = append(keywords, "cotton yarn", "summer yarn", "plant fiber yarn")
		}
		keywords = append(keywords, "knitting supplies", "crochet supplies", "craft yarn")
	case domain.CategoryHooks:
		keywords = append(keywords, "crochet hook", "crochet supplies", "ergonomic crochet hook",
			"crochet tools", "crochet accessories", "quality crochet hooks")
	case domain.CategoryNeedles:
		keywords = append(keywords, "knitting needles", "knitting supplies", "knitting accessories",
			"circular needles", "bamboo needles", "metal needles", "quality knitting needles")
	default:
		keywords = append(keywords, "knitting", "crochet", "craft supplies", strings.ToLower(p.StoreName))
	}

	count := 0
	for _, kw := range data.Keywords {
		if kw == "" || count >= 5 {
			continue
		}
		keywords = append(keywords, kw)
		count++
	}

	seen := map[string]bool{}
	unique := keywords[:0]
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && !seen[kw] {
			seen[kw] = true
			unique = append(unique, kw)
		}
	}
	if len(unique) > 10 {
		unique = unique[:10]
	}
	return strings.Join(unique, ", ")
}

// Long-tail phrases lifted from competitor shop titles; kept verbatim for
// search-snippet overlap.
var storeTerms = []string{
	"Bendigo Woollen Mills | Australian Wool, Yarn, Patterns and",
	"Black Mountain Yarn Shop",
	"Buy Knitting & Crochet Yarn - Premium Luxury Wool",
	"Buy Wool, Yarn Australia - Online Yarn Store",
	"Buy Yarn at KnitByHeart.dk | Cheap yarn and accessories",
	"Buy Yarn, Knitting Needles, Crochet Hooks",
	"Buy Yarn, Wool, Needles & Other Knitting Supplies Online",
}

func additionalKeywords(specs domain.Specification) string {
	var extra []string
	if specs.FiberContent != "" {
		extra = append(extra, specs.FiberContent)
	}
	if specs.NeedleSize != "" {
		extra = append(extra, specs.NeedleSize+" needles")
	}
	if specs.Weight != "" {
		extra = append(extra, specs.Weight+" yarn")
	}
	if specs.Length != "" {
		extra = append(extra, specs.Length+" yarn")
	}
	if specs.Origin != "" {
		extra = append(extra, specs.Origin+" yarn")
	}
	extra = append(extra, storeTerms...)
	return strings.Join(extra, ", ")
}

func specificationsHTML(specs domain.Specification) string {
	var b strings.Builder
	b.WriteString("<ul>\n")
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "  <li><strong>%s:</strong> %s</li>\n", label, value)
		}
	}
	row("Fiber Content", specs.FiberContent)
	row("Ball Weight", specs.Weight)
	row("Length per Ball", specs.Length)
	row("Recommended Needle Size", specs.NeedleSize)
	if specs.GaugeStitches != "" && specs.GaugeRows != "" {
		fmt.Fprintf(&b, "  <li><strong>Gauge:</strong> %s sts x %s rows = 10 cm (4\")</li>\n",
			specs.GaugeStitches, specs.GaugeRows)
	}
	row("Recommended Crochet Hook", specs.CrochetHook)
	row("Care Instructions", specs.Care)
	row("Origin", specs.Origin)
	b.WriteString("</ul>")
	return b.String()
}

// perfectForHTML prefers a curated profile list, then project types mined
// from reference text, then the suggestion engine.
func perfectForHTML(p Params) string {
	var items []string
	switch {
	case p.Profile != nil && len(p.Profile.BestFor) > 0:
		items = p.Profile.BestFor
	case len(p.Specs.ProjectTypes) > 0:
		for _, project := range p.Specs.ProjectTypes {
			items = append(items, capitalize(extractor.Sanitize(project)))
		}
	default:
		items = suggest.Projects(p.ProductName, p.Specs)
	}
	if len(items) > 5 {
		items = items[:5]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p>%s is ideal for various projects including:</p>\n<ul>\n", p.ProductName)
	for _, item := range items {
		fmt.Fprintf(&b, "  <li>%s</li>\n", item)
	}
	b.WriteString("</ul>")
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// internalLinksHTML emits up to five related links: registry links first,
// then category navigation, with a homepage link always present.
func internalLinksHTML(p Params, data *domain.CategoryData) string {
	type link struct{ title, url string }
	var links []link
	seen := map[string]bool{}
	add := func(title, url string) {
		if len(links) >= 5 || url == "" || title == "" || seen[url] {
			return
		}
		if p.ExcludeSlug != "" && strings.Contains(url, "/product/"+p.ExcludeSlug) {
			return
		}
		seen[url] = true
		links = append(links, link{title, url})
	}

	for _, l := range data.InternalLinks {
		add(l.Title, l.URL)
	}
	for _, l := range categoryNavLinks(p) {
		add(l.title, l.url)
	}

	home := p.StoreURL + "/"
	if !seen[home] {
		if len(links) == 5 {
			links = links[:4]
		}
		links = append(links, link{"Homepage", home})
	}

	var b strings.Builder
	b.WriteString("<ul class=\"related-products\">\n")
	for _, l := range links {
		fmt.Fprintf(&b, "  <li><a href=\"%s\">%s</a></li>\n", l.url, l.title)
	}
	b.WriteString("</ul>")
	return b.String()
}

func categoryNavLinks(p Params) []struct{ title, url string } {
	cat := func(slug, title string) struct{ title, url string } {
		return struct{ title, url string }{title, p.StoreURL + "/product-category/" + slug + "/"}
	}
	tag := func(slug, title string) struct{ title, url string } {
		return struct{ title, url string }{title, p.StoreURL + "/product-tag/" + slug + "/"}
	}
	name := strings.ToLower(p.ProductName)

	switch p.Category {
	case domain.CategoryYarn:
		links := []struct{ title, url string }{cat("yarn", "All Yarns")}
		switch {
		case strings.Contains(name, "merino"):
			links = append(links, tag("merino-wool", "Other Merino Yarns"))
		case strings.Contains(name, "alpaca"):
			links = append(links, tag("alpaca", "Other Alpaca Yarns"))
		case strings.Contains(name, "cotton"):
			links = append(links, tag("cotton", "Other Cotton Yarns"))
		}
		return append(links, cat("needles", "Knitting Needles"), cat("hooks", "Crochet Hooks"))
	case domain.CategoryHooks:
		return []struct{ title, url string }{
			cat("hooks", "All Crochet Hooks"),
			cat("yarn", "Yarns for Crochet"),
			cat("accessories", "Crochet Accessories"),
			cat("patterns", "Crochet Patterns"),
		}
	case domain.CategoryNeedles:
		return []struct{ title, url string }{
			cat("needles", "All Knitting Needles"),
			cat("yarn", "Yarns for Knitting"),
			cat("accessories", "Knitting Accessories"),
			cat("patterns", "Knitting Patterns"),
		}
	case domain.CategoryAccessories:
		return []struct{ title, url string }{
			cat("accessories", "All Accessories"),
			cat("yarn", "Yarns"),
			cat("needles", "Knitting Needles"),
			cat("hooks", "Crochet Hooks"),
		}
	case domain.CategoryButtons:
		return []struct{ title, url string }{
			cat("buttons", "All Buttons"),
			cat("yarn", "Yarns for Cardigans"),
			cat("patterns", "Cardigan Patterns"),
			cat("accessories", "Other Accessories"),
		}
	default:
		return []struct{ title, url string }{
			cat("yarn", "Yarns"),
			cat("accessories", "Accessories"),
			cat("patterns", "Patterns"),
		}
	}
}

func callToAction(p Params) string {
	category := p.Category.String()
	if category == "" {
		category = "yarn"
	}
	return fmt.Sprintf("<p>Don't miss out on this exceptional %s! Add %s to your cart now and experience the joy of crafting with premium materials. Your hands will thank you, and your projects will shine with the distinctive quality that only %s can provide.</p>",
		category, p.ProductName, p.ProductName)
}

var stopWords = map[string]bool{
	"which": true, "where": true, "when": true, "their": true,
	"there": true, "these": true, "those": true, "with": true, "from": true,
}

func seoKeywordsHTML(p Params, data *domain.CategoryData) string {
	var b strings.Builder
	b.WriteString("<p>Keywords: " + strings.ToLower(p.ProductName))
	for _, fiber := range fiberNames(p.Specs.FiberContent) {
		b.WriteString(", " + fiber + " yarn")
	}

	if len(p.Specs.Features) > 0 {
		var text []string
		for _, f := range p.Specs.Features {
			text = append(text, f.Title, f.Description)
		}
		count := 0
		for _, word := range strings.Fields(strings.ToLower(strings.Join(text, " "))) {
			if len(word) > 5 && !stopWords[word] {
				b.WriteString(", " + word)
				if count++; count >= 5 {
					break
				}
			}
		}
	}
	if head := joinKeywords(data.Keywords, 0, 5); head != "" {
		b.WriteString(", " + head)
	}
	b.WriteString("</p>\n")

	b.WriteString("<p>Additional keywords: " + p.Specs.FiberContent)
	if p.Specs.NeedleSize != "" {
		b.WriteString(", " + p.Specs.NeedleSize + " needles")
	}
	if p.Specs.Weight != "" {
		b.WriteString(", " + p.Specs.Weight + " yarn")
	}
	if p.Specs.Length != "" {
		b.WriteString(", " + strings.TrimSpace(strings.SplitN(p.Specs.Length, "(", 2)[0]) + " yarn")
	}
	if p.Specs.Origin != "" {
		b.WriteString(", " + p.Specs.Origin + " yarn")
	}
	if tail := joinKeywords(data.Keywords, 5, 15); tail != "" {
		b.WriteString(", " + tail)
	}
	b.WriteString("</p>")
	return b.String()
}

func joinKeywords(keywords []string, from, to int) string {
	if from > len(keywords) {
		return ""
	}
	if to > len(keywords) {
		to = len(keywords)
	}
	return strings.Join(keywords[from:to], ", ")
}
