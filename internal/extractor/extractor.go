package extractor

import (
	"regexp"
	"strings"

	"hollywool/seogen/internal/domain"

	log "github.com/sirupsen/logrus"
)

// The research cache stores free-form AI-generated prose, so every field is
// mined with a guard check followed by an ordered list of regex attempts,
// most specific first. A field that matches nothing stays empty and the
// renderer simply omits its row.

var (
	citationRe  = regexp.MustCompile(`\[\d+\](?:\[\d+\])?`)
	referenceRe = regexp.MustCompile(`\(\d+\)`)

	fiberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Fiber Content|Content:|Composition)[^\n]*?(\d+%\s*[A-Za-z]+(?:[^A-Za-z\n]+(?:\d+%\s*[A-Za-z]+))*)`),
		regexp.MustCompile(`(?i)(?:Fiber|Content|Composition).*?(\d+%\s*[A-Za-z]+.*?\d+%\s*[A-Za-z]+.*?\d+%\s*[A-Za-z]+)`),
		regexp.MustCompile(`(?i)(\d+%\s*(?:Alpaca|Wool|Cotton|Polyamide|Nylon|Silk)[^.]*)`),
	}
	weightPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Ball Weight|Weight)[^\n]*?(\d+\s*g)`),
		regexp.MustCompile(`(?i)(\d+\s*g(?:rams)?)[^\n]*?(?:ball|skein)`),
	}
	lengthPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Length|Yardage)[^\n]*?(\d+\s*m(?:eters)?[^\n]*?\d+\s*y(?:ards)?)`),
		regexp.MustCompile(`(?i)(\d+\s*m(?:eters)?(?:\s*\((?:approx\.?)?\s*\d+\s*y(?:ards)?\))?)`),
	}
	needlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Recommended Needle|Needle Size)[^\n]*?(\d+(?:\.\d+)?\s*mm)`),
		regexp.MustCompile(`(?i)(?:knitting needles|needle)[^\n]*?(\d+(?:\.\d+)?\s*mm)`),
	}
	originPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Origin|Made in)[^\n]*?(Peru|Italy|China|USA|UK|Turkey|Norway|Sweden|Finland|Denmark)`),
		regexp.MustCompile(`(?i)(?:produced|made)[^\n]*?in\s+(Peru|Italy|China|USA|UK|Turkey|Norway|Sweden|Finland|Denmark)`),
	}

	markerStripRe = regexp.MustCompile(`[\[\]]|\d+`)
	lineBreaksRe  = regexp.MustCompile(`(?:\r\n|\r|\n){2,}`)

	featureSectionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)(?:Features|Benefits|Unique Features|Key Features)[^\n]*?\n(.*?)(?:---|#{2,3}|Summary|Technical)`),
		regexp.MustCompile(`(?is)(?:Features|Benefits|Advantages)[^\n]*?\n(.*?)(?:\n\n\n|#{2,3})`),
	}
	bulletRe       = regexp.MustCompile(`(?m)^\s*[-•*]\s*(.+)`)
	bulletPrefixRe = regexp.MustCompile(`^[-•*\s]+`)
	boldRe         = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	sectionTitleRe = regexp.MustCompile(`(?i)^(?:Technical Specifications|Features|Benefits|Summary|Key Benefits|Origin|Weight|Length|Content|Maintenance)$`)
	featureSplitRe = regexp.MustCompile(`^([^.,:;]+)[.,:;](.+)$`)

	descriptivePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:provides|offers|features|boasts|delivers|ensures|gives) (.*?)\.`),
		regexp.MustCompile(`(?i)is (?:perfect|ideal|excellent|outstanding|remarkable|exceptional) (.*?)\.`),
		regexp.MustCompile(`(?i)(?:luxury|premium|high-quality|soft|warm|lightweight) (.*?)\.`),
	}

	projectPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:perfect|ideal|suitable|great|excellent)\s+for\s+(.*?)(?:\.|\n|$)`),
		regexp.MustCompile(`(?i)works (?:well|beautifully|excellently|perfectly) (?:for|with) (.*?)(?:\.|\n|$)`),
		regexp.MustCompile(`(?i)recommended (?:for|with) (.*?)(?:\.|\n|$)`),
	}
	projectSplitRe = regexp.MustCompile(`,|and`)

	boldMarkRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicMarkRe = regexp.MustCompile(`\*(.*?)\*`)
	linkMarkRe   = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	headerMarkRe = regexp.MustCompile(`#{1,6}\s+`)
	codeMarkRe   = regexp.MustCompile("`{1,3}(.*?)`{1,3}")
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// DefaultProjectTypes pads the "perfect for" list when the reference text
// yields nothing usable.
var DefaultProjectTypes = []string{
	"cozy sweaters and cardigans",
	"soft scarves and shawls",
	"comfortable hats and accessories",
	"luxurious home decor items",
	"garments for those with sensitive skin",
}

// Sanitize strips markdown syntax and collapses whitespace runs.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	s := boldMarkRe.ReplaceAllString(text, "$1")
	s = italicMarkRe.ReplaceAllString(s, "$1")
	s = linkMarkRe.ReplaceAllString(s, "$1")
	s = headerMarkRe.ReplaceAllString(s, "")
	s = codeMarkRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Extract mines a specification record out of cached research text. Every
// field is best-effort; an empty input yields an empty record.
func Extract(ref *domain.ReferenceText) domain.Specification {
	var specs domain.Specification
	if ref == nil || ref.Data == "" {
		return specs
	}

	content := citationRe.ReplaceAllString(ref.Data, "")
	content = referenceRe.ReplaceAllString(content, "")

	specs.FiberContent = firstMatch(content, fiberPatterns,
		strings.Contains(content, "Fiber Content"),
		strings.Contains(content, "Content:"),
		strings.Contains(content, "%"))
	specs.Weight = firstMatch(content, weightPatterns,
		strings.Contains(content, "Weight"),
		strings.Contains(content, "Ball Weight"),
		strings.Contains(content, "g "))
	specs.Length = firstMatch(content, lengthPatterns,
		strings.Contains(content, "Length"),
		strings.Contains(content, "Yardage"),
		strings.Contains(content, "meters"))
	specs.NeedleSize = firstMatch(content, needlePatterns,
		strings.Contains(content, "Needle Size"),
		strings.Contains(content, "Recommended Needle"))
	specs.Origin = firstMatch(content, originPatterns,
		strings.Contains(content, "Origin"),
		strings.Contains(content, "Made in"))

	raw := extractRawFeatures(content)
	features := make([]domain.Feature, 0, len(raw))
	for _, f := range raw {
		features = append(features, SplitFeature(f))
	}
	if len(features) > 8 {
		features = features[:8]
	}
	specs.Features = features
	specs.ProjectTypes = extractProjectTypes(content)

	log.Debugf("Extracted %d features and %d project types from reference text",
		len(specs.Features), len(specs.ProjectTypes))
	return specs
}

func firstMatch(content string, patterns []*regexp.Regexp, guards ...bool) string {
	hit := false
	for _, g := range guards {
		if g {
			hit = true
			break
		}
	}
	if !hit {
		return ""
	}
	for _, re := range patterns {
		if m := re.FindStringSubmatch(content); m != nil {
			return Sanitize(m[1])
		}
	}
	return ""
}

// extractRawFeatures runs the feature cascade: labeled section bullets,
// then bold phrases with trailing explanations, then promotional sentences
// when fewer than three features were found.
func extractRawFeatures(content string) []string {
	var features []string

	cleaned := markerStripRe.ReplaceAllString(content, "")
	cleaned = lineBreaksRe.ReplaceAllString(cleaned, "\n\n")

	for _, re := range featureSectionPatterns {
		m := re.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		for _, bullet := range bulletRe.FindAllStringSubmatch(m[1], -1) {
			point := Sanitize(bulletPrefixRe.ReplaceAllString(bullet[1], ""))
			if len(point) >= 10 && len(point) < 500 {
				features = append(features, point)
			}
		}
	}

	if len(features) == 0 {
		for _, m := range boldRe.FindAllStringSubmatch(content, -1) {
			phrase := Sanitize(m[1])
			if len(phrase) < 5 || len(phrase) >= 80 || sectionTitleRe.MatchString(phrase) {
				continue
			}
			quoted := regexp.QuoteMeta(phrase)
			explRe := regexp.MustCompile(`(?i)\*\*` + quoted + `\*\*\s*(.{10,100})`)
			if em := explRe.FindStringSubmatch(content); em != nil && !strings.Contains(em[1], "**") {
				features = append(features, phrase+": "+Sanitize(em[1]))
				continue
			}
			paraRe := regexp.MustCompile(`(?i)\*\*` + quoted + `\*\*.*?\n(.{30,200})\n`)
			if pm := paraRe.FindStringSubmatch(content); pm != nil {
				features = append(features, phrase+": "+Sanitize(pm[1]))
			} else {
				features = append(features, phrase)
			}
		}
	}

	if len(features) < 3 {
		for _, re := range descriptivePatterns {
			for _, m := range re.FindAllStringSubmatch(content, -1) {
				if len(m[1]) < 15 || len(m[1]) >= 150 {
					continue
				}
				feature := Sanitize(m[0])
				prefix := feature
				if len(prefix) > 15 {
					prefix = prefix[:15]
				}
				dup := false
				for _, f := range features {
					if strings.Contains(f, prefix) {
						dup = true
						break
					}
				}
				if !dup {
					features = append(features, feature)
				}
			}
		}
	}

	return features
}

// SplitFeature normalizes a mined phrase into a title/description pair.
// Colon split first, then first sentence punctuation, then the first three
// words.
func SplitFeature(feature string) domain.Feature {
	if idx := strings.Index(feature, ":"); idx >= 0 {
		return domain.Feature{
			Title:       strings.TrimSpace(feature[:idx]),
			Description: strings.TrimSpace(feature[idx+1:]),
		}
	}
	if m := featureSplitRe.FindStringSubmatch(feature); m != nil {
		return domain.Feature{
			Title:       strings.TrimSpace(m[1]),
			Description: strings.TrimSpace(m[2]),
		}
	}
	words := strings.Split(feature, " ")
	if len(words) > 3 {
		return domain.Feature{
			Title:       strings.Join(words[:3], " "),
			Description: strings.Join(words[3:], " "),
		}
	}
	return domain.Feature{Title: feature}
}

func extractProjectTypes(content string) []string {
	var projects []string
	seen := map[string]bool{}

	for _, re := range projectPatterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			if len(m[1]) < 5 || len(m[1]) >= 150 {
				continue
			}
			for _, item := range projectSplitRe.Split(m[1], -1) {
				item = Sanitize(item)
				if len(item) >= 3 && !seen[item] {
					seen[item] = true
					projects = append(projects, item)
				}
			}
		}
	}

	// Residual citation brackets mean the source text was too noisy to
	// trust on its own; pad with the defaults.
	usable := len(projects) > 0
	for _, p := range projects {
		if strings.Contains(p, "[") {
			usable = false
			break
		}
	}
	if !usable {
		projects = append(projects, DefaultProjectTypes...)
	}

	if len(projects) > 5 {
		projects = projects[:5]
	}
	return projects
}
