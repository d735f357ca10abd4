package cache

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"strings"

	"hollywool/seogen/internal/domain"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Cache resolves per-product JSON files written by the research tooling.
// Product names arrive in whatever spelling the shop uses while the files
// on disk were named by hand, so every lookup walks an ordered list of
// filename variants and falls back to a fuzzy directory scan. A miss is
// normal operation and returns nil.
type Cache interface {
	Reference(productName string) *domain.ReferenceText
	Profile(productName string) *domain.Profile
}

type cache struct {
	fs           afero.Fs
	referenceDir string
	profilesDir  string
}

func New(fs afero.Fs, referenceDir, profilesDir string) Cache {
	return &cache{fs: fs, referenceDir: referenceDir, profilesDir: profilesDir}
}

var (
	spaceRe   = regexp.MustCompile(`\s+`)
	nonWordRe = regexp.MustCompile(`[^\w-]`)
)

// NameVariants lists candidate file base names for a product, most likely
// spelling first. "Drops X" products additionally get the historical
// drops_x and drops-x spellings.
func NameVariants(productName string) []string {
	lower := strings.ToLower(productName)
	variants := []string{
		nonWordRe.ReplaceAllString(spaceRe.ReplaceAllString(lower, "_"), ""),
		nonWordRe.ReplaceAllString(spaceRe.ReplaceAllString(productName, "_"), ""),
		nonWordRe.ReplaceAllString(spaceRe.ReplaceAllString(lower, "-"), ""),
		nonWordRe.ReplaceAllString(spaceRe.ReplaceAllString(lower, ""), ""),
	}
	if strings.HasPrefix(lower, "drops ") {
		variants = append(variants,
			strings.Replace(lower, "drops ", "drops_", 1),
			strings.Replace(lower, "drops ", "drops-", 1))
	}

	seen := map[string]bool{}
	out := variants[:0]
	for _, v := range variants {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Reference returns cached research text for a product, or nil when no
// usable file exists.
func (c *cache) Reference(productName string) *domain.ReferenceText {
	for _, variant := range NameVariants(productName) {
		path := filepath.Join(c.referenceDir, "perplexity_"+variant+".json")
		if ref := readReference(c.fs, path); ref != nil {
			log.Debugf("Found reference text: %s", path)
			return ref
		}
	}

	// Fuzzy pass over the directory listing.
	needle := strings.ToLower(spaceRe.ReplaceAllString(strings.ToLower(productName), "_"))
	entries, err := afero.ReadDir(c.fs, c.referenceDir)
	if err != nil {
		log.Debugf("Reference cache directory unavailable: %v", err)
		return nil
	}
	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if strings.Contains(name, "perplexity") && strings.Contains(name, needle) {
			path := filepath.Join(c.referenceDir, entry.Name())
			if ref := readReference(c.fs, path); ref != nil {
				log.Debugf("Found reference text by fuzzy match: %s", path)
				return ref
			}
		}
	}

	log.Debugf("No reference text found for %q", productName)
	return nil
}

func readReference(fs afero.Fs, path string) *domain.ReferenceText {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil
	}
	var ref domain.ReferenceText
	if err := json.Unmarshal(raw, &ref); err != nil {
		log.Warnf("Unreadable reference file %s: %v", path, err)
		return nil
	}
	if ref.Data == "" {
		return nil
	}
	return &ref
}

// Profile returns the structured override profile for a product, or nil.
func (c *cache) Profile(productName string) *domain.Profile {
	if productName == "" {
		return nil
	}
	for _, variant := range NameVariants(productName) {
		path := filepath.Join(c.profilesDir, variant+".json")
		if p := readProfile(c.fs, path); p != nil {
			log.Infof("Loaded profile for %s", p.Name)
			return p
		}
	}

	// Match a file whose name carries every significant word of the
	// product name.
	parts := significantParts(productName)
	if len(parts) > 0 {
		entries, err := afero.ReadDir(c.fs, c.profilesDir)
		if err != nil {
			log.Debugf("Profiles directory unavailable: %v", err)
			return nil
		}
		for _, entry := range entries {
			fileName := strings.ToLower(strings.TrimSuffix(entry.Name(), ".json"))
			if containsAll(fileName, parts) {
				path := filepath.Join(c.profilesDir, entry.Name())
				if p := readProfile(c.fs, path); p != nil {
					log.Infof("Loaded profile for %s by partial match", p.Name)
					return p
				}
			}
		}
	}

	log.Debugf("No profile found for %q", productName)
	return nil
}

func readProfile(fs afero.Fs, path string) *domain.Profile {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil
	}
	var p domain.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Warnf("Unreadable profile file %s: %v", path, err)
		return nil
	}
	return &p
}

func significantParts(productName string) []string {
	var parts []string
	for _, part := range regexp.MustCompile(`\s+|-`).Split(strings.ToLower(productName), -1) {
		if len(part) > 3 {
			parts = append(parts, nonWordRe.ReplaceAllString(part, ""))
		}
	}
	return parts
}

func containsAll(s string, parts []string) bool {
	for _, p := range parts {
		if p != "" && !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
