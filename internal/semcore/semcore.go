package semcore

import (
	"encoding/json"
	"fmt"

	"hollywool/seogen/internal/domain"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Load reads the semantic core from the first existing path in searchPaths.
// It never fails: a missing or unparsable file is logged and the built-in
// fallback core is returned instead, so the classify/render path always has
// a registry to work with.
func Load(fs afero.Fs, searchPaths []string) *domain.SemanticCore {
	var foundPath string
	for _, p := range searchPaths {
		if p == "" {
			continue
		}
		if ok, _ := afero.Exists(fs, p); ok {
			foundPath = p
			break
		}
	}

	if foundPath == "" {
		log.Warnf("Semantic core not found in any of %d locations, using fallback core", len(searchPaths))
		return Fallback()
	}

	log.Infof("Loading semantic core from: %s", foundPath)

	raw, err := afero.ReadFile(fs, foundPath)
	if err != nil {
		log.Errorf("Error reading semantic core %s: %v, using fallback core", foundPath, err)
		return Fallback()
	}

	core := domain.NewSemanticCore()
	if err := json.Unmarshal(raw, core); err != nil {
		log.Errorf("Error parsing semantic core %s: %v, using fallback core", foundPath, err)
		return Fallback()
	}

	if err := Validate(core); err != nil {
		log.Errorf("Invalid semantic core %s: %v, using fallback core", foundPath, err)
		return Fallback()
	}

	if core.Len() == 0 {
		log.Warn("Semantic core is empty, using fallback core")
		return Fallback()
	}

	log.Infof("Semantic core loaded successfully with %d categories", core.Len())
	return core
}

// Validate checks the structural invariants of a loaded core: at least one
// category, and every category carries non-nil keyword and product sets.
// Missing sets are normalized to empty slices rather than rejected.
func Validate(core *domain.SemanticCore) error {
	if core == nil {
		return fmt.Errorf("semantic core must not be nil")
	}
	if core.Len() == 0 {
		return fmt.Errorf("semantic core must contain at least one category")
	}

	seen := make(map[domain.CategoryTag]bool, core.Len())
	for _, tag := range core.Tags() {
		if seen[tag] {
			return fmt.Errorf("duplicate category %q", tag)
		}
		seen[tag] = true

		data := core.Category(tag)
		if data == nil {
			return fmt.Errorf("category %q has no data", tag)
		}
		if data.Keywords == nil {
			log.Warnf("Category %q is missing the keywords field", tag)
			data.Keywords = []string{}
		}
		if data.Products == nil {
			log.Warnf("Category %q is missing the products field", tag)
			data.Products = []domain.Product{}
		}
	}
	return nil
}
