package templates

import (
	"fmt"
	"path/filepath"

	"hollywool/seogen/internal/domain"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Store resolves description templates from disk with a built-in default
// as the last resort.
type Store interface {
	// Load returns template content for a category. A file named
	// <category>_template.txt is preferred over the generic default;
	// candidate directories are searched in order.
	Load(category domain.CategoryTag) string
}

type store struct {
	fs   afero.Fs
	dirs []string
}

func New(fs afero.Fs, dirs []string) Store {
	return &store{fs: fs, dirs: dirs}
}

const defaultTemplateName = "prompt_template.txt"

func (s *store) Load(category domain.CategoryTag) string {
	var candidates []string
	if category != "" {
		for _, dir := range s.dirs {
			candidates = append(candidates, filepath.Join(dir, fmt.Sprintf("%s_template.txt", category)))
		}
	}
	for _, dir := range s.dirs {
		candidates = append(candidates, filepath.Join(dir, defaultTemplateName))
	}

	for _, path := range candidates {
		content, err := afero.ReadFile(s.fs, path)
		if err != nil {
			continue
		}
		if len(content) == 0 {
			log.Warnf("Template file %s is empty, skipping", path)
			continue
		}
		log.Debugf("Loaded template from %s", path)
		return string(content)
	}

	log.Debugf("No template file found for category %q, using built-in default", category)
	return defaultTemplate
}
