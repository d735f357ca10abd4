package repository

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"hollywool/seogen/internal/domain"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DescriptionRepository persists rendered descriptions and batch reports
// as files, and resolves hand-written premade HTML that short-circuits
// generation.
type DescriptionRepository interface {
	// OutputPath returns where a product's description lives on disk.
	OutputPath(productName string) string
	Exists(productName string) bool
	Save(productName, html string) (string, error)
	// FindPremade looks for a ready-made HTML file for the product and
	// returns its content with markdown code fences stripped.
	FindPremade(productName string) (string, bool)
	SaveReport(report *domain.BatchReport) (string, error)
}

type descriptionRepository struct {
	fs         afero.Fs
	outputDir  string
	premadeDir string
}

func NewDescriptionRepository(fs afero.Fs, outputDir, premadeDir string) DescriptionRepository {
	return &descriptionRepository{fs: fs, outputDir: outputDir, premadeDir: premadeDir}
}

var spaceRe = regexp.MustCompile(`\s+`)

func outputFilename(productName string) string {
	return spaceRe.ReplaceAllString(productName, "_") + "_description.html"
}

func (r *descriptionRepository) OutputPath(productName string) string {
	return filepath.Join(r.outputDir, outputFilename(productName))
}

func (r *descriptionRepository) Exists(productName string) bool {
	ok, err := afero.Exists(r.fs, r.OutputPath(productName))
	return err == nil && ok
}

func (r *descriptionRepository) Save(productName, html string) (string, error) {
	if err := r.fs.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := r.OutputPath(productName)
	if err := afero.WriteFile(r.fs, path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("failed to save description: %w", err)
	}

	log.Infof("Description saved to: %s", path)
	return path, nil
}

var codeFenceRe = regexp.MustCompile("```html|```")

// FindPremade tries the same filename spellings a human would have used
// when saving the file by hand.
func (r *descriptionRepository) FindPremade(productName string) (string, bool) {
	lower := strings.ToLower(productName)
	candidates := []string{
		spaceRe.ReplaceAllString(productName, "-"),
		spaceRe.ReplaceAllString(productName, "_"),
		spaceRe.ReplaceAllString(productName, ""),
		spaceRe.ReplaceAllString(lower, "-"),
		spaceRe.ReplaceAllString(lower, "_"),
		spaceRe.ReplaceAllString(lower, ""),
	}
	if strings.HasPrefix(lower, "drops ") {
		rest := productName[len("drops "):]
		candidates = append(candidates,
			"DROPS-"+spaceRe.ReplaceAllString(rest, "-"),
			"drops-"+strings.ToLower(spaceRe.ReplaceAllString(rest, "-")))
	}

	for _, name := range candidates {
		path := filepath.Join(r.premadeDir, name+".html")
		content, err := afero.ReadFile(r.fs, path)
		if err != nil {
			continue
		}
		log.Infof("Found ready HTML file: %s", path)
		return codeFenceRe.ReplaceAllString(string(content), ""), true
	}
	return "", false
}

func (r *descriptionRepository) SaveReport(report *domain.BatchReport) (string, error) {
	if err := r.fs.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(r.outputDir, fmt.Sprintf("batch_report_%d.json", time.Now().UnixMilli()))
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode batch report: %w", err)
	}
	if err := afero.WriteFile(r.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save batch report: %w", err)
	}

	log.Infof("📝 Batch report saved to: %s", path)
	return path, nil
}
