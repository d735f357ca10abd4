package service

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"hollywool/seogen/internal/cache"
	"hollywool/seogen/internal/classifier"
	"hollywool/seogen/internal/client"
	"hollywool/seogen/internal/config"
	"hollywool/seogen/internal/domain"
	"hollywool/seogen/internal/extractor"
	"hollywool/seogen/internal/renderer"
	"hollywool/seogen/internal/repository"
	"hollywool/seogen/internal/templates"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Service runs the classify, extract, render, persist cycle and the
// optional store upload around it.
type Service struct {
	fs         afero.Fs
	core       *domain.SemanticCore
	cache      cache.Cache
	templates  templates.Store
	repository repository.DescriptionRepository
	client     client.WooCommerceClient
	generator  config.GeneratorConfig
}

func NewService(
	fs afero.Fs,
	core *domain.SemanticCore,
	cache cache.Cache,
	templates templates.Store,
	repository repository.DescriptionRepository,
	client client.WooCommerceClient,
	generator config.GeneratorConfig,
) *Service {
	return &Service{
		fs:         fs,
		core:       core,
		cache:      cache,
		templates:  templates,
		repository: repository,
		client:     client,
		generator:  generator,
	}
}

// GenerateOptions tweak a single product run.
type GenerateOptions struct {
	// Force regenerates even when an output file already exists.
	Force bool
	// Upload pushes the description to the store after saving.
	Upload bool
	// WooProductID skips the name search when set.
	WooProductID int
}

// Generate produces and persists one product description. An existing
// output file short-circuits the run unless Force is set. Upload failures
// are soft: the description is already on disk, so the result reports the
// problem instead of failing.
func (s *Service) Generate(ctx context.Context, productName string, opts GenerateOptions) (*domain.GenerationResult, error) {
	if productName == "" {
		return nil, fmt.Errorf("product name is empty")
	}

	log.Infof("🧶 Generating description for: %q", productName)

	category := classifier.Classify(productName, s.core)
	log.Infof("Category: %s", category)

	result := &domain.GenerationResult{
		ProductName: productName,
		Category:    category,
	}

	if !opts.Force && s.repository.Exists(productName) {
		result.FilePath = s.repository.OutputPath(productName)
		result.Skipped = true
		result.Message = "description already exists, use force to regenerate"
		log.Infof("⏭️  Skipping %q: %s", productName, result.FilePath)
		return result, nil
	}

	html, err := s.buildDescription(productName, category)
	if err != nil {
		return nil, err
	}

	path, err := s.repository.Save(productName, html)
	if err != nil {
		return nil, err
	}
	result.FilePath = path

	if opts.Upload {
		s.upload(ctx, productName, html, opts.WooProductID, result)
	}

	return result, nil
}

// buildDescription prefers a hand-written premade file; otherwise it runs
// the full pipeline against cached research data.
func (s *Service) buildDescription(productName string, category domain.CategoryTag) (string, error) {
	if html, ok := s.repository.FindPremade(productName); ok {
		return html, nil
	}

	profile := s.cache.Profile(productName)
	ref := s.cache.Reference(productName)
	specs := extractor.Extract(ref)
	if profile != nil {
		specs = applyProfile(specs, profile)
	}

	html, err := renderer.Render(renderer.Params{
		ProductName: productName,
		Category:    category,
		Specs:       specs,
		Profile:     profile,
		Data:        s.core.Category(category),
		ExcludeSlug: classifier.Slugify(productName),
		StoreName:   s.generator.StoreName,
		StoreURL:    s.generator.StoreBaseURL,
		Template:    s.templates.Load(category),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render description for %q: %w", productName, err)
	}
	return html, nil
}

// applyProfile overlays curated profile fields onto mined specifications.
// Profile values win whenever present.
func applyProfile(specs domain.Specification, profile *domain.Profile) domain.Specification {
	override := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	override(&specs.FiberContent, profile.Specifications.Composition)
	override(&specs.Weight, profile.Specifications.Weight)
	override(&specs.Length, profile.Specifications.Length)
	override(&specs.NeedleSize, profile.Specifications.NeedleSize)
	override(&specs.CrochetHook, profile.Specifications.CrochetHook)
	override(&specs.GaugeStitches, string(profile.Specifications.GaugeStitches))
	override(&specs.GaugeRows, string(profile.Specifications.GaugeRows))
	override(&specs.Care, profile.Specifications.Care)
	override(&specs.Origin, profile.Specifications.Origin)

	if len(profile.Features) > 0 {
		features := make([]domain.Feature, 0, len(profile.Features))
		for _, f := range profile.Features {
			features = append(features, extractor.SplitFeature(f))
		}
		if len(features) > 8 {
			features = features[:8]
		}
		specs.Features = features
	}
	return specs
}

func (s *Service) upload(ctx context.Context, productName, html string, productID int, result *domain.GenerationResult) {
	if !s.client.Configured() {
		result.Message = "woocommerce not configured, upload skipped"
		log.Warnf("⏭️  Upload skipped for %q: store credentials missing", productName)
		return
	}

	if productID == 0 {
		product, err := s.client.FindProductByName(ctx, productName)
		if err != nil {
			result.Message = fmt.Sprintf("upload failed: %v", err)
			log.Errorf("❌ Could not find %q in store: %v", productName, err)
			return
		}
		productID = product.ID
	}

	if _, err := s.client.UpdateProductDescription(ctx, productID, html); err != nil {
		result.Message = fmt.Sprintf("upload failed: %v", err)
		log.Errorf("❌ Failed to upload description for %q: %v", productName, err)
		return
	}
	result.Uploaded = true
}

// GenerateBatch processes products sequentially, regenerating existing
// files, and persists a summary report. A failing product is recorded and
// the batch moves on.
func (s *Service) GenerateBatch(ctx context.Context, productNames []string, opts GenerateOptions) (*domain.BatchReport, string, error) {
	if len(productNames) == 0 {
		return nil, "", fmt.Errorf("product list is empty")
	}

	opts.Force = true
	report := &domain.BatchReport{
		Date:  time.Now().UTC(),
		Total: len(productNames),
	}

	for i, productName := range productNames {
		log.Infof("[%d/%d] Processing %q", i+1, len(productNames), productName)

		result, err := s.Generate(ctx, productName, opts)
		if err != nil {
			log.Errorf("❌ Failed to process %q: %v", productName, err)
			report.Failed++
			report.Failures = append(report.Failures, domain.BatchFailure{
				ProductName: productName,
				Error:       err.Error(),
			})
			continue
		}

		report.Successful++
		report.Items = append(report.Items, *result)
		log.Infof("✅ Processed %q", productName)
	}

	log.Infof("📊 Batch done: %d succeeded, %d failed", report.Successful, report.Failed)

	path, err := s.repository.SaveReport(report)
	if err != nil {
		return report, "", err
	}
	return report, path, nil
}

// ReadProductList parses a product list file: one name per line, blank
// lines and #-comments ignored.
func (s *Service) ReadProductList(path string) ([]string, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open product list %s: %w", path, err)
	}
	defer f.Close()

	var products []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		products = append(products, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product list %s: %w", path, err)
	}
	return products, nil
}
