package service

import (
	"context"
	"errors"
	"testing"

	"hollywool/seogen/internal/cache"
	"hollywool/seogen/internal/client"
	"hollywool/seogen/internal/config"
	"hollywool/seogen/internal/domain"
	"hollywool/seogen/internal/repository"
	"hollywool/seogen/internal/semcore"
	"hollywool/seogen/internal/templates"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWoo struct {
	configured  bool
	findErr     error
	updateErr   error
	updatedID   int
	updatedHTML string
}

func (s *stubWoo) Configured() bool { return s.configured }

func (s *stubWoo) FindProductByName(_ context.Context, name string) (*client.WooProduct, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return &client.WooProduct{ID: 77, Name: name}, nil
}

func (s *stubWoo) GetProduct(_ context.Context, id int) (*client.WooProduct, error) {
	return &client.WooProduct{ID: id}, nil
}

func (s *stubWoo) UpdateProductDescription(_ context.Context, id int, html string) (*client.WooProduct, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.updatedID = id
	s.updatedHTML = html
	return &client.WooProduct{ID: id}, nil
}

func newTestService(fs afero.Fs, woo client.WooCommerceClient) *Service {
	if woo == nil {
		woo = &stubWoo{}
	}
	return NewService(
		fs,
		semcore.Fallback(),
		cache.New(fs, "data/research_cache", "data/yarn_profiles"),
		templates.New(fs, []string{"data/templates"}),
		repository.NewDescriptionRepository(fs, "data/output", "data/premade"),
		woo,
		config.GeneratorConfig{StoreName: "Hollywool", StoreBaseURL: "https://hollywool.eu"},
	)
}

func TestGenerate_FullPipeline(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := newTestService(fs, nil)

	result, err := svc.Generate(context.Background(), "Drops Air", GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryYarn, result.Category)
	assert.False(t, result.Skipped)

	content, err := afero.ReadFile(fs, result.FilePath)
	require.NoError(t, err)
	html := string(content)
	assert.Contains(t, html, "Drops Air")
	// No cached data: the suggestion engine's blown-yarn list fills the
	// "perfect for" section.
	assert.Contains(t, html, "Lightweight but warm sweaters")
	assert.NotContains(t, html, "{{")
}

func TestGenerate_SkipExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := newTestService(fs, nil)

	first, err := svc.Generate(context.Background(), "Drops Air", GenerateOptions{})
	require.NoError(t, err)

	second, err := svc.Generate(context.Background(), "Drops Air", GenerateOptions{})
	require.NoError(t, err)
	assert.True(t, second.Skipped)
	assert.Equal(t, first.FilePath, second.FilePath)

	third, err := svc.Generate(context.Background(), "Drops Air", GenerateOptions{Force: true})
	require.NoError(t, err)
	assert.False(t, third.Skipped)
}

func TestGenerate_PremadePreferred(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data/premade/drops-air.html",
		[]byte("<div>handmade</div>"), 0o644))
	svc := newTestService(fs, nil)

	result, err := svc.Generate(context.Background(), "Drops Air", GenerateOptions{})
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, result.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "<div>handmade</div>", string(content))
}

func TestGenerate_ProfileOverridesExtraction(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data/research_cache/perplexity_drops_sky.json",
		[]byte(`{"data":"Fiber Content: 100% Acrylic\nWeight: 50 g"}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "data/yarn_profiles/drops_sky.json",
		[]byte(`{"name":"Drops Sky","specifications":{"composition":"74% Alpaca, 18% Polyamide, 8% Wool"},"bestFor":["Featherweight cardigans"]}`), 0o644))
	svc := newTestService(fs, nil)

	result, err := svc.Generate(context.Background(), "Drops Sky", GenerateOptions{})
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, result.FilePath)
	require.NoError(t, err)
	html := string(content)
	assert.Contains(t, html, "74% Alpaca, 18% Polyamide, 8% Wool")
	assert.Contains(t, html, "Featherweight cardigans")
	// The mined weight survives because the profile does not override it.
	assert.Contains(t, html, "50 g")
}

func TestGenerate_UploadSuccess(t *testing.T) {
	fs := afero.NewMemMapFs()
	woo := &stubWoo{configured: true}
	svc := newTestService(fs, woo)

	result, err := svc.Generate(context.Background(), "Drops Air", GenerateOptions{Upload: true})
	require.NoError(t, err)

	assert.True(t, result.Uploaded)
	assert.Equal(t, 77, woo.updatedID)
	assert.Contains(t, woo.updatedHTML, "Drops Air")
}

func TestGenerate_UploadFailureIsSoft(t *testing.T) {
	fs := afero.NewMemMapFs()
	woo := &stubWoo{configured: true, findErr: errors.New("search exploded")}
	svc := newTestService(fs, woo)

	result, err := svc.Generate(context.Background(), "Drops Air", GenerateOptions{Upload: true})
	require.NoError(t, err)

	assert.False(t, result.Uploaded)
	assert.Contains(t, result.Message, "search exploded")
	// The file was still written.
	assert.True(t, svc.repository.Exists("Drops Air"))
}

func TestGenerate_UploadNotConfigured(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := newTestService(fs, &stubWoo{configured: false})

	result, err := svc.Generate(context.Background(), "Drops Air", GenerateOptions{Upload: true})
	require.NoError(t, err)

	assert.False(t, result.Uploaded)
	assert.Contains(t, result.Message, "not configured")
}

func TestGenerateBatch_PartialFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := newTestService(fs, nil)

	report, path, err := svc.GenerateBatch(context.Background(),
		[]string{"Drops Air", "", "Clover Amour Crochet Hook 5mm"}, GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Successful)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "", report.Failures[0].ProductName)

	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerateBatch_Empty(t *testing.T) {
	svc := newTestService(afero.NewMemMapFs(), nil)

	_, _, err := svc.GenerateBatch(context.Background(), nil, GenerateOptions{})
	assert.Error(t, err)
}

func TestReadProductList(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "products.txt",
		[]byte("# header comment\nDrops Air\n\n  Drops Sky  \n# trailing\n"), 0o644))
	svc := newTestService(fs, nil)

	products, err := svc.ReadProductList("products.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"Drops Air", "Drops Sky"}, products)
}

func TestReadProductList_Missing(t *testing.T) {
	svc := newTestService(afero.NewMemMapFs(), nil)

	_, err := svc.ReadProductList("nope.txt")
	assert.Error(t, err)
}
