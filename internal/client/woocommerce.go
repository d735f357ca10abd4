package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hollywool/seogen/internal/config"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// ErrNotConfigured is returned by every operation when the store
// credentials are absent. Callers treat it as "skip the upload", not as a
// failure.
var ErrNotConfigured = errors.New("woocommerce api not configured")

// ErrProductNotFound is returned when a name search yields no products.
var ErrProductNotFound = errors.New("product not found")

// WooProduct is the subset of the products endpoint payload we consume.
type WooProduct struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Permalink string `json:"permalink"`
}

type WooCommerceClient interface {
	// Configured reports whether store credentials were provided.
	Configured() bool
	// FindProductByName searches the store and picks an exact name or
	// slug match, falling back to the first search hit.
	FindProductByName(ctx context.Context, productName string) (*WooProduct, error)
	GetProduct(ctx context.Context, productID int) (*WooProduct, error)
	// UpdateProductDescription replaces a product's description field.
	UpdateProductDescription(ctx context.Context, productID int, description string) (*WooProduct, error)
}

type wooCommerceClient struct {
	rl         ratelimit.Limiter
	config     config.WooCommerceConfig
	httpClient *resty.Client
}

func NewWooCommerceClient(cfg config.WooCommerceConfig) WooCommerceClient {
	c := &wooCommerceClient{config: cfg}
	if !cfg.Configured() {
		log.Warnf("WooCommerce credentials missing, catalog operations will be no-ops")
		return c
	}

	c.rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	c.httpClient = resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")+"/wp-json/wc/v3").
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetBasicAuth(cfg.Key, cfg.Secret).
		SetHeader("Accept", "application/json")

	return c
}

func (c *wooCommerceClient) Configured() bool {
	return c.httpClient != nil
}

func (c *wooCommerceClient) FindProductByName(ctx context.Context, productName string) (*WooProduct, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	c.rl.Take()

	var products []WooProduct
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("search", productName).
		SetQueryParam("per_page", "10").
		SetResult(&products).
		Get("/products")
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("product search returned HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrProductNotFound, productName)
	}

	lowerName := strings.ToLower(productName)
	slug := strings.ReplaceAll(lowerName, " ", "-")
	for i, p := range products {
		if strings.ToLower(p.Name) == lowerName || strings.Contains(p.Slug, slug) {
			log.Infof("✅ Found product: ID=%d, name=%q", p.ID, p.Name)
			return &products[i], nil
		}
	}

	log.Warnf("No exact match for %q, using first of %d search results", productName, len(products))
	return &products[0], nil
}

func (c *wooCommerceClient) GetProduct(ctx context.Context, productID int) (*WooProduct, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	c.rl.Take()

	var product WooProduct
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&product).
		Get(fmt.Sprintf("/products/%d", productID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %d: %w", productID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("product fetch returned HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	return &product, nil
}

func (c *wooCommerceClient) UpdateProductDescription(ctx context.Context, productID int, description string) (*WooProduct, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	c.rl.Take()

	var product WooProduct
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]string{"description": description}).
		SetResult(&product).
		Put(fmt.Sprintf("/products/%d", productID))
	if err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", productID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("product update returned HTTP %d: %s", resp.StatusCode(), resp.String())
	}

	log.Infof("✅ Updated description for product %d (%s)", product.ID, product.Permalink)
	return &product, nil
}
