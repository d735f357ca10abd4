package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	WooCommerce WooCommerceConfig `mapstructure:"woocommerce"`
	Paths       PathsConfig       `mapstructure:"paths"`
	Generator   GeneratorConfig   `mapstructure:"generator"`
}

// WooCommerceConfig holds WooCommerce REST API configuration. When any of
// BaseURL, Key or Secret is empty the catalog client reports itself as not
// configured and every remote operation becomes a no-op.
type WooCommerceConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	Key                  string `mapstructure:"key"`
	Secret               string `mapstructure:"secret"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
}

// Configured reports whether all three credentials are present.
func (c WooCommerceConfig) Configured() bool {
	return c.BaseURL != "" && c.Key != "" && c.Secret != ""
}

// PathsConfig holds every directory and file the generator reads or writes.
type PathsConfig struct {
	SemanticCore []string `mapstructure:"semantic_core"`
	TemplateDirs []string `mapstructure:"template_dirs"`
	CacheDir     string   `mapstructure:"cache_dir"`
	ProfilesDir  string   `mapstructure:"profiles_dir"`
	PremadeDir   string   `mapstructure:"premade_dir"`
	OutputDir    string   `mapstructure:"output_dir"`
}

// GeneratorConfig holds content generation settings.
type GeneratorConfig struct {
	StoreName    string `mapstructure:"store_name"`
	StoreBaseURL string `mapstructure:"store_base_url"`
}

// Load loads configuration from config.yaml with environment variable
// overrides. A missing config file is not an error: every setting has a
// usable default.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("woocommerce.base_url", "")
	viper.SetDefault("woocommerce.key", "")
	viper.SetDefault("woocommerce.secret", "")
	viper.SetDefault("woocommerce.timeout", 30)
	viper.SetDefault("woocommerce.max_retries", 3)
	viper.SetDefault("woocommerce.max_requests_per_second", 2)

	viper.SetDefault("paths.semantic_core", []string{
		"semantic_core.json",
		"data/semantic_core.json",
		"data/input/semantic_core.json",
	})
	viper.SetDefault("paths.template_dirs", []string{
		"data/templates",
		"templates",
	})
	viper.SetDefault("paths.cache_dir", "data/research_cache")
	viper.SetDefault("paths.profiles_dir", "data/yarn_profiles")
	viper.SetDefault("paths.premade_dir", "data/premade")
	viper.SetDefault("paths.output_dir", "data/output")

	viper.SetDefault("generator.store_name", "Hollywool")
	viper.SetDefault("generator.store_base_url", "https://hollywool.eu")
}
