// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// StorefrontConfig provides settings for the storefront Admin API client.
type StorefrontConfig interface {
	GetStoreDomain() string
	GetStoreAccessToken() string
	GetStoreAPIVersion() string
}

// PrintProviderConfig provides settings for the print-provider API client.
type PrintProviderConfig interface {
	GetPrintProviderAPIKey() string
	GetPrintProviderShopID() string
	IsPrintProviderEnabled() bool
}

// GenerationConfig provides settings for the text-generation API client.
type GenerationConfig interface {
	GetGenerationAPIKey() string
	GetGenerationBaseURL() string
	GetGenerationModel() string
}

// PricingConfig provides the pricing fractions for retail price computation.
type PricingConfig interface {
	GetInflationRate() float64
	GetTaxRate() float64
	GetMargin() float64
}

// PacingConfig provides settings for the between-item pacing strategy.
type PacingConfig interface {
	GetPacingStrategy() string
	GetPacingDelay() time.Duration
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                 string
	HTTPAddr            string
	StoreDomain         string
	StoreAccessToken    string
	StoreAPIVersion     string
	PrintProviderAPIKey string
	PrintProviderShopID string
	GenerationAPIKey    string
	GenerationBaseURL   string
	GenerationModel     string
	InflationRate       float64
	TaxRate             float64
	Margin              float64
	PacingStrategy      string
	PacingDelay         time.Duration
	CORSAllowAll        bool
	CORSOrigins         []string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// StorefrontConfig implementation
func (c *Config) GetStoreDomain() string      { return c.StoreDomain }
func (c *Config) GetStoreAccessToken() string { return c.StoreAccessToken }
func (c *Config) GetStoreAPIVersion() string  { return c.StoreAPIVersion }

// PrintProviderConfig implementation
func (c *Config) GetPrintProviderAPIKey() string { return c.PrintProviderAPIKey }
func (c *Config) GetPrintProviderShopID() string { return c.PrintProviderShopID }
func (c *Config) IsPrintProviderEnabled() bool {
	return c.PrintProviderAPIKey != "" && c.PrintProviderShopID != ""
}

// GenerationConfig implementation
func (c *Config) GetGenerationAPIKey() string  { return c.GenerationAPIKey }
func (c *Config) GetGenerationBaseURL() string { return c.GenerationBaseURL }
func (c *Config) GetGenerationModel() string   { return c.GenerationModel }

// PricingConfig implementation
func (c *Config) GetInflationRate() float64 { return c.InflationRate }
func (c *Config) GetTaxRate() float64       { return c.TaxRate }
func (c *Config) GetMargin() float64        { return c.Margin }

// PacingConfig implementation
func (c *Config) GetPacingStrategy() string     { return c.PacingStrategy }
func (c *Config) GetPacingDelay() time.Duration { return c.PacingDelay }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// Load reads configuration from environment variables.
// Missing storefront or text-generation credentials is a startup error,
// not a per-request one.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		StoreDomain:         normalizeDomain(getEnv("SHOPIFY_STORE_DOMAIN", "")),
		StoreAccessToken:    getEnv("SHOPIFY_ACCESS_TOKEN", ""),
		StoreAPIVersion:     getEnv("SHOPIFY_API_VERSION", "2024-10"),
		PrintProviderAPIKey: getEnv("PRINTIFY_API_KEY", ""),
		PrintProviderShopID: getEnv("PRINTIFY_SHOP_ID", ""),
		GenerationAPIKey:    getEnv("OPENAI_API_KEY", ""),
		GenerationBaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		GenerationModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		InflationRate:       mustFraction(getEnv("PRICE_INFLATION_RATE", "0.05")),
		TaxRate:             mustFraction(getEnv("PRICE_TAX_RATE", "0.07")),
		Margin:              mustFraction(getEnv("PRICE_MARGIN", "0.35")),
		PacingStrategy:      getEnv("PACING_STRATEGY", "fixed"),
		PacingDelay:         mustDuration(getEnv("PACING_DELAY", "800ms")),
		CORSAllowAll:        corsAllowAll,
		CORSOrigins:         corsOrigins,
	}

	if cfg.StoreDomain == "" || cfg.StoreAccessToken == "" {
		return nil, fmt.Errorf("SHOPIFY_STORE_DOMAIN and SHOPIFY_ACCESS_TOKEN are required")
	}
	if cfg.GenerationAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.InflationRate < 0 || cfg.InflationRate >= 1 {
		return nil, fmt.Errorf("PRICE_INFLATION_RATE must be a fraction in [0,1)")
	}
	if cfg.TaxRate < 0 || cfg.TaxRate >= 1 {
		return nil, fmt.Errorf("PRICE_TAX_RATE must be a fraction in [0,1)")
	}
	if cfg.Margin < 0 || cfg.Margin >= 1 {
		return nil, fmt.Errorf("PRICE_MARGIN must be a fraction in [0,1)")
	}
	if cfg.PacingStrategy != "fixed" && cfg.PacingStrategy != "token-bucket" {
		return nil, fmt.Errorf("PACING_STRATEGY must be 'fixed' or 'token-bucket'")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustFraction(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}

// normalizeDomain strips scheme and trailing slashes from the shop domain.
func normalizeDomain(domain string) string {
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	return strings.TrimSuffix(domain, "/")
}
