package printprovider

import (
	"context"

	"storefront_sync_backend/platform/config"
	"storefront_sync_backend/platform/logger"
)

// Module is the print-provider bounded context module.
type Module struct {
	client  *Client
	log     *logger.Logger
	enabled bool
}

// NewModule creates and initializes the print-provider module.
// Returns a disabled module if the provider API is not configured
// (graceful degradation: mockups are skippable).
func NewModule(cfg config.PrintProviderConfig, log *logger.Logger) *Module {
	if !cfg.IsPrintProviderEnabled() {
		log.Info("print-provider module disabled: PRINTIFY_API_KEY or PRINTIFY_SHOP_ID not configured")
		return &Module{log: log, enabled: false}
	}

	log.Info("print-provider module initialized")

	return &Module{
		client:  NewClient(cfg, log),
		log:     log,
		enabled: true,
	}
}

// IsEnabled returns true if the print-provider module is configured.
func (m *Module) IsEnabled() bool {
	return m != nil && m.enabled
}

// CreateMockup produces a mockup image URL for the given design.
// Failures are never propagated: any provider error, as well as a disabled
// module, yields ("", nil) so callers treat the mockup as skippable.
func (m *Module) CreateMockup(ctx context.Context, title, description, sourceImageURL string) (string, error) {
	if !m.IsEnabled() {
		return "", nil
	}

	mockupURL, err := m.client.CreateMockup(ctx, title, description, sourceImageURL)
	if err != nil {
		m.log.Warn("mockup creation failed, continuing without mockup", "title", title, "error", err)
		return "", nil
	}

	return mockupURL, nil
}
