// Package products provides the bulk product sync bounded context module.
package products

import (
	apphttp "storefront_sync_backend/internal/http"
	"storefront_sync_backend/internal/products/handler"
	"storefront_sync_backend/internal/products/service"
)

// Module wires the product sync HTTP routes.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the products module from already-initialized
// collaborators (composition happens in main).
func NewModule(svc *service.Service) *Module {
	return &Module{
		handler: handler.New(svc),
	}
}

func (m *Module) Name() string {
	return "products"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	limited := ctx.Engine.Group("/", ctx.RateLimiter.RateLimit())
	limited.POST("/update-images", m.handler.UpdateImages)
	limited.POST("/generate-product", m.handler.GenerateProduct)
	limited.POST("/create-product", m.handler.CreateProduct)
	limited.POST("/generate-and-create", m.handler.GenerateAndCreate)
	limited.POST("/bulk-generate", m.handler.BulkGenerate)
}

var _ apphttp.Module = (*Module)(nil)
