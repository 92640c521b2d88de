// Package handler exposes the product sync HTTP endpoints.
package handler

import (
	"net/http"

	"storefront_sync_backend/internal/products/service"
	"storefront_sync_backend/internal/products/transport"
	"storefront_sync_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler holds the orchestrator service behind the product routes.
type Handler struct {
	svc *service.Service
}

// New creates a new products handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// UpdateImages handles POST /update-images.
// A structurally invalid body is rejected before any collaborator is called.
func (h *Handler) UpdateImages(c *gin.Context) {
	var req transport.UpdateImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "productIds is required and must be a non-empty list of positive ids", nil)
		return
	}

	results, err := h.svc.UpdateImages(c.Request.Context(), req.ProductIDs, req.Append)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	updated := make([]transport.UpdatedImage, 0, len(results))
	for _, result := range results {
		if result.Ok {
			updated = append(updated, transport.UpdatedImage{ID: result.ID, Title: result.Title, Image: result.Image})
		}
	}

	httpkit.OK(c, transport.UpdateImagesResponse{
		Success: true,
		Updated: updated,
		Results: results,
	})
}

// GenerateProduct handles POST /generate-product.
func (h *Handler) GenerateProduct(c *gin.Context) {
	var req transport.GenerateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	product, err := h.svc.GenerateProduct(c.Request.Context(), req.Seed)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, transport.GenerateProductResponse{Ok: true, Product: product})
}

// CreateProduct handles POST /create-product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req transport.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Product == nil {
		httpkit.Error(c, http.StatusBadRequest, "product is required", nil)
		return
	}

	created, err := h.svc.CreateProduct(c.Request.Context(), *req.Product)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, transport.CreateProductResponse{Ok: true, Shopify: created})
}

// GenerateAndCreate handles POST /generate-and-create.
func (h *Handler) GenerateAndCreate(c *gin.Context) {
	var req transport.GenerateAndCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "seed is required", nil)
		return
	}

	generated, created, err := h.svc.GenerateAndCreate(c.Request.Context(), req.Seed)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, transport.GenerateAndCreateResponse{Ok: true, Generated: generated, Shopify: created})
}

// BulkGenerate handles POST /bulk-generate.
// Per-item errors are embedded in the results; the request only fails as a
// whole for a malformed body or an interruption outside the item loop.
func (h *Handler) BulkGenerate(c *gin.Context) {
	var req transport.BulkGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	results, created, err := h.svc.BulkGenerate(c.Request.Context(), req.Seeds, req.Count)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, transport.BulkGenerateResponse{
		Ok:           true,
		CreatedCount: created,
		Results:      results,
	})
}
