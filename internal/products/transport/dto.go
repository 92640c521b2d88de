// Package transport defines the request/response DTOs for the products module.
package transport

import (
	"storefront_sync_backend/internal/generation"
	"storefront_sync_backend/internal/storefront"
)

// UpdateImagesRequest is the body of POST /update-images.
type UpdateImagesRequest struct {
	ProductIDs []int64 `json:"productIds" binding:"required,min=1,dive,gt=0"`
	// Append adds the derived image next to the existing ones instead of
	// replacing the image set.
	Append bool `json:"append"`
}

// GenerateProductRequest is the body of POST /generate-product.
// Seed is optional; the first demo seed is used when omitted.
type GenerateProductRequest struct {
	Seed *generation.Seed `json:"seed"`
}

// CreateProductRequest is the body of POST /create-product.
type CreateProductRequest struct {
	Product *generation.GeneratedProduct `json:"product" binding:"required"`
}

// GenerateAndCreateRequest is the body of POST /generate-and-create.
type GenerateAndCreateRequest struct {
	Seed generation.Seed `json:"seed" binding:"required"`
}

// BulkGenerateRequest is the body of POST /bulk-generate.
// Seeds defaults to the built-in demo list; Count caps how many are processed.
type BulkGenerateRequest struct {
	Seeds []generation.Seed `json:"seeds"`
	Count int               `json:"count" binding:"omitempty,gt=0"`
}

// SyncResult is the per-item outcome of a batch run. Results are ordered
// 1:1 with the input items.
type SyncResult struct {
	Index int    `json:"index"`
	ID    int64  `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	Image string `json:"image,omitempty"`
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// UpdatedImage is one successful image write in an /update-images run.
type UpdatedImage struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// UpdateImagesResponse is the body returned by POST /update-images.
type UpdateImagesResponse struct {
	Success bool           `json:"success"`
	Updated []UpdatedImage `json:"updated"`
	Results []SyncResult   `json:"results"`
}

// GenerateProductResponse is the body returned by POST /generate-product.
type GenerateProductResponse struct {
	Ok      bool                         `json:"ok"`
	Product *generation.GeneratedProduct `json:"product"`
}

// CreateProductResponse is the body returned by POST /create-product.
type CreateProductResponse struct {
	Ok      bool                `json:"ok"`
	Shopify *storefront.Product `json:"shopify"`
}

// GenerateAndCreateResponse is the body returned by POST /generate-and-create.
type GenerateAndCreateResponse struct {
	Ok        bool                         `json:"ok"`
	Generated *generation.GeneratedProduct `json:"generated"`
	Shopify   *storefront.Product          `json:"shopify"`
}

// BulkGenerateResponse is the body returned by POST /bulk-generate.
type BulkGenerateResponse struct {
	Ok           bool         `json:"ok"`
	CreatedCount int          `json:"created_count"`
	Results      []SyncResult `json:"results"`
}
