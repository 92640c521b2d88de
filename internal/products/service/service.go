// Package service implements the bulk product sync orchestrator.
package service

import (
	"context"
	"fmt"
	"strings"

	"storefront_sync_backend/internal/generation"
	"storefront_sync_backend/internal/pricing"
	"storefront_sync_backend/internal/products/transport"
	"storefront_sync_backend/internal/storefront"
	"storefront_sync_backend/platform/apperr"
	"storefront_sync_backend/platform/logger"
	"storefront_sync_backend/platform/pacing"

	"github.com/google/uuid"
)

// StorefrontClient is the view of the storefront Admin API the orchestrator
// needs.
type StorefrontClient interface {
	GetProduct(ctx context.Context, id int64) (*storefront.Product, error)
	ReplaceProductImages(ctx context.Context, id int64, imageURL string) error
	AppendProductImage(ctx context.Context, id int64, imageURL string) error
	CreateProduct(ctx context.Context, product storefront.NewProduct) (*storefront.Product, error)
}

// Generator produces a structured product from a seed.
type Generator interface {
	GenerateProduct(ctx context.Context, seed generation.Seed) (*generation.GeneratedProduct, error)
}

// MockupCreator turns a design into a mockup image URL. An empty URL with a
// nil error means no mockup was produced; callers fall back to a placeholder.
type MockupCreator interface {
	CreateMockup(ctx context.Context, title, description, sourceImageURL string) (string, error)
}

// Service orchestrates the fetch → derive → write flows. Batches are
// processed strictly sequentially with per-item fault isolation: an item's
// failure is recorded and the loop moves on.
type Service struct {
	store     StorefrontClient
	generator Generator
	mockups   MockupCreator
	fractions pricing.Fractions
	pacer     pacing.Pacer
	log       *logger.Logger
}

// New creates the orchestrator service.
func New(store StorefrontClient, generator Generator, mockups MockupCreator, fractions pricing.Fractions, pacer pacing.Pacer, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		generator: generator,
		mockups:   mockups,
		fractions: fractions,
		pacer:     pacer,
		log:       log,
	}
}

// UpdateImages re-derives an image for each product ID and writes it back.
// When append is false the product's image set is replaced with the single
// derived image; when true the image is added next to the existing ones.
func (s *Service) UpdateImages(ctx context.Context, productIDs []int64, appendMode bool) ([]transport.SyncResult, error) {
	log := s.batchLogger(ctx)
	log.Info("image update batch started", "items", len(productIDs), "append", appendMode)

	results := make([]transport.SyncResult, 0, len(productIDs))
	for i, id := range productIDs {
		if i > 0 {
			if err := s.pacer.Wait(ctx); err != nil {
				return results, apperr.Internal("batch interrupted: " + err.Error())
			}
		}

		result := s.updateOneImage(ctx, i, id, appendMode)
		log.ItemResult(i, result.Ok, result.Error)
		results = append(results, result)
	}

	log.Info("image update batch finished", "items", len(results), "succeeded", countOK(results))
	return results, nil
}

func (s *Service) updateOneImage(ctx context.Context, index int, id int64, appendMode bool) transport.SyncResult {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return failedResult(index, id, err)
	}
	if product == nil {
		return transport.SyncResult{Index: index, ID: id, Error: "product not found"}
	}

	imageURL := s.deriveImage(ctx, product.Title, product.BodyHTML)

	if appendMode {
		err = s.store.AppendProductImage(ctx, id, imageURL)
	} else {
		err = s.store.ReplaceProductImages(ctx, id, imageURL)
	}
	if err != nil {
		return failedResult(index, id, err)
	}

	return transport.SyncResult{Index: index, ID: id, Title: product.Title, Image: imageURL, Ok: true}
}

// deriveImage prefers a print-provider mockup and falls back to the
// deterministic placeholder when no mockup is produced.
func (s *Service) deriveImage(ctx context.Context, title, description string) string {
	placeholder := PlaceholderImageURL(title)

	mockupURL, err := s.mockups.CreateMockup(ctx, title, description, placeholder)
	if err != nil || mockupURL == "" {
		return placeholder
	}

	return mockupURL
}

// GenerateProduct generates one structured product. A nil seed falls back to
// the first demo seed.
func (s *Service) GenerateProduct(ctx context.Context, seed *generation.Seed) (*generation.GeneratedProduct, error) {
	effective := generation.DefaultSeeds()[0]
	if seed != nil {
		effective = *seed
	}

	return s.generator.GenerateProduct(ctx, effective)
}

// CreateProduct prices a generated product and creates it on the storefront
// as a draft.
func (s *Service) CreateProduct(ctx context.Context, product generation.GeneratedProduct) (*storefront.Product, error) {
	newProduct, err := s.buildNewProduct(product)
	if err != nil {
		return nil, err
	}

	return s.store.CreateProduct(ctx, *newProduct)
}

// GenerateAndCreate chains generation and draft creation for a single seed.
func (s *Service) GenerateAndCreate(ctx context.Context, seed generation.Seed) (*generation.GeneratedProduct, *storefront.Product, error) {
	generated, err := s.generator.GenerateProduct(ctx, seed)
	if err != nil {
		return nil, nil, err
	}

	created, err := s.CreateProduct(ctx, *generated)
	if err != nil {
		return generated, nil, err
	}

	return generated, created, nil
}

// BulkGenerate runs generate-and-create over the seeds, sequentially and
// with per-item fault isolation. It returns min(count, len(seeds)) ordered
// results plus the success count. A zero count means no cap.
func (s *Service) BulkGenerate(ctx context.Context, seeds []generation.Seed, count int) ([]transport.SyncResult, int, error) {
	if len(seeds) == 0 {
		seeds = generation.DefaultSeeds()
	}
	if count > 0 && count < len(seeds) {
		seeds = seeds[:count]
	}

	log := s.batchLogger(ctx)
	log.Info("bulk generation started", "items", len(seeds))

	results := make([]transport.SyncResult, 0, len(seeds))
	for i, seed := range seeds {
		if i > 0 {
			if err := s.pacer.Wait(ctx); err != nil {
				return results, countOK(results), apperr.Internal("batch interrupted: " + err.Error())
			}
		}

		result := s.generateAndCreateOne(ctx, i, seed)
		log.ItemResult(i, result.Ok, result.Error)
		results = append(results, result)
	}

	succeeded := countOK(results)
	log.Info("bulk generation finished", "items", len(results), "succeeded", succeeded)
	return results, succeeded, nil
}

func (s *Service) generateAndCreateOne(ctx context.Context, index int, seed generation.Seed) transport.SyncResult {
	generated, err := s.generator.GenerateProduct(ctx, seed)
	if err != nil {
		return failedResult(index, 0, err)
	}

	created, err := s.CreateProduct(ctx, *generated)
	if err != nil {
		result := failedResult(index, 0, err)
		result.Title = generated.Title
		return result
	}

	return transport.SyncResult{
		Index: index,
		ID:    created.ID,
		Title: created.Title,
		Image: firstImage(created),
		Ok:    true,
	}
}

// buildNewProduct maps a generated product plus its price quote onto the
// storefront creation payload.
func (s *Service) buildNewProduct(product generation.GeneratedProduct) (*storefront.NewProduct, error) {
	if strings.TrimSpace(product.Title) == "" {
		return nil, apperr.Validation("product title is required")
	}

	retail, err := pricing.RetailPrice(product.BaseCost, s.fractions)
	if err != nil {
		return nil, err
	}
	// An explicit recommended price wins when it covers the computed retail.
	if product.RecommendedPrice != nil && *product.RecommendedPrice >= retail {
		retail = *product.RecommendedPrice
	}
	price := fmt.Sprintf("%.2f", retail)

	newProduct := &storefront.NewProduct{
		Title:    product.Title,
		BodyHTML: product.LongDescription,
		Tags:     strings.Join(product.Tags, ", "),
		Images:   []storefront.Image{{Src: PlaceholderImageURL(product.Title)}},
	}

	if len(product.VariantOptions) == 0 {
		newProduct.Variants = []storefront.Variant{{Price: price}}
		return newProduct, nil
	}

	// The storefront API takes at most three option axes; variants span the
	// first axis only, the rest stay declarative.
	options := product.VariantOptions
	if len(options) > 3 {
		options = options[:3]
	}
	for _, option := range options {
		newProduct.Options = append(newProduct.Options, storefront.ProductOption{
			Name:   option.OptionName,
			Values: option.Values,
		})
	}
	for _, value := range options[0].Values {
		newProduct.Variants = append(newProduct.Variants, storefront.Variant{
			Option1: value,
			Price:   price,
		})
	}
	if len(newProduct.Variants) == 0 {
		newProduct.Variants = []storefront.Variant{{Price: price}}
	}

	return newProduct, nil
}

func (s *Service) batchLogger(ctx context.Context) *logger.Logger {
	return s.log.WithContext(ctx).WithBatchID(uuid.New().String())
}

func failedResult(index int, id int64, err error) transport.SyncResult {
	return transport.SyncResult{Index: index, ID: id, Error: err.Error()}
}

func countOK(results []transport.SyncResult) int {
	succeeded := 0
	for _, result := range results {
		if result.Ok {
			succeeded++
		}
	}
	return succeeded
}

func firstImage(product *storefront.Product) string {
	if len(product.Images) > 0 {
		return product.Images[0].Src
	}
	return ""
}
