package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront_sync_backend/internal/generation"
	"storefront_sync_backend/internal/pricing"
	"storefront_sync_backend/internal/products/service"
	"storefront_sync_backend/internal/storefront"
	"storefront_sync_backend/platform/logger"
	"storefront_sync_backend/platform/pacing"

	"github.com/gin-gonic/gin"
)

// guardStore fails the test if any storefront call is made. Used to prove
// that invalid requests are rejected before reaching collaborators.
type guardStore struct {
	t *testing.T
}

func (g *guardStore) GetProduct(context.Context, int64) (*storefront.Product, error) {
	g.t.Fatal("unexpected GetProduct call")
	return nil, nil
}

func (g *guardStore) ReplaceProductImages(context.Context, int64, string) error {
	g.t.Fatal("unexpected ReplaceProductImages call")
	return nil
}

func (g *guardStore) AppendProductImage(context.Context, int64, string) error {
	g.t.Fatal("unexpected AppendProductImage call")
	return nil
}

func (g *guardStore) CreateProduct(context.Context, storefront.NewProduct) (*storefront.Product, error) {
	g.t.Fatal("unexpected CreateProduct call")
	return nil, nil
}

type guardGenerator struct {
	t *testing.T
}

func (g *guardGenerator) GenerateProduct(context.Context, generation.Seed) (*generation.GeneratedProduct, error) {
	g.t.Fatal("unexpected GenerateProduct call")
	return nil, nil
}

type noMockups struct{}

func (noMockups) CreateMockup(context.Context, string, string, string) (string, error) {
	return "", nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.New(&guardStore{t: t}, &guardGenerator{t: t}, noMockups{}, pricing.DefaultFractions(), pacing.None(), logger.New("production"))
	h := New(svc)

	router := gin.New()
	router.POST("/update-images", h.UpdateImages)
	router.POST("/generate-product", h.GenerateProduct)
	router.POST("/create-product", h.CreateProduct)
	router.POST("/generate-and-create", h.GenerateAndCreate)
	router.POST("/bulk-generate", h.BulkGenerate)
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUpdateImagesRejectsMissingProductIDs(t *testing.T) {
	router := newTestRouter(t)

	rec := post(router, "/update-images", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Errorf("expected an error field, got %v", body)
	}
}

func TestUpdateImagesRejectsEmptyList(t *testing.T) {
	router := newTestRouter(t)

	rec := post(router, "/update-images", `{"productIds": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateImagesRejectsNonPositiveIDs(t *testing.T) {
	router := newTestRouter(t)

	rec := post(router, "/update-images", `{"productIds": [5, 0]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateImagesRejectsMalformedJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := post(router, "/update-images", `{"productIds": [1,`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateProductRejectsMissingProduct(t *testing.T) {
	router := newTestRouter(t)

	rec := post(router, "/create-product", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateAndCreateRejectsMissingSeed(t *testing.T) {
	router := newTestRouter(t)

	rec := post(router, "/generate-and-create", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBulkGenerateRejectsNegativeCount(t *testing.T) {
	router := newTestRouter(t)

	rec := post(router, "/bulk-generate", `{"count": -1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
