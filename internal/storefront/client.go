// Package storefront provides the HTTP client for the storefront Admin API.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront_sync_backend/platform/apperr"
	"storefront_sync_backend/platform/config"
	"storefront_sync_backend/platform/logger"
)

// Client is the HTTP client for the storefront Admin REST API.
type Client struct {
	baseURL    string
	apiVersion string
	token      string
	httpClient *http.Client
	log        *logger.Logger
}

// New creates a new storefront Admin API client.
func New(cfg config.StorefrontConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:    "https://" + cfg.GetStoreDomain(),
		apiVersion: cfg.GetStoreAPIVersion(),
		token:      cfg.GetStoreAccessToken(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

// GetProduct fetches one product by ID.
// Returns (nil, nil) when the product does not exist; callers skip the item.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var envelope struct {
		Product *Product `json:"product"`
	}

	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d.json", id), nil, &envelope)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return envelope.Product, nil
}

// ReplaceProductImages replaces the product's image set with the single
// given image URL.
func (c *Client) ReplaceProductImages(ctx context.Context, id int64, imageURL string) error {
	payload := map[string]interface{}{
		"product": map[string]interface{}{
			"id":     id,
			"images": []Image{{Src: imageURL}},
		},
	}

	return c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d.json", id), payload, nil)
}

// AppendProductImage adds one image to the product without touching the
// existing set.
func (c *Client) AppendProductImage(ctx context.Context, id int64, imageURL string) error {
	payload := map[string]interface{}{
		"image": Image{Src: imageURL},
	}

	return c.do(ctx, http.MethodPost, fmt.Sprintf("/products/%d/images.json", id), payload, nil)
}

// CreateProduct creates a new product. The status is always forced to draft.
func (c *Client) CreateProduct(ctx context.Context, product NewProduct) (*Product, error) {
	product.Status = "draft"

	var envelope struct {
		Product *Product `json:"product"`
	}

	payload := map[string]interface{}{"product": product}
	if err := c.do(ctx, http.MethodPost, "/products.json", payload, &envelope); err != nil {
		return nil, err
	}
	if envelope.Product == nil {
		return nil, apperr.Upstream("storefront returned no product", nil)
	}

	return envelope.Product, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	reqURL := fmt.Sprintf("%s/admin/api/%s%s", c.baseURL, c.apiVersion, path)

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal storefront payload: %w", err)
		}
		body = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("storefront", method+" "+path, err)
		return apperr.Upstream("storefront request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.log.Debug("storefront resource not found", "path", path)
		return apperr.NotFound("product not found")
	case resp.StatusCode >= http.StatusBadRequest:
		detail := readErrorBody(resp.Body)
		c.log.UpstreamError("storefront", method+" "+path, fmt.Errorf("status %d: %s", resp.StatusCode, detail))
		return apperr.Upstream(fmt.Sprintf("storefront returned %d: %s", resp.StatusCode, detail), nil)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.UpstreamError("storefront", method+" "+path, err)
		return apperr.Upstream("decode storefront response", err)
	}

	return nil
}

// readErrorBody extracts the provider error payload when decodable,
// falling back to the raw body.
func readErrorBody(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, 4096))

	var envelope struct {
		Errors interface{} `json:"errors"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Errors != nil {
		return fmt.Sprintf("%v", envelope.Errors)
	}

	return strings.TrimSpace(string(data))
}
