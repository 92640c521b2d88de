// Package printprovider provides the print-provider (Printify) integration
// used to turn a design image into a product mockup.
package printprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront_sync_backend/platform/config"
	"storefront_sync_backend/platform/logger"
)

const defaultBaseURL = "https://api.printify.com/v1"

// Catalog defaults for draft mockups. The mockup flow only needs some
// printable product; which one is cosmetic.
const (
	defaultBlueprintID     = 384
	defaultPrintProviderID = 1
	defaultVariantID       = 45740
)

// Client is the HTTP client for the print-provider API.
type Client struct {
	baseURL    string
	apiKey     string
	shopID     string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a new print-provider API client.
func NewClient(cfg config.PrintProviderConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     cfg.GetPrintProviderAPIKey(),
		shopID:     cfg.GetPrintProviderShopID(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

type uploadResponse struct {
	ID string `json:"id"`
}

type draftProductResponse struct {
	ID     string `json:"id"`
	Images []struct {
		Src       string `json:"src"`
		IsDefault bool   `json:"is_default"`
	} `json:"images"`
}

// CreateMockup uploads the source image, creates a draft product around it,
// and returns the URL of the produced mockup image. An empty string with a
// nil error means the provider produced no usable mockup.
func (c *Client) CreateMockup(ctx context.Context, title, description, sourceImageURL string) (string, error) {
	imageID, err := c.uploadImage(ctx, title, sourceImageURL)
	if err != nil {
		return "", err
	}

	draft, err := c.createDraftProduct(ctx, title, description, imageID)
	if err != nil {
		return "", err
	}

	for _, image := range draft.Images {
		if image.IsDefault && image.Src != "" {
			return image.Src, nil
		}
	}
	for _, image := range draft.Images {
		if image.Src != "" {
			return image.Src, nil
		}
	}

	return "", nil
}

func (c *Client) uploadImage(ctx context.Context, title, sourceImageURL string) (string, error) {
	payload := map[string]string{
		"file_name": slugify(title) + ".png",
		"url":       sourceImageURL,
	}

	var uploaded uploadResponse
	if err := c.do(ctx, http.MethodPost, "/uploads/images.json", payload, &uploaded); err != nil {
		return "", err
	}
	if uploaded.ID == "" {
		return "", fmt.Errorf("upload returned no image id")
	}

	return uploaded.ID, nil
}

func (c *Client) createDraftProduct(ctx context.Context, title, description, imageID string) (*draftProductResponse, error) {
	payload := map[string]interface{}{
		"title":             title,
		"description":       description,
		"blueprint_id":      defaultBlueprintID,
		"print_provider_id": defaultPrintProviderID,
		"variants": []map[string]interface{}{
			{"id": defaultVariantID, "price": 1999, "is_enabled": true},
		},
		"print_areas": []map[string]interface{}{
			{
				"variant_ids": []int{defaultVariantID},
				"placeholders": []map[string]interface{}{
					{
						"position": "front",
						"images": []map[string]interface{}{
							{"id": imageID, "x": 0.5, "y": 0.5, "scale": 1, "angle": 0},
						},
					},
				},
			},
		},
	}

	var draft draftProductResponse
	path := fmt.Sprintf("/shops/%s/products.json", c.shopID)
	if err := c.do(ctx, http.MethodPost, path, payload, &draft); err != nil {
		return nil, err
	}

	return &draft, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal print-provider payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewBuffer(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("print-provider", method+" "+path, err)
		return fmt.Errorf("print-provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		detail := strings.TrimSpace(string(data))
		c.log.UpstreamError("print-provider", method+" "+path, fmt.Errorf("status %d: %s", resp.StatusCode, detail))
		return fmt.Errorf("print-provider returned %d: %s", resp.StatusCode, detail)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode print-provider response: %w", err)
	}

	return nil
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "design"
	}
	return slug
}
