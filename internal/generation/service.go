package generation

import (
	"context"
	"encoding/json"
	"strings"

	"storefront_sync_backend/platform/apperr"
	"storefront_sync_backend/platform/logger"
	"storefront_sync_backend/platform/validator"
)

// CompletionClient is the narrow view of the chat-completions client the
// service needs. Tests supply fakes.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Service turns seeds into structured generated products.
type Service struct {
	client CompletionClient
	val    *validator.Validator
	log    *logger.Logger
}

// NewService creates a new generation service.
func NewService(client CompletionClient, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{client: client, val: val, log: log}
}

// GenerateProduct issues one generation request for the seed and parses the
// response into a GeneratedProduct.
//
// Models occasionally wrap the JSON object in prose or markdown fences; when
// direct parsing fails, the first balanced top-level brace-delimited
// substring is extracted and re-parsed. If that also fails the result is a
// KindGenerationFormat error.
func (s *Service) GenerateProduct(ctx context.Context, seed Seed) (*GeneratedProduct, error) {
	raw, err := s.client.Complete(ctx, getSystemPrompt(), buildProductPrompt(seed))
	if err != nil {
		return nil, apperr.Upstream("product generation failed", err)
	}

	product, err := parseGeneratedProduct(raw)
	if err != nil {
		s.log.Warn("unparseable generation output", "error", err, "length", len(raw))
		return nil, err
	}

	if err := s.validateGenerated(product); err != nil {
		return nil, err
	}

	return product, nil
}

func parseGeneratedProduct(raw string) (*GeneratedProduct, error) {
	var product GeneratedProduct
	if err := json.Unmarshal([]byte(raw), &product); err == nil {
		return &product, nil
	}

	candidate, ok := extractJSONObject(raw)
	if !ok {
		return nil, apperr.GenerationFormat("generation output contains no JSON object")
	}
	if err := json.Unmarshal([]byte(candidate), &product); err != nil {
		return nil, apperr.GenerationFormat("generation output JSON does not parse: " + err.Error())
	}

	return &product, nil
}

// extractJSONObject returns the first balanced top-level {...} substring.
// Braces inside JSON strings are ignored.
func extractJSONObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return raw[start : i+1], true
				}
			}
		}
	}

	return "", false
}

func (s *Service) validateGenerated(product *GeneratedProduct) error {
	if strings.TrimSpace(product.Title) == "" {
		return apperr.GenerationFormat("generated product has no title")
	}
	if err := s.val.Struct(product); err != nil {
		return apperr.GenerationFormat("generated product is structurally invalid: " + err.Error())
	}
	return nil
}
