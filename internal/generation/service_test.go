package generation

import (
	"context"
	"errors"
	"testing"

	"storefront_sync_backend/platform/apperr"
	"storefront_sync_backend/platform/logger"
	"storefront_sync_backend/platform/validator"
)

type fakeCompletion struct {
	response string
	err      error
}

func (f *fakeCompletion) Complete(ctx context.Context, system, user string) (string, error) {
	return f.response, f.err
}

func newTestService(response string, err error) *Service {
	return NewService(&fakeCompletion{response: response, err: err}, validator.New(), logger.New("development"))
}

func TestGenerateProductParsesCleanJSON(t *testing.T) {
	svc := newTestService(`{"title":"Night Sky Enamel Mug","shortDescription":"A mug.","baseCost":8,"tags":["mug","camping"]}`, nil)

	product, err := svc.GenerateProduct(context.Background(), Seed{Brand: "Northwind", ProductType: "mug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Title != "Night Sky Enamel Mug" {
		t.Fatalf("unexpected title: %q", product.Title)
	}
	if product.BaseCost != 8 {
		t.Fatalf("unexpected baseCost: %v", product.BaseCost)
	}
}

func TestGenerateProductExtractsEmbeddedJSON(t *testing.T) {
	prose := "Sure! Here is the product you asked for:\n\n" +
		`{"title":"X","shortDescription":"s","baseCost":4.5,"tags":["a"]}` +
		"\n\nLet me know if you need anything else."
	svc := newTestService(prose, nil)

	product, err := svc.GenerateProduct(context.Background(), Seed{Brand: "B", ProductType: "tote"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Title != "X" {
		t.Fatalf("unexpected title: %q", product.Title)
	}
}

func TestGenerateProductExtractsNestedBraces(t *testing.T) {
	prose := "prelude {\"title\":\"Y\",\"baseCost\":2,\"variantOptions\":[{\"optionName\":\"Size\",\"values\":[\"S\",\"M\"]}]} trailer }"
	svc := newTestService(prose, nil)

	product, err := svc.GenerateProduct(context.Background(), Seed{Brand: "B", ProductType: "print"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(product.VariantOptions) != 1 || product.VariantOptions[0].OptionName != "Size" {
		t.Fatalf("unexpected variant options: %+v", product.VariantOptions)
	}
}

func TestGenerateProductIgnoresBracesInsideStrings(t *testing.T) {
	prose := `{"title":"Brace {not a block}","shortDescription":"has } inside","baseCost":3}`
	svc := newTestService("noise before "+prose, nil)

	product, err := svc.GenerateProduct(context.Background(), Seed{Brand: "B", ProductType: "mug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Title != "Brace {not a block}" {
		t.Fatalf("unexpected title: %q", product.Title)
	}
}

func TestGenerateProductFormatError(t *testing.T) {
	svc := newTestService("I could not produce a product today.", nil)

	_, err := svc.GenerateProduct(context.Background(), Seed{Brand: "B", ProductType: "mug"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperr.Is(err, apperr.KindGenerationFormat) {
		t.Fatalf("expected generation format error, got kind %v", apperr.GetKind(err))
	}
}

func TestGenerateProductRejectsNegativeBaseCost(t *testing.T) {
	svc := newTestService(`{"title":"Z","baseCost":-5}`, nil)

	_, err := svc.GenerateProduct(context.Background(), Seed{Brand: "B", ProductType: "mug"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperr.Is(err, apperr.KindGenerationFormat) {
		t.Fatalf("expected generation format error, got kind %v", apperr.GetKind(err))
	}
}

func TestGenerateProductUpstreamFailure(t *testing.T) {
	svc := newTestService("", errors.New("timeout"))

	_, err := svc.GenerateProduct(context.Background(), Seed{Brand: "B", ProductType: "mug"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected upstream error, got kind %v", apperr.GetKind(err))
	}
}
