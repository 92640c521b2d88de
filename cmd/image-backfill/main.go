// Command image-backfill re-derives storefront product images from the CLI.
// Product IDs are passed as arguments; each is processed sequentially with a
// per-call timeout and a short backoff after failures.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"storefront_sync_backend/internal/pricing"
	"storefront_sync_backend/internal/printprovider"
	"storefront_sync_backend/internal/products/service"
	"storefront_sync_backend/internal/storefront"
	"storefront_sync_backend/platform/config"
	"storefront_sync_backend/platform/logger"
	"storefront_sync_backend/platform/pacing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting image backfill")

	ids, err := parseProductIDs(os.Args[1:])
	if err != nil {
		log.Error("invalid arguments", "error", err)
		os.Exit(2)
	}
	if len(ids) == 0 {
		log.Warn("no product ids given, nothing to do")
		return
	}

	ctx := context.Background()

	storeClient := storefront.New(cfg, log)
	printProviderModule := printprovider.NewModule(cfg, log)

	// The backfill only exercises the image flow; generation stays unwired
	// and pacing is handled by the explicit sleeps below.
	svc := service.New(storeClient, nil, printProviderModule, pricing.FromConfig(cfg), pacing.None(), log)

	const delayBetweenCalls = 500 * time.Millisecond

	var processed int
	var succeeded int

	for _, id := range ids {
		processed++

		if err := backfillProductImage(ctx, svc, id); err != nil {
			log.Error("failed to backfill image", "productId", id, "error", err)
			// Back off slightly on failure to avoid hammering the API
			time.Sleep(time.Second)
			continue
		}

		succeeded++
		time.Sleep(delayBetweenCalls)
	}

	log.Info("image backfill completed", "processed", processed, "updated", succeeded)
}

func parseProductIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("product id %q must be a positive integer", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func backfillProductImage(parentCtx context.Context, svc *service.Service, id int64) error {
	// Use a timeout per product to avoid hanging on slow API calls
	ctx, cancel := context.WithTimeout(parentCtx, 15*time.Second)
	defer cancel()

	results, err := svc.UpdateImages(ctx, []int64{id}, false)
	if err != nil {
		return err
	}
	if len(results) == 1 && !results[0].Ok {
		return errors.New(results[0].Error)
	}
	return nil
}
