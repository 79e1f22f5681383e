package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-graph/internal/app/commerce/journal"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/list_stale_placements"
	"github.com/murkotick/storefront-graph/internal/pkg/clock"
	"github.com/murkotick/storefront-graph/internal/pkg/logger"
)

// reconcile prints placements that never completed, one JSON object per
// line, with the platform resources each one left behind (an orphaned cart
// or a shopping list that should have been deleted).
func main() {
	grace := flag.Duration("grace", list_stale_placements.DefaultGrace, "ignore placements updated more recently than this")
	limit := flag.Int("limit", list_stale_placements.DefaultLimit, "maximum placements to report")
	flag.Parse()

	log := logger.New(logger.Options{Service: "reconcile", Env: os.Getenv("APP_ENV"), Level: os.Getenv("LOG_LEVEL"), Output: os.Stderr})

	db := os.Getenv("SPANNER_DATABASE")
	if db == "" {
		log.Error("SPANNER_DATABASE is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := spanner.NewClient(ctx, db)
	if err != nil {
		log.Error("spanner client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	h := list_stale_placements.NewHandler(journal.NewReader(client), clock.RealClock{})
	stale, err := h.Execute(ctx, list_stale_placements.Query{Grace: *grace, Limit: *limit})
	if err != nil {
		log.Error("list stale placements", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, p := range stale {
		if err := enc.Encode(p); err != nil {
			log.Error("write report", "error", err)
			os.Exit(1)
		}
	}
	log.Info("reconcile finished", "stale", len(stale))
}
