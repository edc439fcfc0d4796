// Command refresh triggers one upstream fetch cycle and prints the stats.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dahldoescards/bowman-tracker/internal/app/di"
	"github.com/dahldoescards/bowman-tracker/internal/platform/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	fetcher := di.NewFetcher(cfg.Tracker)
	repo := di.NewTrackerRepository(cfg.Tracker, fetcher)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stats, err := repo.TriggerFetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("fetched %d sales: %d new, %d duplicates\n",
		stats.TotalFetched, stats.NewSales, stats.Duplicates)
}
