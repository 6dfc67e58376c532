package main

import (
	"context"
	"log"
	"time"

	"portfolio-api/internal/app"
	"portfolio-api/internal/config"
	"portfolio-api/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seeder.RunAll(ctx, c.DB, seeder.PortfolioSeeder{}); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Printf("seed done")
}
