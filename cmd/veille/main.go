package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"portfolio-api/internal/app"
	"portfolio-api/internal/config"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/veille"
)

func main() {
	veilleType := flag.String("type", "", "limit to one veille type (technologique or juridique)")
	flag.Parse()

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

	sources := veille.DefaultSources()
	if t := strings.TrimSpace(*veilleType); t != "" {
		if t != usecase.VeilleTypeTechnologique && t != usecase.VeilleTypeJuridique {
			log.Fatalf("unknown veille type: %s", t)
		}
		filtered := sources[:0]
		for _, s := range sources {
			if s.Type == t {
				filtered = append(filtered, s)
			}
		}
		sources = filtered
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fetcher := veille.NewFetcher(repository.NewPostgresVeilleRepository(c.DB), c.Logger)
	inserted, err := fetcher.FetchAll(ctx, sources)
	if err != nil {
		log.Fatalf("veille fetch failed: %v", err)
	}
	log.Printf("veille fetch done inserted=%d", inserted)
}
