package main

import (
	"context"
	"log"

	"gobayes/adapters/postgres"
	"gobayes/adapters/rng"
	"gobayes/app"
	"gobayes/internal/config"
	"gobayes/internal/testkit"
	"gobayes/ports"
	"gobayes/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] Failed to load configuration: %v", err)
	}

	var repo ports.AnalysisRepository
	if cfg.Database.URL != "" {
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatalf("[Main] Database connection failed: %v", err)
		}
		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("[Main] Schema setup failed: %v", err)
		}
		repo = postgres.NewAnalysisRepository(db)
		log.Printf("[Main] Using PostgreSQL persistence")
	} else {
		repo = testkit.NewInMemoryAnalysisRepository()
		log.Printf("[Main] DATABASE_URL not set, analyses are held in memory only")
	}

	service := app.NewAnalysisService(repo, rng.New(), cfg.Sampling.Draws)
	server := ui.NewServer(service, cfg.Server.GinMode)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("[Main] Server failed: %v", err)
	}
}
