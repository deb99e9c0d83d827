package main

import (
	"collection-market/internal/config"
	ledger "collection-market/internal/ledgerService"
	"collection-market/internal/repository"
	"collection-market/internal/seed"
	"collection-market/internal/server"
	"collection-market/utils"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLogLevel(cfg.LogLevel)

	repo := repository.NewMemoryRepo()

	if cfg.SeedCollections > 0 {
		if err := seed.Populate(repo, cfg.SeedCollections); err != nil {
			utils.Fatal("failed to seed demo data", map[string]any{"error": err.Error()})
		}
		utils.Info("seeded demo data", map[string]any{"collections": cfg.SeedCollections})
	} else {
		for _, u := range seed.Users() {
			repo.AddUser(u)
		}
	}

	ledgerSvc := ledger.NewLedgerService(repo)

	router := server.SetupRouter(ledgerSvc)

	utils.Info("starting marketplace server", map[string]any{"address": cfg.ServerAddress})
	if err := router.Run(cfg.ServerAddress); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}
