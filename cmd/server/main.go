package main

import (
	"context"
	"fmt"

	"github.com/vidabem/securechat/internal/config"
	"github.com/vidabem/securechat/internal/crypto"
	handler "github.com/vidabem/securechat/internal/handler/http"
	"github.com/vidabem/securechat/internal/keys"
	"github.com/vidabem/securechat/internal/logger"
	"github.com/vidabem/securechat/internal/server"
	"github.com/vidabem/securechat/internal/service"
	"github.com/vidabem/securechat/internal/store"
	"github.com/vidabem/securechat/internal/upload"
	"github.com/vidabem/securechat/internal/workers"
	"github.com/vidabem/securechat/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("securechat-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err := migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	registry, err := crypto.NewRegistry(crypto.NewAESGCM(), crypto.NewXChaCha())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cipher registry")
	}

	keyManager := keys.NewManager(storages.Keys, registry, cfg.Storage.Keys.Passphrase, cfg.Storage.Keys.Salt, log)

	policy, err := upload.ParsePolicy(cfg.Upload.UnknownScanPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing scan policy")
	}

	var scanner upload.Scanner
	if cfg.Scanner.URL != "" {
		scanner = upload.NewRESTScanner(cfg.Scanner)
	} else {
		log.Warn().Msg("no scanner configured, uploads carry an unknown verdict")
		scanner = upload.NewDisabledScanner()
	}

	services := service.NewServices(storages, keyManager, registry, scanner, policy, *cfg, log)
	handlers := handler.NewHandler(services, *cfg, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewPurgeWorker(storages.Messages, cfg.Workers.PurgeInterval, log),
	)
	background.Run()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
