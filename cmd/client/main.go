package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-finchers/internal/adapter"
	"github.com/MKhiriev/go-finchers/internal/client"
	"github.com/MKhiriev/go-finchers/internal/config"
	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Client version: %s (%s, %s)\n", build.BuildVersion(), build.BuildDate(), build.BuildCommit())

	log := logger.New(os.Stderr, "go-finchers-client", zerolog.DebugLevel)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	level, err := logger.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.App.LogLevel).Msg("invalid log level")
	}
	log.Logger = log.Level(level)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	credentials := models.Credentials{Subject: cfg.Client.Subject, APIKey: cfg.App.APIKey}
	app, err := client.NewApp(serverAdapter, credentials, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
