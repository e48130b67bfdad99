// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stateless-settings/internal/config"
	"github.com/MKhiriev/stateless-settings/internal/handler"
	"github.com/MKhiriev/stateless-settings/internal/host"
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/internal/server"
	"github.com/MKhiriev/stateless-settings/internal/service"
	"github.com/MKhiriev/stateless-settings/internal/settings"
	"github.com/MKhiriev/stateless-settings/internal/store"
	"github.com/MKhiriev/stateless-settings/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build.String())

	log := logger.NewLogger("server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.WithLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Bool("multisite", cfg.Site.Multisite).
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	constants, err := loadConstants(ctx, cfg.Constants, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading defined constants")
	}

	services, err := service.NewServices(storages.Options, service.Host{
		Site:      host.NewBootstrap(cfg.Site, cfg.Paths),
		Constants: constants,
		Env:       host.OSEnvironment{},
	}, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// loadConstants reads the defined-constants file. Without one no constant
// is defined.
func loadConstants(ctx context.Context, cfg config.Constants, log *logger.Logger) (settings.Constants, error) {
	if cfg.File == "" {
		return host.MapConstants{}, nil
	}

	constants, err := host.NewFileConstants(cfg.File, log)
	if err != nil {
		return nil, err
	}

	if cfg.Watch {
		if err = constants.Watch(ctx); err != nil {
			return nil, err
		}
		log.Info().Str("file", cfg.File).Msg("watching defined constants")
	}

	return constants, nil
}
