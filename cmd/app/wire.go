//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/anglerworks/fishcast/internal/bootstrap"
	"github.com/anglerworks/fishcast/internal/domain/astro"
	"github.com/anglerworks/fishcast/internal/domain/fishcast"
	"github.com/anglerworks/fishcast/internal/domain/nightcast"
	"github.com/anglerworks/fishcast/internal/infra/config"
	httpiface "github.com/anglerworks/fishcast/internal/interface/http"
	"github.com/anglerworks/fishcast/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		astro.NewCalculator,
		provideSpeciesTable,
		fishcast.NewService,
		nightcast.NewService,
		wire.Bind(new(fishcast.Astro), new(*astro.Calculator)),
		wire.Bind(new(nightcast.Astro), new(*astro.Calculator)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
