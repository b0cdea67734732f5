//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/spfmatch/spfmatch/internal/bootstrap"
	"github.com/spfmatch/spfmatch/internal/domain/catalog"
	"github.com/spfmatch/spfmatch/internal/domain/quiz"
	"github.com/spfmatch/spfmatch/internal/domain/reminder"
	"github.com/spfmatch/spfmatch/internal/infra/config"
	"github.com/spfmatch/spfmatch/internal/infra/uvindex/openmeteo"
	httpiface "github.com/spfmatch/spfmatch/internal/interface/http"
	"github.com/spfmatch/spfmatch/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideCatalogConfig,
		provideCatalogSource,
		provideCatalogStore,
		provideReminderConfig,
		provideUVClient,
		provideNotifier,
		catalog.NewService,
		quiz.NewService,
		reminder.NewService,
		wire.Bind(new(quiz.Recommender), new(catalog.Service)),
		wire.Bind(new(reminder.UVClient), new(*openmeteo.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
