package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/echoes-archive/feria-api/internal/api"
	"github.com/echoes-archive/feria-api/internal/config"
	"github.com/echoes-archive/feria-api/internal/gemini"
	"github.com/echoes-archive/feria-api/internal/logger"
	"github.com/echoes-archive/feria-api/internal/repository"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	var gen gemini.TextGenerator
	gen, err = gemini.NewClient(context.Background(), conf.Gemini.APIKey, conf.Gemini.Model)
	if err != nil {
		// Enrichment calls are non-critical. Without a credential the API still
		// serves everything except AI lookups, which fail open.
		zap.L().Warn("gemini client unavailable, AI enrichment disabled", zap.Error(err))
		gen = gemini.Unavailable{}
	}

	store := repository.NewFairStore()

	s := api.NewServer(conf, store, gen)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
