package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/simplechem/internal/config"
	"github.com/DjordjeVuckovic/simplechem/internal/server"
	"github.com/DjordjeVuckovic/simplechem/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ChemApiConfig struct {
	Server *server.Config
	Render *config.Render
}

func (as *AppConfig) Load() (*ChemApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/chem_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration", "error", err)
		return nil, err
	}

	rCfg, err := config.LoadRender()
	if err != nil {
		slog.Error("Failed to load render configuration", "error", err)
		return nil, err
	}

	return &ChemApiConfig{
		Server: sCfg,
		Render: rCfg,
	}, nil
}
