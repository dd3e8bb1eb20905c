// Package main Simplechem API
// @title Simplechem API
// @version 1.0
// @description Renders chemical formulas written in plain text as inline HTML
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/simplechem/internal/api"
	"github.com/DjordjeVuckovic/simplechem/pkg/config/env"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(env.LogLevel())

	slog.Info("Render settings", "tag", cfg.Render.Tag, "class", cfg.Render.ClassName(), "trigger", cfg.Render.Trigger)

	if err := api.Run(cfg.Server, cfg.Render); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
