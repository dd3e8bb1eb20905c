package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/simplechem/internal/api"
	"github.com/DjordjeVuckovic/simplechem/internal/server"
	"github.com/DjordjeVuckovic/simplechem/pkg/config/env"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().String("port", "", "listen port (overrides $PORT)")
	cmd.Flags().String("env-file", ".env", "dotenv file to load (overridden by $ENV_PATH)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := env.LoadDotEnv(os.Getenv("ENV"), envFile); err != nil {
		slog.Info("Continuing without .env", "error", err)
	}
	slog.SetLogLoggerLevel(env.LogLevel())

	if port, _ := cmd.Flags().GetString("port"); port != "" {
		if err := os.Setenv("PORT", port); err != nil {
			return err
		}
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		return fmt.Errorf("load server config: %w", err)
	}
	rCfg, err := loadRender(cmd)
	if err != nil {
		return fmt.Errorf("load render config: %w", err)
	}

	return api.Run(sCfg, rCfg)
}
