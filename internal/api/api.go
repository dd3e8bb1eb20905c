// Package api wires the HTTP server to the formula routes.
package api

import (
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/simplechem/internal/config"
	"github.com/DjordjeVuckovic/simplechem/internal/router"
	"github.com/DjordjeVuckovic/simplechem/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds a server with middlewares, health checks, the OpenAPI UI and
// the formula routes.
func New(sCfg *server.Config, rCfg *config.Render) *server.Server {
	healthChecker := NewRendererHealthChecker(rCfg.FormulaOptions()...)

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Simplechem API is running")
	})

	router.NewFormulaRouter(s.Echo, rCfg).Bind()

	return s
}

// Run serves until interrupted.
func Run(sCfg *server.Config, rCfg *config.Render) error {
	s := New(sCfg, rCfg)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	return s.Start()
}
