package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/DjordjeVuckovic/simplechem/pkg/config/env"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
}

// LoadConfig reads the server settings from the environment. The .env file
// is expected to be loaded by the caller.
func LoadConfig() (*Config, error) {
	port := env.String("PORT", "8080")
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := env.List("CORS_ORIGINS")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:        port,
		UseHttp2:    env.Bool("USE_HTTP2"),
		CorsOrigins: origins,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
