package env

import (
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/simplechem/pkg/stringsutil"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file.
// ENV_PATH overrides defaultPath. Variables that are already set win over
// the file. A missing file is only an error when env is "local".
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if env == "local" {
			slog.Error("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env ...", "path", envPath)
	}

	return nil
}

// String returns the value of key, or def when it is unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Bool reports whether key is set to "true" or "1".
func Bool(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "true" || v == "1"
}

// List splits a comma separated variable, dropping empty entries.
func List(key string) []string {
	return stringsutil.SplitTrim(os.Getenv(key), ",")
}

// LogLevel parses LOG_LEVEL, falling back to info.
func LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(String("LOG_LEVEL", "info"))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
