package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables honoured on top of the manifest.
const (
	EnvLogLevel    = "FRANKMARK_LOG_LEVEL"
	EnvMinify      = "FRANKMARK_MINIFY"
	EnvSearchIndex = "FRANKMARK_SEARCH_INDEX"

	envFileName = ".env"
)

// LoadEnvFile loads <root>/.env when present. Variables already set in the
// process environment win.
func LoadEnvFile(root string) error {
	err := godotenv.Load(filepath.Join(root, envFileName))
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%w: load %s: %w", ErrConfig, envFileName, err)
}

// ResolveLogLevel picks the log level: explicit flag, then environment, then info.
func ResolveLogLevel(flag string) string {
	if level := strings.TrimSpace(flag); level != "" {
		return strings.ToLower(level)
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		return strings.ToLower(level)
	}
	return "info"
}

func (c *Config) applyEnv() error {
	if raw, ok := lookupEnv(EnvMinify); ok {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMinify, err)
		}
		c.Output.Minify = &enabled
	}
	if raw, ok := lookupEnv(EnvSearchIndex); ok {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSearchIndex, err)
		}
		c.Output.SearchIndex = enabled
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	raw, ok := os.LookupEnv(key)
	raw = strings.TrimSpace(raw)
	return raw, ok && raw != ""
}
