package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/casetools/caseconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxTextLen bounds the size in bytes of inline text accepted by tools.
	MaxTextLen int

	// DefaultConvention is used by the convert tool when the request names
	// no convention.
	DefaultConvention string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CASETOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxTextLen:        envInt("CASETOOLS_MAX_TEXT_LEN", 1<<20),
		DefaultConvention: envConvention("CASETOOLS_DEFAULT_CONVENTION", "snake"),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

// envConvention accepts only registered convention names.
func envConvention(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if _, err := caseconv.ConvertTo(v, ""); err != nil {
		slog.Warn("invalid convention env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return strings.ToLower(v)
}
