package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

type Config struct {
	Host            string
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads the configuration from the environment, falling back to
// defaults for anything unset.
func Load() (Config, error) {
	cfg := Config{
		Host:    getEnv("HOST", "0.0.0.0"),
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv(gin.EnvGinMode, gin.ReleaseMode),
	}

	timeout := getEnv("SHUTDOWN_TIMEOUT", "5s")
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", timeout, err)
	}
	if d < 0 {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: must not be negative", timeout)
	}
	cfg.ShutdownTimeout = d

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("invalid %s %q", gin.EnvGinMode, cfg.GinMode)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
