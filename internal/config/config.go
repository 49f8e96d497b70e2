package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	App    AppConfig
	Data   DataConfig
	Engine EngineConfig
}

type AppConfig struct {
	AppName      string
	Environment  string
	HTTPPort     string
	AllowOrigins []string
}

type DataConfig struct {
	CatalogPath string
}

type EngineConfig struct {
	WeightsPath string
	TopN        int
}

const defaultTopN = 10

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:      req("APP_NAME"),
		Environment:  req("APP_ENV"),
		HTTPPort:     req("HTTP_PORT"),
		AllowOrigins: splitList(opt("ALLOW_ORIGINS")),
	}

	cfg.Data = DataConfig{
		CatalogPath: req("CATALOG_PATH"),
	}

	cfg.Engine = EngineConfig{
		WeightsPath: opt("WEIGHTS_PATH"),
		TopN:        intOr(opt("TOP_N"), defaultTopN),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intOr(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
