package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload" // loads a local .env file, if any
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	DagsterEndpointEnv = "DAGSTER_ENDPOINT"
	SignitureEnv       = "SIGNITURE"
	LaunchTopicEnv     = "LAUNCH_TOPIC"
)

var knownKeys = map[string]struct{}{
	DagsterEndpointEnv: {},
	SignitureEnv:       {},
	LaunchTopicEnv:     {},
}

type Config struct {
	DagsterEndpoint string `koanf:"dagster_endpoint" validate:"required,url"`
	Signiture       string `koanf:"signiture" validate:"required"`
	LaunchTopic     string `koanf:"launch_topic"`
}

// Loader returns the configuration for a single invocation.
type Loader func() (*Config, error)

func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("", ".", toKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := new(Config)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// toKey drops every variable the function does not read.
func toKey(s string) string {
	if _, ok := knownKeys[s]; !ok {
		return ""
	}

	return strings.ToLower(s)
}
