package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`

	Engine EngineConfig `koanf:"engine"`
}

type EngineConfig struct {
	// Scope2Method is the designated Scope 2 accounting method feeding the
	// Scope 1+2+3 total: "location_based" or "market_based". Both method
	// totals are always reported; this only selects which one counts.
	Scope2Method string `koanf:"scope_2_method"`

	Compliance ComplianceConfig `koanf:"compliance"`
}

type ComplianceConfig struct {
	// OffsetChecksEnabled toggles the offset quality/retirement/magnitude
	// findings for deployments that do not ingest offset data.
	OffsetChecksEnabled bool `koanf:"offset_checks_enabled"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Load defaults
	defaults := &Config{
		Version:     "dev",
		Environment: "development",
		LogLevel:    "info",
		Engine: EngineConfig{
			Scope2Method: "location_based",
			Compliance: ComplianceConfig{
				OffsetChecksEnabled: true,
			},
		},
	}

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Load from config file if exists
	if err := k.Load(file.Provider("configs/config.yaml"), yaml.Parser()); err != nil {
		// Config file is optional, only log if it's not a "file not found" error
	}

	// Override with environment variables
	if err := k.Load(env.Provider("EDE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "EDE_")), "_", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
