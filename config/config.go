/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package config loads service configuration from YAML and the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultConfigPath is read when no explicit path is given.
const DefaultConfigPath = "./config/config.yml"

type (
	// Config -.
	Config struct {
		App       `yaml:"app"`
		HTTP      `yaml:"http"`
		Log       `yaml:"logger"`
		DB        `yaml:"db"`
		Redfish   `yaml:"redfish"`
		Inventory `yaml:"inventory"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name"    env:"APP_NAME"`
		Version string `env-required:"true" yaml:"version" env:"APP_VERSION"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `yaml:"host"            env:"HTTP_HOST"`
		Port           string   `env-required:"true"    yaml:"port"            env:"HTTP_PORT"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:","`
		AllowedHeaders []string `yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS" env-separator:","`
		Pprof          bool     `yaml:"pprof"           env:"HTTP_PPROF"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// DB -.
	DB struct {
		// Path is a SQLite file path or a postgres:// URL.
		Path string `env-required:"true" yaml:"path" env:"DB_PATH"`
	}

	// Redfish -.
	Redfish struct {
		// ServiceUUID is reported by the service root. Generated when empty.
		ServiceUUID string `yaml:"service_uuid" env:"REDFISH_SERVICE_UUID"`

		// SchemaDir holds extra JSON schemas that override the embedded ones.
		SchemaDir string `yaml:"schema_dir" env:"REDFISH_SCHEMA_DIR"`
	}

	// Inventory -.
	Inventory struct {
		// SeedDir holds OneView server-hardware documents loaded at startup.
		SeedDir string `yaml:"seed_dir" env:"INVENTORY_SEED_DIR"`
	}
)

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	return NewConfigFromFile(DefaultConfigPath)
}

// NewConfigFromFile reads path and then applies environment overrides.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
