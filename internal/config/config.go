// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the application configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// Local (fallback) store
	DBPath string `env:"AKHDAR_DB_PATH" envDefault:"./data/akhdar.db"`

	// Relational store. The MySQL backend is only attempted when user,
	// password and database are all supplied.
	MySQLHost     string `env:"AKHDAR_MYSQL_HOST" envDefault:"localhost"`
	MySQLPort     int    `env:"AKHDAR_MYSQL_PORT" envDefault:"3306"`
	MySQLUser     string `env:"AKHDAR_MYSQL_USER"`
	MySQLPassword string `env:"AKHDAR_MYSQL_PASSWORD"`
	MySQLDatabase string `env:"AKHDAR_MYSQL_DATABASE"`

	ServerHost string `env:"AKHDAR_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"AKHDAR_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"AKHDAR_ENV" envDefault:"development"`
	LogLevel   string `env:"AKHDAR_LOG_LEVEL" envDefault:"info"`

	// Seeding configuration
	DoSeed bool `env:"AKHDAR_DO_SEED" envDefault:"false"` // Seed bilingual sample content
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// MySQLConfigured returns true if all required MySQL credentials are set.
// An incomplete configuration means the fallback store is authoritative.
func (c Config) MySQLConfigured() bool {
	return c.MySQLUser != "" && c.MySQLPassword != "" && c.MySQLDatabase != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
