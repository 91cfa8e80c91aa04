// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBPath != "./data/akhdar.db" {
		t.Errorf("DBPath = %q, want ./data/akhdar.db", cfg.DBPath)
	}
	if cfg.MySQLHost != "localhost" {
		t.Errorf("MySQLHost = %q, want localhost", cfg.MySQLHost)
	}
	if cfg.MySQLPort != 3306 {
		t.Errorf("MySQLPort = %d, want 3306", cfg.MySQLPort)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AKHDAR_MYSQL_USER", "akhdar")
	t.Setenv("AKHDAR_MYSQL_PASSWORD", "secret")
	t.Setenv("AKHDAR_MYSQL_DATABASE", "akhdar_site")
	t.Setenv("AKHDAR_SERVER_PORT", "9090")
	t.Setenv("AKHDAR_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.MySQLConfigured() {
		t.Error("MySQLConfigured() = false, want true")
	}
	if got := cfg.ServerAddr(); got != "localhost:9090" {
		t.Errorf("ServerAddr() = %q, want localhost:9090", got)
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
}

func TestMySQLConfiguredNeedsAllCredentials(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
		database string
		want     bool
	}{
		{"all empty", "", "", "", false},
		{"user only", "akhdar", "", "", false},
		{"missing database", "akhdar", "secret", "", false},
		{"missing password", "akhdar", "", "akhdar_site", false},
		{"complete", "akhdar", "secret", "akhdar_site", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				MySQLUser:     tt.user,
				MySQLPassword: tt.password,
				MySQLDatabase: tt.database,
			}
			if got := cfg.MySQLConfigured(); got != tt.want {
				t.Errorf("MySQLConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}
