/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"dirpx.dev/scribe/store"
)

// Config is the full server configuration. Every knob comes from the
// environment; main loads a .env file first so local runs need no exports.
type Config struct {
	// HTTPAddr is the listen address of the combined REST + procedure server.
	HTTPAddr string `env:"SCRIBE_HTTP_ADDR" envDefault:":8080"`

	// DatabaseDSN is the postgres connection string. Required.
	DatabaseDSN string `env:"SCRIBE_DB_DSN,required,notEmpty"`

	// AllowedOrigins enables CORS for the listed origins. Empty disables it.
	AllowedOrigins []string `env:"SCRIBE_ALLOWED_ORIGINS" envSeparator:","`

	DBMaxOpenConns    int           `env:"SCRIBE_DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns    int           `env:"SCRIBE_DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"SCRIBE_DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	ShutdownTimeout time.Duration `env:"SCRIBE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses the configuration from the current environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// StoreConfig projects the database knobs into the store's own config type.
func (c Config) StoreConfig() store.Config {
	return store.Config{
		DSN:             c.DatabaseDSN,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}
