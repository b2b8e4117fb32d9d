// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/serializer-registry/pkg/defaults"
)

// EnvPrefix is prepended to every configuration key when read from the
// environment, e.g. VSR_PORT.
const EnvPrefix = "VSR"

const (
	keyConfig          = "config"
	keyAddress         = "address"
	keyPort            = "port"
	keyRateLimit       = "rate_limit"
	keyRateLimitBurst  = "rate_limit_burst"
	keyShutdownTimeout = "shutdown_timeout_seconds"
	keyCatalog         = "catalog"
	keyResolverPolicy  = "resolver_policy"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Handlers keyed by chi route pattern
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration

	// Catalog is the version catalog source (file, URL or cm://ns/name).
	// Empty selects the compiled-in catalog.
	Catalog string

	// ResolverPolicy selects the version resolver (fixed or negotiate).
	ResolverPolicy string
}

// NewConfig returns a Config built from defaults, the optional VSR_CONFIG
// file and VSR_* environment variables. Unreadable config files and
// malformed values are logged and ignored.
func NewConfig() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		slog.Warn("using default server configuration", "error", err)
	}
	return cfg
}

// LoadConfig is like NewConfig but reports a config file that cannot be read.
// The returned Config is always usable.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var err error
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if rerr := v.ReadInConfig(); rerr != nil {
			err = fmt.Errorf("failed to read config file %q: %w", path, rerr)
		}
	}

	return parseConfig(v), err
}

func defaultConfig() *Config {
	return &Config{
		Name:              "server",
		Version:           "undefined",
		Address:           "",
		Port:              defaults.ServerPort,
		RateLimit:         defaults.RateLimit,
		RateLimitBurst:    defaults.RateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}
}

// parseConfig overlays the settings present in v onto the defaults.
func parseConfig(v *viper.Viper) *Config {
	cfg := defaultConfig()

	if v.IsSet(keyAddress) {
		cfg.Address = strings.TrimSpace(v.GetString(keyAddress))
	}

	if port, ok := intSetting(v, keyPort); ok && port > 0 && port < 65536 {
		cfg.Port = port
	}

	if limit, ok := intSetting(v, keyRateLimit); ok && limit > 0 {
		cfg.RateLimit = rate.Limit(limit)
	}

	if burst, ok := intSetting(v, keyRateLimitBurst); ok && burst > 0 {
		cfg.RateLimitBurst = burst
	}

	// Allow customization of shutdown timeout to match K8s eviction grace period
	if seconds, ok := intSetting(v, keyShutdownTimeout); ok && seconds > 0 {
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}

	if v.IsSet(keyCatalog) {
		cfg.Catalog = strings.TrimSpace(v.GetString(keyCatalog))
	}

	if v.IsSet(keyResolverPolicy) {
		cfg.ResolverPolicy = strings.TrimSpace(v.GetString(keyResolverPolicy))
	}

	return cfg
}

// intSetting reads key as an integer. Malformed values are logged and
// reported as absent.
func intSetting(v *viper.Viper, key string) (int, bool) {
	if !v.IsSet(key) {
		return 0, false
	}
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("ignoring invalid configuration value",
			"key", strings.ToUpper(EnvPrefix+"_"+key),
			"value", raw,
			"error", errors.Unwrap(err))
		return 0, false
	}
	return n, true
}
