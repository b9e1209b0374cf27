// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ClientConfig holds a Client's tunables: the user-agent string applied
// by the execution loop's user-agent policy, the client-side retry ceiling (the
// "max-error-retry" override described in spec.md §4.2), request
// timeouts, and an optional forward proxy.
type ClientConfig struct {
	UserAgent string `koanf:"user_agent" validate:"required"`

	// MaxErrorRetry is the client-configured retry ceiling. A negative
	// value means "unset": the retry policy's own MaxRetries is used
	// instead, per retry.EffectiveMaxRetries.
	MaxErrorRetry int `koanf:"max_error_retry"`

	// ProxyURL, if non-empty, is parsed into Proxy and threaded into
	// the transport package's default http.Transport.
	ProxyURL string `koanf:"proxy_url" validate:"omitempty,url"`

	// ConnectTimeout and RequestTimeout bound, respectively, the
	// transport dial and the whole attempt (including body transfer).
	ConnectTimeout time.Duration `koanf:"connect_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`

	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig configures the client-side attempt limiter.
type RateLimitConfig struct {
	Enabled           bool    `koanf:"enabled"`
	AttemptsPerSecond float64 `koanf:"attempts_per_second" validate:"required_if=Enabled true,omitempty,gt=0"`
	Burst             int     `koanf:"burst" validate:"required_if=Enabled true,omitempty,gt=0"`
}

// Proxy parses ProxyURL, returning nil if it is empty.
func (c *ClientConfig) Proxy() (*url.URL, error) {
	if c.ProxyURL == "" {
		return nil, nil
	}
	return url.Parse(c.ProxyURL)
}

// Default returns a ClientConfig with production-safe defaults: no
// client-side retry ceiling override (MaxErrorRetry == -1), a 5-second
// connect timeout, a 30-second request timeout, and rate limiting
// disabled.
func Default() ClientConfig {
	return ClientConfig{
		UserAgent:      "httpcore",
		MaxErrorRetry:  -1,
		ConnectTimeout: 5 * time.Second,
		RequestTimeout: 30 * time.Second,
	}
}

// Load loads a ClientConfig from, in ascending priority: Default(),
// an optional YAML file at path (an empty path skips the file; a path
// naming a missing file is an error), and
// environment variables prefixed with envPrefix (e.g. "HTTPCORE_",
// mapped to dotted keys: HTTPCORE_RATE_LIMIT_BURST ->
// rate_limit.burst). The result is validated before being returned.
func Load(path, envPrefix string) (*ClientConfig, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"user_agent":      defaults.UserAgent,
		"max_error_retry": defaults.MaxErrorRetry,
		"connect_timeout": defaults.ConnectTimeout.String(),
		"request_timeout": defaults.RequestTimeout.String(),
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := k.Load(envprovider.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if rest, ok := strings.CutPrefix(s, "rate_limit_"); ok {
			return "rate_limit." + rest
		}
		return s
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg ClientConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}

	return &cfg, nil
}

var validatorInstance = validator.New()

func validate(cfg *ClientConfig) error {
	return validatorInstance.Struct(cfg)
}
