// Copyright 2025 Poiesic Systems
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


package config

import (
	"fmt"
	"strings"

	"github.com/poiesic/marquee/core"
)

const (
	// DefaultCompletionModel is used when OPENAI_MODEL is unset.
	DefaultCompletionModel = "gpt-4o-mini"

	// DefaultGeolocationURL is the public ipgeolocation.io API host.
	DefaultGeolocationURL = "https://api.ipgeolocation.io"
)

// Config carries everything the clients need. Mode is decided here once and
// passed to constructors, so no client ever consults the process environment.
type Config struct {
	// Mode selects mock or live emoji and geolocation clients.
	// The ticketing client ignores it.
	Mode core.Mode

	// CompletionToken is the completion API key. Required in live mode.
	CompletionToken string

	// CompletionModel is the model identifier sent with completion requests.
	CompletionModel string

	// CompletionBaseURL overrides the completion API host.
	// Empty means the client library default.
	CompletionBaseURL string

	// GeolocationKey is the ipgeolocation.io API key. Required in live mode.
	GeolocationKey string

	// GeolocationURL is the base URL of the geolocation API.
	GeolocationURL string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithMode sets the mode explicitly.
func WithMode(mode core.Mode) ConfigOption {
	return func(c *Config) {
		c.Mode = mode
	}
}

// WithCompletionToken sets the completion API key.
func WithCompletionToken(token string) ConfigOption {
	return func(c *Config) {
		c.CompletionToken = token
	}
}

// WithCompletionModel sets the completion model identifier.
func WithCompletionModel(model string) ConfigOption {
	return func(c *Config) {
		c.CompletionModel = model
	}
}

// WithCompletionBaseURL points the completion client at another host.
func WithCompletionBaseURL(url string) ConfigOption {
	return func(c *Config) {
		c.CompletionBaseURL = url
	}
}

// WithGeolocationKey sets the geolocation API key.
func WithGeolocationKey(key string) ConfigOption {
	return func(c *Config) {
		c.GeolocationKey = key
	}
}

// WithGeolocationURL points the geolocation client at another host.
func WithGeolocationURL(url string) ConfigOption {
	return func(c *Config) {
		c.GeolocationURL = url
	}
}

// DefaultConfig returns a mocked Config with default hosts and model.
func DefaultConfig() *Config {
	return &Config{
		Mode:            core.ModeMocked,
		CompletionModel: DefaultCompletionModel,
		GeolocationURL:  DefaultGeolocationURL,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithMode(core.ModeLive),
//	    WithCompletionToken("sk-..."),
//	    WithGeolocationKey("..."),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Mocked reports whether emoji and geolocation calls are served by the mocks.
func (c *Config) Mocked() bool {
	return c.Mode != core.ModeLive
}

// Normalize fills empty optional fields with defaults and trims trailing slashes.
func (c *Config) Normalize() {
	if c.CompletionModel == "" {
		c.CompletionModel = DefaultCompletionModel
	}
	if c.GeolocationURL == "" {
		c.GeolocationURL = DefaultGeolocationURL
	}
	c.GeolocationURL = strings.TrimSuffix(c.GeolocationURL, "/")
	c.CompletionBaseURL = strings.TrimSuffix(c.CompletionBaseURL, "/")
}

// Validate checks that the configuration is complete for its mode.
// Credentials are only required in live mode.
func (c *Config) Validate() error {
	c.Normalize()

	switch c.Mode {
	case core.ModeMocked:
		return nil
	case core.ModeLive:
	default:
		return fmt.Errorf("config: %w: %d", core.ErrInvalidMode, c.Mode)
	}

	if c.CompletionToken == "" {
		return core.ErrMissingCompletionToken
	}
	if c.GeolocationKey == "" {
		return core.ErrMissingGeolocationKey
	}
	return nil
}
