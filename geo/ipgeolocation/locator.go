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


// Package ipgeolocation implements geo.Locator against api.ipgeolocation.io.
package ipgeolocation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/poiesic/marquee/config"
	"github.com/poiesic/marquee/core"
	"github.com/poiesic/marquee/geo"
)

// Locator implements geo.Locator over HTTP.
type Locator struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   *slog.Logger
}

// Option configures a Locator.
type Option func(*Locator)

// WithHTTPClient sets the HTTP client used for lookups.
func WithHTTPClient(hc *http.Client) Option {
	return func(l *Locator) {
		if hc != nil {
			l.client = hc
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Locator) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// newLocator is an internal constructor that returns the concrete type.
func newLocator(cfg *config.Config, opts ...Option) (*Locator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.GeolocationKey == "" {
		return nil, core.ErrMissingGeolocationKey
	}

	l := &Locator{
		endpoint: cfg.GeolocationURL + "/ipgeo",
		apiKey:   cfg.GeolocationKey,
		client:   &http.Client{},
		logger:   slog.Default().With("component", "ipgeolocation"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// NewLocator creates a live locator from the configuration.
//
// Returns geo.Locator interface to enforce abstraction.
func NewLocator(cfg *config.Config, opts ...Option) (geo.Locator, error) {
	return newLocator(cfg, opts...)
}

// LookupLocation queries the geo field subset for ip.
//
// Errors are not handled here: transport and decode failures are returned
// exactly as net/http and encoding/json produce them, and the response status
// is not inspected.
func (l *Locator) LookupLocation(ctx context.Context, ip string) (core.IPLookup, error) {
	l.logger.Debug("looking up ip location", "ip", ip)
	return l.lookup(ctx, ip).Unwrap()
}

func (l *Locator) lookup(ctx context.Context, ip string) core.Result[core.IPLookup] {
	q := url.Values{}
	q.Set("apiKey", l.apiKey)
	q.Set("ip", ip)
	q.Set("fields", "geo")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return core.NetworkError[core.IPLookup](err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return core.NetworkError[core.IPLookup](err)
	}
	defer resp.Body.Close()

	var lookup core.IPLookup
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return core.ParseError[core.IPLookup](err)
	}
	return core.OK(lookup)
}
