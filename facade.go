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


// Package marquee wires the ticketing, emoji summary and geolocation
// clients from a single Config.
package marquee

import (
	"log/slog"
	"net/http"

	"github.com/poiesic/marquee/config"
	"github.com/poiesic/marquee/emoji"
	emojimock "github.com/poiesic/marquee/emoji/mock"
	"github.com/poiesic/marquee/emoji/openai"
	"github.com/poiesic/marquee/geo"
	"github.com/poiesic/marquee/geo/ipgeolocation"
	geomock "github.com/poiesic/marquee/geo/mock"
	"github.com/poiesic/marquee/ticketing"
	"github.com/tmc/langchaingo/llms"
)

type Facade struct {
	cfg     *config.Config
	tickets *ticketing.Client
	emojis  emoji.Summarizer
	locator geo.Locator
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Facade.
type Option func(*facadeOptions)

type facadeOptions struct {
	logger     *slog.Logger
	httpClient *http.Client
	model      llms.Model
}

// WithLogger sets the logger handed to every client.
func WithLogger(logger *slog.Logger) Option {
	return func(o *facadeOptions) {
		o.logger = logger
	}
}

// WithHTTPClient sets the HTTP client shared by every upstream.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *facadeOptions) {
		o.httpClient = hc
	}
}

// WithCompletionModel replaces the completion client built from the config.
// Only used in live mode.
func WithCompletionModel(model llms.Model) Option {
	return func(o *facadeOptions) {
		o.model = model
	}
}

func New(cfg *config.Config, opts ...Option) (*Facade, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &facadeOptions{}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	f := &Facade{
		cfg:    cfg,
		http:   options.httpClient,
		logger: logger.With("mode", cfg.Mode.String()),
	}

	f.tickets = ticketing.New(
		ticketing.WithHTTPClient(options.httpClient),
		ticketing.WithLogger(options.logger),
	)

	if cfg.Mocked() {
		f.emojis = emojimock.NewSummarizer()
		f.locator = geomock.NewLocator()
		f.logger.Info("emoji and geolocation clients mocked")
		return f, nil
	}

	// Create live clients
	summarizerOpts := []openai.Option{openai.WithLogger(options.logger)}
	if options.httpClient != nil {
		summarizerOpts = append(summarizerOpts, openai.WithHTTPClient(options.httpClient))
	}
	if options.model != nil {
		f.emojis = openai.NewSummarizerWithModel(options.model, summarizerOpts...)
	} else {
		summarizer, err := openai.NewSummarizer(cfg, summarizerOpts...)
		if err != nil {
			return nil, err
		}
		f.emojis = summarizer
	}

	locator, err := ipgeolocation.NewLocator(cfg,
		ipgeolocation.WithHTTPClient(options.httpClient),
		ipgeolocation.WithLogger(options.logger),
	)
	if err != nil {
		return nil, err
	}
	f.locator = locator

	return f, nil
}

// Close drops idle connections on the shared HTTP client, if one was given.
// The clients hold no other resources.
func (f *Facade) Close() error {
	if f.http != nil {
		f.http.CloseIdleConnections()
	}
	f.logger.Debug("facade closed")
	return nil
}

func (f *Facade) Config() *config.Config {
	return f.cfg
}

func (f *Facade) Tickets() *ticketing.Client {
	return f.tickets
}

func (f *Facade) Emojis() emoji.Summarizer {
	return f.emojis
}

func (f *Facade) Geolocation() geo.Locator {
	return f.locator
}
