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


// Package openai implements emoji.Summarizer against an OpenAI-compatible
// API through langchaingo.
//
// Requests go to the chat completions endpoint with the prompt as a single
// user message. The legacy prompt-completion models are retired, so the
// default model is a chat model (config.DefaultCompletionModel).
package openai

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/poiesic/marquee/config"
	"github.com/poiesic/marquee/core"
	"github.com/poiesic/marquee/emoji"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Generation parameters tuned for short, emoji-only answers.
const (
	Temperature      = 0.27
	MaxTokens        = 500
	TopP             = 1.0
	FrequencyPenalty = 0.0
	PresencePenalty  = 0.0
)

// Summarizer implements emoji.Summarizer with a completion model.
type Summarizer struct {
	client llms.Model
	logger *slog.Logger
}

// Option configures a Summarizer.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// WithHTTPClient sets the HTTP client used by the completion client.
// It has no effect on NewSummarizerWithModel.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default().With("component", "openai-summarizer")
	}
	return o
}

// newSummarizer is an internal constructor that returns the concrete type.
func newSummarizer(cfg *config.Config, opts ...Option) (*Summarizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.CompletionToken == "" {
		return nil, core.ErrMissingCompletionToken
	}
	o := applyOptions(opts)

	clientOpts := []openai.Option{
		openai.WithToken(cfg.CompletionToken),
		openai.WithModel(cfg.CompletionModel),
	}
	if cfg.CompletionBaseURL != "" {
		clientOpts = append(clientOpts, openai.WithBaseURL(cfg.CompletionBaseURL))
	}
	clientOpts = append(clientOpts, openai.WithHTTPClient(withSamplingFields(o.httpClient)))

	client, err := openai.New(clientOpts...)
	if err != nil {
		return nil, err
	}
	return &Summarizer{client: client, logger: o.logger}, nil
}

// NewSummarizer creates a live summarizer from the configuration.
//
// Returns emoji.Summarizer interface to enforce abstraction.
func NewSummarizer(cfg *config.Config, opts ...Option) (emoji.Summarizer, error) {
	return newSummarizer(cfg, opts...)
}

// NewSummarizerWithModel wraps an existing langchaingo model.
func NewSummarizerWithModel(model llms.Model, opts ...Option) emoji.Summarizer {
	o := applyOptions(opts)
	return &Summarizer{client: model, logger: o.logger}
}

// MovieToEmojis asks the model for five emoji describing the movie.
//
// A failed request is logged and its error returned unchanged. The first
// choice is trimmed and cut to emoji.Length symbols; shorter answers are
// returned as they are.
func (s *Summarizer) MovieToEmojis(ctx context.Context, movie core.Movie) (string, error) {
	res := s.complete(ctx, emoji.BuildPrompt(movie))
	switch res.Kind {
	case core.KindOK:
		return emoji.Normalize(res.Value), nil
	case core.KindNetwork:
		s.logger.Error("completion request failed", "title", movie.Title, "err", res.Err)
	}
	return "", res.Err
}

func (s *Summarizer) complete(ctx context.Context, prompt string) core.Result[string] {
	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	response, err := s.client.GenerateContent(ctx, content,
		llms.WithTemperature(Temperature),
		llms.WithMaxTokens(MaxTokens),
		llms.WithTopP(TopP),
		llms.WithFrequencyPenalty(FrequencyPenalty),
		llms.WithPresencePenalty(PresencePenalty),
	)
	if err != nil {
		return core.NetworkError[string](err)
	}
	if response == nil || len(response.Choices) == 0 || response.Choices[0] == nil {
		return core.ParseError[string](core.ErrNoCompletion)
	}

	s.logger.Debug("completion received", "length", len(response.Choices[0].Content))
	return core.OK(response.Choices[0].Content)
}
