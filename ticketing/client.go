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


package ticketing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/poiesic/marquee/core"
)

var errInvalidJSON = errors.New("ticketing: body is not valid JSON")

// DefaultHeaders returns the browser header set the vendor accepts.
//
// The cookie is a captured browser session, not an issued credential.
// Replace it through WithHeaders once the vendor provides one.
func DefaultHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", "*/*")
	h.Set("Accept-Encoding", "gzip, deflate, br")
	h.Set("Accept-Language", "en-US,en;q=0.9,es;q=0.8")
	h.Set("Cookie", "_gid=GA1.2.1654558725.1675482711; _cinemark-la_session=eyJzZXNzaW9uX2lkIjoiNzBiZDc3YzFjMWFlNzJmYjNkNGRkZmJmNzZhNTY4NDAiLCJfY3NyZl90b2tlbiI6IkJsd1VneFh1RmdDOXNrdFBlRUhnK3EyOVRBaVpTTlQrSlBzb2ljbWlDOGM9In0%3D--59840d1adf401bbe6eb5cc5a07ea6ddcd9ca0e05; _gcl_au=1.1.1751685644.1675558059; _clck=k556qf|1|f8x|0; _gat_UA-125280698-1=1; _clsk=1wvq1p7|1675733502038|25|1|j.clarity.ms/collect; _ga_NCVH5X9JM1=GS1.1.1675731854.10.1.1675733509.52.0.0; _ga=GA1.1.1413784692.1675482711")
	h.Set("Referer", "https://www.cinemark-peru.com/")
	h.Set("Sec-Ch-Ua-Platform", "OpenBSD")
	h.Set("Sec-Fetch-Dest", "empty")
	h.Set("Sec-Fetch-Mode", "cors")
	h.Set("Sec-Fetch-Site", "same-origin")
	h.Set("User-Agent", "Mozilla/5.0 (X11; OpenBSD i386) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/43.0.2357.81 Safari/537.36")
	h.Set("X-Requested-With", "XMLHttpRequest")
	return h
}

// Client talks to the cinema vendor. It is never mocked: the vendor has no
// sandbox, so it behaves the same in every mode.
type Client struct {
	http    *http.Client
	headers http.Header
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithHeaders replaces the request header set.
func WithHeaders(h http.Header) Option {
	return func(c *Client) {
		c.headers = h.Clone()
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a ticketing client. The default HTTP client has no timeout;
// callers bound calls through the context.
func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{},
		headers: DefaultHeaders(),
		logger:  slog.Default().With("component", "ticketing"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchOption configures a single Fetch call.
type FetchOption func(*fetchOptions)

type fetchOptions struct {
	method string
}

// WithMethod overrides the HTTP method. The default is GET.
func WithMethod(method string) FetchOption {
	return func(o *fetchOptions) {
		o.method = method
	}
}

// Fetch requests url and decodes the body as JSON into a T.
//
// Every failure returns nil: transport errors, unreadable or undecodable
// bodies, and JSON that does not fit T. A JSON null also returns nil. The
// response status is not inspected, so a JSON error document decodes like
// any other body. Callers cannot tell "absent" from "unavailable".
func Fetch[T any](ctx context.Context, c *Client, url string, opts ...FetchOption) *T {
	o := fetchOptions{method: http.MethodGet}
	for _, opt := range opts {
		opt(&o)
	}

	res := c.do(ctx, o.method, url)
	if !res.Ok() {
		c.logger.Debug("fetch failed", "url", url, "kind", res.Kind, "err", res.Err)
		return nil
	}

	var out *T
	if err := json.Unmarshal(res.Value, &out); err != nil {
		c.logger.Debug("fetch body does not match target type", "url", url, "err", err)
		return nil
	}
	return out
}

// Concessions returns the raw concession items of a cinema, or nil.
func (c *Client) Concessions(ctx context.Context, cinemaID string) json.RawMessage {
	return c.raw(ctx, ConcessionsURL(cinemaID))
}

// Billboard returns the raw billboard of a cinema, or nil.
func (c *Client) Billboard(ctx context.Context, cinemaID string) json.RawMessage {
	return c.raw(ctx, BillboardURL(cinemaID))
}

// Theatres returns the raw theatre list, or nil.
func (c *Client) Theatres(ctx context.Context) json.RawMessage {
	return c.raw(ctx, TheatresURL)
}

func (c *Client) raw(ctx context.Context, url string) json.RawMessage {
	if msg := Fetch[json.RawMessage](ctx, c, url); msg != nil {
		return *msg
	}
	return nil
}

// do performs one request and returns the body once it is known to be JSON.
func (c *Client) do(ctx context.Context, method, url string) core.Result[[]byte] {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return core.NetworkError[[]byte](err)
	}
	req.Header = c.headers.Clone()

	resp, err := c.http.Do(req)
	if err != nil {
		return core.NetworkError[[]byte](err)
	}
	defer resp.Body.Close()

	body, err := decodeBody(resp.Body, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return core.ParseError[[]byte](err)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return core.NetworkError[[]byte](err)
	}
	if !json.Valid(data) {
		return core.ParseError[[]byte](errInvalidJSON)
	}
	return core.OK(data)
}
