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


package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/marquee"
	"github.com/poiesic/marquee/config"
	"github.com/poiesic/marquee/core"
	"github.com/poiesic/marquee/ticketing"
	"github.com/urfave/cli/v2"
)

const facadeKey = "facade"

var errMissingArgs = errors.New("missing arguments")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "marquee",
		Usage: "Cinemark Peru billboard, emoji summaries and IP geolocation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Dotenv file loaded before reading the environment",
				Value: ".env",
			},
		},
		Before: setup,
		After:  teardown,
		Commands: []*cli.Command{
			{
				Name:   "theatres",
				Usage:  "List theatres with their cities",
				Action: theatresCommand,
			},
			{
				Name:      "billboard",
				Usage:     "Show the billboard of one or more cinemas",
				ArgsUsage: "CINEMA_ID...",
				Action:    billboardCommand,
				Flags:     []cli.Flag{concurrencyFlag()},
			},
			{
				Name:      "concessions",
				Usage:     "Show concession items of one or more cinemas",
				ArgsUsage: "CINEMA_ID...",
				Action:    concessionsCommand,
				Flags:     []cli.Flag{concurrencyFlag()},
			},
			{
				Name:      "thumbnail",
				Usage:     "Print the poster URL of a film",
				ArgsUsage: "CORPORATE_FILM_ID",
				Action:    thumbnailCommand,
			},
			{
				Name:   "emojis",
				Usage:  "Summarize a movie in five emoji",
				Action: emojisCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Aliases:  []string{"t"},
						Usage:    "Movie title",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"d"},
						Usage:   "Movie synopsis",
					},
				},
			},
			{
				Name:      "locate",
				Usage:     "Look up the location of one or more IP addresses",
				ArgsUsage: "IP...",
				Action:    locateCommand,
				Flags:     []cli.Flag{concurrencyFlag()},
			},
		},
	}
}

func concurrencyFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "concurrency",
		Aliases: []string{"c"},
		Usage:   "Maximum number of requests in flight",
		Value:   4,
	}
}

// setup configures logging, then loads the configuration and builds the
// facade. An incomplete live configuration stops the process here.
func setup(c *cli.Context) error {
	if err := setupLogger(c); err != nil {
		return err
	}

	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	f, err := marquee.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize clients: %w", err)
	}
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]any{}
	}
	c.App.Metadata[facadeKey] = f
	return nil
}

func teardown(c *cli.Context) error {
	if f, ok := c.App.Metadata[facadeKey].(*marquee.Facade); ok {
		return f.Close()
	}
	return nil
}

func facadeFrom(c *cli.Context) *marquee.Facade {
	return c.App.Metadata[facadeKey].(*marquee.Facade)
}

func theatresCommand(c *cli.Context) error {
	f := facadeFrom(c)
	return writeJSON(c.App.Writer, f.Tickets().Theatres(c.Context))
}

func billboardCommand(c *cli.Context) error {
	return perCinema(c, facadeFrom(c).Tickets().Billboard)
}

func concessionsCommand(c *cli.Context) error {
	return perCinema(c, facadeFrom(c).Tickets().Concessions)
}

type cinemaResult struct {
	CinemaID string          `json:"cinema_id"`
	Data     json.RawMessage `json:"data"`
}

func perCinema(c *cli.Context, fetch func(context.Context, string) json.RawMessage) error {
	ids := c.Args().Slice()
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one cinema id is required", errMissingArgs)
	}

	results, err := fanOut(c.Context, c.Int("concurrency"), ids, func(ctx context.Context, id string) cinemaResult {
		return cinemaResult{CinemaID: id, Data: fetch(ctx, id)}
	})
	if err != nil {
		return err
	}
	return writeJSON(c.App.Writer, results)
}

func thumbnailCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: exactly one corporate film id is required", errMissingArgs)
	}
	_, err := fmt.Fprintln(c.App.Writer, ticketing.ThumbnailURL(c.Args().First()))
	return err
}

func emojisCommand(c *cli.Context) error {
	f := facadeFrom(c)
	movie := core.Movie{
		Title:       c.String("title"),
		Description: c.String("description"),
	}

	emojis, err := f.Emojis().MovieToEmojis(c.Context, movie)
	if err != nil {
		return fmt.Errorf("emoji summary failed: %w", err)
	}
	return writeJSON(c.App.Writer, map[string]string{
		"title":  movie.Title,
		"emojis": emojis,
	})
}

type locateResult struct {
	core.IPLookup
	Error string `json:"error,omitempty"`
}

func locateCommand(c *cli.Context) error {
	ips := c.Args().Slice()
	if len(ips) == 0 {
		return fmt.Errorf("%w: at least one ip is required", errMissingArgs)
	}
	locator := facadeFrom(c).Geolocation()
	logger := slog.Default().With("component", "cli")

	results, err := fanOut(c.Context, c.Int("concurrency"), ips, func(ctx context.Context, ip string) locateResult {
		lookup, err := locator.LookupLocation(ctx, ip)
		if err != nil {
			logger.Warn("lookup failed", "ip", ip, "err", err)
			return locateResult{IPLookup: core.IPLookup{IP: ip}, Error: err.Error()}
		}
		return locateResult{IPLookup: lookup}
	})
	if err != nil {
		return err
	}
	return writeJSON(c.App.Writer, results)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Logs go to stderr so stdout stays JSON
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
