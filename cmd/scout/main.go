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
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/poiesic/scout"
	"github.com/poiesic/scout/config"
	"github.com/poiesic/scout/core"
	"github.com/poiesic/scout/httpapi"
	"github.com/poiesic/scout/query"
	"github.com/poiesic/scout/search"
	"github.com/poiesic/scout/triage"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "scout",
		Usage: "Construction tender discovery and symptom triage",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Colorize log output",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a TOML config file",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to a .env file with API keys",
				Value: config.DefaultEnvFile,
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "tenders",
				Usage:  "Search construction tenders",
				Action: tendersCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "city",
						Usage: "Tender city (Riyadh, Jeddah)",
						Value: string(core.CityRiyadh),
					},
					&cli.StringFlag{
						Name:  "area",
						Usage: "District or area",
					},
					&cli.StringFlag{
						Name:  "type",
						Usage: "Project type",
					},
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Free-text query",
					},
					&cli.StringFlag{
						Name:  "transcript",
						Usage: "Spoken request to read filters from",
					},
					&cli.IntFlag{
						Name:  "year",
						Usage: "Filter year (default from config)",
					},
					&cli.IntFlag{
						Name:  "month",
						Usage: "Filter month (1-12)",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort order (relevance, deadline, newest)",
						Value: string(search.SortRelevance),
					},
					&cli.BoolFlag{
						Name:  "progress",
						Usage: "Print search progress to stderr",
					},
				},
			},
			{
				Name:   "analyze",
				Usage:  "Assess symptoms and suggest nearby doctors",
				Action: analyzeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "symptoms",
						Aliases:  []string{"s"},
						Usage:    "Description of the symptoms",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "country",
						Usage: "Patient country",
					},
					&cli.StringFlag{
						Name:  "city",
						Usage: "Patient city; enables the doctor search",
					},
					&cli.StringFlag{
						Name:  "area",
						Usage: "Patient area",
					},
				},
			},
			{
				Name:   "doctors",
				Usage:  "Search individual doctors",
				Action: doctorsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "country",
						Usage: "Country",
						Value: core.Country,
					},
					&cli.StringFlag{
						Name:     "city",
						Usage:    "City",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "area",
						Usage: "Area",
					},
					&cli.StringSliceFlag{
						Name:  "specialty",
						Usage: "Recommended specialty, highest priority first (repeatable)",
					},
					&cli.BoolFlag{
						Name:  "progress",
						Usage: "Print search progress to stderr",
					},
				},
			},
			{
				Name:   "specialties",
				Usage:  "List the doctor specialty taxonomy",
				Action: specialtiesCommand,
			},
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8080",
					},
				},
			},
		},
	}
}

func openScout(c *cli.Context) (*scout.Scout, error) {
	cfg, err := config.Load(c.String("config"), config.WithEnvFile(c.String("env-file")))
	if err != nil {
		return nil, err
	}
	return scout.New(scout.WithAIConfig(cfg), scout.WithLogger(slog.Default()))
}

func tendersCommand(c *cli.Context) error {
	params := core.SearchParams{
		City:        core.City(c.String("city")),
		Area:        c.String("area"),
		ProjectType: core.ProjectType(c.String("type")),
		Query:       c.String("query"),
		Year:        c.Int("year"),
		Month:       c.Int("month"),
	}
	if t := c.String("transcript"); t != "" {
		params = query.ParseTranscript(t, params)
	}
	if err := core.ValidateSearchParams(&params); err != nil {
		return err
	}

	sortBy := search.SortOrder(strings.ToLower(c.String("sort")))
	switch sortBy {
	case search.SortRelevance, search.SortDeadline, search.SortNewest:
	default:
		return fmt.Errorf("invalid sort %q: must be one of relevance, deadline, newest", sortBy)
	}

	s, err := openScout(c)
	if err != nil {
		return err
	}
	defer s.Close()

	result := s.TenderSearcher().SearchWithMonitor(c.Context, params, progressMonitor(c, len(search.TenderSteps())))
	result.Tenders = search.Refine(result.Tenders, search.RefineOptions{SortBy: sortBy})
	return writeJSON(c.App.Writer, result)
}

func analyzeCommand(c *cli.Context) error {
	input := core.SymptomInput{
		Symptoms: c.String("symptoms"),
		Country:  c.String("country"),
		City:     c.String("city"),
		Area:     c.String("area"),
	}
	if err := core.ValidateSymptomInput(&input); err != nil {
		return err
	}

	s, err := openScout(c)
	if err != nil {
		return err
	}
	defer s.Close()

	resp := httpapi.AnalyzeResponse{AnalysisResult: s.AnalyzeSymptoms(c.Context, input)}
	if triage.HasLocation(input) {
		doctors := s.FindDoctors(c.Context, triage.DoctorSearchParamsFor(resp.Analysis, input))
		resp.Doctors = &doctors
	}
	return writeJSON(c.App.Writer, resp)
}

func doctorsCommand(c *cli.Context) error {
	params := core.DoctorSearchParams{
		Country:     c.String("country"),
		City:        c.String("city"),
		Area:        c.String("area"),
		Specialties: c.StringSlice("specialty"),
	}
	if err := core.ValidateDoctorSearchParams(&params); err != nil {
		return err
	}

	s, err := openScout(c)
	if err != nil {
		return err
	}
	defer s.Close()

	return writeJSON(c.App.Writer, s.DoctorSearcher().FindWithMonitor(c.Context, params, progressMonitor(c, 0)))
}

// progressMonitor returns a stderr progress writer when --progress is set.
func progressMonitor(c *cli.Context, steps int) search.SearchMonitor {
	if !c.Bool("progress") {
		return nil
	}
	return search.NewProgressWriter(c.App.ErrWriter, steps)
}

func specialtiesCommand(c *cli.Context) error {
	return writeJSON(c.App.Writer, core.Specialties())
}

func serveCommand(c *cli.Context) error {
	s, err := openScout(c)
	if err != nil {
		return err
	}
	defer s.Close()

	handler, err := httpapi.NewRouter(slog.Default(), httpapi.Pipelines{
		Tenders:  s.TenderSearcher(),
		Doctors:  s.DoctorSearcher(),
		Analyzer: s.Analyzer(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpapi.Serve(ctx, c.String("addr"), handler, slog.Default())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func setupLogger(c *cli.Context) error {
	level, err := parseLevel(c.String("log-level"))
	if err != nil {
		return err
	}

	var handler slog.Handler
	if c.Bool("color") {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05.000",
		})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	}
	slog.SetDefault(slog.New(handler))

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	levelStr := strings.ToLower(s)
	switch levelStr {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
}
