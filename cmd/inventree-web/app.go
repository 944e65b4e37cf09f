package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andresuchdata/inventree-web/internal/cache"
	"github.com/andresuchdata/inventree-web/internal/client"
	"github.com/andresuchdata/inventree-web/internal/config"
	"github.com/andresuchdata/inventree-web/internal/domain"
	"github.com/andresuchdata/inventree-web/internal/endpoints"
	"github.com/andresuchdata/inventree-web/internal/render"
	"github.com/andresuchdata/inventree-web/internal/settings"
	"github.com/andresuchdata/inventree-web/internal/state"
	"github.com/andresuchdata/inventree-web/pkg/logger"
	"github.com/urfave/cli/v2"
)

type cfgKey struct{}

func newApp() *cli.App {
	return &cli.App{
		Name:  "inventree-web",
		Usage: "InvenTree web access layer: endpoint urls, server state and inline rendering",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log output format (console, json)",
				Value:   "console",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "server",
				Usage:   "InvenTree server base url",
				EnvVars: []string{"INVENTREE_SERVER"},
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "InvenTree API token",
				EnvVars: []string{"INVENTREE_API_TOKEN"},
			},
		},
		Before: loadConfig,
		Commands: []*cli.Command{
			{
				Name:   "endpoints",
				Usage:  "List every known endpoint and its url",
				Action: runEndpoints,
			},
			{
				Name:      "url",
				Usage:     "Build the url for an endpoint",
				ArgsUsage: "<endpoint> [pk]",
				Action:    runURL,
			},
			{
				Name:   "refresh",
				Usage:  "Fetch server info and status codes into the session cache",
				Action: runRefresh,
			},
			{
				Name:      "status",
				Usage:     "Resolve the label of a status value",
				ArgsUsage: "<model> <value>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "refresh",
						Usage: "Refresh server state before resolving",
					},
				},
				Action: runStatus,
			},
			{
				Name:      "render",
				Usage:     "Render a JSON instance inline",
				ArgsUsage: "<model> <file|->",
				Action:    runRender,
			},
			{
				Name:  "settings",
				Usage: "Print the frontend settings",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "script",
						Usage: "Print as the inline bootstrap script",
					},
					&cli.BoolFlag{
						Name:  "bundle",
						Usage: "Print the web app stylesheet and script tags from the build manifest",
					},
					&cli.StringFlag{
						Name:  "manifest",
						Usage: "Path to the web app build manifest (overrides FRONTEND_MANIFEST_PATH)",
					},
				},
				Action: runSettings,
			},
			{
				Name:  "clear",
				Usage: "Drop the cached server state",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "all-sessions",
						Usage: "Drop the cached state of every session, not only the configured one",
					},
				},
				Action: runClear,
			},
			{
				Name:   "serve",
				Usage:  "Serve frontend settings, server state and helpers over HTTP",
				Action: runServe,
			},
		},
	}
}

func loadConfig(c *cli.Context) error {
	if c.String("log-format") == "json" {
		logger.SetJSON(c.App.ErrWriter)
	}
	logger.SetLevel(c.String("log-level"))

	cfg := *config.Load()
	if server := c.String("server"); server != "" {
		cfg.Client.BaseURL = server
	}
	if token := c.String("token"); token != "" {
		cfg.Client.Token = token
	}

	c.Context = context.WithValue(c.Context, cfgKey{}, &cfg)
	return nil
}

func configFrom(c *cli.Context) *config.Config {
	if cfg, ok := c.Context.Value(cfgKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.Load()
}

// newStore wires the API client and session cache into a server state store.
func newStore(ctx context.Context, cfg *config.Config) (*state.Store, error) {
	api, err := client.New(cfg.Client)
	if err != nil {
		return nil, err
	}

	sessionCache, err := cache.NewServerStateCache(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session cache: %w", err)
	}

	return state.NewStore(ctx, api, sessionCache), nil
}

func runEndpoints(c *cli.Context) error {
	out := c.App.Writer
	for _, e := range endpoints.All() {
		fmt.Fprintf(out, "%-36s %s\n", e, endpoints.URL(e, ""))
	}
	return nil
}

func runURL(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("endpoint is required")
	}

	endpoint, ok := endpoints.Lookup(c.Args().Get(0))
	if !ok {
		return fmt.Errorf("unknown endpoint %q", c.Args().Get(0))
	}

	fmt.Fprintln(c.App.Writer, endpoints.URL(endpoint, c.Args().Get(1)))
	return nil
}

func runRefresh(c *cli.Context) error {
	store, err := newStore(c.Context, configFrom(c))
	if err != nil {
		return err
	}

	if err := store.Fetch(c.Context); err != nil {
		return err
	}

	return writeJSON(c.App.Writer, store.Snapshot())
}

func runStatus(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("model and value are required")
	}

	value, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid status value %q", c.Args().Get(1))
	}

	store, err := newStore(c.Context, configFrom(c))
	if err != nil {
		return err
	}

	if _, ok := store.StatusLookup(); !ok || c.Bool("refresh") {
		if err := store.Fetch(c.Context); err != nil {
			return err
		}
	}

	fmt.Fprintln(c.App.Writer, store.StatusLabel(domain.ModelType(c.Args().Get(0)), value))
	return nil
}

func runRender(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("model and input are required")
	}

	var in io.Reader = c.App.Reader
	if path := c.Args().Get(1); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open instance file: %w", err)
		}
		defer f.Close()
		in = f
	}

	var instance domain.Instance
	if err := json.NewDecoder(in).Decode(&instance); err != nil {
		return fmt.Errorf("decode instance: %w", err)
	}

	inline, err := render.Instance(domain.ModelType(c.Args().Get(0)), instance)
	if err != nil {
		return err
	}

	return writeJSON(c.App.Writer, inline)
}

func runSettings(c *cli.Context) error {
	cfg := configFrom(c)
	if c.Bool("bundle") {
		manifestPath := cfg.Frontend.ManifestPath
		if path := c.String("manifest"); path != "" {
			manifestPath = path
		}
		bundle, ok := settings.Bundle(manifestPath)
		if !ok {
			return fmt.Errorf("no web app bundle at %s", manifestPath)
		}
		fmt.Fprintln(c.App.Writer, bundle)
		return nil
	}

	frontend := settings.Frontend(cfg.Frontend, cfg.Frontend.Debug)

	if c.Bool("script") {
		script, err := settings.Script(frontend)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, script)
		return nil
	}

	return writeJSON(c.App.Writer, frontend)
}

func runClear(c *cli.Context) error {
	store, err := newStore(c.Context, configFrom(c))
	if err != nil {
		return err
	}

	if !c.Bool("all-sessions") {
		if err := store.Clear(c.Context); err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, "cleared")
		return nil
	}

	removed, err := store.ClearSessions(c.Context)
	if err != nil {
		return err
	}
	logger.Log.Info().Int64("removed", removed).Msg("cleared session states")
	fmt.Fprintf(c.App.Writer, "cleared %d sessions\n", removed)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
