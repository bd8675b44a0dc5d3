// Package config loads the evenav YAML configuration file.
//
// Every key is optional. Values may reference environment variables with the
// usual $VAR or ${VAR} syntax; they are expanded before the YAML is parsed.
//
//	sde_path: ${HOME}/.cache/evenav/sde.zip
//	http_addr: ":9191"
//	log_level: info
//	download_url: https://example.com/sde.zip
//	route:
//	  profile: safer
//	  penalty: 50
//	  heuristic: distance
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sanonone/evenav/pkg/route"
	"github.com/sanonone/evenav/pkg/sde"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure of the configuration file.
type Config struct {
	SDEPath     string      `yaml:"sde_path"`
	HTTPAddr    string      `yaml:"http_addr"`
	LogLevel    string      `yaml:"log_level"`
	DownloadURL string      `yaml:"download_url"`
	Route       RouteConfig `yaml:"route"`
}

// RouteConfig holds planner defaults.
type RouteConfig struct {
	Profile   string `yaml:"profile"`
	Penalty   *int   `yaml:"penalty"` // nil keeps route.DefaultPenalty
	Heuristic string `yaml:"heuristic"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		SDEPath:     "sde.zip",
		HTTPAddr:    ":9191",
		LogLevel:    "info",
		DownloadURL: sde.DefaultURL,
		Route: RouteConfig{
			Profile:   string(route.Shortest),
			Heuristic: string(route.DistanceHeuristic),
		},
	}
}

// Load reads and parses the YAML configuration file at path, filling any key the file
// leaves out from Default. An empty path returns Default.
// Unknown keys are rejected so that typos do not go unnoticed.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read configuration file '%s': %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))

	decoder := yaml.NewDecoder(strings.NewReader(expanded))
	decoder.KnownFields(true)
	// An empty file decodes to io.EOF; treat it like a file with no keys.
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("YAML syntax error in '%s': %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in '%s': %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that have a fixed set of choices.
func (c *Config) Validate() error {
	if _, err := route.ParseProfile(c.Route.Profile); err != nil {
		return err
	}
	if _, err := route.ParseHeuristic(c.Route.Heuristic); err != nil {
		return err
	}
	if c.Route.Penalty != nil && *c.Route.Penalty < 0 {
		return fmt.Errorf("route.penalty must not be negative, got %d", *c.Route.Penalty)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// PlannerOptions converts the route section into planner options.
func (c *Config) PlannerOptions() []route.Option {
	// Validate has already accepted both names.
	profile, _ := route.ParseProfile(c.Route.Profile)
	heuristic, _ := route.ParseHeuristic(c.Route.Heuristic)

	opts := []route.Option{
		route.WithDefaultProfile(profile),
		route.WithDefaultHeuristic(heuristic),
	}
	if c.Route.Penalty != nil {
		opts = append(opts, route.WithPenalty(*c.Route.Penalty))
	}
	return opts
}

// ParseLevel maps a level name to a slog level. An empty name is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
