// Package config loads and validates the solver configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-ricrob/pegsolver/board"
	"github.com/go-ricrob/pegsolver/internal/logging"
	"github.com/go-ricrob/pegsolver/solver"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "pegsolver.yaml"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes a single search run.
type Config struct {
	Rows        int    `yaml:"rows" json:"rows" mapstructure:"rows"`
	EmptyRow    int    `yaml:"empty_row" json:"empty_row" mapstructure:"empty_row"`
	EmptyHole   int    `yaml:"empty_hole" json:"empty_hole" mapstructure:"empty_hole"`
	Workers     int    `yaml:"workers" json:"workers" mapstructure:"workers"`
	Strategy    string `yaml:"strategy" json:"strategy" mapstructure:"strategy"`
	LogLevel    string `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
	MetricsAddr string `yaml:"metrics_addr" json:"metrics_addr" mapstructure:"metrics_addr"`
}

// Default returns the classic 5 row board with row 3 hole 2 empty.
func Default() Config {
	return Config{
		Rows:      5,
		EmptyRow:  3,
		EmptyHole: 2,
		Workers:   1,
		Strategy:  solver.StrategyRecursive.String(),
		LogLevel:  "info",
	}
}

// Load is like LoadFile but a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads a YAML or JSON file (chosen by extension) over the defaults.
// Keys missing from the file keep their default value.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// integralFloat rejects fractional numbers decoded into integer fields;
// mapstructure would truncate them.
func integralFloat(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return data, nil
	}
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not an integer", f)
	}
	return data, nil
}

func decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(integralFloat),
		Result:           cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// EmptyPosition returns the configured empty hole.
func (c Config) EmptyPosition() (board.Position, error) {
	return board.NewPosition(c.EmptyRow, c.EmptyHole)
}

// Board returns the initial board described by c.
func (c Config) Board() (board.Board, error) {
	empty, err := c.EmptyPosition()
	if err != nil {
		return board.Board{}, err
	}
	return board.New(c.Rows, empty)
}

// Validate checks that c describes a runnable search.
func (c Config) Validate() error {
	if _, err := c.Board(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := solver.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
