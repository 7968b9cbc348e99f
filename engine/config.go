// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/lvlmatrix/matrix"
	"gopkg.in/yaml.v3"
)

// Defaults mirror the calculator form: 5×5 grids, four decimals.
const (
	DefaultMaxDim   = 5
	DefaultDecimals = 4

	// maxDecimals bounds presentation precision to what float64 can carry.
	maxDecimals = 15
)

// Config holds engine and presentation settings.
//
// SingularTolerance is the |det| threshold for Inverse (matrix.DefaultSingularTolerance
// when loaded from defaults). MaxDim bounds operand rows and columns; 0 disables
// the bound. Decimals is used by callers that format results (see package render).
type Config struct {
	SingularTolerance float64 `yaml:"singular_tolerance"`
	MaxDim            int     `yaml:"max_dim"`
	Decimals          int     `yaml:"decimals"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		SingularTolerance: matrix.DefaultSingularTolerance,
		MaxDim:            DefaultMaxDim,
		Decimals:          DefaultDecimals,
	}
}

// Validate checks every field and returns ErrInvalidConfig naming the first bad one.
func (c Config) Validate() error {
	if math.IsNaN(c.SingularTolerance) || math.IsInf(c.SingularTolerance, 0) || c.SingularTolerance < 0 {
		return fmt.Errorf("singular_tolerance %v must be finite and >= 0: %w", c.SingularTolerance, ErrInvalidConfig)
	}
	if c.MaxDim < 0 {
		return fmt.Errorf("max_dim %d must be >= 0: %w", c.MaxDim, ErrInvalidConfig)
	}
	if c.Decimals < 0 || c.Decimals > maxDecimals {
		return fmt.Errorf("decimals %d must be in [0, %d]: %w", c.Decimals, maxDecimals, ErrInvalidConfig)
	}

	return nil
}

// DecodeConfig reads a YAML document on top of DefaultConfig. Keys that are
// absent keep their defaults; unknown keys are rejected. An empty document
// yields the defaults.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %v: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig opens path and decodes it with DecodeConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	return DecodeConfig(f)
}
