package engine_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlmatrix/engine"
	"github.com/katalvlaran/lvlmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := engine.DefaultConfig()
	require.Equal(t, matrix.DefaultSingularTolerance, cfg.SingularTolerance)
	require.Equal(t, 5, cfg.MaxDim)
	require.Equal(t, 4, cfg.Decimals)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*engine.Config)
	}{
		{"negative tolerance", func(c *engine.Config) { c.SingularTolerance = -1 }},
		{"NaN tolerance", func(c *engine.Config) { c.SingularTolerance = math.NaN() }},
		{"Inf tolerance", func(c *engine.Config) { c.SingularTolerance = math.Inf(1) }},
		{"negative max_dim", func(c *engine.Config) { c.MaxDim = -1 }},
		{"negative decimals", func(c *engine.Config) { c.Decimals = -1 }},
		{"too many decimals", func(c *engine.Config) { c.Decimals = 16 }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := engine.DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), engine.ErrInvalidConfig)

			_, err := engine.New(cfg)
			require.ErrorIs(t, err, engine.ErrInvalidConfig)
		})
	}
}

func TestDecodeConfig_EmptyYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := engine.DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, engine.DefaultConfig(), cfg)
}

func TestDecodeConfig_PartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := engine.DecodeConfig(strings.NewReader("decimals: 2\nmax_dim: 0\n"))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Decimals)
	require.Equal(t, 0, cfg.MaxDim)
	require.Equal(t, matrix.DefaultSingularTolerance, cfg.SingularTolerance)
}

func TestDecodeConfig_Rejects(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"unknown key":    "precision: 3\n",
		"wrong type":     "max_dim: five\n",
		"invalid value":  "singular_tolerance: -0.5\n",
		"decimals range": "decimals: 40\n",
	} {
		_, err := engine.DecodeConfig(strings.NewReader(doc))
		require.ErrorIs(t, err, engine.ErrInvalidConfig, name)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matrixcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("singular_tolerance: 1e-6\n"), 0o600))

	cfg, err := engine.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 1e-6, cfg.SingularTolerance)

	_, err = engine.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
