// SPDX-License-Identifier: MIT

package embed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlayout/embed"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyperlayout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "dimensions: 5\nlearning_rate: 0.25\nseed: 42\n")

	cfg, err := embed.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Dimensions)
	require.Equal(t, 0.25, cfg.LearningRate)
	require.Equal(t, embed.DefaultEquilibriumDistance, cfg.EquilibriumDistance, "missing keys keep defaults")
	require.EqualValues(t, 42, cfg.Seed)

	e, err := embed.NewFromConfig(cfg, embed.WithWorkers(2))
	require.NoError(t, err)
	require.Equal(t, 5, e.Dimensions())
	require.Equal(t, 0.25, e.LearningRate())
	require.Equal(t, 2, e.Workers())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := embed.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = embed.LoadConfig(writeConfig(t, "dimensions: [oops\n"))
	require.Error(t, err)

	_, err = embed.LoadConfig(writeConfig(t, "dimensions: 0\n"))
	require.ErrorIs(t, err, embed.ErrBadDimension)

	_, err = embed.LoadConfig(writeConfig(t, "equilibrium_distance: -2\n"))
	require.ErrorIs(t, err, embed.ErrBadParameter)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, embed.DefaultConfig().Validate())

	cfg := embed.DefaultConfig()
	cfg.LearningRate = 0
	require.ErrorIs(t, cfg.Validate(), embed.ErrBadParameter)
	_, err := embed.NewFromConfig(cfg)
	require.ErrorIs(t, err, embed.ErrBadParameter)
}

func TestConfig_SeedIsReproducible(t *testing.T) {
	cfg := embed.DefaultConfig()
	cfg.Seed = 99
	a, err := embed.NewFromConfig(cfg)
	require.NoError(t, err)
	b, err := embed.NewFromConfig(cfg)
	require.NoError(t, err)

	pa, err := a.AddRandomNode("n")
	require.NoError(t, err)
	pb, err := b.AddRandomNode("n")
	require.NoError(t, err)
	require.True(t, pa.Equal(pb, 0))
}
