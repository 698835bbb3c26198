package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/search"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(newViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, formatText, cfg.Format)
	assert.Equal(t, []string{search.FreeTurnName, search.ForcedRunName}, cfg.Regimes)
	assert.Equal(t, FreeConfig{MaxRun: 3}, cfg.Free)
	assert.Equal(t, ForcedConfig{MinRun: 4, MaxRun: 10}, cfg.Forced)
	assert.Equal(t, int64(-1), cfg.MaxCost)
	assert.Empty(t, cfg.searchOptions(), "defaults add no budgets")
}

func TestConfig_Regimes(t *testing.T) {
	cfg := Config{
		Regimes: []string{"free", "part1", "FORCED", " forced-run "},
		Free:    FreeConfig{MaxRun: 5},
		Forced:  ForcedConfig{MinRun: 2, MaxRun: 7},
	}
	rs, err := cfg.regimes()
	require.NoError(t, err)
	require.Len(t, rs, 2, "aliases collapse to one regime each")
	assert.Equal(t, search.FreeTurn{Max: 5}, rs[0])
	assert.Equal(t, search.ForcedRun{Min: 2, Max: 7}, rs[1])

	cfg.Regimes = []string{"free", "sideways"}
	_, err = cfg.regimes()
	assert.ErrorIs(t, err, search.ErrUnknownRegime)

	cfg.Regimes = []string{"free"}
	cfg.Free.MaxRun = 0
	_, err = cfg.regimes()
	assert.ErrorIs(t, err, search.ErrBadRunBounds)
}

func TestConfig_Validate(t *testing.T) {
	base := Config{Format: formatYAML, Regimes: []string{"free"}}
	require.NoError(t, base.validate())

	bad := base
	bad.Format = "csv"
	assert.ErrorIs(t, bad.validate(), errBadFormat)

	bad = base
	bad.MaxExpansions = -1
	assert.Error(t, bad.validate())

	bad = base
	bad.Regimes = nil
	assert.ErrorIs(t, bad.validate(), search.ErrUnknownRegime)
}

func TestConfig_SearchOptions(t *testing.T) {
	cfg := Config{MaxExpansions: 10, MaxCost: 0, Path: true}
	assert.Len(t, cfg.searchOptions(), 3)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", false)
	logger.Info().Msg("hidden")
	logger.Warn().Str("regime", "free-turn").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"regime":"free-turn"`)

	assert.Equal(t, zerolog.InfoLevel, newLogger(&buf, "shouting", false).GetLevel())
	assert.False(t, isTerminal(&buf))
}
