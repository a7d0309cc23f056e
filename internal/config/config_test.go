package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recurse/internal/config"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recurse.toml")
	body := "verbose = true\nmax_input = 50\nfamilies = [\"divide\", \"tail\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 50, cfg.MaxInput)
	assert.Equal(t, []string{"divide", "tail"}, cfg.Families)
	assert.Equal(t, config.ColorAuto, cfg.Color, "unset key keeps default")
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad color":      `color = "sometimes"`,
		"zero ceiling":   `max_input = 0`,
		"unknown family": `families = ["quantum"]`,
	}
	for name, body := range cases {
		_, err := config.Parse([]byte(body))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}

	_, err := config.Parse([]byte("max_input = [nope"))
	assert.Error(t, err, "malformed TOML")
}

func TestEncode_RoundTrip(t *testing.T) {
	want := config.Default()
	want.MaxInput = 123

	data, err := want.Encode()
	require.NoError(t, err)

	got, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
