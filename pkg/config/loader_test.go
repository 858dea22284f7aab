package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/growlkit/pkg/config"
	"github.com/dmitrymomot/growlkit/pkg/growl"
)

type serverConfig struct {
	Addr    string   `env:"GROWLKIT_TEST_ADDR" envDefault:":8080"`
	Verbose bool     `env:"GROWLKIT_TEST_VERBOSE"`
	Tags    []string `env:"GROWLKIT_TEST_TAGS" envSeparator:","`
}

type requiredConfig struct {
	Token string `env:"GROWLKIT_TEST_TOKEN,required"`
}

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	config.ResetCache()
	t.Setenv("GROWLKIT_TEST_VERBOSE", "true")
	t.Setenv("GROWLKIT_TEST_TAGS", "a,b")

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)

	// cached: later environment changes are ignored until Reload
	t.Setenv("GROWLKIT_TEST_ADDR", ":9090")
	var cached serverConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, ":8080", cached.Addr)

	var reloaded serverConfig
	require.NoError(t, config.Reload(&reloaded))
	assert.Equal(t, ":9090", reloaded.Addr)

	var after serverConfig
	require.NoError(t, config.Load(&after))
	assert.Equal(t, ":9090", after.Addr)
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()

	var nilCfg *serverConfig
	require.ErrorIs(t, config.Load(nilCfg), config.ErrNilPointer)
	require.ErrorIs(t, config.Reload(nilCfg), config.ErrNilPointer)

	var req requiredConfig
	require.ErrorIs(t, config.Load(&req), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&requiredConfig{}) })

	t.Setenv("GROWLKIT_TEST_TOKEN", "secret")
	require.NoError(t, config.Load(&req))
	assert.Equal(t, "secret", req.Token)
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	path := writeEnv(t, "GROWLKIT_TEST_ADDR=:7070\nGROWLKIT_TEST_TAGS=\"x,y\"\n")
	t.Setenv("GROWLKIT_TEST_ADDR", "")
	os.Unsetenv("GROWLKIT_TEST_ADDR")
	t.Setenv("GROWLKIT_TEST_TAGS", "preset")

	require.NoError(t, config.LoadEnv(path))

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, []string{"preset"}, cfg.Tags, "existing variables win over the file")

	require.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env")) })
}

func TestLoad_GrowlDefaults(t *testing.T) {
	config.ResetCache()
	t.Setenv("GROWL_DEFAULT_TYPE", "pastel")
	t.Setenv("GROWL_ASSET_BASE_URL", "/static/growl")

	var defaults growl.Defaults
	require.NoError(t, config.Load(&defaults))
	assert.Equal(t, growl.TypePastel, defaults.Type)

	w, err := growl.New(growl.Config{ID: "w"}, defaults.Options()...)
	require.NoError(t, err)
	assert.Equal(t, growl.TypePastel, w.Type())
	assert.Equal(t, "/static/growl/js/bootstrap-notify.min.js", w.Assets().Scripts[0])

	config.ResetCache()
	t.Setenv("GROWL_DEFAULT_TYPE", "loud")
	require.Error(t, config.Load(&growl.Defaults{}))
}
