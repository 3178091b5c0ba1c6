package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTempManager points the XDG directories at a temp dir so Load writes
// and watches files owned by the test.
func newTempManager(t *testing.T) *Manager {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())
	return m
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Positive(t, cfg.History.MaxEntries)
	assert.Positive(t, cfg.History.RetentionPeriodDays)
	assert.NotEmpty(t, cfg.Sim.Location)
	assert.NotEmpty(t, cfg.Sim.BaseURI)
}

func TestDefaultConfigTOMLRoundTrips(t *testing.T) {
	data, err := DefaultConfigTOML()
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, toml.Unmarshal(data, &cfg))
	assert.Equal(t, DefaultConfig().History, cfg.History)
	assert.Equal(t, DefaultConfig().Sim, cfg.Sim)
	assert.Equal(t, DefaultConfig().Logging, cfg.Logging)
}

func TestLoadWritesDefaultConfigAndSchema(t *testing.T) {
	m := newTempManager(t)

	assert.Equal(t, "info", m.Get().Logging.Level)

	configFile, err := GetConfigFile()
	require.NoError(t, err)
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(filepath.Dir(configFile), "config.schema.json"))
}

func TestWatchReloadsOnFileChange(t *testing.T) {
	m := newTempManager(t)
	require.Equal(t, "info", m.Get().Logging.Level)

	changed := make(chan *Config, 1)
	m.OnConfigChange(func(c *Config) {
		select {
		case changed <- c:
		default:
		}
	})
	require.NoError(t, m.Watch())

	cfg := m.Get()
	cfg.Logging.Level = "debug"
	data, err := Render(cfg)
	require.NoError(t, err)

	configFile, err := GetConfigFile()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configFile, data, filePerm))

	select {
	case c := <-changed:
		assert.Equal(t, "debug", c.Logging.Level)
	case <-time.After(5 * time.Second):
		t.Fatal("config change callback was not invoked")
	}
	assert.Equal(t, "debug", m.Get().Logging.Level)
}

func TestSchemaListsTopLevelSections(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "navkit Configuration", schema["title"])

	defs, ok := schema["$defs"].(map[string]any)
	require.True(t, ok, "schema should carry definitions")
	config, ok := defs["Config"].(map[string]any)
	require.True(t, ok)
	props, ok := config["properties"].(map[string]any)
	require.True(t, ok)
	for _, section := range []string{"database", "history", "sim", "logging"} {
		assert.Contains(t, props, section)
	}
}
