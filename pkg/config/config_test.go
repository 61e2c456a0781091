package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tobebot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
  name: Practice
data_dir: /var/lib/tobebot
logging:
  level: debug
lexicon:
  extra_nouns: [astronaut]
  extra_proper_nouns: [Bogota, Lima]
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "Practice", cfg.Server.Name)
	assert.Equal(t, "1.0.0", cfg.Server.Version)
	assert.Equal(t, "/var/lib/tobebot", cfg.DataDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"Bogota", "Lima"}, cfg.Lexicon.ExtraProperNouns)
	assert.Len(t, cfg.LexiconOptions(), 2)
	assert.Equal(t, filepath.Join("/var/lib/tobebot", "stats.json"), cfg.StatsFile())
	assert.Equal(t, "http://localhost:9090", cfg.ResolvedBaseURL())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tobebot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TOBEBOT_PORT", "7000")
	t.Setenv("TOBEBOT_BASE_URL", "https://tobe.example.com")
	t.Setenv("TOBEBOT_LOG_LEVEL", "WARN")
	t.Setenv("TOBEBOT_LOG_DEVELOPMENT", "true")
	t.Setenv("TOBEBOT_EXTRA_WORDS", "zorbing, kayaking")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "https://tobe.example.com", cfg.ResolvedBaseURL())
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, []string{"zorbing", "kayaking"}, cfg.Lexicon.ExtraWords)
}

func TestEnvOverrideErrors(t *testing.T) {
	t.Setenv("TOBEBOT_PORT", "eighty")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"missing name", func(c *Config) { c.Server.Name = "" }},
		{"bad base url", func(c *Config) { c.Server.BaseURL = "not a url" }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"blank extra word", func(c *Config) { c.Lexicon.ExtraWords = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "tobebot.yaml")

	want := Default()
	want.Server.Port = 8181
	want.Lexicon.ExtraNouns = []string{"astronaut"}
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
