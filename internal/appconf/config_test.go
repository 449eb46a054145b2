package appconf

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("carrierdash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carrierdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8050, cfg.Port)
	assert.Equal(t, Development, cfg.Env)
	assert.Equal(t, ".", cfg.DataPath)
	assert.Equal(t, 100.0, cfg.RateLimit)
	assert.Equal(t, 50, cfg.RateBurst)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("CARRIERDASH_PORT", "9000")
	t.Setenv("CARRIERDASH_ENV", "production")
	t.Setenv("CARRIERDASH_DATA_PATH", "/srv/carriers")
	t.Setenv("CARRIERDASH_RATE_LIMIT", "2.5")
	t.Setenv("CARRIERDASH_VERBOSE", "true")
	t.Setenv("CARRIERDASH_READ_TIMEOUT", "30s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, Production, cfg.Env)
	assert.Equal(t, "/srv/carriers", cfg.DataPath)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "port: 7000\nenv: test\ndata_path: ./data\nidle_timeout: 2m\n")

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7000, cfg.Port)
		assert.Equal(t, Test, cfg.Env)
		assert.Equal(t, "./data", cfg.DataPath)
		assert.Equal(t, 2*time.Minute, cfg.IdleTimeout)
		assert.Equal(t, 100.0, cfg.RateLimit)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("CARRIERDASH_PORT", "7100")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7100, cfg.Port)
		assert.Equal(t, "./data", cfg.DataPath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid environment name", func(t *testing.T) {
		_, err := Load(writeConfig(t, "env: staging-ish\n"))
		assert.Error(t, err)
	})
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "CARRIERDASH_PORT", "70000"},
		{"non numeric port", "CARRIERDASH_PORT", "http"},
		{"zero rate limit", "CARRIERDASH_RATE_LIMIT", "0"},
		{"unknown environment", "CARRIERDASH_ENV", "staging"},
		{"negative timeout", "CARRIERDASH_WRITE_TIMEOUT", "-1s"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestParseFlags(t *testing.T) {
	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("CARRIERDASH_PORT", "9000")
		t.Setenv("CARRIERDASH_DATA_PATH", "/from/env")

		cfg, err := ParseFlags(newFlagSet(), []string{"-port", "9100", "-env", "prod", "-verbose"})
		require.NoError(t, err)
		assert.Equal(t, 9100, cfg.Port)
		assert.Equal(t, Production, cfg.Env)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "/from/env", cfg.DataPath)
		assert.False(t, cfg.TrustProxy)
	})

	t.Run("trust proxy from environment or flag", func(t *testing.T) {
		t.Setenv("CARRIERDASH_TRUST_PROXY", "true")
		cfg, err := ParseFlags(newFlagSet(), nil)
		require.NoError(t, err)
		assert.True(t, cfg.TrustProxy)

		cfg, err = ParseFlags(newFlagSet(), []string{"-trust-proxy=false"})
		require.NoError(t, err)
		assert.False(t, cfg.TrustProxy)
	})

	t.Run("unset flags keep loaded values", func(t *testing.T) {
		path := writeConfig(t, "rate_limit: 5\n")
		cfg, err := ParseFlags(newFlagSet(), []string{"-config", path, "-data", "../../testdata"})
		require.NoError(t, err)
		assert.Equal(t, 5.0, cfg.RateLimit)
		assert.Equal(t, "../../testdata", cfg.DataPath)
		assert.Equal(t, 8050, cfg.Port)
	})

	t.Run("invalid flag values", func(t *testing.T) {
		_, err := ParseFlags(newFlagSet(), []string{"-env", "staging"})
		assert.Error(t, err)

		_, err = ParseFlags(newFlagSet(), []string{"-rate-limit", "-1"})
		assert.Error(t, err)

		_, err = ParseFlags(newFlagSet(), []string{"-unknown"})
		assert.Error(t, err)
	})
}

func TestEnvironment(t *testing.T) {
	testCases := []struct {
		input   string
		want    Environment
		wantErr bool
	}{
		{input: "development", want: Development},
		{input: "dev", want: Development},
		{input: "TEST", want: Test},
		{input: "production", want: Production},
		{input: "prod", want: Production},
		{input: "unknown", want: Development, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			env, err := ParseEnvironment(tc.input)
			assert.Equal(t, tc.want, env)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.Equal(t, "production", Production.String())
	text, err := Test.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "test", string(text))
}
