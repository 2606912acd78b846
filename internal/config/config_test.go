package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerwise/internal/appdata"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CAREERWISE_DATA_URL", "CAREERWISE_DATA_DIR", "CAREERWISE_DB",
		"CAREERWISE_LOG_FILE", "CAREERWISE_DEBUG",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	c := FromEnv(Flags{})
	assert.Equal(t, Config{DataDir: DefaultDataDir}, c)
	_, ok := c.Source().(appdata.DirSource)
	assert.True(t, ok)
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CAREERWISE_DATA_URL", "https://example.com/data")
	t.Setenv("CAREERWISE_DB", "/tmp/cw.db")
	t.Setenv("CAREERWISE_DEBUG", "true")

	c := FromEnv(Flags{})
	assert.Equal(t, "https://example.com/data", c.DataURL)
	assert.Equal(t, "/tmp/cw.db", c.DBPath)
	assert.True(t, c.Debug)

	src, ok := c.Source().(*appdata.HTTPSource)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/data", src.BaseURL)

	p, err := c.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cw.db", p)
}

func TestFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CAREERWISE_DATA_URL", "https://example.com/data")
	t.Setenv("CAREERWISE_LOG_FILE", "/tmp/env.log")

	c := FromEnv(Flags{DataDir: "./fixtures", LogFile: "/tmp/flag.log", DBPath: "/tmp/flag.db"})
	assert.Empty(t, c.DataURL)
	assert.Equal(t, "./fixtures", c.DataDir)
	assert.Equal(t, "/tmp/flag.log", c.LogFile)
	assert.Equal(t, "/tmp/flag.db", c.DBPath)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("CAREERWISE_DB")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CAREERWISE_DB=/tmp/from-file.db\nCAREERWISE_DATA_DIR=/srv/data\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CAREERWISE_DB") })

	c, err := Load(Flags{EnvFile: path})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-file.db", c.DBPath)
	// Set (to empty) by clearEnv, so the file does not override it.
	assert.Equal(t, DefaultDataDir, c.DataDir)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(Flags{EnvFile: filepath.Join(t.TempDir(), "missing.env")})
	assert.Error(t, err)
}
