// Package config resolves runtime settings from flags, the environment
// and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/abhisek/careerwise/internal/appdata"
	"github.com/abhisek/careerwise/internal/store"
)

// DefaultDataDir is where boot resources are read from when no URL is set.
const DefaultDataDir = "data"

// Config holds the resolved settings.
type Config struct {
	// DataURL, if set, is the base URL boot resources are fetched from.
	DataURL string
	DataDir string
	DBPath  string
	LogFile string
	Debug   bool
}

// Flags are command-line overrides. Zero values are ignored.
type Flags struct {
	// EnvFile is loaded instead of ./.env. A missing ./.env is not an
	// error; a missing EnvFile is.
	EnvFile string
	DataURL string
	DataDir string
	DBPath  string
	LogFile string
	Debug   bool
}

// Load reads the .env file into the process environment (existing
// variables win) and then resolves the configuration.
func Load(f Flags) (Config, error) {
	if f.EnvFile != "" {
		if err := godotenv.Load(f.EnvFile); err != nil {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}
	return FromEnv(f), nil
}

// FromEnv resolves the configuration from CAREERWISE_* variables with f
// applied on top.
func FromEnv(f Flags) Config {
	c := Config{
		DataURL: os.Getenv("CAREERWISE_DATA_URL"),
		DataDir: os.Getenv("CAREERWISE_DATA_DIR"),
		DBPath:  os.Getenv("CAREERWISE_DB"),
		LogFile: os.Getenv("CAREERWISE_LOG_FILE"),
	}
	if v, err := strconv.ParseBool(os.Getenv("CAREERWISE_DEBUG")); err == nil {
		c.Debug = v
	}

	if f.DataURL != "" {
		c.DataURL = f.DataURL
	}
	if f.DataDir != "" {
		c.DataDir = f.DataDir
		// An explicit directory beats a URL from the environment.
		if f.DataURL == "" {
			c.DataURL = ""
		}
	}
	if f.DBPath != "" {
		c.DBPath = f.DBPath
	}
	if f.LogFile != "" {
		c.LogFile = f.LogFile
	}
	if f.Debug {
		c.Debug = true
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	return c
}

// Source returns the boot resource source.
func (c Config) Source() appdata.Source {
	if c.DataURL != "" {
		return appdata.NewHTTPSource(c.DataURL)
	}
	return appdata.DirSource{FS: os.DirFS(c.DataDir)}
}

// DatabasePath returns DBPath or the default location. The parent
// directory is created if needed.
func (c Config) DatabasePath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	return store.DefaultDBPath()
}
