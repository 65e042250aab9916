package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"scribe/internal/logging"
)

// DefaultPath is tried when Load is called with an empty path.
const DefaultPath = "~/.scribe/config.toml"

// DBFile is the database file name inside Store.DataDir.
const DBFile = "scribe.db"

type Config struct {
	Store   StoreConfig   `toml:"store" yaml:"store"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Shell   ShellConfig   `toml:"shell" yaml:"shell"`
}

type StoreConfig struct {
	DataDir string `toml:"data_dir" yaml:"data_dir"`
	Bucket  string `toml:"bucket" yaml:"bucket"`
	Slot    string `toml:"slot" yaml:"slot"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

type ShellConfig struct {
	Prompt string `toml:"prompt" yaml:"prompt"`
}

// Defaults returns a Config with sane defaults. The slot key matches the
// localStorage key used by the browser version, so exported data lines up.
func Defaults() *Config {
	return &Config{
		Store: StoreConfig{
			DataDir: "~/.scribe",
			Bucket:  "scribe",
			Slot:    "posts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Shell: ShellConfig{
			Prompt: "scribe> ",
		},
	}
}

// Load reads a TOML or YAML config file (chosen by extension) over the
// defaults. An empty path tries DefaultPath and falls back to defaults if it
// does not exist.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		path = ExpandHome(DefaultPath)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parsing config: unknown key %q", undecoded[0].String())
		}
	}

	return cfg, nil
}

// Validate checks the fields Load cannot type-check.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Store.DataDir) == "" {
		return errors.New("store.data_dir must not be empty")
	}
	if strings.TrimSpace(c.Store.Bucket) == "" {
		return errors.New("store.bucket must not be empty")
	}
	if strings.TrimSpace(c.Store.Slot) == "" {
		return errors.New("store.slot must not be empty")
	}
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("logging.level %q: must be debug, info, warn or error", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format %q: must be text or json", c.Logging.Format)
	}
	if c.Shell.Prompt == "" {
		return errors.New("shell.prompt must not be empty")
	}
	return nil
}

// DBPath returns the bolt file location with ~ expanded.
func (c *Config) DBPath() string {
	return filepath.Join(ExpandHome(c.Store.DataDir), DBFile)
}

// ExpandHome resolves a leading ~/ to the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
