// Package config resolves the repair tool's settings by layering
// defaults, environment variables, and explicitly-set CLI flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all tool configuration.
type Config struct {
	SessionsRoot string
	DryRun       bool
}

// Default returns a Config pointing at the standard Codex sessions
// directory.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf(
			"determining home directory: %w", err,
		)
	}
	return Config{
		SessionsRoot: filepath.Join(home, ".codex", "sessions"),
	}, nil
}

// Load builds a Config by layering: defaults < env < flags.
// The provided FlagSet must already be parsed by the caller.
// Only flags that were explicitly set override the lower layers.
func Load(fs *flag.FlagSet) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}
	cfg.loadEnv()
	applyFlags(&cfg, fs)
	return cfg, nil
}

func (c *Config) loadEnv() {
	if v := os.Getenv("CODEX_SESSIONS_DIR"); v != "" {
		c.SessionsRoot = v
	}
}

// RegisterRepairFlags registers repair-command flags on fs.
// The caller must call fs.Parse before passing fs to Load.
func RegisterRepairFlags(fs *flag.FlagSet) {
	fs.String(
		"root", "",
		"Sessions root directory (default ~/.codex/sessions)",
	)
	fs.Bool(
		"dry-run", false,
		"Report what would be repaired without writing",
	)
}

// applyFlags copies explicitly-set flags from fs into cfg.
func applyFlags(cfg *Config, fs *flag.FlagSet) {
	if fs == nil {
		return
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "root":
			cfg.SessionsRoot = f.Value.String()
		case "dry-run":
			cfg.DryRun = f.Value.String() == "true"
		}
	})
}
