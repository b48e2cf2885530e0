package cli

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/strandkit/strand/pkg/errors"
)

// Config holds user defaults loaded from the TOML config file. Flags
// always override config values; config values override built-in
// defaults.
type Config struct {
	// Format forces a sequence format instead of filename detection
	// (txt, csv, ig, fasta, json).
	Format string `toml:"format"`

	// Alphabet is the default residue alphabet for FASTA input
	// (protein, dna, rna).
	Alphabet string `toml:"alphabet"`

	// Delimiter overrides the token separator for delimited files.
	Delimiter string `toml:"delimiter"`

	// Scale is the PNG resolution multiplier.
	Scale float64 `toml:"scale"`
}

// defaultConfig returns the built-in defaults applied when the config
// file is absent or leaves a field unset.
func defaultConfig() Config {
	return Config{Scale: 2.0}
}

// defaultConfigPath returns the standard config location,
// ~/.config/strand/config.toml on Linux.
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// loadConfig reads the TOML config at path. An empty path means the
// default location, and a missing file there is not an error. An
// explicitly given path must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if explicit {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
			}
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeMalformedInput, err, "config %s", path)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = defaultConfig().Scale
	}
	return cfg, nil
}

// withConfig returns a new context with the given config attached.
func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx, falling back to the
// built-in defaults.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return defaultConfig()
}
