package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/pipgraph/pipgraph/pkg/errors"
)

// fileConfig holds optional defaults read from config.toml. Pointer fields
// distinguish "not set" from a zero value. Flags always win over the file.
type fileConfig struct {
	Depth    *int   `toml:"depth"`
	Encoding string `toml:"encoding"`
	Warn     string `toml:"warn"`
	All      *bool  `toml:"all"`
}

// loadFileConfig reads $XDG_CONFIG_HOME/pipgraph/config.toml (falling back
// to ~/.config). A missing file is not an error; a malformed one is ignored
// so a broken config never blocks the tool.
func loadFileConfig() fileConfig {
	var cfg fileConfig
	dir, err := configDir()
	if err != nil {
		return cfg
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}
	}
	return cfg
}

// applyConfigDefaults fills options from the config file for every flag the
// user did not set explicitly. File-supplied values follow the same rules as
// flag values: a negative depth is rejected rather than read as unbounded.
func applyConfigDefaults(cmd *cobra.Command, opts *treeOpts) error {
	cfg := loadFileConfig()
	flags := cmd.Flags()

	if cfg.Depth != nil && !flags.Changed("depth") {
		if *cfg.Depth < 0 {
			return errors.New(errors.ErrCodeInvalidConfig,
				"depth in config.toml must be non-negative, got %d", *cfg.Depth)
		}
		opts.depth = *cfg.Depth
	}
	if cfg.Encoding != "" && !flags.Changed("encoding") {
		opts.encoding = cfg.Encoding
	}
	if cfg.Warn != "" && !flags.Changed("warn") {
		opts.warn = cfg.Warn
	}
	if cfg.All != nil && !flags.Changed("all") {
		opts.listAll = *cfg.All
	}
	return nil
}
