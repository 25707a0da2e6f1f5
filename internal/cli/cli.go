// Package cli implements the pipgraph command-line interface.
//
// The root command reads installed-package records, builds the dependency
// graph, reports warnings (duplicates, version conflicts, dependency
// cycles), and renders the graph in exactly one of the supported output
// modes. Subcommands expose an HTTP viewer and shell completions. The CLI is
// built on cobra with charmbracelet/log for logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pipgraph/pipgraph/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "pipgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself runs the dependency report.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.treeCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configDir returns the configuration directory using the XDG standard
// (~/.config/pipgraph/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
