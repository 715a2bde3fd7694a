// Package cmd defines the command-line interface, built with Kong.
package cmd

import (
	"os"

	"github.com/alecthomas/kong"

	"gitfetch/internal/config"
	"gitfetch/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run RunCmd `cmd:"" default:"withargs" help:"Print the repository summary (default)"`

	// Internal fields (not flags)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Settings only apply while the flag still holds its default.
	if c.settings != nil {
		if c.MaxLogFiles == 1000 && c.settings.MaxLogFiles != nil {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("GITFETCH_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	_, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	return err
}
