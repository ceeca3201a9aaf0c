// Package cli implements the muse command-line interface.
//
// This package provides commands for searching the Met Museum's open access
// collection, inspecting individual objects, generating procedural posters,
// serving the HTTP API, and managing the response cache. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - search: Query the collection with filters and pagination
//   - object: Show metadata for a single object
//   - departments: List curatorial departments
//   - poster: Generate a procedural poster as PNG
//   - serve: Run the HTTP API server
//   - cache: Manage the Met API response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// lives on the CLI struct and is shared by every command.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/musecli/muse/pkg/buildinfo"
	"github.com/musecli/muse/pkg/cache"
	"github.com/musecli/muse/pkg/met"
)

// appName is the application name used for directories and display.
const appName = "muse"

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
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "muse",
		Short:        "Muse searches the Met collection and generates posters",
		Long:         `Muse is a CLI for the Metropolitan Museum of Art open access collection: search objects, browse departments, and generate seeded procedural posters inspired by what you find.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.objectCommand())
	root.AddCommand(c.departmentsCommand())
	root.AddCommand(c.posterCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newMetClient builds a Met API client backed by the file cache, falling
// back to a null cache when caching is disabled or the directory is
// unavailable.
func (c *CLI) newMetClient(noCache bool) *met.Client {
	return met.NewClient(newCache(noCache))
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/muse/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
