package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showroom/internal/catalog"
	"github.com/alexisbeaulieu97/showroom/internal/components"
	"github.com/alexisbeaulieu97/showroom/internal/config"
	"github.com/alexisbeaulieu97/showroom/internal/logger"
)

// AppContext bundles the settings and services every command needs.
type AppContext struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Defaults catalog.Defaults
	Logger   *logger.Logger

	closers []io.Closer
}

// Close releases the log file opened for interactive sessions.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		c.Close()
	}
}

// loadApp resolves configuration, logging, theme and catalog for a command. When
// interactive is set logs go to a file in the cache directory, or nowhere, so they never
// draw over the alternate screen.
func loadApp(cmd *cobra.Command, flags *rootFlags, operation string, interactive bool) (*AppContext, error) {
	path := flags.configPath
	explicit := path != ""
	if !explicit {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, newCommandError(operation, "locating the settings file", err, "Pass --config with an explicit path.")
		}
		path = defaultPath
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("loading settings from %s", path), err, "Fix the settings file or remove it to use the defaults.")
	}

	app := &AppContext{Config: cfg}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	var out io.Writer = cmd.ErrOrStderr()
	if interactive {
		out = io.Discard
		if flags.verbose {
			file, err := openLogFile()
			if err != nil {
				return nil, newCommandError(operation, "opening the log file", err, "Run without --verbose or check cache directory permissions.")
			}
			app.closers = append(app.closers, file)
			out = file
		}
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: !interactive, Writer: out})
	if err != nil {
		app.Close()
		return nil, newCommandError(operation, "configuring logging", err, "Set log_level to debug, info, warn or error.")
	}
	app.Logger = log.With("command", operation)

	themeName := cfg.Theme
	if flags.theme != "" {
		themeName = flags.theme
	}
	theme, ok := components.ThemeByName(themeName)
	if !ok {
		app.Close()
		return nil, newCommandError(operation, "selecting the theme", fmt.Errorf("unknown theme %q", themeName), "Use --theme light or --theme dark.")
	}
	components.SetTheme(theme)

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		app.Close()
		return nil, newCommandError(operation, "loading the component catalog", err, "Check the catalog path in your settings file.")
	}
	app.Catalog = cat
	app.Defaults = catalog.Defaults{
		Ellipsis:    cfg.Pagination.EllipsisOptions(),
		Exponential: cfg.Pagination.ExponentialOptions(),
	}

	app.Logger.WithFields(map[string]any{
		"config":     path,
		"theme":      theme.Name,
		"components": cat.Len(),
	}).Debug("application ready")

	return app, nil
}

func openLogFile() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	dir = filepath.Join(dir, "showroom")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "showroom.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
