// Package cli builds the patternd command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"patternd/internal/common/fsutil"
	"patternd/internal/config"
	"patternd/internal/logging"
)

// defaultConfigPaths are tried in order when --config is not given.
var defaultConfigPaths = []string{
	"./patternd.yaml",
	"./patternd.toml",
	"./patternd.json",
	"~/.config/patternd/config.yaml",
}

// globalFlags are bound to the root command's persistent flags.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCmd constructs the command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "patternd",
		Short:         "Notifier, mood agent and house facade, as a library demo and HTTP daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "Config file (.yaml|.yml|.json|.toml); defaults to ./patternd.* or ~/.config/patternd/config.yaml")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug|info|warn|error|off (overrides config)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "Log format: json|console (overrides config)")

	root.AddCommand(newServeCmd(g), newDemoCmd(g))
	return root
}

// Execute runs the command tree with os.Args and returns the exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// loadConfig resolves the config file and applies flag overrides.
func (g *globalFlags) loadConfig() (config.Config, error) {
	var cfg config.Config
	path := g.configPath
	if path == "" {
		path = fsutil.FirstExisting(defaultConfigPaths...)
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if g.logFormat != "" {
		cfg.LogFormat = g.logFormat
	}
	return cfg.WithDefaults(), nil
}

func (g *globalFlags) logger(w io.Writer, cfg config.Config) zerolog.Logger {
	return logging.New(w, cfg.LogLevel, cfg.LogFormat)
}
