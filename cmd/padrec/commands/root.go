// Package commands implements the CLI commands for the padrec tool.
package commands

import (
	"fmt"

	"github.com/padrec/padrec/internal/logger"
	"github.com/padrec/padrec/pkg/config"
	"github.com/spf13/cobra"
)

var (
	// Build information injected at build time.
	Commit = "none"
	Date   = "unknown"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "padrec",
	Short: "Inspect and author controller input recordings",
	Long: `padrec reads, creates, and edits controller input recording files.

A recording file stores one byte-addressable block of pad input per frame,
preceded by a fixed metadata header. padrec can create new recordings, show
their metadata, dump and patch frame data, and watch a recording as it is
being written.

Use "padrec [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default: $XDG_CONFIG_HOME/padrec/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(peekCmd)
	rootCmd.AddCommand(pokeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
}

// loadConfig loads the configuration and initializes the logger from it.
// Every command that touches a recording file goes through this.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	loggerCfg := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if err := logger.Init(loggerCfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}
