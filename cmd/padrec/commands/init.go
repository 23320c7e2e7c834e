package commands

import (
	"fmt"

	"github.com/padrec/padrec/pkg/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Write a commented sample configuration file populated with defaults.

The file is written to the path given with --config, or to the default
location ($XDG_CONFIG_HOME/padrec/config.yaml) otherwise.

Examples:
  # Create config at the default location
  padrec init

  # Create config at a custom path
  padrec init --config ./padrec.yaml`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	var configPath string
	var err error

	if cfgFile != "" {
		err = config.InitConfigToPath(cfgFile, initForce)
		configPath = cfgFile
	} else {
		configPath, err = config.InitConfig(initForce)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Configuration file created at: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the configuration file to customize your setup")
	fmt.Printf("  2. Run padrec with it: padrec info run.p2m2 --config %s\n", configPath)
	return nil
}
