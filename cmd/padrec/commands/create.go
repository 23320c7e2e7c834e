package commands

import (
	"fmt"
	"os"

	"github.com/padrec/padrec/internal/cli/prompt"
	"github.com/padrec/padrec/internal/logger"
	"github.com/padrec/padrec/pkg/recording"
	"github.com/spf13/cobra"
)

var (
	createAuthor    string
	createGame      string
	createSavestate bool
	createForce     bool
)

var createCmd = &cobra.Command{
	Use:   "create <file>",
	Short: "Create a new recording file",
	Long: `Create a new recording file with a freshly stamped header.

Author and game name can be given as flags; missing values are prompted for
interactively. The emulator version field is stamped with the padrec version.

Examples:
  # Create interactively
  padrec create run.p2m2

  # Create without prompts
  padrec create run.p2m2 --author alice --game "Ico (PAL)"

  # Mark the recording as starting from a savestate
  padrec create run.p2m2 --author alice --game Ico --savestate`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createAuthor, "author", "", "Recording author")
	createCmd.Flags().StringVar(&createGame, "game", "", "Game name")
	createCmd.Flags().BoolVar(&createSavestate, "savestate", false, "Recording starts from a savestate instead of a cold boot")
	createCmd.Flags().BoolVar(&createForce, "force", false, "Overwrite an existing file without asking")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := args[0]

	if !createForce {
		if _, err := os.Stat(path); err == nil {
			overwrite, err := prompt.Confirm(fmt.Sprintf("File %s exists, overwrite", path), false)
			if err != nil {
				if prompt.IsAborted(err) {
					return nil
				}
				return err
			}
			if !overwrite {
				return nil
			}
		}
	}

	author := createAuthor
	if author == "" {
		author, err = prompt.Input("Author", cfg.Recording.DefaultAuthor)
		if err != nil {
			if prompt.IsAborted(err) {
				return nil
			}
			return err
		}
	}

	game := createGame
	if game == "" {
		game, err = prompt.InputOptional("Game name")
		if err != nil {
			if prompt.IsAborted(err) {
				return nil
			}
			return err
		}
	}

	rec := recording.New(logger.With(logger.Component("recording")))
	if err := rec.OpenNew(path, createSavestate); err != nil {
		return err
	}
	defer func() { _ = rec.Close() }()

	rec.Header().SetDefaultEmulatorVersion()
	rec.Header().SetAuthor(author)
	rec.Header().SetGameName(game)

	if err := rec.WriteHeader(); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
