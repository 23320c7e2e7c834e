package commands

import (
	"fmt"
	"os"

	"github.com/padrec/padrec/internal/cli/output"
	"github.com/padrec/padrec/internal/logger"
	"github.com/padrec/padrec/pkg/recording"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show recording metadata",
	Long: `Show the header fields and counters of a recording file.

Examples:
  padrec info run.p2m2`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	rec := recording.New(logger.With(logger.Component("recording")))
	if err := rec.OpenExisting(args[0]); err != nil {
		return err
	}
	defer func() { _ = rec.Close() }()

	hdr := rec.Header()
	startFrom := "power-on"
	if rec.FromSavestate() {
		startFrom = "savestate"
	}

	size := "unknown"
	if fi, err := os.Stat(args[0]); err == nil {
		size = output.HumanSize(fi.Size())
	}

	pairs := [][2]string{
		{"File", rec.Filename()},
		{"Size", size},
		{"Version", fmt.Sprintf("%d", recording.FormatVersion)},
		{"Emulator", hdr.EmulatorVersion()},
		{"Author", hdr.Author()},
		{"Game", hdr.GameName()},
		{"Total frames", fmt.Sprintf("%d", rec.TotalFrames())},
		{"Undo count", fmt.Sprintf("%d", rec.UndoCount())},
		{"Starts from", startFrom},
	}

	return output.SimpleTable(os.Stdout, pairs)
}
