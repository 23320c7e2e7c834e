package commands

import (
	"fmt"
	"os"

	"github.com/padrec/padrec/internal/cli/output"
	"github.com/padrec/padrec/internal/logger"
	"github.com/padrec/padrec/pkg/recording"
	"github.com/spf13/cobra"
)

var (
	dumpPort int
	dumpFrom int64
	dumpTo   int64
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Dump recorded frame data",
	Long: `Dump the recorded pad input of a frame range as hex bytes, one frame
per row. Frames with no recorded data are skipped.

Without an explicit range the dump starts at frame 0 and covers the number of
frames configured as recording.dump_frames, capped at the recording's total
frame count.

Examples:
  # Dump the beginning of the recording
  padrec dump run.p2m2

  # Dump a specific window on the second port
  padrec dump run.p2m2 --port 1 --from 1200 --to 1260`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().IntVar(&dumpPort, "port", 0, "Controller port to dump")
	dumpCmd.Flags().Int64Var(&dumpFrom, "from", 0, "First frame to dump")
	dumpCmd.Flags().Int64Var(&dumpTo, "to", 0, "Frame to stop before (default: from + recording.dump_frames)")
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if dumpPort < 0 || dumpPort >= recording.PortCount {
		return fmt.Errorf("port must be between 0 and %d", recording.PortCount-1)
	}

	rec := recording.New(logger.With(logger.Component("recording")))
	if err := rec.OpenExisting(args[0]); err != nil {
		return err
	}
	defer func() { _ = rec.Close() }()

	from := dumpFrom
	to := dumpTo
	if to == 0 {
		to = from + int64(cfg.Recording.DumpFrames)
		if total := int64(rec.TotalFrames()); to > total {
			to = total
		}
	}

	frames := rec.BulkReadPadData(from, to, dumpPort)
	if len(frames) == 0 {
		fmt.Printf("No recorded data for port %d in frames [%d, %d)\n", dumpPort, from, to)
		return nil
	}

	table := output.NewTableData("FRAME", "INPUT BYTES")
	for _, fp := range frames {
		table.AddRow(fmt.Sprintf("%d", fp.Frame), fmt.Sprintf("% x", fp.Data.Bytes()))
	}

	return output.PrintTable(os.Stdout, table)
}
