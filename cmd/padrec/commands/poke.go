package commands

import (
	"fmt"
	"strconv"

	"github.com/padrec/padrec/internal/logger"
	"github.com/padrec/padrec/pkg/recording"
	"github.com/spf13/cobra"
)

var pokeCmd = &cobra.Command{
	Use:   "poke <file> <frame> <port> <index> <value>",
	Short: "Write a single input byte",
	Long: `Write one byte of input at a frame, port, and byte index. The value
accepts decimal or 0x-prefixed hex. The recording's total frame count is
advanced if the poked frame lies beyond it.

Examples:
  # Press-state byte on port 0, frame 42
  padrec poke run.p2m2 42 0 3 0x7f`,
	Args: cobra.ExactArgs(5),
	RunE: runPoke,
}

func runPoke(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	frame, port, index, err := parseByteAddress(args[1], args[2], args[3])
	if err != nil {
		return err
	}

	value, err := strconv.ParseUint(args[4], 0, 8)
	if err != nil {
		return fmt.Errorf("invalid byte value %q", args[4])
	}

	rec := recording.New(logger.With(logger.Component("recording")))
	if err := rec.OpenExisting(args[0]); err != nil {
		return err
	}
	defer func() { _ = rec.Close() }()

	if err := rec.WriteKeyBuffer(frame, port, index, byte(value)); err != nil {
		return err
	}
	if err := rec.SetTotalFrames(int32(frame + 1)); err != nil {
		return err
	}

	fmt.Printf("Wrote 0x%02x at frame %d port %d index %d\n", value, frame, port, index)
	return nil
}
