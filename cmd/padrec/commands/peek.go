package commands

import (
	"fmt"
	"strconv"

	"github.com/padrec/padrec/internal/logger"
	"github.com/padrec/padrec/pkg/recording"
	"github.com/spf13/cobra"
)

var peekCmd = &cobra.Command{
	Use:   "peek <file> <frame> <port> <index>",
	Short: "Read a single input byte",
	Long: `Read one byte of recorded input at a frame, port, and byte index.

Examples:
  # Byte 3 of port 0 at frame 42
  padrec peek run.p2m2 42 0 3`,
	Args: cobra.ExactArgs(4),
	RunE: runPeek,
}

func runPeek(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	frame, port, index, err := parseByteAddress(args[1], args[2], args[3])
	if err != nil {
		return err
	}

	rec := recording.New(logger.With(logger.Component("recording")))
	if err := rec.OpenExisting(args[0]); err != nil {
		return err
	}
	defer func() { _ = rec.Close() }()

	b, err := rec.ReadKeyBuffer(frame, port, index)
	if err != nil {
		return err
	}

	fmt.Printf("0x%02x\n", b)
	return nil
}

// parseByteAddress parses and bounds-checks the frame/port/index triple shared
// by peek and poke.
func parseByteAddress(frameArg, portArg, indexArg string) (frame int64, port, index int, err error) {
	frame, err = strconv.ParseInt(frameArg, 10, 64)
	if err != nil || frame < 0 {
		return 0, 0, 0, fmt.Errorf("invalid frame %q", frameArg)
	}

	port, err = strconv.Atoi(portArg)
	if err != nil || port < 0 || port >= recording.PortCount {
		return 0, 0, 0, fmt.Errorf("port must be between 0 and %d", recording.PortCount-1)
	}

	index, err = strconv.Atoi(indexArg)
	if err != nil || index < 0 || index >= recording.ControllerInputBytes {
		return 0, 0, 0, fmt.Errorf("index must be between 0 and %d", recording.ControllerInputBytes-1)
	}

	return frame, port, index, nil
}
