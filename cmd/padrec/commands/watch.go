package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/padrec/padrec/internal/logger"
	"github.com/padrec/padrec/pkg/recording"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a recording as it is being written",
	Long: `Watch a recording file and print its counters whenever they change.

The emulator persists the total frame count and undo count in place while a
session is running, so watching the file shows the session progress live.
Change notifications are debounced by watch.debounce to coalesce the bursts
of per-byte frame writes.

Examples:
  padrec watch run.p2m2`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := args[0]

	// Validate the file up front so a bad path fails before we sit in the
	// event loop.
	frames, undos, err := readCounters(path)
	if err != nil {
		return err
	}
	fmt.Printf("frames=%d undos=%d\n", frames, undos)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch recording: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)...\n", path)

	lastFrames, lastUndos := frames, undos
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write != fsnotify.Write {
				continue
			}

			// Frame writes arrive one byte at a time; wait for the burst
			// to settle before re-reading.
			if err := sleepCtx(ctx, cfg.Watch.Debounce); err != nil {
				return nil
			}
			drainEvents(watcher)

			frames, undos, err := readCounters(path)
			if err != nil {
				logger.Warn("recording re-read failed", "path", path, "error", err)
				continue
			}
			if frames != lastFrames || undos != lastUndos {
				fmt.Printf("frames=%d undos=%d\n", frames, undos)
				lastFrames, lastUndos = frames, undos
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// readCounters opens the recording, reads its counters, and closes it again.
// Opening per read keeps the watcher from holding a handle into a file the
// emulator owns.
func readCounters(path string) (frames int32, undos uint32, err error) {
	rec := recording.New(logger.With(logger.Component("recording")))
	if err := rec.OpenExisting(path); err != nil {
		return 0, 0, err
	}
	defer func() { _ = rec.Close() }()

	return rec.TotalFrames(), rec.UndoCount(), nil
}

// sleepCtx sleeps for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// drainEvents discards events queued during the debounce window.
func drainEvents(watcher *fsnotify.Watcher) {
	for {
		select {
		case <-watcher.Events:
		default:
			return
		}
	}
}
