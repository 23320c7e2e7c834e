package recording

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// File owns one open recording file handle and the in-memory copies of the
// header and file-level counters. The in-memory state is authoritative while
// the file is open; the on-disk preamble is a mirror refreshed by explicit
// WriteHeader calls, with the counters also persisted piecemeal at their
// fixed seekpoints.
//
// File is not safe for concurrent use. One recording session drives one File
// from one goroutine; callers needing more must serialize externally.
type File struct {
	path   string
	handle *os.File
	log    *slog.Logger

	header        Header
	totalFrames   int32
	undoCount     uint32
	fromSavestate bool
}

// New returns a closed File. Diagnostics (open failures, version mismatches)
// go to log; nil falls back to slog.Default().
func New(log *slog.Logger) *File {
	if log == nil {
		log = slog.Default()
	}
	return &File{
		log:    log,
		header: NewHeader(),
	}
}

// OpenNew creates or truncates the recording at path and resets the counters
// for a fresh session. The preamble is not written to disk until WriteHeader
// is called.
func (r *File) OpenNew(path string, fromSavestate bool) error {
	if err := r.open(path, true); err != nil {
		return err
	}
	r.fromSavestate = fromSavestate
	return nil
}

// OpenExisting opens the recording at path for playback or rerecording. The
// preamble is verified before the open is declared successful; a file that
// fails verification is closed again and left unmodified on disk.
func (r *File) OpenExisting(path string) error {
	return r.open(path, false)
}

func (r *File) open(path string, newRecording bool) error {
	flags := os.O_RDWR
	if newRecording {
		flags |= os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		r.log.Error("input recording file opening failed", "path", path, "error", err)
		return fmt.Errorf("open recording: %w", err)
	}
	r.handle = f
	r.path = path

	if newRecording {
		r.totalFrames = 0
		r.undoCount = 0
		r.header.Init()
		return nil
	}

	if err := r.verify(); err != nil {
		_ = r.Close()
		r.log.Error("input recording file header is invalid", "path", path, "error", err)
		return err
	}
	return nil
}

// verify reads the preamble back and checks that it describes a file this
// package can handle. The in-memory header and counters are replaced by the
// on-disk values only when the version check passes.
func (r *File) verify() error {
	buf := make([]byte, preambleBytes)
	if _, err := r.handle.ReadAt(buf, 0); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return fmt.Errorf("read preamble: %w", err)
	}

	var hdr Header
	hdr.decode(buf[:headerBytes])
	if hdr.version != FormatVersion {
		r.log.Error("input recording file is not a supported version",
			"version", hdr.version, "supported", FormatVersion)
		return ErrVersionMismatch
	}

	r.header = hdr
	r.totalFrames = int32(binary.LittleEndian.Uint32(buf[seekpointTotalFrames:]))
	r.undoCount = binary.LittleEndian.Uint32(buf[seekpointUndoCount:])
	r.fromSavestate = buf[seekpointSavestate] != 0
	return nil
}

// WriteHeader writes the header and counters to the start of the file as one
// unit and syncs. This runs at controlled checkpoints, not per frame; a short
// write can leave the preamble inconsistent and is reported to the caller.
func (r *File) WriteHeader() error {
	if r.handle == nil {
		return ErrClosed
	}

	buf := make([]byte, preambleBytes)
	r.header.encode(buf[:headerBytes])
	binary.LittleEndian.PutUint32(buf[seekpointTotalFrames:], uint32(r.totalFrames))
	binary.LittleEndian.PutUint32(buf[seekpointUndoCount:], r.undoCount)
	if r.fromSavestate {
		buf[seekpointSavestate] = 1
	}

	if _, err := r.handle.WriteAt(buf, 0); err != nil {
		return fmt.Errorf("write preamble: %w", err)
	}
	if err := r.handle.Sync(); err != nil {
		return fmt.Errorf("sync preamble: %w", err)
	}
	return nil
}

// Close releases the file handle. Closing an already closed File reports
// ErrClosed.
func (r *File) Close() error {
	if r.handle == nil {
		return ErrClosed
	}
	err := r.handle.Close()
	r.handle = nil
	r.path = ""
	if err != nil {
		return fmt.Errorf("close recording: %w", err)
	}
	return nil
}

// IsOpen reports whether the File currently owns a file handle.
func (r *File) IsOpen() bool {
	return r.handle != nil
}

// Filename returns the path of the open recording, or "" when closed.
func (r *File) Filename() string {
	return r.path
}

// Header returns the in-memory header for reading or authoring. Changes are
// not persisted until WriteHeader.
func (r *File) Header() *Header {
	return &r.header
}

// TotalFrames returns the frame high-water mark.
func (r *File) TotalFrames() int32 {
	return r.totalFrames
}

// UndoCount returns the rerecord counter.
func (r *File) UndoCount() uint32 {
	return r.undoCount
}

// FromSavestate reports whether the recording began from a mid-session
// snapshot rather than a cold boot.
func (r *File) FromSavestate() bool {
	return r.fromSavestate
}

// ReadKeyBuffer reads the single input byte stored at the given frame, port
// and byte index. Reading past the end of the recorded data fails.
func (r *File) ReadKeyBuffer(frame int64, port, index int) (byte, error) {
	if r.handle == nil {
		return 0, ErrClosed
	}

	var b [1]byte
	if _, err := r.handle.ReadAt(b[:], keyBufferOffset(frame, port, index)); err != nil {
		return 0, fmt.Errorf("read frame %d port %d byte %d: %w", frame, port, index, err)
	}
	return b[0], nil
}

// WriteKeyBuffer writes a single input byte at the given frame, port and
// byte index. The write goes straight to the kernel; there is no userspace
// buffer between calls.
func (r *File) WriteKeyBuffer(frame int64, port, index int, b byte) error {
	if r.handle == nil {
		return ErrClosed
	}

	if _, err := r.handle.WriteAt([]byte{b}, keyBufferOffset(frame, port, index)); err != nil {
		return fmt.Errorf("write frame %d port %d byte %d: %w", frame, port, index, err)
	}
	return nil
}

// WriteFrame writes an entire port's input buffer for one frame, one byte at
// a time in index order. The first failing byte aborts the rest; bytes
// already written stay written.
func (r *File) WriteFrame(frame int64, port int, pad PadData) error {
	if r.handle == nil {
		return ErrClosed
	}

	for i := 0; i < ControllerInputBytes; i++ {
		if err := r.WriteKeyBuffer(frame, port, i, pad.Byte(i)); err != nil {
			return err
		}
	}
	return nil
}

// BulkReadPadData reads the pad data recorded for port over frames
// [frameStart, frameEnd), in ascending frame order. A negative frameStart is
// clamped to zero. Frames whose data cannot be read in full, typically
// because the file is truncated, are omitted from the result rather than
// reported: scanning a partially written file is a normal operation for
// recovery and inspection tooling, so absence means "no recorded data for
// that frame". Returns nil when the file is closed.
func (r *File) BulkReadPadData(frameStart, frameEnd int64, port int) []FramePad {
	if r.handle == nil {
		return nil
	}
	if frameStart < 0 {
		frameStart = 0
	}

	var data []FramePad
	buf := make([]byte, ControllerInputBytes)
	for frame := frameStart; frame < frameEnd; frame++ {
		off := blockOffset(frame) + int64(ControllerInputBytes*port)
		if _, err := r.handle.ReadAt(buf, off); err != nil {
			continue
		}
		data = append(data, FramePad{Frame: frame, Data: NewPadData(buf)})
	}
	return data
}

// IncrementUndoCount bumps the rerecord counter. The new value is persisted
// at its fixed seekpoint when the file is open; when closed the increment is
// applied in memory only.
func (r *File) IncrementUndoCount() error {
	r.undoCount++
	if r.handle == nil {
		return nil
	}

	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], r.undoCount)
	if _, err := r.handle.WriteAt(buf[:], seekpointUndoCount); err != nil {
		return fmt.Errorf("write undo count: %w", err)
	}
	return nil
}

// SetTotalFrames advances the total frames high-water mark and persists it.
// The mark only ever increases: values not exceeding the current mark are
// ignored, as are calls on a closed file.
func (r *File) SetTotalFrames(frame int32) error {
	if r.handle == nil || frame <= r.totalFrames {
		return nil
	}

	r.totalFrames = frame
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(r.totalFrames))
	if _, err := r.handle.WriteAt(buf[:], seekpointTotalFrames); err != nil {
		return fmt.Errorf("write total frames: %w", err)
	}
	return nil
}
