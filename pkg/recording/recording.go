// Package recording implements the on-disk format for deterministic-replay
// input logs: binary files that capture, frame by frame, the controller
// inputs fed to an emulated system so a session can be replayed bit for bit
// or resumed for rerecording.
//
// File Format (all integers little-endian):
//
//	Preamble (571 bytes):
//	  - Format version: uint16 (2 bytes) - must equal FormatVersion
//	  - Emulator version: 50 bytes, NUL-padded
//	  - Author: 255 bytes, NUL-padded
//	  - Game name: 255 bytes, NUL-padded
//	  - Total frames: int32 (4 bytes) - high-water mark
//	  - Undo count: uint32 (4 bytes) - monotonic rerecord counter
//	  - From savestate: 1 byte - boolean flag
//
//	Frame data (36 bytes per frame):
//	  - One 18 byte input buffer per controller port, port-major,
//	    byte-index-minor.
//
// A frame's bytes are undefined until written; once written they persist
// until overwritten at the same address. The addressing arithmetic lets any
// (frame, port, byte index) coordinate be read or written in place without
// touching the rest of the file.
package recording

import "errors"

// Format constants. Reader and writer must agree on every one of these;
// changing any of them requires a FormatVersion bump.
const (
	// FormatVersion is the single supported file format version. Files
	// carrying any other version are rejected on open.
	FormatVersion uint16 = 1

	// ControllerInputBytes is the size of one controller port's input
	// buffer for one frame.
	ControllerInputBytes = 18

	// PortCount is the number of controller ports stored per frame.
	PortCount = 2

	// InputBytesPerFrame is the total size of one frame's input block.
	InputBytesPerFrame = ControllerInputBytes * PortCount
)

// Bounded string field capacities. Each field occupies its full capacity on
// disk regardless of content length and its final byte is always NUL.
const (
	EmulatorVersionCapacity = 50
	AuthorCapacity          = 255
	GameNameCapacity        = 255
)

// Header field offsets within the preamble.
const (
	offVersion         = 0
	offEmulatorVersion = offVersion + 2
	offAuthor          = offEmulatorVersion + EmulatorVersionCapacity
	offGameName        = offAuthor + AuthorCapacity

	headerBytes = offGameName + GameNameCapacity
)

// Fixed seekpoints for the counters stored after the header.
const (
	seekpointTotalFrames = headerBytes
	seekpointUndoCount   = headerBytes + 4
	seekpointSavestate   = headerBytes + 8

	preambleBytes = headerBytes + 9
)

// Recording file errors.
var (
	// ErrClosed is returned when operations are attempted on a closed file.
	ErrClosed = errors.New("recording file is closed")

	// ErrVersionMismatch is returned when an existing file carries a format
	// version other than FormatVersion.
	ErrVersionMismatch = errors.New("recording file version not supported")

	// ErrTruncated is returned when the preamble cannot be read in full.
	ErrTruncated = errors.New("recording file truncated")
)

// blockOffset returns the absolute file offset of a frame's input block.
// The savestate flag is the final preamble byte, hence the +1 between the
// counters and the frame-data region.
func blockOffset(frame int64) int64 {
	return seekpointSavestate + 1 + frame*InputBytesPerFrame
}

// keyBufferOffset addresses a single (frame, port, byte index) coordinate
// within a frame's block.
func keyBufferOffset(frame int64, port, index int) int64 {
	return blockOffset(frame) + int64(ControllerInputBytes*port+index)
}
