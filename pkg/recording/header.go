package recording

import (
	"bytes"
	"encoding/binary"

	"github.com/padrec/padrec/internal/version"
)

// Header is the fixed-size metadata block persisted at the start of every
// recording file. String fields are capacity-bounded and NUL-padded: setters
// truncate silently, so callers needing round-trip fidelity must pre-validate
// length.
type Header struct {
	version         uint16
	emulatorVersion [EmulatorVersionCapacity]byte
	author          [AuthorCapacity]byte
	gameName        [GameNameCapacity]byte
}

// NewHeader returns a header stamped with the supported format version.
func NewHeader() Header {
	return Header{version: FormatVersion}
}

// Init clears the author and game name fields for a brand new recording. The
// version and emulator version fields are left untouched.
func (h *Header) Init() {
	h.author = [AuthorCapacity]byte{}
	h.gameName = [GameNameCapacity]byte{}
}

// Version returns the format version read from or written to disk.
func (h *Header) Version() uint16 {
	return h.version
}

// SetAuthor stores the recording author, truncating to the field capacity.
func (h *Header) SetAuthor(author string) {
	setBounded(h.author[:], author)
}

// SetGameName stores the game name, truncating to the field capacity.
func (h *Header) SetGameName(name string) {
	setBounded(h.gameName[:], name)
}

// SetEmulatorVersion stores the emulator identity, truncating to the field
// capacity.
func (h *Header) SetEmulatorVersion(v string) {
	setBounded(h.emulatorVersion[:], v)
}

// SetDefaultEmulatorVersion stamps the emulator version from the build
// identity, e.g. "padrec-0.1.0".
func (h *Header) SetDefaultEmulatorVersion() {
	h.SetEmulatorVersion(version.String())
}

// Author returns the stored author.
func (h *Header) Author() string {
	return boundedString(h.author[:])
}

// GameName returns the stored game name.
func (h *Header) GameName() string {
	return boundedString(h.gameName[:])
}

// EmulatorVersion returns the stored emulator identity.
func (h *Header) EmulatorVersion() string {
	return boundedString(h.emulatorVersion[:])
}

// encode writes the header into buf, which must hold at least headerBytes.
func (h *Header) encode(buf []byte) {
	binary.LittleEndian.PutUint16(buf[offVersion:], h.version)
	copy(buf[offEmulatorVersion:offAuthor], h.emulatorVersion[:])
	copy(buf[offAuthor:offGameName], h.author[:])
	copy(buf[offGameName:headerBytes], h.gameName[:])
}

// decode reads the header from buf, which must hold at least headerBytes.
func (h *Header) decode(buf []byte) {
	h.version = binary.LittleEndian.Uint16(buf[offVersion:])
	copy(h.emulatorVersion[:], buf[offEmulatorVersion:offAuthor])
	copy(h.author[:], buf[offAuthor:offGameName])
	copy(h.gameName[:], buf[offGameName:headerBytes])
}

// setBounded copies src into a fixed-capacity field: at most len(dst)-1
// bytes, remainder zeroed, final byte always NUL. Excess bytes are dropped
// without error.
func setBounded(dst []byte, src string) {
	for i := range dst {
		dst[i] = 0
	}
	copy(dst[:len(dst)-1], src)
}

// boundedString reads a NUL-padded field up to the first NUL, or the full
// capacity when no NUL is present.
func boundedString(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		return string(src[:i])
	}
	return string(src)
}
