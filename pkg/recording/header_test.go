package recording

import (
	"strings"
	"testing"
)

func TestHeader_SetAuthorTruncates(t *testing.T) {
	h := NewHeader()

	long := strings.Repeat("a", AuthorCapacity+45)
	h.SetAuthor(long)

	got := h.Author()
	if len(got) != AuthorCapacity-1 {
		t.Fatalf("Author() length = %d, want %d", len(got), AuthorCapacity-1)
	}
	if got != long[:AuthorCapacity-1] {
		t.Errorf("Author() does not match truncated input")
	}
}

func TestHeader_SetAuthorAtCapacity(t *testing.T) {
	h := NewHeader()

	// Exactly at capacity still loses one byte to the terminating NUL.
	h.SetAuthor(strings.Repeat("b", AuthorCapacity))
	if got := len(h.Author()); got != AuthorCapacity-1 {
		t.Errorf("Author() length = %d, want %d", got, AuthorCapacity-1)
	}
}

func TestHeader_ShorterValueLeavesNoResidue(t *testing.T) {
	h := NewHeader()

	h.SetGameName("a-much-longer-game-name")
	h.SetGameName("ab")

	if got := h.GameName(); got != "ab" {
		t.Errorf("GameName() = %q, want %q", got, "ab")
	}
}

func TestHeader_Init(t *testing.T) {
	h := NewHeader()
	h.SetAuthor("alice")
	h.SetGameName("some game")
	h.SetEmulatorVersion("emu-1.2.3")

	h.Init()

	if got := h.Author(); got != "" {
		t.Errorf("Author() after Init = %q, want empty", got)
	}
	if got := h.GameName(); got != "" {
		t.Errorf("GameName() after Init = %q, want empty", got)
	}
	// Version and emulator version survive Init.
	if got := h.Version(); got != FormatVersion {
		t.Errorf("Version() after Init = %d, want %d", got, FormatVersion)
	}
	if got := h.EmulatorVersion(); got != "emu-1.2.3" {
		t.Errorf("EmulatorVersion() after Init = %q, want %q", got, "emu-1.2.3")
	}
}

func TestHeader_DefaultEmulatorVersion(t *testing.T) {
	h := NewHeader()
	h.SetDefaultEmulatorVersion()

	got := h.EmulatorVersion()
	if !strings.HasPrefix(got, "padrec-") {
		t.Errorf("EmulatorVersion() = %q, want padrec-<hi>.<mid>.<lo>", got)
	}
	if strings.Count(got, ".") != 2 {
		t.Errorf("EmulatorVersion() = %q, want three-part version number", got)
	}
}

func TestHeader_EncodeDecodeRoundTrip(t *testing.T) {
	h := NewHeader()
	h.SetAuthor("alice")
	h.SetGameName("Example Game (NTSC)")
	h.SetEmulatorVersion("padrec-0.1.0")

	buf := make([]byte, headerBytes)
	h.encode(buf)

	var got Header
	got.decode(buf)

	if got.Version() != h.Version() {
		t.Errorf("Version() = %d, want %d", got.Version(), h.Version())
	}
	if got.Author() != h.Author() {
		t.Errorf("Author() = %q, want %q", got.Author(), h.Author())
	}
	if got.GameName() != h.GameName() {
		t.Errorf("GameName() = %q, want %q", got.GameName(), h.GameName())
	}
	if got.EmulatorVersion() != h.EmulatorVersion() {
		t.Errorf("EmulatorVersion() = %q, want %q", got.EmulatorVersion(), h.EmulatorVersion())
	}
}
