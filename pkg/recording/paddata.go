package recording

// PadData is the raw input buffer recorded for one controller port on one
// frame. The button and analog bit layout belongs to the pad implementation;
// this package only stores and retrieves the bytes.
type PadData struct {
	buf [ControllerInputBytes]byte
}

// NewPadData builds a PadData from raw bytes. Input longer than the buffer
// is truncated; shorter input leaves the remainder zeroed.
func NewPadData(raw []byte) PadData {
	var p PadData
	copy(p.buf[:], raw)
	return p
}

// Byte returns the byte stored at index i.
func (p PadData) Byte(i int) byte {
	return p.buf[i]
}

// SetByte stores b at index i.
func (p *PadData) SetByte(i int, b byte) {
	p.buf[i] = b
}

// Bytes returns a copy of the underlying buffer.
func (p PadData) Bytes() []byte {
	out := make([]byte, ControllerInputBytes)
	copy(out, p.buf[:])
	return out
}

// FramePad pairs a frame number with the pad data recorded for it.
type FramePad struct {
	Frame int64
	Data  PadData
}
