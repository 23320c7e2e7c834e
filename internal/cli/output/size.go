package output

import "fmt"

const (
	kib = 1 << 10
	mib = 1 << 20
	gib = 1 << 30
)

// HumanSize formats a byte count with a binary unit suffix for display.
// Recording files are small; anything past GiB is formatted as GiB.
func HumanSize(n int64) string {
	switch {
	case n >= gib:
		return fmt.Sprintf("%.2fGiB", float64(n)/float64(gib))
	case n >= mib:
		return fmt.Sprintf("%.2fMiB", float64(n)/float64(mib))
	case n >= kib:
		return fmt.Sprintf("%.2fKiB", float64(n)/float64(kib))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
