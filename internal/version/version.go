// Package version carries the build identity stamped into recording headers
// and reported by the version command.
package version

import "fmt"

// Application name and three-part version number.
const (
	AppName = "padrec"

	Hi  = 0
	Mid = 1
	Lo  = 0
)

// Build metadata injected via ldflags.
var (
	Commit = "none"
	Date   = "unknown"
)

// Number returns the dotted version number, e.g. "0.1.0".
func Number() string {
	return fmt.Sprintf("%d.%d.%d", Hi, Mid, Lo)
}

// String returns the application identity, e.g. "padrec-0.1.0". This is the
// default emulator version written into new recording headers.
func String() string {
	return fmt.Sprintf("%s-%d.%d.%d", AppName, Hi, Mid, Lo)
}
