package logger

import "log/slog"

// Standard field keys used across padrec log output. Use these consistently
// so recordings can be traced through the log by path and coordinate.
const (
	KeyComponent = "component"  // subsystem name: recording, config, watch
	KeyPath      = "path"       // recording file path
	KeyFrame     = "frame"      // frame number
	KeyPort      = "port"       // controller port
	KeyIndex     = "byte_index" // byte index within a port's input buffer
	KeyVersion   = "version"    // file format version
	KeyError     = "error"      // error message
)

// Component returns a slog.Attr naming the emitting subsystem.
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Path returns a slog.Attr for a recording file path.
func Path(path string) slog.Attr {
	return slog.String(KeyPath, path)
}

// Frame returns a slog.Attr for a frame number.
func Frame(frame int64) slog.Attr {
	return slog.Int64(KeyFrame, frame)
}

// Port returns a slog.Attr for a controller port.
func Port(port int) slog.Attr {
	return slog.Int(KeyPort, port)
}

// Err returns a slog.Attr for an error.
func Err(err error) slog.Attr {
	return slog.String(KeyError, err.Error())
}
