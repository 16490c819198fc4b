package core

import "log/slog"

// logger receives the model's non-fatal warnings: negative branch lengths,
// missing or ambiguous roots, statistics invoked below their minimum size.
var logger = slog.Default()

// SetLogger replaces the logger used for warnings across the toolkit.
// A nil argument restores slog.Default(). Not safe for concurrent use with
// running operations; set it during initialization.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// Logger returns the logger warnings are routed to. Sibling packages
// (stats, topo) log through this same destination.
func Logger() *slog.Logger { return logger }
