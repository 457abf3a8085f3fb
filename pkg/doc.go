// Package pkg provides shared utilities for the usbname packages.
//
// This package contains common functionality used by the descriptor codec,
// the board profiles, and the device and host sides:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for descriptor, name, and board errors
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with a component attribute:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentProduct, "descriptor resolved", "board", "teensy41")
//
// # Errors
//
// Errors are sentinel values, wrapped with context by callers:
//
//	if errors.Is(err, pkg.ErrUnhandledBoard) {
//	    // the build targets a board with no profile
//	}
package pkg
