// Package pkg provides shared utilities for the init-headphone tool.
//
// This package contains common functionality used across the bus and
// amplifier layers, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for bus discovery, channel, and protocol failures
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with amplifier-control context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentController, "output enabled", "effect", 1)
//
// Library code that must stay independent of process-wide state accepts
// an injected *slog.Logger instead and falls back to [GetLogger].
//
// # Errors
//
// Failures are classified by sentinel values:
//
//	if errors.Is(err, pkg.ErrNoBusFound) {
//	    // No supported SMBus controller on this machine
//	}
//
// Errors raised by kernel calls additionally wrap the originating
// [golang.org/x/sys/unix.Errno], reachable via errors.As.
package pkg
