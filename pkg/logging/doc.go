// Package logging provides structured logging utilities for the serializer
// registry service and CLI.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults:
// JSON records on stderr, module and version attributes on every record,
// LOG_LEVEL based configuration, and source locations for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: registration and dispatch details, with source location
//   - INFO: startup, configuration, and lifecycle events (default)
//   - WARN/WARNING: rejected versions and recoverable problems
//   - ERROR: missing bindings and server failures
//
// # Usage
//
// Setting the default logger early in main:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("vsrd", version)
//	    slog.Info("registry populated", "bindings", reg.Count())
//	}
//
// Setting an explicit level (for example from a --log-level flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("vsr", version, "debug")
//
// Creating a dedicated logger:
//
//	logger := logging.NewStructuredLogger("dispatcher", version, "info")
//	logger.Info("resolved", "resource", "Submission", "version", "LEGACY")
//
// # Environment Configuration
//
//	LOG_LEVEL=debug vsrd
//	LOG_LEVEL=error vsr registry
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "registry populated",
//	    "module": "vsrd",
//	    "version": "v1.0.0",
//	    "bindings": 4
//	}
package logging
