// Package logging provides structured logging utilities for mmaictl.
//
// Loggers are plain *slog.Logger values built once by the root command and
// handed to every component. This package holds the constructor and the
// attribute helpers that keep key names consistent.
//
// # Usage Patterns
//
//	logger := logging.WithOperation(base, "department.list")
//	logger.Warn("no results for cluster",
//	    logging.Cluster("gpu-a"),
//	    logging.Kind("department"))
//
// # Security Considerations
//
//   - Bearer tokens are never logged; use SanitizeToken for a length marker
//   - API URLs have IP addresses redacted via SanitizeHost
package logging
