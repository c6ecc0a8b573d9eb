// Package logging provides structured logging for the fiftyone-links tools.
//
// This package wraps a zap logger with convenience functions. Logging is
// silent by default so that the curated CLI output stays clean; set
// FIFTYONE_LINKS_LOG_LEVEL to "debug", "info", "warn", or "error" to enable it.
//
// # Structured Logging
//
// All log functions use structured fields:
//
//	logging.Info("Config loaded",
//	    zap.String("path", path),
//	    zap.Int("aliases", len(cfg.Check.Aliases)),
//	)
//
// # Specialized Logging
//
//	logging.LogCommand("check", args)
//	logging.LogCheckResult(report)
//
// # Configuration
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Output Format
//
// Logs are written to stderr in console format, leaving stdout to command
// output such as JSON or YAML exports:
//
//	2026-10-17T10:30:45.123-0800  INFO  Link check complete
//	  checked=12  problems=0
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
