// Package logging provides structured logging for the mdvars CLI built on
// log/slog.
//
// Text output uses a TTY-optimized handler that colorizes levels and
// attribute keys when the destination supports it (see [SupportsColor]);
// JSON output uses the standard slog JSON handler. Frontmatter parse faults
// are logged at debug level by callers and never propagate; logging is the
// only trace they leave.
//
//	logger := logging.New(logging.Config{Level: slog.LevelDebug})
//	logger.Debug("frontmatter parse failed", "path", path, "err", err)
//
// In tests, [ForTest] returns a debug-level logger wired to t.Log.
package logging
