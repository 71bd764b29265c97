// Package logging provides structured diagnostic logging for the waitlist client.
//
// This package wraps zap with convenience functions for the handful of events
// worth recording: outgoing submissions, their outcomes and, at debug level,
// raw response bodies. Logging never affects what the visitor sees.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Response bodies, controller state transitions
//   - Info: Submissions and their outcomes
//   - Warn: Validation failures, declined or rejected submissions
//   - Error: Transport failures
//
// # Configuration
//
// Logging is silent unless a level is given explicitly or through PHYA_LOG_LEVEL:
//
//	if err := logging.Initialize(logLevel); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Output goes to stderr in console format so that it never interleaves with
// the terminal UI drawn on stdout.
//
// # Privacy
//
// Email addresses are masked before they reach a log line; callers use
// waitlist.MaskEmail for this.
package logging
