// Package ui provides console output components for the phya-waitlist CLI.
//
// This package uses Lipgloss to render styled output for headless commands.
// Unlike the interactive TUI, these components follow a "print and move on"
// pattern: they never wait for input except for an explicit confirmation.
//
// # Components
//
//   - Header: Command banner showing target, endpoint and segment
//   - Result: Success/failure boxes carrying the visitor-facing message
//   - Printer: Writes components and implements form.Notifier
//   - StatusControl: A form.Control that prints its in-progress label
//
// # Usage Pattern
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Join Waiting List", "phya-waitlist join client",
//	    ui.Param{Key: "Target", Value: "production"},
//	)
//	ctrl := form.NewController(desc, surface, client, p)
//
// # Server Text
//
// Messages that came from the backend pass through SanitizeMessage before
// they are printed, which strips markup and terminal control sequences.
//
// # Logging Integration
//
// This package expects logging to be controlled via the PHYA_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly.
package ui
