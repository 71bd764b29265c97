// Phya-waitlist signs visitors up for the PHYA waiting list.
//
// PHYA connects people who need private security with registered security
// providers. Before launch, both audiences can register interest: clients
// join the waiting list and providers apply for the pilot programme.
//
// Usage:
//
//	phya-waitlist [command] [flags]
//
// Running without arguments opens the interactive signup screen.
// See 'phya-waitlist --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/phya/waitlist/internal/logging"
	"github.com/phya/waitlist/internal/urls"
	"github.com/phya/waitlist/internal/version"
)

func main() {
	// A missing .env file is not an error
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "phya-waitlist",
	Short: "PHYA Waiting List",
	Long: `Join the PHYA waiting list from your terminal.

Two forms are available: one for people who need security, and one for
PSIRA-registered security providers applying for the pilot programme.

If no command is specified, the interactive signup screen opens.

Privacy policy: ` + urls.PrivacyPolicy,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runSignup,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// version works even when the target catalogue is broken
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", version.ProductName, version.Full())
	},
}
