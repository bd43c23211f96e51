// Command catalogctl manages the attribute catalog and bootstrap accounts
// directly against the database.
//
// Usage:
//
//	catalogctl import --as=admin@example.com catalog.yaml
//	catalogctl export --as=admin@example.com --kind=system > catalog.yaml
//	catalogctl promote --email=user@example.com
//
// Configuration is read the same way as the server (CONFIG_PATH or env).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "catalogctl",
	Short:         "Manage the ERP attribute catalog",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newImportCmd(), newExportCmd(), newPromoteCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
