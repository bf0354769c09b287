package cmd

import (
	"fmt"
	"os"

	"fmh-devserver/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command. Invoking the binary with no arguments
// starts the server; --help prints usage and exits without touching the
// network.
var RootCmd = &cobra.Command{
	Use:   "fmh-devserver",
	Short: "FMH local development server",
	Long: `FMH development server serves the panel pages over http://localhost so
MetaMask popups work. Pages opened directly via file:// are blocked by the
extension; this server adds the CORS and security headers the wallet needs,
finds a free port starting at 8080, and opens your browser on the best
available panel page.

Configuration is taken from SERVER_* environment variables (and an optional
.env file): SERVER_HOST, SERVER_PORT, SERVER_PROBE_ATTEMPTS, SERVER_ROOT,
SERVER_OPEN_BROWSER, SERVER_START_DELAY.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format to match user expectations (CLI tool).
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("server failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
