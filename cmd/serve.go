package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"fmh-devserver/core/config"
	"fmh-devserver/core/logger"
	"fmh-devserver/core/server"
	"fmh-devserver/feature/panel"
	"fmh-devserver/feature/static"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runServe drives the whole lifecycle: config, logger, working directory,
// panel check, port search, bind, serve, shutdown. A returned error means
// exit code 1; returning nil (help or interrupt) means exit code 0.
func runServe(cmd *cobra.Command, _ []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Resolve and enter the served directory. The panel bundle sits next
	// to the binary, so that is the default root.
	root := cfg.Server.Root
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locating executable: %w", err)
		}
		root = filepath.Dir(exe)
	}
	if err := os.Chdir(root); err != nil {
		return fmt.Errorf("entering serving root: %w", err)
	}
	logg.Info("Working directory", zap.String("root", root))

	// 4. Check the expected panel files. Missing files are a warning, not an
	// error; in a terminal the user gets a chance to abort.
	panels := panel.NewService(root, logg)
	if missing := panels.Missing(); len(missing) > 0 {
		logg.Warn("Expected panel files not found", zap.Strings("missing", missing))
		if err := confirmContinue(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return err
		}
	}

	// 5. Find a free port, falling back to the configured one. The fallback
	// may still fail at bind time, which is fatal and reported as such.
	port, err := server.FindAvailablePort(cfg.Server.Host, cfg.Server.Port, cfg.Server.ProbeAttempts)
	switch {
	case err != nil:
		logg.Warn("No free port in probe range, trying the default anyway",
			zap.Int("port", cfg.Server.Port), zap.Error(err))
		port = cfg.Server.Port
	case port != cfg.Server.Port:
		logg.Info("Configured port busy, moved to the next free one", zap.Int("port", port))
	default:
		logg.Info("Using port", zap.Int("port", port))
	}

	// 6. Assemble the app and bind the listener. The listener is owned here
	// and released on every exit path: Shutdown closes it on the graceful
	// path, the deferred Close covers the error paths.
	app, err := server.New(logg, static.NewFeature(root, logg))
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Server.Addr(port))
	if err != nil {
		return fmt.Errorf("binding %s: %w", cfg.Server.Addr(port), err)
	}
	defer ln.Close()

	baseURL := cfg.Server.URL(port)
	printBanner(cmd.OutOrStdout(), baseURL)

	// 7. Browser launch, fire and forget.
	if cfg.Server.OpenBrowser {
		panels.OpenAfter(cfg.Server.StartDelay, baseURL)
	}

	// 8. Serve until an interrupt or a server error.
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Listener(ln)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-quit:
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		printShutdownBanner(cmd.OutOrStdout())
		return nil
	}
}

// confirmContinue blocks for an Enter keypress when stdin is a terminal.
// Headless runs (CI, service managers, piped input) skip the prompt so the
// server never hangs waiting for input nobody can type.
func confirmContinue(in io.Reader, out io.Writer) error {
	f, ok := in.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return nil
	}
	fmt.Fprint(out, "Press Enter to continue anyway, or Ctrl+C to abort... ")
	if _, err := bufio.NewReader(in).ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func printBanner(w io.Writer, baseURL string) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "FMH development server is up")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Server:            %s\n", baseURL)
	fmt.Fprintf(w, "Management panel:  %s/%s\n", baseURL, panel.ManagementPage)
	fmt.Fprintf(w, "Diagnostic panel:  %s/%s\n", baseURL, panel.DiagnosticPage)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "MetaMask popups work from here (they are blocked on file://)")
	fmt.Fprintln(w, "Edit the HTML files and refresh the browser to see changes")
	fmt.Fprintln(w, "Press Ctrl+C to stop the server")
	fmt.Fprintln(w, line)
}

func printShutdownBanner(w io.Writer) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "FMH development server stopped")
	fmt.Fprintln(w, line)
}
