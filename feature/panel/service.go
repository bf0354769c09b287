package panel

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/browser"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// The two pages the FMH bundle ships with, in preference order.
const (
	ManagementPage = "FMH-Management-Panel.html"
	DiagnosticPage = "FMH-Connection-Diagnostic.html"
)

// Service resolves the best start page in the served directory and opens the
// default browser on it once the server is up.
type Service struct {
	root   string
	logger *zap.Logger
}

// NewService creates a panel service for the given served root.
func NewService(root string, logger *zap.Logger) *Service {
	return &Service{
		root:   root,
		logger: logger,
	}
}

// StartPage returns the URL path of the first panel page present under the
// root: the management panel wins over the diagnostic page, and when neither
// exists the server root is used.
func (s *Service) StartPage() string {
	if s.exists(ManagementPage) {
		return "/" + ManagementPage
	}
	if s.exists(DiagnosticPage) {
		return "/" + DiagnosticPage
	}
	return "/"
}

// Missing returns the expected panel pages absent from the root, in
// preference order.
func (s *Service) Missing() []string {
	return lo.Filter([]string{ManagementPage, DiagnosticPage}, func(name string, _ int) bool {
		return !s.exists(name)
	})
}

func (s *Service) exists(name string) bool {
	fi, err := os.Stat(filepath.Join(s.root, name))
	return err == nil && !fi.IsDir()
}

// OpenAfter opens the default browser at the resolved start page once the
// delay has passed. Fire and forget: the goroutine is never joined, holds no
// resources, and a launch failure (headless box, no browser installed) only
// logs a warning. The target URL is resolved before the goroutine starts.
func (s *Service) OpenAfter(delay time.Duration, baseURL string) {
	url := baseURL + s.StartPage()
	go func() {
		time.Sleep(delay)
		s.logger.Info("Opening browser", zap.String("url", url))
		if err := browser.OpenURL(url); err != nil {
			s.logger.Warn("Could not open browser", zap.Error(err), zap.String("url", url))
		}
	}()
}
