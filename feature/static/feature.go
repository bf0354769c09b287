package static

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature serves the panel files straight from the root directory with the
// fixed CORS and security headers applied.
type Feature struct {
	root   string
	logger *zap.Logger
}

// NewFeature creates the static serving feature for the given root directory.
func NewFeature(root string, logger *zap.Logger) *Feature {
	return &Feature{
		root:   root,
		logger: logger,
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled reports whether the feature should be loaded. Static serving is
// the whole point of the server, so it is always on.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the header middleware and mounts the root directory.
// Directory and index resolution stay with Fiber; nothing is reimplemented.
func (f *Feature) Load(app fiber.Router) error {
	fi, err := os.Stat(f.root)
	if err != nil {
		return fmt.Errorf("serving root %s: %w", f.root, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("serving root %s is not a directory", f.root)
	}

	app.Use(FixedHeaders())
	app.Static("/", f.root)

	f.logger.Info("Serving static files", zap.String("root", f.root))
	return nil
}
