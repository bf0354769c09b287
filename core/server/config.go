package server

import (
	"net"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the first port tried when probing for a free one.
	Port int `mapstructure:"port" default:"8080"`
	// ProbeAttempts is how many consecutive ports are probed before
	// falling back to Port.
	ProbeAttempts int `mapstructure:"probe_attempts" default:"10"`
	// Root is the directory served. Empty means the directory containing
	// the executable.
	Root string `mapstructure:"root" default:""`
	// OpenBrowser controls whether the default browser is opened once the
	// server is up.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
	// StartDelay is how long the browser launcher waits before opening.
	StartDelay time.Duration `mapstructure:"start_delay" default:"2s"`
}

// Addr returns the host:port bind address for the given resolved port.
func (c Config) Addr(port int) string {
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// URL returns the http base URL for the given resolved port.
func (c Config) URL(port int) string {
	return "http://" + c.Addr(port)
}
