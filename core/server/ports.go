package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// ErrNoPortAvailable is returned when every port in the probe range is taken.
var ErrNoPortAvailable = errors.New("no available port in probe range")

// FindAvailablePort scans the ports [start, start+attempts) in ascending
// order and returns the first one a listener can be opened on. Each probe
// binds the port and releases it again immediately, so the caller still has
// to bind it for real afterwards.
func FindAvailablePort(host string, start, attempts int) (int, error) {
	for port := start; port < start+attempts; port++ {
		ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
		if err != nil {
			continue
		}
		_ = ln.Close()
		return port, nil
	}
	return 0, fmt.Errorf("%w: tried %d-%d", ErrNoPortAvailable, start, start+attempts-1)
}
