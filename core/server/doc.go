// Package server holds the HTTP server configuration and assembly.
//
// # Configuration
//
// The Config struct defines the bind host, the starting port and probe
// budget for automatic port selection, the served root directory, and the
// browser-launch behavior.
//
// # Port Selection
//
// FindAvailablePort performs a bounded ascending scan and returns the first
// port a listener can be opened on, or ErrNoPortAvailable when the whole
// range is taken. The caller is expected to fall back to the configured
// default port in that case and let the real bind decide.
//
// # Assembly
//
// New builds the Fiber application with the shared middleware chain (ray id,
// request logging) and loads the registered features through core/loader.
package server
