// Package panel knows about the two FMH panel pages and drives the
// browser launch.
//
// The served directory is expected to contain FMH-Management-Panel.html and
// FMH-Connection-Diagnostic.html. The package treats both as opaque assets:
// only their filesystem presence matters.
//
// # Start Page
//
// StartPage picks the page the browser opens on: the management panel if it
// exists, else the diagnostic page, else the bare server root.
//
// # Launch
//
// OpenAfter fires a one-shot goroutine that waits a short delay (giving the
// accept loop time to spin up) and then opens the default browser. It never
// blocks the server, is never joined at shutdown, and failures are reduced
// to a warning.
package panel
