// Package static serves the working directory over HTTP with the response
// headers wallet extensions need.
//
// Pages opened via file:// cannot talk to MetaMask: the extension refuses to
// show its popup without an http origin. Serving the same files from
// localhost with permissive CORS headers is the whole fix.
//
// # Headers
//
// Every response, 404s included, carries:
//   - Access-Control-Allow-Origin: *
//   - Access-Control-Allow-Methods: GET, POST, OPTIONS
//   - Access-Control-Allow-Headers: Content-Type
//   - X-Content-Type-Options: nosniff
//   - X-Frame-Options: DENY
//
// File resolution (index files, 404 on missing paths) is Fiber's standard
// Static behavior and is not customized.
package static
