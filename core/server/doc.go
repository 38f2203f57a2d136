// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package only defines
// the listen port, the optional API key and request timeouts, and is embedded
// into core/config.
package server
