// Package server holds the HTTP server configuration.
//
// The start command builds the fiber application; this package only describes where it listens,
// the optional service API key and how long graceful shutdown may take.
package server
