// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines
// the configuration structure and its derived values: the listen address,
// the webhook payload limit and the graceful shutdown deadline.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/start.go.
package server
