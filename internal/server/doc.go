// Package server wires and runs the application's HTTP server together with
// its background workers.
//
// It owns startup, signal handling and graceful shutdown: on SIGINT, SIGTERM
// or SIGQUIT the HTTP server stops accepting connections, in-flight requests
// get the configured shutdown timeout to finish, and only then are the
// workers stopped so that mails queued by those requests are still delivered.
package server
