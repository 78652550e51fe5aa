// Package server wires and runs the application's HTTP server.
//
// The server runs next to background workers (the live note feed) and
// stops all of them gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
