// Package endpoints contains the built-in endpoints extracting typed values
// from a request: its body, query string, headers, cookies and
// credentials, plus endpoints serving files and accepting WebSocket
// connections.
//
// Endpoints that need I/O (reading the body, opening a file) only match
// during Apply; the work happens when their action runs.
package endpoints
