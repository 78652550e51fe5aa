// Package config loads, merges and validates the notes demo configuration.
//
// Sources are applied in order, later non-zero values winning:
//  1. built-in defaults
//  2. environment variables
//  3. command-line flags
//  4. JSON config file
//
// [GetStructuredConfig] serves cmd/server, [GetClientConfig] serves
// cmd/client.
package config
