// Package output turns the values produced by endpoints into HTTP
// responses.
//
// Any value can be responded with [Respond]. Values implementing [Output]
// control the response themselves; common Go types get a sensible default
// (see Respond), and everything else is encoded as JSON.
package output
