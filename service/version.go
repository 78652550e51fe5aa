package service

// Version is the library version reported in the Server header.
const Version = "0.3.0"

// DefaultServerHeader is sent unless a response already has a Server header
// or another value is configured with WithServerHeader.
const DefaultServerHeader = "go-finchers/" + Version
