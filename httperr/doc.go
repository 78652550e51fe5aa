// Package httperr defines the primitive error values shared by endpoints,
// actions and the service adapter.
//
// Every error that reaches the service is turned into an HTTP status code by
// [Status]. Errors created with the constructors of this package carry their
// status explicitly; a small table of well-known standard library errors is
// consulted next; anything else is treated as an internal server error.
package httperr
