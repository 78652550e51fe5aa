// Package endpoint provides the Endpoint abstraction and the combinators used
// to compose endpoints into a service.
//
// An endpoint inspects an incoming request through a [Context] (the request
// plus a cursor over the remaining path segments). When it matches, it
// returns an [action.Action] which produces the endpoint's value later; when
// it does not match, it returns an error, usually an [*ApplyError].
//
// Endpoints are plain values and can be freely shared between goroutines.
//
//	notes := endpoint.Path("/api/notes")
//	byID := endpoint.Get(endpoint.With(notes, endpoint.Param[uuid.UUID]()))
//	create := endpoint.Post(endpoint.With(notes, endpoints.JSON[NewNote]()))
//	api := endpoint.Or(byID, create)
//
// Matching is synchronous and must not have side effects: [Or] applies both of
// its operands and discards the loser. Reading the body, calling a database
// and any other blocking work happen inside the returned action.
package endpoint
