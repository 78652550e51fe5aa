// Package endpointtest runs endpoints against synthetic requests without a
// network listener.
//
//	runner := endpointtest.NewRunner(api)
//
//	v, err := runner.Apply(endpointtest.Get("/api/notes?limit=5"))
//	rec := runner.Respond(endpointtest.Post("/api/notes").JSON(note))
package endpointtest
