// Package service turns a composed endpoint into an http.Handler.
//
// Every request goes through the same steps. An Input is built from the
// request (using the chi route path when the app is mounted on a router)
// and the endpoint is applied to it; a failure to match is written as an
// error response. Otherwise the action runs with the request context, and
// its value is written with output.Respond after the response headers and
// cookies collected while handling the request have been added.
//
//	app := service.New(api,
//		service.WithLogger(logger),
//		service.WithTimeout(5*time.Second),
//		service.WithMiddleware(service.TraceID(logger), service.Logging, service.Gzip),
//	)
//	http.ListenAndServe(":8080", app)
package service
