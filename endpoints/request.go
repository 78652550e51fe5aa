package endpoints

import (
	"net/http"

	"github.com/MKhiriev/go-finchers/action"
	"github.com/MKhiriev/go-finchers/endpoint"
)

// RemoteAddr yields the network address of the client as reported by
// net/http.
func RemoteAddr() endpoint.Endpoint[string] {
	return endpoint.Func[string](func(cx *endpoint.Context) (action.Action[string], error) {
		return action.Ready(cx.Request().RemoteAddr), nil
	})
}

// Request yields the raw request.
func Request() endpoint.Endpoint[*http.Request] {
	return endpoint.Func[*http.Request](func(cx *endpoint.Context) (action.Action[*http.Request], error) {
		return action.Ready(cx.Request()), nil
	})
}
