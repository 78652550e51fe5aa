package endpoints

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-finchers/action"
	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/httperr"
)

// Cookie yields the cookie name. A missing cookie is a 400.
func Cookie(name string) endpoint.Endpoint[*http.Cookie] {
	return endpoint.AndThen(CookieOptional(name), func(_ context.Context, c *http.Cookie) (*http.Cookie, error) {
		if c == nil {
			return nil, httperr.BadRequest(fmt.Errorf("%w: %s", ErrMissingCookie, name))
		}
		return c, nil
	})
}

// CookieOptional yields the cookie name or nil.
func CookieOptional(name string) endpoint.Endpoint[*http.Cookie] {
	return endpoint.Func[*http.Cookie](func(cx *endpoint.Context) (action.Action[*http.Cookie], error) {
		jar := cx.Input().Cookies()
		return func(context.Context) (*http.Cookie, error) {
			c, ok := jar.Get(name)
			if !ok {
				return nil, nil
			}
			return c, nil
		}, nil
	})
}

// Cookies yields the cookie jar of the request. Cookies added to or removed
// from the jar are sent back as Set-Cookie headers.
func Cookies() endpoint.Endpoint[*endpoint.CookieJar] {
	return endpoint.Func[*endpoint.CookieJar](func(cx *endpoint.Context) (action.Action[*endpoint.CookieJar], error) {
		return action.Ready(cx.Input().Cookies()), nil
	})
}
