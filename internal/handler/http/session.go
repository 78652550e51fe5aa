package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/endpoints"
	"github.com/MKhiriev/go-finchers/models"
	"github.com/MKhiriev/go-finchers/output"
)

const visitsCookie = "visits"

// session counts the visits of a client in an encrypted cookie. A cookie
// that cannot be decrypted starts the count over.
func (h *Handler) session() endpoint.Endpoint[output.Output] {
	return endpoint.Get(endpoint.AndThen(
		endpoint.With(endpoint.Path("/session/"), endpoints.Cookies()),
		func(_ context.Context, jar *endpoint.CookieJar) (output.Output, error) {
			private, err := jar.Private(h.cookieKey)
			if err != nil {
				return nil, err
			}

			visits := 0
			if c, ok := private.Get(visitsCookie); ok {
				visits, _ = strconv.Atoi(c.Value)
			}
			visits++

			err = private.Add(&http.Cookie{
				Name:     visitsCookie,
				Value:    strconv.Itoa(visits),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			if err != nil {
				return nil, err
			}

			return output.JSON(models.SessionResponse{Visits: visits}), nil
		},
	))
}
