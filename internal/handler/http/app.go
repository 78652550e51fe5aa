package http

import (
	"context"

	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/endpoints"
	"github.com/MKhiriev/go-finchers/models"
	"github.com/MKhiriev/go-finchers/output"
)

func (h *Handler) version() endpoint.Endpoint[output.Output] {
	return endpoint.Get(endpoint.With(
		endpoint.Path("/version/"),
		endpoint.Lazy(func(ctx context.Context) (output.Output, error) {
			return output.JSON(h.services.AppInfoService.GetAppVersion(ctx)), nil
		}),
	))
}

func (h *Handler) token() endpoint.Endpoint[output.Output] {
	return endpoint.Post(endpoint.AndThen(
		endpoint.With(endpoint.Path("/token/"), endpoints.JSON[models.Credentials]()),
		func(ctx context.Context, credentials models.Credentials) (output.Output, error) {
			token, err := h.services.AuthService.CreateToken(ctx, credentials)
			if err != nil {
				return nil, err
			}
			return output.JSON(token), nil
		},
	))
}
