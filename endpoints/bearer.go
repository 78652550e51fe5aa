package endpoints

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finchers/action"
	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/httperr"
	"github.com/MKhiriev/go-finchers/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

func unauthorized(err error, challenge string) error {
	return httperr.WithHeader(httperr.Unauthorized(err), "WWW-Authenticate", challenge)
}

// Bearer yields the token of an "Authorization: Bearer <token>" header.
// A missing or malformed header is a 401.
func Bearer() endpoint.Endpoint[string] {
	return endpoint.Func[string](func(cx *endpoint.Context) (action.Action[string], error) {
		header := cx.Input().Header().Get("Authorization")
		return func(context.Context) (string, error) {
			if header == "" {
				return "", unauthorized(ErrMissingCredentials, "Bearer")
			}
			token, err := utils.ParseBearerToken(header)
			if err != nil {
				return "", unauthorized(err, `Bearer error="invalid_request"`)
			}
			return token, nil
		}, nil
	})
}

// JWT verifies an HS256 bearer token signed with key and yields its
// claims. When issuer is not empty the iss claim must match it. Invalid or
// expired tokens are a 401.
func JWT(key []byte, issuer string) endpoint.Endpoint[*jwt.RegisteredClaims] {
	return endpoint.AndThen(Bearer(), func(_ context.Context, token string) (*jwt.RegisteredClaims, error) {
		claims, err := utils.ValidateJWTToken(token, key, issuer)
		if err != nil {
			return nil, unauthorized(fmt.Errorf("%w: %w", ErrInvalidToken, err), `Bearer error="invalid_token"`)
		}
		return claims, nil
	})
}
