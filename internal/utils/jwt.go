package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-finchers/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidJWTParams           = errors.New("invalid params for generating JWT token")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrEmptySubject               = errors.New("token has an empty subject")
)

// GenerateJWTToken creates an HS256-signed JWT.
//
// The token carries the registered claims:
//   - Issuer    (iss): the service issuing the token
//   - Subject   (sub): whom the token is issued for
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Every parameter is required; ErrInvalidJWTParams is returned otherwise.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("notes", "alice", time.Hour, []byte("secret"))
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey []byte) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || len(signKey) == 0 {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing JWT token: %w", err)
	}

	return models.Token{SignedString: signed, ExpiresAt: expiresAt.UTC().Truncate(time.Second)}, nil
}

// ValidateJWTToken verifies tokenString and returns its claims.
//
// Validation includes:
//   - the HS256 signature under signKey (other algorithms are rejected)
//   - presence and value of the exp claim
//   - the iss claim, when tokenIssuer is not empty
//   - a non-empty sub claim
//
// Example usage:
//
//	claims, err := utils.ValidateJWTToken(raw, []byte("secret"), "notes")
//	if err != nil {
//	    // invalid or expired token
//	}
func ValidateJWTToken(tokenString string, signKey []byte, tokenIssuer string) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return signKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error validating JWT token: %w", err)
	}
	if claims.Subject == "" {
		return nil, ErrEmptySubject
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an Authorization header of the
// form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
