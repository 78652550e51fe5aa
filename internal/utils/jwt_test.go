package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSignKey = []byte("secret-key")

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "alice", time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty SignedString")
	}
	if time.Until(token.ExpiresAt) <= 0 {
		t.Errorf("expected expiry in the future, got %v", token.ExpiresAt)
	}

	claims, err := ValidateJWTToken(token.SignedString, testSignKey, "test-issuer")
	if err != nil {
		t.Fatalf("expected token to validate, got: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject 'alice', got %s", claims.Subject)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer 'test-issuer', got %s", claims.Issuer)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      []byte
	}{
		{"empty issuer", "", "alice", time.Hour, testSignKey},
		{"empty subject", "iss", "", time.Hour, testSignKey},
		{"zero duration", "iss", "alice", 0, testSignKey},
		{"empty key", "iss", "alice", time.Hour, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidJWTParams) {
				t.Errorf("expected ErrInvalidJWTParams, got %v", err)
			}
		})
	}
}

func TestValidateJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("iss", "alice", time.Hour, testSignKey)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString(testSignKey)
	if err != nil {
		t.Fatal(err)
	}
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:  "iss",
		Subject: "alice",
	}).SignedString(testSignKey)
	if err != nil {
		t.Fatal(err)
	}
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(testSignKey)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		token  string
		key    []byte
		issuer string
	}{
		{"wrong key", valid.SignedString, []byte("other"), "iss"},
		{"wrong issuer", valid.SignedString, testSignKey, "other"},
		{"expired", expired, testSignKey, "iss"},
		{"no expiry", noExpiry, testSignKey, "iss"},
		{"no subject", noSubject, testSignKey, "iss"},
		{"garbage", "not.a.token", testSignKey, "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer token", "token", false},
		{"surrounding spaces", "  Bearer token  ", "token", false},
		{"empty", "", "", true},
		{"no token", "Bearer ", "", true},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Errorf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()
	if first == second {
		t.Fatal("expected distinct UUIDs")
	}
	if first.Version() != 7 {
		t.Errorf("expected version 7, got %d", first.Version())
	}
}
