package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-finchers/internal/config"
	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/internal/utils"
	"github.com/MKhiriev/go-finchers/internal/validators"
	"github.com/MKhiriev/go-finchers/models"
)

// authService issues HS256 tokens to holders of the configured API key.
type authService struct {
	apiKey []byte
	hasher *utils.Hasher

	tokenSignKey  []byte
	tokenIssuer   string
	tokenDuration time.Duration

	validator validators.Validator
	logger    *logger.Logger
}

// NewAuthService builds an AuthService from the app config. API keys are
// compared as HMAC digests in constant time.
func NewAuthService(cfg config.App, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		apiKey:        []byte(cfg.APIKey),
		hasher:        utils.NewHasher([]byte(cfg.TokenSignKey)),
		tokenSignKey:  []byte(cfg.TokenSignKey),
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		validator:     validator,
		logger:        logger,
	}
}

func (a *authService) CreateToken(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("subject", credentials.Subject).Msg("invalid credentials provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if !a.hasher.Equal([]byte(credentials.APIKey), a.apiKey) {
		log.Warn().Str("subject", credentials.Subject).Msg("wrong api key")
		return models.Token{}, ErrWrongAPIKey
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, credentials.Subject, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("subject", credentials.Subject).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("token creation failed: %w", err)
	}

	log.Info().Str("subject", credentials.Subject).Time("expires_at", token.ExpiresAt).Msg("token issued")
	return token, nil
}
