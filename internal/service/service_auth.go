// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/crypto"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/utils"
	"github.com/MKhiriev/go-parish/models"
)

// authService is the concrete implementation of AuthService.
// There is a single admin account whose login and argon2id password hash come
// from configuration.
type authService struct {
	// adminLogin is the only login accepted. Empty disables login.
	adminLogin string

	// adminPasswordHash is the encoded argon2id hash of the admin password.
	adminPasswordHash string

	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the admin and token settings
// in cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		adminLogin:        cfg.AdminLogin,
		adminPasswordHash: cfg.AdminPasswordHash,
		hasher:            hasher,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Login checks the credentials against the configured admin and issues a
// signed token.
//
// Returns:
//   - ErrAdminDisabled if no admin is configured.
//   - ErrInvalidDataProvided if login or password is empty.
//   - ErrWrongPassword if either does not match.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if a.adminLogin == "" {
		return models.Token{}, ErrAdminDisabled
	}
	if req.Login == "" || req.Password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	loginMatches := subtle.ConstantTimeCompare([]byte(req.Login), []byte(a.adminLogin)) == 1
	passwordMatches, err := a.hasher.Verify(req.Password, a.adminPasswordHash)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("configured admin password hash is unusable")
		return models.Token{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !loginMatches || !passwordMatches {
		log.Warn().Str("login", req.Login).Msg("wrong admin credentials")
		return models.Token{}, ErrWrongPassword
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.adminLogin, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if token.Admin != a.adminLogin {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
