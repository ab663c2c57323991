// Package jwtmw provides JWT issuance and the Gin authentication middleware.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portfolio_backend/internal/platform/config"
)

// Generator defines the interface for JWT token generation.
type Generator interface {
	// IssueToken creates a signed JWT access token for the given user identity.
	IssueToken(userID uint, email, displayName string) (string, error)
}

// generator implements the Generator interface. The signing secret, issuer and
// audience are fixed at construction and never mutated afterwards, so a single
// generator is safe to share across all requests.
type generator struct {
	secret     []byte
	issuer     string
	audience   string
	expiration time.Duration
}

// NewGenerator creates a JWT generator from the credential-signer configuration.
// Secret validation (presence, minimum length) happens in config.Load before
// this constructor runs.
func NewGenerator(cfg config.JWT) Generator {
	return &generator{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		expiration: cfg.AccessTokenTTL,
	}
}

// IssueToken creates an HS256-signed JWT carrying the user's identity claims.
// The token is stateless: nothing is recorded about it, and it stays valid
// until its expiration regardless of later account changes.
func (g *generator) IssueToken(userID uint, email, displayName string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   fmt.Sprint(userID),
		"email": email,
		"name":  displayName,
		"iss":   g.issuer,
		"aud":   g.audience,
		"iat":   now.Unix(),
		"exp":   now.Add(g.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
