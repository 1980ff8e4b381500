// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// OAuth state errors
var (
	// ErrInvalidState is returned when the state is missing, malformed,
	// or carries a bad signature.
	ErrInvalidState = errors.New("invalid oauth state")

	// ErrStateExpired is returned when the state is older than its lifetime.
	ErrStateExpired = errors.New("oauth state expired")

	// ErrStateMismatch is returned when the state nonce does not match the
	// nonce cookie set at login.
	ErrStateMismatch = errors.New("oauth state does not match this browser")
)

// DefaultStateTTL bounds how long a visitor may take at the provider's
// consent screen.
const DefaultStateTTL = 10 * time.Minute

const stateIssuer = "swarmwrapped"

// StateClaims are the claims carried by the signed OAuth state parameter.
type StateClaims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// StateSigner issues and verifies OAuth state parameters as HS256 JWTs.
type StateSigner struct {
	key []byte
	ttl time.Duration
}

// NewStateSigner derives a signing key from the session secret.
func NewStateSigner(secret string, ttl time.Duration) (*StateSigner, error) {
	if secret == "" {
		return nil, ErrEncryptionKeyMissing
	}
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}

	key, err := deriveKey([]byte(secret), []byte(stateSigningContext), 32)
	if err != nil {
		return nil, fmt.Errorf("derive state key: %w", err)
	}
	return &StateSigner{key: key, ttl: ttl}, nil
}

// TTL returns the state lifetime.
func (s *StateSigner) TTL() time.Duration {
	return s.ttl
}

// Issue creates a state parameter and the nonce it embeds. The caller
// mirrors the nonce into a short-lived cookie.
func (s *StateSigner) Issue() (state, nonce string, err error) {
	nonce, err = GenerateNonce()
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	claims := &StateClaims{
		Nonce: nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    stateIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	state, err = token.SignedString(s.key)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign state: %w", err)
	}
	return state, nonce, nil
}

// Verify checks the state signature, expiry, and that its nonce equals
// the nonce from the visitor's cookie.
func (s *StateSigner) Verify(state, nonce string) error {
	if state == "" {
		return ErrInvalidState
	}

	claims := &StateClaims{}
	_, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(stateIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrStateExpired
		}
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	if nonce == "" || subtle.ConstantTimeCompare([]byte(claims.Nonce), []byte(nonce)) != 1 {
		return ErrStateMismatch
	}
	return nil
}

// GenerateNonce generates a cryptographically secure nonce.
func GenerateNonce() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
