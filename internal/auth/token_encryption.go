// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Token encryption errors
var (
	// ErrEncryptionKeyMissing indicates no session secret was configured.
	ErrEncryptionKeyMissing = errors.New("encryption key not configured")

	// ErrDecryptionFailed indicates the decryption operation failed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidCiphertext indicates the ciphertext is malformed.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrNoAccessToken indicates the session carries no access token.
	ErrNoAccessToken = errors.New("session has no access token")
)

// HKDF info strings. Each purpose gets its own key from the session secret.
const (
	tokenEncryptionContext = "swarmwrapped-token-encryption"
	stateSigningContext    = "swarmwrapped-oauth-state"
)

// TokenEncryptor provides AES-GCM encryption for access tokens held in
// session metadata.
type TokenEncryptor struct {
	aead cipher.AEAD
}

// NewTokenEncryptor derives an AES-256 key from the session secret with
// HKDF-SHA256 and returns an encryptor using it.
func NewTokenEncryptor(secret string) (*TokenEncryptor, error) {
	if secret == "" {
		return nil, ErrEncryptionKeyMissing
	}

	derivedKey, err := deriveKey([]byte(secret), []byte(tokenEncryptionContext), 32)
	if err != nil {
		return nil, fmt.Errorf("derive encryption key: %w", err)
	}

	block, err := aes.NewCipher(derivedKey)
	if err != nil {
		return nil, fmt.Errorf("create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM cipher: %w", err)
	}

	return &TokenEncryptor{aead: aead}, nil
}

// deriveKey derives a key using HKDF-SHA256.
func deriveKey(secret, context []byte, keyLen int) ([]byte, error) {
	reader := hkdf.New(sha256.New, secret, nil, context)
	key := make([]byte, keyLen)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Encrypt encrypts the plaintext and returns base64-encoded ciphertext.
// The nonce is prepended to the ciphertext.
// Empty strings are returned as-is.
func (e *TokenEncryptor) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := e.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt decrypts base64-encoded ciphertext and returns plaintext.
// Empty strings are returned as-is.
func (e *TokenEncryptor) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: base64 decode failed", ErrInvalidCiphertext)
	}

	// nonce + at least 1 byte + auth tag
	nonceSize := e.aead.NonceSize()
	if len(data) < nonceSize+1+e.aead.Overhead() {
		return "", fmt.Errorf("%w: data too short", ErrInvalidCiphertext)
	}

	plaintext, err := e.aead.Open(nil, data[:nonceSize], data[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrDecryptionFailed, err.Error())
	}

	return string(plaintext), nil
}

// SealAccessToken stores the encrypted access token in the session metadata.
func (e *TokenEncryptor) SealAccessToken(session *Session, token string) error {
	enc, err := e.Encrypt(token)
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", MetadataKeyAccessToken, err)
	}
	if session.Metadata == nil {
		session.Metadata = make(map[string]string)
	}
	session.Metadata[MetadataKeyAccessToken] = enc
	return nil
}

// OpenAccessToken returns the decrypted access token from the session.
func (e *TokenEncryptor) OpenAccessToken(session *Session) (string, error) {
	enc := session.Metadata[MetadataKeyAccessToken]
	if enc == "" {
		return "", ErrNoAccessToken
	}
	token, err := e.Decrypt(enc)
	if err != nil {
		return "", fmt.Errorf("decrypt %s: %w", MetadataKeyAccessToken, err)
	}
	return token, nil
}
