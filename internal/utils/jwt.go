// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionScheme is the Authorization header scheme of PatientVault calls:
// "Authorization: Session <token>".
const SessionScheme = "Session"

// SessionClaims are the claims of a PatientVault session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	// Username is the login name of the session owner.
	Username string `json:"username"`
	// Culture is the locale the session was opened with.
	Culture string `json:"culture,omitempty"`
}

// UserID returns the subject claim as a numeric user identifier.
func (c *SessionClaims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// GenerateSessionToken creates a signed HMAC-SHA256 session token.
//
// The token includes the standard claims iss, sub (user ID), iat, exp
// (now + duration) and a unique jti, plus the username and culture.
//
// issuer, duration and signKey are required.
func GenerateSessionToken(issuer string, userID int64, username, culture string, duration time.Duration, signKey string) (string, error) {
	if issuer == "" || duration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        NewUUIDGenerator().Generate(),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
		Culture:  culture,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return tokenString, nil
}

// ValidateSessionToken verifies the signature, issuer and expiry of a
// session token and returns its claims.
func ValidateSessionToken(tokenString, signKey, issuer string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	if claims.Subject == "" {
		return nil, errors.New("empty subject error")
	}

	return claims, nil
}

// ParseSessionAuthorization extracts the token from an
// "Authorization: Session <token>" header value.
func ParseSessionAuthorization(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], SessionScheme) {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseSessionExpiry reads the exp claim of a session token without
// verifying it. ok is false for opaque (non-JWT) tokens and tokens without
// an expiry; the caller treats those as never expiring locally.
func ParseSessionExpiry(tokenString string) (expiresAt time.Time, ok bool) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
