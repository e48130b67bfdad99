// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims is the claim set of an admin bearer token. The subject holds
// the user id, Capabilities the granted host capabilities.
type AdminClaims struct {
	jwt.RegisteredClaims

	Capabilities []string `json:"caps,omitempty"`
}

// Token wraps a JWT admin token with convenience accessors.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims are the parsed or issued claims.
	Claims AdminClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// User returns the administrator described by the token.
func (t *Token) User() (User, error) {
	userID, err := t.GetUserID()
	if err != nil {
		return User{}, err
	}

	return User{UserID: userID, Capabilities: t.Claims.Capabilities}, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
