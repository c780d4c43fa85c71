// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed admin JWT.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for access to the standard claims. SignedString holds the compact form that
// travels in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	// Admin is the login the token was issued to, cached from "sub".
	Admin string `json:"-"`
}

// GetAdmin returns the admin login stored in the "sub" claim.
func (t *Token) GetAdmin() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting admin from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting admin from token: empty subject")
	}
	return subject, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
