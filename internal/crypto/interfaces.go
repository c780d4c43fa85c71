// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto hashes and verifies the admin password with Argon2id.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and checks self-describing Argon2id hashes in the
// PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// Salt and key are unpadded standard base64. The parameters travel with the
// hash so they can be raised later without invalidating stored values.
type PasswordHasher interface {
	// Hash derives a new encoded hash of password with a random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value is an error; a plain mismatch is (false, nil).
	Verify(password, encoded string) (bool, error)
}
