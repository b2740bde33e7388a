// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import "errors"

// The codec fails with exactly one of these kinds per call. All of them are
// terminal: parsing is deterministic, so a malformed key never succeeds on
// retry and callers must drop the key.
var (
	// ErrFormatMismatch indicates that the public and private sections of a
	// key declare different type strings, or that a public blob's type does
	// not match its named curve.
	ErrFormatMismatch = errors.New("sshkey: key type mismatch")

	// ErrLengthMismatch indicates an Ed25519 public payload whose length is
	// not exactly 32 bytes.
	ErrLengthMismatch = errors.New("sshkey: ed25519 public key must be 32 bytes")

	// ErrUnsupportedCurve indicates a curve none of whose aliases form a
	// legal SSH key type.
	ErrUnsupportedCurve = errors.New("sshkey: curve has no SSH alias")

	// ErrMissingSecret indicates a private-key save without private material.
	ErrMissingSecret = errors.New("sshkey: missing private key material")

	// ErrInvalidSecretLength indicates an Ed25519 seed that is not 32 bytes.
	ErrInvalidSecretLength = errors.New("sshkey: ed25519 seed must be 32 bytes")
)
