// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"math/big"

	"github.com/toeirei/sshkeys/core/curve"
)

// Key is an elliptic-curve key in memory. The curve field references a
// process-wide singleton from the curve registry and is never owned by the
// key. Weierstrass keys populate X/Y (and D when private); Ed25519 keys
// populate Pub (and Seed when private). Keys are transient: the codec
// constructs one per load call and reads one per save call.
type Key struct {
	Curve *curve.Curve

	// X, Y are the affine public coordinates of a Weierstrass key.
	X, Y *big.Int

	// Pub is the 32-byte encoded public point of an Ed25519 key.
	Pub []byte

	// D is the private scalar of a Weierstrass key; nil for a public key.
	D *big.Int

	// Seed is the 32-byte private seed of an Ed25519 key; nil for a public key.
	Seed []byte

	Comment string
}

// IsPrivate reports whether the key carries private material.
func (k *Key) IsPrivate() bool {
	return k.D != nil || k.Seed != nil
}

// Type returns the SSH type string of the key, e.g. "ssh-ed25519" or
// "ecdsa-sha2-nistp256". For a Weierstrass curve the alias is resolved
// through the alias table, so a curve with no SSH-legal alias fails with
// ErrUnsupportedCurve.
func (k *Key) Type() (string, error) {
	if k.Curve.IsEd25519() {
		return typeEd25519, nil
	}
	alias, err := resolveAlias(k.Curve)
	if err != nil {
		return "", err
	}
	return typeECDSAPrefix + alias, nil
}

// Fingerprint returns the OpenSSH-style SHA256 fingerprint of the public
// part of the key.
func (k *Key) Fingerprint() (string, error) {
	blob, err := k.SavePublicKey(&SaveOptions{Binary: true})
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	sum := sha256.Sum256(blob)
	return "SHA256:" + base64.RawStdEncoding.EncodeToString(sum[:]), nil
}
