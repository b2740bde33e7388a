// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"strings"

	gossh "golang.org/x/crypto/ssh"

	"github.com/toeirei/sshkeys/core/crypto/openssh"
	"github.com/toeirei/sshkeys/core/curve"
)

// ParsePublicKey loads a public key from either an authorized_keys text line
// or a raw SSH-packed blob.
func ParsePublicKey(data []byte) (*Key, error) {
	if algorithm, keyData, comment, err := Parse(string(data)); err == nil {
		blob, err := base64.StdEncoding.DecodeString(keyData)
		if err != nil {
			return nil, fmt.Errorf("sshkey: bad base64 in public key line: %w", err)
		}
		var peek typePeek
		if err := gossh.Unmarshal(blob, &peek); err != nil {
			return nil, fmt.Errorf("sshkey: truncated public blob: %w", err)
		}
		if peek.Type != algorithm {
			return nil, fmt.Errorf("%w: line says %q, blob says %q", ErrFormatMismatch, algorithm, peek.Type)
		}
		key, err := parsePublicBlob(blob)
		if err != nil {
			return nil, err
		}
		key.Comment = comment
		return key, nil
	}
	return parsePublicBlob(data)
}

// parsePublicBlob unpacks an SSH-packed public blob, branching on the fixed
// Ed25519 type against the generic Weierstrass layout.
func parsePublicBlob(blob []byte) (*Key, error) {
	var peek typePeek
	if err := gossh.Unmarshal(blob, &peek); err != nil {
		return nil, fmt.Errorf("sshkey: truncated public blob: %w", err)
	}

	switch {
	case peek.Type == typeEd25519:
		var w ed25519PubBlob
		if err := gossh.Unmarshal(blob, &w); err != nil {
			return nil, fmt.Errorf("sshkey: malformed ed25519 public blob: %w", err)
		}
		if len(w.Point) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("%w: got %d", ErrLengthMismatch, len(w.Point))
		}
		return &Key{Curve: curve.Ed25519, Pub: w.Point}, nil

	case strings.HasPrefix(peek.Type, typeECDSAPrefix):
		var w ecdsaPubBlob
		if err := gossh.Unmarshal(blob, &w); err != nil {
			return nil, fmt.Errorf("sshkey: malformed ecdsa public blob: %w", err)
		}
		if w.Type != typeECDSAPrefix+w.Curve {
			return nil, fmt.Errorf("%w: type %q does not match curve %q", ErrFormatMismatch, w.Type, w.Curve)
		}
		c, err := curve.ByName(w.Curve)
		if err != nil {
			return nil, err
		}
		x, y, err := c.DecodePoint(w.Point)
		if err != nil {
			return nil, err
		}
		return &Key{Curve: c, X: x, Y: y}, nil

	default:
		return nil, fmt.Errorf("sshkey: unsupported key type %q", peek.Type)
	}
}

// ParsePrivateKey loads a key from an openssh-key-v1 private container,
// decrypting with the passphrase when the container is encrypted. The
// passphrase is ignored for unencrypted containers.
func ParsePrivateKey(data, passphrase []byte) (*Key, error) {
	container, err := openssh.Open(data, passphrase)
	if err != nil {
		return nil, err
	}

	var pub typePeek
	if err := gossh.Unmarshal(container.PublicBlob, &pub); err != nil {
		return nil, fmt.Errorf("sshkey: truncated public section: %w", err)
	}
	var priv typePeek
	if err := gossh.Unmarshal(container.PrivateBlock, &priv); err != nil {
		return nil, fmt.Errorf("sshkey: truncated private section: %w", err)
	}
	if pub.Type != priv.Type {
		return nil, fmt.Errorf("%w: public section %q, private section %q", ErrFormatMismatch, pub.Type, priv.Type)
	}

	if priv.Type == typeEd25519 {
		return parseEd25519Private(container.PrivateBlock)
	}
	return parseECDSAPrivate(container.PrivateBlock)
}

func parseEd25519Private(block []byte) (*Key, error) {
	var w ed25519PrivBody
	if err := gossh.Unmarshal(block, &w); err != nil {
		return nil, fmt.Errorf("sshkey: malformed ed25519 private section: %w", err)
	}
	if err := openssh.CheckPadding(w.Pad); err != nil {
		return nil, err
	}
	if len(w.Point) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: got %d", ErrLengthMismatch, len(w.Point))
	}
	if len(w.Keypair) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: keypair field is %d bytes, want %d", ErrInvalidSecretLength, len(w.Keypair), ed25519.PrivateKeySize)
	}
	// The keypair field is seed || point; the point copy is authoritative
	// over the one in the dedicated field.
	return &Key{
		Curve:   curve.Ed25519,
		Pub:     w.Keypair[ed25519.SeedSize:],
		Seed:    w.Keypair[:ed25519.SeedSize],
		Comment: w.Comment,
	}, nil
}

func parseECDSAPrivate(block []byte) (*Key, error) {
	var w ecdsaPrivBody
	if err := gossh.Unmarshal(block, &w); err != nil {
		return nil, fmt.Errorf("sshkey: malformed ecdsa private section: %w", err)
	}
	if err := openssh.CheckPadding(w.Pad); err != nil {
		return nil, err
	}
	c, err := curve.ByName(w.Curve)
	if err != nil {
		return nil, err
	}
	if err := c.CheckScalar(w.D); err != nil {
		return nil, err
	}
	x, y, err := c.DecodePoint(w.Point)
	if err != nil {
		return nil, err
	}
	return &Key{Curve: c, X: x, Y: y, D: w.D, Comment: w.Comment}, nil
}
