// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	gossh "golang.org/x/crypto/ssh"

	"github.com/toeirei/sshkeys/core/crypto/openssh"
)

// SavePublicKey serializes the public part of the key. In binary mode the
// result is the raw SSH-packed blob; otherwise it is the authorized_keys
// text line "<type> <base64(blob)> <comment>".
func (k *Key) SavePublicKey(opts *SaveOptions) ([]byte, error) {
	comment, binary := k.effective(opts)

	var blobType string
	var blob []byte
	if k.Curve.IsEd25519() {
		pub, err := k.ed25519Public()
		if err != nil {
			return nil, err
		}
		blobType = typeEd25519
		blob = gossh.Marshal(ed25519PubBlob{Type: typeEd25519, Point: pub})
	} else {
		alias, err := resolveAlias(k.Curve)
		if err != nil {
			return nil, err
		}
		blobType = typeECDSAPrefix + alias
		blob = gossh.Marshal(ecdsaPubBlob{
			Type:  blobType,
			Curve: alias,
			Point: k.Curve.EncodePoint(k.X, k.Y),
		})
	}

	if binary {
		return blob, nil
	}
	line := blobType + " " + base64.StdEncoding.EncodeToString(blob)
	if comment != "" {
		line += " " + comment
	}
	return []byte(line), nil
}

// SavePrivateKey serializes the key into an openssh-key-v1 container,
// PEM-armored, encrypting with the passphrase when one is given.
func (k *Key) SavePrivateKey(passphrase []byte, opts *SaveOptions) ([]byte, error) {
	comment, _ := k.effective(opts)

	if k.Curve.IsEd25519() {
		if k.Seed == nil {
			return nil, fmt.Errorf("%w: ed25519 key has no seed", ErrMissingSecret)
		}
		if len(k.Seed) != ed25519.SeedSize {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidSecretLength, len(k.Seed))
		}
	} else if k.D == nil {
		return nil, fmt.Errorf("%w: no private scalar", ErrMissingSecret)
	}

	publicBlob, err := k.SavePublicKey(&SaveOptions{Binary: true})
	if err != nil {
		return nil, err
	}

	var fields []byte
	if k.Curve.IsEd25519() {
		pub, err := k.ed25519Public()
		if err != nil {
			return nil, err
		}
		keypair := make([]byte, 0, ed25519.PrivateKeySize)
		keypair = append(keypair, k.Seed...)
		keypair = append(keypair, pub...)
		fields = gossh.Marshal(ed25519PrivFields{Type: typeEd25519, Point: pub, Keypair: keypair})
	} else {
		alias, err := resolveAlias(k.Curve)
		if err != nil {
			return nil, err
		}
		fields = gossh.Marshal(ecdsaPrivFields{
			Type:  typeECDSAPrefix + alias,
			Curve: alias,
			Point: k.Curve.EncodePoint(k.X, k.Y),
			D:     k.D,
		})
	}

	return openssh.Marshal(publicBlob, fields, comment, passphrase)
}

// ed25519Public returns the encoded public point, deriving it from the seed
// when the key was constructed private-first.
func (k *Key) ed25519Public() ([]byte, error) {
	if k.Pub != nil {
		if len(k.Pub) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("%w: got %d", ErrLengthMismatch, len(k.Pub))
		}
		return k.Pub, nil
	}
	if len(k.Seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: no public point and no usable seed", ErrMissingSecret)
	}
	return ed25519.NewKeyFromSeed(k.Seed).Public().(ed25519.PublicKey), nil
}
