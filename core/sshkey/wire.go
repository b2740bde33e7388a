// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import "math/big"

// Wire layouts of the SSH-packed payloads, marshaled and unmarshaled with
// golang.org/x/crypto/ssh. String and []byte fields carry RFC4251 length
// prefixes; *big.Int fields are mpints.

// typePeek reads the leading type string of any packed blob.
type typePeek struct {
	Type string
	Rest []byte `ssh:"rest"`
}

// ecdsaPubBlob is string(type) || string(alias) || string(0x04||X||Y).
type ecdsaPubBlob struct {
	Type  string
	Curve string
	Point []byte
}

// ed25519PubBlob is string("ssh-ed25519") || string(32-byte point).
type ed25519PubBlob struct {
	Type  string
	Point []byte
}

// ecdsaPrivFields is the per-key private section inside the container,
// before the container appends the comment and padding.
type ecdsaPrivFields struct {
	Type  string
	Curve string
	Point []byte
	D     *big.Int
}

// ed25519PrivFields repeats the public point after the seed, per OpenSSH
// convention: the keypair field is seed || point.
type ed25519PrivFields struct {
	Type    string
	Point   []byte
	Keypair []byte
}

// ecdsaPrivBody is the decrypted per-key block as read back out of the
// container: fields, then the stored comment, then padding.
type ecdsaPrivBody struct {
	Type    string
	Curve   string
	Point   []byte
	D       *big.Int
	Comment string
	Pad     []byte `ssh:"rest"`
}

type ed25519PrivBody struct {
	Type    string
	Point   []byte
	Keypair []byte
	Comment string
	Pad     []byte `ssh:"rest"`
}
