// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

package curve

import (
	"crypto/elliptic"
	"encoding/asn1"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

var (
	// ErrInvalidPoint indicates a public point that is malformed or not on
	// the curve.
	ErrInvalidPoint = errors.New("curve: invalid public point")

	// ErrScalarOutOfRange indicates a private scalar outside [1, order-1].
	ErrScalarOutOfRange = errors.New("curve: private scalar out of range")
)

// uncompressedTag is the SEC1 point-format octet for uncompressed points.
// Compressed encodings are deliberately not supported.
const uncompressedTag = 0x04

// Curve identifies one supported elliptic curve. The zero value is not
// usable; callers obtain curves from the package singletons or ByName.
type Curve struct {
	name    string
	oid     asn1.ObjectIdentifier
	impl    elliptic.Curve
	edwards bool
}

// Process-wide curve singletons. Callers compare identities by pointer.
var (
	NistP256  = &Curve{name: "nistp256", oid: asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}, impl: elliptic.P256()}
	NistP384  = &Curve{name: "nistp384", oid: asn1.ObjectIdentifier{1, 3, 132, 0, 34}, impl: elliptic.P384()}
	NistP521  = &Curve{name: "nistp521", oid: asn1.ObjectIdentifier{1, 3, 132, 0, 35}, impl: elliptic.P521()}
	Secp256k1 = &Curve{name: "secp256k1", oid: asn1.ObjectIdentifier{1, 3, 132, 0, 10}, impl: btcec.S256()}

	// Ed25519 is the fixed Edwards curve. It carries no OID because the SSH
	// wire format never names it by alias; it has exactly one type string.
	Ed25519 = &Curve{name: "ed25519", edwards: true}
)

// Name returns the curve's short name (e.g. "nistp256").
func (c *Curve) Name() string { return c.name }

// OID returns the curve's object identifier, or nil for Ed25519.
func (c *Curve) OID() asn1.ObjectIdentifier { return c.oid }

// IsEd25519 reports whether this is the fixed Edwards curve.
func (c *Curve) IsEd25519() bool { return c.edwards }

// Order returns the order of the curve's base point.
func (c *Curve) Order() *big.Int {
	if c.edwards {
		// The codec never range-checks Ed25519 seeds against an order; the
		// seed is raw bytes, not a scalar.
		return nil
	}
	return c.impl.Params().N
}

// FieldBytes returns the width in bytes of one field element.
func (c *Curve) FieldBytes() int {
	if c.edwards {
		return 32
	}
	return (c.impl.Params().BitSize + 7) / 8
}

// EncodePoint serializes an affine point as 0x04 || X || Y with fixed-width
// big-endian field elements.
func (c *Curve) EncodePoint(x, y *big.Int) []byte {
	n := c.FieldBytes()
	out := make([]byte, 1+2*n)
	out[0] = uncompressedTag
	x.FillBytes(out[1 : 1+n])
	y.FillBytes(out[1+n:])
	return out
}

// DecodePoint parses an uncompressed SEC1 point and verifies it lies on the
// curve. Only the 0x04 tag is accepted.
func (c *Curve) DecodePoint(data []byte) (x, y *big.Int, err error) {
	n := c.FieldBytes()
	if len(data) != 1+2*n {
		return nil, nil, fmt.Errorf("%w: got %d bytes, want %d for %s", ErrInvalidPoint, len(data), 1+2*n, c.name)
	}
	if data[0] != uncompressedTag {
		return nil, nil, fmt.Errorf("%w: unsupported point format 0x%02x", ErrInvalidPoint, data[0])
	}
	x = new(big.Int).SetBytes(data[1 : 1+n])
	y = new(big.Int).SetBytes(data[1+n:])
	if !c.impl.IsOnCurve(x, y) {
		return nil, nil, fmt.Errorf("%w: point not on %s", ErrInvalidPoint, c.name)
	}
	return x, y, nil
}

// CheckScalar validates a private scalar against the curve order. Valid
// scalars lie in [1, order-1].
func (c *Curve) CheckScalar(d *big.Int) error {
	if d == nil || d.Sign() < 1 {
		return fmt.Errorf("%w: scalar must be positive", ErrScalarOutOfRange)
	}
	if d.Cmp(c.Order()) >= 0 {
		return fmt.Errorf("%w: scalar not below the order of %s", ErrScalarOutOfRange, c.name)
	}
	return nil
}
