// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.
package curve

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"
)

func TestByName_AliasesShareSingleton(t *testing.T) {
	for _, name := range []string{"nistp256", "secp256r1", "prime256v1"} {
		c, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) failed: %v", name, err)
		}
		if c != NistP256 {
			t.Fatalf("ByName(%q) returned a different identity", name)
		}
	}

	c, err := ByName("secp384r1")
	if err != nil {
		t.Fatalf("ByName failed: %v", err)
	}
	if c != NistP384 {
		t.Fatalf("secp384r1 should resolve to nistp384")
	}
}

func TestByName_Unknown(t *testing.T) {
	if _, err := ByName("brainpoolP256r1"); !errors.Is(err, ErrUnknownCurve) {
		t.Fatalf("expected ErrUnknownCurve, got %v", err)
	}
	if _, err := ByName(""); !errors.Is(err, ErrUnknownCurve) {
		t.Fatalf("expected ErrUnknownCurve for empty name, got %v", err)
	}
}

func TestPointRoundTrip(t *testing.T) {
	cases := []struct {
		c    *Curve
		impl elliptic.Curve
	}{
		{NistP256, elliptic.P256()},
		{NistP384, elliptic.P384()},
		{NistP521, elliptic.P521()},
	}
	for _, tc := range cases {
		priv, err := ecdsa.GenerateKey(tc.impl, rand.Reader)
		if err != nil {
			t.Fatalf("GenerateKey(%s): %v", tc.c.Name(), err)
		}
		enc := tc.c.EncodePoint(priv.X, priv.Y)
		if want := 1 + 2*tc.c.FieldBytes(); len(enc) != want {
			t.Fatalf("%s: encoded point is %d bytes, want %d", tc.c.Name(), len(enc), want)
		}
		if enc[0] != 0x04 {
			t.Fatalf("%s: missing uncompressed tag", tc.c.Name())
		}
		x, y, err := tc.c.DecodePoint(enc)
		if err != nil {
			t.Fatalf("%s: DecodePoint failed: %v", tc.c.Name(), err)
		}
		if x.Cmp(priv.X) != 0 || y.Cmp(priv.Y) != 0 {
			t.Fatalf("%s: point did not round trip", tc.c.Name())
		}
	}
}

// P-521 coordinates frequently have high-order zero bytes; the fixed-width
// encoding must preserve them.
func TestEncodePoint_FixedWidth(t *testing.T) {
	x := big.NewInt(1)
	y := big.NewInt(2)
	enc := NistP521.EncodePoint(x, y)
	if len(enc) != 1+2*66 {
		t.Fatalf("expected 133 bytes, got %d", len(enc))
	}
	if enc[66] != 1 || enc[132] != 2 {
		t.Fatalf("coordinates not right-aligned in fixed-width fields")
	}
}

func TestDecodePoint_Rejects(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	good := NistP256.EncodePoint(priv.X, priv.Y)

	badTag := make([]byte, len(good))
	copy(badTag, good)
	badTag[0] = 0x02
	if _, _, err := NistP256.DecodePoint(badTag); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("compressed tag accepted: %v", err)
	}

	if _, _, err := NistP256.DecodePoint(good[:len(good)-1]); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("truncated point accepted: %v", err)
	}

	offCurve := make([]byte, len(good))
	copy(offCurve, good)
	offCurve[len(offCurve)-1] ^= 0x01
	if _, _, err := NistP256.DecodePoint(offCurve); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("off-curve point accepted: %v", err)
	}
}

func TestCheckScalar(t *testing.T) {
	n := NistP256.Order()

	if err := NistP256.CheckScalar(big.NewInt(1)); err != nil {
		t.Fatalf("scalar 1 rejected: %v", err)
	}
	if err := NistP256.CheckScalar(new(big.Int).Sub(n, big.NewInt(1))); err != nil {
		t.Fatalf("order-1 rejected: %v", err)
	}
	if err := NistP256.CheckScalar(big.NewInt(0)); !errors.Is(err, ErrScalarOutOfRange) {
		t.Fatalf("zero accepted: %v", err)
	}
	if err := NistP256.CheckScalar(nil); !errors.Is(err, ErrScalarOutOfRange) {
		t.Fatalf("nil accepted: %v", err)
	}
	if err := NistP256.CheckScalar(n); !errors.Is(err, ErrScalarOutOfRange) {
		t.Fatalf("order accepted: %v", err)
	}
}

func TestEd25519Identity(t *testing.T) {
	if !Ed25519.IsEd25519() {
		t.Fatalf("Ed25519 singleton not marked as Edwards")
	}
	if Ed25519.OID() != nil {
		t.Fatalf("Ed25519 must not carry an OID")
	}
	if Ed25519.FieldBytes() != 32 {
		t.Fatalf("Ed25519 field width is %d, want 32", Ed25519.FieldBytes())
	}
}
