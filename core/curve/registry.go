// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

package curve

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownCurve indicates a curve name with no registered implementation.
var ErrUnknownCurve = errors.New("curve: unknown curve")

var (
	registryOnce sync.Once
	registry     map[string]*Curve
)

// buildRegistry populates the name registry exactly once. Every historical
// spelling of a curve name maps to the same singleton, so identity
// comparisons stay valid no matter which name a key file used.
func buildRegistry() {
	registry = map[string]*Curve{
		"nistp256":   NistP256,
		"secp256r1":  NistP256,
		"prime256v1": NistP256,
		"nistp384":   NistP384,
		"secp384r1":  NistP384,
		"nistp521":   NistP521,
		"secp521r1":  NistP521,
		"secp256k1":  Secp256k1,
		"ed25519":    Ed25519,
	}
}

// ByName resolves a curve name, including historical aliases, to its
// registered singleton.
func ByName(name string) (*Curve, error) {
	registryOnce.Do(buildRegistry)
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return c, nil
}
