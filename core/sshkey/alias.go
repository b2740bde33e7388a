// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey

import (
	"encoding/asn1"
	"fmt"
	"sync"

	"github.com/toeirei/sshkeys/core/curve"
)

const (
	typeEd25519     = "ssh-ed25519"
	typeECDSAPrefix = "ecdsa-sha2-"
)

// SupportedTypes is the closed set of SSH key types this codec understands.
var SupportedTypes = []string{
	"ecdsa-sha2-nistp256",
	"ecdsa-sha2-nistp384",
	"ecdsa-sha2-nistp521",
	"ssh-ed25519",
}

// oidAliases lists, in stable order, every registered spelling for one curve
// OID. Several OIDs have more than one conventional name; SSH legality is
// per-alias, so resolution filters against SupportedTypes.
type oidAliases struct {
	oid     asn1.ObjectIdentifier
	aliases []string
}

var (
	aliasOnce  sync.Once
	aliasTable []oidAliases
	legalTypes map[string]bool
)

// buildAliasTable constructs the immutable alias table exactly once.
// Concurrent first use is safe: every caller observes the fully built table.
func buildAliasTable() {
	aliasTable = []oidAliases{
		{curve.NistP256.OID(), []string{"nistp256", "secp256r1", "prime256v1"}},
		{curve.NistP384.OID(), []string{"nistp384", "secp384r1"}},
		{curve.NistP521.OID(), []string{"nistp521", "secp521r1"}},
		{curve.Secp256k1.OID(), []string{"secp256k1"}},
	}
	legalTypes = make(map[string]bool, len(SupportedTypes))
	for _, t := range SupportedTypes {
		legalTypes[t] = true
	}
}

// resolveAlias maps a Weierstrass curve to the alias used in its SSH type
// string: the first alias sharing the curve's OID for which
// "ecdsa-sha2-<alias>" is a supported type. The table order is fixed, so
// repeated encodings of the same curve are byte-identical.
func resolveAlias(c *curve.Curve) (string, error) {
	aliasOnce.Do(buildAliasTable)
	for _, entry := range aliasTable {
		if !entry.oid.Equal(c.OID()) {
			continue
		}
		for _, alias := range entry.aliases {
			if legalTypes[typeECDSAPrefix+alias] {
				return alias, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedCurve, c.Name())
}
