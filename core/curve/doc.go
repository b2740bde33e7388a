// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.
// Package curve defines the elliptic-curve identities the codec can speak
// about: a short name, the registered OID, and the arithmetic needed to
// encode, decode and validate key material on that curve. Curves are
// process-wide singletons resolved through an immutable name registry.
package curve
