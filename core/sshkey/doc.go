// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.
// Package sshkey converts between an in-memory elliptic-curve key and the
// OpenSSH representations of it: the authorized_keys public line, the raw
// SSH-packed public blob, and the openssh-key-v1 private container. The
// codec is deterministic and stateless; the only cross-call state is the
// immutable curve alias table built on first use.
package sshkey
