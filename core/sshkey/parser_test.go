// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.
package sshkey

import "testing"

func TestParse_NormalLine(t *testing.T) {
	line := "ecdsa-sha2-nistp256 AAAAE2VjZHNhLXNoYTItbmlzdHAyNTY test-key@example.com"
	alg, key, comment, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if alg != "ecdsa-sha2-nistp256" {
		t.Fatalf("unexpected alg: %s", alg)
	}
	if key == "" {
		t.Fatalf("empty key data")
	}
	if comment != "test-key@example.com" {
		t.Fatalf("unexpected comment: %s", comment)
	}
}

func TestParse_WithOptions(t *testing.T) {
	line := "no-agent-forwarding,command=\"echo hi\" ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIBk comment"
	alg, key, comment, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if alg != "ssh-ed25519" {
		t.Fatalf("unexpected alg: %s", alg)
	}
	if comment != "comment" {
		t.Fatalf("unexpected comment: %s", comment)
	}
	if key == "" {
		t.Fatalf("empty key data")
	}
}

func TestParse_MultiWordComment(t *testing.T) {
	line := "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIBk build host key"
	_, _, comment, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if comment != "build host key" {
		t.Fatalf("unexpected comment: %q", comment)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, _, _, err := Parse(""); err == nil {
		t.Fatalf("expected error for empty line")
	}
	if _, _, _, err := Parse("just-some-text"); err == nil {
		t.Fatalf("expected error for no key type")
	}
	if _, _, _, err := Parse("ssh-ed25519"); err == nil {
		t.Fatalf("expected error for missing key data")
	}
}
