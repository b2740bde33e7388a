// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/sshkeys/core/curve"
	"github.com/toeirei/sshkeys/core/sshkey"
)

// writeTestKey saves a fresh ed25519 private key into dir and returns its path.
func writeTestKey(t *testing.T, dir, comment string) string {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	key := &sshkey.Key{Curve: curve.Ed25519, Pub: pub, Seed: priv.Seed(), Comment: comment}
	pemBytes, err := key.SavePrivateKey(nil, nil)
	if err != nil {
		t.Fatalf("SavePrivateKey: %v", err)
	}
	path := filepath.Join(dir, "id_ed25519")
	if err := os.WriteFile(path, pemBytes, 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// run executes the CLI with args and returns captured stdout.
func run(t *testing.T, args ...string) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()
	w.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(r); err != nil {
		t.Fatalf("read captured stdout: %v", err)
	}
	if execErr != nil {
		t.Fatalf("command %v failed: %v", args, execErr)
	}
	return out.String()
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestPublicCommand(t *testing.T) {
	isolate(t)
	path := writeTestKey(t, t.TempDir(), "cli@test")

	out := run(t, "public", path)
	if !strings.HasPrefix(out, "ssh-ed25519 ") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "cli@test") {
		t.Fatalf("stored comment missing from line: %q", out)
	}

	key, err := sshkey.ParsePublicKey([]byte(strings.TrimSpace(out)))
	if err != nil {
		t.Fatalf("emitted line does not parse: %v", err)
	}
	if key.Curve != curve.Ed25519 {
		t.Fatalf("unexpected curve: %s", key.Curve.Name())
	}
}

func TestPublicCommand_CommentOverride(t *testing.T) {
	isolate(t)
	path := writeTestKey(t, t.TempDir(), "stored@comment")

	out := run(t, "public", path, "--comment", "override@comment")
	if !strings.Contains(out, "override@comment") {
		t.Fatalf("comment override not applied: %q", out)
	}
}

func TestInspectCommand(t *testing.T) {
	isolate(t)
	path := writeTestKey(t, t.TempDir(), "inspect@test")

	out := run(t, "inspect", path)
	for _, want := range []string{"ssh-ed25519", "ed25519", "inspect@test", "SHA256:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("inspect output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "true") {
		t.Fatalf("inspect did not mark the key private:\n%s", out)
	}
}

func TestConfigShowCommand(t *testing.T) {
	isolate(t)

	out := run(t, "config", "show")
	if !strings.Contains(out, "comment: sshkeys-generated-key") {
		t.Fatalf("unexpected config output:\n%s", out)
	}
}
