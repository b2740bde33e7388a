// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.
package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/sshkeys/config"
)

// isolate points every config search path at empty temp directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(nil, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Comment != "sshkeys-generated-key" {
		t.Fatalf("unexpected default comment: %q", cfg.Comment)
	}
	if cfg.Binary || cfg.Debug {
		t.Fatalf("boolean defaults should be false")
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "comment: from-file\nbinary: true\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := config.Load(nil, &path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Comment != "from-file" || !cfg.Binary {
		t.Fatalf("explicit file not honored: %+v", cfg)
	}
}

func TestLoad_BrokenFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("comment: [unclosed"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := config.Load(nil, &path); err == nil {
		t.Fatalf("expected parse error for broken config")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SSHKEYS_COMMENT", "from-env")

	cfg, err := config.Load(nil, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Comment != "from-env" {
		t.Fatalf("env override not honored: %q", cfg.Comment)
	}
}

func TestWriteAndReload(t *testing.T) {
	isolate(t)

	cfg := config.Config{Comment: "persisted", Binary: true}
	if err := config.Write(&cfg, false); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	reloaded, err := config.Load(nil, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if reloaded.Comment != "persisted" || !reloaded.Binary {
		t.Fatalf("persisted config not reloaded: %+v", reloaded)
	}
}

func TestRender(t *testing.T) {
	cfg := config.Config{Comment: "c", Binary: true}
	out, err := config.Render(&cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "comment: c") || !strings.Contains(out, "binary: true") {
		t.Fatalf("unexpected render output: %q", out)
	}
}
