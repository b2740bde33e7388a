// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for sshkeys.
//
// Usage:
//
//	go run . [flags]
//	./sshkeys [flags]
//
// This launches the sshkeys CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/sshkeys/internal/logging"
	"github.com/toeirei/sshkeys/ui/cli"
)

// version is set at build time using -ldflags, e.g.:
// go build -ldflags "-X main.version=1.2.3"
var version = "dev"

// main is the entrypoint for the sshkeys CLI.
func main() {
	if os.Getenv("SSHKEYS_SHOW_VERSION") == "1" {
		logging.Infof("sshkeys version: %s", version)
	}

	if err := cli.Execute(); err != nil {
		logging.Errorf("sshkeys CLI error: %v", err)
		os.Exit(1)
	}
}
