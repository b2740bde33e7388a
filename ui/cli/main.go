// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the sshkeys command-line interface: inspection and
// conversion commands over the key codec in core/sshkey.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/toeirei/sshkeys/config"
	"github.com/toeirei/sshkeys/core/sshkey"
	"github.com/toeirei/sshkeys/internal/logging"
)

var configFile string

// rootCmd is the top-level sshkeys command.
var rootCmd = &cobra.Command{
	Use:   "sshkeys",
	Short: "Inspect and convert OpenSSH elliptic-curve keys",
	Long: `sshkeys converts between OpenSSH key representations:
  - authorized_keys public lines and raw SSH-packed blobs
  - openssh-key-v1 private key containers (optionally encrypted)

Supported key types: ecdsa-sha2-nistp256, ecdsa-sha2-nistp384,
ecdsa-sha2-nistp521 and ssh-ed25519.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Bind only the root flags; subcommand flags like --comment override
		// per call, not through the config layer.
		cfg, err := config.Load(cmd.Root(), &configFile)
		if err != nil {
			return err
		}
		logging.SetDebug(cfg.Debug)
		sshkey.SetDefaultComment(cfg.Comment)
		sshkey.SetDefaultBinary(cfg.Binary)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to an explicit config file")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(publicCmd)
	rootCmd.AddCommand(configCmd)
}
