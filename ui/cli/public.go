// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toeirei/sshkeys/core/sshkey"
)

// publicCmd derives the public representation from a private key file.
var publicCmd = &cobra.Command{
	Use:   "public <private-key-file>",
	Short: "Emit the authorized_keys line for a private key",
	Long: `Read an openssh-key-v1 private key and write its public key to stdout.
By default this is the authorized_keys text line; --binary writes the raw
SSH-packed blob instead. The comment comes from the stored key, overridable
with --comment.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		key, err := loadPrivate(cmd, data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		opts := &sshkey.SaveOptions{}
		opts.Comment, _ = cmd.Flags().GetString("comment")
		opts.Binary, _ = cmd.Flags().GetBool("binary")

		out, err := key.SavePublicKey(opts)
		if err != nil {
			return err
		}
		if opts.Binary {
			_, err = os.Stdout.Write(out)
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	publicCmd.Flags().String("comment", "", "comment for the public key line")
	publicCmd.Flags().Bool("binary", false, "write the raw SSH-packed blob")
	publicCmd.Flags().String("passphrase-file", "", "file containing the private key passphrase")
}
