// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toeirei/sshkeys/core/crypto/openssh"
	"github.com/toeirei/sshkeys/core/security"
	"github.com/toeirei/sshkeys/core/sshkey"
	"github.com/toeirei/sshkeys/internal/logging"
)

// inspectCmd prints the identity of a public or private key file.
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show type, curve, comment and fingerprint of a key file",
	Long: `Inspect a key file in any supported representation: an authorized_keys
line, a raw SSH-packed public blob, or an openssh-key-v1 private key.
Encrypted private keys prompt for a passphrase unless --passphrase-file
is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var key *sshkey.Key
		if openssh.IsPrivateKey(data) {
			key, err = loadPrivate(cmd, data)
		} else {
			key, err = sshkey.ParsePublicKey(data)
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		keyType, err := key.Type()
		if err != nil {
			return err
		}
		fingerprint, err := key.Fingerprint()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Type:\t%s\n", keyType)
		fmt.Fprintf(w, "Curve:\t%s\n", key.Curve.Name())
		fmt.Fprintf(w, "Private:\t%v\n", key.IsPrivate())
		if key.Comment != "" {
			fmt.Fprintf(w, "Comment:\t%s\n", key.Comment)
		}
		fmt.Fprintf(w, "Fingerprint:\t%s\n", fingerprint)
		return w.Flush()
	},
}

// loadPrivate opens a private container, asking for a passphrase only when
// the container actually needs one.
func loadPrivate(cmd *cobra.Command, data []byte) (*sshkey.Key, error) {
	key, err := sshkey.ParsePrivateKey(data, nil)
	if err == nil || !errors.Is(err, openssh.ErrPassphraseRequired) {
		return key, err
	}

	passphrase, err := readPassphrase(cmd)
	if err != nil {
		return nil, err
	}
	defer passphrase.Zero()
	return sshkey.ParsePrivateKey(data, passphrase.Bytes())
}

// readPassphrase reads the passphrase from --passphrase-file when set,
// otherwise prompts on the terminal.
func readPassphrase(cmd *cobra.Command) (security.Secret, error) {
	if file, _ := cmd.Flags().GetString("passphrase-file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase file: %w", err)
		}
		// Strip a single trailing newline, the way ssh-keygen does.
		if n := len(data); n > 0 && data[n-1] == '\n' {
			data = data[:n-1]
		}
		return security.Secret(data), nil
	}

	fmt.Fprint(os.Stderr, "Enter passphrase: ")
	passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	logging.Debugf("read %d-byte passphrase from terminal", len(passphrase))
	return security.Secret(passphrase), nil
}

func init() {
	inspectCmd.Flags().String("passphrase-file", "", "file containing the private key passphrase")
}
