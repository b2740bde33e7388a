// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/sshkeys/config"
)

// configCmd groups configuration management commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the sshkeys configuration",
}

// configShowCmd prints the effective configuration as YAML.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Root(), &configFile)
		if err != nil {
			return err
		}
		out, err := config.Render(&cfg)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

// configInitCmd writes the current effective configuration to disk.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the configuration file with current values",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Root(), &configFile)
		if err != nil {
			return err
		}
		system, _ := cmd.Flags().GetBool("system")
		if err := config.Write(&cfg, system); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("system", false, "write the system-wide config instead of the user config")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
