// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in <base-dir>/cli.json.

Examples:
  hotwings config set db-type memdb
  hotwings config set signer 0x00000000000000000000000000000000000000a1`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
}

func runSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := app.Conf.SetConfigValue(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	ux.Logger.GreenCheckmarkToUser("Set %s = %s", key, value)
	return nil
}
