// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/config"
	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/luxfi/geth/common"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get a configuration value, showing the effective value after merging
the config file, environment and defaults.

Keys:
  db-type   Database backend (badgerdb, memdb)
  db-dir    Database directory (default <base-dir>/db)
  signer    Default signer address for administrative operations

Examples:
  hotwings config get db-type
  hotwings config get signer`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}
}

func runGet(_ *cobra.Command, args []string) error {
	key := args[0]
	value, err := effectiveValue(key)
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("%s = %s", key, value)
	return nil
}

func effectiveValue(key string) (string, error) {
	switch key {
	case constants.ConfigDBTypeKey:
		return app.Conf.DBType()
	case constants.ConfigDBDirKey:
		return app.GetDBDir(), nil
	case constants.ConfigSignerKey:
		signer, err := app.Conf.Signer()
		if err != nil {
			return "", err
		}
		if signer == (common.Address{}) {
			return "(unset)", nil
		}
		return signer.Hex(), nil
	default:
		return "", fmt.Errorf("unknown config key %q, valid keys: %v", key, config.SettableKeys())
	}
}
