// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"github.com/AngouNin/Hotwings-MeMe/pkg/config"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List effective configuration values",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(_ *cobra.Command, _ []string) error {
	if path := app.Conf.GetConfigPath(); path != "" {
		ux.Logger.PrintToUser("Config file: %s", path)
	} else {
		ux.Logger.PrintToUser("Config file: (none)")
	}
	table := ux.NewTable(ux.Logger.Writer(), "Key", "Value")
	for _, key := range config.SettableKeys() {
		value, err := effectiveValue(key)
		if err != nil {
			value = "invalid: " + err.Error()
		}
		_ = table.Append([]string{key, value})
	}
	return table.Render()
}
