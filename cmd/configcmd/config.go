// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Hotwings

func NewCmd(injectedApp *application.Hotwings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for Hotwings CLI",
		Long: `Customize configuration for Hotwings CLI.

Settings live in <base-dir>/cli.json and can be overridden per invocation by
flags or HOTWINGS_* environment variables.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
