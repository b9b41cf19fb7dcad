// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flags

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GroupedFlags is a named subset of a command's local flags.
type GroupedFlags struct {
	Name  string
	Flags *pflag.FlagSet
}

// RegisterFlagGroup declares the flags added by fn on cmd and remembers them
// as a group so help output can list them under their own heading.
func RegisterFlagGroup(cmd *cobra.Command, name string, fn func(set *pflag.FlagSet)) GroupedFlags {
	set := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fn(set)
	cmd.Flags().AddFlagSet(set)
	return GroupedFlags{Name: name, Flags: set}
}

// WithGroupedUsage replaces cmd's usage output so that each group is printed
// under its name, followed by the ungrouped local flags and the global ones.
func WithGroupedUsage(cmd *cobra.Command, groups ...GroupedFlags) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		out := c.OutOrStderr()
		fmt.Fprintf(out, "Usage:\n  %s\n", c.UseLine())

		grouped := make(map[string]bool)
		for _, g := range groups {
			fmt.Fprintf(out, "\n%s:\n%s", g.Name, g.Flags.FlagUsages())
			g.Flags.VisitAll(func(f *pflag.Flag) {
				grouped[f.Name] = true
			})
		}

		rest := pflag.NewFlagSet("flags", pflag.ContinueOnError)
		c.LocalFlags().VisitAll(func(f *pflag.Flag) {
			if !grouped[f.Name] {
				rest.AddFlag(f)
			}
		})
		if rest.HasAvailableFlags() {
			fmt.Fprintf(out, "\nFlags:\n%s", rest.FlagUsages())
		}
		if c.HasAvailableInheritedFlags() {
			fmt.Fprintf(out, "\nGlobal Flags:\n%s", c.InheritedFlags().FlagUsages())
		}
		return nil
	})
}
