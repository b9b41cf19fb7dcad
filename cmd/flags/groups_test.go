// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flags

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlagGroup(t *testing.T) {
	require := require.New(t)
	var mint, admin string
	root := &cobra.Command{Use: "hotwings"}
	root.PersistentFlags().String("signer", "", "caller identity")
	cmd := &cobra.Command{Use: "init", RunE: func(*cobra.Command, []string) error { return nil }}
	root.AddCommand(cmd)

	group := RegisterFlagGroup(cmd, "Ledger Accounts", func(set *pflag.FlagSet) {
		set.StringVar(&mint, "mint", "", "token mint address")
	})
	cmd.Flags().StringVar(&admin, "admin", "", "admin authority")
	WithGroupedUsage(cmd, group)

	root.SetArgs([]string{"init", "--mint", "0xb1", "--admin", "0xa1"})
	require.NoError(root.Execute())
	require.Equal("0xb1", mint)
	require.Equal("0xa1", admin)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	require.NoError(cmd.Usage())
	out := buf.String()
	accounts := strings.Index(out, "Ledger Accounts:")
	rest := strings.Index(out, "\nFlags:")
	require.Positive(accounts)
	require.Greater(rest, accounts)
	require.Contains(out[accounts:rest], "--mint")
	require.NotContains(out[accounts:rest], "--admin")
	require.Contains(out[rest:], "--admin")
	require.Contains(out, "Global Flags:")
	require.Contains(out, "--signer")
}
