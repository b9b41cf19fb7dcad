// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/luxfi/geth/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) (*Config, string) {
	t.Helper()
	dir := t.TempDir()
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(constants.DefaultConfigFileName)
	v.SetConfigType(constants.DefaultConfigFileType)
	return NewWithViper(v), dir
}

func TestDefaults(t *testing.T) {
	require := require.New(t)
	c, _ := newTestConfig(t)

	dbType, err := c.DBType()
	require.NoError(err)
	require.Equal(constants.DefaultDBType, dbType)
	require.Empty(c.DBDir())

	signer, err := c.Signer()
	require.NoError(err)
	require.Equal(common.Address{}, signer)
	require.False(c.ConfigFileExists())
}

func TestSetConfigValuePersists(t *testing.T) {
	require := require.New(t)
	c, dir := newTestConfig(t)

	require.NoError(c.SetConfigValue(constants.ConfigDBTypeKey, "memdb"))
	require.NoError(c.SetConfigValue(constants.ConfigSignerKey, "0x00000000000000000000000000000000000000a1"))

	path := filepath.Join(dir, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
	_, err := os.Stat(path)
	require.NoError(err)
	require.True(c.ConfigFileExists())
	require.Equal(path, c.GetConfigPath())

	reloaded := viper.New()
	reloaded.SetConfigFile(path)
	require.NoError(reloaded.ReadInConfig())
	fresh := NewWithViper(reloaded)

	dbType, err := fresh.DBType()
	require.NoError(err)
	require.Equal(constants.MemDB, dbType)
	signer, err := fresh.Signer()
	require.NoError(err)
	require.Equal(common.HexToAddress("0xa1"), signer)
	require.Len(fresh.Values(), 2)
}

func TestSetConfigValueRejects(t *testing.T) {
	require := require.New(t)
	c, _ := newTestConfig(t)

	require.ErrorContains(c.SetConfigValue("metrics", "on"), "unknown config key")
	require.ErrorIs(c.SetConfigValue(constants.ConfigDBTypeKey, "leveldb"), constants.ErrUnknownDBType)
	require.ErrorIs(c.SetConfigValue(constants.ConfigSignerKey, "0x0"), constants.ErrInvalidAddress)
	require.ErrorIs(c.SetConfigValue(constants.ConfigSignerKey, "0x0000000000000000000000000000000000000000"), constants.ErrInvalidAddress)
	require.Empty(c.Values())
}

func TestParseDBType(t *testing.T) {
	got, err := ParseDBType(" BadgerDB ")
	require.NoError(t, err)
	require.Equal(t, constants.BadgerDB, got)
}
