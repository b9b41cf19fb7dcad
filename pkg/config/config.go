// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/luxfi/geth/common"
	"github.com/spf13/viper"
)

// Keys that 'hotwings config set' accepts.
var settableKeys = map[string]struct{}{
	constants.ConfigDBTypeKey: {},
	constants.ConfigDBDirKey:  {},
	constants.ConfigSignerKey: {},
}

type Config struct {
	v *viper.Viper
}

// New wraps the global viper instance that cmd/root.go populates.
func New() *Config {
	return &Config{v: viper.GetViper()}
}

// NewWithViper is used by tests that need an isolated config.
func NewWithViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

func (c *Config) ConfigValueIsSet(key string) bool {
	return c.v.IsSet(key)
}

func (c *Config) ConfigFileExists() bool {
	return c.v.ConfigFileUsed() != ""
}

// SetConfigValue validates and persists a single key.
func (c *Config) SetConfigValue(key string, value string) error {
	if _, ok := settableKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q, valid keys: %s", key, strings.Join(SettableKeys(), ", "))
	}
	switch key {
	case constants.ConfigDBTypeKey:
		if _, err := ParseDBType(value); err != nil {
			return err
		}
	case constants.ConfigSignerKey:
		if _, err := ParseAddress(value); err != nil {
			return err
		}
	}
	c.v.Set(key, value)
	if c.v.ConfigFileUsed() == "" {
		if err := c.v.SafeWriteConfig(); err != nil {
			return err
		}
		// pick up the file just written so later writes update it
		return c.v.ReadInConfig()
	}
	return c.v.WriteConfig()
}

// GetConfigPath returns the path to the configuration file
func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

// Values returns the settable keys that currently have a value.
func (c *Config) Values() map[string]string {
	out := make(map[string]string)
	for _, key := range SettableKeys() {
		if c.v.IsSet(key) {
			out[key] = c.v.GetString(key)
		}
	}
	return out
}

func (c *Config) DBType() (string, error) {
	if !c.v.IsSet(constants.ConfigDBTypeKey) {
		return constants.DefaultDBType, nil
	}
	return ParseDBType(c.v.GetString(constants.ConfigDBTypeKey))
}

// DBDir returns the configured database directory, or "" for the default.
func (c *Config) DBDir() string {
	return c.v.GetString(constants.ConfigDBDirKey)
}

// Signer returns the configured signer identity, or the zero address.
func (c *Config) Signer() (common.Address, error) {
	raw := c.v.GetString(constants.ConfigSignerKey)
	if raw == "" {
		return common.Address{}, nil
	}
	return ParseAddress(raw)
}

func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func ParseDBType(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case constants.BadgerDB:
		return constants.BadgerDB, nil
	case constants.MemDB:
		return constants.MemDB, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrUnknownDBType, s)
	}
}

// ParseAddress accepts a 0x-prefixed hex address and rejects the zero address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", constants.ErrInvalidAddress, s)
	}
	addr := common.HexToAddress(s)
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: zero address", constants.ErrInvalidAddress)
	}
	return addr, nil
}
