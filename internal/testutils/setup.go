// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"io"
	"testing"

	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/AngouNin/Hotwings-MeMe/pkg/config"
	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/prompts"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(luxlog.NewNoOpLogger(), io.Discard)
	return require.New(t)
}

// SetupTestInTempDir returns an app rooted in a fresh temp dir with its own
// viper instance and a badger ledger, so state survives between commands of
// one test. Prompting is disabled unless the caller swaps app.Prompt.
func SetupTestInTempDir(t *testing.T) *application.Hotwings {
	testDir := t.TempDir()

	v := viper.New()
	v.AddConfigPath(testDir)
	v.SetConfigName(constants.DefaultConfigFileName)
	v.SetConfigType(constants.DefaultConfigFileType)

	app := application.New()
	app.Setup(testDir, luxlog.NewNoOpLogger(), config.NewWithViper(v), prompts.NewNonInteractivePrompter())
	ux.NewUserLog(luxlog.NewNoOpLogger(), io.Discard)
	return app
}
