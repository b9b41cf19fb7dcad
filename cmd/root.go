// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AngouNin/Hotwings-MeMe/cmd/admincmd"
	"github.com/AngouNin/Hotwings-MeMe/cmd/configcmd"
	"github.com/AngouNin/Hotwings-MeMe/cmd/databasecmd"
	"github.com/AngouNin/Hotwings-MeMe/cmd/doctorcmd"
	"github.com/AngouNin/Hotwings-MeMe/cmd/exemptcmd"
	"github.com/AngouNin/Hotwings-MeMe/cmd/hookcmd"
	"github.com/AngouNin/Hotwings-MeMe/cmd/snapshotcmd"
	"github.com/AngouNin/Hotwings-MeMe/cmd/tokencmd"
	"github.com/AngouNin/Hotwings-MeMe/cmd/vestingcmd"
	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/AngouNin/Hotwings-MeMe/pkg/config"
	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/prompts"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	luxlog "github.com/luxfi/log"
	"github.com/luxfi/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	app        *application.Hotwings
	logFactory luxlog.Factory

	logLevel       string
	Version        = "0.3.0"
	cfgFile        string
	baseDirFlag    string
	signerFlag     string
	dbTypeFlag     string
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "hotwings",
		Long: `Hotwings CLI - milestone-gated token vesting ledger.

Participants' tokens are locked at registration and released in tiers as the
reported market cap crosses fixed thresholds. Every release is taxed 1.5%,
split between the burn and marketing wallets, and non-exempt recipients are
capped at 50,000,000 tokens. Ninety days after initialization everything
unlocks regardless of market cap.

COMMAND OVERVIEW:

  vesting     Initialize the ledger, register participants, settle releases
  exempt      Manage the anti-whale exemption list
  admin       Authority-only updates (market cap, venue, pool, authority)
  hook        Route token movements through the transfer hook
  token       Inspect and fund token balances
  snapshot    Export, import and prune ledger snapshots
  config      CLI configuration
  database    Ledger database stats, compaction and migration
  doctor      Check the base directory, config and ledger for problems

QUICK START:

  # Initialize the ledger (the signer becomes the authority)
  hotwings vesting init --signer 0x... --mint 0x... --treasury 0x... \
    --burn 0x... --marketing 0x... --venue 0x...

  # Lock tokens for two participants
  hotwings vesting register --entry 0xAAA...:1000000 --entry 0xBBB...:250000

  # Report a market cap and settle everybody
  hotwings vesting settle --market-cap 120000 --all

For detailed command help, use: hotwings <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <base-dir>/cli.json)")
	rootCmd.PersistentFlags().StringVar(&baseDirFlag, "base-dir", "", "data directory (default is $HOME/.hotwings, or $"+constants.EnvBaseDir+")")
	rootCmd.PersistentFlags().StringVar(&signerFlag, "signer", "", "address signing administrative operations (or "+constants.EnvPrefix+"_SIGNER)")
	rootCmd.PersistentFlags().StringVar(&dbTypeFlag, "db-type", "", "database backend: badgerdb or memdb")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Show only errors (quiet mode)")

	// add sub commands
	rootCmd.AddCommand(vestingcmd.NewCmd(app))
	rootCmd.AddCommand(exemptcmd.NewCmd(app))
	rootCmd.AddCommand(admincmd.NewCmd(app))
	rootCmd.AddCommand(hookcmd.NewCmd(app))
	rootCmd.AddCommand(tokencmd.NewCmd(app))
	rootCmd.AddCommand(snapshotcmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))
	rootCmd.AddCommand(databasecmd.NewCmd(app))
	rootCmd.AddCommand(doctorcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	// Adjust log level based on flags BEFORE any logging happens
	if cmd.Flags().Changed("debug") {
		logFactory.SetLogLevel(constants.LogName, luxlog.Level(level.Debug))
		logFactory.SetDisplayLevel(constants.LogName, luxlog.Level(level.Debug))
	} else if cmd.Flags().Changed("verbose") {
		logFactory.SetLogLevel(constants.LogName, luxlog.Level(level.Info))
		logFactory.SetDisplayLevel(constants.LogName, luxlog.Level(level.Info))
	} else if cmd.Flags().Changed("quiet") {
		logFactory.SetLogLevel(constants.LogName, luxlog.Level(level.Error))
		logFactory.SetDisplayLevel(constants.LogName, luxlog.Level(level.Error))
	} else if logLevel != "" {
		level, err := luxlog.ToLevel(logLevel)
		if err == nil {
			logFactory.SetLogLevel(constants.LogName, level)
			logFactory.SetDisplayLevel(constants.LogName, level)
		}
	}

	// If --non-interactive flag is set, propagate to env so IsInteractive() sees it
	if nonInteractive {
		_ = os.Setenv(prompts.EnvNonInteractive, "1")
	}

	// Interactive by default on TTY, non-interactive when:
	// HOTWINGS_NON_INTERACTIVE=1, CI=1, --non-interactive flag, or stdin is piped
	prompter := prompts.NewPrompterForMode(nonInteractive)
	app.Setup(baseDir, log, config.New(), prompter)
	app.Cmd = cmd

	initConfig(baseDir)

	app.SignerOverride = signerFlag
	app.DBTypeOverride = dbTypeFlag
	return nil
}

// setupEnv resolves the base dir: --base-dir, then HOTWINGS_HOME, then
// ~/.hotwings.
func setupEnv() (string, error) {
	baseDir := baseDirFlag
	if baseDir == "" {
		baseDir = os.Getenv(constants.EnvBaseDir)
	}
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// no logger here yet
			fmt.Printf("unable to get home directory %s\n", err)
			return "", err
		}
		baseDir = filepath.Join(home, constants.BaseDirName)
	}

	// Create base dir if it doesn't exist
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}

	// Create snapshots dir if it doesn't exist
	snapshotsDir := filepath.Join(baseDir, constants.SnapshotDir)
	if err := os.MkdirAll(snapshotsDir, 0o750); err != nil {
		fmt.Printf("failed creating the snapshots dir %s: %s\n", snapshotsDir, err)
		return "", err
	}

	return baseDir, nil
}

func setupLogging(baseDir string) (luxlog.Logger, error) {
	config := luxlog.Config{}
	config.LogLevel = luxlog.Level(level.Info)

	// Set default display level to WARN (quiet by default)
	config.DisplayLevel, _ = luxlog.ToLevel("WARN")

	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	// Register ux package as internal so caller tracking shows actual source, not the wrapper
	luxlog.RegisterInternalPackages("github.com/AngouNin/Hotwings-MeMe/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make(constants.LogName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	// Store factory globally so we can adjust levels later
	logFactory = factory
	// create the user facing logger as a global var
	// User output goes to stdout, logs go to stderr
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(baseDir string) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(baseDir)
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName) // cli.json
	}

	// HOTWINGS_DB_TYPE -> db-type, HOTWINGS_SIGNER -> signer, etc.
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		app.Log.Debug("using config file", "config-file", viper.ConfigFileUsed())
	}
	// No config file is normal - most users don't have one, so we silently continue
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
