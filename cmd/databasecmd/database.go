// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package databasecmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/snapshot"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/luxfi/database"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var app *application.Hotwings

// NewCmd returns the database command
func NewCmd(injectedApp *application.Hotwings) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "database",
		Short: "Inspect, compact and move the ledger database",
		Long: `The database command works on the raw ledger database selected by
--db-type and the db-dir config key.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		Args: cobra.NoArgs,
	}

	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newCompactCmd())
	cmd.AddCommand(newMigrateCmd())

	return cmd
}

func withDatabase(fn func(db database.Database) error) error {
	db, err := app.OpenDatabase()
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			app.Log.Warn("failed to close ledger database", "error", err)
		}
	}()
	return fn(db)
}

// newStatsCmd creates the stats subcommand
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show record counts per ledger keyspace",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withDatabase(func(db database.Database) error {
				stats, err := ledger.Stats(db)
				if err != nil {
					return err
				}
				table := ux.NewTable(ux.Logger.Writer(), "Keyspace", "Records", "Size")
				for _, s := range stats {
					_ = table.Append([]string{s.Name, fmt.Sprintf("%d", s.Keys), snapshot.FormatBytes(s.Bytes)})
				}
				if err := table.Render(); err != nil {
					return err
				}
				if dbType, _ := app.DBType(); dbType == constants.BadgerDB {
					ux.Logger.PrintToUser("On disk: %s (%s)", snapshot.FormatBytes(snapshot.DirSize(app.GetDBDir())), app.GetDBDir())
				}
				return nil
			})
		},
	}
}

// newCompactCmd creates the compact subcommand
func newCompactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compact",
		Short: "Compact the database to reclaim space",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			before := snapshot.DirSize(app.GetDBDir())
			err := withDatabase(func(db database.Database) error {
				return db.Compact(nil, nil)
			})
			if err != nil {
				return fmt.Errorf("compaction failed: %w", err)
			}
			after := snapshot.DirSize(app.GetDBDir())
			ux.Logger.GreenCheckmarkToUser("Compacted %s: %s -> %s", app.GetDBDir(), snapshot.FormatBytes(before), snapshot.FormatBytes(after))
			return nil
		},
	}
}

// newMigrateCmd creates the migrate subcommand
func newMigrateCmd() *cobra.Command {
	var (
		target     string
		batchSize  int
		skipVerify bool
		useTarget  bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy the ledger database into a new directory",
		Long: `Copy every record of the current ledger database into a fresh badger
database at --target and verify the copy. With --use the db-dir config key is
pointed at the new location afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			abs, err := filepath.Abs(target)
			if err != nil {
				return err
			}
			if abs == filepath.Clean(app.GetDBDir()) {
				return fmt.Errorf("target %s is the current database", abs)
			}
			if entries, err := os.ReadDir(abs); err == nil && len(entries) > 0 {
				return fmt.Errorf("target %s is not empty", abs)
			}
			err = withDatabase(func(src database.Database) error {
				return migrate(src, abs, batchSize, skipVerify)
			})
			if err != nil {
				return err
			}
			if useTarget {
				if err := app.Conf.SetConfigValue(constants.ConfigDBDirKey, abs); err != nil {
					return err
				}
				ux.Logger.PrintToUser("db-dir now points at %s", abs)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&target, "target", "", "directory for the new badger database")
	cmd.Flags().IntVar(&batchSize, "batch-size", 10000, "records per write batch")
	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "skip verification after migration")
	cmd.Flags().BoolVar(&useTarget, "use", false, "set db-dir to the target once the copy is verified")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func migrate(src database.Database, target string, batchSize int, skipVerify bool) error {
	dst, err := application.OpenBadger(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	stats, err := ledger.Stats(src)
	if err != nil {
		return err
	}
	total := 0
	for _, s := range stats {
		total += s.Keys
	}

	ux.Logger.PrintToUser("Copying %d records into %s...", total, target)
	bar := newProgressBar("copying", total)
	copied, err := ledger.Copy(src, dst, batchSize, func(n int) {
		if bar != nil {
			_ = bar.Add(n)
		}
	})
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("migration failed after %d records: %w", copied, err)
	}
	if !skipVerify {
		if _, err := ledger.Verify(src, dst); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
	}
	ux.Logger.GreenCheckmarkToUser("Migrated %d records", copied)
	return nil
}

// newProgressBar returns nil unless stderr is a terminal.
func newProgressBar(task string, total int) *progressbar.ProgressBar {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}
	return progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", task)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
