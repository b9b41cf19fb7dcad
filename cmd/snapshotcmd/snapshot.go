// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshotcmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/prompts"
	"github.com/AngouNin/Hotwings-MeMe/pkg/snapshot"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/spf13/cobra"
)

var app *application.Hotwings

// NewCmd creates the top-level snapshot command
func NewCmd(injectedApp *application.Hotwings) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Create and manage ledger snapshots",
		Long: `The snapshot command exports the whole ledger (global state, participants
and token balances) as zstd compressed JSON with a checksummed manifest.

USAGE:

  # Create a named snapshot under <base-dir>/snapshots
  hotwings snapshot --name before-launch

  # Export to / import from an arbitrary directory
  hotwings snapshot export ./backup
  hotwings snapshot import ./backup

  # Restore a named snapshot (or the latest one) into an empty ledger
  hotwings snapshot restore before-launch
  hotwings snapshot restore

  # List available snapshots
  hotwings snapshot list

  # Delete a named snapshot
  hotwings snapshot delete before-launch --force

Imports only succeed into an empty ledger. Point --base-dir (or --db-type
memdb) at a fresh location to restore next to an existing ledger.`,
		Args: cobra.NoArgs,
		RunE: createSnapshot,
	}

	// Subcommands
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newRestoreCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newDeleteCmd())

	cmd.Flags().StringVar(&snapshotName, "name", "", "snapshot name (default: ledger-<timestamp>)")

	return cmd
}

var snapshotName string

func createSnapshot(_ *cobra.Command, _ []string) error {
	if snapshotName == "" {
		snapshotName = "ledger-" + time.Now().UTC().Format("20060102-150405")
	}
	sm := app.SnapshotManager()

	ux.Logger.PrintToUser("Creating snapshot: %s", snapshotName)
	return app.WithLedger(func(rt *ledger.Runtime) error {
		manifest, err := sm.Create(snapshotName, rt)
		if err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}
		printManifest(sm.Dir(snapshotName), manifest)
		return nil
	})
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Export the ledger to a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.WithLedger(func(rt *ledger.Runtime) error {
				manifest, err := snapshot.Export(rt, args[0])
				if err != nil {
					return fmt.Errorf("failed to export ledger: %w", err)
				}
				printManifest(args[0], manifest)
				return nil
			})
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <dir>",
		Short: "Import an exported ledger into an empty ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return restoreFrom(args[0])
		},
	}
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [name]",
		Short: "Restore a named snapshot, or the latest one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sm := app.SnapshotManager()
			if len(args) == 1 {
				return restoreFrom(sm.Dir(args[0]))
			}
			latest, err := sm.Latest()
			if err != nil {
				return err
			}
			ux.Logger.PrintToUser("Restoring latest snapshot: %s", latest.Name)
			return restoreFrom(latest.Dir)
		},
	}
}

func restoreFrom(dir string) error {
	return app.WithLedger(func(rt *ledger.Runtime) error {
		manifest, err := snapshot.Import(dir, rt)
		if errors.Is(err, ledger.ErrLedgerNotEmpty) {
			return fmt.Errorf("%w: restore into a fresh --base-dir", err)
		}
		if err != nil {
			return fmt.Errorf("failed to restore snapshot: %w", err)
		}
		ux.Logger.GreenCheckmarkToUser("Restored %d participants and %d balances at milestone %d",
			manifest.Participants, manifest.Balances, manifest.Milestone)
		return nil
	})
}

func printManifest(dir string, manifest *snapshot.Manifest) {
	ux.Logger.PrintToUser("Snapshot created successfully:")
	ux.Logger.PrintToUser("  Path:         %s", dir)
	ux.Logger.PrintToUser("  Size:         %s", snapshot.FormatBytes(manifest.Data.Bytes))
	ux.Logger.PrintToUser("  Participants: %d", manifest.Participants)
	ux.Logger.PrintToUser("  Balances:     %d", manifest.Balances)
	ux.Logger.PrintToUser("  Market cap:   %s", ux.FormatAmount(manifest.MarketCap))
	ux.Logger.PrintToUser("  SHA256:       %s", manifest.Data.SHA256)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available snapshots",
		Args:  cobra.NoArgs,
		RunE:  listSnapshots,
	}
}

func listSnapshots(_ *cobra.Command, _ []string) error {
	snapshots, err := app.SnapshotManager().List()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		ux.Logger.PrintToUser("No snapshots found.")
		ux.Logger.PrintToUser("Create one with: hotwings snapshot")
		return nil
	}

	table := ux.NewTable(ux.Logger.Writer(), "Name", "Size", "Participants", "Milestone", "Created")
	for _, s := range snapshots {
		_ = table.Append([]string{
			s.Name,
			snapshot.FormatBytes(s.Manifest.Data.Bytes),
			fmt.Sprintf("%d", s.Manifest.Participants),
			fmt.Sprintf("%d", s.Manifest.Milestone),
			s.Manifest.CreatedAt,
		})
	}
	return table.Render()
}

func newCleanCmd() *cobra.Command {
	var (
		dryRun   bool
		keepLast int
		maxAge   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove old snapshots",
		Long: `Remove snapshots beyond the newest --keep that are older than --max-age.

EXAMPLES:

  # Preview what would be cleaned
  hotwings snapshot clean --dry-run

  # Keep only the last 3 snapshots, whatever their age
  hotwings snapshot clean --keep 3 --max-age 0`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := snapshot.DefaultCleanupConfig()
			cfg.DryRun = dryRun
			cfg.KeepLatest = keepLast
			cfg.MaxAge = maxAge
			cfg.Verbose = true

			if dryRun {
				ux.Logger.PrintToUser("Dry run - showing what would be cleaned:")
			}

			result := app.SnapshotManager().Cleanup(cfg)

			if len(result.Deleted) > 0 {
				ux.Logger.PrintToUser("")
				if dryRun {
					ux.Logger.PrintToUser("Would free: %s (%d snapshots)", snapshot.FormatBytes(result.BytesFreed), len(result.Deleted))
				} else {
					ux.Logger.PrintToUser("Freed: %s (%d snapshots)", snapshot.FormatBytes(result.BytesFreed), len(result.Deleted))
				}
			} else {
				ux.Logger.PrintToUser("Nothing to clean.")
			}

			for _, err := range result.Errors {
				ux.Logger.PrintToUser("Warning: %v", err)
			}

			return nil
		},
	}

	defaults := snapshot.DefaultCleanupConfig()
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be cleaned without deleting")
	cmd.Flags().IntVar(&keepLast, "keep", defaults.KeepLatest, "number of recent snapshots to keep")
	cmd.Flags().DurationVar(&maxAge, "max-age", defaults.MaxAge, "only remove snapshots older than this")

	return cmd
}

func newDeleteCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a named snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := args[0]
			if !force {
				yes, err := app.Prompt.CaptureNoYes(fmt.Sprintf("Delete snapshot %s?", name))
				if errors.Is(err, prompts.ErrNonInteractive) {
					return fmt.Errorf("refusing to delete snapshot %s without --force in non-interactive mode", name)
				}
				if err != nil {
					return err
				}
				if !yes {
					ux.Logger.PrintToUser("Aborted.")
					return nil
				}
			}
			if err := app.SnapshotManager().Remove(name); err != nil {
				return err
			}
			ux.Logger.GreenCheckmarkToUser("Deleted snapshot %s", name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without asking for confirmation")
	return cmd
}
