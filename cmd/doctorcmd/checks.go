// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package doctorcmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/application"
	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/status"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/AngouNin/Hotwings-MeMe/pkg/vesting"
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// CheckStatus represents the result of a single check
type CheckStatus int

const (
	StatusOK CheckStatus = iota
	StatusWarn
	StatusError
)

// CheckResult holds the outcome of a single check
type CheckResult struct {
	Name          string
	Status        CheckStatus
	Message       string
	FixSuggestion string
	CanAutoFix    bool
	AutoFix       func() error
}

// Doctor performs environment checks
type Doctor struct {
	app     *application.Hotwings
	fixMode bool
	results []CheckResult
	output  io.Writer
}

const (
	MinDiskSpaceMB = 512

	// MaxSnapshotAge is how old the newest snapshot may be before a warning.
	MaxSnapshotAge = 7 * 24 * time.Hour
)

// NewDoctor creates a new Doctor instance
func NewDoctor(app *application.Hotwings, fixMode bool) *Doctor {
	return &Doctor{
		app:     app,
		fixMode: fixMode,
		results: make([]CheckResult, 0),
		output:  os.Stdout,
	}
}

// printToUser prints a message to the user (handles nil logger gracefully)
func (d *Doctor) printToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf(msg, args...)
	if ux.Logger != nil && d.output == os.Stdout {
		ux.Logger.PrintToUser("%s", formattedMsg)
	} else {
		fmt.Fprintln(d.output, formattedMsg)
	}
}

// isTerminal reports whether w is a terminal that understands color codes.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (d *Doctor) add(result CheckResult) {
	d.results = append(d.results, result)
}

// Run executes all checks and reports results
func (d *Doctor) Run() error {
	d.printToUser("Hotwings Doctor")
	d.printToUser("===============")

	d.checkBaseDir()
	d.checkDiskSpace()
	d.checkConfig()
	d.checkLedger()
	d.checkSnapshots()

	d.printResults()

	if d.fixMode {
		return d.attemptFixes()
	}

	for _, r := range d.results {
		if r.Status == StatusError {
			return errors.New("ledger check failed: see above for details")
		}
	}
	return nil
}

// checkBaseDir verifies the base directory exists and is writable
func (d *Doctor) checkBaseDir() {
	result := CheckResult{Name: "Base Directory"}
	baseDir := d.app.GetBaseDir()

	info, err := os.Stat(baseDir)
	if os.IsNotExist(err) {
		result.Status = StatusWarn
		result.Message = fmt.Sprintf("base directory not found: %s", baseDir)
		result.FixSuggestion = "Run 'hotwings doctor --fix' or any hotwings command to create it"
		result.CanAutoFix = true
		result.AutoFix = func() error {
			return os.MkdirAll(d.app.GetSnapshotsDir(), constants.DefaultPerms755)
		}
		d.add(result)
		return
	}
	if err != nil {
		result.Status = StatusError
		result.Message = "error checking base directory: " + err.Error()
		d.add(result)
		return
	}
	if !info.IsDir() {
		result.Status = StatusError
		result.Message = fmt.Sprintf("%s exists but is not a directory", baseDir)
		d.add(result)
		return
	}

	testFile := filepath.Join(baseDir, ".doctor_test_"+strconv.FormatInt(time.Now().UnixNano(), 10))
	f, err := os.Create(testFile)
	if err != nil {
		result.Status = StatusError
		result.Message = fmt.Sprintf("base directory not writable: %s", baseDir)
		result.FixSuggestion = "Check directory permissions"
		d.add(result)
		return
	}
	_ = f.Close()
	_ = os.Remove(testFile)

	result.Status = StatusOK
	result.Message = baseDir
	d.add(result)
}

func (d *Doctor) checkDiskSpace() {
	result := CheckResult{Name: "Disk Space"}

	checkPath := d.app.GetBaseDir()
	if _, err := os.Stat(checkPath); err != nil {
		checkPath = filepath.Dir(checkPath)
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(checkPath, &stat); err != nil {
		result.Status = StatusWarn
		result.Message = "unable to check disk space: " + err.Error()
		d.add(result)
		return
	}

	availableMB := stat.Bavail * uint64(stat.Bsize) / (1024 * 1024)
	if availableMB < MinDiskSpaceMB {
		result.Status = StatusWarn
		result.Message = fmt.Sprintf("%d MB available, recommended minimum is %d MB", availableMB, MinDiskSpaceMB)
		result.FixSuggestion = "Free up disk space or point db-dir at a larger volume"
	} else {
		result.Status = StatusOK
		result.Message = fmt.Sprintf("%s MB available", ux.FormatAmount(availableMB))
	}
	d.add(result)
}

// checkConfig validates the persisted configuration values.
func (d *Doctor) checkConfig() {
	result := CheckResult{Name: "Config"}
	conf := d.app.Conf

	if conf == nil || !conf.ConfigFileExists() {
		result.Status = StatusOK
		result.Message = "no config file, using defaults"
		d.add(result)
		return
	}
	if _, err := conf.DBType(); err != nil {
		result.Status = StatusError
		result.Message = err.Error()
		result.FixSuggestion = "Run 'hotwings config set db-type badgerdb'"
		d.add(result)
		return
	}
	if _, err := d.app.Signer(); err != nil {
		result.Status = StatusWarn
		result.Message = err.Error()
		result.FixSuggestion = "Run 'hotwings config set signer <address>'"
		d.add(result)
		return
	}
	result.Status = StatusOK
	result.Message = conf.GetConfigPath()
	d.add(result)
}

// checkLedger opens the configured database and inspects it.
func (d *Doctor) checkLedger() {
	rt, closeDB, err := d.app.OpenLedger()
	if err != nil {
		d.add(CheckResult{
			Name:          "Ledger Database",
			Status:        StatusError,
			Message:       err.Error(),
			FixSuggestion: "Make sure no other hotwings process holds the database",
		})
		return
	}
	defer func() {
		if err := closeDB(); err != nil {
			d.app.Log.Warn("failed to close ledger database", "error", err)
		}
	}()
	d.add(CheckResult{Name: "Ledger Database", Status: StatusOK, Message: d.app.GetDBDir()})
	d.inspectLedger(rt)
}

// inspectLedger checks the ledger contents held by rt.
func (d *Doctor) inspectLedger(rt *ledger.Runtime) {
	g, err := rt.Global()
	if errors.Is(err, vesting.ErrNotInitialized) {
		d.add(CheckResult{
			Name:          "Ledger State",
			Status:        StatusWarn,
			Message:       "ledger not initialized",
			FixSuggestion: "Run 'hotwings vesting init'",
		})
		return
	}
	if err == nil {
		err = g.Validate()
	}
	if err != nil {
		d.add(CheckResult{Name: "Ledger State", Status: StatusError, Message: err.Error()})
		return
	}
	d.add(CheckResult{
		Name:    "Ledger State",
		Status:  StatusOK,
		Message: fmt.Sprintf("milestone %d/%d, market cap %s", g.CurrentMilestone, g.Milestones.Len(), ux.FormatAmount(g.CurrentMarketCap)),
	})

	d.checkParticipants(rt, g)
	d.checkTreasury(rt)
}

func (d *Doctor) checkParticipants(rt *ledger.Runtime, g *vesting.GlobalLedger) {
	result := CheckResult{Name: "Participants"}
	participants, err := rt.Participants()
	if err != nil {
		result.Status = StatusError
		result.Message = err.Error()
		d.add(result)
		return
	}
	if uint64(len(participants)) != g.ParticipantCount {
		result.Status = StatusError
		result.Message = fmt.Sprintf("%d records stored but the ledger counts %d", len(participants), g.ParticipantCount)
		result.FixSuggestion = "Restore the latest snapshot into a fresh base directory"
		d.add(result)
		return
	}
	for _, p := range participants {
		if p.LastMilestone > g.CurrentMilestone && !g.FullUnlockReached {
			result.Status = StatusError
			result.Message = fmt.Sprintf("%s settled tier %d beyond the ledger tier %d", p.Wallet.Hex(), p.LastMilestone, g.CurrentMilestone)
			d.add(result)
			return
		}
	}
	result.Status = StatusOK
	result.Message = fmt.Sprintf("%d of %d", len(participants), constants.MaxParticipants)
	d.add(result)
}

func (d *Doctor) checkTreasury(rt *ledger.Runtime) {
	result := CheckResult{Name: "Treasury Coverage"}
	report, err := status.Collect(rt, nil, time.Now())
	if err != nil {
		result.Status = StatusError
		result.Message = err.Error()
		d.add(result)
		return
	}
	if report.Totals.Shortfall > 0 {
		result.Status = StatusWarn
		result.Message = fmt.Sprintf("treasury holds %s but %s is locked",
			ux.FormatAmount(report.Totals.TreasuryBalance), ux.FormatAmount(report.Totals.Locked))
		result.FixSuggestion = fmt.Sprintf("Fund the treasury with at least %s more tokens", ux.FormatAmount(report.Totals.Shortfall))
		d.add(result)
		return
	}
	result.Status = StatusOK
	result.Message = fmt.Sprintf("%s locked, %s in treasury",
		ux.FormatAmount(report.Totals.Locked), ux.FormatAmount(report.Totals.TreasuryBalance))
	d.add(result)
}

func (d *Doctor) checkSnapshots() {
	result := CheckResult{Name: "Snapshots"}
	latest, err := d.app.SnapshotManager().Latest()
	if err != nil {
		result.Status = StatusWarn
		result.Message = err.Error()
		result.FixSuggestion = "Run 'hotwings snapshot --name <name>'"
		d.add(result)
		return
	}
	createdAt, err := latest.Manifest.Created()
	if err != nil {
		result.Status = StatusWarn
		result.Message = fmt.Sprintf("snapshot %s: %v", latest.Name, err)
		d.add(result)
		return
	}
	age := time.Since(createdAt)
	if age > MaxSnapshotAge {
		result.Status = StatusWarn
		result.Message = fmt.Sprintf("latest snapshot %s is %s old", latest.Name, age.Round(time.Hour))
		result.FixSuggestion = "Run 'hotwings snapshot --name <name>'"
		d.add(result)
		return
	}
	result.Status = StatusOK
	result.Message = fmt.Sprintf("latest %s", latest.Name)
	d.add(result)
}

// printResults displays all check results with color coding
func (d *Doctor) printResults() {
	d.printToUser("")

	okCount, warnCount, errorCount := 0, 0, 0
	color := isTerminal(d.output)

	for _, r := range d.results {
		var statusIcon, statusColor string
		switch r.Status {
		case StatusOK:
			statusIcon = "[OK]"
			statusColor = "\033[32m"
			okCount++
		case StatusWarn:
			statusIcon = "[WARN]"
			statusColor = "\033[33m"
			warnCount++
		case StatusError:
			statusIcon = "[ERROR]"
			statusColor = "\033[31m"
			errorCount++
		}
		resetColor := "\033[0m"
		if !color {
			statusColor, resetColor = "", ""
		}

		d.printToUser("%s%s%s %s: %s", statusColor, statusIcon, resetColor, r.Name, r.Message)

		if r.FixSuggestion != "" && r.Status != StatusOK {
			d.printToUser("      Fix: %s", r.FixSuggestion)
		}
	}

	d.printToUser("")
	d.printToUser("Summary: %d OK, %d warnings, %d errors", okCount, warnCount, errorCount)

	canFix := 0
	for _, r := range d.results {
		if r.CanAutoFix && r.Status != StatusOK {
			canFix++
		}
	}
	if canFix > 0 && !d.fixMode {
		d.printToUser("")
		d.printToUser("Run 'hotwings doctor --fix' to attempt automatic fixes for %d issue(s)", canFix)
	}
}

// attemptFixes tries to automatically fix issues that support it
func (d *Doctor) attemptFixes() error {
	d.printToUser("")
	d.printToUser("Attempting automatic fixes...")

	fixedCount, failedCount := 0, 0
	for _, r := range d.results {
		if r.Status == StatusOK || !r.CanAutoFix {
			continue
		}

		d.printToUser("Fixing: %s", r.Name)
		if err := r.AutoFix(); err != nil {
			d.printToUser("  Failed: %s", err.Error())
			failedCount++
		} else {
			d.printToUser("  Fixed")
			fixedCount++
		}
	}

	d.printToUser("")
	d.printToUser("Fixed %d issue(s), %d failed", fixedCount, failedCount)

	if failedCount > 0 {
		return fmt.Errorf("%d fix(es) failed", failedCount)
	}
	return nil
}
