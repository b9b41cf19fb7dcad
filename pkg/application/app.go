// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/config"
	"github.com/AngouNin/Hotwings-MeMe/pkg/constants"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ledger"
	"github.com/AngouNin/Hotwings-MeMe/pkg/prompts"
	"github.com/AngouNin/Hotwings-MeMe/pkg/safety"
	"github.com/AngouNin/Hotwings-MeMe/pkg/snapshot"
	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"github.com/luxfi/database"
	"github.com/luxfi/database/badgerdb"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

type Hotwings struct {
	Log     luxlog.Logger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
	Cmd     interface{} // Current command being executed (cobra.Command)

	// SignerOverride is set from --signer and wins over the config file.
	SignerOverride string
	// DBTypeOverride is set from --db-type and wins over the config file.
	DBTypeOverride string
}

func New() *Hotwings {
	return &Hotwings{}
}

func (app *Hotwings) Setup(baseDir string, log luxlog.Logger, conf *config.Config, prompt prompts.Prompter) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
}

func (app *Hotwings) GetBaseDir() string {
	return app.baseDir
}

func (app *Hotwings) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Hotwings) GetSnapshotsDir() string {
	return filepath.Join(app.baseDir, constants.SnapshotDir)
}

// GetDBDir returns the configured database directory, defaulting to
// <base-dir>/db.
func (app *Hotwings) GetDBDir() string {
	if app.Conf != nil {
		if dir := app.Conf.DBDir(); dir != "" {
			return dir
		}
	}
	return filepath.Join(app.baseDir, constants.DBDir)
}

func (app *Hotwings) GetLastActionsPath() string {
	return filepath.Join(app.baseDir, constants.LastActionsFileName)
}

// SafetyPolicy protects the ledger database, wherever db-dir points, along
// with the config files.
func (app *Hotwings) SafetyPolicy() safety.Policy {
	policy := safety.DefaultPolicy(app.baseDir)
	policy.DenyPrefixes = append(policy.DenyPrefixes, app.GetDBDir())
	return policy
}

func (app *Hotwings) SnapshotManager() *snapshot.Manager {
	return snapshot.NewManager(app.GetSnapshotsDir()).WithPolicy(app.SafetyPolicy())
}

// DBType resolves the backend: flag, then config file, then the default.
func (app *Hotwings) DBType() (string, error) {
	if app.DBTypeOverride != "" {
		return config.ParseDBType(app.DBTypeOverride)
	}
	if app.Conf == nil {
		return constants.DefaultDBType, nil
	}
	return app.Conf.DBType()
}

// Signer resolves the caller identity used for administrative operations.
func (app *Hotwings) Signer() (common.Address, error) {
	if app.SignerOverride != "" {
		return config.ParseAddress(app.SignerOverride)
	}
	if app.Conf != nil {
		signer, err := app.Conf.Signer()
		if err != nil {
			return common.Address{}, err
		}
		if signer != (common.Address{}) {
			return signer, nil
		}
	}
	return common.Address{}, constants.ErrNoSigner
}

// OpenDatabase opens the configured backend. The caller closes it.
func (app *Hotwings) OpenDatabase() (database.Database, error) {
	dbType, err := app.DBType()
	if err != nil {
		return nil, err
	}

	var db database.Database
	switch dbType {
	case constants.MemDB:
		app.Log.Warn("using in-memory database, nothing will be persisted")
		db = memdb.New()
	default:
		dir := app.GetDBDir()
		db, err = OpenBadger(dir)
		if err != nil {
			return nil, err
		}
	}
	app.Log.Debug("opened ledger database", zap.String("type", dbType), zap.String("dir", app.GetDBDir()))
	return db, nil
}

// OpenBadger opens (creating if needed) a badger database in dir.
func OpenBadger(dir string) (database.Database, error) {
	if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := badgerdb.New(dir, nil, "", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", dir, err)
	}
	return db, nil
}

// OpenLedger opens the configured database and wraps it in a ledger
// runtime. The returned closer must be called once the command is done.
func (app *Hotwings) OpenLedger(opts ...ledger.Option) (*ledger.Runtime, func() error, error) {
	db, err := app.OpenDatabase()
	if err != nil {
		return nil, nil, err
	}
	return ledger.NewRuntime(db, app.Log, opts...), db.Close, nil
}

// WithLedger opens the ledger, prints committed events to the user and runs
// fn before closing the database again.
func (app *Hotwings) WithLedger(fn func(*ledger.Runtime) error) error {
	var opts []ledger.Option
	if ux.Logger != nil {
		opts = append(opts, ledger.WithEventHandler(ux.EventPrinter(ux.Logger.Writer())))
	}
	rt, closeDB, err := app.OpenLedger(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDB(); err != nil {
			app.Log.Warn("failed to close ledger database", zap.Error(err))
		}
	}()
	return fn(rt)
}

// LastAction records the most recent successful invocation of a command.
type LastAction struct {
	Command string    `json:"command"`
	At      time.Time `json:"at"`
	Detail  string    `json:"detail,omitempty"`
}

// RecordLastAction stores action under its command name in last-actions.json.
func (app *Hotwings) RecordLastAction(action LastAction) error {
	actions, err := app.LoadLastActions()
	if err != nil {
		return err
	}
	actions[action.Command] = action
	bytes, err := json.MarshalIndent(actions, "", "    ")
	if err != nil {
		return err
	}
	return app.writeFile(app.GetLastActionsPath(), bytes)
}

func (app *Hotwings) LoadLastActions() (map[string]LastAction, error) {
	actions := make(map[string]LastAction)
	bytes, err := os.ReadFile(app.GetLastActionsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return actions, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(bytes, &actions); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", constants.LastActionsFileName, err)
	}
	return actions, nil
}

func (*Hotwings) writeFile(path string, bytes []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultPerms755); err != nil {
		return err
	}

	return os.WriteFile(path, bytes, constants.WriteReadReadPerms)
}
