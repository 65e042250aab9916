package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"scribe/internal/config"
	"scribe/internal/logging"
	"scribe/internal/post"
	"scribe/internal/store"
	boltstore "scribe/internal/store/bolt"
	"scribe/internal/store/memory"
)

var applog = logging.For("scribe")

// app is the wiring shared by the subcommands.
type app struct {
	cfg   *config.Config
	db    store.Store
	slot  *store.KeySlot
	posts *post.Store
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.dataDir != "" {
		cfg.Store.DataDir = flags.dataDir
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Store.DataDir = config.ExpandHome(cfg.Store.DataDir)
	return cfg, nil
}

// openApp loads config, initialises logging to logOut and opens the store.
func openApp(flags *globalFlags, logOut io.Writer) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	logging.InitTo(logOut, cfg.Logging.Level, cfg.Logging.Format)

	var db store.Store
	if flags.ephemeral {
		db = memory.New()
		applog.Debug("using in-memory store")
	} else {
		if err := os.MkdirAll(cfg.Store.DataDir, 0700); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
		bdb, err := boltstore.Open(cfg.DBPath())
		if err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
		applog.Debug("opened store", "path", bdb.Path())
		db = bdb
	}

	slot := store.NewKeySlot(db, cfg.Store.Bucket, cfg.Store.Slot)
	return &app{
		cfg:   cfg,
		db:    db,
		slot:  slot,
		posts: post.Open(slot),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// saved turns a failed slot write after a mutation into a command error.
func (a *app) saved() error {
	if err := a.posts.PersistErr(); err != nil {
		return fmt.Errorf("saving %s: %w", a.slot.Name(), err)
	}
	return nil
}

// logFile opens <data_dir>/scribe.log for append. The interactive shell logs
// there so records do not land in the middle of the terminal.
func logFile(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.Store.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return os.OpenFile(filepath.Join(cfg.Store.DataDir, "scribe.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
}
