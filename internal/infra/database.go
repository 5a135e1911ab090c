package infra

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Setplays/Administracao-de-remedios/internal/model"
)

// NewDatabase opens a GORM handle over the local SQLite file and runs
// AutoMigrate. Foreign keys are switched on at the connection level so the
// medication → movement ON DELETE CASCADE holds as a persisted invariant,
// and a busy timeout lets concurrent writers from other handles wait for
// SQLite's lock instead of failing immediately.
//
// Each execution context (UI/CLI vs. background workers) opens its own
// handle via this function; SQLite itself serializes the writers.
func NewDatabase(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=1", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// One connection per handle: cross-handle concurrency is SQLite's job,
	// in-handle concurrency would only multiply lock contention.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(
		&model.Remedio{},
		&model.MovimentoEstoque{},
		&model.MarcadorProcessamento{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
