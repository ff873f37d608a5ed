// Package database implements the relational query surface over the
// movie catalog.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cinefind/cinefind/internal/models"
)

const (
	dbDirMode = 0755

	defaultDBFile = "catalog.db"
)

// Open opens (creating if needed) the catalog database at dbPath and
// migrates the schema. If dbPath is empty, uses the default file in the
// current directory.
func Open(dbPath string) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".", defaultDBFile)
	}

	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the catalog schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Movie{},
		&models.MovieTranslation{},
		&models.Genre{},
		&models.GenreTranslation{},
		&models.Actor{},
		&models.ActorTranslation{},
		&models.CastCredit{},
		&models.Trailer{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
