// Package db opens the preferences database.
package db

import (
	"errors"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	prefsentity "github.com/dahldoescards/bowman-tracker/internal/feature/prefs/domain/entity"
)

// Opener opens a gorm connection for the given DSN. Extracted so the
// retry loop can be tested without a real database.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps opening dsn until it succeeds or timeout
// elapses. Retries every 3 seconds so the server survives a database
// that comes up slower than it does.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, errors.New("DB connect failed after " + timeout.String() + ": " + err.Error())
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB connects to the preferences store. A non-empty databaseURL
// selects PostgreSQL, otherwise the embedded SQLite file at sqlitePath is
// used.
func OpenDB(databaseURL, sqlitePath string, runMigrations bool) *gorm.DB {
	dsn := sqlitePath
	open := func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gsqlite.Open(dsn), &gorm.Config{})
	}
	if databaseURL != "" {
		dsn = databaseURL
		open = func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		}
	}

	db, err := ConnectWithRetry(dsn, 60*time.Second, open)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if runMigrations {
		if err := db.AutoMigrate(&prefsentity.Preference{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
