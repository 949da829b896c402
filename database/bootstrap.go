// database/bootstrap.go
package database

import (
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"roastlog/entities"
)

// OpenSQLite opens the store and migrates the three tables. The DSN
// pragmas keep concurrent consume transactions from failing fast with
// SQLITE_BUSY instead of queueing on the writer lock.
func OpenSQLite(path string) *gorm.DB {
	dsn := path
	if !strings.Contains(dsn, "?") {
		// immediate txlock: consume transactions take the writer lock at
		// BEGIN, so racing decrements queue instead of failing on upgrade
		dsn += "?_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.GreenBeanLot{},
		&entities.Roast{},
		&entities.CuppingScore{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
