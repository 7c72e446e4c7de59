package config

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitTestDB opens a throwaway sqlite database at path, removing any
// previous file, and assigns it to the global handle. Used by handler tests.
func InitTestDB(path string) {
	_ = os.Remove(path)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open test database: %v", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("test auto-migration failed: %v", err)
	}

	DB = db
}
