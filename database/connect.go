package database

import (
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/gautham-here/hackathon-centre/models"
)

var DB *gorm.DB

// Connect opens the sqlite database at path and configures the
// underlying pool. sqlite serializes writers itself, so a single open
// connection avoids SQLITE_BUSY churn under concurrent requests.
func Connect(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("Database connection established (%s)", path)
}

func MigrateTables() {
	if err := DB.AutoMigrate(&models.Event{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed.")
}

// ResetTables drops and recreates the event table. Destructive; callers
// must confirm before invoking.
func ResetTables() {
	if err := DB.Migrator().DropTable(&models.Event{}); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}
	MigrateTables()
}
