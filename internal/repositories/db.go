package repositories

import (
	"log"

	"github.com/rohits-web03/usefulutilities/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDatabase opens the sqlite store at path and runs migrations.
// The returned handle is passed to the services explicitly; nothing in
// this package keeps a global copy.
func ConnectDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// sqlite has a single writer; funneling every request through one
	// pooled connection keeps concurrent counter upserts from tripping
	// over SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	// Run migrations
	err = db.AutoMigrate(
		&models.User{},
		&models.Utility{},
		&models.Review{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Successfully connected to database")
	return db, nil
}
