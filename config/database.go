package config

import (
	"os"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the store selected by DATABASE_URL. A postgres DSN uses the
// postgres driver; anything else is treated as a SQLite file path. The
// default is a local insurance_track.db file.
func ConnectDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "insurance_track.db"
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dialector = postgres.Open(dsn)
	} else {
		// SQLite ships with foreign keys off; insurance and document creates
		// rely on the constraint rejecting nonexistent parent ids.
		dialector = sqlite.Open(dsn + "?_pragma=foreign_keys(1)")
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}
