package db

import (
	"fmt"
	"strings"

	"github.com/thatcatcamp/windpalette/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// sqliteOptions are appended to file DSNs that carry no query string.
// Concurrent likes otherwise fail with "database is locked".
const sqliteOptions = "?_busy_timeout=5000"

func dialectorFor(dbType, dsn string) (gorm.Dialector, error) {
	switch dbType {
	case "sqlite":
		if dsn != ":memory:" && !strings.Contains(dsn, "?") {
			dsn += sqliteOptions
		}
		return sqlite.Open(dsn), nil
	case "mysql", "mariadb":
		// time.Time columns scan only with parseTime
		if !strings.Contains(dsn, "parseTime") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "parseTime=true"
		}
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

// InitDB opens the database and migrates the schema. For sqlite dsn is a
// file path, for mysql a driver DSN.
func InitDB(dbType, dsn string) error {
	dialector, err := dialectorFor(dbType, dsn)
	if err != nil {
		return err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := conn.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	DB = conn
	return nil
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}

// SetDB swaps the connection, mostly for tests.
func SetDB(database *gorm.DB) {
	DB = database
}
