package database

import (
	"github.com/KaushikKC/VeilPay/src/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectToDatabase opens the configured database. Sqlite is used for
// development and tests, postgres for deployments.
func ConnectToDatabase(kind, connectionString string) (*gorm.DB, error) {
	dbLogger := logger.Default()
	dbLogger.Infof("Establishing %s database connection", kind)

	var dialector gorm.Dialector
	switch kind {
	case "postgres":
		dialector = postgres.Open(connectionString)
	default:
		dialector = sqlite.Open(connectionString)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		dbLogger.Error(err, "Cannot establish database connection")
		return nil, err
	}
	return db, nil
}

// Migrate runs auto-migrations for the given models.
func Migrate(db *gorm.DB, models ...interface{}) error {
	return db.AutoMigrate(models...)
}
