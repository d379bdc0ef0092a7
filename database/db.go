package database

import (
	"errors"
	"io/fs"
	"os"
	"path"

	"hamlog/config"
	"hamlog/database/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

func initModels() error {
	models := []any{
		&model.User{},
		&model.Log{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}
	return nil
}

// InitDB opens (creating if necessary) the sqlite database and migrates the
// schema. dbPath may be ":memory:" in tests.
func InitDB(dbPath string) error {
	if dbPath != ":memory:" {
		dir := path.Dir(dbPath)
		err := os.MkdirAll(dir, fs.ModePerm)
		if err != nil {
			return err
		}
	}

	var gormLogger gormlogger.Interface
	if config.IsDebug() {
		gormLogger = gormlogger.Default
	} else {
		gormLogger = gormlogger.Discard
	}

	c := &gorm.Config{
		Logger: gormLogger,
	}
	var err error
	db, err = gorm.Open(sqlite.Open(dbPath), c)
	if err != nil {
		return err
	}

	return initModels()
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
