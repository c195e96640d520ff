package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

const (
	ContextURL  ContextKey = "goalsplit-url"
	ContextUser ContextKey = "goalsplit-user"
)

// Connect opens the sqlite database at dsn, migrates the schema and
// registers the error handling callbacks.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// sqlite only allows one writer, a single connection avoids SQLITE_BUSY
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(User{}, Goal{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	callbacks := []struct {
		register func(string, func(*gorm.DB)) error
		name     string
		fn       func(*gorm.DB)
	}{
		{db.Callback().Query().After("*").Register, "goalsplit:after_query", queryCallback},
		{db.Callback().Query().After("*").Register, "goalsplit:after_query_general", generalCallback},
		{db.Callback().Create().After("*").Register, "goalsplit:after_create", createUpdateCallback},
		{db.Callback().Create().After("*").Register, "goalsplit:after_create_general", generalCallback},
		{db.Callback().Update().After("*").Register, "goalsplit:after_update", createUpdateCallback},
		{db.Callback().Update().After("*").Register, "goalsplit:after_update_general", generalCallback},
		{db.Callback().Delete().After("*").Register, "goalsplit:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.register(c.name, c.fn); err != nil {
			return err
		}
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with one naming the
// resource that was not found.
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		name := strings.TrimSuffix(strings.ReplaceAll(db.Statement.Table, "_", " "), "s")
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback replaces constraint violations with user friendly errors.
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: users.email") {
		db.Error = ErrUserEmailNotUnique
	}
}

// generalCallback handles errors we cannot give the user any useful
// information about. They are logged and replaced with ErrGeneral.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in database/sql
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}
