package lib

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jpillora/backoff"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// DatabaseEngine represents the database engine type
type DatabaseEngine string

const (
	DatabaseEngineMySQL    DatabaseEngine = "mysql"
	DatabaseEngineSQLite   DatabaseEngine = "sqlite"
	DatabaseEnginePostgres DatabaseEngine = "postgres"
)

// CurrentDatabaseEngine holds the current database engine type
var CurrentDatabaseEngine DatabaseEngine = DatabaseEngineMySQL

type Database struct {
	ORM *gorm.DB
}

// NewDatabase creates a new database instance
func NewDatabase(config Config, logger Logger) Database {
	db, err := OpenDatabase(config, logger)
	if err != nil {
		logger.Zap.Fatalf("Error to open database connection: %v", err)
	}

	return db
}

// OpenDatabase opens the configured engine, retrying with backoff while the server is unreachable.
func OpenDatabase(config Config, logger Logger) (Database, error) {
	var prefix string
	if config.Database.TablePrefix != "" {
		prefix = config.Database.TablePrefix + "_"
	}

	gormConfig := &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: prefix,
		},
		QueryFields: true,
		Logger:      NewGormLogger(logger, config),
	}

	open := openMySQL
	engine := DatabaseEngineMySQL
	switch {
	case config.Database.IsSQLite():
		open, engine = openSQLite, DatabaseEngineSQLite
	case config.Database.IsPostgreSQL():
		open, engine = openPostgres, DatabaseEnginePostgres
	}

	b := &backoff.Backoff{
		Min:    500 * time.Millisecond,
		Max:    10 * time.Second,
		Factor: 2,
		Jitter: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	for {
		db, err = open(config, gormConfig)
		if err == nil {
			break
		}

		if int(b.Attempt()) >= config.Database.ConnectRetry {
			return Database{}, err
		}

		wait := b.Duration()
		logger.Zap.Warnf("Database connection failed (engine: %s), retrying in %s: %v", engine, wait, err)
		time.Sleep(wait)
	}
	CurrentDatabaseEngine = engine

	logger.Zap.Infof("Database connection established (engine: %s)", CurrentDatabaseEngine)
	return Database{
		ORM: db,
	}, nil
}

// openMySQL opens a MySQL database connection
func openMySQL(config Config, gormConfig *gorm.Config) (*gorm.DB, error) {
	mc := mysql.Config{
		DSN:                       config.Database.DSN(),
		DefaultStringSize:         191,
		SkipInitializeWithVersion: false,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
	}

	return gorm.Open(mysql.New(mc), gormConfig)
}

// openPostgres opens a PostgreSQL database connection
func openPostgres(config Config, gormConfig *gorm.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(config.Database.DSN()), gormConfig)
}

// openSQLite opens a SQLite database connection
func openSQLite(config Config, gormConfig *gorm.Config) (*gorm.DB, error) {
	dbPath := config.Database.Name
	if dbPath == "" {
		dbPath = "./data/news.db"
	}

	if dbPath != ":memory:" {
		// Ensure the directory exists
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, err
		}
	}

	dsn := dbPath
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=foreign_keys(1)"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, err
	}

	// single writer, and every query must see the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	// Enable foreign keys for SQLite
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	return db, nil
}

// IsSQLite returns true if current database is SQLite
func IsSQLite() bool {
	return CurrentDatabaseEngine == DatabaseEngineSQLite
}
