package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Datastore wraps the GORM DB handle and provides context-propagated
// transaction support.
type Datastore struct {
	db *gorm.DB
}

// NewDatastore opens a MySQL connection and tunes the pool the way the
// engine expects to run: long-lived, low connection churn, one process
// per scheduler tick.
func NewDatastore(dsn string) (*Datastore, error) {
	newLogger := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                 newLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get generic database object: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return &Datastore{db: db}, nil
}

// NewDatastoreFromDB wraps an already-open GORM handle. Production code
// always goes through NewDatastore; this exists so tests (in this
// package and in internal/jobrunner) can point a Datastore at an
// in-memory sqlite handle instead of a real MySQL connection.
func NewDatastoreFromDB(db *gorm.DB) *Datastore {
	return &Datastore{db: db}
}

// Close closes the underlying connection pool.
func (ds *Datastore) Close() error {
	sqlDB, err := ds.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type contextTxKey struct{}

// ExecTx runs fn inside a transaction. The job runner does not use it:
// per-resource upserts (spec explicitly allows individual upserts
// without a global transaction) and JobRun status transitions each run
// as individual statements.
func (ds *Datastore) ExecTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return ds.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ctx = context.WithValue(ctx, contextTxKey{}, tx)
		return fn(ctx)
	})
}

// DB returns the transaction-scoped handle if one is active in ctx,
// otherwise the main pool handle.
func (ds *Datastore) DB(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(contextTxKey{}).(*gorm.DB)
	if ok {
		return tx.WithContext(ctx)
	}
	return ds.db.WithContext(ctx)
}

// GetDB returns the underlying GORM DB instance for migrations/bootstrapping.
func (ds *Datastore) GetDB() *gorm.DB {
	return ds.db
}
