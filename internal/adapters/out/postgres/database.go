package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-faster/errors"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Supported values of DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig selects and tunes the record store.
type DatabaseConfig struct {
	Driver        string
	DSN           string
	MaxOpenConns  int
	SlowThreshold time.Duration
}

// Open connects to the configured store and returns the GORM handle plus a
// function releasing the underlying pool.
//
// Postgres goes through a pgx pool with NUMERIC mapped to shopspring decimals.
// SQLite (pure Go) is meant for local runs and tests; it is limited to a
// single connection, which serializes transactions.
func Open(ctx context.Context, cfg DatabaseConfig, logger *zap.Logger) (*gorm.DB, func(), error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(zap.NewStdLog(logger.Named("gorm")), gormlogger.Config{
			SlowThreshold:             cfg.SlowThreshold,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			LogLevel:                  gormlogger.Warn,
		}),
	}

	switch cfg.Driver {
	case DriverPostgres:
		return openPostgres(ctx, cfg, gormCfg)
	case DriverSQLite:
		return openSQLite(cfg, gormCfg)
	default:
		return nil, nil, errors.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg DatabaseConfig, gormCfg *gorm.Config) (*gorm.DB, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parse database config")
	}
	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxOpenConns) //nolint:gosec // bounded by config validation
	}
	poolCfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create connection pool")
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errors.Wrap(err, "ping database")
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), gormCfg)
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, nil, errors.Wrap(err, "open gorm")
	}

	return db, func() {
		_ = sqlDB.Close()
		pool.Close()
	}, nil
}

func openSQLite(cfg DatabaseConfig, gormCfg *gorm.Config) (*gorm.DB, func(), error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open sqlite")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "get sqlite handle")
	}
	limitToOneConnection(sqlDB)

	return db, func() { _ = sqlDB.Close() }, nil
}

func limitToOneConnection(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
}
