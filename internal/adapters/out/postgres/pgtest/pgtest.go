// Package pgtest opens migrated databases for tests.
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "fooddelivery/internal/adapters/out/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewSQLite returns a private in-memory database with the schema applied.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := postgres_adapter.DatabaseConfig{
		Driver:        postgres_adapter.DriverSQLite,
		DSN:           fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		SlowThreshold: time.Second,
	}

	db, closeDB, err := postgres_adapter.Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(closeDB)

	require.NoError(t, postgres_adapter.Migrate(context.Background(), db))
	return db
}

// Container is a disposable PostgreSQL server.
type Container struct {
	*postgres.PostgresContainer
	DB *gorm.DB

	closeDB func()
}

// StartPostgres runs postgres:15-alpine and applies the schema. Tests using it
// are skipped with -short.
func StartPostgres(t testing.TB) *Container {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, closeDB, err := postgres_adapter.Open(ctx, postgres_adapter.DatabaseConfig{
		Driver:        postgres_adapter.DriverPostgres,
		DSN:           dsn,
		MaxOpenConns:  10,
		SlowThreshold: time.Second,
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, postgres_adapter.Migrate(ctx, db))

	return &Container{PostgresContainer: container, DB: db, closeDB: closeDB}
}

// Truncate empties every table.
func (c *Container) Truncate(t testing.TB) {
	t.Helper()
	err := c.DB.Exec("TRUNCATE TABLE order_items, orders, cart_items, carts, menu_items, " +
		"restaurants, delivery_agents, customers").Error
	require.NoError(t, err)
}

// Terminate closes the pool and stops the server.
func (c *Container) Terminate(t testing.TB) {
	t.Helper()
	c.closeDB()
	require.NoError(t, c.PostgresContainer.Terminate(context.Background()))
}
