package cmd

import (
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres"

	"github.com/cristalhq/aconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoaderConfig() aconfig.Config {
	return aconfig.Config{
		EnvPrefix: "FOODDELIVERY",
		SkipFlags: true,
		SkipFiles: true,
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(testLoaderConfig())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, postgres.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 45*time.Minute, cfg.DeliveryWindow)
	assert.Equal(t, 3, cfg.CartRetryAttempts)
	assert.Equal(t, "0 0 0 * * *", cfg.Jobs.EarningsResetSpec)
	assert.Equal(t, "0 */5 * * * *", cfg.Jobs.CartSweepSpec)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("FOODDELIVERY_DB_DRIVER", "sqlite")
	t.Setenv("FOODDELIVERY_DB_DSN", "file:local.db")
	t.Setenv("FOODDELIVERY_DELIVERY_WINDOW", "30m")

	cfg, err := loadConfig(testLoaderConfig())
	require.NoError(t, err)

	assert.Equal(t, postgres.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, 30*time.Minute, cfg.DeliveryWindow)
	assert.Equal(t, "file:local.db", cfg.Database().DSN)
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"FOODDELIVERY_DB_DRIVER": "mysql"}},
		{"sqlite without dsn", map[string]string{"FOODDELIVERY_DB_DRIVER": "sqlite"}},
		{"no retry attempts", map[string]string{"FOODDELIVERY_CART_RETRY_ATTEMPTS": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := loadConfig(testLoaderConfig())
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{
		Driver:   postgres.DriverPostgres,
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "p@ss",
		Name:     "fooddelivery",
		SslMode:  "disable",
	}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/fooddelivery?sslmode=disable", c.dsn())

	c.DSN = "postgres://override"
	assert.Equal(t, "postgres://override", c.dsn())
}
