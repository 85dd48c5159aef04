package cmd

import (
	"fmt"
	"net/url"
	"time"

	"fooddelivery/internal/adapters/out/postgres"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

// Config is read from FOODDELIVERY_* environment variables, an optional
// config.yaml and command line flags. An optional .env file is loaded into
// the environment first.
type Config struct {
	HTTPPort        string        `default:"8080" usage:"HTTP listen port" flag:"http-port"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum graceful shutdown duration" flag:"shutdown-timeout"`
	LogDevelopment  bool          `default:"false" usage:"Human readable debug logging" flag:"log-development"`

	DB DBConfig

	DeliveryWindow    time.Duration `default:"45m" usage:"Estimated delivery time after placement" flag:"delivery-window"`
	CartRetryAttempts int           `default:"3" usage:"Attempts for cart writes that lose a race" flag:"cart-retry-attempts"`

	Jobs JobsConfig
}

// DBConfig selects the record store. For postgres either DSN or the
// individual connection fields are used.
type DBConfig struct {
	Driver        string        `default:"postgres" usage:"postgres or sqlite"`
	DSN           string        `usage:"Full connection string, overrides the fields below"`
	Host          string        `default:"localhost"`
	Port          string        `default:"5432"`
	User          string        `default:"postgres"`
	Password      string        `default:""`
	Name          string        `default:"fooddelivery"`
	SslMode       string        `default:"disable"`
	MaxOpenConns  int           `default:"10"`
	SlowThreshold time.Duration `default:"200ms" usage:"Queries slower than this are logged"`
}

// JobsConfig holds cron specs with a leading seconds field.
type JobsConfig struct {
	EarningsResetSpec string `default:"0 0 0 * * *" usage:"When agents' daily earnings are zeroed"`
	CartSweepSpec     string `default:"0 */5 * * * *" usage:"When empty carts are purged"`
}

// LoadConfig reads the configuration once at startup.
func LoadConfig() (Config, error) {
	// .env is optional; variables already in the environment win.
	_ = godotenv.Load(".env")

	return loadConfig(aconfig.Config{
		EnvPrefix: "FOODDELIVERY",
		Files:     []string{"config.yaml", "/etc/fooddelivery/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
}

func loadConfig(acfg aconfig.Config) (Config, error) {
	var cfg Config
	if err := aconfig.LoaderFor(&cfg, acfg).Load(); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DB.Driver {
	case postgres.DriverPostgres, postgres.DriverSQLite:
	default:
		return errors.Errorf("unsupported database driver %q", c.DB.Driver)
	}
	if c.DB.Driver == postgres.DriverSQLite && c.DB.DSN == "" {
		return errors.New("sqlite needs FOODDELIVERY_DB_DSN")
	}
	if c.CartRetryAttempts < 1 {
		return errors.Errorf("cart retry attempts must be positive, got %d", c.CartRetryAttempts)
	}
	if c.DeliveryWindow <= 0 {
		return errors.Errorf("delivery window must be positive, got %s", c.DeliveryWindow)
	}
	return nil
}

// Database returns the adapter configuration.
func (c Config) Database() postgres.DatabaseConfig {
	return postgres.DatabaseConfig{
		Driver:        c.DB.Driver,
		DSN:           c.DB.dsn(),
		MaxOpenConns:  c.DB.MaxOpenConns,
		SlowThreshold: c.DB.SlowThreshold,
	}
}

func (c DBConfig) dsn() string {
	if c.DSN != "" || c.Driver != postgres.DriverPostgres {
		return c.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:     c.Name,
		RawQuery: url.Values{"sslmode": {c.SslMode}}.Encode(),
	}
	return u.String()
}
