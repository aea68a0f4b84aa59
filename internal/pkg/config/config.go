package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, processor credentials), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Transfermit TransfermitConfig
	Storefront  StorefrontConfig
	Mail        MailConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// TransfermitConfig holds the payment processor credentials. A missing value
// fails startup rather than the first purchase.
type TransfermitConfig struct {
	APIURL           string        `envconfig:"TRANSFERMIT_API_URL" required:"true"`
	APIKey           string        `envconfig:"TRANSFERMIT_API_KEY" required:"true"`
	SigningKey       string        `envconfig:"TRANSFERMIT_SIGNING_KEY" required:"true"`
	Timeout          time.Duration `envconfig:"TRANSFERMIT_TIMEOUT" default:"20s"`
	SignatureHeaders []string      `envconfig:"TRANSFERMIT_SIGNATURE_HEADERS" default:"signature,x-signature,x-transfermit-signature"`
}

type StorefrontConfig struct {
	// Public base URL used to build return and webhook URLs.
	BaseURL         string          `envconfig:"APP_URL" required:"true"`
	ReferencePrefix string          `envconfig:"REFERENCE_PREFIX" default:"CS"`
	MinAmount       decimal.Decimal `envconfig:"MIN_PURCHASE_AMOUNT" default:"10.00"`
	PaymentMethod   string          `envconfig:"PAYMENT_METHOD" default:"transfermit"`
}

type MailConfig struct {
	Enabled  bool          `envconfig:"MAIL_ENABLED" default:"false"`
	Host     string        `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int           `envconfig:"SMTP_PORT" default:"587"`
	Username string        `envconfig:"SMTP_USERNAME"`
	Password string        `envconfig:"SMTP_PASSWORD"`
	From     string        `envconfig:"MAIL_FROM" default:"no-reply@localhost"`
	FromName string        `envconfig:"MAIL_FROM_NAME" default:"Token Storefront"`
	Timeout  time.Duration `envconfig:"MAIL_TIMEOUT" default:"15s"`
	// UseSSL selects implicit TLS (port 465) instead of STARTTLS
	UseSSL     bool `envconfig:"SMTP_USE_SSL" default:"false"`
	RequireTLS bool `envconfig:"SMTP_REQUIRE_TLS" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "1h",
		},
		Transfermit: TransfermitConfig{
			APIURL:           "http://localhost:18080",
			APIKey:           "test-api-key",
			SigningKey:       "test-signing-key",
			Timeout:          5 * time.Second,
			SignatureHeaders: []string{"signature", "x-signature", "x-transfermit-signature"},
		},
		Storefront: StorefrontConfig{
			BaseURL:         "https://shop.example.com/",
			ReferencePrefix: "CS",
			MinAmount:       decimal.RequireFromString("10.00"),
			PaymentMethod:   "transfermit",
		},
		Mail: MailConfig{
			Enabled: false,
			Timeout: time.Second,
		},
	}
}
