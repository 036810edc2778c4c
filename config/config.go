package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	Fraud        FraudConfig        `mapstructure:"fraud"`
	Fees         FeesConfig         `mapstructure:"fees"`
	Platform     PlatformConfig     `mapstructure:"platform"`
	Notification NotificationConfig `mapstructure:"notification"`
	Clients      []ClientConfig     `mapstructure:"clients"`
	Log          LogConfig          `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// FraudConfig tunes the synchronous fraud gate.
type FraudConfig struct {
	HighAmountMinor    int64         `mapstructure:"high_amount_minor"`    // score +30 above this
	CriticalAmountMinor int64        `mapstructure:"critical_amount_minor"` // score +45 above this
	VelocityLimit      int64         `mapstructure:"velocity_limit"`       // payments per window before scoring
	VelocityWindow     time.Duration `mapstructure:"velocity_window"`
}

// FeesConfig seeds the active fee schedule when none is persisted yet, and
// sets the processing fee withheld from distribution payouts.
type FeesConfig struct {
	Phase                  string  `mapstructure:"phase"`
	DefaultFeePercent      float64 `mapstructure:"default_fee_percent"`
	DistributionFeePercent float64 `mapstructure:"distribution_fee_percent"`
}

// PlatformConfig identifies the treasury account distributions pay out from.
type PlatformConfig struct {
	AccountID string `mapstructure:"account_id"`
}

// NotificationConfig configures outbound payment webhooks.
type NotificationConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	SigningSecret string        `mapstructure:"signing_secret"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// ClientConfig is one platform API client. SecretHash is an argon2id hash;
// plaintext secrets never live in config.
type ClientConfig struct {
	ID         string `mapstructure:"id"`
	SecretHash string `mapstructure:"secret_hash"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: RDE_ (Revenue
// Distribution Engine). Nested keys use underscore: RDE_DATABASE_HOST,
// RDE_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "revenue_engine")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "revenue-distribution-engine")
	v.SetDefault("fraud.high_amount_minor", 500_000)
	v.SetDefault("fraud.critical_amount_minor", 900_000_000)
	v.SetDefault("fraud.velocity_limit", 20)
	v.SetDefault("fraud.velocity_window", "1h")
	v.SetDefault("fees.phase", "growth")
	v.SetDefault("fees.default_fee_percent", 5.0)
	v.SetDefault("fees.distribution_fee_percent", 0.0)
	v.SetDefault("platform.account_id", "")
	v.SetDefault("notification.endpoint", "")
	v.SetDefault("notification.signing_secret", "")
	v.SetDefault("notification.timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: RDE_DATABASE_HOST -> database.host
	v.SetEnvPrefix("RDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
