package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig                `mapstructure:"server"`
	Database   DatabaseConfig              `mapstructure:"database"`
	Redis      RedisConfig                 `mapstructure:"redis"`
	JWT        JWTConfig                   `mapstructure:"jwt"`
	KeyManager KeyManagerConfig            `mapstructure:"key_manager"`
	Scheduler  SchedulerConfig             `mapstructure:"scheduler"`
	Connectors map[string]ConnectorConfig  `mapstructure:"connectors"`
	Log        LogConfig                   `mapstructure:"log"`
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

// KeyManagerConfig holds the tenant master key used to wrap per-merchant
// data-encryption keys. Replaces the single flat AES key of a
// single-tenant ledger with the envelope-encryption root of trust.
type KeyManagerConfig struct {
	MasterKey string `mapstructure:"master_key"` // 32-byte hex-encoded root key
}

// SchedulerConfig tunes the process tracker's producer/consumer loop.
type SchedulerConfig struct {
	StreamName       string        `mapstructure:"stream_name"`
	ConsumerGroup    string        `mapstructure:"consumer_group"`
	ConsumerName     string        `mapstructure:"consumer_name"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	BatchSize        int64         `mapstructure:"batch_size"`
	DefaultRetryLimit int          `mapstructure:"default_retry_limit"`
}

// ConnectorConfig is the per-connector dispatch configuration, keyed by
// connector name under the `connectors` table.
type ConnectorConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	UCSEndpoint    string        `mapstructure:"ucs_endpoint"` // empty disables UCS for this connector
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PCE_ (Payment Core Engine).
// Nested keys use underscore: PCE_DATABASE_HOST, PCE_JWT_SECRET, etc.
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
	v.SetDefault("database.dbname", "paymentcore")
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
	v.SetDefault("jwt.issuer", "paymentcore")
	v.SetDefault("key_manager.master_key", "")
	v.SetDefault("scheduler.stream_name", "paymentcore:tracker")
	v.SetDefault("scheduler.consumer_group", "tracker-workers")
	v.SetDefault("scheduler.consumer_name", "worker-1")
	v.SetDefault("scheduler.poll_interval", "5s")
	v.SetDefault("scheduler.batch_size", 10)
	v.SetDefault("scheduler.default_retry_limit", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PCE_DATABASE_HOST -> database.host
	v.SetEnvPrefix("PCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
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
