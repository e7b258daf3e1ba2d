package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

var (
	ErrUnknownStorage  = errors.New("unknown storage driver")
	ErrEmptyJWTSecret  = errors.New("empty jwt secret")
	ErrInvalidTokenTTL = errors.New("token ttl must be positive")
	ErrInvalidRate     = errors.New("rate limit must be positive")
)

type Config struct {
	Env        string `yaml:"env" env:"ENV"`
	Log        `yaml:"log" envPrefix:"LOG_"`
	HTTPServer `yaml:"http_server" envPrefix:"HTTP_SERVER_"`
	Storage    `yaml:"storage" envPrefix:"STORAGE_"`
	Postgres   `yaml:"postgres" envPrefix:"POSTGRES_"`
	SQLite     `yaml:"sqlite" envPrefix:"SQLITE_"`
	Auth       `yaml:"auth" envPrefix:"AUTH_"`
	Generator  `yaml:"generator" envPrefix:"GENERATOR_"`
	Presets    `yaml:"presets"`
}

type Log struct {
	Level   string `yaml:"level" env:"LEVEL"`
	JSON    bool   `yaml:"json" env:"JSON"`
	Concise bool   `yaml:"concise" env:"CONCISE"`
}

var defaultLog = Log{
	Level:   "info",
	Concise: true,
}

type HTTPServer struct {
	Port           int           `yaml:"port" env:"PORT"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
	MaxHeaderBytes int           `yaml:"max_header_bytes" env:"MAX_HEADER_BYTES"`
	CertFile       string        `yaml:"cert_file" env:"CERT_FILE"`
	KeyFile        string        `yaml:"key_file" env:"KEY_FILE"`
	SwaggerDoc     string        `yaml:"swagger_doc" env:"SWAGGER_DOC"`
}

var defaultHTTPServer = HTTPServer{
	Port:           8080,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   10 * time.Second,
	IdleTimeout:    time.Minute,
	MaxHeaderBytes: 1 << 20,
	SwaggerDoc:     "./docs/swagger.yml",
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Storage selects the backend holding history, templates and preferences.
type Storage struct {
	Driver string `yaml:"driver" env:"DRIVER"`
}

var defaultStorage = Storage{
	Driver: StorageSQLite,
}

type Postgres struct {
	User            string        `yaml:"user" env:"USER"`
	Password        string        `yaml:"password" env:"PASSWORD"`
	Host            string        `yaml:"host" env:"HOST"`
	Port            int           `yaml:"port" env:"PORT"`
	DB              string        `yaml:"db" env:"DB"`
	SSLMode         string        `yaml:"sslmode" env:"SSLMODE"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env:"CONN_MAX_IDLE_TIME"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"CONN_MAX_LIFETIME"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"MAX_OPEN_CONNS"`
}

var defaultPostgres = Postgres{
	Host:            "localhost",
	Port:            5432,
	SSLMode:         "disable",
	ConnMaxIdleTime: 5 * time.Minute,
	ConnMaxLifetime: 30 * time.Minute,
	MaxIdleConns:    5,
	MaxOpenConns:    25,
}

func (p *Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DB, p.SSLMode)
}

// SQLite holds either a local file DSN or a libsql:// URL.
type SQLite struct {
	Path string `yaml:"dsn" env:"DSN"`
}

var defaultSQLite = SQLite{
	Path: "file:utmka.db",
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	Issuer    string        `yaml:"issuer" env:"ISSUER"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"TOKEN_TTL"`
}

var defaultAuth = Auth{
	Issuer:   "utmka",
	TokenTTL: 24 * time.Hour,
}

type Generator struct {
	IdempotencyTTL time.Duration `yaml:"idempotency_ttl" env:"IDEMPOTENCY_TTL"`
	CacheSize      int64         `yaml:"cache_size" env:"CACHE_SIZE"`
	RateLimit      float64       `yaml:"rate_limit" env:"RATE_LIMIT"`
	RateBurst      int           `yaml:"rate_burst" env:"RATE_BURST"`
}

var defaultGenerator = Generator{
	IdempotencyTTL: 10 * time.Minute,
	CacheSize:      1024,
	RateLimit:      5,
	RateBurst:      10,
}

type Preset struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Presets overrides the built-in source and medium catalog when non-empty.
type Presets struct {
	Sources []Preset `yaml:"sources"`
	Mediums []Preset `yaml:"mediums"`
}

func Load(path string) (*Config, error) {
	const op = "config.Load"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
	}
	defer f.Close()

	var cfg Config
	setDefaults(&cfg)

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse environment: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func (cfg *Config) Validate() error {
	switch cfg.Storage.Driver {
	case StoragePostgres, StorageSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, cfg.Storage.Driver)
	}

	if cfg.Auth.JWTSecret == "" {
		return ErrEmptyJWTSecret
	}
	if cfg.Auth.TokenTTL <= 0 {
		return ErrInvalidTokenTTL
	}
	if cfg.Generator.RateLimit <= 0 {
		return ErrInvalidRate
	}

	return nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.Log = defaultLog
	cfg.HTTPServer = defaultHTTPServer
	cfg.Storage = defaultStorage
	cfg.Postgres = defaultPostgres
	cfg.SQLite = defaultSQLite
	cfg.Auth = defaultAuth
	cfg.Generator = defaultGenerator
}
