package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"PG_MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"PG_MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"PG_CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"PG_CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost:6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// Catalog tunes the browse/search core: page sizing, navigation pill cap,
// the per-branch fan-out timeout and the category snapshot cache TTL.
type Catalog struct {
	PageSize       int           `yaml:"PAGE_SIZE" env:"CATALOG_PAGE_SIZE" env-default:"24"`
	MaxPageSize    int           `yaml:"MAX_PAGE_SIZE" env:"CATALOG_MAX_PAGE_SIZE" env-default:"100"`
	PillLimit      int           `yaml:"PILL_LIMIT" env:"CATALOG_PILL_LIMIT" env-default:"20"`
	TopSellerLimit int           `yaml:"TOP_SELLER_LIMIT" env:"CATALOG_TOP_SELLER_LIMIT" env-default:"12"`
	BranchTimeout  time.Duration `yaml:"BRANCH_TIMEOUT" env:"CATALOG_BRANCH_TIMEOUT" env-default:"2s"`
	SnapshotTTL    time.Duration `yaml:"SNAPSHOT_TTL" env:"CATALOG_SNAPSHOT_TTL" env-default:"5m"`
	DefaultCountry string        `yaml:"DEFAULT_COUNTRY" env:"CATALOG_DEFAULT_COUNTRY" env-default:"BG"`
	SiteBaseURL    string        `yaml:"SITE_BASE_URL" env:"SITE_BASE_URL" env-default:"https://threadly.example"`
}

type Security struct {
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY" env-default:""`
}

type Telemetry struct {
	Enabled      bool   `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	OTLPEndpoint string `yaml:"OTLP_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4318"`
	ServiceName  string `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"marketplace-backend"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Catalog      Catalog      `yaml:"catalog"`
	Security     Security     `yaml:"security"`
	Telemetry    Telemetry    `yaml:"telemetry"`
}

func MustLoad() *Config {

	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s/%d", r.Username, r.Password, r.Host, r.DB)
}
