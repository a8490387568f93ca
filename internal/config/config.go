package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env           string     `yaml:"env" env:"ENV" env-default:"local"`
	ClientAppName string     `yaml:"client_app_name" env:"CLIENT_APP_NAME" env-default:"docmanagementApp"`
	HTTPServer    HTTPServer `yaml:"http_server"`
	DB            DB         `yaml:"db"`
	Cache         Cache      `yaml:"cache"`
	Pagination    Pagination `yaml:"pagination"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type DB struct {
	Addr     string `yaml:"addr" env:"DB_ADDR" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-required:"true"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-required:"true"`
	DB       string `yaml:"db" env:"DB_NAME" env-default:"docmanagement"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Cache struct {
	Addr     string `yaml:"addr" env:"CACHE_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"CACHE_PASSWORD"`
	DB       int    `yaml:"db" env:"CACHE_DB" env-default:"0"`
}

type Pagination struct {
	DefaultSize int `yaml:"default_size" env-default:"20"`
	MaxSize     int `yaml:"max_size" env-default:"2000"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, err
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
