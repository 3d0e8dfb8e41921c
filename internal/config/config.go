package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"os"
	"time"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"prod"`
	HTTPServer  `yaml:"http_server"`
	DBUser      string `yaml:"db_user" env:"DB_USER" env-required:"true"`
	DBPassword  string `yaml:"db_password" env:"DB_PASSWORD"`
	DBHost      string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort      int    `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBName      string `yaml:"db_name" env:"DB_NAME" env-required:"true"`
	ParseTime   bool   `yaml:"parse_time" env:"DB_PARSE_TIME" env-default:"true"`
	MigrateOnUp bool   `yaml:"migrate_on_start" env:"MIGRATE_ON_START" env-default:"false"`

	AdminLogin string `yaml:"admin_login" env:"ADMIN_LOGIN"`
	AdminPass  string `yaml:"admin_pass" env:"ADMIN_PASS"`

	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`

	// пусто - фронтенд не раздаём
	FrontendDir string `yaml:"frontend_dir" env:"FRONTEND_DIR"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// DSN собирает строку подключения для go-sql-driver/mysql.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=%v",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.ParseTime,
	)
}

func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: cannot read config %s: %w", op, path, err)
	}

	return &cfg, nil
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}
