package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env-default:"prod"`
	PostgreSQL PostgreSQL `yaml:"postgresql"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Admin      Admin      `yaml:"admin"`
	Telegram   Telegram   `yaml:"telegram"`
	Minio      Minio      `yaml:"minio"`
	Catalog    Catalog    `yaml:"catalog"`
	RateLimit  RateLimit  `yaml:"rate_limit"`
}

type PostgreSQL struct {
	Host     string `yaml:"host" env-required:"true"`
	Port     string `yaml:"port" env-required:"true"`
	Username string `yaml:"username" env-required:"true"`
	Password string `yaml:"password" env-required:"true"`
	Database string `yaml:"database" env-required:"true"`
}

type HTTPServer struct {
	Address          string        `yaml:"address" env-required:"true"`
	Timeout          time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials"`
}

type Admin struct {
	JWTSecret    string        `yaml:"jwt_secret" env-required:"true"`
	PasswordHash string        `yaml:"password_hash" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"12h"`
}

type Telegram struct {
	Token  string `yaml:"token"`
	ChatID string `yaml:"chat_id"`
}

type Minio struct {
	Endpoint        string `yaml:"endpoint" env-required:"true"`
	AccessKeyID     string `yaml:"access_key_id" env-required:"true"`
	SecretAccessKey string `yaml:"secret_access_key" env-required:"true"`
	UseSSL          bool   `yaml:"use_ssl"`
	Bucket          string `yaml:"bucket" env-default:"slots"`
	PublicURL       string `yaml:"public_url" env-required:"true"`
}

type Catalog struct {
	DefaultRegion   string        `yaml:"default_region" env-default:"ru"`
	SearchCacheTTL  time.Duration `yaml:"search_cache_ttl" env-default:"10m"`
	PopularCacheTTL time.Duration `yaml:"popular_cache_ttl" env-default:"1h"`
}

type RateLimit struct {
	SearchPerSecond int `yaml:"search_per_second" env-default:"20"`
	QuizPerMinute   int `yaml:"quiz_per_minute" env-default:"20"`
	SubmitPerMinute int `yaml:"submit_per_minute" env-default:"5"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
