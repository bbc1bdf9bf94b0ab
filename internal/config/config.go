package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

type DatabaseConfig struct {
	DSN string `yaml:"url"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

type PaymentConfig struct {
	MerchantID     string  `yaml:"merchant_id"`
	Secret         string  `yaml:"secret"`
	BaseURL        string  `yaml:"base_url"`
	Currency       string  `yaml:"currency"`
	PublicationFee float64 `yaml:"publication_fee"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUsername string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	FromName     string `yaml:"from_name"`
	Enabled      bool   `yaml:"enabled"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

type WorkerConfig struct {
	CheckpointSweepMinutes int `yaml:"checkpoint_sweep_minutes"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Payment  PaymentConfig  `yaml:"payment"`
	Email    EmailConfig    `yaml:"email"`
	CORS     CORSConfig     `yaml:"cors"`
	Worker   WorkerConfig   `yaml:"worker"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config/config.yaml, unless DATABASE_URL is set in the
// environment, in which case the whole config comes from env vars (test and
// container deployments).
func LoadConfig() {
	var cfg Config

	// Optional .env file for local development.
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTLMinutes = 60

	cfg.Payment.MerchantID = os.Getenv("PAYMENT_MERCHANT_ID")
	cfg.Payment.Secret = os.Getenv("PAYMENT_SECRET")
	cfg.Payment.BaseURL = os.Getenv("PAYMENT_BASE_URL")

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.JWT.TTLMinutes == 0 {
		cfg.JWT.TTLMinutes = 60
	}
	if cfg.Payment.Currency == "" {
		cfg.Payment.Currency = "EUR"
	}
	if cfg.Payment.PublicationFee == 0 {
		cfg.Payment.PublicationFee = 49.90
	}
	if cfg.Worker.CheckpointSweepMinutes == 0 {
		cfg.Worker.CheckpointSweepMinutes = 60
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = []string{"http://localhost:3000"}
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
