package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type PaymentConfig struct {
	Env string         `yaml:"env"`
	HTTPServer        `yaml:"http_server"`
	PaymentDB         `yaml:"payment_db"`
	LogConfig         `yaml:"log_config"`
	Yookassa          `yaml:"yookassa"`
	UserService       `yaml:"user-service"`
	KafkaService      `yaml:"kafka-service"`
	DeliveryWindow    `yaml:"delivery_window"`
	Maintenance       `yaml:"maintenance"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type PaymentDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type Yookassa struct {
	ShopID    string        `yaml:"shop_id" env:"YOOKASSA_SHOP_ID"`
	SecretKey string        `yaml:"secret_key" env:"YOOKASSA_SECRET_KEY"`
	APIURL    string        `yaml:"api_url" env-default:"https://api.yookassa.ru/v3"`
	ReturnURL string        `yaml:"return_url"`
	Currency  string        `yaml:"currency" env-default:"RUB"`
	Timeout   time.Duration `yaml:"timeout" env-default:"10s"`
}

type UserService struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout" env-default:"3s"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"payment-events"`
}

// DeliveryWindow bounds the randomized delivery estimate stamped on new
// lines: now plus a whole number of days in [MinDays, MaxDays].
type DeliveryWindow struct {
	MinDays int `yaml:"min_days" env-default:"3"`
	MaxDays int `yaml:"max_days" env-default:"7"`
}

type Maintenance struct {
	DeliverySweep time.Duration `yaml:"delivery_sweep" env-default:"24h"`
	DiscountSweep time.Duration `yaml:"discount_sweep" env-default:"15m"`
}

func MustLoad() *PaymentConfig {

	// Processing env config variable and file
	configPath := os.Getenv("PAYMENT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("PAYMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg PaymentConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
