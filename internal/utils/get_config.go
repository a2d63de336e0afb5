package utils

import (
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	AppPort string `yaml:"APP_PORT"`

	// Database configuration
	DatabaseURL string `yaml:"DATABASE_URL"`
	DBUser      string `yaml:"DB_USER"`
	DBName      string `yaml:"DB_NAME"`
	DBPassword  string `yaml:"DB_PASSWORD"`
	DBPort      string `yaml:"DB_PORT"`
	DBHost      string `yaml:"DB_HOST"`

	JWTSecret string `yaml:"JWT_SECRET"`
	LogLevel  string `yaml:"LOG_LEVEL"`

	// Image storage: "local" serves files from PublicDir, "s3" uploads to the bucket below
	StorageDriver string `yaml:"STORAGE_DRIVER"`
	PublicDir     string `yaml:"PUBLIC_DIR"`
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`

	// Optional infrastructure; empty disables the feature
	RabbitMQURL string `yaml:"RABBITMQ_URL"`
	RedisAddr   string `yaml:"REDIS_ADDR"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
}

var config Config

var defaults = map[string]string{
	"APP_PORT":       "3000",
	"DB_HOST":        "localhost",
	"DB_PORT":        "5432",
	"DB_NAME":        "baratie",
	"LOG_LEVEL":      "info",
	"STORAGE_DRIVER": "local",
	"PUBLIC_DIR":     "./public",
}

// LoadConfig reads config.yaml when present. Values from the process environment win over the
// file, so deployments can run without a config file at all.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("config.yaml not loaded, using environment: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	if v := fromFile(key); v != "" {
		return v
	}
	return defaults[key]
}

func fromFile(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "DATABASE_URL":
		return config.DatabaseURL
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "LOG_LEVEL":
		return config.LogLevel
	case "STORAGE_DRIVER":
		return config.StorageDriver
	case "PUBLIC_DIR":
		return config.PublicDir
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "RABBITMQ_URL":
		return config.RabbitMQURL
	case "REDIS_ADDR":
		return config.RedisAddr
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	default:
		return ""
	}
}
