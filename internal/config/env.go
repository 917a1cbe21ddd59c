package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	OwnerEmail string

	UploadDir string
}

// LoadEnv reads configuration from the process environment. A .env file in the
// working directory is loaded first when present; real env vars win.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "travel_agency"),

		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),

		SMTPHost:   strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:   getenv("SMTP_PORT", "587"),
		SMTPUser:   strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass:   strings.TrimSpace(os.Getenv("SMTP_PASS")),
		OwnerEmail: strings.TrimSpace(os.Getenv("OWNER_EMAIL")),

		UploadDir: getenv("UPLOAD_DIR", "public/images"),
	}
}

// DSN builds the MySQL connection string from the env parts.
func (e Env) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		e.DBUser, e.DBPass, e.DBHost, e.DBName)
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
