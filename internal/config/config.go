package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	ServerPort string

	SessionSecret string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// AdminEmails is the allow-list of addresses granted an admin
	// session after a Google login.
	AdminEmails []string

	// DefaultServiceDuration is the duration (minutes) assigned to a
	// service created lazily from an unknown booking type.
	DefaultServiceDuration int

	// TimeSlotLabels are the time-of-day labels advertised for every
	// date that has any availability row.
	TimeSlotLabels []string

	UploadDir string

	AdminBootstrapUsername string
	AdminBootstrapPassword string
	AdminBootstrapEmail    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		DBUrl:      getEnv("DATABASE_URL", ""),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		SessionSecret: getEnv("SESSION_SECRET", "changeme"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/auth/google/callback"),

		AdminEmails: splitList(getEnv("ADMIN_EMAILS", "")),

		DefaultServiceDuration: getEnvInt("DEFAULT_SERVICE_DURATION", 120),

		TimeSlotLabels: splitList(getEnv("TIME_SLOT_LABELS", "9:00 AM,11:15 AM,1:15 PM,3:00 PM")),

		UploadDir: getEnv("UPLOAD_DIR", "./static/uploads/services"),

		AdminBootstrapUsername: getEnv("ADMIN_BOOTSTRAP_USERNAME", ""),
		AdminBootstrapPassword: getEnv("ADMIN_BOOTSTRAP_PASSWORD", ""),
		AdminBootstrapEmail:    getEnv("ADMIN_BOOTSTRAP_EMAIL", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// IsAdminEmail reports whether the address is on the admin allow-list.
func (c *Config) IsAdminEmail(email string) bool {
	for _, allowed := range c.AdminEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}
