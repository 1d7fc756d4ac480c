// internal/infra/config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment configuration for the whole service.
type Config struct {
	Port string

	// GCP / Firebase
	GCPProjectID      string
	FirebaseProjectID string
	RTDBURL           string
	CredentialsFile   string

	// Schedule persistence backend: "rtdb" (default) or "postgres".
	ScheduleBackend string
	PostgresDSN     string

	// Notifications (SendGrid). When the API key and its secret name are both
	// empty, notifications fall back to the log notifier.
	SendGridAPIKey     string
	SendGridSecretName string
	NotifyFrom         string
	NotifyTo           string

	// Address lookup
	CNPJBaseURL string

	// Auth: require Firebase ID tokens on mutating endpoints.
	AuthEnabled bool
}

// Load reads .env (best-effort, local dev) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}

	defaultProject := getenvDefault("GCP_PROJECT_ID", "")

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		GCPProjectID:      defaultProject,
		FirebaseProjectID: getenvDefault("FIREBASE_PROJECT_ID", defaultProject),
		RTDBURL:           os.Getenv("FIREBASE_DATABASE_URL"),
		CredentialsFile:   os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		ScheduleBackend: getenvDefault("SCHEDULE_BACKEND", "rtdb"),
		PostgresDSN:     os.Getenv("POSTGRES_DSN"),

		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		SendGridSecretName: os.Getenv("SENDGRID_SECRET_NAME"),
		NotifyFrom:         os.Getenv("NOTIFY_FROM"),
		NotifyTo:           os.Getenv("NOTIFY_TO"),

		CNPJBaseURL: os.Getenv("CNPJ_BASE_URL"),

		AuthEnabled: getenvDefault("AUTH_ENABLED", "false") == "true",
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
