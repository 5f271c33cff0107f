package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Snapshot SnapshotConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Stripe   StripeConfig
	Resend   ResendConfig
}

type ServerConfig struct {
	Port string
}

// SnapshotConfig selects the snapshot backend: "file" (default),
// "database" or "s3".
type SnapshotConfig struct {
	Backend  string
	DataDir  string
	Database string
	Bucket   string
	Region   string
}

type JWTConfig struct {
	Secret string
}

type AdminConfig struct {
	Email        string
	PasswordHash string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type ResendConfig struct {
	APIKey string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Snapshot: SnapshotConfig{
			Backend:  getEnv("SNAPSHOT_BACKEND", "file"),
			DataDir:  getEnv("SNAPSHOT_DIR", "./data"),
			Database: getEnv("DATABASE_URL", ""),
			Bucket:   getEnv("SNAPSHOT_BUCKET", "streamvault-snapshots"),
			Region:   getEnv("AWS_REGION", "eu-central-1"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", "admin@streamvault.tv"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Stripe: StripeConfig{
			SecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
			WebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		},
		Resend: ResendConfig{
			APIKey: getEnv("RESEND_API_KEY", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
