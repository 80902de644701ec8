package config

import (
	"os"
	"strings"
)

type Config struct {
	Port                    string
	Env                     string
	FirebaseCredentialsPath string
	PostgresConnStr         string
	MongoURI                string
	RedisAddr               string
	JWTSecret               string
	WebhookSecret           string
	SchoolEmailDomains      []string
}

func Load() *Config {
	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
		PostgresConnStr:         getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:                getEnv("MONGO_URI", ""),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:               getEnv("JWT_SECRET", "supersecretjwtkey"),
		WebhookSecret:           getEnv("WEBHOOK_SECRET", ""),
		SchoolEmailDomains:      splitDomains(getEnv("SCHOOL_EMAIL_DOMAINS", "")),
	}
}

// splitDomains parses a comma separated domain list. An empty list means
// every email counts as a school email, which keeps local development easy.
func splitDomains(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	domains := make([]string, 0, len(parts))
	for _, p := range parts {
		if d := strings.TrimSpace(p); d != "" {
			domains = append(domains, d)
		}
	}
	return domains
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
