package config

import (
	"os"
	"strconv"
)

// InsecureDevSecret signs tokens when JWT_SECRET is unset. Never rely on it
// outside local development.
const InsecureDevSecret = "dev-secret-change-in-production"

// Config holds all application configuration, loaded once at startup and
// passed explicitly to components.
type Config struct {
	Port      string
	ClientURL string

	MongoURI string
	MongoDB  string

	JWTSecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string

	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Load builds Config from environment variables with development defaults.
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "5000"),
		ClientURL: getEnv("CLIENT_URL", "http://localhost:5173"),

		MongoURI: getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGODB_DB", "campusconnect"),

		JWTSecret: getEnv("JWT_SECRET", InsecureDevSecret),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
		EmailFrom:     getEnv("EMAIL_FROM_ADDRESS", "noreply@campusconnect.test"),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "CampusConnect"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@campusconnect.test"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminName:     getEnv("ADMIN_NAME", "Admin"),
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
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
