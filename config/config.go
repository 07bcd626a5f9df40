package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration for the storefront service.
type Config struct {
	Port             string
	Env              string
	RedisURL         string
	StorageNamespace string
	GeocodeBaseURL   string
}

// Load reads configuration from the environment, with a best-effort .env
// file for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("APP_ENV", "development"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		StorageNamespace: getEnv("STORAGE_NAMESPACE", "quickbasket"),
		GeocodeBaseURL:   getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
