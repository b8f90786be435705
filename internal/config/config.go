package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	SupabaseURL string
	SupabaseKey string
	ServerHost  string
	ServerPort  string
}

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),
		ServerHost:  getEnv("HOST", "0.0.0.0"),
		ServerPort:  getPort(),
	}, err
}

// HasStoreCredentials сообщает, заданы ли обязательные реквизиты Supabase.
func (c Config) HasStoreCredentials() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

// getPort перебирает PORT, SERVER_PORT и APP_PORT, затем дефолт.
func getPort() string {
	for _, key := range []string{"PORT", "SERVER_PORT", "APP_PORT"} {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return "3000"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
