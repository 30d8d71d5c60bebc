package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	ServerPort     string
	JWTSecret      string
	InternalKey    string
	TaskServiceURL string
	TaskTimeout    time.Duration
	MigrationsPath string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "board_user"),
		DBPassword:     getEnv("DB_PASSWORD", "board_pass"),
		DBName:         getEnv("DB_NAME", "board_db"),
		ServerPort:     getEnv("SERVER_PORT", "3002"),
		JWTSecret:      getEnv("JWT_SECRET", "supersecretkey"),
		InternalKey:    getEnv("INTERNAL_KEY", ""),
		TaskServiceURL: getEnv("TASK_SERVICE_URL", "http://localhost:3003"),
		TaskTimeout:    time.Duration(getEnvInt("TASK_TIMEOUT_SECONDS", 5)) * time.Second,
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultVal
}
