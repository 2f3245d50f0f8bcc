package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv string
	Port   string

	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	DBSSLMode     string
	DBAutoMigrate bool
	DBMaxRetries  int

	RedisAddr string

	KafkaBroker        string
	KafkaConsumerGroup string
	OutboxPollInterval time.Duration

	JWTSecret string
}

// Load reads configuration from the environment. main loads .env through
// godotenv before calling it.
func Load() *Config {
	return &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "3000"),

		DBHost:        getEnv("DB_HOST", "localhost"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "payroll"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DBAutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false),
		DBMaxRetries:  getEnvInt("DB_MAX_RETRIES", 5),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		KafkaBroker:        getEnv("KAFKA_BROKER", ""),
		KafkaConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "go-payroll"),
		OutboxPollInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),

		JWTSecret: getEnv("JWT_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}
