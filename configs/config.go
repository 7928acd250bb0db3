package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration

	OrderPollInterval time.Duration
	CallPollInterval  time.Duration

	SessionDB string
	DeviceID  string
	Platform  string

	// stand-in backend (-mock)
	MockAddr  string
	JWTSecret string
	JWTTTL    time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, reading environment only")
	}

	return &Config{
		BaseURL:           getEnv("ORDERQ_BASE_URL", "https://staging.orderq.de/api"),
		HTTPTimeout:       getDuration("HTTP_TIMEOUT", 15*time.Second),
		OrderPollInterval: getDuration("ORDER_POLL_INTERVAL", 2*time.Second),
		CallPollInterval:  getDuration("CALL_POLL_INTERVAL", 5*time.Second),
		SessionDB:         getEnv("SESSION_DB", "session.db"),
		DeviceID:          getEnv("DEVICE_ID", ""), // empty: resolved from the device row at startup
		Platform:          getEnv("PLATFORM", "terminal"),
		MockAddr:          getEnv("MOCK_ADDR", ":8000"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            getDuration("JWT_TTL", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("bad duration, using default")
		return fallback
	}
	return d
}
