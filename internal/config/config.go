package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the storefront API.
type Config struct {
	DatabaseURL string
	RedisAddr   string
	AppPort     string
	JWTSecret   string

	// AdminPhone receives the operator WhatsApp alert for every new order.
	AdminPhone   string
	WhatsAppHost string

	// DeliveryFee is the flat charge applied to any non-empty cart.
	DeliveryFee float64

	// RequireAuthCheckout controls whether a signed-in user is required to
	// place an order. When false, guest checkout is allowed and orders are
	// stored without a user id.
	RequireAuthCheckout bool

	PlaceholderImage string
}

// Load reads .env when present and falls back to process environment variables.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		}
	}

	return &Config{
		DatabaseURL:         getEnv("DATABASE_URL", "postgres://localhost:5432/sarmstore?sslmode=disable"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		AppPort:             getEnv("APP_PORT", "8080"),
		JWTSecret:           getEnv("JWT_SECRET", "dev-secret-change-me"),
		AdminPhone:          getEnv("ADMIN_PHONE", "917006927825"),
		WhatsAppHost:        getEnv("WHATSAPP_HOST", "wa.me"),
		DeliveryFee:         getEnvFloat("DELIVERY_FEE", 50),
		RequireAuthCheckout: getEnvBool("REQUIRE_AUTH_CHECKOUT", true),
		PlaceholderImage:    getEnv("PLACEHOLDER_IMAGE", "assets/products/default-notebook.jpg"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
