package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Addr         string
	DatabasePath string
	SecretKey    string

	AdminUsername     string
	AdminPasswordHash string

	SessionRedisAddr string
	SessionTTL       time.Duration
}

var C Config

// Load reads .env (if present) and the process environment into C.
// ADMIN_PASSWORD may be supplied either as plain text or as a bcrypt
// hash; plain values are hashed here so only the hash is kept in memory.
func Load() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	C = Config{
		Addr:             getEnv("ADDR", ":8080"),
		DatabasePath:     getEnv("DATABASE_PATH", "hackhub.sqlite"),
		SecretKey:        getEnv("SECRET_KEY", "dev-key-change-me"),
		AdminUsername:    getEnv("ADMIN_USERNAME", "admin"),
		SessionRedisAddr: os.Getenv("SESSION_REDIS_ADDR"),
		SessionTTL:       time.Duration(getEnvInt("SESSION_TTL_HOURS", 168)) * time.Hour,
	}
	if C.SecretKey == "dev-key-change-me" {
		log.Println("WARNING: SECRET_KEY is unset, using the development default")
	}

	password := getEnv("ADMIN_PASSWORD", "changeme")
	if isBcryptHash(password) {
		C.AdminPasswordHash = password
		return
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	C.AdminPasswordHash = string(hashed)
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
