// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/qrdrop/service/internal/storage"
)

// Fixed artifact layout. The bucket name and path prefixes are not
// environment-configurable.
const (
	StorageBucket = "devops-ammar"
	LocalDir      = "qr_codes_local"
	RemotePrefix  = "qr_codes"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port          string
	AppEnv        string
	AllowedOrigin string

	// Object storage (AWS S3 in production, any S3-compatible endpoint such as MinIO locally)
	StorageAccessKey    string
	StorageSecretKey    string
	StorageRegion       string
	StorageEndpoint     string
	StorageUseSSL       bool
	StorageEnsureBucket bool
	StoragePublicBase   string // empty means https://<bucket>.s3.<region>.amazonaws.com
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	region := getEnv("AWS_REGION", "eu-north-1")

	return &Config{
		Port:          getEnv("PORT", "8000"),
		AppEnv:        getEnv("APP_ENV", "development"),
		AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),

		StorageAccessKey:    getEnv("AWS_ACCESS_KEY", ""),
		StorageSecretKey:    getEnv("AWS_SECRET_KEY", ""),
		StorageRegion:       region,
		StorageEndpoint:     getEnv("STORAGE_ENDPOINT", "s3."+region+".amazonaws.com"),
		StorageUseSSL:       getBool("STORAGE_USE_SSL", true),
		StorageEnsureBucket: getBool("STORAGE_ENSURE_BUCKET", false),
		StoragePublicBase:   getEnv("STORAGE_PUBLIC_BASE", ""),
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MinioOptions returns the object storage settings for storage.NewMinioStorage.
func (c *Config) MinioOptions() storage.MinioOptions {
	return storage.MinioOptions{
		Endpoint:     c.StorageEndpoint,
		AccessKey:    c.StorageAccessKey,
		SecretKey:    c.StorageSecretKey,
		Region:       c.StorageRegion,
		Bucket:       StorageBucket,
		UseSSL:       c.StorageUseSSL,
		PublicBase:   c.StoragePublicBase,
		EnsureBucket: c.StorageEnsureBucket,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return fallback
}
