package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Rate limit defaults: 10 requests per rolling minute per client, buckets
// expiring after two idle intervals.
const (
	DEFAULT_RATE_LIMIT_CAPACITY     = 10
	DEFAULT_RATE_LIMIT_INTERVAL_SEC = 60
	DEFAULT_RATE_BUCKET_TTL_SEC     = 120
)

// Cache TTLs: mock results are cached shorter, reflecting lower confidence.
const (
	DEFAULT_CACHE_TTL_SEC      = 600
	DEFAULT_MOCK_CACHE_TTL_SEC = 120
)

const DEFAULT_PLACES_ENDPOINT_BASE = "https://places.googleapis.com"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const MOCK_CATALOG_RESOURCE = "mock_catalog.json"

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	ServerAddr string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PlacesAPIKey       string
	PlacesEndpointBase string
	PlacesLanguageCode string

	RateLimitCapacity    int
	RateLimitIntervalSec int
	RateBucketTTLSec     int

	CacheTTLSec     int
	MockCacheTTLSec int

	JWTSigningKey   string
	EnableDebugPlot bool
}

// Load reads the configuration from environment variables, falling back to
// defaults. An empty PLACES_API_KEY selects the mock places client.
func Load() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		PlacesAPIKey:       getEnv("PLACES_API_KEY", ""),
		PlacesEndpointBase: getEnv("PLACES_ENDPOINT_BASE", DEFAULT_PLACES_ENDPOINT_BASE),
		PlacesLanguageCode: getEnv("PLACES_LANGUAGE_CODE", "ja"),

		RateLimitCapacity:    getEnvInt("RATE_LIMIT_CAPACITY", DEFAULT_RATE_LIMIT_CAPACITY),
		RateLimitIntervalSec: getEnvInt("RATE_LIMIT_INTERVAL_SEC", DEFAULT_RATE_LIMIT_INTERVAL_SEC),
		RateBucketTTLSec:     getEnvInt("RATE_BUCKET_TTL_SEC", DEFAULT_RATE_BUCKET_TTL_SEC),

		CacheTTLSec:     getEnvInt("CACHE_TTL_SEC", DEFAULT_CACHE_TTL_SEC),
		MockCacheTTLSec: getEnvInt("MOCK_CACHE_TTL_SEC", DEFAULT_MOCK_CACHE_TTL_SEC),

		JWTSigningKey:   getEnv("JWT_SIGNING_KEY", ""),
		EnableDebugPlot: getEnvBool("ENABLE_DEBUG_PLOT", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
