// Package config provides configuration management for the slotting service.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	Cache     CacheConfig
	Optimizer OptimizerConfig
	Catalog   CatalogConfig
	Auth      AuthConfig
	Database  DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	MaxUploadBytes int64
	MaxBodyBytes   int64
	// IdempotencyTTL is how long POST responses replay for a repeated Idempotency-Key.
	// Zero disables idempotency.
	IdempotencyTTL time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// LoggingConfig holds logger configuration.
type LoggingConfig struct {
	Level  string
	Pretty bool
}

// CacheConfig holds result cache configuration. A Size of 0 disables the cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// OptimizerConfig holds packing optimizer configuration.
type OptimizerConfig struct {
	// TrialWorkers bounds orientation trials searching at once within a request, across all its SKUs.
	TrialWorkers int
	// SKUWorkers bounds concurrently scheduled SKU evaluations per request.
	SKUWorkers int
	// OracleTimeout bounds a single placement oracle call. Zero disables the limit.
	OracleTimeout time.Duration
	// MaxSKUs caps the batch size of one optimization request.
	MaxSKUs int
}

// CatalogConfig holds location and pallet catalog configuration.
type CatalogConfig struct {
	// File is an optional YAML catalog that replaces the built-in defaults.
	File string
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled          bool
	APIKeys          map[string]bool
	JWTSecretKey     string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	RunsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 5<<20)),
			MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
			IdempotencyTTL: getEnvDuration("IDEMPOTENCY_TTL", 5*time.Minute),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Optimizer: OptimizerConfig{
			TrialWorkers:  getEnvInt("OPTIMIZER_TRIAL_WORKERS", runtime.NumCPU()),
			SKUWorkers:    getEnvInt("OPTIMIZER_SKU_WORKERS", runtime.NumCPU()),
			OracleTimeout: getEnvDuration("OPTIMIZER_ORACLE_TIMEOUT", 5*time.Second),
			MaxSKUs:       getEnvInt("OPTIMIZER_MAX_SKUS", 10),
		},
		Catalog: CatalogConfig{
			File: getEnv("CATALOG_FILE", ""),
		},
		Auth: AuthConfig{
			Enabled:          getEnvBool("AUTH_ENABLED", false),
			APIKeys:          parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey:     getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET_KEY", "your-refresh-secret-key-change-in-production"),
			AccessTokenTTL:   getEnvDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute),
			RefreshTokenTTL:  getEnvDuration("JWT_REFRESH_TOKEN_TTL", 7*24*time.Hour),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "slotting_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			RunsTTL:                        getEnvDuration("MONGODB_RUNS_TTL", 90*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

// Validate reports settings that would make the service misbehave.
func (c Config) Validate() error {
	var errs []error
	if c.Optimizer.MaxSKUs < 1 {
		errs = append(errs, fmt.Errorf("OPTIMIZER_MAX_SKUS must be at least 1, got %d", c.Optimizer.MaxSKUs))
	}
	if c.Optimizer.TrialWorkers < 1 {
		errs = append(errs, fmt.Errorf("OPTIMIZER_TRIAL_WORKERS must be at least 1, got %d", c.Optimizer.TrialWorkers))
	}
	if c.Optimizer.SKUWorkers < 1 {
		errs = append(errs, fmt.Errorf("OPTIMIZER_SKU_WORKERS must be at least 1, got %d", c.Optimizer.SKUWorkers))
	}
	if c.Optimizer.OracleTimeout < 0 {
		errs = append(errs, errors.New("OPTIMIZER_ORACLE_TIMEOUT must not be negative"))
	}
	if c.Cache.Size < 0 {
		errs = append(errs, fmt.Errorf("CACHE_SIZE must not be negative, got %d", c.Cache.Size))
	}
	if c.Auth.Enabled && (c.Auth.JWTSecretKey == "" || c.Auth.JWTRefreshSecret == "") {
		errs = append(errs, errors.New("JWT secrets are required when AUTH_ENABLED is true"))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
