package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Server   ServerConfig
	Chunking ChunkingConfig
	Embed    EmbeddingConfig
	OCR      OCRConfig
	Worker   WorkerConfig
	Notify   NotifyConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// RedisConfig holds broker-related configuration
type RedisConfig struct {
	URL    string
	JobTTL time.Duration
}

// ServerConfig holds the gRPC producer facade configuration
type ServerConfig struct {
	GRPCAddr string
}

// ChunkingConfig holds text chunking parameters
type ChunkingConfig struct {
	ChunkSize    int
	ChunkOverlap int
	MinChunkSize int
}

// EmbeddingConfig holds embedding provider configuration
type EmbeddingConfig struct {
	APIKey     string
	Model      string
	Dimensions int
	CacheTTL   time.Duration
	Timeout    time.Duration
}

// OCRConfig holds hybrid extraction configuration
type OCRConfig struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string
	TessdataDir   string
	PSM           int
	OEM           int

	VisionEndpoint string
	VisionAPIKey   string
	VisionEnabled  bool

	FallbackThreshold      float32
	LowConfidenceThreshold float32
}

// WorkerConfig holds queue consumer configuration
type WorkerConfig struct {
	Concurrency    int
	DequeueWait    time.Duration
	JobTimeout     time.Duration
	FailureBackoff time.Duration
}

// NotifyConfig holds notifier daemon configuration
type NotifyConfig struct {
	Addr         string
	WriteTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Redis: RedisConfig{
			URL:    getEnv("REDIS_URL", "redis://localhost:6379"),
			JobTTL: time.Duration(getEnvAsInt("JOB_TTL_SECONDS", 86400)) * time.Second,
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Chunking: ChunkingConfig{
			ChunkSize:    getEnvAsInt("CHUNK_SIZE", 800),
			ChunkOverlap: getEnvAsInt("CHUNK_OVERLAP", 100),
			MinChunkSize: getEnvAsInt("MIN_CHUNK_SIZE", 100),
		},
		Embed: EmbeddingConfig{
			APIKey:     getEnv("OPENAI_API_KEY", ""),
			Model:      getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			Dimensions: getEnvAsInt("EMBEDDING_DIMENSIONS", 1536),
			CacheTTL:   getEnvAsDuration("EMBEDDING_CACHE_TTL", time.Hour),
			Timeout:    getEnvAsDuration("EMBEDDING_TIMEOUT", 45*time.Second),
		},
		OCR: OCRConfig{
			Tesseract:              getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang:          getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:            getEnv("TESSDATA_PREFIX", ""),
			PSM:                    getEnvAsInt("TESSERACT_PSM", 6),
			OEM:                    getEnvAsInt("TESSERACT_OEM", 0),
			VisionEndpoint:         getEnv("VISION_ENDPOINT", ""),
			VisionAPIKey:           getEnv("VISION_API_KEY", ""),
			VisionEnabled:          getEnvAsBool("VISION_ENABLED", false),
			FallbackThreshold:      getEnvAsFloat32("OCR_FALLBACK_THRESHOLD", 0.65),
			LowConfidenceThreshold: getEnvAsFloat32("OCR_LOW_CONFIDENCE_THRESHOLD", 0.40),
		},
		Worker: WorkerConfig{
			Concurrency:    getEnvAsInt("WORKER_CONCURRENCY", 2),
			DequeueWait:    getEnvAsDuration("WORKER_DEQUEUE_WAIT", 5*time.Second),
			JobTimeout:     getEnvAsDuration("WORKER_JOB_TIMEOUT", 3*time.Minute),
			FailureBackoff: getEnvAsDuration("WORKER_FAILURE_BACKOFF", time.Second),
		},
		Notify: NotifyConfig{
			Addr:         getEnv("NOTIFY_ADDR", ":8090"),
			WriteTimeout: getEnvAsDuration("NOTIFY_WRITE_TIMEOUT", 5*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Redis.URL == "" {
		return NewAppError("CONFIG_ERROR", "REDIS_URL is required", ErrInvalidInput)
	}
	if c.Embed.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Chunking.ChunkOverlap >= c.Chunking.ChunkSize {
		return NewAppError("CONFIG_ERROR", "CHUNK_OVERLAP must be smaller than CHUNK_SIZE", ErrInvalidInput)
	}
	return nil
}
