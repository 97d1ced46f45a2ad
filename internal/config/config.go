package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	VocabularySourceEmbedded = "embedded"
	VocabularySourceFile     = "file"
	VocabularySourcePostgres = "postgres"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Storage    StorageConfig
	Vocabulary VocabularyConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type StorageConfig struct {
	UploadPath        string
	MaxFileSize       int64
	MaxRequestSize    int64
	AllowedExtensions []string
}

type VocabularyConfig struct {
	Source string
	File   string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			Env:          getEnv("ENV", "development"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", "30s"),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", "30s"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resume_skill_ranker"),
		},
		Storage: StorageConfig{
			UploadPath:        getEnv("UPLOAD_PATH", filepath.Join(os.TempDir(), "resume-skill-ranker")),
			MaxFileSize:       getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			MaxRequestSize:    getEnvAsInt64("MAX_REQUEST_SIZE", 52428800),
			AllowedExtensions: getEnvAsList("ALLOWED_EXTENSIONS", []string{".pdf", ".txt"}),
		},
		Vocabulary: VocabularyConfig{
			Source: strings.ToLower(getEnv("VOCABULARY_SOURCE", VocabularySourceEmbedded)),
			File:   getEnv("VOCABULARY_FILE", ""),
		},
		Log: LogConfig{
			JSON:  getEnvAsBool("LOG_JSON", false),
			Debug: getEnvAsBool("LOG_DEBUG", false),
		},
	}
}

// Validate reports configuration combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Vocabulary.Source {
	case VocabularySourceEmbedded, VocabularySourcePostgres:
	case VocabularySourceFile:
		if c.Vocabulary.File == "" {
			return fmt.Errorf("VOCABULARY_FILE is required when VOCABULARY_SOURCE=%s", VocabularySourceFile)
		}
	default:
		return fmt.Errorf("unknown VOCABULARY_SOURCE %q", c.Vocabulary.Source)
	}

	if c.Storage.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive")
	}
	if c.Storage.MaxRequestSize < c.Storage.MaxFileSize {
		return fmt.Errorf("MAX_REQUEST_SIZE must not be smaller than MAX_FILE_SIZE")
	}

	return nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

// getEnvAsList splits a comma separated value; entries are trimmed and lowercased.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
