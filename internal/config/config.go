package config

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	LogLevel       string
	HTTPAddr       string
	StorageBackend string
	PostgresDSN    string
	MongoURI       string
	MongoDB        string
	SessionsFile   string
	StatsFile      string
	SchedulesFile  string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:            getEnv("APP_ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
			StorageBackend: getEnv("STORAGE_BACKEND", "file"),
			PostgresDSN:    getEnv("POSTGRES_DSN", ""),
			MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
			MongoDB:        getEnv("MONGO_DB", "focustimer"),
			SessionsFile:   getEnv("SESSIONS_FILE", "data/sessions.json"),
			StatsFile:      getEnv("STATS_FILE", "data/stats.json"),
			SchedulesFile:  getEnv("SCHEDULES_FILE", "data/schedules.json"),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case "file":
		if c.SessionsFile == "" || c.StatsFile == "" || c.SchedulesFile == "" {
			return errors.New("file storage requires SESSIONS_FILE, STATS_FILE and SCHEDULES_FILE to be set")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "mongo":
		if c.MongoURI == "" || c.MongoDB == "" {
			return errors.New("MONGO_URI and MONGO_DB are required when STORAGE_BACKEND=mongo")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: file, postgres, mongo")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
