package storage

import (
	"fmt"

	"github.com/yourname/focustimer/internal"
	"github.com/yourname/focustimer/internal/config"
)

func New(cfg *config.Config, logger internal.Logger) (Backend, error) {
	switch cfg.StorageBackend {
	case "file":
		return NewFileStorage(cfg.SessionsFile, cfg.StatsFile, cfg.SchedulesFile, logger)
	case "postgres":
		return NewPostgresStorage(cfg.PostgresDSN, logger)
	case "mongo":
		return NewMongoStorage(cfg.MongoURI, cfg.MongoDB, logger)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.StorageBackend)
	}
}
