package storage

import (
	"commit-impact/internal/config"
	"commit-impact/internal/domain"
)

// Storage persists and loads impact reports (e.g. for the report viewer).
type Storage interface {
	Save(report *domain.ImpactReport) error
	Load() (*domain.ImpactReport, error)
}

// JSONStorage stores reports in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
