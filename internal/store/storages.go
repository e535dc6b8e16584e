package store

import (
	"github.com/MKhiriev/go-slide-form/internal/config"
	"github.com/MKhiriev/go-slide-form/internal/logger"
)

// Storages groups the repositories the server services depend on.
type Storages struct {
	Forms     FormRepository
	Responses ResponseRepository
}

// NewStorages builds the repositories on top of one database handle. The
// form repository is wrapped with the question cache when cfg enables it.
func NewStorages(db *DB, cfg config.Cache, log *logger.Logger) *Storages {
	forms := NewFormRepository(db, log)

	return &Storages{
		Forms:     NewCachedFormRepository(forms, cfg.QuestionsTTL, cfg.CleanupInterval),
		Responses: NewResponseRepository(db, log),
	}
}
