package sqlite

import (
	"database/sql"

	"homework-assistant/internal/conversation/repository"
	"homework-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a repository over the sessions and turns tables of db.
func New(db *sql.DB, l log.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}
