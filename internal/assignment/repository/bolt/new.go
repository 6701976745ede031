package bolt

import (
	"go.etcd.io/bbolt"

	"homework-assistant/internal/assignment/repository"
	"homework-assistant/pkg/log"
)

type implRepository struct {
	db *bbolt.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a repository over the Assignments bucket of db.
func New(db *bbolt.DB, l log.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}
