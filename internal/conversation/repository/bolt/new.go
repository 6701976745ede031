package bolt

import (
	"go.etcd.io/bbolt"

	"homework-assistant/internal/conversation/repository"
	"homework-assistant/pkg/log"
)

type implRepository struct {
	db *bbolt.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a repository over the Sessions and Turns buckets of db. Turns
// live in one nested bucket per session, keyed by the bucket sequence.
func New(db *bbolt.DB, l log.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}
