package jsonfile

import (
	"sync"
	"time"

	"homework-assistant/internal/assignment/repository"
	"homework-assistant/pkg/log"
)

type implRepository struct {
	path string
	l    log.Logger
	now  func() time.Time

	mu sync.Mutex
	// loaded is set once the file has been read; writes before that read it
	// first so they never replace records the mirror has not seen.
	loaded  bool
	records map[string]fileRecord
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a repository that keeps every assignment in one JSON file.
func New(path string, l log.Logger) repository.Repository {
	return &implRepository{
		path:    path,
		l:       l,
		now:     time.Now,
		records: make(map[string]fileRecord),
	}
}
