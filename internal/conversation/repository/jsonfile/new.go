package jsonfile

import (
	"sync"
	"time"

	"homework-assistant/internal/conversation/repository"
	"homework-assistant/pkg/log"
)

type implRepository struct {
	path string
	l    log.Logger
	now  func() time.Time

	mu sync.Mutex
	// loaded is set once the file has been read; writes before that read it
	// first so they never replace history the mirror has not seen.
	loaded bool
	doc    fileFormat
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a repository that keeps the whole chat history in one JSON file.
func New(path string, l log.Logger) repository.Repository {
	return &implRepository{
		path: path,
		l:    l,
		now:  time.Now,
		doc:  fileFormat{Version: fileVersion},
	}
}
