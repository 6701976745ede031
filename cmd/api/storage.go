package main

import (
	"fmt"
	"os"

	"homework-assistant/config"
	assignmentRepo "homework-assistant/internal/assignment/repository"
	assignmentBolt "homework-assistant/internal/assignment/repository/bolt"
	assignmentJSON "homework-assistant/internal/assignment/repository/jsonfile"
	assignmentSQLite "homework-assistant/internal/assignment/repository/sqlite"
	conversationRepo "homework-assistant/internal/conversation/repository"
	conversationBolt "homework-assistant/internal/conversation/repository/bolt"
	conversationJSON "homework-assistant/internal/conversation/repository/jsonfile"
	conversationSQLite "homework-assistant/internal/conversation/repository/sqlite"
	"homework-assistant/pkg/boltdb"
	"homework-assistant/pkg/log"
	"homework-assistant/pkg/sqlite"
)

// stores are the repositories of the configured driver. close releases the
// underlying database, if any.
type stores struct {
	assignments   assignmentRepo.Repository
	conversations conversationRepo.Repository
	close         func() error
}

func openStores(cfg config.StorageConfig, l log.Logger) (stores, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return stores{}, fmt.Errorf("create data dir: %w", err)
	}

	switch cfg.Driver {
	case config.StorageDriverBolt:
		db, err := boltdb.Open(cfg.BoltPath())
		if err != nil {
			return stores{}, err
		}
		return stores{
			assignments:   assignmentBolt.New(db, l),
			conversations: conversationBolt.New(db, l),
			close:         db.Close,
		}, nil

	case config.StorageDriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath())
		if err != nil {
			return stores{}, err
		}
		return stores{
			assignments:   assignmentSQLite.New(db, l),
			conversations: conversationSQLite.New(db, l),
			close:         db.Close,
		}, nil

	default:
		return stores{
			assignments:   assignmentJSON.New(cfg.AssignmentsPath(), l),
			conversations: conversationJSON.New(cfg.ChatHistoryPath(), l),
			close:         func() error { return nil },
		}, nil
	}
}
