package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"homework-assistant/internal/conversation/repository"
	"homework-assistant/internal/model"
	"homework-assistant/pkg/boltdb"
)

// Load returns every session ordered by creation time. Records that do not
// decode are skipped and logged.
func (r *implRepository) Load(ctx context.Context) ([]model.Session, error) {
	var out []model.Session
	err := r.db.View(func(tx *bbolt.Tx) error {
		sessions := tx.Bucket(boltdb.BucketSessions)
		if sessions == nil {
			return nil
		}
		turns := tx.Bucket(boltdb.BucketTurns)

		return sessions.ForEach(func(k, v []byte) error {
			var s model.Session
			if err := json.Unmarshal(v, &s); err != nil {
				r.l.Warnf(ctx, "internal.conversation.repository.bolt.Load: skipping session %s: %v", k, err)
				return nil
			}
			if turns == nil {
				out = append(out, s)
				return nil
			}
			if b := turns.Bucket(k); b != nil {
				// Big-endian keys iterate in append order.
				err := b.ForEach(func(seq, data []byte) error {
					var t model.Turn
					if err := json.Unmarshal(data, &t); err != nil {
						r.l.Warnf(ctx, "internal.conversation.repository.bolt.Load: skipping turn %d of %s: %v", binary.BigEndian.Uint64(seq), k, err)
						return nil
					}
					s.Turns = append(s.Turns, t)
					return nil
				})
				if err != nil {
					return err
				}
			}
			out = append(out, s)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *implRepository) CreateSession(ctx context.Context, s model.SessionSummary) error {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		return putSession(tx, s.ID, model.Session{ID: s.ID, CreatedAt: s.CreatedAt})
	})
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToCreate, err)
	}
	return nil
}

// AppendTurns writes the turns in a single transaction.
func (r *implRepository) AppendTurns(ctx context.Context, sessionID string, turns []model.Turn) error {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		if len(turns) > 0 {
			if err := putSession(tx, sessionID, model.Session{ID: sessionID, CreatedAt: turns[0].Timestamp}); err != nil {
				return err
			}
		}

		root, err := tx.CreateBucketIfNotExists(boltdb.BucketTurns)
		if err != nil {
			return err
		}
		b, err := root.CreateBucketIfNotExists([]byte(sessionID))
		if err != nil {
			return err
		}
		for _, t := range turns {
			data, err := json.Marshal(t)
			if err != nil {
				return err
			}
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			if err := b.Put(seqKey(seq), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToAppend, err)
	}
	return nil
}

// putSession stores the session header unless it already exists.
func putSession(tx *bbolt.Tx, id string, s model.Session) error {
	b, err := tx.CreateBucketIfNotExists(boltdb.BucketSessions)
	if err != nil {
		return err
	}
	if b.Get([]byte(id)) != nil {
		return nil
	}
	s.Turns = nil
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return b.Put([]byte(id), data)
}

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}
