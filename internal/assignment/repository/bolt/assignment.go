package bolt

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"homework-assistant/internal/assignment/repository"
	"homework-assistant/internal/model"
	"homework-assistant/pkg/boltdb"
)

// Load returns every assignment. Records that do not decode are skipped and
// logged; a broken record never blocks startup.
func (r *implRepository) Load(ctx context.Context) ([]model.Assignment, error) {
	var out []model.Assignment
	err := r.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(boltdb.BucketAssignments)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var a model.Assignment
			if err := json.Unmarshal(v, &a); err != nil {
				r.l.Warnf(ctx, "internal.assignment.repository.bolt.Load: skipping record %s: %v", k, err)
				return nil
			}
			out = append(out, a)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	return out, nil
}

func (r *implRepository) Upsert(ctx context.Context, a model.Assignment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	err = r.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(boltdb.BucketAssignments)
		if err != nil {
			return err
		}
		return b.Put([]byte(a.ID), data)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(boltdb.BucketAssignments)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}
