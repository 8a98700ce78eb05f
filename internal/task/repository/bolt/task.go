package bolt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	bbolt "go.etcd.io/bbolt"

	"lifeplanner/internal/model"
	repo "lifeplanner/internal/task/repository"
)

// InsertTask assigns a uuid and writes the document.
func (r *Repository) InsertTask(ctx context.Context, opt repo.InsertTaskOptions) (model.Task, error) {
	t := opt.Task
	t.ID = uuid.NewString()

	payload, err := json.Marshal(encodeDoc(t))
	if err != nil {
		r.l.Errorf(ctx, "task/repository/bolt.InsertTask marshal: %v", err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	err = r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(r.bucket).Put([]byte(t.ID), payload)
	})
	if err != nil {
		r.l.Errorf(ctx, "task/repository/bolt.InsertTask: %v", err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	// Round-trip through the wire format so callers observe the same
	// normalized timestamps a later read would return.
	return decodeDoc(t.ID, encodeDoc(t))
}

// QueryAllTasks reads every document in the bucket. Documents that fail
// to decode are skipped rather than failing the whole read.
func (r *Repository) QueryAllTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task

	err := r.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(r.bucket).ForEach(func(k, v []byte) error {
			var doc taskDoc
			if err := json.Unmarshal(v, &doc); err != nil {
				r.l.Warnf(ctx, "task/repository/bolt.QueryAllTasks: skipping bad document %s: %v", k, err)
				return nil
			}
			t, err := decodeDoc(string(k), doc)
			if err != nil {
				r.l.Warnf(ctx, "task/repository/bolt.QueryAllTasks: skipping document %s: %v", k, err)
				return nil
			}
			tasks = append(tasks, t)
			return nil
		})
	})
	if err != nil {
		r.l.Errorf(ctx, "task/repository/bolt.QueryAllTasks: %v", err)
		return nil, repo.ErrFailedToQuery
	}

	return tasks, nil
}

// PatchTask merges the present option fields into the stored document.
func (r *Repository) PatchTask(ctx context.Context, id string, opt repo.PatchTaskOptions) error {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(r.bucket)

		raw := bucket.Get([]byte(id))
		if raw == nil {
			return repo.ErrTaskNotExists
		}

		var doc taskDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		applyPatch(&doc, opt)

		payload, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(id), payload)
	})

	if err == repo.ErrTaskNotExists {
		return err
	}
	if err != nil {
		r.l.Errorf(ctx, "task/repository/bolt.PatchTask: %v", err)
		return repo.ErrFailedToPatch
	}
	return nil
}

// RemoveTask deletes the document; removing a missing id is a no-op.
func (r *Repository) RemoveTask(ctx context.Context, id string) error {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(r.bucket).Delete([]byte(id))
	})
	if err != nil {
		r.l.Errorf(ctx, "task/repository/bolt.RemoveTask: %v", err)
		return repo.ErrFailedToRemove
	}
	return nil
}

func applyPatch(doc *taskDoc, opt repo.PatchTaskOptions) {
	if opt.TaskName != nil {
		doc.TaskName = *opt.TaskName
	}
	if opt.Notes != nil {
		doc.Notes = *opt.Notes
	}
	if opt.Category != nil {
		doc.Category = string(*opt.Category)
	}
	if opt.Priority != nil {
		doc.Priority = string(*opt.Priority)
	}
	if opt.Status != nil {
		doc.Status = string(*opt.Status)
	}
	if opt.StartTime != nil {
		doc.StartTime = opt.StartTime.UTC().Format(time.RFC3339)
	}
	if opt.EndTime != nil {
		doc.EndTime = opt.EndTime.UTC().Format(time.RFC3339)
	}
	if opt.ReminderTime != nil {
		s := opt.ReminderTime.UTC().Format(time.RFC3339)
		doc.ReminderTime = &s
	}
	if opt.Location != nil {
		doc.Location = *opt.Location
	}
	if opt.AttachmentURL != nil {
		doc.AttachmentURL = *opt.AttachmentURL
	}
}
