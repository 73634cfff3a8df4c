// Package store persists the planner collections as JSON records in a
// key-value backend. Failures never propagate as errors that interrupt the
// caller: reads degrade to empty collections or defaults, writes are
// dropped, and each call reports what happened through an Outcome.
package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/web3-frozen/planner/internal/model"
)

// Keys of the persisted records.
const (
	KeyTasks      = "planner_tasks"
	KeyGoals      = "planner_goals"
	KeyCategories = "planner_categories"
	// KeySettings is reserved for external collaborators. The core never
	// populates or reads it; ClearAll removes it along with the rest.
	KeySettings = "planner_settings"
)

var allKeys = []string{KeyTasks, KeyGoals, KeyCategories, KeySettings}

// KV is the minimal contract a persistence backend provides.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Outcome reports whether a store call reached the backend. By the time the
// caller sees it the failure is already absorbed (data degraded or the write
// dropped), so callers may surface Err as a warning or ignore it.
type Outcome struct {
	OK  bool
	Err error
}

func succeeded() Outcome { return Outcome{OK: true} }
func failed(err error) Outcome { return Outcome{Err: err} }

// Store is the typed adapter over a KV backend. A nil KV behaves like an
// absent store: loads return empty collections or defaults, writes succeed
// without effect.
type Store struct {
	kv  KV
	log *slog.Logger
}

// New builds a Store over kv. A nil logger falls back to slog.Default.
func New(kv KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, log: logger}
}

// LoadTasks reads the task record. Missing or unreadable data yields an
// empty collection.
func (s *Store) LoadTasks(ctx context.Context) ([]model.Task, Outcome) {
	tasks, out := loadRecord[model.Task](ctx, s, KeyTasks)
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, out
}

// SaveTasks overwrites the task record with the full collection.
func (s *Store) SaveTasks(ctx context.Context, tasks []model.Task) Outcome {
	return saveRecord(ctx, s, KeyTasks, tasks)
}

// LoadGoals reads the goal record. Missing or unreadable data yields an
// empty collection.
func (s *Store) LoadGoals(ctx context.Context) ([]model.Goal, Outcome) {
	goals, out := loadRecord[model.Goal](ctx, s, KeyGoals)
	if goals == nil {
		goals = []model.Goal{}
	}
	return goals, out
}

// SaveGoals overwrites the goal record with the full collection.
func (s *Store) SaveGoals(ctx context.Context, goals []model.Goal) Outcome {
	return saveRecord(ctx, s, KeyGoals, goals)
}

// LoadCategories reads the category record. A fresh store is seeded with the
// default set, the one side-effecting read in the system. Unreadable data
// degrades to the defaults without seeding.
func (s *Store) LoadCategories(ctx context.Context) ([]model.Category, Outcome) {
	if s.kv == nil {
		return model.DefaultCategories(), succeeded()
	}
	data, found, err := s.kv.Get(ctx, KeyCategories)
	if err != nil {
		s.log.Error("load record failed", "key", KeyCategories, "error", err)
		return model.DefaultCategories(), failed(err)
	}
	if !found {
		defaults := model.DefaultCategories()
		if out := saveRecord(ctx, s, KeyCategories, defaults); !out.OK {
			return defaults, out
		}
		return defaults, succeeded()
	}
	var cats []model.Category
	if err := json.Unmarshal(data, &cats); err != nil {
		s.log.Error("decode record failed", "key", KeyCategories, "error", err)
		return model.DefaultCategories(), failed(err)
	}
	return cats, succeeded()
}

// SaveCategories overwrites the category record with the full collection.
func (s *Store) SaveCategories(ctx context.Context, cats []model.Category) Outcome {
	return saveRecord(ctx, s, KeyCategories, cats)
}

// ClearAll removes every planner record, the reserved settings key included.
func (s *Store) ClearAll(ctx context.Context) Outcome {
	if s.kv == nil {
		return succeeded()
	}
	var firstErr error
	for _, key := range allKeys {
		if err := s.kv.Delete(ctx, key); err != nil {
			s.log.Error("clear record failed", "key", key, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return failed(firstErr)
	}
	return succeeded()
}

func loadRecord[T any](ctx context.Context, s *Store, key string) ([]T, Outcome) {
	if s.kv == nil {
		return nil, succeeded()
	}
	data, found, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Error("load record failed", "key", key, "error", err)
		return nil, failed(err)
	}
	if !found {
		return nil, succeeded()
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Error("decode record failed", "key", key, "error", err)
		return nil, failed(err)
	}
	return items, succeeded()
}

func saveRecord[T any](ctx context.Context, s *Store, key string, items []T) Outcome {
	if s.kv == nil {
		return succeeded()
	}
	data, err := json.Marshal(items)
	if err != nil {
		s.log.Error("encode record failed", "key", key, "error", err)
		return failed(err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		s.log.Error("save record failed", "key", key, "error", err)
		return failed(err)
	}
	return succeeded()
}
