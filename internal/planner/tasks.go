// Package planner owns the in-memory entity collections. Each repository is
// the single writable source of truth for its collection during a session:
// every mutation updates memory first, then mirrors the whole collection to
// the store. A failed save is logged and never interrupts the caller.
package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/web3-frozen/planner/internal/dates"
	"github.com/web3-frozen/planner/internal/model"
	"github.com/web3-frozen/planner/internal/store"
	"github.com/web3-frozen/planner/internal/view"
)

// Tasks is the task repository.
type Tasks struct {
	store *store.Store
	log   *slog.Logger
	items []model.Task

	newID func() string    // swappable id generator, uuid v4 by default
	now   func() time.Time // swappable clock
}

// NewTasks loads the persisted collection and returns the repository.
// A nil logger falls back to slog.Default.
func NewTasks(ctx context.Context, st *store.Store, logger *slog.Logger) *Tasks {
	if logger == nil {
		logger = slog.Default()
	}
	items, out := st.LoadTasks(ctx)
	if !out.OK {
		logger.Warn("task collection degraded to empty", "error", out.Err)
	}
	return &Tasks{
		store: st,
		log:   logger,
		items: items,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// All returns the collection in insertion order.
func (r *Tasks) All() []model.Task {
	return append([]model.Task(nil), r.items...)
}

// Add appends a new task with a fresh id and timestamps, and returns it.
func (r *Tasks) Add(ctx context.Context, draft model.TaskDraft) model.Task {
	now := r.now()
	t := model.Task{
		ID:          r.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Priority:    draft.Priority,
		TimeSlot:    draft.TimeSlot,
		Date:        draft.Date,
		Completed:   draft.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.items = append(r.items, t)
	r.persist(ctx)
	return t
}

// Update merges patch into the task with the given id and refreshes
// UpdatedAt. Unknown ids are a no-op, not an error.
func (r *Tasks) Update(ctx context.Context, id string, patch model.TaskPatch) {
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		t := &r.items[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.TimeSlot != nil {
			t.TimeSlot = *patch.TimeSlot
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		t.UpdatedAt = r.now()
		r.persist(ctx)
		return
	}
}

// Delete removes the task with the given id. Unknown ids are a no-op.
func (r *Tasks) Delete(ctx context.Context, id string) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist(ctx)
			return
		}
	}
}

// ToggleComplete flips the completed flag. Unknown ids are a no-op.
func (r *Tasks) ToggleComplete(ctx context.Context, id string) {
	for i := range r.items {
		if r.items[i].ID == id {
			completed := !r.items[i].Completed
			r.Update(ctx, id, model.TaskPatch{Completed: &completed})
			return
		}
	}
}

// ByDate returns tasks scheduled on the given day, in collection order.
func (r *Tasks) ByDate(date time.Time) []model.Task {
	day := dates.Format(date)
	var out []model.Task
	for _, t := range r.items {
		if t.Date == day {
			out = append(out, t)
		}
	}
	return out
}

// ByDateRange returns tasks within [start, end] inclusive, in collection
// order. The fixed-width "YYYY-MM-DD" form compares lexicographically.
func (r *Tasks) ByDateRange(start, end time.Time) []model.Task {
	from, to := dates.Format(start), dates.Format(end)
	var out []model.Task
	for _, t := range r.items {
		if t.Date >= from && t.Date <= to {
			out = append(out, t)
		}
	}
	return out
}

// Stats aggregates the whole collection relative to the repository clock.
func (r *Tasks) Stats() model.PlannerStats {
	now := r.now()
	today := dates.Format(now)
	weekStart, weekEnd := dates.WeekRange(now)
	from, to := dates.Format(weekStart), dates.Format(weekEnd)

	s := model.PlannerStats{TotalTasks: len(r.items)}
	for _, t := range r.items {
		if t.Completed {
			s.CompletedTasks++
		}
		if t.Date == today {
			s.TasksToday++
		}
		if t.Date >= from && t.Date <= to {
			s.TasksThisWeek++
		}
	}
	s.CompletionRate = view.CompletionRate(s.TotalTasks, s.CompletedTasks)
	return s
}

func (r *Tasks) persist(ctx context.Context) {
	if out := r.store.SaveTasks(ctx, r.items); !out.OK {
		r.log.Warn("task save dropped", "error", out.Err)
	}
}
