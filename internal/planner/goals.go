package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/web3-frozen/planner/internal/model"
	"github.com/web3-frozen/planner/internal/store"
)

// Goals is the goal repository.
type Goals struct {
	store *store.Store
	log   *slog.Logger
	items []model.Goal

	newID func() string
	now   func() time.Time
}

// NewGoals loads the persisted collection and returns the repository.
func NewGoals(ctx context.Context, st *store.Store, logger *slog.Logger) *Goals {
	if logger == nil {
		logger = slog.Default()
	}
	items, out := st.LoadGoals(ctx)
	if !out.OK {
		logger.Warn("goal collection degraded to empty", "error", out.Err)
	}
	return &Goals{
		store: st,
		log:   logger,
		items: items,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// All returns the collection in insertion order.
func (r *Goals) All() []model.Goal {
	return append([]model.Goal(nil), r.items...)
}

// Add appends a new goal with a fresh id and creation time, and returns it.
func (r *Goals) Add(ctx context.Context, draft model.GoalDraft) model.Goal {
	g := model.Goal{
		ID:          r.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		Type:        draft.Type,
		Target:      draft.Target,
		Progress:    draft.Progress,
		Deadline:    draft.Deadline,
		CreatedAt:   r.now(),
	}
	r.items = append(r.items, g)
	r.persist(ctx)
	return g
}

// Update merges patch into the goal with the given id. Unknown ids are a
// no-op, not an error.
func (r *Goals) Update(ctx context.Context, id string, patch model.GoalPatch) {
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		g := &r.items[i]
		if patch.Title != nil {
			g.Title = *patch.Title
		}
		if patch.Description != nil {
			g.Description = *patch.Description
		}
		if patch.Type != nil {
			g.Type = *patch.Type
		}
		if patch.Target != nil {
			g.Target = *patch.Target
		}
		if patch.Progress != nil {
			g.Progress = *patch.Progress
		}
		if patch.Deadline != nil {
			g.Deadline = *patch.Deadline
		}
		r.persist(ctx)
		return
	}
}

// Delete removes the goal with the given id. Unknown ids are a no-op.
func (r *Goals) Delete(ctx context.Context, id string) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist(ctx)
			return
		}
	}
}

// UpdateProgress sets the progress counter. The value is not clamped to
// [0, target]; completion is derived, not stored.
func (r *Goals) UpdateProgress(ctx context.Context, id string, value int) {
	r.Update(ctx, id, model.GoalPatch{Progress: &value})
}

// ByType returns goals with the given recurrence label, in collection order.
func (r *Goals) ByType(t model.GoalType) []model.Goal {
	var out []model.Goal
	for _, g := range r.items {
		if g.Type == t {
			out = append(out, g)
		}
	}
	return out
}

// Active returns goals whose deadline has not passed. The comparison is
// against the full timestamp, not the calendar day.
func (r *Goals) Active() []model.Goal {
	now := r.now()
	var out []model.Goal
	for _, g := range r.items {
		if g.Active(now) {
			out = append(out, g)
		}
	}
	return out
}

// Completed returns goals whose progress has reached the target.
func (r *Goals) Completed() []model.Goal {
	var out []model.Goal
	for _, g := range r.items {
		if g.Completed() {
			out = append(out, g)
		}
	}
	return out
}

// ProgressPercent returns progress as a percentage of the target, or 0 for
// an unknown id or a zero target.
func (r *Goals) ProgressPercent(id string) float64 {
	for _, g := range r.items {
		if g.ID == id {
			if g.Target <= 0 {
				return 0
			}
			return float64(g.Progress) / float64(g.Target) * 100
		}
	}
	return 0
}

func (r *Goals) persist(ctx context.Context) {
	if out := r.store.SaveGoals(ctx, r.items); !out.OK {
		r.log.Warn("goal save dropped", "error", out.Err)
	}
}
