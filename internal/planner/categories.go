package planner

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/web3-frozen/planner/internal/model"
	"github.com/web3-frozen/planner/internal/store"
)

// Categories is the category repository. Deleting a category never touches
// tasks that reference it.
type Categories struct {
	store *store.Store
	log   *slog.Logger
	items []model.Category

	newID func() string
}

// NewCategories loads the persisted collection, seeding the defaults on a
// fresh store, and returns the repository.
func NewCategories(ctx context.Context, st *store.Store, logger *slog.Logger) *Categories {
	if logger == nil {
		logger = slog.Default()
	}
	items, out := st.LoadCategories(ctx)
	if !out.OK {
		logger.Warn("category collection degraded to defaults", "error", out.Err)
	}
	return &Categories{
		store: st,
		log:   logger,
		items: items,
		newID: uuid.NewString,
	}
}

// All returns the collection in insertion order.
func (r *Categories) All() []model.Category {
	return append([]model.Category(nil), r.items...)
}

// Add appends a new category with a fresh id, and returns it.
func (r *Categories) Add(ctx context.Context, draft model.CategoryDraft) model.Category {
	c := model.Category{
		ID:    r.newID(),
		Name:  draft.Name,
		Color: draft.Color,
		Icon:  draft.Icon,
	}
	r.items = append(r.items, c)
	r.persist(ctx)
	return c
}

// Update merges patch into the category with the given id. Unknown ids are a
// no-op.
func (r *Categories) Update(ctx context.Context, id string, patch model.CategoryPatch) {
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		c := &r.items[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Color != nil {
			c.Color = *patch.Color
		}
		if patch.Icon != nil {
			c.Icon = *patch.Icon
		}
		r.persist(ctx)
		return
	}
}

// Delete removes the category with the given id. Unknown ids are a no-op.
func (r *Categories) Delete(ctx context.Context, id string) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist(ctx)
			return
		}
	}
}

// Reset replaces the collection with the canonical default set.
func (r *Categories) Reset(ctx context.Context) {
	r.items = model.DefaultCategories()
	r.persist(ctx)
}

func (r *Categories) persist(ctx context.Context) {
	if out := r.store.SaveCategories(ctx, r.items); !out.OK {
		r.log.Warn("category save dropped", "error", out.Err)
	}
}
