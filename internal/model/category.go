package model

// Category is a named, colored label for grouping tasks. Deleting a category
// does not cascade to tasks referencing it; dangling references are
// tolerated.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// CategoryDraft carries the caller-supplied fields for a new category.
type CategoryDraft struct {
	Name  string
	Color string
	Icon  string
}

// CategoryPatch is a partial update: nil fields keep their current value.
type CategoryPatch struct {
	Name  *string
	Color *string
	Icon  *string
}

// Validate checks boundary input. Returns an empty string when valid.
func (d *CategoryDraft) Validate() string {
	if d.Name == "" {
		return "name is required"
	}
	if d.Color == "" {
		d.Color = "#3B82F6"
	}
	return ""
}

// DefaultCategories returns the canonical set seeded into a fresh
// installation.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Work", Color: "#3B82F6"},
		{ID: "2", Name: "Personal", Color: "#10B981"},
		{ID: "3", Name: "Health", Color: "#F59E0B"},
		{ID: "4", Name: "Learning", Color: "#8B5CF6"},
		{ID: "5", Name: "Social", Color: "#EF4444"},
		{ID: "6", Name: "Finance", Color: "#06B6D4"},
	}
}
