package model

import "time"

// Priority levels, ordered high before medium before low.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var ValidPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Rank maps a priority to its sort position. Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Task is a unit of work scheduled for exactly one calendar day.
// JSON keys match the persisted record layout.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Priority    Priority  `json:"priority"`
	TimeSlot    string    `json:"timeSlot,omitempty"` // "HH:MM", empty = unscheduled
	Date        string    `json:"date"`               // "YYYY-MM-DD"
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskDraft carries the caller-supplied fields for a new task. The repository
// assigns id and timestamps.
type TaskDraft struct {
	Title       string
	Description string
	Category    string
	Priority    Priority
	TimeSlot    string
	Date        string
	Completed   bool
}

// TaskPatch is a partial update: nil fields keep their current value.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *Priority
	TimeSlot    *string
	Date        *string
	Completed   *bool
}

// Validate checks boundary input before it reaches the repository, which
// accepts any well-typed value. Returns an empty string when valid.
func (d *TaskDraft) Validate() string {
	if d.Title == "" {
		return "title is required"
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if !contains(ValidPriorities, d.Priority) {
		return "priority must be low, medium, or high"
	}
	if _, err := time.Parse("2006-01-02", d.Date); err != nil {
		return "date must be YYYY-MM-DD"
	}
	if d.TimeSlot != "" {
		if _, err := time.Parse("15:04", d.TimeSlot); err != nil {
			return "time slot must be HH:MM"
		}
	}
	return ""
}

// PlannerStats aggregates the full task collection.
type PlannerStats struct {
	TotalTasks     int     `json:"totalTasks"`
	CompletedTasks int     `json:"completedTasks"`
	CompletionRate float64 `json:"completionRate"`
	TasksToday     int     `json:"tasksToday"`
	TasksThisWeek  int     `json:"tasksThisWeek"`
}

func contains[T comparable](slice []T, item T) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
