package model

import "time"

// GoalType is a recurrence label. It is informational only: nothing rolls
// over or resets automatically.
type GoalType string

const (
	GoalDaily   GoalType = "daily"
	GoalWeekly  GoalType = "weekly"
	GoalMonthly GoalType = "monthly"
)

var ValidGoalTypes = []GoalType{GoalDaily, GoalWeekly, GoalMonthly}

// Goal is a target to reach a numeric quantity by a deadline.
type Goal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        GoalType  `json:"type"`
	Target      int       `json:"target"`
	Progress    int       `json:"progress"`
	Deadline    time.Time `json:"deadline"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Completed reports whether progress has reached the target.
func (g *Goal) Completed() bool {
	return g.Progress >= g.Target
}

// Active reports whether the deadline has not yet passed. Completion is
// irrelevant here: a finished goal with a future deadline is still active.
func (g *Goal) Active(now time.Time) bool {
	return !g.Deadline.Before(now)
}

// GoalDraft carries the caller-supplied fields for a new goal.
type GoalDraft struct {
	Title       string
	Description string
	Type        GoalType
	Target      int
	Progress    int
	Deadline    time.Time
}

// GoalPatch is a partial update: nil fields keep their current value.
type GoalPatch struct {
	Title       *string
	Description *string
	Type        *GoalType
	Target      *int
	Progress    *int
	Deadline    *time.Time
}

// Validate checks boundary input. Returns an empty string when valid.
func (d *GoalDraft) Validate() string {
	if d.Title == "" {
		return "title is required"
	}
	if d.Type == "" {
		d.Type = GoalDaily
	}
	if !contains(ValidGoalTypes, d.Type) {
		return "type must be daily, weekly, or monthly"
	}
	if d.Target <= 0 {
		return "target must be a positive number"
	}
	return ""
}
