package model

import (
	"testing"
	"time"
)

func TestTaskDraft_Validate(t *testing.T) {
	tests := []struct {
		name    string
		draft   TaskDraft
		wantErr string
	}{
		{
			name:    "valid draft",
			draft:   TaskDraft{Title: "Review PR", Priority: PriorityHigh, Date: "2024-01-15"},
			wantErr: "",
		},
		{
			name:    "empty title",
			draft:   TaskDraft{Title: "", Priority: PriorityMedium, Date: "2024-01-15"},
			wantErr: "title is required",
		},
		{
			name:    "invalid priority",
			draft:   TaskDraft{Title: "Review PR", Priority: "urgent", Date: "2024-01-15"},
			wantErr: "priority must be low, medium, or high",
		},
		{
			name:    "default priority",
			draft:   TaskDraft{Title: "Review PR", Date: "2024-01-15"},
			wantErr: "",
		},
		{
			name:    "malformed date",
			draft:   TaskDraft{Title: "Review PR", Date: "15/01/2024"},
			wantErr: "date must be YYYY-MM-DD",
		},
		{
			name:    "malformed time slot",
			draft:   TaskDraft{Title: "Review PR", Date: "2024-01-15", TimeSlot: "9am"},
			wantErr: "time slot must be HH:MM",
		},
		{
			name:    "valid time slot",
			draft:   TaskDraft{Title: "Review PR", Date: "2024-01-15", TimeSlot: "09:30"},
			wantErr: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.draft.Validate()
			if got != tt.wantErr {
				t.Errorf("Validate() = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestGoalDraft_Validate(t *testing.T) {
	tests := []struct {
		name    string
		draft   GoalDraft
		wantErr string
	}{
		{
			name:    "valid draft",
			draft:   GoalDraft{Title: "Read books", Type: GoalMonthly, Target: 3},
			wantErr: "",
		},
		{
			name:    "empty title",
			draft:   GoalDraft{Type: GoalDaily, Target: 1},
			wantErr: "title is required",
		},
		{
			name:    "invalid type",
			draft:   GoalDraft{Title: "Read books", Type: "yearly", Target: 3},
			wantErr: "type must be daily, weekly, or monthly",
		},
		{
			name:    "non-positive target",
			draft:   GoalDraft{Title: "Read books", Type: GoalWeekly, Target: 0},
			wantErr: "target must be a positive number",
		},
		{
			name:    "default type",
			draft:   GoalDraft{Title: "Read books", Target: 3},
			wantErr: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.draft.Validate()
			if got != tt.wantErr {
				t.Errorf("Validate() = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestPriority_Rank(t *testing.T) {
	if PriorityHigh.Rank() >= PriorityMedium.Rank() || PriorityMedium.Rank() >= PriorityLow.Rank() {
		t.Error("expected high < medium < low rank order")
	}
	if Priority("bogus").Rank() <= PriorityLow.Rank() {
		t.Error("expected unknown priority to rank after low")
	}
}

func TestGoal_Derived(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	g := Goal{Target: 5, Progress: 5, Deadline: now.Add(24 * time.Hour)}
	if !g.Completed() {
		t.Error("expected goal at target to be completed")
	}
	if !g.Active(now) {
		t.Error("expected completed goal with future deadline to stay active")
	}

	g.Progress = 4
	if g.Completed() {
		t.Error("expected goal below target to be incomplete")
	}

	g.Deadline = now.Add(-time.Minute)
	if g.Active(now) {
		t.Error("expected goal past its deadline to be inactive")
	}
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	if len(cats) != 6 {
		t.Fatalf("expected 6 default categories, got %d", len(cats))
	}
	names := map[string]bool{}
	for _, c := range cats {
		names[c.Name] = true
		if c.ID == "" || c.Color == "" {
			t.Errorf("category %q missing id or color", c.Name)
		}
	}
	for _, want := range []string{"Work", "Personal", "Health", "Learning", "Social", "Finance"} {
		if !names[want] {
			t.Errorf("missing default category %q", want)
		}
	}
}

func TestContains(t *testing.T) {
	if !contains([]string{"a", "b"}, "a") {
		t.Error("expected true")
	}
	if contains([]string{"a", "b"}, "c") {
		t.Error("expected false")
	}
}
