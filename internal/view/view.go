// Package view contains the pure aggregation functions behind the daily and
// weekly screens. Nothing here mutates its input or touches the store.
package view

import (
	"math"
	"sort"
	"time"

	"github.com/web3-frozen/planner/internal/dates"
	"github.com/web3-frozen/planner/internal/model"
)

// Tally counts tasks and how many of them are done.
type Tally struct {
	Total     int
	Completed int
}

// CategoryTally is a Tally attributed to one category.
type CategoryTally struct {
	ID        string
	Name      string
	Color     string
	Total     int
	Completed int
}

// WeekStats summarizes a whole week view.
type WeekStats struct {
	Total          int
	Completed      int
	CompletionRate int // rounded percentage
}

// DayView returns the tasks for one calendar day ("YYYY-MM-DD"), sorted for
// display: incomplete before completed, then by priority, then scheduled
// before unscheduled, then ascending by time slot. Ties keep input order.
func DayView(tasks []model.Task, day string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.Date == day {
			out = append(out, t)
		}
	}
	sortForDisplay(out)
	return out
}

// WeekView maps each day of the Monday-start week containing ref to its day
// view. All seven keys are present even when a day has no tasks. The sort
// policy is the same as DayView's, time-slot tiebreak included.
func WeekView(tasks []model.Task, ref time.Time) map[string][]model.Task {
	week := make(map[string][]model.Task, 7)
	for _, day := range dates.WeekDays(ref) {
		key := dates.Format(day)
		week[key] = DayView(tasks, key)
	}
	return week
}

// WeekSummary totals a week view and computes its rounded completion rate.
func WeekSummary(week map[string][]model.Task) WeekStats {
	var s WeekStats
	for _, day := range week {
		for _, t := range day {
			s.Total++
			if t.Completed {
				s.Completed++
			}
		}
	}
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// PriorityBreakdown tallies tasks per priority. All three priorities are
// reported even at zero count.
func PriorityBreakdown(tasks []model.Task) map[model.Priority]Tally {
	stats := map[model.Priority]Tally{
		model.PriorityHigh:   {},
		model.PriorityMedium: {},
		model.PriorityLow:    {},
	}
	for _, t := range tasks {
		s := stats[t.Priority]
		s.Total++
		if t.Completed {
			s.Completed++
		}
		stats[t.Priority] = s
	}
	return stats
}

// CategoryBreakdown tallies tasks per category, in the given category order.
// Categories with no matching task are omitted; tasks referencing an unknown
// category are ignored.
func CategoryBreakdown(tasks []model.Task, categories []model.Category) []CategoryTally {
	index := make(map[string]int, len(categories))
	tallies := make([]CategoryTally, len(categories))
	for i, c := range categories {
		index[c.ID] = i
		tallies[i] = CategoryTally{ID: c.ID, Name: c.Name, Color: c.Color}
	}
	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			continue
		}
		tallies[i].Total++
		if t.Completed {
			tallies[i].Completed++
		}
	}
	out := tallies[:0]
	for _, tally := range tallies {
		if tally.Total > 0 {
			out = append(out, tally)
		}
	}
	return out
}

// CompletionRate returns completed/total as a percentage, 0 when total is 0.
func CompletionRate(total, completed int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

func sortForDisplay(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if (a.TimeSlot == "") != (b.TimeSlot == "") {
			return a.TimeSlot != ""
		}
		return a.TimeSlot < b.TimeSlot
	})
}
