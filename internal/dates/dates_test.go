package dates

import (
	"testing"
	"time"
)

func TestWeekStart_AlwaysMonday(t *testing.T) {
	// 2024-01-01 is a Monday; walk the whole week.
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		got := WeekStart(day)
		if !got.Equal(monday) {
			t.Errorf("WeekStart(%s) = %s, want %s", Format(day), Format(got), Format(monday))
		}
		if got.Weekday() != time.Monday {
			t.Errorf("WeekStart(%s).Weekday() = %s", Format(day), got.Weekday())
		}
	}
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC)) // a Wednesday
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	want := []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07",
	}
	for i, d := range days {
		if Format(d) != want[i] {
			t.Errorf("day %d = %s, want %s", i, Format(d), want[i])
		}
	}
}

func TestWeekRange(t *testing.T) {
	start, end := WeekRange(time.Date(2024, 1, 7, 23, 0, 0, 0, time.UTC)) // a Sunday
	if Format(start) != "2024-01-01" || Format(end) != "2024-01-07" {
		t.Errorf("WeekRange = %s..%s, want 2024-01-01..2024-01-07", Format(start), Format(end))
	}
}

func TestFormat_LexicographicOrder(t *testing.T) {
	earlier := Format(time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC))
	later := Format(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))
	if !(earlier < later) {
		t.Errorf("expected %q < %q", earlier, later)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC)
	b := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("expected same day")
	}
	if SameDay(a, NextDay(a)) {
		t.Error("expected different days")
	}
	if !SameDay(a, NextDay(PrevDay(a))) {
		t.Error("expected prev/next to round-trip")
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots(6, 22)
	if len(slots) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(slots))
	}
	if slots[0] != "06:00" || slots[16] != "22:00" {
		t.Errorf("unexpected slot bounds: %s..%s", slots[0], slots[16])
	}
}
