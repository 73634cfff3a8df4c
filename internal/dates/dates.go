// Package dates holds the calendar helpers shared by the repositories and
// views. Weeks start on Monday throughout.
package dates

import "time"

// DayFormat is the wire form of a calendar day. Fixed-width and zero-padded,
// so lexicographic comparison of formatted days matches chronological order.
const DayFormat = "2006-01-02"

// Format renders t as "YYYY-MM-DD".
func Format(t time.Time) string {
	return t.Format(DayFormat)
}

// WeekStart returns the Monday of t's week, truncated to midnight in t's
// location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// WeekDays returns the seven days of t's week, Monday first.
func WeekDays(t time.Time) []time.Time {
	start := WeekStart(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekRange returns the Monday and Sunday of t's week.
func WeekRange(t time.Time) (start, end time.Time) {
	start = WeekStart(t)
	return start, start.AddDate(0, 0, 6)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Format(a) == Format(b)
}

// NextDay returns the calendar day after t.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// PrevDay returns the calendar day before t.
func PrevDay(t time.Time) time.Time {
	return t.AddDate(0, 0, -1)
}

// TimeSlots generates the hourly "HH:00" grid between startHour and endHour
// inclusive.
func TimeSlots(startHour, endHour int) []string {
	var slots []string
	for h := startHour; h <= endHour; h++ {
		slots = append(slots, time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04"))
	}
	return slots
}
