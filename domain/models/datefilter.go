package models

import "time"

// DateFilter is a request-scoped symbolic value resolved into a concrete
// dueDate range at call time. It is never persisted.
type DateFilter string

const (
	FilterToday   DateFilter = "today"
	FilterWeek    DateFilter = "week"
	FilterMonth   DateFilter = "month"
	FilterOverdue DateFilter = "overdue"
)

// DateFilters lists the valid filter names.
func DateFilters() []DateFilter {
	return []DateFilter{FilterToday, FilterWeek, FilterMonth, FilterOverdue}
}

// DateFilterValues returns the valid filter names as plain strings.
func DateFilterValues() []string {
	filters := DateFilters()
	values := make([]string, len(filters))
	for i, f := range filters {
		values[i] = string(f)
	}
	return values
}

func (f DateFilter) Valid() bool {
	switch f {
	case FilterToday, FilterWeek, FilterMonth, FilterOverdue:
		return true
	}
	return false
}

// DateRange constrains a task's dueDate. Start and End are inclusive bounds
// at millisecond precision; Before is an exclusive upper bound. Nil fields
// impose no constraint.
type DateRange struct {
	Start  *time.Time
	End    *time.Time
	Before *time.Time
}

// Resolve maps the filter to a concrete range relative to now, using local
// wall-clock day boundaries. The week starts on Sunday. The month filter
// covers the current calendar month.
func (f DateFilter) Resolve(now time.Time) DateRange {
	switch f {
	case FilterToday:
		start := startOfDay(now)
		end := endOfDay(now)
		return DateRange{Start: &start, End: &end}
	case FilterWeek:
		start := startOfDay(now.AddDate(0, 0, -int(now.Weekday())))
		end := endOfDay(start.AddDate(0, 0, 6))
		return DateRange{Start: &start, End: &end}
	case FilterMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := endOfDay(start.AddDate(0, 1, -1))
		return DateRange{Start: &start, End: &end}
	case FilterOverdue:
		before := now
		return DateRange{Before: &before}
	}
	return DateRange{}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay is 23:59:59.999, matching the inclusive upper bounds the filters
// advertise.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
