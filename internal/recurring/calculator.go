package recurring

import (
	"fmt"
	"time"
)

// NextOccurrence computes the occurrence that follows from for the given
// frequency. dayOfMonth (1-31, 0 when unset) pins monthly and annual
// occurrences to a fixed day, clamped to the length of the target month,
// so day 31 lands on the 30th in a 30-day month and Jan 31 advances to
// Feb 28 (or 29).
func NextOccurrence(from time.Time, freq Frequency, dayOfMonth int) (time.Time, error) {
	if from.IsZero() {
		return time.Time{}, fmt.Errorf("%w: missing start date", ErrInvalidState)
	}

	if !freq.Valid() {
		return time.Time{}, fmt.Errorf("%w: missing or unknown frequency %q", ErrInvalidState, freq)
	}

	if dayOfMonth < 0 || dayOfMonth > 31 {
		return time.Time{}, fmt.Errorf("%w: day of month %d out of range", ErrInvalidState, dayOfMonth)
	}

	switch freq {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1), nil
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7), nil
	case FrequencyMonthly:
		return addMonthsClamped(from, 1, dayOfMonth), nil
	case FrequencyAnnual:
		return addMonthsClamped(from, 12, dayOfMonth), nil
	}

	return time.Time{}, fmt.Errorf("%w: missing or unknown frequency %q", ErrInvalidState, freq)
}

// InitialOccurrence derives the first occurrence for a schedule starting
// at start. Without a fixed day of month the schedule first fires on its
// start date. With one, it fires on that day of the start month (clamped),
// or the equivalent day of the following period when that day has already
// passed.
func InitialOccurrence(start time.Time, freq Frequency, dayOfMonth int) (time.Time, error) {
	if start.IsZero() {
		return time.Time{}, fmt.Errorf("%w: missing start date", ErrInvalidState)
	}

	if !freq.Valid() {
		return time.Time{}, fmt.Errorf("%w: missing or unknown frequency %q", ErrInvalidState, freq)
	}

	if dayOfMonth == 0 || (freq != FrequencyMonthly && freq != FrequencyAnnual) {
		return start, nil
	}

	first := clampToDay(start, dayOfMonth)
	if first.Before(start) {
		return NextOccurrence(first, freq, dayOfMonth)
	}

	return first, nil
}

// DueOn reports whether the schedule should fire on day: it is active and
// its next occurrence has arrived. Comparison is date-granular.
func DueOn(s *Schedule, day time.Time) bool {
	if s == nil || !s.Active || s.NextOccurrence.IsZero() {
		return false
	}

	return !dateOf(s.NextOccurrence).After(dateOf(day))
}

// Overdue reports whether the schedule's next occurrence is strictly in
// the past. Used for alerting, not for firing.
func Overdue(s *Schedule, day time.Time) bool {
	if s == nil || s.NextOccurrence.IsZero() {
		return false
	}

	return dateOf(s.NextOccurrence).Before(dateOf(day))
}

// FilterDue returns the schedules from list that are due on asOf and still
// inside their active window (started, not ended). Ordering is preserved;
// exactly-once firing is the synthesizer's responsibility.
func FilterDue(list []*Schedule, asOf time.Time) []*Schedule {
	day := dateOf(asOf)

	var due []*Schedule

	for _, s := range list {
		if s == nil || !s.Active {
			continue
		}

		if dateOf(s.StartDate).After(day) {
			continue
		}

		if s.EndDate != nil && dateOf(*s.EndDate).Before(day) {
			continue
		}

		if !DueOn(s, day) {
			continue
		}

		due = append(due, s)
	}

	return due
}

// addMonthsClamped advances from by months whole calendar months. The
// resulting day is dayOfMonth when set, otherwise from's day, clamped to
// the target month's length. Built on the first of the target month so a
// short month never rolls over into the next one.
func addMonthsClamped(from time.Time, months, dayOfMonth int) time.Time {
	y, m, d := from.Date()
	if dayOfMonth > 0 {
		d = dayOfMonth
	}

	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, from.Location())

	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}

	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, from.Location())
}

func clampToDay(t time.Time, dayOfMonth int) time.Time {
	d := dayOfMonth
	if last := daysIn(t.Year(), t.Month()); d > last {
		d = last
	}

	return time.Date(t.Year(), t.Month(), d, 0, 0, 0, 0, t.Location())
}

// daysIn returns the number of days in the month: day zero of the next
// month normalizes to this month's last day.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
