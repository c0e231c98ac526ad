package task

import "time"

// IsDueOn reports whether the task is due on the given civil date. The caller
// is responsible for producing `today` in the reference timezone; only the
// year, month and day fields are consulted here.
//
// An occurrence falls on every StepMonths()-th month counted from StartDate,
// on StartDate's day-of-month clamped to the last day of shorter months
// (a task anchored on the 31st fires on Feb 28/29, Apr 30, and so on).
// The start month itself is the first occurrence.
func (t *ReminderTask) IsDueOn(today time.Time) bool {
	step := t.Frequency.StepMonths()
	if step == 0 || t.StartDate.IsZero() {
		return false
	}

	monthsBetween := (today.Year()-t.StartDate.Year())*12 +
		int(today.Month()) - int(t.StartDate.Month())
	if monthsBetween < 0 {
		return false
	}
	if monthsBetween%step != 0 {
		return false
	}

	targetDay := t.StartDate.Day()
	if last := lastDayOfMonth(today.Year(), today.Month()); targetDay > last {
		targetDay = last
	}
	return today.Day() == targetDay
}

// lastDayOfMonth exploits the day-zero normalization of time.Date: day 0 of
// the following month is the last day of this one.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
