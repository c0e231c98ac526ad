package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func civilDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newTask(start time.Time, freq Frequency) *ReminderTask {
	return &ReminderTask{StartDate: start, Frequency: freq}
}

func TestIsDueOn_AnchorDayClamping(t *testing.T) {
	// Anchored on the 31st, monthly: fires on the last day of shorter months.
	monthly := newTask(civilDate(2024, time.January, 31), FrequencyMonthly)

	tests := []struct {
		name  string
		today time.Time
		due   bool
	}{
		{"31st of January (start date itself)", civilDate(2024, time.January, 31), true},
		{"29th of leap February", civilDate(2024, time.February, 29), true},
		{"28th of leap February is not the last day", civilDate(2024, time.February, 28), false},
		{"28th of non-leap February", civilDate(2025, time.February, 28), true},
		{"30th of April", civilDate(2024, time.April, 30), true},
		{"29th of April", civilDate(2024, time.April, 29), false},
		{"31st of March", civilDate(2024, time.March, 31), true},
		{"30th of March", civilDate(2024, time.March, 30), false},
		{"30th of November", civilDate(2024, time.November, 30), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.due, monthly.IsDueOn(tc.today))
		})
	}
}

func TestIsDueOn_FirstOccurrenceIsStartDate(t *testing.T) {
	quarterly := newTask(civilDate(2025, time.April, 15), FrequencyQuarterly)

	assert.True(t, quarterly.IsDueOn(civilDate(2025, time.April, 15)),
		"the start month itself is eligible")
	assert.False(t, quarterly.IsDueOn(civilDate(2025, time.April, 14)))
	assert.False(t, quarterly.IsDueOn(civilDate(2025, time.April, 16)))
}

func TestIsDueOn_StepGating(t *testing.T) {
	quarterly := newTask(civilDate(2025, time.April, 15), FrequencyQuarterly)

	assert.False(t, quarterly.IsDueOn(civilDate(2025, time.May, 15)), "one month later is not an eligible month")
	assert.False(t, quarterly.IsDueOn(civilDate(2025, time.June, 15)))
	assert.True(t, quarterly.IsDueOn(civilDate(2025, time.July, 15)), "three months later")
	assert.True(t, quarterly.IsDueOn(civilDate(2026, time.January, 15)), "nine months later")
	assert.False(t, quarterly.IsDueOn(civilDate(2026, time.February, 15)))
}

func TestIsDueOn_HalfYearlyAndYearly(t *testing.T) {
	halfYearly := newTask(civilDate(2024, time.August, 31), FrequencyHalfYearly)
	assert.True(t, halfYearly.IsDueOn(civilDate(2025, time.February, 28)), "clamped half-year occurrence")
	assert.False(t, halfYearly.IsDueOn(civilDate(2024, time.November, 30)))

	yearly := newTask(civilDate(2024, time.March, 1), FrequencyYearly)
	assert.True(t, yearly.IsDueOn(civilDate(2026, time.March, 1)))
	assert.False(t, yearly.IsDueOn(civilDate(2026, time.September, 1)))
}

func TestIsDueOn_BeforeStartGuard(t *testing.T) {
	for _, freq := range []Frequency{FrequencyMonthly, FrequencyQuarterly, FrequencyHalfYearly, FrequencyYearly} {
		tsk := newTask(civilDate(2025, time.June, 1), freq)
		assert.False(t, tsk.IsDueOn(civilDate(2025, time.May, 1)), "frequency %s", freq)
		assert.False(t, tsk.IsDueOn(civilDate(2024, time.June, 1)), "frequency %s", freq)
	}
}

func TestIsDueOn_UnknownFrequencyIsInert(t *testing.T) {
	weekly := newTask(civilDate(2025, time.January, 1), Frequency("WEEKLY"))

	for month := time.January; month <= time.December; month++ {
		for day := 1; day <= 28; day++ {
			assert.False(t, weekly.IsDueOn(civilDate(2025, month, day)))
		}
	}
}

func TestIsDueOn_ZeroStartDateIsInert(t *testing.T) {
	tsk := &ReminderTask{Frequency: FrequencyMonthly}
	assert.False(t, tsk.IsDueOn(civilDate(2025, time.January, 1)))
}

func TestIsDueOn_IsDeterministic(t *testing.T) {
	tsk := newTask(civilDate(2025, time.January, 31), FrequencyMonthly)
	today := civilDate(2025, time.February, 28)

	first := tsk.IsDueOn(today)
	second := tsk.IsDueOn(today)
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestStepMonths(t *testing.T) {
	assert.Equal(t, 1, FrequencyMonthly.StepMonths())
	assert.Equal(t, 3, FrequencyQuarterly.StepMonths())
	assert.Equal(t, 6, FrequencyHalfYearly.StepMonths())
	assert.Equal(t, 12, FrequencyYearly.StepMonths())
	assert.Equal(t, 0, Frequency("WEEKLY").StepMonths())
	assert.Equal(t, 0, Frequency("").StepMonths())
}
