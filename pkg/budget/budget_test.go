package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_Start(t *testing.T) {
	// Friday
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   Period
		expected time.Time
	}{
		{"weekly starts on Monday", PeriodWeekly, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{"monthly starts on the first", PeriodMonthly, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"yearly starts on January first", PeriodYearly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.period.Start(now))
		})
	}

	t.Run("weekly on a Sunday stays in the running week", func(t *testing.T) {
		sunday := time.Date(2024, 3, 17, 23, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), PeriodWeekly.Start(sunday))
	})

	t.Run("weekly on a Monday starts that day", func(t *testing.T) {
		monday := time.Date(2024, 3, 11, 0, 30, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), PeriodWeekly.Start(monday))
	})
}

func TestPeriod_IsValid(t *testing.T) {
	assert.True(t, PeriodWeekly.IsValid())
	assert.True(t, PeriodMonthly.IsValid())
	assert.True(t, PeriodYearly.IsValid())
	assert.False(t, Period("daily").IsValid())
	assert.False(t, Period("").IsValid())
}
