package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Today, Parse("today", Week))
	assert.Equal(t, Year, Parse("year", Week))
	assert.Equal(t, Week, Parse("", Week))
	assert.Equal(t, Month, Parse("quarter", Month))
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2025, time.March, 15, 13, 45, 30, 0, time.UTC)

	tests := []struct {
		period Period
		want   time.Time
	}{
		{Today, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{Week, time.Date(2025, time.March, 8, 13, 45, 30, 0, time.UTC)},
		{Month, time.Date(2025, time.February, 15, 13, 45, 30, 0, time.UTC)},
		{Year, time.Date(2024, time.March, 15, 13, 45, 30, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			assert.Equal(t, tt.want, WindowStart(tt.period, now))
		})
	}
}

func TestWindowStartIsPure(t *testing.T) {
	now := time.Date(2025, time.January, 31, 8, 0, 0, 0, time.UTC)
	first := WindowStart(Month, now)
	second := WindowStart(Month, now)
	assert.Equal(t, first, second)
}
