package datetime_test

import (
	"testing"
	"time"

	"github.com/JosephOluOlofinte/sleat-backend/pkg/datetime"
	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, 5*time.Minute, datetime.FiveMinutes)
	assert.Equal(t, 24*time.Hour, datetime.OneDay)
	assert.Equal(t, 30*24*time.Hour, datetime.ThirtyDays)
	assert.Equal(t, 365*24*time.Hour, datetime.OneYear)
}

func TestOffsetsFromNow(t *testing.T) {
	now := time.Now()

	assert.WithinDuration(t, now.Add(datetime.FifteenMinutes), datetime.FifteenMinutesFromNow(), time.Second)
	assert.WithinDuration(t, now.Add(datetime.OneHour), datetime.OneHourFromNow(), time.Second)
	assert.WithinDuration(t, now.Add(datetime.ThirtyDays), datetime.ThirtyDaysFromNow(), time.Second)
	assert.WithinDuration(t, now.Add(datetime.OneYear), datetime.OneYearFromNow(), time.Second)
	assert.WithinDuration(t, now.Add(-datetime.FiveMinutes), datetime.FiveMinutesAgo(), time.Second)
}
