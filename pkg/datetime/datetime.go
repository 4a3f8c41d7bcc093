// Package datetime centralizes the named time offsets used by the auth
// flows so every expiry computation runs off the same constants.
package datetime

import "time"

const (
	FiveMinutes    = 5 * time.Minute
	FifteenMinutes = 15 * time.Minute
	OneHour        = time.Hour
	OneDay         = 24 * time.Hour
	ThirtyDays     = 30 * OneDay
	OneYear        = 365 * OneDay
)

func FifteenMinutesFromNow() time.Time {
	return time.Now().Add(FifteenMinutes)
}

func OneHourFromNow() time.Time {
	return time.Now().Add(OneHour)
}

func ThirtyDaysFromNow() time.Time {
	return time.Now().Add(ThirtyDays)
}

func OneYearFromNow() time.Time {
	return time.Now().Add(OneYear)
}

func FiveMinutesAgo() time.Time {
	return time.Now().Add(-FiveMinutes)
}
