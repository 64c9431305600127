// Package rules holds the derivation rules applied to catalog data: same-day
// delivery windows, scarcity simulation, offer validity, discounts and paging.
// Everything here is a pure function of its inputs; callers supply the clock
// and the random source.
package rules

import "time"

// Cutoffs maps a logistics provider to the hour of day (local to the clock
// passed in) after which it no longer ships the same day.
type Cutoffs map[string]int

func DefaultCutoffs() Cutoffs {
	return Cutoffs{
		"Provider A": 17,
		"Provider B": 9,
	}
}

// SameDay reports whether provider can still ship today and how long remains
// until its cutoff. Unknown providers are never eligible. Once the cutoff has
// passed the remaining duration is zero; it does not roll over to tomorrow.
func (c Cutoffs) SameDay(provider string, now time.Time) (bool, time.Duration) {
	hour, ok := c[provider]
	if !ok {
		return false, 0
	}
	return now.Hour() < hour, UntilHour(now, hour)
}

// UntilHour returns the time left until hour:00 on now's calendar day, or zero
// when that moment is already behind us.
func UntilHour(now time.Time, hour int) time.Duration {
	y, m, d := now.Date()
	cutoff := time.Date(y, m, d, hour, 0, 0, 0, now.Location())
	if !now.Before(cutoff) {
		return 0
	}
	return cutoff.Sub(now)
}

// Seconds truncates d to whole seconds.
func Seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
