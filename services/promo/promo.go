// Package promo computes the promotion-window countdown shown on the home
// page.
package promo

import "time"

// TimeLeft is the countdown split into display units.
type TimeLeft struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Countdown returns the time remaining until endAt (unix millis). An expired
// or unset window counts down to all zeros.
func Countdown(endAt int64, now time.Time) TimeLeft {
	diff := endAt - now.UnixMilli()
	if diff <= 0 {
		return TimeLeft{}
	}
	d := time.Duration(diff) * time.Millisecond
	return TimeLeft{
		Days:    int(d.Hours()) / 24,
		Hours:   int(d.Hours()) % 24,
		Minutes: int(d.Minutes()) % 60,
		Seconds: int(d.Seconds()) % 60,
	}
}

// Active reports whether the promotion section should render at all: it
// needs a title and an end time still in the future.
func Active(title string, endAt int64, now time.Time) bool {
	return title != "" && endAt > now.UnixMilli()
}
