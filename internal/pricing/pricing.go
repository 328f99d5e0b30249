// Package pricing computes session prices. The in-person surcharge covers
// venue logistics and is fixed platform-wide.
package pricing

import "math"

const (
	TypeVideo    = "video"
	TypeInPerson = "in-person"

	// InPersonSurcharge is added to the hourly rate before scaling.
	InPersonSurcharge = 10.0
)

// Price returns the session price for the given hourly rate, session type
// and duration in minutes, rounded to two decimals. Video sessions use the
// raw hourly rate; in-person sessions add the surcharge first.
func Price(hourlyRate float64, sessionType string, durationMinutes int) float64 {
	rate := hourlyRate
	if sessionType == TypeInPerson {
		rate += InPersonSurcharge
	}
	total := rate * float64(durationMinutes) / 60
	return math.Round(total*100) / 100
}
