// Package calendar computes slot availability from the clinic's fixed
// weekly working-hours template. Everything here is pure; the agenda
// service feeds it records and applies its answers.
package calendar

import (
	"time"

	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/drvaldez/consultorio_backend/pkg/constants"
)

type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusBlocked   SlotStatus = "blocked"
	StatusBooked    SlotStatus = "booked"
)

// WorkingHours returns the slot start times for a weekday, in order.
// Weekday follows time.Weekday (Sunday = 0). Afternoons on weekdays,
// mornings on weekends.
func WorkingHours(dow time.Weekday) []string {
	switch dow {
	case time.Saturday:
		return hourRange(8, 11)
	case time.Sunday:
		return hourRange(7, 12)
	default:
		return hourRange(15, 22)
	}
}

// WorkingHoursFor is WorkingHours keyed by a YYYY-MM-DD date. Unknown
// dates get an empty schedule.
func WorkingHoursFor(date string) []string {
	d, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		return nil
	}
	return WorkingHours(d.Weekday())
}

func hourRange(from, to int) []string {
	out := make([]string, 0, to-from+1)
	for h := from; h <= to; h++ {
		out = append(out, time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format(constants.TimeLayout))
	}
	return out
}

// Status resolves a slot's state. Booked wins over blocked, blocked
// over available. The booked appointment (any status) is returned
// alongside.
func Status(date, tm string, appointments []*store.Appointment, blocked []*store.BlockedSlot) (SlotStatus, *store.Appointment) {
	for _, a := range appointments {
		if a.Date == date && a.Time == tm {
			return StatusBooked, a
		}
	}
	for _, b := range blocked {
		if b.Date == date && b.Time == tm {
			return StatusBlocked, nil
		}
	}
	return StatusAvailable, nil
}

// Bookable reports whether a slot may still accept a new booking as of
// now: any future date, or a same-day slot starting more than
// cutoff from now. Past dates and elapsed slots are not bookable.
func Bookable(date, tm string, now time.Time, cutoff time.Duration) bool {
	today := now.Format(constants.DateLayout)
	if date > today {
		return true
	}
	if date < today {
		return false
	}

	start, err := time.ParseInLocation(constants.DateLayout+" "+constants.TimeLayout, date+" "+tm, now.Location())
	if err != nil {
		return false
	}
	return start.After(now.Add(cutoff))
}

// Slot is one row of a day schedule.
type Slot struct {
	Time        string             `json:"time"`
	Status      SlotStatus         `json:"status"`
	Bookable    bool               `json:"bookable"`
	Appointment *store.Appointment `json:"appointment,omitempty"`
}

// DaySchedule renders the full slot list for one date.
func DaySchedule(date string, appointments []*store.Appointment, blocked []*store.BlockedSlot, now time.Time, cutoff time.Duration) []Slot {
	hours := WorkingHoursFor(date)
	out := make([]Slot, 0, len(hours))
	for _, tm := range hours {
		status, appt := Status(date, tm, appointments, blocked)
		out = append(out, Slot{
			Time:        tm,
			Status:      status,
			Bookable:    status == StatusAvailable && Bookable(date, tm, now, cutoff),
			Appointment: appt,
		})
	}
	return out
}
