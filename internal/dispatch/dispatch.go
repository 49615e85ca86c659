// Package dispatch holds the Monday/Thursday dispatch calendar.
package dispatch

import (
	"math"
	"time"
)

const (
	dispatchHour = 10

	// DeliveryWindow is how long after dispatch a pooled order is expected to arrive.
	DeliveryWindow = 7 * 24 * time.Hour
)

// NextDate returns the next dispatch slot after now, at 10:00 in now's location.
// A dispatch day never returns itself: Monday points to Thursday and Thursday
// jumps to the following Monday.
func NextDate(now time.Time) time.Time {
	day := int(now.Weekday())

	var offset int
	switch {
	case day == int(time.Sunday):
		offset = 1
	case day < int(time.Thursday):
		offset = int(time.Thursday) - day
	case day == int(time.Thursday):
		offset = 4
	default:
		offset = 8 - day
	}

	y, m, d := now.Date()
	return time.Date(y, m, d+offset, dispatchHour, 0, 0, 0, now.Location())
}

// DaysUntil is the ceiling of the days left until the next dispatch.
func DaysUntil(now time.Time) int {
	diff := NextDate(now).Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// HoursUntil is the floor of the hours left until the next dispatch.
func HoursUntil(now time.Time) int {
	diff := NextDate(now).Sub(now)
	return int(math.Floor(diff.Hours()))
}

// ExpectedDelivery is the delivery estimate for an order leaving on dispatchAt.
func ExpectedDelivery(dispatchAt time.Time) time.Time {
	return dispatchAt.Add(DeliveryWindow)
}

// Schedule pins dispatch math to one location, so "10:00" means the
// warehouse's local time regardless of where the process runs.
type Schedule struct {
	loc *time.Location
}

func NewSchedule(loc *time.Location) Schedule {
	if loc == nil {
		loc = time.Local
	}
	return Schedule{loc: loc}
}

func (s Schedule) Location() *time.Location {
	if s.loc == nil {
		return time.Local
	}
	return s.loc
}

func (s Schedule) NextDate(now time.Time) time.Time {
	return NextDate(now.In(s.Location()))
}

func (s Schedule) DaysUntil(now time.Time) int {
	return DaysUntil(now.In(s.Location()))
}

func (s Schedule) HoursUntil(now time.Time) int {
	return HoursUntil(now.In(s.Location()))
}

// Reading is one evaluation of the countdown.
type Reading struct {
	At    time.Time
	Next  time.Time
	Days  int
	Hours int
}

func (s Schedule) Read(now time.Time) Reading {
	local := now.In(s.Location())
	return Reading{
		At:    local,
		Next:  NextDate(local),
		Days:  DaysUntil(local),
		Hours: HoursUntil(local),
	}
}
