package sim

import "time"

// Calendar maps simulation-day indices onto real weekdays and months.
// Day indices are relative to an anchor date ("day zero"), so weekday and
// month cycles line up with the calendar the models were fitted on no matter
// where the simulation's own epoch sits. Days may be negative during warm-up.
type Calendar struct {
	anchor time.Time
}

// NewCalendar creates a Calendar anchored on the date of simulation day 0.
func NewCalendar(dayZero time.Time) Calendar {
	return Calendar{anchor: dayZero}
}

// Date returns the calendar date of a simulation day.
func (c Calendar) Date(day int) time.Time {
	return c.anchor.AddDate(0, 0, day)
}

// Weekday returns the weekday of a simulation day.
func (c Calendar) Weekday(day int) time.Weekday {
	return c.Date(day).Weekday()
}

// Month returns the month of a simulation day.
func (c Calendar) Month(day int) time.Month {
	return c.Date(day).Month()
}
