package model

import "time"

const dateKeyLayout = "2006-01-02"

// monthCells is six full Monday-start weeks, enough to cover any month.
const monthCells = 42

// DateKey formats a time as its local calendar day, zero-padded
// YYYY-MM-DD. Clock and zone information beyond the local date is
// discarded.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a date key back to local midnight of that day.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, key, time.Local)
}

// Day describes one cell of the current week window.
type Day struct {
	Date    string
	Label   string
	IsToday bool
}

// mondayOffset is the day delta from a weekday back to the Monday of
// its week: Sunday belongs to the week that started six days earlier.
func mondayOffset(w time.Weekday) int {
	if w == time.Sunday {
		return -6
	}
	return 1 - int(w)
}

// WeekWindow returns the seven days, Monday through Sunday, of the week
// containing today. Exactly one entry carries IsToday.
func WeekWindow(today time.Time) []Day {
	start := today.AddDate(0, 0, mondayOffset(today.Weekday()))
	todayKey := DateKey(today)
	out := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		key := DateKey(d)
		out = append(out, Day{
			Date:    key,
			Label:   d.Format("Mon"),
			IsToday: key == todayKey,
		})
	}
	return out
}

type MonthCell struct {
	Date    string
	Day     int
	InMonth bool
}

type MonthGrid struct {
	Label string
	Cells []MonthCell
}

// MonthMatrix returns the 42-cell Monday-start grid covering the month
// of the reference date. The anchor is the Monday on or before the 1st,
// so the first cell is always a Monday and out-of-month cells are
// flagged rather than omitted.
func MonthMatrix(today time.Time) MonthGrid {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	start := first.AddDate(0, 0, mondayOffset(first.Weekday()))
	cells := make([]MonthCell, 0, monthCells)
	for i := 0; i < monthCells; i++ {
		d := start.AddDate(0, 0, i)
		cells = append(cells, MonthCell{
			Date:    DateKey(d),
			Day:     d.Day(),
			InMonth: d.Month() == today.Month(),
		})
	}
	return MonthGrid{
		Label: today.Format("January 2006"),
		Cells: cells,
	}
}
