package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habitd/internal/model"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m.shiftCalendarFocus(-1)
	case "l", "right":
		m.shiftCalendarFocus(1)
	case "t":
		m.Calendar.FocusDate = m.today()
		m.Status = StatusBar{Text: "calendar back to current month", IsError: false}
	}
	return m
}

// shiftCalendarFocus moves the grid by whole months. The focus is
// anchored to the 1st first: AddDate normalizes day-of-month overflow,
// so shifting from Jan 31 directly would land in March.
func (m *Model) shiftCalendarFocus(months int) {
	f := m.calendarFocus()
	anchor := time.Date(f.Year(), f.Month(), 1, 0, 0, 0, 0, f.Location())
	m.Calendar.FocusDate = anchor.AddDate(0, months, 0)
	m.Status = StatusBar{
		Text:    fmt.Sprintf("calendar month: %s", model.MonthMatrix(m.Calendar.FocusDate).Label),
		IsError: false,
	}
}
