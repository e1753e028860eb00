package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"habitd/internal/model"
)

func (m Model) handleHabitsKey(msg tea.KeyMsg) Model {
	if m.HabitsView.CaptureMode {
		return m.handleCaptureKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.HabitsView.Cursor > 0 {
			m.HabitsView.Cursor--
		}
		m.ensureHabitsState()
	case "down", "j":
		if m.HabitsView.Cursor < len(m.Habits)-1 {
			m.HabitsView.Cursor++
		}
		m.ensureHabitsState()
	case " ", "enter":
		m = m.toggleSelectedHabit()
	}
	return m
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.HabitsView.CaptureMode = false
		m.HabitsView.Input = ""
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
		m.Status = StatusBar{Text: "add cancelled", IsError: false}
		return m
	case "enter":
		m = m.applyAddHabit(m.quickAddInput.Value())
		m.HabitsView.CaptureMode = false
		m.HabitsView.Input = ""
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
		return m
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	_ = cmd
	m.HabitsView.Input = m.quickAddInput.Value()
	return m
}

func (m *Model) startCapture() {
	m.CurrentView = ViewHabits
	m.HabitsView.CaptureMode = true
	m.quickAddInput.Focus()
	m.Status = StatusBar{Text: "type a habit title, enter to add", IsError: false}
}

func (m Model) applyAddHabit(title string) Model {
	next, ok := model.Add(m.Habits, title, m.today())
	if !ok {
		m.Status = StatusBar{Text: "habit title is empty", IsError: true}
		return m
	}
	m.Habits = next
	m.HabitsView.Cursor = 0
	m.SelectedHabitID = next[0].ID
	m.persist()
	m.Status = StatusBar{Text: fmt.Sprintf("added habit: %s", next[0].Title), IsError: false}
	return m
}

func (m Model) toggleSelectedHabit() Model {
	habit, ok := m.currentHabit()
	if !ok {
		m.Status = StatusBar{Text: "no habit selected", IsError: true}
		return m
	}
	return m.applyToggle(habit.ID, m.todayKey())
}

func (m Model) applyToggle(habitID, date string) Model {
	next, ok := model.ToggleDay(m.Habits, habitID, date, m.today())
	if !ok {
		if date != m.todayKey() {
			m.Status = StatusBar{Text: "only today can be toggled", IsError: true}
		} else {
			m.Status = StatusBar{Text: "unknown habit", IsError: true}
		}
		return m
	}
	m.Habits = next
	m.persist()

	for _, h := range next {
		if h.ID != habitID {
			continue
		}
		if h.History[date] {
			m.Status = StatusBar{Text: fmt.Sprintf("checked in: %s", h.Title), IsError: false}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("unchecked: %s", h.Title), IsError: false}
		}
		break
	}
	return m
}
