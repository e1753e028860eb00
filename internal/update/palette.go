package update

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"habitd/internal/commands"
	"habitd/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m = m.applyAddHabit(a.Title)
			if m.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.Status.Text}
			}
			m.CurrentView = ViewHabits
			return commands.Result{Message: m.Status.Text}, nil
		},
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			habit, ok := m.resolveHabit(a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no habit matches %q", a.Target)}
			}
			m = m.applyToggle(habit.ID, m.todayKey())
			if m.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.Status.Text}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Show: func(a commands.ShowArgs) (commands.Result, error) {
			switch a.Subject {
			case "habits":
				m.CurrentView = ViewHabits
			case "chart":
				m.CurrentView = ViewChart
			case "calendar":
				m.CurrentView = ViewCalendar
			}
			return commands.Result{Message: fmt.Sprintf("showing %s", a.Subject)}, nil
		},
		Stats: func() (commands.Result, error) {
			days := model.WeekWindow(m.today())
			return commands.Result{
				Message: fmt.Sprintf("%d habits · %d check-ins this week", len(m.Habits), model.TotalCheckins(m.Habits, days)),
			}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

// resolveHabit matches a palette target against the store: a 1-based
// list position first, then a case-insensitive title.
func (m Model) resolveHabit(target string) (model.Habit, bool) {
	if n, err := strconv.Atoi(strings.TrimSpace(target)); err == nil {
		if n >= 1 && n <= len(m.Habits) {
			return m.Habits[n-1], true
		}
		return model.Habit{}, false
	}
	for _, h := range m.Habits {
		if strings.EqualFold(h.Title, strings.TrimSpace(target)) {
			return h, true
		}
	}
	return model.Habit{}, false
}
