package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"habitd/internal/rotation"
	"habitd/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Rotator != nil {
		return waitForQuoteCmd(m.Rotator.C())
	}
	return nil
}

func waitForQuoteCmd(ch <-chan rotation.Tick) tea.Cmd {
	return func() tea.Msg {
		tick, ok := <-ch
		if !ok {
			return nil
		}
		return QuoteTickMsg{Seq: tick.Seq}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.ensureHabitsState()

		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed), nil
		}

		if m.CurrentView == ViewHabits && m.HabitsView.CaptureMode {
			if typed.String() != "ctrl+c" {
				return m.handleCaptureKey(typed), nil
			}
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Habits:
			m.CurrentView = ViewHabits
			return m, nil
		case m.Keys.Chart:
			m.CurrentView = ViewChart
			return m, nil
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			return m, nil
		case m.Keys.Add:
			m.startCapture()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewHabits:
			return m.handleHabitsKey(typed), nil
		case ViewCalendar:
			return m.handleCalendarKey(typed), nil
		}
		return m, nil
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewHabits {
				m.ensureHabitsState()
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case AddHabitMsg:
		return m.applyAddHabit(typed.Title), nil
	case ToggleHabitMsg:
		return m.applyToggle(typed.HabitID, typed.Date), nil
	case QuoteTickMsg:
		m.Quote.Index = typed.Seq % len(quotes)
		if m.Rotator != nil {
			return m, waitForQuoteCmd(m.Rotator.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewHabits:
		leftPane = m.renderHabitsView()
		rightPane = joinPanes(m.renderOverviewView(), m.renderCommandPalette(), m.renderHelpIfVisible())
	case ViewChart:
		leftPane = m.renderChartView()
		rightPane = joinPanes(m.renderOverviewView(), m.renderCommandPalette(), m.renderHelpIfVisible())
	case ViewCalendar:
		leftPane = m.renderCalendarView()
		rightPane = joinPanes(m.renderCommandPalette(), m.renderHelpIfVisible())
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("habitd | view: %s | %d habits", m.CurrentView, len(m.Habits)),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		QuoteLine:  m.quoteLine(),
		Footer: fmt.Sprintf("keys: %s habits | %s chart | %s calendar | %s add | / cmd | %s help | %s quit",
			m.Keys.Habits, m.Keys.Chart, m.Keys.Calendar, m.Keys.Add, m.Keys.Help, m.Keys.Quit),
	})
}

func joinPanes(panes ...string) string {
	out := ""
	for _, pane := range panes {
		if pane == "" {
			continue
		}
		if out != "" {
			out += "\n\n"
		}
		out += pane
	}
	return out
}

func isKnownView(v View) bool {
	switch v {
	case ViewHabits, ViewChart, ViewCalendar:
		return true
	default:
		return false
	}
}
