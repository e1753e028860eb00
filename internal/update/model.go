package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"habitd/internal/model"
	"habitd/internal/rotation"
)

type View string

const (
	ViewHabits   View = "Habits"
	ViewChart    View = "Chart"
	ViewCalendar View = "Calendar"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Habits   string
	Chart    string
	Calendar string
	Add      string
	Help     string
	Quit     string
}

// Saver receives the full habit snapshot after every mutation. The
// update layer never reads through it; loading happens once at startup.
type Saver interface {
	Save(ctx context.Context, habits []model.Habit)
}

type HabitsState struct {
	Cursor      int
	CaptureMode bool
	Input       string
}

type CalendarState struct {
	// FocusDate anchors the month grid; zero means the current month.
	FocusDate time.Time
}

type QuoteState struct {
	Index int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView     View
	Habits          []model.Habit
	SelectedHabitID string
	HabitsView      HabitsState
	Calendar        CalendarState
	Quote           QuoteState
	Palette         CommandPaletteState
	HelpVisible     bool
	Status          StatusBar
	Keys            GlobalKeyMap
	Quitting        bool
	LastError       error
	Rotator         *rotation.Engine
	saver           Saver
	now             func() time.Time
	// Bubble components used for text entry and the help footer
	quickAddInput textinput.Model
	commandInput  textinput.Model
	helpModel     help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type AddHabitMsg struct {
	Title string
}

type ToggleHabitMsg struct {
	HabitID string
	Date    string
}

type QuoteTickMsg struct {
	Seq int
}

func NewModel() Model {
	m := Model{
		CurrentView: ViewHabits,
		Habits:      []model.Habit{},
		Keys: GlobalKeyMap{
			Habits:   "1",
			Chart:    "2",
			Calendar: "3",
			Add:      "a",
			Help:     "?",
			Quit:     "q",
		},
		now: time.Now,
	}
	m.initBubbleComponents()
	return m
}

func NewModelWithStore(habits []model.Habit, saver Saver) Model {
	m := NewModel()
	if habits != nil {
		m.Habits = habits
	}
	m.saver = saver
	if len(m.Habits) > 0 {
		m.SelectedHabitID = m.Habits[0].ID
	}
	return m
}

func NewModelWithRuntime(habits []model.Habit, saver Saver, rotator *rotation.Engine) Model {
	m := NewModelWithStore(habits, saver)
	m.Rotator = rotator
	return m
}

func (m *Model) initBubbleComponents() {
	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.Placeholder = "Stretch, Read, Meditate…"
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

func (m Model) today() time.Time {
	return m.now()
}

func (m Model) todayKey() string {
	return model.DateKey(m.now())
}

// calendarFocus is the reference date for the month grid.
func (m Model) calendarFocus() time.Time {
	if m.Calendar.FocusDate.IsZero() {
		return m.now()
	}
	return m.Calendar.FocusDate
}

func (m *Model) persist() {
	if m.saver == nil {
		return
	}
	m.saver.Save(context.Background(), m.Habits)
}

func (m *Model) ensureHabitsState() {
	if m.HabitsView.Cursor < 0 {
		m.HabitsView.Cursor = 0
	}
	if m.HabitsView.Cursor >= len(m.Habits) && len(m.Habits) > 0 {
		m.HabitsView.Cursor = len(m.Habits) - 1
	}
	if len(m.Habits) == 0 {
		m.SelectedHabitID = ""
		return
	}
	m.SelectedHabitID = m.Habits[m.HabitsView.Cursor].ID
}

func (m Model) currentHabit() (model.Habit, bool) {
	if len(m.Habits) == 0 {
		return model.Habit{}, false
	}
	if m.HabitsView.Cursor < 0 || m.HabitsView.Cursor >= len(m.Habits) {
		return model.Habit{}, false
	}
	return m.Habits[m.HabitsView.Cursor], true
}
