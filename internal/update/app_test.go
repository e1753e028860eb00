package update

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habitd/internal/model"
)

type recordingSaver struct {
	snapshots [][]model.Habit
}

func (r *recordingSaver) Save(_ context.Context, habits []model.Habit) {
	snapshot := make([]model.Habit, len(habits))
	copy(snapshot, habits)
	r.snapshots = append(r.snapshots, snapshot)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testModel(saver Saver) Model {
	m := NewModelWithStore(nil, saver)
	m.now = fixedClock(time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local))
	return m
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()
	if m.CurrentView != ViewHabits {
		t.Fatalf("expected default view %q, got %q", ViewHabits, m.CurrentView)
	}
	if m.Keys.Quit != "q" || m.Keys.Add != "a" {
		t.Fatalf("unexpected key map: %+v", m.Keys)
	}
	if len(m.Habits) != 0 {
		t.Fatalf("expected empty store, got %d habits", len(m.Habits))
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := testModel(nil)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	next := updated.(Model)
	if next.CurrentView != ViewChart {
		t.Fatalf("expected chart view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	next = updated.(Model)
	if next.CurrentView != ViewCalendar {
		t.Fatalf("expected calendar view, got %q", next.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := testModel(nil)
	updated, _ := m.Update(SwitchViewMsg{View: ViewCalendar})
	next := updated.(Model)
	if next.CurrentView != ViewCalendar {
		t.Fatalf("expected calendar view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewCalendar {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := testModel(nil)
	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	updated, _ = next.Update(AppErrorMsg{Err: errors.New("boom")})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestAddHabitMsgAddsAndPersists(t *testing.T) {
	saver := &recordingSaver{}
	m := testModel(saver)

	updated, _ := m.Update(AddHabitMsg{Title: "Stretch"})
	next := updated.(Model)
	if len(next.Habits) != 1 || next.Habits[0].Title != "Stretch" {
		t.Fatalf("unexpected habits: %#v", next.Habits)
	}
	if next.SelectedHabitID != next.Habits[0].ID {
		t.Fatal("expected new habit selected")
	}
	if len(saver.snapshots) != 1 || len(saver.snapshots[0]) != 1 {
		t.Fatalf("expected one persisted snapshot, got %d", len(saver.snapshots))
	}

	updated, _ = next.Update(AddHabitMsg{Title: "Read"})
	next = updated.(Model)
	if len(next.Habits) != 2 || next.Habits[0].Title != "Read" {
		t.Fatalf("expected new habit prepended, got %#v", next.Habits)
	}
}

func TestAddHabitMsgRejectsBlankTitle(t *testing.T) {
	saver := &recordingSaver{}
	m := testModel(saver)

	updated, _ := m.Update(AddHabitMsg{Title: "   "})
	next := updated.(Model)
	if len(next.Habits) != 0 {
		t.Fatalf("expected no habits, got %d", len(next.Habits))
	}
	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
	if len(saver.snapshots) != 0 {
		t.Fatal("expected no persistence for rejected add")
	}
}

func TestToggleHabitMsgOnlyToday(t *testing.T) {
	saver := &recordingSaver{}
	m := testModel(saver)
	updated, _ := m.Update(AddHabitMsg{Title: "Stretch"})
	m = updated.(Model)
	habitID := m.Habits[0].ID
	todayKey := model.DateKey(m.now())

	updated, _ = m.Update(ToggleHabitMsg{HabitID: habitID, Date: todayKey})
	m = updated.(Model)
	if !m.Habits[0].History[todayKey] {
		t.Fatal("expected today's entry set")
	}
	if len(saver.snapshots) != 2 {
		t.Fatalf("expected two persisted snapshots, got %d", len(saver.snapshots))
	}

	updated, _ = m.Update(ToggleHabitMsg{HabitID: habitID, Date: "2024-03-04"})
	m = updated.(Model)
	if m.Habits[0].History["2024-03-04"] {
		t.Fatal("expected past date toggle rejected")
	}
	if !m.Status.IsError {
		t.Fatalf("expected error status for past date, got %+v", m.Status)
	}
	if len(saver.snapshots) != 2 {
		t.Fatal("expected no persistence for rejected toggle")
	}

	updated, _ = m.Update(ToggleHabitMsg{HabitID: "no-such-id", Date: todayKey})
	m = updated.(Model)
	if !m.Status.IsError {
		t.Fatalf("expected error status for unknown id, got %+v", m.Status)
	}
}

func TestSpaceTogglesSelectedHabit(t *testing.T) {
	saver := &recordingSaver{}
	m := testModel(saver)
	updated, _ := m.Update(AddHabitMsg{Title: "Stretch"})
	m = updated.(Model)
	todayKey := model.DateKey(m.now())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	if !m.Habits[0].History[todayKey] {
		t.Fatal("expected space to check in the selected habit")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	if m.Habits[0].History[todayKey] {
		t.Fatal("expected second space to uncheck")
	}
}

func TestQuickAddCaptureFlow(t *testing.T) {
	saver := &recordingSaver{}
	m := testModel(saver)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = updated.(Model)
	if !m.HabitsView.CaptureMode {
		t.Fatal("expected capture mode after add key")
	}

	for _, r := range "Run" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.HabitsView.CaptureMode {
		t.Fatal("expected capture mode cleared after enter")
	}
	if len(m.Habits) != 1 || m.Habits[0].Title != "Run" {
		t.Fatalf("expected habit Run, got %#v", m.Habits)
	}
}

func TestQuoteTickAdvancesIndex(t *testing.T) {
	m := testModel(nil)
	updated, _ := m.Update(QuoteTickMsg{Seq: 1})
	next := updated.(Model)
	if next.Quote.Index != 1%len(quotes) {
		t.Fatalf("unexpected quote index %d", next.Quote.Index)
	}
	updated, _ = next.Update(QuoteTickMsg{Seq: len(quotes)})
	next = updated.(Model)
	if next.Quote.Index != 0 {
		t.Fatalf("expected quote index wrap to 0, got %d", next.Quote.Index)
	}
}

func TestQuitKeySetsQuitting(t *testing.T) {
	m := testModel(nil)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting after q")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestViewRendersWithoutHabits(t *testing.T) {
	m := testModel(nil)
	out := m.View()
	if out == "" {
		t.Fatal("expected non-empty view")
	}
}
