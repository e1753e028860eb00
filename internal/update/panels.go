package update

import (
	"habitd/internal/model"
	"habitd/internal/views"
)

func (m Model) renderHabitsView() string {
	days := model.WeekWindow(m.today())
	cards := make([]views.HabitCardData, 0, len(m.Habits))
	for i, habit := range m.Habits {
		streak := model.Streak(habit, m.today())
		cards = append(cards, views.HabitCardData{
			Title:      habit.Title,
			Color:      habit.Color,
			Streak:     streak,
			FlameLevel: model.FlameLevel(streak),
			Checkins:   model.WeekCheckins(habit, days),
			Days:       weekMarks(habit, days),
			Selected:   i == m.HabitsView.Cursor,
		})
	}
	return views.RenderHabitsPanel(views.HabitsPanelData{
		QuickAddView: m.quickAddInput.View(),
		CaptureMode:  m.HabitsView.CaptureMode,
		Cards:        cards,
	})
}

// weekMarks pairs the week window with one habit's history. Each
// completed day carries the flame level of the streak ending on it.
func weekMarks(habit model.Habit, days []model.Day) []views.WeekDayMark {
	marks := make([]views.WeekDayMark, 0, len(days))
	for _, day := range days {
		done := habit.History[day.Date]
		level := 0
		if done {
			level = model.FlameLevel(model.StreakEndingAt(habit, day.Date))
		}
		marks = append(marks, views.WeekDayMark{
			Label:   day.Label,
			Done:    done,
			IsToday: day.IsToday,
			Level:   level,
		})
	}
	return marks
}

func (m Model) renderChartView() string {
	days := model.WeekWindow(m.today())
	chartDays := make([]views.ChartDayData, 0, len(days))
	for _, day := range days {
		chartDays = append(chartDays, views.ChartDayData{
			Label:   day.Label,
			Count:   model.DailyAggregate(m.Habits, day.Date),
			IsToday: day.IsToday,
		})
	}
	return views.RenderChartPanel(views.ChartPanelData{
		Days:          chartDays,
		Scale:         model.ChartScale(m.Habits),
		HabitCount:    len(m.Habits),
		TotalCheckins: model.TotalCheckins(m.Habits, days),
	})
}

func (m Model) renderCalendarView() string {
	focus := m.calendarFocus()
	grid := model.MonthMatrix(focus)
	completed := model.AnyCompletionSet(m.Habits)
	todayKey := m.todayKey()

	cells := make([]views.CalendarCellData, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		_, done := completed[cell.Date]
		cells = append(cells, views.CalendarCellData{
			Day:     cell.Day,
			InMonth: cell.InMonth,
			Done:    done,
			IsToday: cell.Date == todayKey,
		})
	}
	return views.RenderCalendarPanel(views.CalendarPanelData{
		Label: grid.Label,
		Cells: cells,
	})
}

func (m Model) renderOverviewView() string {
	days := model.WeekWindow(m.today())
	best := 0
	bestTitle := ""
	for _, habit := range m.Habits {
		if streak := model.Streak(habit, m.today()); streak > best {
			best = streak
			bestTitle = habit.Title
		}
	}
	return views.RenderOverviewPanel(views.OverviewData{
		HabitCount:    len(m.Habits),
		WeekCheckins:  model.TotalCheckins(m.Habits, days),
		BestStreak:    best,
		BestStreakFor: bestTitle,
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

func (m Model) quoteLine() string {
	q := quoteAt(m.Quote.Index)
	if q.Text == "" {
		return ""
	}
	return "“" + q.Text + "” — " + q.Author
}
