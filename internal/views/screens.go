package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WeekDayMark is one day cell of a habit card. Level is the flame
// level of the streak ending on that day, 0 when the day is not done.
type WeekDayMark struct {
	Label   string
	Done    bool
	IsToday bool
	Level   int
}

type HabitCardData struct {
	Title      string
	Color      string
	Streak     int
	FlameLevel int
	Checkins   int
	Days       []WeekDayMark
	Selected   bool
}

type HabitsPanelData struct {
	QuickAddView string
	CaptureMode  bool
	Cards        []HabitCardData
}

type ChartDayData struct {
	Label   string
	Count   int
	IsToday bool
}

type ChartPanelData struct {
	Days          []ChartDayData
	Scale         int
	HabitCount    int
	TotalCheckins int
}

type CalendarCellData struct {
	Day     int
	InMonth bool
	Done    bool
	IsToday bool
}

type CalendarPanelData struct {
	Label string
	Cells []CalendarCellData
}

type OverviewData struct {
	HabitCount    int
	WeekCheckins  int
	BestStreak    int
	BestStreakFor string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderHabitsPanel(data HabitsPanelData) string {
	var b strings.Builder
	b.WriteString("habits:\n")
	if data.CaptureMode {
		b.WriteString(data.QuickAddView + "\n")
	}
	b.WriteString("actions: [a]add [j/k]move [space]check-in today\n")
	if len(data.Cards) == 0 {
		b.WriteString("(no habits yet, add your first one)")
		return strings.TrimSpace(b.String())
	}
	for _, card := range data.Cards {
		b.WriteString("\n" + renderHabitCard(card))
	}
	return strings.TrimSpace(b.String())
}

func renderHabitCard(card HabitCardData) string {
	cursor := " "
	if card.Selected {
		cursor = ">"
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(card.Color)).Render(card.Title)
	head := fmt.Sprintf("%s %s  %s  %d/%d check-ins", cursor, title, flameGauge(card.Streak, card.FlameLevel), card.Checkins, len(card.Days))

	labels := make([]string, 0, len(card.Days))
	marks := make([]string, 0, len(card.Days))
	for _, day := range card.Days {
		label := day.Label
		mark := "·"
		if day.Done {
			mark = dayMark(day.Level)
		}
		if day.IsToday {
			label = todayStyle.Render(label)
			mark = "[" + mark + "]"
		} else {
			mark = " " + mark + " "
		}
		labels = append(labels, label)
		marks = append(marks, mark)
	}
	return head + "\n  " + strings.Join(labels, " ") + "\n  " + strings.Join(marks, " ")
}

// flameGauge grows with the flame level, capped so long streaks stay
// readable.
func flameGauge(streak, level int) string {
	if streak <= 0 {
		return "· 0d"
	}
	return strings.Repeat("🔥", 1+level/3) + fmt.Sprintf(" %dd", streak)
}

// dayMark colors a completed day by the streak ending on it: fresh
// streaks stay green, longer ones heat up.
func dayMark(level int) string {
	switch {
	case level >= 5:
		return hotStyle.Render("●")
	case level >= 2:
		return warmStyle.Render("●")
	default:
		return doneStyle.Render("●")
	}
}

const chartBarWidth = 24

func RenderChartPanel(data ChartPanelData) string {
	var b strings.Builder
	b.WriteString("weekly progress:\n")
	b.WriteString(fmt.Sprintf("%d habits · %d check-ins this week\n\n", data.HabitCount, data.TotalCheckins))
	scale := data.Scale
	if scale < 1 {
		scale = 1
	}
	for _, day := range data.Days {
		width := day.Count * chartBarWidth / scale
		if width > chartBarWidth {
			width = chartBarWidth
		}
		if day.Count > 0 && width < 1 {
			width = 1
		}
		bar := strings.Repeat("█", width)
		if day.Count > 0 {
			bar = doneStyle.Render(bar)
		}
		label := day.Label
		if day.IsToday {
			label = todayStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s %-*s %d\n", label, chartBarWidth, bar, day.Count))
	}
	b.WriteString(fmt.Sprintf("\nscale: 0..%d habits per day", scale))
	return strings.TrimSpace(b.String())
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar: " + data.Label + "\n")
	b.WriteString("actions: [h/l]month [t]back to today\n\n")
	b.WriteString(" Mo  Tu  We  Th  Fr  Sa  Su\n")
	for i, cell := range data.Cells {
		b.WriteString(renderCalendarCell(cell))
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n● at least one habit completed that day")
	return strings.TrimSpace(b.String())
}

func renderCalendarCell(cell CalendarCellData) string {
	mark := " "
	if cell.Done {
		mark = doneStyle.Render("●")
	}
	text := fmt.Sprintf("%2d%s", cell.Day, mark)
	switch {
	case cell.IsToday:
		text = todayStyle.Render(text)
	case !cell.InMonth:
		text = dimStyle.Render(text)
	}
	return " " + text
}

func RenderOverviewPanel(data OverviewData) string {
	var b strings.Builder
	b.WriteString("overview:\n")
	b.WriteString(fmt.Sprintf("habits: %d\n", data.HabitCount))
	b.WriteString(fmt.Sprintf("check-ins this week: %d\n", data.WeekCheckins))
	if data.BestStreakFor != "" {
		b.WriteString(fmt.Sprintf("best streak: %d days (%s)", data.BestStreak, data.BestStreakFor))
	} else {
		b.WriteString("best streak: none yet")
	}
	return b.String()
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	var b strings.Builder
	b.WriteString("command palette:\n")
	b.WriteString(inputView + "\n")
	b.WriteString("commands: add <title> | toggle <habit|n> | show <habits|chart|calendar> | stats")
	return b.String()
}

func RenderHelpPanel(data HelpPanelData) string {
	md := "# Help: " + data.CurrentView + "\n\n"
	for _, binding := range data.Bindings {
		md += binding + "\n"
	}
	rendered := RenderMarkdown(md)
	if data.HelpView != "" {
		rendered += "\n" + data.HelpView
	}
	return rendered
}
