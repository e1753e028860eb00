package model

import "time"

// Streak counts consecutive completed days walking backward from asOf,
// inclusive. The walk stops at the first missing or false entry, so an
// unmarked asOf yields 0. Month and year boundaries roll over through
// native date arithmetic; walking past the habit's creation date is
// fine, absent entries are simply false.
func Streak(h Habit, asOf time.Time) int {
	count := 0
	cursor := asOf
	for h.History[DateKey(cursor)] {
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return count
}

// StreakEndingAt is Streak anchored at an arbitrary date key. A
// malformed key has no history entry by invariant, so it yields 0.
func StreakEndingAt(h Habit, key string) int {
	day, err := ParseDateKey(key)
	if err != nil {
		return 0
	}
	return Streak(h, day)
}

// FlameLevel maps a streak to a 0..6 display level, one step per day
// past the first.
func FlameLevel(streak int) int {
	level := streak - 1
	if level < 0 {
		return 0
	}
	if level > 6 {
		return 6
	}
	return level
}

// DailyAggregate counts the habits completed on the given day.
func DailyAggregate(habits []Habit, key string) int {
	count := 0
	for _, h := range habits {
		if h.History[key] {
			count++
		}
	}
	return count
}

// ChartScale is the bar-chart denominator: the habit count, floored at
// one so an empty store never divides by zero.
func ChartScale(habits []Habit) int {
	if len(habits) < 1 {
		return 1
	}
	return len(habits)
}

// AnyCompletionSet is the union of completed date keys across all
// habits. A day is in the set when at least one habit was done that
// day, regardless of which.
func AnyCompletionSet(habits []Habit) map[string]struct{} {
	out := make(map[string]struct{})
	for _, h := range habits {
		for key, done := range h.History {
			if done {
				out[key] = struct{}{}
			}
		}
	}
	return out
}

// WeekCheckins counts the habit's completions within a week window.
func WeekCheckins(h Habit, days []Day) int {
	count := 0
	for _, d := range days {
		if h.History[d.Date] {
			count++
		}
	}
	return count
}

// TotalCheckins sums WeekCheckins over all habits.
func TotalCheckins(habits []Habit, days []Day) int {
	total := 0
	for _, h := range habits {
		total += WeekCheckins(h, days)
	}
	return total
}
