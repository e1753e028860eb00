package model

import (
	"errors"
	"testing"
	"time"
)

func TestHabitValidateSuccess(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local)
	habit := Habit{
		ID:        "habit-1",
		Title:     "Stretch",
		Color:     Palette[0],
		History:   map[string]bool{"2024-03-05": true},
		CreatedAt: now,
	}
	if err := habit.Validate(); err != nil {
		t.Fatalf("expected valid habit, got error: %v", err)
	}
}

func TestHabitValidateRequiredFields(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local)
	cases := []struct {
		name  string
		habit Habit
	}{
		{name: "missing id", habit: Habit{Title: "Read", Color: "#38bdf8", CreatedAt: now}},
		{name: "missing title", habit: Habit{ID: "h1", Color: "#38bdf8", CreatedAt: now}},
		{name: "missing color", habit: Habit{ID: "h1", Title: "Read", CreatedAt: now}},
		{name: "missing created_at", habit: Habit{ID: "h1", Title: "Read", Color: "#38bdf8"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.habit.Validate(); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestHabitValidateMalformedHistoryKey(t *testing.T) {
	habit := Habit{
		ID:        "h1",
		Title:     "Read",
		Color:     "#38bdf8",
		History:   map[string]bool{"03/05/2024": true},
		CreatedAt: time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local),
	}
	err := habit.Validate()
	if err == nil || !errors.Is(err, ErrInvalidHistoryKey) {
		t.Fatalf("expected ErrInvalidHistoryKey, got: %v", err)
	}
}

func TestAddPrependsNewHabit(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 30, 0, 0, time.Local)
	habits, ok := Add(nil, "Meditate", now)
	if !ok || len(habits) != 1 {
		t.Fatalf("expected one habit, got ok=%v len=%d", ok, len(habits))
	}

	next, ok := Add(habits, "  Read  ", now)
	if !ok || len(next) != 2 {
		t.Fatalf("expected two habits, got ok=%v len=%d", ok, len(next))
	}
	if next[0].Title != "Read" {
		t.Fatalf("expected new habit first, got %q", next[0].Title)
	}
	if next[1].ID != habits[0].ID {
		t.Fatal("expected existing habit to keep its position after the new one")
	}
	if len(next[0].History) != 0 {
		t.Fatalf("expected empty history, got %v", next[0].History)
	}
	if next[0].ID == "" || next[0].ID == next[1].ID {
		t.Fatalf("expected fresh unique id, got %q and %q", next[0].ID, next[1].ID)
	}
	if !next[0].CreatedAt.Equal(now) {
		t.Fatalf("expected created_at %v, got %v", now, next[0].CreatedAt)
	}
	if err := next[0].Validate(); err != nil {
		t.Fatalf("new habit failed validation: %v", err)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 30, 0, 0, time.Local)
	habits, _ := Add(nil, "Stretch", now)

	for _, title := range []string{"", "   ", "\t\n"} {
		out, ok := Add(habits, title, now)
		if ok {
			t.Fatalf("expected rejection for title %q", title)
		}
		if len(out) != len(habits) {
			t.Fatalf("expected store unchanged, got %d habits", len(out))
		}
	}
}

func TestAddRotatesPalette(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 30, 0, 0, time.Local)
	var habits []Habit
	titles := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, title := range titles {
		var ok bool
		habits, ok = Add(habits, title, now)
		if !ok {
			t.Fatalf("add %q failed", title)
		}
	}
	// Habits are prepended, so the first-created habit is last.
	for i, h := range habits {
		position := len(habits) - 1 - i
		want := Palette[position%len(Palette)]
		if h.Color != want {
			t.Fatalf("habit %q: expected color %s for position %d, got %s", h.Title, want, position, h.Color)
		}
	}
}

func TestToggleDayFlipsOnlyToday(t *testing.T) {
	now := time.Date(2024, 3, 5, 18, 0, 0, 0, time.Local)
	todayKey := DateKey(now)
	habits, _ := Add(nil, "Stretch", now)
	habits, _ = Add(habits, "Read", now)
	habits[1].History["2024-03-01"] = true

	out, ok := ToggleDay(habits, habits[1].ID, todayKey, now)
	if !ok {
		t.Fatal("expected toggle to apply")
	}
	if !out[1].History[todayKey] {
		t.Fatal("expected today's entry set true")
	}
	if !out[1].History["2024-03-01"] {
		t.Fatal("expected unrelated history entry preserved")
	}
	if len(out[0].History) != 0 {
		t.Fatalf("expected other habit untouched, got %v", out[0].History)
	}
	if habits[1].History[todayKey] {
		t.Fatal("expected input snapshot unmodified")
	}

	// A second toggle flips back to false but keeps the entry.
	out, ok = ToggleDay(out, out[1].ID, todayKey, now)
	if !ok {
		t.Fatal("expected second toggle to apply")
	}
	if done, present := out[1].History[todayKey]; done || !present {
		t.Fatalf("expected explicit false entry, got done=%v present=%v", done, present)
	}
}

func TestToggleDayRejectsOtherDates(t *testing.T) {
	now := time.Date(2024, 3, 5, 18, 0, 0, 0, time.Local)
	habits, _ := Add(nil, "Stretch", now)

	for _, key := range []string{"2024-03-04", "2024-03-06", "2023-03-05", "not-a-date"} {
		out, ok := ToggleDay(habits, habits[0].ID, key, now)
		if ok {
			t.Fatalf("expected rejection for date %q", key)
		}
		if len(out) != 1 || len(out[0].History) != 0 {
			t.Fatalf("expected store unchanged for date %q", key)
		}
	}
}

func TestToggleDayUnknownHabitIsNoop(t *testing.T) {
	now := time.Date(2024, 3, 5, 18, 0, 0, 0, time.Local)
	habits, _ := Add(nil, "Stretch", now)

	out, ok := ToggleDay(habits, "no-such-id", DateKey(now), now)
	if ok {
		t.Fatal("expected unknown id rejection")
	}
	if len(out) != 1 || len(out[0].History) != 0 {
		t.Fatal("expected store unchanged for unknown id")
	}
}
