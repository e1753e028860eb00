package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidHistoryKey = errors.New("model: malformed history key")

// Palette is the fixed rotation of card colors. A new habit takes the
// color at its creation position modulo the palette length.
var Palette = []string{"#38bdf8", "#6366f1", "#8b5cf6", "#14b8a6", "#f472b6"}

// Habit is one tracked behavior. History maps a date key to "completed
// that day"; a missing key means not done, there is no third state.
type Habit struct {
	ID        string
	Title     string
	Color     string
	History   map[string]bool
	CreatedAt time.Time
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return errors.New("model: habit id is required")
	}
	if strings.TrimSpace(h.Title) == "" {
		return errors.New("model: habit title is required")
	}
	if strings.TrimSpace(h.Color) == "" {
		return errors.New("model: habit color is required")
	}
	if h.CreatedAt.IsZero() {
		return errors.New("model: habit created_at is required")
	}
	for key := range h.History {
		if _, err := ParseDateKey(key); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidHistoryKey, key)
		}
	}
	return nil
}

// Done reports whether the habit was completed on the given day.
func (h Habit) Done(key string) bool {
	return h.History[key]
}

func (h Habit) clone() Habit {
	next := h
	next.History = make(map[string]bool, len(h.History)+1)
	for key, done := range h.History {
		next.History[key] = done
	}
	return next
}

// Add prepends a new habit with the given title. The input slice is
// never modified. A blank title is rejected and the original slice is
// returned with ok=false.
func Add(habits []Habit, title string, now time.Time) ([]Habit, bool) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return habits, false
	}
	habit := Habit{
		ID:        uuid.NewString(),
		Title:     trimmed,
		Color:     Palette[len(habits)%len(Palette)],
		History:   make(map[string]bool),
		CreatedAt: now,
	}
	out := make([]Habit, 0, len(habits)+1)
	out = append(out, habit)
	out = append(out, habits...)
	return out, true
}

// ToggleDay flips the completion entry for one habit on one day and
// returns a new snapshot. Only the current day is mutable: any other
// date, and any unknown habit id, leaves the input untouched with
// ok=false.
func ToggleDay(habits []Habit, habitID, key string, now time.Time) ([]Habit, bool) {
	if key != DateKey(now) {
		return habits, false
	}
	for i, h := range habits {
		if h.ID != habitID {
			continue
		}
		next := h.clone()
		next.History[key] = !next.History[key]
		out := make([]Habit, len(habits))
		copy(out, habits)
		out[i] = next
		return out, true
	}
	return habits, false
}
