package storage

import (
	"fmt"
	"time"

	"habitd/internal/model"
)

// HabitRecord is the persisted shape of a habit. Field names are fixed:
// the payload must stay readable by anything else speaking the
// habit-tracker schema.
type HabitRecord struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Color     string          `json:"color"`
	History   map[string]bool `json:"history"`
	CreatedAt string          `json:"createdAt"`
}

func toRecord(h model.Habit) HabitRecord {
	history := h.History
	if history == nil {
		history = map[string]bool{}
	}
	return HabitRecord{
		ID:        h.ID,
		Title:     h.Title,
		Color:     h.Color,
		History:   history,
		CreatedAt: h.CreatedAt.Format(time.RFC3339),
	}
}

// fromRecord converts and validates one persisted record. The load
// boundary trusts nothing: a record that does not decode into a valid
// habit fails the whole payload.
func fromRecord(r HabitRecord) (model.Habit, error) {
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return model.Habit{}, fmt.Errorf("parse createdAt for habit %q: %w", r.ID, err)
	}
	history := r.History
	if history == nil {
		history = map[string]bool{}
	}
	habit := model.Habit{
		ID:        r.ID,
		Title:     r.Title,
		Color:     r.Color,
		History:   history,
		CreatedAt: createdAt,
	}
	if err := habit.Validate(); err != nil {
		return model.Habit{}, err
	}
	return habit, nil
}
