package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"habitd/internal/model"
)

// HabitsKey is the namespace under which the habit snapshot lives.
const HabitsKey = "habit-tracker::habits"

// HabitStore persists the full habit snapshot as one JSON value. Both
// operations fail soft: errors are logged and swallowed, and the
// application keeps running with whatever data it has.
type HabitStore struct {
	kv  KV
	log *zap.Logger
}

func NewHabitStore(kv KV, logger *zap.Logger) *HabitStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HabitStore{kv: kv, log: logger}
}

// Load reads the persisted snapshot. A missing key, unreadable payload,
// or schema mismatch all yield an empty store; nothing here is fatal.
func (s *HabitStore) Load(ctx context.Context) []model.Habit {
	raw, err := s.kv.Get(ctx, HabitsKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("load habits", zap.Error(err))
		}
		return []model.Habit{}
	}
	habits, err := decodeHabits(raw)
	if err != nil {
		s.log.Warn("decode habits, starting empty", zap.Error(err))
		return []model.Habit{}
	}
	return habits
}

// Save overwrites the snapshot with the given habits. Write failures
// are logged, never propagated; there is no retry.
func (s *HabitStore) Save(ctx context.Context, habits []model.Habit) {
	raw, err := encodeHabits(habits)
	if err != nil {
		s.log.Warn("encode habits", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, HabitsKey, raw); err != nil {
		s.log.Warn("save habits", zap.Error(err))
	}
}

func encodeHabits(habits []model.Habit) (string, error) {
	records := make([]HabitRecord, 0, len(habits))
	for _, h := range habits {
		records = append(records, toRecord(h))
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal habits: %w", err)
	}
	return string(payload), nil
}

func decodeHabits(raw string) ([]model.Habit, error) {
	var records []HabitRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("unmarshal habits: %w", err)
	}
	out := make([]model.Habit, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		habit, err := fromRecord(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[habit.ID]; dup {
			return nil, fmt.Errorf("duplicate habit id %q", habit.ID)
		}
		seen[habit.ID] = struct{}{}
		out = append(out, habit)
	}
	return out, nil
}
