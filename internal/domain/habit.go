package domain

import (
	"fmt"
	"strings"
)

type Habit struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Schedule    Schedule        `json:"schedule"`
	DailyRecords map[string]bool `json:"dailyRecords"`
	Streak      int             `json:"streak"`
	Color       string          `json:"color"` // display hint only
}

// Validate checks the hard requirements for a habit.
func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return fmt.Errorf("habit title is required: %w", ErrValidation)
	}
	return nil
}

// DoneOn reports whether the habit is recorded done for the given date key.
func (h *Habit) DoneOn(day string) bool {
	return h.DailyRecords[day]
}

// NextStreak computes the streak value after toggling today's record.
//
// Marking done: if yesterday was done or the current streak is 0 the streak
// increments; otherwise a gap resets momentum to 1, since today's completion
// itself counts. Unmarking decrements, floored at 0.
func NextStreak(current int, markingDone, yesterdayDone bool) int {
	if markingDone {
		if yesterdayDone || current == 0 {
			return current + 1
		}
		return 1
	}
	if current <= 1 {
		return 0
	}
	return current - 1
}
