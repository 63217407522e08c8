package domain

import (
	"fmt"
	"strings"
)

// Subtask is owned by its parent Task; its lifetime is bound to it.
type Subtask struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"dueDate"` // YYYY-MM-DD, empty if unset
	Priority    Priority  `json:"priority"`
	Tags        []string  `json:"tags"`
	Subtasks    []Subtask `json:"subtasks"`
	Done        bool      `json:"done"`
	CompletedAt int64     `json:"completedAt,omitempty"` // epoch milliseconds, zero while open
	Order       int       `json:"order"`
}

// Validate checks the hard requirements for a task. Title must be non-empty
// after trimming.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required: %w", ErrValidation)
	}
	if t.Priority != "" && !ValidPriorities[string(t.Priority)] {
		return fmt.Errorf("invalid priority %q: %w", t.Priority, ErrValidation)
	}
	return nil
}

// DueToday reports whether the task is due on the given date key.
func (t *Task) DueToday(today string) bool {
	return t.DueDate == today
}

// SplitTags parses a comma-separated tag string, trimming whitespace and
// dropping empty entries.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
