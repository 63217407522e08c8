package domain

import (
	"fmt"
	"strings"
)

type Note struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	BodyMarkdown string   `json:"bodyMarkdown"`
	Tags         []string `json:"tags"`
	UpdatedAt    int64    `json:"updatedAt"` // epoch milliseconds
}

// Validate checks the hard requirements for a note.
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("note title is required: %w", ErrValidation)
	}
	return nil
}

// Matches reports whether the note matches a case-insensitive substring query
// against its title, body, or any tag.
func (n *Note) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.BodyMarkdown), q) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
