// Package importer defines the backup document exchanged by the export and
// import operations, and its validation.
package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexvidal/xptrack/internal/domain"
)

// Backup is the top-level JSON structure for data export and import.
// All four collections are always present; a document missing any key is
// rejected as a whole.
type Backup struct {
	Budgets []domain.Budget `json:"budgets"`
	Tasks   []domain.Task   `json:"tasks"`
	Notes   []domain.Note   `json:"notes"`
	Habits  []domain.Habit  `json:"habits"`
}

var requiredKeys = []string{"budgets", "tasks", "notes", "habits"}

// ParseBackup parses a backup document. Every required collection key must
// be present (empty arrays are fine); otherwise a format error naming the
// missing keys is returned and nothing is parsed.
func ParseBackup(data []byte) (*Backup, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid backup document: %w", err)
	}

	var missing []string
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("invalid backup document: missing keys %v", missing)
	}

	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("invalid backup document: %w", err)
	}
	normalize(&b)
	return &b, nil
}

// LoadBackup reads and parses a backup file.
func LoadBackup(path string) (*Backup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBackup(data)
}

// MarshalBackup serializes a backup document with indentation, matching the
// exported file format.
func MarshalBackup(b *Backup) ([]byte, error) {
	normalize(b)
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return data, nil
}

// normalize keeps collections as arrays, never null, in both directions.
func normalize(b *Backup) {
	if b.Budgets == nil {
		b.Budgets = []domain.Budget{}
	}
	if b.Tasks == nil {
		b.Tasks = []domain.Task{}
	}
	if b.Notes == nil {
		b.Notes = []domain.Note{}
	}
	if b.Habits == nil {
		b.Habits = []domain.Habit{}
	}
}
