package importer

import (
	"testing"

	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalBackup = `{"budgets":[],"tasks":[],"notes":[],"habits":[]}`

func TestParseBackup_Minimal(t *testing.T) {
	b, err := ParseBackup([]byte(minimalBackup))
	require.NoError(t, err)
	assert.NotNil(t, b.Tasks)
	assert.NotNil(t, b.Habits)
	assert.NotNil(t, b.Budgets)
	assert.NotNil(t, b.Notes)
}

func TestParseBackup_MissingNotesKey(t *testing.T) {
	_, err := ParseBackup([]byte(`{"budgets":[],"tasks":[],"habits":[]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes")
}

func TestParseBackup_MissingSeveralKeys(t *testing.T) {
	_, err := ParseBackup([]byte(`{"tasks":[]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budgets")
	assert.Contains(t, err.Error(), "notes")
	assert.Contains(t, err.Error(), "habits")
}

func TestParseBackup_NotJSON(t *testing.T) {
	_, err := ParseBackup([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseBackup_RoundTrip(t *testing.T) {
	b := &Backup{
		Tasks:  []domain.Task{{ID: "t1", Title: "A", Priority: domain.PriorityHigh}},
		Habits: []domain.Habit{{ID: "h1", Title: "B", DailyRecords: map[string]bool{"2026-09-01": true}, Streak: 2}},
	}
	data, err := MarshalBackup(b)
	require.NoError(t, err)

	parsed, err := ParseBackup(data)
	require.NoError(t, err)
	assert.Equal(t, b.Tasks, parsed.Tasks)
	assert.Equal(t, b.Habits, parsed.Habits)
	assert.Empty(t, parsed.Budgets)
	assert.Empty(t, parsed.Notes)
}

func TestValidateBackup_Clean(t *testing.T) {
	b, err := ParseBackup([]byte(minimalBackup))
	require.NoError(t, err)
	assert.Empty(t, ValidateBackup(b))
}

func TestValidateBackup_DuplicateIDs(t *testing.T) {
	b := &Backup{
		Tasks: []domain.Task{{ID: "x", Title: "A"}, {ID: "x", Title: "B"}},
	}
	errs := ValidateBackup(b)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate id")
}

func TestValidateBackup_CollectsAllErrors(t *testing.T) {
	b := &Backup{
		Tasks:   []domain.Task{{ID: "", Title: "A", Priority: "urgent"}},
		Habits:  []domain.Habit{{ID: "h1", Streak: -1}},
		Budgets: []domain.Budget{{ID: "b1", Items: []domain.BudgetItem{{ID: "i1", Amount: -5}}}},
		Notes:   []domain.Note{{ID: ""}},
	}
	errs := ValidateBackup(b)
	assert.Len(t, errs, 5)
}
