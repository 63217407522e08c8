package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/importer"
	"github.com/alexvidal/xptrack/internal/store"
	"github.com/alexvidal/xptrack/internal/testutil"
)

func smallBackup() importer.Backup {
	return importer.Backup{
		Budgets: []domain.Budget{testutil.NewBudget("Imported", testutil.WithItem("Rent", 900))},
		Tasks:   []domain.Task{testutil.NewTask("imported task")},
		Notes:   []domain.Note{testutil.NewNote("imported note")},
		Habits:  []domain.Habit{testutil.NewHabit("imported habit")},
	}
}

func TestExportBackup(t *testing.T) {
	a, _ := newSeededApp(t)

	backup := a.ExportBackup()
	assert.Len(t, backup.Tasks, 5)
	assert.Len(t, backup.Habits, 10)
	assert.Len(t, backup.Budgets, 1)
	assert.Len(t, backup.Notes, 3)
}

func TestImportBackup_ReplacesEverything(t *testing.T) {
	a, rec := newSeededApp(t)
	ctx := context.Background()

	require.NoError(t, a.ImportBackup(ctx, smallBackup()))

	assert.Len(t, a.Tasks(), 1)
	assert.Len(t, a.Habits(), 1)
	assert.Len(t, a.Budgets(), 1)
	assert.Len(t, a.Notes(), 1)
	assert.Equal(t, "imported task", a.Tasks()[0].Title)

	// The replacement reached disk too.
	stored, err := a.store.Tasks(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "imported task", stored[0].Title)

	_, ok := rec.find("backup_import")
	assert.True(t, ok)
}

func TestImportBackup_InvalidBackupLeavesStateUntouched(t *testing.T) {
	a, _ := newSeededApp(t)
	ctx := context.Background()

	bad := smallBackup()
	bad.Tasks[0].Priority = "urgent"

	err := a.ImportBackup(ctx, bad)
	require.Error(t, err)
	assert.Len(t, a.Tasks(), 5, "rejected import must not replace collections")
}

func TestImportBackup_WriteFailureRollsBackAllNamespaces(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := store.New(database)
	ctx := context.Background()

	boom := errors.New("disk full")
	// The import writes four namespaces in order; failing the last exec
	// must undo the first three.
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 4, Err: boom}
	a := New(s, uow, WithClock(testutil.FixedClock(testAnchor)))
	require.NoError(t, a.Init(ctx))

	err := a.ImportBackup(ctx, smallBackup())
	require.ErrorIs(t, err, boom)

	assert.Len(t, a.Tasks(), 5, "in-memory state keeps the old data")
	stored, err := s.Tasks(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 5, "the partially written namespaces are rolled back")
}

func TestImportBackup_ClearsUndoSlot(t *testing.T) {
	a, _ := newSeededApp(t)
	ctx := context.Background()

	a.DeleteTask(ctx, a.Tasks()[0].ID)
	require.True(t, a.CanUndo())

	require.NoError(t, a.ImportBackup(ctx, smallBackup()))
	assert.False(t, a.CanUndo(), "a restored task would not belong to the imported data")
}

func TestResetToDemo(t *testing.T) {
	a, rec := newSeededApp(t)
	ctx := context.Background()

	require.NoError(t, a.ImportBackup(ctx, smallBackup()))
	require.Len(t, a.Tasks(), 1)

	require.NoError(t, a.ResetToDemo(ctx))
	assert.Len(t, a.Tasks(), 5)
	assert.Len(t, a.Habits(), 10)
	assert.Len(t, a.Budgets(), 1)
	assert.Len(t, a.Notes(), 3)

	_, ok := rec.find("demo_reset")
	assert.True(t, ok)
}

func TestExportImportRoundTrip(t *testing.T) {
	a, _ := newSeededApp(t)
	ctx := context.Background()

	exported := a.ExportBackup()
	data, err := importer.MarshalBackup(&exported)
	require.NoError(t, err)

	parsed, err := importer.ParseBackup(data)
	require.NoError(t, err)
	require.NoError(t, a.ImportBackup(ctx, *parsed))

	assert.Equal(t, exported.Tasks, a.Tasks())
	assert.Equal(t, exported.Habits, a.Habits())
}
