package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexvidal/xptrack/internal/domain"
)

func TestCreateNote(t *testing.T) {
	a, rec := newEmptyApp(t)

	note, err := a.CreateNote(context.Background(), NoteInput{
		Title:        "Meeting notes",
		BodyMarkdown: "# Agenda\n- roadmap",
		Tags:         "work, planning",
	})
	require.NoError(t, err)
	assert.Equal(t, testAnchor.UnixMilli(), note.UpdatedAt)
	assert.Equal(t, []string{"work", "planning"}, note.Tags)

	_, ok := rec.find("note_create")
	assert.True(t, ok)
}

func TestCreateNote_EmptyTitleRejected(t *testing.T) {
	a, _ := newEmptyApp(t)

	_, err := a.CreateNote(context.Background(), NoteInput{Title: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, a.Notes())
}

func TestUpdateNote_BumpsTimestamp(t *testing.T) {
	clock := &movableClock{now: testAnchor}
	a, _ := newEmptyApp(t, WithClock(clock.Now))
	ctx := context.Background()
	note, err := a.CreateNote(ctx, NoteInput{Title: "draft"})
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)
	require.NoError(t, a.UpdateNote(ctx, note.ID, NoteInput{Title: "final", BodyMarkdown: "done"}))

	got, ok := a.FindNote(note.ID)
	require.True(t, ok)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, clock.Now().UnixMilli(), got.UpdatedAt)
	assert.Greater(t, got.UpdatedAt, note.UpdatedAt)
}

func TestUpdateNote_UnknownIDIsNoOp(t *testing.T) {
	a, rec := newEmptyApp(t)

	require.NoError(t, a.UpdateNote(context.Background(), "missing", NoteInput{Title: "x"}))
	assert.Empty(t, rec.names())
}

func TestDeleteNote(t *testing.T) {
	a, _ := newEmptyApp(t)
	ctx := context.Background()
	note, err := a.CreateNote(ctx, NoteInput{Title: "doomed"})
	require.NoError(t, err)

	a.DeleteNote(ctx, note.ID)
	assert.Empty(t, a.Notes())

	stored, err := a.store.Notes(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
