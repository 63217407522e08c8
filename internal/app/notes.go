package app

import (
	"context"
	"slices"
	"strings"

	"github.com/alexvidal/xptrack/internal/domain"
)

// NoteInput carries the user-editable fields of a note. Tags is a
// comma-separated string to match the form surfaces.
type NoteInput struct {
	Title        string
	BodyMarkdown string
	Tags         string
}

// CreateNote validates the input and appends a new note stamped with the
// current time.
func (a *App) CreateNote(ctx context.Context, in NoteInput) (domain.Note, error) {
	note := domain.Note{
		ID:           a.newID(),
		Title:        strings.TrimSpace(in.Title),
		BodyMarkdown: in.BodyMarkdown,
		Tags:         domain.SplitTags(in.Tags),
		UpdatedAt:    a.now().UnixMilli(),
	}
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}
	a.notes = append(a.notes, note)
	a.persistNotes(ctx)
	a.emit("note_create", map[string]any{"id": note.ID, "title": note.Title})
	return note, nil
}

// UpdateNote rewrites an existing note and bumps its timestamp. An unknown
// id is a silent no-op.
func (a *App) UpdateNote(ctx context.Context, noteID string, in NoteInput) error {
	idx := a.noteIndex(noteID)
	if idx < 0 {
		return nil
	}
	updated := a.notes[idx]
	updated.Title = strings.TrimSpace(in.Title)
	updated.BodyMarkdown = in.BodyMarkdown
	updated.Tags = domain.SplitTags(in.Tags)
	updated.UpdatedAt = a.now().UnixMilli()
	if err := updated.Validate(); err != nil {
		return err
	}
	a.notes[idx] = updated
	a.persistNotes(ctx)
	a.emit("note_update", map[string]any{"id": updated.ID, "title": updated.Title})
	return nil
}

// DeleteNote removes a note and arms the undo slot; unknown ids are no-ops.
func (a *App) DeleteNote(ctx context.Context, noteID string) {
	idx := a.noteIndex(noteID)
	if idx < 0 {
		return
	}
	removed := a.notes[idx]
	a.notes = append(a.notes[:idx], a.notes[idx+1:]...)
	a.armUndo(func(ctx context.Context) {
		a.notes = slices.Insert(a.notes, min(idx, len(a.notes)), removed)
		a.persistNotes(ctx)
		a.emit("note_restore", map[string]any{"id": removed.ID, "title": removed.Title})
	})
	a.persistNotes(ctx)
	a.emit("note_delete", map[string]any{"id": removed.ID, "title": removed.Title})
}

func (a *App) noteIndex(noteID string) int {
	for i := range a.notes {
		if a.notes[i].ID == noteID {
			return i
		}
	}
	return -1
}

// Notes returns a copy of the note collection.
func (a *App) Notes() []domain.Note {
	out := make([]domain.Note, len(a.notes))
	copy(out, a.notes)
	return out
}

// FindNote looks a note up by id.
func (a *App) FindNote(noteID string) (domain.Note, bool) {
	idx := a.noteIndex(noteID)
	if idx < 0 {
		return domain.Note{}, false
	}
	return a.notes[idx], true
}
