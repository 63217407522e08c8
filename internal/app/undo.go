package app

import (
	"context"
	"time"
)

// undoTTL is how long a deletion stays restorable.
const undoTTL = 5 * time.Second

// undoEntry holds the single pending restoration. restore re-inserts the
// deleted entity at its original position and persists its collection.
type undoEntry struct {
	restore func(ctx context.Context)
	expires time.Time
}

// armUndo replaces any pending slot with the given restoration. There is a
// single slot: a second delete forgets the first.
func (a *App) armUndo(restore func(ctx context.Context)) {
	a.pending = &undoEntry{
		restore: restore,
		expires: a.now().Add(undoTTL),
	}
}

// CanUndo reports whether the most recent deletion is still restorable.
func (a *App) CanUndo() bool {
	return a.pending != nil && a.now().Before(a.pending.expires)
}

// Undo restores the most recently deleted entity at its original position.
// It reports whether anything was restored; an expired or empty slot is a
// no-op.
func (a *App) Undo(ctx context.Context) bool {
	if !a.CanUndo() {
		a.pending = nil
		return false
	}
	entry := a.pending
	a.pending = nil
	entry.restore(ctx)
	return true
}
