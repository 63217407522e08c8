package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexvidal/xptrack/internal/db"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/importer"
	"github.com/alexvidal/xptrack/internal/store"
)

// ExportBackup snapshots all four collections into a portable backup.
func (a *App) ExportBackup() importer.Backup {
	return importer.Backup{
		Budgets: a.Budgets(),
		Tasks:   a.Tasks(),
		Notes:   a.Notes(),
		Habits:  a.Habits(),
	}
}

// ImportBackup validates a backup and replaces all four collections with
// its contents in a single transaction. On any failure nothing changes,
// neither on disk nor in memory.
func (a *App) ImportBackup(ctx context.Context, backup importer.Backup) error {
	if errs := importer.ValidateBackup(&backup); len(errs) > 0 {
		return fmt.Errorf("invalid backup: %w", errors.Join(errs...))
	}
	if err := a.replaceAll(ctx, backup.Tasks, backup.Habits, backup.Budgets, backup.Notes); err != nil {
		return fmt.Errorf("importing backup: %w", err)
	}
	a.emit("backup_import", map[string]any{
		"tasks": len(backup.Tasks), "habits": len(backup.Habits),
		"budgets": len(backup.Budgets), "notes": len(backup.Notes),
	})
	return nil
}

// ResetToDemo discards all four collections and reinstates the demo
// content, in a single transaction.
func (a *App) ResetToDemo(ctx context.Context) error {
	now := a.now()
	err := a.replaceAll(ctx,
		store.DemoTasks(now),
		store.DemoHabits(now, a.rng),
		store.DemoBudgets(now),
		store.DemoNotes(now),
	)
	if err != nil {
		return fmt.Errorf("resetting demo data: %w", err)
	}
	a.emit("demo_reset", nil)
	return nil
}

// replaceAll writes all four collections atomically, then swaps the
// in-memory copies. Partial replacement is never visible.
func (a *App) replaceAll(ctx context.Context, tasks []domain.Task, habits []domain.Habit, budgets []domain.Budget, notes []domain.Note) error {
	err := a.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStore := store.New(tx)
		if err := txStore.SaveTasks(ctx, tasks); err != nil {
			return err
		}
		if err := txStore.SaveHabits(ctx, habits); err != nil {
			return err
		}
		if err := txStore.SaveBudgets(ctx, budgets); err != nil {
			return err
		}
		return txStore.SaveNotes(ctx, notes)
	})
	if err != nil {
		return err
	}
	a.tasks = tasks
	a.habits = habits
	a.budgets = budgets
	a.notes = notes
	a.pending = nil
	return nil
}
