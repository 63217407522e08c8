// Package store persists each collection and scalar under its own namespace
// in the kv table. One typed accessor pair per namespace; arrays are
// JSON-serialized preserving element order.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/alexvidal/xptrack/internal/db"
	"github.com/alexvidal/xptrack/internal/domain"
)

// ErrNotFound is returned when a namespace has never been written.
var ErrNotFound = errors.New("not found")

// Persisted namespaces.
const (
	NamespaceTasks    = "tasks"
	NamespaceHabits   = "habits"
	NamespaceBudgets  = "budgets"
	NamespaceNotes    = "notes"
	NamespaceVisits   = "visit_counter"
	NamespaceTheme    = "theme"
	NamespaceLanguage = "userLanguage"
)

// Store reads and writes namespaced values. It holds a db.DBTX so the same
// accessors work against a *sql.DB or inside a transaction.
type Store struct {
	db db.DBTX
}

// New creates a Store backed by the given connection or transaction.
func New(conn db.DBTX) *Store {
	return &Store{db: conn}
}

func (s *Store) read(ctx context.Context, namespace string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE namespace = ?`, namespace).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", namespace, ErrNotFound)
		}
		return "", fmt.Errorf("reading %s: %w", namespace, err)
	}
	return value, nil
}

func (s *Store) write(ctx context.Context, namespace, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (namespace, value) VALUES (?, ?)
		 ON CONFLICT(namespace) DO UPDATE SET
		   value = excluded.value,
		   updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
		namespace, value)
	if err != nil {
		return fmt.Errorf("writing %s: %w", namespace, err)
	}
	return nil
}

func (s *Store) loadJSON(ctx context.Context, namespace string, out any) error {
	value, err := s.read(ctx, namespace)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return fmt.Errorf("decoding %s: %w", namespace, err)
	}
	return nil
}

func (s *Store) saveJSON(ctx context.Context, namespace string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", namespace, err)
	}
	return s.write(ctx, namespace, string(data))
}

// Tasks loads the task collection. Returns ErrNotFound on first run.
func (s *Store) Tasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := s.loadJSON(ctx, NamespaceTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SaveTasks persists the task collection in order.
func (s *Store) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	return s.saveJSON(ctx, NamespaceTasks, emptyIfNil(tasks))
}

// Habits loads the habit collection. Returns ErrNotFound on first run.
func (s *Store) Habits(ctx context.Context) ([]domain.Habit, error) {
	var habits []domain.Habit
	if err := s.loadJSON(ctx, NamespaceHabits, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// SaveHabits persists the habit collection in order.
func (s *Store) SaveHabits(ctx context.Context, habits []domain.Habit) error {
	return s.saveJSON(ctx, NamespaceHabits, emptyIfNil(habits))
}

// Budgets loads the budget collection. Returns ErrNotFound on first run.
func (s *Store) Budgets(ctx context.Context) ([]domain.Budget, error) {
	var budgets []domain.Budget
	if err := s.loadJSON(ctx, NamespaceBudgets, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// SaveBudgets persists the budget collection in order.
func (s *Store) SaveBudgets(ctx context.Context, budgets []domain.Budget) error {
	return s.saveJSON(ctx, NamespaceBudgets, emptyIfNil(budgets))
}

// Notes loads the note collection. Returns ErrNotFound on first run.
func (s *Store) Notes(ctx context.Context) ([]domain.Note, error) {
	var notes []domain.Note
	if err := s.loadJSON(ctx, NamespaceNotes, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// SaveNotes persists the note collection in order.
func (s *Store) SaveNotes(ctx context.Context, notes []domain.Note) error {
	return s.saveJSON(ctx, NamespaceNotes, emptyIfNil(notes))
}

// VisitCount loads the visit counter. Returns ErrNotFound on first run.
func (s *Store) VisitCount(ctx context.Context) (int, error) {
	value, err := s.read(ctx, NamespaceVisits)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("decoding %s: %w", NamespaceVisits, err)
	}
	return n, nil
}

// SaveVisitCount persists the visit counter as a plain number.
func (s *Store) SaveVisitCount(ctx context.Context, n int) error {
	return s.write(ctx, NamespaceVisits, strconv.Itoa(n))
}

// Theme loads the persisted theme flag. Returns ErrNotFound on first run.
func (s *Store) Theme(ctx context.Context) (domain.Theme, error) {
	value, err := s.read(ctx, NamespaceTheme)
	if err != nil {
		return "", err
	}
	return domain.Theme(value), nil
}

// SaveTheme persists the theme flag.
func (s *Store) SaveTheme(ctx context.Context, theme domain.Theme) error {
	return s.write(ctx, NamespaceTheme, string(theme))
}

// Language loads the persisted UI language. Returns ErrNotFound on first run.
func (s *Store) Language(ctx context.Context) (string, error) {
	return s.read(ctx, NamespaceLanguage)
}

// SaveLanguage persists the UI language.
func (s *Store) SaveLanguage(ctx context.Context, lang string) error {
	return s.write(ctx, NamespaceLanguage, lang)
}

// Has reports whether the namespace has ever been written.
func (s *Store) Has(ctx context.Context, namespace string) (bool, error) {
	_, err := s.read(ctx, namespace)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// emptyIfNil keeps persisted collections as JSON arrays, never null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
