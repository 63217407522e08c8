// Package app holds the in-memory application state and the domain
// operations that mutate it. The App is the single source of truth for a
// session: every mutation updates the in-memory collections first, then
// writes through to the persistent store synchronously. Persistence
// failures are logged and the in-memory copy stays authoritative.
//
// The App is driven by one goroutine at a time (a cobra command or the TUI
// update loop) and is not safe for concurrent use.
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/alexvidal/xptrack/internal/db"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/id"
	"github.com/alexvidal/xptrack/internal/store"
)

func defaultNewID() string { return id.New() }

// Screen identifies one of the five screens. Navigation is a closed state
// machine over these values; there is no terminal state.
type Screen string

const (
	ScreenHome    Screen = "home"
	ScreenTasks   Screen = "tasks"
	ScreenHabits  Screen = "habits"
	ScreenBudgets Screen = "budgets"
	ScreenNotes   Screen = "notes"
)

// Screens lists all screens in navigation order.
var Screens = []Screen{ScreenHome, ScreenTasks, ScreenHabits, ScreenBudgets, ScreenNotes}

// Supported UI languages.
const (
	LangSpanish = "es"
	LangEnglish = "en"
)

// App is the state container: the writable in-memory mirror of the four
// collections plus transient UI state.
type App struct {
	store  *store.Store
	uow    db.UnitOfWork
	logger *slog.Logger

	observer Observer
	now      func() time.Time
	rng      *rand.Rand
	newID    func() string

	tasks   []domain.Task
	habits  []domain.Habit
	budgets []domain.Budget
	notes   []domain.Note

	screen   Screen
	filter   domain.TaskFilter
	pending  *undoEntry
	visits   int
	theme    domain.Theme
	language string
}

// Option configures an App during construction.
type Option func(*App)

// WithClock overrides the wall clock, pinning "today" in tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithObserver registers the event observer notified after successful
// mutations.
func WithObserver(o Observer) Option {
	return func(a *App) { a.observer = o }
}

// WithLogger sets the logger used for non-fatal persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithRand seeds the randomness used for demo data generation.
func WithRand(rng *rand.Rand) Option {
	return func(a *App) { a.rng = rng }
}

// WithIDFunc overrides identifier generation, for deterministic tests.
func WithIDFunc(f func() string) Option {
	return func(a *App) { a.newID = f }
}

// New creates an App over the given store. Call Init before use.
func New(s *store.Store, uow db.UnitOfWork, opts ...Option) *App {
	a := &App{
		store:    s,
		uow:      uow,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: NoopObserver{},
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		newID:    defaultNewID,
		screen:   ScreenHome,
		filter:   domain.FilterAll,
		theme:    domain.ThemeLight,
		language: LangSpanish,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init loads every collection from the store, seeding demo data on first
// run, then counts the visit and loads the theme and language flags.
// The in-memory copy is trusted for the rest of the session; Init is the
// only load.
func (a *App) Init(ctx context.Context) error {
	if err := a.store.Seed(ctx, a.now(), a.rng); err != nil {
		return err
	}

	var err error
	if a.tasks, err = a.store.Tasks(ctx); err != nil {
		return err
	}
	if a.habits, err = a.store.Habits(ctx); err != nil {
		return err
	}
	if a.budgets, err = a.store.Budgets(ctx); err != nil {
		return err
	}
	if a.notes, err = a.store.Notes(ctx); err != nil {
		return err
	}

	a.countVisit(ctx)
	a.loadTheme(ctx)
	a.loadLanguage(ctx)
	a.screen = ScreenHome
	return nil
}

// countVisit increments and persists the visit counter. Every tenth visit
// raises a celebration event.
func (a *App) countVisit(ctx context.Context) {
	n, err := a.store.VisitCount(ctx)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		a.logger.Error("loading visit counter", "error", err)
	}
	a.visits = n + 1
	a.persist(ctx, "visit counter", func() error {
		return a.store.SaveVisitCount(ctx, a.visits)
	})
	if a.visits%10 == 0 {
		a.emit("celebration", map[string]any{"reason": "visit_milestone", "visits": a.visits})
	}
}

func (a *App) loadTheme(ctx context.Context) {
	theme, err := a.store.Theme(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			a.logger.Error("loading theme", "error", err)
		}
		theme = domain.ThemeLight
	}
	a.theme = theme
	a.persist(ctx, "theme", func() error {
		return a.store.SaveTheme(ctx, a.theme)
	})
}

func (a *App) loadLanguage(ctx context.Context) {
	lang, err := a.store.Language(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			a.logger.Error("loading language", "error", err)
		}
		lang = LangSpanish
	}
	a.language = lang
}

// persist runs a store write and downgrades any failure to a log entry.
// The in-memory state remains authoritative; the write is not retried.
func (a *App) persist(ctx context.Context, what string, write func() error) {
	if err := write(); err != nil {
		a.logger.Error("persisting "+what, "error", err)
	}
}

func (a *App) persistTasks(ctx context.Context) {
	a.persist(ctx, "tasks", func() error { return a.store.SaveTasks(ctx, a.tasks) })
}

func (a *App) persistHabits(ctx context.Context) {
	a.persist(ctx, "habits", func() error { return a.store.SaveHabits(ctx, a.habits) })
}

func (a *App) persistBudgets(ctx context.Context) {
	a.persist(ctx, "budgets", func() error { return a.store.SaveBudgets(ctx, a.budgets) })
}

func (a *App) persistNotes(ctx context.Context) {
	a.persist(ctx, "notes", func() error { return a.store.SaveNotes(ctx, a.notes) })
}

// ── navigation ───────────────────────────────────────────────────────────────

// NavigateTo switches the active screen. The in-memory collections are
// trusted as current; navigating never reloads from the store.
func (a *App) NavigateTo(s Screen) {
	a.screen = s
}

// CurrentScreen returns the active screen.
func (a *App) CurrentScreen() Screen {
	return a.screen
}

// SetFilter selects the task list filter.
func (a *App) SetFilter(f domain.TaskFilter) {
	a.filter = f
}

// Filter returns the active task list filter.
func (a *App) Filter() domain.TaskFilter {
	return a.filter
}

// ── scalar state ─────────────────────────────────────────────────────────────

// VisitCount returns the visit count including the current session.
func (a *App) VisitCount() int {
	return a.visits
}

// Theme returns the active theme.
func (a *App) Theme() domain.Theme {
	return a.theme
}

// ToggleTheme flips between light and dark and persists the flag.
func (a *App) ToggleTheme(ctx context.Context) domain.Theme {
	if a.theme == domain.ThemeDark {
		a.theme = domain.ThemeLight
	} else {
		a.theme = domain.ThemeDark
	}
	a.persist(ctx, "theme", func() error { return a.store.SaveTheme(ctx, a.theme) })
	return a.theme
}

// Language returns the active UI language.
func (a *App) Language() string {
	return a.language
}

// SetLanguage switches the UI language and persists it.
func (a *App) SetLanguage(ctx context.Context, lang string) error {
	if lang != LangSpanish && lang != LangEnglish {
		return domain.ErrValidation
	}
	a.language = lang
	a.persist(ctx, "language", func() error { return a.store.SaveLanguage(ctx, lang) })
	return nil
}

// Now returns the App's current clock time.
func (a *App) Now() time.Time {
	return a.now()
}
