package app

import (
	"io"
	"log/slog"
	"time"
)

// Event describes a domain mutation after it has been applied: a task was
// created, a habit toggled, a milestone reached. Events carry enough detail
// for a notification surface without exposing mutable state.
type Event struct {
	Name   string
	At     time.Time
	Fields map[string]any
}

// Observer receives domain events. Observers run synchronously on the
// mutating goroutine and must not call back into the App.
type Observer interface {
	Observe(event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Observe(Event) {}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes domain events to the provided writer.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) Observe(event Event) {
	attrs := make([]any, 0, 2+len(event.Fields)*2)
	attrs = append(attrs, "event", event.Name)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	o.logger.Info("app_event", attrs...)
}

// emit notifies the observer of a successful mutation.
func (a *App) emit(name string, fields map[string]any) {
	a.observer.Observe(Event{Name: name, At: a.now(), Fields: fields})
}
