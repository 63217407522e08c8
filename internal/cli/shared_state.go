package cli

import (
	"github.com/alexvidal/xptrack/internal/app"
	"github.com/alexvidal/xptrack/internal/i18n"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// T translates a message key in the active language.
func (s *SharedState) T(key string, params ...map[string]any) string {
	return s.App.T(key, params...)
}

// Bundle returns the active translation bundle.
func (s *SharedState) Bundle() *i18n.Bundle {
	return s.App.Bundle()
}

// Screen returns the active screen tracked by the application state.
func (s *SharedState) Screen() app.Screen {
	return s.App.State.CurrentScreen()
}

// ContentHeight returns the available height for view content,
// accounting for the header (2 lines) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
