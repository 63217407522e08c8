package formatter

import (
	"strings"
	"time"

	"github.com/alexvidal/xptrack/internal/i18n"
	"github.com/alexvidal/xptrack/internal/view"
)

// FormatHome renders the landing screen: the MIT strip, the day's headline
// numbers, recently completed tasks and the most recent notes.
func FormatHome(h view.Home, today string, now time.Time, visits int, tr *i18n.Bundle) string {
	var b strings.Builder

	b.WriteString(Bold(tr.T("app.welcome")) + "  " +
		Dim(tr.T("app.visits", map[string]any{"count": visits})) + "\n\n")

	b.WriteString(Header(tr.T("home.mits")) + "\n")
	if len(h.MITs) == 0 {
		b.WriteString(StyleGreen.Render(tr.T("home.no_mits")) + "\n")
	} else {
		for _, t := range h.MITs {
			b.WriteString("  " + CheckMark(t.Done) + " " + StyleFg.Render(t.Title) +
				"  " + PriorityBadge(t.Priority) + "\n")
		}
	}

	b.WriteString("\n" + tr.T("home.due_today", map[string]any{"count": h.DueToday}) +
		" · " + tr.T("home.open_tasks", map[string]any{"count": h.OpenTasks}) +
		" · " + tr.T("home.habits_progress", map[string]any{"done": h.HabitsDone, "total": h.HabitsTotal}) + "\n")

	line := tr.T("home.today_progress", map[string]any{"done": h.DoneToday, "total": h.TotalToday})
	if h.MaxStreak > 0 {
		line += " · " + tr.T("home.max_streak", map[string]any{"count": h.MaxStreak})
	}
	if h.BudgetCurrency != "" {
		line += " · " + tr.T("home.budget_left", map[string]any{"amount": Money(h.BudgetRemaining, h.BudgetCurrency)})
	}
	line += " · " + tr.T("home.notes_count", map[string]any{"count": h.NoteCount})
	b.WriteString(Dim(line) + "\n")

	if len(h.RecentTasks) > 0 {
		b.WriteString("\n" + Header(tr.T("home.recent_activity")) + "\n")
		for _, t := range h.RecentTasks {
			b.WriteString("  " + CheckMark(true) + " " + StyleFg.Render(PadRight(t.Title, 30)) +
				"  " + Dim(tr.T("home.completed_stamp")) + "\n")
		}
	}

	if len(h.RecentNotes) > 0 {
		b.WriteString("\n" + Header(tr.T("home.recent_notes")) + "\n")
		for _, n := range h.RecentNotes {
			b.WriteString("  " + StyleFg.Render(PadRight(n.Title, 30)) + "  " + UpdatedStamp(n.UpdatedAt, now) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
