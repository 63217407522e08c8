package formatter

import (
	"fmt"
	"strings"

	"github.com/alexvidal/xptrack/internal/i18n"
	"github.com/alexvidal/xptrack/internal/view"
)

// FormatHabitBoard renders the habit screen: one row per habit with its
// last seven days as cells, the streak, and a completion summary line.
func FormatHabitBoard(board view.HabitBoard, tr *i18n.Bundle) string {
	if len(board.Rows) == 0 {
		return Dim(tr.T("habits.empty"))
	}

	var b strings.Builder
	b.WriteString(Dim(tr.T("habits.last_week")) + "\n")
	for _, row := range board.Rows {
		cells := make([]string, len(row.Cells))
		for i, done := range row.Cells {
			if done {
				cells[i] = StyleGreen.Render("■")
			} else {
				cells[i] = StyleDim.Render("·")
			}
		}
		streak := StreakStyle(row.Habit.Streak).Render(
			tr.T("habits.streak", map[string]any{"count": row.Habit.Streak}))
		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			CheckMark(row.DoneToday),
			StyleFg.Render(PadRight(row.Habit.Title, 34)),
			strings.Join(cells, " "),
			streak,
		))
	}

	b.WriteString("\n" + tr.T("habits.completion", map[string]any{
		"done": board.DoneToday, "total": len(board.Rows), "percent": board.CompletionRate,
	}))
	b.WriteString("  " + RenderCompletion(float64(board.CompletionRate)/100, 14))
	if board.MaxStreak > 0 {
		b.WriteString("\n" + Dim(tr.T("habits.best_streak", map[string]any{"count": board.MaxStreak})))
	}
	return b.String()
}
